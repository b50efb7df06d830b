package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/insightdash/backend/internal/domain/dataset"
)

type dsCell = dataset.Cell

func num(v float64) dsCell { return dataset.NumberCell(v) }
func txt(s string) dsCell  { return dataset.TextCell(s) }
func missing() dsCell      { return dataset.MissingCell() }

func mustTable(t *testing.T, columns []string, rows ...[]dataset.Cell) *dataset.Table {
	t.Helper()
	tbl, err := dataset.New(columns, rows)
	require.NoError(t, err)
	return tbl
}

// kpiTable is the canonical complete dataset used across tests: four
// measures, a date axis, and a couple of dimensions.
func kpiTable(t *testing.T) *dataset.Table {
	t.Helper()
	return mustTable(t, []string{"profit", "revenue", "orders", "expense", "date", "category", "state"},
		[]dataset.Cell{num(10), num(100), num(1), num(5), txt("2024-01-10"), txt("Tech"), txt("Texas")},
		[]dataset.Cell{num(20), num(200), num(2), num(10), txt("2024-02-11"), txt("Office"), txt("Ohio")},
		[]dataset.Cell{num(30), num(300), num(3), num(15), txt("2024-02-12"), txt("Tech"), txt("Nowhereland")},
	)
}
