package analytics

import (
	"sort"

	"github.com/insightdash/backend/internal/domain/dataset"
)

const profitTableMaxRows = 5

// BuildProfitTable extracts the five rows with the highest profit, with all
// original columns and JSON-safe cells. Rows whose profit does not coerce
// sort last. Requires a profit column.
func BuildProfitTable(t *dataset.Table) (*ProfitTable, error) {
	if err := requireColumns(t, "profit"); err != nil {
		return nil, err
	}

	type rankedRow struct {
		idx    int
		profit float64
		ok     bool
	}
	rows := make([]rankedRow, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		v, ok := t.Cell(i, "profit").Float()
		rows[i] = rankedRow{idx: i, profit: v, ok: ok}
	}
	sort.SliceStable(rows, func(a, b int) bool {
		if rows[a].ok != rows[b].ok {
			return rows[a].ok
		}
		return rows[a].profit > rows[b].profit
	})
	if len(rows) > profitTableMaxRows {
		rows = rows[:profitTableMaxRows]
	}

	out := make([]map[string]any, len(rows))
	for i, r := range rows {
		out[i] = t.RowMap(r.idx)
	}
	return &ProfitTable{Rows: out, Columns: t.Columns()}, nil
}
