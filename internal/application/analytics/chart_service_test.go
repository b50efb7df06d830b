package analytics

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBarChart(t *testing.T) {
	t.Run("sums profit per category descending", func(t *testing.T) {
		tbl := mustTable(t, []string{"category", "profit"},
			[]dsCell{txt("Office"), num(10)},
			[]dsCell{txt("Tech"), num(50)},
			[]dsCell{txt("Office"), num(15)},
			[]dsCell{txt("Furniture"), num(5)},
		)
		chart := BuildBarChart(tbl)
		require.NotNil(t, chart)
		assert.Equal(t, "category", chart.Column)
		assert.Equal(t, []NamedValue{
			{Name: "Tech", Value: 50},
			{Name: "Office", Value: 25},
			{Name: "Furniture", Value: 5},
		}, chart.Data)
	})

	t.Run("prefers product name over fallbacks", func(t *testing.T) {
		tbl := mustTable(t, []string{"category", "product name", "profit"},
			[]dsCell{txt("Tech"), txt("Laptop"), num(1)},
			[]dsCell{txt("Tech"), txt("Phone"), num(2)},
		)
		chart := BuildBarChart(tbl)
		require.NotNil(t, chart)
		assert.Equal(t, "product name", chart.Column)
	})

	t.Run("falls back to revenue when profit is absent", func(t *testing.T) {
		tbl := mustTable(t, []string{"segment", "revenue"},
			[]dsCell{txt("Consumer"), num(100)},
			[]dsCell{txt("Corporate"), num(200)},
		)
		chart := BuildBarChart(tbl)
		require.NotNil(t, chart)
		assert.Equal(t, 200.0, chart.Data[0].Value)
	})

	t.Run("keeps top seven bars", func(t *testing.T) {
		var rows [][]dsCell
		for i := 0; i < 10; i++ {
			rows = append(rows, []dsCell{txt(fmt.Sprintf("cat-%d", i)), num(float64(i))})
		}
		tbl := mustTable(t, []string{"category", "profit"}, rows...)
		chart := BuildBarChart(tbl)
		require.NotNil(t, chart)
		require.Len(t, chart.Data, 7)
		assert.Equal(t, "cat-9", chart.Data[0].Name)
		assert.Equal(t, "cat-3", chart.Data[6].Name)
	})

	t.Run("a single bar is not a chart", func(t *testing.T) {
		tbl := mustTable(t, []string{"category", "profit"},
			[]dsCell{txt("Tech"), num(1)},
			[]dsCell{txt("Tech"), num(2)},
		)
		assert.Nil(t, BuildBarChart(tbl))
	})

	t.Run("nan groups are discarded", func(t *testing.T) {
		tbl := mustTable(t, []string{"category", "profit"},
			[]dsCell{txt("Tech"), num(1)},
			[]dsCell{txt("NaN"), num(99)},
			[]dsCell{txt("Office"), num(2)},
		)
		chart := BuildBarChart(tbl)
		require.NotNil(t, chart)
		for _, d := range chart.Data {
			assert.NotEqual(t, "nan", strings.ToLower(d.Name))
		}
	})

	t.Run("no measure at all", func(t *testing.T) {
		tbl := mustTable(t, []string{"category"},
			[]dsCell{txt("Tech")},
			[]dsCell{txt("Office")},
		)
		assert.Nil(t, BuildBarChart(tbl))
	})

	t.Run("skips geography and payment columns in the final scan", func(t *testing.T) {
		tbl := mustTable(t, []string{"state", "payment_method", "channel", "profit"},
			[]dsCell{txt("Texas"), txt("Card"), txt("Web"), num(1)},
			[]dsCell{txt("Ohio"), txt("Cash"), txt("Store"), num(2)},
		)
		chart := BuildBarChart(tbl)
		require.NotNil(t, chart)
		assert.Equal(t, "channel", chart.Column)
	})
}

func TestBuildPieChart(t *testing.T) {
	t.Run("top five plus other", func(t *testing.T) {
		// 9 rows over 6 categories: A:3, B:2 and one of each C..F.
		tbl := mustTable(t, []string{"category"},
			[]dsCell{txt("A")}, []dsCell{txt("A")}, []dsCell{txt("A")},
			[]dsCell{txt("B")}, []dsCell{txt("B")},
			[]dsCell{txt("C")}, []dsCell{txt("D")}, []dsCell{txt("E")}, []dsCell{txt("F")},
		)
		chart := BuildPieChart(tbl)
		require.NotNil(t, chart)
		assert.Equal(t, "category", chart.Column)
		require.Len(t, chart.Data, 6)
		assert.Equal(t, NamedValue{Name: "A", Value: 3}, chart.Data[0])
		assert.Equal(t, NamedValue{Name: "B", Value: 2}, chart.Data[1])
		assert.Equal(t, NamedValue{Name: "Other", Value: 1}, chart.Data[5])

		var total float64
		for _, d := range chart.Data {
			total += d.Value
		}
		assert.Equal(t, 9.0, total, "bucket values sum to the row count")
	})

	t.Run("five or fewer buckets have no other", func(t *testing.T) {
		tbl := mustTable(t, []string{"category"},
			[]dsCell{txt("A")}, []dsCell{txt("B")}, []dsCell{txt("A")},
		)
		chart := BuildPieChart(tbl)
		require.NotNil(t, chart)
		assert.Equal(t, []NamedValue{{Name: "A", Value: 2}, {Name: "B", Value: 1}}, chart.Data)
	})

	t.Run("scans right to left when category and campaign are absent", func(t *testing.T) {
		tbl := mustTable(t, []string{"segment", "ship mode"},
			[]dsCell{txt("Consumer"), txt("First")},
			[]dsCell{txt("Corporate"), txt("Second")},
		)
		chart := BuildPieChart(tbl)
		require.NotNil(t, chart)
		assert.Equal(t, "ship mode", chart.Column)
	})

	t.Run("rejects near-unique columns", func(t *testing.T) {
		var rows [][]dsCell
		for i := 0; i < 60; i++ {
			rows = append(rows, []dsCell{txt(fmt.Sprintf("ORD-%04d", i))})
		}
		tbl := mustTable(t, []string{"order ref"}, rows...)
		assert.Nil(t, BuildPieChart(tbl))
	})

	t.Run("empty and nan values are discarded", func(t *testing.T) {
		tbl := mustTable(t, []string{"category"},
			[]dsCell{txt("A")}, []dsCell{txt("")}, []dsCell{txt("nan")},
			[]dsCell{missing()}, []dsCell{txt("B")},
		)
		chart := BuildPieChart(tbl)
		require.NotNil(t, chart)
		assert.Equal(t, []NamedValue{{Name: "A", Value: 1}, {Name: "B", Value: 1}}, chart.Data)
	})
}
