package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLineChart(t *testing.T) {
	t.Run("raw per-row series in original order", func(t *testing.T) {
		tbl := mustTable(t, []string{"revenue", "profit", "date"},
			[]dsCell{num(300), num(30), txt("2024-01-03")},
			[]dsCell{num(100), txt("bad"), txt("2024-01-01")},
			[]dsCell{num(200), num(20), txt("2024-01-02")},
		)
		chart, err := BuildLineChart(tbl)
		require.NoError(t, err)

		require.Len(t, chart.Revenue, 3)
		assert.Equal(t, 300.0, *chart.Revenue[0])
		assert.Equal(t, 100.0, *chart.Revenue[1])
		assert.Equal(t, 200.0, *chart.Revenue[2])

		assert.Equal(t, 30.0, *chart.Profit[0])
		assert.Nil(t, chart.Profit[1], "unparseable profit stays null")

		// No sorting: dates keep upload order.
		assert.Equal(t, []string{"2024-01-03", "2024-01-01", "2024-01-02"}, chart.Dates)
		assert.Nil(t, chart.Orders)
	})

	t.Run("attaches orders sparkline when possible", func(t *testing.T) {
		tbl := mustTable(t, []string{"revenue", "profit", "date", "orders"},
			[]dsCell{num(1), num(1), txt("2024-01-05"), num(2)},
			[]dsCell{num(1), num(1), txt("2024-01-20"), num(3)},
			[]dsCell{num(1), num(1), txt("2024-02-01"), num(7)},
		)
		chart, err := BuildLineChart(tbl)
		require.NoError(t, err)
		assert.Equal(t, []float64{5, 7}, chart.Orders)
	})

	t.Run("missing required columns", func(t *testing.T) {
		tbl := mustTable(t, []string{"revenue"})
		_, err := BuildLineChart(tbl)
		var missingErr *MissingColumnsError
		require.ErrorAs(t, err, &missingErr)
		assert.Equal(t, []string{"profit", "date"}, missingErr.Columns)
	})
}

func TestAggregateSparkline(t *testing.T) {
	t.Run("monthly sums ascending by period", func(t *testing.T) {
		tbl := mustTable(t, []string{"date", "orders"},
			[]dsCell{txt("2024-03-10"), num(4)},
			[]dsCell{txt("2024-01-05"), num(1)},
			[]dsCell{txt("2024-01-25"), num(2)},
			[]dsCell{txt("2024-02-14"), num(3)},
		)
		spark, ok := AggregateSparkline(tbl, "orders", "")
		require.True(t, ok)
		assert.Equal(t, []float64{3, 3, 4}, spark)
	})

	t.Run("single month is not a sparkline", func(t *testing.T) {
		tbl := mustTable(t, []string{"date", "orders"},
			[]dsCell{txt("2024-01-05"), num(1)},
			[]dsCell{txt("2024-01-25"), num(2)},
		)
		_, ok := AggregateSparkline(tbl, "orders", "")
		assert.False(t, ok)
	})

	t.Run("rows with bad dates or values are dropped", func(t *testing.T) {
		tbl := mustTable(t, []string{"date", "orders"},
			[]dsCell{txt("2024-01-05"), num(1)},
			[]dsCell{txt("not a date"), num(100)},
			[]dsCell{txt("2024-02-05"), txt("oops")},
			[]dsCell{txt("2024-02-06"), num(5)},
		)
		spark, ok := AggregateSparkline(tbl, "orders", "")
		require.True(t, ok)
		assert.Equal(t, []float64{1, 5}, spark)
	})

	t.Run("no date column", func(t *testing.T) {
		tbl := mustTable(t, []string{"orders"}, []dsCell{num(1)})
		_, ok := AggregateSparkline(tbl, "orders", "")
		assert.False(t, ok)
	})

	t.Run("day-first disambiguation", func(t *testing.T) {
		// 13/01 only parses day-first; 05/01 must land in January too.
		tbl := mustTable(t, []string{"date", "orders"},
			[]dsCell{txt("05/01/2024"), num(1)},
			[]dsCell{txt("13/01/2024"), num(2)},
			[]dsCell{txt("13/02/2024"), num(4)},
		)
		spark, ok := AggregateSparkline(tbl, "orders", "")
		require.True(t, ok)
		assert.Equal(t, []float64{3, 4}, spark)
	})
}

func TestOrdersTrendDaily(t *testing.T) {
	t.Run("daily sums ascending", func(t *testing.T) {
		tbl := mustTable(t, []string{"date", "orders"},
			[]dsCell{txt("2024-01-02"), num(2)},
			[]dsCell{txt("2024-01-01"), num(1)},
			[]dsCell{txt("2024-01-02"), num(3)},
		)
		trend := OrdersTrendDaily(tbl)
		require.Len(t, trend, 2)
		assert.Equal(t, TrendPoint{Date: "2024-01-01", Orders: 1}, trend[0])
		assert.Equal(t, TrendPoint{Date: "2024-01-02", Orders: 5}, trend[1])
	})

	t.Run("counts rows without an orders column", func(t *testing.T) {
		tbl := mustTable(t, []string{"date"},
			[]dsCell{txt("2024-01-01")},
			[]dsCell{txt("2024-01-01")},
			[]dsCell{txt("2024-01-02")},
		)
		trend := OrdersTrendDaily(tbl)
		require.Len(t, trend, 2)
		assert.Equal(t, int64(2), trend[0].Orders)
		assert.Equal(t, int64(1), trend[1].Orders)
	})

	t.Run("keeps only the most recent 60 days", func(t *testing.T) {
		var all [][]dsCell
		for day := 0; day < 70; day++ {
			date := fmt.Sprintf("2024-%02d-%02d", 1+day/28, 1+day%28)
			all = append(all, []dsCell{txt(date), num(1)})
		}
		tbl := mustTable(t, []string{"date", "orders"}, all...)
		trend := OrdersTrendDaily(tbl)
		require.Len(t, trend, 60)
		// Oldest days were dropped.
		assert.Equal(t, "2024-01-11", trend[0].Date)
	})

	t.Run("no date column yields nothing", func(t *testing.T) {
		tbl := mustTable(t, []string{"orders"}, []dsCell{num(1)})
		assert.Nil(t, OrdersTrendDaily(tbl))
	})

	t.Run("all dates unparseable yields nothing", func(t *testing.T) {
		tbl := mustTable(t, []string{"date"}, []dsCell{txt("garbage")})
		assert.Nil(t, OrdersTrendDaily(tbl))
	})
}
