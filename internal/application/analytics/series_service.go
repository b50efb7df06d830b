package analytics

import (
	"sort"

	"github.com/insightdash/backend/internal/domain/dataset"
)

// ordersTrendMaxDays bounds the daily trend payload; older history is
// dropped, not invalid.
const ordersTrendMaxDays = 60

// minSparklineMonths is the smallest number of distinct calendar months
// that makes a sparkline worth drawing.
const minSparklineMonths = 2

// BuildLineChart produces the raw per-row revenue/profit/date series in
// original row order, without bucketing. Requires the revenue, profit and
// date columns. When an orders column exists its monthly sparkline is
// attached as well.
func BuildLineChart(t *dataset.Table) (*LineChart, error) {
	if err := requireColumns(t, "revenue", "profit", "date"); err != nil {
		return nil, err
	}

	n := t.NumRows()
	chart := &LineChart{
		Revenue: make([]*float64, n),
		Profit:  make([]*float64, n),
		Dates:   make([]string, n),
	}
	for i := 0; i < n; i++ {
		if v, ok := t.Cell(i, "revenue").Float(); ok {
			rev := v
			chart.Revenue[i] = &rev
		}
		if v, ok := t.Cell(i, "profit").Float(); ok {
			prof := v
			chart.Profit[i] = &prof
		}
		chart.Dates[i] = t.Cell(i, "date").String()
	}

	if t.HasColumn("orders") {
		if spark, ok := AggregateSparkline(t, "orders", "date"); ok {
			chart.Orders = spark
		}
	}

	return chart, nil
}

// AggregateSparkline sums valueColumn per calendar month, ascending by
// period. When dateColumn is empty the table's date column is resolved
// heuristically. Rows whose date or value fail to parse are dropped.
// Returns ok=false when no date column exists or fewer than two distinct
// months remain; a single point is not a useful sparkline.
func AggregateSparkline(t *dataset.Table, valueColumn, dateColumn string) ([]float64, bool) {
	if dateColumn == "" || !t.HasColumn(dateColumn) {
		col, ok := dataset.FindDateColumn(t)
		if !ok {
			return nil, false
		}
		dateColumn = col
	}
	if !t.HasColumn(valueColumn) {
		return nil, false
	}

	sums := make(map[string]float64)
	for i := 0; i < t.NumRows(); i++ {
		ts, ok := parseDate(t.Cell(i, dateColumn).String())
		if !ok {
			continue
		}
		v, ok := t.Cell(i, valueColumn).Float()
		if !ok {
			continue
		}
		sums[ts.Format("2006-01")] += v
	}
	if len(sums) < minSparklineMonths {
		return nil, false
	}

	months := make([]string, 0, len(sums))
	for m := range sums {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]float64, len(months))
	for i, m := range months {
		out[i] = sums[m]
	}
	return out, true
}

// OrdersTrendDaily buckets orders by calendar day, ascending, keeping the
// most recent 60 days. When no orders column exists each row counts as one
// order. Returns nil when no date column resolves or no row parses.
func OrdersTrendDaily(t *dataset.Table) []TrendPoint {
	dateColumn, ok := dataset.FindDateColumn(t)
	if !ok {
		return nil
	}

	hasOrders := t.HasColumn("orders")
	sums := make(map[string]float64)
	for i := 0; i < t.NumRows(); i++ {
		ts, ok := parseDate(t.Cell(i, dateColumn).String())
		if !ok {
			continue
		}
		day := ts.Format("2006-01-02")
		if hasOrders {
			if v, ok := t.Cell(i, "orders").Float(); ok {
				sums[day] += v
			} else {
				sums[day] += 0
			}
		} else {
			sums[day]++
		}
	}
	if len(sums) == 0 {
		return nil
	}

	days := make([]string, 0, len(sums))
	for d := range sums {
		days = append(days, d)
	}
	sort.Strings(days)
	if len(days) > ordersTrendMaxDays {
		days = days[len(days)-ordersTrendMaxDays:]
	}

	out := make([]TrendPoint, len(days))
	for i, d := range days {
		out[i] = TrendPoint{Date: d, Orders: int64(sums[d])}
	}
	return out
}
