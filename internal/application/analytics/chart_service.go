package analytics

import (
	"github.com/insightdash/backend/internal/domain/dataset"
)

const (
	barChartMaxBars = 7
	pieMaxSegments  = 5

	// Cardinality window for the pie column: at least two buckets, and a
	// ceiling that rejects near-unique identifier columns.
	pieMinCategories = 2
	pieMaxCategories = 50
)

// barColumnPrimary is tried first; barColumnFallbacks next; finally every
// remaining non-geography, non-payment column in original order.
var (
	barColumnPrimary = []string{"product name", "product_name", "productname"}

	barColumnFallbacks = []string{
		"category", "sub-category", "sub_category", "subcategory",
		"product id", "product_id", "productid",
		"customer name", "customer_name", "customername",
		"segment", "region", "sales_rep", "sales rep", "campaign",
	}
)

// BuildBarChart picks a categorical column, sums profit (or revenue when
// profit is absent) per category and keeps the top 7. Returns nil when no
// measure or suitable column exists, or fewer than two groups remain;
// a single bar is not a chart.
func BuildBarChart(t *dataset.Table) *BarChart {
	valueColumn := "profit"
	if !t.HasColumn(valueColumn) {
		valueColumn = "revenue"
	}
	if !t.HasColumn(valueColumn) {
		return nil
	}

	barColumn := pickBarColumn(t)
	if barColumn == "" {
		return nil
	}

	groups := groupRows(t, barColumn)
	sortGroupsByValueDesc(groups, func(g *rowGroup) float64 {
		return sumColumn(t, valueColumn, g.Rows)
	})
	if len(groups) > barChartMaxBars {
		groups = groups[:barChartMaxBars]
	}
	if len(groups) < 2 {
		return nil
	}

	data := make([]NamedValue, len(groups))
	for i, g := range groups {
		data[i] = NamedValue{Name: g.Key, Value: sumColumn(t, valueColumn, g.Rows)}
	}
	return &BarChart{Column: barColumn, Data: data}
}

func pickBarColumn(t *dataset.Table) string {
	for _, c := range barColumnPrimary {
		if t.HasColumn(c) && dataset.IsBarChartCategorical(t, c) {
			return c
		}
	}
	for _, c := range barColumnFallbacks {
		if t.HasColumn(c) && dataset.IsBarChartCategorical(t, c) {
			return c
		}
	}
	for _, c := range t.Columns() {
		if dataset.IsGeographyColumn(c) || dataset.IsPaymentColumn(c) {
			continue
		}
		if dataset.IsBarChartCategorical(t, c) {
			return c
		}
	}
	return ""
}

// BuildPieChart picks a categorical column under the stricter cardinality
// window and counts occurrences per value. With more than five distinct
// values the top five are kept and the rest merge into an "Other" bucket.
// Returns nil when no suitable column exists.
func BuildPieChart(t *dataset.Table) *PieChart {
	pieColumn := pickPieColumn(t)
	if pieColumn == "" {
		return nil
	}

	groups := groupRows(t, pieColumn)
	// Counts only; empty values carry no category.
	filtered := groups[:0]
	for _, g := range groups {
		if g.Key == "" {
			continue
		}
		filtered = append(filtered, g)
	}
	groups = filtered
	sortGroupsByValueDesc(groups, func(g *rowGroup) float64 {
		return float64(len(g.Rows))
	})

	var data []NamedValue
	if len(groups) > pieMaxSegments {
		var other int
		for _, g := range groups[pieMaxSegments:] {
			other += len(g.Rows)
		}
		for _, g := range groups[:pieMaxSegments] {
			data = append(data, NamedValue{Name: g.Key, Value: float64(len(g.Rows))})
		}
		data = append(data, NamedValue{Name: "Other", Value: float64(other)})
	} else {
		for _, g := range groups {
			data = append(data, NamedValue{Name: g.Key, Value: float64(len(g.Rows))})
		}
	}

	return &PieChart{Column: pieColumn, Data: data}
}

// pickPieColumn prefers category, then campaign, then scans the remaining
// columns right to left; datasets tend to keep descriptive attributes at
// the end.
func pickPieColumn(t *dataset.Table) string {
	for _, c := range []string{"category", "campaign"} {
		if t.HasColumn(c) && dataset.IsGoodCategorical(t, c, pieMinCategories, pieMaxCategories) {
			return c
		}
	}
	columns := t.Columns()
	for i := len(columns) - 1; i >= 0; i-- {
		c := columns[i]
		if dataset.IsGeographyColumn(c) || dataset.IsPaymentColumn(c) {
			continue
		}
		if dataset.IsGoodCategorical(t, c, pieMinCategories, pieMaxCategories) {
			return c
		}
	}
	return ""
}
