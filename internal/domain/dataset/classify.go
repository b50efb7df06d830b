package dataset

import "strings"

// Column classification heuristics. Each chart aggregator calls these
// independently with its own thresholds; there is no shared role cache,
// because different consumers apply different definitions to the same
// column (the pie picker has a cardinality ceiling the bar picker lacks).

// dateColumnPriority is checked for exact matches before falling back to a
// substring scan.
var dateColumnPriority = []string{
	"date",
	"order date",
	"order_date",
	"orderdate",
	"ship date",
	"ship_date",
	"transaction date",
}

// reservedMeasureColumns are never treated as categorical candidates.
var reservedMeasureColumns = map[string]struct{}{
	"profit":     {},
	"revenue":    {},
	"orders":     {},
	"expense":    {},
	"order date": {},
	"date":       {},
}

var geographyKeywords = []string{
	"region", "country", "state", "city", "postal", "address",
	"location", "latitude", "longitude", "lat", "lng",
}

var paymentKeywords = []string{
	"payment", "method", "pay_type", "pay type", "billing", "card",
}

// minNumericRatio is the share of non-empty values that must parse as
// numbers for a text column to count as numeric.
const minNumericRatio = 0.8

// FindDateColumn returns the table's date axis column: the first canonical
// date name present, else the first column whose name contains "date".
func FindDateColumn(t *Table) (string, bool) {
	for _, name := range dateColumnPriority {
		if t.HasColumn(name) {
			return name, true
		}
	}
	for _, name := range t.Columns() {
		if strings.Contains(name, "date") {
			return name, true
		}
	}
	return "", false
}

// FindColumnByKeywords returns the first column whose name contains any of
// the keywords, checked in keyword order.
func FindColumnByKeywords(t *Table, keywords []string) (string, bool) {
	columns := t.Columns()
	for _, kw := range keywords {
		for _, name := range columns {
			if strings.Contains(name, kw) {
				return name, true
			}
		}
	}
	return "", false
}

// IsNumericColumn reports whether a column is numeric: either every cell is
// already typed as a number, or at least 80% of its non-empty trimmed
// values parse as numbers. A column with no non-empty values counts as
// numeric, which keeps it out of categorical candidacy.
func IsNumericColumn(t *Table, column string) bool {
	cells, ok := t.Column(column)
	if !ok {
		return false
	}
	var total, numeric int
	for _, c := range cells {
		if c.IsMissing() {
			continue
		}
		if strings.TrimSpace(c.String()) == "" {
			continue
		}
		total++
		if _, ok := c.Float(); ok {
			numeric++
		}
	}
	if total == 0 {
		return true
	}
	return float64(numeric)/float64(total) >= minNumericRatio
}

// IsGeographyColumn reports whether a column name looks geography-related.
func IsGeographyColumn(name string) bool {
	return containsAnyKeyword(name, geographyKeywords)
}

// IsPaymentColumn reports whether a column name looks payment-related.
func IsPaymentColumn(name string) bool {
	return containsAnyKeyword(name, paymentKeywords)
}

func containsAnyKeyword(name string, keywords []string) bool {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, kw := range keywords {
		if strings.Contains(key, kw) {
			return true
		}
	}
	return false
}

// DistinctCount returns the number of distinct non-empty trimmed values in
// a column. Missing cells are ignored.
func DistinctCount(t *Table, column string) int {
	cells, ok := t.Column(column)
	if !ok {
		return 0
	}
	seen := make(map[string]struct{})
	for _, c := range cells {
		if c.IsMissing() {
			continue
		}
		v := strings.TrimSpace(c.String())
		if v == "" {
			continue
		}
		seen[v] = struct{}{}
	}
	return len(seen)
}

// IsBarChartCategorical reports whether a column can drive a bar chart:
// not a reserved measure, not date-like, not numeric, and holding at least
// two distinct non-empty values.
func IsBarChartCategorical(t *Table, column string) bool {
	if _, reserved := reservedMeasureColumns[column]; reserved {
		return false
	}
	if strings.Contains(strings.ToLower(column), "date") {
		return false
	}
	if IsNumericColumn(t, column) {
		return false
	}
	return DistinctCount(t, column) >= 2
}

// IsGoodCategorical applies the bar-chart checks plus a cardinality window,
// rejecting near-unique identifier columns that would make an unreadable
// pie chart.
func IsGoodCategorical(t *Table, column string, minCategories, maxCategories int) bool {
	if _, reserved := reservedMeasureColumns[column]; reserved {
		return false
	}
	if strings.Contains(strings.ToLower(column), "date") {
		return false
	}
	if IsNumericColumn(t, column) {
		return false
	}
	n := DistinctCount(t, column)
	return n >= minCategories && n <= maxCategories
}
