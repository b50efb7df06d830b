package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/insightdash/backend/internal/domain/dataset"
)

// requireColumns returns a MissingColumnsError naming every absent column,
// or nil when all are present.
func requireColumns(t *dataset.Table, required ...string) error {
	if missing := t.MissingColumns(required); len(missing) > 0 {
		return &MissingColumnsError{Columns: missing}
	}
	return nil
}

// parseDate parses a date string permissively. Ambiguous numeric forms are
// disambiguated day-first (01/02/2024 is February 1st).
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	ts, err := dateparse.ParseAny(s, dateparse.PreferMonthFirst(false))
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// rowGroup is one bucket of a categorical group-by: the trimmed key and the
// indices of its rows, in first-seen order.
type rowGroup struct {
	Key  string
	Rows []int
}

// groupRows buckets row indices by the trimmed string value of keyColumn.
// Missing cells and literal "nan" keys are dropped; empty keys are kept.
// Buckets appear in first-seen order so later sorts tie-break
// deterministically.
func groupRows(t *dataset.Table, keyColumn string) []*rowGroup {
	var groups []*rowGroup
	index := make(map[string]*rowGroup)
	for i := 0; i < t.NumRows(); i++ {
		cell := t.Cell(i, keyColumn)
		if cell.IsMissing() {
			continue
		}
		key := strings.TrimSpace(cell.String())
		if strings.EqualFold(key, "nan") {
			continue
		}
		g, ok := index[key]
		if !ok {
			g = &rowGroup{Key: key}
			index[key] = g
			groups = append(groups, g)
		}
		g.Rows = append(g.Rows, i)
	}
	return groups
}

// sumColumn adds the coercible numeric values of valueColumn over the given
// rows. Cells that fail coercion are excluded from the sum.
func sumColumn(t *dataset.Table, valueColumn string, rows []int) float64 {
	var sum float64
	for _, i := range rows {
		if v, ok := t.Cell(i, valueColumn).Float(); ok {
			sum += v
		}
	}
	return sum
}

// sortGroupsByValueDesc stably sorts groups by a per-group value, largest
// first. First-seen order breaks ties. The value function is evaluated
// once per group, not once per comparison.
func sortGroupsByValueDesc(groups []*rowGroup, value func(*rowGroup) float64) {
	values := make(map[*rowGroup]float64, len(groups))
	for _, g := range groups {
		values[g] = value(g)
	}
	sort.SliceStable(groups, func(a, b int) bool {
		return values[groups[a]] > values[groups[b]]
	})
}

// sortPointsByValueDesc stably sorts map points by value, largest first.
func sortPointsByValueDesc(points []GeoPoint) {
	sort.SliceStable(points, func(a, b int) bool {
		return points[a].Value > points[b].Value
	})
}
