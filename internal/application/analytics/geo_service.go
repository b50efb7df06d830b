package analytics

import (
	"github.com/insightdash/backend/internal/domain/dataset"
	"github.com/insightdash/backend/internal/domain/geo"
)

const mapMaxPoints = 15

// geoColumnPriority prefers state as the most granular level.
var geoColumnPriority = []string{"state", "region", "country"}

// BuildMapChart sums revenue (or profit) per geography value and resolves
// each place through the gazetteer. Places that do not resolve are dropped
// rather than given placeholder coordinates. The largest 15 points are
// kept, descending by value. Returns nil when no geography column or
// measure exists, or nothing resolves.
func BuildMapChart(t *dataset.Table) *MapChart {
	var geoColumn string
	for _, c := range geoColumnPriority {
		if t.HasColumn(c) {
			geoColumn = c
			break
		}
	}
	if geoColumn == "" {
		return nil
	}

	valueColumn := "revenue"
	if !t.HasColumn(valueColumn) {
		valueColumn = "profit"
	}
	if !t.HasColumn(valueColumn) {
		return nil
	}

	groups := groupRows(t, geoColumn)
	var points []GeoPoint
	for _, g := range groups {
		if g.Key == "" {
			continue
		}
		coords, ok := geo.CoordsForPlace(g.Key)
		if !ok {
			continue
		}
		points = append(points, GeoPoint{
			Name:        g.Key,
			Value:       sumColumn(t, valueColumn, g.Rows),
			Coordinates: [2]float64(coords),
		})
	}
	if len(points) == 0 {
		return nil
	}

	sortPointsByValueDesc(points)
	if len(points) > mapMaxPoints {
		points = points[:mapMaxPoints]
	}
	return &MapChart{Column: geoColumn, Data: points}
}
