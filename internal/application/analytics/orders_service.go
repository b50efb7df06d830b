package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/insightdash/backend/internal/domain/dataset"
)

const (
	ordersListMax     = 100
	ordersByStatusMax = 10
	ordersByRegionMax = 10
	topProductsMax    = 10
	channelMaxBars    = 15
)

// Fixed cyclic palettes assigned by rank.
var (
	statusColors  = []string{"#16a34a", "#2563eb", "#7c3aed", "#dc2626", "#f59e0b"}
	channelColors = []string{"#2563eb", "#3b82f6", "#60a5fa", "#93c5fd", "#bfdbfe"}
)

var statusKeywords = []string{"status", "order status", "state", "order state", "fulfillment"}

var channelKeywords = []string{"channel", "source", "sales channel", "platform", "payment_method", "payment method"}

// ordersRegionPriority differs from the map chart: region first, it is the
// level the progress bars are designed for.
var ordersRegionPriority = []string{"region", "state", "country"}

var productColumnPriority = []string{
	"product name", "product_name", "productname",
	"category", "product id", "product_id",
}

// OrdersByStatus counts rows per status-like value for a donut chart,
// assigning the five-color palette cyclically by rank. Falls back to the
// category column when no status-like column exists. Returns nil when
// nothing counts.
func OrdersByStatus(t *dataset.Table) []StatusCount {
	column, ok := dataset.FindColumnByKeywords(t, statusKeywords)
	if !ok {
		if !t.HasColumn("category") {
			return nil
		}
		column = "category"
	}

	groups := groupRows(t, column)
	if len(groups) == 0 {
		return nil
	}
	sortGroupsByValueDesc(groups, func(g *rowGroup) float64 {
		return float64(len(g.Rows))
	})

	var out []StatusCount
	for i, g := range groups {
		// Empty values consume a palette slot but are not shown.
		if g.Key == "" {
			continue
		}
		out = append(out, StatusCount{
			Name:  g.Key,
			Value: int64(len(g.Rows)),
			Color: statusColors[i%len(statusColors)],
		})
	}
	if len(out) > ordersByStatusMax {
		out = out[:ordersByStatusMax]
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// OrdersByChannel aggregates order volume per channel/source value for a
// horizontal bar chart, keeping the 15 largest. Sums the orders column
// when present, else counts rows.
func OrdersByChannel(t *dataset.Table) []ChannelCount {
	column, ok := dataset.FindColumnByKeywords(t, channelKeywords)
	if !ok {
		return nil
	}

	groups := groupRows(t, column)
	if len(groups) == 0 {
		return nil
	}
	value := groupOrdersValue(t)
	sortGroupsByValueDesc(groups, value)
	if len(groups) > channelMaxBars {
		groups = groups[:channelMaxBars]
	}

	out := make([]ChannelCount, len(groups))
	for i, g := range groups {
		out[i] = ChannelCount{
			Name:   g.Key,
			Orders: int64(value(g)),
			Fill:   channelColors[i%len(channelColors)],
		}
	}
	return out
}

// OrdersByRegion aggregates order volume per geography value, descending,
// top 10.
func OrdersByRegion(t *dataset.Table) []RegionCount {
	var column string
	for _, c := range ordersRegionPriority {
		if t.HasColumn(c) {
			column = c
			break
		}
	}
	if column == "" {
		return nil
	}

	groups := groupRows(t, column)
	if len(groups) == 0 {
		return nil
	}
	value := groupOrdersValue(t)
	sortGroupsByValueDesc(groups, value)
	if len(groups) > ordersByRegionMax {
		groups = groups[:ordersByRegionMax]
	}

	out := make([]RegionCount, len(groups))
	for i, g := range groups {
		out[i] = RegionCount{Name: g.Key, Orders: int64(value(g))}
	}
	return out
}

// TopProductsByOrders ranks products by order volume with revenue and the
// average quantity per order row, rounded to one decimal.
func TopProductsByOrders(t *dataset.Table) []ProductStat {
	var column string
	for _, c := range productColumnPriority {
		if t.HasColumn(c) {
			column = c
			break
		}
	}
	if column == "" {
		return nil
	}

	groups := groupRows(t, column)
	if len(groups) == 0 {
		return nil
	}
	orders := groupOrdersValue(t)
	hasRevenue := t.HasColumn("revenue")

	stats := make([]ProductStat, len(groups))
	for i, g := range groups {
		ordersVal := int64(orders(g))
		var revenue float64
		if hasRevenue {
			revenue = sumColumn(t, "revenue", g.Rows)
		}
		var avgQty float64
		if len(g.Rows) > 0 {
			avgQty = math.Round(float64(ordersVal)/float64(len(g.Rows))*10) / 10
		}
		stats[i] = ProductStat{
			Product: g.Key,
			Orders:  ordersVal,
			Revenue: revenue,
			AvgQty:  avgQty,
		}
	}
	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].Orders > stats[b].Orders
	})
	if len(stats) > topProductsMax {
		stats = stats[:topProductsMax]
	}
	return stats
}

// BuildOrdersList returns up to 100 raw rows for tabular display. Rows are
// sorted by the resolved date column descending when one exists (rows with
// unparseable dates are dropped), else by profit descending (rows with
// unparseable profit dropped), else kept in original order. Cells are
// converted to JSON-safe scalars.
func BuildOrdersList(t *dataset.Table) *OrdersList {
	columns := t.Columns()

	var order []int
	if dateColumn, ok := dataset.FindDateColumn(t); ok {
		type datedRow struct {
			idx int
			ts  time.Time
		}
		var dated []datedRow
		for i := 0; i < t.NumRows(); i++ {
			if ts, ok := parseDate(t.Cell(i, dateColumn).String()); ok {
				dated = append(dated, datedRow{idx: i, ts: ts})
			}
		}
		sort.SliceStable(dated, func(a, b int) bool {
			return dated[a].ts.After(dated[b].ts)
		})
		for _, r := range dated {
			order = append(order, r.idx)
		}
	} else if t.HasColumn("profit") {
		type profitRow struct {
			idx    int
			profit float64
		}
		var rows []profitRow
		for i := 0; i < t.NumRows(); i++ {
			if v, ok := t.Cell(i, "profit").Float(); ok {
				rows = append(rows, profitRow{idx: i, profit: v})
			}
		}
		sort.SliceStable(rows, func(a, b int) bool {
			return rows[a].profit > rows[b].profit
		})
		for _, r := range rows {
			order = append(order, r.idx)
		}
	} else {
		for i := 0; i < t.NumRows(); i++ {
			order = append(order, i)
		}
	}

	if len(order) > ordersListMax {
		order = order[:ordersListMax]
	}

	rows := make([]map[string]any, len(order))
	for i, idx := range order {
		rows[i] = t.RowMap(idx)
	}
	return &OrdersList{Rows: rows, Columns: columns}
}

// groupOrdersValue returns the per-group order volume function: the sum of
// the orders column when present, else the row count.
func groupOrdersValue(t *dataset.Table) func(*rowGroup) float64 {
	if t.HasColumn("orders") {
		return func(g *rowGroup) float64 { return sumColumn(t, "orders", g.Rows) }
	}
	return func(g *rowGroup) float64 { return float64(len(g.Rows)) }
}
