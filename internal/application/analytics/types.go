// Package analytics turns an uploaded dataset into dashboard components:
// KPIs, chart series, categorical and geographic aggregations, and
// orders-specific views. Every component classifies columns on its own and
// is callable standalone; the Pipeline runs all of them and merges a
// best-effort payload.
package analytics

import "strings"

// NamedValue is one bar or pie bucket.
type NamedValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// GeoPoint is one aggregated map marker. Coordinates are [longitude,
// latitude] and always come from the gazetteer.
type GeoPoint struct {
	Name        string     `json:"name"`
	Value       float64    `json:"value"`
	Coordinates [2]float64 `json:"coordinates"`
}

// TrendPoint is one day of the orders trend.
type TrendPoint struct {
	Date   string `json:"date"`
	Orders int64  `json:"orders"`
}

// StatusCount is one slice of the orders-by-status donut.
type StatusCount struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
	Color string `json:"color"`
}

// ChannelCount is one bar of the orders-by-channel chart.
type ChannelCount struct {
	Name   string `json:"name"`
	Orders int64  `json:"orders"`
	Fill   string `json:"fill"`
}

// RegionCount is one row of the orders-by-region breakdown.
type RegionCount struct {
	Name   string `json:"name"`
	Orders int64  `json:"orders"`
}

// ProductStat is one row of the top-products table.
type ProductStat struct {
	Product string  `json:"product"`
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
	AvgQty  float64 `json:"avgQty"`
}

// KPIs are the headline sums of a dataset. CustomersSum is the row count;
// one row is assumed to be one customer/transaction.
type KPIs struct {
	ProfitSum    float64 `json:"profit_sum"`
	RevenueSum   float64 `json:"revenue_sum"`
	OrdersSum    float64 `json:"orders_sum"`
	ExpenseSum   float64 `json:"expense_sum"`
	CustomersSum int     `json:"customers_sum"`
}

// LineChart holds the raw per-row revenue/profit series in original row
// order. Entries that failed numeric coercion are nil. Orders is an
// optional monthly sparkline.
type LineChart struct {
	Revenue []*float64
	Profit  []*float64
	Dates   []string
	Orders  []float64
}

// BarChart is the categorical bar chart with its chosen column.
type BarChart struct {
	Column string
	Data   []NamedValue
}

// PieChart is the categorical breakdown with its chosen column.
type PieChart struct {
	Column string
	Data   []NamedValue
}

// MapChart is the geographic aggregation with its chosen column.
type MapChart struct {
	Column string
	Data   []GeoPoint
}

// OrdersList is the raw order rows for tabular display.
type OrdersList struct {
	Rows    []map[string]any
	Columns []string
}

// ProfitTable is the top-rows-by-profit table.
type ProfitTable struct {
	Rows    []map[string]any
	Columns []string
}

// Payload is the merged dashboard result. Optional keys are omitted when
// the corresponding component could not produce a result for the dataset;
// absence is an expected state, not an error.
type Payload struct {
	Message      string  `json:"message"`
	ProfitSum    float64 `json:"profit_sum"`
	RevenueSum   float64 `json:"revenue_sum"`
	OrdersSum    float64 `json:"orders_sum"`
	ExpenseSum   float64 `json:"expense_sum"`
	CustomersSum int     `json:"customers_sum"`

	RevenueData []*float64 `json:"revenue_data,omitempty"`
	ProfitData  []*float64 `json:"profit_data,omitempty"`
	DateData    []string   `json:"date_data,omitempty"`
	OrdersData  []float64  `json:"orders_data,omitempty"`

	Top5Profit  []map[string]any `json:"top5_profit,omitempty"`
	Top5Columns []string         `json:"top5_columns,omitempty"`

	OrdersList    []map[string]any `json:"orders_list,omitempty"`
	OrdersColumns []string         `json:"orders_columns,omitempty"`

	OrdersTrend         []TrendPoint   `json:"orders_trend,omitempty"`
	OrdersByStatus      []StatusCount  `json:"orders_by_status,omitempty"`
	OrdersByChannel     []ChannelCount `json:"orders_by_channel,omitempty"`
	OrdersByRegion      []RegionCount  `json:"orders_by_region,omitempty"`
	TopProductsByOrders []ProductStat  `json:"top_products_by_orders,omitempty"`

	PieColumn string       `json:"pie_column,omitempty"`
	PieData   []NamedValue `json:"pie_data,omitempty"`
	BarColumn string       `json:"bar_column,omitempty"`
	BarData   []NamedValue `json:"bar_data,omitempty"`
	MapColumn string       `json:"map_column,omitempty"`
	MapData   []GeoPoint   `json:"map_data,omitempty"`
}

// ChartCount reports how many optional components produced data. The KPI
// sums are always present and do not count.
func (p *Payload) ChartCount() int {
	count := 0
	if len(p.RevenueData) > 0 || len(p.ProfitData) > 0 {
		count++
	}
	if len(p.OrdersData) > 0 {
		count++
	}
	if len(p.Top5Profit) > 0 {
		count++
	}
	if len(p.OrdersList) > 0 {
		count++
	}
	if len(p.OrdersTrend) > 0 {
		count++
	}
	if len(p.OrdersByStatus) > 0 {
		count++
	}
	if len(p.OrdersByChannel) > 0 {
		count++
	}
	if len(p.OrdersByRegion) > 0 {
		count++
	}
	if len(p.TopProductsByOrders) > 0 {
		count++
	}
	if len(p.PieData) > 0 {
		count++
	}
	if len(p.BarData) > 0 {
		count++
	}
	if len(p.MapData) > 0 {
		count++
	}
	return count
}

// MissingColumnsError reports the required columns absent from a dataset.
// It is the only component failure surfaced to callers of the pipeline.
type MissingColumnsError struct {
	Columns []string
}

// Error implements the error interface.
func (e *MissingColumnsError) Error() string {
	return "missing columns: " + strings.Join(e.Columns, ", ")
}
