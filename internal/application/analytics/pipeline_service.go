package analytics

import (
	"go.uber.org/zap"

	"github.com/insightdash/backend/internal/domain/dataset"
)

// Pipeline runs every dashboard component against one dataset and merges
// the results. The KPI aggregator is required; every other component is
// best-effort, and a failure (or panic) only omits its payload keys.
type Pipeline struct {
	log *zap.Logger
}

// NewPipeline creates a Pipeline that reports swallowed component failures
// through the given logger.
func NewPipeline(log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{log: log}
}

// BuildPayload computes the full dashboard payload for a dataset. Only the
// KPI aggregator can fail the request; its MissingColumnsError propagates.
// Components run in a fixed sequence, but the sequence does not affect the
// payload's content.
func (p *Pipeline) BuildPayload(t *dataset.Table) (*Payload, error) {
	kpis, err := CalculateKPIs(t)
	if err != nil {
		return nil, err
	}

	payload := &Payload{
		Message:      "File processed successfully",
		ProfitSum:    kpis.ProfitSum,
		RevenueSum:   kpis.RevenueSum,
		OrdersSum:    kpis.OrdersSum,
		ExpenseSum:   kpis.ExpenseSum,
		CustomersSum: kpis.CustomersSum,
	}

	p.run("linechart", func() error {
		chart, err := BuildLineChart(t)
		if err != nil {
			return err
		}
		payload.RevenueData = chart.Revenue
		payload.ProfitData = chart.Profit
		payload.DateData = chart.Dates
		payload.OrdersData = chart.Orders
		return nil
	})

	// Sparkline fallbacks: the line chart's embedded orders sparkline
	// first, then orders directly, then whichever of revenue/profit is
	// available.
	if payload.OrdersData == nil && t.HasColumn("orders") {
		p.run("orders_sparkline", func() error {
			if spark, ok := AggregateSparkline(t, "orders", ""); ok {
				payload.OrdersData = spark
			}
			return nil
		})
	}
	if payload.OrdersData == nil {
		p.run("value_sparkline", func() error {
			for _, c := range []string{"revenue", "profit"} {
				if !t.HasColumn(c) {
					continue
				}
				if spark, ok := AggregateSparkline(t, c, ""); ok {
					payload.OrdersData = spark
				}
				break
			}
			return nil
		})
	}

	p.run("profit_table", func() error {
		table, err := BuildProfitTable(t)
		if err != nil {
			return err
		}
		payload.Top5Profit = table.Rows
		payload.Top5Columns = table.Columns
		return nil
	})

	p.run("orders_list", func() error {
		list := BuildOrdersList(t)
		payload.OrdersList = list.Rows
		payload.OrdersColumns = list.Columns
		return nil
	})

	p.run("orders_trend", func() error {
		payload.OrdersTrend = OrdersTrendDaily(t)
		return nil
	})

	p.run("orders_by_status", func() error {
		payload.OrdersByStatus = OrdersByStatus(t)
		return nil
	})

	p.run("orders_by_channel", func() error {
		payload.OrdersByChannel = OrdersByChannel(t)
		return nil
	})

	p.run("orders_by_region", func() error {
		payload.OrdersByRegion = OrdersByRegion(t)
		return nil
	})

	p.run("top_products", func() error {
		payload.TopProductsByOrders = TopProductsByOrders(t)
		return nil
	})

	p.run("pie_chart", func() error {
		if pie := BuildPieChart(t); pie != nil {
			payload.PieColumn = pie.Column
			payload.PieData = pie.Data
		}
		return nil
	})

	p.run("bar_chart", func() error {
		if bar := BuildBarChart(t); bar != nil {
			payload.BarColumn = bar.Column
			payload.BarData = bar.Data
		}
		return nil
	})

	p.run("map_chart", func() error {
		if m := BuildMapChart(t); m != nil {
			payload.MapColumn = m.Column
			payload.MapData = m.Data
		}
		return nil
	})

	return payload, nil
}

// run executes one best-effort component, converting errors and panics into
// omitted payload keys.
func (p *Pipeline) run(component string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Warn("dashboard component panicked",
				zap.String("component", component),
				zap.Any("panic", r),
			)
		}
	}()
	if err := fn(); err != nil {
		p.log.Warn("dashboard component skipped",
			zap.String("component", component),
			zap.Error(err),
		)
	}
}
