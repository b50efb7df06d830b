package analytics

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/insightdash/backend/internal/domain/dataset"
)

// kpiColumns are required for any dashboard; their absence fails the whole
// upload.
var kpiColumns = []string{"profit", "revenue", "orders", "expense"}

// CalculateKPIs sums the four measure columns and counts rows. Values that
// do not coerce to numbers are excluded from the sums. Fails with a
// MissingColumnsError naming the absent subset when any required column is
// missing.
func CalculateKPIs(t *dataset.Table) (*KPIs, error) {
	if err := requireColumns(t, kpiColumns...); err != nil {
		return nil, err
	}

	return &KPIs{
		ProfitSum:    sumMeasure(t, "profit"),
		RevenueSum:   sumMeasure(t, "revenue"),
		OrdersSum:    sumMeasure(t, "orders"),
		ExpenseSum:   sumMeasure(t, "expense"),
		CustomersSum: t.NumRows(),
	}, nil
}

// sumMeasure accumulates a whole column with decimal arithmetic so large
// uploads do not accumulate float drift.
func sumMeasure(t *dataset.Table, column string) float64 {
	cells, ok := t.Column(column)
	if !ok {
		return 0
	}
	sum := decimal.Zero
	for _, c := range cells {
		switch c.Kind() {
		case dataset.KindNumber:
			v, _ := c.Float()
			sum = sum.Add(decimal.NewFromFloat(v))
		case dataset.KindText:
			s := strings.TrimSpace(c.String())
			if s == "" {
				continue
			}
			if d, err := decimal.NewFromString(s); err == nil {
				sum = sum.Add(d)
			}
		}
	}
	f, _ := sum.Float64()
	return f
}
