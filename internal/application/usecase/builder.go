package usecase

import (
	"math"

	"github.com/costview/aws-cost-dashboard-go/internal/domain/entity"
)

// roundAmount rounds a monetary amount to two decimal places.
func roundAmount(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundTotals(totals entity.CategoryTotals) entity.CategoryTotals {
	rounded := make(entity.CategoryTotals, len(totals))
	for category, amount := range totals {
		rounded[category] = roundAmount(amount)
	}
	return rounded
}

// BuildDocument combines the current-period totals, the previous-period
// totals and the trend series into the final dashboard document. Total spend
// is the sum of the current period's five category values. Every numeric
// value in the output is rounded to two decimal places; previous and trend
// are passed through after their own rounding.
func (uc *RefreshUseCase) BuildDocument(current, previous entity.CategoryTotals, trend []entity.TrendPoint) entity.DashboardDocument {
	return entity.DashboardDocument{
		TotalSpend:         roundAmount(current.Sum()),
		Categories:         roundTotals(current),
		CategoriesPrevious: roundTotals(previous),
		Trend:              trend,
	}
}
