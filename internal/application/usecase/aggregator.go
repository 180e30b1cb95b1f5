package usecase

import (
	"github.com/costview/aws-cost-dashboard-go/internal/domain/entity"
)

// AggregatePeriod folds raw billing line items into dense per-category totals
// and emits the per-service records to persist for targetDate. Pure: no
// persistence happens here.
func (uc *RefreshUseCase) AggregatePeriod(items []entity.ServiceCost, targetDate string) (entity.CategoryTotals, []entity.CostRecord) {
	totals := entity.NewCategoryTotals()
	records := make([]entity.CostRecord, 0, len(items))

	for _, item := range items {
		category := uc.categorizer.Categorize(item.ServiceName)
		totals[category] += item.Amount
		records = append(records, entity.CostRecord{
			RecordDate:      targetDate,
			ServiceCategory: category,
			ServiceName:     item.ServiceName,
			Amount:          item.Amount,
		})
	}

	return totals, records
}
