package usecase

import (
	"context"
	"time"

	"github.com/costview/aws-cost-dashboard-go/internal/domain/entity"
)

// ReadRange re-aggregates persisted records between start and end (inclusive)
// into dense per-category totals, reading the category written at ingest
// time. A day whose query fails is logged and contributes nothing; the
// operation never aborts because of one day.
func (uc *RefreshUseCase) ReadRange(ctx context.Context, start, end time.Time) entity.CategoryTotals {
	totals := entity.NewCategoryTotals()

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		dateStr := day.Format(entity.DateLayout)
		records, err := uc.recordRepo.QueryByDate(ctx, dateStr)
		if err != nil {
			uc.log.Warnw("history query failed, day skipped", "date", dateStr, "error", err)
			continue
		}
		for _, record := range records {
			totals[record.ServiceCategory] += record.Amount
		}
	}

	return totals
}

// ReadTrend returns one point per day for the windowSize days immediately
// preceding windowEnd, oldest first. The sequence is always contiguous and
// exactly windowSize long: a day with no records or a failed query yields a
// zero amount instead of being omitted. Amounts are rounded to two decimals.
func (uc *RefreshUseCase) ReadTrend(ctx context.Context, windowEnd time.Time, windowSize int) []entity.TrendPoint {
	trend := make([]entity.TrendPoint, 0, windowSize)

	for i := windowSize; i > 0; i-- {
		day := windowEnd.AddDate(0, 0, -i)
		dateStr := day.Format(entity.DateLayout)

		var dayTotal float64
		records, err := uc.recordRepo.QueryByDate(ctx, dateStr)
		if err != nil {
			uc.log.Warnw("trend query failed, day zero-filled", "date", dateStr, "error", err)
		} else {
			for _, record := range records {
				dayTotal += record.Amount
			}
		}

		trend = append(trend, entity.TrendPoint{
			Date:   dateStr,
			Amount: roundAmount(dayTotal),
		})
	}

	return trend
}
