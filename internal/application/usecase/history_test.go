package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costview/aws-cost-dashboard-go/internal/domain/entity"
)

func TestReadRange(t *testing.T) {
	records := newFakeRecordRepo()
	records.seed("2024-01-10", entity.CategoryCompute, "Amazon EC2", 3.0)
	records.seed("2024-01-10", entity.CategoryStorage, "Amazon S3", 1.5)
	records.seed("2024-01-11", entity.CategoryCompute, "Amazon EC2", 2.0)
	uc := newTestUseCase(&fakeBillingRepo{}, records, &fakeSink{}, nil, 30)

	totals := uc.ReadRange(context.Background(), mustDate("2024-01-10"), mustDate("2024-01-11"))

	assert.InDelta(t, 5.0, totals[entity.CategoryCompute], 1e-9)
	assert.InDelta(t, 1.5, totals[entity.CategoryStorage], 1e-9)
	assert.Len(t, totals, len(entity.Categories))
}

func TestReadRangeFailedDayContributesNothing(t *testing.T) {
	records := newFakeRecordRepo()
	records.seed("2024-01-10", entity.CategoryCompute, "Amazon EC2", 3.0)
	records.seed("2024-01-11", entity.CategoryCompute, "Amazon EC2", 2.0)
	records.failDates["2024-01-10"] = true
	uc := newTestUseCase(&fakeBillingRepo{}, records, &fakeSink{}, nil, 30)

	totals := uc.ReadRange(context.Background(), mustDate("2024-01-10"), mustDate("2024-01-11"))

	assert.InDelta(t, 2.0, totals[entity.CategoryCompute], 1e-9)
}

func TestReadTrend(t *testing.T) {
	records := newFakeRecordRepo()
	records.seed("2024-01-13", entity.CategoryCompute, "Amazon EC2", 1.005)
	records.seed("2024-01-14", entity.CategoryCompute, "Amazon EC2", 2.0)
	records.seed("2024-01-14", entity.CategoryOther, "Mystery", 0.5)
	uc := newTestUseCase(&fakeBillingRepo{}, records, &fakeSink{}, nil, 30)

	// Window ends at "today": the 5 days 2024-01-10 .. 2024-01-14.
	trend := uc.ReadTrend(context.Background(), mustDate("2024-01-15"), 5)

	require.Len(t, trend, 5)
	assert.Equal(t, "2024-01-10", trend[0].Date)
	assert.Equal(t, "2024-01-14", trend[4].Date)

	// Contiguous, oldest first, empty days zero-filled.
	for i := 1; i < len(trend); i++ {
		assert.Equal(t, mustDate(trend[i-1].Date).AddDate(0, 0, 1).Format(entity.DateLayout), trend[i].Date)
	}
	assert.Zero(t, trend[0].Amount)
	assert.Zero(t, trend[1].Amount)

	// Day totals are rounded to two decimals.
	assert.InDelta(t, 1.0, trend[3].Amount, 1e-9)
	assert.InDelta(t, 2.5, trend[4].Amount, 1e-9)
}

func TestReadTrendFailedDayYieldsZeroPoint(t *testing.T) {
	records := newFakeRecordRepo()
	records.seed("2024-01-10", entity.CategoryCompute, "Amazon EC2", 9.0)
	records.failDates["2024-01-10"] = true
	uc := newTestUseCase(&fakeBillingRepo{}, records, &fakeSink{}, nil, 30)

	trend := uc.ReadTrend(context.Background(), mustDate("2024-01-15"), 7)

	require.Len(t, trend, 7)
	var found bool
	for _, point := range trend {
		if point.Date == "2024-01-10" {
			found = true
			assert.Zero(t, point.Amount)
		}
	}
	assert.True(t, found, "failed day must still appear in the window")
}
