package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costview/aws-cost-dashboard-go/internal/domain/entity"
)

func TestBuildDocument(t *testing.T) {
	uc := newTestUseCase(&fakeBillingRepo{}, newFakeRecordRepo(), &fakeSink{}, nil, 30)

	current := entity.NewCategoryTotals()
	current[entity.CategoryCompute] = 12.34567
	current[entity.CategoryStorage] = 5.0

	previous := entity.NewCategoryTotals()
	previous[entity.CategoryOther] = 3.999

	trend := []entity.TrendPoint{
		{Date: "2024-01-14", Amount: 1.5},
		{Date: "2024-01-15", Amount: 2.25},
	}

	doc := uc.BuildDocument(current, previous, trend)

	assert.InDelta(t, 12.35, doc.Categories[entity.CategoryCompute], 1e-9)
	assert.InDelta(t, 5.0, doc.Categories[entity.CategoryStorage], 1e-9)
	assert.InDelta(t, 4.0, doc.CategoriesPrevious[entity.CategoryOther], 1e-9)

	// Total is the sum of the current period's values, rounded.
	assert.InDelta(t, 17.35, doc.TotalSpend, 1e-9)

	// Trend passes through unchanged.
	require.Len(t, doc.Trend, 2)
	assert.Equal(t, trend, doc.Trend)

	// Both totals maps stay dense.
	assert.Len(t, doc.Categories, len(entity.Categories))
	assert.Len(t, doc.CategoriesPrevious, len(entity.Categories))
}

func TestRoundAmount(t *testing.T) {
	tests := []struct {
		in       float64
		expected float64
	}{
		{12.34567, 12.35},
		{10.004, 10.0},
		{0.005, 0.01},
		{0, 0},
		{199.999, 200.0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.expected, roundAmount(tt.in), 1e-9)
	}
}
