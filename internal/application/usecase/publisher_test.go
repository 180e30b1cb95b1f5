package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costview/aws-cost-dashboard-go/internal/domain/entity"
)

func testRecords() []entity.CostRecord {
	return []entity.CostRecord{
		{RecordDate: "2024-01-15", ServiceCategory: entity.CategoryCompute, ServiceName: "Amazon EC2", Amount: 10.0},
		{RecordDate: "2024-01-15", ServiceCategory: entity.CategoryStorage, ServiceName: "Amazon S3", Amount: 5.0},
	}
}

func testDocument() entity.DashboardDocument {
	return entity.DashboardDocument{
		TotalSpend:         15.0,
		Categories:         entity.NewCategoryTotals(),
		CategoriesPrevious: entity.NewCategoryTotals(),
	}
}

func TestPublish(t *testing.T) {
	records := newFakeRecordRepo()
	primary := &fakeSink{location: "cost_data.json"}
	mirror := &fakeSink{location: "s3://dashboard/data/cost_data.json"}
	uc := newTestUseCase(&fakeBillingRepo{}, records, primary, mirror, 30)

	result := uc.Publish(context.Background(), testRecords(), testDocument(), "2024-01-15")

	assert.Equal(t, entity.RunStatusSuccess, result.Status)
	assert.Equal(t, "2024-01-15", result.Date)
	assert.InDelta(t, 15.0, result.TotalSpend, 1e-9)
	assert.Len(t, records.store["2024-01-15"], 2)
	assert.Len(t, primary.writes, 1)
	assert.Len(t, mirror.writes, 1)
}

func TestPublishRecordsIsIdempotent(t *testing.T) {
	records := newFakeRecordRepo()
	primary := &fakeSink{location: "cost_data.json"}
	uc := newTestUseCase(&fakeBillingRepo{}, records, primary, nil, 30)

	uc.Publish(context.Background(), testRecords(), testDocument(), "2024-01-15")
	first := len(records.store["2024-01-15"])

	uc.Publish(context.Background(), testRecords(), testDocument(), "2024-01-15")

	assert.Equal(t, first, len(records.store["2024-01-15"]), "re-running must overwrite, not append")
}

func TestPublishSkipsFailedRecordAndContinues(t *testing.T) {
	records := newFakeRecordRepo()
	records.failPuts["Amazon EC2"] = true
	primary := &fakeSink{location: "cost_data.json"}
	uc := newTestUseCase(&fakeBillingRepo{}, records, primary, nil, 30)

	result := uc.Publish(context.Background(), testRecords(), testDocument(), "2024-01-15")

	assert.Equal(t, entity.RunStatusSuccess, result.Status)
	assert.Len(t, records.store["2024-01-15"], 1)
	_, ok := records.store["2024-01-15"]["Amazon S3"]
	assert.True(t, ok, "records after the failed one must still be written")
}

func TestPublishMirrorFailureDoesNotFailRun(t *testing.T) {
	records := newFakeRecordRepo()
	primary := &fakeSink{location: "cost_data.json"}
	mirror := &fakeSink{err: errors.New("access denied")}
	uc := newTestUseCase(&fakeBillingRepo{}, records, primary, mirror, 30)

	result := uc.Publish(context.Background(), testRecords(), testDocument(), "2024-01-15")

	assert.Equal(t, entity.RunStatusSuccess, result.Status)
	require.Len(t, primary.writes, 1)
}

func TestPublishPrimaryFailureFailsRun(t *testing.T) {
	records := newFakeRecordRepo()
	primary := &fakeSink{err: errors.New("disk full")}
	uc := newTestUseCase(&fakeBillingRepo{}, records, primary, nil, 30)

	result := uc.Publish(context.Background(), testRecords(), testDocument(), "2024-01-15")

	assert.Equal(t, entity.RunStatusFailure, result.Status)
	assert.Contains(t, result.Message, "document write failed")
}
