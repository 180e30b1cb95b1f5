package repository

import (
	"context"

	"github.com/costview/aws-cost-dashboard-go/internal/domain/entity"
)

// RecordRepository is the durable per-day, per-service record store. Writes
// are upserts keyed by (record_date, service_name); queries are single-day.
type RecordRepository interface {
	PutRecord(ctx context.Context, record entity.CostRecord) error
	QueryByDate(ctx context.Context, recordDate string) ([]entity.CostRecord, error)
}
