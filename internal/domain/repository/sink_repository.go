package repository

import (
	"context"

	"github.com/costview/aws-cost-dashboard-go/internal/domain/entity"
)

// SinkRepository receives the published dashboard document, fully replacing
// any prior document at the same location. WriteDocument returns the written
// location for reporting.
type SinkRepository interface {
	WriteDocument(ctx context.Context, doc entity.DashboardDocument) (string, error)
}
