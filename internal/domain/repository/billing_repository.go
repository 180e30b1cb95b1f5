package repository

import (
	"context"
	"time"

	"github.com/costview/aws-cost-dashboard-go/internal/domain/entity"
)

// BillingRepository defines the interface to the upstream billing provider.
type BillingRepository interface {
	// GetAccountID resolves the account the cost data belongs to.
	GetAccountID(ctx context.Context) (string, error)

	// GetDailyServiceCosts returns one amount per service for the [start, end)
	// period at daily granularity.
	GetDailyServiceCosts(ctx context.Context, start, end time.Time) ([]entity.ServiceCost, error)
}
