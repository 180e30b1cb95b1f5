package aws

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	ceTypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/costview/aws-cost-dashboard-go/internal/domain/entity"
	"github.com/costview/aws-cost-dashboard-go/internal/domain/repository"
	"github.com/costview/aws-cost-dashboard-go/internal/shared/types"
)

// BillingRepositoryImpl implements BillingRepository on top of Cost Explorer.
type BillingRepositoryImpl struct {
	ce  *costexplorer.Client
	sts *sts.Client
}

// NewBillingRepository creates a new Cost Explorer backed billing repository.
func NewBillingRepository(clients *Clients) repository.BillingRepository {
	return &BillingRepositoryImpl{ce: clients.CostExplorer, sts: clients.STS}
}

// GetAccountID resolves the caller's account ID.
func (r *BillingRepositoryImpl) GetAccountID(ctx context.Context) (string, error) {
	result, err := r.sts.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error getting account ID: %w", err)
	}
	return aws.ToString(result.Account), nil
}

// GetDailyServiceCosts queries unblended cost grouped by service at daily
// granularity for the [start, end) period.
func (r *BillingRepositoryImpl) GetDailyServiceCosts(ctx context.Context, start, end time.Time) ([]entity.ServiceCost, error) {
	input := &costexplorer.GetCostAndUsageInput{
		TimePeriod: &ceTypes.DateInterval{
			Start: aws.String(start.Format(entity.DateLayout)),
			End:   aws.String(end.Format(entity.DateLayout)),
		},
		Granularity: ceTypes.GranularityDaily,
		Metrics:     []string{"UnblendedCost"},
		GroupBy: []ceTypes.GroupDefinition{
			{Type: ceTypes.GroupDefinitionTypeDimension, Key: aws.String("SERVICE")},
		},
	}

	result, err := r.ce.GetCostAndUsage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get cost and usage: %w", err)
	}
	if len(result.ResultsByTime) == 0 {
		return nil, types.ErrNoCostData
	}

	var costs []entity.ServiceCost
	for _, group := range result.ResultsByTime[0].Groups {
		if len(group.Keys) == 0 {
			continue
		}
		metric, ok := group.Metrics["UnblendedCost"]
		if !ok || metric.Amount == nil {
			continue
		}
		amount, _ := strconv.ParseFloat(*metric.Amount, 64)
		costs = append(costs, entity.ServiceCost{
			ServiceName: group.Keys[0],
			Amount:      amount,
		})
	}
	return costs, nil
}
