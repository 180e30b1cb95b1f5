package usecase

import (
	"context"
	"time"

	"github.com/costview/aws-cost-dashboard-go/internal/domain/entity"
	"github.com/costview/aws-cost-dashboard-go/internal/domain/repository"
	"github.com/costview/aws-cost-dashboard-go/pkg/logger"
)

// DefaultTrendWindow is the number of daily points in the rolling trend
// window when no override is configured.
const DefaultTrendWindow = 30

// RefreshParams bundles the collaborators and settings for a refresh run.
type RefreshParams struct {
	Billing     repository.BillingRepository
	Records     repository.RecordRepository
	PrimarySink repository.SinkRepository
	MirrorSink  repository.SinkRepository // nil disables remote mirroring
	Categorizer *Categorizer
	TrendWindow int
	DryRun      bool
}

// RefreshUseCase runs the daily cost refresh: fetch yesterday's spend,
// classify it, persist per-service records, recompute the previous-period
// comparison and the rolling trend from history, and publish the dashboard
// document.
type RefreshUseCase struct {
	billingRepo repository.BillingRepository
	recordRepo  repository.RecordRepository
	primarySink repository.SinkRepository
	mirrorSink  repository.SinkRepository
	categorizer *Categorizer
	trendWindow int
	dryRun      bool
	log         *logger.Logger
}

// NewRefreshUseCase creates a new refresh use case.
func NewRefreshUseCase(params RefreshParams) *RefreshUseCase {
	categorizer := params.Categorizer
	if categorizer == nil {
		categorizer = NewCategorizer()
	}
	trendWindow := params.TrendWindow
	if trendWindow <= 0 {
		trendWindow = DefaultTrendWindow
	}
	return &RefreshUseCase{
		billingRepo: params.Billing,
		recordRepo:  params.Records,
		primarySink: params.PrimarySink,
		mirrorSink:  params.MirrorSink,
		categorizer: categorizer,
		trendWindow: trendWindow,
		dryRun:      params.DryRun,
		log:         logger.Get().With("component", "refresh"),
	}
}

// Run executes the full pipeline for targetDate (normally yesterday UTC).
// Only a billing provider failure fails the run; every other error degrades
// data completeness and is logged as a warning. The returned document is nil
// when the run fails.
func (uc *RefreshUseCase) Run(ctx context.Context, targetDate time.Time) (entity.RunResult, *entity.DashboardDocument, error) {
	targetDate = targetDate.UTC().Truncate(24 * time.Hour)
	dateStr := targetDate.Format(entity.DateLayout)
	log := uc.log.With("date", dateStr)

	if accountID, err := uc.billingRepo.GetAccountID(ctx); err == nil {
		log.Infow("starting cost refresh", "account_id", accountID)
	} else {
		log.Infow("starting cost refresh", "account_id", "unknown")
	}

	items, err := uc.billingRepo.GetDailyServiceCosts(ctx, targetDate, targetDate.AddDate(0, 0, 1))
	if err != nil {
		log.Errorw("billing provider query failed", "error", err)
		return entity.RunResult{
			Status:  entity.RunStatusFailure,
			Date:    dateStr,
			Message: err.Error(),
		}, nil, err
	}
	log.Infow("fetched service costs", "services", len(items))

	current, records := uc.AggregatePeriod(items, dateStr)

	// Records go in before the trend read so the fresh day is part of the
	// window rather than a zero point.
	written := uc.publishRecords(ctx, records)

	previousDay := targetDate.AddDate(0, 0, -1)
	previous := uc.ReadRange(ctx, previousDay, previousDay)

	// The window ends at "today": it covers the trendWindow days up to and
	// including the target date, excluding the in-progress day.
	trend := uc.ReadTrend(ctx, targetDate.AddDate(0, 0, 1), uc.trendWindow)

	doc := uc.BuildDocument(current, previous, trend)

	result := uc.publishDocument(ctx, doc, dateStr, written)
	return result, &doc, nil
}
