package usecase

import (
	"context"
	"fmt"

	"github.com/costview/aws-cost-dashboard-go/internal/domain/entity"
)

// Publish writes the ingest records to the record store and the dashboard
// document to the configured sinks. The two phases are isolated: a failure in
// one never blocks the other.
func (uc *RefreshUseCase) Publish(ctx context.Context, records []entity.CostRecord, doc entity.DashboardDocument, date string) entity.RunResult {
	written := uc.publishRecords(ctx, records)
	return uc.publishDocument(ctx, doc, date, written)
}

// publishRecords upserts each record individually, keyed by
// (record_date, service_name). A failed record is logged and skipped; the
// loop continues. Returns the number of records written.
func (uc *RefreshUseCase) publishRecords(ctx context.Context, records []entity.CostRecord) int {
	if uc.dryRun {
		uc.log.Infow("dry run, skipping record writes", "records", len(records))
		return 0
	}

	written := 0
	for _, record := range records {
		if err := uc.recordRepo.PutRecord(ctx, record); err != nil {
			uc.log.Warnw("record write failed, skipped",
				"date", record.RecordDate, "service", record.ServiceName, "error", err)
			continue
		}
		written++
	}
	uc.log.Infow("persisted cost records", "written", written, "total", len(records))
	return written
}

// publishDocument writes the document to the primary sink and, when one is
// configured, mirrors it to the remote sink. A mirror failure is logged but
// does not fail the run; a missing mirror is silently skipped.
func (uc *RefreshUseCase) publishDocument(ctx context.Context, doc entity.DashboardDocument, date string, written int) entity.RunResult {
	if uc.dryRun {
		return entity.RunResult{
			Status:     entity.RunStatusSuccess,
			Date:       date,
			TotalSpend: doc.TotalSpend,
			Message:    "dry run, nothing written",
		}
	}

	location, err := uc.primarySink.WriteDocument(ctx, doc)
	if err != nil {
		uc.log.Errorw("primary document write failed", "error", err)
		return entity.RunResult{
			Status:     entity.RunStatusFailure,
			Date:       date,
			TotalSpend: doc.TotalSpend,
			Message:    fmt.Sprintf("document write failed: %v", err),
		}
	}
	uc.log.Infow("wrote dashboard document", "location", location)

	if uc.mirrorSink != nil {
		if remote, err := uc.mirrorSink.WriteDocument(ctx, doc); err != nil {
			uc.log.Warnw("remote mirror failed, primary document unaffected", "error", err)
		} else {
			uc.log.Infow("mirrored dashboard document", "location", remote)
		}
	}

	return entity.RunResult{
		Status:     entity.RunStatusSuccess,
		Date:       date,
		TotalSpend: doc.TotalSpend,
		Message:    fmt.Sprintf("cost data updated, %d records written", written),
	}
}
