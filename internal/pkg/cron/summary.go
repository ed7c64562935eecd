package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wifiattend/attendance-server/internal/domain/summary"
)

// MonthFinalizer persists one month of summaries for every active employee.
type MonthFinalizer interface {
	FinalizeMonth(ctx context.Context, year int, month time.Month) (summary.FinalizeResult, error)
}

type SummaryJobs struct {
	finalizer MonthFinalizer
	loc       *time.Location
	now       func() time.Time
}

func NewSummaryJobs(finalizer MonthFinalizer, loc *time.Location, now func() time.Time) *SummaryJobs {
	return &SummaryJobs{
		finalizer: finalizer,
		loc:       loc,
		now:       now,
	}
}

func (j *SummaryJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("finalize_previous_month_summaries", interval, j.FinalizePreviousMonth)
}

// FinalizePreviousMonth saves last month's summaries. Months already saved
// for an employee are counted as skipped, so repeated runs are harmless.
func (j *SummaryJobs) FinalizePreviousMonth(ctx context.Context) error {
	year, month := PreviousMonth(j.now().In(j.loc))

	result, err := j.finalizer.FinalizeMonth(ctx, year, month)
	if err != nil {
		return fmt.Errorf("failed to finalize %04d-%02d: %w", year, int(month), err)
	}

	if result.Saved > 0 || result.Failed > 0 {
		slog.Info("monthly summaries finalized",
			"year", result.Year,
			"month", result.Month,
			"saved", result.Saved,
			"skipped", result.Skipped,
			"failed", result.Failed,
		)
	}
	if result.Failed > 0 {
		return fmt.Errorf("%d of %d summaries failed for %04d-%02d",
			result.Failed, result.Saved+result.Skipped+result.Failed, year, int(month))
	}
	return nil
}

// PreviousMonth returns the calendar month before t's month.
func PreviousMonth(t time.Time) (int, time.Month) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	prev := first.AddDate(0, -1, 0)
	return prev.Year(), prev.Month()
}
