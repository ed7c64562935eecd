package summary

import (
	"context"
	"time"
)

type SummaryService interface {
	// Aggregate computes the month's counts and daily sequence from live records.
	Aggregate(ctx context.Context, employeeID string, year, month int) (MonthlyReport, error)
	// Save persists the month once. A second call fails with ErrDuplicateSummary.
	Save(ctx context.Context, req SaveSummaryRequest) (MonthlySummaryResponse, error)
	ListSaved(ctx context.Context, employeeID string) ([]MonthlySummaryResponse, error)
	// Export renders the aggregated month as an XLSX workbook.
	Export(ctx context.Context, employeeID string, year, month int) (ExportFile, error)
	// FinalizeMonth saves the given month for every active employee, skipping those already saved.
	FinalizeMonth(ctx context.Context, year int, month time.Month) (FinalizeResult, error)
}
