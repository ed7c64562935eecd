package summary

import "context"

type SummaryRepository interface {
	// Create persists s. Returns ErrDuplicateSummary when (employee, year, month) already exists.
	Create(ctx context.Context, s MonthlySummary) (MonthlySummary, error)
	Exists(ctx context.Context, employeeID string, year, month int) (bool, error)
	GetByPeriod(ctx context.Context, employeeID string, year, month int) (MonthlySummary, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]MonthlySummary, error)
}
