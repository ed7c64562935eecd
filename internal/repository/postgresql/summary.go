package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/wifiattend/attendance-server/internal/domain/summary"
	"github.com/wifiattend/attendance-server/internal/pkg/database"
)

const summarySelect = `
	SELECT id, employee_id, year, month, present, absent, half_day, leave, permission, created_at
	FROM monthly_summaries`

type summaryRepository struct {
	db *database.DB
}

func NewSummaryRepository(db *database.DB) summary.SummaryRepository {
	return &summaryRepository{db: db}
}

func scanSummary(row pgx.Row) (summary.MonthlySummary, error) {
	var s summary.MonthlySummary
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.Year, &s.Month,
		&s.Present, &s.Absent, &s.HalfDay, &s.Leave, &s.Permission, &s.CreatedAt,
	)
	return s, err
}

// Create implements summary.SummaryRepository.
func (r *summaryRepository) Create(ctx context.Context, s summary.MonthlySummary) (summary.MonthlySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_summaries (employee_id, year, month, present, absent, half_day, leave, permission)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	created := s
	err := q.QueryRow(ctx, query,
		s.EmployeeID, s.Year, s.Month,
		s.Present, s.Absent, s.HalfDay, s.Leave, s.Permission,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "monthly_summaries_employee_id_year_month_key") {
			return summary.MonthlySummary{}, summary.ErrDuplicateSummary
		}
		return summary.MonthlySummary{}, fmt.Errorf("failed to insert monthly summary: %w", err)
	}
	return created, nil
}

// Exists implements summary.SummaryRepository.
func (r *summaryRepository) Exists(ctx context.Context, employeeID string, year, month int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM monthly_summaries WHERE employee_id = $1 AND year = $2 AND month = $3)`,
		employeeID, year, month,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check monthly summary: %w", err)
	}
	return exists, nil
}

// GetByPeriod implements summary.SummaryRepository.
func (r *summaryRepository) GetByPeriod(ctx context.Context, employeeID string, year, month int) (summary.MonthlySummary, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanSummary(q.QueryRow(ctx,
		summarySelect+` WHERE employee_id = $1 AND year = $2 AND month = $3`,
		employeeID, year, month,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return summary.MonthlySummary{}, summary.ErrSummaryNotFound
		}
		return summary.MonthlySummary{}, fmt.Errorf("failed to get monthly summary: %w", err)
	}
	return s, nil
}

// ListByEmployee implements summary.SummaryRepository.
func (r *summaryRepository) ListByEmployee(ctx context.Context, employeeID string) ([]summary.MonthlySummary, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, summarySelect+` WHERE employee_id = $1 ORDER BY year DESC, month DESC`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly summaries: %w", err)
	}
	defer rows.Close()

	var summaries []summary.MonthlySummary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
