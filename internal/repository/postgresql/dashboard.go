package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/wifiattend/attendance-server/internal/domain/dashboard"
	"github.com/wifiattend/attendance-server/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountActiveEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountActiveEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var n int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE deleted_at IS NULL`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}
	return n, nil
}

// CountCheckInsByStatus implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountCheckInsByStatus(ctx context.Context, date time.Time) (dashboard.CheckInCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'Pending'),
			COUNT(*) FILTER (WHERE status = 'Present'),
			COUNT(*) FILTER (WHERE status = 'Absent'),
			COUNT(*) FILTER (WHERE status = 'Half Day')
		FROM attendances
		WHERE date = $1`

	var c dashboard.CheckInCounts
	if err := q.QueryRow(ctx, query, date).Scan(&c.Pending, &c.Present, &c.Absent, &c.HalfDay); err != nil {
		return dashboard.CheckInCounts{}, fmt.Errorf("failed to count check-ins: %w", err)
	}
	return c, nil
}

// CountPendingRequests implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountPendingRequests(ctx context.Context) (dashboard.PendingRequests, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM leave_requests WHERE status = 'Pending'),
			(SELECT COUNT(*) FROM permission_requests WHERE status = 'Pending')`

	var p dashboard.PendingRequests
	if err := q.QueryRow(ctx, query).Scan(&p.Leaves, &p.Permissions); err != nil {
		return dashboard.PendingRequests{}, fmt.Errorf("failed to count pending requests: %w", err)
	}
	return p, nil
}
