package dashboard

import (
	"context"
	"time"
)

// CheckInCounts holds today's records grouped by status
type CheckInCounts struct {
	Pending int64
	Present int64
	Absent  int64
	HalfDay int64
}

// Total sums every status.
func (c CheckInCounts) Total() int64 {
	return c.Pending + c.Present + c.Absent + c.HalfDay
}

// PendingRequests counts requests still awaiting review
type PendingRequests struct {
	Leaves      int64
	Permissions int64
}

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	// CountActiveEmployees counts employees that are not soft-deleted
	CountActiveEmployees(ctx context.Context) (int64, error)

	// CountCheckInsByStatus groups the records stored for date in a single query
	CountCheckInsByStatus(ctx context.Context, date time.Time) (CheckInCounts, error)

	// CountPendingRequests counts pending leave and permission requests in a single query
	CountPendingRequests(ctx context.Context) (PendingRequests, error)
}
