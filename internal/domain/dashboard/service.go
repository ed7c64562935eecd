package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetStats returns today's snapshot, querying the repository in parallel
	GetStats(ctx context.Context) (StatsResponse, error)
}
