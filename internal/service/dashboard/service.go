package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/wifiattend/attendance-server/internal/domain/attendance"
	"github.com/wifiattend/attendance-server/internal/domain/dashboard"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	loc *time.Location
	now func() time.Time
}

func NewDashboardService(repo dashboard.DashboardRepository, loc *time.Location, now func() time.Time) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		loc:                 loc,
		now:                 now,
	}
}

// GetStats returns the dashboard snapshot using parallel goroutines, one query each.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (dashboard.StatsResponse, error) {
	day := attendance.DayOf(s.now(), s.loc)

	var (
		active   int64
		checkIns dashboard.CheckInCounts
		pending  dashboard.PendingRequests
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		active, err = s.CountActiveEmployees(gctx)
		if err != nil {
			return fmt.Errorf("active employees: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		checkIns, err = s.CountCheckInsByStatus(gctx, day)
		if err != nil {
			return fmt.Errorf("check-ins: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		pending, err = s.CountPendingRequests(gctx)
		if err != nil {
			return fmt.Errorf("pending requests: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to load dashboard stats: %w", err)
	}

	total := checkIns.Total()
	notCheckedIn := active - total
	if notCheckedIn < 0 {
		notCheckedIn = 0
	}

	return dashboard.StatsResponse{
		Date:            attendance.DateKey(day),
		ActiveEmployees: active,
		CheckIns: dashboard.CheckInStats{
			Total:        total,
			Pending:      checkIns.Pending,
			Present:      checkIns.Present,
			Absent:       checkIns.Absent,
			HalfDay:      checkIns.HalfDay,
			NotCheckedIn: notCheckedIn,
		},
		PendingLeaves:      pending.Leaves,
		PendingPermissions: pending.Permissions,
	}, nil
}
