package memory

import (
	"context"
	"time"

	"github.com/wifiattend/attendance-server/internal/domain/attendance"
	"github.com/wifiattend/attendance-server/internal/domain/dashboard"
	"github.com/wifiattend/attendance-server/internal/domain/leave"
)

// DashboardRepository reads across the other in-memory repositories.
type DashboardRepository struct {
	Employees   *EmployeeRepository
	Attendances *AttendanceRepository
	Leaves      *RequestRepository
	Permissions *RequestRepository
}

func (r *DashboardRepository) CountActiveEmployees(ctx context.Context) (int64, error) {
	r.Employees.mu.Lock()
	defer r.Employees.mu.Unlock()

	var n int64
	for _, e := range r.Employees.employees {
		if !e.IsDeleted() {
			n++
		}
	}
	return n, nil
}

func (r *DashboardRepository) CountCheckInsByStatus(ctx context.Context, date time.Time) (dashboard.CheckInCounts, error) {
	r.Attendances.mu.Lock()
	defer r.Attendances.mu.Unlock()

	var c dashboard.CheckInCounts
	for _, rec := range r.Attendances.records {
		if !rec.Date.Equal(date) {
			continue
		}
		switch rec.Status {
		case attendance.StatusPending:
			c.Pending++
		case attendance.StatusPresent:
			c.Present++
		case attendance.StatusAbsent:
			c.Absent++
		case attendance.StatusHalfDay:
			c.HalfDay++
		}
	}
	return c, nil
}

func (r *DashboardRepository) CountPendingRequests(ctx context.Context) (dashboard.PendingRequests, error) {
	return dashboard.PendingRequests{
		Leaves:      countPending(r.Leaves),
		Permissions: countPending(r.Permissions),
	}, nil
}

func countPending(r *RequestRepository) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, req := range r.requests {
		if req.Status == leave.StatusPending {
			n++
		}
	}
	return n
}
