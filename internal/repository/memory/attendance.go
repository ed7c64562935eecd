package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wifiattend/attendance-server/internal/domain/attendance"
)

type AttendanceRepository struct {
	mu      sync.Mutex
	records []attendance.Attendance
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{}
}

// Seed stores records as-is, bypassing the uniqueness check.
func (r *AttendanceRepository) Seed(records ...attendance.Attendance) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range records {
		if rec.ID == "" {
			rec.ID = newID()
		}
		r.records = append(r.records, rec)
	}
}

func (r *AttendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.EmployeeID == newAttendance.EmployeeID && rec.Date.Equal(newAttendance.Date) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
	}
	newAttendance.ID = newID()
	newAttendance.CreatedAt = newAttendance.CheckInTime
	newAttendance.UpdatedAt = newAttendance.CheckInTime
	r.records = append(r.records, newAttendance)
	return newAttendance, nil
}

func (r *AttendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.Date.Equal(date) {
			return rec, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (r *AttendanceRepository) CheckOut(ctx context.Context, id string, checkOutTime time.Time, status attendance.Status, workHours decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID != id {
			continue
		}
		if r.records[i].CheckOutTime != nil {
			return attendance.ErrAlreadyCheckedOut
		}
		r.records[i].CheckOutTime = &checkOutTime
		r.records[i].Status = status
		r.records[i].WorkHours = &workHours
		r.records[i].UpdatedAt = checkOutTime
		return nil
	}
	return attendance.ErrAttendanceNotFound
}

func (r *AttendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	r.mu.Lock()
	matched := make([]attendance.Attendance, 0, len(r.records))
	for _, rec := range r.records {
		if filter.EmployeeID != nil && rec.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && string(rec.Status) != *filter.Status {
			continue
		}
		if filter.StartDate != nil && attendance.DateKey(rec.Date) < *filter.StartDate {
			continue
		}
		if filter.EndDate != nil && attendance.DateKey(rec.Date) > *filter.EndDate {
			continue
		}
		matched = append(matched, rec)
	}
	r.mu.Unlock()

	sortNewestFirst(matched)
	total := int64(len(matched))

	start := filter.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *AttendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	r.mu.Lock()
	var out []attendance.Attendance
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	r.mu.Unlock()

	sortNewestFirst(out)
	return out, nil
}

func (r *AttendanceRepository) ListInRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []attendance.Attendance
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && !rec.Date.Before(from) && !rec.Date.After(to) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *AttendanceRepository) CountByStatusInRange(ctx context.Context, employeeID string, from, to time.Time) (attendance.Counts, error) {
	records, _ := r.ListInRange(ctx, employeeID, from, to)

	var counts attendance.Counts
	for _, rec := range records {
		counts.Add(rec.Status)
	}
	return counts, nil
}

func sortNewestFirst(records []attendance.Attendance) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
}
