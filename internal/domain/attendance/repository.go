package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type AttendanceRepository interface {
	// Create inserts a new record. Returns ErrAlreadyCheckedIn when the employee already has one for that day.
	Create(ctx context.Context, newAttendance Attendance) (Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)
	// CheckOut closes an open record. Returns ErrAlreadyCheckedOut when the record was already closed.
	CheckOut(ctx context.Context, id string, checkOutTime time.Time, status Status, workHours decimal.Decimal) error
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)
	// ListInRange returns records whose date lies within [from, to], both inclusive.
	ListInRange(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)
	// CountByStatusInRange groups the records dated within [from, to] by status.
	CountByStatusInRange(ctx context.Context, employeeID string, from, to time.Time) (Counts, error)
}
