package attendance

import (
	"context"
	"time"
)

// VerifiedIdentity is returned by a successful device/network check.
type VerifiedIdentity struct {
	EmployeeID string
	DeviceMac  string
	Device     string // "mobile" or "laptop"
}

// Verifier guards check-in: the caller must be on the office network using a registered device.
type Verifier interface {
	Verify(ctx context.Context, employeeID, wifiMac, deviceMac string) (VerifiedIdentity, error)
}

// MonthlyRollup supplies the month-to-date counts shown next to today's record.
type MonthlyRollup interface {
	Rollup(ctx context.Context, employeeID string, year int, month time.Month) (Counts, error)
}

type AttendanceService interface {
	CheckIn(ctx context.Context, employeeID string, req CheckInRequest) (CheckInResponse, error)
	CheckOut(ctx context.Context, employeeID string) (CheckOutResponse, error)
	GetMyToday(ctx context.Context, employeeID string) (TodayResponse, error)
	ListAll(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error)
}
