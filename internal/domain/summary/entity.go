package summary

import (
	"time"

	"github.com/wifiattend/attendance-server/internal/domain/attendance"
)

// MonthlySummary is the persisted, immutable snapshot for one employee-month.
type MonthlySummary struct {
	ID         string
	EmployeeID string
	Year       int
	Month      int
	Present    int
	Absent     int
	HalfDay    int
	Leave      int
	Permission int
	CreatedAt  time.Time
}

// DailyRecord is the resolved status of one calendar day.
type DailyRecord struct {
	Date   string            `json:"date"`
	Status attendance.Status `json:"status"`
}

// MonthlyReport is the computed view of a month: per-status counts plus one
// entry for each day from the first of the month up to today.
type MonthlyReport struct {
	EmployeeID   string            `json:"employee_id"`
	Year         int               `json:"year"`
	Month        int               `json:"month"`
	Counts       attendance.Counts `json:"counts"`
	DailyRecords []DailyRecord     `json:"daily_records"`
}

// Period is a calendar month in the office location.
type Period struct {
	Year  int
	Month time.Month
	Loc   *time.Location
}

// Start is midnight on the first day of the month.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, p.Loc)
}

// End is the last nanosecond of the month.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// StorageRange returns the first and last day of the month as attendance
// dates are stored: office-local days at midnight UTC.
func (p Period) StorageRange() (time.Time, time.Time) {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC),
		time.Date(p.Year, p.Month, p.Days(), 0, 0, 0, 0, time.UTC)
}

// Days is the number of calendar days in the month.
func (p Period) Days() int {
	return p.Start().AddDate(0, 1, -1).Day()
}
