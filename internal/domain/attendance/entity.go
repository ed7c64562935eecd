package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusPresent    Status = "Present"
	StatusAbsent     Status = "Absent"
	StatusHalfDay    Status = "Half Day"
	StatusLeave      Status = "Leave"
	StatusPermission Status = "Permission"
)

// IsRecordStatus reports whether s can be stored on an attendance record.
func IsRecordStatus(s Status) bool {
	switch s {
	case StatusPending, StatusPresent, StatusAbsent, StatusHalfDay:
		return true
	}
	return false
}

// Attendance is one employee's record for one office-local calendar day.
type Attendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	CheckInTime  time.Time
	CheckOutTime *time.Time
	Status       Status
	WorkHours    *decimal.Decimal
	IPAddress    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	EmployeeName string
	Username     string
}

func (a Attendance) IsCheckedOut() bool {
	return a.CheckOutTime != nil
}

// DayOf returns the office-local calendar day of t as midnight UTC, the form
// stored in the DATE column.
func DayOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// DateKey formats a day as YYYY-MM-DD.
func DateKey(day time.Time) string {
	return day.Format("2006-01-02")
}

// Counts tallies days or records per status for one employee-month.
type Counts struct {
	Present    int `json:"present"`
	Absent     int `json:"absent"`
	HalfDay    int `json:"half_day"`
	Leave      int `json:"leave"`
	Permission int `json:"permission"`
	Pending    int `json:"pending"`
}

// Add increments the counter for s.
func (c *Counts) Add(s Status) {
	c.AddN(s, 1)
}

// AddN adds n to the counter for s. Unknown statuses are ignored.
func (c *Counts) AddN(s Status, n int) {
	switch s {
	case StatusPresent:
		c.Present += n
	case StatusAbsent:
		c.Absent += n
	case StatusHalfDay:
		c.HalfDay += n
	case StatusLeave:
		c.Leave += n
	case StatusPermission:
		c.Permission += n
	case StatusPending:
		c.Pending += n
	}
}
