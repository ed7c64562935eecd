package attendance

import "errors"

// Attendance domain errors
var (
	// Verification errors
	ErrConfigurationMissing = errors.New("employee or office config not found")
	ErrWrongNetwork         = errors.New("not connected to office WiFi")
	ErrUnregisteredDevice   = errors.New("device not registered to this employee")

	// State errors
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNotCheckedIn      = errors.New("please check in first")
	ErrAlreadyCheckedOut = errors.New("already checked out")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
