package summary

import "errors"

var (
	ErrInvalidEmployeeID = errors.New("invalid employeeId")
	ErrInvalidPeriod     = errors.New("invalid year or month")
	ErrDuplicateSummary  = errors.New("monthly summary already exists")
	ErrSummaryNotFound   = errors.New("monthly summary not found")
	ErrForbidden         = errors.New("not allowed to access another employee's summary")
)
