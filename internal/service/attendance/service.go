package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wifiattend/attendance-server/internal/domain/attendance"
	"github.com/wifiattend/attendance-server/internal/pkg/validator"
)

const displayTime = "15:04"

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	verifier attendance.Verifier
	rollup   attendance.MonthlyRollup
	loc      *time.Location
	now      func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	verifier attendance.Verifier,
	rollup attendance.MonthlyRollup,
	loc *time.Location,
	now func() time.Time,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		verifier:             verifier,
		rollup:               rollup,
		loc:                  loc,
		now:                  now,
	}
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}

	identity, err := a.verifier.Verify(ctx, employeeID, req.WifiMac, req.DeviceMac)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	if req.IPAddress != "" {
		slog.Info("check-in request", "employee_id", employeeID, "ip_address", req.IPAddress, "device", identity.Device)
	}

	now := a.now().In(a.loc)
	day := attendance.DayOf(now, a.loc)

	_, err = a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, day)
	if err == nil {
		slog.Warn("check-in rejected: already checked in", "employee_id", employeeID, "date", attendance.DateKey(day))
		return attendance.CheckInResponse{}, attendance.ErrAlreadyCheckedIn
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}

	record := attendance.Attendance{
		EmployeeID:  employeeID,
		Date:        day,
		CheckInTime: now,
		Status:      attendance.StatusPending,
	}
	if req.IPAddress != "" {
		record.IPAddress = &req.IPAddress
	}

	// The unique (employee_id, date) index catches a concurrent duplicate.
	if _, err := a.AttendanceRepository.Create(ctx, record); err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			slog.Warn("check-in rejected: concurrent duplicate", "employee_id", employeeID, "date", attendance.DateKey(day))
			return attendance.CheckInResponse{}, err
		}
		slog.Error("failed to create attendance", "employee_id", employeeID, "error", err)
		return attendance.CheckInResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return attendance.CheckInResponse{
		Date:        now.Format(time.RFC3339),
		Time:        now.Format(displayTime),
		CheckInTime: now.Format(time.RFC3339),
		Status:      attendance.StatusPending,
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string) (attendance.CheckOutResponse, error) {
	now := a.now().In(a.loc)
	day := attendance.DayOf(now, a.loc)

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			slog.Warn("check-out rejected: not checked in", "employee_id", employeeID, "date", attendance.DateKey(day))
			return attendance.CheckOutResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}
	if record.IsCheckedOut() {
		slog.Warn("check-out rejected: already checked out", "employee_id", employeeID, "date", attendance.DateKey(day))
		return attendance.CheckOutResponse{}, attendance.ErrAlreadyCheckedOut
	}

	checkIn := record.CheckInTime.In(a.loc)
	status := attendance.DeriveStatus(checkIn, now)
	totalHours := decimal.NewFromFloat(now.Sub(checkIn).Hours()).Round(2)

	if err := a.AttendanceRepository.CheckOut(ctx, record.ID, now, status, totalHours); err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedOut) {
			slog.Warn("check-out rejected: concurrent check-out", "employee_id", employeeID, "attendance_id", record.ID)
			return attendance.CheckOutResponse{}, err
		}
		slog.Error("failed to check out", "employee_id", employeeID, "attendance_id", record.ID, "error", err)
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return attendance.CheckOutResponse{
		Time:         now.Format(displayTime),
		CheckOutTime: now.Format(time.RFC3339),
		TotalHours:   totalHours.StringFixed(2),
		Status:       status,
	}, nil
}

// GetMyToday implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyToday(ctx context.Context, employeeID string) (attendance.TodayResponse, error) {
	now := a.now().In(a.loc)
	day := attendance.DayOf(now, a.loc)

	var resp attendance.TodayResponse

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, day)
	switch {
	case err == nil:
		today := &attendance.TodayStatus{
			CheckIn: record.CheckInTime.In(a.loc).Format(displayTime),
			Status:  record.Status,
		}
		if record.CheckOutTime != nil {
			out := record.CheckOutTime.In(a.loc).Format(displayTime)
			today.CheckOut = &out
		}
		resp.TodayStatus = today
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		// not checked in yet
	default:
		return attendance.TodayResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}

	counts, err := a.rollup.Rollup(ctx, employeeID, now.Year(), now.Month())
	if err != nil {
		return attendance.TodayResponse{}, fmt.Errorf("failed to compute monthly rollup: %w", err)
	}
	resp.MonthlySummary = counts

	return resp, nil
}

// ListAll implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAll(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, a.toResponse(r))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  int(math.Ceil(float64(total) / float64(filter.Limit))),
		Attendances: responses,
	}, nil
}

// ListByEmployee implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	if !validator.IsValidUUID(employeeID) {
		return nil, validator.ValidationErrors{{Field: "employee_id", Message: "employee_id must be a valid UUID"}}
	}

	records, err := a.AttendanceRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances for employee %s: %w", employeeID, err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, a.toResponse(r))
	}
	return responses, nil
}

func (a *AttendanceServiceImpl) toResponse(r attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		Username:     r.Username,
		Date:         attendance.DateKey(r.Date),
		CheckInTime:  r.CheckInTime.In(a.loc).Format(time.RFC3339),
		Status:       r.Status,
		IPAddress:    r.IPAddress,
	}
	if r.CheckOutTime != nil {
		out := r.CheckOutTime.In(a.loc).Format(time.RFC3339)
		resp.CheckOutTime = &out
	}
	if r.WorkHours != nil {
		hours := r.WorkHours.StringFixed(2)
		resp.WorkHours = &hours
	}
	return resp
}
