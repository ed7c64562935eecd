package summary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wifiattend/attendance-server/internal/domain/attendance"
	"github.com/wifiattend/attendance-server/internal/domain/employee"
	"github.com/wifiattend/attendance-server/internal/domain/leave"
	"github.com/wifiattend/attendance-server/internal/domain/summary"
	"github.com/wifiattend/attendance-server/internal/pkg/export"
	"github.com/wifiattend/attendance-server/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type SummaryServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.RequestRepository
	permissionRepo leave.RequestRepository
	summaryRepo    summary.SummaryRepository
	employeeRepo   employee.EmployeeRepository
	loc            *time.Location
	now            func() time.Time
}

func NewSummaryService(
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.RequestRepository,
	permissionRepo leave.RequestRepository,
	summaryRepo summary.SummaryRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
	now func() time.Time,
) *SummaryServiceImpl {
	return &SummaryServiceImpl{
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		permissionRepo: permissionRepo,
		summaryRepo:    summaryRepo,
		employeeRepo:   employeeRepo,
		loc:            loc,
		now:            now,
	}
}

var (
	_ summary.SummaryService   = (*SummaryServiceImpl)(nil)
	_ attendance.MonthlyRollup = (*SummaryServiceImpl)(nil)
)

func (s *SummaryServiceImpl) period(employeeID string, year, month int) (summary.Period, error) {
	if !validator.IsValidUUID(employeeID) {
		slog.Warn("summary rejected: invalid employee id", "employee_id", employeeID)
		return summary.Period{}, summary.ErrInvalidEmployeeID
	}
	if !validator.IsValidPeriod(year, month) {
		slog.Warn("summary rejected: invalid period", "employee_id", employeeID, "year", year, "month", month)
		return summary.Period{}, summary.ErrInvalidPeriod
	}
	return summary.Period{Year: year, Month: time.Month(month), Loc: s.loc}, nil
}

func (s *SummaryServiceImpl) requireEmployee(ctx context.Context, employeeID string) error {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			slog.Warn("summary rejected: employee not found", "employee_id", employeeID)
			return err
		}
		return fmt.Errorf("failed to load employee: %w", err)
	}
	return nil
}

// Aggregate implements summary.SummaryService.
//
// Every day from the first of the month up to today is classified exactly once:
// an attendance record wins over an approved leave, which wins over an approved
// permission; a day with none of them is Absent.
func (s *SummaryServiceImpl) Aggregate(ctx context.Context, employeeID string, year, month int) (summary.MonthlyReport, error) {
	p, err := s.period(employeeID, year, month)
	if err != nil {
		return summary.MonthlyReport{}, err
	}

	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return summary.MonthlyReport{}, err
	}

	firstDay, lastDay := p.StorageRange()

	var (
		records     []attendance.Attendance
		leaves      []leave.Request
		permissions []leave.Request
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Attendance records
	g.Go(func() error {
		data, err := s.attendanceRepo.ListInRange(gCtx, employeeID, firstDay, lastDay)
		if err != nil {
			return fmt.Errorf("failed to list attendances: %w", err)
		}
		records = data
		return nil
	})

	// 2. Approved leaves
	g.Go(func() error {
		data, err := s.leaveRepo.ListApprovedInRange(gCtx, employeeID, p.Start(), p.End())
		if err != nil {
			return fmt.Errorf("failed to list approved leaves: %w", err)
		}
		leaves = data
		return nil
	})

	// 3. Approved permissions
	g.Go(func() error {
		data, err := s.permissionRepo.ListApprovedInRange(gCtx, employeeID, p.Start(), p.End())
		if err != nil {
			return fmt.Errorf("failed to list approved permissions: %w", err)
		}
		permissions = data
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("monthly aggregation failed", "employee_id", employeeID, "year", year, "month", month, "error", err)
		return summary.MonthlyReport{}, err
	}

	report := summary.MonthlyReport{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
	}

	attendanceByDay := make(map[string]attendance.Status, len(records))
	for _, r := range records {
		attendanceByDay[attendance.DateKey(r.Date)] = r.Status
		report.Counts.Add(r.Status)
	}

	leaveDays := make(map[string]bool, len(leaves))
	for _, l := range leaves {
		leaveDays[attendance.DateKey(attendance.DayOf(l.CreatedAt, s.loc))] = true
		report.Counts.Leave++
	}

	permissionDays := make(map[string]bool, len(permissions))
	for _, pr := range permissions {
		permissionDays[attendance.DateKey(attendance.DayOf(pr.CreatedAt, s.loc))] = true
		report.Counts.Permission++
	}

	today := s.now().In(s.loc)
	end := p.End()
	report.DailyRecords = make([]summary.DailyRecord, 0, p.Days())
	for d := p.Start(); !d.After(end) && !d.After(today); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")

		var status attendance.Status
		switch {
		case attendanceByDay[key] != "":
			status = attendanceByDay[key]
		case leaveDays[key]:
			status = attendance.StatusLeave
		case permissionDays[key]:
			status = attendance.StatusPermission
		default:
			status = attendance.StatusAbsent
			report.Counts.Absent++
		}
		report.DailyRecords = append(report.DailyRecords, summary.DailyRecord{Date: key, Status: status})
	}

	return report, nil
}

// Rollup implements attendance.MonthlyRollup.
func (s *SummaryServiceImpl) Rollup(ctx context.Context, employeeID string, year int, month time.Month) (attendance.Counts, error) {
	report, err := s.Aggregate(ctx, employeeID, year, int(month))
	if err != nil {
		return attendance.Counts{}, err
	}
	return report.Counts, nil
}

// Save implements summary.SummaryService.
func (s *SummaryServiceImpl) Save(ctx context.Context, req summary.SaveSummaryRequest) (summary.MonthlySummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return summary.MonthlySummaryResponse{}, err
	}

	exists, err := s.summaryRepo.Exists(ctx, req.EmployeeID, req.Year, req.Month)
	if err != nil {
		return summary.MonthlySummaryResponse{}, fmt.Errorf("failed to check existing summary: %w", err)
	}
	if exists {
		slog.Warn("summary save rejected: duplicate", "employee_id", req.EmployeeID, "year", req.Year, "month", req.Month)
		return summary.MonthlySummaryResponse{}, summary.ErrDuplicateSummary
	}

	p, err := s.period(req.EmployeeID, req.Year, req.Month)
	if err != nil {
		return summary.MonthlySummaryResponse{}, err
	}
	if err := s.requireEmployee(ctx, req.EmployeeID); err != nil {
		return summary.MonthlySummaryResponse{}, err
	}

	// Present, absent and half-day are grouped record counts. Days the walk
	// infers as absent are not persisted.
	firstDay, lastDay := p.StorageRange()
	var (
		statusCounts    attendance.Counts
		leaveCount      int
		permissionCount int
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		counts, err := s.attendanceRepo.CountByStatusInRange(gCtx, req.EmployeeID, firstDay, lastDay)
		if err != nil {
			return fmt.Errorf("failed to count attendances by status: %w", err)
		}
		statusCounts = counts
		return nil
	})
	g.Go(func() error {
		n, err := s.leaveRepo.CountApprovedInRange(gCtx, req.EmployeeID, p.Start(), p.End())
		if err != nil {
			return fmt.Errorf("failed to count approved leaves: %w", err)
		}
		leaveCount = n
		return nil
	})
	g.Go(func() error {
		n, err := s.permissionRepo.CountApprovedInRange(gCtx, req.EmployeeID, p.Start(), p.End())
		if err != nil {
			return fmt.Errorf("failed to count approved permissions: %w", err)
		}
		permissionCount = n
		return nil
	})
	if err := g.Wait(); err != nil {
		slog.Error("summary save failed", "employee_id", req.EmployeeID, "year", req.Year, "month", req.Month, "error", err)
		return summary.MonthlySummaryResponse{}, err
	}

	saved, err := s.summaryRepo.Create(ctx, summary.MonthlySummary{
		EmployeeID: req.EmployeeID,
		Year:       req.Year,
		Month:      req.Month,
		Present:    statusCounts.Present,
		Absent:     statusCounts.Absent,
		HalfDay:    statusCounts.HalfDay,
		Leave:      leaveCount,
		Permission: permissionCount,
	})
	if err != nil {
		if errors.Is(err, summary.ErrDuplicateSummary) {
			slog.Warn("summary save rejected: concurrent duplicate", "employee_id", req.EmployeeID, "year", req.Year, "month", req.Month)
			return summary.MonthlySummaryResponse{}, err
		}
		slog.Error("failed to persist summary", "employee_id", req.EmployeeID, "year", req.Year, "month", req.Month, "error", err)
		return summary.MonthlySummaryResponse{}, fmt.Errorf("failed to save summary: %w", err)
	}

	slog.Info("monthly summary saved", "employee_id", saved.EmployeeID, "year", saved.Year, "month", saved.Month)
	return summary.NewMonthlySummaryResponse(saved), nil
}

// ListSaved implements summary.SummaryService.
func (s *SummaryServiceImpl) ListSaved(ctx context.Context, employeeID string) ([]summary.MonthlySummaryResponse, error) {
	if !validator.IsValidUUID(employeeID) {
		return nil, summary.ErrInvalidEmployeeID
	}

	saved, err := s.summaryRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}

	responses := make([]summary.MonthlySummaryResponse, 0, len(saved))
	for _, m := range saved {
		responses = append(responses, summary.NewMonthlySummaryResponse(m))
	}
	return responses, nil
}

// Export implements summary.SummaryService.
func (s *SummaryServiceImpl) Export(ctx context.Context, employeeID string, year, month int) (summary.ExportFile, error) {
	report, err := s.Aggregate(ctx, employeeID, year, month)
	if err != nil {
		return summary.ExportFile{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return summary.ExportFile{}, fmt.Errorf("failed to load employee: %w", err)
	}

	content, err := export.MonthlyReportXLSX(report, emp.FullName, s.now().In(s.loc))
	if err != nil {
		slog.Error("failed to render summary workbook", "employee_id", employeeID, "error", err)
		return summary.ExportFile{}, err
	}

	name := emp.Username
	if name == "" {
		name = emp.ID
	}
	return summary.ExportFile{
		Filename: fmt.Sprintf("attendance_%s_%04d-%02d.xlsx", name, year, month),
		Content:  content,
	}, nil
}

// FinalizeMonth implements summary.SummaryService.
func (s *SummaryServiceImpl) FinalizeMonth(ctx context.Context, year int, month time.Month) (summary.FinalizeResult, error) {
	result := summary.FinalizeResult{Year: year, Month: int(month)}

	ids, err := s.employeeRepo.ListActiveIDs(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to list active employees: %w", err)
	}

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		_, err := s.Save(ctx, summary.SaveSummaryRequest{EmployeeID: id, Year: year, Month: int(month)})
		switch {
		case err == nil:
			result.Saved++
		case errors.Is(err, summary.ErrDuplicateSummary):
			result.Skipped++
		default:
			result.Failed++
			slog.Error("failed to finalize summary", "employee_id", id, "year", year, "month", int(month), "error", err)
		}
	}

	return result, nil
}
