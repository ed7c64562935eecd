package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/wifiattend/attendance-server/internal/domain/attendance"
	"github.com/wifiattend/attendance-server/internal/pkg/database"
)

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.check_in_time, a.check_out_time,
	a.status, a.work_hours, a.ip_address, a.created_at, a.updated_at,
	e.full_name, u.username`

const attendanceFrom = `
	FROM attendances a
	JOIN employees e ON e.id = a.employee_id
	JOIN users u ON u.id = e.user_id`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckInTime, &att.CheckOutTime,
		&att.Status, &att.WorkHours, &att.IPAddress, &att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName, &att.Username,
	)
	return att, err
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	return attendances, rows.Err()
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (employee_id, date, check_in_time, status, ip_address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	created := newAttendance
	err := q.QueryRow(ctx, query,
		newAttendance.EmployeeID,
		newAttendance.Date,
		newAttendance.CheckInTime,
		newAttendance.Status,
		newAttendance.IPAddress,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "attendances_employee_id_date_key") {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to insert attendance: %w", err)
	}

	return created, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + attendanceFrom + `
		WHERE a.employee_id = $1 AND a.date = $2`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	return att, nil
}

// CheckOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) CheckOut(ctx context.Context, id string, checkOutTime time.Time, status attendance.Status, workHours decimal.Decimal) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_out_time = $2, status = $3, work_hours = $4, updated_at = NOW()
		WHERE id = $1 AND check_out_time IS NULL
	`

	tag, err := q.Exec(ctx, query, id, checkOutTime, status, workHours)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM attendances WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check attendance: %w", err)
		}
		if !exists {
			return attendance.ErrAttendanceNotFound
		}
		return attendance.ErrAlreadyCheckedOut
	}
	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	where := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		where += fmt.Sprintf(" AND a.date >= $%d::date", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		where += fmt.Sprintf(" AND a.date <= $%d::date", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		where += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*)`+attendanceFrom+` WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s %s
		WHERE %s
		ORDER BY a.date DESC, a.check_in_time DESC
		LIMIT $%d OFFSET $%d`, attendanceColumns, attendanceFrom, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	attendances, err := collectAttendances(rows)
	if err != nil {
		return nil, 0, err
	}
	return attendances, total, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + attendanceFrom + `
		WHERE a.employee_id = $1
		ORDER BY a.date DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	return collectAttendances(rows)
}

// ListInRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListInRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + attendanceFrom + `
		WHERE a.employee_id = $1 AND a.date BETWEEN $2 AND $3
		ORDER BY a.date`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances in range: %w", err)
	}
	return collectAttendances(rows)
}

// CountByStatusInRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountByStatusInRange(ctx context.Context, employeeID string, from, to time.Time) (attendance.Counts, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT status, COUNT(*)
		FROM attendances
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		GROUP BY status`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return attendance.Counts{}, fmt.Errorf("failed to count attendances by status: %w", err)
	}
	defer rows.Close()

	var counts attendance.Counts
	for rows.Next() {
		var (
			status attendance.Status
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return attendance.Counts{}, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts.AddN(status, n)
	}
	if err := rows.Err(); err != nil {
		return attendance.Counts{}, fmt.Errorf("failed to iterate status counts: %w", err)
	}
	return counts, nil
}
