package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/wifiattend/attendance-server/internal/domain/employee"
	"github.com/wifiattend/attendance-server/internal/pkg/database"
)

const employeeSelect = `
	SELECT e.id, e.user_id, e.full_name, e.email, e.phone_number, e.designation,
		   e.mobile_mac_address, e.laptop_mac_address,
		   e.created_at, e.updated_at, e.deleted_at, u.username
	FROM employees e
	JOIN users u ON u.id = e.user_id`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.UserID, &e.FullName, &e.Email, &e.PhoneNumber, &e.Designation,
		&e.MobileMacAddress, &e.LaptopMacAddress,
		&e.CreatedAt, &e.UpdatedAt, &e.DeletedAt, &e.Username,
	)
	return e, err
}

// deviceConflict maps the partial unique indexes on registered MACs.
func deviceConflict(err error) bool {
	return isUniqueViolation(err, "employees_mobile_mac_address_key") ||
		isUniqueViolation(err, "employees_laptop_mac_address_key")
}

func (r *employeeRepositoryImpl) getOne(ctx context.Context, where string, arg interface{}) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx, employeeSelect+" WHERE "+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return r.getOne(ctx, "e.id = $1", id)
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return r.getOne(ctx, "e.user_id = $1", userID)
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			user_id, full_name, email, phone_number, designation,
			mobile_mac_address, laptop_mac_address
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	created := newEmployee
	err := q.QueryRow(ctx, query,
		newEmployee.UserID,
		newEmployee.FullName,
		newEmployee.Email,
		newEmployee.PhoneNumber,
		newEmployee.Designation,
		newEmployee.MobileMacAddress,
		newEmployee.LaptopMacAddress,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if deviceConflict(err) {
			return employee.Employee{}, employee.ErrDeviceAlreadyRegistered
		}
		return employee.Employee{}, fmt.Errorf("failed to insert employee: %w", err)
	}

	return created, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET full_name = $2, email = $3, phone_number = $4, designation = $5,
			mobile_mac_address = $6, laptop_mac_address = $7, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		e.ID, e.FullName, e.Email, e.PhoneNumber, e.Designation,
		e.MobileMacAddress, e.LaptopMacAddress,
	)
	if err != nil {
		if deviceConflict(err) {
			return employee.ErrDeviceAlreadyRegistered
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "e.deleted_at IS NULL"
	if filter.Deleted {
		where = "e.deleted_at IS NOT NULL"
	}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != "" {
		where += fmt.Sprintf(" AND (e.full_name ILIKE $%d OR u.username ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM employees e JOIN users u ON u.id = e.user_id WHERE ` + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := fmt.Sprintf(`%s
		WHERE %s
		ORDER BY e.full_name ASC
		LIMIT $%d OFFSET $%d`, employeeSelect, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// ListActiveIDs implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListActiveIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id FROM employees WHERE deleted_at IS NULL ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan employee ids: %w", err)
	}
	return ids, nil
}

// SoftDelete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Restore implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Restore(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET deleted_at = NULL, updated_at = NOW() WHERE id = $1 AND deleted_at IS NOT NULL`, id)
	if err != nil {
		if deviceConflict(err) {
			return employee.ErrDeviceAlreadyRegistered
		}
		return fmt.Errorf("failed to restore employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
