package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee creates the login account and the employee record together
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID, including soft-deleted ones
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees lists active or soft-deleted employees
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)

	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee soft deletes the employee and its login account
	DeleteEmployee(ctx context.Context, id string) error

	RestoreEmployee(ctx context.Context, id string) error
}
