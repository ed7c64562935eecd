package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/wifiattend/attendance-server/internal/domain/employee"
	"github.com/wifiattend/attendance-server/internal/domain/user"
	"github.com/wifiattend/attendance-server/internal/pkg/database"
	"github.com/wifiattend/attendance-server/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	txManager    database.TxManager
	employeeRepo employee.EmployeeRepository
	userRepo     user.UserRepository
}

func NewEmployeeService(
	txManager database.TxManager,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		txManager:    txManager,
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	req.Normalize()

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created employee.Employee
	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		account, err := s.userRepo.Create(ctx, user.User{
			Username:     req.Username,
			PasswordHash: string(hash),
			Role:         user.RoleEmployee,
		})
		if err != nil {
			if errors.Is(err, user.ErrUsernameExists) {
				return employee.ErrUsernameExists
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		created, err = s.employeeRepo.Create(ctx, employee.Employee{
			UserID:           account.ID,
			FullName:         req.FullName,
			Email:            req.Email,
			PhoneNumber:      req.PhoneNumber,
			Designation:      req.Designation,
			MobileMacAddress: req.MobileMacAddress,
			LaptopMacAddress: req.LaptopMacAddress,
		})
		if err != nil {
			if errors.Is(err, employee.ErrDeviceAlreadyRegistered) {
				return err
			}
			return fmt.Errorf("failed to create employee: %w", err)
		}
		created.Username = account.Username
		return nil
	})
	if err != nil {
		if errors.Is(err, employee.ErrUsernameExists) || errors.Is(err, employee.ErrDeviceAlreadyRegistered) {
			slog.Warn("employee creation rejected", "username", req.Username, "error", err)
			return employee.EmployeeResponse{}, err
		}
		slog.Error("failed to create employee", "username", req.Username, "error", err)
		return employee.EmployeeResponse{}, err
	}

	slog.Info("employee created", "employee_id", created.ID, "username", created.Username)
	return employee.NewEmployeeResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	if !validator.IsValidUUID(id) {
		return employee.EmployeeResponse{}, validator.ValidationErrors{{Field: "id", Message: "id must be a valid UUID"}}
	}

	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}
	return employee.NewEmployeeResponse(e), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	filter.Normalize()

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.NewEmployeeResponse(e))
	}

	return employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Employees:  responses,
	}, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}
	if e.IsDeleted() {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	req.Apply(&e)
	if err := s.employeeRepo.Update(ctx, e); err != nil {
		if errors.Is(err, employee.ErrDeviceAlreadyRegistered) || errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return s.GetEmployee(ctx, e.ID)
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	e, err := s.lookup(ctx, id)
	if err != nil {
		return err
	}
	if e.IsDeleted() {
		return employee.ErrEmployeeAlreadyDeleted
	}

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.employeeRepo.SoftDelete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete employee: %w", err)
		}
		if err := s.userRepo.SoftDelete(ctx, e.UserID); err != nil && !errors.Is(err, user.ErrUserNotFound) {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		slog.Error("failed to delete employee", "employee_id", id, "error", err)
		return err
	}

	slog.Info("employee deleted", "employee_id", id)
	return nil
}

// RestoreEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) RestoreEmployee(ctx context.Context, id string) error {
	e, err := s.lookup(ctx, id)
	if err != nil {
		return err
	}
	if !e.IsDeleted() {
		return employee.ErrEmployeeNotDeleted
	}

	err = s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.employeeRepo.Restore(ctx, id); err != nil {
			return fmt.Errorf("failed to restore employee: %w", err)
		}
		if err := s.userRepo.Restore(ctx, e.UserID); err != nil && !errors.Is(err, user.ErrUserNotFound) {
			return fmt.Errorf("failed to restore user: %w", err)
		}
		return nil
	})
	if err != nil {
		slog.Error("failed to restore employee", "employee_id", id, "error", err)
		return err
	}

	slog.Info("employee restored", "employee_id", id)
	return nil
}

func (s *EmployeeServiceImpl) lookup(ctx context.Context, id string) (employee.Employee, error) {
	if !validator.IsValidUUID(id) {
		return employee.Employee{}, validator.ValidationErrors{{Field: "id", Message: "id must be a valid UUID"}}
	}
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}
	return e, nil
}
