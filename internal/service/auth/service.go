package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wifiattend/attendance-server/internal/domain/auth"
	"github.com/wifiattend/attendance-server/internal/domain/employee"
	"github.com/wifiattend/attendance-server/internal/domain/user"
	"github.com/wifiattend/attendance-server/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	employee.EmployeeRepository
	jwt.Service
}

func NewAuthService(userRepository user.UserRepository, employeeRepository employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository:     userRepository,
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if userData.IsDeleted() {
		slog.Warn("login rejected: account deleted", "user_id", userData.ID)
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	var employeeID *string
	if userData.Role == user.RoleEmployee {
		emp, err := a.EmployeeRepository.GetByUserID(ctx, userData.ID)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				slog.Warn("login rejected: no employee record", "user_id", userData.ID)
				return auth.TokenResponse{}, auth.ErrInvalidCredentials
			}
			return auth.TokenResponse{}, fmt.Errorf("failed to get employee by user ID: %w", err)
		}
		if emp.IsDeleted() {
			slog.Warn("login rejected: employee deleted", "user_id", userData.ID, "employee_id", emp.ID)
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		employeeID = &emp.ID
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, employeeID, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	slog.Info("user logged in", "user_id", userData.ID, "role", userData.Role)
	return auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		UserID:      userData.ID,
		EmployeeID:  employeeID,
		Role:        string(userData.Role),
	}, nil
}

// EnsureSuperAdmin implements auth.AuthService.
func (a *AuthServiceImpl) EnsureSuperAdmin(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil
	}

	if _, err := a.UserRepository.GetByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return fmt.Errorf("failed to get user by username: %w", err)
	}

	hash, err := a.hashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.UserRepository.Create(ctx, user.User{
		Username:     username,
		PasswordHash: hash,
		Role:         user.RoleSuperAdmin,
	})
	if err != nil {
		if errors.Is(err, user.ErrUsernameExists) {
			return nil
		}
		return fmt.Errorf("failed to create superadmin: %w", err)
	}

	slog.Info("superadmin account created", "user_id", created.ID, "username", created.Username)
	return nil
}
