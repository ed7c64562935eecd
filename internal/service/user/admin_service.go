package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wifiattend/attendance-server/internal/domain/user"
	"github.com/wifiattend/attendance-server/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

type AdminServiceImpl struct {
	userRepo user.UserRepository
}

func NewAdminService(userRepo user.UserRepository) user.AdminService {
	return &AdminServiceImpl{userRepo: userRepo}
}

// CreateAdmin implements user.AdminService.
func (s *AdminServiceImpl) CreateAdmin(ctx context.Context, req user.CreateAdminRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
	})
	if err != nil {
		if errors.Is(err, user.ErrUsernameExists) {
			slog.Warn("admin creation rejected: username taken", "username", req.Username)
			return user.UserResponse{}, err
		}
		return user.UserResponse{}, fmt.Errorf("failed to create admin: %w", err)
	}

	slog.Info("admin created", "user_id", created.ID, "username", created.Username)
	return user.NewUserResponse(created), nil
}

// ListAdmins implements user.AdminService.
func (s *AdminServiceImpl) ListAdmins(ctx context.Context) ([]user.UserResponse, error) {
	return s.list(ctx, false)
}

// ListDeletedAdmins implements user.AdminService.
func (s *AdminServiceImpl) ListDeletedAdmins(ctx context.Context) ([]user.UserResponse, error) {
	return s.list(ctx, true)
}

func (s *AdminServiceImpl) list(ctx context.Context, deleted bool) ([]user.UserResponse, error) {
	admins, err := s.userRepo.ListByRole(ctx, user.RoleAdmin, deleted)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(admins))
	for _, a := range admins {
		responses = append(responses, user.NewUserResponse(a))
	}
	return responses, nil
}

// UpdateAdmin implements user.AdminService.
func (s *AdminServiceImpl) UpdateAdmin(ctx context.Context, req user.UpdateAdminRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	admin, err := s.getAdmin(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}
	if admin.IsDeleted() {
		return user.UserResponse{}, user.ErrUserNotFound
	}

	if req.Username != nil {
		admin.Username = strings.TrimSpace(*req.Username)
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		admin.PasswordHash = string(hash)
	}

	if err := s.userRepo.Update(ctx, admin); err != nil {
		if errors.Is(err, user.ErrUsernameExists) || errors.Is(err, user.ErrUserNotFound) {
			return user.UserResponse{}, err
		}
		return user.UserResponse{}, fmt.Errorf("failed to update admin: %w", err)
	}

	updated, err := s.getAdmin(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.NewUserResponse(updated), nil
}

// DeleteAdmin implements user.AdminService.
func (s *AdminServiceImpl) DeleteAdmin(ctx context.Context, id string) error {
	admin, err := s.getAdmin(ctx, id)
	if err != nil {
		return err
	}
	if admin.IsDeleted() {
		return user.ErrUserAlreadyDeleted
	}

	if err := s.userRepo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
	}

	slog.Info("admin deleted", "user_id", id)
	return nil
}

// RestoreAdmin implements user.AdminService.
func (s *AdminServiceImpl) RestoreAdmin(ctx context.Context, id string) error {
	admin, err := s.getAdmin(ctx, id)
	if err != nil {
		return err
	}
	if !admin.IsDeleted() {
		return user.ErrUserNotDeleted
	}

	if err := s.userRepo.Restore(ctx, id); err != nil {
		return fmt.Errorf("failed to restore admin: %w", err)
	}

	slog.Info("admin restored", "user_id", id)
	return nil
}

// getAdmin loads id and treats accounts with any other role as missing.
func (s *AdminServiceImpl) getAdmin(ctx context.Context, id string) (user.User, error) {
	if !validator.IsValidUUID(id) {
		return user.User{}, validator.ValidationErrors{{Field: "id", Message: "id must be a valid UUID"}}
	}

	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.User{}, err
		}
		return user.User{}, fmt.Errorf("failed to get user by ID: %w", err)
	}
	if u.Role != user.RoleAdmin {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}
