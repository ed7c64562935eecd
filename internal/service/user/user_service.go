package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wifiattend/attendance-server/internal/domain/user"
	"github.com/wifiattend/attendance-server/internal/pkg/validator"
)

type UserServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context, filter user.UserFilter) ([]user.UserResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.NewUserResponse(u))
	}
	return responses, nil
}

// DeleteUser implements user.UserService.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, actorID, id string) error {
	u, err := s.getUser(ctx, id)
	if err != nil {
		return err
	}
	if u.ID == actorID {
		slog.Warn("user deletion rejected: self", "user_id", id)
		return user.ErrCannotDeleteSelf
	}
	if u.IsDeleted() {
		return user.ErrUserAlreadyDeleted
	}

	if err := s.userRepo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	slog.Info("user deleted", "user_id", id, "role", u.Role, "deleted_by", actorID)
	return nil
}

// RestoreUser implements user.UserService.
func (s *UserServiceImpl) RestoreUser(ctx context.Context, id string) error {
	u, err := s.getUser(ctx, id)
	if err != nil {
		return err
	}
	if !u.IsDeleted() {
		return user.ErrUserNotDeleted
	}

	if err := s.userRepo.Restore(ctx, id); err != nil {
		return fmt.Errorf("failed to restore user: %w", err)
	}

	slog.Info("user restored", "user_id", id, "role", u.Role)
	return nil
}

func (s *UserServiceImpl) getUser(ctx context.Context, id string) (user.User, error) {
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
	return u, nil
}
