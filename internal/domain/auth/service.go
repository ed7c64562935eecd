package auth

import (
	"context"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// EnsureSuperAdmin creates the initial superadmin account when no user with that username exists.
	EnsureSuperAdmin(ctx context.Context, username, password string) error
}
