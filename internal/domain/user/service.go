package user

import "context"

// AdminService manages admin accounts on behalf of a superadmin.
type AdminService interface {
	CreateAdmin(ctx context.Context, req CreateAdminRequest) (UserResponse, error)
	ListAdmins(ctx context.Context) ([]UserResponse, error)
	UpdateAdmin(ctx context.Context, req UpdateAdminRequest) (UserResponse, error)
	DeleteAdmin(ctx context.Context, id string) error
	ListDeletedAdmins(ctx context.Context) ([]UserResponse, error)
	RestoreAdmin(ctx context.Context, id string) error
}

// UserService manages every account, whatever its role, on behalf of a superadmin.
type UserService interface {
	ListUsers(ctx context.Context, filter UserFilter) ([]UserResponse, error)
	// DeleteUser soft-deletes id. actorID is the caller and may not delete itself.
	DeleteUser(ctx context.Context, actorID, id string) error
	RestoreUser(ctx context.Context, id string) error
}
