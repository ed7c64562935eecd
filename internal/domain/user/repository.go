package user

import (
	"context"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	Update(ctx context.Context, u User) error
	ListByRole(ctx context.Context, role Role, deleted bool) ([]User, error)
	// List returns accounts matching filter, ordered by username. An empty Role matches every role.
	List(ctx context.Context, filter UserFilter) ([]User, error)
	SoftDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
}
