package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/wifiattend/attendance-server/internal/domain/user"
)

type UserRepository struct {
	mu    sync.Mutex
	users map[string]user.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]user.User)}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == newUser.Username {
			return user.User{}, user.ErrUsernameExists
		}
	}
	newUser.ID = newID()
	now := time.Now()
	newUser.CreatedAt = now
	newUser.UpdatedAt = now
	r.users[newUser.ID] = newUser
	return newUser, nil
}

func (r *UserRepository) Update(ctx context.Context, updated user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[updated.ID]; !ok {
		return user.ErrUserNotFound
	}
	for id, u := range r.users {
		if id != updated.ID && u.Username == updated.Username {
			return user.ErrUsernameExists
		}
	}
	updated.UpdatedAt = time.Now()
	r.users[updated.ID] = updated
	return nil
}

func (r *UserRepository) ListByRole(ctx context.Context, role user.Role, deleted bool) ([]user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []user.User
	for _, u := range r.users {
		if u.Role == role && u.IsDeleted() == deleted {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *UserRepository) List(ctx context.Context, filter user.UserFilter) ([]user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []user.User
	for _, u := range r.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if u.IsDeleted() != filter.Deleted {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *UserRepository) SoftDelete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok || u.IsDeleted() {
		return user.ErrUserNotFound
	}
	now := time.Now()
	u.DeletedAt = &now
	r.users[id] = u
	return nil
}

func (r *UserRepository) Restore(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok || !u.IsDeleted() {
		return user.ErrUserNotFound
	}
	u.DeletedAt = nil
	r.users[id] = u
	return nil
}
