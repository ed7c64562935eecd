package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wifiattend/attendance-server/internal/domain/user"
	"github.com/wifiattend/attendance-server/internal/pkg/validator"
	"github.com/wifiattend/attendance-server/internal/repository/memory"
)

func seedUsers(t *testing.T, repo *memory.UserRepository) (root, admin, emp user.User) {
	t.Helper()
	ctx := context.Background()

	var err error
	root, err = repo.Create(ctx, user.User{Username: "root", Role: user.RoleSuperAdmin})
	require.NoError(t, err)
	admin, err = repo.Create(ctx, user.User{Username: "hr.admin", Role: user.RoleAdmin})
	require.NoError(t, err)
	emp, err = repo.Create(ctx, user.User{Username: "asha", Role: user.RoleEmployee})
	require.NoError(t, err)
	return root, admin, emp
}

func TestUserService_ListUsers(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()
	_, _, emp := seedUsers(t, repo)

	all, err := svc.ListUsers(ctx, user.UserFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "asha", all[0].Username)

	employees, err := svc.ListUsers(ctx, user.UserFilter{Role: user.RoleEmployee})
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, emp.ID, employees[0].ID)

	deleted, err := svc.ListUsers(ctx, user.UserFilter{Deleted: true})
	require.NoError(t, err)
	assert.Empty(t, deleted)

	_, err = svc.ListUsers(ctx, user.UserFilter{Role: "owner"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestUserService_DeleteAndRestore(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()
	root, admin, emp := seedUsers(t, repo)

	require.NoError(t, svc.DeleteUser(ctx, root.ID, emp.ID))
	assert.ErrorIs(t, svc.DeleteUser(ctx, root.ID, emp.ID), user.ErrUserAlreadyDeleted)
	require.NoError(t, svc.DeleteUser(ctx, root.ID, admin.ID))

	deleted, err := svc.ListUsers(ctx, user.UserFilter{Deleted: true})
	require.NoError(t, err)
	assert.Len(t, deleted, 2)

	live, err := svc.ListUsers(ctx, user.UserFilter{})
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, root.ID, live[0].ID)

	require.NoError(t, svc.RestoreUser(ctx, emp.ID))
	assert.ErrorIs(t, svc.RestoreUser(ctx, emp.ID), user.ErrUserNotDeleted)

	stored, err := repo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsDeleted())
}

func TestUserService_DeleteRejections(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()
	root, _, _ := seedUsers(t, repo)

	assert.ErrorIs(t, svc.DeleteUser(ctx, root.ID, root.ID), user.ErrCannotDeleteSelf)
	assert.ErrorIs(t, svc.DeleteUser(ctx, root.ID, "0191a8f0-0000-7000-8000-00000000dead"), user.ErrUserNotFound)
	assert.ErrorIs(t, svc.RestoreUser(ctx, "0191a8f0-0000-7000-8000-00000000dead"), user.ErrUserNotFound)

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, svc.DeleteUser(ctx, root.ID, "42"), &verrs)
}
