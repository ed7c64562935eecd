package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wifiattend/attendance-server/internal/domain/auth"
	"github.com/wifiattend/attendance-server/internal/domain/employee"
	"github.com/wifiattend/attendance-server/internal/domain/user"
	"github.com/wifiattend/attendance-server/internal/pkg/jwt"
	"github.com/wifiattend/attendance-server/internal/repository/memory"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt"

type fixture struct {
	svc       auth.AuthService
	jwt       jwt.Service
	users     *memory.UserRepository
	employees *memory.EmployeeRepository
}

func newFixture() fixture {
	users := memory.NewUserRepository()
	employees := memory.NewEmployeeRepository()
	jwtService := jwt.NewJWTService(testSecret, "1h")
	return fixture{
		svc:       NewAuthService(users, employees, jwtService),
		jwt:       jwtService,
		users:     users,
		employees: employees,
	}
}

func (f fixture) createUser(t *testing.T, username, password string, role user.Role) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u, err := f.users.Create(context.Background(), user.User{Username: username, PasswordHash: string(hash), Role: role})
	require.NoError(t, err)
	return u
}

func TestLogin_Employee(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	u := f.createUser(t, "asha", "password123", user.RoleEmployee)
	emp, err := f.employees.Create(ctx, employee.Employee{UserID: u.ID, FullName: "Asha Rao"})
	require.NoError(t, err)

	resp, err := f.svc.Login(ctx, auth.LoginRequest{Username: "asha", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "employee", resp.Role)
	require.NotNil(t, resp.EmployeeID)
	assert.Equal(t, emp.ID, *resp.EmployeeID)

	token, err := f.jwt.JWTAuth().Decode(resp.AccessToken)
	require.NoError(t, err)
	claim, ok := token.Get("employee_id")
	require.True(t, ok)
	assert.Equal(t, emp.ID, claim)
}

func TestLogin_Admin(t *testing.T) {
	f := newFixture()
	f.createUser(t, "hr.admin", "password123", user.RoleAdmin)

	resp, err := f.svc.Login(context.Background(), auth.LoginRequest{Username: "hr.admin", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.Role)
	assert.Nil(t, resp.EmployeeID)
}

func TestLogin_Rejections(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.createUser(t, "orphan", "password123", user.RoleEmployee)
	gone := f.createUser(t, "gone", "password123", user.RoleAdmin)
	require.NoError(t, f.users.SoftDelete(ctx, gone.ID))

	tests := []struct {
		name string
		req  auth.LoginRequest
	}{
		{"unknown user", auth.LoginRequest{Username: "nobody", Password: "password123"}},
		{"wrong password", auth.LoginRequest{Username: "orphan", Password: "wrong-pass"}},
		{"employee without record", auth.LoginRequest{Username: "orphan", Password: "password123"}},
		{"deleted account", auth.LoginRequest{Username: "gone", Password: "password123"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Login(ctx, tt.req)
			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		})
	}

	_, err := f.svc.Login(ctx, auth.LoginRequest{})
	assert.ErrorContains(t, err, "username is required")
}

func TestEnsureSuperAdmin(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	require.NoError(t, f.svc.EnsureSuperAdmin(ctx, "root", "bootstrap-pass"))
	require.NoError(t, f.svc.EnsureSuperAdmin(ctx, "root", "other-pass"))
	require.NoError(t, f.svc.EnsureSuperAdmin(ctx, "", ""))

	supers, err := f.users.ListByRole(ctx, user.RoleSuperAdmin, false)
	require.NoError(t, err)
	require.Len(t, supers, 1)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(supers[0].PasswordHash), []byte("bootstrap-pass")))

	resp, err := f.svc.Login(ctx, auth.LoginRequest{Username: "root", Password: "bootstrap-pass"})
	require.NoError(t, err)
	assert.Equal(t, "superadmin", resp.Role)
}
