package jwt

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wifiattend/attendance-server/internal/domain/user"
)

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")
	employeeID := "11111111-1111-1111-1111-111111111111"

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", &employeeID, user.RoleEmployee)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	ctx := jwtauth.NewContext(context.Background(), token, nil)
	id, err := IdentityFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id.UserID)
	assert.Equal(t, employeeID, id.EmployeeID)
	assert.Equal(t, user.RoleEmployee, id.Role)
	assert.True(t, id.IsEmployee())
	assert.True(t, id.Can(user.PermissionAttendanceCheckIn))
}

func TestGenerateAccessToken_AdminHasNoEmployee(t *testing.T) {
	svc := NewJWTService("test-secret", "1h")

	tokenString, _, err := svc.GenerateAccessToken("admin-1", nil, user.RoleAdmin)
	require.NoError(t, err)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	id, err := IdentityFromContext(jwtauth.NewContext(context.Background(), token, nil))
	require.NoError(t, err)
	assert.False(t, id.IsEmployee())
	assert.False(t, id.Can(user.PermissionAttendanceCheckIn))
}

func TestGenerateAccessToken_InvalidDuration(t *testing.T) {
	svc := NewJWTService("test-secret", "forever")

	_, _, err := svc.GenerateAccessToken("user-1", nil, user.RoleAdmin)
	assert.Error(t, err)
}

func TestIdentityFromContext_NoToken(t *testing.T) {
	_, err := IdentityFromContext(context.Background())
	assert.Error(t, err)
}
