package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wifiattend/attendance-server/internal/domain/user"
	"github.com/wifiattend/attendance-server/internal/pkg/jwt"
)

func newRouter(t *testing.T, svc jwt.Service) http.Handler {
	t.Helper()
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }

	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(svc.JWTAuth()))
	r.Use(AuthRequired)
	r.With(RequirePermission(user.PermissionOfficeManage)).Put("/office", ok)
	r.With(RequireAnyPermission(user.PermissionSummaryViewOwn, user.PermissionSummaryViewAll)).Get("/summary", ok)
	r.With(RequireEmployee).Post("/checkin", ok)
	return r
}

func bearer(t *testing.T, svc jwt.Service, employeeID *string, role user.Role) string {
	t.Helper()
	token, _, err := svc.GenerateAccessToken("0191a8f0-0000-7000-8000-0000000000aa", employeeID, role)
	require.NoError(t, err)
	return "Bearer " + token
}

func do(h http.Handler, method, path, authorization string) int {
	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestAuthRequired(t *testing.T) {
	svc := jwt.NewJWTService("middleware-secret", "1h")
	h := newRouter(t, svc)

	assert.Equal(t, http.StatusUnauthorized, do(h, http.MethodGet, "/summary", ""))
	assert.Equal(t, http.StatusUnauthorized, do(h, http.MethodGet, "/summary", "Bearer not-a-token"))

	other := jwt.NewJWTService("other-secret", "1h")
	assert.Equal(t, http.StatusUnauthorized, do(h, http.MethodGet, "/summary", bearer(t, other, nil, user.RoleAdmin)))
}

func TestRequirePermission(t *testing.T) {
	svc := jwt.NewJWTService("middleware-secret", "1h")
	h := newRouter(t, svc)
	employeeID := "0191a8f0-0000-7000-8000-000000000001"

	assert.Equal(t, http.StatusNoContent, do(h, http.MethodPut, "/office", bearer(t, svc, nil, user.RoleSuperAdmin)))
	assert.Equal(t, http.StatusForbidden, do(h, http.MethodPut, "/office", bearer(t, svc, nil, user.RoleAdmin)))

	assert.Equal(t, http.StatusNoContent, do(h, http.MethodGet, "/summary", bearer(t, svc, &employeeID, user.RoleEmployee)))
	assert.Equal(t, http.StatusNoContent, do(h, http.MethodGet, "/summary", bearer(t, svc, nil, user.RoleAdmin)))
	assert.Equal(t, http.StatusForbidden, do(h, http.MethodGet, "/summary", bearer(t, svc, nil, user.RoleSuperAdmin)))
}

func TestRequireEmployee(t *testing.T) {
	svc := jwt.NewJWTService("middleware-secret", "1h")
	h := newRouter(t, svc)
	employeeID := "0191a8f0-0000-7000-8000-000000000001"

	assert.Equal(t, http.StatusNoContent, do(h, http.MethodPost, "/checkin", bearer(t, svc, &employeeID, user.RoleEmployee)))
	assert.Equal(t, http.StatusForbidden, do(h, http.MethodPost, "/checkin", bearer(t, svc, nil, user.RoleAdmin)))
}
