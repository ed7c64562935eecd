package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/wifiattend/attendance-server/internal/domain/user"
	"github.com/wifiattend/attendance-server/internal/handler/http/response"
	"github.com/wifiattend/attendance-server/internal/pkg/jwt"
)

// RequirePermission checks if user has specific permission
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return RequireAnyPermission(permission)
}

// RequireAnyPermission passes callers whose role grants at least one of permissions.
func RequireAnyPermission(permissions ...user.Permission) func(http.Handler) http.Handler {
	names := make([]string, 0, len(permissions))
	for _, p := range permissions {
		names = append(names, string(p))
	}
	required := strings.Join(names, "' or '")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := jwt.IdentityFromContext(r.Context())
			if err != nil {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", required))
				return
			}

			if !user.HasAnyPermission(identity.Role, permissions...) {
				slog.Warn("permission denied", "user_id", identity.UserID, "role", identity.Role, "required", required, "path", r.URL.Path)
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but user role is '%s'", required, identity.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
