package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/wifiattend/attendance-server/internal/domain/auth"
	"github.com/wifiattend/attendance-server/internal/handler/http/response"
	"github.com/wifiattend/attendance-server/internal/pkg/jwt"
)

// AuthRequired rejects requests without a verified access token carrying a
// known role. It must run after jwtauth.Verifier.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		tokenType, ok := claims["type"].(string)
		if !ok || tokenType != "access" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if _, err := jwt.IdentityFromContext(r.Context()); err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireEmployee rejects callers whose token is not bound to an employee record.
func RequireEmployee(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := jwt.IdentityFromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}
		if !identity.IsEmployee() {
			response.HandleError(w, auth.ErrMissingEmployee)
			return
		}
		next.ServeHTTP(w, r)
	})
}
