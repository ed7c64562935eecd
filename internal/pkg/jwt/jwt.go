package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/wifiattend/attendance-server/internal/domain/user"
)

var ErrMissingClaims = errors.New("token claims missing or invalid")

type Service interface {
	GenerateAccessToken(userID string, employeeID *string, role user.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	now                       func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                       time.Now,
	}
}

func (j *JWTService) GenerateAccessToken(userID string, employeeID *string, role user.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	issuedAt := j.now()
	expiresAt = issuedAt.Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id":     userID,
		"employee_id": returnValueOrNil(employeeID),
		"role":        string(role),
		"type":        "access",
		"iat":         issuedAt.Unix(),
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func returnValueOrNil(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

// Identity is the caller resolved from a verified access token.
type Identity struct {
	UserID     string
	EmployeeID string
	Role       user.Role
}

// IsEmployee reports whether the caller is bound to an employee record.
func (i Identity) IsEmployee() bool {
	return i.EmployeeID != ""
}

// Can reports whether the caller's role grants permission p.
func (i Identity) Can(p user.Permission) bool {
	return user.HasPermission(i.Role, p)
}

// IdentityFromContext reads the claims placed in ctx by jwtauth.Verifier.
func IdentityFromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, err
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Identity{}, ErrMissingClaims
	}
	role, ok := claims["role"].(string)
	if !ok || !user.IsValidRole(user.Role(role)) {
		return Identity{}, ErrMissingClaims
	}
	employeeID, _ := claims["employee_id"].(string)

	return Identity{
		UserID:     userID,
		EmployeeID: employeeID,
		Role:       user.Role(role),
	}, nil
}
