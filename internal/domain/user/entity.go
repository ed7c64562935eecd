package user

import "time"

type Role string

const (
	RoleSuperAdmin Role = "superadmin" // Manages admins and the office network
	RoleAdmin      Role = "admin"      // Manages employees, approves requests
	RoleEmployee   Role = "employee"   // Checks in/out, files requests
)

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time

	// DTO / Join
	EmployeeID *string
}

// IsDeleted reports whether the account has been soft-deleted.
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// IsValidRole reports whether r is one of the known roles.
func IsValidRole(r Role) bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleEmployee:
		return true
	}
	return false
}
