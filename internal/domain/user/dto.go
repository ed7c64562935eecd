package user

import (
	"github.com/wifiattend/attendance-server/internal/pkg/validator"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	Role       string  `json:"role"`
	EmployeeID *string `json:"employee_id,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
	DeletedAt  *string `json:"deleted_at,omitempty"`
}

// NewUserResponse maps a User to its API representation
func NewUserResponse(u User) UserResponse {
	resp := UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Role:       string(u.Role),
		EmployeeID: u.EmployeeID,
		CreatedAt:  u.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:  u.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if u.DeletedAt != nil {
		deletedAt := u.DeletedAt.Format("2006-01-02 15:04:05")
		resp.DeletedAt = &deletedAt
	}
	return resp
}

// CreateAdminRequest represents request to create a new admin account
type CreateAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *CreateAdminRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	} else if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 letters, digits, '.', '_' or '-'",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateAdminRequest represents request to update an admin account
type UpdateAdminRequest struct {
	ID       string  `json:"-"`
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
}

func (r *UpdateAdminRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if r.Username != nil && !validator.IsValidUsername(*r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 letters, digits, '.', '_' or '-'",
		})
	}

	if r.Password != nil && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if r.Username == nil && r.Password == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one of username or password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UserFilter narrows the account list. Deleted selects soft-deleted accounts instead of live ones.
type UserFilter struct {
	Role    Role
	Deleted bool
}

func (f *UserFilter) Validate() error {
	if f.Role != "" && !IsValidRole(f.Role) {
		return validator.ValidationErrors{{
			Field:   "role",
			Message: "role must be one of superadmin, admin or employee",
		}}
	}
	return nil
}
