package employee

import (
	"strings"

	"github.com/wifiattend/attendance-server/internal/pkg/macaddr"
	"github.com/wifiattend/attendance-server/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Username         string  `json:"username"`
	Password         string  `json:"password"`
	FullName         string  `json:"full_name"`
	Email            *string `json:"email,omitempty"`
	PhoneNumber      *string `json:"phone_number,omitempty"`
	Designation      *string `json:"designation,omitempty"`
	MobileMacAddress string  `json:"mobile_mac_address"`
	LaptopMacAddress string  `json:"laptop_mac_address"`
}

func (r *CreateEmployeeRequest) Validate() error {
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

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	} else if len(r.FullName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 255 characters",
		})
	}

	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	errs = append(errs, validateMac("mobile_mac_address", r.MobileMacAddress)...)
	errs = append(errs, validateMac("laptop_mac_address", r.LaptopMacAddress)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Normalize canonicalizes the registered MAC addresses and trims free-text fields.
func (r *CreateEmployeeRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.FullName = strings.TrimSpace(r.FullName)
	r.MobileMacAddress = macaddr.Normalize(r.MobileMacAddress)
	r.LaptopMacAddress = macaddr.Normalize(r.LaptopMacAddress)
}

type UpdateEmployeeRequest struct {
	ID               string  `json:"-"`
	FullName         *string `json:"full_name,omitempty"`
	Email            *string `json:"email,omitempty"`
	PhoneNumber      *string `json:"phone_number,omitempty"`
	Designation      *string `json:"designation,omitempty"`
	MobileMacAddress *string `json:"mobile_mac_address,omitempty"`
	LaptopMacAddress *string `json:"laptop_mac_address,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if r.MobileMacAddress != nil {
		errs = append(errs, validateMac("mobile_mac_address", *r.MobileMacAddress)...)
	}
	if r.LaptopMacAddress != nil {
		errs = append(errs, validateMac("laptop_mac_address", *r.LaptopMacAddress)...)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Apply copies the provided fields onto e, normalizing MAC addresses.
func (r *UpdateEmployeeRequest) Apply(e *Employee) {
	if r.FullName != nil {
		e.FullName = strings.TrimSpace(*r.FullName)
	}
	if r.Email != nil {
		e.Email = r.Email
	}
	if r.PhoneNumber != nil {
		e.PhoneNumber = r.PhoneNumber
	}
	if r.Designation != nil {
		e.Designation = r.Designation
	}
	if r.MobileMacAddress != nil {
		e.MobileMacAddress = macaddr.Normalize(*r.MobileMacAddress)
	}
	if r.LaptopMacAddress != nil {
		e.LaptopMacAddress = macaddr.Normalize(*r.LaptopMacAddress)
	}
}

func validateMac(field, value string) validator.ValidationErrors {
	if validator.IsEmpty(value) {
		return validator.ValidationErrors{{Field: field, Message: field + " is required"}}
	}
	if !validator.IsValidMAC(value) {
		return validator.ValidationErrors{{Field: field, Message: field + " must contain 12 hexadecimal digits"}}
	}
	return nil
}

type EmployeeFilter struct {
	Search  string
	Deleted bool
	Page    int
	Limit   int
}

// Normalize applies pagination defaults
func (f *EmployeeFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	f.Search = strings.TrimSpace(f.Search)
}

func (f EmployeeFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	UserID           string  `json:"user_id"`
	Username         string  `json:"username,omitempty"`
	FullName         string  `json:"full_name"`
	Email            *string `json:"email,omitempty"`
	PhoneNumber      *string `json:"phone_number,omitempty"`
	Designation      *string `json:"designation,omitempty"`
	MobileMacAddress string  `json:"mobile_mac_address"`
	LaptopMacAddress string  `json:"laptop_mac_address"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
	DeletedAt        *string `json:"deleted_at,omitempty"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               e.ID,
		UserID:           e.UserID,
		Username:         e.Username,
		FullName:         e.FullName,
		Email:            e.Email,
		PhoneNumber:      e.PhoneNumber,
		Designation:      e.Designation,
		MobileMacAddress: e.MobileMacAddress,
		LaptopMacAddress: e.LaptopMacAddress,
		CreatedAt:        e.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:        e.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if e.DeletedAt != nil {
		deletedAt := e.DeletedAt.Format("2006-01-02 15:04:05")
		resp.DeletedAt = &deletedAt
	}
	return resp
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}
