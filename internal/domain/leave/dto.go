package leave

import (
	"github.com/wifiattend/attendance-server/internal/pkg/validator"
)

type CreateRequest struct {
	Reason string `json:"reason"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	} else if len(r.Reason) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectRequest struct {
	Reason *string `json:"reason,omitempty"`
}

type RequestFilter struct {
	Status *string
}

func (f *RequestFilter) Validate() error {
	if f.Status != nil && !IsValidStatus(RequestStatus(*f.Status)) {
		return validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be one of: Pending, Approved, Rejected",
		}}
	}
	return nil
}

type RequestResponse struct {
	ID              string        `json:"id"`
	EmployeeID      string        `json:"employee_id"`
	EmployeeName    string        `json:"employee_name,omitempty"`
	Kind            Kind          `json:"kind"`
	Reason          string        `json:"reason"`
	Status          RequestStatus `json:"status"`
	ReviewedBy      *string       `json:"reviewed_by,omitempty"`
	ReviewedAt      *string       `json:"reviewed_at,omitempty"`
	RejectionReason *string       `json:"rejection_reason,omitempty"`
	CreatedAt       string        `json:"created_at"`
}

func NewRequestResponse(r Request) RequestResponse {
	resp := RequestResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		EmployeeName:    r.EmployeeName,
		Kind:            r.Kind,
		Reason:          r.Reason,
		Status:          r.Status,
		ReviewedBy:      r.ReviewedBy,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if r.ReviewedAt != nil {
		at := r.ReviewedAt.Format("2006-01-02 15:04:05")
		resp.ReviewedAt = &at
	}
	return resp
}
