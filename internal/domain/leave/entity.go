package leave

import (
	"time"
)

// Kind distinguishes full-day leave from shorter permission requests.
// Both follow the same approval workflow.
type Kind string

const (
	KindLeave      Kind = "leave"
	KindPermission Kind = "permission"
)

// Label is the human-readable name used in messages.
func (k Kind) Label() string {
	if k == KindPermission {
		return "Permission request"
	}
	return "Leave request"
}

type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusApproved RequestStatus = "Approved"
	StatusRejected RequestStatus = "Rejected"
)

func IsValidStatus(s RequestStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Request struct {
	ID              string
	EmployeeID      string
	Kind            Kind
	Reason          string
	Status          RequestStatus
	ReviewedBy      *string
	ReviewedAt      *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeName string
}

func (r Request) IsPending() bool {
	return r.Status == StatusPending
}

type StatusCounts struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}
