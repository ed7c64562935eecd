package leave

import (
	"context"
	"time"
)

// RequestRepository stores the requests of a single Kind.
type RequestRepository interface {
	Kind() Kind
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Request, error)
	List(ctx context.Context, filter RequestFilter) ([]Request, error)
	// UpdateStatus moves a Pending request to status. Returns ErrRequestAlreadyProcessed when it is no longer pending.
	UpdateStatus(ctx context.Context, id string, status RequestStatus, reviewedBy string, reviewedAt time.Time, rejectionReason *string) error
	CountByStatus(ctx context.Context, employeeID string) (StatusCounts, error)
	// ListApprovedInRange returns approved requests created within [from, to].
	ListApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]Request, error)
	CountApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) (int, error)
}
