package leave

import "context"

// RequestService runs the approval workflow for one Kind of request.
type RequestService interface {
	Kind() Kind
	Create(ctx context.Context, employeeID string, req CreateRequest) (RequestResponse, error)
	ListMine(ctx context.Context, employeeID string) ([]RequestResponse, error)
	List(ctx context.Context, filter RequestFilter) ([]RequestResponse, error)
	Approve(ctx context.Context, id string, reviewerID string) error
	Reject(ctx context.Context, id string, reviewerID string, req RejectRequest) error
	StatusCounts(ctx context.Context, employeeID string) (StatusCounts, error)
}
