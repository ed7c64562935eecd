package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/wifiattend/attendance-server/internal/domain/leave"
)

type RequestRepository struct {
	kind     leave.Kind
	mu       sync.Mutex
	requests []leave.Request
}

func NewRequestRepository(kind leave.Kind) *RequestRepository {
	return &RequestRepository{kind: kind}
}

func (r *RequestRepository) Kind() leave.Kind {
	return r.kind
}

// Seed stores requests as-is, keeping their CreatedAt and Status.
func (r *RequestRepository) Seed(requests ...leave.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, req := range requests {
		if req.ID == "" {
			req.ID = newID()
		}
		req.Kind = r.kind
		r.requests = append(r.requests, req)
	}
}

func (r *RequestRepository) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req.ID = newID()
	req.Kind = r.kind
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}
	req.UpdatedAt = req.CreatedAt
	r.requests = append(r.requests, req)
	return req, nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, req := range r.requests {
		if req.ID == id {
			return req, nil
		}
	}
	return leave.Request{}, leave.ErrRequestNotFound
}

func (r *RequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Request, error) {
	return r.filter(func(req leave.Request) bool { return req.EmployeeID == employeeID }), nil
}

func (r *RequestRepository) List(ctx context.Context, filter leave.RequestFilter) ([]leave.Request, error) {
	return r.filter(func(req leave.Request) bool {
		return filter.Status == nil || string(req.Status) == *filter.Status
	}), nil
}

func (r *RequestRepository) UpdateStatus(ctx context.Context, id string, status leave.RequestStatus, reviewedBy string, reviewedAt time.Time, rejectionReason *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.requests {
		if r.requests[i].ID != id {
			continue
		}
		if !r.requests[i].IsPending() {
			return leave.ErrRequestAlreadyProcessed
		}
		r.requests[i].Status = status
		r.requests[i].ReviewedBy = &reviewedBy
		r.requests[i].ReviewedAt = &reviewedAt
		r.requests[i].RejectionReason = rejectionReason
		r.requests[i].UpdatedAt = reviewedAt
		return nil
	}
	return leave.ErrRequestNotFound
}

func (r *RequestRepository) CountByStatus(ctx context.Context, employeeID string) (leave.StatusCounts, error) {
	var counts leave.StatusCounts
	for _, req := range r.filter(func(req leave.Request) bool { return req.EmployeeID == employeeID }) {
		switch req.Status {
		case leave.StatusPending:
			counts.Pending++
		case leave.StatusApproved:
			counts.Approved++
		case leave.StatusRejected:
			counts.Rejected++
		}
	}
	return counts, nil
}

func (r *RequestRepository) ListApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Request, error) {
	return r.filter(func(req leave.Request) bool {
		return req.EmployeeID == employeeID &&
			req.Status == leave.StatusApproved &&
			!req.CreatedAt.Before(from) && !req.CreatedAt.After(to)
	}), nil
}

func (r *RequestRepository) CountApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) (int, error) {
	approved, err := r.ListApprovedInRange(ctx, employeeID, from, to)
	return len(approved), err
}

func (r *RequestRepository) filter(keep func(leave.Request) bool) []leave.Request {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []leave.Request
	for _, req := range r.requests {
		if keep(req) {
			out = append(out, req)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}
