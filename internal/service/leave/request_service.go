package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/wifiattend/attendance-server/internal/domain/employee"
	"github.com/wifiattend/attendance-server/internal/domain/leave"
	"github.com/wifiattend/attendance-server/internal/pkg/validator"
)

// RequestServiceImpl runs the approval workflow for the Kind its repository stores.
type RequestServiceImpl struct {
	leave.RequestRepository
	employee.EmployeeRepository
	now func() time.Time
}

func NewRequestService(requestRepository leave.RequestRepository, employeeRepository employee.EmployeeRepository, now func() time.Time) leave.RequestService {
	return &RequestServiceImpl{
		RequestRepository:  requestRepository,
		EmployeeRepository: employeeRepository,
		now:                now,
	}
}

// Kind implements leave.RequestService.
func (r *RequestServiceImpl) Kind() leave.Kind {
	return r.RequestRepository.Kind()
}

// Create implements leave.RequestService.
func (r *RequestServiceImpl) Create(ctx context.Context, employeeID string, req leave.CreateRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	emp, err := r.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.RequestResponse{}, err
		}
		return leave.RequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if emp.IsDeleted() {
		return leave.RequestResponse{}, employee.ErrEmployeeNotFound
	}

	created, err := r.RequestRepository.Create(ctx, leave.Request{
		EmployeeID: employeeID,
		Reason:     strings.TrimSpace(req.Reason),
		Status:     leave.StatusPending,
		CreatedAt:  r.now(),
	})
	if err != nil {
		slog.Error("failed to create request", "kind", r.Kind(), "employee_id", employeeID, "error", err)
		return leave.RequestResponse{}, fmt.Errorf("failed to create %s request: %w", r.Kind(), err)
	}
	created.EmployeeName = emp.FullName

	return leave.NewRequestResponse(created), nil
}

// ListMine implements leave.RequestService.
func (r *RequestServiceImpl) ListMine(ctx context.Context, employeeID string) ([]leave.RequestResponse, error) {
	requests, err := r.RequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s requests: %w", r.Kind(), err)
	}
	return toResponses(requests), nil
}

// List implements leave.RequestService.
func (r *RequestServiceImpl) List(ctx context.Context, filter leave.RequestFilter) ([]leave.RequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := r.RequestRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s requests: %w", r.Kind(), err)
	}
	return toResponses(requests), nil
}

// Approve implements leave.RequestService.
func (r *RequestServiceImpl) Approve(ctx context.Context, id string, reviewerID string) error {
	return r.review(ctx, id, reviewerID, leave.StatusApproved, nil)
}

// Reject implements leave.RequestService.
func (r *RequestServiceImpl) Reject(ctx context.Context, id string, reviewerID string, req leave.RejectRequest) error {
	return r.review(ctx, id, reviewerID, leave.StatusRejected, req.Reason)
}

func (r *RequestServiceImpl) review(ctx context.Context, id, reviewerID string, status leave.RequestStatus, reason *string) error {
	if !validator.IsValidUUID(id) {
		return validator.ValidationErrors{{Field: "id", Message: "id must be a valid UUID"}}
	}

	request, err := r.RequestRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, leave.ErrRequestNotFound) {
			return err
		}
		return fmt.Errorf("failed to get %s request by ID: %w", r.Kind(), err)
	}

	if !request.IsPending() {
		slog.Warn("review rejected: request already processed", "kind", r.Kind(), "request_id", id, "status", request.Status)
		return leave.ErrRequestAlreadyProcessed
	}

	if err := r.RequestRepository.UpdateStatus(ctx, id, status, reviewerID, r.now(), reason); err != nil {
		if errors.Is(err, leave.ErrRequestAlreadyProcessed) {
			return err
		}
		return fmt.Errorf("failed to update %s request: %w", r.Kind(), err)
	}

	slog.Info("request reviewed", "kind", r.Kind(), "request_id", id, "status", status, "reviewed_by", reviewerID)
	return nil
}

// StatusCounts implements leave.RequestService.
func (r *RequestServiceImpl) StatusCounts(ctx context.Context, employeeID string) (leave.StatusCounts, error) {
	counts, err := r.RequestRepository.CountByStatus(ctx, employeeID)
	if err != nil {
		return leave.StatusCounts{}, fmt.Errorf("failed to count %s requests: %w", r.Kind(), err)
	}
	return counts, nil
}

func toResponses(requests []leave.Request) []leave.RequestResponse {
	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.NewRequestResponse(req))
	}
	return responses
}
