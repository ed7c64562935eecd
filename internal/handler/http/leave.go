package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wifiattend/attendance-server/internal/domain/leave"
	"github.com/wifiattend/attendance-server/internal/handler/http/response"
	"github.com/wifiattend/attendance-server/internal/pkg/jwt"
)

// RequestHandler serves one Kind of request; leave and permission routes
// each get their own instance.
type RequestHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	StatusCounts(w http.ResponseWriter, r *http.Request)
}

type requestHandlerImpl struct {
	requestService leave.RequestService
}

func NewRequestHandler(requestService leave.RequestService) RequestHandler {
	return &requestHandlerImpl{requestService: requestService}
}

// Create implements RequestHandler.
func (h *requestHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	identity, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.requestService.Create(r.Context(), identity.EmployeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, fmt.Sprintf("%s submitted", h.requestService.Kind().Label()), created)
}

// ListMine implements RequestHandler.
func (h *requestHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	identity, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.requestService.ListMine(r.Context(), identity.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// List implements RequestHandler.
func (h *requestHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter leave.RequestFilter
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	requests, err := h.requestService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// Approve implements RequestHandler.
func (h *requestHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	identity, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.requestService.Approve(r.Context(), chi.URLParam(r, "id"), identity.UserID); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, fmt.Sprintf("%s approved", h.requestService.Kind().Label()), nil)
}

// Reject implements RequestHandler.
func (h *requestHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	identity, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// The body is optional.
	var req leave.RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.requestService.Reject(r.Context(), chi.URLParam(r, "id"), identity.UserID, req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, fmt.Sprintf("%s rejected", h.requestService.Kind().Label()), nil)
}

// StatusCounts implements RequestHandler.
func (h *requestHandlerImpl) StatusCounts(w http.ResponseWriter, r *http.Request) {
	identity, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	counts, err := h.requestService.StatusCounts(r.Context(), identity.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, counts)
}
