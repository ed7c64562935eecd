package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wifiattend/attendance-server/internal/domain/user"
	"github.com/wifiattend/attendance-server/internal/handler/http/response"
)

type AdminHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListDeleted(w http.ResponseWriter, r *http.Request)
	Restore(w http.ResponseWriter, r *http.Request)
}

type adminHandlerImpl struct {
	adminService user.AdminService
}

func NewAdminHandler(adminService user.AdminService) AdminHandler {
	return &adminHandlerImpl{adminService: adminService}
}

// Create implements AdminHandler.
func (h *adminHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req user.CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.adminService.CreateAdmin(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Admin created successfully", created)
}

// List implements AdminHandler.
func (h *adminHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	admins, err := h.adminService.ListAdmins(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, admins)
}

// Update implements AdminHandler.
func (h *adminHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.adminService.UpdateAdmin(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Admin updated successfully", updated)
}

// Delete implements AdminHandler.
func (h *adminHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.DeleteAdmin(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Admin deleted successfully", nil)
}

// ListDeleted implements AdminHandler.
func (h *adminHandlerImpl) ListDeleted(w http.ResponseWriter, r *http.Request) {
	admins, err := h.adminService.ListDeletedAdmins(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, admins)
}

// Restore implements AdminHandler.
func (h *adminHandlerImpl) Restore(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.RestoreAdmin(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Admin restored successfully", nil)
}
