package http

import (
	"encoding/json"
	"net/http"

	"github.com/wifiattend/attendance-server/internal/domain/office"
	"github.com/wifiattend/attendance-server/internal/handler/http/response"
	"github.com/wifiattend/attendance-server/internal/pkg/jwt"
)

type OfficeHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type officeHandlerImpl struct {
	officeService office.OfficeService
}

func NewOfficeHandler(officeService office.OfficeService) OfficeHandler {
	return &officeHandlerImpl{officeService: officeService}
}

// Get implements OfficeHandler.
func (h *officeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.officeService.Current(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, cfg)
}

// Create implements OfficeHandler.
func (h *officeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	h.upsert(w, r, true)
}

// Update implements OfficeHandler.
func (h *officeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	h.upsert(w, r, false)
}

func (h *officeHandlerImpl) upsert(w http.ResponseWriter, r *http.Request, create bool) {
	identity, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req office.UpsertOfficeConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if create {
		cfg, err := h.officeService.Create(r.Context(), identity.UserID, req)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Created(w, "Office MAC address saved", cfg)
		return
	}

	cfg, err := h.officeService.Update(r.Context(), identity.UserID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Office MAC address updated", cfg)
}
