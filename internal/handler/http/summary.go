package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/wifiattend/attendance-server/internal/domain/summary"
	"github.com/wifiattend/attendance-server/internal/domain/user"
	"github.com/wifiattend/attendance-server/internal/handler/http/response"
	"github.com/wifiattend/attendance-server/internal/pkg/export"
	"github.com/wifiattend/attendance-server/internal/pkg/jwt"
	"github.com/wifiattend/attendance-server/internal/pkg/validator"
)

type SummaryHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	ListSaved(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type summaryHandlerImpl struct {
	summaryService summary.SummaryService
}

func NewSummaryHandler(summaryService summary.SummaryService) SummaryHandler {
	return &summaryHandlerImpl{summaryService: summaryService}
}

// authorizeEmployee allows callers to reach their own employee record, and
// anyone holding summary.view_all to reach every record. Malformed IDs are
// rejected before ownership is considered.
func authorizeEmployee(identity jwt.Identity, employeeID string) error {
	if !validator.IsValidUUID(employeeID) {
		return summary.ErrInvalidEmployeeID
	}
	if identity.Can(user.PermissionSummaryViewAll) {
		return nil
	}
	if identity.EmployeeID != "" && identity.EmployeeID == employeeID {
		return nil
	}
	slog.Warn("summary access denied", "user_id", identity.UserID, "employee_id", employeeID)
	return summary.ErrForbidden
}

// periodParams reads {employeeId}/{year}/{month}. Non-numeric parts become 0
// and are rejected by the service.
func periodParams(r *http.Request) (string, int, int) {
	year, _ := strconv.Atoi(chi.URLParam(r, "year"))
	month, _ := strconv.Atoi(chi.URLParam(r, "month"))
	return chi.URLParam(r, "employeeId"), year, month
}

// Monthly implements SummaryHandler.
func (h *summaryHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	identity, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID, year, month := periodParams(r)
	if err := authorizeEmployee(identity, employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.summaryService.Aggregate(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, report)
}

// Save implements SummaryHandler.
func (h *summaryHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	identity, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req summary.SaveSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if req.EmployeeID == "" {
		req.EmployeeID = identity.EmployeeID
	}
	if err := authorizeEmployee(identity, req.EmployeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	saved, err := h.summaryService.Save(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Monthly summary saved", saved)
}

// ListSaved implements SummaryHandler.
func (h *summaryHandlerImpl) ListSaved(w http.ResponseWriter, r *http.Request) {
	identity, err := jwt.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID := chi.URLParam(r, "employeeId")
	if err := authorizeEmployee(identity, employeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	saved, err := h.summaryService.ListSaved(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, saved)
}

// Export implements SummaryHandler.
func (h *summaryHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	employeeID, year, month := periodParams(r)

	file, err := h.summaryService.Export(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.File(w, export.ContentTypeXLSX, file.Filename, file.Content)
}
