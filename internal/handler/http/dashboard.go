package http

import (
	"net/http"

	"github.com/wifiattend/attendance-server/internal/domain/dashboard"
	"github.com/wifiattend/attendance-server/internal/handler/http/response"
)

type DashboardHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// Stats implements DashboardHandler.
func (h *dashboardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}
