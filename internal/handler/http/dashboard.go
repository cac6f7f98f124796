package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-console/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-console/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type DashboardHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	UserDetail(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// Dashboard implements DashboardHandler. Partial source failures come back in
// the view's error field with status 200.
func (h *dashboardHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// UserDetail implements DashboardHandler.
func (h *dashboardHandlerImpl) UserDetail(w http.ResponseWriter, r *http.Request) {
	month, err := monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.dashboardService.GetUserDetail(r.Context(), chi.URLParam(r, "id"), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
