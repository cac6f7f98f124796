package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-console/internal/domain/schedule"
	"github.com/cmlabs-hris/hris-console/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ScheduleHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{scheduleService: scheduleService}
}

// Get implements ScheduleHandler.
func (h *scheduleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.scheduleService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Get schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, s)
}

// Save implements ScheduleHandler.
func (h *scheduleHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req schedule.WeeklySchedule
	if !decodeJSON(w, r, "Save schedule", &req) {
		return
	}

	saved, err := h.scheduleService.Save(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Save schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Work schedule saved", saved)
}
