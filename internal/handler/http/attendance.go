package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-console/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	MyMonth(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	UserMonth(w http.ResponseWriter, r *http.Request)
	UserEvents(w http.ResponseWriter, r *http.Request)
	MyEvents(w http.ResponseWriter, r *http.Request)
	CreateManual(w http.ResponseWriter, r *http.Request)
	Void(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// MyMonth implements AttendanceHandler.
func (h *attendanceHandlerImpl) MyMonth(w http.ResponseWriter, r *http.Request) {
	month, err := monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	view, err := h.attendanceService.MyMonth(r.Context(), month)
	if err != nil {
		slog.Error("MyMonth service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	event, err := h.attendanceService.CheckIn(r.Context(), clientIP(r))
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Check-in recorded", event)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	event, err := h.attendanceService.CheckOut(r.Context(), clientIP(r))
	if err != nil {
		slog.Error("CheckOut service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Check-out recorded", event)
}

// UserMonth implements AttendanceHandler.
func (h *attendanceHandlerImpl) UserMonth(w http.ResponseWriter, r *http.Request) {
	month, err := monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	view, err := h.attendanceService.UserMonth(r.Context(), chi.URLParam(r, "id"), month)
	if err != nil {
		slog.Error("UserMonth service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}

// MyEvents implements AttendanceHandler.
func (h *attendanceHandlerImpl) MyEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.attendanceService.MyEvents(r.Context())
	if err != nil {
		slog.Error("MyEvents service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, events)
}

// UserEvents implements AttendanceHandler.
func (h *attendanceHandlerImpl) UserEvents(w http.ResponseWriter, r *http.Request) {
	view, err := h.attendanceService.UserEvents(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("UserEvents service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}

// CreateManual implements AttendanceHandler.
func (h *attendanceHandlerImpl) CreateManual(w http.ResponseWriter, r *http.Request) {
	var req attendance.ManualEventRequest
	if !decodeJSON(w, r, "CreateManual", &req) {
		return
	}
	req.UserID = chi.URLParam(r, "id")

	event, err := h.attendanceService.CreateManual(r.Context(), req)
	if err != nil {
		slog.Error("CreateManual service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Attendance recorded", event)
}

// Void implements AttendanceHandler.
func (h *attendanceHandlerImpl) Void(w http.ResponseWriter, r *http.Request) {
	var req attendance.VoidEventRequest
	if r.ContentLength != 0 {
		if !decodeJSON(w, r, "Void", &req) {
			return
		}
	}

	event, err := h.attendanceService.Void(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "eventID"), req)
	if err != nil {
		slog.Error("Void service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance record voided", event)
}
