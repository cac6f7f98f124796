package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-console/internal/domain/leave"
	"github.com/cmlabs-hris/hris-console/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Mine(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Pending(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

// Mine implements LeaveHandler.
func (h *leaveHandlerImpl) Mine(w http.ResponseWriter, r *http.Request) {
	view, err := h.leaveService.Mine(r.Context())
	if err != nil {
		slog.Error("Mine service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}

// Submit implements LeaveHandler.
func (h *leaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req leave.SubmitRequest
	if !decodeJSON(w, r, "Submit", &req) {
		return
	}

	created, err := h.leaveService.Submit(r.Context(), req)
	if err != nil {
		slog.Error("Submit service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request submitted", created)
}

// Pending implements LeaveHandler.
func (h *leaveHandlerImpl) Pending(w http.ResponseWriter, r *http.Request) {
	pending, err := h.leaveService.Pending(r.Context())
	if err != nil {
		slog.Error("Pending service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, pending)
}

// Resolve implements LeaveHandler.
func (h *leaveHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	var req leave.ResolveRequest
	if !decodeJSON(w, r, "Resolve", &req) {
		return
	}

	resolved, err := h.leaveService.Resolve(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Resolve service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request resolved", resolved)
}
