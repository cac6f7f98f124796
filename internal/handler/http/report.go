package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-console/internal/domain/report"
	"github.com/cmlabs-hris/hris-console/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	MyAttendance(w http.ResponseWriter, r *http.Request)
	UserAttendance(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// MyAttendance handles GET /attendance/me/report.{format}
func (h *reportHandlerImpl) MyAttendance(w http.ResponseWriter, r *http.Request) {
	format, err := report.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	month, err := monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	doc, err := h.reportService.MyAttendance(r.Context(), month, format)
	if err != nil {
		slog.Error("MyAttendance report error", "error", err)
		response.HandleError(w, err)
		return
	}
	writeDocument(w, doc, format)
}

// UserAttendance handles GET /users/{id}/report.{format}
func (h *reportHandlerImpl) UserAttendance(w http.ResponseWriter, r *http.Request) {
	format, err := report.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	month, err := monthParam(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	doc, err := h.reportService.UserAttendance(r.Context(), chi.URLParam(r, "id"), month, format)
	if err != nil {
		slog.Error("UserAttendance report error", "error", err)
		response.HandleError(w, err)
		return
	}
	writeDocument(w, doc, format)
}

// HTML reports open for printing; PDF and XLSX download.
func writeDocument(w http.ResponseWriter, doc report.Document, format report.Format) {
	response.File(w, doc.FileName, doc.ContentType, doc.Body, format == report.FormatHTML)
}
