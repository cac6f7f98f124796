package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/cmlabs-hris/hris-console/internal/domain/attendance"
)

type attendanceRepositoryImpl struct {
	client *Client
}

func NewAttendanceRepository(client *Client) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{client: client}
}

func rangeQuery(from, to string) url.Values {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	return q
}

// ListMyDailySummary implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListMyDailySummary(ctx context.Context, from, to string) ([]attendance.DailySummary, error) {
	var out []attendance.DailySummary
	if err := r.client.get(ctx, "/asistencia/mias/resumen-diario", rangeQuery(from, to), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListUserDailySummary implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListUserDailySummary(ctx context.Context, userID, from, to string) ([]attendance.DailySummary, error) {
	var out []attendance.DailySummary
	if err := r.client.get(ctx, "/usuarios/"+escape(userID)+"/resumen-diario", rangeQuery(from, to), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListMyEvents implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListMyEvents(ctx context.Context) ([]attendance.Event, error) {
	var out []attendance.Event
	if err := r.client.get(ctx, "/asistencia/mias", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListUserEvents implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListUserEvents(ctx context.Context, userID string) ([]attendance.Event, error) {
	var out []attendance.Event
	if err := r.client.get(ctx, "/usuarios/"+escape(userID)+"/asistencias", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Mark implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Mark(ctx context.Context, req attendance.MarkRequest) (attendance.Event, error) {
	var out attendance.Event
	err := r.client.send(ctx, http.MethodPost, "/asistencia", req, &out)
	return out, err
}

// CreateManual implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CreateManual(ctx context.Context, req attendance.ManualEventRequest) (attendance.Event, error) {
	var out attendance.Event
	err := r.client.send(ctx, http.MethodPost, "/asistencia/manual", req, &out)
	return out, err
}

// Void implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Void(ctx context.Context, eventID string, req attendance.VoidEventRequest) (attendance.Event, error) {
	var out attendance.Event
	err := r.client.send(ctx, http.MethodPatch, "/asistencia/"+escape(eventID)+"/anular", req, &out)
	return out, err
}
