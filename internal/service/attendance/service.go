package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hris-console/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console/internal/pkg/clock"
	"github.com/cmlabs-hris/hris-console/internal/pkg/sse"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	publisher sse.Publisher
	clock     clock.Clock
}

func NewAttendanceService(repo attendance.AttendanceRepository, publisher sse.Publisher, clk clock.Clock) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		publisher:            publisher,
		clock:                clk,
	}
}

// resolveMonth defaults to the current month and rejects impossible ones.
func (s *AttendanceServiceImpl) resolveMonth(month *attendance.Month) (attendance.Month, error) {
	if month == nil {
		return attendance.MonthOf(s.clock.Now()), nil
	}
	if !month.Valid() {
		return attendance.Month{}, attendance.ErrInvalidMonth
	}
	return *month, nil
}

// MyMonth implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MyMonth(ctx context.Context, month *attendance.Month) (attendance.MonthView, error) {
	m, err := s.resolveMonth(month)
	if err != nil {
		return attendance.MonthView{}, err
	}

	from, to := m.Range()
	summaries, err := s.ListMyDailySummary(ctx, from, to)
	if err != nil {
		return attendance.MonthView{}, fmt.Errorf("list daily summary: %w", err)
	}
	return attendance.NewMonthView(summaries, m, s.clock.Now()), nil
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, ip string) (attendance.Event, error) {
	return s.mark(ctx, attendance.ActionCheckIn, attendance.EventKindCheckIn, ip)
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, ip string) (attendance.Event, error) {
	return s.mark(ctx, attendance.ActionCheckOut, attendance.EventKindCheckOut, ip)
}

func (s *AttendanceServiceImpl) mark(ctx context.Context, want attendance.Action, kind attendance.EventKind, ip string) (attendance.Event, error) {
	today := s.clock.Today()
	summaries, err := s.ListMyDailySummary(ctx, today, today)
	if err != nil {
		return attendance.Event{}, fmt.Errorf("list today summary: %w", err)
	}

	if got := attendance.QuickAction(attendance.Find(summaries, today)); got != want {
		return attendance.Event{}, attendance.ErrActionNotAllowed
	}

	return s.Mark(ctx, attendance.MarkRequest{
		Kind:      strings.ToLower(string(kind)),
		Origin:    attendance.OriginWeb,
		IPAddress: ip,
	})
}

// UserMonth implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UserMonth(ctx context.Context, userID string, month *attendance.Month) (attendance.MonthView, error) {
	if strings.TrimSpace(userID) == "" {
		return attendance.MonthView{}, attendance.ErrUserIDRequired
	}
	m, err := s.resolveMonth(month)
	if err != nil {
		return attendance.MonthView{}, err
	}

	from, to := m.Range()
	summaries, err := s.ListUserDailySummary(ctx, userID, from, to)
	if err != nil {
		return attendance.MonthView{}, fmt.Errorf("list user daily summary: %w", err)
	}
	return attendance.NewMonthView(summaries, m, s.clock.Now()), nil
}

// MyEvents implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MyEvents(ctx context.Context) ([]attendance.Event, error) {
	events, err := s.ListMyEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list my events: %w", err)
	}
	return attendance.NewestFirst(append([]attendance.Event{}, events...)), nil
}

// UserEvents implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UserEvents(ctx context.Context, userID string) (attendance.UserEventsView, error) {
	if strings.TrimSpace(userID) == "" {
		return attendance.UserEventsView{}, attendance.ErrUserIDRequired
	}
	events, err := s.ListUserEvents(ctx, userID)
	if err != nil {
		return attendance.UserEventsView{}, fmt.Errorf("list user events: %w", err)
	}
	if events == nil {
		events = []attendance.Event{}
	}
	return attendance.UserEventsView{
		Events:   events,
		Voidable: attendance.Voidable(events),
	}, nil
}

// CreateManual implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CreateManual(ctx context.Context, req attendance.ManualEventRequest) (attendance.Event, error) {
	if err := req.Validate(); err != nil {
		return attendance.Event{}, err
	}

	ev, err := s.AttendanceRepository.CreateManual(ctx, req)
	if err != nil {
		return attendance.Event{}, err
	}

	s.publisher.Publish(req.UserID, sse.NewEvent(req.UserID, sse.EventAttendanceManual, ev))
	return ev, nil
}

// Void implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Void(ctx context.Context, userID, eventID string, req attendance.VoidEventRequest) (attendance.Event, error) {
	if strings.TrimSpace(userID) == "" {
		return attendance.Event{}, attendance.ErrUserIDRequired
	}
	req.Normalize()

	events, err := s.ListUserEvents(ctx, userID)
	if err != nil {
		return attendance.Event{}, fmt.Errorf("list user events: %w", err)
	}

	var target *attendance.Event
	for i := range events {
		if events[i].ID == eventID {
			target = &events[i]
			break
		}
	}
	if target == nil {
		return attendance.Event{}, attendance.ErrEventNotFound
	}
	if target.IsVoided() {
		return attendance.Event{}, attendance.ErrEventAlreadyVoided
	}

	ev, err := s.AttendanceRepository.Void(ctx, eventID, req)
	if err != nil {
		slog.Error("void attendance event", "event_id", eventID, "user_id", userID, "error", err)
		return attendance.Event{}, err
	}
	if ev.ID == "" {
		ev = *target
		ev.State = attendance.EventStateVoided
		ev.Note = req.Note
	}

	s.publisher.Publish(userID, sse.NewEvent(userID, sse.EventAttendanceVoided, ev))
	return ev, nil
}
