package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-console/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console/internal/pkg/clock"
	"github.com/cmlabs-hris/hris-console/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	summaries []attendance.DailySummary
	events    []attendance.Event
	err       error

	lastFrom, lastTo string
	marked           []attendance.MarkRequest
	voided           []string
	manual           []attendance.ManualEventRequest
}

func (f *fakeAttendanceRepo) ListMyDailySummary(_ context.Context, from, to string) ([]attendance.DailySummary, error) {
	f.lastFrom, f.lastTo = from, to
	return f.summaries, f.err
}

func (f *fakeAttendanceRepo) ListUserDailySummary(_ context.Context, _ string, from, to string) ([]attendance.DailySummary, error) {
	f.lastFrom, f.lastTo = from, to
	return f.summaries, f.err
}

func (f *fakeAttendanceRepo) ListMyEvents(context.Context) ([]attendance.Event, error) {
	return f.events, f.err
}

func (f *fakeAttendanceRepo) ListUserEvents(context.Context, string) ([]attendance.Event, error) {
	return f.events, f.err
}

func (f *fakeAttendanceRepo) Mark(_ context.Context, req attendance.MarkRequest) (attendance.Event, error) {
	f.marked = append(f.marked, req)
	return attendance.Event{ID: "new", Kind: attendance.EventKind(req.Kind)}, nil
}

func (f *fakeAttendanceRepo) CreateManual(_ context.Context, req attendance.ManualEventRequest) (attendance.Event, error) {
	f.manual = append(f.manual, req)
	return attendance.Event{ID: "m1", Kind: req.Kind, UserID: req.UserID}, nil
}

func (f *fakeAttendanceRepo) Void(_ context.Context, id string, _ attendance.VoidEventRequest) (attendance.Event, error) {
	f.voided = append(f.voided, id)
	return attendance.Event{}, nil
}

var now = time.Date(2025, 3, 4, 9, 15, 0, 0, time.FixedZone("BOT", -4*3600)) // Tuesday

func newService(repo *fakeAttendanceRepo) (attendance.AttendanceService, *sse.Hub) {
	hub := sse.NewHub()
	return NewAttendanceService(repo, hub, clock.Fixed(now)), hub
}

func TestAttendanceService_MyMonth_DefaultsToCurrentMonth(t *testing.T) {
	repo := &fakeAttendanceRepo{summaries: []attendance.DailySummary{
		{Date: "2025-03-03", CheckInTime: "08:30", CheckOutTime: "16:30", MinutesWorked: 480, Status: attendance.DayStatusOK},
	}}
	svc, _ := newService(repo)

	view, err := svc.MyMonth(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", repo.lastFrom)
	assert.Equal(t, "2025-03-31", repo.lastTo)
	assert.Equal(t, "2025-03", view.Month)
	assert.Len(t, view.Rows, 31)
	assert.Equal(t, 8.0, view.WeeklyHours)
}

func TestAttendanceService_MyMonth_InvalidMonth(t *testing.T) {
	svc, _ := newService(&fakeAttendanceRepo{})
	_, err := svc.MyMonth(context.Background(), &attendance.Month{Year: 2025, Index: 12})
	assert.ErrorIs(t, err, attendance.ErrInvalidMonth)
}

func TestAttendanceService_MyMonth_BackendError(t *testing.T) {
	boom := errors.New("Error en la solicitud.")
	svc, _ := newService(&fakeAttendanceRepo{err: boom})
	_, err := svc.MyMonth(context.Background(), &attendance.Month{Year: 2024, Index: 1})
	assert.ErrorIs(t, err, boom)
}

func TestAttendanceService_CheckIn_Success(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc, _ := newService(repo)

	_, err := svc.CheckIn(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	require.Len(t, repo.marked, 1)
	assert.Equal(t, attendance.MarkRequest{Kind: "entrada", Origin: "web", IPAddress: "10.0.0.1"}, repo.marked[0])
	assert.Equal(t, "2025-03-04", repo.lastFrom)

	_, err = svc.CheckOut(context.Background(), "")
	assert.ErrorIs(t, err, attendance.ErrActionNotAllowed)
}

func TestAttendanceService_CheckOut_AfterCheckIn(t *testing.T) {
	repo := &fakeAttendanceRepo{summaries: []attendance.DailySummary{
		{Date: "2025-03-04", CheckInTime: "08:30", CheckOutTime: attendance.NoTime, Status: attendance.DayStatusIncomplete},
	}}
	svc, _ := newService(repo)

	_, err := svc.CheckIn(context.Background(), "")
	assert.ErrorIs(t, err, attendance.ErrActionNotAllowed)

	_, err = svc.CheckOut(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "salida", repo.marked[0].Kind)
}

func TestAttendanceService_CheckIn_OnLeave(t *testing.T) {
	repo := &fakeAttendanceRepo{summaries: []attendance.DailySummary{
		{Date: "2025-03-04", CheckInTime: attendance.NoTime, CheckOutTime: attendance.NoTime, Status: attendance.DayStatusLeave},
	}}
	svc, _ := newService(repo)
	_, err := svc.CheckIn(context.Background(), "")
	assert.ErrorIs(t, err, attendance.ErrActionNotAllowed)
	assert.Empty(t, repo.marked)
}

func TestAttendanceService_UserEvents(t *testing.T) {
	repo := &fakeAttendanceRepo{events: []attendance.Event{
		{ID: "a", Timestamp: now, State: attendance.EventStateValid},
		{ID: "b", Timestamp: now.Add(time.Hour), State: attendance.EventStateVoided},
	}}
	svc, _ := newService(repo)

	view, err := svc.UserEvents(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, view.Events, 2)
	require.Len(t, view.Voidable, 1)
	assert.Equal(t, "a", view.Voidable[0].ID)

	_, err = svc.UserEvents(context.Background(), " ")
	assert.ErrorIs(t, err, attendance.ErrUserIDRequired)
}

func TestAttendanceService_MyEvents(t *testing.T) {
	repo := &fakeAttendanceRepo{events: []attendance.Event{
		{ID: "a", Timestamp: now, State: attendance.EventStateValid},
		{ID: "b", Timestamp: now.Add(time.Hour), State: attendance.EventStateVoided},
		{ID: "c", Timestamp: now.Add(-time.Hour), State: attendance.EventStateValid},
	}}
	svc, _ := newService(repo)

	events, err := svc.MyEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{events[0].ID, events[1].ID, events[2].ID})
	assert.Equal(t, "a", repo.events[0].ID, "backend slice is left untouched")

	empty, err := newServiceEvents(nil).MyEvents(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	repo.err = errors.New("down")
	_, err = svc.MyEvents(context.Background())
	assert.ErrorContains(t, err, "list my events")
}

func newServiceEvents(events []attendance.Event) attendance.AttendanceService {
	svc, _ := newService(&fakeAttendanceRepo{events: events})
	return svc
}

func TestAttendanceService_CreateManual_Publishes(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc, hub := newService(repo)
	ch, cleanup := hub.Subscribe("u2")
	defer cleanup()

	_, err := svc.CreateManual(context.Background(), attendance.ManualEventRequest{
		UserID:    "u2",
		Kind:      attendance.EventKindCheckIn,
		Timestamp: "2025-03-04T08:30:00-04:00",
	})
	require.NoError(t, err)
	require.Len(t, repo.manual, 1)
	assert.Equal(t, attendance.OriginManual, repo.manual[0].Origin)
	assert.Equal(t, sse.EventAttendanceManual, (<-ch).Event)

	_, err = svc.CreateManual(context.Background(), attendance.ManualEventRequest{UserID: "u2", Kind: "OTRO"})
	assert.Error(t, err)
	assert.Len(t, repo.manual, 1)
}

func TestAttendanceService_Void(t *testing.T) {
	repo := &fakeAttendanceRepo{events: []attendance.Event{
		{ID: "a", State: attendance.EventStateValid},
		{ID: "b", State: attendance.EventStateVoided},
	}}
	svc, hub := newService(repo)
	ch, cleanup := hub.Subscribe("u1")
	defer cleanup()

	note := "  marcó por error "
	ev, err := svc.Void(context.Background(), "u1", "a", attendance.VoidEventRequest{Note: &note})
	require.NoError(t, err)
	assert.True(t, ev.IsVoided())
	require.NotNil(t, ev.Note)
	assert.Equal(t, "marcó por error", *ev.Note)
	assert.Equal(t, []string{"a"}, repo.voided)
	assert.Equal(t, sse.EventAttendanceVoided, (<-ch).Event)

	_, err = svc.Void(context.Background(), "u1", "b", attendance.VoidEventRequest{})
	assert.ErrorIs(t, err, attendance.ErrEventAlreadyVoided)

	_, err = svc.Void(context.Background(), "u1", "zzz", attendance.VoidEventRequest{})
	assert.ErrorIs(t, err, attendance.ErrEventNotFound)
	assert.Len(t, repo.voided, 1)
}
