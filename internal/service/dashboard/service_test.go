package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-console/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console/internal/domain/leave"
	"github.com/cmlabs-hris/hris-console/internal/domain/schedule"
	"github.com/cmlabs-hris/hris-console/internal/domain/user"
	"github.com/cmlabs-hris/hris-console/internal/pkg/clock"
	"github.com/cmlabs-hris/hris-console/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-console/internal/repository/rest"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 4, 10, 0, 0, 0, time.FixedZone("BOT", -4*3600))

type fakeAttendanceRepo struct {
	summaries []attendance.DailySummary
	events    []attendance.Event
	err       error
}

func (f *fakeAttendanceRepo) ListMyDailySummary(context.Context, string, string) ([]attendance.DailySummary, error) {
	return f.summaries, f.err
}
func (f *fakeAttendanceRepo) ListUserDailySummary(context.Context, string, string, string) ([]attendance.DailySummary, error) {
	return f.summaries, f.err
}
func (f *fakeAttendanceRepo) ListMyEvents(context.Context) ([]attendance.Event, error) {
	return f.events, nil
}
func (f *fakeAttendanceRepo) ListUserEvents(context.Context, string) ([]attendance.Event, error) {
	return f.events, nil
}
func (f *fakeAttendanceRepo) Mark(context.Context, attendance.MarkRequest) (attendance.Event, error) {
	return attendance.Event{}, nil
}
func (f *fakeAttendanceRepo) CreateManual(context.Context, attendance.ManualEventRequest) (attendance.Event, error) {
	return attendance.Event{}, nil
}
func (f *fakeAttendanceRepo) Void(context.Context, string, attendance.VoidEventRequest) (attendance.Event, error) {
	return attendance.Event{}, nil
}

type fakeLeaveRepo struct {
	mine    []leave.LeaveRequest
	pending []leave.LeaveRequest
	calls   int
}

func (f *fakeLeaveRepo) ListMine(context.Context) ([]leave.LeaveRequest, error) { return f.mine, nil }
func (f *fakeLeaveRepo) ListPending(context.Context) ([]leave.LeaveRequest, error) {
	f.calls++
	return f.pending, nil
}
func (f *fakeLeaveRepo) Create(context.Context, leave.SubmitRequest) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, nil
}
func (f *fakeLeaveRepo) Resolve(context.Context, string, leave.ResolveRequest) (leave.LeaveRequest, error) {
	return leave.LeaveRequest{}, nil
}

type fakeUserRepo struct {
	users []user.User
	err   error
}

func (f *fakeUserRepo) List(context.Context) ([]user.User, error) { return f.users, f.err }
func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	if f.err != nil {
		return user.User{}, f.err
	}
	return user.User{ID: id, Name: "Luis"}, nil
}
func (f *fakeUserRepo) Create(context.Context, user.CreateUserRequest) (user.User, error) {
	return user.User{}, nil
}
func (f *fakeUserRepo) Update(context.Context, string, user.UpdateUserRequest) (user.User, error) {
	return user.User{}, nil
}
func (f *fakeUserRepo) Delete(context.Context, string) error { return nil }

type fakeScheduleService struct{}

func (fakeScheduleService) Get(context.Context, string) (schedule.WeeklySchedule, error) {
	return schedule.Normalize(schedule.WeeklySchedule{}), nil
}
func (fakeScheduleService) Save(_ context.Context, _ string, s schedule.WeeklySchedule) (schedule.WeeklySchedule, error) {
	return s, nil
}

func sessionContext(t *testing.T, role user.Role) context.Context {
	t.Helper()
	svc := jwt.NewJWTService("secret", "1h", false)
	tok, _, err := svc.GenerateSessionToken(jwt.Session{UserID: "me", Name: "Ana", Surname: "Quispe", Role: role, BackendToken: "b"})
	require.NoError(t, err)
	parsed, err := jwtauth.VerifyToken(svc.JWTAuth(), tok)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), parsed, nil)
}

func TestDashboardService_GetDashboard_Employee(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{mine: []leave.LeaveRequest{
		{ID: "1", Status: leave.StatusPending},
		{ID: "2", Status: leave.StatusApproved},
	}}
	att := &fakeAttendanceRepo{summaries: []attendance.DailySummary{
		{Date: "2025-03-03", CheckInTime: "08:30", CheckOutTime: "16:30", MinutesWorked: 480, Status: attendance.DayStatusOK},
		{Date: "2025-03-04", CheckInTime: "08:30", CheckOutTime: attendance.NoTime, Status: attendance.DayStatusIncomplete},
	}}
	svc := NewDashboardService(att, leaveRepo, &fakeUserRepo{}, fakeScheduleService{}, clock.Fixed(now))

	got, err := svc.GetDashboard(sessionContext(t, user.RoleEmployee))
	require.NoError(t, err)
	assert.Equal(t, "2025-03-04", got.Today)
	assert.Equal(t, "Ana Quispe", got.DisplayName)
	assert.False(t, got.IsManager)
	assert.Nil(t, got.Manager)
	assert.Zero(t, leaveRepo.calls, "pending queue is manager-only")
	assert.Equal(t, attendance.ActionCheckOut, got.QuickAction)
	require.NotNil(t, got.TodaySummary)
	assert.Equal(t, attendance.DayStatusIncomplete, got.TodaySummary.Status)
	assert.Equal(t, 8.0, got.WeeklyHours)
	assert.Len(t, got.Month.Rows, 31)
	assert.Len(t, got.Leave.Pending, 1)
	assert.Empty(t, got.Error)
}

func TestDashboardService_GetDashboard_ManagerPartialFailure(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{pending: []leave.LeaveRequest{{ID: "p", Status: leave.StatusPending, RequesterID: "u2"}}}
	users := &fakeUserRepo{err: errors.New("No autorizado.")}
	svc := NewDashboardService(&fakeAttendanceRepo{}, leaveRepo, users, fakeScheduleService{}, clock.Fixed(now))

	got, err := svc.GetDashboard(sessionContext(t, user.RoleAdmin))
	require.NoError(t, err)
	assert.Equal(t, "No autorizado.", got.Error)
	require.NotNil(t, got.Manager)
	assert.Len(t, got.Manager.PendingLeave, 1)
	assert.Equal(t, []string{"u2"}, got.Manager.Overview.WithPendingLeave)
	assert.Len(t, got.Month.Rows, 31, "own data still renders")
	assert.Equal(t, attendance.ActionCheckIn, got.QuickAction)
}

func TestDashboardService_GetDashboard_NoSession(t *testing.T) {
	svc := NewDashboardService(&fakeAttendanceRepo{}, &fakeLeaveRepo{}, &fakeUserRepo{}, fakeScheduleService{}, clock.Fixed(now))
	_, err := svc.GetDashboard(context.Background())
	assert.Error(t, err)
}

func TestDashboardService_GetUserDetail(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{pending: []leave.LeaveRequest{
		{ID: "a", Status: leave.StatusPending, RequesterID: "u2"},
		{ID: "b", Status: leave.StatusPending, RequesterID: "u3"},
	}}
	att := &fakeAttendanceRepo{events: []attendance.Event{
		{ID: "e1", State: attendance.EventStateValid},
		{ID: "e2", State: attendance.EventStateVoided},
	}}
	svc := NewDashboardService(att, leaveRepo, &fakeUserRepo{}, fakeScheduleService{}, clock.Fixed(now))

	got, err := svc.GetUserDetail(context.Background(), "u2", &attendance.Month{Year: 2024, Index: 1})
	require.NoError(t, err)
	assert.Equal(t, "u2", got.User.ID)
	assert.Len(t, got.Schedule.Days, 7)
	assert.Len(t, got.Events.Events, 2)
	assert.Len(t, got.Events.Voidable, 1)
	assert.Equal(t, "2024-02", got.Month.Month)
	assert.Len(t, got.Month.Rows, 29)
	require.Len(t, got.PendingLeave, 1)
	assert.Equal(t, "a", got.PendingLeave[0].ID)

	_, err = svc.GetUserDetail(context.Background(), "u2", &attendance.Month{Year: 2024, Index: 13})
	assert.ErrorIs(t, err, attendance.ErrInvalidMonth)
}

func TestDashboardService_GetUserDetail_SourceError(t *testing.T) {
	svc := NewDashboardService(&fakeAttendanceRepo{}, &fakeLeaveRepo{}, &fakeUserRepo{err: errors.New("")}, fakeScheduleService{}, clock.Fixed(now))
	got, err := svc.GetUserDetail(context.Background(), "u2", nil)
	require.NoError(t, err)
	assert.Equal(t, "Error al cargar detalle del usuario", got.Error)
	assert.Equal(t, "2025-03", got.Month.Month)
}

func TestDashboardService_GetUserDetail_TransportErrorIsHidden(t *testing.T) {
	down := fmt.Errorf("%w: GET /usuarios/u2: dial tcp 10.0.0.5:4000: connection refused", rest.ErrUnavailable)
	svc := NewDashboardService(&fakeAttendanceRepo{}, &fakeLeaveRepo{}, &fakeUserRepo{err: down}, fakeScheduleService{}, clock.Fixed(now))

	got, err := svc.GetUserDetail(context.Background(), "u2", nil)
	require.NoError(t, err)
	assert.Equal(t, rest.MessageRequestError, got.Error)
	assert.NotContains(t, got.Error, "10.0.0.5")
}

func TestViewMessage(t *testing.T) {
	assert.Equal(t, rest.MessageRequestError, viewMessage(fmt.Errorf("%w: GET /x: timeout", rest.ErrUnavailable)))
	assert.Equal(t, rest.MessageUnauthorized, viewMessage(rest.ErrNoToken))
	assert.Equal(t, rest.MessageUnauthorized, viewMessage(jwt.ErrNoSession))
	assert.Equal(t, "Usuario no encontrado", viewMessage(&rest.APIError{StatusCode: 404, Message: "Usuario no encontrado"}))
}
