package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-console/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console/internal/domain/auth"
	"github.com/cmlabs-hris/hris-console/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-console/internal/domain/leave"
	"github.com/cmlabs-hris/hris-console/internal/domain/schedule"
	"github.com/cmlabs-hris/hris-console/internal/domain/user"
	"github.com/cmlabs-hris/hris-console/internal/pkg/clock"
	"github.com/cmlabs-hris/hris-console/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-console/internal/repository/rest"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	attendanceRepo  attendance.AttendanceRepository
	leaveRepo       leave.LeaveRepository
	userRepo        user.UserRepository
	scheduleService schedule.ScheduleService
	clock           clock.Clock
}

func NewDashboardService(
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	userRepo user.UserRepository,
	scheduleService schedule.ScheduleService,
	clk clock.Clock,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		attendanceRepo:  attendanceRepo,
		leaveRepo:       leaveRepo,
		userRepo:        userRepo,
		scheduleService: scheduleService,
		clock:           clk,
	}
}

// sources collects per-source failures of a concurrent fetch. Each source
// reports into its own slot so one failure never cancels the others.
type sources struct {
	g    errgroup.Group
	errs []error
}

func newSources(n int) *sources {
	return &sources{errs: make([]error, n)}
}

func (s *sources) Go(slot int, name string, fn func() error) {
	s.g.Go(func() error {
		if err := fn(); err != nil {
			slog.Error("view source failed", "source", name, "error", err)
			s.errs[slot] = err
		}
		return nil
	})
}

// Wait returns the message of the first failed source in slot order, or fallback
// when that error has no message.
func (s *sources) Wait(fallback string) string {
	_ = s.g.Wait()
	for _, err := range s.errs {
		if err == nil {
			continue
		}
		if msg := viewMessage(err); msg != "" {
			return msg
		}
		return fallback
	}
	return ""
}

// viewMessage is what a view shows for err. Transport failures never expose
// the backend address.
func viewMessage(err error) string {
	switch {
	case errors.Is(err, rest.ErrUnavailable):
		return rest.MessageRequestError
	case errors.Is(err, rest.ErrNoToken), errors.Is(err, jwt.ErrNoSession):
		return rest.MessageUnauthorized
	}
	return err.Error()
}

// GetDashboard returns the caller's dashboard. Own data always loads; the
// manager panel only for ADMIN and RRHH.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	session, err := jwt.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract session from context: %w", err)
	}

	now := s.clock.Now()
	today := now.Format(attendance.DateLayout)
	month := attendance.MonthOf(now)
	from, to := month.Range()

	var (
		summaries []attendance.DailySummary
		mine      []leave.LeaveRequest
		users     []user.User
		pending   []leave.LeaveRequest
	)

	src := newSources(4)
	src.Go(0, "daily_summary", func() error {
		var err error
		summaries, err = s.attendanceRepo.ListMyDailySummary(ctx, from, to)
		return err
	})
	src.Go(1, "my_leave", func() error {
		var err error
		mine, err = s.leaveRepo.ListMine(ctx)
		return err
	})
	if session.IsManager() {
		src.Go(2, "users", func() error {
			var err error
			users, err = s.userRepo.List(ctx)
			return err
		})
		src.Go(3, "pending_leave", func() error {
			var err error
			pending, err = s.leaveRepo.ListPending(ctx)
			return err
		})
	}
	errMsg := src.Wait(dashboard.MessageDashboardError)

	profile := auth.Profile{Name: session.Name, Surname: session.Surname, Role: session.Role}
	resp := &dashboard.DashboardResponse{
		Today:       today,
		DisplayName: profile.DisplayName(),
		Role:        session.Role,
		IsManager:   session.IsManager(),
		Month:       attendance.NewMonthView(summaries, month, now),
		Leave:       leave.NewMyLeaveView(mine),
		Error:       errMsg,
	}
	resp.WeeklyHours = resp.Month.WeeklyHours
	resp.TodaySummary = attendance.Find(resp.Month.Days, today)
	resp.QuickAction = attendance.QuickAction(attendance.Find(summaries, today))

	if session.IsManager() {
		resp.Manager = &dashboard.ManagerPanel{
			Overview:     user.NewOverview(users, leave.RequestersWithPending(pending)),
			PendingLeave: leave.Pending(pending),
		}
	}
	return resp, nil
}

// GetUserDetail loads user, schedule, events, month and pending leave concurrently.
func (s *DashboardServiceImpl) GetUserDetail(ctx context.Context, userID string, month *attendance.Month) (*dashboard.UserDetailResponse, error) {
	if userID == "" {
		return nil, user.ErrUserIDRequired
	}
	now := s.clock.Now()
	m := attendance.MonthOf(now)
	if month != nil {
		if !month.Valid() {
			return nil, attendance.ErrInvalidMonth
		}
		m = *month
	}
	from, to := m.Range()

	var (
		u         user.User
		weekly    schedule.WeeklySchedule
		events    []attendance.Event
		summaries []attendance.DailySummary
		pending   []leave.LeaveRequest
	)

	src := newSources(5)
	src.Go(0, "user", func() error {
		var err error
		u, err = s.userRepo.GetByID(ctx, userID)
		return err
	})
	src.Go(1, "schedule", func() error {
		var err error
		weekly, err = s.scheduleService.Get(ctx, userID)
		return err
	})
	src.Go(2, "events", func() error {
		var err error
		events, err = s.attendanceRepo.ListUserEvents(ctx, userID)
		return err
	})
	src.Go(3, "daily_summary", func() error {
		var err error
		summaries, err = s.attendanceRepo.ListUserDailySummary(ctx, userID, from, to)
		return err
	})
	src.Go(4, "pending_leave", func() error {
		var err error
		pending, err = s.leaveRepo.ListPending(ctx)
		return err
	})
	errMsg := src.Wait(dashboard.MessageUserDetailError)

	if events == nil {
		events = []attendance.Event{}
	}
	if len(weekly.Days) == 0 {
		weekly = schedule.Normalize(weekly)
	}
	return &dashboard.UserDetailResponse{
		User:     u,
		Schedule: weekly,
		Events: attendance.UserEventsView{
			Events:   events,
			Voidable: attendance.Voidable(events),
		},
		Month:        attendance.NewMonthView(summaries, m, now),
		PendingLeave: leave.PendingByRequester(pending, userID),
		Error:        errMsg,
	}, nil
}
