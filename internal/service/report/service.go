package report

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/cmlabs-hris/hris-console/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-console/internal/domain/auth"
	"github.com/cmlabs-hris/hris-console/internal/domain/report"
	"github.com/cmlabs-hris/hris-console/internal/domain/user"
	"github.com/cmlabs-hris/hris-console/internal/pkg/clock"
	"github.com/cmlabs-hris/hris-console/internal/pkg/jwt"
	"golang.org/x/sync/errgroup"
)

// GeneratedLayout formats the "Generado" timestamp of a report.
const GeneratedLayout = "02/01/2006 15:04:05"

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
	clock          clock.Clock
	templates      *template.Template
}

func NewReportService(attendanceRepo attendance.AttendanceRepository, userRepo user.UserRepository, clk clock.Clock) (report.ReportService, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		clock:          clk,
		templates:      tmpl,
	}, nil
}

func (s *ReportServiceImpl) resolveMonth(month *attendance.Month) (attendance.Month, error) {
	if month == nil {
		return attendance.MonthOf(s.clock.Now()), nil
	}
	if !month.Valid() {
		return attendance.Month{}, attendance.ErrInvalidMonth
	}
	return *month, nil
}

// MyAttendance implements report.ReportService.
func (s *ReportServiceImpl) MyAttendance(ctx context.Context, month *attendance.Month, format report.Format) (report.Document, error) {
	session, err := jwt.FromContext(ctx)
	if err != nil {
		return report.Document{}, fmt.Errorf("failed to extract session from context: %w", err)
	}
	m, err := s.resolveMonth(month)
	if err != nil {
		return report.Document{}, err
	}

	from, to := m.Range()
	summaries, err := s.attendanceRepo.ListMyDailySummary(ctx, from, to)
	if err != nil {
		return report.Document{}, err
	}

	profile := auth.Profile{Name: session.Name, Surname: session.Surname, Role: session.Role}
	return s.render(profile.DisplayName(), summaries, m, format)
}

// UserAttendance implements report.ReportService.
func (s *ReportServiceImpl) UserAttendance(ctx context.Context, userID string, month *attendance.Month, format report.Format) (report.Document, error) {
	if userID == "" {
		return report.Document{}, user.ErrUserIDRequired
	}
	m, err := s.resolveMonth(month)
	if err != nil {
		return report.Document{}, err
	}
	from, to := m.Range()

	var (
		u         user.User
		summaries []attendance.DailySummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		u, err = s.userRepo.GetByID(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		summaries, err = s.attendanceRepo.ListUserDailySummary(gctx, userID, from, to)
		return err
	})
	if err := g.Wait(); err != nil {
		return report.Document{}, err
	}

	profile := auth.Profile{Name: u.Name, Surname: u.Surname, Role: u.Role}
	return s.render(profile.DisplayName(), summaries, m, format)
}

func (s *ReportServiceImpl) render(name string, summaries []attendance.DailySummary, m attendance.Month, format report.Format) (report.Document, error) {
	now := s.clock.Now()
	view := attendance.NewMonthView(summaries, m, now)
	rep := report.NewAttendanceReport(name, view, now.Format(GeneratedLayout))

	var (
		body []byte
		err  error
	)
	switch format {
	case report.FormatHTML:
		body, err = renderHTML(s.templates, rep)
	case report.FormatPDF:
		body, err = renderPDF(rep)
	case report.FormatXLSX:
		body, err = renderXLSX(rep)
	default:
		return report.Document{}, report.ErrUnsupportedFormat
	}
	if err != nil {
		slog.Error("failed to render report", "format", format, "month", m.String(), "error", err)
		return report.Document{}, fmt.Errorf("%w: %v", report.ErrRenderFailed, err)
	}

	return report.Document{
		FileName:    report.FileName(name, format),
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}
