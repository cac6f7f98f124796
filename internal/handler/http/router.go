package http

import (
	"io"
	"log/slog"

	"github.com/cmlabs-hris/hris-console/internal/config"
	"github.com/cmlabs-hris/hris-console/internal/domain/user"
	"github.com/cmlabs-hris/hris-console/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-console/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Handlers groups the console's HTTP handlers
type Handlers struct {
	Auth       AuthHandler
	Dashboard  DashboardHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	User       UserHandler
	Schedule   ScheduleHandler
	Report     ReportHandler
	Events     EventsHandler
}

func NewRouter(cfg *config.Config, logger *slog.Logger, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.SlogLevel(),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	verifier := jwtauth.Verify(JWTService.JWTAuth(), jwtauth.TokenFromHeader, jwt.TokenFromSessionCookie)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Group(func(r chi.Router) {
				r.Use(verifier)
				r.Post("/logout", h.Auth.Logout)
			})
		})

		// Stream authenticates itself so EventSource can pass ?token=
		r.Group(func(r chi.Router) {
			r.Use(verifier)
			r.Get("/events", h.Events.Stream)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(verifier)
			r.Use(middleware.AuthRequired(JWTService))
			r.Use(chiMiddleware.AllowContentType("application/json"))

			r.With(middleware.RequirePermission(user.PermissionViewOwnProfile)).Get("/auth/me", h.Auth.Me)
			r.Post("/events/token", h.Events.Token)
			r.Get("/dashboard", h.Dashboard.Dashboard)

			r.Route("/attendance", func(r chi.Router) {
				r.Route("/me", func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceViewOwn))
					r.Get("/month", h.Attendance.MyMonth)
					r.Get("/events", h.Attendance.MyEvents)
					r.With(middleware.RequirePermission(user.PermissionReportsViewOwn)).
						Get("/report.{format}", h.Report.MyAttendance)
				})
				r.With(middleware.RequirePermission(user.PermissionAttendanceCreate)).Group(func(r chi.Router) {
					r.Post("/check-in", h.Attendance.CheckIn)
					r.Post("/check-out", h.Attendance.CheckOut)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionLeaveViewOwn)).Get("/me", h.Leave.Mine)
				r.With(middleware.RequirePermission(user.PermissionLeaveCreate)).Post("/me", h.Leave.Submit)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.With(middleware.RequirePermission(user.PermissionLeaveViewAll)).Get("/pending", h.Leave.Pending)
					r.With(middleware.RequirePermission(user.PermissionLeaveApprove)).Patch("/{id}", h.Leave.Resolve)
				})
			})

			// Manager only
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/", h.User.List)
				r.With(middleware.RequirePermission(user.PermissionUserManage)).Post("/", h.User.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.User.Get)
					r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).Get("/detail", h.Dashboard.UserDetail)
					r.With(middleware.RequirePermission(user.PermissionReportsViewAll)).Get("/report.{format}", h.Report.UserAttendance)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionUserManage))
						r.Patch("/", h.User.Update)
						r.Delete("/", h.User.Delete)
					})

					r.Route("/schedule", func(r chi.Router) {
						r.Get("/", h.Schedule.Get)
						r.With(middleware.RequirePermission(user.PermissionScheduleManage)).Put("/", h.Schedule.Save)
					})

					r.Route("/attendance", func(r chi.Router) {
						r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).Get("/", h.Attendance.UserMonth)
						r.With(middleware.RequirePermission(user.PermissionAttendanceViewAll)).Get("/events", h.Attendance.UserEvents)
						r.With(middleware.RequirePermission(user.PermissionAttendanceManual)).Post("/", h.Attendance.CreateManual)
						r.With(middleware.RequirePermission(user.PermissionAttendanceVoid)).Patch("/{eventID}/void", h.Attendance.Void)
					})
				})
			})
		})
	})
	return r
}

// NewLogger builds the JSON logger in the ECS schema shared by requests and services
func NewLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(!cfg.IsProduction())
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-console"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
}
