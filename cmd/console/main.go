package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-console/internal/config"
	appHTTP "github.com/cmlabs-hris/hris-console/internal/handler/http"
	"github.com/cmlabs-hris/hris-console/internal/pkg/clock"
	"github.com/cmlabs-hris/hris-console/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-console/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-console/internal/pkg/sse"
	"github.com/cmlabs-hris/hris-console/internal/repository/rest"
	attendanceService "github.com/cmlabs-hris/hris-console/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/hris-console/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/hris-console/internal/service/dashboard"
	"github.com/cmlabs-hris/hris-console/internal/service/leave"
	reportService "github.com/cmlabs-hris/hris-console/internal/service/report"
	scheduleService "github.com/cmlabs-hris/hris-console/internal/service/schedule"
	userService "github.com/cmlabs-hris/hris-console/internal/service/user"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := appHTTP.NewLogger(cfg, os.Stdout)
	slog.SetDefault(logger)

	clk := clock.New(cfg.Location())
	hub := sse.NewHub()
	JWTService := jwt.NewJWTService(cfg.Session.Secret, cfg.Session.Expiration, cfg.IsProduction())

	// Every authenticated backend call forwards the bearer token of the caller's session
	client := rest.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, jwt.BackendToken)
	authRepo := rest.NewAuthRepository(client)
	attendanceRepo := rest.NewAttendanceRepository(client)
	leaveRepo := rest.NewLeaveRepository(client)
	userRepo := rest.NewUserRepository(client)
	scheduleRepo := rest.NewScheduleRepository(client)

	authService := serviceAuth.NewAuthService(authRepo, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, hub, clk)
	leaveService := leave.NewLeaveService(leaveRepo, hub)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo)
	userSvc := userService.NewUserService(userRepo, leaveRepo)
	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo, leaveRepo, userRepo, scheduleSvc, clk)
	reportSvc, err := reportService.NewReportService(attendanceRepo, userRepo, clk)
	if err != nil {
		slog.Error("Failed to initialize report service", "error", err)
		os.Exit(1)
	}

	router := appHTTP.NewRouter(cfg, logger, JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(JWTService, authService),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveService),
		User:       appHTTP.NewUserHandler(userSvc),
		Schedule:   appHTTP.NewScheduleHandler(scheduleSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Events:     appHTTP.NewEventsHandler(hub, JWTService),
	})

	sessionJobs := cron.NewSessionJobs(JWTService, clk)
	scheduler := cron.NewScheduler(logger)
	scheduler.AddJob("prune_revoked_sessions", cfg.Session.PruneInterval, sessionJobs.PruneRevokedTokens)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server running", "addr", server.Addr, "backend", cfg.Backend.BaseURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return scheduler.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}
}
