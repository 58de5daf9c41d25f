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

	"github.com/cmlabs-hris/attendance-backend-go/internal/config"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/attendance-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/memory"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/attendance-backend-go/internal/service/attendance"
	dashboardService "github.com/cmlabs-hris/attendance-backend-go/internal/service/dashboard"
	reportService "github.com/cmlabs-hris/attendance-backend-go/internal/service/report"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logLevel, loc, policy, err := runtimeSettings(cfg)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	attendanceRepo, employeeRepo, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, policy, loc)
	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo, employeeRepo, loc)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo, loc)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			Env:            cfg.App.Env,
			LogLevel:       logLevel,
		},
		JWTService,
		attendanceHandler,
		dashboardHandler,
		reportHandler,
	)

	scheduler := cron.NewScheduler(ctx)
	cron.NewAttendanceJobs(attendanceRepo, loc, time.Now).RegisterJobs(scheduler, cfg.Attendance.StaleScanInterval)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running",
			"addr", server.Addr,
			"store", cfg.Store.Driver,
			"timezone", loc.String(),
			"late_threshold", policy.LateThreshold.String(),
		)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// runtimeSettings resolves the log level, day boundary location and
// attendance policy from cfg.
func runtimeSettings(cfg *config.Config) (slog.Level, *time.Location, attendance.TimeWindowPolicy, error) {
	logLevel, err := cfg.SlogLevel()
	if err != nil {
		return slog.LevelInfo, nil, attendance.TimeWindowPolicy{}, err
	}

	loc, err := cfg.Location()
	if err != nil {
		return slog.LevelInfo, nil, attendance.TimeWindowPolicy{}, err
	}

	policy, err := cfg.Policy()
	if err != nil {
		return slog.LevelInfo, nil, attendance.TimeWindowPolicy{}, err
	}

	return logLevel, loc, policy, nil
}

// openStore wires the repositories for the configured driver
func openStore(ctx context.Context, cfg *config.Config) (attendance.AttendanceRepository, employee.EmployeeRepository, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		roster := memory.NewEmployeeRepository(fixtures.DefaultRoster()...)
		slog.Warn("Using in-memory store, records are lost on restart")
		return memory.NewAttendanceRepository(roster), roster, func() {}, nil

	case config.StoreDriverPostgres:
		db, err := database.NewPostgreSQLDB(
			cfg.DatabaseURL(),
			database.WithPoolSize(cfg.Database.MaxConns, cfg.Database.MinConns),
			database.WithConnectTimeout(cfg.Database.ConnectTimeout),
		)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("error connecting to database: %w", err)
		}

		if cfg.Store.AutoMigrate {
			if err := postgresql.EnsureSchema(ctx, db); err != nil {
				db.Close()
				return nil, nil, nil, err
			}
			slog.Info("Database schema ensured")
		}

		if cfg.Store.SeedRoster {
			inserted, err := postgresql.SeedEmployees(ctx, db, fixtures.DefaultRoster())
			if err != nil {
				db.Close()
				return nil, nil, nil, err
			}
			slog.Info("Roster seeded", "inserted", inserted)
		}

		return postgresql.NewAttendanceRepository(db), postgresql.NewEmployeeRepository(db), db.Close, nil
	}

	return nil, nil, nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
}
