package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/attendance-tracker/internal/config"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-tracker/internal/domain/staff"
	appHTTP "github.com/cmlabs-hris/attendance-tracker/internal/handler/http"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/cron"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/sse"
	"github.com/cmlabs-hris/attendance-tracker/internal/pkg/storage"
	"github.com/cmlabs-hris/attendance-tracker/internal/repository/postgresql"
	"github.com/cmlabs-hris/attendance-tracker/internal/repository/sqlite"
	reportService "github.com/cmlabs-hris/attendance-tracker/internal/service/report"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-tracker"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		staffRepo      staff.StaffRepository
		attendanceRepo attendance.AttendanceRepository
	)

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Error connecting to database: ", err)
		}
		defer db.Close()

		if err := db.Migrate(ctx); err != nil {
			log.Fatal("Error migrating database: ", err)
		}
		staffRepo = postgresql.NewStaffRepository(db)
		attendanceRepo = postgresql.NewAttendanceRepository(db)
	case config.DriverSQLite:
		db, err := database.NewSQLiteDB(cfg.Database.SQLitePath)
		if err != nil {
			log.Fatal("Error opening sqlite database: ", err)
		}
		defer db.Close()

		staffRepo = sqlite.NewStaffRepository(db)
		attendanceRepo = sqlite.NewAttendanceRepository(db)
	}

	hub := sse.NewHub()
	router := appHTTP.NewAPI(logger, cfg.App.AllowedOrigins, staffRepo, attendanceRepo, hub)

	if cfg.Archive.Dir != "" {
		archiveStore, err := storage.NewLocalStorage(cfg.Archive.Dir)
		if err != nil {
			log.Fatal("Failed to initialize archive storage: ", err)
		}

		scheduler := cron.NewScheduler()
		cron.NewArchiveJobs(reportService.NewReportService(staffRepo, attendanceRepo), archiveStore).
			RegisterJobs(scheduler, cfg.Archive.Interval)
		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// Event streams end when the server context is cancelled.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	slog.Info("Server running", "addr", "http://localhost"+srv.Addr, "driver", cfg.Database.Driver)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
	}
}
