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

	"github.com/cmlabs-hris/hrms-lite-go/internal/config"
	appHTTP "github.com/cmlabs-hris/hrms-lite-go/internal/handler/http"
	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/database"
	"github.com/cmlabs-hris/hrms-lite-go/internal/pkg/logger"
	"github.com/cmlabs-hris/hrms-lite-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/hrms-lite-go/internal/service/attendance"
	employeeService "github.com/cmlabs-hris/hrms-lite-go/internal/service/employee"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logLevel := logger.ParseLevel(cfg.App.LogLevel)
	log := logger.New(os.Stdout, logger.Options{
		AppName: cfg.App.Name,
		Version: cfg.App.Version,
		Env:     cfg.App.Env,
		Level:   logLevel,
	})
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dsn := cfg.DatabaseURL()
	if cfg.Database.AutoMigrate {
		if err := database.Migrate(dsn); err != nil {
			return err
		}
		slog.Info("database schema is up to date")
	}

	db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AllowedOrigins: cfg.App.AllowedOrigins,
			LogLevel:       logLevel,
		},
		log,
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewHealthHandler(db, cfg.App.Name, cfg.App.Version),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server running", slog.String("addr", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
