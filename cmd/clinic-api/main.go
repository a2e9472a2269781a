package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/dmehra2102/prod-golang-projects/clinic/internal/config"
	v1 "github.com/dmehra2102/prod-golang-projects/clinic/internal/handler/v1"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/repository"
	"github.com/dmehra2102/prod-golang-projects/clinic/internal/service"
	"github.com/dmehra2102/prod-golang-projects/clinic/pkg/auth"
	"github.com/dmehra2102/prod-golang-projects/clinic/pkg/database"
	"github.com/dmehra2102/prod-golang-projects/clinic/pkg/logger"
	"github.com/dmehra2102/prod-golang-projects/clinic/pkg/metrics"
	"github.com/dmehra2102/prod-golang-projects/clinic/pkg/tracer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "clinic-api:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log, cfg.App)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, err := tracer.Init(ctx, cfg.Tracing, cfg.App.Version)
	if err != nil {
		return fmt.Errorf("initialising tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	collector := metrics.NewCollector(cfg.App.Name, prometheus.DefaultRegisterer)

	db, err := database.Connect(cfg.Database, log, collector)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("closing database failed", zap.Error(err))
		}
	}()

	if err := database.Migrate(db, log); err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("getting underlying sql.DB: %w", err)
	}

	jwtManager := auth.NewJWTManager(cfg.JWT)
	authSvc := service.NewAuthService(repository.NewUserRepository(db), jwtManager, log, collector)

	if cfg.Seed.Username != "" {
		if err := authSvc.ProvisionUser(ctx, cfg.Seed.Username, cfg.Seed.Password); err != nil {
			return fmt.Errorf("provisioning seed user: %w", err)
		}
	}

	router := v1.NewRouter(v1.RouterDeps{
		Config:       cfg,
		Log:          log,
		Collector:    collector,
		JWTManager:   jwtManager,
		DB:           sqlDB,
		Auth:         authSvc,
		Doctors:      service.NewDoctorService(repository.NewDoctorRepository(db), log, collector),
		Patients:     service.NewPatientService(repository.NewPatientRepository(db), log, collector, time.Now),
		Appointments: service.NewAppointmentService(repository.NewAppointmentRepository(db), log, collector, time.Now),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("http server listening",
			zap.String("addr", srv.Addr),
			zap.String("db_driver", cfg.Database.Driver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
