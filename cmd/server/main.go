package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"billkit/internal/config"
	"billkit/internal/handler"
	"billkit/internal/logging"
	"billkit/internal/port"
	"billkit/internal/repository/postgres"
	"billkit/internal/router"
	"billkit/internal/service"
)

// @title billkit API
// @version 1.0
// @description Invoice totals, amount in words, invoice lifecycle and recurring billing.
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	clock := port.SystemClock{}
	settings := service.BillingSettings{
		SellerState:          cfg.Billing.SellerState,
		JurisdictionPolicy:   cfg.Billing.JurisdictionPolicy,
		UncheckedTransitions: cfg.Billing.UncheckedTransitions,
	}

	// Initialize repositories
	invoiceRepo := postgres.NewInvoiceRepo(db)
	profileRepo := postgres.NewRecurringProfileRepo(db)
	logRepo := postgres.NewGenerationLogRepo(db)

	// Initialize services
	invoiceSvc := service.NewInvoiceService(invoiceRepo, clock, settings, logger)
	recurringSvc := service.NewRecurringService(profileRepo, invoiceRepo, logRepo, settings, service.RecurringConfig{
		BatchSize:  cfg.Scheduler.BatchSize,
		MaxCatchUp: cfg.Scheduler.MaxCatchUp,
	}, logger)

	// Initialize handlers
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	recurringH := handler.NewRecurringHandler(recurringSvc, clock)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(logger, cfg.CORS.AllowedOrigins, invoiceH, recurringH, healthH)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Scheduler.Enabled {
		worker := service.NewSchedulerWorker(recurringSvc, invoiceSvc, clock, service.SchedulerConfig{
			PollInterval: time.Duration(cfg.Scheduler.PollIntervalSecs) * time.Second,
		}, logger)
		go worker.Start(ctx)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", cfg.Server.Port), zap.String("env", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
