package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"billkit/internal/port"
)

// SchedulerConfig holds settings for the scheduler worker.
type SchedulerConfig struct {
	PollInterval time.Duration
	// OverdueBatch caps how many invoices one overdue sweep touches.
	OverdueBatch int
}

// SchedulerWorker periodically generates due recurring invoices and marks
// open invoices past their due date as overdue.
type SchedulerWorker struct {
	recurring RecurringService
	invoices  InvoiceService
	clock     port.Clock
	cfg       SchedulerConfig
	logger    *zap.Logger
}

// NewSchedulerWorker creates a new SchedulerWorker.
func NewSchedulerWorker(recurring RecurringService, invoices InvoiceService, clock port.Clock, cfg SchedulerConfig, logger *zap.Logger) *SchedulerWorker {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Minute
	}
	if cfg.OverdueBatch <= 0 {
		cfg.OverdueBatch = 100
	}
	return &SchedulerWorker{
		recurring: recurring,
		invoices:  invoices,
		clock:     clock,
		cfg:       cfg,
		logger:    logger.Named("scheduler"),
	}
}

// Start runs the polling loop until ctx is canceled. One sweep runs
// immediately so a restart does not wait a full interval.
func (w *SchedulerWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	w.logger.Info("started", zap.Duration("poll", w.cfg.PollInterval))
	w.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("shutdown complete")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single sweep as of the clock's current time.
func (w *SchedulerWorker) RunOnce(ctx context.Context) {
	now := w.clock.Now()

	summary, err := w.recurring.RunDue(ctx, now)
	switch {
	case err != nil && ctx.Err() != nil:
		// Context canceled during the sweep; exit quietly.
		return
	case err != nil:
		w.logger.Error("recurring sweep failed", zap.Error(err))
	case summary.Invoices > 0 || summary.Failed > 0 || summary.Completed > 0:
		w.logger.Info("recurring sweep",
			zap.Int("profiles", summary.Profiles),
			zap.Int("invoices", summary.Invoices),
			zap.Int("completed", summary.Completed),
			zap.Int("failed", summary.Failed))
	}

	if _, err := w.invoices.MarkOverdue(ctx, now, w.cfg.OverdueBatch); err != nil && ctx.Err() == nil {
		w.logger.Error("overdue sweep failed", zap.Error(err))
	}
}
