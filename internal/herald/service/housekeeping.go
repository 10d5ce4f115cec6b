package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/heraldhq/herald/internal/herald/store"
)

// HousekeepingService periodically prunes delivered notifications so
// the notification tables do not grow without bound.
type HousekeepingService struct {
	Store     store.Store
	Logger    *slog.Logger
	Interval  time.Duration
	Retention time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping worker. A zero or
// negative interval defaults to 1 hour. A zero or negative retention
// disables pruning entirely.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval, retention time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:     st,
		Logger:    logger,
		Interval:  interval,
		Retention: retention,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop to shut
// it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started",
		"interval", s.Interval, "retention", s.Retention)
}

// Stop shuts down the worker. Blocks until any in-progress cleanup
// finishes.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

func (s *HousekeepingService) cleanup() {
	if s.Retention <= 0 {
		return
	}

	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-s.Retention)

	deleted, err := s.Store.Notifications().DeleteDeliveredBefore(ctx, cutoff)
	if err != nil {
		s.Logger.Error("failed to prune delivered notifications", "error", err)
		return
	}
	if deleted > 0 {
		s.Logger.Info("pruned delivered notifications", "count", deleted, "cutoff", cutoff)
	}
}
