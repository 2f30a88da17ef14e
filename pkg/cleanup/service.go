// Package cleanup enforces data retention: old terminal jobs and expired
// system events are removed on a schedule so the store does not grow without
// bound.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/cardigan-project/cardigan/pkg/config"
	"github.com/cardigan-project/cardigan/pkg/services"
)

// Service periodically enforces retention policy:
//   - Deletes terminal jobs past the retention window (phases and events
//     cascade with them)
//   - Removes system events past their TTL
//
// Artifacts on disk are never touched; deliverables outlive their job rows.
type Service struct {
	cfg    *config.RetentionConfig
	jobs   *services.JobService
	events *services.EventService
	logger *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a cleanup service.
func NewService(cfg *config.RetentionConfig, jobs *services.JobService, events *services.EventService, logger *slog.Logger) *Service {
	if cfg == nil {
		cfg = config.DefaultRetentionConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:    cfg,
		jobs:   jobs,
		events: events,
		logger: logger,
	}
}

// Start launches the background cleanup loop. A disabled service starts as
// a no-op.
func (s *Service) Start(ctx context.Context) {
	if !s.cfg.Enabled {
		s.logger.Info("Retention cleanup disabled")
		return
	}
	if s.cancel != nil {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	go s.run(ctx)

	s.logger.Info("Retention cleanup started",
		"job_retention_days", s.cfg.JobRetentionDays,
		"event_ttl", s.cfg.EventTTL,
		"interval", s.cfg.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunOnce(ctx)

	interval := s.cfg.CleanupInterval
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce applies every retention rule one time. Exported for tests and for
// operators who want an immediate pass.
func (s *Service) RunOnce(ctx context.Context) {
	s.pruneJobs(ctx)
	s.pruneSystemEvents(ctx)
}

func (s *Service) pruneJobs(ctx context.Context) {
	if s.cfg.JobRetentionDays <= 0 {
		return
	}
	retention := time.Duration(s.cfg.JobRetentionDays) * 24 * time.Hour
	count, err := s.jobs.PruneTerminalJobs(ctx, retention)
	if err != nil {
		s.logger.Error("Retention: job pruning failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("Retention: pruned terminal jobs", "count", count)
	}
}

func (s *Service) pruneSystemEvents(ctx context.Context) {
	count, err := s.events.PruneSystemEvents(ctx, s.cfg.EventTTL)
	if err != nil {
		s.logger.Error("Retention: event pruning failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("Retention: pruned system events", "count", count)
	}
}
