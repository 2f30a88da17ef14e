package slack

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// Service handles Slack notification delivery for job lifecycles. The start
// notification's timestamp is cached so terminal notifications thread under
// it.
//
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger

	mu      sync.Mutex
	threads map[int]string // job ID -> thread ts
}

// NewService creates a Slack notification service. Returns nil if Token or
// Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return newService(NewClient(cfg.Token, cfg.Channel), cfg.DashboardURL)
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return newService(client, dashboardURL)
}

func newService(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
		threads:      make(map[int]string),
	}
}

// NotifyJobStarted sends a "processing started" notification and caches its
// timestamp for threading. Fail-open: errors are logged, never returned.
func (s *Service) NotifyJobStarted(ctx context.Context, jobID int, projectName string) {
	if s == nil {
		return
	}

	blocks := BuildStartedMessage(jobID, projectName, s.dashboardURL)
	ts, err := s.client.PostMessage(ctx, blocks, "", 5*time.Second)
	if err != nil {
		s.logger.Error("Failed to send Slack start notification",
			"job_id", jobID,
			"error", err)
		return
	}

	s.mu.Lock()
	s.threads[jobID] = ts
	s.mu.Unlock()
}

// NotifyJobFinished sends a terminal status notification, threaded under
// the start notification when one was delivered. Fail-open: errors are
// logged, never returned.
func (s *Service) NotifyJobFinished(ctx context.Context, input JobFinishedInput) {
	if s == nil {
		return
	}

	s.mu.Lock()
	threadTS := s.threads[input.JobID]
	delete(s.threads, input.JobID)
	s.mu.Unlock()

	blocks := BuildTerminalMessage(input, s.dashboardURL)
	if _, err := s.client.PostMessage(ctx, blocks, threadTS, 10*time.Second); err != nil {
		s.logger.Error("Failed to send Slack notification",
			"job_id", input.JobID,
			"status", input.Status,
			"error", err)
	}
}
