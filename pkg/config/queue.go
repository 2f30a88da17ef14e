package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how jobs are polled, claimed, and processed.
type QueueConfig struct {
	// MaxConcurrentJobs is the number of jobs processed at once. Each job
	// runs on its own worker goroutine; phases within a job are sequential.
	MaxConcurrentJobs int `yaml:"max_concurrent_jobs" json:"max_concurrent_jobs"`

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration `yaml:"poll_interval" json:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter" json:"poll_interval_jitter"`

	// HeartbeatInterval is how often an active job refreshes last_heartbeat.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval" json:"heartbeat_interval"`

	// StaleThreshold is how long a job can go without a heartbeat before the
	// reaper considers its worker dead. Defaults to 3x HeartbeatInterval.
	StaleThreshold time.Duration `yaml:"stale_threshold" json:"stale_threshold"`

	// ReaperInterval is how often the stale-job reaper scans.
	ReaperInterval time.Duration `yaml:"reaper_interval" json:"reaper_interval"`

	// GracefulShutdownTimeout is the max time to wait for active jobs to
	// finish their in-flight phase during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout" json:"graceful_shutdown_timeout"`

	// RecoveryBudget is the number of manager recovery analyses allowed per
	// job before a failing phase becomes terminal.
	RecoveryBudget int `yaml:"recovery_budget" json:"recovery_budget"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		MaxConcurrentJobs:       3,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		HeartbeatInterval:       10 * time.Second,
		StaleThreshold:          30 * time.Second,
		ReaperInterval:          1 * time.Minute,
		GracefulShutdownTimeout: 5 * time.Minute,
		RecoveryBudget:          3,
	}
}

// Clone returns a copy for snapshots.
func (c *QueueConfig) Clone() *QueueConfig {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}
