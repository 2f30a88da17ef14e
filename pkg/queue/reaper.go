package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cardigan-project/cardigan/pkg/config"
	"github.com/cardigan-project/cardigan/pkg/events"
	"github.com/cardigan-project/cardigan/pkg/services"
)

// sweepTimeout bounds one reaper pass against the store.
const sweepTimeout = 30 * time.Second

// Reaper periodically requeues in_progress jobs whose heartbeat went stale.
// A job under its retry ceiling goes back to pending; one over it is failed
// with the watchdog message.
type Reaper struct {
	jobs      *services.JobService
	publisher *events.Publisher
	holder    *config.Holder
	logger    *slog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewReaper creates a stale-job reaper.
func NewReaper(jobs *services.JobService, publisher *events.Publisher, holder *config.Holder, logger *slog.Logger) *Reaper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reaper{
		jobs:      jobs,
		publisher: publisher,
		holder:    holder,
		logger:    logger,
		stopCh:    make(chan struct{}),
	}
}

// Start launches the periodic sweep.
func (r *Reaper) Start() {
	r.wg.Add(1)
	go r.run()
}

// Stop halts the sweep loop and waits for a sweep in flight.
func (r *Reaper) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
	})
	r.wg.Wait()
}

func (r *Reaper) run() {
	defer r.wg.Done()

	interval := r.holder.Load().Queue.ReaperInterval
	if interval <= 0 {
		interval = time.Minute
	}

	r.logger.Info("Stale-job reaper started", "interval", interval)
	defer r.logger.Info("Stale-job reaper stopped")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Sweep runs one reaper pass.
func (r *Reaper) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	threshold := r.holder.Load().Queue.StaleThreshold

	reset, failed, err := r.jobs.ResetStuckJobs(ctx, threshold)
	if err != nil {
		r.logger.Error("Reaper sweep failed", "error", err)
		r.publisher.SystemError(ctx, "reaper", err.Error())
		return
	}

	for _, j := range reset {
		r.logger.Warn("Requeued stale job",
			"job_id", j.ID, "retry_count", j.RetryCount, "max_retries", j.MaxRetries)
		r.publisher.SystemError(ctx, "reaper",
			fmt.Sprintf("heartbeat timeout on job %d; requeued (retry %d of %d)",
				j.ID, j.RetryCount, j.MaxRetries))
	}

	for _, j := range failed {
		message := "watchdog exceeded retries"
		if j.ErrorMessage != nil {
			message = *j.ErrorMessage
		}
		r.logger.Error("Stale job exceeded retry ceiling", "job_id", j.ID)
		r.publisher.JobFailed(ctx, j.ID, "", message)
	}
}

// ResetStartupOrphans requeues every job left in_progress by a previous
// process. Called once before the pool starts; with no workers running,
// any in_progress row is an orphan.
func ResetStartupOrphans(ctx context.Context, jobs *services.JobService, publisher *events.Publisher, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.Default()
	}

	reset, failed, err := jobs.ResetStuckJobs(ctx, 0)
	if err != nil {
		return 0, fmt.Errorf("reset startup orphans: %w", err)
	}

	for _, j := range reset {
		logger.Warn("Requeued orphaned job from previous run", "job_id", j.ID)
		publisher.SystemError(ctx, "startup",
			fmt.Sprintf("job %d orphaned by restart; requeued (retry %d of %d)",
				j.ID, j.RetryCount, j.MaxRetries))
	}
	for _, j := range failed {
		logger.Error("Orphaned job exceeded retry ceiling", "job_id", j.ID)
		publisher.JobFailed(ctx, j.ID, "", "watchdog exceeded retries")
	}

	return len(reset) + len(failed), nil
}
