package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cardigan-project/cardigan/ent"
	"github.com/cardigan-project/cardigan/ent/job"
	"github.com/cardigan-project/cardigan/pkg/config"
	"github.com/cardigan-project/cardigan/pkg/events"
	"github.com/cardigan-project/cardigan/pkg/services"
)

// terminalWriteTimeout bounds the store writes that record a job's final
// state. These run on a background context so a cancelled job context
// cannot leave the row stuck in_progress.
const terminalWriteTimeout = 30 * time.Second

// Worker claims and processes one job at a time. Concurrency comes from the
// pool running several workers, each with a distinct worker id.
type Worker struct {
	id        string
	pool      *WorkerPool
	jobs      *services.JobService
	executor  JobExecutor
	holder    *config.Holder
	publisher *events.Publisher
	logger    *slog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	processedJobs atomic.Int64
	failedJobs    atomic.Int64
}

// NewWorker creates a worker owned by the given pool.
func NewWorker(id string, pool *WorkerPool, jobs *services.JobService, executor JobExecutor, holder *config.Holder, publisher *events.Publisher, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{
		id:        id,
		pool:      pool,
		jobs:      jobs,
		executor:  executor,
		holder:    holder,
		publisher: publisher,
		logger:    logger.With("worker_id", id),
		stopCh:    make(chan struct{}),
	}
}

// Start launches the worker's poll loop.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the loop and blocks until the in-flight job, if any,
// finishes. Unblocking a stuck job is the pool's business via cancellation.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
	})
	w.wg.Wait()
}

// Health returns the worker's lifetime counters.
func (w *Worker) Health() WorkerHealth {
	return WorkerHealth{
		ID:            w.id,
		ProcessedJobs: w.processedJobs.Load(),
		FailedJobs:    w.failedJobs.Load(),
	}
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	w.logger.Info("Worker started")
	defer w.logger.Info("Worker stopped")

	for {
		select {
		case <-w.stopCh:
			return
		case <-ctx.Done():
			return
		default:
		}

		err := w.pollAndProcess(ctx)
		switch {
		case err == nil:
			// A job was processed; poll again immediately to drain the queue.
		case errors.Is(err, ErrNoJobsAvailable), errors.Is(err, ErrAtCapacity):
			if !w.sleep(ctx) {
				return
			}
		default:
			w.logger.Error("Poll failed", "error", err)
			if !w.sleep(ctx) {
				return
			}
		}
	}
}

// sleep waits one poll interval with jitter. Returns false when the worker
// should exit instead of polling again.
func (w *Worker) sleep(ctx context.Context) bool {
	queueCfg := w.holder.Load().Queue

	interval := queueCfg.PollInterval
	if jitter := queueCfg.PollIntervalJitter; jitter > 0 {
		interval += time.Duration(rand.Int64N(int64(2*jitter))) - jitter
	}
	if interval < 0 {
		interval = 0
	}

	timer := time.NewTimer(interval)
	defer timer.Stop()

	select {
	case <-w.stopCh:
		return false
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (w *Worker) pollAndProcess(ctx context.Context) error {
	snap := w.holder.Load()

	// The pool size is fixed at startup but the concurrency limit can be
	// lowered at runtime; extra workers then idle at this gate.
	if w.pool.ActiveCount() >= snap.Queue.MaxConcurrentJobs {
		return ErrAtCapacity
	}

	claimed, err := w.jobs.ClaimNextPendingJob(ctx, w.id)
	if err != nil {
		return fmt.Errorf("claim next pending job: %w", err)
	}
	if claimed == nil {
		return ErrNoJobsAvailable
	}

	w.processJob(claimed, snap)
	return nil
}

// processJob drives one claimed job to a terminal state. The job context is
// rooted in the background, not the poll context, so a pool shutdown first
// waits for the job and only cancels it past the graceful timeout.
func (w *Worker) processJob(j *ent.Job, snap *config.Snapshot) {
	logger := w.logger.With("job_id", j.ID, "transcript", j.TranscriptFile)
	logger.Info("Processing job", "priority", j.Priority, "retry_count", j.RetryCount)

	jobCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w.pool.register(j.ID, cancel)
	defer w.pool.unregister(j.ID)

	w.publisher.JobStarted(jobCtx, j.ID, w.id)

	hbStop := make(chan struct{})
	var hbWg sync.WaitGroup
	hbWg.Add(1)
	go w.heartbeatLoop(j.ID, snap.Queue.HeartbeatInterval, hbStop, &hbWg)

	start := time.Now()
	result := w.executor.Execute(jobCtx, j, snap)

	close(hbStop)
	hbWg.Wait()

	if result == nil {
		result = &ExecutionResult{
			Status:       job.StatusFailed,
			ErrorMessage: "executor returned no result",
		}
	}

	bg, cancelBg := context.WithTimeout(context.Background(), terminalWriteTimeout)
	defer cancelBg()

	switch result.Status {
	case job.StatusCompleted:
		if _, err := w.jobs.MarkCompleted(bg, j.ID, result.TotalCost); err != nil {
			logger.Error("Failed to mark job completed", "error", err)
		}
		w.publisher.JobCompleted(bg, j.ID, result.TotalCost, time.Since(start).Seconds())
		w.processedJobs.Add(1)
		logger.Info("Job completed", "total_cost", result.TotalCost, "duration", time.Since(start))

	case job.StatusCancelled:
		if _, err := w.jobs.Cancel(bg, j.ID); err != nil {
			logger.Error("Failed to mark job cancelled", "error", err)
		}
		w.publisher.JobCancelled(bg, j.ID)
		logger.Info("Job cancelled", "duration", time.Since(start))

	case job.StatusPaused:
		// The pause transition was already written by the control API; the
		// worker just stops touching the job.
		logger.Info("Job paused; releasing")

	default:
		message := result.ErrorMessage
		if message == "" {
			message = "job failed"
		}
		if _, err := w.jobs.MarkFailed(bg, j.ID, message); err != nil {
			logger.Error("Failed to mark job failed", "error", err)
		}
		w.publisher.JobFailed(bg, j.ID, result.FailedPhase, message)
		w.failedJobs.Add(1)
		logger.Error("Job failed", "phase", result.FailedPhase, "error", message)
	}
}

// heartbeatLoop refreshes last_heartbeat until stopped. Heartbeat errors
// are logged and never fail the job.
func (w *Worker) heartbeatLoop(jobID int, interval time.Duration, stop <-chan struct{}, wg *sync.WaitGroup) {
	defer wg.Done()

	if interval <= 0 {
		interval = 10 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			ok, err := w.jobs.UpdateHeartbeat(ctx, jobID)
			cancel()
			if err != nil {
				w.logger.Warn("Heartbeat update failed", "job_id", jobID, "error", err)
			} else if !ok {
				// The job left in_progress underneath us (pause, cancel, or
				// reaper reset); the executor will notice at its next check.
				w.logger.Debug("Heartbeat skipped; job no longer in progress", "job_id", jobID)
			}
		}
	}
}
