package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/cardigan-project/cardigan/pkg/config"
	"github.com/cardigan-project/cardigan/pkg/events"
	"github.com/cardigan-project/cardigan/pkg/models"
	"github.com/cardigan-project/cardigan/pkg/services"
)

// WorkerPool owns the worker goroutines and the per-job cancellation
// registry. The registry is the only in-memory channel between the control
// API and a running job: cancel requests flip the job's context, everything
// else flows through the store.
type WorkerPool struct {
	jobs      *services.JobService
	executor  JobExecutor
	holder    *config.Holder
	publisher *events.Publisher
	logger    *slog.Logger

	workers []*Worker

	mu     sync.Mutex
	active map[int]context.CancelFunc

	started  bool
	stopOnce sync.Once
}

// NewWorkerPool creates a pool. Start launches the workers.
func NewWorkerPool(jobs *services.JobService, executor JobExecutor, holder *config.Holder, publisher *events.Publisher, logger *slog.Logger) *WorkerPool {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkerPool{
		jobs:      jobs,
		executor:  executor,
		holder:    holder,
		publisher: publisher,
		logger:    logger,
		active:    make(map[int]context.CancelFunc),
	}
}

// Start launches one worker per configured concurrent job.
func (p *WorkerPool) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return
	}
	p.started = true

	count := p.holder.Load().Queue.MaxConcurrentJobs
	if count < 1 {
		count = 1
	}

	for i := 1; i <= count; i++ {
		w := NewWorker(fmt.Sprintf("worker-%d", i), p, p.jobs, p.executor, p.holder, p.publisher, p.logger)
		p.workers = append(p.workers, w)
		w.Start(ctx)
	}

	p.logger.Info("Worker pool started", "workers", count)
}

// Stop drains the pool: workers stop polling and in-flight jobs get the
// graceful shutdown window to finish before their contexts are cancelled.
func (p *WorkerPool) Stop() {
	p.stopOnce.Do(func() {
		timeout := p.holder.Load().Queue.GracefulShutdownTimeout
		p.logger.Info("Worker pool stopping", "graceful_timeout", timeout)

		done := make(chan struct{})
		go func() {
			for _, w := range p.workers {
				w.Stop()
			}
			close(done)
		}()

		if timeout <= 0 {
			<-done
		} else {
			select {
			case <-done:
			case <-time.After(timeout):
				p.logger.Warn("Graceful shutdown timeout; cancelling active jobs",
					"active", p.ActiveCount())
				p.cancelAll()
				<-done
			}
		}

		p.logger.Info("Worker pool stopped")
	})
}

// register records a running job's cancel func.
func (p *WorkerPool) register(jobID int, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active[jobID] = cancel
}

// unregister removes a finished job from the registry.
func (p *WorkerPool) unregister(jobID int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.active, jobID)
}

// CancelJob signals a running job to stop. The current LLM call is allowed
// to finish; the executor checks the context before the next one. Returns
// false when the job is not running in this pool.
func (p *WorkerPool) CancelJob(jobID int) bool {
	p.mu.Lock()
	cancel, ok := p.active[jobID]
	p.mu.Unlock()

	if !ok {
		return false
	}
	cancel()
	p.logger.Info("Cancellation signalled", "job_id", jobID)
	return true
}

func (p *WorkerPool) cancelAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for id, cancel := range p.active {
		cancel()
		p.logger.Info("Cancellation signalled", "job_id", id)
	}
}

// ActiveCount returns the number of jobs currently executing.
func (p *WorkerPool) ActiveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.active)
}

// ActiveJobIDs returns the running job ids in ascending order.
func (p *WorkerPool) ActiveJobIDs() []int {
	p.mu.Lock()
	ids := make([]int, 0, len(p.active))
	for id := range p.active {
		ids = append(ids, id)
	}
	p.mu.Unlock()

	sort.Ints(ids)
	return ids
}

// Health reports the pool state plus the queue depth from the store.
func (p *WorkerPool) Health(ctx context.Context) (*PoolHealth, error) {
	pending, err := p.jobs.ListJobs(ctx, models.JobFilters{Status: "pending", Limit: 1})
	if err != nil {
		return nil, fmt.Errorf("count pending jobs: %w", err)
	}

	p.mu.Lock()
	workers := make([]*Worker, len(p.workers))
	copy(workers, p.workers)
	p.mu.Unlock()

	health := &PoolHealth{
		WorkerCount: len(workers),
		ActiveJobs:  p.ActiveJobIDs(),
		PendingJobs: pending.TotalCount,
	}
	for _, w := range workers {
		health.Workers = append(health.Workers, w.Health())
	}
	return health, nil
}
