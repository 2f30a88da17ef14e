// Package queue runs the job pipeline: a pool of workers claims pending
// jobs from the durable store, executes their phases against the LLM
// client, and a reaper requeues jobs whose worker stopped heartbeating.
package queue

import (
	"context"
	"errors"

	"github.com/cardigan-project/cardigan/ent"
	"github.com/cardigan-project/cardigan/ent/job"
	"github.com/cardigan-project/cardigan/pkg/config"
)

// ErrNoJobsAvailable signals the queue is empty and the worker should sleep
// before polling again.
var ErrNoJobsAvailable = errors.New("no jobs available")

// ErrAtCapacity signals the pool already runs the configured number of
// concurrent jobs.
var ErrAtCapacity = errors.New("worker pool at capacity")

// JobExecutor runs one claimed job to a terminal state. The snapshot is
// taken at claim time; config edits mid-job never change a running job's
// policy. Execute must not return nil.
type JobExecutor interface {
	Execute(ctx context.Context, j *ent.Job, snap *config.Snapshot) *ExecutionResult
}

// ExecutionResult is the executor's verdict for one job run.
type ExecutionResult struct {
	// Status is the terminal (or suspended) state the worker should record:
	// completed, failed, cancelled, or paused.
	Status job.Status

	// FailedPhase names the phase that caused a failed status, when known.
	FailedPhase string

	// ErrorMessage carries the failure detail for failed status.
	ErrorMessage string

	// TotalCost is the job's accumulated LLM spend in dollars.
	TotalCost float64
}

// WorkerHealth reports one worker's lifetime counters.
type WorkerHealth struct {
	ID            string `json:"id"`
	ProcessedJobs int64  `json:"processed_jobs"`
	FailedJobs    int64  `json:"failed_jobs"`
}

// PoolHealth is the pool section of the health endpoint.
type PoolHealth struct {
	WorkerCount int            `json:"worker_count"`
	ActiveJobs  []int          `json:"active_jobs"`
	PendingJobs int            `json:"pending_jobs"`
	Workers     []WorkerHealth `json:"workers"`
}
