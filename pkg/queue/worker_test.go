package queue_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardigan-project/cardigan/ent"
	"github.com/cardigan-project/cardigan/ent/job"
	"github.com/cardigan-project/cardigan/pkg/config"
	"github.com/cardigan-project/cardigan/pkg/events"
	"github.com/cardigan-project/cardigan/pkg/models"
	"github.com/cardigan-project/cardigan/pkg/queue"
	"github.com/cardigan-project/cardigan/pkg/services"
	testdb "github.com/cardigan-project/cardigan/test/database"
)

// stubExecutor returns a fixed result, optionally blocking until the job
// context is cancelled.
type stubExecutor struct {
	mu       sync.Mutex
	result   *queue.ExecutionResult
	blocking bool
	executed []int
}

func (s *stubExecutor) Execute(ctx context.Context, j *ent.Job, snap *config.Snapshot) *queue.ExecutionResult {
	s.mu.Lock()
	s.executed = append(s.executed, j.ID)
	s.mu.Unlock()

	if s.blocking {
		<-ctx.Done()
		return &queue.ExecutionResult{Status: job.StatusCancelled}
	}
	return s.result
}

func (s *stubExecutor) executedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.executed)
}

type poolEnv struct {
	jobs      *services.JobService
	publisher *events.Publisher
	holder    *config.Holder
}

func newPoolEnv(t *testing.T) *poolEnv {
	t.Helper()

	client := testdb.NewTestClient(t)
	evsvc := services.NewEventService(client)

	queueCfg := config.DefaultQueueConfig()
	queueCfg.MaxConcurrentJobs = 2
	queueCfg.PollInterval = 10 * time.Millisecond
	queueCfg.PollIntervalJitter = 0
	queueCfg.HeartbeatInterval = 50 * time.Millisecond
	queueCfg.GracefulShutdownTimeout = 2 * time.Second

	holder := config.NewHolder(&config.Snapshot{
		Routing: config.DefaultRoutingConfig(),
		Safety:  config.DefaultSafetyConfig(),
		Queue:   queueCfg,
	})

	return &poolEnv{
		jobs:      services.NewJobService(client, config.DefaultDefaults()),
		publisher: events.NewPublisher(evsvc, events.NewBus(nil), nil),
		holder:    holder,
	}
}

func (env *poolEnv) submitJob(t *testing.T) *ent.Job {
	t.Helper()

	path := filepath.Join(t.TempDir(), "EP101_worker_test.srt")
	require.NoError(t, os.WriteFile(path, []byte("1\n00:00:01,000 --> 00:00:02,000\nHello.\n"), 0o644))

	created, err := env.jobs.CreateJob(context.Background(), models.CreateJobRequest{
		TranscriptFile: path,
	})
	require.NoError(t, err)
	return created
}

func waitForStatus(t *testing.T, jobs *services.JobService, jobID int, want job.Status) {
	t.Helper()
	require.Eventually(t, func() bool {
		j, err := jobs.GetJob(context.Background(), jobID, false)
		return err == nil && j.Status == want
	}, 5*time.Second, 10*time.Millisecond, "job %d never reached %s", jobID, want)
}

func TestWorkerPool_ProcessesJobToCompletion(t *testing.T) {
	env := newPoolEnv(t)
	stub := &stubExecutor{result: &queue.ExecutionResult{
		Status:    job.StatusCompleted,
		TotalCost: 1.5,
	}}

	pool := queue.NewWorkerPool(env.jobs, stub, env.holder, env.publisher, nil)
	created := env.submitJob(t)

	pool.Start(context.Background())
	defer pool.Stop()

	waitForStatus(t, env.jobs, created.ID, job.StatusCompleted)

	finished, err := env.jobs.GetJob(context.Background(), created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 1.5, finished.ActualCost)
	assert.NotNil(t, finished.CompletedAt)
	assert.Equal(t, 1, stub.executedCount())
}

func TestWorkerPool_RecordsFailure(t *testing.T) {
	env := newPoolEnv(t)
	stub := &stubExecutor{result: &queue.ExecutionResult{
		Status:       job.StatusFailed,
		FailedPhase:  "analyst",
		ErrorMessage: "escalation exhausted",
	}}

	pool := queue.NewWorkerPool(env.jobs, stub, env.holder, env.publisher, nil)
	created := env.submitJob(t)

	// Spend recorded on a phase before the job fails.
	_, err := env.jobs.UpdatePhase(context.Background(), created.ID, 0, models.PhasePatch{
		Cost: floatPtr(0.75),
	})
	require.NoError(t, err)

	pool.Start(context.Background())
	defer pool.Stop()

	waitForStatus(t, env.jobs, created.ID, job.StatusFailed)

	failed, err := env.jobs.GetJob(context.Background(), created.ID, false)
	require.NoError(t, err)
	require.NotNil(t, failed.ErrorMessage)
	assert.Equal(t, "escalation exhausted", *failed.ErrorMessage)

	// The phase spend lands on the job even though the run failed.
	assert.Equal(t, 0.75, failed.ActualCost)
}

func TestWorkerPool_CancelJob(t *testing.T) {
	env := newPoolEnv(t)
	stub := &stubExecutor{blocking: true}

	pool := queue.NewWorkerPool(env.jobs, stub, env.holder, env.publisher, nil)
	created := env.submitJob(t)

	_, err := env.jobs.UpdatePhase(context.Background(), created.ID, 0, models.PhasePatch{
		Cost: floatPtr(0.4),
	})
	require.NoError(t, err)

	pool.Start(context.Background())
	defer pool.Stop()

	waitForStatus(t, env.jobs, created.ID, job.StatusInProgress)
	require.Eventually(t, func() bool {
		return pool.CancelJob(created.ID)
	}, 2*time.Second, 10*time.Millisecond)

	waitForStatus(t, env.jobs, created.ID, job.StatusCancelled)
	require.Eventually(t, func() bool {
		return pool.ActiveCount() == 0
	}, 2*time.Second, 10*time.Millisecond)

	// A cancelled job still reports the spend its phases recorded.
	cancelled, err := env.jobs.GetJob(context.Background(), created.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 0.4, cancelled.ActualCost)
}

func TestWorkerPool_CancelUnknownJob(t *testing.T) {
	env := newPoolEnv(t)
	pool := queue.NewWorkerPool(env.jobs, &stubExecutor{}, env.holder, env.publisher, nil)
	assert.False(t, pool.CancelJob(12345))
}

func TestWorkerPool_DrainsQueueAcrossWorkers(t *testing.T) {
	env := newPoolEnv(t)
	stub := &stubExecutor{result: &queue.ExecutionResult{Status: job.StatusCompleted}}

	pool := queue.NewWorkerPool(env.jobs, stub, env.holder, env.publisher, nil)

	var ids []int
	for i := 0; i < 5; i++ {
		ids = append(ids, env.submitJob(t).ID)
	}

	pool.Start(context.Background())
	defer pool.Stop()

	for _, id := range ids {
		waitForStatus(t, env.jobs, id, job.StatusCompleted)
	}
	assert.Equal(t, 5, stub.executedCount())
}

func TestWorkerPool_Health(t *testing.T) {
	env := newPoolEnv(t)
	stub := &stubExecutor{result: &queue.ExecutionResult{Status: job.StatusCompleted}}

	pool := queue.NewWorkerPool(env.jobs, stub, env.holder, env.publisher, nil)
	pool.Start(context.Background())
	defer pool.Stop()

	health, err := pool.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, health.WorkerCount)
	assert.Len(t, health.Workers, 2)
	assert.Empty(t, health.ActiveJobs)
}
