package queue_test

import (
	"context"
	"os"
	"path/filepath"
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

type reaperEnv struct {
	client    *ent.Client
	jobs      *services.JobService
	publisher *events.Publisher
	holder    *config.Holder
}

func newReaperEnv(t *testing.T) *reaperEnv {
	t.Helper()

	client := testdb.NewTestClient(t)
	evsvc := services.NewEventService(client)

	queueCfg := config.DefaultQueueConfig()
	queueCfg.StaleThreshold = 30 * time.Second

	return &reaperEnv{
		client:    client,
		jobs:      services.NewJobService(client, config.DefaultDefaults()),
		publisher: events.NewPublisher(evsvc, events.NewBus(nil), nil),
		holder: config.NewHolder(&config.Snapshot{
			Routing: config.DefaultRoutingConfig(),
			Safety:  config.DefaultSafetyConfig(),
			Queue:   queueCfg,
		}),
	}
}

// claimStaleJob claims a job and backdates its heartbeat past the
// threshold.
func (env *reaperEnv) claimStaleJob(t *testing.T) *ent.Job {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "EP101_reaper_test.srt")
	require.NoError(t, os.WriteFile(path, []byte("1\n00:00:01,000 --> 00:00:02,000\nHello.\n"), 0o644))

	_, err := env.jobs.CreateJob(ctx, models.CreateJobRequest{TranscriptFile: path})
	require.NoError(t, err)

	claimed, err := env.jobs.ClaimNextPendingJob(ctx, "dead-worker")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	stale := time.Now().UTC().Add(-2 * time.Minute)
	updated, err := env.client.Job.UpdateOneID(claimed.ID).
		SetLastHeartbeat(stale).
		Save(ctx)
	require.NoError(t, err)
	return updated
}

func TestReaper_RequeuesStaleJob(t *testing.T) {
	env := newReaperEnv(t)
	stale := env.claimStaleJob(t)

	reaper := queue.NewReaper(env.jobs, env.publisher, env.holder, nil)
	reaper.Sweep()

	requeued, err := env.jobs.GetJob(context.Background(), stale.ID, false)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, requeued.Status)
	assert.Equal(t, 1, requeued.RetryCount)
	assert.Nil(t, requeued.WorkerID)
	assert.Nil(t, requeued.LastHeartbeat)
	assert.Nil(t, requeued.StartedAt)
}

func TestReaper_FailsJobPastRetryCeiling(t *testing.T) {
	env := newReaperEnv(t)
	stale := env.claimStaleJob(t)

	_, err := env.client.Job.UpdateOneID(stale.ID).
		SetRetryCount(3).
		Save(context.Background())
	require.NoError(t, err)

	reaper := queue.NewReaper(env.jobs, env.publisher, env.holder, nil)
	reaper.Sweep()

	failed, err := env.jobs.GetJob(context.Background(), stale.ID, false)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, failed.Status)
	require.NotNil(t, failed.ErrorMessage)
	assert.Equal(t, "watchdog exceeded retries", *failed.ErrorMessage)
	assert.NotNil(t, failed.CompletedAt)
}

func TestReaper_IgnoresHealthyJob(t *testing.T) {
	env := newReaperEnv(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "EP102_reaper_test.srt")
	require.NoError(t, os.WriteFile(path, []byte("1\n00:00:01,000 --> 00:00:02,000\nHello.\n"), 0o644))
	_, err := env.jobs.CreateJob(ctx, models.CreateJobRequest{TranscriptFile: path})
	require.NoError(t, err)

	claimed, err := env.jobs.ClaimNextPendingJob(ctx, "live-worker")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	reaper := queue.NewReaper(env.jobs, env.publisher, env.holder, nil)
	reaper.Sweep()

	still, err := env.jobs.GetJob(ctx, claimed.ID, false)
	require.NoError(t, err)
	assert.Equal(t, job.StatusInProgress, still.Status)
	assert.Equal(t, 0, still.RetryCount)
}

func TestResetStartupOrphans(t *testing.T) {
	env := newReaperEnv(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "EP103_orphan_test.srt")
	require.NoError(t, os.WriteFile(path, []byte("1\n00:00:01,000 --> 00:00:02,000\nHello.\n"), 0o644))
	_, err := env.jobs.CreateJob(ctx, models.CreateJobRequest{TranscriptFile: path})
	require.NoError(t, err)

	claimed, err := env.jobs.ClaimNextPendingJob(ctx, "crashed-worker")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	// Heartbeats only count as live while a worker holds the job; with a
	// zero threshold any in_progress row from a previous process is stale.
	count, err := queue.ResetStartupOrphans(ctx, env.jobs, env.publisher, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	requeued, err := env.jobs.GetJob(ctx, claimed.ID, false)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, requeued.Status)
	assert.Equal(t, 1, requeued.RetryCount)
}
