package cleanup_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardigan-project/cardigan/ent"
	"github.com/cardigan-project/cardigan/ent/sessionevent"
	"github.com/cardigan-project/cardigan/pkg/cleanup"
	"github.com/cardigan-project/cardigan/pkg/config"
	"github.com/cardigan-project/cardigan/pkg/models"
	"github.com/cardigan-project/cardigan/pkg/services"
	testdb "github.com/cardigan-project/cardigan/test/database"
)

type cleanupEnv struct {
	client *ent.Client
	jobs   *services.JobService
	events *services.EventService
}

func newCleanupEnv(t *testing.T) *cleanupEnv {
	t.Helper()
	client := testdb.NewTestClient(t)
	return &cleanupEnv{
		client: client,
		jobs:   services.NewJobService(client, config.DefaultDefaults()),
		events: services.NewEventService(client),
	}
}

// finishedJob creates a completed job and backdates its completion time.
func (env *cleanupEnv) finishedJob(t *testing.T, name string, completedAt time.Time) *ent.Job {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("1\n00:00:01,000 --> 00:00:02,000\nHello.\n"), 0o644))

	created, err := env.jobs.CreateJob(ctx, models.CreateJobRequest{TranscriptFile: path})
	require.NoError(t, err)

	claimed, err := env.jobs.ClaimNextPendingJob(ctx, "cleanup-worker")
	require.NoError(t, err)
	require.Equal(t, created.ID, claimed.ID)

	_, err = env.jobs.MarkCompleted(ctx, created.ID, 0.1)
	require.NoError(t, err)

	updated, err := env.client.Job.UpdateOneID(created.ID).
		SetCompletedAt(completedAt).
		Save(ctx)
	require.NoError(t, err)
	return updated
}

func TestCleanup_PrunesOldTerminalJobs(t *testing.T) {
	env := newCleanupEnv(t)
	ctx := context.Background()

	old := env.finishedJob(t, "EP101_old.srt", time.Now().UTC().Add(-40*24*time.Hour))
	fresh := env.finishedJob(t, "EP102_fresh.srt", time.Now().UTC().Add(-time.Hour))

	svc := cleanup.NewService(config.DefaultRetentionConfig(), env.jobs, env.events, nil)
	svc.RunOnce(ctx)

	_, err := env.jobs.GetJob(ctx, old.ID, false)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = env.jobs.GetJob(ctx, fresh.ID, false)
	assert.NoError(t, err)
}

func TestCleanup_LeavesActiveJobsAlone(t *testing.T) {
	env := newCleanupEnv(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "EP103_active.srt")
	require.NoError(t, os.WriteFile(path, []byte("1\n00:00:01,000 --> 00:00:02,000\nHello.\n"), 0o644))
	created, err := env.jobs.CreateJob(ctx, models.CreateJobRequest{TranscriptFile: path})
	require.NoError(t, err)

	svc := cleanup.NewService(config.DefaultRetentionConfig(), env.jobs, env.events, nil)
	svc.RunOnce(ctx)

	_, err = env.jobs.GetJob(ctx, created.ID, false)
	assert.NoError(t, err)
}

func TestCleanup_PrunesExpiredSystemEvents(t *testing.T) {
	env := newCleanupEnv(t)
	ctx := context.Background()

	// One expired and one fresh system event (no job attached).
	expired, err := env.client.SessionEvent.Create().
		SetEventType(sessionevent.EventTypeSystemError).
		SetTimestamp(time.Now().UTC().Add(-8 * 24 * time.Hour)).
		SetData(map[string]interface{}{"component": "reaper"}).
		Save(ctx)
	require.NoError(t, err)

	_, _, err = env.events.Append(ctx, nil, "system_error", map[string]interface{}{"component": "reaper"})
	require.NoError(t, err)

	svc := cleanup.NewService(config.DefaultRetentionConfig(), env.jobs, env.events, nil)
	svc.RunOnce(ctx)

	exists, err := env.client.SessionEvent.Query().
		Where(sessionevent.IDEQ(expired.ID)).
		Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	remaining, err := env.client.SessionEvent.Query().
		Where(sessionevent.JobIDIsNil()).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
}

func TestCleanup_DisabledIsNoOp(t *testing.T) {
	env := newCleanupEnv(t)

	cfg := config.DefaultRetentionConfig()
	cfg.Enabled = false

	svc := cleanup.NewService(cfg, env.jobs, env.events, nil)
	svc.Start(context.Background())
	svc.Stop()
}
