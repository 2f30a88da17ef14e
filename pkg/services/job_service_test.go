package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardigan-project/cardigan/ent"
	"github.com/cardigan-project/cardigan/ent/job"
	"github.com/cardigan-project/cardigan/ent/jobphase"
	"github.com/cardigan-project/cardigan/pkg/config"
	"github.com/cardigan-project/cardigan/pkg/models"
	testdb "github.com/cardigan-project/cardigan/test/database"
)

func newJobService(t *testing.T) (*JobService, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return NewJobService(client, config.DefaultDefaults()), client
}

func intPtr(v int) *int { return &v }

func TestJobService_CreateJob(t *testing.T) {
	service, client := newJobService(t)
	ctx := context.Background()

	t.Run("creates pending job with initialized phases", func(t *testing.T) {
		created, err := service.CreateJob(ctx, models.CreateJobRequest{
			TranscriptFile: "EP101_show_captions.srt",
		})
		require.NoError(t, err)
		assert.Equal(t, job.StatusPending, created.Status)
		assert.Equal(t, "EP101_show_captions", created.ProjectName)
		assert.Equal(t, "EP101_show_captions", created.ProjectPath)
		require.NotNil(t, created.MediaID)
		assert.Equal(t, "EP101", *created.MediaID)
		assert.Equal(t, 3, created.MaxRetries)
		assert.False(t, created.QueuedAt.IsZero())

		phases, err := client.JobPhase.Query().
			Where(jobphase.JobIDEQ(created.ID)).
			Order(ent.Asc(jobphase.FieldPhaseIndex)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, phases, 4)
		assert.Equal(t, jobphase.NameAnalyst, phases[0].Name)
		assert.Equal(t, jobphase.NameManager, phases[3].Name)
		for _, p := range phases {
			assert.Equal(t, jobphase.StatusPending, p.Status)
		}
	})

	t.Run("rejects duplicate transcript", func(t *testing.T) {
		_, err := service.CreateJob(ctx, models.CreateJobRequest{
			TranscriptFile: "EP101_show_captions.srt",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateTranscript)

		var dupErr *DuplicateTranscriptError
		require.ErrorAs(t, err, &dupErr)
		assert.NotZero(t, dupErr.ExistingJobID)
	})

	t.Run("force bypasses duplicate guard", func(t *testing.T) {
		created, err := service.CreateJob(ctx, models.CreateJobRequest{
			TranscriptFile: "EP101_show_captions.srt",
			Force:          true,
		})
		require.NoError(t, err)
		assert.Equal(t, job.StatusPending, created.Status)
	})

	t.Run("duplicate of terminal job is allowed", func(t *testing.T) {
		first, err := service.CreateJob(ctx, models.CreateJobRequest{
			TranscriptFile: "done_EP200.srt",
		})
		require.NoError(t, err)
		_, err = service.Cancel(ctx, first.ID)
		require.NoError(t, err)

		_, err = service.CreateJob(ctx, models.CreateJobRequest{
			TranscriptFile: "done_EP200.srt",
		})
		require.NoError(t, err)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := service.CreateJob(ctx, models.CreateJobRequest{})
		assert.True(t, IsValidationError(err))

		_, err = service.CreateJob(ctx, models.CreateJobRequest{
			TranscriptFile: "x.srt",
			Phases:         []string{"analyst", "mystery"},
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("custom phases and priority", func(t *testing.T) {
		created, err := service.CreateJob(ctx, models.CreateJobRequest{
			TranscriptFile: "custom_EP300.srt",
			Phases:         []string{"analyst", "manager"},
			Priority:       intPtr(9),
		})
		require.NoError(t, err)
		assert.Equal(t, 9, created.Priority)

		phases, err := service.GetPhases(ctx, created.ID)
		require.NoError(t, err)
		assert.Len(t, phases, 2)
	})
}

func TestJobService_ClaimNextPendingJob(t *testing.T) {
	service, _ := newJobService(t)
	ctx := context.Background()

	t.Run("empty queue returns nil", func(t *testing.T) {
		claimed, err := service.ClaimNextPendingJob(ctx, "worker-1")
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})

	t.Run("claims by priority then queue order", func(t *testing.T) {
		low, err := service.CreateJob(ctx, models.CreateJobRequest{TranscriptFile: "low.srt"})
		require.NoError(t, err)
		high, err := service.CreateJob(ctx, models.CreateJobRequest{
			TranscriptFile: "high.srt",
			Priority:       intPtr(10),
		})
		require.NoError(t, err)

		first, err := service.ClaimNextPendingJob(ctx, "worker-1")
		require.NoError(t, err)
		require.NotNil(t, first)
		assert.Equal(t, high.ID, first.ID)
		assert.Equal(t, job.StatusInProgress, first.Status)
		assert.Equal(t, "worker-1", *first.WorkerID)
		assert.NotNil(t, first.StartedAt)
		assert.NotNil(t, first.LastHeartbeat)
		assert.NotEmpty(t, first.Edges.Phases)

		second, err := service.ClaimNextPendingJob(ctx, "worker-2")
		require.NoError(t, err)
		require.NotNil(t, second)
		assert.Equal(t, low.ID, second.ID)

		// Queue drained.
		third, err := service.ClaimNextPendingJob(ctx, "worker-3")
		require.NoError(t, err)
		assert.Nil(t, third)
	})
}

func TestJobService_Heartbeat(t *testing.T) {
	service, _ := newJobService(t)
	ctx := context.Background()

	created, err := service.CreateJob(ctx, models.CreateJobRequest{TranscriptFile: "hb.srt"})
	require.NoError(t, err)

	// Not in_progress yet: no-op.
	updated, err := service.UpdateHeartbeat(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, updated)

	claimed, err := service.ClaimNextPendingJob(ctx, "worker-1")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	updated, err = service.UpdateHeartbeat(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, updated)
}

func TestJobService_ResetStuckJobs(t *testing.T) {
	service, client := newJobService(t)
	ctx := context.Background()

	created, err := service.CreateJob(ctx, models.CreateJobRequest{TranscriptFile: "stuck.srt"})
	require.NoError(t, err)
	_, err = service.ClaimNextPendingJob(ctx, "worker-1")
	require.NoError(t, err)

	// Age the heartbeat past the threshold.
	stale := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, client.Job.UpdateOneID(created.ID).SetLastHeartbeat(stale).Exec(ctx))

	staleJobs, err := service.GetStaleJobs(ctx, 30*time.Second)
	require.NoError(t, err)
	require.Len(t, staleJobs, 1)

	reset, failed, err := service.ResetStuckJobs(ctx, 30*time.Second)
	require.NoError(t, err)
	require.Len(t, reset, 1)
	assert.Empty(t, failed)
	assert.Equal(t, job.StatusPending, reset[0].Status)
	assert.Equal(t, 1, reset[0].RetryCount)
	assert.Nil(t, reset[0].StartedAt)

	// Exhaust the retry ceiling and reap again.
	_, err = service.ClaimNextPendingJob(ctx, "worker-2")
	require.NoError(t, err)
	require.NoError(t, client.Job.UpdateOneID(created.ID).
		SetLastHeartbeat(stale).
		SetRetryCount(3).
		Exec(ctx))

	reset, failed, err = service.ResetStuckJobs(ctx, 30*time.Second)
	require.NoError(t, err)
	assert.Empty(t, reset)
	require.Len(t, failed, 1)
	assert.Equal(t, job.StatusFailed, failed[0].Status)
	assert.Equal(t, "watchdog exceeded retries", *failed[0].ErrorMessage)
}

func TestJobService_Transitions(t *testing.T) {
	service, _ := newJobService(t)
	ctx := context.Background()

	t.Run("pause and resume", func(t *testing.T) {
		created, err := service.CreateJob(ctx, models.CreateJobRequest{TranscriptFile: "pause.srt"})
		require.NoError(t, err)

		paused, err := service.Pause(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusPaused, paused.Status)

		resumed, err := service.Resume(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusPending, resumed.Status)
	})

	t.Run("cancel is terminal", func(t *testing.T) {
		created, err := service.CreateJob(ctx, models.CreateJobRequest{TranscriptFile: "cancel.srt"})
		require.NoError(t, err)

		cancelled, err := service.Cancel(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCancelled, cancelled.Status)

		_, err = service.Resume(ctx, created.ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		_, err = service.Pause(ctx, created.ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("retry requeues failed job and resets phases", func(t *testing.T) {
		created, err := service.CreateJob(ctx, models.CreateJobRequest{TranscriptFile: "retry.srt"})
		require.NoError(t, err)
		_, err = service.ClaimNextPendingJob(ctx, "worker-1")
		require.NoError(t, err)

		_, err = service.UpdatePhase(ctx, created.ID, 0, models.PhasePatch{
			Status:       strPtr("failed"),
			ErrorMessage: strPtr("provider exploded"),
		})
		require.NoError(t, err)

		_, err = service.MarkFailed(ctx, created.ID, "phase analyst failed")
		require.NoError(t, err)

		retried, err := service.Retry(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusPending, retried.Status)
		assert.Equal(t, 0, retried.RetryCount)
		assert.Nil(t, retried.ErrorMessage)

		phases, err := service.GetPhases(ctx, created.ID)
		require.NoError(t, err)
		for _, p := range phases {
			assert.Equal(t, jobphase.StatusPending, p.Status)
			assert.Nil(t, p.ErrorMessage)
		}
	})

	t.Run("retry of non-failed job rejected", func(t *testing.T) {
		created, err := service.CreateJob(ctx, models.CreateJobRequest{TranscriptFile: "noretry.srt"})
		require.NoError(t, err)

		_, err = service.Retry(ctx, created.ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("investigating round trip", func(t *testing.T) {
		created, err := service.CreateJob(ctx, models.CreateJobRequest{TranscriptFile: "invest.srt"})
		require.NoError(t, err)
		_, err = service.ClaimNextPendingJob(ctx, "worker-1")
		require.NoError(t, err)

		investigating, err := service.MarkInvestigating(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusInvestigating, investigating.Status)

		resumed, err := service.ResumeFromInvestigation(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, job.StatusInProgress, resumed.Status)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		created, err := service.CreateJob(ctx, models.CreateJobRequest{TranscriptFile: "complete.srt"})
		require.NoError(t, err)
		_, err = service.ClaimNextPendingJob(ctx, "worker-1")
		require.NoError(t, err)

		completed, err := service.MarkCompleted(ctx, created.ID, 1.25)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCompleted, completed.Status)
		assert.Equal(t, 1.25, completed.ActualCost)
		assert.NotNil(t, completed.CompletedAt)

		_, err = service.Cancel(ctx, created.ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestJobService_UpdatePriority(t *testing.T) {
	service, _ := newJobService(t)
	ctx := context.Background()

	created, err := service.CreateJob(ctx, models.CreateJobRequest{TranscriptFile: "prio.srt"})
	require.NoError(t, err)

	updated, err := service.UpdatePriority(ctx, created.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, 42, updated.Priority)

	_, err = service.Cancel(ctx, created.ID)
	require.NoError(t, err)
	_, err = service.UpdatePriority(ctx, created.ID, 1)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestJobService_BulkDelete(t *testing.T) {
	service, client := newJobService(t)
	ctx := context.Background()

	pending, err := service.CreateJob(ctx, models.CreateJobRequest{TranscriptFile: "keep.srt"})
	require.NoError(t, err)

	doomed, err := service.CreateJob(ctx, models.CreateJobRequest{TranscriptFile: "doomed.srt"})
	require.NoError(t, err)
	_, err = service.Cancel(ctx, doomed.ID)
	require.NoError(t, err)

	t.Run("rejects undeletable statuses", func(t *testing.T) {
		_, err := service.BulkDelete(ctx, []string{"pending"})
		assert.True(t, IsValidationError(err))
		_, err = service.BulkDelete(ctx, nil)
		assert.True(t, IsValidationError(err))
	})

	t.Run("deletes cancelled jobs and their phases", func(t *testing.T) {
		count, err := service.BulkDelete(ctx, []string{"failed", "cancelled"})
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		_, err = service.GetJob(ctx, doomed.ID, false)
		assert.ErrorIs(t, err, ErrNotFound)

		// Pending job untouched.
		kept, err := service.GetJob(ctx, pending.ID, false)
		require.NoError(t, err)
		assert.Equal(t, job.StatusPending, kept.Status)

		orphans, err := client.JobPhase.Query().
			Where(jobphase.JobIDEQ(doomed.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, orphans)
	})
}

func TestJobService_UpdatePhase(t *testing.T) {
	service, _ := newJobService(t)
	ctx := context.Background()

	created, err := service.CreateJob(ctx, models.CreateJobRequest{TranscriptFile: "phase.srt"})
	require.NoError(t, err)

	now := time.Now().UTC()
	updated, err := service.UpdatePhase(ctx, created.ID, 0, models.PhasePatch{
		Status:          strPtr("completed"),
		TierIndex:       intPtr(1),
		TierLabel:       strPtr("default"),
		Model:           strPtr("gpt-4o"),
		Attempts:        intPtr(2),
		Cost:            floatPtr(0.12),
		InputTokens:     intPtr(5000),
		OutputTokens:    intPtr(900),
		CompletedAt:     &now,
		DeliverablePath: strPtr("/out/p/analyst_output.md"),
	})
	require.NoError(t, err)
	assert.Equal(t, jobphase.StatusCompleted, updated.Status)
	assert.Equal(t, 1, updated.TierIndex)
	assert.Equal(t, "gpt-4o", updated.Model)
	assert.Equal(t, 0.12, updated.Cost)

	_, err = service.UpdatePhase(ctx, created.ID, 99, models.PhasePatch{})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.UpdatePhase(ctx, created.ID, 0, models.PhasePatch{Status: strPtr("exploded")})
	assert.True(t, IsValidationError(err))
}

func TestJobService_QueueStats(t *testing.T) {
	service, _ := newJobService(t)
	ctx := context.Background()

	empty, err := service.QueueStats(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty.StatusCounts)
	assert.Zero(t, empty.TotalCost)

	_, err = service.CreateJob(ctx, models.CreateJobRequest{TranscriptFile: "stats_a.srt"})
	require.NoError(t, err)
	created, err := service.CreateJob(ctx, models.CreateJobRequest{TranscriptFile: "stats_b.srt"})
	require.NoError(t, err)

	_, err = service.UpdatePhase(ctx, created.ID, 0, models.PhasePatch{
		Cost:         floatPtr(0.25),
		InputTokens:  intPtr(4000),
		OutputTokens: intPtr(800),
	})
	require.NoError(t, err)

	claimed, err := service.ClaimNextPendingJob(ctx, "stats-worker")
	require.NoError(t, err)
	_, err = service.MarkCompleted(ctx, claimed.ID, 0.25)
	require.NoError(t, err)

	stats, err := service.QueueStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.StatusCounts["pending"])
	assert.Equal(t, 1, stats.StatusCounts["completed"])
	assert.Equal(t, 0.25, stats.TotalCost)
	assert.Equal(t, 4000, stats.InputTokens)
	assert.Equal(t, 800, stats.OutputTokens)
}

func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }
