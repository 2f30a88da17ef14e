package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardigan-project/cardigan/pkg/events"
	"github.com/cardigan-project/cardigan/pkg/models"
	testdb "github.com/cardigan-project/cardigan/test/database"
)

func TestEventService_Append(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := NewJobService(client, nil)
	service := NewEventService(client)
	ctx := context.Background()

	created, err := jobs.CreateJob(ctx, models.CreateJobRequest{TranscriptFile: "ev.srt"})
	require.NoError(t, err)

	id, ts, err := service.Append(ctx, &created.ID, events.EventTypeJobQueued,
		map[string]interface{}{"priority": 0})
	require.NoError(t, err)
	assert.Positive(t, id)
	assert.False(t, ts.IsZero())

	// System events carry no job id.
	id2, _, err := service.Append(ctx, nil, events.EventTypeSystemPause, nil)
	require.NoError(t, err)
	assert.Greater(t, id2, id)

	_, _, err = service.Append(ctx, &created.ID, "not_a_real_type", nil)
	assert.Error(t, err)
}

func TestEventService_ListJobEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := NewJobService(client, nil)
	service := NewEventService(client)
	ctx := context.Background()

	created, err := jobs.CreateJob(ctx, models.CreateJobRequest{TranscriptFile: "list.srt"})
	require.NoError(t, err)
	other, err := jobs.CreateJob(ctx, models.CreateJobRequest{TranscriptFile: "other.srt"})
	require.NoError(t, err)

	for _, et := range []string{events.EventTypeJobQueued, events.EventTypeJobStarted, events.EventTypePhaseStarted} {
		_, _, err := service.Append(ctx, &created.ID, et, nil)
		require.NoError(t, err)
	}
	_, _, err = service.Append(ctx, &other.ID, events.EventTypeJobQueued, nil)
	require.NoError(t, err)

	resp, err := service.ListJobEvents(ctx, created.ID, models.EventFilters{})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalCount)
	require.Len(t, resp.Events, 3)
	// Newest first.
	assert.Equal(t, "phase_started", string(resp.Events[0].EventType))

	filtered, err := service.ListJobEvents(ctx, created.ID, models.EventFilters{EventType: "job_queued"})
	require.NoError(t, err)
	assert.Equal(t, 1, filtered.TotalCount)

	_, err = service.ListJobEvents(ctx, created.ID, models.EventFilters{EventType: "bogus"})
	assert.True(t, IsValidationError(err))
}

func TestEventService_GetCatchupEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := NewJobService(client, nil)
	service := NewEventService(client)
	ctx := context.Background()

	created, err := jobs.CreateJob(ctx, models.CreateJobRequest{TranscriptFile: "catchup.srt"})
	require.NoError(t, err)

	var firstID int
	for i, et := range []string{events.EventTypeJobQueued, events.EventTypeJobStarted, events.EventTypeJobCompleted} {
		id, _, err := service.Append(ctx, &created.ID, et, nil)
		require.NoError(t, err)
		if i == 0 {
			firstID = id
		}
	}

	t.Run("job channel since cursor", func(t *testing.T) {
		envs, err := service.GetCatchupEvents(ctx, events.JobChannel(created.ID), firstID, 10)
		require.NoError(t, err)
		require.Len(t, envs, 2)
		// Oldest first for replay.
		assert.Equal(t, events.EventTypeJobStarted, envs[0].Type)
		assert.Equal(t, events.EventTypeJobCompleted, envs[1].Type)
		require.NotNil(t, envs[0].JobID)
		assert.Equal(t, created.ID, *envs[0].JobID)
	})

	t.Run("global channel replays everything", func(t *testing.T) {
		envs, err := service.GetCatchupEvents(ctx, events.GlobalChannel, 0, 10)
		require.NoError(t, err)
		assert.Len(t, envs, 3)
	})

	t.Run("limit respected", func(t *testing.T) {
		envs, err := service.GetCatchupEvents(ctx, events.GlobalChannel, 0, 2)
		require.NoError(t, err)
		assert.Len(t, envs, 2)
	})

	t.Run("bad channel rejected", func(t *testing.T) {
		_, err := service.GetCatchupEvents(ctx, "nonsense", 0, 10)
		assert.True(t, IsValidationError(err))
		_, err = service.GetCatchupEvents(ctx, "job:zero", 0, 10)
		assert.True(t, IsValidationError(err))
	})
}

func TestEventService_ImplementsBusInterfaces(t *testing.T) {
	var _ events.Store = (*EventService)(nil)
	var _ events.CatchupQuerier = (*EventService)(nil)
}
