package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardigan-project/cardigan/ent/ingestrecord"
	testdb "github.com/cardigan-project/cardigan/test/database"
)

func TestIngestService_Observe(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewIngestService(client)
	ctx := context.Background()

	mtime := time.Now().UTC().Add(-time.Hour)

	t.Run("first sighting is offered", func(t *testing.T) {
		record, offer, err := service.Observe(ctx, "EP101_show.srt", 2048, mtime)
		require.NoError(t, err)
		assert.True(t, offer)
		assert.Equal(t, ingestrecord.StatusNew, record.Status)
		assert.False(t, record.FirstSeen.IsZero())
	})

	t.Run("unchanged queued file is not re-offered", func(t *testing.T) {
		require.NoError(t, service.MarkQueued(ctx, "EP101_show.srt", 1))

		record, offer, err := service.Observe(ctx, "EP101_show.srt", 2048, mtime)
		require.NoError(t, err)
		assert.False(t, offer)
		assert.Equal(t, ingestrecord.StatusQueued, record.Status)
	})

	t.Run("changed file re-enters the offer queue", func(t *testing.T) {
		record, offer, err := service.Observe(ctx, "EP101_show.srt", 4096, mtime.Add(30*time.Minute))
		require.NoError(t, err)
		assert.True(t, offer)
		assert.Equal(t, ingestrecord.StatusNew, record.Status)
		assert.Equal(t, int64(4096), record.Size)
	})

	t.Run("unchanged new file stays offered", func(t *testing.T) {
		_, offer, err := service.Observe(ctx, "EP101_show.srt", 4096, mtime.Add(30*time.Minute))
		require.NoError(t, err)
		assert.True(t, offer)
	})

	t.Run("ignored file is skipped until it changes", func(t *testing.T) {
		_, offer, err := service.Observe(ctx, "promo_clip.srt", 100, mtime)
		require.NoError(t, err)
		assert.True(t, offer)
		require.NoError(t, service.MarkIgnored(ctx, "promo_clip.srt"))

		_, offer, err = service.Observe(ctx, "promo_clip.srt", 100, mtime)
		require.NoError(t, err)
		assert.False(t, offer)

		_, offer, err = service.Observe(ctx, "promo_clip.srt", 200, mtime.Add(time.Minute))
		require.NoError(t, err)
		assert.True(t, offer)
	})
}

func TestIngestService_ListNew(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewIngestService(client)
	ctx := context.Background()

	now := time.Now().UTC()
	_, _, err := service.Observe(ctx, "a.srt", 1, now)
	require.NoError(t, err)
	_, _, err = service.Observe(ctx, "b.srt", 1, now)
	require.NoError(t, err)
	require.NoError(t, service.MarkQueued(ctx, "a.srt", 1))

	records, err := service.ListNew(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "b.srt", records[0].RemoteName)
}

func TestIngestService_MarkMissingRecord(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewIngestService(client)
	ctx := context.Background()

	assert.ErrorIs(t, service.MarkQueued(ctx, "ghost.srt", 1), ErrNotFound)
	assert.ErrorIs(t, service.MarkIgnored(ctx, "ghost.srt"), ErrNotFound)
	assert.ErrorIs(t, service.MarkSuperseded(ctx, "ghost.srt"), ErrNotFound)
}
