package ingest_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardigan-project/cardigan/ent"
	"github.com/cardigan-project/cardigan/ent/ingestrecord"
	"github.com/cardigan-project/cardigan/ent/job"
	"github.com/cardigan-project/cardigan/pkg/config"
	"github.com/cardigan-project/cardigan/pkg/events"
	"github.com/cardigan-project/cardigan/pkg/ingest"
	"github.com/cardigan-project/cardigan/pkg/services"
	testdb "github.com/cardigan-project/cardigan/test/database"
)

type watcherEnv struct {
	client   *ent.Client
	jobs     *services.JobService
	ledger   *services.IngestService
	inputDir string
	watcher  *ingest.Watcher
}

func newWatcherEnv(t *testing.T) *watcherEnv {
	t.Helper()

	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client, config.DefaultDefaults())
	ledger := services.NewIngestService(client)
	publisher := events.NewPublisher(services.NewEventService(client), events.NewBus(nil), nil)

	inputDir := t.TempDir()
	cfg := &config.IngestConfig{
		Enabled:        true,
		InputDir:       inputDir,
		RescanInterval: 50 * time.Millisecond,
		Extensions:     []string{".srt", ".vtt"},
	}

	return &watcherEnv{
		client:   client,
		jobs:     jobs,
		ledger:   ledger,
		inputDir: inputDir,
		watcher:  ingest.NewWatcher(cfg, jobs, ledger, publisher, nil),
	}
}

func (env *watcherEnv) writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(env.inputDir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (env *watcherEnv) jobCount(t *testing.T) int {
	t.Helper()
	n, err := env.client.Job.Query().Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestWatcher_SubmitsExistingFileOnStart(t *testing.T) {
	env := newWatcherEnv(t)
	path := env.writeFile(t, "EP101_morning.srt", "1\n00:00:01,000 --> 00:00:02,000\nHello.\n")

	require.NoError(t, env.watcher.Start())
	defer env.watcher.Stop()

	require.Eventually(t, func() bool {
		return env.jobCount(t) == 1
	}, 3*time.Second, 20*time.Millisecond)

	created, err := env.client.Job.Query().Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, path, created.TranscriptFile)
	assert.Equal(t, job.StatusPending, created.Status)

	record, err := env.client.IngestRecord.Query().
		Where(ingestrecord.RemoteNameEQ("EP101_morning.srt")).
		Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ingestrecord.StatusQueued, record.Status)
	require.NotNil(t, record.JobID)
	assert.Equal(t, created.ID, *record.JobID)
}

func TestWatcher_PicksUpNewFile(t *testing.T) {
	env := newWatcherEnv(t)

	require.NoError(t, env.watcher.Start())
	defer env.watcher.Stop()

	env.writeFile(t, "EP102_evening.srt", "1\n00:00:01,000 --> 00:00:02,000\nHi.\n")

	require.Eventually(t, func() bool {
		return env.jobCount(t) == 1
	}, 3*time.Second, 20*time.Millisecond)
}

func TestWatcher_SkipsUnknownExtensions(t *testing.T) {
	env := newWatcherEnv(t)
	env.writeFile(t, "notes.md", "not a transcript")
	env.writeFile(t, "EP103_show.srt", "1\n00:00:01,000 --> 00:00:02,000\nHi.\n")

	require.NoError(t, env.watcher.Start())
	defer env.watcher.Stop()

	require.Eventually(t, func() bool {
		return env.jobCount(t) == 1
	}, 3*time.Second, 20*time.Millisecond)

	// The markdown file never entered the ledger.
	n, err := env.client.IngestRecord.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestWatcher_DoesNotResubmitUnchangedFile(t *testing.T) {
	env := newWatcherEnv(t)
	env.writeFile(t, "EP104_show.srt", "1\n00:00:01,000 --> 00:00:02,000\nHi.\n")

	require.NoError(t, env.watcher.Start())
	defer env.watcher.Stop()

	require.Eventually(t, func() bool {
		return env.jobCount(t) == 1
	}, 3*time.Second, 20*time.Millisecond)

	// Several rescan intervals pass; the unchanged file stays submitted once.
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, 1, env.jobCount(t))
}

func TestWatcher_ChangedFileWithActiveJobIsIgnored(t *testing.T) {
	env := newWatcherEnv(t)
	path := env.writeFile(t, "EP105_show.srt", "1\n00:00:01,000 --> 00:00:02,000\nHi.\n")

	require.NoError(t, env.watcher.Start())
	defer env.watcher.Stop()

	require.Eventually(t, func() bool {
		return env.jobCount(t) == 1
	}, 3*time.Second, 20*time.Millisecond)

	// The file grows while its job is still pending. The resubmission hits
	// the duplicate guard and the ledger parks the file as ignored.
	require.NoError(t, os.WriteFile(path, []byte("1\n00:00:01,000 --> 00:00:02,000\nHi there, much longer now.\n"), 0o644))

	require.Eventually(t, func() bool {
		record, err := env.client.IngestRecord.Query().
			Where(ingestrecord.RemoteNameEQ("EP105_show.srt")).
			Only(context.Background())
		return err == nil && record.Status == ingestrecord.StatusIgnored
	}, 3*time.Second, 20*time.Millisecond)

	assert.Equal(t, 1, env.jobCount(t))
}

func TestWatcher_DisabledIsNoOp(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client, config.DefaultDefaults())
	ledger := services.NewIngestService(client)
	publisher := events.NewPublisher(services.NewEventService(client), events.NewBus(nil), nil)

	watcher := ingest.NewWatcher(&config.IngestConfig{Enabled: false}, jobs, ledger, publisher, nil)
	require.NoError(t, watcher.Start())
	watcher.Stop()
}
