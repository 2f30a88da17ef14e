package slack_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardigan-project/cardigan/pkg/config"
	"github.com/cardigan-project/cardigan/pkg/events"
	"github.com/cardigan-project/cardigan/pkg/models"
	"github.com/cardigan-project/cardigan/pkg/services"
	"github.com/cardigan-project/cardigan/pkg/slack"
	testdb "github.com/cardigan-project/cardigan/test/database"
)

// postedMessage captures one chat.postMessage call.
type postedMessage struct {
	Blocks   string
	ThreadTS string
}

// mockSlackAPI records chat.postMessage calls and answers with increasing
// timestamps.
type mockSlackAPI struct {
	mu     sync.Mutex
	posts  []postedMessage
	nextTS int
	srv    *httptest.Server
}

func newMockSlackAPI(t *testing.T) *mockSlackAPI {
	t.Helper()
	m := &mockSlackAPI{nextTS: 1}

	mux := http.NewServeMux()
	mux.HandleFunc("/chat.postMessage", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())

		m.mu.Lock()
		m.posts = append(m.posts, postedMessage{
			Blocks:   r.Form.Get("blocks"),
			ThreadTS: r.Form.Get("thread_ts"),
		})
		ts := m.nextTS
		m.nextTS++
		m.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fmt.Sprintf(`{"ok":true,"channel":"C1","ts":"1700000000.%06d"}`, ts)))
	})

	m.srv = httptest.NewServer(mux)
	t.Cleanup(m.srv.Close)
	return m
}

func (m *mockSlackAPI) service() *slack.Service {
	client := slack.NewClientWithAPIURL("xoxb-test", "C1", m.srv.URL+"/")
	return slack.NewServiceWithClient(client, "http://dash.local")
}

func (m *mockSlackAPI) recorded() []postedMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]postedMessage, len(m.posts))
	copy(out, m.posts)
	return out
}

func TestServiceThreadsTerminalUnderStart(t *testing.T) {
	mock := newMockSlackAPI(t)
	svc := mock.service()
	ctx := context.Background()

	svc.NotifyJobStarted(ctx, 42, "EP101_morning")
	svc.NotifyJobFinished(ctx, slack.JobFinishedInput{
		JobID:       42,
		ProjectName: "EP101_morning",
		Status:      "completed",
		TotalCost:   1.25,
	})

	posts := mock.recorded()
	require.Len(t, posts, 2)
	assert.Empty(t, posts[0].ThreadTS)
	assert.NotEmpty(t, posts[1].ThreadTS)
	assert.Contains(t, posts[1].Blocks, "Pipeline Complete")
}

func TestServiceFinishWithoutStart(t *testing.T) {
	mock := newMockSlackAPI(t)
	svc := mock.service()

	svc.NotifyJobFinished(context.Background(), slack.JobFinishedInput{
		JobID:       7,
		ProjectName: "EP102_show",
		Status:      "failed",
		FailedPhase: "seo",
	})

	posts := mock.recorded()
	require.Len(t, posts, 1)
	assert.Empty(t, posts[0].ThreadTS)
	assert.Contains(t, posts[0].Blocks, "Pipeline Failed")
}

func TestNilServiceIsNoOp(t *testing.T) {
	var svc *slack.Service
	svc.NotifyJobStarted(context.Background(), 1, "x")
	svc.NotifyJobFinished(context.Background(), slack.JobFinishedInput{JobID: 1})

	assert.Nil(t, slack.NewService(slack.ServiceConfig{}))
}

func TestNotifierDeliversFromBus(t *testing.T) {
	mock := newMockSlackAPI(t)
	svc := mock.service()

	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client, config.DefaultDefaults())
	evsvc := services.NewEventService(client)
	bus := events.NewBus(nil)
	publisher := events.NewPublisher(evsvc, bus, nil)

	path := filepath.Join(t.TempDir(), "EP110_show.srt")
	require.NoError(t, os.WriteFile(path, []byte("1\n00:00:01,000 --> 00:00:02,000\nHello.\n"), 0o644))
	created, err := jobs.CreateJob(context.Background(), models.CreateJobRequest{TranscriptFile: path})
	require.NoError(t, err)

	notifier := slack.NewNotifier(svc, bus, jobs, nil)
	notifier.Start()
	defer notifier.Stop()

	publisher.JobStarted(context.Background(), created.ID, "worker-1")
	publisher.JobCompleted(context.Background(), created.ID, 0.75, 12.5)

	require.Eventually(t, func() bool {
		return len(mock.recorded()) == 2
	}, 3*time.Second, 20*time.Millisecond)

	posts := mock.recorded()
	assert.Contains(t, posts[0].Blocks, "EP110_show")
	assert.Contains(t, posts[1].Blocks, "Pipeline Complete")
	assert.NotEmpty(t, posts[1].ThreadTS)
}

func TestNotifierWithNilServiceIsNoOp(t *testing.T) {
	bus := events.NewBus(nil)
	notifier := slack.NewNotifier(nil, bus, nil, nil)
	notifier.Start()
	notifier.Stop()
}
