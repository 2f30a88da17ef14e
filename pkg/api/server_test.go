package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardigan-project/cardigan/ent"
	"github.com/cardigan-project/cardigan/pkg/api"
	"github.com/cardigan-project/cardigan/pkg/artifacts"
	"github.com/cardigan-project/cardigan/pkg/config"
	"github.com/cardigan-project/cardigan/pkg/events"
	"github.com/cardigan-project/cardigan/pkg/models"
	"github.com/cardigan-project/cardigan/pkg/services"
	testdb "github.com/cardigan-project/cardigan/test/database"
)

type serverEnv struct {
	client *ent.Client
	jobs   *services.JobService
	store  *artifacts.Store
	router *gin.Engine
}

func newServerEnv(t *testing.T) *serverEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client, config.DefaultDefaults())
	evsvc := services.NewEventService(client)

	cfg := builtinTestConfig()
	holder := config.NewHolder(cfg.Snapshot())
	configSvc := services.NewConfigService(client, cfg, holder)

	store, err := artifacts.NewStore(t.TempDir())
	require.NoError(t, err)

	bus := events.NewBus(nil)
	publisher := events.NewPublisher(evsvc, bus, nil)
	hub := events.NewHub(bus, evsvc, 0, nil)

	server := api.NewServer(jobs, evsvc, configSvc, nil, hub, publisher, store, nil, nil)

	return &serverEnv{
		client: client,
		jobs:   jobs,
		store:  store,
		router: server.Router(),
	}
}

func builtinTestConfig() *config.Config {
	builtin := config.GetBuiltinConfig()
	agents := make(map[string]*config.AgentConfig, len(builtin.Agents))
	for name := range builtin.Agents {
		a := builtin.Agents[name]
		agents[name] = &a
	}
	providers := make(map[string]*config.LLMProviderConfig, len(builtin.LLMProviders))
	for name := range builtin.LLMProviders {
		p := builtin.LLMProviders[name]
		providers[name] = &p
	}
	return &config.Config{
		Defaults:            config.DefaultDefaults(),
		Queue:               config.DefaultQueueConfig(),
		Routing:             config.DefaultRoutingConfig(),
		Safety:              config.DefaultSafetyConfig(),
		AgentRegistry:       config.NewAgentRegistry(agents),
		LLMProviderRegistry: config.NewLLMProviderRegistry(providers),
	}
}

// do performs one request against the router and returns the recorder.
func (env *serverEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals the recorded body into out.
func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// writeTranscript creates a transcript file for job submission.
func writeTranscript(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("1\n00:00:01,000 --> 00:00:02,000\nHello.\n"), 0o644))
	return path
}

// submitJob creates a job through the API and returns its id.
func (env *serverEnv) submitJob(t *testing.T, name string) int {
	t.Helper()

	rec := env.do(t, http.MethodPost, "/api/v1/queue", models.CreateJobRequest{
		TranscriptFile: writeTranscript(t, name),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created ent.Job
	decode(t, rec, &created)
	return created.ID
}

func TestHealthEndpoint(t *testing.T) {
	env := newServerEnv(t)
	env.submitJob(t, "EP100_health.srt")

	rec := env.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var health api.HealthResponse
	decode(t, rec, &health)
	assert.Equal(t, "healthy", health.Status)
	assert.NotEmpty(t, health.Version)
	assert.NotEmpty(t, health.ActiveTiers)
	require.NotNil(t, health.Stats)
	assert.Equal(t, 1, health.Stats.StatusCounts["pending"])
}

func TestMetricsEndpoint(t *testing.T) {
	env := newServerEnv(t)
	env.submitJob(t, "EP100_metrics.srt")

	// A request first, so the counter has something to report.
	env.do(t, http.MethodGet, "/health", nil)

	rec := env.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "cardigan_http_requests_total")
	assert.Contains(t, body, "cardigan_queue_depth 1")
	assert.Contains(t, body, "cardigan_jobs_processed_total")
}

func TestSecurityHeaders(t *testing.T) {
	env := newServerEnv(t)

	rec := env.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func markJobCompleted(t *testing.T, env *serverEnv, id int) {
	t.Helper()
	ctx := context.Background()

	claimed, err := env.jobs.ClaimNextPendingJob(ctx, "test-worker")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	require.Equal(t, id, claimed.ID)

	_, err = env.jobs.MarkCompleted(ctx, id, 0.5)
	require.NoError(t, err)
}
