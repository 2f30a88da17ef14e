// Package e2e wires the full stack the way cmd/cardigan does, with the LLM
// provider replaced by a canned OpenAI-compatible server, and drives it
// through the HTTP API.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/cardigan-project/cardigan/pkg/api"
	"github.com/cardigan-project/cardigan/pkg/artifacts"
	"github.com/cardigan-project/cardigan/pkg/config"
	"github.com/cardigan-project/cardigan/pkg/events"
	"github.com/cardigan-project/cardigan/pkg/llm"
	_ "github.com/cardigan-project/cardigan/pkg/llm/providers"
	"github.com/cardigan-project/cardigan/pkg/queue"
	"github.com/cardigan-project/cardigan/pkg/services"
	"github.com/cardigan-project/cardigan/pkg/sst"
	testdb "github.com/cardigan-project/cardigan/test/database"
)

const captionFixture = `1
00:00:01,000 --> 00:00:04,000
Good evening and welcome to the broadcast.

2
00:00:04,500 --> 00:00:08,000
Tonight we cover the storm and the harbor cleanup.
`

// llmHandler decides the completion for one request. Returning an empty
// string makes the mock answer with a 500.
type llmHandler func(model string) string

// mockLLM is an OpenAI-compatible chat completions endpoint.
type mockLLM struct {
	srv     *httptest.Server
	handler llmHandler
}

func newMockLLM(t *testing.T, handler llmHandler) *mockLLM {
	t.Helper()
	m := &mockLLM{handler: handler}

	m.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model string `json:"model"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		content := m.handler(req.Model)
		if content == "" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		payload := map[string]interface{}{
			"id":    "chatcmpl-e2e",
			"model": req.Model,
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"message":       map[string]string{"role": "assistant", "content": content},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]int{"prompt_tokens": 600, "completion_tokens": 150, "total_tokens": 750},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(payload))
	}))
	t.Cleanup(m.srv.Close)
	return m
}

// stack is the running system under test: every component a production
// deployment has except the ingest watcher, which the API submission path
// replaces here.
type stack struct {
	jobs   *services.JobService
	store  *artifacts.Store
	pool   *queue.WorkerPool
	server *httptest.Server
}

func newStack(t *testing.T, llmServer *mockLLM) *stack {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client, config.DefaultDefaults())
	evsvc := services.NewEventService(client)

	cfg := stackConfig(llmServer.srv.URL)
	holder := config.NewHolder(cfg.Snapshot())
	configSvc := services.NewConfigService(client, cfg, holder)

	store, err := artifacts.NewStore(t.TempDir())
	require.NoError(t, err)

	bus := events.NewBus(nil)
	publisher := events.NewPublisher(evsvc, bus, nil)
	hub := events.NewHub(bus, evsvc, 2*time.Second, nil)

	llmClient := llm.NewClient(cfg.LLMProviderRegistry, holder, llm.WithEventRecorder(publisher))
	metadata := sst.NewService(&config.SSTConfig{Enabled: false}, nil)
	engine := queue.NewEngine(jobs, llmClient, cfg.LLMProviderRegistry, cfg.AgentRegistry, store, publisher, metadata, nil)

	pool := queue.NewWorkerPool(jobs, engine, holder, publisher, nil)
	pool.Start(context.Background())
	t.Cleanup(pool.Stop)

	apiServer := api.NewServer(jobs, evsvc, configSvc, pool, hub, publisher, store, nil, nil)
	srv := httptest.NewServer(apiServer.Router())
	t.Cleanup(srv.Close)

	return &stack{jobs: jobs, store: store, pool: pool, server: srv}
}

// stackConfig builds a config with one LLM tier pointed at the mock server
// and a fast-polling queue so tests finish quickly.
func stackConfig(llmURL string) *config.Config {
	builtin := config.GetBuiltinConfig()
	agents := make(map[string]*config.AgentConfig, len(builtin.Agents))
	for name := range builtin.Agents {
		a := builtin.Agents[name]
		agents[name] = &a
	}

	queueCfg := config.DefaultQueueConfig()
	queueCfg.MaxConcurrentJobs = 2
	queueCfg.PollInterval = 20 * time.Millisecond
	queueCfg.PollIntervalJitter = 0
	queueCfg.GracefulShutdownTimeout = 2 * time.Second

	routing := &config.RoutingConfig{
		Tiers:              []config.TierConfig{{Label: "only", Provider: "primary"}},
		PhaseBaseTiers:     map[string]int{"analyst": 0, "formatter": 0, "seo": 0},
		PinnedPhases:       map[string]int{"manager": 0},
		DurationThresholds: []config.DurationThreshold{{MaxMinutes: 0, TierIndex: 0}},
		Escalation: config.EscalationConfig{
			Enabled: true, OnFailure: true, OnTimeout: true,
			TimeoutSeconds: 30, MaxRetriesPerTier: 0,
		},
	}

	providers := config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
		"primary": {
			Type:            config.LLMProviderTypeOpenAI,
			Model:           "primary-model",
			BaseURL:         llmURL,
			InputCostPer1K:  0.001,
			OutputCostPer1K: 0.002,
		},
	})

	return &config.Config{
		Defaults:            config.DefaultDefaults(),
		Queue:               queueCfg,
		Routing:             routing,
		Safety:              config.DefaultSafetyConfig(),
		AgentRegistry:       config.NewAgentRegistry(agents),
		LLMProviderRegistry: providers,
	}
}

// do performs one request against the running API server.
func (s *stack) do(t *testing.T, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, buf.Bytes()
}

// submitJob posts a fresh transcript to the queue and returns the job id.
func (s *stack) submitJob(t *testing.T, name string) int {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(captionFixture), 0o644))

	resp, body := s.do(t, http.MethodPost, "/api/v1/queue", map[string]string{
		"transcript_file": path,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var created struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotZero(t, created.ID)
	return created.ID
}

// jobStatus reads the job's current status through the API.
func (s *stack) jobStatus(t *testing.T, id int) string {
	t.Helper()

	resp, body := s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/jobs/%d", id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var detail struct {
		Job struct {
			Status string `json:"status"`
		} `json:"job"`
	}
	require.NoError(t, json.Unmarshal(body, &detail))
	return detail.Job.Status
}

// waitForStatus polls the API until the job reaches the wanted status.
func (s *stack) waitForStatus(t *testing.T, id int, want string) {
	t.Helper()
	require.Eventually(t, func() bool {
		return s.jobStatus(t, id) == want
	}, 15*time.Second, 50*time.Millisecond, "job %d never reached %s", id, want)
}
