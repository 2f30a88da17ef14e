package queue_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardigan-project/cardigan/ent"
	"github.com/cardigan-project/cardigan/ent/job"
	"github.com/cardigan-project/cardigan/ent/jobphase"
	"github.com/cardigan-project/cardigan/pkg/artifacts"
	"github.com/cardigan-project/cardigan/pkg/config"
	"github.com/cardigan-project/cardigan/pkg/events"
	"github.com/cardigan-project/cardigan/pkg/llm"
	_ "github.com/cardigan-project/cardigan/pkg/llm/providers"
	"github.com/cardigan-project/cardigan/pkg/models"
	"github.com/cardigan-project/cardigan/pkg/queue"
	"github.com/cardigan-project/cardigan/pkg/services"
	"github.com/cardigan-project/cardigan/pkg/sst"
	testdb "github.com/cardigan-project/cardigan/test/database"
)

const captionFixture = `1
00:00:01,000 --> 00:00:04,000
Good morning and welcome to the show.

2
00:00:04,500 --> 00:00:08,000
Today we cover the weather and local news.
`

// chatRequest is the slice of the OpenAI request body the test servers
// need: the model decides the canned behavior.
type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func openaiResponse(model, content string) string {
	payload := map[string]interface{}{
		"id":    "chatcmpl-test",
		"model": model,
		"choices": []map[string]interface{}{
			{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
		"usage": map[string]int{"prompt_tokens": 800, "completion_tokens": 200, "total_tokens": 1000},
	}
	data, _ := json.Marshal(payload)
	return string(data)
}

// modelResponder serves canned completions keyed by the requested model.
// A model mapped to "" gets a 500 instead of a completion.
func modelResponder(t *testing.T, responses map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		content, ok := responses[req.Model]
		if !ok || content == "" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, openaiResponse(req.Model, content))
	}))
}

type engineEnv struct {
	client    *ent.Client
	jobs      *services.JobService
	evsvc     *services.EventService
	publisher *events.Publisher
	store     *artifacts.Store
	agents    *config.AgentRegistry
}

func newEngineEnv(t *testing.T) *engineEnv {
	t.Helper()

	client := testdb.NewTestClient(t)
	store, err := artifacts.NewStore(t.TempDir())
	require.NoError(t, err)

	evsvc := services.NewEventService(client)
	bus := events.NewBus(nil)

	return &engineEnv{
		client:    client,
		jobs:      services.NewJobService(client, config.DefaultDefaults()),
		evsvc:     evsvc,
		publisher: events.NewPublisher(evsvc, bus, nil),
		store:     store,
		agents: config.NewAgentRegistry(map[string]*config.AgentConfig{
			"analyst":   {SystemPrompt: "You are the analyst."},
			"formatter": {SystemPrompt: "You are the formatter."},
			"seo":       {SystemPrompt: "You are the seo editor."},
			"manager":   {SystemPrompt: "You are the manager."},
		}),
	}
}

func (env *engineEnv) newEngine(t *testing.T, providers *config.LLMProviderRegistry, snap *config.Snapshot) *queue.Engine {
	t.Helper()

	holder := config.NewHolder(snap)
	client := llm.NewClient(providers, holder, llm.WithEventRecorder(env.publisher))
	metadata := sst.NewService(&config.SSTConfig{Enabled: false}, nil)

	return queue.NewEngine(env.jobs, client, providers, env.agents, env.store, env.publisher, metadata, nil)
}

// claimJob submits a transcript and claims the resulting job.
func (env *engineEnv) claimJob(t *testing.T, phases []string) *ent.Job {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "EP101_morning_show.srt")
	require.NoError(t, os.WriteFile(path, []byte(captionFixture), 0o644))

	_, err := env.jobs.CreateJob(ctx, models.CreateJobRequest{
		TranscriptFile: path,
		Phases:         phases,
	})
	require.NoError(t, err)

	claimed, err := env.jobs.ClaimNextPendingJob(ctx, "worker-test")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	return claimed
}

func singleTierProviders(serverURL string) *config.LLMProviderRegistry {
	return config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
		"primary": {
			Type:            config.LLMProviderTypeOpenAI,
			Model:           "primary-model",
			BaseURL:         serverURL,
			InputCostPer1K:  0.001,
			OutputCostPer1K: 0.002,
		},
	})
}

func twoTierProviders(serverURL string) *config.LLMProviderRegistry {
	return config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
		"flaky": {
			Type:            config.LLMProviderTypeOpenAI,
			Model:           "flaky-model",
			BaseURL:         serverURL,
			InputCostPer1K:  0.001,
			OutputCostPer1K: 0.002,
		},
		"solid": {
			Type:            config.LLMProviderTypeOpenAI,
			Model:           "solid-model",
			BaseURL:         serverURL,
			InputCostPer1K:  0.01,
			OutputCostPer1K: 0.02,
		},
	})
}

func testSnapshot(routingCfg *config.RoutingConfig) *config.Snapshot {
	return &config.Snapshot{
		Routing: routingCfg,
		Safety:  &config.SafetyConfig{RunCostCap: 100, MaxCostPer1KTokens: 10},
		Queue:   config.DefaultQueueConfig(),
	}
}

func singleTierRouting() *config.RoutingConfig {
	return &config.RoutingConfig{
		Tiers:              []config.TierConfig{{Label: "only", Provider: "primary"}},
		PhaseBaseTiers:     map[string]int{"analyst": 0, "formatter": 0, "seo": 0},
		PinnedPhases:       map[string]int{"manager": 0},
		DurationThresholds: []config.DurationThreshold{{MaxMinutes: 0, TierIndex: 0}},
		Escalation: config.EscalationConfig{
			Enabled: true, OnFailure: true, OnTimeout: true,
			TimeoutSeconds: 30, MaxRetriesPerTier: 0,
		},
	}
}

func twoTierRouting(escalation bool) *config.RoutingConfig {
	return &config.RoutingConfig{
		Tiers: []config.TierConfig{
			{Label: "cheap", Provider: "flaky"},
			{Label: "capable", Provider: "solid"},
		},
		PhaseBaseTiers:     map[string]int{"analyst": 0, "formatter": 0, "seo": 0},
		PinnedPhases:       map[string]int{"manager": 1},
		DurationThresholds: []config.DurationThreshold{{MaxMinutes: 0, TierIndex: 0}},
		Escalation: config.EscalationConfig{
			Enabled: escalation, OnFailure: escalation, OnTimeout: escalation,
			TimeoutSeconds: 30, MaxRetriesPerTier: 0,
		},
	}
}

func TestEngine_CompletesPipeline(t *testing.T) {
	env := newEngineEnv(t)
	server := modelResponder(t, map[string]string{
		"primary-model": "phase output text",
	})
	defer server.Close()

	snap := testSnapshot(singleTierRouting())
	engine := env.newEngine(t, singleTierProviders(server.URL), snap)
	claimed := env.claimJob(t, nil)

	result := engine.Execute(context.Background(), claimed, snap)
	require.NotNil(t, result)
	assert.Equal(t, job.StatusCompleted, result.Status)
	assert.Greater(t, result.TotalCost, 0.0)

	phases, err := env.jobs.GetPhases(context.Background(), claimed.ID)
	require.NoError(t, err)
	require.Len(t, phases, 4)
	for _, ph := range phases {
		assert.Equal(t, jobphase.StatusCompleted, ph.Status, "phase %s", ph.Name)
		assert.Equal(t, "primary-model", ph.Model)
		assert.Equal(t, 1, ph.Attempts)
		assert.NotEmpty(t, ph.DeliverablePath)
		assert.FileExists(t, ph.DeliverablePath)
	}

	dir, err := env.store.ProjectDir(claimed.ProjectName)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "manifest.json"))
	assert.FileExists(t, filepath.Join(dir, "processing.log.jsonl"))

	content, err := os.ReadFile(filepath.Join(dir, "analyst_output.md"))
	require.NoError(t, err)
	assert.Equal(t, "phase output text", string(content))
}

func TestEngine_EscalatesOnFailure(t *testing.T) {
	env := newEngineEnv(t)
	server := modelResponder(t, map[string]string{
		"flaky-model": "",
		"solid-model": "output from the capable tier",
	})
	defer server.Close()

	snap := testSnapshot(twoTierRouting(true))
	engine := env.newEngine(t, twoTierProviders(server.URL), snap)
	claimed := env.claimJob(t, []string{"analyst", "manager"})

	result := engine.Execute(context.Background(), claimed, snap)
	require.NotNil(t, result)
	assert.Equal(t, job.StatusCompleted, result.Status)

	phases, err := env.jobs.GetPhases(context.Background(), claimed.ID)
	require.NoError(t, err)
	require.Len(t, phases, 2)

	analyst := phases[0]
	assert.Equal(t, jobphase.StatusCompleted, analyst.Status)
	assert.Equal(t, 1, analyst.TierIndex)
	assert.Equal(t, "capable", analyst.TierLabel)
	assert.Equal(t, "solid-model", analyst.Model)
	assert.Equal(t, 2, analyst.Attempts)
}

func TestEngine_RecoveryFix(t *testing.T) {
	env := newEngineEnv(t)
	analysis := "The cheap tier keeps erroring and escalation is off.\n\n" +
		"ACTION: FIX\n```\nCorrected analyst notes from the manager.\n```"
	server := modelResponder(t, map[string]string{
		"flaky-model": "",
		"solid-model": analysis,
	})
	defer server.Close()

	snap := testSnapshot(twoTierRouting(false))
	engine := env.newEngine(t, twoTierProviders(server.URL), snap)
	claimed := env.claimJob(t, []string{"analyst", "manager"})

	result := engine.Execute(context.Background(), claimed, snap)
	require.NotNil(t, result)
	assert.Equal(t, job.StatusCompleted, result.Status)

	phases, err := env.jobs.GetPhases(context.Background(), claimed.ID)
	require.NoError(t, err)
	analyst := phases[0]
	assert.Equal(t, jobphase.StatusCompleted, analyst.Status)

	dir, err := env.store.ProjectDir(claimed.ProjectName)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "recovery_analysis.md"))

	content, err := os.ReadFile(filepath.Join(dir, "analyst_output.md"))
	require.NoError(t, err)
	assert.Equal(t, "Corrected analyst notes from the manager.", string(content))

	refreshed, err := env.jobs.GetJob(context.Background(), claimed.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed.RecoveryAttempts)
}

func TestEngine_RecoveryFail(t *testing.T) {
	env := newEngineEnv(t)
	server := modelResponder(t, map[string]string{
		"flaky-model": "",
		"solid-model": "Nothing can save this transcript.\n\nACTION: FAIL",
	})
	defer server.Close()

	snap := testSnapshot(twoTierRouting(false))
	engine := env.newEngine(t, twoTierProviders(server.URL), snap)
	claimed := env.claimJob(t, []string{"analyst", "manager"})

	result := engine.Execute(context.Background(), claimed, snap)
	require.NotNil(t, result)
	assert.Equal(t, job.StatusFailed, result.Status)
	assert.Equal(t, "analyst", result.FailedPhase)
	assert.NotEmpty(t, result.ErrorMessage)

	// The worker owns the investigating -> failed transition.
	refreshed, err := env.jobs.GetJob(context.Background(), claimed.ID, false)
	require.NoError(t, err)
	assert.Equal(t, job.StatusInvestigating, refreshed.Status)
}

func TestEngine_RecoveryBudgetExhausted(t *testing.T) {
	env := newEngineEnv(t)
	server := modelResponder(t, map[string]string{
		"flaky-model": "",
		"solid-model": "ACTION: RETRY",
	})
	defer server.Close()

	snap := testSnapshot(twoTierRouting(false))
	snap.Queue = config.DefaultQueueConfig()
	snap.Queue.RecoveryBudget = 0

	engine := env.newEngine(t, twoTierProviders(server.URL), snap)
	claimed := env.claimJob(t, []string{"analyst", "manager"})

	result := engine.Execute(context.Background(), claimed, snap)
	require.NotNil(t, result)
	assert.Equal(t, job.StatusFailed, result.Status)

	// With a zero budget the manager is never consulted.
	dir, err := env.store.ProjectDir(claimed.ProjectName)
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "recovery_analysis.md"))
}

func TestEngine_CancelledBeforeStart(t *testing.T) {
	env := newEngineEnv(t)
	server := modelResponder(t, map[string]string{"primary-model": "output"})
	defer server.Close()

	snap := testSnapshot(singleTierRouting())
	engine := env.newEngine(t, singleTierProviders(server.URL), snap)
	claimed := env.claimJob(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := engine.Execute(ctx, claimed, snap)
	require.NotNil(t, result)
	assert.Equal(t, job.StatusCancelled, result.Status)

	// The partial manifest marks which phases never ran.
	dir, err := env.store.ProjectDir(claimed.ProjectName)
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	require.NoError(t, err)

	var manifest artifacts.Manifest
	require.NoError(t, json.Unmarshal(data, &manifest))
	assert.Equal(t, "cancelled", manifest.Status)
	require.Len(t, manifest.Phases, 4)
	assert.Equal(t, "pending", manifest.Phases[0].Status)
}

func TestEngine_PauseBetweenPhases(t *testing.T) {
	env := newEngineEnv(t)
	server := modelResponder(t, map[string]string{"primary-model": "output"})
	defer server.Close()

	snap := testSnapshot(singleTierRouting())
	engine := env.newEngine(t, singleTierProviders(server.URL), snap)
	claimed := env.claimJob(t, nil)

	_, err := env.jobs.Pause(context.Background(), claimed.ID)
	require.NoError(t, err)

	result := engine.Execute(context.Background(), claimed, snap)
	require.NotNil(t, result)
	assert.Equal(t, job.StatusPaused, result.Status)

	// Nothing ran; the executor released the job untouched.
	phases, err := env.jobs.GetPhases(context.Background(), claimed.ID)
	require.NoError(t, err)
	for _, ph := range phases {
		assert.Equal(t, jobphase.StatusPending, ph.Status)
	}
}

func TestEngine_MissingTranscriptFails(t *testing.T) {
	env := newEngineEnv(t)
	server := modelResponder(t, map[string]string{"primary-model": "output"})
	defer server.Close()

	snap := testSnapshot(singleTierRouting())
	engine := env.newEngine(t, singleTierProviders(server.URL), snap)

	ctx := context.Background()
	_, err := env.jobs.CreateJob(ctx, models.CreateJobRequest{
		TranscriptFile: filepath.Join(t.TempDir(), "missing.srt"),
	})
	require.NoError(t, err)
	claimed, err := env.jobs.ClaimNextPendingJob(ctx, "worker-test")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	result := engine.Execute(ctx, claimed, snap)
	require.NotNil(t, result)
	assert.Equal(t, job.StatusFailed, result.Status)
	assert.Contains(t, result.ErrorMessage, "read transcript")
}

// A job requeued after a worker death resumes with the spend its earlier
// run already banked; the cost cap covers the job's lifetime, not one run.
func TestEngine_RequeueKeepsSpendAgainstCap(t *testing.T) {
	env := newEngineEnv(t)

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		fmt.Fprint(w, openaiResponse(req.Model, "second run output"))
	}))
	defer server.Close()

	snap := testSnapshot(singleTierRouting())
	snap.Safety = &config.SafetyConfig{RunCostCap: 0.002, MaxCostPer1KTokens: 10}
	snap.Queue = config.DefaultQueueConfig()
	snap.Queue.RecoveryBudget = 0

	engine := env.newEngine(t, singleTierProviders(server.URL), snap)
	claimed := env.claimJob(t, []string{"analyst", "formatter"})

	ctx := context.Background()

	// An earlier run completed the analyst and spent past the cap before
	// its worker died and the job was requeued.
	_, err := env.store.WritePhaseOutput(claimed.ProjectName, "analyst", "notes from the first run")
	require.NoError(t, err)
	done := time.Now().UTC()
	_, err = env.jobs.UpdatePhase(ctx, claimed.ID, 0, models.PhasePatch{
		Status:      strPtr(string(jobphase.StatusCompleted)),
		Cost:        floatPtr(0.0025),
		CompletedAt: &done,
	})
	require.NoError(t, err)

	result := engine.Execute(ctx, claimed, snap)
	require.NotNil(t, result)
	assert.Equal(t, job.StatusFailed, result.Status)
	assert.Equal(t, "formatter", result.FailedPhase)
	assert.Contains(t, result.ErrorMessage, "cost_cap_exceeded")
	assert.Equal(t, 0.0025, result.TotalCost)

	// No call went out; the banked spend alone exhausted the budget.
	assert.Equal(t, int32(0), calls.Load())
}

// An oversized input escalates one tier for a bigger window; when the
// bigger window overflows too, the phase fails instead of climbing on.
func TestEngine_ContextOverflowEscalatesOnce(t *testing.T) {
	env := newEngineEnv(t)

	var mu sync.Mutex
	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		mu.Lock()
		seen = append(seen, req.Model)
		mu.Unlock()

		if req.Model == "large-model" {
			fmt.Fprint(w, openaiResponse(req.Model, "fits at last"))
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error": {"code": "context_length_exceeded", "message": "too long"}}`)
	}))
	defer server.Close()

	providers := config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
		"small":  {Type: config.LLMProviderTypeOpenAI, Model: "small-model", BaseURL: server.URL},
		"medium": {Type: config.LLMProviderTypeOpenAI, Model: "medium-model", BaseURL: server.URL},
		"large":  {Type: config.LLMProviderTypeOpenAI, Model: "large-model", BaseURL: server.URL},
	})

	routingCfg := &config.RoutingConfig{
		Tiers: []config.TierConfig{
			{Label: "small", Provider: "small"},
			{Label: "medium", Provider: "medium"},
			{Label: "large", Provider: "large"},
		},
		PhaseBaseTiers:     map[string]int{"analyst": 0},
		PinnedPhases:       map[string]int{"manager": 2},
		DurationThresholds: []config.DurationThreshold{{MaxMinutes: 0, TierIndex: 0}},
		Escalation: config.EscalationConfig{
			Enabled: true, OnFailure: true, OnTimeout: true,
			TimeoutSeconds: 30, MaxRetriesPerTier: 0,
		},
	}

	snap := testSnapshot(routingCfg)
	snap.Queue = config.DefaultQueueConfig()
	snap.Queue.RecoveryBudget = 0

	engine := env.newEngine(t, providers, snap)
	claimed := env.claimJob(t, []string{"analyst"})

	result := engine.Execute(context.Background(), claimed, snap)
	require.NotNil(t, result)
	assert.Equal(t, job.StatusFailed, result.Status)
	assert.Equal(t, "analyst", result.FailedPhase)

	// One escalation to the medium window, then the phase gave up; the
	// top tier was never tried.
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"small-model", "medium-model"}, seen)
}

// A timed-out call escalates with the timeout reason when the policy
// enables it.
func TestEngine_TimeoutEscalates(t *testing.T) {
	env := newEngineEnv(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Model == "flaky-model" {
			time.Sleep(300 * time.Millisecond)
		}
		fmt.Fprint(w, openaiResponse(req.Model, "tier output"))
	}))
	defer server.Close()

	routingCfg := twoTierRouting(true)
	routingCfg.Escalation.TimeoutSeconds = 0 // fall through to provider timeouts below

	providers := config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
		"flaky": {
			Type:    config.LLMProviderTypeOpenAI,
			Model:   "flaky-model",
			BaseURL: server.URL,
			Timeout: 50 * time.Millisecond,
		},
		"solid": {
			Type:    config.LLMProviderTypeOpenAI,
			Model:   "solid-model",
			BaseURL: server.URL,
			Timeout: 5 * time.Second,
		},
	})

	snap := testSnapshot(routingCfg)
	engine := env.newEngine(t, providers, snap)
	claimed := env.claimJob(t, []string{"analyst"})

	result := engine.Execute(context.Background(), claimed, snap)
	require.NotNil(t, result)
	assert.Equal(t, job.StatusCompleted, result.Status)

	phases, err := env.jobs.GetPhases(context.Background(), claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, "solid-model", phases[0].Model)
	assert.Equal(t, 1, phases[0].TierIndex)
}

func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }
