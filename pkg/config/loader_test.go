package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigDir(t *testing.T, cardiganYAML string, providersYAML string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cardigan.yaml"), []byte(cardiganYAML), 0o644))
	if providersYAML != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "llm-providers.yaml"), []byte(providersYAML), 0o644))
	}
	return dir
}

func TestInitialize_MinimalConfig(t *testing.T) {
	dir := writeConfigDir(t, "{}\n", "")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// Built-in defaults fill everything.
	assert.Equal(t, 3, cfg.Queue.MaxConcurrentJobs)
	assert.Equal(t, 3, cfg.Defaults.MaxRetries)
	assert.Equal(t, []string{"analyst", "formatter", "seo", "manager"}, cfg.Defaults.Phases)
	assert.Len(t, cfg.Routing.Tiers, 3)
	assert.Equal(t, 2, cfg.Routing.PinnedPhases["manager"])
	assert.True(t, cfg.AgentRegistry.Has("analyst"))
	assert.True(t, cfg.AgentRegistry.Has("manager"))
	assert.True(t, cfg.LLMProviderRegistry.Has("openai-default"))
}

func TestInitialize_UserOverrides(t *testing.T) {
	cardiganYAML := `
queue:
  max_concurrent_jobs: 5
  heartbeat_interval: 5s
  stale_threshold: 15s
safety:
  run_cost_cap: 0.10
agents:
  analyst:
    description: "Custom analyst"
    system_prompt: "Custom prompt"
system:
  server:
    listen_addr: ":9090"
  ingest:
    enabled: true
    input_dir: /tmp/queue
    rescan_interval: 10s
`
	providersYAML := `
llm_providers:
  local-ollama:
    type: openai
    model: llama3
    base_url: http://localhost:11434/v1
`
	dir := writeConfigDir(t, cardiganYAML, providersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Queue.MaxConcurrentJobs)
	assert.Equal(t, 5*time.Second, cfg.Queue.HeartbeatInterval)
	// Unset queue fields keep their defaults.
	assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)
	assert.InDelta(t, 0.10, cfg.Safety.RunCostCap, 1e-9)

	agent, err := cfg.GetAgent("analyst")
	require.NoError(t, err)
	assert.Equal(t, "Custom prompt", agent.SystemPrompt)

	assert.Equal(t, ":9090", cfg.Server.ListenAddr)
	assert.True(t, cfg.Ingest.Enabled)
	assert.Equal(t, "/tmp/queue", cfg.Ingest.InputDir)

	// User providers merge alongside built-ins.
	assert.True(t, cfg.LLMProviderRegistry.Has("local-ollama"))
	assert.True(t, cfg.LLMProviderRegistry.Has("openai-mini"))
}

func TestInitialize_PromptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "analyst.md"), []byte("prompt from file"), 0o644))
	cardiganYAML := `
agents:
  analyst:
    system_prompt_file: analyst.md
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cardigan.yaml"), []byte(cardiganYAML), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	agent, err := cfg.GetAgent("analyst")
	require.NoError(t, err)
	assert.Equal(t, "prompt from file", agent.SystemPrompt)
}

func TestInitialize_MissingConfigFile(t *testing.T) {
	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeConfigDir(t, "queue: [not a map", "")
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	os.Setenv("CARDIGAN_TEST_DIR", "/data/incoming")
	t.Cleanup(func() { os.Unsetenv("CARDIGAN_TEST_DIR") })

	cardiganYAML := `
system:
  ingest:
    enabled: true
    input_dir: "{{.CARDIGAN_TEST_DIR}}"
`
	dir := writeConfigDir(t, cardiganYAML, "")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "/data/incoming", cfg.Ingest.InputDir)
}

func TestConfig_Snapshot_IsIsolated(t *testing.T) {
	dir := writeConfigDir(t, "{}\n", "")
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	snap := cfg.Snapshot()

	// Mutating the live config must not affect the snapshot.
	cfg.Routing.PhaseBaseTiers["analyst"] = 2
	cfg.Safety.RunCostCap = 99

	assert.Equal(t, 0, snap.Routing.PhaseBaseTiers["analyst"])
	assert.InDelta(t, 5.0, snap.Safety.RunCostCap, 1e-9)
}
