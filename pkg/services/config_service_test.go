package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardigan-project/cardigan/pkg/config"
	"github.com/cardigan-project/cardigan/pkg/models"
	testdb "github.com/cardigan-project/cardigan/test/database"
)

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

func newConfigService(t *testing.T) (*ConfigService, *config.Config, *config.Holder) {
	t.Helper()
	client := testdb.NewTestClient(t)

	cfg := builtinTestConfig()
	holder := config.NewHolder(cfg.Snapshot())

	return NewConfigService(client, cfg, holder), cfg, holder
}

func TestConfigService_Update(t *testing.T) {
	service, _, holder := newConfigService(t)
	ctx := context.Background()

	safety := config.DefaultSafetyConfig()
	safety.RunCostCap = 9.5

	resp, err := service.Update(ctx, models.ConfigUpdate{Safety: safety})
	require.NoError(t, err)
	assert.Equal(t, 9.5, resp.Safety.RunCostCap)

	// The holder now serves the new policy to future claims.
	assert.Equal(t, 9.5, holder.Load().Safety.RunCostCap)
}

func TestConfigService_UpdateRejectsInvalid(t *testing.T) {
	service, _, holder := newConfigService(t)
	ctx := context.Background()

	before := holder.Load().Safety.RunCostCap

	bad := config.DefaultSafetyConfig()
	bad.RunCostCap = -1

	_, err := service.Update(ctx, models.ConfigUpdate{Safety: bad})
	require.Error(t, err)

	// Nothing changed.
	assert.Equal(t, before, holder.Load().Safety.RunCostCap)

	_, err = service.Update(ctx, models.ConfigUpdate{})
	assert.True(t, IsValidationError(err))
}

// Concurrent section updates serialize: every write lands whole, and the
// service, store, and holder agree on the survivor.
func TestConfigService_ConcurrentUpdates(t *testing.T) {
	service, cfg, holder := newConfigService(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(costCap float64) {
			defer wg.Done()
			safety := config.DefaultSafetyConfig()
			safety.RunCostCap = costCap
			_, err := service.Update(ctx, models.ConfigUpdate{Safety: safety})
			assert.NoError(t, err)
		}(float64(i + 1))
	}
	wg.Wait()

	final := holder.Load().Safety.RunCostCap
	assert.GreaterOrEqual(t, final, 1.0)
	assert.LessOrEqual(t, final, 8.0)
	assert.Equal(t, final, cfg.Safety.RunCostCap)
}

func TestConfigService_LoadOverrides(t *testing.T) {
	service, _, _ := newConfigService(t)
	ctx := context.Background()

	queue := config.DefaultQueueConfig()
	queue.MaxConcurrentJobs = 7
	queue.HeartbeatInterval = 15 * time.Second
	queue.StaleThreshold = 45 * time.Second

	_, err := service.Update(ctx, models.ConfigUpdate{Queue: queue})
	require.NoError(t, err)

	// A fresh service over the same store picks the override up at startup.
	fresh := builtinTestConfig()
	freshHolder := config.NewHolder(fresh.Snapshot())
	restarted := NewConfigService(service.client, fresh, freshHolder)

	require.NoError(t, restarted.LoadOverrides(ctx))
	assert.Equal(t, 7, freshHolder.Load().Queue.MaxConcurrentJobs)
	assert.Equal(t, 15*time.Second, freshHolder.Load().Queue.HeartbeatInterval)
}

func TestConfigService_SnapshotIsolation(t *testing.T) {
	service, _, holder := newConfigService(t)
	ctx := context.Background()

	// A job takes its snapshot at claim time.
	claimed := holder.Load()

	safety := config.DefaultSafetyConfig()
	safety.RunCostCap = 1.0
	_, err := service.Update(ctx, models.ConfigUpdate{Safety: safety})
	require.NoError(t, err)

	// The in-flight job still sees the policy it claimed with.
	assert.NotEqual(t, 1.0, claimed.Safety.RunCostCap)
}
