package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	builtin := GetBuiltinConfig()
	agents := mergeAgents(builtin.Agents, nil)
	providers := mergeLLMProviders(builtin.LLMProviders, nil)
	return &Config{
		Defaults:            DefaultDefaults(),
		Queue:               DefaultQueueConfig(),
		Routing:             DefaultRoutingConfig(),
		Safety:              DefaultSafetyConfig(),
		Server:              DefaultServerConfig(),
		Ingest:              DefaultIngestConfig(),
		SST:                 DefaultSSTConfig(),
		AgentRegistry:       NewAgentRegistry(agents),
		LLMProviderRegistry: NewLLMProviderRegistry(providers),
	}
}

func TestValidator_ValidConfig(t *testing.T) {
	require.NoError(t, NewValidator(validTestConfig()).ValidateAll())
}

func TestValidator_Routing(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		errText string
	}{
		{
			name:    "no tiers",
			mutate:  func(c *Config) { c.Routing.Tiers = nil },
			errText: "tiers",
		},
		{
			name: "tier references unknown provider",
			mutate: func(c *Config) {
				c.Routing.Tiers[1].Provider = "nope"
			},
			errText: "unknown provider",
		},
		{
			name: "base tier out of range",
			mutate: func(c *Config) {
				c.Routing.PhaseBaseTiers["analyst"] = 7
			},
			errText: "out of range",
		},
		{
			name: "pinned tier out of range",
			mutate: func(c *Config) {
				c.Routing.PinnedPhases["manager"] = -1
			},
			errText: "out of range",
		},
		{
			name: "thresholds not increasing",
			mutate: func(c *Config) {
				c.Routing.DurationThresholds = []DurationThreshold{
					{MaxMinutes: 30, TierIndex: 0},
					{MaxMinutes: 15, TierIndex: 1},
					{MaxMinutes: 0, TierIndex: 2},
				}
			},
			errText: "strictly increasing",
		},
		{
			name: "unbounded bracket not last",
			mutate: func(c *Config) {
				c.Routing.DurationThresholds = []DurationThreshold{
					{MaxMinutes: 0, TierIndex: 2},
					{MaxMinutes: 15, TierIndex: 0},
				}
			},
			errText: "must be last",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)
			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestValidator_SafetyAndQueue(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero cost cap", func(c *Config) { c.Safety.RunCostCap = 0 }},
		{"zero workers", func(c *Config) { c.Queue.MaxConcurrentJobs = 0 }},
		{"stale threshold below heartbeat", func(c *Config) {
			c.Queue.StaleThreshold = c.Queue.HeartbeatInterval / 2
		}},
		{"negative recovery budget", func(c *Config) { c.Queue.RecoveryBudget = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)
			assert.Error(t, NewValidator(cfg).ValidateAll())
		})
	}
}

func TestValidator_PhaseNeedsAgentAndTier(t *testing.T) {
	cfg := validTestConfig()
	cfg.Defaults.Phases = append(cfg.Defaults.Phases, "mystery")
	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no agent registered")
}

func TestSafetyConfig_ModelAllowed(t *testing.T) {
	empty := &SafetyConfig{}
	assert.True(t, empty.ModelAllowed("anything"))

	restricted := &SafetyConfig{ModelAllowlist: []string{"gpt-4o", "claude-sonnet-4-5"}}
	assert.True(t, restricted.ModelAllowed("gpt-4o"))
	assert.False(t, restricted.ModelAllowed("gpt-3.5-turbo"))
}
