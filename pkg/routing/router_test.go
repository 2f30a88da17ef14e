package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardigan-project/cardigan/pkg/config"
)

func testRoutingConfig() *config.RoutingConfig {
	return &config.RoutingConfig{
		Tiers: []config.TierConfig{
			{Label: "cheapskate", Provider: "openai-mini"},
			{Label: "default", Provider: "openai-default"},
			{Label: "big-brain", Provider: "anthropic-default"},
		},
		PhaseBaseTiers: map[string]int{
			"analyst":   0,
			"formatter": 0,
			"seo":       1,
		},
		PinnedPhases: map[string]int{
			"manager": 2,
		},
		DurationThresholds: []config.DurationThreshold{
			{MaxMinutes: 15, TierIndex: 0},
			{MaxMinutes: 30, TierIndex: 1},
			{MaxMinutes: 0, TierIndex: 2},
		},
		Escalation: config.EscalationConfig{
			Enabled:   true,
			OnFailure: true,
			OnTimeout: true,
		},
	}
}

func TestSelect_PinnedPhase(t *testing.T) {
	cfg := testRoutingConfig()

	// Pinned wins regardless of duration or current tier.
	for _, duration := range []float64{0, 8, 500} {
		d := Select(cfg, "manager", duration, -1, ReasonInitial)
		assert.Equal(t, 2, d.TierIndex)
		assert.Equal(t, "big-brain", d.TierLabel)
		assert.False(t, d.Exhausted)
	}

	d := Select(cfg, "manager", 5, 0, ReasonFailure)
	assert.Equal(t, 2, d.TierIndex)
}

func TestSelect_BaseTier(t *testing.T) {
	cfg := testRoutingConfig()

	d := Select(cfg, "analyst", 8, -1, ReasonInitial)
	assert.Equal(t, 0, d.TierIndex)
	assert.Equal(t, "cheapskate", d.TierLabel)
	assert.Equal(t, "openai-mini", d.Provider)

	d = Select(cfg, "seo", 8, -1, ReasonInitial)
	assert.Equal(t, 1, d.TierIndex)
}

func TestSelect_DurationThresholds(t *testing.T) {
	cfg := testRoutingConfig()

	tests := []struct {
		duration float64
		want     int
	}{
		{0, 0},  // unknown duration uses the first bracket
		{8, 0},  // within 15 min
		{15, 0}, // boundary inclusive
		{20, 1}, // 15 < d <= 30
		{45, 2}, // beyond all bounded brackets
	}

	for _, tt := range tests {
		d := Select(cfg, "analyst", tt.duration, -1, ReasonInitial)
		assert.Equal(t, tt.want, d.TierIndex, "duration %.0f", tt.duration)
	}

	// A 45-minute transcript raises the analyst above its base tier, and the
	// reason says why.
	d := Select(cfg, "analyst", 45, -1, ReasonInitial)
	assert.Contains(t, d.Reason, "duration")
}

func TestSelect_BaseTierBeatsLowerThreshold(t *testing.T) {
	cfg := testRoutingConfig()

	// seo base tier 1 with a short transcript stays at 1.
	d := Select(cfg, "seo", 5, -1, ReasonInitial)
	assert.Equal(t, 1, d.TierIndex)
}

func TestSelect_EscalationOnFailure(t *testing.T) {
	cfg := testRoutingConfig()

	d := Select(cfg, "analyst", 8, 0, ReasonFailure)
	assert.Equal(t, 1, d.TierIndex)
	assert.False(t, d.Exhausted)

	d = Select(cfg, "analyst", 8, 1, ReasonFailure)
	assert.Equal(t, 2, d.TierIndex)
}

func TestSelect_EscalationExhausted(t *testing.T) {
	cfg := testRoutingConfig()

	d := Select(cfg, "analyst", 8, 2, ReasonFailure)
	assert.True(t, d.Exhausted)
	assert.Equal(t, 2, d.TierIndex)
	assert.Equal(t, ReasonExhausted, d.Reason)
}

func TestSelect_EscalationDisabled(t *testing.T) {
	cfg := testRoutingConfig()
	cfg.Escalation.OnFailure = false

	d := Select(cfg, "analyst", 8, 0, ReasonFailure)
	assert.True(t, d.Exhausted)
	assert.Equal(t, 0, d.TierIndex)
}

func TestSelect_ContextTooLargeIgnoresFlags(t *testing.T) {
	cfg := testRoutingConfig()
	cfg.Escalation.Enabled = false
	cfg.Escalation.OnFailure = false

	d := Select(cfg, "analyst", 8, 0, ReasonContextTooLarge)
	assert.Equal(t, 1, d.TierIndex)
	assert.False(t, d.Exhausted)
}

func TestSelect_MonotonicUnderEscalation(t *testing.T) {
	cfg := testRoutingConfig()

	// Successive failure escalations never decrease the tier and cap at the
	// last one.
	tier := Select(cfg, "formatter", 8, -1, ReasonInitial).TierIndex
	for i := 0; i < 5; i++ {
		d := Select(cfg, "formatter", 8, tier, ReasonFailure)
		assert.GreaterOrEqual(t, d.TierIndex, tier)
		assert.LessOrEqual(t, d.TierIndex, 2)
		tier = d.TierIndex
	}
	assert.Equal(t, 2, tier)
}

func TestSelect_Purity(t *testing.T) {
	cfg := testRoutingConfig()

	first := Select(cfg, "analyst", 22, -1, ReasonInitial)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Select(cfg, "analyst", 22, -1, ReasonInitial))
	}
}
