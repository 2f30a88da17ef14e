package config

// TierConfig binds a named cost/capability tier to an LLM provider.
// Tiers are ordered: index 0 is the cheapest, the last index is the most
// capable. Escalation only ever moves toward higher indices.
type TierConfig struct {
	// Human-readable tier name, e.g. "cheapskate", "default", "big-brain"
	Label string `yaml:"label" json:"label"`

	// Name of an entry in the LLM provider registry
	Provider string `yaml:"provider" json:"provider"`
}

// DurationThreshold maps an estimated transcript duration to a minimum tier.
// Thresholds are ordered by MaxMinutes ascending; the last entry usually has
// MaxMinutes = 0, meaning "no upper bound".
type DurationThreshold struct {
	// Upper bound in minutes for this bracket; 0 means unbounded
	MaxMinutes float64 `yaml:"max_minutes" json:"max_minutes"`

	// Minimum tier index for transcripts in this bracket
	TierIndex int `yaml:"tier_index" json:"tier_index"`
}

// EscalationConfig controls when the router moves a phase to a higher tier.
type EscalationConfig struct {
	Enabled           bool `yaml:"enabled" json:"enabled"`
	OnFailure         bool `yaml:"on_failure" json:"on_failure"`
	OnTimeout         bool `yaml:"on_timeout" json:"on_timeout"`
	TimeoutSeconds    int  `yaml:"timeout_seconds" json:"timeout_seconds"`
	MaxRetriesPerTier int  `yaml:"max_retries_per_tier" json:"max_retries_per_tier"`
}

// RoutingConfig is the full tier-routing policy document. It is read at
// startup and on config writes; job tasks capture an immutable copy (see
// Snapshot) so mid-job edits never produce inconsistent decisions.
type RoutingConfig struct {
	// Ordered tiers, cheapest first
	Tiers []TierConfig `yaml:"tiers" json:"tiers"`

	// Starting tier index per phase name
	PhaseBaseTiers map[string]int `yaml:"phase_base_tiers" json:"phase_base_tiers"`

	// Phases pinned to a fixed tier regardless of duration or base tier.
	// The manager phase is pinned to the top tier by default.
	PinnedPhases map[string]int `yaml:"pinned_phases" json:"pinned_phases"`

	// Minimum tier as a function of estimated transcript duration
	DurationThresholds []DurationThreshold `yaml:"duration_thresholds" json:"duration_thresholds"`

	Escalation EscalationConfig `yaml:"escalation" json:"escalation"`
}

// TopTierIndex returns the index of the most capable tier.
func (c *RoutingConfig) TopTierIndex() int {
	if len(c.Tiers) == 0 {
		return 0
	}
	return len(c.Tiers) - 1
}

// TierLabel returns the label for a tier index, or "" when out of range.
func (c *RoutingConfig) TierLabel(index int) string {
	if index < 0 || index >= len(c.Tiers) {
		return ""
	}
	return c.Tiers[index].Label
}

// Clone returns a deep copy. Snapshots hand clones to job tasks so a config
// write can never mutate routing decisions mid-job.
func (c *RoutingConfig) Clone() *RoutingConfig {
	if c == nil {
		return nil
	}

	out := &RoutingConfig{
		Tiers:              make([]TierConfig, len(c.Tiers)),
		PhaseBaseTiers:     make(map[string]int, len(c.PhaseBaseTiers)),
		PinnedPhases:       make(map[string]int, len(c.PinnedPhases)),
		DurationThresholds: make([]DurationThreshold, len(c.DurationThresholds)),
		Escalation:         c.Escalation,
	}
	copy(out.Tiers, c.Tiers)
	copy(out.DurationThresholds, c.DurationThresholds)
	for k, v := range c.PhaseBaseTiers {
		out.PhaseBaseTiers[k] = v
	}
	for k, v := range c.PinnedPhases {
		out.PinnedPhases[k] = v
	}
	return out
}

// DefaultRoutingConfig returns the built-in routing policy: three tiers,
// analyst and formatter starting cheap, manager pinned to the top tier.
func DefaultRoutingConfig() *RoutingConfig {
	return &RoutingConfig{
		Tiers: []TierConfig{
			{Label: "cheapskate", Provider: "openai-mini"},
			{Label: "default", Provider: "openai-default"},
			{Label: "big-brain", Provider: "anthropic-default"},
		},
		PhaseBaseTiers: map[string]int{
			"analyst":       0,
			"formatter":     0,
			"seo":           1,
			"timestamp":     0,
			"copy_editor":   1,
			"investigation": 2,
		},
		PinnedPhases: map[string]int{
			"manager": 2,
		},
		DurationThresholds: []DurationThreshold{
			{MaxMinutes: 15, TierIndex: 0},
			{MaxMinutes: 30, TierIndex: 1},
			{MaxMinutes: 0, TierIndex: 2},
		},
		Escalation: EscalationConfig{
			Enabled:           true,
			OnFailure:         true,
			OnTimeout:         true,
			TimeoutSeconds:    120,
			MaxRetriesPerTier: 1,
		},
	}
}
