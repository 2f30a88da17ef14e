package config

// SafetyConfig holds the process-wide LLM spend guards. The run cost cap is
// enforced per job; the allowlist and token ceiling apply to every call.
type SafetyConfig struct {
	// Maximum accumulated dollar cost per job run
	RunCostCap float64 `yaml:"run_cost_cap" json:"run_cost_cap"`

	// If non-empty, only these model identifiers may be used
	ModelAllowlist []string `yaml:"model_allowlist,omitempty" json:"model_allowlist,omitempty"`

	// Maximum dollar cost per 1K tokens for a single call
	MaxCostPer1KTokens float64 `yaml:"max_cost_per_1k_tokens" json:"max_cost_per_1k_tokens"`
}

// ModelAllowed reports whether a model identifier passes the allowlist.
// An empty allowlist permits everything.
func (c *SafetyConfig) ModelAllowed(model string) bool {
	if len(c.ModelAllowlist) == 0 {
		return true
	}
	for _, allowed := range c.ModelAllowlist {
		if allowed == model {
			return true
		}
	}
	return false
}

// Clone returns a deep copy for snapshots.
func (c *SafetyConfig) Clone() *SafetyConfig {
	if c == nil {
		return nil
	}
	out := &SafetyConfig{
		RunCostCap:         c.RunCostCap,
		MaxCostPer1KTokens: c.MaxCostPer1KTokens,
	}
	if c.ModelAllowlist != nil {
		out.ModelAllowlist = make([]string, len(c.ModelAllowlist))
		copy(out.ModelAllowlist, c.ModelAllowlist)
	}
	return out
}

// DefaultSafetyConfig returns the built-in safety defaults.
func DefaultSafetyConfig() *SafetyConfig {
	return &SafetyConfig{
		RunCostCap:         5.0,
		MaxCostPer1KTokens: 0.25,
	}
}
