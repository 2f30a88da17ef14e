package config

import (
	"fmt"
	"strconv"
)

// Validator performs cross-component validation on loaded configuration.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll runs every validation pass and returns the first failure.
func (v *Validator) ValidateAll() error {
	if err := v.validateProviders(); err != nil {
		return err
	}
	if err := v.validateRouting(); err != nil {
		return err
	}
	if err := v.validateSafety(); err != nil {
		return err
	}
	if err := v.validateQueue(); err != nil {
		return err
	}
	if err := v.validateDefaults(); err != nil {
		return err
	}
	return nil
}

func (v *Validator) validateProviders() error {
	for name, provider := range v.cfg.LLMProviderRegistry.GetAll() {
		if provider.Type == "" {
			return NewValidationError("llm_provider", name, "type", ErrMissingRequiredField)
		}
		if !provider.Type.Valid() {
			return NewValidationError("llm_provider", name, "type",
				fmt.Errorf("%w: %s", ErrInvalidValue, provider.Type))
		}
		if provider.Model == "" {
			return NewValidationError("llm_provider", name, "model", ErrMissingRequiredField)
		}
		if provider.InputCostPer1K < 0 || provider.OutputCostPer1K < 0 {
			return NewValidationError("llm_provider", name, "cost_per_1k",
				fmt.Errorf("%w: negative cost", ErrInvalidValue))
		}
	}
	return nil
}

func (v *Validator) validateRouting() error {
	routing := v.cfg.Routing
	if len(routing.Tiers) == 0 {
		return NewValidationError("routing", "tiers", "", ErrMissingRequiredField)
	}

	top := routing.TopTierIndex()

	for i, tier := range routing.Tiers {
		id := strconv.Itoa(i)
		if tier.Label == "" {
			return NewValidationError("tier", id, "label", ErrMissingRequiredField)
		}
		if tier.Provider == "" {
			return NewValidationError("tier", id, "provider", ErrMissingRequiredField)
		}
		if !v.cfg.LLMProviderRegistry.Has(tier.Provider) {
			return NewValidationError("tier", tier.Label, "provider",
				fmt.Errorf("%w: unknown provider %q", ErrInvalidReference, tier.Provider))
		}
	}

	for phase, tierIndex := range routing.PhaseBaseTiers {
		if tierIndex < 0 || tierIndex > top {
			return NewValidationError("routing", phase, "phase_base_tiers",
				fmt.Errorf("%w: tier index %d out of range [0,%d]", ErrInvalidValue, tierIndex, top))
		}
	}

	for phase, tierIndex := range routing.PinnedPhases {
		if tierIndex < 0 || tierIndex > top {
			return NewValidationError("routing", phase, "pinned_phases",
				fmt.Errorf("%w: tier index %d out of range [0,%d]", ErrInvalidValue, tierIndex, top))
		}
	}

	// Thresholds must be ordered by MaxMinutes ascending with the unbounded
	// bracket (MaxMinutes == 0) last, and reference valid tiers.
	prev := 0.0
	for i, th := range routing.DurationThresholds {
		id := strconv.Itoa(i)
		if th.TierIndex < 0 || th.TierIndex > top {
			return NewValidationError("routing", id, "duration_thresholds",
				fmt.Errorf("%w: tier index %d out of range [0,%d]", ErrInvalidValue, th.TierIndex, top))
		}
		if th.MaxMinutes == 0 {
			if i != len(routing.DurationThresholds)-1 {
				return NewValidationError("routing", id, "duration_thresholds",
					fmt.Errorf("%w: unbounded bracket must be last", ErrInvalidValue))
			}
			continue
		}
		if th.MaxMinutes <= prev {
			return NewValidationError("routing", id, "duration_thresholds",
				fmt.Errorf("%w: max_minutes must be strictly increasing", ErrInvalidValue))
		}
		prev = th.MaxMinutes
	}

	if routing.Escalation.TimeoutSeconds < 0 {
		return NewValidationError("routing", "escalation", "timeout_seconds",
			fmt.Errorf("%w: negative timeout", ErrInvalidValue))
	}

	return nil
}

func (v *Validator) validateSafety() error {
	safety := v.cfg.Safety
	if safety.RunCostCap <= 0 {
		return NewValidationError("safety", "run_cost_cap", "",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if safety.MaxCostPer1KTokens < 0 {
		return NewValidationError("safety", "max_cost_per_1k_tokens", "",
			fmt.Errorf("%w: must be non-negative", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateQueue() error {
	queue := v.cfg.Queue
	if queue.MaxConcurrentJobs < 1 {
		return NewValidationError("queue", "max_concurrent_jobs", "",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if queue.PollInterval <= 0 {
		return NewValidationError("queue", "poll_interval", "",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if queue.HeartbeatInterval <= 0 {
		return NewValidationError("queue", "heartbeat_interval", "",
			fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if queue.StaleThreshold < queue.HeartbeatInterval {
		return NewValidationError("queue", "stale_threshold", "",
			fmt.Errorf("%w: must be at least heartbeat_interval", ErrInvalidValue))
	}
	if queue.RecoveryBudget < 0 {
		return NewValidationError("queue", "recovery_budget", "",
			fmt.Errorf("%w: must be non-negative", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateDefaults() error {
	defaults := v.cfg.Defaults
	if defaults.MaxRetries < 0 {
		return NewValidationError("defaults", "max_retries", "",
			fmt.Errorf("%w: must be non-negative", ErrInvalidValue))
	}
	if len(defaults.Phases) == 0 {
		return NewValidationError("defaults", "phases", "", ErrMissingRequiredField)
	}

	// Every configured phase needs a registered agent and a base or pinned tier.
	for _, phase := range defaults.Phases {
		if !v.cfg.AgentRegistry.Has(phase) {
			return NewValidationError("defaults", phase, "phases",
				fmt.Errorf("%w: no agent registered for phase", ErrInvalidReference))
		}
		_, hasBase := v.cfg.Routing.PhaseBaseTiers[phase]
		_, hasPinned := v.cfg.Routing.PinnedPhases[phase]
		if !hasBase && !hasPinned {
			return NewValidationError("defaults", phase, "phases",
				fmt.Errorf("%w: phase has no base or pinned tier", ErrInvalidReference))
		}
	}
	return nil
}
