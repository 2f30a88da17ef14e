// Package routing selects an LLM tier for a phase. Selection is a pure
// function over an immutable routing config: identical inputs always produce
// identical decisions, and nothing here touches the store or the network.
package routing

import (
	"fmt"

	"github.com/cardigan-project/cardigan/pkg/config"
)

// Reasons passed by callers to request a tier, and echoed back in decisions.
const (
	ReasonInitial         = "initial"
	ReasonFailure         = "failure"
	ReasonTimeout         = "timeout"
	ReasonContextTooLarge = "context_too_large"
	ReasonExhausted       = "exhausted"
)

// Decision is the router's answer: which tier to use and why.
type Decision struct {
	TierIndex int
	TierLabel string
	Provider  string
	Reason    string

	// Exhausted is set when an escalation request cannot move past the last
	// tier. TierIndex then holds the caller's current tier unchanged.
	Exhausted bool
}

// Select picks a tier for a phase.
//
// For initial selection pass currentTier = -1 and reason = ReasonInitial.
// For escalation pass the tier the phase just failed on and one of
// ReasonFailure, ReasonTimeout, or ReasonContextTooLarge.
//
// Rules, in order:
//  1. A pinned phase always gets its pinned tier.
//  2. Initial tier = max(phase base tier, minimum tier from the duration
//     thresholds).
//  3. Escalation moves one tier up when the config enables it for the given
//     reason. ContextTooLarge escalates regardless of the flags: the only
//     remedy for an oversized input is a larger-context model.
//  4. An escalation past the last tier returns an exhausted decision.
func Select(cfg *config.RoutingConfig, phase string, durationMinutes float64, currentTier int, reason string) Decision {
	if pinned, ok := cfg.PinnedPhases[phase]; ok {
		return Decision{
			TierIndex: pinned,
			TierLabel: cfg.TierLabel(pinned),
			Provider:  cfg.Tiers[pinned].Provider,
			Reason:    fmt.Sprintf("phase %s pinned to tier %s", phase, cfg.TierLabel(pinned)),
		}
	}

	if currentTier >= 0 && reason != ReasonInitial {
		return escalate(cfg, currentTier, reason)
	}

	base := cfg.PhaseBaseTiers[phase]
	minFromDuration, bracket := minTierForDuration(cfg, durationMinutes)

	tier := base
	why := fmt.Sprintf("base tier for phase %s", phase)
	if minFromDuration > tier {
		tier = minFromDuration
		why = fmt.Sprintf("duration %.1f min exceeds %s threshold", durationMinutes, bracket)
	}

	return Decision{
		TierIndex: tier,
		TierLabel: cfg.TierLabel(tier),
		Provider:  cfg.Tiers[tier].Provider,
		Reason:    why,
	}
}

func escalate(cfg *config.RoutingConfig, currentTier int, reason string) Decision {
	allowed := false
	switch reason {
	case ReasonFailure:
		allowed = cfg.Escalation.Enabled && cfg.Escalation.OnFailure
	case ReasonTimeout:
		allowed = cfg.Escalation.Enabled && cfg.Escalation.OnTimeout
	case ReasonContextTooLarge:
		allowed = true
	}

	next := currentTier + 1
	if !allowed || next > cfg.TopTierIndex() {
		return Decision{
			TierIndex: currentTier,
			TierLabel: cfg.TierLabel(currentTier),
			Provider:  providerAt(cfg, currentTier),
			Reason:    ReasonExhausted,
			Exhausted: true,
		}
	}

	return Decision{
		TierIndex: next,
		TierLabel: cfg.TierLabel(next),
		Provider:  cfg.Tiers[next].Provider,
		Reason:    fmt.Sprintf("escalated from %s on %s", cfg.TierLabel(currentTier), reason),
	}
}

// minTierForDuration finds the smallest bracket containing the duration and
// returns its tier index. A MaxMinutes of 0 marks the unbounded bracket.
// Unknown durations (0 minutes) land in the first bracket.
func minTierForDuration(cfg *config.RoutingConfig, durationMinutes float64) (int, string) {
	for _, th := range cfg.DurationThresholds {
		if th.MaxMinutes == 0 || durationMinutes <= th.MaxMinutes {
			if th.MaxMinutes == 0 {
				return th.TierIndex, "unbounded"
			}
			return th.TierIndex, fmt.Sprintf("%.0f-minute", th.MaxMinutes)
		}
	}
	return 0, ""
}

func providerAt(cfg *config.RoutingConfig, index int) string {
	if index < 0 || index >= len(cfg.Tiers) {
		return ""
	}
	return cfg.Tiers[index].Provider
}
