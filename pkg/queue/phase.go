package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cardigan-project/cardigan/ent"
	"github.com/cardigan-project/cardigan/ent/jobphase"
	"github.com/cardigan-project/cardigan/pkg/llm"
	"github.com/cardigan-project/cardigan/pkg/models"
	"github.com/cardigan-project/cardigan/pkg/routing"
)

// maxPhaseIterations is the hard cap on LLM calls per phase run, counting
// same-tier retries and escalations. It backstops a misconfigured
// escalation policy, not normal operation.
const maxPhaseIterations = 10

// runPhase executes one phase: route to a tier, call the LLM, escalate on
// transient failures per policy, and persist the outcome. Returns the last
// tier tried so recovery can decide where to resume.
func (e *Engine) runPhase(ctx context.Context, run *jobRun, ph *ent.JobPhase, forceTier int) (int, error) {
	name := string(ph.Name)
	routingCfg := run.snap.Routing
	logger := e.logger.With("job_id", run.job.ID, "phase", name)

	agent, err := e.agents.Get(name)
	if err != nil {
		e.failPhase(run, ph, 0, "", ph.Attempts, err)
		return 0, fmt.Errorf("phase %s: %w", name, err)
	}

	var decision routing.Decision
	if forceTier >= 0 {
		// Recovery picked the tier; the router is bypassed for this run.
		decision = routing.Decision{
			TierIndex: forceTier,
			TierLabel: routingCfg.TierLabel(forceTier),
			Provider:  routingCfg.Tiers[forceTier].Provider,
			Reason:    "recovery directive",
		}
	} else {
		decision = routing.Select(routingCfg, name, run.duration, -1, routing.ReasonInitial)
	}

	now := time.Now().UTC()
	if _, err := e.jobs.UpdatePhase(ctx, run.job.ID, ph.PhaseIndex, models.PhasePatch{
		Status:     strPtr(string(jobphase.StatusInProgress)),
		TierIndex:  intPtr(decision.TierIndex),
		TierLabel:  strPtr(decision.TierLabel),
		TierReason: strPtr(decision.Reason),
		StartedAt:  &now,
	}); err != nil {
		return decision.TierIndex, fmt.Errorf("phase %s: mark in_progress: %w", name, err)
	}

	e.publisher.PhaseStarted(ctx, run.job.ID, name, ph.PhaseIndex, decision.TierLabel, e.modelFor(decision.Provider))
	e.publisher.ModelSelected(ctx, run.job.ID, name, decision.TierLabel, e.modelFor(decision.Provider), decision.Reason)
	e.logEvent(run, "phase_started", map[string]interface{}{
		"phase": name, "tier": decision.TierLabel, "reason": decision.Reason,
	})

	attempts := ph.Attempts
	retriesAtTier := 0
	contextEscalated := false
	timeout := time.Duration(routingCfg.Escalation.TimeoutSeconds) * time.Second

	var lastErr error

	for iteration := 0; iteration < maxPhaseIterations; iteration++ {
		messages := buildPhaseMessages(agent.SystemPrompt, run)
		opts := llm.CallOptions{Timeout: timeout, JobID: run.job.ID}

		result, callErr := e.llmClient.Complete(ctx, decision.Provider, messages, opts, run.acc)
		attempts++

		if callErr == nil {
			return decision.TierIndex, e.completePhase(ctx, run, ph, decision, attempts, result)
		}
		lastErr = callErr

		// Operator cancel surfaces through the call as a cancelled context.
		if ctx.Err() != nil && errors.Is(callErr, context.Canceled) {
			e.failPhase(run, ph, decision.TierIndex, decision.TierLabel, attempts, callErr)
			return decision.TierIndex, context.Canceled
		}

		logger.Warn("Phase call failed",
			"tier", decision.TierLabel, "attempt", attempts, "error", callErr)

		switch {
		case llm.IsSafety(callErr), llm.IsPermanent(callErr):
			// Neither retries nor a bigger model will help.
			e.failPhase(run, ph, decision.TierIndex, decision.TierLabel, attempts, callErr)
			return decision.TierIndex, fmt.Errorf("phase %s: %w", name, callErr)

		case llm.IsContextTooLarge(callErr):
			// One escalation per phase: if the larger window overflows too,
			// climbing further will not shrink the input.
			if contextEscalated {
				e.failPhase(run, ph, decision.TierIndex, decision.TierLabel, attempts, callErr)
				return decision.TierIndex, fmt.Errorf("phase %s: %w", name, callErr)
			}
			next := routing.Select(routingCfg, name, run.duration, decision.TierIndex, routing.ReasonContextTooLarge)
			if next.Exhausted {
				e.failPhase(run, ph, decision.TierIndex, decision.TierLabel, attempts, callErr)
				return decision.TierIndex, fmt.Errorf("phase %s: %w", name, callErr)
			}
			e.publisher.ModelFallback(ctx, run.job.ID, name, decision.TierLabel, next.TierLabel, routing.ReasonContextTooLarge)
			decision = next
			retriesAtTier = 0
			contextEscalated = true

		case llm.IsTransient(callErr):
			reason := routing.ReasonFailure
			if errors.Is(callErr, context.DeadlineExceeded) {
				reason = routing.ReasonTimeout
			}

			if retriesAtTier < routingCfg.Escalation.MaxRetriesPerTier {
				retriesAtTier++
				continue
			}

			next := routing.Select(routingCfg, name, run.duration, decision.TierIndex, reason)
			if next.Exhausted {
				e.failPhase(run, ph, decision.TierIndex, decision.TierLabel, attempts, callErr)
				return decision.TierIndex, fmt.Errorf("phase %s: escalation exhausted: %w", name, callErr)
			}
			e.publisher.ModelFallback(ctx, run.job.ID, name, decision.TierLabel, next.TierLabel, reason)
			decision = next
			retriesAtTier = 0

		default:
			e.failPhase(run, ph, decision.TierIndex, decision.TierLabel, attempts, callErr)
			return decision.TierIndex, fmt.Errorf("phase %s: %w", name, callErr)
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no successful call in %d iterations", maxPhaseIterations)
	}
	e.failPhase(run, ph, decision.TierIndex, decision.TierLabel, attempts, lastErr)
	return decision.TierIndex, fmt.Errorf("phase %s: iteration cap reached: %w", name, lastErr)
}

// completePhase writes the artifact and persists the phase's accounting.
func (e *Engine) completePhase(ctx context.Context, run *jobRun, ph *ent.JobPhase, decision routing.Decision, attempts int, result *llm.Result) error {
	name := string(ph.Name)

	path, err := e.store.WritePhaseOutput(run.job.ProjectName, name, result.Content)
	if err != nil {
		e.failPhase(run, ph, decision.TierIndex, decision.TierLabel, attempts, err)
		return fmt.Errorf("phase %s: write artifact: %w", name, err)
	}

	now := time.Now().UTC()
	if _, err := e.jobs.UpdatePhase(ctx, run.job.ID, ph.PhaseIndex, models.PhasePatch{
		Status:          strPtr(string(jobphase.StatusCompleted)),
		TierIndex:       intPtr(decision.TierIndex),
		TierLabel:       strPtr(decision.TierLabel),
		Model:           strPtr(result.ModelUsed),
		Attempts:        intPtr(attempts),
		Cost:            floatPtr(ph.Cost + result.Cost),
		InputTokens:     intPtr(ph.InputTokens + result.InputTokens),
		OutputTokens:    intPtr(ph.OutputTokens + result.OutputTokens),
		CompletedAt:     &now,
		DeliverablePath: strPtr(path),
	}); err != nil {
		return fmt.Errorf("phase %s: mark completed: %w", name, err)
	}

	ph.Status = jobphase.StatusCompleted
	ph.Attempts = attempts
	ph.Cost += result.Cost
	ph.InputTokens += result.InputTokens
	ph.OutputTokens += result.OutputTokens
	ph.TierIndex = decision.TierIndex
	ph.TierLabel = decision.TierLabel
	ph.Model = result.ModelUsed

	run.addOutput(name, result.Content)

	e.publisher.PhaseCompleted(ctx, run.job.ID, name, ph.PhaseIndex, result.Cost, path)
	e.logEvent(run, "phase_completed", map[string]interface{}{
		"phase": name, "model": result.ModelUsed, "cost": result.Cost, "attempts": attempts,
	})
	e.logger.Info("Phase completed",
		"job_id", run.job.ID, "phase", name,
		"model", result.ModelUsed, "cost", result.Cost,
		"latency_ms", result.LatencyMs)

	return nil
}

// failPhase persists a phase failure. Store errors here are logged only;
// the phase error itself is what the caller propagates.
func (e *Engine) failPhase(run *jobRun, ph *ent.JobPhase, tierIndex int, tierLabel string, attempts int, cause error) {
	name := string(ph.Name)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := e.jobs.UpdatePhase(ctx, run.job.ID, ph.PhaseIndex, models.PhasePatch{
		Status:       strPtr(string(jobphase.StatusFailed)),
		TierIndex:    intPtr(tierIndex),
		TierLabel:    strPtr(tierLabel),
		Attempts:     intPtr(attempts),
		ErrorMessage: strPtr(cause.Error()),
	}); err != nil {
		e.logger.Error("Failed to mark phase failed",
			"job_id", run.job.ID, "phase", name, "error", err)
	}

	ph.Status = jobphase.StatusFailed
	ph.Attempts = attempts
	ph.TierIndex = tierIndex
	ph.TierLabel = tierLabel

	e.publisher.PhaseFailed(ctx, run.job.ID, name, ph.PhaseIndex, cause.Error())
	e.logEvent(run, "phase_failed", map[string]interface{}{
		"phase": name, "error": cause.Error(), "attempts": attempts,
	})
}

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
