package queue

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/cardigan-project/cardigan/ent"
	"github.com/cardigan-project/cardigan/ent/jobphase"
	"github.com/cardigan-project/cardigan/pkg/llm"
	"github.com/cardigan-project/cardigan/pkg/models"
	"github.com/cardigan-project/cardigan/pkg/routing"
)

// Action is the manager's recovery verdict for a failed phase.
type Action string

const (
	// ActionRetry re-runs the phase at the tier it failed on.
	ActionRetry Action = "RETRY"

	// ActionEscalate re-runs the phase one tier higher.
	ActionEscalate Action = "ESCALATE"

	// ActionFix accepts a corrected artifact supplied inline by the manager
	// and marks the phase completed.
	ActionFix Action = "FIX"

	// ActionFail gives up on the job.
	ActionFail Action = "FAIL"
)

// actionToken matches the first "ACTION: <verb>" in the analysis, tolerant
// of markdown emphasis around the label or the verb.
var actionToken = regexp.MustCompile(`(?i)[*_\x60]*ACTION[*_\x60]*\s*:\s*[*_\x60]*\s*(RETRY|ESCALATE|FIX|FAIL)\b`)

// fencedBlock captures the first fenced code block, where a FIX carries the
// corrected artifact.
var fencedBlock = regexp.MustCompile("(?s)```[a-zA-Z]*\n(.*?)```")

// ParseAction extracts the recovery action from a manager response. The
// first explicit ACTION token wins; a missing or unrecognized one is FAIL.
func ParseAction(response string) Action {
	m := actionToken.FindStringSubmatch(response)
	if m == nil {
		return ActionFail
	}
	switch Action(strings.ToUpper(m[1])) {
	case ActionRetry:
		return ActionRetry
	case ActionEscalate:
		return ActionEscalate
	case ActionFix:
		return ActionFix
	default:
		return ActionFail
	}
}

// ExtractCorrectedArtifact pulls the inline artifact from a FIX response:
// the first fenced code block, or failing that everything after the ACTION
// line.
func ExtractCorrectedArtifact(response string) string {
	if m := fencedBlock.FindStringSubmatch(response); m != nil {
		return strings.TrimSpace(m[1])
	}

	loc := actionToken.FindStringIndex(response)
	if loc == nil {
		return ""
	}
	rest := response[loc[1]:]
	if idx := strings.Index(rest, "\n"); idx >= 0 {
		rest = rest[idx+1:]
	} else {
		rest = ""
	}
	return strings.TrimSpace(rest)
}

// recoveryOutcome is what the phase loop does next.
type recoveryOutcome struct {
	action Action

	// tier is the tier to re-run the phase on for RETRY and ESCALATE.
	tier int
}

// recoverPhase runs the manager's recovery analysis for a failed phase.
// The job sits in investigating for the duration; the analysis call is
// charged to the same cost accumulator as the phases.
func (e *Engine) recoverPhase(ctx context.Context, run *jobRun, ph *ent.JobPhase, failedTier int, failErr error) recoveryOutcome {
	name := string(ph.Name)
	logger := e.logger.With("job_id", run.job.ID, "phase", name)

	attempts, err := e.jobs.IncrementRecoveryAttempts(ctx, run.job.ID)
	if err != nil {
		logger.Error("Failed to count recovery attempt", "error", err)
		return recoveryOutcome{action: ActionFail}
	}
	if attempts > run.snap.Queue.RecoveryBudget {
		logger.Warn("Recovery budget exhausted",
			"attempts", attempts, "budget", run.snap.Queue.RecoveryBudget)
		return recoveryOutcome{action: ActionFail}
	}

	if _, err := e.jobs.MarkInvestigating(ctx, run.job.ID); err != nil {
		logger.Error("Failed to enter investigation", "error", err)
		return recoveryOutcome{action: ActionFail}
	}

	logger.Info("Recovery analysis started", "attempt", attempts, "failed_tier", failedTier)
	e.logEvent(run, "recovery_started", map[string]interface{}{
		"phase": name, "attempt": attempts, "error": failErr.Error(),
	})

	manager, err := e.agents.Get("manager")
	if err != nil {
		logger.Error("No manager agent configured", "error", err)
		return recoveryOutcome{action: ActionFail}
	}

	// The manager phase is pinned; this lands on the top tier.
	decision := routing.Select(run.snap.Routing, "manager", run.duration, -1, routing.ReasonInitial)

	messages := buildRecoveryMessages(manager.SystemPrompt, run, ph, failedTier, failErr)
	opts := llm.CallOptions{
		Timeout: time.Duration(run.snap.Routing.Escalation.TimeoutSeconds) * time.Second,
		JobID:   run.job.ID,
	}

	result, err := e.llmClient.Complete(ctx, decision.Provider, messages, opts, run.acc)
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, context.Canceled) {
			logger.Info("Recovery analysis cancelled")
		} else {
			logger.Error("Recovery analysis call failed", "error", err)
		}
		return recoveryOutcome{action: ActionFail}
	}

	if _, werr := e.store.WriteRecoveryAnalysis(run.job.ProjectName, result.Content); werr != nil {
		logger.Warn("Failed to save recovery analysis", "error", werr)
	}

	action := ParseAction(result.Content)
	logger.Info("Recovery analysis complete", "action", action, "cost", result.Cost)
	e.logEvent(run, "recovery_decided", map[string]interface{}{
		"phase": name, "action": string(action), "cost": result.Cost,
	})

	switch action {
	case ActionRetry:
		if !e.resumeFromInvestigation(ctx, run, logger) {
			return recoveryOutcome{action: ActionFail}
		}
		return recoveryOutcome{action: ActionRetry, tier: failedTier}

	case ActionEscalate:
		tier := failedTier + 1
		if top := run.snap.Routing.TopTierIndex(); tier > top {
			tier = top
		}
		if !e.resumeFromInvestigation(ctx, run, logger) {
			return recoveryOutcome{action: ActionFail}
		}
		return recoveryOutcome{action: ActionEscalate, tier: tier}

	case ActionFix:
		corrected := ExtractCorrectedArtifact(result.Content)
		if corrected == "" {
			logger.Warn("FIX carried no artifact; treating as FAIL")
			return recoveryOutcome{action: ActionFail}
		}
		if !e.applyFix(ctx, run, ph, corrected) {
			return recoveryOutcome{action: ActionFail}
		}
		if !e.resumeFromInvestigation(ctx, run, logger) {
			return recoveryOutcome{action: ActionFail}
		}
		return recoveryOutcome{action: ActionFix}

	default:
		return recoveryOutcome{action: ActionFail}
	}
}

// applyFix writes the manager's corrected artifact and completes the phase.
func (e *Engine) applyFix(ctx context.Context, run *jobRun, ph *ent.JobPhase, corrected string) bool {
	name := string(ph.Name)

	path, err := e.store.WritePhaseOutput(run.job.ProjectName, name, corrected)
	if err != nil {
		e.logger.Error("Failed to write corrected artifact",
			"job_id", run.job.ID, "phase", name, "error", err)
		return false
	}

	now := time.Now().UTC()
	if _, err := e.jobs.UpdatePhase(ctx, run.job.ID, ph.PhaseIndex, models.PhasePatch{
		Status:          strPtr(string(jobphase.StatusCompleted)),
		CompletedAt:     &now,
		DeliverablePath: strPtr(path),
		ErrorMessage:    strPtr("corrected by manager recovery"),
	}); err != nil {
		e.logger.Error("Failed to complete fixed phase",
			"job_id", run.job.ID, "phase", name, "error", err)
		return false
	}

	ph.Status = jobphase.StatusCompleted
	run.addOutput(name, corrected)
	e.publisher.PhaseCompleted(ctx, run.job.ID, name, ph.PhaseIndex, 0, path)
	return true
}

func (e *Engine) resumeFromInvestigation(ctx context.Context, run *jobRun, logger *slog.Logger) bool {
	if _, err := e.jobs.ResumeFromInvestigation(ctx, run.job.ID); err != nil {
		logger.Error("Failed to leave investigation", "error", err)
		return false
	}
	return true
}
