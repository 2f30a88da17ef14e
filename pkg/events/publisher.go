package events

import (
	"context"
	"log/slog"
	"time"
)

// Store persists events. Implemented by the event service; the returned ID
// and timestamp come from the inserted row.
type Store interface {
	Append(ctx context.Context, jobID *int, eventType string, data map[string]interface{}) (int, time.Time, error)
}

// Publisher appends events to the store and broadcasts them on the bus.
// Persistence is authoritative; the broadcast is best-effort.
type Publisher struct {
	store  Store
	bus    *Bus
	logger *slog.Logger
}

// NewPublisher creates a publisher over a store and bus.
func NewPublisher(store Store, bus *Bus, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{store: store, bus: bus, logger: logger}
}

// publish appends the event, then broadcasts it on the job channel (when
// job-scoped) and always on the global channel. Persist failures are
// logged and swallowed: event delivery must never fail a job.
func (p *Publisher) publish(ctx context.Context, jobID *int, eventType string, data map[string]interface{}) {
	id, ts, err := p.store.Append(ctx, jobID, eventType, data)
	if err != nil {
		p.logger.Error("Failed to persist event",
			"event_type", eventType, "error", err)
		return
	}

	env := Envelope{
		EventID:   id,
		Type:      eventType,
		JobID:     jobID,
		Timestamp: ts,
		Data:      data,
	}

	if jobID != nil {
		p.bus.Publish(JobChannel(*jobID), env)
	}
	p.bus.Publish(GlobalChannel, env)
}

// JobQueued records a newly accepted job.
func (p *Publisher) JobQueued(ctx context.Context, jobID int, transcriptFile, projectName string, priority int) {
	p.publish(ctx, &jobID, EventTypeJobQueued, map[string]interface{}{
		"transcript_file": transcriptFile,
		"project_name":    projectName,
		"priority":        priority,
	})
}

// JobStarted records a worker claiming a job.
func (p *Publisher) JobStarted(ctx context.Context, jobID int, workerID string) {
	p.publish(ctx, &jobID, EventTypeJobStarted, map[string]interface{}{
		"worker_id": workerID,
	})
}

// JobCompleted records a job finishing all phases.
func (p *Publisher) JobCompleted(ctx context.Context, jobID int, totalCost float64, durationSeconds float64) {
	p.publish(ctx, &jobID, EventTypeJobCompleted, map[string]interface{}{
		"total_cost":       totalCost,
		"duration_seconds": durationSeconds,
	})
}

// JobFailed records a terminal job failure.
func (p *Publisher) JobFailed(ctx context.Context, jobID int, phase, errorMessage string) {
	p.publish(ctx, &jobID, EventTypeJobFailed, map[string]interface{}{
		"phase": phase,
		"error": errorMessage,
	})
}

// JobCancelled records an operator cancellation.
func (p *Publisher) JobCancelled(ctx context.Context, jobID int) {
	p.publish(ctx, &jobID, EventTypeJobCancelled, nil)
}

// PhaseStarted records a phase beginning execution.
func (p *Publisher) PhaseStarted(ctx context.Context, jobID int, phase string, phaseIndex int, tierLabel, model string) {
	p.publish(ctx, &jobID, EventTypePhaseStarted, map[string]interface{}{
		"phase":       phase,
		"phase_index": phaseIndex,
		"tier":        tierLabel,
		"model":       model,
	})
}

// PhaseCompleted records a successful phase.
func (p *Publisher) PhaseCompleted(ctx context.Context, jobID int, phase string, phaseIndex int, cost float64, deliverablePath string) {
	p.publish(ctx, &jobID, EventTypePhaseCompleted, map[string]interface{}{
		"phase":            phase,
		"phase_index":      phaseIndex,
		"cost":             cost,
		"deliverable_path": deliverablePath,
	})
}

// PhaseFailed records a phase failure after all escalation attempts.
func (p *Publisher) PhaseFailed(ctx context.Context, jobID int, phase string, phaseIndex int, errorMessage string) {
	p.publish(ctx, &jobID, EventTypePhaseFailed, map[string]interface{}{
		"phase":       phase,
		"phase_index": phaseIndex,
		"error":       errorMessage,
	})
}

// RecordCostUpdate publishes a cost_update event after a successful LLM
// call. This satisfies the LLM client's event recorder hook.
func (p *Publisher) RecordCostUpdate(ctx context.Context, jobID int, model string, inputTokens, outputTokens int, cost float64) {
	var id *int
	if jobID > 0 {
		id = &jobID
	}
	p.publish(ctx, id, EventTypeCostUpdate, map[string]interface{}{
		"model":         model,
		"input_tokens":  inputTokens,
		"output_tokens": outputTokens,
		"cost":          cost,
	})
}

// ModelSelected records the router's initial tier decision for a phase.
func (p *Publisher) ModelSelected(ctx context.Context, jobID int, phase, tierLabel, model, reason string) {
	p.publish(ctx, &jobID, EventTypeModelSelected, map[string]interface{}{
		"phase":  phase,
		"tier":   tierLabel,
		"model":  model,
		"reason": reason,
	})
}

// ModelFallback records an escalation to a higher tier.
func (p *Publisher) ModelFallback(ctx context.Context, jobID int, phase, fromTier, toTier, reason string) {
	p.publish(ctx, &jobID, EventTypeModelFallback, map[string]interface{}{
		"phase":     phase,
		"from_tier": fromTier,
		"to_tier":   toTier,
		"reason":    reason,
	})
}

// SystemPause records the queue being paused.
func (p *Publisher) SystemPause(ctx context.Context, reason string) {
	p.publish(ctx, nil, EventTypeSystemPause, map[string]interface{}{
		"reason": reason,
	})
}

// SystemResume records the queue resuming.
func (p *Publisher) SystemResume(ctx context.Context) {
	p.publish(ctx, nil, EventTypeSystemResume, nil)
}

// SystemError records a system-level fault not tied to one job.
func (p *Publisher) SystemError(ctx context.Context, component, errorMessage string) {
	p.publish(ctx, nil, EventTypeSystemError, map[string]interface{}{
		"component": component,
		"error":     errorMessage,
	})
}

// UserAction records an operator action against a job for the audit trail.
func (p *Publisher) UserAction(ctx context.Context, jobID int, action string, detail map[string]interface{}) {
	data := map[string]interface{}{
		"action": action,
	}
	for k, v := range detail {
		data[k] = v
	}
	p.publish(ctx, &jobID, EventTypeUserAction, data)
}
