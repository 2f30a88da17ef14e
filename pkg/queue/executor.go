package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/cardigan-project/cardigan/ent"
	"github.com/cardigan-project/cardigan/ent/job"
	"github.com/cardigan-project/cardigan/ent/jobphase"
	"github.com/cardigan-project/cardigan/pkg/artifacts"
	"github.com/cardigan-project/cardigan/pkg/config"
	"github.com/cardigan-project/cardigan/pkg/events"
	"github.com/cardigan-project/cardigan/pkg/llm"
	"github.com/cardigan-project/cardigan/pkg/services"
	"github.com/cardigan-project/cardigan/pkg/sst"
	"github.com/cardigan-project/cardigan/pkg/transcript"
)

// Engine is the phase executor: it walks a job's phases in order, routes
// each to an LLM tier, writes artifacts, and invokes the manager's recovery
// analysis when a phase exhausts its escalations.
type Engine struct {
	jobs      *services.JobService
	llmClient *llm.Client
	providers *config.LLMProviderRegistry
	agents    *config.AgentRegistry
	store     *artifacts.Store
	publisher *events.Publisher
	metadata  *sst.Service
	logger    *slog.Logger
}

// NewEngine creates the phase executor.
func NewEngine(jobs *services.JobService, llmClient *llm.Client, providers *config.LLMProviderRegistry, agents *config.AgentRegistry, store *artifacts.Store, publisher *events.Publisher, metadata *sst.Service, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		jobs:      jobs,
		llmClient: llmClient,
		providers: providers,
		agents:    agents,
		store:     store,
		publisher: publisher,
		metadata:  metadata,
		logger:    logger,
	}
}

// jobRun carries the per-job state shared by the phase loop, the phase
// runner, and the recovery analyzer.
type jobRun struct {
	job      *ent.Job
	snap     *config.Snapshot
	phases   []*ent.JobPhase
	text     string
	duration float64
	acc      *llm.CostAccumulator
	record   *sst.Record

	// outputs maps phase name to its artifact content, in completion order.
	outputs map[string]string
	order   []string
}

func (r *jobRun) addOutput(name, content string) {
	if _, seen := r.outputs[name]; !seen {
		r.order = append(r.order, name)
	}
	r.outputs[name] = content
}

// Execute runs the job's pipeline to a terminal state. It never panics out:
// an executor bug fails the job instead of killing the worker.
func (e *Engine) Execute(ctx context.Context, j *ent.Job, snap *config.Snapshot) (result *ExecutionResult) {
	logger := e.logger.With("job_id", j.ID)

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("Executor panic", "panic", rec, "stack", string(debug.Stack()))
			result = &ExecutionResult{
				Status:       job.StatusFailed,
				ErrorMessage: fmt.Sprintf("executor panic: %v", rec),
			}
		}
	}()

	raw, err := os.ReadFile(j.TranscriptFile)
	if err != nil {
		return &ExecutionResult{
			Status:       job.StatusFailed,
			ErrorMessage: fmt.Sprintf("read transcript: %v", err),
		}
	}

	// Loads run on their own context: a cancel signal must still produce
	// the partial manifest, which needs the phase rows.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelLoad()

	phases, err := e.jobs.GetPhases(loadCtx, j.ID)
	if err != nil {
		return &ExecutionResult{
			Status:       job.StatusFailed,
			ErrorMessage: fmt.Sprintf("load phases: %v", err),
		}
	}
	if len(phases) == 0 {
		return &ExecutionResult{
			Status:       job.StatusFailed,
			ErrorMessage: "job has no phases",
		}
	}

	// Spend persisted by earlier runs counts against the cap; a requeued
	// job does not start with a fresh budget.
	acc := llm.NewCostAccumulator(snap.Safety.RunCostCap)
	for _, ph := range phases {
		acc.Seed(ph.Cost)
	}

	run := &jobRun{
		job:      j,
		snap:     snap,
		phases:   phases,
		text:     string(raw),
		duration: transcript.EstimateDurationMinutes(string(raw)),
		acc:      acc,
		outputs:  make(map[string]string),
	}

	if j.MediaID != nil {
		run.record = e.metadata.Lookup(ctx, *j.MediaID)
	}

	logger.Info("Executing pipeline",
		"phases", len(phases),
		"duration_minutes", fmt.Sprintf("%.1f", run.duration),
		"has_metadata", run.record != nil)

	i := 0
	forceTier := -1
	for i < len(run.phases) {
		if halt := e.checkControl(ctx, run); halt != nil {
			return halt
		}

		ph := run.phases[i]
		if ph.Status == jobphase.StatusCompleted || ph.Status == jobphase.StatusSkipped {
			// Already done on a previous run (requeue, retry, or a recovery
			// FIX); reload its artifact for the phases after it.
			if content, rerr := e.store.ReadPhaseOutput(j.ProjectName, string(ph.Name)); rerr == nil && content != "" {
				run.addOutput(string(ph.Name), content)
			}
			i++
			forceTier = -1
			continue
		}

		lastTier, perr := e.runPhase(ctx, run, ph, forceTier)
		forceTier = -1

		if perr == nil {
			if serr := e.jobs.SetCurrentPhaseIndex(ctx, j.ID, i+1); serr != nil {
				logger.Warn("Failed to advance phase cursor", "error", serr)
			}
			i++
			continue
		}

		if errors.Is(perr, context.Canceled) {
			return e.haltCancelled(run)
		}

		outcome := e.recoverPhase(ctx, run, ph, lastTier, perr)
		switch outcome.action {
		case ActionFix:
			if serr := e.jobs.SetCurrentPhaseIndex(ctx, j.ID, i+1); serr != nil {
				logger.Warn("Failed to advance phase cursor", "error", serr)
			}
			i++
		case ActionRetry, ActionEscalate:
			forceTier = outcome.tier
		default:
			return &ExecutionResult{
				Status:       job.StatusFailed,
				FailedPhase:  string(ph.Name),
				ErrorMessage: perr.Error(),
				TotalCost:    run.acc.Total(),
			}
		}
	}

	if _, err := e.writeManifest(run, string(job.StatusCompleted)); err != nil {
		logger.Warn("Failed to write manifest", "error", err)
	}

	return &ExecutionResult{
		Status:    job.StatusCompleted,
		TotalCost: run.acc.Total(),
	}
}

// checkControl looks for an operator signal between phases: a cancelled
// context or a pause/cancel written to the store. Returns nil to continue.
func (e *Engine) checkControl(ctx context.Context, run *jobRun) *ExecutionResult {
	if ctx.Err() != nil {
		return e.haltCancelled(run)
	}

	fresh, err := e.jobs.GetJob(ctx, run.job.ID, false)
	if err != nil {
		// The store is unreachable; keep going and let the next phase's
		// writes surface the problem.
		e.logger.Warn("Control check failed", "job_id", run.job.ID, "error", err)
		return nil
	}

	switch fresh.Status {
	case job.StatusPaused:
		return &ExecutionResult{
			Status:    job.StatusPaused,
			TotalCost: run.acc.Total(),
		}
	case job.StatusCancelled:
		return e.haltCancelled(run)
	}
	return nil
}

// haltCancelled records the partial run before the worker writes the
// cancelled status.
func (e *Engine) haltCancelled(run *jobRun) *ExecutionResult {
	if _, err := e.writeManifest(run, string(job.StatusCancelled)); err != nil {
		e.logger.Warn("Failed to write partial manifest", "job_id", run.job.ID, "error", err)
	}
	return &ExecutionResult{
		Status:    job.StatusCancelled,
		TotalCost: run.acc.Total(),
	}
}

// writeManifest summarizes the run into manifest.json. For cancelled jobs
// this doubles as the partial-output marker: it lists which phases finished.
func (e *Engine) writeManifest(run *jobRun, status string) (string, error) {
	phases, err := e.jobs.GetPhases(context.Background(), run.job.ID)
	if err != nil {
		return "", fmt.Errorf("load phases for manifest: %w", err)
	}

	now := time.Now().UTC()
	manifest := &artifacts.Manifest{
		JobID:       run.job.ID,
		Status:      status,
		Transcript:  run.job.TranscriptFile,
		ProjectName: run.job.ProjectName,
		TotalCost:   run.acc.Total(),
		QueuedAt:    run.job.QueuedAt,
		StartedAt:   run.job.StartedAt,
		CompletedAt: &now,
	}

	for _, ph := range phases {
		manifest.InputTokens += ph.InputTokens
		manifest.OutputTokens += ph.OutputTokens
		manifest.Phases = append(manifest.Phases, artifacts.PhaseRecord{
			Name:            string(ph.Name),
			Status:          string(ph.Status),
			TierLabel:       ph.TierLabel,
			Model:           ph.Model,
			Attempts:        ph.Attempts,
			Cost:            ph.Cost,
			InputTokens:     ph.InputTokens,
			OutputTokens:    ph.OutputTokens,
			StartedAt:       ph.StartedAt,
			CompletedAt:     ph.CompletedAt,
			DeliverablePath: ph.DeliverablePath,
		})
	}

	return e.store.WriteManifest(run.job.ProjectName, manifest)
}

// modelFor resolves a provider registry name to its configured model for
// event payloads.
func (e *Engine) modelFor(providerName string) string {
	cfg, err := e.providers.Get(providerName)
	if err != nil {
		return ""
	}
	return cfg.Model
}

// logEvent appends one record to the job's processing.log.jsonl.
func (e *Engine) logEvent(run *jobRun, event string, fields map[string]interface{}) {
	record := map[string]interface{}{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"event":     event,
		"job_id":    run.job.ID,
	}
	for k, v := range fields {
		record[k] = v
	}
	if err := e.store.AppendJobLog(run.job.ProjectName, record); err != nil {
		e.logger.Warn("Failed to append job log", "job_id", run.job.ID, "error", err)
	}
}
