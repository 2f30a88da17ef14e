package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cardigan-project/cardigan/ent"
	"github.com/cardigan-project/cardigan/ent/job"
	"github.com/cardigan-project/cardigan/ent/jobphase"
	"github.com/cardigan-project/cardigan/pkg/config"
	"github.com/cardigan-project/cardigan/pkg/models"
	"github.com/cardigan-project/cardigan/pkg/transcript"
)

// allowedTransitions is the job status transition graph. completed and
// cancelled are terminal.
var allowedTransitions = map[job.Status][]job.Status{
	job.StatusPending:       {job.StatusInProgress, job.StatusCancelled, job.StatusPaused},
	job.StatusInProgress:    {job.StatusCompleted, job.StatusFailed, job.StatusPaused, job.StatusCancelled, job.StatusInvestigating},
	job.StatusInvestigating: {job.StatusInProgress, job.StatusFailed},
	job.StatusPaused:        {job.StatusPending, job.StatusCancelled},
	job.StatusFailed:        {job.StatusPending},
}

// CanTransition reports whether a status change is inside the allowed graph.
func CanTransition(from, to job.Status) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// activeStatuses are the statuses that make a transcript "already queued"
// for the duplicate guard.
var activeStatuses = []job.Status{
	job.StatusPending,
	job.StatusInProgress,
	job.StatusInvestigating,
	job.StatusPaused,
}

// JobService manages job lifecycle and the atomic queue primitives.
type JobService struct {
	client   *ent.Client
	defaults *config.Defaults
}

// NewJobService creates a new JobService.
func NewJobService(client *ent.Client, defaults *config.Defaults) *JobService {
	if defaults == nil {
		defaults = config.DefaultDefaults()
	}
	return &JobService{client: client, defaults: defaults}
}

// CreateJob creates a pending job with its phase list initialized. Fails
// with ErrDuplicateTranscript when an active job already exists for the
// same transcript file, unless req.Force is set.
func (s *JobService) CreateJob(httpCtx context.Context, req models.CreateJobRequest) (*ent.Job, error) {
	if req.TranscriptFile == "" {
		return nil, NewValidationError("transcript_file", "required")
	}

	phases := req.Phases
	if len(phases) == 0 {
		phases = s.defaults.Phases
	}
	for _, p := range phases {
		if err := jobphase.NameValidator(jobphase.Name(p)); err != nil {
			return nil, NewValidationError("phases", fmt.Sprintf("unknown phase %q", p))
		}
	}

	projectName := req.ProjectName
	if projectName == "" {
		projectName = transcript.ProjectName(req.TranscriptFile)
	}
	priority := s.defaults.Priority
	if req.Priority != nil {
		priority = *req.Priority
	}
	maxRetries := s.defaults.MaxRetries
	if req.MaxRetries != nil {
		if *req.MaxRetries < 0 {
			return nil, NewValidationError("max_retries", "must not be negative")
		}
		maxRetries = *req.MaxRetries
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if !req.Force {
		existing, err := tx.Job.Query().
			Where(
				job.TranscriptFileEQ(req.TranscriptFile),
				job.StatusIn(activeStatuses...),
			).
			Order(ent.Desc(job.FieldID)).
			First(ctx)
		switch {
		case err == nil:
			return nil, &DuplicateTranscriptError{
				TranscriptFile: req.TranscriptFile,
				ExistingJobID:  existing.ID,
			}
		case !ent.IsNotFound(err):
			return nil, fmt.Errorf("failed to check for duplicate transcript: %w", err)
		}
	}

	projectPath := req.ProjectPath
	if projectPath == "" {
		projectPath = projectName
	}

	builder := tx.Job.Create().
		SetTranscriptFile(req.TranscriptFile).
		SetProjectName(projectName).
		SetProjectPath(projectPath).
		SetStatus(job.StatusPending).
		SetPriority(priority).
		SetMaxRetries(maxRetries).
		SetQueuedAt(time.Now().UTC())
	if req.EstimatedCost > 0 {
		builder.SetEstimatedCost(req.EstimatedCost)
	}
	if req.MediaID != "" {
		builder.SetMediaID(req.MediaID)
	} else if id := transcript.ExtractMediaID(req.TranscriptFile); id != "" {
		builder.SetMediaID(id)
	}
	if req.SstRecordID != "" {
		builder.SetSstRecordID(req.SstRecordID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	for i, name := range phases {
		_, err := tx.JobPhase.Create().
			SetJobID(created.ID).
			SetName(jobphase.Name(name)).
			SetPhaseIndex(i).
			SetStatus(jobphase.StatusPending).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create phase %s: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return created, nil
}

// GetJob retrieves a job by ID, optionally with its phases loaded in
// execution order.
func (s *JobService) GetJob(ctx context.Context, id int, withPhases bool) (*ent.Job, error) {
	query := s.client.Job.Query().Where(job.IDEQ(id))

	if withPhases {
		query = query.WithPhases(func(q *ent.JobPhaseQuery) {
			q.Order(ent.Asc(jobphase.FieldPhaseIndex))
		})
	}

	j, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return j, nil
}

// GetPhases returns a job's phases in execution order.
func (s *JobService) GetPhases(ctx context.Context, jobID int) ([]*ent.JobPhase, error) {
	phases, err := s.client.JobPhase.Query().
		Where(jobphase.JobIDEQ(jobID)).
		Order(ent.Asc(jobphase.FieldPhaseIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get phases: %w", err)
	}
	return phases, nil
}

// ListJobs lists jobs with filtering and pagination.
func (s *JobService) ListJobs(ctx context.Context, filters models.JobFilters) (*models.JobListResponse, error) {
	query := s.client.Job.Query()

	if filters.Status != "" {
		if err := job.StatusValidator(job.Status(filters.Status)); err != nil {
			return nil, NewValidationError("status", "unknown status")
		}
		query = query.Where(job.StatusEQ(job.Status(filters.Status)))
	}
	if filters.TranscriptFile != "" {
		query = query.Where(job.TranscriptFileContainsFold(filters.TranscriptFile))
	}
	if filters.MediaID != "" {
		query = query.Where(job.MediaIDEQ(filters.MediaID))
	}
	if filters.WorkerID != "" {
		query = query.Where(job.WorkerIDEQ(filters.WorkerID))
	}

	totalCount, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	sortField := job.FieldQueuedAt
	switch filters.SortBy {
	case "", "queued_at":
	case "priority":
		sortField = job.FieldPriority
	case "completed_at":
		sortField = job.FieldCompletedAt
	default:
		return nil, NewValidationError("sort_by", "unknown sort field")
	}

	order := ent.Desc(sortField)
	if filters.SortOrder == "asc" {
		order = ent.Asc(sortField)
	}

	jobs, err := query.
		Limit(limit).
		Offset(offset).
		Order(order).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return &models.JobListResponse{
		Jobs:       jobs,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// ClaimNextPendingJob atomically claims the highest-priority, oldest
// pending job for a worker. Returns (nil, nil) when the queue is empty or
// the candidate was claimed by another worker first; callers retry on the
// next poll.
func (s *JobService) ClaimNextPendingJob(ctx context.Context, workerID string) (*ent.Job, error) {
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	candidate, err := tx.Job.Query().
		Where(job.StatusEQ(job.StatusPending)).
		Order(ent.Desc(job.FieldPriority), ent.Asc(job.FieldQueuedAt)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query pending job: %w", err)
	}

	now := time.Now().UTC()

	// Conditional update: the claim succeeds only if the row is still
	// pending. No read-then-update window.
	count, err := tx.Job.Update().
		Where(
			job.IDEQ(candidate.ID),
			job.StatusEQ(job.StatusPending),
		).
		SetStatus(job.StatusInProgress).
		SetWorkerID(workerID).
		SetStartedAt(now).
		SetLastHeartbeat(now).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}
	if count == 0 {
		// Another worker won the race.
		return nil, nil
	}

	claimed, err := tx.Job.Query().
		Where(job.IDEQ(candidate.ID)).
		WithPhases(func(q *ent.JobPhaseQuery) {
			q.Order(ent.Asc(jobphase.FieldPhaseIndex))
		}).
		Only(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch claimed job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return claimed, nil
}

// UpdateHeartbeat refreshes last_heartbeat, but only while the job is
// still in_progress. Returns false when the job moved to another status
// (or disappeared) in the meantime.
func (s *JobService) UpdateHeartbeat(ctx context.Context, jobID int) (bool, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StatusEQ(job.StatusInProgress),
		).
		SetLastHeartbeat(time.Now().UTC()).
		Save(writeCtx)
	if err != nil {
		return false, fmt.Errorf("failed to update heartbeat: %w", err)
	}

	return count > 0, nil
}

// GetStaleJobs finds in_progress jobs whose heartbeat is older than the
// threshold.
func (s *JobService) GetStaleJobs(ctx context.Context, threshold time.Duration) ([]*ent.Job, error) {
	cutoff := time.Now().UTC().Add(-threshold)

	jobs, err := s.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusInProgress),
			job.LastHeartbeatNotNil(),
			job.LastHeartbeatLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find stale jobs: %w", err)
	}

	return jobs, nil
}

// ResetStuckJobs handles every stale job: under the retry ceiling the job
// goes back to pending with retry_count incremented; over it the job is
// failed. Returns the reset and failed job lists for event emission.
func (s *JobService) ResetStuckJobs(ctx context.Context, threshold time.Duration) (reset, failed []*ent.Job, err error) {
	stale, err := s.GetStaleJobs(ctx, threshold)
	if err != nil {
		return nil, nil, err
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, j := range stale {
		if j.RetryCount < j.MaxRetries {
			updated, uerr := s.client.Job.UpdateOneID(j.ID).
				SetStatus(job.StatusPending).
				SetRetryCount(j.RetryCount + 1).
				ClearStartedAt().
				ClearLastHeartbeat().
				ClearWorkerID().
				Save(writeCtx)
			if uerr != nil {
				return reset, failed, fmt.Errorf("failed to reset stuck job %d: %w", j.ID, uerr)
			}
			reset = append(reset, updated)
		} else {
			updated, uerr := s.client.Job.UpdateOneID(j.ID).
				SetStatus(job.StatusFailed).
				SetRetryCount(j.RetryCount + 1).
				SetErrorMessage("watchdog exceeded retries").
				SetErrorTimestamp(time.Now().UTC()).
				SetCompletedAt(time.Now().UTC()).
				Save(writeCtx)
			if uerr != nil {
				return reset, failed, fmt.Errorf("failed to fail stuck job %d: %w", j.ID, uerr)
			}
			failed = append(failed, updated)
		}
	}

	return reset, failed, nil
}

// transition validates the status change against the allowed graph and
// applies it with a conditional update so a concurrent writer cannot
// slip in between.
func (s *JobService) transition(ctx context.Context, jobID int, to job.Status, apply func(*ent.JobUpdate)) (*ent.Job, error) {
	current, err := s.GetJob(ctx, jobID, false)
	if err != nil {
		return nil, err
	}
	if !CanTransition(current.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, to)
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StatusEQ(current.Status),
		).
		SetStatus(to)
	if apply != nil {
		apply(update)
	}

	count, err := update.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to update job status: %w", err)
	}
	if count == 0 {
		return nil, ErrConcurrentModification
	}

	return s.GetJob(ctx, jobID, false)
}

// MarkCompleted finishes a job after its final phase, recording the total
// spend.
func (s *JobService) MarkCompleted(ctx context.Context, jobID int, actualCost float64) (*ent.Job, error) {
	return s.transition(ctx, jobID, job.StatusCompleted, func(u *ent.JobUpdate) {
		u.SetCompletedAt(time.Now().UTC()).
			SetActualCost(actualCost)
	})
}

// MarkFailed records a terminal failure with its error message. The spend
// already sitting on the job's phases is settled into actual_cost.
func (s *JobService) MarkFailed(ctx context.Context, jobID int, errorMessage string) (*ent.Job, error) {
	spend, spendErr := s.phaseSpend(ctx, jobID)
	return s.transition(ctx, jobID, job.StatusFailed, func(u *ent.JobUpdate) {
		now := time.Now().UTC()
		u.SetErrorMessage(errorMessage).
			SetErrorTimestamp(now).
			SetCompletedAt(now)
		if spendErr == nil {
			u.SetActualCost(spend)
		}
	})
}

// MarkInvestigating moves an in_progress job into recovery analysis.
func (s *JobService) MarkInvestigating(ctx context.Context, jobID int) (*ent.Job, error) {
	return s.transition(ctx, jobID, job.StatusInvestigating, nil)
}

// ResumeFromInvestigation returns a job to in_progress after a recovery
// decision that continues the pipeline.
func (s *JobService) ResumeFromInvestigation(ctx context.Context, jobID int) (*ent.Job, error) {
	return s.transition(ctx, jobID, job.StatusInProgress, nil)
}

// Pause suspends a pending or in_progress job. An in_progress job keeps
// running until its current phase finishes; the worker observes the pause
// before starting the next phase.
func (s *JobService) Pause(ctx context.Context, jobID int) (*ent.Job, error) {
	return s.transition(ctx, jobID, job.StatusPaused, nil)
}

// Resume returns a paused job to the queue.
func (s *JobService) Resume(ctx context.Context, jobID int) (*ent.Job, error) {
	return s.transition(ctx, jobID, job.StatusPending, func(u *ent.JobUpdate) {
		u.ClearStartedAt().
			ClearLastHeartbeat().
			ClearWorkerID()
	})
}

// Cancel marks a job cancelled. Valid from pending, paused, or
// in_progress; for a running job the worker's cancel signal is raised
// separately by the pool.
func (s *JobService) Cancel(ctx context.Context, jobID int) (*ent.Job, error) {
	spend, spendErr := s.phaseSpend(ctx, jobID)
	return s.transition(ctx, jobID, job.StatusCancelled, func(u *ent.JobUpdate) {
		u.SetCompletedAt(time.Now().UTC())
		if spendErr == nil {
			u.SetActualCost(spend)
		}
	})
}

// phaseSpend totals the cost recorded across a job's phases. Terminal
// writes outside the completed path use it so a failed or cancelled job
// still reports what it consumed.
func (s *JobService) phaseSpend(ctx context.Context, jobID int) (float64, error) {
	phases, err := s.GetPhases(ctx, jobID)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, ph := range phases {
		total += ph.Cost
	}
	return total, nil
}

// Retry requeues a failed job and resets its phases so the pipeline runs
// from the top. Accumulated cost is preserved for accounting.
func (s *JobService) Retry(ctx context.Context, jobID int) (*ent.Job, error) {
	updated, err := s.transition(ctx, jobID, job.StatusPending, func(u *ent.JobUpdate) {
		u.SetRetryCount(0).
			ClearStartedAt().
			ClearCompletedAt().
			ClearLastHeartbeat().
			ClearWorkerID().
			ClearErrorMessage().
			ClearErrorTimestamp().
			SetCurrentPhaseIndex(0)
	})
	if err != nil {
		return nil, err
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = s.client.JobPhase.Update().
		Where(jobphase.JobIDEQ(jobID)).
		SetStatus(jobphase.StatusPending).
		ClearStartedAt().
		ClearCompletedAt().
		ClearErrorMessage().
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to reset phases: %w", err)
	}

	return updated, nil
}

// UpdatePriority changes a job's queue priority. Terminal jobs are
// rejected.
func (s *JobService) UpdatePriority(ctx context.Context, jobID int, priority int) (*ent.Job, error) {
	current, err := s.GetJob(ctx, jobID, false)
	if err != nil {
		return nil, err
	}
	if current.Status == job.StatusCompleted || current.Status == job.StatusCancelled {
		return nil, fmt.Errorf("%w: cannot reprioritize %s job", ErrInvalidTransition, current.Status)
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	updated, err := s.client.Job.UpdateOneID(jobID).
		SetPriority(priority).
		Save(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update priority: %w", err)
	}

	return updated, nil
}

// SetCurrentPhaseIndex records pipeline progress on the job row.
func (s *JobService) SetCurrentPhaseIndex(ctx context.Context, jobID int, index int) error {
	err := s.client.Job.UpdateOneID(jobID).
		SetCurrentPhaseIndex(index).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set current phase index: %w", err)
	}
	return nil
}

// IncrementRecoveryAttempts bumps the per-job recovery budget counter and
// returns the new value.
func (s *JobService) IncrementRecoveryAttempts(ctx context.Context, jobID int) (int, error) {
	updated, err := s.client.Job.UpdateOneID(jobID).
		AddRecoveryAttempts(1).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to increment recovery attempts: %w", err)
	}
	return updated.RecoveryAttempts, nil
}

// UpdatePhase applies a partial update to one phase record.
func (s *JobService) UpdatePhase(ctx context.Context, jobID, phaseIndex int, patch models.PhasePatch) (*ent.JobPhase, error) {
	phase, err := s.client.JobPhase.Query().
		Where(
			jobphase.JobIDEQ(jobID),
			jobphase.PhaseIndexEQ(phaseIndex),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get phase: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := phase.Update()
	if patch.Status != nil {
		if err := jobphase.StatusValidator(jobphase.Status(*patch.Status)); err != nil {
			return nil, NewValidationError("status", "unknown phase status")
		}
		update.SetStatus(jobphase.Status(*patch.Status))
	}
	if patch.TierIndex != nil {
		update.SetTierIndex(*patch.TierIndex)
	}
	if patch.TierLabel != nil {
		update.SetTierLabel(*patch.TierLabel)
	}
	if patch.Model != nil {
		update.SetModel(*patch.Model)
	}
	if patch.TierReason != nil {
		update.SetTierReason(*patch.TierReason)
	}
	if patch.Attempts != nil {
		update.SetAttempts(*patch.Attempts)
	}
	if patch.Cost != nil {
		update.SetCost(*patch.Cost)
	}
	if patch.InputTokens != nil {
		update.SetInputTokens(*patch.InputTokens)
	}
	if patch.OutputTokens != nil {
		update.SetOutputTokens(*patch.OutputTokens)
	}
	if patch.StartedAt != nil {
		update.SetStartedAt(*patch.StartedAt)
	}
	if patch.CompletedAt != nil {
		update.SetCompletedAt(*patch.CompletedAt)
	}
	if patch.DeliverablePath != nil {
		update.SetDeliverablePath(*patch.DeliverablePath)
	}
	if patch.ErrorMessage != nil {
		update.SetErrorMessage(*patch.ErrorMessage)
	}

	updated, err := update.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to update phase: %w", err)
	}

	return updated, nil
}

// BulkDelete removes jobs whose status is in the given set. Only failed
// and cancelled jobs may be deleted; anything else in the set is rejected.
func (s *JobService) BulkDelete(ctx context.Context, statuses []string) (int, error) {
	if len(statuses) == 0 {
		return 0, NewValidationError("statuses", "required")
	}

	deletable := make([]job.Status, 0, len(statuses))
	for _, raw := range statuses {
		st := job.Status(raw)
		if st != job.StatusFailed && st != job.StatusCancelled {
			return 0, NewValidationError("statuses", fmt.Sprintf("status %q is not deletable", raw))
		}
		deletable = append(deletable, st)
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Phase and event rows go with the job via FK cascade.
	count, err := s.client.Job.Delete().
		Where(job.StatusIn(deletable...)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk delete jobs: %w", err)
	}

	return count, nil
}

// PruneTerminalJobs deletes completed, failed, and cancelled jobs that
// finished before the retention window. Phases and events go with the job
// via FK cascade; artifacts on disk are left alone.
func (s *JobService) PruneTerminalJobs(ctx context.Context, olderThan time.Duration) (int, error) {
	if olderThan <= 0 {
		return 0, nil
	}

	cutoff := time.Now().UTC().Add(-olderThan)
	count, err := s.client.Job.Delete().
		Where(
			job.StatusIn(job.StatusCompleted, job.StatusFailed, job.StatusCancelled),
			job.CompletedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune terminal jobs: %w", err)
	}
	return count, nil
}

// QueueStats aggregates job counts by status plus lifetime cost and token
// totals across all phases.
type QueueStats struct {
	StatusCounts map[string]int `json:"status_counts"`
	TotalCost    float64        `json:"total_cost"`
	InputTokens  int            `json:"input_tokens"`
	OutputTokens int            `json:"output_tokens"`
}

// QueueStats computes the current queue and cost totals. Computed on demand;
// nothing here is cached.
func (s *JobService) QueueStats(ctx context.Context) (*QueueStats, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	if err := s.client.Job.Query().
		GroupBy(job.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to count jobs by status: %w", err)
	}

	stats := &QueueStats{StatusCounts: make(map[string]int, len(rows))}
	for _, row := range rows {
		stats.StatusCounts[row.Status] = row.Count
	}

	// SUM over an empty table is NULL; skip the aggregate when there is
	// nothing to sum.
	phases, err := s.client.JobPhase.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count phases: %w", err)
	}
	if phases == 0 {
		return stats, nil
	}

	var agg []struct {
		Cost         float64 `json:"sum_cost"`
		InputTokens  int     `json:"sum_input_tokens"`
		OutputTokens int     `json:"sum_output_tokens"`
	}
	if err := s.client.JobPhase.Query().
		Aggregate(
			ent.As(ent.Sum(jobphase.FieldCost), "sum_cost"),
			ent.As(ent.Sum(jobphase.FieldInputTokens), "sum_input_tokens"),
			ent.As(ent.Sum(jobphase.FieldOutputTokens), "sum_output_tokens"),
		).
		Scan(ctx, &agg); err != nil {
		return nil, fmt.Errorf("failed to aggregate phase totals: %w", err)
	}
	if len(agg) == 1 {
		stats.TotalCost = agg[0].Cost
		stats.InputTokens = agg[0].InputTokens
		stats.OutputTokens = agg[0].OutputTokens
	}
	return stats, nil
}
