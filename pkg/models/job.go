// Package models contains request/response models and business domain types.
package models

import (
	"time"

	"github.com/cardigan-project/cardigan/ent"
)

// CreateJobRequest contains fields for submitting a transcript job.
type CreateJobRequest struct {
	TranscriptFile string  `json:"transcript_file"`
	ProjectName    string  `json:"project_name,omitempty"`
	ProjectPath    string  `json:"project_path,omitempty"`
	Priority       *int    `json:"priority,omitempty"`
	MaxRetries     *int    `json:"max_retries,omitempty"`
	EstimatedCost  float64 `json:"estimated_cost,omitempty"`
	MediaID        string  `json:"media_id,omitempty"`
	SstRecordID    string  `json:"sst_record_id,omitempty"`

	// Force bypasses the duplicate-transcript guard.
	Force bool `json:"force,omitempty"`

	// Phases overrides the default phase sequence.
	Phases []string `json:"phases,omitempty"`
}

// JobFilters contains filtering and pagination options for listing jobs.
type JobFilters struct {
	Status         string `form:"status"`
	TranscriptFile string `form:"transcript_file"`
	MediaID        string `form:"media_id"`
	WorkerID       string `form:"worker_id"`
	Limit          int    `form:"limit"`
	Offset         int    `form:"offset"`
	SortBy         string `form:"sort_by"`    // "queued_at", "priority", "completed_at"
	SortOrder      string `form:"sort_order"` // "asc", "desc"
}

// JobListResponse contains a page of jobs.
type JobListResponse struct {
	Jobs       []*ent.Job `json:"jobs"`
	TotalCount int        `json:"total_count"`
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
}

// JobDetailResponse contains a job with its phases and recent events.
type JobDetailResponse struct {
	Job          *ent.Job            `json:"job"`
	RecentEvents []*ent.SessionEvent `json:"recent_events,omitempty"`
}

// PhasePatch is a partial update to a phase record. Nil fields are left
// unchanged.
type PhasePatch struct {
	Status          *string    `json:"status,omitempty"`
	TierIndex       *int       `json:"tier_index,omitempty"`
	TierLabel       *string    `json:"tier_label,omitempty"`
	Model           *string    `json:"model,omitempty"`
	TierReason      *string    `json:"tier_reason,omitempty"`
	Attempts        *int       `json:"attempts,omitempty"`
	Cost            *float64   `json:"cost,omitempty"`
	InputTokens     *int       `json:"input_tokens,omitempty"`
	OutputTokens    *int       `json:"output_tokens,omitempty"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	DeliverablePath *string    `json:"deliverable_path,omitempty"`
	ErrorMessage    *string    `json:"error_message,omitempty"`
}

// BulkDeleteRequest names the statuses whose jobs should be deleted.
type BulkDeleteRequest struct {
	Statuses []string `json:"statuses"`
}

// BulkDeleteResponse reports how many jobs were removed.
type BulkDeleteResponse struct {
	Deleted int `json:"deleted"`
}

// UpdateJobRequest contains mutable job fields for PATCH.
type UpdateJobRequest struct {
	Priority *int `json:"priority,omitempty"`
}

// RevisionRequest submits a new versioned artifact for a completed job.
type RevisionRequest struct {
	Kind    string `json:"kind"` // "copy_revision" or "keyword_report"
	Content string `json:"content"`
}

// RevisionResponse reports the written artifact.
type RevisionResponse struct {
	Path    string `json:"path"`
	Version int    `json:"version"`
}
