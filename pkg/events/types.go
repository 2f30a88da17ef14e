// Package events provides the append-only job event stream: events are
// persisted to the database and broadcast best-effort to in-process
// subscribers and WebSocket clients. Delivery to subscribers is lossy; the
// database is the source of truth and clients catch up from it.
package events

import (
	"fmt"
	"time"
)

// Persistent event types. Every published event is appended to the
// session_events table before broadcast.
const (
	// Job lifecycle
	EventTypeJobQueued    = "job_queued"
	EventTypeJobStarted   = "job_started"
	EventTypeJobCompleted = "job_completed"
	EventTypeJobFailed    = "job_failed"
	EventTypeJobCancelled = "job_cancelled"

	// Phase lifecycle
	EventTypePhaseStarted   = "phase_started"
	EventTypePhaseCompleted = "phase_completed"
	EventTypePhaseFailed    = "phase_failed"

	// Cost and model routing
	EventTypeCostUpdate    = "cost_update"
	EventTypeModelSelected = "model_selected"
	EventTypeModelFallback = "model_fallback"

	// System-wide
	EventTypeSystemPause  = "system_pause"
	EventTypeSystemResume = "system_resume"
	EventTypeSystemError  = "system_error"

	// Operator actions recorded for the audit trail
	EventTypeUserAction = "user_action"
)

// GlobalChannel carries every event. The dashboard's job list subscribes
// here for live updates across all jobs.
const GlobalChannel = "jobs"

// JobChannel returns the channel name for a single job's events.
// Format: "job:{job_id}"
func JobChannel(jobID int) string {
	return fmt.Sprintf("job:%d", jobID)
}

// Envelope is the wire form of a broadcast event. EventID is the database
// row ID, which clients use as a catchup cursor.
type Envelope struct {
	EventID   int                    `json:"event_id"`
	Type      string                 `json:"type"`
	JobID     *int                   `json:"job_id,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// ClientMessage is the JSON structure for client to server WebSocket
// messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // e.g. "job:42" or "jobs"
	LastEventID *int   `json:"last_event_id,omitempty"` // for catchup
}
