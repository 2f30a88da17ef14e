// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "session_events"
	// JobInverseTable is the table name for the Job entity.
	// It exists in this package in order to avoid circular dependency with the "job" package.
	JobInverseTable = "jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldTimestamp,
	FieldEventType,
	FieldData,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
)

// EventType defines the type for the "event_type" enum field.
type EventType string

// EventType values.
const (
	EventTypeJobQueued      EventType = "job_queued"
	EventTypeJobStarted     EventType = "job_started"
	EventTypeJobCompleted   EventType = "job_completed"
	EventTypeJobFailed      EventType = "job_failed"
	EventTypeJobCancelled   EventType = "job_cancelled"
	EventTypePhaseStarted   EventType = "phase_started"
	EventTypePhaseCompleted EventType = "phase_completed"
	EventTypePhaseFailed    EventType = "phase_failed"
	EventTypeCostUpdate     EventType = "cost_update"
	EventTypeModelSelected  EventType = "model_selected"
	EventTypeModelFallback  EventType = "model_fallback"
	EventTypeSystemPause    EventType = "system_pause"
	EventTypeSystemResume   EventType = "system_resume"
	EventTypeSystemError    EventType = "system_error"
	EventTypeUserAction     EventType = "user_action"
)

func (et EventType) String() string {
	return string(et)
}

// EventTypeValidator is a validator for the "event_type" field enum values. It is called by the builders before save.
func EventTypeValidator(et EventType) error {
	switch et {
	case EventTypeJobQueued, EventTypeJobStarted, EventTypeJobCompleted, EventTypeJobFailed, EventTypeJobCancelled, EventTypePhaseStarted, EventTypePhaseCompleted, EventTypePhaseFailed, EventTypeCostUpdate, EventTypeModelSelected, EventTypeModelFallback, EventTypeSystemPause, EventTypeSystemResume, EventTypeSystemError, EventTypeUserAction:
		return nil
	default:
		return fmt.Errorf("sessionevent: invalid enum value for event_type field: %q", et)
	}
}

// OrderOption defines the ordering options for the SessionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
