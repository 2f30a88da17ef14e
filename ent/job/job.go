// Code generated by ent, DO NOT EDIT.

package job

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the job type in the database.
	Label = "job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTranscriptFile holds the string denoting the transcript_file field in the database.
	FieldTranscriptFile = "transcript_file"
	// FieldProjectName holds the string denoting the project_name field in the database.
	FieldProjectName = "project_name"
	// FieldProjectPath holds the string denoting the project_path field in the database.
	FieldProjectPath = "project_path"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldMaxRetries holds the string denoting the max_retries field in the database.
	FieldMaxRetries = "max_retries"
	// FieldQueuedAt holds the string denoting the queued_at field in the database.
	FieldQueuedAt = "queued_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldLastHeartbeat holds the string denoting the last_heartbeat field in the database.
	FieldLastHeartbeat = "last_heartbeat"
	// FieldWorkerID holds the string denoting the worker_id field in the database.
	FieldWorkerID = "worker_id"
	// FieldEstimatedCost holds the string denoting the estimated_cost field in the database.
	FieldEstimatedCost = "estimated_cost"
	// FieldActualCost holds the string denoting the actual_cost field in the database.
	FieldActualCost = "actual_cost"
	// FieldCurrentPhaseIndex holds the string denoting the current_phase_index field in the database.
	FieldCurrentPhaseIndex = "current_phase_index"
	// FieldRecoveryAttempts holds the string denoting the recovery_attempts field in the database.
	FieldRecoveryAttempts = "recovery_attempts"
	// FieldMediaID holds the string denoting the media_id field in the database.
	FieldMediaID = "media_id"
	// FieldSstRecordID holds the string denoting the sst_record_id field in the database.
	FieldSstRecordID = "sst_record_id"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldErrorTimestamp holds the string denoting the error_timestamp field in the database.
	FieldErrorTimestamp = "error_timestamp"
	// EdgePhases holds the string denoting the phases edge name in mutations.
	EdgePhases = "phases"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// Table holds the table name of the job in the database.
	Table = "jobs"
	// PhasesTable is the table that holds the phases relation/edge.
	PhasesTable = "job_phases"
	// PhasesInverseTable is the table name for the JobPhase entity.
	// It exists in this package in order to avoid circular dependency with the "jobphase" package.
	PhasesInverseTable = "job_phases"
	// PhasesColumn is the table column denoting the phases relation/edge.
	PhasesColumn = "job_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "session_events"
	// EventsInverseTable is the table name for the SessionEvent entity.
	// It exists in this package in order to avoid circular dependency with the "sessionevent" package.
	EventsInverseTable = "session_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "job_id"
)

// Columns holds all SQL columns for job fields.
var Columns = []string{
	FieldID,
	FieldTranscriptFile,
	FieldProjectName,
	FieldProjectPath,
	FieldStatus,
	FieldPriority,
	FieldRetryCount,
	FieldMaxRetries,
	FieldQueuedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldLastHeartbeat,
	FieldWorkerID,
	FieldEstimatedCost,
	FieldActualCost,
	FieldCurrentPhaseIndex,
	FieldRecoveryAttempts,
	FieldMediaID,
	FieldSstRecordID,
	FieldErrorMessage,
	FieldErrorTimestamp,
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
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultMaxRetries holds the default value on creation for the "max_retries" field.
	DefaultMaxRetries int
	// DefaultQueuedAt holds the default value on creation for the "queued_at" field.
	DefaultQueuedAt func() time.Time
	// DefaultEstimatedCost holds the default value on creation for the "estimated_cost" field.
	DefaultEstimatedCost float64
	// DefaultActualCost holds the default value on creation for the "actual_cost" field.
	DefaultActualCost float64
	// DefaultCurrentPhaseIndex holds the default value on creation for the "current_phase_index" field.
	DefaultCurrentPhaseIndex int
	// DefaultRecoveryAttempts holds the default value on creation for the "recovery_attempts" field.
	DefaultRecoveryAttempts int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending       Status = "pending"
	StatusInProgress    Status = "in_progress"
	StatusInvestigating Status = "investigating"
	StatusCompleted     Status = "completed"
	StatusFailed        Status = "failed"
	StatusCancelled     Status = "cancelled"
	StatusPaused        Status = "paused"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusInvestigating, StatusCompleted, StatusFailed, StatusCancelled, StatusPaused:
		return nil
	default:
		return fmt.Errorf("job: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Job queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTranscriptFile orders the results by the transcript_file field.
func ByTranscriptFile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscriptFile, opts...).ToFunc()
}

// ByProjectName orders the results by the project_name field.
func ByProjectName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectName, opts...).ToFunc()
}

// ByProjectPath orders the results by the project_path field.
func ByProjectPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectPath, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByMaxRetries orders the results by the max_retries field.
func ByMaxRetries(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxRetries, opts...).ToFunc()
}

// ByQueuedAt orders the results by the queued_at field.
func ByQueuedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueuedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByLastHeartbeat orders the results by the last_heartbeat field.
func ByLastHeartbeat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeat, opts...).ToFunc()
}

// ByWorkerID orders the results by the worker_id field.
func ByWorkerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkerID, opts...).ToFunc()
}

// ByEstimatedCost orders the results by the estimated_cost field.
func ByEstimatedCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedCost, opts...).ToFunc()
}

// ByActualCost orders the results by the actual_cost field.
func ByActualCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActualCost, opts...).ToFunc()
}

// ByCurrentPhaseIndex orders the results by the current_phase_index field.
func ByCurrentPhaseIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentPhaseIndex, opts...).ToFunc()
}

// ByRecoveryAttempts orders the results by the recovery_attempts field.
func ByRecoveryAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecoveryAttempts, opts...).ToFunc()
}

// ByMediaID orders the results by the media_id field.
func ByMediaID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMediaID, opts...).ToFunc()
}

// BySstRecordID orders the results by the sst_record_id field.
func BySstRecordID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSstRecordID, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByErrorTimestamp orders the results by the error_timestamp field.
func ByErrorTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorTimestamp, opts...).ToFunc()
}

// ByPhasesCount orders the results by phases count.
func ByPhasesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPhasesStep(), opts...)
	}
}

// ByPhases orders the results by phases terms.
func ByPhases(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPhasesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPhasesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PhasesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PhasesTable, PhasesColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
