// Code generated by ent, DO NOT EDIT.

package jobphase

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the jobphase type in the database.
	Label = "job_phase"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPhaseIndex holds the string denoting the phase_index field in the database.
	FieldPhaseIndex = "phase_index"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTierIndex holds the string denoting the tier_index field in the database.
	FieldTierIndex = "tier_index"
	// FieldTierLabel holds the string denoting the tier_label field in the database.
	FieldTierLabel = "tier_label"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldTierReason holds the string denoting the tier_reason field in the database.
	FieldTierReason = "tier_reason"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldCost holds the string denoting the cost field in the database.
	FieldCost = "cost"
	// FieldInputTokens holds the string denoting the input_tokens field in the database.
	FieldInputTokens = "input_tokens"
	// FieldOutputTokens holds the string denoting the output_tokens field in the database.
	FieldOutputTokens = "output_tokens"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldDeliverablePath holds the string denoting the deliverable_path field in the database.
	FieldDeliverablePath = "deliverable_path"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// Table holds the table name of the jobphase in the database.
	Table = "job_phases"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "job_phases"
	// JobInverseTable is the table name for the Job entity.
	// It exists in this package in order to avoid circular dependency with the "job" package.
	JobInverseTable = "jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
)

// Columns holds all SQL columns for jobphase fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldName,
	FieldPhaseIndex,
	FieldStatus,
	FieldTierIndex,
	FieldTierLabel,
	FieldModel,
	FieldTierReason,
	FieldAttempts,
	FieldCost,
	FieldInputTokens,
	FieldOutputTokens,
	FieldStartedAt,
	FieldCompletedAt,
	FieldDeliverablePath,
	FieldErrorMessage,
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
	// DefaultTierIndex holds the default value on creation for the "tier_index" field.
	DefaultTierIndex int
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultCost holds the default value on creation for the "cost" field.
	DefaultCost float64
	// DefaultInputTokens holds the default value on creation for the "input_tokens" field.
	DefaultInputTokens int
	// DefaultOutputTokens holds the default value on creation for the "output_tokens" field.
	DefaultOutputTokens int
)

// Name defines the type for the "name" enum field.
type Name string

// Name values.
const (
	NameAnalyst       Name = "analyst"
	NameFormatter     Name = "formatter"
	NameSeo           Name = "seo"
	NameManager       Name = "manager"
	NameTimestamp     Name = "timestamp"
	NameInvestigation Name = "investigation"
	NameCopyEditor    Name = "copy_editor"
)

func (n Name) String() string {
	return string(n)
}

// NameValidator is a validator for the "name" field enum values. It is called by the builders before save.
func NameValidator(n Name) error {
	switch n {
	case NameAnalyst, NameFormatter, NameSeo, NameManager, NameTimestamp, NameInvestigation, NameCopyEditor:
		return nil
	default:
		return fmt.Errorf("jobphase: invalid enum value for name field: %q", n)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusSkipped    Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusFailed, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("jobphase: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the JobPhase queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPhaseIndex orders the results by the phase_index field.
func ByPhaseIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhaseIndex, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTierIndex orders the results by the tier_index field.
func ByTierIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTierIndex, opts...).ToFunc()
}

// ByTierLabel orders the results by the tier_label field.
func ByTierLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTierLabel, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByTierReason orders the results by the tier_reason field.
func ByTierReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTierReason, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByCost orders the results by the cost field.
func ByCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCost, opts...).ToFunc()
}

// ByInputTokens orders the results by the input_tokens field.
func ByInputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputTokens, opts...).ToFunc()
}

// ByOutputTokens orders the results by the output_tokens field.
func ByOutputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputTokens, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByDeliverablePath orders the results by the deliverable_path field.
func ByDeliverablePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliverablePath, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
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
