// Code generated by ent, DO NOT EDIT.

package job

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cardigan-project/cardigan/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldID, id))
}

// TranscriptFile applies equality check predicate on the "transcript_file" field. It's identical to TranscriptFileEQ.
func TranscriptFile(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTranscriptFile, v))
}

// ProjectName applies equality check predicate on the "project_name" field. It's identical to ProjectNameEQ.
func ProjectName(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldProjectName, v))
}

// ProjectPath applies equality check predicate on the "project_path" field. It's identical to ProjectPathEQ.
func ProjectPath(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldProjectPath, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPriority, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRetryCount, v))
}

// MaxRetries applies equality check predicate on the "max_retries" field. It's identical to MaxRetriesEQ.
func MaxRetries(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldMaxRetries, v))
}

// QueuedAt applies equality check predicate on the "queued_at" field. It's identical to QueuedAtEQ.
func QueuedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldQueuedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCompletedAt, v))
}

// LastHeartbeat applies equality check predicate on the "last_heartbeat" field. It's identical to LastHeartbeatEQ.
func LastHeartbeat(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastHeartbeat, v))
}

// WorkerID applies equality check predicate on the "worker_id" field. It's identical to WorkerIDEQ.
func WorkerID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldWorkerID, v))
}

// EstimatedCost applies equality check predicate on the "estimated_cost" field. It's identical to EstimatedCostEQ.
func EstimatedCost(v float64) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldEstimatedCost, v))
}

// ActualCost applies equality check predicate on the "actual_cost" field. It's identical to ActualCostEQ.
func ActualCost(v float64) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldActualCost, v))
}

// CurrentPhaseIndex applies equality check predicate on the "current_phase_index" field. It's identical to CurrentPhaseIndexEQ.
func CurrentPhaseIndex(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCurrentPhaseIndex, v))
}

// RecoveryAttempts applies equality check predicate on the "recovery_attempts" field. It's identical to RecoveryAttemptsEQ.
func RecoveryAttempts(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRecoveryAttempts, v))
}

// MediaID applies equality check predicate on the "media_id" field. It's identical to MediaIDEQ.
func MediaID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldMediaID, v))
}

// SstRecordID applies equality check predicate on the "sst_record_id" field. It's identical to SstRecordIDEQ.
func SstRecordID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSstRecordID, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorTimestamp applies equality check predicate on the "error_timestamp" field. It's identical to ErrorTimestampEQ.
func ErrorTimestamp(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorTimestamp, v))
}

// TranscriptFileEQ applies the EQ predicate on the "transcript_file" field.
func TranscriptFileEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTranscriptFile, v))
}

// TranscriptFileNEQ applies the NEQ predicate on the "transcript_file" field.
func TranscriptFileNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldTranscriptFile, v))
}

// TranscriptFileIn applies the In predicate on the "transcript_file" field.
func TranscriptFileIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldTranscriptFile, vs...))
}

// TranscriptFileNotIn applies the NotIn predicate on the "transcript_file" field.
func TranscriptFileNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldTranscriptFile, vs...))
}

// TranscriptFileGT applies the GT predicate on the "transcript_file" field.
func TranscriptFileGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldTranscriptFile, v))
}

// TranscriptFileGTE applies the GTE predicate on the "transcript_file" field.
func TranscriptFileGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldTranscriptFile, v))
}

// TranscriptFileLT applies the LT predicate on the "transcript_file" field.
func TranscriptFileLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldTranscriptFile, v))
}

// TranscriptFileLTE applies the LTE predicate on the "transcript_file" field.
func TranscriptFileLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldTranscriptFile, v))
}

// TranscriptFileContains applies the Contains predicate on the "transcript_file" field.
func TranscriptFileContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldTranscriptFile, v))
}

// TranscriptFileHasPrefix applies the HasPrefix predicate on the "transcript_file" field.
func TranscriptFileHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldTranscriptFile, v))
}

// TranscriptFileHasSuffix applies the HasSuffix predicate on the "transcript_file" field.
func TranscriptFileHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldTranscriptFile, v))
}

// TranscriptFileEqualFold applies the EqualFold predicate on the "transcript_file" field.
func TranscriptFileEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldTranscriptFile, v))
}

// TranscriptFileContainsFold applies the ContainsFold predicate on the "transcript_file" field.
func TranscriptFileContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldTranscriptFile, v))
}

// ProjectNameEQ applies the EQ predicate on the "project_name" field.
func ProjectNameEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldProjectName, v))
}

// ProjectNameNEQ applies the NEQ predicate on the "project_name" field.
func ProjectNameNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldProjectName, v))
}

// ProjectNameIn applies the In predicate on the "project_name" field.
func ProjectNameIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldProjectName, vs...))
}

// ProjectNameNotIn applies the NotIn predicate on the "project_name" field.
func ProjectNameNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldProjectName, vs...))
}

// ProjectNameGT applies the GT predicate on the "project_name" field.
func ProjectNameGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldProjectName, v))
}

// ProjectNameGTE applies the GTE predicate on the "project_name" field.
func ProjectNameGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldProjectName, v))
}

// ProjectNameLT applies the LT predicate on the "project_name" field.
func ProjectNameLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldProjectName, v))
}

// ProjectNameLTE applies the LTE predicate on the "project_name" field.
func ProjectNameLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldProjectName, v))
}

// ProjectNameContains applies the Contains predicate on the "project_name" field.
func ProjectNameContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldProjectName, v))
}

// ProjectNameHasPrefix applies the HasPrefix predicate on the "project_name" field.
func ProjectNameHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldProjectName, v))
}

// ProjectNameHasSuffix applies the HasSuffix predicate on the "project_name" field.
func ProjectNameHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldProjectName, v))
}

// ProjectNameEqualFold applies the EqualFold predicate on the "project_name" field.
func ProjectNameEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldProjectName, v))
}

// ProjectNameContainsFold applies the ContainsFold predicate on the "project_name" field.
func ProjectNameContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldProjectName, v))
}

// ProjectPathEQ applies the EQ predicate on the "project_path" field.
func ProjectPathEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldProjectPath, v))
}

// ProjectPathNEQ applies the NEQ predicate on the "project_path" field.
func ProjectPathNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldProjectPath, v))
}

// ProjectPathIn applies the In predicate on the "project_path" field.
func ProjectPathIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldProjectPath, vs...))
}

// ProjectPathNotIn applies the NotIn predicate on the "project_path" field.
func ProjectPathNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldProjectPath, vs...))
}

// ProjectPathGT applies the GT predicate on the "project_path" field.
func ProjectPathGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldProjectPath, v))
}

// ProjectPathGTE applies the GTE predicate on the "project_path" field.
func ProjectPathGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldProjectPath, v))
}

// ProjectPathLT applies the LT predicate on the "project_path" field.
func ProjectPathLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldProjectPath, v))
}

// ProjectPathLTE applies the LTE predicate on the "project_path" field.
func ProjectPathLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldProjectPath, v))
}

// ProjectPathContains applies the Contains predicate on the "project_path" field.
func ProjectPathContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldProjectPath, v))
}

// ProjectPathHasPrefix applies the HasPrefix predicate on the "project_path" field.
func ProjectPathHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldProjectPath, v))
}

// ProjectPathHasSuffix applies the HasSuffix predicate on the "project_path" field.
func ProjectPathHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldProjectPath, v))
}

// ProjectPathEqualFold applies the EqualFold predicate on the "project_path" field.
func ProjectPathEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldProjectPath, v))
}

// ProjectPathContainsFold applies the ContainsFold predicate on the "project_path" field.
func ProjectPathContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldProjectPath, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStatus, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldPriority, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldRetryCount, v))
}

// MaxRetriesEQ applies the EQ predicate on the "max_retries" field.
func MaxRetriesEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldMaxRetries, v))
}

// MaxRetriesNEQ applies the NEQ predicate on the "max_retries" field.
func MaxRetriesNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldMaxRetries, v))
}

// MaxRetriesIn applies the In predicate on the "max_retries" field.
func MaxRetriesIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldMaxRetries, vs...))
}

// MaxRetriesNotIn applies the NotIn predicate on the "max_retries" field.
func MaxRetriesNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldMaxRetries, vs...))
}

// MaxRetriesGT applies the GT predicate on the "max_retries" field.
func MaxRetriesGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldMaxRetries, v))
}

// MaxRetriesGTE applies the GTE predicate on the "max_retries" field.
func MaxRetriesGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldMaxRetries, v))
}

// MaxRetriesLT applies the LT predicate on the "max_retries" field.
func MaxRetriesLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldMaxRetries, v))
}

// MaxRetriesLTE applies the LTE predicate on the "max_retries" field.
func MaxRetriesLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldMaxRetries, v))
}

// QueuedAtEQ applies the EQ predicate on the "queued_at" field.
func QueuedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldQueuedAt, v))
}

// QueuedAtNEQ applies the NEQ predicate on the "queued_at" field.
func QueuedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldQueuedAt, v))
}

// QueuedAtIn applies the In predicate on the "queued_at" field.
func QueuedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldQueuedAt, vs...))
}

// QueuedAtNotIn applies the NotIn predicate on the "queued_at" field.
func QueuedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldQueuedAt, vs...))
}

// QueuedAtGT applies the GT predicate on the "queued_at" field.
func QueuedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldQueuedAt, v))
}

// QueuedAtGTE applies the GTE predicate on the "queued_at" field.
func QueuedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldQueuedAt, v))
}

// QueuedAtLT applies the LT predicate on the "queued_at" field.
func QueuedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldQueuedAt, v))
}

// QueuedAtLTE applies the LTE predicate on the "queued_at" field.
func QueuedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldQueuedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldCompletedAt))
}

// LastHeartbeatEQ applies the EQ predicate on the "last_heartbeat" field.
func LastHeartbeatEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatNEQ applies the NEQ predicate on the "last_heartbeat" field.
func LastHeartbeatNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatIn applies the In predicate on the "last_heartbeat" field.
func LastHeartbeatIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatNotIn applies the NotIn predicate on the "last_heartbeat" field.
func LastHeartbeatNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatGT applies the GT predicate on the "last_heartbeat" field.
func LastHeartbeatGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldLastHeartbeat, v))
}

// LastHeartbeatGTE applies the GTE predicate on the "last_heartbeat" field.
func LastHeartbeatGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldLastHeartbeat, v))
}

// LastHeartbeatLT applies the LT predicate on the "last_heartbeat" field.
func LastHeartbeatLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldLastHeartbeat, v))
}

// LastHeartbeatLTE applies the LTE predicate on the "last_heartbeat" field.
func LastHeartbeatLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldLastHeartbeat, v))
}

// LastHeartbeatIsNil applies the IsNil predicate on the "last_heartbeat" field.
func LastHeartbeatIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldLastHeartbeat))
}

// LastHeartbeatNotNil applies the NotNil predicate on the "last_heartbeat" field.
func LastHeartbeatNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldLastHeartbeat))
}

// WorkerIDEQ applies the EQ predicate on the "worker_id" field.
func WorkerIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldWorkerID, v))
}

// WorkerIDNEQ applies the NEQ predicate on the "worker_id" field.
func WorkerIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldWorkerID, v))
}

// WorkerIDIn applies the In predicate on the "worker_id" field.
func WorkerIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldWorkerID, vs...))
}

// WorkerIDNotIn applies the NotIn predicate on the "worker_id" field.
func WorkerIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldWorkerID, vs...))
}

// WorkerIDGT applies the GT predicate on the "worker_id" field.
func WorkerIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldWorkerID, v))
}

// WorkerIDGTE applies the GTE predicate on the "worker_id" field.
func WorkerIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldWorkerID, v))
}

// WorkerIDLT applies the LT predicate on the "worker_id" field.
func WorkerIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldWorkerID, v))
}

// WorkerIDLTE applies the LTE predicate on the "worker_id" field.
func WorkerIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldWorkerID, v))
}

// WorkerIDContains applies the Contains predicate on the "worker_id" field.
func WorkerIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldWorkerID, v))
}

// WorkerIDHasPrefix applies the HasPrefix predicate on the "worker_id" field.
func WorkerIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldWorkerID, v))
}

// WorkerIDHasSuffix applies the HasSuffix predicate on the "worker_id" field.
func WorkerIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldWorkerID, v))
}

// WorkerIDIsNil applies the IsNil predicate on the "worker_id" field.
func WorkerIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldWorkerID))
}

// WorkerIDNotNil applies the NotNil predicate on the "worker_id" field.
func WorkerIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldWorkerID))
}

// WorkerIDEqualFold applies the EqualFold predicate on the "worker_id" field.
func WorkerIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldWorkerID, v))
}

// WorkerIDContainsFold applies the ContainsFold predicate on the "worker_id" field.
func WorkerIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldWorkerID, v))
}

// EstimatedCostEQ applies the EQ predicate on the "estimated_cost" field.
func EstimatedCostEQ(v float64) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldEstimatedCost, v))
}

// EstimatedCostNEQ applies the NEQ predicate on the "estimated_cost" field.
func EstimatedCostNEQ(v float64) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldEstimatedCost, v))
}

// EstimatedCostIn applies the In predicate on the "estimated_cost" field.
func EstimatedCostIn(vs ...float64) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldEstimatedCost, vs...))
}

// EstimatedCostNotIn applies the NotIn predicate on the "estimated_cost" field.
func EstimatedCostNotIn(vs ...float64) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldEstimatedCost, vs...))
}

// EstimatedCostGT applies the GT predicate on the "estimated_cost" field.
func EstimatedCostGT(v float64) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldEstimatedCost, v))
}

// EstimatedCostGTE applies the GTE predicate on the "estimated_cost" field.
func EstimatedCostGTE(v float64) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldEstimatedCost, v))
}

// EstimatedCostLT applies the LT predicate on the "estimated_cost" field.
func EstimatedCostLT(v float64) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldEstimatedCost, v))
}

// EstimatedCostLTE applies the LTE predicate on the "estimated_cost" field.
func EstimatedCostLTE(v float64) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldEstimatedCost, v))
}

// ActualCostEQ applies the EQ predicate on the "actual_cost" field.
func ActualCostEQ(v float64) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldActualCost, v))
}

// ActualCostNEQ applies the NEQ predicate on the "actual_cost" field.
func ActualCostNEQ(v float64) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldActualCost, v))
}

// ActualCostIn applies the In predicate on the "actual_cost" field.
func ActualCostIn(vs ...float64) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldActualCost, vs...))
}

// ActualCostNotIn applies the NotIn predicate on the "actual_cost" field.
func ActualCostNotIn(vs ...float64) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldActualCost, vs...))
}

// ActualCostGT applies the GT predicate on the "actual_cost" field.
func ActualCostGT(v float64) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldActualCost, v))
}

// ActualCostGTE applies the GTE predicate on the "actual_cost" field.
func ActualCostGTE(v float64) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldActualCost, v))
}

// ActualCostLT applies the LT predicate on the "actual_cost" field.
func ActualCostLT(v float64) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldActualCost, v))
}

// ActualCostLTE applies the LTE predicate on the "actual_cost" field.
func ActualCostLTE(v float64) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldActualCost, v))
}

// CurrentPhaseIndexEQ applies the EQ predicate on the "current_phase_index" field.
func CurrentPhaseIndexEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCurrentPhaseIndex, v))
}

// CurrentPhaseIndexNEQ applies the NEQ predicate on the "current_phase_index" field.
func CurrentPhaseIndexNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCurrentPhaseIndex, v))
}

// CurrentPhaseIndexIn applies the In predicate on the "current_phase_index" field.
func CurrentPhaseIndexIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCurrentPhaseIndex, vs...))
}

// CurrentPhaseIndexNotIn applies the NotIn predicate on the "current_phase_index" field.
func CurrentPhaseIndexNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCurrentPhaseIndex, vs...))
}

// CurrentPhaseIndexGT applies the GT predicate on the "current_phase_index" field.
func CurrentPhaseIndexGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCurrentPhaseIndex, v))
}

// CurrentPhaseIndexGTE applies the GTE predicate on the "current_phase_index" field.
func CurrentPhaseIndexGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCurrentPhaseIndex, v))
}

// CurrentPhaseIndexLT applies the LT predicate on the "current_phase_index" field.
func CurrentPhaseIndexLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCurrentPhaseIndex, v))
}

// CurrentPhaseIndexLTE applies the LTE predicate on the "current_phase_index" field.
func CurrentPhaseIndexLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCurrentPhaseIndex, v))
}

// RecoveryAttemptsEQ applies the EQ predicate on the "recovery_attempts" field.
func RecoveryAttemptsEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldRecoveryAttempts, v))
}

// RecoveryAttemptsNEQ applies the NEQ predicate on the "recovery_attempts" field.
func RecoveryAttemptsNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldRecoveryAttempts, v))
}

// RecoveryAttemptsIn applies the In predicate on the "recovery_attempts" field.
func RecoveryAttemptsIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldRecoveryAttempts, vs...))
}

// RecoveryAttemptsNotIn applies the NotIn predicate on the "recovery_attempts" field.
func RecoveryAttemptsNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldRecoveryAttempts, vs...))
}

// RecoveryAttemptsGT applies the GT predicate on the "recovery_attempts" field.
func RecoveryAttemptsGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldRecoveryAttempts, v))
}

// RecoveryAttemptsGTE applies the GTE predicate on the "recovery_attempts" field.
func RecoveryAttemptsGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldRecoveryAttempts, v))
}

// RecoveryAttemptsLT applies the LT predicate on the "recovery_attempts" field.
func RecoveryAttemptsLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldRecoveryAttempts, v))
}

// RecoveryAttemptsLTE applies the LTE predicate on the "recovery_attempts" field.
func RecoveryAttemptsLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldRecoveryAttempts, v))
}

// MediaIDEQ applies the EQ predicate on the "media_id" field.
func MediaIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldMediaID, v))
}

// MediaIDNEQ applies the NEQ predicate on the "media_id" field.
func MediaIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldMediaID, v))
}

// MediaIDIn applies the In predicate on the "media_id" field.
func MediaIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldMediaID, vs...))
}

// MediaIDNotIn applies the NotIn predicate on the "media_id" field.
func MediaIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldMediaID, vs...))
}

// MediaIDGT applies the GT predicate on the "media_id" field.
func MediaIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldMediaID, v))
}

// MediaIDGTE applies the GTE predicate on the "media_id" field.
func MediaIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldMediaID, v))
}

// MediaIDLT applies the LT predicate on the "media_id" field.
func MediaIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldMediaID, v))
}

// MediaIDLTE applies the LTE predicate on the "media_id" field.
func MediaIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldMediaID, v))
}

// MediaIDContains applies the Contains predicate on the "media_id" field.
func MediaIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldMediaID, v))
}

// MediaIDHasPrefix applies the HasPrefix predicate on the "media_id" field.
func MediaIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldMediaID, v))
}

// MediaIDHasSuffix applies the HasSuffix predicate on the "media_id" field.
func MediaIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldMediaID, v))
}

// MediaIDIsNil applies the IsNil predicate on the "media_id" field.
func MediaIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldMediaID))
}

// MediaIDNotNil applies the NotNil predicate on the "media_id" field.
func MediaIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldMediaID))
}

// MediaIDEqualFold applies the EqualFold predicate on the "media_id" field.
func MediaIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldMediaID, v))
}

// MediaIDContainsFold applies the ContainsFold predicate on the "media_id" field.
func MediaIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldMediaID, v))
}

// SstRecordIDEQ applies the EQ predicate on the "sst_record_id" field.
func SstRecordIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSstRecordID, v))
}

// SstRecordIDNEQ applies the NEQ predicate on the "sst_record_id" field.
func SstRecordIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldSstRecordID, v))
}

// SstRecordIDIn applies the In predicate on the "sst_record_id" field.
func SstRecordIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldSstRecordID, vs...))
}

// SstRecordIDNotIn applies the NotIn predicate on the "sst_record_id" field.
func SstRecordIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldSstRecordID, vs...))
}

// SstRecordIDGT applies the GT predicate on the "sst_record_id" field.
func SstRecordIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldSstRecordID, v))
}

// SstRecordIDGTE applies the GTE predicate on the "sst_record_id" field.
func SstRecordIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldSstRecordID, v))
}

// SstRecordIDLT applies the LT predicate on the "sst_record_id" field.
func SstRecordIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldSstRecordID, v))
}

// SstRecordIDLTE applies the LTE predicate on the "sst_record_id" field.
func SstRecordIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldSstRecordID, v))
}

// SstRecordIDContains applies the Contains predicate on the "sst_record_id" field.
func SstRecordIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldSstRecordID, v))
}

// SstRecordIDHasPrefix applies the HasPrefix predicate on the "sst_record_id" field.
func SstRecordIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldSstRecordID, v))
}

// SstRecordIDHasSuffix applies the HasSuffix predicate on the "sst_record_id" field.
func SstRecordIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldSstRecordID, v))
}

// SstRecordIDIsNil applies the IsNil predicate on the "sst_record_id" field.
func SstRecordIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldSstRecordID))
}

// SstRecordIDNotNil applies the NotNil predicate on the "sst_record_id" field.
func SstRecordIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldSstRecordID))
}

// SstRecordIDEqualFold applies the EqualFold predicate on the "sst_record_id" field.
func SstRecordIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldSstRecordID, v))
}

// SstRecordIDContainsFold applies the ContainsFold predicate on the "sst_record_id" field.
func SstRecordIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldSstRecordID, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ErrorTimestampEQ applies the EQ predicate on the "error_timestamp" field.
func ErrorTimestampEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorTimestamp, v))
}

// ErrorTimestampNEQ applies the NEQ predicate on the "error_timestamp" field.
func ErrorTimestampNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldErrorTimestamp, v))
}

// ErrorTimestampIn applies the In predicate on the "error_timestamp" field.
func ErrorTimestampIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldErrorTimestamp, vs...))
}

// ErrorTimestampNotIn applies the NotIn predicate on the "error_timestamp" field.
func ErrorTimestampNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldErrorTimestamp, vs...))
}

// ErrorTimestampGT applies the GT predicate on the "error_timestamp" field.
func ErrorTimestampGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldErrorTimestamp, v))
}

// ErrorTimestampGTE applies the GTE predicate on the "error_timestamp" field.
func ErrorTimestampGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldErrorTimestamp, v))
}

// ErrorTimestampLT applies the LT predicate on the "error_timestamp" field.
func ErrorTimestampLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldErrorTimestamp, v))
}

// ErrorTimestampLTE applies the LTE predicate on the "error_timestamp" field.
func ErrorTimestampLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldErrorTimestamp, v))
}

// ErrorTimestampIsNil applies the IsNil predicate on the "error_timestamp" field.
func ErrorTimestampIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldErrorTimestamp))
}

// ErrorTimestampNotNil applies the NotNil predicate on the "error_timestamp" field.
func ErrorTimestampNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldErrorTimestamp))
}

// HasPhases applies the HasEdge predicate on the "phases" edge.
func HasPhases() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PhasesTable, PhasesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPhasesWith applies the HasEdge predicate on the "phases" edge with a given conditions (other predicates).
func HasPhasesWith(preds ...predicate.JobPhase) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newPhasesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.SessionEvent) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Job) predicate.Job {
	return predicate.Job(sql.NotPredicates(p))
}
