// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cardigan-project/cardigan/ent/job"
	"github.com/cardigan-project/cardigan/ent/jobphase"
	"github.com/cardigan-project/cardigan/ent/predicate"
	"github.com/cardigan-project/cardigan/ent/sessionevent"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTranscriptFile sets the "transcript_file" field.
func (_u *JobUpdate) SetTranscriptFile(v string) *JobUpdate {
	_u.mutation.SetTranscriptFile(v)
	return _u
}

// SetNillableTranscriptFile sets the "transcript_file" field if the given value is not nil.
func (_u *JobUpdate) SetNillableTranscriptFile(v *string) *JobUpdate {
	if v != nil {
		_u.SetTranscriptFile(*v)
	}
	return _u
}

// SetProjectName sets the "project_name" field.
func (_u *JobUpdate) SetProjectName(v string) *JobUpdate {
	_u.mutation.SetProjectName(v)
	return _u
}

// SetNillableProjectName sets the "project_name" field if the given value is not nil.
func (_u *JobUpdate) SetNillableProjectName(v *string) *JobUpdate {
	if v != nil {
		_u.SetProjectName(*v)
	}
	return _u
}

// SetProjectPath sets the "project_path" field.
func (_u *JobUpdate) SetProjectPath(v string) *JobUpdate {
	_u.mutation.SetProjectPath(v)
	return _u
}

// SetNillableProjectPath sets the "project_path" field if the given value is not nil.
func (_u *JobUpdate) SetNillableProjectPath(v *string) *JobUpdate {
	if v != nil {
		_u.SetProjectPath(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdate) SetStatus(v job.Status) *JobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStatus(v *job.Status) *JobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *JobUpdate) SetPriority(v int) *JobUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *JobUpdate) SetNillablePriority(v *int) *JobUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *JobUpdate) AddPriority(v int) *JobUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *JobUpdate) SetRetryCount(v int) *JobUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *JobUpdate) SetNillableRetryCount(v *int) *JobUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *JobUpdate) AddRetryCount(v int) *JobUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *JobUpdate) SetMaxRetries(v int) *JobUpdate {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *JobUpdate) SetNillableMaxRetries(v *int) *JobUpdate {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *JobUpdate) AddMaxRetries(v int) *JobUpdate {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetQueuedAt sets the "queued_at" field.
func (_u *JobUpdate) SetQueuedAt(v time.Time) *JobUpdate {
	_u.mutation.SetQueuedAt(v)
	return _u
}

// SetNillableQueuedAt sets the "queued_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableQueuedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetQueuedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdate) SetStartedAt(v time.Time) *JobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStartedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdate) ClearStartedAt() *JobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdate) SetCompletedAt(v time.Time) *JobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCompletedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdate) ClearCompletedAt() *JobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *JobUpdate) SetLastHeartbeat(v time.Time) *JobUpdate {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLastHeartbeat(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *JobUpdate) ClearLastHeartbeat() *JobUpdate {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *JobUpdate) SetWorkerID(v string) *JobUpdate {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableWorkerID(v *string) *JobUpdate {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *JobUpdate) ClearWorkerID() *JobUpdate {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetEstimatedCost sets the "estimated_cost" field.
func (_u *JobUpdate) SetEstimatedCost(v float64) *JobUpdate {
	_u.mutation.ResetEstimatedCost()
	_u.mutation.SetEstimatedCost(v)
	return _u
}

// SetNillableEstimatedCost sets the "estimated_cost" field if the given value is not nil.
func (_u *JobUpdate) SetNillableEstimatedCost(v *float64) *JobUpdate {
	if v != nil {
		_u.SetEstimatedCost(*v)
	}
	return _u
}

// AddEstimatedCost adds value to the "estimated_cost" field.
func (_u *JobUpdate) AddEstimatedCost(v float64) *JobUpdate {
	_u.mutation.AddEstimatedCost(v)
	return _u
}

// SetActualCost sets the "actual_cost" field.
func (_u *JobUpdate) SetActualCost(v float64) *JobUpdate {
	_u.mutation.ResetActualCost()
	_u.mutation.SetActualCost(v)
	return _u
}

// SetNillableActualCost sets the "actual_cost" field if the given value is not nil.
func (_u *JobUpdate) SetNillableActualCost(v *float64) *JobUpdate {
	if v != nil {
		_u.SetActualCost(*v)
	}
	return _u
}

// AddActualCost adds value to the "actual_cost" field.
func (_u *JobUpdate) AddActualCost(v float64) *JobUpdate {
	_u.mutation.AddActualCost(v)
	return _u
}

// SetCurrentPhaseIndex sets the "current_phase_index" field.
func (_u *JobUpdate) SetCurrentPhaseIndex(v int) *JobUpdate {
	_u.mutation.ResetCurrentPhaseIndex()
	_u.mutation.SetCurrentPhaseIndex(v)
	return _u
}

// SetNillableCurrentPhaseIndex sets the "current_phase_index" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCurrentPhaseIndex(v *int) *JobUpdate {
	if v != nil {
		_u.SetCurrentPhaseIndex(*v)
	}
	return _u
}

// AddCurrentPhaseIndex adds value to the "current_phase_index" field.
func (_u *JobUpdate) AddCurrentPhaseIndex(v int) *JobUpdate {
	_u.mutation.AddCurrentPhaseIndex(v)
	return _u
}

// SetRecoveryAttempts sets the "recovery_attempts" field.
func (_u *JobUpdate) SetRecoveryAttempts(v int) *JobUpdate {
	_u.mutation.ResetRecoveryAttempts()
	_u.mutation.SetRecoveryAttempts(v)
	return _u
}

// SetNillableRecoveryAttempts sets the "recovery_attempts" field if the given value is not nil.
func (_u *JobUpdate) SetNillableRecoveryAttempts(v *int) *JobUpdate {
	if v != nil {
		_u.SetRecoveryAttempts(*v)
	}
	return _u
}

// AddRecoveryAttempts adds value to the "recovery_attempts" field.
func (_u *JobUpdate) AddRecoveryAttempts(v int) *JobUpdate {
	_u.mutation.AddRecoveryAttempts(v)
	return _u
}

// SetMediaID sets the "media_id" field.
func (_u *JobUpdate) SetMediaID(v string) *JobUpdate {
	_u.mutation.SetMediaID(v)
	return _u
}

// SetNillableMediaID sets the "media_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableMediaID(v *string) *JobUpdate {
	if v != nil {
		_u.SetMediaID(*v)
	}
	return _u
}

// ClearMediaID clears the value of the "media_id" field.
func (_u *JobUpdate) ClearMediaID() *JobUpdate {
	_u.mutation.ClearMediaID()
	return _u
}

// SetSstRecordID sets the "sst_record_id" field.
func (_u *JobUpdate) SetSstRecordID(v string) *JobUpdate {
	_u.mutation.SetSstRecordID(v)
	return _u
}

// SetNillableSstRecordID sets the "sst_record_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableSstRecordID(v *string) *JobUpdate {
	if v != nil {
		_u.SetSstRecordID(*v)
	}
	return _u
}

// ClearSstRecordID clears the value of the "sst_record_id" field.
func (_u *JobUpdate) ClearSstRecordID() *JobUpdate {
	_u.mutation.ClearSstRecordID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JobUpdate) SetErrorMessage(v string) *JobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JobUpdate) SetNillableErrorMessage(v *string) *JobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *JobUpdate) ClearErrorMessage() *JobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorTimestamp sets the "error_timestamp" field.
func (_u *JobUpdate) SetErrorTimestamp(v time.Time) *JobUpdate {
	_u.mutation.SetErrorTimestamp(v)
	return _u
}

// SetNillableErrorTimestamp sets the "error_timestamp" field if the given value is not nil.
func (_u *JobUpdate) SetNillableErrorTimestamp(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetErrorTimestamp(*v)
	}
	return _u
}

// ClearErrorTimestamp clears the value of the "error_timestamp" field.
func (_u *JobUpdate) ClearErrorTimestamp() *JobUpdate {
	_u.mutation.ClearErrorTimestamp()
	return _u
}

// AddPhaseIDs adds the "phases" edge to the JobPhase entity by IDs.
func (_u *JobUpdate) AddPhaseIDs(ids ...int) *JobUpdate {
	_u.mutation.AddPhaseIDs(ids...)
	return _u
}

// AddPhases adds the "phases" edges to the JobPhase entity.
func (_u *JobUpdate) AddPhases(v ...*JobPhase) *JobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPhaseIDs(ids...)
}

// AddEventIDs adds the "events" edge to the SessionEvent entity by IDs.
func (_u *JobUpdate) AddEventIDs(ids ...int) *JobUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the SessionEvent entity.
func (_u *JobUpdate) AddEvents(v ...*SessionEvent) *JobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// ClearPhases clears all "phases" edges to the JobPhase entity.
func (_u *JobUpdate) ClearPhases() *JobUpdate {
	_u.mutation.ClearPhases()
	return _u
}

// RemovePhaseIDs removes the "phases" edge to JobPhase entities by IDs.
func (_u *JobUpdate) RemovePhaseIDs(ids ...int) *JobUpdate {
	_u.mutation.RemovePhaseIDs(ids...)
	return _u
}

// RemovePhases removes "phases" edges to JobPhase entities.
func (_u *JobUpdate) RemovePhases(v ...*JobPhase) *JobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePhaseIDs(ids...)
}

// ClearEvents clears all "events" edges to the SessionEvent entity.
func (_u *JobUpdate) ClearEvents() *JobUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to SessionEvent entities by IDs.
func (_u *JobUpdate) RemoveEventIDs(ids ...int) *JobUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to SessionEvent entities.
func (_u *JobUpdate) RemoveEvents(v ...*SessionEvent) *JobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TranscriptFile(); ok {
		_spec.SetField(job.FieldTranscriptFile, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProjectName(); ok {
		_spec.SetField(job.FieldProjectName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProjectPath(); ok {
		_spec.SetField(job.FieldProjectPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(job.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(job.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(job.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(job.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(job.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QueuedAt(); ok {
		_spec.SetField(job.FieldQueuedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(job.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(job.FieldLastHeartbeat, field.TypeTime)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(job.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(job.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedCost(); ok {
		_spec.SetField(job.FieldEstimatedCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCost(); ok {
		_spec.AddField(job.FieldEstimatedCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ActualCost(); ok {
		_spec.SetField(job.FieldActualCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedActualCost(); ok {
		_spec.AddField(job.FieldActualCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrentPhaseIndex(); ok {
		_spec.SetField(job.FieldCurrentPhaseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentPhaseIndex(); ok {
		_spec.AddField(job.FieldCurrentPhaseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecoveryAttempts(); ok {
		_spec.SetField(job.FieldRecoveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecoveryAttempts(); ok {
		_spec.AddField(job.FieldRecoveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MediaID(); ok {
		_spec.SetField(job.FieldMediaID, field.TypeString, value)
	}
	if _u.mutation.MediaIDCleared() {
		_spec.ClearField(job.FieldMediaID, field.TypeString)
	}
	if value, ok := _u.mutation.SstRecordID(); ok {
		_spec.SetField(job.FieldSstRecordID, field.TypeString, value)
	}
	if _u.mutation.SstRecordIDCleared() {
		_spec.ClearField(job.FieldSstRecordID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(job.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorTimestamp(); ok {
		_spec.SetField(job.FieldErrorTimestamp, field.TypeTime, value)
	}
	if _u.mutation.ErrorTimestampCleared() {
		_spec.ClearField(job.FieldErrorTimestamp, field.TypeTime)
	}
	if _u.mutation.PhasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.PhasesTable,
			Columns: []string{job.PhasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobphase.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPhasesIDs(); len(nodes) > 0 && !_u.mutation.PhasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.PhasesTable,
			Columns: []string{job.PhasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobphase.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PhasesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.PhasesTable,
			Columns: []string{job.PhasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobphase.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.EventsTable,
			Columns: []string{job.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.EventsTable,
			Columns: []string{job.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.EventsTable,
			Columns: []string{job.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetTranscriptFile sets the "transcript_file" field.
func (_u *JobUpdateOne) SetTranscriptFile(v string) *JobUpdateOne {
	_u.mutation.SetTranscriptFile(v)
	return _u
}

// SetNillableTranscriptFile sets the "transcript_file" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableTranscriptFile(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetTranscriptFile(*v)
	}
	return _u
}

// SetProjectName sets the "project_name" field.
func (_u *JobUpdateOne) SetProjectName(v string) *JobUpdateOne {
	_u.mutation.SetProjectName(v)
	return _u
}

// SetNillableProjectName sets the "project_name" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableProjectName(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetProjectName(*v)
	}
	return _u
}

// SetProjectPath sets the "project_path" field.
func (_u *JobUpdateOne) SetProjectPath(v string) *JobUpdateOne {
	_u.mutation.SetProjectPath(v)
	return _u
}

// SetNillableProjectPath sets the "project_path" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableProjectPath(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetProjectPath(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdateOne) SetStatus(v job.Status) *JobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStatus(v *job.Status) *JobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *JobUpdateOne) SetPriority(v int) *JobUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillablePriority(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *JobUpdateOne) AddPriority(v int) *JobUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *JobUpdateOne) SetRetryCount(v int) *JobUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableRetryCount(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *JobUpdateOne) AddRetryCount(v int) *JobUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *JobUpdateOne) SetMaxRetries(v int) *JobUpdateOne {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableMaxRetries(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *JobUpdateOne) AddMaxRetries(v int) *JobUpdateOne {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetQueuedAt sets the "queued_at" field.
func (_u *JobUpdateOne) SetQueuedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetQueuedAt(v)
	return _u
}

// SetNillableQueuedAt sets the "queued_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableQueuedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetQueuedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdateOne) SetStartedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStartedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdateOne) ClearStartedAt() *JobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdateOne) SetCompletedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCompletedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdateOne) ClearCompletedAt() *JobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_u *JobUpdateOne) SetLastHeartbeat(v time.Time) *JobUpdateOne {
	_u.mutation.SetLastHeartbeat(v)
	return _u
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLastHeartbeat(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetLastHeartbeat(*v)
	}
	return _u
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (_u *JobUpdateOne) ClearLastHeartbeat() *JobUpdateOne {
	_u.mutation.ClearLastHeartbeat()
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *JobUpdateOne) SetWorkerID(v string) *JobUpdateOne {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableWorkerID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *JobUpdateOne) ClearWorkerID() *JobUpdateOne {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetEstimatedCost sets the "estimated_cost" field.
func (_u *JobUpdateOne) SetEstimatedCost(v float64) *JobUpdateOne {
	_u.mutation.ResetEstimatedCost()
	_u.mutation.SetEstimatedCost(v)
	return _u
}

// SetNillableEstimatedCost sets the "estimated_cost" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableEstimatedCost(v *float64) *JobUpdateOne {
	if v != nil {
		_u.SetEstimatedCost(*v)
	}
	return _u
}

// AddEstimatedCost adds value to the "estimated_cost" field.
func (_u *JobUpdateOne) AddEstimatedCost(v float64) *JobUpdateOne {
	_u.mutation.AddEstimatedCost(v)
	return _u
}

// SetActualCost sets the "actual_cost" field.
func (_u *JobUpdateOne) SetActualCost(v float64) *JobUpdateOne {
	_u.mutation.ResetActualCost()
	_u.mutation.SetActualCost(v)
	return _u
}

// SetNillableActualCost sets the "actual_cost" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableActualCost(v *float64) *JobUpdateOne {
	if v != nil {
		_u.SetActualCost(*v)
	}
	return _u
}

// AddActualCost adds value to the "actual_cost" field.
func (_u *JobUpdateOne) AddActualCost(v float64) *JobUpdateOne {
	_u.mutation.AddActualCost(v)
	return _u
}

// SetCurrentPhaseIndex sets the "current_phase_index" field.
func (_u *JobUpdateOne) SetCurrentPhaseIndex(v int) *JobUpdateOne {
	_u.mutation.ResetCurrentPhaseIndex()
	_u.mutation.SetCurrentPhaseIndex(v)
	return _u
}

// SetNillableCurrentPhaseIndex sets the "current_phase_index" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCurrentPhaseIndex(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetCurrentPhaseIndex(*v)
	}
	return _u
}

// AddCurrentPhaseIndex adds value to the "current_phase_index" field.
func (_u *JobUpdateOne) AddCurrentPhaseIndex(v int) *JobUpdateOne {
	_u.mutation.AddCurrentPhaseIndex(v)
	return _u
}

// SetRecoveryAttempts sets the "recovery_attempts" field.
func (_u *JobUpdateOne) SetRecoveryAttempts(v int) *JobUpdateOne {
	_u.mutation.ResetRecoveryAttempts()
	_u.mutation.SetRecoveryAttempts(v)
	return _u
}

// SetNillableRecoveryAttempts sets the "recovery_attempts" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableRecoveryAttempts(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetRecoveryAttempts(*v)
	}
	return _u
}

// AddRecoveryAttempts adds value to the "recovery_attempts" field.
func (_u *JobUpdateOne) AddRecoveryAttempts(v int) *JobUpdateOne {
	_u.mutation.AddRecoveryAttempts(v)
	return _u
}

// SetMediaID sets the "media_id" field.
func (_u *JobUpdateOne) SetMediaID(v string) *JobUpdateOne {
	_u.mutation.SetMediaID(v)
	return _u
}

// SetNillableMediaID sets the "media_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableMediaID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetMediaID(*v)
	}
	return _u
}

// ClearMediaID clears the value of the "media_id" field.
func (_u *JobUpdateOne) ClearMediaID() *JobUpdateOne {
	_u.mutation.ClearMediaID()
	return _u
}

// SetSstRecordID sets the "sst_record_id" field.
func (_u *JobUpdateOne) SetSstRecordID(v string) *JobUpdateOne {
	_u.mutation.SetSstRecordID(v)
	return _u
}

// SetNillableSstRecordID sets the "sst_record_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableSstRecordID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetSstRecordID(*v)
	}
	return _u
}

// ClearSstRecordID clears the value of the "sst_record_id" field.
func (_u *JobUpdateOne) ClearSstRecordID() *JobUpdateOne {
	_u.mutation.ClearSstRecordID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JobUpdateOne) SetErrorMessage(v string) *JobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableErrorMessage(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *JobUpdateOne) ClearErrorMessage() *JobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorTimestamp sets the "error_timestamp" field.
func (_u *JobUpdateOne) SetErrorTimestamp(v time.Time) *JobUpdateOne {
	_u.mutation.SetErrorTimestamp(v)
	return _u
}

// SetNillableErrorTimestamp sets the "error_timestamp" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableErrorTimestamp(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetErrorTimestamp(*v)
	}
	return _u
}

// ClearErrorTimestamp clears the value of the "error_timestamp" field.
func (_u *JobUpdateOne) ClearErrorTimestamp() *JobUpdateOne {
	_u.mutation.ClearErrorTimestamp()
	return _u
}

// AddPhaseIDs adds the "phases" edge to the JobPhase entity by IDs.
func (_u *JobUpdateOne) AddPhaseIDs(ids ...int) *JobUpdateOne {
	_u.mutation.AddPhaseIDs(ids...)
	return _u
}

// AddPhases adds the "phases" edges to the JobPhase entity.
func (_u *JobUpdateOne) AddPhases(v ...*JobPhase) *JobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPhaseIDs(ids...)
}

// AddEventIDs adds the "events" edge to the SessionEvent entity by IDs.
func (_u *JobUpdateOne) AddEventIDs(ids ...int) *JobUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the SessionEvent entity.
func (_u *JobUpdateOne) AddEvents(v ...*SessionEvent) *JobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// ClearPhases clears all "phases" edges to the JobPhase entity.
func (_u *JobUpdateOne) ClearPhases() *JobUpdateOne {
	_u.mutation.ClearPhases()
	return _u
}

// RemovePhaseIDs removes the "phases" edge to JobPhase entities by IDs.
func (_u *JobUpdateOne) RemovePhaseIDs(ids ...int) *JobUpdateOne {
	_u.mutation.RemovePhaseIDs(ids...)
	return _u
}

// RemovePhases removes "phases" edges to JobPhase entities.
func (_u *JobUpdateOne) RemovePhases(v ...*JobPhase) *JobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePhaseIDs(ids...)
}

// ClearEvents clears all "events" edges to the SessionEvent entity.
func (_u *JobUpdateOne) ClearEvents() *JobUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to SessionEvent entities by IDs.
func (_u *JobUpdateOne) RemoveEventIDs(ids ...int) *JobUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to SessionEvent entities.
func (_u *JobUpdateOne) RemoveEvents(v ...*SessionEvent) *JobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TranscriptFile(); ok {
		_spec.SetField(job.FieldTranscriptFile, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProjectName(); ok {
		_spec.SetField(job.FieldProjectName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProjectPath(); ok {
		_spec.SetField(job.FieldProjectPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(job.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(job.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(job.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(job.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(job.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QueuedAt(); ok {
		_spec.SetField(job.FieldQueuedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeat(); ok {
		_spec.SetField(job.FieldLastHeartbeat, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatCleared() {
		_spec.ClearField(job.FieldLastHeartbeat, field.TypeTime)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(job.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(job.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.EstimatedCost(); ok {
		_spec.SetField(job.FieldEstimatedCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedCost(); ok {
		_spec.AddField(job.FieldEstimatedCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ActualCost(); ok {
		_spec.SetField(job.FieldActualCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedActualCost(); ok {
		_spec.AddField(job.FieldActualCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrentPhaseIndex(); ok {
		_spec.SetField(job.FieldCurrentPhaseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentPhaseIndex(); ok {
		_spec.AddField(job.FieldCurrentPhaseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecoveryAttempts(); ok {
		_spec.SetField(job.FieldRecoveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecoveryAttempts(); ok {
		_spec.AddField(job.FieldRecoveryAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MediaID(); ok {
		_spec.SetField(job.FieldMediaID, field.TypeString, value)
	}
	if _u.mutation.MediaIDCleared() {
		_spec.ClearField(job.FieldMediaID, field.TypeString)
	}
	if value, ok := _u.mutation.SstRecordID(); ok {
		_spec.SetField(job.FieldSstRecordID, field.TypeString, value)
	}
	if _u.mutation.SstRecordIDCleared() {
		_spec.ClearField(job.FieldSstRecordID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(job.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorTimestamp(); ok {
		_spec.SetField(job.FieldErrorTimestamp, field.TypeTime, value)
	}
	if _u.mutation.ErrorTimestampCleared() {
		_spec.ClearField(job.FieldErrorTimestamp, field.TypeTime)
	}
	if _u.mutation.PhasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.PhasesTable,
			Columns: []string{job.PhasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobphase.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPhasesIDs(); len(nodes) > 0 && !_u.mutation.PhasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.PhasesTable,
			Columns: []string{job.PhasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobphase.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PhasesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.PhasesTable,
			Columns: []string{job.PhasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobphase.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.EventsTable,
			Columns: []string{job.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.EventsTable,
			Columns: []string{job.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.EventsTable,
			Columns: []string{job.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
