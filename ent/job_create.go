// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cardigan-project/cardigan/ent/job"
	"github.com/cardigan-project/cardigan/ent/jobphase"
	"github.com/cardigan-project/cardigan/ent/sessionevent"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
}

// SetTranscriptFile sets the "transcript_file" field.
func (_c *JobCreate) SetTranscriptFile(v string) *JobCreate {
	_c.mutation.SetTranscriptFile(v)
	return _c
}

// SetProjectName sets the "project_name" field.
func (_c *JobCreate) SetProjectName(v string) *JobCreate {
	_c.mutation.SetProjectName(v)
	return _c
}

// SetProjectPath sets the "project_path" field.
func (_c *JobCreate) SetProjectPath(v string) *JobCreate {
	_c.mutation.SetProjectPath(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobCreate) SetStatus(v job.Status) *JobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *JobCreate) SetNillableStatus(v *job.Status) *JobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *JobCreate) SetPriority(v int) *JobCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *JobCreate) SetNillablePriority(v *int) *JobCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *JobCreate) SetRetryCount(v int) *JobCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *JobCreate) SetNillableRetryCount(v *int) *JobCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetMaxRetries sets the "max_retries" field.
func (_c *JobCreate) SetMaxRetries(v int) *JobCreate {
	_c.mutation.SetMaxRetries(v)
	return _c
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_c *JobCreate) SetNillableMaxRetries(v *int) *JobCreate {
	if v != nil {
		_c.SetMaxRetries(*v)
	}
	return _c
}

// SetQueuedAt sets the "queued_at" field.
func (_c *JobCreate) SetQueuedAt(v time.Time) *JobCreate {
	_c.mutation.SetQueuedAt(v)
	return _c
}

// SetNillableQueuedAt sets the "queued_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableQueuedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetQueuedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *JobCreate) SetStartedAt(v time.Time) *JobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableStartedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *JobCreate) SetCompletedAt(v time.Time) *JobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCompletedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_c *JobCreate) SetLastHeartbeat(v time.Time) *JobCreate {
	_c.mutation.SetLastHeartbeat(v)
	return _c
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_c *JobCreate) SetNillableLastHeartbeat(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetLastHeartbeat(*v)
	}
	return _c
}

// SetWorkerID sets the "worker_id" field.
func (_c *JobCreate) SetWorkerID(v string) *JobCreate {
	_c.mutation.SetWorkerID(v)
	return _c
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_c *JobCreate) SetNillableWorkerID(v *string) *JobCreate {
	if v != nil {
		_c.SetWorkerID(*v)
	}
	return _c
}

// SetEstimatedCost sets the "estimated_cost" field.
func (_c *JobCreate) SetEstimatedCost(v float64) *JobCreate {
	_c.mutation.SetEstimatedCost(v)
	return _c
}

// SetNillableEstimatedCost sets the "estimated_cost" field if the given value is not nil.
func (_c *JobCreate) SetNillableEstimatedCost(v *float64) *JobCreate {
	if v != nil {
		_c.SetEstimatedCost(*v)
	}
	return _c
}

// SetActualCost sets the "actual_cost" field.
func (_c *JobCreate) SetActualCost(v float64) *JobCreate {
	_c.mutation.SetActualCost(v)
	return _c
}

// SetNillableActualCost sets the "actual_cost" field if the given value is not nil.
func (_c *JobCreate) SetNillableActualCost(v *float64) *JobCreate {
	if v != nil {
		_c.SetActualCost(*v)
	}
	return _c
}

// SetCurrentPhaseIndex sets the "current_phase_index" field.
func (_c *JobCreate) SetCurrentPhaseIndex(v int) *JobCreate {
	_c.mutation.SetCurrentPhaseIndex(v)
	return _c
}

// SetNillableCurrentPhaseIndex sets the "current_phase_index" field if the given value is not nil.
func (_c *JobCreate) SetNillableCurrentPhaseIndex(v *int) *JobCreate {
	if v != nil {
		_c.SetCurrentPhaseIndex(*v)
	}
	return _c
}

// SetRecoveryAttempts sets the "recovery_attempts" field.
func (_c *JobCreate) SetRecoveryAttempts(v int) *JobCreate {
	_c.mutation.SetRecoveryAttempts(v)
	return _c
}

// SetNillableRecoveryAttempts sets the "recovery_attempts" field if the given value is not nil.
func (_c *JobCreate) SetNillableRecoveryAttempts(v *int) *JobCreate {
	if v != nil {
		_c.SetRecoveryAttempts(*v)
	}
	return _c
}

// SetMediaID sets the "media_id" field.
func (_c *JobCreate) SetMediaID(v string) *JobCreate {
	_c.mutation.SetMediaID(v)
	return _c
}

// SetNillableMediaID sets the "media_id" field if the given value is not nil.
func (_c *JobCreate) SetNillableMediaID(v *string) *JobCreate {
	if v != nil {
		_c.SetMediaID(*v)
	}
	return _c
}

// SetSstRecordID sets the "sst_record_id" field.
func (_c *JobCreate) SetSstRecordID(v string) *JobCreate {
	_c.mutation.SetSstRecordID(v)
	return _c
}

// SetNillableSstRecordID sets the "sst_record_id" field if the given value is not nil.
func (_c *JobCreate) SetNillableSstRecordID(v *string) *JobCreate {
	if v != nil {
		_c.SetSstRecordID(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *JobCreate) SetErrorMessage(v string) *JobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *JobCreate) SetNillableErrorMessage(v *string) *JobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetErrorTimestamp sets the "error_timestamp" field.
func (_c *JobCreate) SetErrorTimestamp(v time.Time) *JobCreate {
	_c.mutation.SetErrorTimestamp(v)
	return _c
}

// SetNillableErrorTimestamp sets the "error_timestamp" field if the given value is not nil.
func (_c *JobCreate) SetNillableErrorTimestamp(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetErrorTimestamp(*v)
	}
	return _c
}

// AddPhaseIDs adds the "phases" edge to the JobPhase entity by IDs.
func (_c *JobCreate) AddPhaseIDs(ids ...int) *JobCreate {
	_c.mutation.AddPhaseIDs(ids...)
	return _c
}

// AddPhases adds the "phases" edges to the JobPhase entity.
func (_c *JobCreate) AddPhases(v ...*JobPhase) *JobCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPhaseIDs(ids...)
}

// AddEventIDs adds the "events" edge to the SessionEvent entity by IDs.
func (_c *JobCreate) AddEventIDs(ids ...int) *JobCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the SessionEvent entity.
func (_c *JobCreate) AddEvents(v ...*SessionEvent) *JobCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_c *JobCreate) Mutation() *JobMutation {
	return _c.mutation
}

// Save creates the Job in the database.
func (_c *JobCreate) Save(ctx context.Context) (*Job, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := job.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := job.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := job.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		v := job.DefaultMaxRetries
		_c.mutation.SetMaxRetries(v)
	}
	if _, ok := _c.mutation.QueuedAt(); !ok {
		v := job.DefaultQueuedAt()
		_c.mutation.SetQueuedAt(v)
	}
	if _, ok := _c.mutation.EstimatedCost(); !ok {
		v := job.DefaultEstimatedCost
		_c.mutation.SetEstimatedCost(v)
	}
	if _, ok := _c.mutation.ActualCost(); !ok {
		v := job.DefaultActualCost
		_c.mutation.SetActualCost(v)
	}
	if _, ok := _c.mutation.CurrentPhaseIndex(); !ok {
		v := job.DefaultCurrentPhaseIndex
		_c.mutation.SetCurrentPhaseIndex(v)
	}
	if _, ok := _c.mutation.RecoveryAttempts(); !ok {
		v := job.DefaultRecoveryAttempts
		_c.mutation.SetRecoveryAttempts(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCreate) check() error {
	if _, ok := _c.mutation.TranscriptFile(); !ok {
		return &ValidationError{Name: "transcript_file", err: errors.New(`ent: missing required field "Job.transcript_file"`)}
	}
	if _, ok := _c.mutation.ProjectName(); !ok {
		return &ValidationError{Name: "project_name", err: errors.New(`ent: missing required field "Job.project_name"`)}
	}
	if _, ok := _c.mutation.ProjectPath(); !ok {
		return &ValidationError{Name: "project_path", err: errors.New(`ent: missing required field "Job.project_path"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Job.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Job.priority"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Job.retry_count"`)}
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		return &ValidationError{Name: "max_retries", err: errors.New(`ent: missing required field "Job.max_retries"`)}
	}
	if _, ok := _c.mutation.QueuedAt(); !ok {
		return &ValidationError{Name: "queued_at", err: errors.New(`ent: missing required field "Job.queued_at"`)}
	}
	if _, ok := _c.mutation.EstimatedCost(); !ok {
		return &ValidationError{Name: "estimated_cost", err: errors.New(`ent: missing required field "Job.estimated_cost"`)}
	}
	if _, ok := _c.mutation.ActualCost(); !ok {
		return &ValidationError{Name: "actual_cost", err: errors.New(`ent: missing required field "Job.actual_cost"`)}
	}
	if _, ok := _c.mutation.CurrentPhaseIndex(); !ok {
		return &ValidationError{Name: "current_phase_index", err: errors.New(`ent: missing required field "Job.current_phase_index"`)}
	}
	if _, ok := _c.mutation.RecoveryAttempts(); !ok {
		return &ValidationError{Name: "recovery_attempts", err: errors.New(`ent: missing required field "Job.recovery_attempts"`)}
	}
	return nil
}

func (_c *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TranscriptFile(); ok {
		_spec.SetField(job.FieldTranscriptFile, field.TypeString, value)
		_node.TranscriptFile = value
	}
	if value, ok := _c.mutation.ProjectName(); ok {
		_spec.SetField(job.FieldProjectName, field.TypeString, value)
		_node.ProjectName = value
	}
	if value, ok := _c.mutation.ProjectPath(); ok {
		_spec.SetField(job.FieldProjectPath, field.TypeString, value)
		_node.ProjectPath = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(job.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.MaxRetries(); ok {
		_spec.SetField(job.FieldMaxRetries, field.TypeInt, value)
		_node.MaxRetries = value
	}
	if value, ok := _c.mutation.QueuedAt(); ok {
		_spec.SetField(job.FieldQueuedAt, field.TypeTime, value)
		_node.QueuedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastHeartbeat(); ok {
		_spec.SetField(job.FieldLastHeartbeat, field.TypeTime, value)
		_node.LastHeartbeat = &value
	}
	if value, ok := _c.mutation.WorkerID(); ok {
		_spec.SetField(job.FieldWorkerID, field.TypeString, value)
		_node.WorkerID = &value
	}
	if value, ok := _c.mutation.EstimatedCost(); ok {
		_spec.SetField(job.FieldEstimatedCost, field.TypeFloat64, value)
		_node.EstimatedCost = value
	}
	if value, ok := _c.mutation.ActualCost(); ok {
		_spec.SetField(job.FieldActualCost, field.TypeFloat64, value)
		_node.ActualCost = value
	}
	if value, ok := _c.mutation.CurrentPhaseIndex(); ok {
		_spec.SetField(job.FieldCurrentPhaseIndex, field.TypeInt, value)
		_node.CurrentPhaseIndex = value
	}
	if value, ok := _c.mutation.RecoveryAttempts(); ok {
		_spec.SetField(job.FieldRecoveryAttempts, field.TypeInt, value)
		_node.RecoveryAttempts = value
	}
	if value, ok := _c.mutation.MediaID(); ok {
		_spec.SetField(job.FieldMediaID, field.TypeString, value)
		_node.MediaID = &value
	}
	if value, ok := _c.mutation.SstRecordID(); ok {
		_spec.SetField(job.FieldSstRecordID, field.TypeString, value)
		_node.SstRecordID = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ErrorTimestamp(); ok {
		_spec.SetField(job.FieldErrorTimestamp, field.TypeTime, value)
		_node.ErrorTimestamp = &value
	}
	if nodes := _c.mutation.PhasesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
}

// Save creates the Job entities in the database.
func (_c *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Job, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
