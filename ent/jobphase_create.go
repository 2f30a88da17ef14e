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
)

// JobPhaseCreate is the builder for creating a JobPhase entity.
type JobPhaseCreate struct {
	config
	mutation *JobPhaseMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *JobPhaseCreate) SetJobID(v int) *JobPhaseCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *JobPhaseCreate) SetName(v jobphase.Name) *JobPhaseCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPhaseIndex sets the "phase_index" field.
func (_c *JobPhaseCreate) SetPhaseIndex(v int) *JobPhaseCreate {
	_c.mutation.SetPhaseIndex(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobPhaseCreate) SetStatus(v jobphase.Status) *JobPhaseCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *JobPhaseCreate) SetNillableStatus(v *jobphase.Status) *JobPhaseCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTierIndex sets the "tier_index" field.
func (_c *JobPhaseCreate) SetTierIndex(v int) *JobPhaseCreate {
	_c.mutation.SetTierIndex(v)
	return _c
}

// SetNillableTierIndex sets the "tier_index" field if the given value is not nil.
func (_c *JobPhaseCreate) SetNillableTierIndex(v *int) *JobPhaseCreate {
	if v != nil {
		_c.SetTierIndex(*v)
	}
	return _c
}

// SetTierLabel sets the "tier_label" field.
func (_c *JobPhaseCreate) SetTierLabel(v string) *JobPhaseCreate {
	_c.mutation.SetTierLabel(v)
	return _c
}

// SetNillableTierLabel sets the "tier_label" field if the given value is not nil.
func (_c *JobPhaseCreate) SetNillableTierLabel(v *string) *JobPhaseCreate {
	if v != nil {
		_c.SetTierLabel(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *JobPhaseCreate) SetModel(v string) *JobPhaseCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *JobPhaseCreate) SetNillableModel(v *string) *JobPhaseCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetTierReason sets the "tier_reason" field.
func (_c *JobPhaseCreate) SetTierReason(v string) *JobPhaseCreate {
	_c.mutation.SetTierReason(v)
	return _c
}

// SetNillableTierReason sets the "tier_reason" field if the given value is not nil.
func (_c *JobPhaseCreate) SetNillableTierReason(v *string) *JobPhaseCreate {
	if v != nil {
		_c.SetTierReason(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *JobPhaseCreate) SetAttempts(v int) *JobPhaseCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *JobPhaseCreate) SetNillableAttempts(v *int) *JobPhaseCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetCost sets the "cost" field.
func (_c *JobPhaseCreate) SetCost(v float64) *JobPhaseCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_c *JobPhaseCreate) SetNillableCost(v *float64) *JobPhaseCreate {
	if v != nil {
		_c.SetCost(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *JobPhaseCreate) SetInputTokens(v int) *JobPhaseCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *JobPhaseCreate) SetNillableInputTokens(v *int) *JobPhaseCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *JobPhaseCreate) SetOutputTokens(v int) *JobPhaseCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *JobPhaseCreate) SetNillableOutputTokens(v *int) *JobPhaseCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *JobPhaseCreate) SetStartedAt(v time.Time) *JobPhaseCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *JobPhaseCreate) SetNillableStartedAt(v *time.Time) *JobPhaseCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *JobPhaseCreate) SetCompletedAt(v time.Time) *JobPhaseCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *JobPhaseCreate) SetNillableCompletedAt(v *time.Time) *JobPhaseCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDeliverablePath sets the "deliverable_path" field.
func (_c *JobPhaseCreate) SetDeliverablePath(v string) *JobPhaseCreate {
	_c.mutation.SetDeliverablePath(v)
	return _c
}

// SetNillableDeliverablePath sets the "deliverable_path" field if the given value is not nil.
func (_c *JobPhaseCreate) SetNillableDeliverablePath(v *string) *JobPhaseCreate {
	if v != nil {
		_c.SetDeliverablePath(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *JobPhaseCreate) SetErrorMessage(v string) *JobPhaseCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *JobPhaseCreate) SetNillableErrorMessage(v *string) *JobPhaseCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *JobPhaseCreate) SetJob(v *Job) *JobPhaseCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the JobPhaseMutation object of the builder.
func (_c *JobPhaseCreate) Mutation() *JobPhaseMutation {
	return _c.mutation
}

// Save creates the JobPhase in the database.
func (_c *JobPhaseCreate) Save(ctx context.Context) (*JobPhase, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobPhaseCreate) SaveX(ctx context.Context) *JobPhase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobPhaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobPhaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobPhaseCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := jobphase.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TierIndex(); !ok {
		v := jobphase.DefaultTierIndex
		_c.mutation.SetTierIndex(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := jobphase.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.Cost(); !ok {
		v := jobphase.DefaultCost
		_c.mutation.SetCost(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := jobphase.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := jobphase.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobPhaseCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "JobPhase.job_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "JobPhase.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := jobphase.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "JobPhase.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PhaseIndex(); !ok {
		return &ValidationError{Name: "phase_index", err: errors.New(`ent: missing required field "JobPhase.phase_index"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "JobPhase.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := jobphase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobPhase.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TierIndex(); !ok {
		return &ValidationError{Name: "tier_index", err: errors.New(`ent: missing required field "JobPhase.tier_index"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "JobPhase.attempts"`)}
	}
	if _, ok := _c.mutation.Cost(); !ok {
		return &ValidationError{Name: "cost", err: errors.New(`ent: missing required field "JobPhase.cost"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "JobPhase.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "JobPhase.output_tokens"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "JobPhase.job"`)}
	}
	return nil
}

func (_c *JobPhaseCreate) sqlSave(ctx context.Context) (*JobPhase, error) {
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

func (_c *JobPhaseCreate) createSpec() (*JobPhase, *sqlgraph.CreateSpec) {
	var (
		_node = &JobPhase{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(jobphase.Table, sqlgraph.NewFieldSpec(jobphase.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(jobphase.FieldName, field.TypeEnum, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.PhaseIndex(); ok {
		_spec.SetField(jobphase.FieldPhaseIndex, field.TypeInt, value)
		_node.PhaseIndex = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(jobphase.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TierIndex(); ok {
		_spec.SetField(jobphase.FieldTierIndex, field.TypeInt, value)
		_node.TierIndex = value
	}
	if value, ok := _c.mutation.TierLabel(); ok {
		_spec.SetField(jobphase.FieldTierLabel, field.TypeString, value)
		_node.TierLabel = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(jobphase.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.TierReason(); ok {
		_spec.SetField(jobphase.FieldTierReason, field.TypeString, value)
		_node.TierReason = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(jobphase.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(jobphase.FieldCost, field.TypeFloat64, value)
		_node.Cost = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(jobphase.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(jobphase.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(jobphase.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(jobphase.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DeliverablePath(); ok {
		_spec.SetField(jobphase.FieldDeliverablePath, field.TypeString, value)
		_node.DeliverablePath = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(jobphase.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobphase.JobTable,
			Columns: []string{jobphase.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobPhaseCreateBulk is the builder for creating many JobPhase entities in bulk.
type JobPhaseCreateBulk struct {
	config
	err      error
	builders []*JobPhaseCreate
}

// Save creates the JobPhase entities in the database.
func (_c *JobPhaseCreateBulk) Save(ctx context.Context) ([]*JobPhase, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobPhase, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobPhaseMutation)
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
func (_c *JobPhaseCreateBulk) SaveX(ctx context.Context) []*JobPhase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobPhaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobPhaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
