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
)

// JobPhaseUpdate is the builder for updating JobPhase entities.
type JobPhaseUpdate struct {
	config
	hooks    []Hook
	mutation *JobPhaseMutation
}

// Where appends a list predicates to the JobPhaseUpdate builder.
func (_u *JobPhaseUpdate) Where(ps ...predicate.JobPhase) *JobPhaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *JobPhaseUpdate) SetJobID(v int) *JobPhaseUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *JobPhaseUpdate) SetNillableJobID(v *int) *JobPhaseUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *JobPhaseUpdate) SetName(v jobphase.Name) *JobPhaseUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *JobPhaseUpdate) SetNillableName(v *jobphase.Name) *JobPhaseUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPhaseIndex sets the "phase_index" field.
func (_u *JobPhaseUpdate) SetPhaseIndex(v int) *JobPhaseUpdate {
	_u.mutation.ResetPhaseIndex()
	_u.mutation.SetPhaseIndex(v)
	return _u
}

// SetNillablePhaseIndex sets the "phase_index" field if the given value is not nil.
func (_u *JobPhaseUpdate) SetNillablePhaseIndex(v *int) *JobPhaseUpdate {
	if v != nil {
		_u.SetPhaseIndex(*v)
	}
	return _u
}

// AddPhaseIndex adds value to the "phase_index" field.
func (_u *JobPhaseUpdate) AddPhaseIndex(v int) *JobPhaseUpdate {
	_u.mutation.AddPhaseIndex(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobPhaseUpdate) SetStatus(v jobphase.Status) *JobPhaseUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobPhaseUpdate) SetNillableStatus(v *jobphase.Status) *JobPhaseUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTierIndex sets the "tier_index" field.
func (_u *JobPhaseUpdate) SetTierIndex(v int) *JobPhaseUpdate {
	_u.mutation.ResetTierIndex()
	_u.mutation.SetTierIndex(v)
	return _u
}

// SetNillableTierIndex sets the "tier_index" field if the given value is not nil.
func (_u *JobPhaseUpdate) SetNillableTierIndex(v *int) *JobPhaseUpdate {
	if v != nil {
		_u.SetTierIndex(*v)
	}
	return _u
}

// AddTierIndex adds value to the "tier_index" field.
func (_u *JobPhaseUpdate) AddTierIndex(v int) *JobPhaseUpdate {
	_u.mutation.AddTierIndex(v)
	return _u
}

// SetTierLabel sets the "tier_label" field.
func (_u *JobPhaseUpdate) SetTierLabel(v string) *JobPhaseUpdate {
	_u.mutation.SetTierLabel(v)
	return _u
}

// SetNillableTierLabel sets the "tier_label" field if the given value is not nil.
func (_u *JobPhaseUpdate) SetNillableTierLabel(v *string) *JobPhaseUpdate {
	if v != nil {
		_u.SetTierLabel(*v)
	}
	return _u
}

// ClearTierLabel clears the value of the "tier_label" field.
func (_u *JobPhaseUpdate) ClearTierLabel() *JobPhaseUpdate {
	_u.mutation.ClearTierLabel()
	return _u
}

// SetModel sets the "model" field.
func (_u *JobPhaseUpdate) SetModel(v string) *JobPhaseUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *JobPhaseUpdate) SetNillableModel(v *string) *JobPhaseUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *JobPhaseUpdate) ClearModel() *JobPhaseUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetTierReason sets the "tier_reason" field.
func (_u *JobPhaseUpdate) SetTierReason(v string) *JobPhaseUpdate {
	_u.mutation.SetTierReason(v)
	return _u
}

// SetNillableTierReason sets the "tier_reason" field if the given value is not nil.
func (_u *JobPhaseUpdate) SetNillableTierReason(v *string) *JobPhaseUpdate {
	if v != nil {
		_u.SetTierReason(*v)
	}
	return _u
}

// ClearTierReason clears the value of the "tier_reason" field.
func (_u *JobPhaseUpdate) ClearTierReason() *JobPhaseUpdate {
	_u.mutation.ClearTierReason()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *JobPhaseUpdate) SetAttempts(v int) *JobPhaseUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *JobPhaseUpdate) SetNillableAttempts(v *int) *JobPhaseUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *JobPhaseUpdate) AddAttempts(v int) *JobPhaseUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCost sets the "cost" field.
func (_u *JobPhaseUpdate) SetCost(v float64) *JobPhaseUpdate {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *JobPhaseUpdate) SetNillableCost(v *float64) *JobPhaseUpdate {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *JobPhaseUpdate) AddCost(v float64) *JobPhaseUpdate {
	_u.mutation.AddCost(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *JobPhaseUpdate) SetInputTokens(v int) *JobPhaseUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *JobPhaseUpdate) SetNillableInputTokens(v *int) *JobPhaseUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *JobPhaseUpdate) AddInputTokens(v int) *JobPhaseUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *JobPhaseUpdate) SetOutputTokens(v int) *JobPhaseUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *JobPhaseUpdate) SetNillableOutputTokens(v *int) *JobPhaseUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *JobPhaseUpdate) AddOutputTokens(v int) *JobPhaseUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobPhaseUpdate) SetStartedAt(v time.Time) *JobPhaseUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobPhaseUpdate) SetNillableStartedAt(v *time.Time) *JobPhaseUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobPhaseUpdate) ClearStartedAt() *JobPhaseUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobPhaseUpdate) SetCompletedAt(v time.Time) *JobPhaseUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobPhaseUpdate) SetNillableCompletedAt(v *time.Time) *JobPhaseUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobPhaseUpdate) ClearCompletedAt() *JobPhaseUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeliverablePath sets the "deliverable_path" field.
func (_u *JobPhaseUpdate) SetDeliverablePath(v string) *JobPhaseUpdate {
	_u.mutation.SetDeliverablePath(v)
	return _u
}

// SetNillableDeliverablePath sets the "deliverable_path" field if the given value is not nil.
func (_u *JobPhaseUpdate) SetNillableDeliverablePath(v *string) *JobPhaseUpdate {
	if v != nil {
		_u.SetDeliverablePath(*v)
	}
	return _u
}

// ClearDeliverablePath clears the value of the "deliverable_path" field.
func (_u *JobPhaseUpdate) ClearDeliverablePath() *JobPhaseUpdate {
	_u.mutation.ClearDeliverablePath()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JobPhaseUpdate) SetErrorMessage(v string) *JobPhaseUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JobPhaseUpdate) SetNillableErrorMessage(v *string) *JobPhaseUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *JobPhaseUpdate) ClearErrorMessage() *JobPhaseUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *JobPhaseUpdate) SetJob(v *Job) *JobPhaseUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the JobPhaseMutation object of the builder.
func (_u *JobPhaseUpdate) Mutation() *JobPhaseMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *JobPhaseUpdate) ClearJob() *JobPhaseUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobPhaseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobPhaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobPhaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobPhaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobPhaseUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := jobphase.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "JobPhase.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := jobphase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobPhase.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobPhase.job"`)
	}
	return nil
}

func (_u *JobPhaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobphase.Table, jobphase.Columns, sqlgraph.NewFieldSpec(jobphase.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(jobphase.FieldName, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PhaseIndex(); ok {
		_spec.SetField(jobphase.FieldPhaseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPhaseIndex(); ok {
		_spec.AddField(jobphase.FieldPhaseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(jobphase.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TierIndex(); ok {
		_spec.SetField(jobphase.FieldTierIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTierIndex(); ok {
		_spec.AddField(jobphase.FieldTierIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TierLabel(); ok {
		_spec.SetField(jobphase.FieldTierLabel, field.TypeString, value)
	}
	if _u.mutation.TierLabelCleared() {
		_spec.ClearField(jobphase.FieldTierLabel, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(jobphase.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(jobphase.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.TierReason(); ok {
		_spec.SetField(jobphase.FieldTierReason, field.TypeString, value)
	}
	if _u.mutation.TierReasonCleared() {
		_spec.ClearField(jobphase.FieldTierReason, field.TypeString)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(jobphase.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(jobphase.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(jobphase.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(jobphase.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(jobphase.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(jobphase.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(jobphase.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(jobphase.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(jobphase.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(jobphase.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(jobphase.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(jobphase.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeliverablePath(); ok {
		_spec.SetField(jobphase.FieldDeliverablePath, field.TypeString, value)
	}
	if _u.mutation.DeliverablePathCleared() {
		_spec.ClearField(jobphase.FieldDeliverablePath, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(jobphase.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(jobphase.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobphase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobPhaseUpdateOne is the builder for updating a single JobPhase entity.
type JobPhaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobPhaseMutation
}

// SetJobID sets the "job_id" field.
func (_u *JobPhaseUpdateOne) SetJobID(v int) *JobPhaseUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *JobPhaseUpdateOne) SetNillableJobID(v *int) *JobPhaseUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *JobPhaseUpdateOne) SetName(v jobphase.Name) *JobPhaseUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *JobPhaseUpdateOne) SetNillableName(v *jobphase.Name) *JobPhaseUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPhaseIndex sets the "phase_index" field.
func (_u *JobPhaseUpdateOne) SetPhaseIndex(v int) *JobPhaseUpdateOne {
	_u.mutation.ResetPhaseIndex()
	_u.mutation.SetPhaseIndex(v)
	return _u
}

// SetNillablePhaseIndex sets the "phase_index" field if the given value is not nil.
func (_u *JobPhaseUpdateOne) SetNillablePhaseIndex(v *int) *JobPhaseUpdateOne {
	if v != nil {
		_u.SetPhaseIndex(*v)
	}
	return _u
}

// AddPhaseIndex adds value to the "phase_index" field.
func (_u *JobPhaseUpdateOne) AddPhaseIndex(v int) *JobPhaseUpdateOne {
	_u.mutation.AddPhaseIndex(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobPhaseUpdateOne) SetStatus(v jobphase.Status) *JobPhaseUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobPhaseUpdateOne) SetNillableStatus(v *jobphase.Status) *JobPhaseUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTierIndex sets the "tier_index" field.
func (_u *JobPhaseUpdateOne) SetTierIndex(v int) *JobPhaseUpdateOne {
	_u.mutation.ResetTierIndex()
	_u.mutation.SetTierIndex(v)
	return _u
}

// SetNillableTierIndex sets the "tier_index" field if the given value is not nil.
func (_u *JobPhaseUpdateOne) SetNillableTierIndex(v *int) *JobPhaseUpdateOne {
	if v != nil {
		_u.SetTierIndex(*v)
	}
	return _u
}

// AddTierIndex adds value to the "tier_index" field.
func (_u *JobPhaseUpdateOne) AddTierIndex(v int) *JobPhaseUpdateOne {
	_u.mutation.AddTierIndex(v)
	return _u
}

// SetTierLabel sets the "tier_label" field.
func (_u *JobPhaseUpdateOne) SetTierLabel(v string) *JobPhaseUpdateOne {
	_u.mutation.SetTierLabel(v)
	return _u
}

// SetNillableTierLabel sets the "tier_label" field if the given value is not nil.
func (_u *JobPhaseUpdateOne) SetNillableTierLabel(v *string) *JobPhaseUpdateOne {
	if v != nil {
		_u.SetTierLabel(*v)
	}
	return _u
}

// ClearTierLabel clears the value of the "tier_label" field.
func (_u *JobPhaseUpdateOne) ClearTierLabel() *JobPhaseUpdateOne {
	_u.mutation.ClearTierLabel()
	return _u
}

// SetModel sets the "model" field.
func (_u *JobPhaseUpdateOne) SetModel(v string) *JobPhaseUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *JobPhaseUpdateOne) SetNillableModel(v *string) *JobPhaseUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *JobPhaseUpdateOne) ClearModel() *JobPhaseUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetTierReason sets the "tier_reason" field.
func (_u *JobPhaseUpdateOne) SetTierReason(v string) *JobPhaseUpdateOne {
	_u.mutation.SetTierReason(v)
	return _u
}

// SetNillableTierReason sets the "tier_reason" field if the given value is not nil.
func (_u *JobPhaseUpdateOne) SetNillableTierReason(v *string) *JobPhaseUpdateOne {
	if v != nil {
		_u.SetTierReason(*v)
	}
	return _u
}

// ClearTierReason clears the value of the "tier_reason" field.
func (_u *JobPhaseUpdateOne) ClearTierReason() *JobPhaseUpdateOne {
	_u.mutation.ClearTierReason()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *JobPhaseUpdateOne) SetAttempts(v int) *JobPhaseUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *JobPhaseUpdateOne) SetNillableAttempts(v *int) *JobPhaseUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *JobPhaseUpdateOne) AddAttempts(v int) *JobPhaseUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCost sets the "cost" field.
func (_u *JobPhaseUpdateOne) SetCost(v float64) *JobPhaseUpdateOne {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *JobPhaseUpdateOne) SetNillableCost(v *float64) *JobPhaseUpdateOne {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *JobPhaseUpdateOne) AddCost(v float64) *JobPhaseUpdateOne {
	_u.mutation.AddCost(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *JobPhaseUpdateOne) SetInputTokens(v int) *JobPhaseUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *JobPhaseUpdateOne) SetNillableInputTokens(v *int) *JobPhaseUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *JobPhaseUpdateOne) AddInputTokens(v int) *JobPhaseUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *JobPhaseUpdateOne) SetOutputTokens(v int) *JobPhaseUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *JobPhaseUpdateOne) SetNillableOutputTokens(v *int) *JobPhaseUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *JobPhaseUpdateOne) AddOutputTokens(v int) *JobPhaseUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobPhaseUpdateOne) SetStartedAt(v time.Time) *JobPhaseUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobPhaseUpdateOne) SetNillableStartedAt(v *time.Time) *JobPhaseUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobPhaseUpdateOne) ClearStartedAt() *JobPhaseUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobPhaseUpdateOne) SetCompletedAt(v time.Time) *JobPhaseUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobPhaseUpdateOne) SetNillableCompletedAt(v *time.Time) *JobPhaseUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobPhaseUpdateOne) ClearCompletedAt() *JobPhaseUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeliverablePath sets the "deliverable_path" field.
func (_u *JobPhaseUpdateOne) SetDeliverablePath(v string) *JobPhaseUpdateOne {
	_u.mutation.SetDeliverablePath(v)
	return _u
}

// SetNillableDeliverablePath sets the "deliverable_path" field if the given value is not nil.
func (_u *JobPhaseUpdateOne) SetNillableDeliverablePath(v *string) *JobPhaseUpdateOne {
	if v != nil {
		_u.SetDeliverablePath(*v)
	}
	return _u
}

// ClearDeliverablePath clears the value of the "deliverable_path" field.
func (_u *JobPhaseUpdateOne) ClearDeliverablePath() *JobPhaseUpdateOne {
	_u.mutation.ClearDeliverablePath()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JobPhaseUpdateOne) SetErrorMessage(v string) *JobPhaseUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JobPhaseUpdateOne) SetNillableErrorMessage(v *string) *JobPhaseUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *JobPhaseUpdateOne) ClearErrorMessage() *JobPhaseUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *JobPhaseUpdateOne) SetJob(v *Job) *JobPhaseUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the JobPhaseMutation object of the builder.
func (_u *JobPhaseUpdateOne) Mutation() *JobPhaseMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *JobPhaseUpdateOne) ClearJob() *JobPhaseUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the JobPhaseUpdate builder.
func (_u *JobPhaseUpdateOne) Where(ps ...predicate.JobPhase) *JobPhaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobPhaseUpdateOne) Select(field string, fields ...string) *JobPhaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobPhase entity.
func (_u *JobPhaseUpdateOne) Save(ctx context.Context) (*JobPhase, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobPhaseUpdateOne) SaveX(ctx context.Context) *JobPhase {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobPhaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobPhaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobPhaseUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := jobphase.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "JobPhase.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := jobphase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobPhase.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobPhase.job"`)
	}
	return nil
}

func (_u *JobPhaseUpdateOne) sqlSave(ctx context.Context) (_node *JobPhase, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobphase.Table, jobphase.Columns, sqlgraph.NewFieldSpec(jobphase.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobPhase.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobphase.FieldID)
		for _, f := range fields {
			if !jobphase.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobphase.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(jobphase.FieldName, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PhaseIndex(); ok {
		_spec.SetField(jobphase.FieldPhaseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPhaseIndex(); ok {
		_spec.AddField(jobphase.FieldPhaseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(jobphase.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TierIndex(); ok {
		_spec.SetField(jobphase.FieldTierIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTierIndex(); ok {
		_spec.AddField(jobphase.FieldTierIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TierLabel(); ok {
		_spec.SetField(jobphase.FieldTierLabel, field.TypeString, value)
	}
	if _u.mutation.TierLabelCleared() {
		_spec.ClearField(jobphase.FieldTierLabel, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(jobphase.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(jobphase.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.TierReason(); ok {
		_spec.SetField(jobphase.FieldTierReason, field.TypeString, value)
	}
	if _u.mutation.TierReasonCleared() {
		_spec.ClearField(jobphase.FieldTierReason, field.TypeString)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(jobphase.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(jobphase.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(jobphase.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(jobphase.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(jobphase.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(jobphase.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(jobphase.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(jobphase.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(jobphase.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(jobphase.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(jobphase.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(jobphase.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeliverablePath(); ok {
		_spec.SetField(jobphase.FieldDeliverablePath, field.TypeString, value)
	}
	if _u.mutation.DeliverablePathCleared() {
		_spec.ClearField(jobphase.FieldDeliverablePath, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(jobphase.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(jobphase.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &JobPhase{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobphase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
