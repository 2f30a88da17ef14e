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
	"github.com/cardigan-project/cardigan/ent/ingestrecord"
	"github.com/cardigan-project/cardigan/ent/predicate"
)

// IngestRecordUpdate is the builder for updating IngestRecord entities.
type IngestRecordUpdate struct {
	config
	hooks    []Hook
	mutation *IngestRecordMutation
}

// Where appends a list predicates to the IngestRecordUpdate builder.
func (_u *IngestRecordUpdate) Where(ps ...predicate.IngestRecord) *IngestRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRemoteName sets the "remote_name" field.
func (_u *IngestRecordUpdate) SetRemoteName(v string) *IngestRecordUpdate {
	_u.mutation.SetRemoteName(v)
	return _u
}

// SetNillableRemoteName sets the "remote_name" field if the given value is not nil.
func (_u *IngestRecordUpdate) SetNillableRemoteName(v *string) *IngestRecordUpdate {
	if v != nil {
		_u.SetRemoteName(*v)
	}
	return _u
}

// SetSize sets the "size" field.
func (_u *IngestRecordUpdate) SetSize(v int64) *IngestRecordUpdate {
	_u.mutation.ResetSize()
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *IngestRecordUpdate) SetNillableSize(v *int64) *IngestRecordUpdate {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// AddSize adds value to the "size" field.
func (_u *IngestRecordUpdate) AddSize(v int64) *IngestRecordUpdate {
	_u.mutation.AddSize(v)
	return _u
}

// SetModifiedAt sets the "modified_at" field.
func (_u *IngestRecordUpdate) SetModifiedAt(v time.Time) *IngestRecordUpdate {
	_u.mutation.SetModifiedAt(v)
	return _u
}

// SetNillableModifiedAt sets the "modified_at" field if the given value is not nil.
func (_u *IngestRecordUpdate) SetNillableModifiedAt(v *time.Time) *IngestRecordUpdate {
	if v != nil {
		_u.SetModifiedAt(*v)
	}
	return _u
}

// ClearModifiedAt clears the value of the "modified_at" field.
func (_u *IngestRecordUpdate) ClearModifiedAt() *IngestRecordUpdate {
	_u.mutation.ClearModifiedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *IngestRecordUpdate) SetStatus(v ingestrecord.Status) *IngestRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IngestRecordUpdate) SetNillableStatus(v *ingestrecord.Status) *IngestRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *IngestRecordUpdate) SetJobID(v int) *IngestRecordUpdate {
	_u.mutation.ResetJobID()
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *IngestRecordUpdate) SetNillableJobID(v *int) *IngestRecordUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// AddJobID adds value to the "job_id" field.
func (_u *IngestRecordUpdate) AddJobID(v int) *IngestRecordUpdate {
	_u.mutation.AddJobID(v)
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *IngestRecordUpdate) ClearJobID() *IngestRecordUpdate {
	_u.mutation.ClearJobID()
	return _u
}

// SetFirstSeen sets the "first_seen" field.
func (_u *IngestRecordUpdate) SetFirstSeen(v time.Time) *IngestRecordUpdate {
	_u.mutation.SetFirstSeen(v)
	return _u
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_u *IngestRecordUpdate) SetNillableFirstSeen(v *time.Time) *IngestRecordUpdate {
	if v != nil {
		_u.SetFirstSeen(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *IngestRecordUpdate) SetLastSeen(v time.Time) *IngestRecordUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *IngestRecordUpdate) SetNillableLastSeen(v *time.Time) *IngestRecordUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// Mutation returns the IngestRecordMutation object of the builder.
func (_u *IngestRecordUpdate) Mutation() *IngestRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IngestRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IngestRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IngestRecordUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := ingestrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IngestRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IngestRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ingestrecord.Table, ingestrecord.Columns, sqlgraph.NewFieldSpec(ingestrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RemoteName(); ok {
		_spec.SetField(ingestrecord.FieldRemoteName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(ingestrecord.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSize(); ok {
		_spec.AddField(ingestrecord.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ModifiedAt(); ok {
		_spec.SetField(ingestrecord.FieldModifiedAt, field.TypeTime, value)
	}
	if _u.mutation.ModifiedAtCleared() {
		_spec.ClearField(ingestrecord.FieldModifiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ingestrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(ingestrecord.FieldJobID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedJobID(); ok {
		_spec.AddField(ingestrecord.FieldJobID, field.TypeInt, value)
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(ingestrecord.FieldJobID, field.TypeInt)
	}
	if value, ok := _u.mutation.FirstSeen(); ok {
		_spec.SetField(ingestrecord.FieldFirstSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(ingestrecord.FieldLastSeen, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IngestRecordUpdateOne is the builder for updating a single IngestRecord entity.
type IngestRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IngestRecordMutation
}

// SetRemoteName sets the "remote_name" field.
func (_u *IngestRecordUpdateOne) SetRemoteName(v string) *IngestRecordUpdateOne {
	_u.mutation.SetRemoteName(v)
	return _u
}

// SetNillableRemoteName sets the "remote_name" field if the given value is not nil.
func (_u *IngestRecordUpdateOne) SetNillableRemoteName(v *string) *IngestRecordUpdateOne {
	if v != nil {
		_u.SetRemoteName(*v)
	}
	return _u
}

// SetSize sets the "size" field.
func (_u *IngestRecordUpdateOne) SetSize(v int64) *IngestRecordUpdateOne {
	_u.mutation.ResetSize()
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *IngestRecordUpdateOne) SetNillableSize(v *int64) *IngestRecordUpdateOne {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// AddSize adds value to the "size" field.
func (_u *IngestRecordUpdateOne) AddSize(v int64) *IngestRecordUpdateOne {
	_u.mutation.AddSize(v)
	return _u
}

// SetModifiedAt sets the "modified_at" field.
func (_u *IngestRecordUpdateOne) SetModifiedAt(v time.Time) *IngestRecordUpdateOne {
	_u.mutation.SetModifiedAt(v)
	return _u
}

// SetNillableModifiedAt sets the "modified_at" field if the given value is not nil.
func (_u *IngestRecordUpdateOne) SetNillableModifiedAt(v *time.Time) *IngestRecordUpdateOne {
	if v != nil {
		_u.SetModifiedAt(*v)
	}
	return _u
}

// ClearModifiedAt clears the value of the "modified_at" field.
func (_u *IngestRecordUpdateOne) ClearModifiedAt() *IngestRecordUpdateOne {
	_u.mutation.ClearModifiedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *IngestRecordUpdateOne) SetStatus(v ingestrecord.Status) *IngestRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IngestRecordUpdateOne) SetNillableStatus(v *ingestrecord.Status) *IngestRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *IngestRecordUpdateOne) SetJobID(v int) *IngestRecordUpdateOne {
	_u.mutation.ResetJobID()
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *IngestRecordUpdateOne) SetNillableJobID(v *int) *IngestRecordUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// AddJobID adds value to the "job_id" field.
func (_u *IngestRecordUpdateOne) AddJobID(v int) *IngestRecordUpdateOne {
	_u.mutation.AddJobID(v)
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *IngestRecordUpdateOne) ClearJobID() *IngestRecordUpdateOne {
	_u.mutation.ClearJobID()
	return _u
}

// SetFirstSeen sets the "first_seen" field.
func (_u *IngestRecordUpdateOne) SetFirstSeen(v time.Time) *IngestRecordUpdateOne {
	_u.mutation.SetFirstSeen(v)
	return _u
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_u *IngestRecordUpdateOne) SetNillableFirstSeen(v *time.Time) *IngestRecordUpdateOne {
	if v != nil {
		_u.SetFirstSeen(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *IngestRecordUpdateOne) SetLastSeen(v time.Time) *IngestRecordUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *IngestRecordUpdateOne) SetNillableLastSeen(v *time.Time) *IngestRecordUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// Mutation returns the IngestRecordMutation object of the builder.
func (_u *IngestRecordUpdateOne) Mutation() *IngestRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the IngestRecordUpdate builder.
func (_u *IngestRecordUpdateOne) Where(ps ...predicate.IngestRecord) *IngestRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IngestRecordUpdateOne) Select(field string, fields ...string) *IngestRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IngestRecord entity.
func (_u *IngestRecordUpdateOne) Save(ctx context.Context) (*IngestRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestRecordUpdateOne) SaveX(ctx context.Context) *IngestRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IngestRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IngestRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := ingestrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IngestRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IngestRecordUpdateOne) sqlSave(ctx context.Context) (_node *IngestRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ingestrecord.Table, ingestrecord.Columns, sqlgraph.NewFieldSpec(ingestrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IngestRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ingestrecord.FieldID)
		for _, f := range fields {
			if !ingestrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ingestrecord.FieldID {
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
	if value, ok := _u.mutation.RemoteName(); ok {
		_spec.SetField(ingestrecord.FieldRemoteName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(ingestrecord.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSize(); ok {
		_spec.AddField(ingestrecord.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ModifiedAt(); ok {
		_spec.SetField(ingestrecord.FieldModifiedAt, field.TypeTime, value)
	}
	if _u.mutation.ModifiedAtCleared() {
		_spec.ClearField(ingestrecord.FieldModifiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ingestrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(ingestrecord.FieldJobID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedJobID(); ok {
		_spec.AddField(ingestrecord.FieldJobID, field.TypeInt, value)
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(ingestrecord.FieldJobID, field.TypeInt)
	}
	if value, ok := _u.mutation.FirstSeen(); ok {
		_spec.SetField(ingestrecord.FieldFirstSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(ingestrecord.FieldLastSeen, field.TypeTime, value)
	}
	_node = &IngestRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
