// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cardigan-project/cardigan/ent/ingestrecord"
)

// IngestRecordCreate is the builder for creating a IngestRecord entity.
type IngestRecordCreate struct {
	config
	mutation *IngestRecordMutation
	hooks    []Hook
}

// SetRemoteName sets the "remote_name" field.
func (_c *IngestRecordCreate) SetRemoteName(v string) *IngestRecordCreate {
	_c.mutation.SetRemoteName(v)
	return _c
}

// SetSize sets the "size" field.
func (_c *IngestRecordCreate) SetSize(v int64) *IngestRecordCreate {
	_c.mutation.SetSize(v)
	return _c
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_c *IngestRecordCreate) SetNillableSize(v *int64) *IngestRecordCreate {
	if v != nil {
		_c.SetSize(*v)
	}
	return _c
}

// SetModifiedAt sets the "modified_at" field.
func (_c *IngestRecordCreate) SetModifiedAt(v time.Time) *IngestRecordCreate {
	_c.mutation.SetModifiedAt(v)
	return _c
}

// SetNillableModifiedAt sets the "modified_at" field if the given value is not nil.
func (_c *IngestRecordCreate) SetNillableModifiedAt(v *time.Time) *IngestRecordCreate {
	if v != nil {
		_c.SetModifiedAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *IngestRecordCreate) SetStatus(v ingestrecord.Status) *IngestRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *IngestRecordCreate) SetNillableStatus(v *ingestrecord.Status) *IngestRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *IngestRecordCreate) SetJobID(v int) *IngestRecordCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_c *IngestRecordCreate) SetNillableJobID(v *int) *IngestRecordCreate {
	if v != nil {
		_c.SetJobID(*v)
	}
	return _c
}

// SetFirstSeen sets the "first_seen" field.
func (_c *IngestRecordCreate) SetFirstSeen(v time.Time) *IngestRecordCreate {
	_c.mutation.SetFirstSeen(v)
	return _c
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_c *IngestRecordCreate) SetNillableFirstSeen(v *time.Time) *IngestRecordCreate {
	if v != nil {
		_c.SetFirstSeen(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *IngestRecordCreate) SetLastSeen(v time.Time) *IngestRecordCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *IngestRecordCreate) SetNillableLastSeen(v *time.Time) *IngestRecordCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// Mutation returns the IngestRecordMutation object of the builder.
func (_c *IngestRecordCreate) Mutation() *IngestRecordMutation {
	return _c.mutation
}

// Save creates the IngestRecord in the database.
func (_c *IngestRecordCreate) Save(ctx context.Context) (*IngestRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IngestRecordCreate) SaveX(ctx context.Context) *IngestRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IngestRecordCreate) defaults() {
	if _, ok := _c.mutation.Size(); !ok {
		v := ingestrecord.DefaultSize
		_c.mutation.SetSize(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := ingestrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		v := ingestrecord.DefaultFirstSeen()
		_c.mutation.SetFirstSeen(v)
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		v := ingestrecord.DefaultLastSeen()
		_c.mutation.SetLastSeen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IngestRecordCreate) check() error {
	if _, ok := _c.mutation.RemoteName(); !ok {
		return &ValidationError{Name: "remote_name", err: errors.New(`ent: missing required field "IngestRecord.remote_name"`)}
	}
	if _, ok := _c.mutation.Size(); !ok {
		return &ValidationError{Name: "size", err: errors.New(`ent: missing required field "IngestRecord.size"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "IngestRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := ingestrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IngestRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		return &ValidationError{Name: "first_seen", err: errors.New(`ent: missing required field "IngestRecord.first_seen"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "IngestRecord.last_seen"`)}
	}
	return nil
}

func (_c *IngestRecordCreate) sqlSave(ctx context.Context) (*IngestRecord, error) {
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

func (_c *IngestRecordCreate) createSpec() (*IngestRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &IngestRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ingestrecord.Table, sqlgraph.NewFieldSpec(ingestrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RemoteName(); ok {
		_spec.SetField(ingestrecord.FieldRemoteName, field.TypeString, value)
		_node.RemoteName = value
	}
	if value, ok := _c.mutation.Size(); ok {
		_spec.SetField(ingestrecord.FieldSize, field.TypeInt64, value)
		_node.Size = value
	}
	if value, ok := _c.mutation.ModifiedAt(); ok {
		_spec.SetField(ingestrecord.FieldModifiedAt, field.TypeTime, value)
		_node.ModifiedAt = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(ingestrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(ingestrecord.FieldJobID, field.TypeInt, value)
		_node.JobID = &value
	}
	if value, ok := _c.mutation.FirstSeen(); ok {
		_spec.SetField(ingestrecord.FieldFirstSeen, field.TypeTime, value)
		_node.FirstSeen = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(ingestrecord.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	return _node, _spec
}

// IngestRecordCreateBulk is the builder for creating many IngestRecord entities in bulk.
type IngestRecordCreateBulk struct {
	config
	err      error
	builders []*IngestRecordCreate
}

// Save creates the IngestRecord entities in the database.
func (_c *IngestRecordCreateBulk) Save(ctx context.Context) ([]*IngestRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IngestRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IngestRecordMutation)
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
func (_c *IngestRecordCreateBulk) SaveX(ctx context.Context) []*IngestRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
