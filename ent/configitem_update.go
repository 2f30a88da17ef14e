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
	"github.com/cardigan-project/cardigan/ent/configitem"
	"github.com/cardigan-project/cardigan/ent/predicate"
)

// ConfigItemUpdate is the builder for updating ConfigItem entities.
type ConfigItemUpdate struct {
	config
	hooks    []Hook
	mutation *ConfigItemMutation
}

// Where appends a list predicates to the ConfigItemUpdate builder.
func (_u *ConfigItemUpdate) Where(ps ...predicate.ConfigItem) *ConfigItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *ConfigItemUpdate) SetKey(v string) *ConfigItemUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *ConfigItemUpdate) SetNillableKey(v *string) *ConfigItemUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *ConfigItemUpdate) SetValue(v map[string]interface{}) *ConfigItemUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetValueType sets the "value_type" field.
func (_u *ConfigItemUpdate) SetValueType(v configitem.ValueType) *ConfigItemUpdate {
	_u.mutation.SetValueType(v)
	return _u
}

// SetNillableValueType sets the "value_type" field if the given value is not nil.
func (_u *ConfigItemUpdate) SetNillableValueType(v *configitem.ValueType) *ConfigItemUpdate {
	if v != nil {
		_u.SetValueType(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConfigItemUpdate) SetUpdatedAt(v time.Time) *ConfigItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConfigItemMutation object of the builder.
func (_u *ConfigItemUpdate) Mutation() *ConfigItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConfigItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConfigItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConfigItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConfigItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConfigItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := configitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConfigItemUpdate) check() error {
	if v, ok := _u.mutation.ValueType(); ok {
		if err := configitem.ValueTypeValidator(v); err != nil {
			return &ValidationError{Name: "value_type", err: fmt.Errorf(`ent: validator failed for field "ConfigItem.value_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ConfigItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(configitem.Table, configitem.Columns, sqlgraph.NewFieldSpec(configitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(configitem.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(configitem.FieldValue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ValueType(); ok {
		_spec.SetField(configitem.FieldValueType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(configitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{configitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConfigItemUpdateOne is the builder for updating a single ConfigItem entity.
type ConfigItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConfigItemMutation
}

// SetKey sets the "key" field.
func (_u *ConfigItemUpdateOne) SetKey(v string) *ConfigItemUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *ConfigItemUpdateOne) SetNillableKey(v *string) *ConfigItemUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *ConfigItemUpdateOne) SetValue(v map[string]interface{}) *ConfigItemUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetValueType sets the "value_type" field.
func (_u *ConfigItemUpdateOne) SetValueType(v configitem.ValueType) *ConfigItemUpdateOne {
	_u.mutation.SetValueType(v)
	return _u
}

// SetNillableValueType sets the "value_type" field if the given value is not nil.
func (_u *ConfigItemUpdateOne) SetNillableValueType(v *configitem.ValueType) *ConfigItemUpdateOne {
	if v != nil {
		_u.SetValueType(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConfigItemUpdateOne) SetUpdatedAt(v time.Time) *ConfigItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConfigItemMutation object of the builder.
func (_u *ConfigItemUpdateOne) Mutation() *ConfigItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConfigItemUpdate builder.
func (_u *ConfigItemUpdateOne) Where(ps ...predicate.ConfigItem) *ConfigItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConfigItemUpdateOne) Select(field string, fields ...string) *ConfigItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConfigItem entity.
func (_u *ConfigItemUpdateOne) Save(ctx context.Context) (*ConfigItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConfigItemUpdateOne) SaveX(ctx context.Context) *ConfigItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConfigItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConfigItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConfigItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := configitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConfigItemUpdateOne) check() error {
	if v, ok := _u.mutation.ValueType(); ok {
		if err := configitem.ValueTypeValidator(v); err != nil {
			return &ValidationError{Name: "value_type", err: fmt.Errorf(`ent: validator failed for field "ConfigItem.value_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ConfigItemUpdateOne) sqlSave(ctx context.Context) (_node *ConfigItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(configitem.Table, configitem.Columns, sqlgraph.NewFieldSpec(configitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConfigItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, configitem.FieldID)
		for _, f := range fields {
			if !configitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != configitem.FieldID {
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
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(configitem.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(configitem.FieldValue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ValueType(); ok {
		_spec.SetField(configitem.FieldValueType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(configitem.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ConfigItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{configitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
