// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cardigan-project/cardigan/ent/configitem"
	"github.com/cardigan-project/cardigan/ent/ingestrecord"
	"github.com/cardigan-project/cardigan/ent/job"
	"github.com/cardigan-project/cardigan/ent/jobphase"
	"github.com/cardigan-project/cardigan/ent/predicate"
	"github.com/cardigan-project/cardigan/ent/sessionevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeConfigItem   = "ConfigItem"
	TypeIngestRecord = "IngestRecord"
	TypeJob          = "Job"
	TypeJobPhase     = "JobPhase"
	TypeSessionEvent = "SessionEvent"
)

// ConfigItemMutation represents an operation that mutates the ConfigItem nodes in the graph.
type ConfigItemMutation struct {
	config
	op            Op
	typ           string
	id            *int
	key           *string
	value         *map[string]interface{}
	value_type    *configitem.ValueType
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ConfigItem, error)
	predicates    []predicate.ConfigItem
}

var _ ent.Mutation = (*ConfigItemMutation)(nil)

// configitemOption allows management of the mutation configuration using functional options.
type configitemOption func(*ConfigItemMutation)

// newConfigItemMutation creates new mutation for the ConfigItem entity.
func newConfigItemMutation(c config, op Op, opts ...configitemOption) *ConfigItemMutation {
	m := &ConfigItemMutation{
		config:        c,
		op:            op,
		typ:           TypeConfigItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConfigItemID sets the ID field of the mutation.
func withConfigItemID(id int) configitemOption {
	return func(m *ConfigItemMutation) {
		var (
			err   error
			once  sync.Once
			value *ConfigItem
		)
		m.oldValue = func(ctx context.Context) (*ConfigItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConfigItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConfigItem sets the old ConfigItem of the mutation.
func withConfigItem(node *ConfigItem) configitemOption {
	return func(m *ConfigItemMutation) {
		m.oldValue = func(context.Context) (*ConfigItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConfigItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConfigItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConfigItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConfigItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConfigItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *ConfigItemMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *ConfigItemMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the ConfigItem entity.
// If the ConfigItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigItemMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *ConfigItemMutation) ResetKey() {
	m.key = nil
}

// SetValue sets the "value" field.
func (m *ConfigItemMutation) SetValue(value map[string]interface{}) {
	m.value = &value
}

// Value returns the value of the "value" field in the mutation.
func (m *ConfigItemMutation) Value() (r map[string]interface{}, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the ConfigItem entity.
// If the ConfigItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigItemMutation) OldValue(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *ConfigItemMutation) ResetValue() {
	m.value = nil
}

// SetValueType sets the "value_type" field.
func (m *ConfigItemMutation) SetValueType(ct configitem.ValueType) {
	m.value_type = &ct
}

// ValueType returns the value of the "value_type" field in the mutation.
func (m *ConfigItemMutation) ValueType() (r configitem.ValueType, exists bool) {
	v := m.value_type
	if v == nil {
		return
	}
	return *v, true
}

// OldValueType returns the old "value_type" field's value of the ConfigItem entity.
// If the ConfigItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigItemMutation) OldValueType(ctx context.Context) (v configitem.ValueType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueType: %w", err)
	}
	return oldValue.ValueType, nil
}

// ResetValueType resets all changes to the "value_type" field.
func (m *ConfigItemMutation) ResetValueType() {
	m.value_type = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConfigItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConfigItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ConfigItem entity.
// If the ConfigItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfigItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConfigItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ConfigItemMutation builder.
func (m *ConfigItemMutation) Where(ps ...predicate.ConfigItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConfigItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConfigItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConfigItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConfigItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConfigItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConfigItem).
func (m *ConfigItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConfigItemMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.key != nil {
		fields = append(fields, configitem.FieldKey)
	}
	if m.value != nil {
		fields = append(fields, configitem.FieldValue)
	}
	if m.value_type != nil {
		fields = append(fields, configitem.FieldValueType)
	}
	if m.updated_at != nil {
		fields = append(fields, configitem.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConfigItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case configitem.FieldKey:
		return m.Key()
	case configitem.FieldValue:
		return m.Value()
	case configitem.FieldValueType:
		return m.ValueType()
	case configitem.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConfigItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case configitem.FieldKey:
		return m.OldKey(ctx)
	case configitem.FieldValue:
		return m.OldValue(ctx)
	case configitem.FieldValueType:
		return m.OldValueType(ctx)
	case configitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConfigItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConfigItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case configitem.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case configitem.FieldValue:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case configitem.FieldValueType:
		v, ok := value.(configitem.ValueType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueType(v)
		return nil
	case configitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConfigItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConfigItemMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConfigItemMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConfigItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ConfigItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConfigItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConfigItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConfigItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ConfigItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConfigItemMutation) ResetField(name string) error {
	switch name {
	case configitem.FieldKey:
		m.ResetKey()
		return nil
	case configitem.FieldValue:
		m.ResetValue()
		return nil
	case configitem.FieldValueType:
		m.ResetValueType()
		return nil
	case configitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ConfigItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConfigItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConfigItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConfigItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConfigItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConfigItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConfigItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConfigItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConfigItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConfigItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConfigItem edge %s", name)
}

// IngestRecordMutation represents an operation that mutates the IngestRecord nodes in the graph.
type IngestRecordMutation struct {
	config
	op            Op
	typ           string
	id            *int
	remote_name   *string
	size          *int64
	addsize       *int64
	modified_at   *time.Time
	status        *ingestrecord.Status
	job_id        *int
	addjob_id     *int
	first_seen    *time.Time
	last_seen     *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*IngestRecord, error)
	predicates    []predicate.IngestRecord
}

var _ ent.Mutation = (*IngestRecordMutation)(nil)

// ingestrecordOption allows management of the mutation configuration using functional options.
type ingestrecordOption func(*IngestRecordMutation)

// newIngestRecordMutation creates new mutation for the IngestRecord entity.
func newIngestRecordMutation(c config, op Op, opts ...ingestrecordOption) *IngestRecordMutation {
	m := &IngestRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeIngestRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIngestRecordID sets the ID field of the mutation.
func withIngestRecordID(id int) ingestrecordOption {
	return func(m *IngestRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *IngestRecord
		)
		m.oldValue = func(ctx context.Context) (*IngestRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IngestRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIngestRecord sets the old IngestRecord of the mutation.
func withIngestRecord(node *IngestRecord) ingestrecordOption {
	return func(m *IngestRecordMutation) {
		m.oldValue = func(context.Context) (*IngestRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IngestRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IngestRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IngestRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IngestRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IngestRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRemoteName sets the "remote_name" field.
func (m *IngestRecordMutation) SetRemoteName(s string) {
	m.remote_name = &s
}

// RemoteName returns the value of the "remote_name" field in the mutation.
func (m *IngestRecordMutation) RemoteName() (r string, exists bool) {
	v := m.remote_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRemoteName returns the old "remote_name" field's value of the IngestRecord entity.
// If the IngestRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRecordMutation) OldRemoteName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemoteName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemoteName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemoteName: %w", err)
	}
	return oldValue.RemoteName, nil
}

// ResetRemoteName resets all changes to the "remote_name" field.
func (m *IngestRecordMutation) ResetRemoteName() {
	m.remote_name = nil
}

// SetSize sets the "size" field.
func (m *IngestRecordMutation) SetSize(i int64) {
	m.size = &i
	m.addsize = nil
}

// Size returns the value of the "size" field in the mutation.
func (m *IngestRecordMutation) Size() (r int64, exists bool) {
	v := m.size
	if v == nil {
		return
	}
	return *v, true
}

// OldSize returns the old "size" field's value of the IngestRecord entity.
// If the IngestRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRecordMutation) OldSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSize: %w", err)
	}
	return oldValue.Size, nil
}

// AddSize adds i to the "size" field.
func (m *IngestRecordMutation) AddSize(i int64) {
	if m.addsize != nil {
		*m.addsize += i
	} else {
		m.addsize = &i
	}
}

// AddedSize returns the value that was added to the "size" field in this mutation.
func (m *IngestRecordMutation) AddedSize() (r int64, exists bool) {
	v := m.addsize
	if v == nil {
		return
	}
	return *v, true
}

// ResetSize resets all changes to the "size" field.
func (m *IngestRecordMutation) ResetSize() {
	m.size = nil
	m.addsize = nil
}

// SetModifiedAt sets the "modified_at" field.
func (m *IngestRecordMutation) SetModifiedAt(t time.Time) {
	m.modified_at = &t
}

// ModifiedAt returns the value of the "modified_at" field in the mutation.
func (m *IngestRecordMutation) ModifiedAt() (r time.Time, exists bool) {
	v := m.modified_at
	if v == nil {
		return
	}
	return *v, true
}

// OldModifiedAt returns the old "modified_at" field's value of the IngestRecord entity.
// If the IngestRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRecordMutation) OldModifiedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModifiedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModifiedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModifiedAt: %w", err)
	}
	return oldValue.ModifiedAt, nil
}

// ClearModifiedAt clears the value of the "modified_at" field.
func (m *IngestRecordMutation) ClearModifiedAt() {
	m.modified_at = nil
	m.clearedFields[ingestrecord.FieldModifiedAt] = struct{}{}
}

// ModifiedAtCleared returns if the "modified_at" field was cleared in this mutation.
func (m *IngestRecordMutation) ModifiedAtCleared() bool {
	_, ok := m.clearedFields[ingestrecord.FieldModifiedAt]
	return ok
}

// ResetModifiedAt resets all changes to the "modified_at" field.
func (m *IngestRecordMutation) ResetModifiedAt() {
	m.modified_at = nil
	delete(m.clearedFields, ingestrecord.FieldModifiedAt)
}

// SetStatus sets the "status" field.
func (m *IngestRecordMutation) SetStatus(i ingestrecord.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *IngestRecordMutation) Status() (r ingestrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the IngestRecord entity.
// If the IngestRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRecordMutation) OldStatus(ctx context.Context) (v ingestrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *IngestRecordMutation) ResetStatus() {
	m.status = nil
}

// SetJobID sets the "job_id" field.
func (m *IngestRecordMutation) SetJobID(i int) {
	m.job_id = &i
	m.addjob_id = nil
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *IngestRecordMutation) JobID() (r int, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the IngestRecord entity.
// If the IngestRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRecordMutation) OldJobID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// AddJobID adds i to the "job_id" field.
func (m *IngestRecordMutation) AddJobID(i int) {
	if m.addjob_id != nil {
		*m.addjob_id += i
	} else {
		m.addjob_id = &i
	}
}

// AddedJobID returns the value that was added to the "job_id" field in this mutation.
func (m *IngestRecordMutation) AddedJobID() (r int, exists bool) {
	v := m.addjob_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearJobID clears the value of the "job_id" field.
func (m *IngestRecordMutation) ClearJobID() {
	m.job_id = nil
	m.addjob_id = nil
	m.clearedFields[ingestrecord.FieldJobID] = struct{}{}
}

// JobIDCleared returns if the "job_id" field was cleared in this mutation.
func (m *IngestRecordMutation) JobIDCleared() bool {
	_, ok := m.clearedFields[ingestrecord.FieldJobID]
	return ok
}

// ResetJobID resets all changes to the "job_id" field.
func (m *IngestRecordMutation) ResetJobID() {
	m.job_id = nil
	m.addjob_id = nil
	delete(m.clearedFields, ingestrecord.FieldJobID)
}

// SetFirstSeen sets the "first_seen" field.
func (m *IngestRecordMutation) SetFirstSeen(t time.Time) {
	m.first_seen = &t
}

// FirstSeen returns the value of the "first_seen" field in the mutation.
func (m *IngestRecordMutation) FirstSeen() (r time.Time, exists bool) {
	v := m.first_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeen returns the old "first_seen" field's value of the IngestRecord entity.
// If the IngestRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRecordMutation) OldFirstSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeen: %w", err)
	}
	return oldValue.FirstSeen, nil
}

// ResetFirstSeen resets all changes to the "first_seen" field.
func (m *IngestRecordMutation) ResetFirstSeen() {
	m.first_seen = nil
}

// SetLastSeen sets the "last_seen" field.
func (m *IngestRecordMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *IngestRecordMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the IngestRecord entity.
// If the IngestRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRecordMutation) OldLastSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *IngestRecordMutation) ResetLastSeen() {
	m.last_seen = nil
}

// Where appends a list predicates to the IngestRecordMutation builder.
func (m *IngestRecordMutation) Where(ps ...predicate.IngestRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IngestRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IngestRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IngestRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IngestRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IngestRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IngestRecord).
func (m *IngestRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IngestRecordMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.remote_name != nil {
		fields = append(fields, ingestrecord.FieldRemoteName)
	}
	if m.size != nil {
		fields = append(fields, ingestrecord.FieldSize)
	}
	if m.modified_at != nil {
		fields = append(fields, ingestrecord.FieldModifiedAt)
	}
	if m.status != nil {
		fields = append(fields, ingestrecord.FieldStatus)
	}
	if m.job_id != nil {
		fields = append(fields, ingestrecord.FieldJobID)
	}
	if m.first_seen != nil {
		fields = append(fields, ingestrecord.FieldFirstSeen)
	}
	if m.last_seen != nil {
		fields = append(fields, ingestrecord.FieldLastSeen)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IngestRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ingestrecord.FieldRemoteName:
		return m.RemoteName()
	case ingestrecord.FieldSize:
		return m.Size()
	case ingestrecord.FieldModifiedAt:
		return m.ModifiedAt()
	case ingestrecord.FieldStatus:
		return m.Status()
	case ingestrecord.FieldJobID:
		return m.JobID()
	case ingestrecord.FieldFirstSeen:
		return m.FirstSeen()
	case ingestrecord.FieldLastSeen:
		return m.LastSeen()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IngestRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ingestrecord.FieldRemoteName:
		return m.OldRemoteName(ctx)
	case ingestrecord.FieldSize:
		return m.OldSize(ctx)
	case ingestrecord.FieldModifiedAt:
		return m.OldModifiedAt(ctx)
	case ingestrecord.FieldStatus:
		return m.OldStatus(ctx)
	case ingestrecord.FieldJobID:
		return m.OldJobID(ctx)
	case ingestrecord.FieldFirstSeen:
		return m.OldFirstSeen(ctx)
	case ingestrecord.FieldLastSeen:
		return m.OldLastSeen(ctx)
	}
	return nil, fmt.Errorf("unknown IngestRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngestRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ingestrecord.FieldRemoteName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemoteName(v)
		return nil
	case ingestrecord.FieldSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSize(v)
		return nil
	case ingestrecord.FieldModifiedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModifiedAt(v)
		return nil
	case ingestrecord.FieldStatus:
		v, ok := value.(ingestrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case ingestrecord.FieldJobID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case ingestrecord.FieldFirstSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeen(v)
		return nil
	case ingestrecord.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	}
	return fmt.Errorf("unknown IngestRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IngestRecordMutation) AddedFields() []string {
	var fields []string
	if m.addsize != nil {
		fields = append(fields, ingestrecord.FieldSize)
	}
	if m.addjob_id != nil {
		fields = append(fields, ingestrecord.FieldJobID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IngestRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ingestrecord.FieldSize:
		return m.AddedSize()
	case ingestrecord.FieldJobID:
		return m.AddedJobID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngestRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ingestrecord.FieldSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSize(v)
		return nil
	case ingestrecord.FieldJobID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddJobID(v)
		return nil
	}
	return fmt.Errorf("unknown IngestRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IngestRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ingestrecord.FieldModifiedAt) {
		fields = append(fields, ingestrecord.FieldModifiedAt)
	}
	if m.FieldCleared(ingestrecord.FieldJobID) {
		fields = append(fields, ingestrecord.FieldJobID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IngestRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IngestRecordMutation) ClearField(name string) error {
	switch name {
	case ingestrecord.FieldModifiedAt:
		m.ClearModifiedAt()
		return nil
	case ingestrecord.FieldJobID:
		m.ClearJobID()
		return nil
	}
	return fmt.Errorf("unknown IngestRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IngestRecordMutation) ResetField(name string) error {
	switch name {
	case ingestrecord.FieldRemoteName:
		m.ResetRemoteName()
		return nil
	case ingestrecord.FieldSize:
		m.ResetSize()
		return nil
	case ingestrecord.FieldModifiedAt:
		m.ResetModifiedAt()
		return nil
	case ingestrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case ingestrecord.FieldJobID:
		m.ResetJobID()
		return nil
	case ingestrecord.FieldFirstSeen:
		m.ResetFirstSeen()
		return nil
	case ingestrecord.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	}
	return fmt.Errorf("unknown IngestRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IngestRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IngestRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IngestRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IngestRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IngestRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IngestRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IngestRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IngestRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IngestRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IngestRecord edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	transcript_file        *string
	project_name           *string
	project_path           *string
	status                 *job.Status
	priority               *int
	addpriority            *int
	retry_count            *int
	addretry_count         *int
	max_retries            *int
	addmax_retries         *int
	queued_at              *time.Time
	started_at             *time.Time
	completed_at           *time.Time
	last_heartbeat         *time.Time
	worker_id              *string
	estimated_cost         *float64
	addestimated_cost      *float64
	actual_cost            *float64
	addactual_cost         *float64
	current_phase_index    *int
	addcurrent_phase_index *int
	recovery_attempts      *int
	addrecovery_attempts   *int
	media_id               *string
	sst_record_id          *string
	error_message          *string
	error_timestamp        *time.Time
	clearedFields          map[string]struct{}
	phases                 map[int]struct{}
	removedphases          map[int]struct{}
	clearedphases          bool
	events                 map[int]struct{}
	removedevents          map[int]struct{}
	clearedevents          bool
	done                   bool
	oldValue               func(context.Context) (*Job, error)
	predicates             []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id int) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTranscriptFile sets the "transcript_file" field.
func (m *JobMutation) SetTranscriptFile(s string) {
	m.transcript_file = &s
}

// TranscriptFile returns the value of the "transcript_file" field in the mutation.
func (m *JobMutation) TranscriptFile() (r string, exists bool) {
	v := m.transcript_file
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscriptFile returns the old "transcript_file" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTranscriptFile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscriptFile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscriptFile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscriptFile: %w", err)
	}
	return oldValue.TranscriptFile, nil
}

// ResetTranscriptFile resets all changes to the "transcript_file" field.
func (m *JobMutation) ResetTranscriptFile() {
	m.transcript_file = nil
}

// SetProjectName sets the "project_name" field.
func (m *JobMutation) SetProjectName(s string) {
	m.project_name = &s
}

// ProjectName returns the value of the "project_name" field in the mutation.
func (m *JobMutation) ProjectName() (r string, exists bool) {
	v := m.project_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectName returns the old "project_name" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldProjectName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectName: %w", err)
	}
	return oldValue.ProjectName, nil
}

// ResetProjectName resets all changes to the "project_name" field.
func (m *JobMutation) ResetProjectName() {
	m.project_name = nil
}

// SetProjectPath sets the "project_path" field.
func (m *JobMutation) SetProjectPath(s string) {
	m.project_path = &s
}

// ProjectPath returns the value of the "project_path" field in the mutation.
func (m *JobMutation) ProjectPath() (r string, exists bool) {
	v := m.project_path
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectPath returns the old "project_path" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldProjectPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectPath: %w", err)
	}
	return oldValue.ProjectPath, nil
}

// ResetProjectPath resets all changes to the "project_path" field.
func (m *JobMutation) ResetProjectPath() {
	m.project_path = nil
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *JobMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *JobMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *JobMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *JobMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *JobMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *JobMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *JobMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *JobMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *JobMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *JobMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *JobMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *JobMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *JobMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *JobMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *JobMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetQueuedAt sets the "queued_at" field.
func (m *JobMutation) SetQueuedAt(t time.Time) {
	m.queued_at = &t
}

// QueuedAt returns the value of the "queued_at" field in the mutation.
func (m *JobMutation) QueuedAt() (r time.Time, exists bool) {
	v := m.queued_at
	if v == nil {
		return
	}
	return *v, true
}

// OldQueuedAt returns the old "queued_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldQueuedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueuedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueuedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueuedAt: %w", err)
	}
	return oldValue.QueuedAt, nil
}

// ResetQueuedAt resets all changes to the "queued_at" field.
func (m *JobMutation) ResetQueuedAt() {
	m.queued_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *JobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[job.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, job.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *JobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *JobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *JobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[job.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *JobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *JobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, job.FieldCompletedAt)
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (m *JobMutation) SetLastHeartbeat(t time.Time) {
	m.last_heartbeat = &t
}

// LastHeartbeat returns the value of the "last_heartbeat" field in the mutation.
func (m *JobMutation) LastHeartbeat() (r time.Time, exists bool) {
	v := m.last_heartbeat
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeat returns the old "last_heartbeat" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastHeartbeat(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeat: %w", err)
	}
	return oldValue.LastHeartbeat, nil
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (m *JobMutation) ClearLastHeartbeat() {
	m.last_heartbeat = nil
	m.clearedFields[job.FieldLastHeartbeat] = struct{}{}
}

// LastHeartbeatCleared returns if the "last_heartbeat" field was cleared in this mutation.
func (m *JobMutation) LastHeartbeatCleared() bool {
	_, ok := m.clearedFields[job.FieldLastHeartbeat]
	return ok
}

// ResetLastHeartbeat resets all changes to the "last_heartbeat" field.
func (m *JobMutation) ResetLastHeartbeat() {
	m.last_heartbeat = nil
	delete(m.clearedFields, job.FieldLastHeartbeat)
}

// SetWorkerID sets the "worker_id" field.
func (m *JobMutation) SetWorkerID(s string) {
	m.worker_id = &s
}

// WorkerID returns the value of the "worker_id" field in the mutation.
func (m *JobMutation) WorkerID() (r string, exists bool) {
	v := m.worker_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkerID returns the old "worker_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldWorkerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkerID: %w", err)
	}
	return oldValue.WorkerID, nil
}

// ClearWorkerID clears the value of the "worker_id" field.
func (m *JobMutation) ClearWorkerID() {
	m.worker_id = nil
	m.clearedFields[job.FieldWorkerID] = struct{}{}
}

// WorkerIDCleared returns if the "worker_id" field was cleared in this mutation.
func (m *JobMutation) WorkerIDCleared() bool {
	_, ok := m.clearedFields[job.FieldWorkerID]
	return ok
}

// ResetWorkerID resets all changes to the "worker_id" field.
func (m *JobMutation) ResetWorkerID() {
	m.worker_id = nil
	delete(m.clearedFields, job.FieldWorkerID)
}

// SetEstimatedCost sets the "estimated_cost" field.
func (m *JobMutation) SetEstimatedCost(f float64) {
	m.estimated_cost = &f
	m.addestimated_cost = nil
}

// EstimatedCost returns the value of the "estimated_cost" field in the mutation.
func (m *JobMutation) EstimatedCost() (r float64, exists bool) {
	v := m.estimated_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedCost returns the old "estimated_cost" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldEstimatedCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedCost: %w", err)
	}
	return oldValue.EstimatedCost, nil
}

// AddEstimatedCost adds f to the "estimated_cost" field.
func (m *JobMutation) AddEstimatedCost(f float64) {
	if m.addestimated_cost != nil {
		*m.addestimated_cost += f
	} else {
		m.addestimated_cost = &f
	}
}

// AddedEstimatedCost returns the value that was added to the "estimated_cost" field in this mutation.
func (m *JobMutation) AddedEstimatedCost() (r float64, exists bool) {
	v := m.addestimated_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstimatedCost resets all changes to the "estimated_cost" field.
func (m *JobMutation) ResetEstimatedCost() {
	m.estimated_cost = nil
	m.addestimated_cost = nil
}

// SetActualCost sets the "actual_cost" field.
func (m *JobMutation) SetActualCost(f float64) {
	m.actual_cost = &f
	m.addactual_cost = nil
}

// ActualCost returns the value of the "actual_cost" field in the mutation.
func (m *JobMutation) ActualCost() (r float64, exists bool) {
	v := m.actual_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldActualCost returns the old "actual_cost" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldActualCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActualCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActualCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActualCost: %w", err)
	}
	return oldValue.ActualCost, nil
}

// AddActualCost adds f to the "actual_cost" field.
func (m *JobMutation) AddActualCost(f float64) {
	if m.addactual_cost != nil {
		*m.addactual_cost += f
	} else {
		m.addactual_cost = &f
	}
}

// AddedActualCost returns the value that was added to the "actual_cost" field in this mutation.
func (m *JobMutation) AddedActualCost() (r float64, exists bool) {
	v := m.addactual_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetActualCost resets all changes to the "actual_cost" field.
func (m *JobMutation) ResetActualCost() {
	m.actual_cost = nil
	m.addactual_cost = nil
}

// SetCurrentPhaseIndex sets the "current_phase_index" field.
func (m *JobMutation) SetCurrentPhaseIndex(i int) {
	m.current_phase_index = &i
	m.addcurrent_phase_index = nil
}

// CurrentPhaseIndex returns the value of the "current_phase_index" field in the mutation.
func (m *JobMutation) CurrentPhaseIndex() (r int, exists bool) {
	v := m.current_phase_index
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPhaseIndex returns the old "current_phase_index" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCurrentPhaseIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPhaseIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPhaseIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPhaseIndex: %w", err)
	}
	return oldValue.CurrentPhaseIndex, nil
}

// AddCurrentPhaseIndex adds i to the "current_phase_index" field.
func (m *JobMutation) AddCurrentPhaseIndex(i int) {
	if m.addcurrent_phase_index != nil {
		*m.addcurrent_phase_index += i
	} else {
		m.addcurrent_phase_index = &i
	}
}

// AddedCurrentPhaseIndex returns the value that was added to the "current_phase_index" field in this mutation.
func (m *JobMutation) AddedCurrentPhaseIndex() (r int, exists bool) {
	v := m.addcurrent_phase_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentPhaseIndex resets all changes to the "current_phase_index" field.
func (m *JobMutation) ResetCurrentPhaseIndex() {
	m.current_phase_index = nil
	m.addcurrent_phase_index = nil
}

// SetRecoveryAttempts sets the "recovery_attempts" field.
func (m *JobMutation) SetRecoveryAttempts(i int) {
	m.recovery_attempts = &i
	m.addrecovery_attempts = nil
}

// RecoveryAttempts returns the value of the "recovery_attempts" field in the mutation.
func (m *JobMutation) RecoveryAttempts() (r int, exists bool) {
	v := m.recovery_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldRecoveryAttempts returns the old "recovery_attempts" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRecoveryAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecoveryAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecoveryAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecoveryAttempts: %w", err)
	}
	return oldValue.RecoveryAttempts, nil
}

// AddRecoveryAttempts adds i to the "recovery_attempts" field.
func (m *JobMutation) AddRecoveryAttempts(i int) {
	if m.addrecovery_attempts != nil {
		*m.addrecovery_attempts += i
	} else {
		m.addrecovery_attempts = &i
	}
}

// AddedRecoveryAttempts returns the value that was added to the "recovery_attempts" field in this mutation.
func (m *JobMutation) AddedRecoveryAttempts() (r int, exists bool) {
	v := m.addrecovery_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecoveryAttempts resets all changes to the "recovery_attempts" field.
func (m *JobMutation) ResetRecoveryAttempts() {
	m.recovery_attempts = nil
	m.addrecovery_attempts = nil
}

// SetMediaID sets the "media_id" field.
func (m *JobMutation) SetMediaID(s string) {
	m.media_id = &s
}

// MediaID returns the value of the "media_id" field in the mutation.
func (m *JobMutation) MediaID() (r string, exists bool) {
	v := m.media_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaID returns the old "media_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMediaID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaID: %w", err)
	}
	return oldValue.MediaID, nil
}

// ClearMediaID clears the value of the "media_id" field.
func (m *JobMutation) ClearMediaID() {
	m.media_id = nil
	m.clearedFields[job.FieldMediaID] = struct{}{}
}

// MediaIDCleared returns if the "media_id" field was cleared in this mutation.
func (m *JobMutation) MediaIDCleared() bool {
	_, ok := m.clearedFields[job.FieldMediaID]
	return ok
}

// ResetMediaID resets all changes to the "media_id" field.
func (m *JobMutation) ResetMediaID() {
	m.media_id = nil
	delete(m.clearedFields, job.FieldMediaID)
}

// SetSstRecordID sets the "sst_record_id" field.
func (m *JobMutation) SetSstRecordID(s string) {
	m.sst_record_id = &s
}

// SstRecordID returns the value of the "sst_record_id" field in the mutation.
func (m *JobMutation) SstRecordID() (r string, exists bool) {
	v := m.sst_record_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSstRecordID returns the old "sst_record_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldSstRecordID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSstRecordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSstRecordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSstRecordID: %w", err)
	}
	return oldValue.SstRecordID, nil
}

// ClearSstRecordID clears the value of the "sst_record_id" field.
func (m *JobMutation) ClearSstRecordID() {
	m.sst_record_id = nil
	m.clearedFields[job.FieldSstRecordID] = struct{}{}
}

// SstRecordIDCleared returns if the "sst_record_id" field was cleared in this mutation.
func (m *JobMutation) SstRecordIDCleared() bool {
	_, ok := m.clearedFields[job.FieldSstRecordID]
	return ok
}

// ResetSstRecordID resets all changes to the "sst_record_id" field.
func (m *JobMutation) ResetSstRecordID() {
	m.sst_record_id = nil
	delete(m.clearedFields, job.FieldSstRecordID)
}

// SetErrorMessage sets the "error_message" field.
func (m *JobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *JobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *JobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[job.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *JobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[job.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *JobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, job.FieldErrorMessage)
}

// SetErrorTimestamp sets the "error_timestamp" field.
func (m *JobMutation) SetErrorTimestamp(t time.Time) {
	m.error_timestamp = &t
}

// ErrorTimestamp returns the value of the "error_timestamp" field in the mutation.
func (m *JobMutation) ErrorTimestamp() (r time.Time, exists bool) {
	v := m.error_timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorTimestamp returns the old "error_timestamp" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldErrorTimestamp(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorTimestamp: %w", err)
	}
	return oldValue.ErrorTimestamp, nil
}

// ClearErrorTimestamp clears the value of the "error_timestamp" field.
func (m *JobMutation) ClearErrorTimestamp() {
	m.error_timestamp = nil
	m.clearedFields[job.FieldErrorTimestamp] = struct{}{}
}

// ErrorTimestampCleared returns if the "error_timestamp" field was cleared in this mutation.
func (m *JobMutation) ErrorTimestampCleared() bool {
	_, ok := m.clearedFields[job.FieldErrorTimestamp]
	return ok
}

// ResetErrorTimestamp resets all changes to the "error_timestamp" field.
func (m *JobMutation) ResetErrorTimestamp() {
	m.error_timestamp = nil
	delete(m.clearedFields, job.FieldErrorTimestamp)
}

// AddPhaseIDs adds the "phases" edge to the JobPhase entity by ids.
func (m *JobMutation) AddPhaseIDs(ids ...int) {
	if m.phases == nil {
		m.phases = make(map[int]struct{})
	}
	for i := range ids {
		m.phases[ids[i]] = struct{}{}
	}
}

// ClearPhases clears the "phases" edge to the JobPhase entity.
func (m *JobMutation) ClearPhases() {
	m.clearedphases = true
}

// PhasesCleared reports if the "phases" edge to the JobPhase entity was cleared.
func (m *JobMutation) PhasesCleared() bool {
	return m.clearedphases
}

// RemovePhaseIDs removes the "phases" edge to the JobPhase entity by IDs.
func (m *JobMutation) RemovePhaseIDs(ids ...int) {
	if m.removedphases == nil {
		m.removedphases = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.phases, ids[i])
		m.removedphases[ids[i]] = struct{}{}
	}
}

// RemovedPhases returns the removed IDs of the "phases" edge to the JobPhase entity.
func (m *JobMutation) RemovedPhasesIDs() (ids []int) {
	for id := range m.removedphases {
		ids = append(ids, id)
	}
	return
}

// PhasesIDs returns the "phases" edge IDs in the mutation.
func (m *JobMutation) PhasesIDs() (ids []int) {
	for id := range m.phases {
		ids = append(ids, id)
	}
	return
}

// ResetPhases resets all changes to the "phases" edge.
func (m *JobMutation) ResetPhases() {
	m.phases = nil
	m.clearedphases = false
	m.removedphases = nil
}

// AddEventIDs adds the "events" edge to the SessionEvent entity by ids.
func (m *JobMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the SessionEvent entity.
func (m *JobMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the SessionEvent entity was cleared.
func (m *JobMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the SessionEvent entity by IDs.
func (m *JobMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the SessionEvent entity.
func (m *JobMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *JobMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *JobMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.transcript_file != nil {
		fields = append(fields, job.FieldTranscriptFile)
	}
	if m.project_name != nil {
		fields = append(fields, job.FieldProjectName)
	}
	if m.project_path != nil {
		fields = append(fields, job.FieldProjectPath)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.retry_count != nil {
		fields = append(fields, job.FieldRetryCount)
	}
	if m.max_retries != nil {
		fields = append(fields, job.FieldMaxRetries)
	}
	if m.queued_at != nil {
		fields = append(fields, job.FieldQueuedAt)
	}
	if m.started_at != nil {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, job.FieldCompletedAt)
	}
	if m.last_heartbeat != nil {
		fields = append(fields, job.FieldLastHeartbeat)
	}
	if m.worker_id != nil {
		fields = append(fields, job.FieldWorkerID)
	}
	if m.estimated_cost != nil {
		fields = append(fields, job.FieldEstimatedCost)
	}
	if m.actual_cost != nil {
		fields = append(fields, job.FieldActualCost)
	}
	if m.current_phase_index != nil {
		fields = append(fields, job.FieldCurrentPhaseIndex)
	}
	if m.recovery_attempts != nil {
		fields = append(fields, job.FieldRecoveryAttempts)
	}
	if m.media_id != nil {
		fields = append(fields, job.FieldMediaID)
	}
	if m.sst_record_id != nil {
		fields = append(fields, job.FieldSstRecordID)
	}
	if m.error_message != nil {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.error_timestamp != nil {
		fields = append(fields, job.FieldErrorTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldTranscriptFile:
		return m.TranscriptFile()
	case job.FieldProjectName:
		return m.ProjectName()
	case job.FieldProjectPath:
		return m.ProjectPath()
	case job.FieldStatus:
		return m.Status()
	case job.FieldPriority:
		return m.Priority()
	case job.FieldRetryCount:
		return m.RetryCount()
	case job.FieldMaxRetries:
		return m.MaxRetries()
	case job.FieldQueuedAt:
		return m.QueuedAt()
	case job.FieldStartedAt:
		return m.StartedAt()
	case job.FieldCompletedAt:
		return m.CompletedAt()
	case job.FieldLastHeartbeat:
		return m.LastHeartbeat()
	case job.FieldWorkerID:
		return m.WorkerID()
	case job.FieldEstimatedCost:
		return m.EstimatedCost()
	case job.FieldActualCost:
		return m.ActualCost()
	case job.FieldCurrentPhaseIndex:
		return m.CurrentPhaseIndex()
	case job.FieldRecoveryAttempts:
		return m.RecoveryAttempts()
	case job.FieldMediaID:
		return m.MediaID()
	case job.FieldSstRecordID:
		return m.SstRecordID()
	case job.FieldErrorMessage:
		return m.ErrorMessage()
	case job.FieldErrorTimestamp:
		return m.ErrorTimestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldTranscriptFile:
		return m.OldTranscriptFile(ctx)
	case job.FieldProjectName:
		return m.OldProjectName(ctx)
	case job.FieldProjectPath:
		return m.OldProjectPath(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldPriority:
		return m.OldPriority(ctx)
	case job.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case job.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case job.FieldQueuedAt:
		return m.OldQueuedAt(ctx)
	case job.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case job.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case job.FieldLastHeartbeat:
		return m.OldLastHeartbeat(ctx)
	case job.FieldWorkerID:
		return m.OldWorkerID(ctx)
	case job.FieldEstimatedCost:
		return m.OldEstimatedCost(ctx)
	case job.FieldActualCost:
		return m.OldActualCost(ctx)
	case job.FieldCurrentPhaseIndex:
		return m.OldCurrentPhaseIndex(ctx)
	case job.FieldRecoveryAttempts:
		return m.OldRecoveryAttempts(ctx)
	case job.FieldMediaID:
		return m.OldMediaID(ctx)
	case job.FieldSstRecordID:
		return m.OldSstRecordID(ctx)
	case job.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case job.FieldErrorTimestamp:
		return m.OldErrorTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldTranscriptFile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscriptFile(v)
		return nil
	case job.FieldProjectName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectName(v)
		return nil
	case job.FieldProjectPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectPath(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case job.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case job.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case job.FieldQueuedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueuedAt(v)
		return nil
	case job.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case job.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case job.FieldLastHeartbeat:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeat(v)
		return nil
	case job.FieldWorkerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkerID(v)
		return nil
	case job.FieldEstimatedCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedCost(v)
		return nil
	case job.FieldActualCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActualCost(v)
		return nil
	case job.FieldCurrentPhaseIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPhaseIndex(v)
		return nil
	case job.FieldRecoveryAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecoveryAttempts(v)
		return nil
	case job.FieldMediaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaID(v)
		return nil
	case job.FieldSstRecordID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSstRecordID(v)
		return nil
	case job.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case job.FieldErrorTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.addretry_count != nil {
		fields = append(fields, job.FieldRetryCount)
	}
	if m.addmax_retries != nil {
		fields = append(fields, job.FieldMaxRetries)
	}
	if m.addestimated_cost != nil {
		fields = append(fields, job.FieldEstimatedCost)
	}
	if m.addactual_cost != nil {
		fields = append(fields, job.FieldActualCost)
	}
	if m.addcurrent_phase_index != nil {
		fields = append(fields, job.FieldCurrentPhaseIndex)
	}
	if m.addrecovery_attempts != nil {
		fields = append(fields, job.FieldRecoveryAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldPriority:
		return m.AddedPriority()
	case job.FieldRetryCount:
		return m.AddedRetryCount()
	case job.FieldMaxRetries:
		return m.AddedMaxRetries()
	case job.FieldEstimatedCost:
		return m.AddedEstimatedCost()
	case job.FieldActualCost:
		return m.AddedActualCost()
	case job.FieldCurrentPhaseIndex:
		return m.AddedCurrentPhaseIndex()
	case job.FieldRecoveryAttempts:
		return m.AddedRecoveryAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case job.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case job.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	case job.FieldEstimatedCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstimatedCost(v)
		return nil
	case job.FieldActualCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActualCost(v)
		return nil
	case job.FieldCurrentPhaseIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentPhaseIndex(v)
		return nil
	case job.FieldRecoveryAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecoveryAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldStartedAt) {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.FieldCleared(job.FieldCompletedAt) {
		fields = append(fields, job.FieldCompletedAt)
	}
	if m.FieldCleared(job.FieldLastHeartbeat) {
		fields = append(fields, job.FieldLastHeartbeat)
	}
	if m.FieldCleared(job.FieldWorkerID) {
		fields = append(fields, job.FieldWorkerID)
	}
	if m.FieldCleared(job.FieldMediaID) {
		fields = append(fields, job.FieldMediaID)
	}
	if m.FieldCleared(job.FieldSstRecordID) {
		fields = append(fields, job.FieldSstRecordID)
	}
	if m.FieldCleared(job.FieldErrorMessage) {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.FieldCleared(job.FieldErrorTimestamp) {
		fields = append(fields, job.FieldErrorTimestamp)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case job.FieldLastHeartbeat:
		m.ClearLastHeartbeat()
		return nil
	case job.FieldWorkerID:
		m.ClearWorkerID()
		return nil
	case job.FieldMediaID:
		m.ClearMediaID()
		return nil
	case job.FieldSstRecordID:
		m.ClearSstRecordID()
		return nil
	case job.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case job.FieldErrorTimestamp:
		m.ClearErrorTimestamp()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldTranscriptFile:
		m.ResetTranscriptFile()
		return nil
	case job.FieldProjectName:
		m.ResetProjectName()
		return nil
	case job.FieldProjectPath:
		m.ResetProjectPath()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldPriority:
		m.ResetPriority()
		return nil
	case job.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case job.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case job.FieldQueuedAt:
		m.ResetQueuedAt()
		return nil
	case job.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case job.FieldLastHeartbeat:
		m.ResetLastHeartbeat()
		return nil
	case job.FieldWorkerID:
		m.ResetWorkerID()
		return nil
	case job.FieldEstimatedCost:
		m.ResetEstimatedCost()
		return nil
	case job.FieldActualCost:
		m.ResetActualCost()
		return nil
	case job.FieldCurrentPhaseIndex:
		m.ResetCurrentPhaseIndex()
		return nil
	case job.FieldRecoveryAttempts:
		m.ResetRecoveryAttempts()
		return nil
	case job.FieldMediaID:
		m.ResetMediaID()
		return nil
	case job.FieldSstRecordID:
		m.ResetSstRecordID()
		return nil
	case job.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case job.FieldErrorTimestamp:
		m.ResetErrorTimestamp()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.phases != nil {
		edges = append(edges, job.EdgePhases)
	}
	if m.events != nil {
		edges = append(edges, job.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgePhases:
		ids := make([]ent.Value, 0, len(m.phases))
		for id := range m.phases {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedphases != nil {
		edges = append(edges, job.EdgePhases)
	}
	if m.removedevents != nil {
		edges = append(edges, job.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case job.EdgePhases:
		ids := make([]ent.Value, 0, len(m.removedphases))
		for id := range m.removedphases {
			ids = append(ids, id)
		}
		return ids
	case job.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedphases {
		edges = append(edges, job.EdgePhases)
	}
	if m.clearedevents {
		edges = append(edges, job.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgePhases:
		return m.clearedphases
	case job.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgePhases:
		m.ResetPhases()
		return nil
	case job.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// JobPhaseMutation represents an operation that mutates the JobPhase nodes in the graph.
type JobPhaseMutation struct {
	config
	op               Op
	typ              string
	id               *int
	name             *jobphase.Name
	phase_index      *int
	addphase_index   *int
	status           *jobphase.Status
	tier_index       *int
	addtier_index    *int
	tier_label       *string
	model            *string
	tier_reason      *string
	attempts         *int
	addattempts      *int
	cost             *float64
	addcost          *float64
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	started_at       *time.Time
	completed_at     *time.Time
	deliverable_path *string
	error_message    *string
	clearedFields    map[string]struct{}
	job              *int
	clearedjob       bool
	done             bool
	oldValue         func(context.Context) (*JobPhase, error)
	predicates       []predicate.JobPhase
}

var _ ent.Mutation = (*JobPhaseMutation)(nil)

// jobphaseOption allows management of the mutation configuration using functional options.
type jobphaseOption func(*JobPhaseMutation)

// newJobPhaseMutation creates new mutation for the JobPhase entity.
func newJobPhaseMutation(c config, op Op, opts ...jobphaseOption) *JobPhaseMutation {
	m := &JobPhaseMutation{
		config:        c,
		op:            op,
		typ:           TypeJobPhase,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobPhaseID sets the ID field of the mutation.
func withJobPhaseID(id int) jobphaseOption {
	return func(m *JobPhaseMutation) {
		var (
			err   error
			once  sync.Once
			value *JobPhase
		)
		m.oldValue = func(ctx context.Context) (*JobPhase, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobPhase.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobPhase sets the old JobPhase of the mutation.
func withJobPhase(node *JobPhase) jobphaseOption {
	return func(m *JobPhaseMutation) {
		m.oldValue = func(context.Context) (*JobPhase, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobPhaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobPhaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobPhaseMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobPhaseMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobPhase.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *JobPhaseMutation) SetJobID(i int) {
	m.job = &i
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *JobPhaseMutation) JobID() (r int, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the JobPhase entity.
// If the JobPhase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPhaseMutation) OldJobID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *JobPhaseMutation) ResetJobID() {
	m.job = nil
}

// SetName sets the "name" field.
func (m *JobPhaseMutation) SetName(j jobphase.Name) {
	m.name = &j
}

// Name returns the value of the "name" field in the mutation.
func (m *JobPhaseMutation) Name() (r jobphase.Name, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the JobPhase entity.
// If the JobPhase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPhaseMutation) OldName(ctx context.Context) (v jobphase.Name, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *JobPhaseMutation) ResetName() {
	m.name = nil
}

// SetPhaseIndex sets the "phase_index" field.
func (m *JobPhaseMutation) SetPhaseIndex(i int) {
	m.phase_index = &i
	m.addphase_index = nil
}

// PhaseIndex returns the value of the "phase_index" field in the mutation.
func (m *JobPhaseMutation) PhaseIndex() (r int, exists bool) {
	v := m.phase_index
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseIndex returns the old "phase_index" field's value of the JobPhase entity.
// If the JobPhase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPhaseMutation) OldPhaseIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseIndex: %w", err)
	}
	return oldValue.PhaseIndex, nil
}

// AddPhaseIndex adds i to the "phase_index" field.
func (m *JobPhaseMutation) AddPhaseIndex(i int) {
	if m.addphase_index != nil {
		*m.addphase_index += i
	} else {
		m.addphase_index = &i
	}
}

// AddedPhaseIndex returns the value that was added to the "phase_index" field in this mutation.
func (m *JobPhaseMutation) AddedPhaseIndex() (r int, exists bool) {
	v := m.addphase_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetPhaseIndex resets all changes to the "phase_index" field.
func (m *JobPhaseMutation) ResetPhaseIndex() {
	m.phase_index = nil
	m.addphase_index = nil
}

// SetStatus sets the "status" field.
func (m *JobPhaseMutation) SetStatus(j jobphase.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobPhaseMutation) Status() (r jobphase.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the JobPhase entity.
// If the JobPhase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPhaseMutation) OldStatus(ctx context.Context) (v jobphase.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobPhaseMutation) ResetStatus() {
	m.status = nil
}

// SetTierIndex sets the "tier_index" field.
func (m *JobPhaseMutation) SetTierIndex(i int) {
	m.tier_index = &i
	m.addtier_index = nil
}

// TierIndex returns the value of the "tier_index" field in the mutation.
func (m *JobPhaseMutation) TierIndex() (r int, exists bool) {
	v := m.tier_index
	if v == nil {
		return
	}
	return *v, true
}

// OldTierIndex returns the old "tier_index" field's value of the JobPhase entity.
// If the JobPhase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPhaseMutation) OldTierIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTierIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTierIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTierIndex: %w", err)
	}
	return oldValue.TierIndex, nil
}

// AddTierIndex adds i to the "tier_index" field.
func (m *JobPhaseMutation) AddTierIndex(i int) {
	if m.addtier_index != nil {
		*m.addtier_index += i
	} else {
		m.addtier_index = &i
	}
}

// AddedTierIndex returns the value that was added to the "tier_index" field in this mutation.
func (m *JobPhaseMutation) AddedTierIndex() (r int, exists bool) {
	v := m.addtier_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetTierIndex resets all changes to the "tier_index" field.
func (m *JobPhaseMutation) ResetTierIndex() {
	m.tier_index = nil
	m.addtier_index = nil
}

// SetTierLabel sets the "tier_label" field.
func (m *JobPhaseMutation) SetTierLabel(s string) {
	m.tier_label = &s
}

// TierLabel returns the value of the "tier_label" field in the mutation.
func (m *JobPhaseMutation) TierLabel() (r string, exists bool) {
	v := m.tier_label
	if v == nil {
		return
	}
	return *v, true
}

// OldTierLabel returns the old "tier_label" field's value of the JobPhase entity.
// If the JobPhase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPhaseMutation) OldTierLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTierLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTierLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTierLabel: %w", err)
	}
	return oldValue.TierLabel, nil
}

// ClearTierLabel clears the value of the "tier_label" field.
func (m *JobPhaseMutation) ClearTierLabel() {
	m.tier_label = nil
	m.clearedFields[jobphase.FieldTierLabel] = struct{}{}
}

// TierLabelCleared returns if the "tier_label" field was cleared in this mutation.
func (m *JobPhaseMutation) TierLabelCleared() bool {
	_, ok := m.clearedFields[jobphase.FieldTierLabel]
	return ok
}

// ResetTierLabel resets all changes to the "tier_label" field.
func (m *JobPhaseMutation) ResetTierLabel() {
	m.tier_label = nil
	delete(m.clearedFields, jobphase.FieldTierLabel)
}

// SetModel sets the "model" field.
func (m *JobPhaseMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *JobPhaseMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the JobPhase entity.
// If the JobPhase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPhaseMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *JobPhaseMutation) ClearModel() {
	m.model = nil
	m.clearedFields[jobphase.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *JobPhaseMutation) ModelCleared() bool {
	_, ok := m.clearedFields[jobphase.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *JobPhaseMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, jobphase.FieldModel)
}

// SetTierReason sets the "tier_reason" field.
func (m *JobPhaseMutation) SetTierReason(s string) {
	m.tier_reason = &s
}

// TierReason returns the value of the "tier_reason" field in the mutation.
func (m *JobPhaseMutation) TierReason() (r string, exists bool) {
	v := m.tier_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldTierReason returns the old "tier_reason" field's value of the JobPhase entity.
// If the JobPhase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPhaseMutation) OldTierReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTierReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTierReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTierReason: %w", err)
	}
	return oldValue.TierReason, nil
}

// ClearTierReason clears the value of the "tier_reason" field.
func (m *JobPhaseMutation) ClearTierReason() {
	m.tier_reason = nil
	m.clearedFields[jobphase.FieldTierReason] = struct{}{}
}

// TierReasonCleared returns if the "tier_reason" field was cleared in this mutation.
func (m *JobPhaseMutation) TierReasonCleared() bool {
	_, ok := m.clearedFields[jobphase.FieldTierReason]
	return ok
}

// ResetTierReason resets all changes to the "tier_reason" field.
func (m *JobPhaseMutation) ResetTierReason() {
	m.tier_reason = nil
	delete(m.clearedFields, jobphase.FieldTierReason)
}

// SetAttempts sets the "attempts" field.
func (m *JobPhaseMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *JobPhaseMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the JobPhase entity.
// If the JobPhase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPhaseMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *JobPhaseMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *JobPhaseMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *JobPhaseMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetCost sets the "cost" field.
func (m *JobPhaseMutation) SetCost(f float64) {
	m.cost = &f
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *JobPhaseMutation) Cost() (r float64, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the JobPhase entity.
// If the JobPhase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPhaseMutation) OldCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds f to the "cost" field.
func (m *JobPhaseMutation) AddCost(f float64) {
	if m.addcost != nil {
		*m.addcost += f
	} else {
		m.addcost = &f
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *JobPhaseMutation) AddedCost() (r float64, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ResetCost resets all changes to the "cost" field.
func (m *JobPhaseMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *JobPhaseMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *JobPhaseMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the JobPhase entity.
// If the JobPhase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPhaseMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *JobPhaseMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *JobPhaseMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *JobPhaseMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *JobPhaseMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *JobPhaseMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the JobPhase entity.
// If the JobPhase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPhaseMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *JobPhaseMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *JobPhaseMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *JobPhaseMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetStartedAt sets the "started_at" field.
func (m *JobPhaseMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobPhaseMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the JobPhase entity.
// If the JobPhase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPhaseMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobPhaseMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[jobphase.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobPhaseMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[jobphase.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobPhaseMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, jobphase.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *JobPhaseMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *JobPhaseMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the JobPhase entity.
// If the JobPhase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPhaseMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *JobPhaseMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[jobphase.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *JobPhaseMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[jobphase.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *JobPhaseMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, jobphase.FieldCompletedAt)
}

// SetDeliverablePath sets the "deliverable_path" field.
func (m *JobPhaseMutation) SetDeliverablePath(s string) {
	m.deliverable_path = &s
}

// DeliverablePath returns the value of the "deliverable_path" field in the mutation.
func (m *JobPhaseMutation) DeliverablePath() (r string, exists bool) {
	v := m.deliverable_path
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliverablePath returns the old "deliverable_path" field's value of the JobPhase entity.
// If the JobPhase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPhaseMutation) OldDeliverablePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliverablePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliverablePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliverablePath: %w", err)
	}
	return oldValue.DeliverablePath, nil
}

// ClearDeliverablePath clears the value of the "deliverable_path" field.
func (m *JobPhaseMutation) ClearDeliverablePath() {
	m.deliverable_path = nil
	m.clearedFields[jobphase.FieldDeliverablePath] = struct{}{}
}

// DeliverablePathCleared returns if the "deliverable_path" field was cleared in this mutation.
func (m *JobPhaseMutation) DeliverablePathCleared() bool {
	_, ok := m.clearedFields[jobphase.FieldDeliverablePath]
	return ok
}

// ResetDeliverablePath resets all changes to the "deliverable_path" field.
func (m *JobPhaseMutation) ResetDeliverablePath() {
	m.deliverable_path = nil
	delete(m.clearedFields, jobphase.FieldDeliverablePath)
}

// SetErrorMessage sets the "error_message" field.
func (m *JobPhaseMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *JobPhaseMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the JobPhase entity.
// If the JobPhase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobPhaseMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *JobPhaseMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[jobphase.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *JobPhaseMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[jobphase.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *JobPhaseMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, jobphase.FieldErrorMessage)
}

// ClearJob clears the "job" edge to the Job entity.
func (m *JobPhaseMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[jobphase.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *JobPhaseMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *JobPhaseMutation) JobIDs() (ids []int) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *JobPhaseMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the JobPhaseMutation builder.
func (m *JobPhaseMutation) Where(ps ...predicate.JobPhase) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobPhaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobPhaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobPhase, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobPhaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobPhaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobPhase).
func (m *JobPhaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobPhaseMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.job != nil {
		fields = append(fields, jobphase.FieldJobID)
	}
	if m.name != nil {
		fields = append(fields, jobphase.FieldName)
	}
	if m.phase_index != nil {
		fields = append(fields, jobphase.FieldPhaseIndex)
	}
	if m.status != nil {
		fields = append(fields, jobphase.FieldStatus)
	}
	if m.tier_index != nil {
		fields = append(fields, jobphase.FieldTierIndex)
	}
	if m.tier_label != nil {
		fields = append(fields, jobphase.FieldTierLabel)
	}
	if m.model != nil {
		fields = append(fields, jobphase.FieldModel)
	}
	if m.tier_reason != nil {
		fields = append(fields, jobphase.FieldTierReason)
	}
	if m.attempts != nil {
		fields = append(fields, jobphase.FieldAttempts)
	}
	if m.cost != nil {
		fields = append(fields, jobphase.FieldCost)
	}
	if m.input_tokens != nil {
		fields = append(fields, jobphase.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, jobphase.FieldOutputTokens)
	}
	if m.started_at != nil {
		fields = append(fields, jobphase.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, jobphase.FieldCompletedAt)
	}
	if m.deliverable_path != nil {
		fields = append(fields, jobphase.FieldDeliverablePath)
	}
	if m.error_message != nil {
		fields = append(fields, jobphase.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobPhaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobphase.FieldJobID:
		return m.JobID()
	case jobphase.FieldName:
		return m.Name()
	case jobphase.FieldPhaseIndex:
		return m.PhaseIndex()
	case jobphase.FieldStatus:
		return m.Status()
	case jobphase.FieldTierIndex:
		return m.TierIndex()
	case jobphase.FieldTierLabel:
		return m.TierLabel()
	case jobphase.FieldModel:
		return m.Model()
	case jobphase.FieldTierReason:
		return m.TierReason()
	case jobphase.FieldAttempts:
		return m.Attempts()
	case jobphase.FieldCost:
		return m.Cost()
	case jobphase.FieldInputTokens:
		return m.InputTokens()
	case jobphase.FieldOutputTokens:
		return m.OutputTokens()
	case jobphase.FieldStartedAt:
		return m.StartedAt()
	case jobphase.FieldCompletedAt:
		return m.CompletedAt()
	case jobphase.FieldDeliverablePath:
		return m.DeliverablePath()
	case jobphase.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobPhaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobphase.FieldJobID:
		return m.OldJobID(ctx)
	case jobphase.FieldName:
		return m.OldName(ctx)
	case jobphase.FieldPhaseIndex:
		return m.OldPhaseIndex(ctx)
	case jobphase.FieldStatus:
		return m.OldStatus(ctx)
	case jobphase.FieldTierIndex:
		return m.OldTierIndex(ctx)
	case jobphase.FieldTierLabel:
		return m.OldTierLabel(ctx)
	case jobphase.FieldModel:
		return m.OldModel(ctx)
	case jobphase.FieldTierReason:
		return m.OldTierReason(ctx)
	case jobphase.FieldAttempts:
		return m.OldAttempts(ctx)
	case jobphase.FieldCost:
		return m.OldCost(ctx)
	case jobphase.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case jobphase.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case jobphase.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case jobphase.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case jobphase.FieldDeliverablePath:
		return m.OldDeliverablePath(ctx)
	case jobphase.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown JobPhase field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobPhaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobphase.FieldJobID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case jobphase.FieldName:
		v, ok := value.(jobphase.Name)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case jobphase.FieldPhaseIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseIndex(v)
		return nil
	case jobphase.FieldStatus:
		v, ok := value.(jobphase.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case jobphase.FieldTierIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTierIndex(v)
		return nil
	case jobphase.FieldTierLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTierLabel(v)
		return nil
	case jobphase.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case jobphase.FieldTierReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTierReason(v)
		return nil
	case jobphase.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case jobphase.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case jobphase.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case jobphase.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case jobphase.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case jobphase.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case jobphase.FieldDeliverablePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliverablePath(v)
		return nil
	case jobphase.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown JobPhase field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobPhaseMutation) AddedFields() []string {
	var fields []string
	if m.addphase_index != nil {
		fields = append(fields, jobphase.FieldPhaseIndex)
	}
	if m.addtier_index != nil {
		fields = append(fields, jobphase.FieldTierIndex)
	}
	if m.addattempts != nil {
		fields = append(fields, jobphase.FieldAttempts)
	}
	if m.addcost != nil {
		fields = append(fields, jobphase.FieldCost)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, jobphase.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, jobphase.FieldOutputTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobPhaseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case jobphase.FieldPhaseIndex:
		return m.AddedPhaseIndex()
	case jobphase.FieldTierIndex:
		return m.AddedTierIndex()
	case jobphase.FieldAttempts:
		return m.AddedAttempts()
	case jobphase.FieldCost:
		return m.AddedCost()
	case jobphase.FieldInputTokens:
		return m.AddedInputTokens()
	case jobphase.FieldOutputTokens:
		return m.AddedOutputTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobPhaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case jobphase.FieldPhaseIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPhaseIndex(v)
		return nil
	case jobphase.FieldTierIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTierIndex(v)
		return nil
	case jobphase.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case jobphase.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	case jobphase.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case jobphase.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	}
	return fmt.Errorf("unknown JobPhase numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobPhaseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(jobphase.FieldTierLabel) {
		fields = append(fields, jobphase.FieldTierLabel)
	}
	if m.FieldCleared(jobphase.FieldModel) {
		fields = append(fields, jobphase.FieldModel)
	}
	if m.FieldCleared(jobphase.FieldTierReason) {
		fields = append(fields, jobphase.FieldTierReason)
	}
	if m.FieldCleared(jobphase.FieldStartedAt) {
		fields = append(fields, jobphase.FieldStartedAt)
	}
	if m.FieldCleared(jobphase.FieldCompletedAt) {
		fields = append(fields, jobphase.FieldCompletedAt)
	}
	if m.FieldCleared(jobphase.FieldDeliverablePath) {
		fields = append(fields, jobphase.FieldDeliverablePath)
	}
	if m.FieldCleared(jobphase.FieldErrorMessage) {
		fields = append(fields, jobphase.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobPhaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobPhaseMutation) ClearField(name string) error {
	switch name {
	case jobphase.FieldTierLabel:
		m.ClearTierLabel()
		return nil
	case jobphase.FieldModel:
		m.ClearModel()
		return nil
	case jobphase.FieldTierReason:
		m.ClearTierReason()
		return nil
	case jobphase.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case jobphase.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case jobphase.FieldDeliverablePath:
		m.ClearDeliverablePath()
		return nil
	case jobphase.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown JobPhase nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobPhaseMutation) ResetField(name string) error {
	switch name {
	case jobphase.FieldJobID:
		m.ResetJobID()
		return nil
	case jobphase.FieldName:
		m.ResetName()
		return nil
	case jobphase.FieldPhaseIndex:
		m.ResetPhaseIndex()
		return nil
	case jobphase.FieldStatus:
		m.ResetStatus()
		return nil
	case jobphase.FieldTierIndex:
		m.ResetTierIndex()
		return nil
	case jobphase.FieldTierLabel:
		m.ResetTierLabel()
		return nil
	case jobphase.FieldModel:
		m.ResetModel()
		return nil
	case jobphase.FieldTierReason:
		m.ResetTierReason()
		return nil
	case jobphase.FieldAttempts:
		m.ResetAttempts()
		return nil
	case jobphase.FieldCost:
		m.ResetCost()
		return nil
	case jobphase.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case jobphase.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case jobphase.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case jobphase.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case jobphase.FieldDeliverablePath:
		m.ResetDeliverablePath()
		return nil
	case jobphase.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown JobPhase field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobPhaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, jobphase.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobPhaseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case jobphase.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobPhaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobPhaseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobPhaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, jobphase.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobPhaseMutation) EdgeCleared(name string) bool {
	switch name {
	case jobphase.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobPhaseMutation) ClearEdge(name string) error {
	switch name {
	case jobphase.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown JobPhase unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobPhaseMutation) ResetEdge(name string) error {
	switch name {
	case jobphase.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown JobPhase edge %s", name)
}

// SessionEventMutation represents an operation that mutates the SessionEvent nodes in the graph.
type SessionEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	timestamp     *time.Time
	event_type    *sessionevent.EventType
	data          *map[string]interface{}
	clearedFields map[string]struct{}
	job           *int
	clearedjob    bool
	done          bool
	oldValue      func(context.Context) (*SessionEvent, error)
	predicates    []predicate.SessionEvent
}

var _ ent.Mutation = (*SessionEventMutation)(nil)

// sessioneventOption allows management of the mutation configuration using functional options.
type sessioneventOption func(*SessionEventMutation)

// newSessionEventMutation creates new mutation for the SessionEvent entity.
func newSessionEventMutation(c config, op Op, opts ...sessioneventOption) *SessionEventMutation {
	m := &SessionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionEventID sets the ID field of the mutation.
func withSessionEventID(id int) sessioneventOption {
	return func(m *SessionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionEvent
		)
		m.oldValue = func(ctx context.Context) (*SessionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionEvent sets the old SessionEvent of the mutation.
func withSessionEvent(node *SessionEvent) sessioneventOption {
	return func(m *SessionEventMutation) {
		m.oldValue = func(context.Context) (*SessionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *SessionEventMutation) SetJobID(i int) {
	m.job = &i
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *SessionEventMutation) JobID() (r int, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldJobID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ClearJobID clears the value of the "job_id" field.
func (m *SessionEventMutation) ClearJobID() {
	m.job = nil
	m.clearedFields[sessionevent.FieldJobID] = struct{}{}
}

// JobIDCleared returns if the "job_id" field was cleared in this mutation.
func (m *SessionEventMutation) JobIDCleared() bool {
	_, ok := m.clearedFields[sessionevent.FieldJobID]
	return ok
}

// ResetJobID resets all changes to the "job_id" field.
func (m *SessionEventMutation) ResetJobID() {
	m.job = nil
	delete(m.clearedFields, sessionevent.FieldJobID)
}

// SetTimestamp sets the "timestamp" field.
func (m *SessionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SessionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SessionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetEventType sets the "event_type" field.
func (m *SessionEventMutation) SetEventType(st sessionevent.EventType) {
	m.event_type = &st
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *SessionEventMutation) EventType() (r sessionevent.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldEventType(ctx context.Context) (v sessionevent.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *SessionEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetData sets the "data" field.
func (m *SessionEventMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *SessionEventMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *SessionEventMutation) ClearData() {
	m.data = nil
	m.clearedFields[sessionevent.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *SessionEventMutation) DataCleared() bool {
	_, ok := m.clearedFields[sessionevent.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *SessionEventMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, sessionevent.FieldData)
}

// ClearJob clears the "job" edge to the Job entity.
func (m *SessionEventMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[sessionevent.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *SessionEventMutation) JobCleared() bool {
	return m.JobIDCleared() || m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *SessionEventMutation) JobIDs() (ids []int) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *SessionEventMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the SessionEventMutation builder.
func (m *SessionEventMutation) Where(ps ...predicate.SessionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionEvent).
func (m *SessionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.job != nil {
		fields = append(fields, sessionevent.FieldJobID)
	}
	if m.timestamp != nil {
		fields = append(fields, sessionevent.FieldTimestamp)
	}
	if m.event_type != nil {
		fields = append(fields, sessionevent.FieldEventType)
	}
	if m.data != nil {
		fields = append(fields, sessionevent.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldJobID:
		return m.JobID()
	case sessionevent.FieldTimestamp:
		return m.Timestamp()
	case sessionevent.FieldEventType:
		return m.EventType()
	case sessionevent.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionevent.FieldJobID:
		return m.OldJobID(ctx)
	case sessionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case sessionevent.FieldEventType:
		return m.OldEventType(ctx)
	case sessionevent.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown SessionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldJobID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case sessionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case sessionevent.FieldEventType:
		v, ok := value.(sessionevent.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case sessionevent.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionEventMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SessionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionevent.FieldJobID) {
		fields = append(fields, sessionevent.FieldJobID)
	}
	if m.FieldCleared(sessionevent.FieldData) {
		fields = append(fields, sessionevent.FieldData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionEventMutation) ClearField(name string) error {
	switch name {
	case sessionevent.FieldJobID:
		m.ClearJobID()
		return nil
	case sessionevent.FieldData:
		m.ClearData()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionEventMutation) ResetField(name string) error {
	switch name {
	case sessionevent.FieldJobID:
		m.ResetJobID()
		return nil
	case sessionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case sessionevent.FieldEventType:
		m.ResetEventType()
		return nil
	case sessionevent.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, sessionevent.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sessionevent.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, sessionevent.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionEventMutation) EdgeCleared(name string) bool {
	switch name {
	case sessionevent.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionEventMutation) ClearEdge(name string) error {
	switch name {
	case sessionevent.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionEventMutation) ResetEdge(name string) error {
	switch name {
	case sessionevent.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent edge %s", name)
}
