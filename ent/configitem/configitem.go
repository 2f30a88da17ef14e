// Code generated by ent, DO NOT EDIT.

package configitem

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the configitem type in the database.
	Label = "config_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldKey holds the string denoting the key field in the database.
	FieldKey = "key"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldValueType holds the string denoting the value_type field in the database.
	FieldValueType = "value_type"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the configitem in the database.
	Table = "config_items"
)

// Columns holds all SQL columns for configitem fields.
var Columns = []string{
	FieldID,
	FieldKey,
	FieldValue,
	FieldValueType,
	FieldUpdatedAt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ValueType defines the type for the "value_type" enum field.
type ValueType string

// ValueTypeStructured is the default value of the ValueType enum.
const DefaultValueType = ValueTypeStructured

// ValueType values.
const (
	ValueTypeString     ValueType = "string"
	ValueTypeInt        ValueType = "int"
	ValueTypeFloat      ValueType = "float"
	ValueTypeBool       ValueType = "bool"
	ValueTypeStructured ValueType = "structured"
)

func (vt ValueType) String() string {
	return string(vt)
}

// ValueTypeValidator is a validator for the "value_type" field enum values. It is called by the builders before save.
func ValueTypeValidator(vt ValueType) error {
	switch vt {
	case ValueTypeString, ValueTypeInt, ValueTypeFloat, ValueTypeBool, ValueTypeStructured:
		return nil
	default:
		return fmt.Errorf("configitem: invalid enum value for value_type field: %q", vt)
	}
}

// OrderOption defines the ordering options for the ConfigItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKey orders the results by the key field.
func ByKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKey, opts...).ToFunc()
}

// ByValueType orders the results by the value_type field.
func ByValueType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValueType, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
