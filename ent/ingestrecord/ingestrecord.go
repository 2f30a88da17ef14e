// Code generated by ent, DO NOT EDIT.

package ingestrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the ingestrecord type in the database.
	Label = "ingest_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRemoteName holds the string denoting the remote_name field in the database.
	FieldRemoteName = "remote_name"
	// FieldSize holds the string denoting the size field in the database.
	FieldSize = "size"
	// FieldModifiedAt holds the string denoting the modified_at field in the database.
	FieldModifiedAt = "modified_at"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldFirstSeen holds the string denoting the first_seen field in the database.
	FieldFirstSeen = "first_seen"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// Table holds the table name of the ingestrecord in the database.
	Table = "ingest_records"
)

// Columns holds all SQL columns for ingestrecord fields.
var Columns = []string{
	FieldID,
	FieldRemoteName,
	FieldSize,
	FieldModifiedAt,
	FieldStatus,
	FieldJobID,
	FieldFirstSeen,
	FieldLastSeen,
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
	// DefaultSize holds the default value on creation for the "size" field.
	DefaultSize int64
	// DefaultFirstSeen holds the default value on creation for the "first_seen" field.
	DefaultFirstSeen func() time.Time
	// DefaultLastSeen holds the default value on creation for the "last_seen" field.
	DefaultLastSeen func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusNew is the default value of the Status enum.
const DefaultStatus = StatusNew

// Status values.
const (
	StatusNew        Status = "new"
	StatusQueued     Status = "queued"
	StatusIgnored    Status = "ignored"
	StatusSuperseded Status = "superseded"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusNew, StatusQueued, StatusIgnored, StatusSuperseded:
		return nil
	default:
		return fmt.Errorf("ingestrecord: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the IngestRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRemoteName orders the results by the remote_name field.
func ByRemoteName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRemoteName, opts...).ToFunc()
}

// BySize orders the results by the size field.
func BySize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSize, opts...).ToFunc()
}

// ByModifiedAt orders the results by the modified_at field.
func ByModifiedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModifiedAt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByFirstSeen orders the results by the first_seen field.
func ByFirstSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeen, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}
