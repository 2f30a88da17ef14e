// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cardigan-project/cardigan/ent/ingestrecord"
)

// IngestRecord is the model entity for the IngestRecord schema.
type IngestRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Transcript filename as observed in the input directory
	RemoteName string `json:"remote_name,omitempty"`
	// Size holds the value of the "size" field.
	Size int64 `json:"size,omitempty"`
	// ModifiedAt holds the value of the "modified_at" field.
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
	// Status holds the value of the "status" field.
	Status ingestrecord.Status `json:"status,omitempty"`
	// Job created for this file, when queued
	JobID *int `json:"job_id,omitempty"`
	// FirstSeen holds the value of the "first_seen" field.
	FirstSeen time.Time `json:"first_seen,omitempty"`
	// LastSeen holds the value of the "last_seen" field.
	LastSeen     time.Time `json:"last_seen,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IngestRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ingestrecord.FieldID, ingestrecord.FieldSize, ingestrecord.FieldJobID:
			values[i] = new(sql.NullInt64)
		case ingestrecord.FieldRemoteName, ingestrecord.FieldStatus:
			values[i] = new(sql.NullString)
		case ingestrecord.FieldModifiedAt, ingestrecord.FieldFirstSeen, ingestrecord.FieldLastSeen:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IngestRecord fields.
func (_m *IngestRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ingestrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case ingestrecord.FieldRemoteName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field remote_name", values[i])
			} else if value.Valid {
				_m.RemoteName = value.String
			}
		case ingestrecord.FieldSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field size", values[i])
			} else if value.Valid {
				_m.Size = value.Int64
			}
		case ingestrecord.FieldModifiedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field modified_at", values[i])
			} else if value.Valid {
				_m.ModifiedAt = new(time.Time)
				*_m.ModifiedAt = value.Time
			}
		case ingestrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = ingestrecord.Status(value.String)
			}
		case ingestrecord.FieldJobID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = new(int)
				*_m.JobID = int(value.Int64)
			}
		case ingestrecord.FieldFirstSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen", values[i])
			} else if value.Valid {
				_m.FirstSeen = value.Time
			}
		case ingestrecord.FieldLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				_m.LastSeen = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IngestRecord.
// This includes values selected through modifiers, order, etc.
func (_m *IngestRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this IngestRecord.
// Note that you need to call IngestRecord.Unwrap() before calling this method if this IngestRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IngestRecord) Update() *IngestRecordUpdateOne {
	return NewIngestRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IngestRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IngestRecord) Unwrap() *IngestRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IngestRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IngestRecord) String() string {
	var builder strings.Builder
	builder.WriteString("IngestRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("remote_name=")
	builder.WriteString(_m.RemoteName)
	builder.WriteString(", ")
	builder.WriteString("size=")
	builder.WriteString(fmt.Sprintf("%v", _m.Size))
	builder.WriteString(", ")
	if v := _m.ModifiedAt; v != nil {
		builder.WriteString("modified_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.JobID; v != nil {
		builder.WriteString("job_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("first_seen=")
	builder.WriteString(_m.FirstSeen.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_seen=")
	builder.WriteString(_m.LastSeen.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// IngestRecords is a parsable slice of IngestRecord.
type IngestRecords []*IngestRecord
