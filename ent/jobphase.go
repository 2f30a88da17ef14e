// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cardigan-project/cardigan/ent/job"
	"github.com/cardigan-project/cardigan/ent/jobphase"
)

// JobPhase is the model entity for the JobPhase schema.
type JobPhase struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID int `json:"job_id,omitempty"`
	// Name holds the value of the "name" field.
	Name jobphase.Name `json:"name,omitempty"`
	// Position in the job's ordered phase sequence
	PhaseIndex int `json:"phase_index,omitempty"`
	// Status holds the value of the "status" field.
	Status jobphase.Status `json:"status,omitempty"`
	// TierIndex holds the value of the "tier_index" field.
	TierIndex int `json:"tier_index,omitempty"`
	// TierLabel holds the value of the "tier_label" field.
	TierLabel string `json:"tier_label,omitempty"`
	// Model used by the most recent successful call
	Model string `json:"model,omitempty"`
	// TierReason holds the value of the "tier_reason" field.
	TierReason string `json:"tier_reason,omitempty"`
	// LLM calls for this phase across its entire lifetime
	Attempts int `json:"attempts,omitempty"`
	// Cost holds the value of the "cost" field.
	Cost float64 `json:"cost,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens int `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens int `json:"output_tokens,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// DeliverablePath holds the value of the "deliverable_path" field.
	DeliverablePath string `json:"deliverable_path,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobPhaseQuery when eager-loading is set.
	Edges        JobPhaseEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobPhaseEdges holds the relations/edges for other nodes in the graph.
type JobPhaseEdges struct {
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobPhaseEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JobPhase) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case jobphase.FieldCost:
			values[i] = new(sql.NullFloat64)
		case jobphase.FieldID, jobphase.FieldJobID, jobphase.FieldPhaseIndex, jobphase.FieldTierIndex, jobphase.FieldAttempts, jobphase.FieldInputTokens, jobphase.FieldOutputTokens:
			values[i] = new(sql.NullInt64)
		case jobphase.FieldName, jobphase.FieldStatus, jobphase.FieldTierLabel, jobphase.FieldModel, jobphase.FieldTierReason, jobphase.FieldDeliverablePath, jobphase.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case jobphase.FieldStartedAt, jobphase.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JobPhase fields.
func (_m *JobPhase) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case jobphase.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case jobphase.FieldJobID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = int(value.Int64)
			}
		case jobphase.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = jobphase.Name(value.String)
			}
		case jobphase.FieldPhaseIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field phase_index", values[i])
			} else if value.Valid {
				_m.PhaseIndex = int(value.Int64)
			}
		case jobphase.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = jobphase.Status(value.String)
			}
		case jobphase.FieldTierIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tier_index", values[i])
			} else if value.Valid {
				_m.TierIndex = int(value.Int64)
			}
		case jobphase.FieldTierLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier_label", values[i])
			} else if value.Valid {
				_m.TierLabel = value.String
			}
		case jobphase.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case jobphase.FieldTierReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier_reason", values[i])
			} else if value.Valid {
				_m.TierReason = value.String
			}
		case jobphase.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case jobphase.FieldCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost", values[i])
			} else if value.Valid {
				_m.Cost = value.Float64
			}
		case jobphase.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = int(value.Int64)
			}
		case jobphase.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = int(value.Int64)
			}
		case jobphase.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case jobphase.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case jobphase.FieldDeliverablePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field deliverable_path", values[i])
			} else if value.Valid {
				_m.DeliverablePath = value.String
			}
		case jobphase.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the JobPhase.
// This includes values selected through modifiers, order, etc.
func (_m *JobPhase) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the JobPhase entity.
func (_m *JobPhase) QueryJob() *JobQuery {
	return NewJobPhaseClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this JobPhase.
// Note that you need to call JobPhase.Unwrap() before calling this method if this JobPhase
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JobPhase) Update() *JobPhaseUpdateOne {
	return NewJobPhaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JobPhase entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JobPhase) Unwrap() *JobPhase {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: JobPhase is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JobPhase) String() string {
	var builder strings.Builder
	builder.WriteString("JobPhase(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(fmt.Sprintf("%v", _m.Name))
	builder.WriteString(", ")
	builder.WriteString("phase_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.PhaseIndex))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("tier_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.TierIndex))
	builder.WriteString(", ")
	builder.WriteString("tier_label=")
	builder.WriteString(_m.TierLabel)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("tier_reason=")
	builder.WriteString(_m.TierReason)
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cost))
	builder.WriteString(", ")
	builder.WriteString("input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputTokens))
	builder.WriteString(", ")
	builder.WriteString("output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputTokens))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("deliverable_path=")
	builder.WriteString(_m.DeliverablePath)
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// JobPhases is a parsable slice of JobPhase.
type JobPhases []*JobPhase
