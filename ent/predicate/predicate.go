// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ConfigItem is the predicate function for configitem builders.
type ConfigItem func(*sql.Selector)

// IngestRecord is the predicate function for ingestrecord builders.
type IngestRecord func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// JobPhase is the predicate function for jobphase builders.
type JobPhase func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)
