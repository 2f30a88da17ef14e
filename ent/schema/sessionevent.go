package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent holds the schema definition for the SessionEvent entity.
// Rows are append-only: nothing updates them, and they leave only through
// retention cleanup or their job's deletion.
type SessionEvent struct {
	ent.Schema
}

// Fields of the SessionEvent.
func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("job_id").
			Optional().
			Nillable().
			Comment("Nil for system-level events"),
		field.Time("timestamp").
			Default(time.Now),
		field.Enum("event_type").
			Values("job_queued", "job_started", "job_completed", "job_failed",
				"job_cancelled", "phase_started", "phase_completed",
				"phase_failed", "cost_update", "model_selected",
				"model_fallback", "system_pause", "system_resume",
				"system_error", "user_action"),
		field.JSON("data", map[string]interface{}{}).
			Optional(),
	}
}

// Edges of the SessionEvent.
func (SessionEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("events").
			Field("job_id").
			Unique(),
	}
}

// Indexes of the SessionEvent.
func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "timestamp"),
		index.Fields("event_type"),
	}
}
