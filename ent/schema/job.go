package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity.
// One Job is a single transcript pass through the editing pipeline.
type Job struct {
	ent.Schema
}

// Fields of the Job. The default auto-increment int ID is the job id.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("transcript_file").
			Comment("Path to the source caption transcript"),
		field.String("project_name"),
		field.String("project_path").
			Comment("Derived output directory for this job's artifacts"),
		field.Enum("status").
			Values("pending", "in_progress", "investigating", "completed",
				"failed", "cancelled", "paused").
			Default("pending"),
		field.Int("priority").
			Default(0).
			Comment("Higher runs first"),
		field.Int("retry_count").
			Default(0),
		field.Int("max_retries").
			Default(3),
		field.Time("queued_at").
			Default(time.Now),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat").
			Optional().
			Nillable().
			Comment("Refreshed by the owning worker; stale means crashed worker"),
		field.String("worker_id").
			Optional().
			Nillable(),
		field.Float("estimated_cost").
			Default(0),
		field.Float("actual_cost").
			Default(0).
			Comment("Sum of phase costs; only grows"),
		field.Int("current_phase_index").
			Default(0),
		field.Int("recovery_attempts").
			Default(0),
		field.String("media_id").
			Optional().
			Nillable().
			Comment("Extracted from the transcript filename"),
		field.String("sst_record_id").
			Optional().
			Nillable().
			Comment("External SST metadata record, when a lookup succeeded"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("error_timestamp").
			Optional().
			Nillable(),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("phases", JobPhase.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", SessionEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("transcript_file"),
		// Claim order: status, then priority desc / queued_at asc at query time.
		index.Fields("status", "priority", "queued_at"),
		// Reaper scan.
		index.Fields("status", "last_heartbeat"),
	}
}
