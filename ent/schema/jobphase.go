package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// JobPhase holds the schema definition for the JobPhase entity: one step of
// one job's pipeline.
type JobPhase struct {
	ent.Schema
}

// Fields of the JobPhase.
func (JobPhase) Fields() []ent.Field {
	return []ent.Field{
		field.Int("job_id"),
		field.Enum("name").
			Values("analyst", "formatter", "seo", "manager", "timestamp",
				"investigation", "copy_editor"),
		field.Int("phase_index").
			Comment("Position in the job's ordered phase sequence"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "failed", "skipped").
			Default("pending"),
		field.Int("tier_index").
			Default(0),
		field.String("tier_label").
			Optional(),
		field.String("model").
			Optional().
			Comment("Model used by the most recent successful call"),
		field.String("tier_reason").
			Optional(),
		field.Int("attempts").
			Default(0).
			Comment("LLM calls for this phase across its entire lifetime"),
		field.Float("cost").
			Default(0),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("deliverable_path").
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Edges of the JobPhase.
func (JobPhase) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("phases").
			Field("job_id").
			Unique().
			Required(),
	}
}

// Indexes of the JobPhase.
func (JobPhase) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "phase_index").
			Unique(),
		index.Fields("status"),
	}
}
