package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IngestRecord holds the schema definition for the IngestRecord entity.
// The ingest watcher uses these rows to avoid creating duplicate jobs for
// files it has already offered to the queue.
type IngestRecord struct {
	ent.Schema
}

// Fields of the IngestRecord.
func (IngestRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("remote_name").
			Unique().
			Comment("Transcript filename as observed in the input directory"),
		field.Int64("size").
			Default(0),
		field.Time("modified_at").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("new", "queued", "ignored", "superseded").
			Default("new"),
		field.Int("job_id").
			Optional().
			Nillable().
			Comment("Job created for this file, when queued"),
		field.Time("first_seen").
			Default(time.Now),
		field.Time("last_seen").
			Default(time.Now),
	}
}

// Indexes of the IngestRecord.
func (IngestRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
