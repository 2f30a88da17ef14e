package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ConfigItem holds the schema definition for the ConfigItem entity,
// a typed key-value store for operator-tunable configuration sections.
type ConfigItem struct {
	ent.Schema
}

// Fields of the ConfigItem.
func (ConfigItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique(),
		field.JSON("value", map[string]interface{}{}),
		field.Enum("value_type").
			Values("string", "int", "float", "bool", "structured").
			Default("structured"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
