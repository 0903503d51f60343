package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressSnapshot stores a full serialized LearningProgress record.
// The progress aggregate is small enough to persist whole on every save;
// keeping a short history of snapshots makes recovery from a bad write
// a matter of loading the previous row.
type ProgressSnapshot struct {
	ent.Schema
}

func (ProgressSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Owner of the progress record"),
		field.Int("schema_version").
			Comment("Version of the serialized progress layout"),
		field.Time("saved_at").
			Default(time.Now).
			Comment("When the snapshot was written"),
		field.JSON("data", map[string]any{}).
			Comment("Full LearningProgress as JSON, dates as ISO-8601 strings"),
	}
}

func (ProgressSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("saved_at"),
	}
}
