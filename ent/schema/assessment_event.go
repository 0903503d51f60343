package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvent records a finalized assessment. The JSON progress snapshot
// remains the source of truth for the aggregate; these events exist so
// assessment history survives schema migrations of the snapshot and can be
// queried without deserializing the whole progress record.
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").
			NotEmpty().
			Comment("UUID of the assessment, same as the session it came from"),
		field.String("skill_area").
			NotEmpty().
			Comment("react, nextjs, or ai-tools"),
		field.Float("score").
			Comment("Mean response score, 0-10"),
		field.Float("completion_rate").
			Comment("Percent of generated questions answered, 0-100"),
		field.Int("questions_answered").
			Default(0),
		field.Int("questions_generated").
			Default(0),
		field.Int("tokens_used").
			Default(0).
			Comment("Evaluator tokens consumed for the whole session"),
		field.String("model").
			Default("").
			Comment("Model that served the session"),
		field.Int("duration_secs").
			Default(0),
		field.Bool("degraded").
			Default(false).
			Comment("True when the session ran on a fallback question"),
	}
}

func (AssessmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assessment_id"),
		index.Fields("skill_area"),
	}
}
