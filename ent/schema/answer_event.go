package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered question within an assessment.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("assessment_id").
			NotEmpty().
			Comment("Links to AssessmentEvent"),
		field.String("question_id").
			NotEmpty(),
		field.String("question_type").
			NotEmpty().
			Comment("multiple-choice, open-ended, or scenario-based"),
		field.String("topic").
			NotEmpty().
			Comment("Skill area the question assessed"),
		field.Int("difficulty").
			Comment("Question difficulty 1-10"),
		field.String("user_answer").
			NotEmpty(),
		field.Float("score").
			Default(0).
			Comment("Evaluator score 0-10; 0 when the evaluation failed"),
		field.Bool("scored").
			Default(true).
			Comment("False when the evaluator failed and the answer is unscored"),
		field.Int("time_secs").
			Default(0).
			Comment("Seconds spent on the question"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assessment_id"),
		index.Fields("topic"),
	}
}
