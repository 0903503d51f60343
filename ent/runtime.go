// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/rghosh/devnotes/ent/answerevent"
	"github.com/rghosh/devnotes/ent/assessmentevent"
	"github.com/rghosh/devnotes/ent/llmrequestevent"
	"github.com/rghosh/devnotes/ent/progresssnapshot"
	"github.com/rghosh/devnotes/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescAssessmentID is the schema descriptor for assessment_id field.
	answereventDescAssessmentID := answereventFields[0].Descriptor()
	// answerevent.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	answerevent.AssessmentIDValidator = answereventDescAssessmentID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[1].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescQuestionType is the schema descriptor for question_type field.
	answereventDescQuestionType := answereventFields[2].Descriptor()
	// answerevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	answerevent.QuestionTypeValidator = answereventDescQuestionType.Validators[0].(func(string) error)
	// answereventDescTopic is the schema descriptor for topic field.
	answereventDescTopic := answereventFields[3].Descriptor()
	// answerevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	answerevent.TopicValidator = answereventDescTopic.Validators[0].(func(string) error)
	// answereventDescUserAnswer is the schema descriptor for user_answer field.
	answereventDescUserAnswer := answereventFields[5].Descriptor()
	// answerevent.UserAnswerValidator is a validator for the "user_answer" field. It is called by the builders before save.
	answerevent.UserAnswerValidator = answereventDescUserAnswer.Validators[0].(func(string) error)
	// answereventDescScore is the schema descriptor for score field.
	answereventDescScore := answereventFields[6].Descriptor()
	// answerevent.DefaultScore holds the default value on creation for the score field.
	answerevent.DefaultScore = answereventDescScore.Default.(float64)
	// answereventDescScored is the schema descriptor for scored field.
	answereventDescScored := answereventFields[7].Descriptor()
	// answerevent.DefaultScored holds the default value on creation for the scored field.
	answerevent.DefaultScored = answereventDescScored.Default.(bool)
	// answereventDescTimeSecs is the schema descriptor for time_secs field.
	answereventDescTimeSecs := answereventFields[8].Descriptor()
	// answerevent.DefaultTimeSecs holds the default value on creation for the time_secs field.
	answerevent.DefaultTimeSecs = answereventDescTimeSecs.Default.(int)
	assessmenteventMixin := schema.AssessmentEvent{}.Mixin()
	assessmenteventMixinFields0 := assessmenteventMixin[0].Fields()
	_ = assessmenteventMixinFields0
	assessmenteventFields := schema.AssessmentEvent{}.Fields()
	_ = assessmenteventFields
	// assessmenteventDescTimestamp is the schema descriptor for timestamp field.
	assessmenteventDescTimestamp := assessmenteventMixinFields0[1].Descriptor()
	// assessmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevent.DefaultTimestamp = assessmenteventDescTimestamp.Default.(func() time.Time)
	// assessmenteventDescAssessmentID is the schema descriptor for assessment_id field.
	assessmenteventDescAssessmentID := assessmenteventFields[0].Descriptor()
	// assessmentevent.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	assessmentevent.AssessmentIDValidator = assessmenteventDescAssessmentID.Validators[0].(func(string) error)
	// assessmenteventDescSkillArea is the schema descriptor for skill_area field.
	assessmenteventDescSkillArea := assessmenteventFields[1].Descriptor()
	// assessmentevent.SkillAreaValidator is a validator for the "skill_area" field. It is called by the builders before save.
	assessmentevent.SkillAreaValidator = assessmenteventDescSkillArea.Validators[0].(func(string) error)
	// assessmenteventDescQuestionsAnswered is the schema descriptor for questions_answered field.
	assessmenteventDescQuestionsAnswered := assessmenteventFields[4].Descriptor()
	// assessmentevent.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	assessmentevent.DefaultQuestionsAnswered = assessmenteventDescQuestionsAnswered.Default.(int)
	// assessmenteventDescQuestionsGenerated is the schema descriptor for questions_generated field.
	assessmenteventDescQuestionsGenerated := assessmenteventFields[5].Descriptor()
	// assessmentevent.DefaultQuestionsGenerated holds the default value on creation for the questions_generated field.
	assessmentevent.DefaultQuestionsGenerated = assessmenteventDescQuestionsGenerated.Default.(int)
	// assessmenteventDescTokensUsed is the schema descriptor for tokens_used field.
	assessmenteventDescTokensUsed := assessmenteventFields[6].Descriptor()
	// assessmentevent.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	assessmentevent.DefaultTokensUsed = assessmenteventDescTokensUsed.Default.(int)
	// assessmenteventDescModel is the schema descriptor for model field.
	assessmenteventDescModel := assessmenteventFields[7].Descriptor()
	// assessmentevent.DefaultModel holds the default value on creation for the model field.
	assessmentevent.DefaultModel = assessmenteventDescModel.Default.(string)
	// assessmenteventDescDurationSecs is the schema descriptor for duration_secs field.
	assessmenteventDescDurationSecs := assessmenteventFields[8].Descriptor()
	// assessmentevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	assessmentevent.DefaultDurationSecs = assessmenteventDescDurationSecs.Default.(int)
	// assessmenteventDescDegraded is the schema descriptor for degraded field.
	assessmenteventDescDegraded := assessmenteventFields[9].Descriptor()
	// assessmentevent.DefaultDegraded holds the default value on creation for the degraded field.
	assessmentevent.DefaultDegraded = assessmenteventDescDegraded.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	progresssnapshotFields := schema.ProgressSnapshot{}.Fields()
	_ = progresssnapshotFields
	// progresssnapshotDescUserID is the schema descriptor for user_id field.
	progresssnapshotDescUserID := progresssnapshotFields[0].Descriptor()
	// progresssnapshot.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	progresssnapshot.UserIDValidator = progresssnapshotDescUserID.Validators[0].(func(string) error)
	// progresssnapshotDescSavedAt is the schema descriptor for saved_at field.
	progresssnapshotDescSavedAt := progresssnapshotFields[2].Descriptor()
	// progresssnapshot.DefaultSavedAt holds the default value on creation for the saved_at field.
	progresssnapshot.DefaultSavedAt = progresssnapshotDescSavedAt.Default.(func() time.Time)
}
