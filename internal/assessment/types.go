package assessment

import (
	"context"
	"time"
)

// QuestionType classifies how a question is asked and answered.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeOpenEnded      QuestionType = "open-ended"
	TypeScenarioBased  QuestionType = "scenario-based"
)

// Valid reports whether t is one of the known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case TypeMultipleChoice, TypeOpenEnded, TypeScenarioBased:
		return true
	}
	return false
}

// Question is a single assessment item. The evaluator creates it unanswered;
// the engine fills in UserAnswer, Score and Feedback as the learner responds.
type Question struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	Topic         string       `json:"topic"`
	Difficulty    int          `json:"difficulty"` // 1-10
	Question      string       `json:"question"`
	Options       []string     `json:"options,omitempty"` // multiple-choice only
	CorrectAnswer string       `json:"correctAnswer,omitempty"`
	UserAnswer    string       `json:"userAnswer,omitempty"`
	Score         *float64     `json:"score,omitempty"` // nil until scored; stays nil on evaluator failure
	Feedback      string       `json:"feedback,omitempty"`
	TimeSpent     int          `json:"timeSpent,omitempty"` // seconds
}

// Answered reports whether the learner has responded to this question.
func (q Question) Answered() bool {
	return q.UserAnswer != ""
}

// ScoreOrZero returns the score, counting unscored answers as 0.
func (q Question) ScoreOrZero() float64 {
	if q.Score == nil {
		return 0
	}
	return *q.Score
}

// Session is the ephemeral state of one assessment run. It is owned by the
// engine for the lifetime of the run and never persisted; completing or
// abandoning a session folds it into an Assessment.
type Session struct {
	ID                   string
	StartTime            time.Time
	CurrentQuestionIndex int
	Questions            []Question
	Responses            []Question // answered subset, append-only
	SkillFocus           string
	CurrentLevel         int
	DifficultyLevel      int
	IsActive             bool
	TokensUsed           int
	Model                string
	Degraded             bool // running on a fallback question
}

// CurrentQuestion returns the question awaiting an answer, or nil when the
// session has no remaining questions.
func (s *Session) CurrentQuestion() *Question {
	if s == nil || s.CurrentQuestionIndex >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.CurrentQuestionIndex]
}

// Assessment is the immutable record derived from a finished session.
type Assessment struct {
	ID             string     `json:"id"`
	Date           time.Time  `json:"date"`
	Questions      []Question `json:"questions"` // the responses sequence
	Score          float64    `json:"score"`     // mean of response scores, 0 if none
	Feedback       string     `json:"feedback"`
	TopicsAssessed []string   `json:"topicsAssessed"`
	TokensUsed     int        `json:"tokensUsed"`
	Model          string     `json:"model"`
	Duration       int        `json:"duration"` // seconds
	CompletionRate float64    `json:"completionRate"`
	Degraded       bool       `json:"degraded,omitempty"` // fallback question was used
}

// GenerateRequest asks the evaluator for a fresh question set.
type GenerateRequest struct {
	SkillArea     string
	CurrentLevel  int
	Difficulty    int
	QuestionCount int
}

// QuestionBatch is the evaluator's response to GenerateRequest.
type QuestionBatch struct {
	Questions  []Question
	TokensUsed int
	Model      string
	Warning    string // set when the evaluator degraded to a fallback
}

// EvaluateRequest asks the evaluator to score one answer.
type EvaluateRequest struct {
	Question     Question
	UserAnswer   string
	SkillArea    string
	CurrentLevel int
}

// Evaluation is the evaluator's judgment of a single answer. Score is
// clamped to [0,10] by the evaluator before it reaches the engine.
type Evaluation struct {
	Score           float64
	Feedback        string
	Strengths       []string
	Improvements    []string
	Recommendations []string
	TokensUsed      int
	Model           string
}

// Evaluator is the external scoring service as the engine consumes it.
// Both operations suspend; implementations bound them with a timeout and
// return typed errors from the evaluator package.
type Evaluator interface {
	GenerateQuestions(ctx context.Context, req GenerateRequest) (*QuestionBatch, error)
	EvaluateAnswer(ctx context.Context, req EvaluateRequest) (*Evaluation, error)
}
