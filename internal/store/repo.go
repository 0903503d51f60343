package store

import (
	"context"
	"time"

	"github.com/rghosh/devnotes/internal/progress"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ProgressStore persists the LearningProgress aggregate as JSON snapshots.
// Every save writes a new row; Load reads the most recent one.
type ProgressStore interface {
	// Load returns the latest saved progress for the user, or nil if
	// none has been saved yet.
	Load(ctx context.Context, userID string) (*progress.LearningProgress, error)

	// Save stores a new progress snapshot for the user.
	Save(ctx context.Context, p *progress.LearningProgress) error

	// Prune deletes all but the N most recent snapshots for the user.
	Prune(ctx context.Context, userID string, keep int) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEventRecord is a stored LLM request event with its ordering fields.
type LLMRequestEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// AssessmentEventData records a finalized assessment.
type AssessmentEventData struct {
	AssessmentID       string
	SkillArea          string
	Score              float64
	CompletionRate     float64
	QuestionsAnswered  int
	QuestionsGenerated int
	TokensUsed         int
	Model              string
	DurationSecs       int
	Degraded           bool
}

// AssessmentEventRecord is a stored assessment event with its ordering fields.
type AssessmentEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	AssessmentEventData
}

// AnswerEventData records one answered question within an assessment.
type AnswerEventData struct {
	AssessmentID string
	QuestionID   string
	QuestionType string
	Topic        string
	Difficulty   int
	UserAnswer   string
	Score        float64
	Scored       bool
	TimeSecs     int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendAssessment records a finalized assessment.
	AppendAssessment(ctx context.Context, data AssessmentEventData) error

	// AppendAnswer records an answered question.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// QueryLLMEvents returns LLM request events matching opts,
	// ordered by sequence ascending.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// QueryAssessments returns assessment events matching opts,
	// ordered by sequence ascending.
	QueryAssessments(ctx context.Context, opts QueryOpts) ([]AssessmentEventRecord, error)
}
