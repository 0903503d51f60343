package assessment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// State is the engine's position in the assessment lifecycle.
type State int

const (
	StateIdle State = iota
	StateStarting
	StateQuestioning
	StateEvaluating
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStarting:
		return "starting"
	case StateQuestioning:
		return "questioning"
	case StateEvaluating:
		return "evaluating"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}

// DefaultQuestionCount is the number of questions requested per session.
const DefaultQuestionCount = 5

// Engine drives one assessment session at a time: question generation,
// the answer/evaluation loop, and finalization into an Assessment.
// All methods are safe for concurrent use; evaluator calls run outside the
// lock so Reset can cancel a session mid-flight ("last reset wins": a
// response arriving for a reset session is dropped).
type Engine struct {
	evaluator Evaluator

	mu            sync.Mutex
	state         State
	session       *Session
	result        *Assessment
	epoch         int // bumped on Reset; stale completions are discarded
	shownAt       time.Time
	questionCount int
}

// NewEngine creates an Engine in the idle state.
func NewEngine(ev Evaluator) *Engine {
	return &Engine{
		evaluator:     ev,
		questionCount: DefaultQuestionCount,
	}
}

// SetQuestionCount overrides the per-session question count. Values below 1
// are ignored.
func (e *Engine) SetQuestionCount(n int) {
	if n < 1 {
		return
	}
	e.mu.Lock()
	e.questionCount = n
	e.mu.Unlock()
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Session returns the active session, or nil outside a run.
func (e *Engine) Session() *Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}

// Result returns the finalized Assessment after completion, or nil.
func (e *Engine) Result() *Assessment {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.result
}

// Start begins a new session for the given skill area, generating questions
// at difficulty min(10, currentLevel+1). Only one session can be active per
// engine; starting while one is in flight is an error. When the evaluator
// fails to produce questions the engine degrades to a single fallback
// open-ended question instead of failing the session; only a missing
// configuration aborts the start.
func (e *Engine) Start(ctx context.Context, skillArea string, currentLevel int) (*Session, error) {
	e.mu.Lock()
	if e.state != StateIdle && e.state != StateCompleted {
		e.mu.Unlock()
		return nil, fmt.Errorf("assessment already in progress (state %s)", e.state)
	}
	e.state = StateStarting
	e.result = nil
	e.session = nil
	epoch := e.epoch
	count := e.questionCount
	e.mu.Unlock()

	difficulty := currentLevel + 1
	if difficulty > 10 {
		difficulty = 10
	}

	batch, err := e.evaluator.GenerateQuestions(ctx, GenerateRequest{
		SkillArea:     skillArea,
		CurrentLevel:  currentLevel,
		Difficulty:    difficulty,
		QuestionCount: count,
	})

	degraded := false
	switch {
	case err == nil && batch != nil && len(batch.Questions) > 0:
		// Normal path.
	case isConfigurationError(err):
		e.abortStart(epoch)
		return nil, err
	default:
		// Zero questions, malformed payload, timeout, provider down:
		// degrade to a locally synthesized question so the session can
		// still proceed.
		if batch == nil {
			batch = &QuestionBatch{}
		}
		batch.Questions = []Question{FallbackQuestion(skillArea, currentLevel)}
		degraded = true
	}
	if batch.Warning != "" {
		degraded = true
	}

	sess := &Session{
		ID:              "session-" + uuid.New().String(),
		StartTime:       time.Now(),
		Questions:       batch.Questions,
		Responses:       nil,
		SkillFocus:      skillArea,
		CurrentLevel:    currentLevel,
		DifficultyLevel: difficulty,
		IsActive:        true,
		TokensUsed:      batch.TokensUsed,
		Model:           batch.Model,
		Degraded:        degraded,
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.epoch != epoch {
		// Reset won the race; drop the session.
		return nil, errors.New("session was reset")
	}
	e.session = sess
	e.state = StateQuestioning
	e.shownAt = time.Now()
	return sess, nil
}

// SubmitAnswer records the learner's answer to the current question and asks
// the evaluator to score it. Valid only while questioning. A blank answer is
// a no-op. Evaluation failures never lose the answer: it is recorded
// unscored and the session advances. Returns the answered question; when it
// was the last one the engine transitions to completed and Result() holds
// the finalized Assessment.
func (e *Engine) SubmitAnswer(ctx context.Context, text string) (*Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	e.mu.Lock()
	if e.state != StateQuestioning {
		e.mu.Unlock()
		return nil, fmt.Errorf("no question awaiting an answer (state %s)", e.state)
	}
	current := e.session.CurrentQuestion()
	if current == nil {
		e.mu.Unlock()
		return nil, errors.New("session has no remaining questions")
	}
	answered := *current
	skillArea := e.session.SkillFocus
	level := e.session.CurrentLevel
	timeSpent := int(time.Since(e.shownAt).Seconds())
	epoch := e.epoch
	e.state = StateEvaluating
	e.mu.Unlock()

	answered.UserAnswer = text
	answered.TimeSpent = timeSpent

	eval, err := e.evaluator.EvaluateAnswer(ctx, EvaluateRequest{
		Question:     answered,
		UserAnswer:   text,
		SkillArea:    skillArea,
		CurrentLevel: level,
	})

	tokens := 0
	if err == nil && eval != nil {
		score := clampScore(eval.Score)
		answered.Score = &score
		answered.Feedback = eval.Feedback
		tokens = eval.TokensUsed
	}
	// On error or a nil evaluation the answer stays unscored (Score == nil)
	// but is never lost.

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.epoch != epoch {
		return nil, errors.New("session was reset")
	}

	sess := e.session
	sess.Responses = append(sess.Responses, answered)
	sess.CurrentQuestionIndex++
	sess.TokensUsed += tokens
	if eval != nil && eval.Model != "" {
		sess.Model = eval.Model
	}

	if sess.CurrentQuestionIndex >= len(sess.Questions) {
		e.finishLocked()
	} else {
		e.state = StateQuestioning
		e.shownAt = time.Now()
	}
	return &answered, nil
}

// Reset discards any in-progress session from any state and returns the
// engine to idle. No partial Assessment is emitted; an in-flight evaluator
// response for the discarded session is ignored when it resolves.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.epoch++
	e.session = nil
	e.result = nil
	e.state = StateIdle
}

// finishLocked folds the session into an immutable Assessment.
// Callers must hold e.mu.
func (e *Engine) finishLocked() {
	sess := e.session
	sess.IsActive = false

	var total float64
	for _, q := range sess.Responses {
		total += q.ScoreOrZero()
	}
	score := 0.0
	if len(sess.Responses) > 0 {
		score = total / float64(len(sess.Responses))
	}

	completion := 0.0
	if len(sess.Questions) > 0 {
		completion = 100 * float64(len(sess.Responses)) / float64(len(sess.Questions))
	}

	e.result = &Assessment{
		ID:             sess.ID,
		Date:           time.Now(),
		Questions:      sess.Responses,
		Score:          score,
		Feedback:       fmt.Sprintf("Completed %s assessment with an average score of %.1f/10", sess.SkillFocus, score),
		TopicsAssessed: []string{sess.SkillFocus},
		TokensUsed:     sess.TokensUsed,
		Model:          sess.Model,
		Duration:       int(time.Since(sess.StartTime).Seconds()),
		CompletionRate: completion,
		Degraded:       sess.Degraded,
	}
	e.state = StateCompleted
}

// abortStart returns the engine to idle after a failed Start, unless a
// Reset already intervened.
func (e *Engine) abortStart(epoch int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.epoch == epoch {
		e.state = StateIdle
	}
}

// FallbackQuestion synthesizes the degraded-mode question used when the
// evaluator cannot produce a question set.
func FallbackQuestion(skillArea string, currentLevel int) Question {
	if currentLevel < 1 {
		currentLevel = 1
	}
	return Question{
		ID:         "fallback-" + uuid.New().String(),
		Type:       TypeOpenEnded,
		Topic:      skillArea,
		Difficulty: currentLevel,
		Question:   fmt.Sprintf("Explain a key concept in %s and describe a situation where you applied it.", skillArea),
	}
}

func isConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 10 {
		return 10
	}
	return s
}
