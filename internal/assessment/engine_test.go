package assessment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
)

// scriptedEvaluator returns canned batches and evaluations in FIFO order.
type scriptedEvaluator struct {
	batches  []*QuestionBatch
	batchErr []error
	evals    []*Evaluation
	evalErr  []error

	generateCalls []GenerateRequest
	evaluateCalls []EvaluateRequest
}

func (s *scriptedEvaluator) GenerateQuestions(_ context.Context, req GenerateRequest) (*QuestionBatch, error) {
	s.generateCalls = append(s.generateCalls, req)
	i := len(s.generateCalls) - 1
	var err error
	if i < len(s.batchErr) {
		err = s.batchErr[i]
	}
	var b *QuestionBatch
	if i < len(s.batches) {
		b = s.batches[i]
	}
	return b, err
}

func (s *scriptedEvaluator) EvaluateAnswer(_ context.Context, req EvaluateRequest) (*Evaluation, error) {
	s.evaluateCalls = append(s.evaluateCalls, req)
	i := len(s.evaluateCalls) - 1
	var err error
	if i < len(s.evalErr) {
		err = s.evalErr[i]
	}
	var ev *Evaluation
	if i < len(s.evals) {
		ev = s.evals[i]
	}
	return ev, err
}

func questions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			ID:       fmt.Sprintf("q-%d", i+1),
			Type:     TypeOpenEnded,
			Topic:    "react",
			Question: fmt.Sprintf("Question %d", i+1),
		}
	}
	return qs
}

func evals(scores ...float64) []*Evaluation {
	out := make([]*Evaluation, len(scores))
	for i, sc := range scores {
		out[i] = &Evaluation{Score: sc, Feedback: "ok", TokensUsed: 100}
	}
	return out
}

func TestEngineHappyPath(t *testing.T) {
	ev := &scriptedEvaluator{
		batches: []*QuestionBatch{{Questions: questions(3), TokensUsed: 500, Model: "gpt-4o-mini"}},
		evals:   evals(6, 8, 7),
	}
	e := NewEngine(ev)
	ctx := context.Background()

	if e.State() != StateIdle {
		t.Fatalf("initial state = %s, want idle", e.State())
	}

	sess, err := e.Start(ctx, "react", 3)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if e.State() != StateQuestioning {
		t.Fatalf("state after start = %s, want questioning", e.State())
	}
	if sess.DifficultyLevel != 4 {
		t.Errorf("difficulty = %d, want currentLevel+1 = 4", sess.DifficultyLevel)
	}
	if sess.Degraded {
		t.Error("session should not be degraded")
	}

	for i := 0; i < 3; i++ {
		q, err := e.SubmitAnswer(ctx, fmt.Sprintf("answer %d", i+1))
		if err != nil {
			t.Fatalf("submit %d: %v", i+1, err)
		}
		if q.Score == nil {
			t.Fatalf("answer %d unscored", i+1)
		}
	}

	if e.State() != StateCompleted {
		t.Fatalf("state = %s, want completed", e.State())
	}
	result := e.Result()
	if result == nil {
		t.Fatal("expected a finalized assessment")
	}
	if want := (6.0 + 8 + 7) / 3; math.Abs(result.Score-want) > 1e-9 {
		t.Errorf("score = %v, want %v", result.Score, want)
	}
	if result.CompletionRate != 100 {
		t.Errorf("completionRate = %v, want 100", result.CompletionRate)
	}
	// 500 generation tokens + 3 evaluations at 100 each.
	if result.TokensUsed != 800 {
		t.Errorf("tokensUsed = %d, want 800", result.TokensUsed)
	}
	if len(result.TopicsAssessed) != 1 || result.TopicsAssessed[0] != "react" {
		t.Errorf("topicsAssessed = %v", result.TopicsAssessed)
	}
}

func TestEngineDifficultyCapped(t *testing.T) {
	ev := &scriptedEvaluator{
		batches: []*QuestionBatch{{Questions: questions(1)}},
	}
	e := NewEngine(ev)

	if _, err := e.Start(context.Background(), "react", 10); err != nil {
		t.Fatalf("start: %v", err)
	}
	if got := ev.generateCalls[0].Difficulty; got != 10 {
		t.Errorf("difficulty = %d, want capped at 10", got)
	}
	if got := ev.generateCalls[0].CurrentLevel; got != 10 {
		t.Errorf("currentLevel = %d, want 10", got)
	}
}

func TestEngineDegradesOnGenerationFailure(t *testing.T) {
	ev := &scriptedEvaluator{
		batchErr: []error{&GenerationError{Err: errors.New("provider down")}},
		evals:    evals(5),
	}
	e := NewEngine(ev)
	ctx := context.Background()

	sess, err := e.Start(ctx, "nextjs", 2)
	if err != nil {
		t.Fatalf("start should degrade, got %v", err)
	}
	if !sess.Degraded {
		t.Error("session should be marked degraded")
	}
	if len(sess.Questions) != 1 || sess.Questions[0].Type != TypeOpenEnded {
		t.Fatalf("expected one open-ended fallback question, got %+v", sess.Questions)
	}

	// A degraded session still completes normally.
	if _, err := e.SubmitAnswer(ctx, "my answer"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	result := e.Result()
	if result == nil || !result.Degraded {
		t.Fatalf("result = %+v, want degraded assessment", result)
	}
}

func TestEngineEmptyBatchDegrades(t *testing.T) {
	ev := &scriptedEvaluator{
		batches: []*QuestionBatch{{Questions: nil}},
	}
	e := NewEngine(ev)

	sess, err := e.Start(context.Background(), "react", 3)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if !sess.Degraded || len(sess.Questions) != 1 {
		t.Errorf("zero questions should degrade to one fallback, got %+v", sess)
	}
}

func TestEngineConfigurationErrorAborts(t *testing.T) {
	ev := &scriptedEvaluator{
		batchErr: []error{&ConfigurationError{}},
	}
	e := NewEngine(ev)

	if _, err := e.Start(context.Background(), "react", 3); err == nil {
		t.Fatal("expected configuration error")
	}
	if e.State() != StateIdle {
		t.Errorf("state = %s, want idle after aborted start", e.State())
	}
	// The engine can start again.
	ev.batchErr = []error{nil, nil}
	ev.batches = []*QuestionBatch{nil, {Questions: questions(1)}}
	if _, err := e.Start(context.Background(), "react", 3); err != nil {
		t.Fatalf("restart after abort: %v", err)
	}
}

func TestEngineBlankAnswerIsNoop(t *testing.T) {
	ev := &scriptedEvaluator{
		batches: []*QuestionBatch{{Questions: questions(1)}},
	}
	e := NewEngine(ev)
	ctx := context.Background()

	if _, err := e.Start(ctx, "react", 3); err != nil {
		t.Fatalf("start: %v", err)
	}

	q, err := e.SubmitAnswer(ctx, "   \t ")
	if err != nil || q != nil {
		t.Fatalf("blank answer = (%v, %v), want (nil, nil)", q, err)
	}
	if len(ev.evaluateCalls) != 0 {
		t.Error("blank answer should not reach the evaluator")
	}
	if e.State() != StateQuestioning {
		t.Errorf("state = %s, want still questioning", e.State())
	}
}

func TestEngineEvaluationFailureKeepsAnswer(t *testing.T) {
	ev := &scriptedEvaluator{
		batches: []*QuestionBatch{{Questions: questions(2)}},
		evalErr: []error{&EvaluationError{Err: errors.New("timeout")}, nil},
		evals:   []*Evaluation{nil, {Score: 9}},
	}
	e := NewEngine(ev)
	ctx := context.Background()

	if _, err := e.Start(ctx, "react", 3); err != nil {
		t.Fatalf("start: %v", err)
	}

	q, err := e.SubmitAnswer(ctx, "first answer")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if q.Score != nil {
		t.Error("failed evaluation should leave the answer unscored")
	}
	if q.UserAnswer != "first answer" {
		t.Error("answer text should be recorded despite evaluation failure")
	}
	// Session advanced to the second question.
	if e.Session().CurrentQuestionIndex != 1 {
		t.Errorf("index = %d, want 1", e.Session().CurrentQuestionIndex)
	}

	if _, err := e.SubmitAnswer(ctx, "second answer"); err != nil {
		t.Fatalf("submit second: %v", err)
	}
	result := e.Result()
	if result == nil {
		t.Fatal("expected completion")
	}
	// Unscored answers count as zero: (0 + 9) / 2.
	if math.Abs(result.Score-4.5) > 1e-9 {
		t.Errorf("score = %v, want 4.5", result.Score)
	}
}

func TestEngineNilEvaluationKeepsAnswer(t *testing.T) {
	ev := &scriptedEvaluator{
		batches: []*QuestionBatch{{Questions: questions(2)}},
		evals:   []*Evaluation{nil},
	}
	e := NewEngine(ev)
	ctx := context.Background()

	if _, err := e.Start(ctx, "react", 3); err != nil {
		t.Fatalf("start: %v", err)
	}

	// An evaluator returning (nil, nil) looks like success with no result.
	q, err := e.SubmitAnswer(ctx, "an answer")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if q.Score != nil {
		t.Error("nil evaluation should leave the answer unscored")
	}
	if q.UserAnswer != "an answer" {
		t.Error("answer text should be recorded despite the nil evaluation")
	}
	if e.Session().CurrentQuestionIndex != 1 {
		t.Errorf("index = %d, want 1", e.Session().CurrentQuestionIndex)
	}
}

func TestEngineSubmitOutsideQuestioning(t *testing.T) {
	e := NewEngine(&scriptedEvaluator{})
	if _, err := e.SubmitAnswer(context.Background(), "hello"); err == nil {
		t.Fatal("expected error when no session is active")
	}
}

func TestEngineStartWhileActive(t *testing.T) {
	ev := &scriptedEvaluator{
		batches: []*QuestionBatch{{Questions: questions(1)}},
	}
	e := NewEngine(ev)
	ctx := context.Background()

	if _, err := e.Start(ctx, "react", 3); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := e.Start(ctx, "nextjs", 2); err == nil {
		t.Fatal("expected error starting over an active session")
	}
}

func TestEngineReset(t *testing.T) {
	ev := &scriptedEvaluator{
		batches: []*QuestionBatch{{Questions: questions(2)}, {Questions: questions(1)}},
		evals:   evals(7),
	}
	e := NewEngine(ev)
	ctx := context.Background()

	if _, err := e.Start(ctx, "react", 3); err != nil {
		t.Fatalf("start: %v", err)
	}
	e.Reset()

	if e.State() != StateIdle {
		t.Errorf("state = %s, want idle", e.State())
	}
	if e.Session() != nil || e.Result() != nil {
		t.Error("reset should discard session and result")
	}

	// Fresh start works after reset.
	if _, err := e.Start(ctx, "ai-tools", 1); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if _, err := e.SubmitAnswer(ctx, "answer"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if e.Result() == nil {
		t.Fatal("expected result after restart completes")
	}
}
