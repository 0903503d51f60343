package evaluator

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rghosh/devnotes/internal/assessment"
	"github.com/rghosh/devnotes/internal/llm"
	"github.com/rghosh/devnotes/internal/progress"
)

const questionsJSON = `{
	"questions": [
		{
			"id": "q-1",
			"type": "multiple-choice",
			"question": "Which hook memoizes a computed value?",
			"difficulty": 4,
			"options": ["useMemo", "useRef", "useState", "useEffect"],
			"correctAnswer": "useMemo",
			"keyTopics": ["hooks", "performance"]
		},
		{
			"id": "q-2",
			"type": "scenario-based",
			"question": "A patient portal re-renders its whole chart list on every keystroke. Diagnose and fix.",
			"difficulty": 6,
			"options": [],
			"correctAnswer": "",
			"keyTopics": ["performance"]
		}
	]
}`

func TestGenerateQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(questionsJSON),
		Usage:   llm.Usage{TotalTokens: 750},
	})
	e := New(mock, DefaultConfig())

	batch, err := e.GenerateQuestions(context.Background(), assessment.GenerateRequest{
		SkillArea:    "react",
		CurrentLevel: 3,
		Difficulty:   4,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(batch.Questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(batch.Questions))
	}
	if batch.TokensUsed != 750 {
		t.Errorf("tokensUsed = %d, want 750", batch.TokensUsed)
	}
	q := batch.Questions[0]
	if q.Type != assessment.TypeMultipleChoice || q.CorrectAnswer != "useMemo" {
		t.Errorf("first question = %+v", q)
	}
	if q.Topic != "react" {
		t.Errorf("topic = %q, want react", q.Topic)
	}

	// The request carries the assessment tuning.
	req := mock.Calls[0]
	if req.Temperature != 0.7 || req.MaxTokens != 1000 || req.TopP != 0.9 {
		t.Errorf("tuning = temp %v max %d topP %v", req.Temperature, req.MaxTokens, req.TopP)
	}
	if req.Schema == nil || req.Schema.Name != "assessment-questions" {
		t.Error("expected questions schema on the request")
	}
}

func TestGenerateQuestionsDropsMalformed(t *testing.T) {
	// Second entry claims multiple-choice with no options: demoted to
	// open-ended. Third has no text: dropped.
	content := `{"questions": [
		{"id": "a", "type": "open-ended", "question": "Explain hydration.", "difficulty": 3, "options": [], "correctAnswer": "", "keyTopics": []},
		{"id": "b", "type": "multiple-choice", "question": "Pick one.", "difficulty": 99, "options": [], "correctAnswer": "", "keyTopics": []},
		{"id": "c", "type": "open-ended", "question": "", "difficulty": 3, "options": [], "correctAnswer": "", "keyTopics": []}
	]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(content)})
	e := New(mock, DefaultConfig())

	batch, err := e.GenerateQuestions(context.Background(), assessment.GenerateRequest{
		SkillArea: "nextjs", CurrentLevel: 2, Difficulty: 3,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(batch.Questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(batch.Questions))
	}
	if batch.Questions[1].Type != assessment.TypeOpenEnded {
		t.Errorf("degenerate MC question should become open-ended, got %s", batch.Questions[1].Type)
	}
	if batch.Questions[1].Difficulty != 3 {
		t.Errorf("out-of-range difficulty should fall back to requested, got %d", batch.Questions[1].Difficulty)
	}
}

func TestGenerateQuestionsEmptyBatchIsError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"questions": []}`),
	})
	e := New(mock, DefaultConfig())

	_, err := e.GenerateQuestions(context.Background(), assessment.GenerateRequest{
		SkillArea: "react", CurrentLevel: 3, Difficulty: 4,
	})
	var genErr *assessment.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("error = %T (%v), want *assessment.GenerationError", err, err)
	}
}

func TestGenerateQuestionsNotConfigured(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrNotConfigured{},
	})
	e := New(mock, DefaultConfig())

	_, err := e.GenerateQuestions(context.Background(), assessment.GenerateRequest{
		SkillArea: "react", CurrentLevel: 3, Difficulty: 4,
	})
	var confErr *assessment.ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("error = %T (%v), want *assessment.ConfigurationError", err, err)
	}
}

func TestEvaluateAnswer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"score": 7.5,
			"feedback": "Solid grasp of memoization.",
			"strengths": ["identified the re-render cause"],
			"improvements": ["mention dependency arrays"],
			"recommendations": ["React docs on useMemo"]
		}`),
		Usage: llm.Usage{TotalTokens: 300},
	})
	e := New(mock, DefaultConfig())

	ev, err := e.EvaluateAnswer(context.Background(), assessment.EvaluateRequest{
		Question:   assessment.Question{Question: "Which hook memoizes?", Type: assessment.TypeOpenEnded},
		UserAnswer: "useMemo caches the computed value between renders",
		SkillArea:  "react", CurrentLevel: 3,
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ev.Score != 7.5 {
		t.Errorf("score = %v, want 7.5", ev.Score)
	}
	if len(ev.Strengths) != 1 || len(ev.Improvements) != 1 {
		t.Errorf("evaluation = %+v", ev)
	}
}

func TestEvaluateAnswerClampsScore(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 14, "feedback": "", "strengths": [], "improvements": [], "recommendations": []}`),
	})
	e := New(mock, DefaultConfig())

	ev, err := e.EvaluateAnswer(context.Background(), assessment.EvaluateRequest{
		Question:   assessment.Question{Question: "q"},
		UserAnswer: "a",
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ev.Score != 10 {
		t.Errorf("score = %v, want clamped to 10", ev.Score)
	}
}

func TestGenerateRecommendations(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"recommendations": [
			{"type": "project", "title": "HIPAA-safe audit log viewer", "description": "Build it",
			 "priority": "high", "skillArea": "nextjs", "estimatedTime": 120,
			 "resources": [{"title": "Next.js docs", "url": "https://nextjs.org/docs", "type": "documentation"}]},
			{"type": "concept", "title": "", "description": "dropped", "priority": "low",
			 "skillArea": "react", "estimatedTime": 10, "resources": []}
		]}`),
		Usage: llm.Usage{TotalTokens: 900},
	})
	e := New(mock, DefaultConfig())

	batch, err := e.GenerateRecommendations(context.Background(), progress.RecommendationInput{
		SkillLevels: map[string]*progress.SkillLevel{
			progress.SkillNextJS: {Level: 2},
		},
		WeakAreas: []string{"nextjs"},
	})
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(batch.Recommendations) != 1 {
		t.Fatalf("recommendations = %d, want 1 (untitled dropped)", len(batch.Recommendations))
	}
	r := batch.Recommendations[0]
	if r.Priority != progress.PriorityHigh || r.SkillArea != "nextjs" {
		t.Errorf("recommendation = %+v", r)
	}
	if r.ID != "" {
		t.Error("evaluator should not stamp IDs; the generator does")
	}
}
