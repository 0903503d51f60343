package evaluator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rghosh/devnotes/internal/assessment"
	"github.com/rghosh/devnotes/internal/progress"
)

type stubBackend struct {
	batch   *assessment.QuestionBatch
	eval    *assessment.Evaluation
	recs    *progress.RecommendationBatch
	genErr  error
	evalErr error
	recErr  error
}

func (s *stubBackend) GenerateQuestions(context.Context, assessment.GenerateRequest) (*assessment.QuestionBatch, error) {
	return s.batch, s.genErr
}

func (s *stubBackend) EvaluateAnswer(context.Context, assessment.EvaluateRequest) (*assessment.Evaluation, error) {
	return s.eval, s.evalErr
}

func (s *stubBackend) GenerateRecommendations(context.Context, progress.RecommendationInput) (*progress.RecommendationBatch, error) {
	return s.recs, s.recErr
}

func postAction(t *testing.T, srv *httptest.Server, action string, payload any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	body, _ := json.Marshal(map[string]any{"action": action, "payload": json.RawMessage(raw)})
	resp, err := http.Post(srv.URL+"/api/assessment", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	return resp
}

func TestServerGenerateQuestions(t *testing.T) {
	backend := &stubBackend{batch: &assessment.QuestionBatch{
		Questions: []assessment.Question{
			{ID: "q-1", Type: assessment.TypeOpenEnded, Question: "Explain hydration."},
		},
		TokensUsed: 500,
		Model:      "gpt-4o-mini",
	}}
	srv := httptest.NewServer(NewServer(backend, backend, nil).Handler())
	defer srv.Close()

	resp := postAction(t, srv, ActionGenerateQuestions, generatePayload{
		SkillArea: "react", CurrentLevel: 3, Difficulty: 4,
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Questions) != 1 || out.TokensUsed != 500 || out.Model != "gpt-4o-mini" {
		t.Errorf("response = %+v", out)
	}
}

func TestServerGenerateDegradesToFallback(t *testing.T) {
	backend := &stubBackend{genErr: &assessment.GenerationError{Err: errors.New("parse failed")}}
	srv := httptest.NewServer(NewServer(backend, backend, nil).Handler())
	defer srv.Close()

	resp := postAction(t, srv, ActionGenerateQuestions, generatePayload{
		SkillArea: "react", CurrentLevel: 3, Difficulty: 4,
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 with fallback", resp.StatusCode)
	}
	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Questions) != 1 {
		t.Fatalf("questions = %d, want 1 fallback", len(out.Questions))
	}
	if out.Questions[0].Type != assessment.TypeOpenEnded {
		t.Errorf("fallback type = %s, want open-ended", out.Questions[0].Type)
	}
	if out.Warning == "" {
		t.Error("expected warning on degraded response")
	}
}

func TestServerConfigurationErrorIs500(t *testing.T) {
	backend := &stubBackend{genErr: &assessment.ConfigurationError{}}
	srv := httptest.NewServer(NewServer(backend, backend, nil).Handler())
	defer srv.Close()

	resp := postAction(t, srv, ActionGenerateQuestions, generatePayload{SkillArea: "react"})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
	var out errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Error == "" {
		t.Error("expected error message")
	}
}

func TestServerInvalidAction(t *testing.T) {
	backend := &stubBackend{}
	srv := httptest.NewServer(NewServer(backend, backend, nil).Handler())
	defer srv.Close()

	resp := postAction(t, srv, "delete_everything", struct{}{})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestClientRoundTrip(t *testing.T) {
	score := 8.0
	backend := &stubBackend{
		batch: &assessment.QuestionBatch{
			Questions:  []assessment.Question{{ID: "q-1", Question: "Explain SSR.", Type: assessment.TypeOpenEnded}},
			TokensUsed: 400,
			Model:      "gpt-4o-mini",
		},
		eval: &assessment.Evaluation{Score: score, Feedback: "good", TokensUsed: 200, Model: "gpt-4o-mini"},
		recs: &progress.RecommendationBatch{
			Recommendations: []progress.Recommendation{{Type: "concept", Title: "Streaming SSR"}},
			TokensUsed:      600,
		},
	}
	srv := httptest.NewServer(NewServer(backend, backend, nil).Handler())
	defer srv.Close()

	c := NewClient(srv.URL)
	ctx := context.Background()

	batch, err := c.GenerateQuestions(ctx, assessment.GenerateRequest{SkillArea: "nextjs", CurrentLevel: 2, Difficulty: 3})
	if err != nil {
		t.Fatalf("client generate: %v", err)
	}
	if len(batch.Questions) != 1 || batch.TokensUsed != 400 {
		t.Errorf("batch = %+v", batch)
	}

	ev, err := c.EvaluateAnswer(ctx, assessment.EvaluateRequest{
		Question: batch.Questions[0], UserAnswer: "render on the server", SkillArea: "nextjs",
	})
	if err != nil {
		t.Fatalf("client evaluate: %v", err)
	}
	if ev.Score != score || ev.Feedback != "good" {
		t.Errorf("evaluation = %+v", ev)
	}

	recs, err := c.GenerateRecommendations(ctx, progress.RecommendationInput{})
	if err != nil {
		t.Fatalf("client recommend: %v", err)
	}
	if len(recs.Recommendations) != 1 {
		t.Errorf("recommendations = %+v", recs)
	}
}

func TestClientSurfacesServerErrors(t *testing.T) {
	backend := &stubBackend{evalErr: errors.New("boom")}
	srv := httptest.NewServer(NewServer(backend, backend, nil).Handler())
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.EvaluateAnswer(context.Background(), assessment.EvaluateRequest{
		Question: assessment.Question{Question: "q"}, UserAnswer: "a",
	})
	var evalErr *assessment.EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatalf("error = %T (%v), want *assessment.EvaluationError", err, err)
	}
}
