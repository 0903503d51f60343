package evaluator

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/rghosh/devnotes/internal/assessment"
	"github.com/rghosh/devnotes/internal/progress"
)

// Server exposes the evaluator contract over HTTP for the site's dashboard
// and for remote devnotes clients.
type Server struct {
	questions       assessment.Evaluator
	recommendations progress.RecommendationSource
	log             *zap.Logger
}

// NewServer builds the HTTP facade. Both backends are usually the same
// *LLMEvaluator, split here so tests can stub them independently.
func NewServer(q assessment.Evaluator, r progress.RecommendationSource, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{questions: q, recommendations: r, log: log}
}

// Handler returns the chi router serving the evaluator API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Post("/api/assessment", s.handleAssessment)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func (s *Server) handleAssessment(w http.ResponseWriter, r *http.Request) {
	var req apiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.log.Info("assessment API called", zap.String("action", req.Action))

	switch req.Action {
	case ActionGenerateQuestions:
		s.handleGenerate(w, r, req.Payload)
	case ActionEvaluateAnswer:
		s.handleEvaluate(w, r, req.Payload)
	case ActionGenerateRecommendations:
		s.handleRecommend(w, r, req.Payload)
	default:
		s.writeError(w, http.StatusBadRequest, "invalid action")
	}
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request, raw json.RawMessage) {
	var p generatePayload
	if err := json.Unmarshal(raw, &p); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	batch, err := s.questions.GenerateQuestions(r.Context(), assessment.GenerateRequest{
		SkillArea:     p.SkillArea,
		CurrentLevel:  p.CurrentLevel,
		Difficulty:    p.Difficulty,
		QuestionCount: p.QuestionCount,
	})
	if err != nil {
		// The HTTP surface degrades the same way the engine does: hand
		// the client a fallback question instead of failing the session.
		var confErr *assessment.ConfigurationError
		if errors.As(err, &confErr) {
			s.log.Error("evaluator not configured", zap.Error(err))
			s.writeError(w, http.StatusInternalServerError, "evaluator is not configured")
			return
		}
		s.log.Warn("question generation degraded", zap.Error(err))
		s.writeJSON(w, http.StatusOK, generateResponse{
			Questions: []assessment.Question{
				assessment.FallbackQuestion(p.SkillArea, p.CurrentLevel),
			},
			Warning: "Used fallback question due to generation error",
		})
		return
	}

	s.writeJSON(w, http.StatusOK, generateResponse{
		Questions:  batch.Questions,
		TokensUsed: batch.TokensUsed,
		Model:      batch.Model,
		Warning:    batch.Warning,
	})
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request, raw json.RawMessage) {
	var p evaluatePayload
	if err := json.Unmarshal(raw, &p); err != nil || p.UserAnswer == "" {
		s.writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	ev, err := s.questions.EvaluateAnswer(r.Context(), assessment.EvaluateRequest{
		Question:     p.Question,
		UserAnswer:   p.UserAnswer,
		SkillArea:    p.SkillArea,
		CurrentLevel: p.CurrentLevel,
	})
	if err != nil {
		s.log.Error("answer evaluation failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, evaluatorErrorMessage(err))
		return
	}

	s.writeJSON(w, http.StatusOK, evaluateResponse{
		Evaluation: evaluationBody{
			Score:           ev.Score,
			Feedback:        ev.Feedback,
			Strengths:       ev.Strengths,
			Improvements:    ev.Improvements,
			Recommendations: ev.Recommendations,
		},
		TokensUsed: ev.TokensUsed,
		Model:      ev.Model,
	})
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request, raw json.RawMessage) {
	var p recommendPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	in := progress.RecommendationInput{
		SkillLevels:  p.SkillLevels,
		RecentScores: p.RecentScores,
		WeakAreas:    p.WeakAreas,
	}
	if in.WeakAreas == nil {
		in.WeakAreas = progress.WeakAreas(in.SkillLevels, progress.DefaultWeakAreaThreshold)
	}

	batch, err := s.recommendations.GenerateRecommendations(r.Context(), in)
	if err != nil {
		s.log.Error("recommendation generation failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, evaluatorErrorMessage(err))
		return
	}

	s.writeJSON(w, http.StatusOK, recommendResponse{
		Recommendations: batch.Recommendations,
		TokensUsed:      batch.TokensUsed,
		Model:           batch.Model,
	})
}

// evaluatorErrorMessage maps internal failures to client-safe messages.
func evaluatorErrorMessage(err error) string {
	var confErr *assessment.ConfigurationError
	if errors.As(err, &confErr) {
		return "evaluator is not configured"
	}
	return "failed to process request"
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("write response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}
