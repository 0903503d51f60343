// Package evaluator implements the scoring service behind the assessment
// engine: question generation, answer evaluation, and learning
// recommendations, all served by an LLM provider behind structured-output
// schemas. The same contract is exposed over HTTP by Server and consumed
// remotely by Client.
package evaluator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rghosh/devnotes/internal/assessment"
	"github.com/rghosh/devnotes/internal/llm"
	"github.com/rghosh/devnotes/internal/progress"
)

// LLMEvaluator implements assessment.Evaluator and
// progress.RecommendationSource using an LLM provider.
type LLMEvaluator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMEvaluator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMEvaluator {
	return &LLMEvaluator{provider: provider, config: cfg}
}

// questionOutput is one raw generated question before normalization.
type questionOutput struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Difficulty    int      `json:"difficulty"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	KeyTopics     []string `json:"keyTopics"`
}

type questionsOutput struct {
	Questions []questionOutput `json:"questions"`
}

// GenerateQuestions asks the LLM for a batch of assessment questions.
func (e *LLMEvaluator) GenerateQuestions(ctx context.Context, req assessment.GenerateRequest) (*assessment.QuestionBatch, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	if req.QuestionCount <= 0 {
		req.QuestionCount = assessment.DefaultQuestionCount
	}

	resp, err := e.generate(ctx, questionsSystemPrompt(req), questionsUserPrompt(req), QuestionsSchema)
	if err != nil {
		return nil, wrapGeneration(err)
	}

	var raw questionsOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &assessment.GenerationError{Err: fmt.Errorf("parse questions response: %w", err)}
	}

	batch := &assessment.QuestionBatch{
		TokensUsed: resp.Usage.TotalTokens,
		Model:      resp.Model,
	}
	for _, q := range raw.Questions {
		nq, ok := normalizeQuestion(q, req)
		if !ok {
			continue
		}
		batch.Questions = append(batch.Questions, nq)
	}

	if len(batch.Questions) == 0 {
		return nil, &assessment.GenerationError{Err: errors.New("no usable questions in response")}
	}
	return batch, nil
}

// normalizeQuestion validates one raw question and fills defaults.
// Malformed entries are dropped rather than failing the whole batch.
func normalizeQuestion(q questionOutput, req assessment.GenerateRequest) (assessment.Question, bool) {
	if q.Question == "" {
		return assessment.Question{}, false
	}

	qt := assessment.QuestionType(q.Type)
	if !qt.Valid() {
		qt = assessment.TypeOpenEnded
	}
	if qt == assessment.TypeMultipleChoice && (len(q.Options) < 2 || q.CorrectAnswer == "") {
		// Unusable as multiple choice; keep it as open-ended.
		qt = assessment.TypeOpenEnded
		q.Options = nil
		q.CorrectAnswer = ""
	}

	id := q.ID
	if id == "" {
		id = uuid.NewString()
	}
	diff := q.Difficulty
	if diff < 1 || diff > 10 {
		diff = req.Difficulty
	}

	return assessment.Question{
		ID:            id,
		Type:          qt,
		Topic:         req.SkillArea,
		Difficulty:    diff,
		Question:      q.Question,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
	}, true
}

// evaluationOutput is the raw LLM evaluation before clamping.
type evaluationOutput struct {
	Score           float64  `json:"score"`
	Feedback        string   `json:"feedback"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	Recommendations []string `json:"recommendations"`
}

// EvaluateAnswer asks the LLM to score a single answer.
func (e *LLMEvaluator) EvaluateAnswer(ctx context.Context, req assessment.EvaluateRequest) (*assessment.Evaluation, error) {
	ctx = llm.WithPurpose(ctx, "answer-eval")

	resp, err := e.generate(ctx, evaluationSystemPrompt(req), evaluationUserPrompt(req), EvaluationSchema)
	if err != nil {
		return nil, wrapEvaluation(err)
	}

	var raw evaluationOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &assessment.EvaluationError{Err: fmt.Errorf("parse evaluation response: %w", err)}
	}

	// The schema bounds the score, but clamp anyway: models sometimes
	// drift outside declared ranges.
	score := raw.Score
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}

	return &assessment.Evaluation{
		Score:           score,
		Feedback:        raw.Feedback,
		Strengths:       raw.Strengths,
		Improvements:    raw.Improvements,
		Recommendations: raw.Recommendations,
		TokensUsed:      resp.Usage.TotalTokens,
		Model:           resp.Model,
	}, nil
}

// recommendationsOutput is the raw LLM recommendation list.
type recommendationsOutput struct {
	Recommendations []struct {
		Type          string              `json:"type"`
		Title         string              `json:"title"`
		Description   string              `json:"description"`
		Priority      string              `json:"priority"`
		SkillArea     string              `json:"skillArea"`
		EstimatedTime int                 `json:"estimatedTime"`
		Resources     []progress.Resource `json:"resources"`
	} `json:"recommendations"`
}

// GenerateRecommendations asks the LLM for personalized learning
// recommendations. Results come back unstamped; progress.Generator assigns
// IDs and generation dates.
func (e *LLMEvaluator) GenerateRecommendations(ctx context.Context, in progress.RecommendationInput) (*progress.RecommendationBatch, error) {
	ctx = llm.WithPurpose(ctx, "recommendations")

	resp, err := e.generate(ctx, recommendationsSystemPrompt(in), recommendationsUserPrompt, RecommendationsSchema)
	if err != nil {
		return nil, err
	}

	var raw recommendationsOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse recommendations response: %w", err)
	}

	batch := &progress.RecommendationBatch{
		TokensUsed: resp.Usage.TotalTokens,
		Model:      resp.Model,
	}
	for _, r := range raw.Recommendations {
		if r.Title == "" {
			continue
		}
		batch.Recommendations = append(batch.Recommendations, progress.Recommendation{
			Type:          r.Type,
			Title:         r.Title,
			Description:   r.Description,
			Priority:      progress.Priority(r.Priority),
			SkillArea:     r.SkillArea,
			EstimatedTime: r.EstimatedTime,
			Resources:     r.Resources,
		})
	}
	return batch, nil
}

// generate runs one structured-output request with the shared tuning.
func (e *LLMEvaluator) generate(ctx context.Context, system, user string, schema *llm.Schema) (*llm.Response, error) {
	return e.provider.Generate(ctx, llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: user},
		},
		Schema:           schema,
		MaxTokens:        e.config.MaxTokens,
		Temperature:      e.config.Temperature,
		TopP:             e.config.TopP,
		FrequencyPenalty: e.config.FrequencyPenalty,
		PresencePenalty:  e.config.PresencePenalty,
	})
}

// wrapGeneration maps provider failures onto the assessment error taxonomy.
func wrapGeneration(err error) error {
	var notConfigured *llm.ErrNotConfigured
	if errors.As(err, &notConfigured) {
		return &assessment.ConfigurationError{Err: err}
	}
	return &assessment.GenerationError{Err: err}
}

func wrapEvaluation(err error) error {
	var notConfigured *llm.ErrNotConfigured
	if errors.As(err, &notConfigured) {
		return &assessment.ConfigurationError{Err: err}
	}
	return &assessment.EvaluationError{Err: err}
}
