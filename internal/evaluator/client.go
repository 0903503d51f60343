package evaluator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rghosh/devnotes/internal/assessment"
	"github.com/rghosh/devnotes/internal/progress"
)

// Client is an assessment.Evaluator and progress.RecommendationSource that
// talks to a remote evaluator Server.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the evaluator at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) GenerateQuestions(ctx context.Context, req assessment.GenerateRequest) (*assessment.QuestionBatch, error) {
	var out generateResponse
	err := c.post(ctx, ActionGenerateQuestions, generatePayload{
		SkillArea:     req.SkillArea,
		CurrentLevel:  req.CurrentLevel,
		Difficulty:    req.Difficulty,
		QuestionCount: req.QuestionCount,
	}, &out)
	if err != nil {
		return nil, wrapGeneration(err)
	}
	return &assessment.QuestionBatch{
		Questions:  out.Questions,
		TokensUsed: out.TokensUsed,
		Model:      out.Model,
		Warning:    out.Warning,
	}, nil
}

func (c *Client) EvaluateAnswer(ctx context.Context, req assessment.EvaluateRequest) (*assessment.Evaluation, error) {
	var out evaluateResponse
	err := c.post(ctx, ActionEvaluateAnswer, evaluatePayload{
		Question:     req.Question,
		UserAnswer:   req.UserAnswer,
		SkillArea:    req.SkillArea,
		CurrentLevel: req.CurrentLevel,
	}, &out)
	if err != nil {
		return nil, wrapEvaluation(err)
	}
	return &assessment.Evaluation{
		Score:           out.Evaluation.Score,
		Feedback:        out.Evaluation.Feedback,
		Strengths:       out.Evaluation.Strengths,
		Improvements:    out.Evaluation.Improvements,
		Recommendations: out.Evaluation.Recommendations,
		TokensUsed:      out.TokensUsed,
		Model:           out.Model,
	}, nil
}

func (c *Client) GenerateRecommendations(ctx context.Context, in progress.RecommendationInput) (*progress.RecommendationBatch, error) {
	var out recommendResponse
	err := c.post(ctx, ActionGenerateRecommendations, recommendPayload{
		SkillLevels:  in.SkillLevels,
		WeakAreas:    in.WeakAreas,
		RecentScores: in.RecentScores,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &progress.RecommendationBatch{
		Recommendations: out.Recommendations,
		TokensUsed:      out.TokensUsed,
		Model:           out.Model,
	}, nil
}

// post performs one action request and decodes the result into out.
func (c *Client) post(ctx context.Context, action string, payload any, out any) error {
	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	body, err := json.Marshal(apiRequest{Action: action, Payload: rawPayload})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/assessment", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s: %s (status %d)", action, apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s: unexpected status %d", action, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", action, err)
	}
	return nil
}
