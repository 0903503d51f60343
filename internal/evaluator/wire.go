package evaluator

import (
	"encoding/json"

	"github.com/rghosh/devnotes/internal/assessment"
	"github.com/rghosh/devnotes/internal/progress"
)

// Wire types for the HTTP evaluator contract. A single POST endpoint accepts
// {"action": ..., "payload": ...} and responds with the action's result plus
// token accounting, or {"error": ...} with a non-200 status.

const (
	ActionGenerateQuestions       = "generate_questions"
	ActionEvaluateAnswer          = "evaluate_answer"
	ActionGenerateRecommendations = "generate_recommendations"
)

type apiRequest struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type generatePayload struct {
	SkillArea     string `json:"skillArea"`
	CurrentLevel  int    `json:"currentLevel"`
	Difficulty    int    `json:"difficulty"`
	QuestionCount int    `json:"questionCount,omitempty"`
}

type generateResponse struct {
	Questions  []assessment.Question `json:"questions"`
	TokensUsed int                   `json:"tokensUsed"`
	Model      string                `json:"model"`
	Warning    string                `json:"warning,omitempty"`
}

type evaluatePayload struct {
	Question     assessment.Question `json:"question"`
	UserAnswer   string              `json:"userAnswer"`
	SkillArea    string              `json:"skillArea"`
	CurrentLevel int                 `json:"currentLevel"`
}

type evaluationBody struct {
	Score           float64  `json:"score"`
	Feedback        string   `json:"feedback"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	Recommendations []string `json:"recommendations"`
}

type evaluateResponse struct {
	Evaluation evaluationBody `json:"evaluation"`
	TokensUsed int            `json:"tokensUsed"`
	Model      string         `json:"model"`
}

type recommendPayload struct {
	SkillLevels  map[string]*progress.SkillLevel `json:"skillLevels"`
	WeakAreas    []string                        `json:"weakAreas,omitempty"`
	RecentScores []float64                       `json:"recentScores,omitempty"`
}

type recommendResponse struct {
	Recommendations []progress.Recommendation `json:"recommendations"`
	TokensUsed      int                       `json:"tokensUsed"`
	Model           string                    `json:"model"`
}
