package evaluator

import "github.com/rghosh/devnotes/internal/llm"

// QuestionsSchema defines the JSON schema for question generation responses.
var QuestionsSchema = &llm.Schema{
	Name:        "assessment-questions",
	Description: "A batch of skill assessment questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"description": "Unique identifier for the question",
						},
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"multiple-choice", "open-ended", "scenario-based"},
							"description": "How the learner answers",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question text shown to the learner",
						},
						"difficulty": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     10,
							"description": "Difficulty from 1 (easy) to 10 (hard)",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 options for multiple-choice. Empty otherwise.",
						},
						"correctAnswer": map[string]any{
							"type":        "string",
							"description": "The correct option text for multiple-choice. Empty otherwise.",
						},
						"keyTopics": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Key concepts the question tests",
						},
					},
					"required":             []any{"id", "type", "question", "difficulty", "options", "correctAnswer", "keyTopics"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// EvaluationSchema defines the JSON schema for answer evaluation responses.
var EvaluationSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "Scored feedback for a single assessment answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     10,
				"description": "Overall score for the answer, 0-10",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Detailed narrative feedback",
			},
			"strengths": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"improvements": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"recommendations": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Suggested learning resources or next steps",
			},
		},
		"required":             []any{"score", "feedback", "strengths", "improvements", "recommendations"},
		"additionalProperties": false,
	},
}

// RecommendationsSchema defines the JSON schema for learning recommendation responses.
var RecommendationsSchema = &llm.Schema{
	Name:        "learning-recommendations",
	Description: "Personalized learning recommendations based on skill profile",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"recommendations": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type": "string",
							"enum": []any{"exercise", "concept", "project", "resource"},
						},
						"title":       map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"priority": map[string]any{
							"type": "string",
							"enum": []any{"high", "medium", "low"},
						},
						"skillArea": map[string]any{
							"type": "string",
							"enum": []any{"react", "nextjs", "ai-tools"},
						},
						"estimatedTime": map[string]any{
							"type":        "integer",
							"description": "Estimated time in minutes",
						},
						"resources": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"title": map[string]any{"type": "string"},
									"url":   map[string]any{"type": "string"},
									"type": map[string]any{
										"type": "string",
										"enum": []any{"documentation", "tutorial", "video", "article"},
									},
								},
								"required":             []any{"title", "url", "type"},
								"additionalProperties": false,
							},
						},
					},
					"required":             []any{"type", "title", "description", "priority", "skillArea", "estimatedTime", "resources"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"recommendations"},
		"additionalProperties": false,
	},
}
