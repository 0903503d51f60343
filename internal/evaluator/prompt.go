package evaluator

import (
	"fmt"
	"strings"

	"github.com/rghosh/devnotes/internal/assessment"
	"github.com/rghosh/devnotes/internal/progress"
)

// skillLabel maps skill keys to the names used in prompts.
func skillLabel(skillArea string) string {
	switch skillArea {
	case "react":
		return "React"
	case "nextjs":
		return "Next.js"
	case "ai-tools", "aiTools":
		return "AI development tools"
	default:
		return skillArea
	}
}

func questionsSystemPrompt(req assessment.GenerateRequest) string {
	label := skillLabel(req.SkillArea)
	return fmt.Sprintf(`You are an expert technical interviewer specializing in %s for medtech/pharma applications.

Current Context:
- Skill Area: %s
- User's Current Level: %d/10
- Target Difficulty: %d/10
- Industry Focus: Medtech/Pharma applications with emphasis on HIPAA compliance, patient data handling, and regulatory requirements

Generate %d assessment questions that progressively test knowledge. Include:
1. Practical scenario-based questions relevant to healthcare technology
2. Questions about best practices for handling sensitive medical data
3. Integration challenges with external CRM and records systems
4. Real-world implementation scenarios

For each question, provide clear question text, a question type, a difficulty level, and the key concepts being tested. Multiple-choice questions need exactly 4 options with one correct answer.`,
		label, label, req.CurrentLevel, req.Difficulty, req.QuestionCount)
}

func questionsUserPrompt(req assessment.GenerateRequest) string {
	return fmt.Sprintf("Generate %d %s assessment questions for a user at level %d/10, targeting difficulty %d/10. Focus on medtech/pharma applications.",
		req.QuestionCount, skillLabel(req.SkillArea), req.CurrentLevel, req.Difficulty)
}

func evaluationSystemPrompt(req assessment.EvaluateRequest) string {
	return fmt.Sprintf(`You are an expert technical evaluator for %s in medtech/pharma contexts.

Evaluation Criteria:
- Technical accuracy and depth of understanding
- Practical application in healthcare/medtech environments
- Consideration of HIPAA compliance and security best practices
- Problem-solving approach and reasoning
- Knowledge of industry-specific challenges

User's current skill level: %d/10

Provide a score on the 0-10 scale, specific strengths in the answer, areas for improvement, suggestions for learning resources, and industry-specific considerations they missed or covered well.`,
		skillLabel(req.SkillArea), req.CurrentLevel)
}

func evaluationUserPrompt(req assessment.EvaluateRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n", req.Question.Question)
	if req.Question.Type == assessment.TypeMultipleChoice && req.Question.CorrectAnswer != "" {
		fmt.Fprintf(&b, "Correct Answer: %s\n", req.Question.CorrectAnswer)
	}
	fmt.Fprintf(&b, "User's Answer: %s\n", req.UserAnswer)
	b.WriteString("\nPlease evaluate this answer thoroughly.")
	return b.String()
}

func recommendationsSystemPrompt(in progress.RecommendationInput) string {
	level := func(key string) int {
		if s, ok := in.SkillLevels[key]; ok && s != nil {
			return s.Level
		}
		return 1
	}

	weak := "None specified"
	if len(in.WeakAreas) > 0 {
		weak = strings.Join(in.WeakAreas, ", ")
	}

	recent := "No assessments yet"
	if len(in.RecentScores) > 0 {
		parts := make([]string, len(in.RecentScores))
		for i, s := range in.RecentScores {
			parts[i] = fmt.Sprintf("%.1f", s)
		}
		recent = strings.Join(parts, ", ")
	}

	return fmt.Sprintf(`You are a personalized learning advisor specializing in React, Next.js, and AI tools for medtech/pharma applications.

User Profile:
- React Level: %d/10
- Next.js Level: %d/10
- AI Tools Level: %d/10
- Identified Weak Areas: %s
- Recent Assessment Scores: %s

Generate 5-8 personalized learning recommendations focusing on:
1. Addressing specific weak areas identified in assessments
2. Progressive skill building appropriate to current levels
3. Medtech/pharma industry applications and compliance requirements
4. Practical projects that combine multiple skill areas
5. Preparation for common healthcare technology challenges`,
		level(progress.SkillReact), level(progress.SkillNextJS), level(progress.SkillAITools),
		weak, recent)
}

const recommendationsUserPrompt = "Generate personalized learning recommendations based on my profile."
