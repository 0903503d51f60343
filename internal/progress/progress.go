package progress

import (
	"time"

	"github.com/rghosh/devnotes/internal/assessment"
)

// Skill area keys as they appear in the progress record.
const (
	SkillReact   = "react"
	SkillNextJS  = "nextjs"
	SkillAITools = "aiTools"
)

// TopicToSkill maps assessment topic labels to tracked skill keys.
// Topics with no mapping are silently ignored by the updater.
var TopicToSkill = map[string]string{
	"react":    SkillReact,
	"nextjs":   SkillNextJS,
	"ai-tools": SkillAITools,
	"aiTools":  SkillAITools,
}

// SkillAreas lists the tracked skill keys in display order.
var SkillAreas = []string{SkillReact, SkillNextJS, SkillAITools}

// SkillLevel tracks one competency domain.
type SkillLevel struct {
	Name            string    `json:"name"`
	Level           int       `json:"level"`    // 1-10
	Progress        int       `json:"progress"` // 0-100
	LastAssessed    time.Time `json:"lastAssessed"`
	AssessmentCount int       `json:"assessmentCount"`
}

// Priority of a recommendation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Resource is a learning resource attached to a recommendation.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"` // documentation, tutorial, video, article
}

// Recommendation is a generated learning suggestion. Only the Completed flag
// is mutated after creation; everything else is immutable.
type Recommendation struct {
	ID            string     `json:"id"`
	Type          string     `json:"type"` // exercise, concept, project, resource
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Priority      Priority   `json:"priority"`
	SkillArea     string     `json:"skillArea"`
	EstimatedTime int        `json:"estimatedTime"` // minutes
	Resources     []Resource `json:"resources,omitempty"`
	Completed     bool       `json:"completed"`
	DateGenerated time.Time  `json:"dateGenerated"`
}

// Streak tracks consecutive days with learning activity.
type Streak struct {
	CurrentStreak    int       `json:"currentStreak"`
	LongestStreak    int       `json:"longestStreak"`
	LastActivityDate time.Time `json:"lastActivityDate"`
	TotalDays        int       `json:"totalDays"`
}

// TokenUsage tracks evaluator token consumption and estimated spend.
type TokenUsage struct {
	TotalTokens   int       `json:"totalTokens"`
	TokensToday   int       `json:"tokensToday"`
	EstimatedCost float64   `json:"estimatedCost"` // USD
	LastReset     time.Time `json:"lastReset"`
}

// Goal is a learner-defined target.
type Goal struct {
	TargetSkillLevel int        `json:"targetSkillLevel"`
	Deadline         *time.Time `json:"deadline,omitempty"`
	Description      string     `json:"description"`
}

// LearningProgress is the root aggregate, one per user, persisted whole.
// Invariant: TotalAssessments == len(Assessments) and AverageScore equals
// the arithmetic mean of all assessment scores.
type LearningProgress struct {
	UserID           string                  `json:"userId"`
	Assessments      []assessment.Assessment `json:"assessments"`
	SkillLevels      map[string]*SkillLevel  `json:"skillLevels"`
	Recommendations  []Recommendation        `json:"recommendations"`
	Streak           Streak                  `json:"streak"`
	TokenUsage       TokenUsage              `json:"tokenUsage"`
	Goals            []Goal                  `json:"goals"`
	LastUpdated      time.Time               `json:"lastUpdated"`
	TotalAssessments int                     `json:"totalAssessments"`
	AverageScore     float64                 `json:"averageScore"`
}

// Skill returns the tracked skill for a key, or nil.
func (p *LearningProgress) Skill(key string) *SkillLevel {
	if p.SkillLevels == nil {
		return nil
	}
	return p.SkillLevels[key]
}

// Default returns the seed progress record for a new user.
func Default(userID string, now time.Time) *LearningProgress {
	deadline := now.Add(90 * 24 * time.Hour)
	return &LearningProgress{
		UserID: userID,
		SkillLevels: map[string]*SkillLevel{
			SkillReact:   {Name: "React", Level: 3, Progress: 30, LastAssessed: now},
			SkillNextJS:  {Name: "Next.js", Level: 2, Progress: 20, LastAssessed: now},
			SkillAITools: {Name: "AI Tools", Level: 1, Progress: 10, LastAssessed: now},
		},
		Streak:     Streak{LastActivityDate: now},
		TokenUsage: TokenUsage{LastReset: now},
		Goals: []Goal{
			{
				TargetSkillLevel: 7,
				Deadline:         &deadline,
				Description:      "Reach intermediate React proficiency",
			},
		},
		LastUpdated: now,
	}
}

// Clone returns a deep copy, so the updater can stay a pure function over
// the aggregate without mutating the caller's copy.
func (p *LearningProgress) Clone() *LearningProgress {
	cp := *p

	cp.Assessments = make([]assessment.Assessment, len(p.Assessments))
	copy(cp.Assessments, p.Assessments)

	cp.SkillLevels = make(map[string]*SkillLevel, len(p.SkillLevels))
	for k, v := range p.SkillLevels {
		sv := *v
		cp.SkillLevels[k] = &sv
	}

	cp.Recommendations = make([]Recommendation, len(p.Recommendations))
	copy(cp.Recommendations, p.Recommendations)

	cp.Goals = make([]Goal, len(p.Goals))
	copy(cp.Goals, p.Goals)

	return &cp
}
