package progress

import (
	"math"
	"time"

	"github.com/rghosh/devnotes/internal/assessment"
)

// Pricing converts a token count into an estimated USD cost.
type Pricing func(model string, tokens int) float64

// FlatPricing prices every token at the same rate regardless of model.
func FlatPricing(perToken float64) Pricing {
	return func(_ string, tokens int) float64 {
		return float64(tokens) * perToken
	}
}

// DefaultPerToken matches a blended gpt-4o-mini rate.
const DefaultPerToken = 0.00015 / 1000

// Updater folds completed assessments into the progress aggregate.
type Updater struct {
	pricing Pricing
	now     func() time.Time
}

// NewUpdater builds an updater with the given pricing function. A nil
// pricing falls back to the flat default rate.
func NewUpdater(pricing Pricing) *Updater {
	if pricing == nil {
		pricing = FlatPricing(DefaultPerToken)
	}
	return &Updater{pricing: pricing, now: time.Now}
}

// Apply folds one completed assessment into a copy of the aggregate and
// returns it. The input aggregate is not mutated.
func (u *Updater) Apply(p *LearningProgress, a assessment.Assessment) *LearningProgress {
	now := u.now()
	next := p.Clone()

	next.Assessments = append(next.Assessments, a)

	// Incremental mean keeps AverageScore consistent with the full list
	// without rescanning it.
	n := float64(next.TotalAssessments)
	next.AverageScore = (next.AverageScore*n + a.Score) / (n + 1)
	next.TotalAssessments++

	next.TokenUsage = u.applyTokens(next.TokenUsage, a.Model, a.TokensUsed, now)
	next.Streak = applyStreak(next.Streak, now)

	for _, topic := range a.TopicsAssessed {
		key, ok := TopicToSkill[topic]
		if !ok {
			continue
		}
		skill, ok := next.SkillLevels[key]
		if !ok {
			continue
		}
		foldSkill(skill, a.Score, now)
	}

	next.LastUpdated = now
	return next
}

// foldSkill blends an assessment score into one skill in place.
func foldSkill(s *SkillLevel, score float64, now time.Time) {
	s.Level = clampInt(int(math.Round((float64(s.Level)+score)/2)), 1, 10)
	s.Progress = clampInt(s.Progress+int(math.Round(2*score)), 0, 100)
	s.LastAssessed = now
	s.AssessmentCount++
}

// ApplyRecommendations appends a freshly generated batch to a copy of the
// aggregate and folds its token spend in. The input aggregate is not mutated.
func (u *Updater) ApplyRecommendations(p *LearningProgress, batch *RecommendationBatch) *LearningProgress {
	now := u.now()
	next := p.Clone()
	next.Recommendations = append(next.Recommendations, batch.Recommendations...)
	next.TokenUsage = u.applyTokens(next.TokenUsage, batch.Model, batch.TokensUsed, now)
	next.LastUpdated = now
	return next
}

func (u *Updater) applyTokens(t TokenUsage, model string, tokens int, now time.Time) TokenUsage {
	if !sameDay(t.LastReset, now) {
		t.TokensToday = 0
		t.LastReset = now
	}
	t.TotalTokens += tokens
	t.TokensToday += tokens
	t.EstimatedCost += u.pricing(model, tokens)
	return t
}

// applyStreak advances the activity streak for one day of activity.
// A second assessment on the same day is a no-op.
func applyStreak(s Streak, now time.Time) Streak {
	switch {
	case s.TotalDays == 0:
		s.CurrentStreak = 1
		s.TotalDays = 1
	case sameDay(s.LastActivityDate, now):
		return s
	// AddDate keeps calendar-day semantics across DST transitions,
	// where a literal 24h hop can land two days ahead or on the same day.
	case sameDay(s.LastActivityDate.AddDate(0, 0, 1), now):
		s.CurrentStreak++
		s.TotalDays++
	default:
		s.CurrentStreak = 1
		s.TotalDays++
	}
	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
	s.LastActivityDate = now
	return s
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
