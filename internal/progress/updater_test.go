package progress

import (
	"math"
	"testing"
	"time"

	"github.com/rghosh/devnotes/internal/assessment"
)

func testUpdater(now time.Time) *Updater {
	u := NewUpdater(nil)
	u.now = func() time.Time { return now }
	return u
}

func baseAssessment(score float64, topics ...string) assessment.Assessment {
	return assessment.Assessment{
		ID:             "a-1",
		Date:           time.Now(),
		Score:          score,
		TopicsAssessed: topics,
		TokensUsed:     1000,
		Model:          "gpt-4o-mini",
	}
}

func TestApplySkillFolding(t *testing.T) {
	tests := []struct {
		name         string
		level        int
		progress     int
		score        float64
		wantLevel    int
		wantProgress int
	}{
		{"average up", 3, 30, 7, 5, 44},
		{"average down", 8, 80, 2, 5, 84},
		{"round half up", 3, 30, 4, 4, 38}, // (3+4)/2 = 3.5 rounds to 4
		{"level floor", 1, 0, 0, 1, 0},
		{"level ceiling", 10, 90, 10, 10, 100},
		{"progress capped", 3, 95, 8, 6, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
			u := testUpdater(now)
			p := Default("user-1", now.Add(-48*time.Hour))
			p.SkillLevels[SkillReact].Level = tt.level
			p.SkillLevels[SkillReact].Progress = tt.progress

			next := u.Apply(p, baseAssessment(tt.score, "react"))

			got := next.Skill(SkillReact)
			if got.Level != tt.wantLevel {
				t.Errorf("level = %d, want %d", got.Level, tt.wantLevel)
			}
			if got.Progress != tt.wantProgress {
				t.Errorf("progress = %d, want %d", got.Progress, tt.wantProgress)
			}
			if got.AssessmentCount != 1 {
				t.Errorf("assessmentCount = %d, want 1", got.AssessmentCount)
			}
			if !got.LastAssessed.Equal(now) {
				t.Errorf("lastAssessed = %v, want %v", got.LastAssessed, now)
			}
		})
	}
}

func TestApplyUnknownTopicIgnored(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	u := testUpdater(now)
	p := Default("user-1", now)

	next := u.Apply(p, baseAssessment(9, "typescript", "ai-tools"))

	if next.Skill(SkillReact).AssessmentCount != 0 {
		t.Error("react should be untouched")
	}
	if next.Skill(SkillAITools).AssessmentCount != 1 {
		t.Error("ai-tools topic should fold into aiTools skill")
	}
	// The assessment itself still counts even when a topic is unknown.
	if next.TotalAssessments != 1 {
		t.Errorf("totalAssessments = %d, want 1", next.TotalAssessments)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	u := testUpdater(now)
	p := Default("user-1", now)

	_ = u.Apply(p, baseAssessment(8, "react"))

	if p.TotalAssessments != 0 || len(p.Assessments) != 0 {
		t.Error("input aggregate was mutated")
	}
	if p.Skill(SkillReact).Level != 3 {
		t.Errorf("input react level = %d, want 3", p.Skill(SkillReact).Level)
	}
}

func TestAverageScoreIncremental(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	u := testUpdater(now)
	p := Default("user-1", now)

	scores := []float64{6, 8, 3, 9.5, 7}
	for _, sc := range scores {
		p = u.Apply(p, baseAssessment(sc, "react"))
	}

	var sum float64
	for _, sc := range scores {
		sum += sc
	}
	want := sum / float64(len(scores))
	if math.Abs(p.AverageScore-want) > 1e-9 {
		t.Errorf("averageScore = %v, want %v", p.AverageScore, want)
	}
	if p.TotalAssessments != len(p.Assessments) {
		t.Errorf("totalAssessments = %d, assessments = %d",
			p.TotalAssessments, len(p.Assessments))
	}
}

func TestTokenUsage(t *testing.T) {
	day1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	day1later := time.Date(2026, 3, 10, 21, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)

	u := NewUpdater(FlatPricing(0.001))
	p := Default("user-1", day1)

	u.now = func() time.Time { return day1 }
	p = u.Apply(p, baseAssessment(5, "react"))
	u.now = func() time.Time { return day1later }
	p = u.Apply(p, baseAssessment(5, "react"))

	if p.TokenUsage.TotalTokens != 2000 || p.TokenUsage.TokensToday != 2000 {
		t.Errorf("same-day usage = %+v, want total 2000 today 2000", p.TokenUsage)
	}
	if math.Abs(p.TokenUsage.EstimatedCost-2.0) > 1e-9 {
		t.Errorf("estimatedCost = %v, want 2.0", p.TokenUsage.EstimatedCost)
	}

	// A new day resets the daily counter before recording.
	u.now = func() time.Time { return day2 }
	p = u.Apply(p, baseAssessment(5, "react"))
	if p.TokenUsage.TokensToday != 1000 {
		t.Errorf("tokensToday after reset = %d, want 1000", p.TokenUsage.TokensToday)
	}
	if p.TokenUsage.TotalTokens != 3000 {
		t.Errorf("totalTokens = %d, want 3000", p.TokenUsage.TotalTokens)
	}
}

func TestStreak(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 12, 0, 0, 0, time.UTC)
	}

	u := NewUpdater(nil)
	p := Default("user-1", day(1))
	p.Streak = Streak{} // fresh learner, no activity yet

	apply := func(d int) {
		u.now = func() time.Time { return day(d) }
		p = u.Apply(p, baseAssessment(5, "react"))
	}

	apply(1)
	if p.Streak.CurrentStreak != 1 || p.Streak.TotalDays != 1 {
		t.Fatalf("first day streak = %+v", p.Streak)
	}

	// Same day again: no change.
	apply(1)
	if p.Streak.CurrentStreak != 1 || p.Streak.TotalDays != 1 {
		t.Fatalf("same-day streak = %+v", p.Streak)
	}

	// Consecutive days extend the streak.
	apply(2)
	apply(3)
	if p.Streak.CurrentStreak != 3 || p.Streak.LongestStreak != 3 {
		t.Fatalf("consecutive streak = %+v", p.Streak)
	}

	// A gap resets current but keeps longest.
	apply(7)
	if p.Streak.CurrentStreak != 1 {
		t.Errorf("streak after gap = %d, want 1", p.Streak.CurrentStreak)
	}
	if p.Streak.LongestStreak != 3 {
		t.Errorf("longestStreak = %d, want 3", p.Streak.LongestStreak)
	}
	if p.Streak.TotalDays != 4 {
		t.Errorf("totalDays = %d, want 4", p.Streak.TotalDays)
	}
}

func TestStreakAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	u := NewUpdater(nil)
	p := Default("user-1", time.Date(2026, 3, 7, 20, 0, 0, 0, loc))
	p.Streak = Streak{}

	apply := func(now time.Time) {
		u.now = func() time.Time { return now }
		p = u.Apply(p, baseAssessment(5, "react"))
	}

	// Spring forward: March 8 2026 is only 23 hours long, so a literal
	// 24h hop from late on March 7 lands on March 9 and skips the day.
	apply(time.Date(2026, 3, 7, 23, 30, 0, 0, loc))
	apply(time.Date(2026, 3, 8, 12, 0, 0, 0, loc))
	if p.Streak.CurrentStreak != 2 {
		t.Errorf("streak across spring-forward = %d, want 2", p.Streak.CurrentStreak)
	}

	// Fall back: November 1 2026 is 25 hours long, so a 24h hop from
	// just after midnight stays on the same day.
	p.Streak = Streak{}
	apply(time.Date(2026, 11, 1, 0, 30, 0, 0, loc))
	apply(time.Date(2026, 11, 2, 12, 0, 0, 0, loc))
	if p.Streak.CurrentStreak != 2 {
		t.Errorf("streak across fall-back = %d, want 2", p.Streak.CurrentStreak)
	}
}
