package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rghosh/devnotes/internal/assessment"
)

func TestDefaultSeed(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := Default("local", now)

	require.NotNil(t, p.Skill(SkillReact))
	assert.Equal(t, 3, p.Skill(SkillReact).Level)
	assert.Equal(t, 30, p.Skill(SkillReact).Progress)
	assert.Equal(t, 2, p.Skill(SkillNextJS).Level)
	assert.Equal(t, 20, p.Skill(SkillNextJS).Progress)
	assert.Equal(t, 1, p.Skill(SkillAITools).Level)
	assert.Equal(t, 10, p.Skill(SkillAITools).Progress)

	require.Len(t, p.Goals, 1)
	assert.Equal(t, 7, p.Goals[0].TargetSkillLevel)
	require.NotNil(t, p.Goals[0].Deadline)
	assert.Equal(t, now.Add(90*24*time.Hour), *p.Goals[0].Deadline)

	assert.Zero(t, p.TotalAssessments)
	assert.Zero(t, p.Streak.CurrentStreak)
}

func TestSkillNilSafety(t *testing.T) {
	p := &LearningProgress{}
	assert.Nil(t, p.Skill(SkillReact))

	p = Default("local", time.Now())
	assert.Nil(t, p.Skill("unknown"))
}

func TestCloneIsIndependent(t *testing.T) {
	p := Default("local", time.Now())
	p.Assessments = []assessment.Assessment{{ID: "a1", Score: 6}}
	p.Recommendations = []Recommendation{{ID: "r1", Title: "Read up on hooks"}}

	cp := p.Clone()

	cp.Skill(SkillReact).Level = 9
	cp.Assessments[0].Score = 1
	cp.Recommendations[0].Completed = true
	cp.Goals[0].TargetSkillLevel = 10

	assert.Equal(t, 3, p.Skill(SkillReact).Level, "clone must not share skill pointers")
	assert.Equal(t, 6.0, p.Assessments[0].Score)
	assert.False(t, p.Recommendations[0].Completed)
	assert.Equal(t, 7, p.Goals[0].TargetSkillLevel)
}
