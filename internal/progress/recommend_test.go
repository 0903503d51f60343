package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rghosh/devnotes/internal/assessment"
)

type stubSource struct {
	in    RecommendationInput
	batch *RecommendationBatch
	err   error
}

func (s *stubSource) GenerateRecommendations(_ context.Context, in RecommendationInput) (*RecommendationBatch, error) {
	s.in = in
	return s.batch, s.err
}

func TestWeakAreas(t *testing.T) {
	skills := map[string]*SkillLevel{
		SkillReact:   {Name: "React", Level: 6},
		SkillNextJS:  {Name: "Next.js", Level: 2},
		SkillAITools: {Name: "AI Tools", Level: 4},
	}

	got := WeakAreas(skills, DefaultWeakAreaThreshold)
	want := []string{SkillNextJS, SkillAITools}
	if len(got) != len(want) {
		t.Fatalf("weak areas = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("weak[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWeakAreasThresholdIsExclusive(t *testing.T) {
	// A skill at exactly the threshold level has reached it and is not weak.
	skills := map[string]*SkillLevel{
		SkillReact:   {Name: "React", Level: 5},
		SkillNextJS:  {Name: "Next.js", Level: 7},
		SkillAITools: {Name: "AI Tools", Level: 8},
	}

	if got := WeakAreas(skills, DefaultWeakAreaThreshold); len(got) != 0 {
		t.Errorf("weak areas = %v, want none", got)
	}

	// Raising the cutoff pulls the level-5 skill back in.
	if got := WeakAreas(skills, 6); len(got) != 1 || got[0] != SkillReact {
		t.Errorf("weak areas at threshold 6 = %v, want [react]", got)
	}
}

func TestGeneratorThresholdOverride(t *testing.T) {
	src := &stubSource{batch: &RecommendationBatch{}}
	g := NewGenerator(src)
	g.SetWeakAreaThreshold(2)

	p := Default("user-1", time.Now()) // react 3, nextjs 2, aiTools 1
	if _, err := g.Generate(context.Background(), p); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(src.in.WeakAreas) != 1 || src.in.WeakAreas[0] != SkillAITools {
		t.Errorf("weakAreas = %v, want only aiTools below level 2", src.in.WeakAreas)
	}
}

func TestGenerateStampsResults(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	src := &stubSource{batch: &RecommendationBatch{
		Recommendations: []Recommendation{
			{Type: "exercise", Title: "Build a custom hook", Priority: PriorityHigh,
				SkillArea: "react", Completed: true, ID: "bogus"},
			{Type: "concept", Title: "Server components", Priority: PriorityMedium,
				SkillArea: "nextjs"},
		},
		TokensUsed: 600,
		Model:      "gpt-4o-mini",
	}}
	g := NewGenerator(src)
	g.now = func() time.Time { return now }

	p := Default("user-1", now)
	p.Assessments = []assessment.Assessment{{Score: 4}, {Score: 6}}

	batch, err := g.Generate(context.Background(), p)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	for i, r := range batch.Recommendations {
		if r.ID == "" || r.ID == "bogus" {
			t.Errorf("rec[%d] ID not restamped: %q", i, r.ID)
		}
		if r.Completed {
			t.Errorf("rec[%d] should start incomplete", i)
		}
		if !r.DateGenerated.Equal(now) {
			t.Errorf("rec[%d] dateGenerated = %v, want %v", i, r.DateGenerated, now)
		}
	}
	if batch.Recommendations[0].ID == batch.Recommendations[1].ID {
		t.Error("recommendation IDs should be unique")
	}

	if len(src.in.RecentScores) != 2 {
		t.Errorf("recentScores = %v, want 2 entries", src.in.RecentScores)
	}
	// All three default skills start below the weak threshold.
	if len(src.in.WeakAreas) != 3 {
		t.Errorf("weakAreas = %v, want all three defaults", src.in.WeakAreas)
	}
}

func TestGenerateWrapsError(t *testing.T) {
	boom := errors.New("provider down")
	g := NewGenerator(&stubSource{err: boom})

	_, err := g.Generate(context.Background(), Default("user-1", time.Now()))
	if err == nil {
		t.Fatal("expected error")
	}
	var recErr *RecommendationError
	if !errors.As(err, &recErr) {
		t.Fatalf("error type = %T, want *RecommendationError", err)
	}
	if !errors.Is(err, boom) {
		t.Error("wrapped error should unwrap to the source failure")
	}
}
