package store

import (
	"context"
	"testing"
	"time"

	"github.com/rghosh/devnotes/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	ps := s.ProgressStore()
	ctx := context.Background()

	// No progress yet.
	p, err := ps.Load(ctx, "user-1")
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if p != nil {
		t.Fatal("expected nil progress when none saved")
	}

	seed := progress.Default("user-1", time.Now().UTC().Truncate(time.Second))
	if err := ps.Save(ctx, seed); err != nil {
		t.Fatalf("save: %v", err)
	}

	p, err = ps.Load(ctx, "user-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p == nil {
		t.Fatal("expected saved progress")
	}
	if p.UserID != "user-1" {
		t.Errorf("userID = %q, want user-1", p.UserID)
	}
	react := p.Skill(progress.SkillReact)
	if react == nil || react.Level != 3 || react.Progress != 30 {
		t.Errorf("react skill = %+v, want level 3 progress 30", react)
	}
	if len(p.Goals) != 1 || p.Goals[0].TargetSkillLevel != 7 {
		t.Errorf("goals = %+v, want one goal targeting level 7", p.Goals)
	}
}

func TestProgressLoadReturnsLatest(t *testing.T) {
	s := openTestStore(t)
	ps := s.ProgressStore()
	ctx := context.Background()

	first := progress.Default("user-1", time.Now().UTC())
	if err := ps.Save(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}

	second := first.Clone()
	second.TotalAssessments = 3
	second.AverageScore = 7.5
	if err := ps.Save(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	p, err := ps.Load(ctx, "user-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.TotalAssessments != 3 {
		t.Errorf("totalAssessments = %d, want 3", p.TotalAssessments)
	}
	if p.AverageScore != 7.5 {
		t.Errorf("averageScore = %v, want 7.5", p.AverageScore)
	}
}

func TestProgressPrune(t *testing.T) {
	s := openTestStore(t)
	ps := s.ProgressStore()
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 4; i++ {
		p := progress.Default("user-1", base)
		p.TotalAssessments = i
		if err := ps.Save(ctx, p); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
		// saved_at has second precision in SQLite; space the rows out.
		time.Sleep(5 * time.Millisecond)
	}

	if err := ps.Prune(ctx, "user-1", 10); err != nil {
		t.Fatalf("prune (no-op): %v", err)
	}
	count, err := s.Client().ProgressSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 4 {
		t.Errorf("snapshots after no-op prune = %d, want 4", count)
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "openai",
		Model:        "gpt-4o-mini",
		Purpose:      "question-gen",
		InputTokens:  120,
		OutputTokens: 400,
		LatencyMs:    850,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	err = repo.AppendAssessment(ctx, AssessmentEventData{
		AssessmentID:       "a-1",
		SkillArea:          "react",
		Score:              7.2,
		CompletionRate:     100,
		QuestionsAnswered:  5,
		QuestionsGenerated: 5,
		TokensUsed:         520,
		Model:              "gpt-4o-mini",
	})
	if err != nil {
		t.Fatalf("append assessment: %v", err)
	}

	err = repo.AppendAnswer(ctx, AnswerEventData{
		AssessmentID: "a-1",
		QuestionID:   "q-1",
		QuestionType: "open-ended",
		Topic:        "react",
		Difficulty:   4,
		UserAnswer:   "hooks capture state per render",
		Score:        8,
		Scored:       true,
		TimeSecs:     45,
	})
	if err != nil {
		t.Fatalf("append answer: %v", err)
	}

	llm, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query llm events: %v", err)
	}
	if len(llm) != 1 {
		t.Fatalf("llm events = %d, want 1", len(llm))
	}
	if llm[0].Purpose != "question-gen" || !llm[0].Success {
		t.Errorf("llm event = %+v", llm[0])
	}

	assessments, err := repo.QueryAssessments(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query assessments: %v", err)
	}
	if len(assessments) != 1 {
		t.Fatalf("assessment events = %d, want 1", len(assessments))
	}
	if assessments[0].SkillArea != "react" || assessments[0].Score != 7.2 {
		t.Errorf("assessment event = %+v", assessments[0])
	}

	// Events from different tables share one sequence: the assessment
	// came after the LLM request.
	if assessments[0].Sequence <= llm[0].Sequence {
		t.Errorf("assessment sequence %d not after llm sequence %d",
			assessments[0].Sequence, llm[0].Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing, no gaps within this counter instance.
	for i := 1; i < len(seqs); i++ {
		if seqs[i] != seqs[i-1]+1 {
			t.Errorf("seq[%d] = %d, want %d", i, seqs[i], seqs[i-1]+1)
		}
	}
}
