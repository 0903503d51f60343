package search

import (
	"testing"
	"time"
)

func fixtureIndex() *Index {
	day := func(d int) time.Time {
		return time.Date(2026, 2, d, 0, 0, 0, 0, time.UTC)
	}
	return New([]Entry{
		{
			Title:       "AI coding assistants in clinical workflows",
			Summary:     "Using Copilot safely around patient data",
			Tags:        []string{"ai-tools", "compliance"},
			Slug:        "ai-clinical-workflows",
			URL:         "/posts/ai-clinical-workflows",
			PublishedAt: day(1),
		},
		{
			Title:       "React Server Components",
			Summary:     "Rendering models and when AI generation helps",
			Tags:        []string{"react"},
			Slug:        "react-server-components",
			URL:         "/posts/react-server-components",
			PublishedAt: day(2),
		},
		{
			Title:       "Next.js caching layers",
			Summary:     "fetch cache and route cache explained",
			Tags:        []string{"nextjs", "ai"},
			Slug:        "nextjs-caching",
			URL:         "/posts/nextjs-caching",
			PublishedAt: day(3),
		},
		{
			Title:       "Deploying Postgres on Fly",
			Summary:     "Zero-downtime migrations",
			Tags:        []string{"infra"},
			Slug:        "postgres-fly",
			URL:         "/posts/postgres-fly",
			PublishedAt: day(4),
		},
	})
}

func TestQueryTooShort(t *testing.T) {
	ix := fixtureIndex()
	if got := ix.Query("a", 5); got != nil {
		t.Errorf("single-rune query = %v, want nil", got)
	}
	if got := ix.Query("  ", 5); got != nil {
		t.Errorf("blank query = %v, want nil", got)
	}
}

func TestQueryFieldWeighting(t *testing.T) {
	ix := fixtureIndex()

	results := ix.Query("ai", 5)
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	// "ai" appears in the first post's title, the second's summary, and
	// the third's tags: title beats summary beats tags.
	wantOrder := []string{"ai-clinical-workflows", "react-server-components", "nextjs-caching"}
	for i, want := range wantOrder {
		if results[i].Entry.Slug != want {
			t.Errorf("results[%d] = %s, want %s", i, results[i].Entry.Slug, want)
		}
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score < results[i-1].Score {
			t.Errorf("scores not ascending: %v then %v", results[i-1].Score, results[i].Score)
		}
	}
}

func TestQueryFuzzyMatch(t *testing.T) {
	ix := fixtureIndex()

	// One transposition away from "caching".
	results := ix.Query("cahcing", 5)
	if len(results) == 0 {
		t.Fatal("expected fuzzy match for near-miss query")
	}
	if results[0].Entry.Slug != "nextjs-caching" {
		t.Errorf("best match = %s, want nextjs-caching", results[0].Entry.Slug)
	}
}

func TestQueryNoMatchBeyondThreshold(t *testing.T) {
	ix := fixtureIndex()
	if got := ix.Query("kubernetes", 5); len(got) != 0 {
		t.Errorf("unrelated query matched: %v", got)
	}
}

func TestQueryLimit(t *testing.T) {
	ix := fixtureIndex()

	if got := ix.Query("ai", 1); len(got) != 1 {
		t.Fatalf("limit 1 returned %d results", len(got))
	}
	// Zero limit falls back to the default.
	if got := ix.Query("ai", 0); len(got) != 3 {
		t.Errorf("default limit returned %d results", len(got))
	}
}

func TestQueryCaseInsensitive(t *testing.T) {
	ix := fixtureIndex()
	results := ix.Query("REACT", 5)
	if len(results) == 0 || results[0].Entry.Slug != "react-server-components" {
		t.Errorf("case-insensitive query results = %v", results)
	}
}
