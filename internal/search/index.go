// Package search provides an in-memory fuzzy index over site posts.
// Matching is tolerant of typos: a query matches a token when their
// relative edit distance stays within a threshold, and title matches
// outrank summary matches outrank tag matches.
package search

import (
	"sort"
	"strings"
	"time"

	"github.com/agext/levenshtein"
)

// Field weights. A match in a heavier field ranks above the same-quality
// match in a lighter one.
const (
	weightTitle   = 3.0
	weightSummary = 2.0
	weightTags    = 1.0
)

// maxRelativeDistance is the fuzziness cutoff: edit distance divided by the
// longer of the two strings must stay at or below this for a token to match.
const maxRelativeDistance = 0.3

// MinQueryLength is the shortest query the index answers. Shorter queries
// return no results rather than matching everything.
const MinQueryLength = 2

// DefaultLimit caps results when the caller passes no limit.
const DefaultLimit = 5

// Entry is one searchable document.
type Entry struct {
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Tags        []string  `json:"tags,omitempty"`
	Slug        string    `json:"slug"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`
}

// Result pairs an entry with its match score. Lower scores are better.
type Result struct {
	Entry Entry
	Score float64
}

// Index answers fuzzy queries over a fixed set of entries.
type Index struct {
	entries []Entry
	params  *levenshtein.Params
}

// New builds an index over the given entries.
func New(entries []Entry) *Index {
	return &Index{
		entries: entries,
		params:  levenshtein.NewParams(),
	}
}

// Len returns the number of indexed entries.
func (ix *Index) Len() int { return len(ix.entries) }

// Query returns up to limit entries matching text, best match first.
// A limit of 0 means DefaultLimit. Queries below MinQueryLength return nil.
func (ix *Index) Query(text string, limit int) []Result {
	q := strings.ToLower(strings.TrimSpace(text))
	if len([]rune(q)) < MinQueryLength {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	var results []Result
	for _, e := range ix.entries {
		score, ok := ix.scoreEntry(q, e)
		if !ok {
			continue
		}
		results = append(results, Result{Entry: e, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score < results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// scoreEntry returns the entry's best weighted score across its fields.
func (ix *Index) scoreEntry(q string, e Entry) (float64, bool) {
	best := -1.0
	consider := func(text string, weight float64) {
		d, ok := ix.fieldDistance(q, text)
		if !ok {
			return
		}
		// Same distance in a heavier field scores lower (better). The
		// small constant term breaks ties between perfect matches in
		// different fields in favor of the heavier field.
		s := d/weight + 0.001/weight
		if best < 0 || s < best {
			best = s
		}
	}

	consider(e.Title, weightTitle)
	consider(e.Summary, weightSummary)
	consider(strings.Join(e.Tags, " "), weightTags)

	if best < 0 {
		return 0, false
	}
	return best, true
}

// fieldDistance returns the best relative distance between the query and any
// token of the field, or false when nothing clears the fuzziness cutoff.
// An exact substring hit counts as a perfect match.
func (ix *Index) fieldDistance(q, field string) (float64, bool) {
	f := strings.ToLower(field)
	if f == "" {
		return 0, false
	}
	if strings.Contains(f, q) {
		return 0, true
	}

	best := -1.0
	for _, tok := range strings.FieldsFunc(f, isSeparator) {
		d := relativeDistance(q, tok, ix.params)
		if d > maxRelativeDistance {
			continue
		}
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

func relativeDistance(a, b string, p *levenshtein.Params) float64 {
	d := levenshtein.Distance(a, b, p)
	n := len([]rune(a))
	if m := len([]rune(b)); m > n {
		n = m
	}
	if n == 0 {
		return 0
	}
	return float64(d) / float64(n)
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', ',', '.', ':', ';', '-', '_', '/', '(', ')', '\'', '"', '?', '!':
		return true
	}
	return false
}
