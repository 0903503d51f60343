package progress

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// DefaultWeakAreaThreshold marks skills below this level as priority
// targets for recommendation generation.
const DefaultWeakAreaThreshold = 5

// RecommendationInput is the evidence handed to a recommendation source.
type RecommendationInput struct {
	SkillLevels  map[string]*SkillLevel
	RecentScores []float64
	WeakAreas    []string
}

// RecommendationBatch is what a source returns before stamping.
type RecommendationBatch struct {
	Recommendations []Recommendation
	TokensUsed      int
	Model           string
}

// RecommendationSource produces raw recommendations from progress evidence.
type RecommendationSource interface {
	GenerateRecommendations(ctx context.Context, in RecommendationInput) (*RecommendationBatch, error)
}

// RecommendationError wraps a failed generation attempt. There is no
// degraded fallback for recommendations; callers surface the error.
type RecommendationError struct {
	Err error
}

func (e *RecommendationError) Error() string {
	return fmt.Sprintf("recommendation generation failed: %v", e.Err)
}

func (e *RecommendationError) Unwrap() error { return e.Err }

// Generator asks a source for recommendations and stamps the results.
type Generator struct {
	source    RecommendationSource
	threshold int
	now       func() time.Time
}

func NewGenerator(source RecommendationSource) *Generator {
	return &Generator{
		source:    source,
		threshold: DefaultWeakAreaThreshold,
		now:       time.Now,
	}
}

// SetWeakAreaThreshold overrides the weak-area cutoff. Values below 1 are
// ignored.
func (g *Generator) SetWeakAreaThreshold(n int) {
	if n < 1 {
		return
	}
	g.threshold = n
}

// WeakAreas returns the skills strictly below the threshold, weakest first.
// A skill at exactly the threshold level is not weak.
func WeakAreas(skills map[string]*SkillLevel, threshold int) []string {
	var weak []string
	for _, key := range SkillAreas {
		if s, ok := skills[key]; ok && s.Level < threshold {
			weak = append(weak, key)
		}
	}
	sort.SliceStable(weak, func(i, j int) bool {
		return skills[weak[i]].Level < skills[weak[j]].Level
	})
	return weak
}

// RecentScores returns up to n most recent assessment scores, oldest first.
func RecentScores(p *LearningProgress, n int) []float64 {
	start := len(p.Assessments) - n
	if start < 0 {
		start = 0
	}
	scores := make([]float64, 0, len(p.Assessments)-start)
	for _, a := range p.Assessments[start:] {
		scores = append(scores, a.Score)
	}
	return scores
}

// Generate produces freshly stamped recommendations for the aggregate.
// Each result gets a new ID, Completed=false, and DateGenerated=now; any
// source failure comes back as a RecommendationError.
func (g *Generator) Generate(ctx context.Context, p *LearningProgress) (*RecommendationBatch, error) {
	in := RecommendationInput{
		SkillLevels:  p.SkillLevels,
		RecentScores: RecentScores(p, 5),
		WeakAreas:    WeakAreas(p.SkillLevels, g.threshold),
	}

	batch, err := g.source.GenerateRecommendations(ctx, in)
	if err != nil {
		return nil, &RecommendationError{Err: err}
	}

	now := g.now()
	for i := range batch.Recommendations {
		batch.Recommendations[i].ID = uuid.NewString()
		batch.Recommendations[i].Completed = false
		batch.Recommendations[i].DateGenerated = now
	}
	return batch, nil
}
