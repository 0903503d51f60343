package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rghosh/devnotes/internal/app"
	"github.com/rghosh/devnotes/internal/assessment"
	"github.com/rghosh/devnotes/internal/evaluator"
	"github.com/rghosh/devnotes/internal/llm"
	"github.com/rghosh/devnotes/internal/progress"
	"github.com/rghosh/devnotes/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	userID, _ := cmd.Flags().GetString("user")
	current, err := loadProgress(ctx, st.ProgressStore(), userID)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	backend := evaluatorBackend(ctx, st)

	updater := progress.NewUpdater(modelPricing)
	deps := app.Deps{
		Progress:  st.ProgressStore(),
		Events:    st.EventRepo(),
		Engine:    assessment.NewEngine(backend),
		Updater:   updater,
		Generator: progress.NewGenerator(backend),
	}

	return app.Run(deps, current)
}

// backend is the full evaluator surface the dashboard consumes: question
// generation, answer scoring, and recommendations.
type backend interface {
	assessment.Evaluator
	progress.RecommendationSource
}

// evaluatorBackend picks the assessment backend: a remote evaluator service
// when DEVNOTES_EVALUATOR_URL is set, otherwise a local LLM-backed one.
// Without credentials the dashboard still runs; assessment starts surface
// the configuration error.
func evaluatorBackend(ctx context.Context, st *store.Store) backend {
	if url := os.Getenv("DEVNOTES_EVALUATOR_URL"); url != "" {
		return evaluator.NewClient(url)
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Assessments and recommendations will be unavailable.")
		return unconfiguredBackend{err: err}
	}
	return evaluator.New(provider, evaluator.DefaultConfig())
}

// loadProgress reads the user's progress record, seeding a default one on
// first run.
func loadProgress(ctx context.Context, ps store.ProgressStore, userID string) (*progress.LearningProgress, error) {
	p, err := ps.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}
	p = progress.Default(userID, time.Now().UTC())
	if err := ps.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// modelPricing estimates spend from the known per-model rates, falling back
// to a flat blended rate for unrecognized models.
func modelPricing(model string, tokens int) float64 {
	if c := llm.LookupCost(model); c != nil {
		return c.BlendedPerToken() * float64(tokens)
	}
	return float64(tokens) * progress.DefaultPerToken
}

// unconfiguredBackend fails every call with a configuration error so the
// UI can tell the user exactly what is missing.
type unconfiguredBackend struct {
	err error
}

func (u unconfiguredBackend) GenerateQuestions(context.Context, assessment.GenerateRequest) (*assessment.QuestionBatch, error) {
	return nil, &assessment.ConfigurationError{Err: u.err}
}

func (u unconfiguredBackend) EvaluateAnswer(context.Context, assessment.EvaluateRequest) (*assessment.Evaluation, error) {
	return nil, &assessment.ConfigurationError{Err: u.err}
}

func (u unconfiguredBackend) GenerateRecommendations(context.Context, progress.RecommendationInput) (*progress.RecommendationBatch, error) {
	return nil, &assessment.ConfigurationError{Err: u.err}
}
