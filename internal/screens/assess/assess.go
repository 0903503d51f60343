// Package assess runs an interactive assessment session: pick a skill,
// answer the generated questions, watch the evaluator's feedback land, and
// see the finished assessment folded into the progress record.
package assess

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/rghosh/devnotes/internal/assessment"
	"github.com/rghosh/devnotes/internal/progress"
	"github.com/rghosh/devnotes/internal/screen"
	"github.com/rghosh/devnotes/internal/store"
	"github.com/rghosh/devnotes/internal/ui/components"
	"github.com/rghosh/devnotes/internal/ui/layout"
)

type phase int

const (
	phasePick phase = iota
	phaseLoading
	phaseQuestion
	phaseScoring
	phaseFeedback
	phaseSaving
	phaseSummary
	phaseError
)

// ProgressUpdatedMsg tells interested screens the progress record changed.
type ProgressUpdatedMsg struct {
	Progress *progress.LearningProgress
}

// AssessScreen drives one assessment session end to end.
type AssessScreen struct {
	engine        *assessment.Engine
	progressStore store.ProgressStore
	eventRepo     store.EventRepo
	updater       *progress.Updater
	current       *progress.LearningProgress

	phase         phase
	skillKey      string // progress map key of the skill being assessed
	picker        components.Menu
	input         components.TextInput
	choice        components.MultiChoice
	session       *assessment.Session
	lastQ         *assessment.Question
	pendingResult *assessment.Assessment
	errMsg        string
}

var _ screen.Screen = (*AssessScreen)(nil)
var _ screen.KeyHintProvider = (*AssessScreen)(nil)

// skillOptions pairs the assessment topic label with its display name.
var skillOptions = []struct {
	Topic string
	Label string
	Key   string
}{
	{"react", "React", progress.SkillReact},
	{"nextjs", "Next.js", progress.SkillNextJS},
	{"ai-tools", "AI Tools", progress.SkillAITools},
}

// New creates the assessment screen over the current progress record.
func New(engine *assessment.Engine, ps store.ProgressStore, events store.EventRepo, updater *progress.Updater, current *progress.LearningProgress) *AssessScreen {
	s := &AssessScreen{
		engine:        engine,
		progressStore: ps,
		eventRepo:     events,
		updater:       updater,
		current:       current,
		phase:         phasePick,
		input:         components.NewTextInput("Type your answer...", 0),
	}

	items := make([]components.MenuItem, 0, len(skillOptions))
	for _, opt := range skillOptions {
		opt := opt
		label := opt.Label
		if sk := current.Skill(opt.Key); sk != nil {
			label = fmt.Sprintf("%s  (level %d/10)", opt.Label, sk.Level)
		}
		items = append(items, components.MenuItem{
			Label:  label,
			Action: func() tea.Cmd { return s.startSession(opt.Topic, opt.Key) },
		})
	}
	s.picker = components.NewMenu(items)
	return s
}

func (s *AssessScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *AssessScreen) Title() string {
	return "Assessment"
}

func (s *AssessScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phasePick:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose skill"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit answer"},
			{Key: "Esc", Description: "Abandon"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case phaseSummary, phaseError:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	return nil
}

// startSession kicks off question generation for the chosen skill.
func (s *AssessScreen) startSession(topic, key string) tea.Cmd {
	s.phase = phaseLoading
	s.skillKey = key

	level := 1
	if sk := s.current.Skill(key); sk != nil {
		level = sk.Level
	}

	return func() tea.Msg {
		sess, err := s.engine.Start(context.Background(), topic, level)
		return sessionStartedMsg{Session: sess, Err: err}
	}
}

// submitAnswer sends the answer to the evaluator off the UI loop.
func (s *AssessScreen) submitAnswer(text string) tea.Cmd {
	s.phase = phaseScoring
	return func() tea.Msg {
		q, err := s.engine.SubmitAnswer(context.Background(), text)
		done := s.engine.State() == assessment.StateCompleted
		return answerScoredMsg{Question: q, Done: done, Err: err}
	}
}

// persistResult folds the assessment into the progress record, saves it,
// and appends the event history.
func (s *AssessScreen) persistResult(result *assessment.Assessment) tea.Cmd {
	s.phase = phaseSaving
	prior := s.current
	return func() tea.Msg {
		ctx := context.Background()

		next := s.updater.Apply(prior, *result)
		if err := s.progressStore.Save(ctx, next); err != nil {
			return progressSavedMsg{Err: err}
		}

		// Event history is best-effort; the snapshot already holds the
		// authoritative state.
		_ = s.eventRepo.AppendAssessment(ctx, store.AssessmentEventData{
			AssessmentID:       result.ID,
			SkillArea:          result.TopicsAssessed[0],
			Score:              result.Score,
			CompletionRate:     result.CompletionRate,
			QuestionsAnswered:  len(result.Questions),
			QuestionsGenerated: len(result.Questions),
			TokensUsed:         result.TokensUsed,
			Model:              result.Model,
			DurationSecs:       result.Duration,
			Degraded:           result.Degraded,
		})
		for _, q := range result.Questions {
			_ = s.eventRepo.AppendAnswer(ctx, store.AnswerEventData{
				AssessmentID: result.ID,
				QuestionID:   q.ID,
				QuestionType: string(q.Type),
				Topic:        q.Topic,
				Difficulty:   q.Difficulty,
				UserAnswer:   q.UserAnswer,
				Score:        q.ScoreOrZero(),
				Scored:       q.Score != nil,
				TimeSecs:     q.TimeSpent,
			})
		}

		return progressSavedMsg{Progress: next}
	}
}

func (s *AssessScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		if msg.Err != nil {
			s.phase = phaseError
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.session = msg.Session
		s.phase = phaseQuestion
		s.prepareQuestion()
		return s, nil

	case answerScoredMsg:
		if msg.Err != nil {
			s.phase = phaseError
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.lastQ = msg.Question
		s.phase = phaseFeedback
		if msg.Done {
			// Persist after the learner has seen the last feedback.
			s.pendingResult = s.engine.Result()
		}
		return s, nil

	case progressSavedMsg:
		if msg.Err != nil {
			s.phase = phaseError
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.current = msg.Progress
		s.phase = phaseSummary
		return s, func() tea.Msg { return ProgressUpdatedMsg{Progress: msg.Progress} }

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward everything else to the focused input widget.
	if s.phase == phaseQuestion && !s.mcActive() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *AssessScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phasePick:
		var cmd tea.Cmd
		s.picker, cmd = s.picker.Update(msg)
		return s, cmd

	case phaseQuestion:
		if s.mcActive() {
			var cmd tea.Cmd
			s.choice, cmd = s.choice.Update(msg)
			if s.choice.Submitted {
				return s, s.submitAnswer(s.choice.Value())
			}
			return s, cmd
		}
		if msg.String() == "enter" {
			text := s.input.Value()
			if text == "" {
				return s, nil
			}
			s.input.Clear()
			return s, s.submitAnswer(text)
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case phaseFeedback:
		// Any key advances.
		if s.pendingResult != nil {
			result := s.pendingResult
			s.pendingResult = nil
			return s, s.persistResult(result)
		}
		s.phase = phaseQuestion
		s.prepareQuestion()
		return s, nil
	}
	return s, nil
}

// prepareQuestion resets the answer widget for the current question.
func (s *AssessScreen) prepareQuestion() {
	q := s.session.CurrentQuestion()
	if q == nil {
		return
	}
	if q.Type == assessment.TypeMultipleChoice && len(q.Options) > 0 {
		s.choice = components.NewMultiChoice(q.Question, q.Options)
	} else {
		s.input.Clear()
	}
}

func (s *AssessScreen) mcActive() bool {
	q := s.session.CurrentQuestion()
	return q != nil && q.Type == assessment.TypeMultipleChoice && len(q.Options) > 0
}

// Abandon discards any in-progress session. The app calls this before
// popping the screen, so a half-finished session never leaks a result.
func (s *AssessScreen) Abandon() {
	s.engine.Reset()
}
