// Package recommend shows the learner's recommendation list and requests
// fresh suggestions from the evaluator.
package recommend

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rghosh/devnotes/internal/progress"
	"github.com/rghosh/devnotes/internal/screen"
	"github.com/rghosh/devnotes/internal/screens/assess"
	"github.com/rghosh/devnotes/internal/store"
	"github.com/rghosh/devnotes/internal/ui/layout"
	"github.com/rghosh/devnotes/internal/ui/theme"
)

type generatedMsg struct {
	Batch *progress.RecommendationBatch
	Err   error
}

type savedMsg struct {
	Progress *progress.LearningProgress
	Err      error
}

// RecommendScreen lists recommendations newest first and lets the learner
// generate new ones or mark them done.
type RecommendScreen struct {
	generator     *progress.Generator
	progressStore store.ProgressStore
	updater       *progress.Updater
	current       *progress.LearningProgress

	cursor     int
	generating bool
	saving     bool
	errMsg     string
}

var _ screen.Screen = (*RecommendScreen)(nil)
var _ screen.KeyHintProvider = (*RecommendScreen)(nil)

// New creates the recommendations screen over the current progress record.
func New(gen *progress.Generator, ps store.ProgressStore, updater *progress.Updater, current *progress.LearningProgress) *RecommendScreen {
	return &RecommendScreen{
		generator:     gen,
		progressStore: ps,
		updater:       updater,
		current:       current,
	}
}

func (r *RecommendScreen) Init() tea.Cmd {
	return nil
}

func (r *RecommendScreen) Title() string {
	return "Recommendations"
}

func (r *RecommendScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "g", Description: "Generate"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Toggle done"},
		{Key: "Esc", Description: "Back"},
	}
}

// recs returns the recommendation list newest first.
func (r *RecommendScreen) recs() []progress.Recommendation {
	src := r.current.Recommendations
	out := make([]progress.Recommendation, len(src))
	for i, rec := range src {
		out[len(src)-1-i] = rec
	}
	return out
}

// generate asks the evaluator for recommendations off the UI loop.
func (r *RecommendScreen) generate() tea.Cmd {
	r.generating = true
	r.errMsg = ""
	prior := r.current
	return func() tea.Msg {
		batch, err := r.generator.Generate(context.Background(), prior)
		return generatedMsg{Batch: batch, Err: err}
	}
}

// save persists an updated aggregate and announces it to other screens.
func (r *RecommendScreen) save(next *progress.LearningProgress) tea.Cmd {
	r.saving = true
	return func() tea.Msg {
		if err := r.progressStore.Save(context.Background(), next); err != nil {
			return savedMsg{Err: err}
		}
		return savedMsg{Progress: next}
	}
}

// toggle flips the Completed flag of the recommendation under the cursor.
func (r *RecommendScreen) toggle() tea.Cmd {
	list := r.recs()
	if r.cursor >= len(list) {
		return nil
	}
	id := list[r.cursor].ID

	next := r.current.Clone()
	for i := range next.Recommendations {
		if next.Recommendations[i].ID == id {
			next.Recommendations[i].Completed = !next.Recommendations[i].Completed
			break
		}
	}
	return r.save(next)
}

func (r *RecommendScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		r.generating = false
		if msg.Err != nil {
			r.errMsg = msg.Err.Error()
			return r, nil
		}
		next := r.updater.ApplyRecommendations(r.current, msg.Batch)
		r.cursor = 0
		return r, r.save(next)

	case savedMsg:
		r.saving = false
		if msg.Err != nil {
			r.errMsg = msg.Err.Error()
			return r, nil
		}
		r.current = msg.Progress
		return r, func() tea.Msg {
			return assess.ProgressUpdatedMsg{Progress: msg.Progress}
		}

	case assess.ProgressUpdatedMsg:
		r.current = msg.Progress
		return r, nil

	case tea.KeyMsg:
		return r.handleKey(msg)
	}
	return r, nil
}

func (r *RecommendScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if r.generating || r.saving {
		return r, nil
	}
	switch msg.String() {
	case "g":
		return r, r.generate()
	case "up", "k":
		if r.cursor > 0 {
			r.cursor--
		}
	case "down", "j":
		if r.cursor < len(r.recs())-1 {
			r.cursor++
		}
	case "enter", " ":
		return r, r.toggle()
	}
	return r, nil
}

func (r *RecommendScreen) View(width, height int) string {
	var b strings.Builder

	switch {
	case r.generating:
		b.WriteString(theme.Hint.Render("Generating recommendations...") + "\n\n")
	case r.errMsg != "":
		b.WriteString(theme.Bad.Render("Error: "+r.errMsg) + "\n\n")
	}

	list := r.recs()
	if len(list) == 0 {
		b.WriteString(theme.Body.Render("No recommendations yet.") + "\n")
		b.WriteString(theme.Hint.Render("Press g to generate some from your progress.") + "\n")
	}

	for i, rec := range list {
		marker := "  "
		if i == r.cursor {
			marker = "▸ "
		}
		check := "[ ]"
		if rec.Completed {
			check = "[x]"
		}

		title := theme.Body.Render(rec.Title)
		if rec.Completed {
			title = theme.Hint.Render(rec.Title)
		}

		line := fmt.Sprintf("%s%s %s %s", marker, check, priorityBadge(rec.Priority), title)
		b.WriteString(line + "\n")

		if i == r.cursor {
			detail := fmt.Sprintf("%s · %s · ~%d min", rec.Type, rec.SkillArea, rec.EstimatedTime)
			b.WriteString("      " + theme.Hint.Render(detail) + "\n")
			if rec.Description != "" {
				b.WriteString("      " + theme.Body.Render(rec.Description) + "\n")
			}
			for _, res := range rec.Resources {
				b.WriteString("      " + theme.Hint.Render("• "+res.Title+" — "+res.URL) + "\n")
			}
		}
	}

	card := theme.Card.Width(width - 6).Render(b.String())
	return "\n" + lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(card)
}

func priorityBadge(p progress.Priority) string {
	switch p {
	case progress.PriorityHigh:
		return theme.PriorityHigh.Render("HIGH")
	case progress.PriorityLow:
		return theme.PriorityLow.Render("low ")
	default:
		return theme.PriorityMedium.Render("med ")
	}
}
