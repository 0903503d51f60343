package assess

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rghosh/devnotes/internal/ui/theme"
)

func (s *AssessScreen) View(width, height int) string {
	switch s.phase {
	case phasePick:
		return s.viewPick(width)
	case phaseLoading:
		return centered(width, height, theme.Hint.Render("Generating questions..."))
	case phaseQuestion:
		return s.viewQuestion(width)
	case phaseScoring:
		return centered(width, height, theme.Hint.Render("Scoring your answer..."))
	case phaseFeedback:
		return s.viewFeedback(width)
	case phaseSaving:
		return centered(width, height, theme.Hint.Render("Saving progress..."))
	case phaseSummary:
		return s.viewSummary(width)
	case phaseError:
		return centered(width, height, theme.Bad.Render("Error: "+s.errMsg))
	}
	return ""
}

func (s *AssessScreen) viewPick(width int) string {
	title := theme.Title.Width(width).Render("Choose a skill to assess")
	menu := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s.picker.View())
	return "\n" + title + "\n\n" + menu
}

func (s *AssessScreen) viewQuestion(width int) string {
	q := s.session.CurrentQuestion()
	if q == nil {
		return ""
	}

	header := theme.Subtitle.Width(width).Render(fmt.Sprintf(
		"Question %d of %d · difficulty %d/10",
		s.session.CurrentQuestionIndex+1, len(s.session.Questions), q.Difficulty,
	))

	var body string
	if s.mcActive() {
		body = s.choice.View()
	} else {
		body = theme.Body.Bold(true).Render(q.Question) + "\n\n" + s.input.View()
	}

	card := theme.Card.Width(width - 8).Render(body)
	content := "\n" + header + "\n\n" + lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(card)

	if s.session.Degraded {
		content += "\n" + theme.Degraded.Width(width).Align(lipgloss.Center).
			Render("Evaluator degraded: running a fallback question")
	}
	return content
}

func (s *AssessScreen) viewFeedback(width int) string {
	q := s.lastQ
	if q == nil {
		return ""
	}

	var b strings.Builder
	if q.Score != nil {
		style := theme.Good
		if *q.Score < 5 {
			style = theme.Bad
		}
		b.WriteString(style.Render(fmt.Sprintf("Score: %.1f/10", *q.Score)))
	} else {
		b.WriteString(theme.Degraded.Render("Not scored (evaluation unavailable)"))
	}
	if q.Feedback != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render(wrap(q.Feedback, width-16)))
	}

	card := theme.Card.Width(width - 8).Render(b.String())
	hint := theme.Hint.Width(width).Align(lipgloss.Center).Render("Press any key to continue")
	return "\n" + lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(card) + "\n\n" + hint
}

func (s *AssessScreen) viewSummary(width int) string {
	result := s.engine.Result()
	if result == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Assessment complete") + "\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Average score: %.1f/10", result.Score)) + "\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Questions answered: %d", len(result.Questions))) + "\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Tokens used: %d", result.TokensUsed)) + "\n")
	if result.Degraded {
		b.WriteString(theme.Degraded.Render("Session ran in degraded mode") + "\n")
	}

	if sk := s.current.Skill(s.skillKey); sk != nil {
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf(
			"%s is now level %d/10 (%d%% to next)", sk.Name, sk.Level, sk.Progress)))
	}

	card := theme.Card.Width(width - 8).Render(b.String())
	return "\n\n" + lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(card)
}

func centered(width, height int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// wrap breaks text on spaces to fit the given width.
func wrap(text string, width int) string {
	if width < 20 {
		width = 20
	}
	var b strings.Builder
	line := 0
	for _, word := range strings.Fields(text) {
		wlen := len([]rune(word))
		if line > 0 && line+1+wlen > width {
			b.WriteString("\n")
			line = 0
		} else if line > 0 {
			b.WriteString(" ")
			line++
		}
		b.WriteString(word)
		line += wlen
	}
	return b.String()
}
