// Package dashboard renders the progress overview: skill bars, streak,
// token spend, and recent assessment history.
package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rghosh/devnotes/internal/progress"
	"github.com/rghosh/devnotes/internal/screen"
	"github.com/rghosh/devnotes/internal/screens/assess"
	"github.com/rghosh/devnotes/internal/ui/components"
	"github.com/rghosh/devnotes/internal/ui/theme"
)

// DashboardScreen implements screen.Screen over a loaded progress record.
type DashboardScreen struct {
	progress *progress.LearningProgress
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates the dashboard over the current progress record.
func New(p *progress.LearningProgress) *DashboardScreen {
	return &DashboardScreen{progress: p}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(assess.ProgressUpdatedMsg); ok {
		d.progress = m.Progress
	}
	return d, nil
}

func (d *DashboardScreen) View(width, height int) string {
	p := d.progress
	if p == nil {
		return theme.Hint.Width(width).Align(lipgloss.Center).Render("No progress yet")
	}

	var b strings.Builder

	b.WriteString(theme.Title.Render("Skill Levels") + "\n\n")
	for _, key := range progress.SkillAreas {
		sk := p.Skill(key)
		if sk == nil {
			continue
		}
		label := fmt.Sprintf("%-9s L%2d", sk.Name, sk.Level)
		bar := components.NewProgressBar(label, float64(sk.Progress)/100, true, width-20)
		b.WriteString(bar.View() + "\n")
	}

	b.WriteString("\n" + theme.Title.Render("Activity") + "\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"Streak: %d days (longest %d, total %d active)",
		p.Streak.CurrentStreak, p.Streak.LongestStreak, p.Streak.TotalDays)) + "\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"Assessments: %d · average score %.1f/10",
		p.TotalAssessments, p.AverageScore)) + "\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"Tokens: %d total · %d today · $%.4f estimated",
		p.TokenUsage.TotalTokens, p.TokenUsage.TokensToday, p.TokenUsage.EstimatedCost)) + "\n")

	if len(p.Goals) > 0 {
		g := p.Goals[0]
		line := fmt.Sprintf("Goal: reach level %d — %s", g.TargetSkillLevel, g.Description)
		if g.Deadline != nil {
			line += " (by " + g.Deadline.Format("Jan 2, 2006") + ")"
		}
		b.WriteString("\n" + theme.Hint.Render(line) + "\n")
	}

	if n := len(p.Assessments); n > 0 {
		b.WriteString("\n" + theme.Title.Render("Recent Assessments") + "\n\n")
		start := n - 5
		if start < 0 {
			start = 0
		}
		for i := n - 1; i >= start; i-- {
			a := p.Assessments[i]
			line := fmt.Sprintf("%s  %-9s %.1f/10  (%d questions)",
				a.Date.Format("Jan 02"), strings.Join(a.TopicsAssessed, ","),
				a.Score, len(a.Questions))
			if a.Degraded {
				line += "  degraded"
			}
			b.WriteString(theme.Body.Render(line) + "\n")
		}
	}

	card := theme.Card.Width(width - 6).Render(b.String())
	return "\n" + lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(card)
}
