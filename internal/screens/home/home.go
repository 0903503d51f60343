// Package home is the dashboard's landing screen: a navigation menu plus a
// snapshot of the learner's current standing.
package home

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rghosh/devnotes/internal/progress"
	"github.com/rghosh/devnotes/internal/screen"
	"github.com/rghosh/devnotes/internal/ui/components"
	"github.com/rghosh/devnotes/internal/ui/theme"
)

// NavigateMsg asks the app to open one of the top-level destinations.
// The app model resolves it into a router push with wired dependencies.
type NavigateMsg struct {
	Dest string
}

// Navigation destinations.
const (
	DestDashboard  = "dashboard"
	DestAssessment = "assessment"
	DestRecommend  = "recommendations"
)

// HomeScreen implements screen.Screen for the landing menu.
type HomeScreen struct {
	menu     components.Menu
	progress *progress.LearningProgress
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. The progress record may be nil before the
// first load; the summary line is simply omitted then.
func New(p *progress.LearningProgress) *HomeScreen {
	nav := func(dest string) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return NavigateMsg{Dest: dest} }
		}
	}

	menu := components.NewMenu([]components.MenuItem{
		{Label: "Progress Dashboard", Action: nav(DestDashboard)},
		{Label: "Start Assessment", Action: nav(DestAssessment)},
		{Label: "Learning Recommendations", Action: nav(DestRecommend)},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})

	return &HomeScreen{menu: menu, progress: p}
}

// SetProgress refreshes the summary after progress changes.
func (h *HomeScreen) SetProgress(p *progress.LearningProgress) {
	h.progress = p
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Width(width).Render("Dev Notes — Learning Dashboard")
	subtitle := theme.Subtitle.Width(width).Render("Track your React, Next.js and AI tooling skills")

	body := "\n" + title + "\n" + subtitle + "\n\n"

	if h.progress != nil {
		body += theme.Hint.Width(width).Align(lipgloss.Center).Render(h.summaryLine()) + "\n"
	}

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())

	return body + "\n" + menu
}

func (h *HomeScreen) summaryLine() string {
	p := h.progress
	return fmt.Sprintf("%d assessments · average %.1f/10 · %d-day streak",
		p.TotalAssessments, p.AverageScore, p.Streak.CurrentStreak)
}
