// Package app wires the dashboard together: the screen router, the shared
// progress record, and the services every screen depends on.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rghosh/devnotes/internal/assessment"
	"github.com/rghosh/devnotes/internal/progress"
	"github.com/rghosh/devnotes/internal/router"
	"github.com/rghosh/devnotes/internal/screen"
	"github.com/rghosh/devnotes/internal/screens/assess"
	"github.com/rghosh/devnotes/internal/screens/dashboard"
	"github.com/rghosh/devnotes/internal/screens/home"
	"github.com/rghosh/devnotes/internal/screens/recommend"
	"github.com/rghosh/devnotes/internal/store"
	"github.com/rghosh/devnotes/internal/ui/layout"
)

// Deps holds the services the screens are built over.
type Deps struct {
	Progress  store.ProgressStore
	Events    store.EventRepo
	Engine    *assessment.Engine
	Updater   *progress.Updater
	Generator *progress.Generator
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps    Deps
	router  *router.Router
	home    *home.HomeScreen
	current *progress.LearningProgress
	width   int
	height  int
}

// newAppModel creates the root model with the home screen on the stack.
func newAppModel(deps Deps, current *progress.LearningProgress) AppModel {
	homeScreen := home.New(current)
	return AppModel{
		deps:    deps,
		router:  router.New(homeScreen),
		home:    homeScreen,
		current: current,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case home.NavigateMsg:
		return m, m.open(msg.Dest)

	case assess.ProgressUpdatedMsg:
		m.current = msg.Progress
		m.home.SetProgress(msg.Progress)
		cmd := m.router.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				// An abandoned assessment never leaks a result.
				if a, ok := m.router.Active().(*assess.AssessScreen); ok {
					a.Abandon()
				}
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// open resolves a navigation destination into a wired screen push.
func (m AppModel) open(dest string) tea.Cmd {
	var s screen.Screen
	switch dest {
	case home.DestDashboard:
		s = dashboard.New(m.current)
	case home.DestAssessment:
		s = assess.New(m.deps.Engine, m.deps.Progress, m.deps.Events, m.deps.Updater, m.current)
	case home.DestRecommend:
		s = recommend.New(m.deps.Generator, m.deps.Progress, m.deps.Updater, m.current)
	default:
		return nil
	}
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	stats := layout.HeaderStats{}
	if m.current != nil {
		stats.Streak = m.current.Streak.CurrentStreak
		stats.TokensToday = m.current.TokenUsage.TokensToday
	}
	header := layout.RenderHeader(title, stats, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program over an already-loaded progress record.
func Run(deps Deps, current *progress.LearningProgress) error {
	p := tea.NewProgram(newAppModel(deps, current))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
