package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dsatrack/internal/progress"
	"github.com/abhisek/dsatrack/internal/router"
	"github.com/abhisek/dsatrack/internal/screen"
	"github.com/abhisek/dsatrack/internal/screens/path"
	"github.com/abhisek/dsatrack/internal/screens/questions"
	"github.com/abhisek/dsatrack/internal/screens/topicmap"
	"github.com/abhisek/dsatrack/internal/tracker"
	"github.com/abhisek/dsatrack/internal/ui/components"
	"github.com/abhisek/dsatrack/internal/ui/layout"
	"github.com/abhisek/dsatrack/internal/ui/theme"
)

// Options holds the dependencies the TUI needs.
type Options struct {
	Tracker *tracker.Tracker
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	tr     *tracker.Tracker
	router *router.Router
	stats  progress.Stats
	width  int
	height int

	confirm *components.Confirm
	notice  string
}

// newAppModel creates an AppModel showing the question list.
func newAppModel(opts Options) AppModel {
	m := AppModel{
		tr: opts.Tracker,
		router: router.New(
			questions.New(opts.Tracker),
			topicmap.New(opts.Tracker),
			path.New(opts.Tracker),
		),
	}
	m.refreshStats()
	return m
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m *AppModel) refreshStats() {
	m.stats = m.tr.Stats(context.Background())
}

func (m AppModel) capturing() bool {
	c, ok := m.router.Active().(screen.InputCapturer)
	return ok && c.CapturingInput()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.ShowTopicMsg:
		cmd := m.router.Switch(0)
		return m, tea.Batch(cmd, m.router.Update(msg))

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.confirm != nil {
			m.updateConfirm(msg)
			return m, nil
		}
		if !m.capturing() {
			if cmd, handled := m.handleGlobalKey(msg); handled {
				return m, cmd
			}
		}
		m.notice = ""
		cmd := m.router.Update(msg)
		m.refreshStats()
		return m, cmd
	}

	return m, m.router.Update(msg)
}

// handleGlobalKey handles keys that work on every tab.
func (m *AppModel) handleGlobalKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "q":
		return tea.Quit, true
	case "esc":
		if m.router.Depth() > 1 {
			return func() tea.Msg { return router.PopScreenMsg{} }, true
		}
		return nil, true
	case "tab":
		return m.router.Next(1), true
	case "shift+tab":
		return m.router.Next(-1), true
	case "1", "2", "3":
		return m.router.Switch(int(msg.String()[0] - '1')), true
	case "R":
		c := components.NewConfirm(fmt.Sprintf("Reset your %d-day streak to 0?", m.stats.Streak))
		m.confirm = &c
		return nil, true
	}
	return nil, false
}

func (m *AppModel) updateConfirm(msg tea.KeyPressMsg) {
	c, done, ok := m.confirm.Update(msg)
	if !done {
		m.confirm = &c
		return
	}
	m.confirm = nil
	if !ok {
		return
	}
	if err := m.tr.ResetStreak(context.Background()); err != nil {
		m.notice = "Error: " + err.Error()
		return
	}
	m.notice = "Streak reset"
	m.refreshStats()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	header := layout.RenderHeader(layout.HeaderInfo{
		Tabs:    m.router.Tabs(),
		Active:  m.router.ActiveTab(),
		Solved:  m.stats.Solved,
		Total:   m.stats.Total,
		Percent: m.stats.Percent,
		Streak:  m.stats.Streak,
	}, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	var content string
	if m.confirm != nil {
		content = lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center,
			theme.Card.Render(m.confirm.View()))
	} else {
		content = m.router.View(m.width, contentHeight)
		if m.notice != "" {
			content = theme.Hint.Render(" "+m.notice) + "\n" + content
		}
	}

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints() []layout.KeyHint {
	if m.confirm != nil {
		return []layout.KeyHint{
			{Key: "y/n", Description: "Answer"},
			{Key: "←→", Description: "Choose"},
		}
	}

	var hints []layout.KeyHint
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	if m.capturing() {
		return hints
	}
	if m.router.Depth() > 1 {
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	return append(hints,
		layout.KeyHint{Key: "Tab", Description: "View"},
		layout.KeyHint{Key: "R", Description: "Reset streak"},
		layout.KeyHint{Key: "q", Description: "Quit"},
	)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
