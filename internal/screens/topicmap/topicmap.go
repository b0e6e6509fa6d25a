// Package topicmap shows one tile per topic with its completion.
package topicmap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dsatrack/internal/progress"
	"github.com/abhisek/dsatrack/internal/screen"
	"github.com/abhisek/dsatrack/internal/tracker"
	"github.com/abhisek/dsatrack/internal/ui/components"
	"github.com/abhisek/dsatrack/internal/ui/layout"
	"github.com/abhisek/dsatrack/internal/ui/theme"
)

const tileWidth = 30

// MapScreen lays topic tiles out in a grid, sorted by name.
type MapScreen struct {
	tr      *tracker.Tracker
	tiles   []progress.TopicTile
	cursor  int
	columns int
}

var _ screen.Screen = (*MapScreen)(nil)

// New creates a MapScreen.
func New(tr *tracker.Tracker) *MapScreen {
	m := &MapScreen{tr: tr, columns: 1}
	m.refresh()
	return m
}

func (m *MapScreen) Init() tea.Cmd {
	m.refresh()
	return nil
}

func (m *MapScreen) Title() string {
	return "Map"
}

// Tiles returns the tiles currently shown.
func (m *MapScreen) Tiles() []progress.TopicTile {
	return m.tiles
}

func (m *MapScreen) refresh() {
	m.tiles = m.tr.Map()
	if m.cursor >= len(m.tiles) {
		m.cursor = len(m.tiles) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *MapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.tiles) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "left", "h":
		m.move(-1)
	case "right", "l":
		m.move(1)
	case "up", "k":
		m.move(-m.columns)
	case "down", "j":
		m.move(m.columns)
	case "enter":
		topic := m.tiles[m.cursor].Topic
		return m, func() tea.Msg { return screen.ShowTopicMsg{Topic: topic} }
	}
	return m, nil
}

func (m *MapScreen) move(delta int) {
	next := m.cursor + delta
	if next >= 0 && next < len(m.tiles) {
		m.cursor = next
	}
}

func (m *MapScreen) View(width, height int) string {
	if len(m.tiles) == 0 {
		return theme.Hint.Render("  No topics to show.")
	}

	m.columns = width / (tileWidth + 1)
	if m.columns < 1 {
		m.columns = 1
	}

	var rows []string
	for start := 0; start < len(m.tiles); start += m.columns {
		end := start + m.columns
		if end > len(m.tiles) {
			end = len(m.tiles)
		}
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, m.renderTile(m.tiles[i], i == m.cursor), " ")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	// Scroll by whole tile rows so the cursor row stays visible.
	rowHeight := lipgloss.Height(rows[0])
	visible := height / rowHeight
	if visible < 1 {
		visible = 1
	}
	cursorRow := m.cursor / m.columns
	first := 0
	if cursorRow >= visible {
		first = cursorRow - visible + 1
	}
	last := first + visible
	if last > len(rows) {
		last = len(rows)
	}
	return strings.Join(rows[first:last], "\n")
}

func (m *MapScreen) renderTile(t progress.TopicTile, selected bool) string {
	style := theme.Card
	nameStyle := theme.Body.Bold(true)
	if selected {
		style = theme.CardActive
		nameStyle = theme.Cursor
	}

	inner := tileWidth - 4
	bar := components.NewProgressBar("", t.Solved, t.Total, t.Percent, inner).View()
	body := nameStyle.Render(layout.Truncate(t.Topic, inner)) + "\n" +
		bar + "\n" +
		theme.Dim.Render(fmt.Sprintf("%d questions", t.Total))
	return style.Width(tileWidth).Render(body)
}

// KeyHints returns the key binding hints for the footer.
func (m *MapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Move"},
		{Key: "Enter", Description: "Show questions"},
	}
}
