// Package detail shows a single question.
package detail

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/dsatrack/internal/catalog"
	"github.com/abhisek/dsatrack/internal/screen"
	"github.com/abhisek/dsatrack/internal/tracker"
	"github.com/abhisek/dsatrack/internal/ui/layout"
	"github.com/abhisek/dsatrack/internal/ui/theme"
)

// DetailScreen shows a question's links and lets the user toggle it.
type DetailScreen struct {
	tr     *tracker.Tracker
	q      catalog.Question
	status string
}

var _ screen.Screen = (*DetailScreen)(nil)

// New creates a DetailScreen for q.
func New(tr *tracker.Tracker, q catalog.Question) *DetailScreen {
	return &DetailScreen{tr: tr, q: q}
}

func (d *DetailScreen) Init() tea.Cmd {
	return nil
}

func (d *DetailScreen) Title() string {
	return "Question"
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "space", "x":
			solved, err := d.tr.Toggle(context.Background(), d.q.ID)
			switch {
			case err != nil:
				d.status = "Error: " + err.Error()
			case solved:
				d.status = "Marked solved"
			default:
				d.status = "Marked unsolved"
			}
		}
	}
	return d, nil
}

func (d *DetailScreen) View(width, _ int) string {
	name := d.q.Name
	if name == "" {
		name = "(untitled)"
	}

	state := theme.Unsolved.Render("○ unsolved")
	if d.tr.IsSolved(d.q.ID) {
		state = theme.Solved.Render("✓ solved")
	}

	field := func(label, value string) string {
		if value == "" {
			value = "—"
		}
		return theme.Dim.Render(fmt.Sprintf("%-10s", label)) + theme.Body.Render(value)
	}

	lines := []string{
		theme.Title.Render(layout.Truncate(name, width-4)),
		"",
		field("ID", fmt.Sprint(d.q.ID)),
		field("Topic", d.q.Topic),
		field("Sub-topic", d.q.SubTopic),
		theme.Dim.Render(fmt.Sprintf("%-10s", "Status")) + state,
		"",
		field("Problem", problem(d.q)),
		field("Solution", solution(d.q)),
	}
	if d.status != "" {
		lines = append(lines, "", theme.Hint.Render(d.status))
	}

	return theme.Card.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func problem(q catalog.Question) string {
	if u, ok := q.ProblemURL(); ok {
		return u
	}
	return ""
}

func solution(q catalog.Question) string {
	s := strings.TrimSpace(q.Solution)
	switch q.SolutionKind() {
	case catalog.SolutionURL:
		return s
	case catalog.SolutionPath:
		return s + theme.Dim.Render("  (local file)")
	}
	return ""
}

// KeyHints returns the key binding hints for the footer.
func (d *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Toggle"},
		{Key: "Esc", Description: "Back"},
	}
}
