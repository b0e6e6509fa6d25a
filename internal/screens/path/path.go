// Package path shows topics in curriculum order with sub-topic progress
// and the suggested next topic.
package path

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/dsatrack/internal/progress"
	"github.com/abhisek/dsatrack/internal/screen"
	"github.com/abhisek/dsatrack/internal/tracker"
	"github.com/abhisek/dsatrack/internal/ui/components"
	"github.com/abhisek/dsatrack/internal/ui/layout"
	"github.com/abhisek/dsatrack/internal/ui/theme"
)

type rowKind int

const (
	rowTopic rowKind = iota
	rowSubTopic
)

type row struct {
	kind  rowKind
	topic int
	sub   int
}

// PathScreen lists topics in the order they first appear in the catalog.
type PathScreen struct {
	tr           *tracker.Tracker
	aggs         []progress.TopicAggregate
	suggested    string
	rows         []row
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*PathScreen)(nil)

// New creates a PathScreen.
func New(tr *tracker.Tracker) *PathScreen {
	p := &PathScreen{tr: tr}
	p.refresh()
	return p
}

func (p *PathScreen) Init() tea.Cmd {
	p.refresh()
	return nil
}

func (p *PathScreen) Title() string {
	return "Path"
}

// Suggested returns the topic marked as next, or "".
func (p *PathScreen) Suggested() string {
	return p.suggested
}

// CursorTopic returns the topic under the cursor, or "".
func (p *PathScreen) CursorTopic() string {
	if p.cursor < 0 || p.cursor >= len(p.rows) {
		return ""
	}
	return p.aggs[p.rows[p.cursor].topic].Topic
}

func (p *PathScreen) refresh() {
	p.aggs = p.tr.Path()
	p.suggested = ""
	if next, ok := progress.SuggestedNextTopic(p.aggs); ok {
		p.suggested = next.Topic
	}

	p.rows = p.rows[:0]
	for ti, agg := range p.aggs {
		p.rows = append(p.rows, row{kind: rowTopic, topic: ti})
		for si := range agg.SubTopics {
			p.rows = append(p.rows, row{kind: rowSubTopic, topic: ti, sub: si})
		}
	}
	if p.cursor >= len(p.rows) || (len(p.rows) > 0 && p.rows[p.cursor].kind != rowTopic) {
		p.cursor = 0
	}
}

func (p *PathScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(p.rows) == 0 {
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		p.moveTopic(-1)
	case "down", "j":
		p.moveTopic(1)
	case "n":
		p.jumpToSuggested()
	case "enter":
		topic := p.CursorTopic()
		return p, func() tea.Msg { return screen.ShowTopicMsg{Topic: topic} }
	}
	return p, nil
}

// moveTopic moves the cursor to the previous or next topic row.
func (p *PathScreen) moveTopic(delta int) {
	next := p.cursor + delta
	for next >= 0 && next < len(p.rows) {
		if p.rows[next].kind == rowTopic {
			p.cursor = next
			return
		}
		next += delta
	}
}

func (p *PathScreen) jumpToSuggested() {
	for i, r := range p.rows {
		if r.kind == rowTopic && p.aggs[r.topic].Topic == p.suggested {
			p.cursor = i
			return
		}
	}
}

func (p *PathScreen) View(width, height int) string {
	if len(p.rows) == 0 {
		return theme.Hint.Render("  No topics to show.")
	}

	header := theme.Hint.Render("  All topics complete.")
	if p.suggested != "" {
		header = theme.Section.Render("  Suggested next: ") + theme.Body.Render(p.suggested)
	}

	listHeight := height - 2
	p.adjustScroll(listHeight)

	lines := []string{header, ""}
	for i := p.scrollOffset; i < len(p.rows) && i-p.scrollOffset < listHeight; i++ {
		lines = append(lines, p.renderRow(p.rows[i], i == p.cursor, width))
	}
	return strings.Join(lines, "\n")
}

func (p *PathScreen) renderRow(r row, selected bool, width int) string {
	agg := p.aggs[r.topic]

	if r.kind == rowSubTopic {
		sub := agg.SubTopics[r.sub]
		label := fmt.Sprintf("      %-22s", layout.Truncate(sub.SubTopic, 22))
		return components.NewProgressBar(label, sub.Solved, sub.Total, sub.Percent, width-2).View()
	}

	marker := "  "
	if selected {
		marker = theme.Cursor.Render("▸ ")
	}
	badge := ""
	switch {
	case agg.Complete():
		badge = theme.Solved.Render(" ✓")
	case agg.Topic == p.suggested:
		badge = theme.Section.Render(" ★")
	}

	name := theme.Body.Bold(true).Render(agg.Topic)
	if selected {
		name = theme.Cursor.Render(agg.Topic)
	}
	return marker + name + badge + theme.Dim.Render(fmt.Sprintf("  %d/%d · %d%%", agg.Solved, agg.Total, agg.Percent))
}

// adjustScroll keeps the cursor's topic row visible.
func (p *PathScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	if p.cursor < p.scrollOffset {
		p.scrollOffset = p.cursor
	}
	if p.cursor >= p.scrollOffset+height {
		p.scrollOffset = p.cursor - height + 1
	}
}

// KeyHints returns the key binding hints for the footer.
func (p *PathScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Topic"},
		{Key: "n", Description: "Suggested"},
		{Key: "Enter", Description: "Show questions"},
	}
}
