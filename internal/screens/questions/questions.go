// Package questions implements the filterable question list.
package questions

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dsatrack/internal/catalog"
	"github.com/abhisek/dsatrack/internal/progress"
	"github.com/abhisek/dsatrack/internal/router"
	"github.com/abhisek/dsatrack/internal/screen"
	"github.com/abhisek/dsatrack/internal/screens/detail"
	"github.com/abhisek/dsatrack/internal/tracker"
	"github.com/abhisek/dsatrack/internal/ui/components"
	"github.com/abhisek/dsatrack/internal/ui/layout"
	"github.com/abhisek/dsatrack/internal/ui/theme"
)

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeConfirm
)

// chromeRows is the filter bar, the status line and a spacer.
const chromeRows = 3

// QuestionsScreen lists the catalog filtered by topic, sub-topic, status
// and search text.
type QuestionsScreen struct {
	tr       *tracker.Tracker
	criteria progress.Criteria
	items    []catalog.Question

	cursor       int
	scrollOffset int

	mode       mode
	search     components.SearchInput
	prevSearch string
	confirm    components.Confirm

	status string
}

var _ screen.Screen = (*QuestionsScreen)(nil)

// New creates a QuestionsScreen with no filters applied.
func New(tr *tracker.Tracker) *QuestionsScreen {
	s := &QuestionsScreen{tr: tr}
	s.refresh()
	return s
}

func (s *QuestionsScreen) Init() tea.Cmd {
	s.refresh()
	return nil
}

func (s *QuestionsScreen) Title() string {
	return "List"
}

// Criteria returns the active filters.
func (s *QuestionsScreen) Criteria() progress.Criteria {
	return s.criteria
}

// Items returns the questions currently listed.
func (s *QuestionsScreen) Items() []catalog.Question {
	return s.items
}

// CapturingInput reports whether the search box or a prompt has focus.
func (s *QuestionsScreen) CapturingInput() bool {
	return s.mode != modeBrowse
}

func (s *QuestionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.ShowTopicMsg:
		s.criteria = progress.Criteria{Topic: msg.Topic}
		s.cursor, s.scrollOffset = 0, 0
		s.mode = modeBrowse
		s.status = ""
		s.refresh()
		return s, nil

	case tea.KeyPressMsg:
		switch s.mode {
		case modeSearch:
			return s, s.updateSearch(msg)
		case modeConfirm:
			s.updateConfirm(msg)
			return s, nil
		}
		return s, s.updateBrowse(msg)
	}

	if s.mode == modeSearch {
		var cmd tea.Cmd
		s.search, cmd = s.search.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuestionsScreen) updateBrowse(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		s.moveCursor(-1)
	case "down", "j":
		s.moveCursor(1)
	case "pgup":
		s.moveCursor(-10)
	case "pgdown":
		s.moveCursor(10)
	case "home", "g":
		s.cursor = 0
	case "end", "G":
		s.cursor = len(s.items) - 1
		s.clampCursor()
	case "space", "x":
		s.toggle()
	case "enter":
		return s.openDetail()
	case "/":
		s.prevSearch = s.criteria.Search
		s.search = components.NewSearchInput("name, topic or sub-topic", 64)
		s.search.SetValue(s.criteria.Search)
		s.mode = modeSearch
		return s.search.Init()
	case "s":
		s.criteria.Status = nextStatus(s.criteria.Status)
		s.refresh()
	case "t":
		s.criteria.Topic = cycle(s.tr.Topics(), s.criteria.Topic)
		s.criteria.SubTopic = ""
		s.refresh()
	case "T":
		s.criteria.SubTopic = cycle(s.tr.SubTopics(s.criteria.Topic), s.criteria.SubTopic)
		s.refresh()
	case "c":
		s.criteria = progress.Criteria{}
		s.status = "Filters cleared"
		s.refresh()
	case "U":
		if len(s.items) == 0 {
			s.status = "No questions listed"
			return nil
		}
		s.confirm = components.NewConfirm(fmt.Sprintf(
			"Mark all %d listed questions as unsolved?", len(s.items)))
		s.mode = modeConfirm
	}
	return nil
}

func (s *QuestionsScreen) updateSearch(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		s.mode = modeBrowse
		return nil
	case "esc":
		s.criteria.Search = s.prevSearch
		s.mode = modeBrowse
		s.refresh()
		return nil
	}

	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	s.criteria.Search = s.search.Value()
	s.cursor, s.scrollOffset = 0, 0
	s.refresh()
	return cmd
}

func (s *QuestionsScreen) updateConfirm(msg tea.KeyPressMsg) {
	var done, ok bool
	s.confirm, done, ok = s.confirm.Update(msg)
	if !done {
		return
	}
	s.mode = modeBrowse
	if !ok {
		s.status = "Cancelled"
		return
	}

	n, err := s.tr.MarkVisibleUnsolved(context.Background(), s.criteria)
	if err != nil {
		s.status = "Error: " + err.Error()
	} else {
		s.status = fmt.Sprintf("Marked %d question(s) unsolved", n)
	}
	s.refresh()
}

func (s *QuestionsScreen) toggle() {
	if len(s.items) == 0 {
		return
	}
	q := s.items[s.cursor]
	solved, err := s.tr.Toggle(context.Background(), q.ID)
	switch {
	case err != nil:
		s.status = "Error: " + err.Error()
	case solved:
		s.status = "Solved: " + q.Name
	default:
		s.status = "Unsolved: " + q.Name
	}
	s.refresh()
}

func (s *QuestionsScreen) openDetail() tea.Cmd {
	if len(s.items) == 0 {
		return nil
	}
	d := detail.New(s.tr, s.items[s.cursor])
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: d}
	}
}

// refresh re-derives the list from the tracker and keeps the cursor in range.
func (s *QuestionsScreen) refresh() {
	items, err := s.tr.Filter(s.criteria)
	if err != nil {
		s.status = "Error: " + err.Error()
		items = nil
	}
	s.items = items
	s.clampCursor()
}

func (s *QuestionsScreen) moveCursor(delta int) {
	s.cursor += delta
	s.clampCursor()
}

func (s *QuestionsScreen) clampCursor() {
	if s.cursor >= len(s.items) {
		s.cursor = len(s.items) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// nextStatus cycles all → solved → unsolved → all.
func nextStatus(st progress.Status) progress.Status {
	for i, v := range progress.Statuses {
		if v == st {
			return progress.Statuses[(i+1)%len(progress.Statuses)]
		}
	}
	return progress.StatusSolved
}

// cycle returns the option after current, with "" (no filter) before the
// first option and after the last.
func cycle(options []string, current string) string {
	if current == "" {
		if len(options) == 0 {
			return ""
		}
		return options[0]
	}
	for i, o := range options {
		if o == current && i+1 < len(options) {
			return options[i+1]
		}
	}
	return ""
}

func (s *QuestionsScreen) View(width, height int) string {
	var b strings.Builder

	if s.mode == modeSearch {
		b.WriteString(s.search.View())
	} else {
		b.WriteString(s.renderFilterBar(width))
	}
	b.WriteString("\n")
	b.WriteString(s.renderStatus(width))
	b.WriteString("\n\n")

	listHeight := height - chromeRows
	var confirm string
	if s.mode == modeConfirm {
		confirm = s.confirm.View()
		listHeight -= lipgloss.Height(confirm) + 2
	}
	b.WriteString(s.renderList(width, listHeight))
	if confirm != "" {
		b.WriteString("\n\n" + confirm)
	}
	return b.String()
}

func (s *QuestionsScreen) renderFilterBar(width int) string {
	label := func(name, value string) string {
		if value == "" {
			value = "all"
		}
		return theme.Dim.Render(name+": ") + theme.Body.Render(value)
	}
	parts := []string{
		label("Topic", s.criteria.Topic),
		label("Sub-topic", s.criteria.SubTopic),
		label("Status", string(s.criteria.Status)),
	}
	if q := strings.TrimSpace(s.criteria.Search); q != "" {
		parts = append(parts, label("Search", q))
	}
	return layout.Truncate(" "+strings.Join(parts, theme.Dim.Render("  │  ")), width)
}

func (s *QuestionsScreen) renderStatus(width int) string {
	if err := s.tr.LoadErr(); err != nil {
		return theme.Warning.Render(layout.Truncate(" Could not load questions: "+err.Error(), width))
	}
	summary := fmt.Sprintf(" %d of %d questions", len(s.items), len(s.tr.Questions()))
	if s.status != "" {
		summary += "  ·  " + s.status
	}
	return theme.Hint.Render(layout.Truncate(summary, width))
}

func (s *QuestionsScreen) renderList(width, height int) string {
	if height <= 0 {
		return ""
	}
	if len(s.items) == 0 {
		return theme.Hint.Render("  No questions match these filters.")
	}

	s.adjustScroll(height)

	var lines []string
	for i := s.scrollOffset; i < len(s.items) && len(lines) < height; i++ {
		lines = append(lines, s.renderRow(s.items[i], i == s.cursor, width))
	}
	return strings.Join(lines, "\n")
}

func (s *QuestionsScreen) renderRow(q catalog.Question, selected bool, width int) string {
	marker := "  "
	if selected {
		marker = theme.Cursor.Render("▸ ")
	}

	check := theme.Unsolved.Render("[ ]")
	if s.tr.IsSolved(q.ID) {
		check = theme.Solved.Render("[✓]")
	}

	id := theme.Dim.Render(fmt.Sprintf("%4d ", q.ID))
	tag := ""
	if !layout.IsCompactWidth(width) && q.Tag() != "" {
		tag = "  " + theme.Tag.Render(q.Tag())
	}

	name := q.Name
	if name == "" {
		name = "(untitled)"
	}
	nameWidth := width - lipgloss.Width(marker+check+" "+id+tag) - 1
	nameStyle := theme.Body
	if selected {
		nameStyle = theme.Cursor
	}
	return marker + check + " " + id + nameStyle.Render(layout.Truncate(name, nameWidth)) + tag
}

// adjustScroll keeps the cursor inside the visible window.
func (s *QuestionsScreen) adjustScroll(height int) {
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
}

// KeyHints returns the key binding hints for the footer.
func (s *QuestionsScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeSearch:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeConfirm:
		return []layout.KeyHint{
			{Key: "y/n", Description: "Answer"},
			{Key: "←→", Description: "Choose"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Toggle"},
		{Key: "/", Description: "Search"},
		{Key: "s", Description: "Status"},
		{Key: "t/T", Description: "Topic"},
		{Key: "c", Description: "Clear"},
		{Key: "U", Description: "Unsolve all"},
		{Key: "Enter", Description: "Details"},
	}
}
