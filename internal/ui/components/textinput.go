package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// SearchInput wraps bubbles/textinput for the question search box.
type SearchInput struct {
	Model textinput.Model
}

// NewSearchInput creates a focused search input.
func NewSearchInput(placeholder string, maxLen int) SearchInput {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = placeholder
	if maxLen > 0 {
		ti.CharLimit = maxLen
	}
	ti.Focus()
	return SearchInput{Model: ti}
}

// Init returns the initial command.
func (s SearchInput) Init() tea.Cmd {
	return s.Model.Focus()
}

// Update handles messages.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the input.
func (s SearchInput) View() string {
	return s.Model.View()
}

// Value returns the current text.
func (s SearchInput) Value() string {
	return s.Model.Value()
}

// SetValue replaces the text and moves the cursor to the end.
func (s *SearchInput) SetValue(v string) {
	s.Model.SetValue(v)
	s.Model.CursorEnd()
}
