package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dsatrack/internal/ui/theme"
)

// Confirm is a yes/no prompt. No is focused initially.
type Confirm struct {
	Prompt string
	yes    bool
}

// NewConfirm creates a prompt.
func NewConfirm(prompt string) Confirm {
	return Confirm{Prompt: prompt}
}

// Update handles a key. done reports that the user answered; ok is the
// answer. y and n answer directly, esc answers no.
func (c Confirm) Update(msg tea.Msg) (next Confirm, done, ok bool) {
	kmsg, isKey := msg.(tea.KeyPressMsg)
	if !isKey {
		return c, false, false
	}

	switch kmsg.String() {
	case "y", "Y":
		return c, true, true
	case "n", "N", "esc":
		return c, true, false
	case "left", "right", "tab", "h", "l":
		c.yes = !c.yes
	case "enter":
		return c, true, c.yes
	}
	return c, false, false
}

// View renders the prompt with Yes and No buttons.
func (c Confirm) View() string {
	yes, no := theme.ButtonInactive, theme.ButtonActive
	if c.yes {
		yes, no = theme.ButtonActive, theme.ButtonInactive
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		yes.Render("Yes"), "  ", no.Render("No"),
	)
	return theme.Warning.Render(c.Prompt) + "\n\n" + buttons
}
