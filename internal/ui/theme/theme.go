package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, tuned for dark terminals.
var (
	Primary   = lipgloss.Color("#38BDF8") // Sky
	Secondary = lipgloss.Color("#22C55E") // Green
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#E2E8F0") // Light slate
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Warning = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Rows
var (
	Cursor = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Solved = lipgloss.NewStyle().
		Foreground(Secondary)

	Unsolved = lipgloss.NewStyle().
			Foreground(TextDim)

	Tag = lipgloss.NewStyle().
		Foreground(TextDim)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	CardActive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgCard).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)

	TabActive = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			Underline(true)

	TabInactive = lipgloss.NewStyle().
			Foreground(TextDim)
)
