package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/dsatrack/internal/ui/theme"
)

// ProgressBar displays a horizontal completion bar with a solved/total count.
type ProgressBar struct {
	Label   string
	Solved  int
	Total   int
	Percent int
	Width   int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, solved, total, percent, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Solved:  solved,
		Total:   total,
		Percent: percent,
		Width:   width,
	}
}

// Filled returns how many of barWidth cells are filled.
func (p ProgressBar) Filled(barWidth int) int {
	filled := barWidth * p.Percent / 100
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return filled
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string
	if p.Label != "" {
		result = theme.Body.Render(p.Label) + "  "
	}

	suffix := fmt.Sprintf("  %d/%d %3d%%", p.Solved, p.Total, p.Percent)

	barWidth := p.Width - lipgloss.Width(result) - lipgloss.Width(suffix)
	if barWidth < 4 {
		barWidth = 4
	}
	filled := p.Filled(barWidth)

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)) +
		theme.Dim.Render(suffix)
	return result
}
