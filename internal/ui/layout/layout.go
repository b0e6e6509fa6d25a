package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/dsatrack/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 16

	CompactWidthThreshold = 90
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// HeaderInfo is the data shown in the header bar.
type HeaderInfo struct {
	Tabs    []string
	Active  int
	Solved  int
	Total   int
	Percent int
	Streak  int
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small\n\nResize to at least %d x %d\n(current %d x %d)",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the brand, the view tabs and the overall progress.
func RenderHeader(info HeaderInfo, width int) string {
	left := theme.Title.Render(" dsatrack")

	tabs := make([]string, 0, len(info.Tabs))
	for i, name := range info.Tabs {
		label := fmt.Sprintf("%d %s", i+1, name)
		if i == info.Active {
			tabs = append(tabs, theme.TabActive.Render(label))
		} else {
			tabs = append(tabs, theme.TabInactive.Render(label))
		}
	}
	center := strings.Join(tabs, "   ")

	right := lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf("%d/%d (%d%%)", info.Solved, info.Total, info.Percent)) +
		"   " +
		lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("🔥 %d", info.Streak))
	if IsCompactWidth(width) {
		right = lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("%d%% 🔥%d", info.Percent, info.Streak))
	}

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	innerWidth := width - 4
	if innerWidth < 0 {
		innerWidth = 0
	}

	leftGap := (innerWidth-centerLen)/2 - leftLen
	if leftGap < 1 {
		leftGap = 1
	}
	rightGap := innerWidth - leftLen - leftGap - centerLen - rightLen
	if rightGap < 1 {
		rightGap = 1
	}

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderFooter renders the footer with key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key)+
			" "+theme.Dim.Render(h.Description))
	}

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(" " + strings.Join(parts, "  "))
}

// RenderFrame stacks header, content and footer to fill height.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	return header + "\n" + body + "\n" + footer
}

// Truncate shortens s to at most width cells, marking the cut with "…".
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
