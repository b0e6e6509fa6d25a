package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/dsatrack/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init is called whenever the screen becomes visible. Screens re-read
	// tracker state here.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header tabs.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens that sometimes need every key,
// such as while a text field or prompt is focused. Global shortcuts are
// suppressed while CapturingInput returns true.
type InputCapturer interface {
	CapturingInput() bool
}

// ShowTopicMsg asks the app to show the question list filtered to Topic.
type ShowTopicMsg struct {
	Topic string
}
