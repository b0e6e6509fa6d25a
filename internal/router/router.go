package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/dsatrack/internal/screen"
)

// PushScreenMsg requests the router to push a screen over the active tab.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg requests the router to pop the top pushed screen.
type PopScreenMsg struct{}

// SwitchTabMsg requests the router to show tab Index.
type SwitchTabMsg struct {
	Index int
}

// Router holds a row of tab screens and a stack of screens pushed over
// the active tab.
type Router struct {
	tabs   []screen.Screen
	active int
	stack  []screen.Screen
}

// New creates a Router showing the first of tabs.
func New(tabs ...screen.Screen) *Router {
	return &Router{tabs: tabs}
}

// Tabs returns the tab titles.
func (r *Router) Tabs() []string {
	titles := make([]string, len(r.tabs))
	for i, t := range r.tabs {
		titles[i] = t.Title()
	}
	return titles
}

// ActiveTab returns the index of the visible tab.
func (r *Router) ActiveTab() int {
	return r.active
}

// Tab returns tab i.
func (r *Router) Tab(i int) screen.Screen {
	if i < 0 || i >= len(r.tabs) {
		return nil
	}
	return r.tabs[i]
}

// Switch shows tab i, dropping any pushed screens. Out-of-range indexes
// are ignored.
func (r *Router) Switch(i int) tea.Cmd {
	if i < 0 || i >= len(r.tabs) {
		return nil
	}
	r.stack = nil
	r.active = i
	return r.tabs[i].Init()
}

// Next cycles to the following tab, wrapping around. delta may be negative.
func (r *Router) Next(delta int) tea.Cmd {
	n := len(r.tabs)
	if n == 0 {
		return nil
	}
	return r.Switch(((r.active+delta)%n + n) % n)
}

// Push adds a screen on top of the stack and calls its Init().
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop removes the top pushed screen and re-initialises the one revealed.
// No-op when nothing is pushed.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) == 0 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	if a := r.Active(); a != nil {
		return a.Init()
	}
	return nil
}

// Active returns the screen receiving input.
func (r *Router) Active() screen.Screen {
	if len(r.stack) > 0 {
		return r.stack[len(r.stack)-1]
	}
	return r.Tab(r.active)
}

// Depth returns 1 plus the number of pushed screens.
func (r *Router) Depth() int {
	return 1 + len(r.stack)
}

// Update forwards a message to the active screen and handles navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case SwitchTabMsg:
		return r.Switch(msg.Index)
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	if len(r.stack) > 0 {
		r.stack[len(r.stack)-1] = updated
	} else {
		r.tabs[r.active] = updated
	}
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
