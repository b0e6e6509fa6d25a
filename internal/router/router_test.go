package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/dsatrack/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title string
	inits int
	seen  int
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	s.seen++
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func newTabs() (*Router, []*stubScreen) {
	tabs := []*stubScreen{{title: "List"}, {title: "Map"}, {title: "Path"}}
	return New(tabs[0], tabs[1], tabs[2]), tabs
}

func TestNewShowsFirstTab(t *testing.T) {
	r, _ := newTabs()

	if r.ActiveTab() != 0 {
		t.Errorf("ActiveTab = %d, want 0", r.ActiveTab())
	}
	if r.Active().Title() != "List" {
		t.Errorf("Active = %q, want List", r.Active().Title())
	}
	if r.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", r.Depth())
	}
	if got := r.Tabs(); len(got) != 3 || got[2] != "Path" {
		t.Errorf("Tabs = %v", got)
	}
}

func TestSwitch(t *testing.T) {
	r, tabs := newTabs()

	r.Switch(2)
	if r.Active().Title() != "Path" {
		t.Errorf("Active = %q, want Path", r.Active().Title())
	}
	if tabs[2].inits != 1 {
		t.Errorf("Path Init ran %d times, want 1", tabs[2].inits)
	}

	r.Switch(7)
	if r.ActiveTab() != 2 {
		t.Errorf("out of range switch moved to %d", r.ActiveTab())
	}
}

func TestNextWraps(t *testing.T) {
	r, _ := newTabs()

	r.Next(-1)
	if r.ActiveTab() != 2 {
		t.Errorf("Next(-1) from 0 = %d, want 2", r.ActiveTab())
	}
	r.Next(1)
	if r.ActiveTab() != 0 {
		t.Errorf("Next(1) from 2 = %d, want 0", r.ActiveTab())
	}
}

func TestPushPop(t *testing.T) {
	r, tabs := newTabs()

	detail := &stubScreen{title: "Detail"}
	r.Push(detail)

	if r.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", r.Depth())
	}
	if r.Active() != detail {
		t.Error("pushed screen is not active")
	}
	if detail.inits != 1 {
		t.Error("expected Init() to run on pushed screen")
	}

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if detail.seen != 1 || tabs[0].seen != 0 {
		t.Error("message not routed to the pushed screen")
	}

	r.Pop()
	if r.Depth() != 1 || r.Active() != tabs[0] {
		t.Errorf("after Pop: depth %d, active %q", r.Depth(), r.Active().Title())
	}
	if tabs[0].inits != 1 {
		t.Errorf("revealed tab Init ran %d times, want 1", tabs[0].inits)
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r, _ := newTabs()
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("Depth after pop at bottom = %d, want 1", r.Depth())
	}
}

func TestSwitchDropsPushed(t *testing.T) {
	r, _ := newTabs()
	r.Push(&stubScreen{title: "Detail"})

	r.Update(SwitchTabMsg{Index: 1})

	if r.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", r.Depth())
	}
	if r.Active().Title() != "Map" {
		t.Errorf("Active = %q, want Map", r.Active().Title())
	}
}

func TestNavigationMsgs(t *testing.T) {
	r, _ := newTabs()

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "Detail"}})
	if r.Active().Title() != "Detail" {
		t.Errorf("Active = %q, want Detail", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "List" {
		t.Errorf("Active = %q, want List", r.Active().Title())
	}
	if r.View(80, 24) != "List" {
		t.Errorf("View = %q, want List", r.View(80, 24))
	}
}
