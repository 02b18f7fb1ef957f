package modals

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/zhubert/simshare/internal/keys"
)

func TestChangelogState_Render(t *testing.T) {
	s := NewChangelogState([]ChangelogEntry{
		{Version: "0.4.0", Date: "2026-03-02", Changes: []string{"Highlighted code blocks"}},
		{Version: "0.3.0", Changes: []string{"Invites"}},
	})

	out := ansi.Strip(s.Render())
	for _, want := range []string{"What's New", "v0.4.0 (2026-03-02)", "- Highlighted code blocks", "v0.3.0", "- Invites", "Press Enter or Esc to dismiss"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "scroll for more") {
		t.Error("short changelog should not offer scrolling")
	}
}

func TestChangelogState_Scroll(t *testing.T) {
	changes := make([]string, ChangelogMaxVisible+5)
	for i := range changes {
		changes[i] = "change"
	}
	s := NewChangelogState([]ChangelogEntry{{Version: "1.0.0", Changes: changes}})

	// header line + one line per change
	maxOffset := len(changes) + 1 - ChangelogMaxVisible

	s.Update(keys.Press(keys.Up))
	if s.ScrollOffset != 0 {
		t.Fatalf("offset = %d, should not scroll above the top", s.ScrollOffset)
	}
	for range maxOffset + 3 {
		s.Update(keys.Press("j"))
	}
	if s.ScrollOffset != maxOffset {
		t.Errorf("offset = %d, want clamp at %d", s.ScrollOffset, maxOffset)
	}

	s.Update(tea.MouseWheelMsg{Button: tea.MouseWheelUp})
	if s.ScrollOffset != maxOffset-1 {
		t.Errorf("wheel up offset = %d, want %d", s.ScrollOffset, maxOffset-1)
	}

	if !strings.Contains(ansi.Strip(s.Render()), "scroll for more") {
		t.Error("long changelog should show the scroll hint")
	}
	if !strings.Contains(s.Help(), "scroll") {
		t.Errorf("Help() = %q", s.Help())
	}
}
