package modals

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/zhubert/simshare/internal/keys"
)

func testSections() []HelpSection {
	return []HelpSection{
		{
			Title: "Navigation",
			Shortcuts: []HelpShortcut{
				{Key: "Tab", Desc: "switch pane", Action: "tab"},
				{Key: "up/down", Desc: "navigate"},
			},
		},
		{
			Title: "Sharing",
			Shortcuts: []HelpShortcut{
				{Key: "s", Desc: "share simulation", Action: "s"},
				{Key: "i", Desc: "invite by email", Action: "i"},
			},
		},
	}
}

func TestNewHelpStateFromSections_StartsOnFirstRunnable(t *testing.T) {
	tests := []struct {
		name     string
		sections []HelpSection
		want     string
	}{
		{"first row runnable", testSections(), "tab"},
		{
			name: "leading display-only row skipped",
			sections: []HelpSection{{
				Title: "Chat",
				Shortcuts: []HelpShortcut{
					{Key: "Enter", Desc: "send"},
					{Key: "c", Desc: "copy link", Action: "c"},
				},
			}},
			want: "c",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewHelpStateFromSections(tt.sections)
			shortcut := state.GetSelectedShortcut()
			if shortcut == nil {
				t.Fatal("expected a shortcut to be selected")
			}
			if shortcut.Action != tt.want {
				t.Errorf("selected action = %q, want %q", shortcut.Action, tt.want)
			}
		})
	}
}

func TestNewHelpStateFromSections_NothingRunnable(t *testing.T) {
	state := NewHelpStateFromSections([]HelpSection{{
		Title:     "Chat",
		Shortcuts: []HelpShortcut{{Key: "Enter", Desc: "send"}},
	}})
	if got := state.GetSelectedShortcut(); got != nil {
		t.Errorf("expected no selection, got %+v", got)
	}
	state.Update(keys.Press(keys.Down))
	if got := state.GetSelectedShortcut(); got != nil {
		t.Errorf("expected no selection after down, got %+v", got)
	}
}

func TestHelpState_NavigationSkipsUnrunnableRows(t *testing.T) {
	state := NewHelpStateFromSections(testSections())

	// Down skips the display-only row and the Sharing header.
	steps := []struct {
		key  string
		want string
	}{
		{keys.Down, "s"},
		{keys.Down, "i"},
		{keys.Down, "i"}, // end of list
		{keys.Up, "s"},
		{keys.Up, "tab"},
		{keys.Up, "tab"}, // only a header above
	}
	for i, step := range steps {
		state.Update(keys.Press(step.key))
		shortcut := state.GetSelectedShortcut()
		if shortcut == nil || shortcut.Action != step.want {
			t.Fatalf("step %d (%s): selected %+v, want %q", i, step.key, shortcut, step.want)
		}
	}
}

func TestHelpState_RenderMarksDisplayOnlyRows(t *testing.T) {
	state := NewHelpStateFromSections(testSections())
	state.SetSize(ModalWidth, 20)

	lines := strings.Split(ansi.Strip(state.Render()), "\n")
	var selected, displayOnly string
	for _, line := range lines {
		switch {
		case strings.Contains(line, "switch pane"):
			selected = line
		case strings.Contains(line, "navigate") && !strings.Contains(line, "filter"):
			displayOnly = line
		}
	}
	if !strings.Contains(selected, "> ") {
		t.Errorf("selected row should carry the cursor, got %q", selected)
	}
	if displayOnly == "" || strings.Contains(displayOnly, ">") {
		t.Errorf("display-only row should render without the cursor, got %q", displayOnly)
	}
}

func TestHelpState_TitleAndHelp(t *testing.T) {
	state := NewHelpStateFromSections(testSections())
	if state.Title() != "Keyboard Shortcuts" {
		t.Errorf("unexpected title %q", state.Title())
	}
	if state.IsFiltering() {
		t.Error("should not be filtering initially")
	}
	if !strings.Contains(state.Help(), "filter") {
		t.Errorf("help should mention filtering, got %q", state.Help())
	}
}

func TestHelpState_Render(t *testing.T) {
	state := NewHelpStateFromSections(testSections())
	state.SetSize(ModalWidth, 20)

	out := ansi.Strip(state.Render())
	for _, want := range []string{"Keyboard Shortcuts", "Navigation", "share simulation"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSelectableList(t *testing.T) {
	out := ansi.Strip(RenderSelectableList([]string{"one", "two"}, 1))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "  one") {
		t.Errorf("unselected line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "> two") {
		t.Errorf("selected line = %q", lines[1])
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"a longer title", 10, "a longe..."},
	}
	for _, tt := range tests {
		if got := TruncateString(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}

func TestWelcomeState(t *testing.T) {
	state := &WelcomeState{}
	out := ansi.Strip(state.Render())
	if !strings.Contains(out, "Welcome to simshare") {
		t.Errorf("missing title:\n%s", out)
	}
	next, cmd := state.Update(keys.Press("x"))
	if next != state || cmd != nil {
		t.Error("welcome modal should ignore input")
	}
}
