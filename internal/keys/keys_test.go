package keys

import "testing"

// TestKeyStringValues guards against Bubble Tea changing its key string format.
func TestKeyStringValues(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"Up", Up, "up"},
		{"Down", Down, "down"},
		{"Home", Home, "home"},
		{"End", End, "end"},
		{"PgUp", PgUp, "pgup"},
		{"PgDown", PgDown, "pgdown"},

		{"Enter", Enter, "enter"},
		{"ShiftEnter", ShiftEnter, "shift+enter"},
		{"Tab", Tab, "tab"},
		{"ShiftTab", ShiftTab, "shift+tab"},
		{"Space", Space, "space"},
		{"Backspace", Backspace, "backspace"},
		{"Escape", Escape, "esc"},

		{"CtrlC", CtrlC, "ctrl+c"},
		{"CtrlU", CtrlU, "ctrl+u"},
		{"CtrlD", CtrlD, "ctrl+d"},
		{"CtrlJ", CtrlJ, "ctrl+j"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("keys.%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestPressRoundTrip(t *testing.T) {
	for _, key := range []string{
		Up, Down, Home, End, PgUp, PgDown,
		Enter, ShiftEnter, Tab, ShiftTab, Space, Backspace, Escape,
		CtrlC, CtrlU, CtrlD, CtrlJ,
		"a", "s", "?", ",",
	} {
		t.Run(key, func(t *testing.T) {
			if got := Press(key).String(); got != key {
				t.Errorf("Press(%q).String() = %q", key, got)
			}
		})
	}
}

func TestPressAliases(t *testing.T) {
	if got := Press("escape").String(); got != Escape {
		t.Errorf("Press(escape) = %q, want %q", got, Escape)
	}
	if got := Press(" ").String(); got != Space {
		t.Errorf("Press(space char) = %q, want %q", got, Space)
	}
}
