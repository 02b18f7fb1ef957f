// Package keys provides string constants for Bubble Tea v2 key press events
// and the reverse mapping used to synthesize key presses in demos and tests.
//
// The constants are derived from tea.KeyPressMsg{...}.String() so they always
// match the runtime values. Single-character keys like "s" or "?" are not
// listed; they cannot be misspelled in a meaningful way.
package keys

import tea "charm.land/bubbletea/v2"

// Navigation keys
var (
	Up     = tea.KeyPressMsg{Code: tea.KeyUp}.String()     // "up"
	Down   = tea.KeyPressMsg{Code: tea.KeyDown}.String()   // "down"
	Home   = tea.KeyPressMsg{Code: tea.KeyHome}.String()   // "home"
	End    = tea.KeyPressMsg{Code: tea.KeyEnd}.String()    // "end"
	PgUp   = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()   // "pgup"
	PgDown = tea.KeyPressMsg{Code: tea.KeyPgDown}.String() // "pgdown"
)

// Action keys
var (
	Enter      = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                      // "enter"
	ShiftEnter = (tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}).String() // "shift+enter"
	Tab        = tea.KeyPressMsg{Code: tea.KeyTab}.String()                        // "tab"
	ShiftTab   = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String()   // "shift+tab"
	Space      = tea.KeyPressMsg{Code: tea.KeySpace}.String()                      // "space"
	Backspace  = tea.KeyPressMsg{Code: tea.KeyBackspace}.String()                  // "backspace"
	Escape     = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                     // "esc"
)

// Ctrl combinations
var (
	CtrlC = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String() // "ctrl+c"
	CtrlU = (tea.KeyPressMsg{Code: 'u', Mod: tea.ModCtrl}).String() // "ctrl+u"
	CtrlD = (tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl}).String() // "ctrl+d"
	CtrlJ = (tea.KeyPressMsg{Code: 'j', Mod: tea.ModCtrl}).String() // "ctrl+j"
)

// Press converts a key string back into a tea.KeyPressMsg. Unknown
// multi-character names fall back to a text-only press.
func Press(key string) tea.KeyPressMsg {
	switch key {
	case Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case ShiftEnter:
		return tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}
	case Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case Escape, "escape":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case Backspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case Space, " ":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case Home:
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case End:
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case CtrlU:
		return tea.KeyPressMsg{Code: 'u', Mod: tea.ModCtrl}
	case CtrlD:
		return tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl}
	case CtrlJ:
		return tea.KeyPressMsg{Code: 'j', Mod: tea.ModCtrl}
	default:
		runes := []rune(key)
		if len(runes) == 1 {
			return tea.KeyPressMsg{Code: runes[0], Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
