package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// DefaultFlashDuration is how long a flash message stays in the footer
const DefaultFlashDuration = 3 * time.Second

// flashTickInterval is how often an active flash is checked for expiry
const flashTickInterval = 500 * time.Millisecond

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FooterMode selects which bindings the footer shows
type FooterMode int

const (
	FooterHome FooterMode = iota
	FooterDetailChat
	FooterDetailInfo
	FooterModal
)

// FlashType is the severity of a flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// FlashMessage is a transient status line that replaces the bindings
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) > f.Duration
}

// FlashTickMsg is sent periodically while a flash message is visible
type FlashTickMsg time.Time

// FlashTick schedules the next flash expiry check
func FlashTick() tea.Cmd {
	return tea.Tick(flashTickInterval, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	mode         FooterMode
	bindings     map[FooterMode][]KeyBinding
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: map[FooterMode][]KeyBinding{
			FooterHome: {
				{Key: "↑/↓", Desc: "navigate"},
				{Key: "enter", Desc: "open"},
				{Key: ",", Desc: "settings"},
				{Key: "?", Desc: "help"},
				{Key: "q", Desc: "quit"},
			},
			FooterDetailChat: {
				{Key: "enter", Desc: "send"},
				{Key: "shift+enter", Desc: "newline"},
				{Key: "tab", Desc: "switch pane"},
				{Key: "pgup/dn", Desc: "scroll"},
			},
			FooterDetailInfo: {
				{Key: "s", Desc: "share"},
				{Key: "i", Desc: "invite"},
				{Key: "c", Desc: "copy link"},
				{Key: "tab", Desc: "switch pane"},
				{Key: "esc", Desc: "back"},
			},
			FooterModal: {
				{Key: "enter", Desc: "confirm"},
				{Key: "esc", Desc: "cancel"},
			},
		},
	}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetMode switches the footer's binding set
func (f *Footer) SetMode(mode FooterMode) {
	f.mode = mode
}

// Mode returns the current binding set
func (f *Footer) Mode() FooterMode {
	return f.mode
}

// SetBindings replaces the bindings shown for a mode
func (f *Footer) SetBindings(mode FooterMode, bindings []KeyBinding) {
	f.bindings[mode] = bindings
}

// SetFlash shows a flash message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a flash message for a custom duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes any flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired removes an expired flash and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		return FooterStyle.Width(f.width).Render(f.renderFlash())
	}

	var parts []string
	for _, b := range f.bindings[f.mode] {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	if f.width > InputPaddingWidth {
		content = ansi.Truncate(content, f.width-InputPaddingWidth, "…")
	}
	return FooterStyle.Width(f.width).Render(content)
}

func (f *Footer) renderFlash() string {
	var icon string
	style := FooterFlashStyle
	switch f.flashMessage.Type {
	case FlashSuccess:
		icon = "✓ "
	case FlashWarning:
		icon = "! "
		style = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	case FlashError:
		icon = "✗ "
		style = FooterErrorStyle
	default:
		icon = "• "
		style = lipgloss.NewStyle().Foreground(ColorInfo)
	}
	return style.Render(icon + f.flashMessage.Text)
}
