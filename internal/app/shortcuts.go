package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/simshare/internal/keys"
	"github.com/zhubert/simshare/internal/logger"
	"github.com/zhubert/simshare/internal/ui"
	"github.com/zhubert/simshare/internal/ui/modals"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key          string                              // The key binding (e.g., "s", "tab")
	DisplayKey   string                              // Display name in help; defaults to Key
	Description  string                              // Human-readable description
	Category     string                              // Section for help modal grouping
	Screen       *Screen                             // Only on this screen when set
	RequiresInfo bool                                // Not while the chat input is focused
	Handler      func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition    func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryNavigation = "Navigation"
	CategorySharing    = "Sharing"
	CategoryChat       = "Chat (when focused)"
	CategoryGeneral    = "General"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryNavigation,
	CategorySharing,
	CategoryChat,
	CategoryGeneral,
}

var (
	onHome   = func() *Screen { s := ScreenHome; return &s }()
	onDetail = func() *Screen { s := ScreenDetail; return &s }()
)

// ShortcutRegistry is the central registry of all keyboard shortcuts.
// Shortcuts added here appear in the help modal and can be triggered from it.
var ShortcutRegistry = []Shortcut{
	// Navigation
	{
		Key:          keys.Enter,
		DisplayKey:   "Enter",
		Description:  "Open selected simulation",
		Category:     CategoryNavigation,
		Screen:       onHome,
		RequiresInfo: true,
		Handler:      shortcutOpen,
	},
	{
		Key:         "/",
		Description: "Filter simulations",
		Category:    CategoryNavigation,
		Screen:      onHome,
		Handler:     shortcutSearch,
		Condition:   func(m *Model) bool { return !m.home.IsSearching() },
	},
	{
		Key:         keys.Tab,
		DisplayKey:  "Tab",
		Description: "Switch between details and chat",
		Category:    CategoryNavigation,
		Screen:      onDetail,
		Handler:     shortcutToggleFocus,
	},
	{
		Key:          keys.Escape,
		DisplayKey:   "Esc",
		Description:  "Back to simulations",
		Category:     CategoryNavigation,
		Screen:       onDetail,
		RequiresInfo: true,
		Handler:      shortcutBack,
	},

	// Sharing
	{
		Key:          "s",
		Description:  "Share with friends",
		Category:     CategorySharing,
		Screen:       onDetail,
		RequiresInfo: true,
		Handler:      shortcutShare,
	},
	{
		Key:          "i",
		Description:  "Invite by email",
		Category:     CategorySharing,
		Screen:       onDetail,
		RequiresInfo: true,
		Handler:      shortcutInvite,
	},
	{
		Key:          "c",
		Description:  "Copy share link",
		Category:     CategorySharing,
		Screen:       onDetail,
		RequiresInfo: true,
		Handler:      shortcutCopyLink,
	},

	// General
	// "?" (help) is handled in ExecuteShortcut to avoid an init cycle
	{
		Key:          ",",
		Description:  "Settings",
		Category:     CategoryGeneral,
		RequiresInfo: true,
		Handler:      shortcutSettings,
		Condition:    func(m *Model) bool { return !m.home.IsSearching() },
	},
	{
		Key:          "q",
		Description:  "Quit application",
		Category:     CategoryGeneral,
		RequiresInfo: true,
		Handler:      shortcutQuit,
		Condition:    func(m *Model) bool { return !m.home.IsSearching() },
	},
}

// helpShortcut is defined separately to avoid initialization cycle.
var helpShortcut = Shortcut{
	Key:          "?",
	Description:  "Show this help",
	Category:     CategoryGeneral,
	RequiresInfo: true,
	Condition:    func(m *Model) bool { return !m.home.IsSearching() },
}

// DisplayOnlyShortcuts are shown in help but not executable from the help modal.
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "↑/↓ or j/k", Description: "Move selection", Category: CategoryNavigation},
	{DisplayKey: "Enter", Description: "Send message", Category: CategoryChat},
	{DisplayKey: "Shift+Enter", Description: "Insert newline", Category: CategoryChat},
	{DisplayKey: "PgUp/PgDn", Description: "Scroll history", Category: CategoryChat},
	{DisplayKey: "Esc", Description: "Leave the input", Category: CategoryChat},
	{DisplayKey: "ctrl-c", Description: "Quit from anywhere", Category: CategoryGeneral},
}

// isShortcutApplicable checks if a shortcut's guards pass in the current state.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if s.Screen != nil && *s.Screen != m.screen {
		return false
	}
	if s.RequiresInfo && m.chatFocused() {
		return false
	}
	if s.Condition != nil && !s.Condition(m) {
		return false
	}
	return true
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if the shortcut was found and its guards passed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	if key == helpShortcut.Key {
		if !m.isShortcutApplicable(helpShortcut) {
			return m, nil, false
		}
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if !m.isShortcutApplicable(s) {
			logger.WithComponent("shortcuts").Debug("guard failed", "key", key, "screen", m.screen)
			return m, nil, false
		}
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// getApplicableHelpSections builds help sections from the shortcuts usable in
// the current state.
func (m *Model) getApplicableHelpSections(registry []Shortcut, displayOnly []Shortcut) []modals.HelpSection {
	categories := make(map[string][]modals.HelpShortcut)

	// Display-only entries have no Key, so picking them runs nothing.
	add := func(s Shortcut) {
		displayKey := s.DisplayKey
		if displayKey == "" {
			displayKey = s.Key
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:    displayKey,
			Desc:   s.Description,
			Action: s.Key,
		})
	}

	for _, s := range registry {
		if m.isShortcutApplicable(s) {
			add(s)
		}
	}
	if m.isShortcutApplicable(helpShortcut) {
		add(helpShortcut)
	}
	for _, s := range displayOnly {
		if s.Category == CategoryChat && m.screen != ScreenDetail {
			continue
		}
		add(s)
	}

	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok && len(shortcuts) > 0 {
			sections = append(sections, modals.HelpSection{
				Title:     cat,
				Shortcuts: shortcuts,
			})
		}
	}
	return sections
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutOpen(m *Model) (tea.Model, tea.Cmd) {
	sim, ok := m.home.Selected()
	if !ok {
		return m, nil
	}
	m.home.ExitSearch()
	return m, m.openSimulation(sim)
}

func shortcutSearch(m *Model) (tea.Model, tea.Cmd) {
	home, cmd := m.home.Update(keys.Press("/"))
	m.home = home
	return m, cmd
}

func shortcutToggleFocus(m *Model) (tea.Model, tea.Cmd) {
	m.toggleFocus()
	return m, nil
}

func shortcutBack(m *Model) (tea.Model, tea.Cmd) {
	m.goHome()
	return m, nil
}

func shortcutShare(m *Model) (tea.Model, tea.Cmd) {
	sim := m.detail.Simulation()
	friends := m.catalog.ShareableFriends()
	items := make([]modals.FriendItem, len(friends))
	for i, f := range friends {
		items[i] = modals.FriendItem{ID: f.ID, Name: f.Name, Status: f.Status}
	}
	m.modal.Show(modals.NewShareState(m.shareDialog, sim.Name, items))
	return m, nil
}

func shortcutInvite(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewInviteState(m.inviteDialog))
	return m, nil
}

func shortcutCopyLink(m *Model) (tea.Model, tea.Cmd) {
	return m, m.copyShareLink()
}

func shortcutSettings(m *Model) (tea.Model, tea.Cmd) {
	names := ui.ThemeNames()
	themes := make([]string, len(names))
	display := make([]string, len(names))
	for i, n := range names {
		themes[i] = string(n)
		display[i] = ui.GetTheme(n).Name
	}
	m.modal.Show(modals.NewSettingsState(themes, display, string(ui.CurrentThemeName()), m.config.GetNotificationsEnabled()))
	return m, nil
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	sections := m.getApplicableHelpSections(ShortcutRegistry, DisplayOnlyShortcuts)
	m.modal.Show(modals.NewHelpStateFromSections(sections))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
