package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

const optionNotifications = "notifications"

// SettingsState holds the huh form for application settings.
type SettingsState struct {
	OriginalTheme string

	selectedTheme  string
	generalOptions []string

	form *huh.Form
}

func (*SettingsState) modalState() {}

func (s *SettingsState) PreferredWidth() int { return ModalWidthWide }

func (s *SettingsState) Title() string { return "Settings" }

func (s *SettingsState) Help() string {
	return "Up/Down: navigate  Space: toggle  Enter: save  Esc: cancel"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// SelectedTheme returns the theme currently chosen in the form.
func (s *SettingsState) SelectedTheme() string {
	return s.selectedTheme
}

// ThemeChanged reports whether the chosen theme differs from the one active
// when the modal opened.
func (s *SettingsState) ThemeChanged() bool {
	return s.selectedTheme != s.OriginalTheme
}

// NotificationsEnabled reports whether desktop notifications are checked.
func (s *SettingsState) NotificationsEnabled() bool {
	for _, opt := range s.generalOptions {
		if opt == optionNotifications {
			return true
		}
	}
	return false
}

// NewSettingsState creates a SettingsState with the current settings values.
// themes and themeDisplayNames are parallel slices.
func NewSettingsState(themes, themeDisplayNames []string, currentTheme string, notificationsEnabled bool) *SettingsState {
	s := &SettingsState{
		OriginalTheme: currentTheme,
		selectedTheme: currentTheme,
	}

	themeOptions := make([]huh.Option[string], len(themes))
	for i := range themes {
		name := themes[i]
		if i < len(themeDisplayNames) {
			name = themeDisplayNames[i]
		}
		themeOptions[i] = huh.NewOption(name, themes[i])
	}

	generalOpts := []huh.Option[string]{
		huh.NewOption("Desktop notifications for shares and invites", optionNotifications).
			Selected(notificationsEnabled),
	}
	if notificationsEnabled {
		s.generalOptions = append(s.generalOptions, optionNotifications)
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOptions...).
				Value(&s.selectedTheme),
			huh.NewMultiSelect[string]().
				Title("Options").
				Options(generalOpts...).
				Height(len(generalOpts)).
				Value(&s.generalOptions),
		),
	).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidthWide - 6).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}
