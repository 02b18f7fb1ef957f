package modals

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// WelcomeState is shown once on first launch.
type WelcomeState struct{}

func (*WelcomeState) modalState() {}

func (s *WelcomeState) Title() string { return "Welcome to simshare" }

func (s *WelcomeState) Help() string { return "Enter or Esc: get started" }

func (s *WelcomeState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	keyStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	lines := []string{
		"Browse structural simulation results, talk them",
		"over with colleagues and share them in a few keys.",
		"",
		keyStyle.Render("enter") + "  open a simulation",
		keyStyle.Render("s") + "      share with friends",
		keyStyle.Render("i") + "      invite by email",
		keyStyle.Render("?") + "      all shortcuts",
	}
	body := lipgloss.NewStyle().
		Foreground(ColorText).
		Render(strings.Join(lines, "\n"))

	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, body, help)
}

func (s *WelcomeState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return s, nil
}
