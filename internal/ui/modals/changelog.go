package modals

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/simshare/internal/keys"
)

// ChangelogMaxVisible is the number of lines the What's New modal shows.
const ChangelogMaxVisible = 12

// changelogWrap is the text width of a single change line.
const changelogWrap = 45

// ChangelogState lists release notes the user has not seen yet.
type ChangelogState struct {
	Entries      []ChangelogEntry
	ScrollOffset int

	lines []string
}

func (*ChangelogState) modalState() {}

func (s *ChangelogState) Title() string { return "What's New" }

func (s *ChangelogState) Help() string {
	if len(s.lines) > ChangelogMaxVisible {
		return "up/down scroll  Enter/Esc: dismiss"
	}
	return "Press Enter or Esc to dismiss"
}

// buildLines flattens the entries into wrapped visual lines.
func (s *ChangelogState) buildLines() []string {
	versionStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	changeStyle := lipgloss.NewStyle().Foreground(ColorText).Width(changelogWrap)
	bullet := lipgloss.NewStyle().Foreground(ColorSecondary).Render("  - ")

	var lines []string
	for i, entry := range s.Entries {
		if i > 0 {
			lines = append(lines, "")
		}
		header := "v" + entry.Version
		if entry.Date != "" {
			header += " (" + entry.Date + ")"
		}
		lines = append(lines, versionStyle.Render(header))

		for _, change := range entry.Changes {
			for j, line := range strings.Split(changeStyle.Render(change), "\n") {
				if j == 0 {
					lines = append(lines, bullet+line)
				} else {
					lines = append(lines, "    "+line)
				}
			}
		}
	}
	return lines
}

func (s *ChangelogState) maxOffset() int {
	return max(0, len(s.lines)-ChangelogMaxVisible)
}

func (s *ChangelogState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	end := min(len(s.lines), s.ScrollOffset+ChangelogMaxVisible)
	content := lipgloss.JoinVertical(lipgloss.Left, s.lines[s.ScrollOffset:end]...)

	if len(s.lines) > ChangelogMaxVisible {
		content += "\n" + lipgloss.NewStyle().MarginTop(1).Render(mutedLine("(scroll for more)"))
	}

	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, content, help)
}

func (s *ChangelogState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case keys.Up, "k":
			if s.ScrollOffset > 0 {
				s.ScrollOffset--
			}
		case keys.Down, "j":
			if s.ScrollOffset < s.maxOffset() {
				s.ScrollOffset++
			}
		}
	case tea.MouseWheelMsg:
		if msg.Button == tea.MouseWheelUp && s.ScrollOffset > 0 {
			s.ScrollOffset--
		} else if msg.Button == tea.MouseWheelDown && s.ScrollOffset < s.maxOffset() {
			s.ScrollOffset++
		}
	}
	return s, nil
}

// NewChangelogState creates the modal for entries, newest first.
func NewChangelogState(entries []ChangelogEntry) *ChangelogState {
	s := &ChangelogState{Entries: entries}
	s.lines = s.buildLines()
	return s
}
