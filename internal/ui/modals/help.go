package modals

import (
	"fmt"
	"io"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/list"
	"charm.land/lipgloss/v2"
)

const helpKeyColumn = 16

// helpRow is one line of the help list: a section header or a shortcut.
type helpRow struct {
	header   string
	shortcut HelpShortcut
}

func (r helpRow) FilterValue() string {
	if r.header != "" {
		return ""
	}
	return r.shortcut.Key + " " + r.shortcut.Desc
}

// runnable reports whether picking the row does something.
func (r helpRow) runnable() bool {
	return r.header == "" && r.shortcut.Action != ""
}

type helpDelegate struct{}

func (helpDelegate) Height() int                            { return 1 }
func (helpDelegate) Spacing() int                           { return 0 }
func (helpDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (helpDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	row, ok := item.(helpRow)
	if !ok {
		return
	}
	if row.header != "" {
		fmt.Fprint(w, lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary).Render(row.header))
		return
	}

	keyStyle := lipgloss.NewStyle().Bold(true).Width(helpKeyColumn).Foreground(ColorPrimary)
	descStyle := lipgloss.NewStyle().Foreground(ColorText)
	prefix := "  "
	switch {
	case !row.runnable():
		// Keys that only work inside the chat input or the lists
		keyStyle = keyStyle.Bold(false).Foreground(ColorTextMuted)
		descStyle = descStyle.Foreground(ColorTextMuted)
	case index == m.Index():
		keyStyle = keyStyle.Foreground(ColorTextInverse).Background(ColorPrimary)
		descStyle = descStyle.Foreground(ColorTextInverse).Background(ColorPrimary)
		prefix = "> "
	}
	fmt.Fprint(w, prefix+keyStyle.Render(row.shortcut.Key)+descStyle.Render(row.shortcut.Desc))
}

// HelpState lists the shortcuts usable on the current screen. The cursor
// only rests on shortcuts that can be run from the list.
type HelpState struct {
	list list.Model
}

func (*HelpState) modalState() {}

func (s *HelpState) Title() string { return "Keyboard Shortcuts" }

func (s *HelpState) Help() string {
	if s.list.SettingFilter() {
		return "Type to filter  Enter: apply  Esc: cancel"
	}
	return "/: filter  up/down: navigate  Enter: run  Esc: close"
}

func (s *HelpState) Render() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		ModalTitleStyle.Render(s.Title()),
		s.list.View(),
		ModalHelpStyle.Render(s.Help()),
	)
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	before := s.list.Index()
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	if !s.list.SettingFilter() {
		s.settle(before)
	}
	return s, cmd
}

// settle moves the cursor off headers and display-only rows, continuing in
// the direction it was moving. With nowhere to go it returns to from.
func (s *HelpState) settle(from int) {
	items := s.list.VisibleItems()
	idx := s.list.Index()
	if idx < 0 || idx >= len(items) || items[idx].(helpRow).runnable() {
		return
	}
	step := 1
	if idx < from {
		step = -1
	}
	for _, dir := range []int{step, -step} {
		for i := idx + dir; i >= 0 && i < len(items); i += dir {
			if items[i].(helpRow).runnable() {
				s.list.Select(i)
				return
			}
		}
		if from >= 0 && from < len(items) && items[from].(helpRow).runnable() {
			s.list.Select(from)
			return
		}
	}
}

// SetSize fits the list inside the modal frame.
func (s *HelpState) SetSize(width, height int) {
	const titleAndHelpOverhead = 4
	s.list.SetSize(width, max(1, height-titleAndHelpOverhead))
}

// GetSelectedShortcut returns the shortcut under the cursor, or nil when the
// cursor is not on a runnable shortcut.
func (s *HelpState) GetSelectedShortcut() *HelpShortcut {
	row, ok := s.list.SelectedItem().(helpRow)
	if !ok || !row.runnable() {
		return nil
	}
	return &row.shortcut
}

// IsFiltering returns whether the user is currently typing in the filter.
func (s *HelpState) IsFiltering() bool {
	return s.list.SettingFilter()
}

// NewHelpStateFromSections builds the help list with the cursor on the first
// runnable shortcut.
func NewHelpStateFromSections(sections []HelpSection) *HelpState {
	var items []list.Item
	for _, section := range sections {
		items = append(items, helpRow{header: section.Title})
		for _, shortcut := range section.Shortcuts {
			items = append(items, helpRow{shortcut: shortcut})
		}
	}

	l := list.New(items, helpDelegate{}, ModalWidth, HelpModalMaxVisible)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.SetFilteringEnabled(true)

	for i, item := range items {
		if item.(helpRow).runnable() {
			l.Select(i)
			break
		}
	}
	return &HelpState{list: l}
}
