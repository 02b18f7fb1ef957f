package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"

	"github.com/zhubert/simshare/internal/catalog"
	"github.com/zhubert/simshare/internal/format"
	"github.com/zhubert/simshare/internal/keys"
)

// Detail renders a simulation's summary and the friends list
type Detail struct {
	simulation  catalog.Simulation
	friends     []catalog.Friend
	selectedIdx int
	width       int
	height      int
	focused     bool
}

// NewDetail creates an empty detail view
func NewDetail() *Detail {
	return &Detail{}
}

// SetSimulation loads a simulation and the friends to list next to it
func (d *Detail) SetSimulation(sim catalog.Simulation, friends []catalog.Friend) {
	d.simulation = sim
	d.friends = friends
	d.selectedIdx = 0
}

// Simulation returns the simulation being shown
func (d *Detail) Simulation() catalog.Simulation {
	return d.simulation
}

// SetSize sets the panel dimensions
func (d *Detail) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// SetFocused sets the focus state
func (d *Detail) SetFocused(focused bool) {
	d.focused = focused
}

// IsFocused returns the focus state
func (d *Detail) IsFocused() bool {
	return d.focused
}

// SelectedFriend returns the highlighted friend
func (d *Detail) SelectedFriend() (catalog.Friend, bool) {
	if d.selectedIdx < 0 || d.selectedIdx >= len(d.friends) {
		return catalog.Friend{}, false
	}
	return d.friends[d.selectedIdx], true
}

// Update moves the friends list selection
func (d *Detail) Update(msg tea.Msg) (*Detail, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !d.focused {
		return d, nil
	}
	switch keyMsg.String() {
	case keys.Up, "k":
		if d.selectedIdx > 0 {
			d.selectedIdx--
		}
	case keys.Down, "j":
		if d.selectedIdx < len(d.friends)-1 {
			d.selectedIdx++
		}
	}
	return d, nil
}

// StatusBadge renders a friend status as a colored pill
func StatusBadge(status string) string {
	label := strings.ToLower(status)
	if label == "" {
		label = "unknown"
	}
	return BadgeStyle.Background(lipgloss.Color(format.StatusColor(status))).Render(label)
}

// Avatar renders a name's initials in a small block
func Avatar(name string) string {
	initials := format.Initials(name)
	if initials == "" {
		initials = "?"
	}
	return AvatarStyle.Render(initials)
}

func (d *Detail) renderSummary(innerWidth int) string {
	s := d.simulation
	row := func(label, value string) string {
		return SummaryLabelStyle.Render(format.PadRight(label, 14)) + SummaryValueStyle.Render(value)
	}

	rows := []string{
		PanelTitleStyle.Render(format.Truncate(s.Name, max(1, innerWidth-2))),
		row("Analysis", s.AnalysisType),
		row("Run", runStatusStyle(s.RunStatus).Render(strings.ToLower(s.RunStatus))),
		row("Owner", s.Owner),
		row("Mesh", fmt.Sprintf("%s nodes / %s el.", humanize.Comma(int64(s.Nodes)), humanize.Comma(int64(s.Elements)))),
	}
	if s.RunStatus == catalog.RunCompleted {
		rows = append(rows,
			row("Max displ.", fmt.Sprintf("%.1f mm", s.MaxDisplacementMM)),
			row("Max stress", fmt.Sprintf("%.1f MPa", s.MaxStressMPa)),
		)
	}
	rows = append(rows, row("Created", s.CreatedAt.Format("2006-01-02 15:04")))
	rows = append(rows, ListMetaStyle.Render(format.Truncate(s.ShareLink(), max(1, innerWidth))))
	return strings.Join(rows, "\n")
}

func (d *Detail) renderFriends(innerWidth int) string {
	lines := []string{PanelTitleStyle.Render(fmt.Sprintf("Friends (%d)", len(d.friends)))}
	if len(d.friends) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true).Render("No friends yet. Press i to invite."))
		return strings.Join(lines, "\n")
	}

	for i, f := range d.friends {
		badge := StatusBadge(f.Status)
		avatar := Avatar(f.Name)
		nameWidth := innerWidth - lipgloss.Width(avatar) - lipgloss.Width(badge) - 4
		name := format.PadRight(format.Truncate(f.Name, max(1, nameWidth)), max(1, nameWidth))

		line := avatar + " " + name + " " + badge
		style := ListItemStyle
		if d.focused && i == d.selectedIdx {
			style = ListSelectedStyle
		}
		lines = append(lines, style.Render(line))
	}
	return strings.Join(lines, "\n")
}

// View renders the detail panel
func (d *Detail) View() string {
	panelStyle := PanelStyle
	if d.focused {
		panelStyle = PanelFocusedStyle
	}
	innerWidth := GetViewContext().InnerWidth(d.width)

	content := d.renderSummary(innerWidth) + "\n\n" + d.renderFriends(innerWidth)
	return panelStyle.Width(d.width).Height(d.height).Render(content)
}
