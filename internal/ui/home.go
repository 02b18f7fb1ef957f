package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/simshare/internal/catalog"
	"github.com/zhubert/simshare/internal/keys"
)

// Home lists the simulations under the animated banner
type Home struct {
	banner       *Banner
	simulations  []catalog.Simulation
	filtered     []catalog.Simulation
	recent       map[string]bool
	selectedIdx  int
	scrollOffset int
	width        int
	height       int

	searchMode  bool
	searchInput textinput.Model
}

// NewHome creates an empty home view
func NewHome() *Home {
	ti := textinput.New()
	ti.Placeholder = "filter simulations"
	ti.CharLimit = ModalInputCharLimit
	return &Home{
		banner:      NewBanner(),
		recent:      map[string]bool{},
		searchInput: ti,
	}
}

// Banner returns the animated banner
func (h *Home) Banner() *Banner {
	return h.banner
}

// SetSize sets the home view dimensions
func (h *Home) SetSize(width, height int) {
	h.width = width
	h.height = height
	h.banner.SetWidth(width - BorderSize)
	h.searchInput.SetWidth(max(1, width-BorderSize-4))
}

// SetSimulations replaces the listed simulations, keeping the selection
// on the same id when it is still present.
func (h *Home) SetSimulations(sims []catalog.Simulation) {
	selected, hadSelection := h.Selected()
	h.simulations = sims
	h.applyFilter()
	if hadSelection {
		h.SelectID(selected.ID)
	}
}

// SetRecent marks recently opened simulations
func (h *Home) SetRecent(ids []string) {
	h.recent = make(map[string]bool, len(ids))
	for _, id := range ids {
		h.recent[id] = true
	}
}

// Selected returns the highlighted simulation
func (h *Home) Selected() (catalog.Simulation, bool) {
	if h.selectedIdx < 0 || h.selectedIdx >= len(h.filtered) {
		return catalog.Simulation{}, false
	}
	return h.filtered[h.selectedIdx], true
}

// SelectID moves the highlight to the simulation with the given id
func (h *Home) SelectID(id string) bool {
	for i, s := range h.filtered {
		if s.ID == id {
			h.selectedIdx = i
			return true
		}
	}
	return false
}

// IsSearching reports whether the filter input is active
func (h *Home) IsSearching() bool {
	return h.searchMode
}

func (h *Home) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(h.searchInput.Value()))
	if !h.searchMode || query == "" {
		h.filtered = h.simulations
	} else {
		h.filtered = nil
		for _, s := range h.simulations {
			if strings.Contains(strings.ToLower(s.Name), query) ||
				strings.Contains(strings.ToLower(s.AnalysisType), query) {
				h.filtered = append(h.filtered, s)
			}
		}
	}
	if h.selectedIdx >= len(h.filtered) {
		h.selectedIdx = max(0, len(h.filtered)-1)
	}
}

func (h *Home) startSearch() tea.Cmd {
	h.searchMode = true
	h.searchInput.Reset()
	h.applyFilter()
	return h.searchInput.Focus()
}

func (h *Home) stopSearch() {
	h.searchMode = false
	h.searchInput.Blur()
	h.searchInput.Reset()
	h.applyFilter()
}

// ExitSearch leaves filter mode and shows the full list again.
func (h *Home) ExitSearch() {
	if h.searchMode {
		h.stopSearch()
	}
}

// Update handles navigation and the filter input. Enter is left to the caller.
func (h *Home) Update(msg tea.Msg) (*Home, tea.Cmd) {
	if _, ok := msg.(BannerTickMsg); ok {
		h.banner.Advance()
		return h, BannerTick()
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return h, nil
	}

	key := keyMsg.String()
	switch key {
	case keys.Up, "k":
		if key == "k" && h.searchMode {
			break
		}
		if h.selectedIdx > 0 {
			h.selectedIdx--
		}
		return h, nil
	case keys.Down, "j":
		if key == "j" && h.searchMode {
			break
		}
		if h.selectedIdx < len(h.filtered)-1 {
			h.selectedIdx++
		}
		return h, nil
	case keys.Home:
		h.selectedIdx = 0
		return h, nil
	case keys.End:
		h.selectedIdx = max(0, len(h.filtered)-1)
		return h, nil
	case "/":
		if !h.searchMode {
			return h, h.startSearch()
		}
	case keys.Escape:
		if h.searchMode {
			h.stopSearch()
			return h, nil
		}
	}

	if h.searchMode {
		var cmd tea.Cmd
		h.searchInput, cmd = h.searchInput.Update(msg)
		h.applyFilter()
		return h, cmd
	}
	return h, nil
}

// renderRow renders one simulation line
func (h *Home) renderRow(s catalog.Simulation, innerWidth int) string {
	marker := "  "
	if h.recent[s.ID] {
		marker = "• "
	}
	status := runStatusStyle(s.RunStatus).Render(strings.ToLower(s.RunStatus))
	meta := ListMetaStyle.Render(fmt.Sprintf("%s · %s", s.AnalysisType, s.CreatedAt.Format("Jan 2")))

	left := marker + s.Name
	right := meta + "  " + status
	gap := innerWidth - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return ansi.Truncate(left+" "+right, innerWidth-2, "…")
	}
	return left + strings.Repeat(" ", gap) + right
}

// runStatusStyle colors an analysis run status
func runStatusStyle(status string) lipgloss.Style {
	switch status {
	case catalog.RunCompleted:
		return lipgloss.NewStyle().Foreground(ColorSuccess)
	case catalog.RunRunning:
		return lipgloss.NewStyle().Foreground(ColorInfo)
	case catalog.RunFailed:
		return lipgloss.NewStyle().Foreground(ColorError)
	default:
		return lipgloss.NewStyle().Foreground(ColorMuted)
	}
}

// View renders the home view
func (h *Home) View() string {
	ctx := GetViewContext()
	innerWidth := ctx.InnerWidth(h.width)
	innerHeight := ctx.InnerHeight(h.height) - BannerHeight - TitleHeight

	var header string
	if h.searchMode {
		searchStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
		header = searchStyle.Render("/") + " " + h.searchInput.View()
	} else {
		header = PanelTitleStyle.Render("Simulations")
	}

	var lines []string
	if len(h.filtered) == 0 {
		empty := "No simulations."
		if h.searchMode {
			empty = "No matches."
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true).Render(empty))
	} else {
		for i, s := range h.filtered {
			style := ListItemStyle.Width(innerWidth)
			if i == h.selectedIdx {
				style = ListSelectedStyle.Width(innerWidth)
			}
			lines = append(lines, style.Render(h.renderRow(s, innerWidth)))
		}
	}

	// Keep the selection visible
	visible := max(1, innerHeight)
	if h.selectedIdx < h.scrollOffset {
		h.scrollOffset = h.selectedIdx
	} else if h.selectedIdx >= h.scrollOffset+visible {
		h.scrollOffset = h.selectedIdx - visible + 1
	}
	h.scrollOffset = max(0, min(h.scrollOffset, len(lines)-visible))
	end := min(len(lines), h.scrollOffset+visible)
	list := strings.Join(lines[h.scrollOffset:end], "\n")

	content := lipgloss.JoinVertical(lipgloss.Left, h.banner.View(), header, list)
	return PanelStyle.Width(h.width).Height(h.height).Render(content)
}
