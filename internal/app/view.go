package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/simshare/internal/ui"
)

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.home.SetSize(ctx.TerminalWidth, ctx.ContentHeight)
	m.detail.SetSize(ctx.InfoWidth, ctx.ContentHeight)
	m.chat.SetSize(ctx.ChatWidth, ctx.ContentHeight)
}

// updateFooterMode picks the footer bindings for the current state
func (m *Model) updateFooterMode() {
	switch {
	case m.modal.IsVisible():
		m.footer.SetMode(ui.FooterModal)
	case m.screen == ScreenHome:
		m.footer.SetMode(ui.FooterHome)
	case m.focus == FocusChat:
		m.footer.SetMode(ui.FooterDetailChat)
	default:
		m.footer.SetMode(ui.FooterDetailInfo)
	}
}

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for demos and testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	m.updateFooterMode()

	var body string
	switch m.screen {
	case ScreenDetail:
		body = lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.detail.View(),
			m.chat.View(),
		)
	default:
		body = m.home.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		body,
		m.footer.View(),
	)
}
