package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/simshare/internal/keys"
	"github.com/zhubert/simshare/internal/logger"
	"github.com/zhubert/simshare/internal/ui"
	"github.com/zhubert/simshare/internal/ui/modals"
)

// handleModalKey routes modal key events to the handler for the modal's state type.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	case *modals.ShareState:
		return m.handleShareModal(key, msg, s)
	case *modals.InviteState:
		return m.handleInviteModal(key, msg, s)
	case *modals.SettingsState:
		return m.handleSettingsModal(key, msg, s)
	case *modals.HelpState:
		return m.handleHelpModal(key, msg, s)
	case *modals.WelcomeState:
		return m.handleWelcomeModal(key, msg, s)
	case *modals.ChangelogState:
		return m.handleChangelogModal(key, msg, s)
	}

	if key == keys.Escape {
		m.modal.Hide()
	}
	return m, nil
}

// forwardToModal passes msg to the visible modal
func (m *Model) forwardToModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleShareModal handles key events for the Share modal.
func (m *Model) handleShareModal(key string, msg tea.KeyPressMsg, state *modals.ShareState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		state.Dialog.Close()
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		if !state.Dialog.Submit() {
			m.modal.SetError("Select at least one friend")
			return m, nil
		}
		m.modal.Hide()
		return m, m.drainNotices()
	}
	m.modal.SetError("")
	return m.forwardToModal(msg)
}

// handleInviteModal handles key events for the Invite modal.
func (m *Model) handleInviteModal(key string, msg tea.KeyPressMsg, state *modals.InviteState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		state.Dialog.Close()
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		if !state.Dialog.Submit() {
			m.modal.SetError("Enter an email address")
			return m, nil
		}
		m.modal.Hide()
		return m, m.drainNotices()
	}
	m.modal.SetError("")
	return m.forwardToModal(msg)
}

// handleSettingsModal handles key events for the Settings modal.
func (m *Model) handleSettingsModal(key string, msg tea.KeyPressMsg, state *modals.SettingsState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		m.config.SetNotificationsEnabled(state.NotificationsEnabled())
		if state.ThemeChanged() {
			ui.SetThemeByName(state.SelectedTheme())
			m.config.SetTheme(string(ui.CurrentThemeName()))
		}
		if err := m.config.Save(); err != nil {
			logger.WithComponent("app").Error("failed to save settings", "error", err)
			m.modal.SetError("Failed to save: " + err.Error())
			return m, nil
		}
		m.modal.Hide()
		return m, m.ShowFlashSuccess("Settings saved")
	}
	return m.forwardToModal(msg)
}

// handleHelpModal handles key events for the Help modal.
func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *modals.HelpState) (tea.Model, tea.Cmd) {
	// While filtering, Esc cancels the filter and Enter applies it.
	if state.IsFiltering() {
		return m.forwardToModal(msg)
	}

	switch key {
	case keys.Escape, "?", "q":
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		shortcut := state.GetSelectedShortcut()
		if shortcut != nil {
			m.modal.Hide()
			return m, func() tea.Msg {
				return modals.HelpShortcutTriggeredMsg{Key: shortcut.Action}
			}
		}
		return m, nil
	}
	return m.forwardToModal(msg)
}

// handleHelpShortcutTrigger runs a shortcut picked in the help modal.
func (m *Model) handleHelpShortcutTrigger(key string) (tea.Model, tea.Cmd) {
	if key == "" {
		return m, nil
	}
	result, cmd, _ := m.ExecuteShortcut(key)
	return result, cmd
}

// handleWelcomeModal handles key events for the Welcome modal.
func (m *Model) handleWelcomeModal(key string, _ tea.KeyPressMsg, _ *modals.WelcomeState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Enter, keys.Escape:
		m.config.MarkWelcomeShown()
		// New users start with no backlog of release notes
		if isReleaseVersion(m.version) {
			m.config.SetLastSeenVersion(m.version)
		}
		m.modal.Hide()
		return m, m.saveConfigOrFlash()
	}
	return m, nil
}

// handleChangelogModal handles key events for the What's New modal.
func (m *Model) handleChangelogModal(key string, msg tea.KeyPressMsg, _ *modals.ChangelogState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Enter, keys.Escape:
		m.config.SetLastSeenVersion(m.version)
		m.modal.Hide()
		return m, m.saveConfigOrFlash()
	}
	return m.forwardToModal(msg)
}
