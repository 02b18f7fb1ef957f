package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/simshare/internal/clipboard"
	"github.com/zhubert/simshare/internal/logger"
	"github.com/zhubert/simshare/internal/notification"
	"github.com/zhubert/simshare/internal/share"
)

// NotificationFailedMsg reports a desktop notification that could not be shown
type NotificationFailedMsg struct {
	Err error
}

// notifier returns the sink handed to the share and invite dialogs. Notices
// are queued and turned into commands once the submitting handler returns.
func (m *Model) notifier() share.Notifier {
	return share.NotifierFunc(func(n share.Notice) {
		m.pendingNotices = append(m.pendingNotices, n)
	})
}

// drainNotices logs queued notices, flashes the newest one and, when enabled,
// sends desktop notifications.
func (m *Model) drainNotices() tea.Cmd {
	if len(m.pendingNotices) == 0 {
		return nil
	}
	notices := m.pendingNotices
	m.pendingNotices = nil

	log := logger.WithComponent("share")
	var cmds []tea.Cmd
	for _, n := range notices {
		switch n := n.(type) {
		case share.ShareNotice:
			log.Info("simulation shared",
				"simulation", n.SimulationID,
				"friends", n.FriendIDs,
				"hasMessage", n.Message != "")
		case share.InviteNotice:
			log.Info("invite sent", "email", n.Email)
		}
		m.sentNotices = append(m.sentNotices, n)

		if m.config.GetNotificationsEnabled() {
			cmds = append(cmds, desktopNotify(n))
		}
	}

	cmds = append(cmds, m.ShowFlashSuccess(notices[len(notices)-1].Summary()))
	return tea.Batch(cmds...)
}

// desktopNotify sends n as a desktop notification off the update loop
func desktopNotify(n share.Notice) tea.Cmd {
	return func() tea.Msg {
		if err := notification.SendNotice(n); err != nil {
			return NotificationFailedMsg{Err: err}
		}
		return nil
	}
}

// copyShareLink copies the open simulation's link through the terminal
// (OSC 52) and the system clipboard.
func (m *Model) copyShareLink() tea.Cmd {
	link := m.detail.Simulation().ShareLink()
	log := logger.WithComponent("app")

	if err := clipboard.WriteText(link); err != nil {
		log.Warn("system clipboard unavailable", "error", err)
		return tea.Batch(
			tea.SetClipboard(link),
			m.ShowFlashWarning("Copied via terminal only: system clipboard unavailable"),
		)
	}
	log.Debug("share link copied", "link", link)
	return tea.Batch(
		tea.SetClipboard(link),
		m.ShowFlashSuccess("Share link copied"),
	)
}
