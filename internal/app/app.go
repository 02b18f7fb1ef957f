// Package app wires the simshare screens, modals and domain state into a
// single Bubble Tea model.
package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/simshare/internal/catalog"
	"github.com/zhubert/simshare/internal/changelog"
	"github.com/zhubert/simshare/internal/chat"
	"github.com/zhubert/simshare/internal/config"
	"github.com/zhubert/simshare/internal/keys"
	"github.com/zhubert/simshare/internal/logger"
	"github.com/zhubert/simshare/internal/share"
	"github.com/zhubert/simshare/internal/ui"
	"github.com/zhubert/simshare/internal/ui/modals"
)

// Screen is the top-level view being shown
type Screen int

const (
	ScreenHome Screen = iota
	ScreenDetail
)

// String returns a human-readable name for the screen
func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "Home"
	case ScreenDetail:
		return "Detail"
	default:
		return "Unknown"
	}
}

// Focus represents which detail pane is focused
type Focus int

const (
	FocusInfo Focus = iota
	FocusChat
)

// StartupModalMsg is sent on app start to trigger the welcome modal
type StartupModalMsg struct{}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	catalog *catalog.Catalog
	version string

	header *ui.Header
	footer *ui.Footer
	home   *ui.Home
	detail *ui.Detail
	chat   *ui.ChatPanel
	modal  *ui.Modal

	width  int
	height int
	screen Screen
	focus  Focus

	// One composer per simulation so drafts and history survive navigation.
	composers map[string]*chat.Composer

	shareDialog  *share.ShareDialog
	inviteDialog *share.InviteDialog

	// Notices emitted during the current update, turned into commands by
	// drainNotices.
	pendingNotices []share.Notice
	sentNotices    []share.Notice

	// Commands produced before the program starts, run by Init.
	startupCmds []tea.Cmd

	now func() time.Time
}

// New creates a new app model
func New(cfg *config.Config, cat *catalog.Catalog, version string) *Model {
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	m := &Model{
		config:    cfg,
		catalog:   cat,
		version:   version,
		header:    ui.NewHeader(),
		footer:    ui.NewFooter(),
		home:      ui.NewHome(),
		detail:    ui.NewDetail(),
		chat:      ui.NewChatPanel(),
		modal:     ui.NewModal(),
		screen:    ScreenHome,
		focus:     FocusChat,
		composers: make(map[string]*chat.Composer),
		now:       time.Now,
	}
	m.inviteDialog = share.NewInviteDialog(m.notifier())

	m.home.SetSimulations(cat.Simulations())
	m.home.SetRecent(cfg.GetRecentSimulations())

	return m
}

// Screen returns the screen currently shown
func (m *Model) Screen() Screen {
	return m.screen
}

// Focus returns the focused detail pane
func (m *Model) Focus() Focus {
	return m.focus
}

// Modal exposes the modal container for tests and demos
func (m *Model) Modal() *ui.Modal {
	return m.modal
}

// SentNotices returns every share and invite notice emitted so far
func (m *Model) SentNotices() []share.Notice {
	return m.sentNotices
}

// SetClock replaces the clock used for new messages and seeded history.
// Demos pin it so rendered timestamps are reproducible.
func (m *Model) SetClock(now func() time.Time) {
	m.now = now
	m.chat.Now = now
}

// ComposerFor returns the composer of a simulation, seeding it with the
// mocked discussion on first use.
func (m *Model) ComposerFor(simulationID string) *chat.Composer {
	if c, ok := m.composers[simulationID]; ok {
		return c
	}
	c := chat.NewComposer(nil, nil)
	c.Now = m.now
	c.Seed(m.catalog.History(simulationID, m.now()))
	m.composers[simulationID] = c
	return c
}

// OpenSimulation switches to the detail view of the simulation with id.
// Follow-up commands, such as the flash for a failed config save, run when
// the program calls Init.
func (m *Model) OpenSimulation(id string) error {
	sim, err := m.catalog.Simulation(id)
	if err != nil {
		return err
	}
	if cmd := m.openSimulation(sim); cmd != nil {
		m.startupCmds = append(m.startupCmds, cmd)
	}
	return nil
}

func (m *Model) openSimulation(sim catalog.Simulation) tea.Cmd {
	log := logger.WithComponent("app")
	log.Info("opening simulation", "id", sim.ID)

	m.screen = ScreenDetail
	m.home.SelectID(sim.ID)
	m.header.SetSimulation(sim.Name, sim.AnalysisType)
	m.detail.SetSimulation(sim, m.catalog.Friends())
	m.chat.Now = m.now
	m.chat.Bind(m.ComposerFor(sim.ID))
	m.shareDialog = share.NewShareDialog(sim.ID, m.notifier())
	m.setFocus(FocusChat)

	m.config.TouchSimulation(sim.ID)
	m.home.SetRecent(m.config.GetRecentSimulations())
	return m.saveConfigOrFlash()
}

// goHome leaves the detail view
func (m *Model) goHome() {
	m.chat.Unbind()
	m.shareDialog = nil
	m.screen = ScreenHome
	m.header.SetSimulation("", "")
	m.chat.SetFocused(false)
	m.detail.SetFocused(false)
}

func (m *Model) setFocus(f Focus) {
	m.focus = f
	m.chat.SetFocused(f == FocusChat)
	m.detail.SetFocused(f == FocusInfo)
}

func (m *Model) toggleFocus() {
	if m.focus == FocusChat {
		m.setFocus(FocusInfo)
	} else {
		m.setFocus(FocusChat)
	}
}

// chatFocused reports whether key presses belong to the chat input
func (m *Model) chatFocused() bool {
	return m.screen == ScreenDetail && m.focus == FocusChat
}

// saveConfigOrFlash saves the config and returns a flash command on failure
func (m *Model) saveConfigOrFlash() tea.Cmd {
	if err := m.config.Save(); err != nil {
		logger.WithComponent("app").Error("failed to save config", "error", err)
		return m.ShowFlashError("Failed to save settings")
	}
	return nil
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	cmds := append([]tea.Cmd{
		func() tea.Msg { return StartupModalMsg{} },
		ui.BannerTick(),
	}, m.startupCmds...)
	m.startupCmds = nil
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case StartupModalMsg:
		return m.handleStartupModals()

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() || !m.footer.HasFlash() {
			return m, nil
		}
		return m, ui.FlashTick()

	case ui.BannerTickMsg:
		home, cmd := m.home.Update(msg)
		m.home = home
		return m, cmd

	case ui.ChatFlashDoneMsg:
		chatPanel, cmd := m.chat.Update(msg)
		m.chat = chatPanel
		return m, cmd

	case NotificationFailedMsg:
		logger.WithComponent("notification").Warn("desktop notification failed", "error", msg.Err)
		return m, m.ShowFlashWarning("Desktop notification failed")

	case modals.HelpShortcutTriggeredMsg:
		return m.handleHelpShortcutTrigger(msg.Key)

	case tea.PasteMsg:
		return m.handlePaste(msg)

	case tea.MouseWheelMsg:
		if m.modal.IsVisible() {
			return m.forwardToModal(msg)
		}
		if m.screen == ScreenDetail && msg.X >= ui.GetViewContext().InfoWidth {
			chatPanel, cmd := m.chat.Update(msg)
			m.chat = chatPanel
			return m, cmd
		}
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == keys.CtrlC {
		return m, tea.Quit
	}

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	if result, cmd, ok := m.ExecuteShortcut(key); ok {
		return result, cmd
	}

	switch m.screen {
	case ScreenHome:
		home, cmd := m.home.Update(msg)
		m.home = home
		return m, cmd
	case ScreenDetail:
		if m.focus == FocusChat {
			if key == keys.Escape {
				m.setFocus(FocusInfo)
				return m, nil
			}
			chatPanel, cmd := m.chat.Update(msg)
			m.chat = chatPanel
			return m, cmd
		}
		detail, cmd := m.detail.Update(msg)
		m.detail = detail
		return m, cmd
	}
	return m, nil
}

func (m *Model) handlePaste(msg tea.PasteMsg) (tea.Model, tea.Cmd) {
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}
	if m.chatFocused() {
		chatPanel, cmd := m.chat.Update(msg)
		m.chat = chatPanel
		return m, cmd
	}
	if m.screen == ScreenHome && m.home.IsSearching() {
		home, cmd := m.home.Update(msg)
		m.home = home
		return m, cmd
	}
	return m, nil
}

// handleStartupModals shows the welcome modal on first launch, or the
// release notes the user has not seen after an upgrade
func (m *Model) handleStartupModals() (tea.Model, tea.Cmd) {
	if m.modal.IsVisible() {
		return m, nil
	}
	log := logger.WithComponent("app")

	if !m.config.HasSeenWelcome() {
		log.Debug("showing welcome modal")
		m.modal.Show(&modals.WelcomeState{})
		return m, nil
	}

	if !isReleaseVersion(m.version) {
		return m, nil
	}
	lastSeen := m.config.GetLastSeenVersion()
	if lastSeen == m.version {
		return m, nil
	}

	changes := changelog.Between(lastSeen, m.version, changelog.Parse(changelog.Content))
	if len(changes) == 0 {
		m.config.SetLastSeenVersion(m.version)
		return m, m.saveConfigOrFlash()
	}

	log.Info("showing changelog", "from", lastSeen, "to", m.version, "entries", len(changes))
	entries := make([]modals.ChangelogEntry, len(changes))
	for i, e := range changes {
		entries[i] = modals.ChangelogEntry{Version: e.Version, Date: e.Date, Changes: e.Changes}
	}
	m.modal.Show(modals.NewChangelogState(entries))
	return m, nil
}

// isReleaseVersion reports whether v is a tagged build. Dev and demo builds
// never show release notes.
func isReleaseVersion(v string) bool {
	return v != "" && v != "dev" && v != "demo"
}
