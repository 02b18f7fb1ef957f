package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/zhubert/simshare/internal/catalog"
	"github.com/zhubert/simshare/internal/config"
	perrors "github.com/zhubert/simshare/internal/errors"
	"github.com/zhubert/simshare/internal/keys"
	"github.com/zhubert/simshare/internal/ui/modals"
)

func TestNew_StartsOnHome(t *testing.T) {
	m := testModel(testConfig(t))
	if m.Screen() != ScreenHome {
		t.Errorf("screen = %v, want Home", m.Screen())
	}
	if m.Modal().IsVisible() {
		t.Error("no modal should be visible")
	}
	if got := m.RenderToString(); got != "Loading..." {
		t.Errorf("unsized render = %q", got)
	}
}

func TestScreen_String(t *testing.T) {
	tests := []struct {
		s    Screen
		want string
	}{
		{ScreenHome, "Home"},
		{ScreenDetail, "Detail"},
		{Screen(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Screen(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestHome_RendersCatalog(t *testing.T) {
	m := testModelWithSize(t, 120, 40)
	out := ansi.Strip(m.RenderToString())
	for _, want := range []string{"Pedestrian bridge deck", "Warehouse roof snow load"} {
		if !strings.Contains(out, want) {
			t.Errorf("home missing %q", want)
		}
	}
}

func TestHome_EnterOpensSelected(t *testing.T) {
	m := testModelWithSize(t, 120, 40)

	sendKeys(m, keys.Down, keys.Enter)

	if m.Screen() != ScreenDetail {
		t.Fatalf("screen = %v, want Detail", m.Screen())
	}
	if got := m.detail.Simulation().ID; got != "tower-modal" {
		t.Errorf("opened %q, want tower-modal", got)
	}
	if m.Focus() != FocusChat {
		t.Errorf("chat should be focused on open")
	}
	if recent := m.config.GetRecentSimulations(); len(recent) == 0 || recent[0] != "tower-modal" {
		t.Errorf("recent = %v", recent)
	}
}

func TestOpenSimulation_Unknown(t *testing.T) {
	m := testModelWithSize(t, 120, 40)
	err := m.OpenSimulation("nope")
	if !perrors.Is(err, perrors.KindNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
	if m.Screen() != ScreenHome {
		t.Error("screen should not change on unknown id")
	}
}

func TestOpenSimulation_SaveFailureFlashRunsAtInit(t *testing.T) {
	// A regular file where the config directory should be makes Save fail
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	cfg := config.New(filepath.Join(blocker, "config.json"))
	cfg.MarkWelcomeShown()
	m := testModel(cfg)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	if err := m.OpenSimulation("bridge-deck-a"); err != nil {
		t.Fatalf("OpenSimulation() error = %v", err)
	}
	if !strings.Contains(footerText(m), "Failed to save settings") {
		t.Errorf("footer should show the save failure, got %q", footerText(m))
	}
	if len(m.startupCmds) != 1 {
		t.Fatalf("startupCmds = %d, want 1 (the flash timer)", len(m.startupCmds))
	}

	batch, ok := m.Init()().(tea.BatchMsg)
	if !ok {
		t.Fatal("Init should return a batch")
	}
	if len(batch) != 3 {
		t.Errorf("Init batch has %d commands, want 3", len(batch))
	}
	if len(m.startupCmds) != 0 {
		t.Error("Init should consume the queued commands")
	}
}

func TestChat_SubmitAppendsOwnMessage(t *testing.T) {
	m := testModelWithSize(t, 120, 40)
	openBridge(t, m)

	composer := m.ComposerFor("bridge-deck-a")
	before := composer.Log().Len()

	// Blank drafts are ignored.
	sendKeys(m, keys.Space, keys.Space, keys.Enter)
	if composer.Log().Len() != before {
		t.Fatalf("blank draft should not submit")
	}

	sendKeys(m, keys.Backspace, keys.Backspace)
	typeText(m, "Hello world")
	sendKeys(m, keys.Enter)

	if composer.Log().Len() != before+1 {
		t.Fatalf("log len = %d, want %d", composer.Log().Len(), before+1)
	}
	last, _ := composer.Log().Last()
	if last.Content != "Hello world" || last.SenderID != "me" || last.SenderName != "You" {
		t.Errorf("last message = %+v", last)
	}
	if composer.Draft() != "" {
		t.Errorf("draft should be cleared, got %q", composer.Draft())
	}
	if !last.SentAt.Equal(testNow) {
		t.Errorf("SentAt = %v, want %v", last.SentAt, testNow)
	}
}

func TestChat_ShortcutKeysTypeIntoInput(t *testing.T) {
	m := testModelWithSize(t, 120, 40)
	openBridge(t, m)

	typeText(m, "sicq")

	if m.Modal().IsVisible() {
		t.Error("shortcut keys should not open modals while typing")
	}
	if m.chat.Input() != "sicq" {
		t.Errorf("input = %q", m.chat.Input())
	}
}

func TestDetail_FocusAndBack(t *testing.T) {
	m := testModelWithSize(t, 120, 40)
	openBridge(t, m)

	typeText(m, "draft")
	sendKeys(m, keys.Tab)
	if m.Focus() != FocusInfo {
		t.Fatal("tab should focus the info pane")
	}

	sendKeys(m, keys.Escape)
	if m.Screen() != ScreenHome {
		t.Fatalf("esc on info pane should go home, screen = %v", m.Screen())
	}

	sendKeys(m, keys.Enter)
	if m.Screen() != ScreenDetail {
		t.Fatal("enter should reopen the simulation")
	}
	if m.chat.Input() != "draft" {
		t.Errorf("draft should survive navigation, got %q", m.chat.Input())
	}
}

func TestDetail_EscFromChatFocusesInfo(t *testing.T) {
	m := testModelWithSize(t, 120, 40)
	openBridge(t, m)

	sendKeys(m, keys.Escape)
	if m.Screen() != ScreenDetail || m.Focus() != FocusInfo {
		t.Errorf("screen=%v focus=%v, want Detail/Info", m.Screen(), m.Focus())
	}
}

func TestDetail_RendersPanels(t *testing.T) {
	m := testModelWithSize(t, 140, 40)
	openBridge(t, m)

	out := ansi.Strip(m.RenderToString())
	for _, want := range []string{"Pedestrian bridge deck", "Maya Okafor", "accepted"} {
		if !strings.Contains(out, want) {
			t.Errorf("detail missing %q:\n%s", want, out)
		}
	}
}

func TestQuit(t *testing.T) {
	m := testModelWithSize(t, 120, 40)

	_, cmd := m.Update(keyPress("q"))
	if cmd == nil {
		t.Fatal("q on home should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}

	_, cmd = m.Update(keyPress(keys.CtrlC))
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
}

func TestStartup_WelcomeShownOnce(t *testing.T) {
	cfg := testConfig(t)
	cfg.WelcomeShown = false
	m := testModel(cfg)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	m.Update(StartupModalMsg{})
	if _, ok := m.Modal().State.(*modals.WelcomeState); !ok {
		t.Fatalf("expected welcome modal, got %T", m.Modal().State)
	}

	sendKeys(m, keys.Enter)
	if m.Modal().IsVisible() {
		t.Error("enter should close the welcome modal")
	}
	if !cfg.HasSeenWelcome() {
		t.Error("welcome should be marked as shown")
	}

	m.Update(StartupModalMsg{})
	if m.Modal().IsVisible() {
		t.Error("welcome should not show again")
	}
}

func TestComposerFor_SeedsOnce(t *testing.T) {
	m := testModel(testConfig(t))
	cat := catalog.Default()

	c := m.ComposerFor("bridge-deck-a")
	want := len(cat.History("bridge-deck-a", testNow))
	if c.Log().Len() != want {
		t.Fatalf("seeded %d messages, want %d", c.Log().Len(), want)
	}
	if m.ComposerFor("bridge-deck-a") != c {
		t.Error("composer should be reused")
	}
	if m.ComposerFor("warehouse-snow").Log().Len() != 0 {
		t.Error("simulation without history should start empty")
	}
}

func TestStartup_ChangelogAfterUpgrade(t *testing.T) {
	cfg := testConfig(t)
	cfg.SetLastSeenVersion("0.2.0")
	m := New(cfg, catalog.Default(), "0.3.0")
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	m.Update(StartupModalMsg{})
	state, ok := m.Modal().State.(*modals.ChangelogState)
	if !ok {
		t.Fatalf("expected changelog modal, got %T", m.Modal().State)
	}
	if len(state.Entries) != 1 || state.Entries[0].Version != "0.3.0" {
		t.Errorf("entries = %+v, want only 0.3.0", state.Entries)
	}

	sendKeys(m, keys.Escape)
	if m.Modal().IsVisible() {
		t.Error("esc should dismiss the changelog")
	}
	if got := cfg.GetLastSeenVersion(); got != "0.3.0" {
		t.Errorf("last seen = %q, want 0.3.0", got)
	}

	m.Update(StartupModalMsg{})
	if m.Modal().IsVisible() {
		t.Error("changelog should not show twice")
	}
}

func TestStartup_NoChangelogForDevBuilds(t *testing.T) {
	for _, version := range []string{"dev", "demo", ""} {
		m := New(testConfig(t), catalog.Default(), version)
		m.Update(StartupModalMsg{})
		if m.Modal().IsVisible() {
			t.Errorf("version %q should not show release notes", version)
		}
	}
}

func TestStartup_WelcomeSkipsBacklog(t *testing.T) {
	cfg := testConfig(t)
	cfg.WelcomeShown = false
	m := New(cfg, catalog.Default(), "0.4.0")

	m.Update(StartupModalMsg{})
	sendKeys(m, keys.Enter)
	if got := cfg.GetLastSeenVersion(); got != "0.4.0" {
		t.Errorf("last seen = %q, want 0.4.0 after welcome", got)
	}
}
