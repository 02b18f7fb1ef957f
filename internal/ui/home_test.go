package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/simshare/internal/catalog"
	"github.com/zhubert/simshare/internal/keys"
)

func newTestHome() *Home {
	h := NewHome()
	h.SetSize(100, 30)
	h.SetSimulations(catalog.Default().Simulations())
	return h
}

func TestHome_Navigation(t *testing.T) {
	h := newTestHome()
	sims := catalog.Default().Simulations()

	sel, ok := h.Selected()
	if !ok || sel.ID != sims[0].ID {
		t.Fatalf("first simulation should be selected, got %+v", sel)
	}

	h.Update(keys.Press(keys.Down))
	h.Update(keys.Press("j"))
	if sel, _ := h.Selected(); sel.ID != sims[2].ID {
		t.Errorf("expected %s after two downs, got %s", sims[2].ID, sel.ID)
	}

	h.Update(keys.Press(keys.Up))
	if sel, _ := h.Selected(); sel.ID != sims[1].ID {
		t.Errorf("expected %s after up, got %s", sims[1].ID, sel.ID)
	}

	h.Update(keys.Press(keys.End))
	if sel, _ := h.Selected(); sel.ID != sims[len(sims)-1].ID {
		t.Errorf("end should select the last simulation, got %s", sel.ID)
	}
	h.Update(keys.Press(keys.Down))
	if sel, _ := h.Selected(); sel.ID != sims[len(sims)-1].ID {
		t.Error("down at the end should stay put")
	}

	h.Update(keys.Press(keys.Home))
	if sel, _ := h.Selected(); sel.ID != sims[0].ID {
		t.Error("home should select the first simulation")
	}
}

func TestHome_Search(t *testing.T) {
	h := newTestHome()

	h.Update(keys.Press("/"))
	if !h.IsSearching() {
		t.Fatal("slash should start search")
	}
	for _, r := range "modal" {
		h.Update(keys.Press(string(r)))
	}

	sel, ok := h.Selected()
	if !ok || sel.ID != "tower-modal" {
		t.Errorf("filter should leave the tower modal analysis, got %+v", sel)
	}
	if len(h.filtered) != 1 {
		t.Errorf("expected 1 match, got %d", len(h.filtered))
	}

	h.Update(keys.Press(keys.Escape))
	if h.IsSearching() {
		t.Error("escape should end search")
	}
	if len(h.filtered) != len(catalog.Default().Simulations()) {
		t.Error("ending search should restore the full list")
	}
}

func TestHome_SearchNoMatches(t *testing.T) {
	h := newTestHome()
	h.Update(keys.Press("/"))
	for _, r := range "zzz" {
		h.Update(keys.Press(string(r)))
	}

	if _, ok := h.Selected(); ok {
		t.Error("nothing should be selected without matches")
	}
	if !strings.Contains(ansi.Strip(h.View()), "No matches.") {
		t.Error("expected the no-matches placeholder")
	}
}

func TestHome_SelectIDSurvivesReload(t *testing.T) {
	h := newTestHome()
	if !h.SelectID("cantilever-fatigue") {
		t.Fatal("SelectID should find the simulation")
	}
	h.SetSimulations(catalog.Default().Simulations())
	if sel, _ := h.Selected(); sel.ID != "cantilever-fatigue" {
		t.Errorf("selection should survive a reload, got %s", sel.ID)
	}
	if h.SelectID("missing") {
		t.Error("SelectID should report unknown ids")
	}
}

func TestHome_View(t *testing.T) {
	h := newTestHome()
	h.SetRecent([]string{"tower-modal"})

	view := ansi.Strip(h.View())
	for _, want := range []string{"Simulations", "Pedestrian bridge deck", "completed", "running", "failed", bannerTagline, "• Office tower modal analysis"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in home view", want)
		}
	}
}

func TestHome_BannerTickAdvances(t *testing.T) {
	h := newTestHome()
	_, cmd := h.Update(BannerTickMsg{})
	if h.Banner().Frame() != 1 {
		t.Errorf("frame = %d, want 1", h.Banner().Frame())
	}
	if cmd == nil {
		t.Error("banner tick should schedule the next tick")
	}
}

func TestBanner_Deflection(t *testing.T) {
	b := NewBanner()
	b.SetWidth(40)
	rows := BannerHeight - 1

	for frame := 0; frame < 20; frame++ {
		for x := 0; x < 40; x++ {
			y := b.deflection(x, rows)
			if y < 0 || y >= rows {
				t.Fatalf("frame %d col %d: row %d out of range", frame, x, y)
			}
		}
		// Supports never move
		if b.deflection(0, rows) != b.deflection(39, rows) {
			t.Errorf("frame %d: supports at different heights", frame)
		}
		b.Advance()
	}

	lines := strings.Split(b.View(), "\n")
	if len(lines) != BannerHeight {
		t.Errorf("banner has %d lines, want %d", len(lines), BannerHeight)
	}
}
