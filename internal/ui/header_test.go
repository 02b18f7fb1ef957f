package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestHeader_View_NoSimulation(t *testing.T) {
	header := NewHeader()
	header.SetWidth(80)

	view := ansi.Strip(header.View())

	if !strings.Contains(view, "simshare") {
		t.Errorf("Header should contain 'simshare' title, got: %q", view)
	}
	if got := len([]rune(view)); got != 80 {
		t.Errorf("Header should fill the width, got %d runes", got)
	}
}

func TestHeader_View_WithSimulation(t *testing.T) {
	header := NewHeader()
	header.SetWidth(120)
	header.SetSimulation("Pedestrian bridge deck", "Static linear")

	view := ansi.Strip(header.View())

	if !strings.Contains(view, "Pedestrian bridge deck (Static linear)") {
		t.Errorf("Header should show simulation and analysis type, got: %q", view)
	}
	if !strings.HasSuffix(view, " ") {
		t.Errorf("Header should end with padding, got: %q", view)
	}
}

func TestHeader_View_NarrowWidth(t *testing.T) {
	header := NewHeader()
	header.SetWidth(10)
	header.SetSimulation("Office tower modal analysis", "")

	view := ansi.Strip(header.View())

	// No negative padding: title and name are both kept
	if !strings.Contains(view, "simshare") || !strings.Contains(view, "Office tower") {
		t.Errorf("unexpected narrow header: %q", view)
	}
}

func TestHeader_ClearSimulation(t *testing.T) {
	header := NewHeader()
	header.SetWidth(60)
	header.SetSimulation("Deck", "Modal")
	header.SetSimulation("", "")

	if strings.Contains(ansi.Strip(header.View()), "Deck") {
		t.Error("simulation name should be cleared")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b int
	}{
		{"#7C3AED", 0x7C, 0x3A, 0xED},
		{"#000000", 0, 0, 0},
		{"#FFFFFF", 255, 255, 255},
		{"invalid", 0, 0, 0},
		{"#FFF", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			r, g, b := parseHexColor(tt.hex)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("parseHexColor(%q) = (%d,%d,%d), want (%d,%d,%d)", tt.hex, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestBlendHex(t *testing.T) {
	if got := blendHex("#000000", "#FFFFFF", 0); got != "#000000" {
		t.Errorf("blendHex at 0 = %s", got)
	}
	if got := blendHex("#000000", "#FFFFFF", 1); got != "#FFFFFF" {
		t.Errorf("blendHex at 1 = %s", got)
	}
	if got := blendHex("#000000", "#FEFEFE", 0.5); got != "#7F7F7F" {
		t.Errorf("blendHex at 0.5 = %s", got)
	}
}
