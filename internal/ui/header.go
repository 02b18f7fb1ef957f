package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// Header represents the top header bar
type Header struct {
	width          int
	simulationName string
	analysisType   string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetSimulation sets the open simulation to display. Empty clears it.
func (h *Header) SetSimulation(name, analysisType string) {
	h.simulationName = name
	h.analysisType = analysisType
}

// View renders the header
func (h *Header) View() string {
	titleText := " simshare"
	var rightText string
	if h.simulationName != "" {
		rightText = h.simulationName
		if h.analysisType != "" {
			rightText += " (" + h.analysisType + ")"
		}
		rightText += " "
	}

	paddingLen := h.width - runewidth.StringWidth(titleText) - runewidth.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText
	return h.renderGradient(fullContent, h.analysisType)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// blendHex interpolates between two hex colors, t in [0, 1]
func blendHex(from, to string, t float64) string {
	sr, sg, sb := parseHexColor(from)
	er, eg, eb := parseHexColor(to)
	r := int(float64(sr)*(1-t) + float64(er)*t)
	g := int(float64(sg)*(1-t) + float64(eg)*t)
	b := int(float64(sb)*(1-t) + float64(eb)*t)
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// renderGradient renders the content over a theme-aware gradient background.
// The parenthesised analysis type, when present, is muted.
func (h *Header) renderGradient(content string, analysisType string) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	mutedStart := -1
	if analysisType != "" {
		if idx := strings.Index(content, "("+analysisType+")"); idx >= 0 {
			mutedStart = len([]rune(content[:idx]))
		}
	}

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		bgColor := lipgloss.Color(blendHex(theme.Primary, theme.Bg, float64(i)/float64(width)))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < 9) // " simshare"

		if mutedStart >= 0 && i >= mutedStart {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
