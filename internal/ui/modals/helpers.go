package modals

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// RenderSelectableList renders a simple list with selection highlighting.
// selectedIndex indicates which item is selected.
func RenderSelectableList(items []string, selectedIndex int) string {
	var result strings.Builder
	for i, item := range items {
		style := ListItemStyle
		prefix := "  "
		if i == selectedIndex {
			style = ListSelectedStyle
			prefix = "> "
		}
		result.WriteString(style.Render(prefix+item) + "\n")
	}
	return result.String()
}

// TruncateString truncates s to maxLen display cells, ending with an ellipsis.
func TruncateString(s string, maxLen int) string {
	if ansi.StringWidth(s) <= maxLen {
		return s
	}
	return ansi.Truncate(s, maxLen, "...")
}

// mutedLine renders text in the muted italic style used for hints.
func mutedLine(text string) string {
	return lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		Render(text)
}

// scrollIndicator renders the "... N more above/below" marker.
func scrollIndicator(n int, where string) string {
	return lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Render("  ... " + strconv.Itoa(n) + " more " + where)
}

// fieldLabel renders a label above an input field.
func fieldLabel(text string) string {
	return lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		MarginTop(1).
		Render(text)
}

// focusFrame wraps an input view with the left border shown on the focused field.
func focusFrame(view string, focused bool) string {
	style := lipgloss.NewStyle()
	if focused {
		style = style.BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorPrimary).
			PaddingLeft(1)
	} else {
		style = style.PaddingLeft(2)
	}
	return style.Render(view)
}
