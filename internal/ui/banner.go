package ui

import (
	"math"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// BannerTickMsg advances the home banner animation
type BannerTickMsg time.Time

// BannerTick schedules the next banner frame
func BannerTick() tea.Cmd {
	return tea.Tick(BannerTickInterval, func(t time.Time) tea.Msg {
		return BannerTickMsg(t)
	})
}

// bannerTagline is centred on the first banner row
const bannerTagline = "structural results, shared"

// Banner draws a beam oscillating in its first mode shape
type Banner struct {
	width int
	frame int
}

// NewBanner creates a banner at frame zero
func NewBanner() *Banner {
	return &Banner{}
}

// SetWidth sets the banner width
func (b *Banner) SetWidth(width int) {
	b.width = width
}

// Advance moves the animation one frame forward
func (b *Banner) Advance() {
	b.frame++
}

// Frame returns the current frame number
func (b *Banner) Frame() int {
	return b.frame
}

// deflection returns the beam row for column x, between 0 and rows-1
func (b *Banner) deflection(x, rows int) int {
	if b.width <= 1 {
		return rows / 2
	}
	// Simply supported beam: sin(pi x / L), amplitude swings with time
	shape := math.Sin(math.Pi * float64(x) / float64(b.width-1))
	amp := math.Sin(float64(b.frame) * 0.35)
	mid := float64(rows-1) / 2
	return int(math.Round(mid + shape*amp*mid))
}

// View renders the banner, BannerHeight lines tall
func (b *Banner) View() string {
	if b.width <= 0 {
		return ""
	}

	theme := CurrentTheme()
	titleStyle := lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
	title := lipgloss.PlaceHorizontal(b.width, lipgloss.Center, titleStyle.Render(bannerTagline))

	rows := BannerHeight - 1
	grid := make([][]string, rows)
	for y := range grid {
		grid[y] = make([]string, b.width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}

	for x := 0; x < b.width; x++ {
		t := float64(x) / float64(max(1, b.width-1))
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(blendHex(theme.Primary, theme.Secondary, t)))
		y := b.deflection(x, rows)
		grid[y][x] = style.Render("━")
	}

	// Supports at both ends
	supportStyle := lipgloss.NewStyle().Foreground(ColorMuted)
	grid[rows-1][0] = supportStyle.Render("▲")
	grid[rows-1][b.width-1] = supportStyle.Render("▲")

	lines := []string{title}
	for _, row := range grid {
		lines = append(lines, strings.Join(row, ""))
	}
	return strings.Join(lines, "\n")
}
