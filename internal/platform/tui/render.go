package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mazechase/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorWall:        lipgloss.NewStyle().Foreground(lipgloss.Color("21")),
	core.ColorDot:         lipgloss.NewStyle().Foreground(lipgloss.Color("223")),
	core.ColorPellet:      lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorPlayer:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorGhostRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGhostPink:   lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
	core.ColorGhostCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorGhostOrange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorFrightened:  lipgloss.NewStyle().Foreground(lipgloss.Color("27")),
	core.ColorHUD:         lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
	core.ColorAlert:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	core.ColorMuted:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
