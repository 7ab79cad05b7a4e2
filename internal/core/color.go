package core

// Color is a semantic foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette for maze elements. Ghost colors follow the classic order
// red, pink, cyan, orange and are picked by ghost index.
const (
	ColorDefault Color = iota
	ColorWall
	ColorDot
	ColorPellet
	ColorPlayer
	ColorGhostRed
	ColorGhostPink
	ColorGhostCyan
	ColorGhostOrange
	ColorFrightened
	ColorHUD
	ColorAlert
	ColorMuted
)

// GhostColors lists ghost colors in spawn order.
var GhostColors = []Color{ColorGhostRed, ColorGhostPink, ColorGhostCyan, ColorGhostOrange}

// GhostColor returns the color for the ghost at index i, cycling the palette.
func GhostColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return GhostColors[i%len(GhostColors)]
}
