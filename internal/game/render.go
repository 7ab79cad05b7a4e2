package game

import (
	"fmt"
	"time"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/maze"
)

// Screen layout: one HUD row and a separator on top, one help row at the
// bottom. Each tile is two columns wide so the maze keeps its aspect ratio.
const (
	hudRows    = 2
	footerRows = 1
	tileCols   = 2

	minScreenW = 24
	minScreenH = hudRows + footerRows + 5

	// Frightened ghosts blink for this long before power mode ends.
	blinkWindow = 2 * time.Second
)

// viewport maps tiles to screen cells. When the maze is larger than the
// screen it follows the player.
type viewport struct {
	x, y       int // Screen cell of the first visible tile
	col0, row0 int // First visible tile
	cols, rows int // Visible tile count
}

func (v viewport) cell(t maze.Tile) (int, int, bool) {
	c, r := t.Col-v.col0, t.Row-v.row0
	if c < 0 || r < 0 || c >= v.cols || r >= v.rows {
		return 0, 0, false
	}
	return v.x + c*tileCols, v.y + r, true
}

func newViewport(screenW, screenH, gridW, gridH int, focus maze.Tile) viewport {
	availCols := screenW / tileCols
	availRows := screenH - hudRows - footerRows

	v := viewport{cols: min(gridW, availCols), rows: min(gridH, availRows)}
	v.col0 = core.Clamp(focus.Col-v.cols/2, 0, gridW-v.cols)
	v.row0 = core.Clamp(focus.Row-v.rows/2, 0, gridH-v.rows)
	v.x = (screenW - v.cols*tileCols) / 2
	v.y = hudRows + (availRows-v.rows)/2
	return v
}

// Render draws the current state into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.session.Snapshot()
	g.renderHUD(dst, snap)

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	grid := g.session.Grid()
	view := newViewport(dst.Width(), dst.Height(), grid.Width(), grid.Height(), snap.PlayerTile)

	g.renderMaze(dst, grid, view)
	g.renderGhosts(dst, snap, view)
	g.renderPlayer(dst, snap, view)
	g.renderFooter(dst)

	switch {
	case snap.Status == maze.StatusWon:
		g.renderOverlay(dst, "LEVEL CLEAR", fmt.Sprintf("Score: %d   R: play again   Q: quit", snap.Score))
	case snap.Status == maze.StatusLost:
		g.renderOverlay(dst, "CAUGHT!", fmt.Sprintf("Score: %d   R: try again   Q: quit", snap.Score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// hudItem is one HUD field. When the row is too narrow the items with the
// lowest keep value are dropped first.
type hudItem struct {
	text  string
	color core.Color
	keep  int
}

func (g *Game) renderHUD(dst *core.Screen, snap maze.Snapshot) {
	left := []hudItem{
		{g.level.Name, core.ColorHUD, 1},
		{fmt.Sprintf("SCORE %d", snap.Score), core.ColorHUD, 6},
		{fmt.Sprintf("HI %d", max(g.highScore, snap.Score)), core.ColorHUD, 2},
		{fmt.Sprintf("DOTS %d", snap.RemainingDots+snap.RemainingPellets), core.ColorHUD, 4},
	}
	if snap.PowerActive {
		left = append(left, hudItem{fmt.Sprintf("POWER %.1fs", snap.PowerRemaining.Seconds()), core.ColorFrightened, 5})
	}
	if g.flashLeft > 0 {
		left = append(left, hudItem{g.flash, core.ColorAlert, 3})
	}
	var user *hudItem
	if g.username != "" {
		user = &hudItem{g.username, core.ColorMuted, 0}
	}

	for hudWidth(left, user) > dst.Width() {
		if user != nil {
			user = nil
			continue
		}
		if len(left) == 1 {
			break
		}
		drop := 0
		for i, it := range left {
			if it.keep < left[drop].keep {
				drop = i
			}
		}
		left = append(left[:drop], left[drop+1:]...)
	}

	x := 1
	for _, it := range left {
		dst.DrawTextColored(x, 0, it.text, it.color)
		x += len([]rune(it.text)) + 2
	}
	if user != nil {
		dst.DrawTextColored(dst.Width()-len([]rune(user.text))-1, 0, user.text, user.color)
	}

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorMuted)
}

// hudWidth is the row width needed for the items: a one-column margin on
// each side and two columns between fields.
func hudWidth(left []hudItem, user *hudItem) int {
	w := 1
	for i, it := range left {
		if i > 0 {
			w += 2
		}
		w += len([]rune(it.text))
	}
	if user != nil {
		w += 2 + len([]rune(user.text)) + 1
	}
	return w
}

func (g *Game) renderMaze(dst *core.Screen, grid maze.GridView, v viewport) {
	for r := v.row0; r < v.row0+v.rows; r++ {
		for c := v.col0; c < v.col0+v.cols; c++ {
			x, y, ok := v.cell(maze.Tile{Col: c, Row: r})
			if !ok {
				continue
			}
			switch grid.CellAt(r, c) {
			case maze.CellWall:
				dst.SetColored(x, y, '█', core.ColorWall)
				dst.SetColored(x+1, y, '█', core.ColorWall)
			case maze.CellDot:
				dst.SetColored(x, y, '·', core.ColorDot)
			case maze.CellPellet:
				dst.SetColored(x, y, '●', core.ColorPellet)
			}
		}
	}
}

func (g *Game) renderGhosts(dst *core.Screen, snap maze.Snapshot, v viewport) {
	for _, gh := range snap.Ghosts {
		x, y, ok := v.cell(gh.Tile)
		if !ok {
			continue
		}
		color := core.GhostColor(gh.Index)
		if snap.PowerActive {
			color = core.ColorFrightened
			if snap.PowerRemaining < blinkWindow && snap.Ticks%2 == 0 {
				color = core.ColorDefault
			}
		}
		dst.SetColored(x, y, 'Ω', color)
	}
}

// playerGlyph opens the mouth toward the heading.
func playerGlyph(d maze.Direction) rune {
	switch d {
	case maze.DirRight:
		return '<'
	case maze.DirUp:
		return 'v'
	case maze.DirDown:
		return '^'
	default:
		return '>'
	}
}

func (g *Game) renderPlayer(dst *core.Screen, snap maze.Snapshot, v viewport) {
	x, y, ok := v.cell(snap.PlayerTile)
	if !ok {
		return
	}
	glyph := playerGlyph(snap.Facing)
	if snap.Status == maze.StatusLost {
		glyph = 'X'
	}
	dst.SetColored(x, y, glyph, core.ColorPlayer)
}

func (g *Game) renderFooter(dst *core.Screen) {
	help := " arrows/wasd/hjkl: move   p: pause   r: restart   q: quit"
	dst.DrawTextColored(0, dst.Height()-1, help, core.ColorMuted)
}

// renderOverlay draws a centered box with two lines of text.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	h := 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawBox(box, core.ColorHUD)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorAlert)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
