// Package maze is the maze-chase simulation: a tile grid, the player and
// ghost controllers, and the session that advances them one tick at a time.
// It performs no I/O and reads no clock; callers pass the time in.
package maze

import (
	"github.com/vovakirdan/mazechase/internal/core"
)

// Cell classifies one tile of the grid.
type Cell int

const (
	CellOpen Cell = iota
	CellWall
	CellDot
	CellPellet
)

func (c Cell) String() string {
	switch c {
	case CellOpen:
		return "open"
	case CellWall:
		return "wall"
	case CellDot:
		return "dot"
	case CellPellet:
		return "pellet"
	default:
		return "unknown"
	}
}

// cellFromRune maps a layout character to a cell. Everything that is not
// a wall, dot or pellet is open floor, including spawn markers.
func cellFromRune(r rune) Cell {
	switch r {
	case '1':
		return CellWall
	case '2':
		return CellDot
	case '3':
		return CellPellet
	default:
		return CellOpen
	}
}

// Grid is the static tile world. Only dots and pellets change after load,
// and only into open floor.
type Grid struct {
	width    int
	height   int
	cellSize int
	cells    [][]Cell
	dots     int
	pellets  int
}

// NewGrid builds a width x height grid from layout rows. It never fails:
// short rows are padded with open floor, long rows are truncated, missing
// rows are open and extra rows are ignored.
func NewGrid(rows []string, width, height, cellSize int) *Grid {
	g := &Grid{
		width:    width,
		height:   height,
		cellSize: cellSize,
		cells:    make([][]Cell, height),
	}

	for y := range g.cells {
		g.cells[y] = make([]Cell, width)
		if y >= len(rows) {
			continue
		}
		x := 0
		for _, r := range rows[y] {
			if x >= width {
				break
			}
			c := cellFromRune(r)
			g.cells[y][x] = c
			switch c {
			case CellDot:
				g.dots++
			case CellPellet:
				g.pellets++
			}
			x++
		}
	}

	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// CellSize returns the tile edge in pixels.
func (g *Grid) CellSize() int { return g.cellSize }

// Bounds returns the pixel rectangle covered by the grid.
func (g *Grid) Bounds() core.Rect {
	return core.NewRect(0, 0, g.width*g.cellSize, g.height*g.cellSize)
}

// CellAt returns the cell at (row, col). Coordinates outside the grid read
// as walls.
func (g *Grid) CellAt(row, col int) Cell {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return CellWall
	}
	return g.cells[row][col]
}

// TileRect returns the pixel bounding box of tile (row, col).
func (g *Grid) TileRect(row, col int) core.Rect {
	return core.NewRect(col*g.cellSize, row*g.cellSize, g.cellSize, g.cellSize)
}

// TileAt returns the tile containing the center of r.
func (g *Grid) TileAt(r core.Rect) Tile {
	cx, cy := r.Center()
	return Tile{Col: core.FloorDiv(cx, g.cellSize), Row: core.FloorDiv(cy, g.cellSize)}
}

// span returns the inclusive tile range overlapped by r, clipped to the grid.
func (g *Grid) span(r core.Rect) (row0, row1, col0, col1 int) {
	col0 = core.Clamp(core.FloorDiv(r.X, g.cellSize), 0, g.width-1)
	col1 = core.Clamp(core.FloorDiv(r.Right()-1, g.cellSize), 0, g.width-1)
	row0 = core.Clamp(core.FloorDiv(r.Y, g.cellSize), 0, g.height-1)
	row1 = core.Clamp(core.FloorDiv(r.Bottom()-1, g.cellSize), 0, g.height-1)
	return row0, row1, col0, col1
}

// IsWall reports whether r overlaps any wall tile. The grid edge is solid:
// a rect that leaves the grid bounds counts as blocked.
func (g *Grid) IsWall(r core.Rect) bool {
	if !r.Within(g.Bounds()) {
		return true
	}
	row0, row1, col0, col1 := g.span(r)
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			if g.cells[row][col] == CellWall {
				return true
			}
		}
	}
	return false
}

// Consume turns the first dot or pellet (row-major) whose tile intersects r
// into open floor and reports what was eaten.
func (g *Grid) Consume(r core.Rect) (Cell, bool) {
	if !r.Intersects(g.Bounds()) {
		return CellOpen, false
	}
	row0, row1, col0, col1 := g.span(r)
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			switch c := g.cells[row][col]; c {
			case CellDot:
				g.cells[row][col] = CellOpen
				g.dots--
				return c, true
			case CellPellet:
				g.cells[row][col] = CellOpen
				g.pellets--
				return c, true
			}
		}
	}
	return CellOpen, false
}

// Remaining returns how many dots and pellets are left.
func (g *Grid) Remaining() (dots, pellets int) {
	return g.dots, g.pellets
}

// Cleared reports whether every dot and pellet has been eaten.
func (g *Grid) Cleared() bool {
	return g.dots == 0 && g.pellets == 0
}
