package levels

import (
	"fmt"

	"github.com/vovakirdan/mazechase/internal/maze"
)

// Check codes.
const (
	CodeSpawnBlocked = "SPAWN_BLOCKED"
	CodeEmpty        = "EMPTY"
	CodeUnreachable  = "UNREACHABLE"
)

// ValidationError describes why a level is not playable as intended.
type ValidationError struct {
	Code    string
	Message string
	Tiles   []maze.Tile
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Check reports the first problem with a level: a spawn on a wall, nothing
// to eat, or dots and pellets the player can never reach.
func Check(l Level) error {
	grid := l.Grid(2)
	layout := l.Layout()

	spawns := append([]maze.Tile{layout.Player}, layout.Ghosts...)
	for _, t := range spawns {
		if grid.CellAt(t.Row, t.Col) == maze.CellWall {
			return ValidationError{
				Code:    CodeSpawnBlocked,
				Message: fmt.Sprintf("spawn at (%d,%d) is a wall", t.Col, t.Row),
				Tiles:   []maze.Tile{t},
			}
		}
	}

	if grid.Cleared() {
		return ValidationError{Code: CodeEmpty, Message: "level has no dots or pellets"}
	}

	reachable := Reachable(grid, layout.Player)
	var stranded []maze.Tile
	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			switch grid.CellAt(row, col) {
			case maze.CellDot, maze.CellPellet:
				if !reachable[row][col] {
					stranded = append(stranded, maze.Tile{Col: col, Row: row})
				}
			}
		}
	}
	if len(stranded) > 0 {
		first := stranded[0]
		return ValidationError{
			Code:    CodeUnreachable,
			Message: fmt.Sprintf("%d unreachable items, first at (%d,%d)", len(stranded), first.Col, first.Row),
			Tiles:   stranded,
		}
	}

	return nil
}

// Reachable marks every non-wall tile connected to start by 4-way moves.
func Reachable(grid *maze.Grid, start maze.Tile) [][]bool {
	seen := make([][]bool, grid.Height())
	for i := range seen {
		seen[i] = make([]bool, grid.Width())
	}
	if grid.CellAt(start.Row, start.Col) == maze.CellWall {
		return seen
	}

	queue := []maze.Tile{start}
	seen[start.Row][start.Col] = true

	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]

		neighbors := []maze.Tile{
			{Col: t.Col + 1, Row: t.Row},
			{Col: t.Col - 1, Row: t.Row},
			{Col: t.Col, Row: t.Row + 1},
			{Col: t.Col, Row: t.Row - 1},
		}
		for _, n := range neighbors {
			// CellAt reads off-grid tiles as walls.
			if grid.CellAt(n.Row, n.Col) == maze.CellWall || seen[n.Row][n.Col] {
				continue
			}
			seen[n.Row][n.Col] = true
			queue = append(queue, n)
		}
	}

	return seen
}
