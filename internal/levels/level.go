// Package levels loads maze definitions from YAML files, keeps them in a
// registry and checks them for problems before play. It depends on maze;
// maze does not depend on levels.
package levels

import (
	"github.com/vovakirdan/mazechase/internal/maze"
)

// DefaultID is the level played when none is named.
const DefaultID = "classic"

// Level is one maze definition.
type Level struct {
	ID          string
	Name        string
	Description string
	Width       int
	Height      int
	Rows        []string
	Source      string // File path, or "builtin:<name>" for embedded levels
}

// Layout returns the grid rows and spawn tiles for a session.
func (l Level) Layout() maze.Layout {
	return maze.ParseLayout(l.Rows)
}

// Rules returns base with the grid size set to the level's dimensions.
func (l Level) Rules(base maze.Rules) maze.Rules {
	base.GridWidth = l.Width
	base.GridHeight = l.Height
	return base
}

// Grid builds the tile grid the level would start with.
func (l Level) Grid(cellSize int) *maze.Grid {
	return maze.NewGrid(l.Rows, l.Width, l.Height, cellSize)
}

// Counts returns how many dots and pellets the level starts with.
func (l Level) Counts() (dots, pellets int) {
	return l.Grid(2).Remaining()
}

// NewSession starts a session on this level.
func (l Level) NewSession(base maze.Rules) (*maze.Session, error) {
	return maze.NewSession(l.Layout(), l.Rules(base))
}
