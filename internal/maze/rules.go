package maze

import (
	"errors"
	"fmt"
	"time"
)

// Rules are the tunable constants of a session. The zero value is not
// usable; start from DefaultRules.
type Rules struct {
	GridWidth  int // Tiles per row
	GridHeight int // Rows
	CellSize   int // Tile edge in pixels; also the player's step per tick
	PlayerSize int // Player hitbox edge, centered in its tile
	GhostStep  int // Ghost pixels per tick

	PowerDuration time.Duration

	DotPoints    int
	PelletPoints int
	GhostPoints  int
}

// DefaultRules returns the classic constants: a 28x31 grid of 16px tiles,
// a 10px player, ghosts at one pixel per tick and seven seconds of power.
func DefaultRules() Rules {
	return Rules{
		GridWidth:     28,
		GridHeight:    31,
		CellSize:      16,
		PlayerSize:    10,
		GhostStep:     1,
		PowerDuration: 7 * time.Second,
		DotPoints:     10,
		PelletPoints:  50,
		GhostPoints:   200,
	}
}

// ErrInvalidRules is wrapped by every Rules.Validate failure.
var ErrInvalidRules = errors.New("maze: invalid rules")

// Validate checks that the rules describe a playable grid. CellSize and
// PlayerSize must both be even so a centered player sits exactly on the
// tile midpoint.
func (r Rules) Validate() error {
	switch {
	case r.GridWidth <= 0 || r.GridHeight <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidRules, r.GridWidth, r.GridHeight)
	case r.CellSize < 2 || r.CellSize%2 != 0:
		return fmt.Errorf("%w: cell size %d must be even and >= 2", ErrInvalidRules, r.CellSize)
	case r.PlayerSize < 2 || r.PlayerSize > r.CellSize || r.PlayerSize%2 != 0:
		return fmt.Errorf("%w: player size %d must be even and within (0, %d]", ErrInvalidRules, r.PlayerSize, r.CellSize)
	case r.GhostStep < 1 || r.GhostStep > r.CellSize:
		return fmt.Errorf("%w: ghost step %d must be within [1, %d]", ErrInvalidRules, r.GhostStep, r.CellSize)
	case r.PowerDuration <= 0:
		return fmt.Errorf("%w: power duration %s", ErrInvalidRules, r.PowerDuration)
	case r.DotPoints < 0 || r.PelletPoints < 0 || r.GhostPoints < 0:
		return fmt.Errorf("%w: negative points", ErrInvalidRules)
	}
	return nil
}
