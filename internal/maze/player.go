package maze

import "github.com/vovakirdan/mazechase/internal/core"

// Player is the user-controlled entity. It steps one full tile per tick and
// only changes heading when centered on a tile.
type Player struct {
	Body
	Queued   Direction // Last intent from input; kept after it is adopted
	Facing   Direction // Render hint only
	cellSize int
}

func newPlayer(tile core.Rect, size int) *Player {
	return &Player{
		Body: Body{
			Rect: tile.CenteredIn(size, size),
			Dir:  DirNone,
			Step: tile.W,
		},
		Facing:   DirLeft,
		cellSize: tile.W,
	}
}

// Centered reports whether the player sits exactly on a tile midpoint.
func (p *Player) Centered() bool {
	cx, cy := p.Rect.Center()
	half := p.cellSize / 2
	return core.Mod(cx-half, p.cellSize) == 0 && core.Mod(cy-half, p.cellSize) == 0
}

// Update advances the player by one tick.
func (p *Player) Update(walls Blocker) {
	if p.Centered() {
		if p.Queued != DirNone {
			if _, blocked := p.Probe(p.Queued, walls); !blocked {
				p.Dir = p.Queued
			}
		}
		if _, blocked := p.Probe(p.Dir, walls); blocked {
			p.Dir = DirNone
		}
	}

	p.Rect, _ = p.Probe(p.Dir, walls)

	if p.Dir != DirNone {
		p.Facing = p.Dir
	}
}
