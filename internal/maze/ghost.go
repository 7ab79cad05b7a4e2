package maze

import "github.com/vovakirdan/mazechase/internal/core"

// Ghost is an adversary that wanders by a fixed wall-following rule. It does
// not know where the player is.
type Ghost struct {
	Body
	Spawn core.Rect
	Index int // Spawn order; picks the cosmetic color
}

func newGhost(tile core.Rect, step, index int) *Ghost {
	return &Ghost{
		Body: Body{
			Rect: tile,
			Dir:  DirRight,
			Step: step,
		},
		Spawn: tile,
		Index: index,
	}
}

// Update advances the ghost by one tick: keep going while the way is free,
// otherwise turn clockwise, and if that is blocked too reverse the turned
// heading. A turn consumes the tick without moving, so a fully enclosed ghost
// stays put and only cycles its heading.
func (g *Ghost) Update(walls Blocker) {
	if g.Dir == DirNone {
		g.Dir = DirRight
	}

	if next, blocked := g.Probe(g.Dir, walls); !blocked {
		g.Rect = next
		return
	}

	g.Dir = g.Dir.Clockwise()
	if _, blocked := g.Probe(g.Dir, walls); blocked {
		g.Dir = g.Dir.Reverse()
	}
}

// Respawn returns the ghost to its spawn tile. Its heading is kept.
func (g *Ghost) Respawn() {
	g.Rect = g.Spawn
}
