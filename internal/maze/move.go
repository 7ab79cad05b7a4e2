package maze

import "github.com/vovakirdan/mazechase/internal/core"

// Blocker answers whether a rectangle collides with solid geometry.
type Blocker interface {
	IsWall(r core.Rect) bool
}

// TryMove offsets r by dir*step. If the candidate collides it returns the
// original rect and blocked=true. Every entity moves through this function,
// so no entity can end a tick inside a wall.
func TryMove(r core.Rect, dir Direction, step int, walls Blocker) (core.Rect, bool) {
	dx, dy := dir.Delta()
	candidate := r.Translate(dx*step, dy*step)
	if walls.IsWall(candidate) {
		return r, true
	}
	return candidate, false
}

// Body is the movable part shared by the player and the ghosts.
type Body struct {
	Rect core.Rect
	Dir  Direction
	Step int
}

// Probe tries a move in dir without committing it.
func (b Body) Probe(dir Direction, walls Blocker) (core.Rect, bool) {
	return TryMove(b.Rect, dir, b.Step, walls)
}
