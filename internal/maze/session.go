package maze

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/mazechase/internal/core"
)

// Status is the lifecycle state of a session. Won and Lost are terminal.
type Status int

const (
	StatusRunning Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further ticks will change the session.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Event is something notable that happened during a tick. Renderers and
// sound sinks consume events; the simulation does not depend on them.
type Event int

const (
	EventDotEaten Event = iota
	EventPelletEaten
	EventPowerEnded
	EventGhostCaptured
	EventCaught
	EventCleared
)

func (e Event) String() string {
	switch e {
	case EventDotEaten:
		return "dot"
	case EventPelletEaten:
		return "pellet"
	case EventPowerEnded:
		return "power_ended"
	case EventGhostCaptured:
		return "ghost_captured"
	case EventCaught:
		return "caught"
	case EventCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Result is returned by Tick.
type Result struct {
	Status Status
	Score  int
	Events []Event
}

// GhostView is the read-only state of one ghost.
type GhostView struct {
	Rect  core.Rect
	Tile  Tile
	Dir   Direction
	Index int
}

// Snapshot is a value copy of the session for rendering.
type Snapshot struct {
	Player           core.Rect
	PlayerTile       Tile
	Facing           Direction
	Ghosts           []GhostView
	RemainingDots    int
	RemainingPellets int
	Score            int
	PowerActive      bool
	PowerRemaining   time.Duration
	Status           Status
	Ticks            uint64
}

// GridView is read-only access to the tiles for renderers.
type GridView interface {
	Width() int
	Height() int
	CellSize() int
	CellAt(row, col int) Cell
}

// ErrSpawnBlocked is returned when a spawn tile is a wall or off the grid.
var ErrSpawnBlocked = errors.New("maze: spawn tile is blocked")

// Session owns one play-through: the grid, the player, the ghosts, the score
// and the power-mode timer. It is not safe for concurrent use; a single loop
// calls SetPlayerIntent and Tick.
type Session struct {
	rules  Rules
	grid   *Grid
	player *Player
	ghosts []*Ghost

	score      int
	power      bool
	powerSince time.Time
	lastNow    time.Time
	status     Status
	ticks      uint64
}

// NewSession builds a running session with score 0 and every entity on its
// spawn tile.
func NewSession(layout Layout, rules Rules) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	grid := NewGrid(layout.Rows, rules.GridWidth, rules.GridHeight, rules.CellSize)

	spawn := func(t Tile, what string) (core.Rect, error) {
		if grid.CellAt(t.Row, t.Col) == CellWall {
			return core.Rect{}, fmt.Errorf("%w: %s at col %d row %d", ErrSpawnBlocked, what, t.Col, t.Row)
		}
		return grid.TileRect(t.Row, t.Col), nil
	}

	playerTile, err := spawn(layout.Player, "player")
	if err != nil {
		return nil, err
	}

	s := &Session{
		rules:  rules,
		grid:   grid,
		player: newPlayer(playerTile, rules.PlayerSize),
		status: StatusRunning,
	}

	for i, t := range layout.Ghosts {
		ghostTile, err := spawn(t, fmt.Sprintf("ghost %d", i))
		if err != nil {
			return nil, err
		}
		s.ghosts = append(s.ghosts, newGhost(ghostTile, rules.GhostStep, i))
	}

	return s, nil
}

// SetPlayerIntent queues the heading the player should take at the next
// tile center.
func (s *Session) SetPlayerIntent(dir Direction) {
	s.player.Queued = dir
}

// Tick advances the session by one frame at time now. The order is fixed:
// player, ghosts, eating, power expiry, ghost contact, win check. Once the
// session is terminal Tick changes nothing.
func (s *Session) Tick(now time.Time) Result {
	if s.status.Terminal() {
		return s.result(nil)
	}

	s.ticks++
	s.lastNow = now
	var events []Event

	s.player.Update(s.grid)
	for _, g := range s.ghosts {
		g.Update(s.grid)
	}

	if kind, ok := s.grid.Consume(s.player.Rect); ok {
		switch kind {
		case CellDot:
			s.score += s.rules.DotPoints
			events = append(events, EventDotEaten)
		case CellPellet:
			s.score += s.rules.PelletPoints
			s.power = true
			s.powerSince = now
			events = append(events, EventPelletEaten)
		}
	}

	if s.power && now.Sub(s.powerSince) >= s.rules.PowerDuration {
		s.power = false
		events = append(events, EventPowerEnded)
	}

	for _, g := range s.ghosts {
		if !g.Rect.Intersects(s.player.Rect) {
			continue
		}
		if !s.power {
			s.status = StatusLost
			return s.result(append(events, EventCaught))
		}
		g.Respawn()
		s.score += s.rules.GhostPoints
		events = append(events, EventGhostCaptured)
	}

	if s.grid.Cleared() {
		s.status = StatusWon
		events = append(events, EventCleared)
	}

	return s.result(events)
}

func (s *Session) result(events []Event) Result {
	return Result{Status: s.status, Score: s.score, Events: events}
}

// Status returns the current lifecycle state.
func (s *Session) Status() Status { return s.status }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Rules returns the rules the session was built with.
func (s *Session) Rules() Rules { return s.rules }

// Grid returns read-only access to the tiles.
func (s *Session) Grid() GridView { return s.grid }

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	dots, pellets := s.grid.Remaining()

	snap := Snapshot{
		Player:           s.player.Rect,
		PlayerTile:       s.grid.TileAt(s.player.Rect),
		Facing:           s.player.Facing,
		Ghosts:           make([]GhostView, len(s.ghosts)),
		RemainingDots:    dots,
		RemainingPellets: pellets,
		Score:            s.score,
		PowerActive:      s.power,
		Status:           s.status,
		Ticks:            s.ticks,
	}

	if s.power {
		left := s.rules.PowerDuration - s.lastNow.Sub(s.powerSince)
		snap.PowerRemaining = max(left, 0)
	}

	for i, g := range s.ghosts {
		snap.Ghosts[i] = GhostView{
			Rect:  g.Rect,
			Tile:  s.grid.TileAt(g.Rect),
			Dir:   g.Dir,
			Index: g.Index,
		}
	}

	return snap
}
