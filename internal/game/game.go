// Package game adapts a maze session to the terminal platform: it turns input
// frames into player intents, samples the clock once per tick, handles pause
// and restart, and draws the session into a core.Screen.
package game

import (
	"fmt"
	"time"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/levels"
	"github.com/vovakirdan/mazechase/internal/maze"
)

// Clock returns the current time. Tests inject a fake.
type Clock func() time.Time

// Option configures a Game.
type Option func(*Game)

// WithClock replaces time.Now.
func WithClock(c Clock) Option {
	return func(g *Game) { g.clock = c }
}

// flashTicks is how long a capture message stays in the HUD.
const flashTicks = 10

// Game runs one level for the terminal platform.
type Game struct {
	level levels.Level
	rules maze.Rules
	clock Clock

	session *maze.Session
	last    maze.Result

	// Pause shifts the session clock so power mode does not run out while
	// the game is paused.
	paused   bool
	pausedAt time.Time
	offset   time.Duration

	username  string
	highScore int
	flash     string
	flashLeft int

	screenW int
	screenH int
}

// New creates a game for a level. It fails if the level cannot start a
// session under rules.
func New(level levels.Level, rules maze.Rules, opts ...Option) (*Game, error) {
	g := &Game{
		level: level,
		rules: level.Rules(rules),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := g.newSession(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) newSession() error {
	s, err := maze.NewSession(g.level.Layout(), g.rules)
	if err != nil {
		return err
	}
	g.session = s
	g.last = maze.Result{Status: maze.StatusRunning}
	g.paused = false
	g.offset = 0
	g.flash = ""
	g.flashLeft = 0
	return nil
}

// ID returns the level ID; scores are stored under it.
func (g *Game) ID() string {
	return g.level.ID
}

// Title returns the level name.
func (g *Game) Title() string {
	return g.level.Name
}

// Reset starts a fresh session and records the platform facts.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.username = cfg.Username
	// The level was validated by New, so a rebuild cannot fail.
	_ = g.newSession()
}

// Resize updates the screen size without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// SetHighScore sets the best known score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	status := g.session.Status()

	if input.Has(core.ActionRestart) && status.Terminal() {
		g.Reset(core.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH, Username: g.username})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !status.Terminal() {
		g.togglePause()
	}

	if g.paused || status.Terminal() {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := directionFor(input.Move); ok {
		g.session.SetPlayerIntent(dir)
	}

	g.last = g.session.Tick(g.now())
	g.noteEvents(g.last.Events)

	if g.flashLeft > 0 {
		g.flashLeft--
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) togglePause() {
	if g.paused {
		g.offset += g.clock().Sub(g.pausedAt)
		g.paused = false
		return
	}
	g.paused = true
	g.pausedAt = g.clock()
}

// now is the session clock: wall time minus the time spent paused.
func (g *Game) now() time.Time {
	return g.clock().Add(-g.offset)
}

func (g *Game) noteEvents(events []maze.Event) {
	for _, e := range events {
		switch e {
		case maze.EventGhostCaptured:
			g.flash = fmt.Sprintf("GHOST +%d", g.rules.GhostPoints)
			g.flashLeft = flashTicks
		case maze.EventPelletEaten:
			g.flash = "POWER!"
			g.flashLeft = flashTicks
		}
	}
}

func directionFor(a core.Action) (maze.Direction, bool) {
	switch a {
	case core.ActionUp:
		return maze.DirUp, true
	case core.ActionDown:
		return maze.DirDown, true
	case core.ActionLeft:
		return maze.DirLeft, true
	case core.ActionRight:
		return maze.DirRight, true
	default:
		return maze.DirNone, false
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	status := g.session.Status()
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: status.Terminal(),
		Won:      status == maze.StatusWon,
		Paused:   g.paused,
	}
}

// Status returns the session status.
func (g *Game) Status() maze.Status {
	return g.session.Status()
}

// Snapshot returns the session state for inspection.
func (g *Game) Snapshot() maze.Snapshot {
	return g.session.Snapshot()
}
