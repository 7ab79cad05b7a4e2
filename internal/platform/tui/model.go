// Package tui provides the Bubble Tea programs for mazechase: the login
// gate, the level menu, the game loop and the scoreboard.
package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/game"
	"github.com/vovakirdan/mazechase/internal/maze"
	"github.com/vovakirdan/mazechase/internal/storage"
)

// Model is the Bubble Tea model that drives one maze game.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	started    time.Time
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the result has been recorded for the current round
}

// NewModel creates a new Bubble Tea model for the given game and starts
// a fresh session. store may be nil, in which case results are not kept.
func NewModel(g *game.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
	m.game.Reset(cfg)
	m.refreshHighScore()
	m.gameState = m.game.State()
	m.started = time.Now()
	m.logger.Info("session started", "level_id", g.ID(), "user", cfg.Username)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logEnd("quit")
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		m.backToMenu = true
		m.logEnd("back")
		return m, tea.Quit
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionNone, core.ActionConfirm:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
		m.started = time.Now()
		m.refreshHighScore()
		m.logger.Info("session restarted", "level_id", m.game.ID(), "user", m.config.Username)
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveResult()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveResult records a finished round. Storage failures are logged and
// never interrupt play.
func (m *Model) saveResult() {
	outcome := storage.OutcomeLost
	if m.game.Status() == maze.StatusWon {
		outcome = storage.OutcomeWon
	}
	m.logEnd(outcome)

	score := m.gameState.Score
	if score <= 0 {
		return
	}
	if m.store == nil {
		m.logger.Warn("score not saved, no database", "level_id", m.game.ID(), "score", score)
		return
	}
	_, err := m.store.SaveScore(storage.ScoreEntry{
		LevelID:  m.game.ID(),
		Username: m.config.Username,
		Score:    score,
		Outcome:  outcome,
	})
	if err != nil {
		m.logger.Warn("could not save score", "level_id", m.game.ID(), "error", err)
		return
	}
	m.refreshHighScore()
}

func (m *Model) logEnd(reason string) {
	m.logger.Info("session ended",
		"level_id", m.game.ID(),
		"user", m.config.Username,
		"reason", reason,
		"score", m.gameState.Score,
		"duration", time.Since(m.started).Round(time.Second),
	)
}

func (m *Model) refreshHighScore() {
	m.game.SetHighScore(m.highScoreOrZero())
}

func (m *Model) highScoreOrZero() int {
	if m.store == nil {
		return 0
	}
	hs, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not read high score", "level_id", m.game.ID(), "error", err)
		return 0
	}
	return hs
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// BackToMenu reports whether the player left the game for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the player asked to quit the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// GameResult is what the game program reports when it exits.
type GameResult struct {
	Config     core.RuntimeConfig
	Score      int
	BackToMenu bool
	Quit       bool
}

// Run plays one level until the player goes back or quits.
func Run(g *game.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (GameResult, error) {
	model := NewModel(g, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return GameResult{Config: cfg}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return GameResult{Config: cfg}, nil
	}
	return GameResult{
		Config:     m.config,
		Score:      m.gameState.Score,
		BackToMenu: m.BackToMenu(),
		Quit:       m.IsQuitting(),
	}, nil
}
