package core

// RuntimeConfig carries platform facts into a game at reset time.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second
	Username string // Authenticated player, shown in the HUD and stored with scores
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
	}
}

// GameState is the platform-facing status of a running game.
type GameState struct {
	Score    int
	GameOver bool // Session reached a terminal state
	Won      bool // Valid only when GameOver
	Paused   bool
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
}
