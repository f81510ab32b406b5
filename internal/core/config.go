package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 10)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level, 0 while no run is active
	Lives    int  // Remaining lives
	Playing  bool // Whether a run is in progress
	GameOver bool // Whether the game over screen is showing
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// RunEnded reports whether moving from prev to cur finished a run that should
// be recorded, and returns the state to record. A run finishes when the game
// over screen appears, or when a run with a positive score is abandoned.
func RunEnded(prev, cur GameState) (GameState, bool) {
	if cur.GameOver && !prev.GameOver {
		return cur, true
	}
	if prev.Playing && !cur.Playing && !cur.GameOver && prev.Score > 0 {
		return prev, true
	}
	return GameState{}, false
}
