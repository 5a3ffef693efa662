package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Frontends use ScreenW/ScreenH to size their own output; the simulated world
// keeps its configured dimensions regardless.
type RuntimeConfig struct {
	ScreenW  int   // Output width (terminal columns or window pixels)
	ScreenH  int   // Output height (terminal rows or window pixels)
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the game has ended
	Reason   string // What ended the game ("pipe", "ground", "ceiling", "quit")
	Ticks    int    // Simulated ticks so far
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState
}
