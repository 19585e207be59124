package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	GameOver bool // The game reached a terminal phase
	Won      bool // Terminal phase was a win
	Paused   bool
	Moves    int // Moves that changed the board
	MaxTile  int // Largest displayed tile value
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
