package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// BestScore is the persisted best score for the game being started.
	// Filled by the platform from the stats service; games only display it.
	BestScore int

	// Records holds persisted lower-is-better records (best time, fewest
	// moves) keyed by their stats key. Nil when the game tracks none.
	Records map[string]int
}

// Record returns a persisted record and whether it exists.
func (c RuntimeConfig) Record(key string) (int, bool) {
	v, ok := c.Records[key]
	return v, ok
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickMillis returns the simulated duration of one tick in milliseconds.
func (c RuntimeConfig) TickMillis() int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return Max(1, 1000/rate)
}

// TicksFor converts a duration in milliseconds to a tick count (at least 1).
func (c RuntimeConfig) TicksFor(ms int) int {
	return Max(1, ms/c.TickMillis())
}

// GameState represents the current game state.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game (or round) has ended
	Paused   bool // Whether the game is paused

	// Streak is the consecutive-win streak reached in this game, for games
	// that track one. Zero otherwise.
	Streak int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
