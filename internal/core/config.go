package core

import "time"

// RuntimeConfig contains configuration passed to a game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame updates per second (default 60)
	Seed     int64 // RNG seed for chart generation

	// Clock returns the current wall-clock time. Nil means time.Now.
	// Beat timing is anchored to it, not to the tick count.
	Clock func() time.Time
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

// Now reads the configured clock.
func (c RuntimeConfig) Now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock()
}

// GameState represents the current state of a run.
type GameState struct {
	Score int  // Current score
	Done  bool // Every beat has been hit or has expired
}

// StepResult is returned by Game.Step() after each update.
type StepResult struct {
	State GameState

	// Sound is true when at least one hit sound was triggered this frame.
	// Several hits in one frame still produce a single cue.
	Sound bool
}
