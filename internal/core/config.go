package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Sound identifies a fire-and-forget audio cue emitted by a game.
type Sound int

const (
	SoundJump Sound = iota
	SoundCollision
)

// SoundEvent is a discrete audio cue. Pitch is a frequency hint in Hz;
// platforms are free to ignore it.
type SoundEvent struct {
	Sound Sound
	Pitch float64
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Sounds []SoundEvent
}
