package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// GameState is the summary a front-end needs after each tick.
type GameState struct {
	Phase    string // Lifecycle name, e.g. "PreGame"
	Score    int    // Current score
	GameOver bool   // Whether the round has ended
	Idle     bool   // Waiting for the first press of a round
}

// EffectOp is the kind of change an effect reports.
type EffectOp int

const (
	EffectSpawn EffectOp = iota
	EffectDespawn
)

// String returns a human-readable name for the operation.
func (op EffectOp) String() string {
	if op == EffectDespawn {
		return "despawn"
	}
	return "spawn"
}

// Effect is an entity create or destroy request for presentation collaborators.
type Effect struct {
	Op       EffectOp
	EntityID uint64
	Tag      string // "Player", "Ground", "Pipe:Top" or "Pipe:Bottom"
	Collider bool
	Pos      Vec // Centre in world units
	Size     Vec
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the entity effects of the tick.
type StepResult struct {
	State   GameState
	Effects []Effect
}
