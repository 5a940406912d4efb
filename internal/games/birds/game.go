// Package birds implements a side-scrolling arcade game where a falling
// player jumps through gaps in scrolling pipes.
//
// The simulation is a fixed sequence of systems run once per tick over an
// explicit Context. It has no dependency on any front-end.
package birds

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-birds/internal/config"
	"github.com/vovakirdan/tui-birds/internal/core"
)

// Context is the whole simulation state, handed to every system by reference.
type Context struct {
	Config     config.BirdsConfig
	State      GameState
	Score      int
	InputReady bool // Cleared by a consumed press, set by a release
	World      *World
	Input      core.InputFrame // Input of the tick being simulated

	GravityTimer Timer
	SpawnTimer   Timer
	Rand         Rand
	Log          *log.Logger
	Tick         uint64 // Ticks completed
}

type system struct {
	name string
	run  func(*Context)
}

// schedule is the per-tick system order. The jump runs before the lifecycle
// consumes InputReady; respawn runs before the score reset and the pipe
// clear so one restart press settles in a single tick.
var schedule = []system{
	{"player_jump", playerJump},
	{"lifecycle", advanceLifecycle},
	{"player_gravity", playerGravity},
	{"player_collide", playerCollide},
	{"player_respawn", playerRespawn},
	{"reset_score", resetScore},
	{"spawn_pipes", spawnPipes},
	{"move_pipes", movePipes},
}

// SystemOrder returns the names of the systems in execution order.
func SystemOrder() []string {
	names := make([]string, len(schedule))
	for i, s := range schedule {
		names[i] = s.name
	}
	return names
}

// NewContext builds the startup state: ground and player spawned, lifecycle idle.
func NewContext(cfg config.BirdsConfig, rnd Rand, logger *log.Logger) *Context {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rnd == nil {
		rnd = NewRand(0)
	}
	ctx := &Context{
		Config:       cfg,
		State:        PreGame,
		InputReady:   true,
		World:        NewWorld(),
		GravityTimer: NewTimer(cfg.Physics.TickPeriod),
		SpawnTimer:   NewTimer(cfg.Pipes.SpawnInterval),
		Rand:         rnd,
		Log:          logger,
	}
	spawnGround(ctx)
	spawnPlayer(ctx)
	return ctx
}

// Step runs every system once with the given input.
func (ctx *Context) Step(in core.InputFrame) {
	if in.Elapsed < 0 {
		in.Elapsed = 0
	}
	ctx.Input = in
	for _, s := range schedule {
		s.run(ctx)
	}
	ctx.Tick++
}

// Game adapts a Context to the front-ends: it owns seeding, restarts and rendering.
type Game struct {
	cfg    config.BirdsConfig
	logger *log.Logger
	rand   Rand
	ctx    *Context
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used by the simulation.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithRand replaces the seeded random source.
func WithRand(r Rand) Option {
	return func(g *Game) { g.rand = r }
}

// New creates a game with the given tunables. Call Reset before stepping.
func New(cfg config.BirdsConfig, opts ...Option) *Game {
	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	return g
}

// ID returns the identifier used for recordings.
func (g *Game) ID() string {
	return "birds"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Birds"
}

// Reset discards all state and starts over from startup.
// The RuntimeConfig seed drives gap placement unless a Rand was supplied.
func (g *Game) Reset(rc core.RuntimeConfig) {
	rnd := g.rand
	if rnd == nil {
		rnd = NewRand(rc.Seed)
	}
	g.ctx = NewContext(g.cfg, rnd, g.logger)
	g.logger.Debug("game reset", "seed", rc.Seed)
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.ctx == nil {
		g.Reset(core.DefaultConfig())
	}
	g.ctx.Step(in)
	return core.StepResult{
		State:   g.State(),
		Effects: g.ctx.World.DrainEffects(),
	}
}

// State returns the summary front-ends display.
func (g *Game) State() core.GameState {
	if g.ctx == nil {
		return core.GameState{Phase: PreGame.String(), Idle: true}
	}
	return core.GameState{
		Phase:    g.ctx.State.String(),
		Score:    g.ctx.Score,
		GameOver: g.ctx.State == GameOver,
		Idle:     g.ctx.State == PreGame,
	}
}

// Context exposes the simulation state for renderers. Nil before Reset.
func (g *Game) Context() *Context {
	return g.ctx
}

// Config returns the tunables the game was built with.
func (g *Game) Config() config.BirdsConfig {
	return g.cfg
}
