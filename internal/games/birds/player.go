package birds

import (
	"time"

	"github.com/vovakirdan/tui-birds/internal/core"
)

// Player is the motion state of the player entity.
// Falling and Jumping are never both set.
type Player struct {
	Falling    bool
	Jumping    bool
	FallingFor time.Duration
	JumpingFor time.Duration
}

// Idle reports whether the player is neither rising nor falling.
func (p *Player) Idle() bool {
	return !p.Falling && !p.Jumping
}

func spawnPlayer(ctx *Context) *Entity {
	return ctx.World.Spawn(Entity{
		Kind:   KindPlayer,
		Pos:    core.Vec{},
		Size:   core.Vec{X: ctx.Config.Player.Width, Y: ctx.Config.Player.Height},
		Player: &Player{},
	})
}

func spawnGround(ctx *Context) *Entity {
	field := ctx.Config.Field
	return ctx.World.Spawn(Entity{
		Kind:     KindGround,
		Pos:      core.Vec{Y: field.GroundY()},
		Size:     core.Vec{X: field.Width, Y: field.GroundHeight},
		Collider: true,
	})
}

// playerJump starts a jump on a ready press, restarting any jump or fall in progress.
func playerJump(ctx *Context) {
	e, ok := ctx.World.Player()
	if !ok {
		return
	}
	if ctx.State == GameOver || !ctx.InputReady || !ctx.Input.JumpPressed() {
		return
	}
	p := e.Player
	p.Jumping = true
	p.JumpingFor = 0
	p.FallingFor = 0
	p.Falling = false
}

// playerGravity moves the player once per gravity timer period.
//
// The PreGame pin only applies in the idle arm: a player whose flags are
// still set when the lifecycle reads PreGame keeps its position.
func playerGravity(ctx *Context) {
	e, ok := ctx.World.Player()
	if !ok {
		return
	}
	if !ctx.GravityTimer.Tick(ctx.Input.Elapsed) {
		return
	}

	p := e.Player
	phys := ctx.Config.Physics
	active := ctx.State == GameActive

	switch {
	case p.Falling:
		if !active {
			return
		}
		// Linear ramp on time spent falling, not an integrated velocity.
		e.Pos.Y -= phys.Gravity * p.FallingFor.Seconds()
		p.FallingFor += phys.TickPeriod

	case p.Jumping:
		if !active {
			return
		}
		e.Pos.Y += phys.JumpStep
		p.JumpingFor += phys.TickPeriod
		if p.JumpingFor >= phys.JumpDuration {
			p.JumpingFor = 0
			p.Jumping = false
			p.Falling = true
		}

	default:
		if ctx.State == PreGame {
			e.Pos = core.Vec{}
		}
	}
}

// playerCollide ends the round when the player overlaps any collider.
// The player is left where it is.
func playerCollide(ctx *Context) {
	e, ok := ctx.World.Player()
	if !ok {
		return
	}
	box := e.Box()
	for _, c := range ctx.World.Colliders() {
		if !core.Collide(box, c.Box()) || ctx.State != GameActive {
			continue
		}
		e.Player.Falling = false
		e.Player.FallingFor = 0
		ctx.Log.Debug("collision", "with", c.Kind, "x", c.Pos.X, "y", c.Pos.Y)
		ctx.setState(GameOver)
	}
}

// playerRespawn consumes Reset: the player is replaced by a fresh one and the
// lifecycle returns to PreGame.
func playerRespawn(ctx *Context) {
	if ctx.State != Reset {
		return
	}
	if e, ok := ctx.World.Player(); ok {
		ctx.World.Despawn(e.ID)
		spawnPlayer(ctx)
	}
	ctx.setState(PreGame)
}
