package birds

import "github.com/vovakirdan/tui-birds/internal/core"

// GapFromDraw derives a gap from one random draw r.
// A non-negative draw fixes the top offset, a negative one the bottom offset;
// the offsets always differ by size.
func GapFromDraw(r, size float64) Gap {
	if r >= 0 {
		return Gap{Top: r, Bottom: r - size}
	}
	return Gap{Top: r + size, Bottom: r}
}

// spawnPipes places a Top/Bottom pair at the spawn column each time the spawn
// timer fires during a round.
func spawnPipes(ctx *Context) {
	if !ctx.SpawnTimer.Tick(ctx.Input.Elapsed) {
		return
	}
	if ctx.State != GameActive {
		return
	}

	cfg := ctx.Config.Pipes
	gap := GapFromDraw(ctx.Rand.Uniform(-cfg.GapRange, cfg.GapRange), cfg.GapSize)
	size := core.Vec{X: cfg.Width, Y: cfg.Height}
	half := cfg.Height / 2

	top := gap
	ctx.World.Spawn(Entity{
		Kind:     KindPipeTop,
		Pos:      core.Vec{X: cfg.SpawnX, Y: gap.Top + half},
		Size:     size,
		Collider: true,
		Gap:      &top,
	})
	bottom := gap
	ctx.World.Spawn(Entity{
		Kind:     KindPipeBottom,
		Pos:      core.Vec{X: cfg.SpawnX, Y: gap.Bottom - half},
		Size:     size,
		Collider: true,
		Gap:      &bottom,
	})
	ctx.Log.Debug("pipes spawned", "top", gap.Top, "bottom", gap.Bottom, "tick", ctx.Tick)
}

// movePipes scrolls pipes during a round, removes the ones past the left edge
// and scores top halves crossing the score column. In PreGame it clears them.
//
// Scoring tests x for exact equality, so it depends on speed dividing the
// distance from the spawn column; config validation enforces that.
func movePipes(ctx *Context) {
	switch ctx.State {
	case GameActive:
		cfg := ctx.Config.Pipes
		despawnX := cfg.DespawnX(ctx.Config.Field)

		var gone []EntityID
		for _, e := range ctx.World.Pipes() {
			e.Pos.X -= cfg.Speed
			if e.Pos.X < despawnX {
				gone = append(gone, e.ID)
			}
			if e.Pos.X == cfg.ScoreX && e.Kind == KindPipeTop {
				ctx.Score++
				ctx.Log.Debug("scored", "score", ctx.Score, "tick", ctx.Tick)
			}
		}
		for _, id := range gone {
			ctx.World.Despawn(id)
		}

	case PreGame:
		for _, e := range ctx.World.Pipes() {
			ctx.World.Despawn(e.ID)
		}
	}
}
