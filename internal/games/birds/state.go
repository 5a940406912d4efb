package birds

// GameState is the lifecycle every system branches on.
type GameState int

const (
	PreGame    GameState = iota // Idle: player pinned, no pipes
	GameActive                  // Simulation running
	GameOver                    // Frozen until a restart press
	Reset                       // One-tick transient consumed by the player respawn
)

// String returns the state name.
func (s GameState) String() string {
	switch s {
	case PreGame:
		return "PreGame"
	case GameActive:
		return "GameActive"
	case GameOver:
		return "GameOver"
	case Reset:
		return "Reset"
	default:
		return "Unknown"
	}
}

// setState is the only writer of ctx.State.
func (ctx *Context) setState(next GameState) {
	if next == ctx.State {
		return
	}
	ctx.Log.Debug("lifecycle", "from", ctx.State, "to", next, "tick", ctx.Tick)
	if next == GameOver {
		ctx.Log.Info("round over", "score", ctx.Score, "tick", ctx.Tick)
	}
	ctx.State = next
}

// advanceLifecycle moves PreGame->GameActive and GameOver->Reset on a jump press
// while input is ready, and re-arms input on any release.
func advanceLifecycle(ctx *Context) {
	if ctx.InputReady && ctx.Input.JumpPressed() {
		switch ctx.State {
		case PreGame:
			ctx.setState(GameActive)
		case GameOver:
			ctx.setState(Reset)
		}
		ctx.InputReady = false
	}
	if ctx.Input.JumpJustReleased() {
		ctx.InputReady = true
	}
}

// resetScore zeroes the score once the lifecycle is back to idle.
func resetScore(ctx *Context) {
	if ctx.State == PreGame && ctx.Score > 0 {
		ctx.Log.Debug("score reset", "was", ctx.Score)
		ctx.Score = 0
	}
}
