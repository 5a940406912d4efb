package birds

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-birds/internal/config"
	"github.com/vovakirdan/tui-birds/internal/core"
)

const tick = 10 * time.Millisecond

// fixedRand always draws the same value.
type fixedRand float64

func (f fixedRand) Uniform(lo, hi float64) float64 {
	return float64(f)
}

func newTestContext(t *testing.T) *Context {
	t.Helper()
	return NewContext(config.DefaultBirdsConfig(), fixedRand(40), nil)
}

func idleFrame() core.InputFrame {
	return core.InputFrame{Elapsed: tick}
}

func pressFrame() core.InputFrame {
	return core.InputFrame{Elapsed: tick, Key: core.Button{Pressed: true, JustPressed: true}}
}

func holdFrame() core.InputFrame {
	return core.InputFrame{Elapsed: tick, Key: core.Button{Pressed: true}}
}

func releaseFrame() core.InputFrame {
	return core.InputFrame{Elapsed: tick, Key: core.Button{JustReleased: true}}
}

func mustPlayer(t *testing.T, ctx *Context) *Entity {
	t.Helper()
	p, ok := ctx.World.Player()
	if !ok {
		t.Fatal("player not spawned")
	}
	return p
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
