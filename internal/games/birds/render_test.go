package birds

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-birds/internal/config"
	"github.com/vovakirdan/tui-birds/internal/core"
)

func renderedGame(t *testing.T) (*Game, *core.Screen) {
	t.Helper()
	g := New(config.DefaultBirdsConfig(), WithRand(fixedRand(0)))
	g.Reset(core.DefaultConfig())
	return g, core.NewScreen(80, 24)
}

func TestRenderPreGame(t *testing.T) {
	g, screen := renderedGame(t)
	g.Render(screen)

	if c := screen.GetCell(40, 12); c.Rune != PlayerChar || c.Color != core.ColorBrightYellow {
		t.Errorf("player cell = %+v", c)
	}
	for _, pos := range [][2]int{{22, 22}, {57, 23}, {40, 23}} {
		if c := screen.GetCell(pos[0], pos[1]); c.Rune != GroundChar || c.Color != core.ColorOrange {
			t.Errorf("ground cell %v = %+v", pos, c)
		}
	}
	if screen.Get(40, 21) == GroundChar {
		t.Error("ground drawn above its top edge")
	}
	if screen.Get(21, 5) != BorderChar || screen.Get(58, 5) != BorderChar {
		t.Error("field borders missing")
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.Contains(screen.String(), "B I R D S") {
		t.Error("title message missing in PreGame")
	}
}

func TestRenderPipesAndGameOver(t *testing.T) {
	g, screen := renderedGame(t)
	ctx := g.Context()
	ctx.State = GameOver
	ctx.Score = 4
	spawnTestPipe(ctx, KindPipeTop, 0).Pos.Y = 320

	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Score: 4") {
		t.Errorf("game over screen missing text:\n%s", out)
	}
	// A pipe spanning the upper half covers the top rows of the field centre.
	if c := screen.GetCell(40, 1); c.Rune != PipeChar || c.Color != core.ColorGreen {
		t.Errorf("pipe cell = %+v", c)
	}
}

func TestRenderUnresetGame(t *testing.T) {
	g := New(config.DefaultBirdsConfig())
	screen := core.NewScreen(10, 4)
	screen.Set(0, 0, 'x')

	g.Render(screen)

	if strings.TrimSpace(screen.String()) != "" {
		t.Errorf("expected a blank screen, got %q", screen.String())
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := New(config.DefaultBirdsConfig())
	g.Reset(core.DefaultConfig())
	screen := core.NewScreen(3, 2)

	g.Render(screen)
}
