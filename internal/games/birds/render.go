package birds

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-birds/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '●'
	PipeChar   = '█'
	GroundChar = '▓'
	BorderChar = '│'
)

// cellAspect is how many columns match the height of one row on a typical terminal.
const cellAspect = 2.0

// viewport maps world units onto a column band of the screen, keeping the
// field's aspect ratio.
type viewport struct {
	x, w, h      int
	sx, sy       float64
	halfW, halfH float64
}

func newViewport(field core.Vec, screenW, screenH int) viewport {
	w := int(math.Round(float64(screenH) * field.X / field.Y * cellAspect))
	w = core.Clamp(w, 1, core.Max(screenW, 1))
	return viewport{
		x:     (screenW - w) / 2,
		w:     w,
		h:     screenH,
		sx:    float64(w) / field.X,
		sy:    float64(screenH) / field.Y,
		halfW: field.X / 2,
		halfH: field.Y / 2,
	}
}

// rect converts a world box to the screen cells it covers, clipped to the viewport columns.
func (v viewport) rect(b core.Box) core.Rect {
	left := (b.X - b.W/2 + v.halfW) * v.sx
	right := (b.X + b.W/2 + v.halfW) * v.sx
	top := (v.halfH - (b.Y + b.H/2)) * v.sy
	bottom := (v.halfH - (b.Y - b.H/2)) * v.sy

	x0 := core.Clamp(int(math.Floor(left)), 0, v.w)
	x1 := core.Clamp(int(math.Ceil(right)), 0, v.w)
	y0 := core.Clamp(int(math.Floor(top)), 0, v.h)
	y1 := core.Clamp(int(math.Ceil(bottom)), 0, v.h)
	return core.NewRect(v.x+x0, y0, x1-x0, y1-y0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.ctx == nil {
		return
	}
	ctx := g.ctx
	field := core.Vec{X: g.cfg.Field.Width, Y: g.cfg.Field.Height}
	vp := newViewport(field, dst.Width(), dst.Height())

	// Field borders
	for y := 0; y < dst.Height(); y++ {
		dst.SetColored(vp.x-1, y, BorderChar, core.ColorGray)
		dst.SetColored(vp.x+vp.w, y, BorderChar, core.ColorGray)
	}

	for _, e := range ctx.World.Entities() {
		r := vp.rect(e.Box())
		switch e.Kind {
		case KindGround:
			dst.FillRect(r, GroundChar, core.ColorOrange)
		case KindPipeTop, KindPipeBottom:
			dst.FillRect(r, PipeChar, core.ColorGreen)
		}
	}

	// Player last so it stays visible when overlapping a pipe.
	if p, ok := ctx.World.Player(); ok {
		r := vp.rect(p.Box())
		if r.W == 0 {
			r.W = 1
		}
		if r.H == 0 {
			r.H = 1
		}
		dst.FillRect(r, PlayerChar, core.ColorBrightYellow)
	}

	dst.DrawText(vp.x+1, 0, fmt.Sprintf(" Score: %d ", ctx.Score))

	switch ctx.State {
	case PreGame:
		drawCenteredMessage(dst, vp, dst.Height()/4, "B I R D S", "SPACE or click to start")
	case GameOver:
		drawCenteredMessage(dst, vp, dst.Height()/4, "GAME OVER", fmt.Sprintf("Score: %d | SPACE to retry", ctx.Score))
	}
}

// drawCenteredMessage draws a message box centred in the viewport, starting at row y.
func drawCenteredMessage(dst *core.Screen, vp viewport, y int, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := vp.x + (vp.w-boxW)/2

	box := core.NewRect(boxX, y, boxW, boxH)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, y+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, y+3, subtitle)
}
