// Package window runs the game in a desktop window with Ebitengine.
// The window samples the jump controls once per Update, so the game sees
// real key and mouse release edges.
package window

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-birds/internal/config"
	"github.com/vovakirdan/tui-birds/internal/core"
	"github.com/vovakirdan/tui-birds/internal/games/birds"
	"github.com/vovakirdan/tui-birds/internal/replay"
	"github.com/vovakirdan/tui-birds/internal/storage"
)

var (
	skyColor    = color.RGBA{0x4e, 0xc0, 0xca, 0xff}
	groundColor = color.RGBA{0xde, 0xd8, 0x95, 0xff}
	pipeColor   = color.RGBA{0x55, 0x80, 0x22, 0xff}
	playerColor = color.RGBA{0xf8, 0xd8, 0x20, 0xff}
)

// Options configures the window front-end.
type Options struct {
	Store  *storage.Store // Nil disables recording
	Record bool
	Logger *log.Logger
}

// Window adapts a birds game to ebiten.Game.
type Window struct {
	game     *birds.Game
	field    config.FieldConfig
	rc       core.RuntimeConfig
	sampler  *core.InputSampler
	recorder *replay.Recorder
	store    *storage.Store
	logger   *log.Logger
	savedID  int64
}

// New creates a window front-end and resets the game.
func New(game *birds.Game, rc core.RuntimeConfig, opts Options) (*Window, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rc.TickRate <= 0 {
		rc.TickRate = 60
	}
	game.Reset(rc)

	w := &Window{
		game:    game,
		field:   game.Config().Field,
		rc:      rc,
		sampler: core.NewInputSampler(core.TickDuration(rc.TickRate)),
		store:   opts.Store,
		logger:  logger,
	}
	if opts.Record && opts.Store != nil {
		rec, err := replay.NewRecorder(game, rc, "window")
		if err != nil {
			return nil, err
		}
		w.recorder = rec
	}
	return w, nil
}

// Update samples the controls and steps the simulation once.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	key := ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	pointer := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	frame := w.sampler.Sample(key, pointer)

	if w.recorder != nil {
		w.recorder.Observe(frame)
	}
	w.game.Step(frame)
	return nil
}

// Draw paints the world with y flipped so that up is up.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	ctx := w.game.Context()
	if ctx == nil {
		return
	}

	for _, e := range ctx.World.Entities() {
		var c color.Color
		switch e.Kind {
		case birds.KindGround:
			c = groundColor
		case birds.KindPipeTop, birds.KindPipeBottom:
			c = pipeColor
		default:
			continue
		}
		w.fillBox(screen, e.Box(), c)
	}
	// Player last so it stays visible when overlapping a pipe.
	if p, ok := ctx.World.Player(); ok {
		w.fillBox(screen, p.Box(), playerColor)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", ctx.Score), 8, 8)
	switch ctx.State {
	case birds.PreGame:
		ebitenutil.DebugPrintAt(screen, "SPACE or click to start", int(w.field.Width)/2-70, int(w.field.Height)/4)
	case birds.GameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER - SPACE to retry", int(w.field.Width)/2-78, int(w.field.Height)/4)
	}
}

// fillBox converts a world box (centre, y up) to screen pixels and fills it.
func (w *Window) fillBox(screen *ebiten.Image, b core.Box, c color.Color) {
	x, y := w.field.ScreenPos(b.X-b.W/2, b.Y+b.H/2)
	vector.FillRect(screen, float32(x), float32(y), float32(b.W), float32(b.H), c, false)
}

// Layout keeps the logical screen the size of the play field.
func (w *Window) Layout(_, _ int) (int, int) {
	return int(w.field.Width), int(w.field.Height)
}

// Close stores the recording, once.
func (w *Window) Close() {
	if w.recorder == nil || w.store == nil {
		return
	}
	rec := w.recorder
	w.recorder = nil
	if rec.Ticks() == 0 {
		return
	}
	id, err := w.store.SaveRun(rec.Finish(w.game.State()))
	if err != nil {
		w.logger.Warn("could not save run", "error", err)
		return
	}
	w.savedID = id
	w.logger.Info("run saved", "id", id, "ticks", rec.Ticks())
}

// SavedRunID returns the ID of the stored recording, or 0.
func (w *Window) SavedRunID() int64 {
	return w.savedID
}

// Run opens the window and blocks until it is closed.
func Run(game *birds.Game, rc core.RuntimeConfig, opts Options) (int64, error) {
	w, err := New(game, rc, opts)
	if err != nil {
		return 0, err
	}

	ebiten.SetWindowSize(int(w.field.Width), int(w.field.Height))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(w.rc.TickRate)

	runErr := ebiten.RunGame(w)
	w.Close()
	if runErr != nil {
		return w.SavedRunID(), fmt.Errorf("window: %w", runErr)
	}
	return w.SavedRunID(), nil
}
