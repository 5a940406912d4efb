// Package replay records the jump control levels of a session and
// re-simulates them. Front-ends step with a fixed elapsed time per tick and
// a seeded random source, so a run is reproduced by its seed, tick rate,
// tunables and the tick-indexed level changes of the two controls.
package replay

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-birds/internal/core"
	"github.com/vovakirdan/tui-birds/internal/registry"
)

// ErrMismatch is returned by Verify when a re-simulation ends elsewhere.
var ErrMismatch = errors.New("replay: run did not reproduce")

// Event is a level change of one control, applied before the given tick.
type Event struct {
	Tick    uint64
	Control core.Control
	Pressed bool
}

// Run is a recorded session.
type Run struct {
	ID         int64 // Assigned by storage
	GameID     string
	Seed       int64
	TickRate   int
	Ticks      uint64
	Config     []byte // Game tunables as YAML
	Events     []Event
	FinalPhase string
	FinalScore int
	Source     string // Front-end that recorded it: play, window, ssh, sim
	CreatedAt  time.Time
}

// Recorder observes the frames a front-end steps the game with.
type Recorder struct {
	run     Run
	key     bool
	pointer bool
}

// NewRecorder starts recording a session of the given game.
func NewRecorder(game registry.Game, rc core.RuntimeConfig, source string) (*Recorder, error) {
	tunables, err := game.Tunables()
	if err != nil {
		return nil, fmt.Errorf("replay: tunables: %w", err)
	}
	return &Recorder{run: Run{
		GameID:   game.ID(),
		Seed:     rc.Seed,
		TickRate: rc.TickRate,
		Config:   tunables,
		Source:   source,
	}}, nil
}

// Observe records the control levels of the next tick's frame.
func (r *Recorder) Observe(in core.InputFrame) {
	if in.Key.Pressed != r.key {
		r.key = in.Key.Pressed
		r.run.Events = append(r.run.Events, Event{Tick: r.run.Ticks, Control: core.ControlKey, Pressed: r.key})
	}
	if in.Pointer.Pressed != r.pointer {
		r.pointer = in.Pointer.Pressed
		r.run.Events = append(r.run.Events, Event{Tick: r.run.Ticks, Control: core.ControlPointer, Pressed: r.pointer})
	}
	r.run.Ticks++
}

// Ticks returns the number of frames observed so far.
func (r *Recorder) Ticks() uint64 {
	return r.run.Ticks
}

// Finish closes the recording with the game's final summary.
func (r *Recorder) Finish(state core.GameState) Run {
	run := r.run
	run.Events = append([]Event(nil), r.run.Events...)
	run.FinalPhase = state.Phase
	run.FinalScore = state.Score
	run.CreatedAt = time.Now()
	return run
}

// Frames rebuilds the input frames of a run.
func Frames(run Run) []core.InputFrame {
	sampler := core.NewInputSampler(core.TickDuration(run.TickRate))
	frames := make([]core.InputFrame, 0, run.Ticks)

	var key, pointer bool
	next := 0
	for tick := uint64(0); tick < run.Ticks; tick++ {
		for next < len(run.Events) && run.Events[next].Tick == tick {
			ev := run.Events[next]
			if ev.Control == core.ControlPointer {
				pointer = ev.Pressed
			} else {
				key = ev.Pressed
			}
			next++
		}
		frames = append(frames, sampler.Sample(key, pointer))
	}
	return frames
}

// Result is the outcome of re-simulating a run.
type Result struct {
	Phase string
	Score int
	Ticks uint64
}

// Matches reports whether the result is the run's recorded outcome.
func (r Result) Matches(run Run) bool {
	return r.Phase == run.FinalPhase && r.Score == run.FinalScore && r.Ticks == run.Ticks
}

// Simulate steps a fresh game instance through the run's frames.
func Simulate(run Run, opts registry.Options) (Result, error) {
	opts.ConfigData = run.Config
	game, err := registry.Create(run.GameID, opts)
	if err != nil {
		return Result{}, fmt.Errorf("replay: %w", err)
	}
	game.Reset(core.RuntimeConfig{TickRate: run.TickRate, Seed: run.Seed})

	res := Result{}
	for _, f := range Frames(run) {
		game.Step(f)
		res.Ticks++
	}
	state := game.State()
	res.Phase = state.Phase
	res.Score = state.Score
	return res, nil
}

// Verify re-simulates a run and returns ErrMismatch if it ends differently.
func Verify(run Run, opts registry.Options) (Result, error) {
	res, err := Simulate(run, opts)
	if err != nil {
		return res, err
	}
	if !res.Matches(run) {
		return res, fmt.Errorf("%w: recorded %s/%d, got %s/%d", ErrMismatch, run.FinalPhase, run.FinalScore, res.Phase, res.Score)
	}
	return res, nil
}
