package core

import "time"

// Control identifies a physical control bound to the jump action.
type Control int

const (
	ControlKey     Control = iota // Space (and Up/W in the terminal)
	ControlPointer                // Left mouse button
)

// String returns a human-readable name for the control.
func (c Control) String() string {
	switch c {
	case ControlKey:
		return "key"
	case ControlPointer:
		return "pointer"
	default:
		return "unknown"
	}
}

// Button is the state of one control during a single tick: its level
// plus the edges derived from the previous tick.
type Button struct {
	Pressed      bool // Held down this tick
	JustPressed  bool // Went down this tick
	JustReleased bool // Went up this tick
}

// ButtonTracker derives edge events from successive level samples.
type ButtonTracker struct {
	down bool
}

// Sample records the level for the current tick and returns the resulting state.
func (t *ButtonTracker) Sample(pressed bool) Button {
	b := Button{
		Pressed:      pressed,
		JustPressed:  pressed && !t.down,
		JustReleased: !pressed && t.down,
	}
	t.down = pressed
	return b
}

// Down reports the last sampled level.
func (t *ButtonTracker) Down() bool {
	return t.down
}

// InputFrame is everything the simulation reads from the outside world in one tick.
type InputFrame struct {
	Elapsed time.Duration // Time since the previous tick, never negative
	Key     Button
	Pointer Button
}

// Control returns the state of the given control.
func (f InputFrame) Control(c Control) Button {
	if c == ControlPointer {
		return f.Pointer
	}
	return f.Key
}

// JumpPressed reports whether any jump control is held this tick.
func (f InputFrame) JumpPressed() bool {
	return f.Key.Pressed || f.Pointer.Pressed
}

// JumpJustPressed reports whether any jump control went down this tick.
func (f InputFrame) JumpJustPressed() bool {
	return f.Key.JustPressed || f.Pointer.JustPressed
}

// JumpJustReleased reports whether any jump control went up this tick.
func (f InputFrame) JumpJustReleased() bool {
	return f.Key.JustReleased || f.Pointer.JustReleased
}

// InputSampler turns raw control levels into input frames with a fixed tick duration.
// Front-ends own one sampler and feed it the levels they observe each tick.
type InputSampler struct {
	Tick    time.Duration
	key     ButtonTracker
	pointer ButtonTracker
}

// NewInputSampler creates a sampler producing frames of the given tick duration.
func NewInputSampler(tick time.Duration) *InputSampler {
	return &InputSampler{Tick: tick}
}

// Sample builds the frame for the current tick from the two control levels.
func (s *InputSampler) Sample(key, pointer bool) InputFrame {
	return InputFrame{
		Elapsed: s.Tick,
		Key:     s.key.Sample(key),
		Pointer: s.pointer.Sample(pointer),
	}
}

// Levels returns the last sampled level of each control.
func (s *InputSampler) Levels() (key, pointer bool) {
	return s.key.Down(), s.pointer.Down()
}

// TickDuration converts a tick rate into the fixed elapsed time per tick.
func TickDuration(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}
