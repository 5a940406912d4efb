// Package config provides YAML-based game configuration loading
// for the birds game.
package config

import "time"

// BirdsConfig contains all tunables of the simulation.
// Geometry is in world units; the field is centred on the origin with y up.
type BirdsConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Player  PlayerConfig  `yaml:"player"`
	Physics PhysicsConfig `yaml:"physics"`
	Pipes   PipesConfig   `yaml:"pipes"`
}

// FieldConfig defines the play field and the ground strip along its bottom edge.
type FieldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// PlayerConfig defines the player hitbox.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines the player motion model.
type PhysicsConfig struct {
	Gravity      float64       `yaml:"gravity"`       // Fall delta per second spent falling, per gravity tick
	JumpStep     float64       `yaml:"jump_step"`     // Upward delta per gravity tick while jumping
	TickPeriod   time.Duration `yaml:"tick_period"`   // Gravity timer period
	JumpDuration time.Duration `yaml:"jump_duration"` // Time spent rising before falling starts
}

// PipesConfig defines obstacle spawning, scrolling and scoring.
type PipesConfig struct {
	Width         float64       `yaml:"width"`
	Height        float64       `yaml:"height"`
	SpawnX        float64       `yaml:"spawn_x"`        // Column where pairs appear
	ScoreX        float64       `yaml:"score_x"`        // Column a top half must hit exactly to score
	DespawnMargin float64       `yaml:"despawn_margin"` // Distance past the left edge before removal
	Speed         float64       `yaml:"speed"`          // Leftward delta per simulation tick
	SpawnInterval time.Duration `yaml:"spawn_interval"`
	GapRange      float64       `yaml:"gap_range"` // Random draw range is [-gap_range, gap_range]
	GapSize       float64       `yaml:"gap_size"`  // Distance between the two offsets of a gap
}

// HalfHeight returns half the field height.
func (f FieldConfig) HalfHeight() float64 {
	return f.Height / 2
}

// GroundY returns the centre y of the ground strip.
func (f FieldConfig) GroundY() float64 {
	return -f.HalfHeight() + f.GroundHeight/2
}

// ScreenPos maps a world point (origin at the field centre, y up) to
// pixel coordinates (origin top-left, y down).
func (f FieldConfig) ScreenPos(x, y float64) (sx, sy float64) {
	return x + f.Width/2, f.HalfHeight() - y
}

// DespawnX returns the x below which a pipe half is removed.
func (p PipesConfig) DespawnX(field FieldConfig) float64 {
	return -field.Width/2 - p.DespawnMargin
}
