package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/birds.yaml
var defaultBirdsYAML []byte

// DefaultBirdsConfig returns the default configuration.
func DefaultBirdsConfig() BirdsConfig {
	return BirdsConfig{
		Field: FieldConfig{
			Width:        480,
			Height:       640,
			GroundHeight: 40,
		},
		Player: PlayerConfig{
			Width:  32,
			Height: 32,
		},
		Physics: PhysicsConfig{
			Gravity:      9.8,
			JumpStep:     9.8,
			TickPeriod:   10 * time.Millisecond,
			JumpDuration: 50 * time.Millisecond,
		},
		Pipes: PipesConfig{
			Width:         64,
			Height:        640,
			SpawnX:        240,
			ScoreX:        0,
			DespawnMargin: 64,
			Speed:         2,
			SpawnInterval: time.Second,
			GapRange:      64,
			GapSize:       120,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBirdsYAML
}
