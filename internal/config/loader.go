package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// FileName is the config file looked up in the user and local config directories.
const FileName = "birds.yaml"

// Load loads the birds configuration.
// Search order: customPath -> ~/.arcade/configs/birds.yaml -> ./configs/birds.yaml -> embedded default.
// Files are layered over the defaults, so a file may set only the keys it changes.
func Load(customPath string) (BirdsConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BirdsConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return BirdsConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// User and local files are optional, but one that exists must be valid.
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return BirdsConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return BirdsConfig{}, fmt.Errorf("config: %s: %w", path, err)
		}
		return cfg, nil
	}

	cfg, err := Parse(defaultBirdsYAML)
	if err != nil {
		return DefaultBirdsConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (BirdsConfig, error) {
	cfg := DefaultBirdsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BirdsConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return BirdsConfig{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable simulation.
func (c BirdsConfig) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"field.width", c.Field.Width},
		{"field.height", c.Field.Height},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"pipes.width", c.Pipes.Width},
		{"pipes.height", c.Pipes.Height},
		{"pipes.speed", c.Pipes.Speed},
		{"pipes.gap_size", c.Pipes.GapSize},
		{"physics.tick_period", c.Physics.TickPeriod.Seconds()},
		{"pipes.spawn_interval", c.Pipes.SpawnInterval.Seconds()},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, p.name, p.value)
		}
	}

	if c.Field.GroundHeight < 0 || c.Field.GroundHeight >= c.Field.Height {
		return fmt.Errorf("%w: field.ground_height must be in [0, field.height)", ErrInvalid)
	}
	if c.Physics.JumpDuration < 0 {
		return fmt.Errorf("%w: physics.jump_duration must not be negative", ErrInvalid)
	}
	if c.Pipes.GapRange < 0 {
		return fmt.Errorf("%w: pipes.gap_range must not be negative", ErrInvalid)
	}
	if c.Pipes.ScoreX >= c.Pipes.SpawnX {
		return fmt.Errorf("%w: pipes.score_x must lie left of pipes.spawn_x", ErrInvalid)
	}

	// Scoring compares x for exact equality, so pipes must land on score_x.
	if rem := math.Mod(c.Pipes.SpawnX-c.Pipes.ScoreX, c.Pipes.Speed); rem != 0 {
		return fmt.Errorf("%w: pipes.speed %v never lands on pipes.score_x from pipes.spawn_x", ErrInvalid, c.Pipes.Speed)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Marshal encodes the configuration as YAML that Parse accepts.
func Marshal(cfg BirdsConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
