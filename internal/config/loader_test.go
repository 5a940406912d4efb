package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultBirdsConfig() {
		t.Errorf("embedded YAML differs from DefaultBirdsConfig():\n%+v\n%+v", cfg, DefaultBirdsConfig())
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: 12.5\n  tick_period: 20ms\npipes:\n  speed: 4\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.Gravity != 12.5 {
		t.Errorf("gravity = %v, expected 12.5", cfg.Physics.Gravity)
	}
	if cfg.Physics.TickPeriod != 20*time.Millisecond {
		t.Errorf("tick_period = %v, expected 20ms", cfg.Physics.TickPeriod)
	}
	if cfg.Pipes.Speed != 4 {
		t.Errorf("speed = %v, expected 4", cfg.Pipes.Speed)
	}
	// Untouched keys keep their defaults
	if cfg.Field.Height != 640 || cfg.Pipes.GapSize != 120 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("physics: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultBirdsConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("pipes:\n  gap_size: 150\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Pipes.GapSize != 150 {
		t.Errorf("gap_size = %v, expected 150 from user config", cfg.Pipes.GapSize)
	}
}

func TestLoadReportsBrokenOverride(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"malformed yaml", "pipes: [\n", false},
		{"invalid value", "pipes:\n  speed: 7\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			t.Chdir(t.TempDir())
			if err := os.MkdirAll("configs", 0o755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(filepath.Join("configs", FileName), []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}

			_, err := Load("")
			if err == nil {
				t.Fatal("Load() should report the broken configs/birds.yaml")
			}
			if !strings.Contains(err.Error(), filepath.Join("configs", FileName)) {
				t.Errorf("error %q does not name the file", err)
			}
			if errors.Is(err, ErrInvalid) != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalid) = %v, expected %v", !tt.invalid, tt.invalid)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BirdsConfig)
	}{
		{"zero speed", func(c *BirdsConfig) { c.Pipes.Speed = 0 }},
		{"speed skips score column", func(c *BirdsConfig) { c.Pipes.Speed = 7 }},
		{"zero tick period", func(c *BirdsConfig) { c.Physics.TickPeriod = 0 }},
		{"negative gap range", func(c *BirdsConfig) { c.Pipes.GapRange = -1 }},
		{"ground fills field", func(c *BirdsConfig) { c.Field.GroundHeight = 640 }},
		{"score right of spawn", func(c *BirdsConfig) { c.Pipes.ScoreX = 300 }},
		{"negative jump duration", func(c *BirdsConfig) { c.Physics.JumpDuration = -time.Millisecond }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBirdsConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}

	if err := DefaultBirdsConfig().Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestDerivedGeometry(t *testing.T) {
	cfg := DefaultBirdsConfig()

	if got := cfg.Field.GroundY(); got != -300 {
		t.Errorf("GroundY() = %v, expected -300", got)
	}
	if got := cfg.Pipes.DespawnX(cfg.Field); got != -304 {
		t.Errorf("DespawnX() = %v, expected -304", got)
	}
}

func TestFieldScreenPos(t *testing.T) {
	field := DefaultBirdsConfig().Field

	tests := []struct {
		name   string
		x, y   float64
		sx, sy float64
	}{
		{"centre", 0, 0, 240, 320},
		{"top left", -240, 320, 0, 0},
		{"bottom right", 240, -320, 480, 640},
		{"ground top", 0, -280, 240, 600},
		{"above centre", 16, 16, 256, 304},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := field.ScreenPos(tt.x, tt.y)
			if sx != tt.sx || sy != tt.sy {
				t.Errorf("ScreenPos(%v, %v) = (%v, %v), expected (%v, %v)", tt.x, tt.y, sx, sy, tt.sx, tt.sy)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultBirdsConfig()
	cfg.Physics.TickPeriod = 20 * time.Millisecond
	cfg.Pipes.Speed = 4

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() of marshaled config failed: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip changed config:\n%+v\n%+v", got, cfg)
	}
}
