package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/arcade-shooters/internal/core"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	for _, variant := range Variants {
		t.Run(variant, func(t *testing.T) {
			data := EmbeddedYAML(variant)
			if len(data) == 0 {
				t.Fatalf("EmbeddedYAML(%q) is empty", variant)
			}
			var fromYAML ShooterConfig
			if err := yaml.Unmarshal(data, &fromYAML); err != nil {
				t.Fatalf("yaml.Unmarshal() error = %v", err)
			}
			if want := Default(variant); !reflect.DeepEqual(fromYAML, want) {
				t.Errorf("embedded %s.yaml differs from Default(%q):\n got %+v\nwant %+v", variant, variant, fromYAML, want)
			}
		})
	}
}

func TestDefaultsValidate(t *testing.T) {
	for _, variant := range Variants {
		if err := Default(variant).Validate(); err != nil {
			t.Errorf("Default(%q).Validate() = %v, expected nil", variant, err)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ShooterConfig)
		want   string
	}{
		{"plane", func(c *ShooterConfig) { c.Plane = "yz" }, "plane"},
		{"motion", func(c *ShooterConfig) { c.Hostiles.Motion = "zigzag" }, "hostiles.motion"},
		{"shape", func(c *ShooterConfig) { c.Bullets.Shape = "cone" }, "bullets.shape"},
		{"interval", func(c *ShooterConfig) { c.Spawn.Interval = 0 }, "spawn.interval"},
		{"lives", func(c *ShooterConfig) { c.Player.Lives = 0 }, "player.lives"},
		{"damage", func(c *ShooterConfig) { c.Bullets.Damage = 0 }, "bullets.damage"},
		{"range", func(c *ShooterConfig) { c.Hostiles.Size = Range{Min: 5, Max: 1} }, "hostiles.size"},
		{"color", func(c *ShooterConfig) { c.Hostiles.Colors = []string{"chartreuse"} }, "chartreuse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultFighterConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %q, expected mention of %q", err, tt.want)
			}
		})
	}
}

func TestValidateErrorOrderIsStable(t *testing.T) {
	cfg := DefaultFighterConfig()
	cfg.Player.Shape = "cone"
	cfg.Bullets.Shape = "cone"
	cfg.Hostiles.Shape = "cone"
	cfg.Hostiles.Size = Range{Min: 5, Max: 1}
	cfg.Particles.Size = Range{Min: 5, Max: 1}

	want := cfg.Validate().Error()
	if !strings.HasPrefix(want, "player.shape") {
		t.Errorf("Validate() = %q, expected player.shape first", want)
	}
	if strings.Index(want, "hostiles.size") > strings.Index(want, "particles.size") {
		t.Errorf("Validate() = %q, expected hostiles.size before particles.size", want)
	}
	for range 20 {
		if got := cfg.Validate().Error(); got != want {
			t.Fatalf("Validate() = %q, expected stable %q", got, want)
		}
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "player:\n  lives: 7\nspawn:\n  interval: 30\n  floor: 10\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(VariantTargets, path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Player.Lives != 7 {
		t.Errorf("Player.Lives = %d, expected 7", cfg.Player.Lives)
	}
	if cfg.Spawn.Interval != 30 {
		t.Errorf("Spawn.Interval = %d, expected 30", cfg.Spawn.Interval)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Hostiles.Motion != MotionBounce {
		t.Errorf("Hostiles.Motion = %q, expected %q", cfg.Hostiles.Motion, MotionBounce)
	}
	if cfg.Variant != VariantTargets {
		t.Errorf("Variant = %q, expected %q", cfg.Variant, VariantTargets)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("pinball", ""); err == nil {
		t.Error("Load(unknown variant) = nil error, expected error")
	}
	if _, err := Load(VariantSpace, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing file) = nil error, expected error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("spawn:\n  interval: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(VariantSpace, bad); err == nil {
		t.Error("Load(invalid values) = nil error, expected error")
	}
}

func TestLoadRejectsOtherVariant(t *testing.T) {
	_, err := LoadWithPreset(VariantFighter, filepath.Join("defaults", "space.yaml"), "")
	if err == nil {
		t.Fatal("LoadWithPreset(fighter, space.yaml) = nil error, expected error")
	}
	for _, name := range []string{VariantFighter, VariantSpace} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name %q", err, name)
		}
	}

	path := filepath.Join(t.TempDir(), "blank.yaml")
	if err := os.WriteFile(path, []byte("variant: \"\"\nplayer:\n  lives: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(VariantTargets, path)
	if err != nil {
		t.Fatalf("Load(blank variant) error = %v", err)
	}
	if cfg.Variant != VariantTargets {
		t.Errorf("Variant = %q, expected %q", cfg.Variant, VariantTargets)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		enabled   bool
		lives     int
		interval  float64
		speedMult float64
	}{
		{DifficultyEasy, true, 5, 1.25, 0.85},
		{DifficultyNormal, true, 3, 1.0, 1.0},
		{DifficultyHard, true, 2, 0.75, 1.2},
		{DifficultyFixed, false, 3, 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultSpaceConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Player.Lives != tt.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Player.Lives, tt.lives)
			}
			if cfg.Difficulty.IntervalScale != tt.interval {
				t.Errorf("IntervalScale = %v, expected %v", cfg.Difficulty.IntervalScale, tt.interval)
			}
			if cfg.Difficulty.SpeedScale != tt.speedMult {
				t.Errorf("SpeedScale = %v, expected %v", cfg.Difficulty.SpeedScale, tt.speedMult)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) error = %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) = nil error, expected error")
	}
}

func TestBoundsClampContains(t *testing.T) {
	b := Bounds{MinX: -20, MaxX: 20, MinY: -5, MaxY: -5, MinZ: -30, MaxZ: -10}

	got := b.Clamp(core.Vec3{X: 25, Y: 0, Z: -40})
	want := core.Vec3{X: 20, Y: -5, Z: -30}
	if got != want {
		t.Errorf("Clamp() = %+v, expected %+v", got, want)
	}
	if !b.Contains(want) {
		t.Errorf("Contains(%+v) = false, expected true", want)
	}
	if b.Contains(core.Vec3{X: 0, Y: -5, Z: 0}) {
		t.Error("Contains(z=0) = true, expected false")
	}
}
