// Package config provides YAML-based game configuration loading and
// difficulty management for the shooters.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/arcade-shooters/internal/core"
)

// Variant names.
const (
	VariantFighter = "fighter"
	VariantTargets = "targets"
	VariantSpace   = "space"
)

// Variants lists every built-in variant in menu order.
var Variants = []string{VariantFighter, VariantTargets, VariantSpace}

// Plane names. "xy" is a screen-space 2D field with Y growing downward,
// "xz" is a 3D field viewed from above with +Z pointing away from the player.
const (
	PlaneXY = "xy"
	PlaneXZ = "xz"
)

// Shape names.
const (
	ShapeBox    = "box"
	ShapeSphere = "sphere"
)

// Motion names for hostiles.
const (
	MotionLinear = "linear" // falls straight down
	MotionBounce = "bounce" // drifts and bounces off the side walls
	MotionHoming = "homing" // steers toward the player every tick
)

// ShooterConfig contains all configuration for one shooter variant.
type ShooterConfig struct {
	Variant     string            `yaml:"variant"`
	Title       string            `yaml:"title"`
	Plane       string            `yaml:"plane"`
	Field       Bounds            `yaml:"field"`
	Player      PlayerConfig      `yaml:"player"`
	Bullets     BulletConfig      `yaml:"bullets"`
	Hostiles    HostileConfig     `yaml:"hostiles"`
	Spawn       SpawnConfig       `yaml:"spawn"`
	Particles   ParticleConfig    `yaml:"particles"`
	Stars       StarConfig        `yaml:"stars"`
	Progression ProgressionConfig `yaml:"progression"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
}

// Range is an inclusive [min, max] sampling interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Point is a configured position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Vec converts the point to a core vector.
func (p Point) Vec() core.Vec3 {
	return core.Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

// Bounds is an axis-aligned region of world space.
type Bounds struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
	MinZ float64 `yaml:"min_z"`
	MaxZ float64 `yaml:"max_z"`
}

// Clamp restricts v to the bounds on every axis.
func (b Bounds) Clamp(v core.Vec3) core.Vec3 {
	return core.Vec3{
		X: core.ClampF(v.X, b.MinX, b.MaxX),
		Y: core.ClampF(v.Y, b.MinY, b.MaxY),
		Z: core.ClampF(v.Z, b.MinZ, b.MaxZ),
	}
}

// Contains reports whether v lies inside the bounds (edges included).
func (b Bounds) Contains(v core.Vec3) bool {
	return v.X >= b.MinX && v.X <= b.MaxX &&
		v.Y >= b.MinY && v.Y <= b.MaxY &&
		v.Z >= b.MinZ && v.Z <= b.MaxZ
}

// Width returns the X extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the Y extent.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Depth returns the Z extent.
func (b Bounds) Depth() float64 { return b.MaxZ - b.MinZ }

// PlayerConfig defines the player ship or gun.
type PlayerConfig struct {
	Start            Point   `yaml:"start"`
	Shape            string  `yaml:"shape"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Radius           float64 `yaml:"radius"`
	Speed            float64 `yaml:"speed"`             // World units per tick while a direction is held
	Vertical         bool    `yaml:"vertical"`          // Up/Down move the player (along Y or Z per plane)
	Bounds           Bounds  `yaml:"bounds"`            // Limits for the player's center
	Health           int     `yaml:"health"`            // 0 = no health pool, hits cost lives directly
	Lives            int     `yaml:"lives"`             // 1 = single-life variant
	ShootCooldown    int     `yaml:"shoot_cooldown"`    // Minimum ticks between shots
	InvincibleFrames int     `yaml:"invincible_frames"` // Granted after losing a life
	Color            string  `yaml:"color"`
}

// BulletConfig defines player projectiles.
type BulletConfig struct {
	Shape    string  `yaml:"shape"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Radius   float64 `yaml:"radius"`
	Speed    float64 `yaml:"speed"`
	Heading  float64 `yaml:"heading"`   // Degrees; xy: screen angle (-90 is up), xz: yaw (0 is +Z)
	MaxRange float64 `yaml:"max_range"` // 0 = unlimited
	Damage   int     `yaml:"damage"`    // Health removed per hit
	Offset   Point   `yaml:"offset"`    // Muzzle offset from the player center
	Bounds   Bounds  `yaml:"bounds"`    // Bullets leaving this region are removed
	Color    string  `yaml:"color"`
}

// HostileConfig defines enemy/target spawn-time attribute ranges.
type HostileConfig struct {
	Motion        string   `yaml:"motion"`
	Shape         string   `yaml:"shape"`
	Size          Range    `yaml:"size"`          // Box edge or sphere size
	IntegerSize   bool     `yaml:"integer_size"`  // Sample whole sizes only
	RadiusScale   float64  `yaml:"radius_scale"`  // Sphere radius = size * radius_scale
	Depth         Range    `yaml:"depth"`         // Integer depth tier (targets); zero range disables
	Speed         Range    `yaml:"speed"`         // Linear fall speed or homing speed
	IntegerSpeed  bool     `yaml:"integer_speed"` // Sample whole speeds only
	DriftX        Range    `yaml:"drift_x"`       // Bounce motion horizontal velocity
	DriftY        Range    `yaml:"drift_y"`       // Bounce motion vertical velocity
	Health        int      `yaml:"health"`
	HealthPerSize float64  `yaml:"health_per_size"`
	Value         int      `yaml:"value"`
	ValuePerSize  float64  `yaml:"value_per_size"`
	ValuePerDepth int      `yaml:"value_per_depth"`
	ContactDamage int      `yaml:"contact_damage"` // 0 disables hostile-player contact
	PlanarContact bool     `yaml:"planar_contact"` // Ignore Y when testing contact in the xz plane
	HitWindow     int      `yaml:"hit_window"`     // Death animation ticks, 0 = removed immediately
	EscapeMargin  float64  `yaml:"escape_margin"`  // Distance past the bottom edge before a hostile escapes
	EscapePenalty int      `yaml:"escape_penalty"` // Lives lost when a hostile escapes
	Recycle       bool     `yaml:"recycle"`        // Escaped or finished hostiles re-enter above the field
	SpawnX        Range    `yaml:"spawn_x"`
	SpawnY        Range    `yaml:"spawn_y"`
	SpawnRing     Range    `yaml:"spawn_ring"`      // Homing: distance from the field origin
	SpawnHeight   Range    `yaml:"spawn_height"`    // Homing: Y band
	SizeFromEdges bool     `yaml:"size_from_edges"` // Spawn X and wall bounces are inset by the size
	Colors        []string `yaml:"colors"`
}

// SpawnConfig defines the spawn timer, capacity and wave quota.
type SpawnConfig struct {
	Interval           int     `yaml:"interval"`       // Base ticks between spawns
	Floor              int     `yaml:"floor"`          // Minimum interval after scaling
	StepPerLevel       int     `yaml:"step_per_level"` // Interval reduction per level
	Capacity           int     `yaml:"capacity"`       // Live hostile limit, 0 = unlimited
	CapacityPerLevel   int     `yaml:"capacity_per_level"`
	Initial            int     `yaml:"initial"`   // Hostiles present right after reset
	WaveSize           int     `yaml:"wave_size"` // Hostiles per wave, 0 = endless
	SpeedBonusPerLevel float64 `yaml:"speed_bonus_per_level"`
}

// ParticleConfig defines explosion bursts.
type ParticleConfig struct {
	BurstSize int      `yaml:"burst_size"`
	Life      Range    `yaml:"life"` // Ticks, sampled as integers
	Speed     float64  `yaml:"speed"`
	Size      Range    `yaml:"size"`
	Shrink    float64  `yaml:"shrink"` // Size lost per tick
	Colors    []string `yaml:"colors"` // Empty = use the destroyed hostile's color
}

// StarConfig defines the decorative background.
type StarConfig struct {
	Count  int      `yaml:"count"`
	Area   Bounds   `yaml:"area"`
	Speed  Range    `yaml:"speed"`
	Size   Range    `yaml:"size"`
	Colors []string `yaml:"colors"`
}

// ProgressionConfig defines levels, waves and the end conditions.
type ProgressionConfig struct {
	ScorePerLevel      int  `yaml:"score_per_level"`      // Level up when score > level*score_per_level, 0 disables
	WinLevel           int  `yaml:"win_level"`            // Reaching this level/wave wins, 0 = endless
	Waves              bool `yaml:"waves"`                // Level advances by clearing waves
	WaveBonus          int  `yaml:"wave_bonus"`           // Score bonus multiplied by the new wave number
	WaveQuietIntervals int  `yaml:"wave_quiet_intervals"` // Spawn intervals without a spawn before a wave completes
	BannerFrames       int  `yaml:"banner_frames"`        // Wave complete banner duration, spawning is held
	SkipIntro          bool `yaml:"skip_intro"`
}

// DifficultyConfig scales the spawn rate and hostile speed.
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled"`        // false = no per-level scaling
	IntervalScale float64 `yaml:"interval_scale"` // Multiplier on the base spawn interval
	SpeedScale    float64 `yaml:"speed_scale"`    // Multiplier on sampled hostile speed
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty input is valid
// and means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	if preset == "" {
		return
	}

	cfg.Difficulty.Enabled = true
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.IntervalScale = 1.25
		cfg.Difficulty.SpeedScale = 0.85
		cfg.Player.Lives += 2
	case DifficultyNormal:
		cfg.Difficulty.IntervalScale = 1.0
		cfg.Difficulty.SpeedScale = 1.0
	case DifficultyHard:
		cfg.Difficulty.IntervalScale = 0.75
		cfg.Difficulty.SpeedScale = 1.2
		cfg.Player.Lives = max(1, cfg.Player.Lives-1)
	}
}

// Validate reports configuration values the engine cannot run with.
func (c ShooterConfig) Validate() error {
	var errs []error

	switch c.Plane {
	case PlaneXY, PlaneXZ:
	default:
		errs = append(errs, fmt.Errorf("plane: unknown value %q", c.Plane))
	}
	for _, f := range []struct{ name, shape string }{
		{"player.shape", c.Player.Shape},
		{"bullets.shape", c.Bullets.Shape},
		{"hostiles.shape", c.Hostiles.Shape},
	} {
		if f.shape != ShapeBox && f.shape != ShapeSphere {
			errs = append(errs, fmt.Errorf("%s: unknown value %q", f.name, f.shape))
		}
	}
	switch c.Hostiles.Motion {
	case MotionLinear, MotionBounce, MotionHoming:
	default:
		errs = append(errs, fmt.Errorf("hostiles.motion: unknown value %q", c.Hostiles.Motion))
	}

	if c.Spawn.Interval <= 0 {
		errs = append(errs, errors.New("spawn.interval: must be positive"))
	}
	if c.Spawn.Floor < 0 || c.Spawn.Floor > c.Spawn.Interval {
		errs = append(errs, errors.New("spawn.floor: must be within [0, interval]"))
	}
	if c.Spawn.Capacity < 0 || c.Spawn.Initial < 0 || c.Spawn.WaveSize < 0 {
		errs = append(errs, errors.New("spawn: capacity, initial and wave_size must not be negative"))
	}
	if c.Player.Lives <= 0 {
		errs = append(errs, errors.New("player.lives: must be positive"))
	}
	if c.Player.Health < 0 {
		errs = append(errs, errors.New("player.health: must not be negative"))
	}
	if c.Bullets.Damage <= 0 {
		errs = append(errs, errors.New("bullets.damage: must be positive"))
	}
	if c.Particles.BurstSize < 0 || c.Particles.Life.Min < 0 {
		errs = append(errs, errors.New("particles: burst_size and life must not be negative"))
	}
	for _, f := range []struct {
		name string
		r    Range
	}{
		{"hostiles.size", c.Hostiles.Size},
		{"hostiles.speed", c.Hostiles.Speed},
		{"particles.life", c.Particles.Life},
		{"particles.size", c.Particles.Size},
	} {
		if f.r.Min > f.r.Max || math.IsNaN(f.r.Min) || math.IsNaN(f.r.Max) {
			errs = append(errs, fmt.Errorf("%s: min %v exceeds max %v", f.name, f.r.Min, f.r.Max))
		}
	}
	for _, list := range [][]string{c.Hostiles.Colors, c.Particles.Colors, c.Stars.Colors} {
		for _, name := range list {
			if _, ok := core.ParseColor(name); !ok {
				errs = append(errs, fmt.Errorf("unknown color %q", name))
			}
		}
	}

	return errors.Join(errs...)
}

// ParseColors maps color names to core colors, skipping unknown names.
func ParseColors(names []string) []core.Color {
	out := make([]core.Color, 0, len(names))
	for _, n := range names {
		if c, ok := core.ParseColor(n); ok {
			out = append(out, c)
		}
	}
	return out
}

// Color parses a single color name, falling back to def.
func Color(name string, def core.Color) core.Color {
	if c, ok := core.ParseColor(name); ok && name != "" {
		return c
	}
	return def
}
