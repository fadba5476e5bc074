package config

import (
	_ "embed"
)

//go:embed defaults/fighter.yaml
var defaultFighterYAML []byte

//go:embed defaults/targets.yaml
var defaultTargetsYAML []byte

//go:embed defaults/space.yaml
var defaultSpaceYAML []byte

var embeddedDefaults = map[string][]byte{
	VariantFighter: defaultFighterYAML,
	VariantTargets: defaultTargetsYAML,
	VariantSpace:   defaultSpaceYAML,
}

// EmbeddedYAML returns the embedded default file for a variant, or nil.
func EmbeddedYAML(variant string) []byte {
	return embeddedDefaults[variant]
}

// Default returns the built-in configuration for a variant.
// Unknown variants get the fighter configuration.
func Default(variant string) ShooterConfig {
	switch variant {
	case VariantTargets:
		return DefaultTargetsConfig()
	case VariantSpace:
		return DefaultSpaceConfig()
	default:
		return DefaultFighterConfig()
	}
}

// DefaultFighterConfig returns the default vertical fighter configuration.
func DefaultFighterConfig() ShooterConfig {
	field := Bounds{MinX: 0, MaxX: 800, MinY: 0, MaxY: 600}
	return ShooterConfig{
		Variant: VariantFighter,
		Title:   "Space Fighter",
		Plane:   PlaneXY,
		Field:   field,
		Player: PlayerConfig{
			Start:         Point{X: 400, Y: 500},
			Shape:         ShapeBox,
			Width:         60,
			Height:        40,
			Speed:         8,
			Vertical:      true,
			Bounds:        Bounds{MinX: 30, MaxX: 770, MinY: 20, MaxY: 580},
			Health:        100,
			Lives:         1,
			ShootCooldown: 12,
			Color:         "bright_cyan",
		},
		Bullets: BulletConfig{
			Shape:   ShapeBox,
			Width:   5,
			Height:  10,
			Speed:   10,
			Heading: -90,
			Damage:  5,
			Offset:  Point{Y: -20},
			Bounds:  Bounds{MinX: -10, MaxX: 810, MinY: -5, MaxY: 605},
			Color:   "yellow",
		},
		Hostiles: HostileConfig{
			Motion:        MotionLinear,
			Shape:         ShapeBox,
			Size:          Range{Min: 30, Max: 30},
			Speed:         Range{Min: 2, Max: 5},
			IntegerSpeed:  true,
			Health:        10,
			Value:         10,
			ContactDamage: 10,
			EscapeMargin:  15,
			SpawnX:        Range{Min: 30, Max: 770},
			SpawnY:        Range{Min: -30, Max: -30},
			Colors:        []string{"red"},
		},
		Spawn: SpawnConfig{
			Interval: 60,
			Floor:    60,
			Capacity: 50,
		},
		Particles: ParticleConfig{
			BurstSize: 20,
			Life:      Range{Min: 20, Max: 40},
			Speed:     2,
			Size:      Range{Min: 2, Max: 6},
			Colors:    []string{"red", "orange", "yellow"},
		},
		Stars: StarConfig{
			Count:  100,
			Area:   field,
			Speed:  Range{Min: 0.2, Max: 1.0},
			Size:   Range{Min: 1, Max: 3},
			Colors: []string{"white", "gray"},
		},
		Progression: ProgressionConfig{
			SkipIntro: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			IntervalScale: 1,
			SpeedScale:    1,
		},
	}
}

// DefaultTargetsConfig returns the default target gallery configuration.
func DefaultTargetsConfig() ShooterConfig {
	return ShooterConfig{
		Variant: VariantTargets,
		Title:   "Target Gallery",
		Plane:   PlaneXY,
		Field:   Bounds{MinX: 0, MaxX: 1000, MinY: 0, MaxY: 700},
		Player: PlayerConfig{
			Start:  Point{X: 500, Y: 600},
			Shape:  ShapeSphere,
			Radius: 27,
			Speed:  20,
			Bounds: Bounds{MinX: 40, MaxX: 960, MinY: 600, MaxY: 600},
			Lives:  3,
			Color:  "white",
		},
		Bullets: BulletConfig{
			Shape:   ShapeSphere,
			Radius:  5,
			Speed:   10,
			Heading: -90,
			Damage:  1,
			Bounds:  Bounds{MinX: 0, MaxX: 1000, MinY: 0, MaxY: 700},
			Color:   "yellow",
		},
		Hostiles: HostileConfig{
			Motion:        MotionBounce,
			Shape:         ShapeSphere,
			Size:          Range{Min: 30, Max: 60},
			IntegerSize:   true,
			RadiusScale:   0.5,
			Depth:         Range{Min: 1, Max: 5},
			DriftX:        Range{Min: -1.5, Max: 1.5},
			DriftY:        Range{Min: 0.2, Max: 0.8},
			Health:        1,
			ValuePerDepth: 100,
			HitWindow:     15,
			EscapePenalty: 1,
			Recycle:       true,
			SpawnX:        Range{Min: 0, Max: 1000},
			SpawnY:        Range{Min: 50, Max: 233},
			SizeFromEdges: true,
			Colors:        []string{"red", "bright_red", "orange", "magenta"},
		},
		Spawn: SpawnConfig{
			Interval:         60,
			Floor:            20,
			StepPerLevel:     5,
			Capacity:         5,
			CapacityPerLevel: 1,
			Initial:          5,
		},
		Particles: ParticleConfig{
			BurstSize: 30,
			Life:      Range{Min: 30, Max: 30},
			Speed:     3,
			Size:      Range{Min: 2, Max: 6},
			Shrink:    0.1,
		},
		Progression: ProgressionConfig{
			ScorePerLevel: 1000,
			WinLevel:      10,
			SkipIntro:     true,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			IntervalScale: 1,
			SpeedScale:    1,
		},
	}
}

// DefaultSpaceConfig returns the default 3D wave shooter configuration.
func DefaultSpaceConfig() ShooterConfig {
	return ShooterConfig{
		Variant: VariantSpace,
		Title:   "Deep Space",
		Plane:   PlaneXZ,
		Field:   Bounds{MinX: -50, MaxX: 50, MinY: -50, MaxY: 50, MinZ: -50, MaxZ: 50},
		Player: PlayerConfig{
			Start:            Point{X: 0, Y: -5, Z: -20},
			Shape:            ShapeSphere,
			Radius:           2,
			Speed:            8,
			Vertical:         true,
			Bounds:           Bounds{MinX: -20, MaxX: 20, MinY: -5, MaxY: -5, MinZ: -30, MaxZ: -10},
			Health:           100,
			Lives:            3,
			ShootCooldown:    1,
			InvincibleFrames: 120,
			Color:            "bright_blue",
		},
		Bullets: BulletConfig{
			Shape:    ShapeSphere,
			Radius:   0.3,
			Speed:    15,
			Heading:  0,
			MaxRange: 100,
			Damage:   10,
			Bounds:   Bounds{MinX: -50, MaxX: 50, MinY: -50, MaxY: 50, MinZ: -50, MaxZ: 50},
			Color:    "yellow",
		},
		Hostiles: HostileConfig{
			Motion:        MotionHoming,
			Shape:         ShapeSphere,
			Size:          Range{Min: 1, Max: 3},
			RadiusScale:   1,
			Speed:         Range{Min: 1, Max: 3},
			HealthPerSize: 2,
			ValuePerSize:  10,
			ContactDamage: 10,
			PlanarContact: true,
			SpawnRing:     Range{Min: 20, Max: 40},
			SpawnHeight:   Range{Min: -5, Max: 5},
			Colors:        []string{"red", "green", "blue", "yellow", "magenta"},
		},
		Spawn: SpawnConfig{
			Interval:           60,
			Floor:              60,
			Capacity:           20,
			WaveSize:           10,
			SpeedBonusPerLevel: 0.2,
		},
		Particles: ParticleConfig{
			BurstSize: 20,
			Life:      Range{Min: 20, Max: 40},
			Speed:     2,
			Size:      Range{Min: 0.1, Max: 0.5},
			Shrink:    0.02,
		},
		Stars: StarConfig{
			Count:  200,
			Area:   Bounds{MinX: -50, MaxX: 50, MinY: -50, MaxY: 50, MinZ: -100, MaxZ: 100},
			Speed:  Range{Min: 0.1, Max: 0.5},
			Size:   Range{Min: 0.01, Max: 0.05},
			Colors: []string{"white", "bright_white", "gray"},
		},
		Progression: ProgressionConfig{
			WinLevel:           10,
			Waves:              true,
			WaveBonus:          1000,
			WaveQuietIntervals: 3,
			BannerFrames:       180,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			IntervalScale: 1,
			SpeedScale:    1,
		},
	}
}
