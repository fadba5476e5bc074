package config

import "math"

// DifficultyManager calculates level-dependent spawn parameters.
type DifficultyManager struct {
	cfg   DifficultyConfig
	spawn SpawnConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig, spawn SpawnConfig) *DifficultyManager {
	if cfg.IntervalScale <= 0 {
		cfg.IntervalScale = 1
	}
	if cfg.SpeedScale <= 0 {
		cfg.SpeedScale = 1
	}
	return &DifficultyManager{cfg: cfg, spawn: spawn}
}

// BaseInterval returns the preset-scaled spawn interval in ticks.
func (d *DifficultyManager) BaseInterval() int {
	return max(1, int(math.Round(float64(d.spawn.Interval)*d.cfg.IntervalScale)))
}

// SpawnInterval returns ticks between spawns at the given level.
// Level 1 runs at the base interval; each level-up recomputes
// max(floor, base - level*step).
func (d *DifficultyManager) SpawnInterval(level int) int {
	base := d.BaseInterval()
	if !d.cfg.Enabled || level <= 1 || d.spawn.StepPerLevel == 0 {
		return base
	}
	return max(max(d.spawn.Floor, 1), base-level*d.spawn.StepPerLevel)
}

// SpeedBonus returns the speed added to hostiles spawned at the given level.
func (d *DifficultyManager) SpeedBonus(level int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	return float64(level) * d.spawn.SpeedBonusPerLevel
}

// SpeedScale returns the preset multiplier on sampled hostile speed.
func (d *DifficultyManager) SpeedScale() float64 {
	return d.cfg.SpeedScale
}

// Capacity returns the live hostile limit at the given level, 0 = unlimited.
func (d *DifficultyManager) Capacity(level int) int {
	if d.spawn.Capacity == 0 && d.spawn.CapacityPerLevel == 0 {
		return 0
	}
	return d.spawn.Capacity + level*d.spawn.CapacityPerLevel
}
