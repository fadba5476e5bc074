package shooter

import (
	"math"

	"github.com/vovakirdan/arcade-shooters/internal/config"
	"github.com/vovakirdan/arcade-shooters/internal/core"
)

// Spawner populates the field with hostiles on a frame counter.
type Spawner struct {
	cfg     *config.ShooterConfig
	diff    *config.DifficultyManager
	rng     Random
	motion  Motion
	shape   Shape
	palette []core.Color

	counter int // Ticks since the last spawn
	spawned int // Hostiles spawned in the current wave
}

// NewSpawner creates a spawner for the given config and difficulty.
func NewSpawner(cfg *config.ShooterConfig, diff *config.DifficultyManager, rng Random) *Spawner {
	return &Spawner{
		cfg:     cfg,
		diff:    diff,
		rng:     rng,
		motion:  parseMotion(cfg.Hostiles.Motion),
		shape:   parseShape(cfg.Hostiles.Shape),
		palette: config.ParseColors(cfg.Hostiles.Colors),
	}
}

// Interval returns the ticks between spawns at a level.
func (s *Spawner) Interval(level int) int {
	return s.diff.SpawnInterval(level)
}

// Tick advances the spawn counter and returns a new hostile when the
// interval has elapsed, the field is below capacity and the wave quota
// is not used up. The counter only resets on a spawn.
func (s *Spawner) Tick(st *State, level int) (*Hostile, bool) {
	s.counter++
	if s.counter < s.Interval(level) {
		return nil, false
	}
	if limit := s.diff.Capacity(level); limit > 0 && len(st.Hostiles) >= limit {
		return nil, false
	}
	if s.WaveDone() {
		return nil, false
	}
	s.counter = 0
	s.spawned++
	return s.New(st, level), true
}

// WaveDone reports whether the current wave quota has been spawned.
func (s *Spawner) WaveDone() bool {
	return s.cfg.Spawn.WaveSize > 0 && s.spawned >= s.cfg.Spawn.WaveSize
}

// Quiet reports whether nothing has spawned for the configured number
// of spawn intervals.
func (s *Spawner) Quiet(level int) bool {
	return s.counter > s.cfg.Progression.WaveQuietIntervals*s.Interval(level)
}

// NextWave resets the counter and the wave quota.
func (s *Spawner) NextWave() {
	s.counter = 0
	s.spawned = 0
}

// Hold keeps the counter at zero while spawning is paused.
func (s *Spawner) Hold() {
	s.counter = 0
}

// New builds a hostile with randomized attributes at its spawn position.
func (s *Spawner) New(st *State, level int) *Hostile {
	h := s.roll(st, level)
	hc := s.cfg.Hostiles
	switch s.motion {
	case MotionHoming:
		angle := s.rng.Float64() * 2 * math.Pi
		dist := uniform(s.rng, hc.SpawnRing.Min, hc.SpawnRing.Max)
		h.Pos = core.Vec3{
			X: math.Sin(angle) * dist,
			Y: uniform(s.rng, hc.SpawnHeight.Min, hc.SpawnHeight.Max),
			Z: math.Cos(angle) * dist,
		}
	default:
		h.Pos = core.Vec3{
			X: s.spawnX(h.Size),
			Y: uniform(s.rng, hc.SpawnY.Min, hc.SpawnY.Max),
		}
	}
	return h
}

// Respawn builds a replacement hostile entering just above the field.
func (s *Spawner) Respawn(st *State, level int) *Hostile {
	h := s.roll(st, level)
	h.Pos = core.Vec3{X: s.spawnX(h.Size), Y: s.cfg.Field.MinY - h.Size}
	return h
}

func (s *Spawner) spawnX(size float64) float64 {
	hc := s.cfg.Hostiles
	inset := 0.0
	if hc.SizeFromEdges {
		inset = size
	}
	return uniform(s.rng, hc.SpawnX.Min+inset, hc.SpawnX.Max-inset)
}

// roll samples every spawn-time attribute except the position.
func (s *Spawner) roll(st *State, level int) *Hostile {
	hc := s.cfg.Hostiles

	size := sample(s.rng, hc.Size, hc.IntegerSize)
	depth := 0
	if hc.Depth.Max > 0 {
		depth = randInt(s.rng, int(hc.Depth.Min), int(hc.Depth.Max))
	}

	st.nextID++
	h := &Hostile{
		ID:     st.nextID,
		Size:   size,
		Depth:  depth,
		Health: max(1, hc.Health+int(hc.HealthPerSize*size)),
		Value:  hc.Value + int(hc.ValuePerSize*size) + hc.ValuePerDepth*depth,
		Color:  pick(s.rng, s.palette, core.ColorRed),
	}

	h.Shape = s.shape
	if s.shape == ShapeSphere {
		scale := hc.RadiusScale
		if scale <= 0 {
			scale = 0.5
		}
		h.R = size * scale
	} else {
		h.W, h.H = size, size
	}

	scale := s.diff.SpeedScale()
	switch s.motion {
	case MotionBounce:
		// Nearer targets (small depth) move faster.
		k := 1.0
		if depth > 0 {
			k = (hc.Depth.Max + 1 - float64(depth)) / 2
		}
		h.Vel = core.Vec3{
			X: uniform(s.rng, hc.DriftX.Min, hc.DriftX.Max) * k * scale,
			Y: uniform(s.rng, hc.DriftY.Min, hc.DriftY.Max) * k * scale,
		}
	case MotionHoming:
		h.Speed = sample(s.rng, hc.Speed, hc.IntegerSpeed)*scale + s.diff.SpeedBonus(level)
	default:
		h.Vel = core.Vec3{Y: sample(s.rng, hc.Speed, hc.IntegerSpeed)*scale + s.diff.SpeedBonus(level)}
	}
	return h
}
