package shooter

import (
	"github.com/vovakirdan/arcade-shooters/internal/config"
	"github.com/vovakirdan/arcade-shooters/internal/core"
)

// Particle is a short-lived explosion fragment. It never collides.
type Particle struct {
	Pos     core.Vec3
	Vel     core.Vec3
	Size    float64
	Life    int
	MaxLife int
	Color   core.Color
}

// Advance integrates one tick and reports whether the particle expired.
func (p *Particle) Advance(shrink float64) bool {
	p.Pos = p.Pos.Add(p.Vel)
	p.Life--
	p.Size = max(0, p.Size-shrink)
	return p.Life <= 0
}

// Alpha returns the remaining life fraction in [0, 1].
func (p *Particle) Alpha() float64 {
	return lifeFraction(p.Life, p.MaxLife)
}

func lifeFraction(life, maxLife int) float64 {
	if maxLife <= 0 {
		return 0
	}
	return core.ClampF(float64(life)/float64(maxLife), 0, 1)
}

// burst is a pending explosion queued by the collision pass.
type burst struct {
	Pos   core.Vec3
	Color core.Color
}

// ParticleSystem spawns and ages the particles owned by a State.
type ParticleSystem struct {
	cfg     *config.ShooterConfig
	rng     Random
	state   *State
	palette []core.Color
}

func newParticleSystem(cfg *config.ShooterConfig, rng Random, st *State) *ParticleSystem {
	return &ParticleSystem{
		cfg:     cfg,
		rng:     rng,
		state:   st,
		palette: config.ParseColors(cfg.Particles.Colors),
	}
}

// Burst adds one explosion of the configured size at pos. The configured
// palette wins over color when present.
func (ps *ParticleSystem) Burst(pos core.Vec3, color core.Color) {
	pc := ps.cfg.Particles
	maxLife := int(pc.Life.Max)
	for range pc.BurstSize {
		v := core.Vec3{
			X: uniform(ps.rng, -pc.Speed, pc.Speed),
			Y: uniform(ps.rng, -pc.Speed, pc.Speed),
		}
		if ps.cfg.Plane == config.PlaneXZ {
			v.Z = uniform(ps.rng, -pc.Speed, pc.Speed)
		}
		ps.state.Particles = append(ps.state.Particles, &Particle{
			Pos:     pos,
			Vel:     v,
			Size:    uniform(ps.rng, pc.Size.Min, pc.Size.Max),
			Life:    max(1, randInt(ps.rng, int(pc.Life.Min), maxLife)),
			MaxLife: maxLife,
			Color:   pick(ps.rng, ps.palette, color),
		})
	}
}

// Update ages live particles and drops the expired ones, then turns the
// queued bursts into new particles.
func (ps *ParticleSystem) Update() {
	st := ps.state
	live := st.Particles[:0]
	for _, p := range st.Particles {
		if !p.Advance(ps.cfg.Particles.Shrink) {
			live = append(live, p)
		}
	}
	clear(st.Particles[len(live):])
	st.Particles = live

	for _, b := range st.bursts {
		ps.Burst(b.Pos, b.Color)
	}
	st.bursts = st.bursts[:0]
}
