package shooter

import (
	"github.com/vovakirdan/arcade-shooters/internal/config"
	"github.com/vovakirdan/arcade-shooters/internal/core"
)

// Frame is the read-only render data produced by one tick.
type Frame struct {
	Tick    int
	Variant Variant
	Title   string
	Plane   string
	Field   config.Bounds
	Waves   bool // Level counts cleared waves
	Phase   Phase
	Paused  bool
	Quit    bool

	Score     int
	Level     int
	Lives     int
	Health    int
	MaxHealth int
	Banner    int

	Player    PlayerView
	Bullets   []BodyView
	Hostiles  []HostileView
	Particles []ParticleView
	Stars     []StarView

	Events []Event
}

// BodyView is a positioned shape.
type BodyView struct {
	Body
	Color core.Color
}

// PlayerView is the player as drawn.
type PlayerView struct {
	BodyView
	Invincible bool
	Blink      bool
}

// HostileView is a hostile as drawn.
type HostileView struct {
	BodyView
	Size     float64
	Depth    int
	Hit      bool
	HitTimer int
}

// ParticleView is a particle as drawn.
type ParticleView struct {
	Pos     core.Vec3
	Size    float64
	Life    int
	MaxLife int
	Color   core.Color
}

// Alpha returns the remaining life fraction in [0, 1].
func (p ParticleView) Alpha() float64 {
	return lifeFraction(p.Life, p.MaxLife)
}

// StarView is a background star as drawn.
type StarView struct {
	Pos   core.Vec3
	Size  float64
	Color core.Color
}

// Ended reports whether the frame shows a finished game.
func (f Frame) Ended() bool {
	return f.Phase.Ended()
}

// snapshot copies the engine state into a Frame.
func (e *Engine) snapshot(quit bool) Frame {
	st := e.state
	p := st.Player
	f := Frame{
		Tick:      st.Tick,
		Variant:   Variant(e.cfg.Variant),
		Title:     e.cfg.Title,
		Plane:     e.cfg.Plane,
		Field:     e.cfg.Field,
		Waves:     e.cfg.Progression.Waves,
		Phase:     st.Phase,
		Paused:    st.Paused,
		Quit:      quit,
		Score:     st.Score,
		Level:     st.Level,
		Lives:     p.Lives,
		Health:    p.Health,
		MaxHealth: e.cfg.Player.Health,
		Banner:    st.Banner,
		Player: PlayerView{
			BodyView:   BodyView{Body: p.Body, Color: e.playerColor},
			Invincible: p.Invincible > 0,
			Blink:      p.Blink(),
		},
		Bullets:   make([]BodyView, len(st.Bullets)),
		Hostiles:  make([]HostileView, len(st.Hostiles)),
		Particles: make([]ParticleView, len(st.Particles)),
		Stars:     make([]StarView, len(st.Stars)),
	}
	for i, b := range st.Bullets {
		f.Bullets[i] = BodyView{Body: b.Body, Color: e.bulletColor}
	}
	for i, h := range st.Hostiles {
		f.Hostiles[i] = HostileView{
			BodyView: BodyView{Body: h.Body, Color: h.Color},
			Size:     h.Size,
			Depth:    h.Depth,
			Hit:      h.Hit,
			HitTimer: h.HitTimer,
		}
	}
	for i, pt := range st.Particles {
		f.Particles[i] = ParticleView{Pos: pt.Pos, Size: pt.Size, Life: pt.Life, MaxLife: pt.MaxLife, Color: pt.Color}
	}
	for i, s := range st.Stars {
		f.Stars[i] = StarView{Pos: s.Pos, Size: s.Size, Color: s.Color}
	}
	if len(st.events) > 0 {
		f.Events = append([]Event(nil), st.events...)
	}
	return f
}
