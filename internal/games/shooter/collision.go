package shooter

import "github.com/vovakirdan/arcade-shooters/internal/config"

// Resolver applies bullet-hostile and hostile-player collisions.
type Resolver struct {
	cfg *config.ShooterConfig
}

// NewResolver creates a collision resolver for a config.
func NewResolver(cfg *config.ShooterConfig) *Resolver {
	return &Resolver{cfg: cfg}
}

// Resolve runs both collision passes over the state in insertion order.
// Bullets hit the first overlapping hostile only. Destroyed hostiles add
// their value to the score and queue one particle burst. Nothing collides
// once the game has ended earlier in the tick.
func (r *Resolver) Resolve(st *State) {
	if st.Phase != PhasePlaying {
		return
	}
	r.bulletsVsHostiles(st)
	if r.cfg.Hostiles.ContactDamage > 0 {
		r.hostilesVsPlayer(st)
	}
}

func (r *Resolver) bulletsVsHostiles(st *State) {
	for _, b := range st.Bullets {
		if b.Removed {
			continue
		}
		for _, h := range st.Hostiles {
			if h.Removed || h.Hit || !Overlaps(b.Body, h.Body) {
				continue
			}
			b.Removed = true
			h.Health = max(0, h.Health-b.Damage)
			if h.Health == 0 {
				r.destroy(st, h)
			}
			break
		}
	}
}

// destroy scores a hostile and starts its hit animation or removes it.
func (r *Resolver) destroy(st *State, h *Hostile) {
	st.addScore(h.Value)
	st.queueBurst(h.Pos, h.Color)
	st.emit(EventKill, h.Pos, h.Value)
	if r.cfg.Hostiles.HitWindow > 0 {
		h.Hit = true
		return
	}
	h.Removed = true
}

func (r *Resolver) hostilesVsPlayer(st *State) {
	p := st.Player
	overlap := Overlaps
	if r.cfg.Hostiles.PlanarContact {
		overlap = overlapsPlanar
	}
	for _, h := range st.Hostiles {
		if st.Phase != PhasePlaying {
			return
		}
		if h.Removed || h.Hit || !overlap(p.Body, h.Body) {
			continue
		}
		h.Removed = true
		st.queueBurst(h.Pos, h.Color)
		if p.Invincible > 0 {
			continue
		}
		r.damagePlayer(st, r.cfg.Hostiles.ContactDamage)
	}
}

// damagePlayer applies contact damage. Variants without a health pool
// lose a life per hit.
func (r *Resolver) damagePlayer(st *State, amount int) {
	p := st.Player
	st.emit(EventPlayerHit, p.Pos, amount)
	if r.cfg.Player.Health > 0 {
		p.Health = max(0, p.Health-amount)
		if p.Health > 0 {
			return
		}
	}
	r.loseLife(st)
}

// loseLife consumes one life. The last life ends the game; otherwise
// health refills and invincibility starts.
func (r *Resolver) loseLife(st *State) {
	p := st.Player
	p.Lives = max(0, p.Lives-1)
	st.emit(EventLifeLost, p.Pos, p.Lives)
	if p.Lives == 0 {
		st.Phase = PhaseGameOver
		st.emit(EventGameOver, p.Pos, st.Score)
		return
	}
	p.Health = r.cfg.Player.Health
	p.Invincible = r.cfg.Player.InvincibleFrames
}

// escape charges the penalty for a hostile that left the field.
func (r *Resolver) escape(st *State, h *Hostile) {
	st.emit(EventEscape, h.Pos, r.cfg.Hostiles.EscapePenalty)
	for range r.cfg.Hostiles.EscapePenalty {
		if st.Phase != PhasePlaying {
			return
		}
		r.loseLife(st)
	}
}
