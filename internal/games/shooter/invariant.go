package shooter

import (
	"errors"
	"fmt"
)

// CheckInvariants reports every violated state invariant. A healthy
// engine always returns nil between ticks.
func (e *Engine) CheckInvariants() error {
	st := e.state
	var errs []error

	if st.Player == nil {
		return errors.New("shooter: no player")
	}
	p := st.Player
	if !e.cfg.Player.Bounds.Contains(p.Pos) {
		errs = append(errs, fmt.Errorf("shooter: player at %+v outside bounds", p.Pos))
	}
	if st.Score < 0 {
		errs = append(errs, fmt.Errorf("shooter: negative score %d", st.Score))
	}
	if p.Lives < 0 || p.Health < 0 {
		errs = append(errs, fmt.Errorf("shooter: negative lives %d or health %d", p.Lives, p.Health))
	}
	if st.Level < 1 {
		errs = append(errs, fmt.Errorf("shooter: level %d below 1", st.Level))
	}
	if st.Phase == PhasePlaying && p.Lives == 0 {
		errs = append(errs, errors.New("shooter: playing with no lives left"))
	}

	for i, b := range st.Bullets {
		if b.Removed {
			errs = append(errs, fmt.Errorf("shooter: removed bullet %d survived prune", i))
		}
	}
	for _, h := range st.Hostiles {
		if h.Removed {
			errs = append(errs, fmt.Errorf("shooter: removed hostile #%d survived prune", h.ID))
		}
		if h.Health < 0 || (!h.Hit && h.Health == 0) {
			errs = append(errs, fmt.Errorf("shooter: hostile #%d alive with health %d", h.ID, h.Health))
		}
	}
	for i, pt := range st.Particles {
		if pt.Life <= 0 || pt.Size < 0 {
			errs = append(errs, fmt.Errorf("shooter: particle %d expired (life %d, size %v)", i, pt.Life, pt.Size))
		}
	}

	return errors.Join(errs...)
}
