package shooter

import "github.com/vovakirdan/arcade-shooters/internal/config"

// Player is the ship or gun controlled by the user.
type Player struct {
	Body
	Health     int
	Lives      int
	Reload     int // Ticks until the next shot is allowed
	Invincible int // Ticks of remaining invincibility
}

func newPlayer(cfg *config.ShooterConfig) *Player {
	pc := cfg.Player
	return &Player{
		Body: Body{
			Pos:   pc.Bounds.Clamp(pc.Start.Vec()),
			Shape: parseShape(pc.Shape),
			W:     pc.Width,
			H:     pc.Height,
			R:     pc.Radius,
		},
		Health: pc.Health,
		Lives:  pc.Lives,
	}
}

// Move applies one tick of held directions and clamps to the player bounds.
// Up moves toward smaller Y in the xy plane and toward larger Z in xz.
func (p *Player) Move(cfg *config.ShooterConfig, dx, dy float64) {
	step := cfg.Player.Speed
	p.Pos.X += dx * step
	if cfg.Player.Vertical {
		if cfg.Plane == config.PlaneXZ {
			p.Pos.Z -= dy * step
		} else {
			p.Pos.Y += dy * step
		}
	}
	p.Pos = cfg.Player.Bounds.Clamp(p.Pos)
}

// cool counts down the reload and invincibility timers.
func (p *Player) cool() {
	if p.Reload > 0 {
		p.Reload--
	}
	if p.Invincible > 0 {
		p.Invincible--
	}
}

// Shoot fires a bullet if the reload timer allows it.
func (p *Player) Shoot(cfg *config.ShooterConfig) (*Bullet, bool) {
	if p.Reload > 0 {
		return nil, false
	}
	p.Reload = cfg.Player.ShootCooldown

	bc := cfg.Bullets
	return &Bullet{
		Body: Body{
			Pos:   p.Pos.Add(bc.Offset.Vec()),
			Shape: parseShape(bc.Shape),
			W:     bc.Width,
			H:     bc.Height,
			R:     bc.Radius,
		},
		Vel:    headingVelocity(cfg.Plane, bc.Heading, bc.Speed),
		Damage: bc.Damage,
	}, true
}

// Blink reports whether an invincible player should be drawn dimmed this tick.
func (p *Player) Blink() bool {
	return p.Invincible > 0 && p.Invincible%10 < 5
}
