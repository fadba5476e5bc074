package shooter

import (
	"math"

	"github.com/vovakirdan/arcade-shooters/internal/config"
	"github.com/vovakirdan/arcade-shooters/internal/core"
)

// Shape selects the collision test for a body.
type Shape int

const (
	ShapeBox    Shape = iota // Axis-aligned box, W×H in the play plane
	ShapeSphere              // Radius R around Pos
)

func parseShape(s string) Shape {
	if s == config.ShapeSphere {
		return ShapeSphere
	}
	return ShapeBox
}

// Body is the position and bounding shape shared by every collidable entity.
type Body struct {
	Pos   core.Vec3
	Shape Shape
	W, H  float64 // Box extents
	R     float64 // Sphere radius
}

// Radius returns the sphere radius, or half the smaller box extent.
func (b Body) Radius() float64 {
	if b.Shape == ShapeSphere {
		return b.R
	}
	return math.Min(b.W, b.H) / 2
}

// Overlaps reports whether two bodies intersect. Box pairs use a strict
// AABB test; any pair involving a sphere compares the center distance
// against the radius sum.
func Overlaps(a, b Body) bool {
	if a.Shape == ShapeBox && b.Shape == ShapeBox {
		return math.Abs(a.Pos.X-b.Pos.X) < (a.W+b.W)/2 &&
			math.Abs(a.Pos.Y-b.Pos.Y) < (a.H+b.H)/2
	}
	return a.Pos.Dist(b.Pos) < a.Radius()+b.Radius()
}

// overlapsPlanar is Overlaps with the Y axis ignored.
func overlapsPlanar(a, b Body) bool {
	a.Pos.Y, b.Pos.Y = 0, 0
	return Overlaps(a, b)
}

// world is the read-only context entities advance against.
type world struct {
	cfg    *config.ShooterConfig
	motion Motion
	player core.Vec3
	rng    Random
}

// Bullet is a player projectile with a fixed heading.
type Bullet struct {
	Body
	Vel      core.Vec3
	Damage   int
	Traveled float64
	Removed  bool
}

// Advance moves the bullet and reports whether it left play.
func (b *Bullet) Advance(w *world) bool {
	b.Pos = b.Pos.Add(b.Vel)
	b.Traveled += b.Vel.Len()
	if !w.cfg.Bullets.Bounds.Contains(b.Pos) {
		b.Removed = true
	}
	if limit := w.cfg.Bullets.MaxRange; limit > 0 && b.Traveled > limit {
		b.Removed = true
	}
	return b.Removed
}

// Hostile is an enemy ship or target.
type Hostile struct {
	Body
	ID       int
	Size     float64
	Depth    int
	Vel      core.Vec3 // Linear and bounce motion
	Speed    float64   // Homing motion
	Health   int
	Value    int
	Color    core.Color
	Hit      bool // Destroyed, playing the hit animation
	HitTimer int
	Escaped  bool
	Removed  bool
}

// Advance moves the hostile by its motion rule and reports whether it
// should be pruned. Hit hostiles stay in place until the hit window ends.
func (h *Hostile) Advance(w *world) bool {
	if h.Removed {
		return true
	}
	if h.Hit {
		h.HitTimer++
		if h.HitTimer > w.cfg.Hostiles.HitWindow {
			h.Removed = true
		}
		return h.Removed
	}

	switch w.motion {
	case MotionHoming:
		h.steer(w.player, w.cfg.Plane)
		h.Pos = h.Pos.Add(h.Vel)
	case MotionBounce:
		h.Pos = h.Pos.Add(h.Vel)
		inset := 0.0
		if w.cfg.Hostiles.SizeFromEdges {
			inset = h.Size
		}
		if h.Pos.X < w.cfg.Field.MinX+inset || h.Pos.X > w.cfg.Field.MaxX-inset {
			h.Vel.X = -h.Vel.X
		}
	default:
		h.Pos = h.Pos.Add(h.Vel)
	}

	if w.motion != MotionHoming && h.Pos.Y > w.cfg.Field.MaxY+w.cfg.Hostiles.EscapeMargin {
		h.Escaped = true
		h.Removed = true
	}
	return h.Removed
}

// steer points the velocity at the target within the play plane.
func (h *Hostile) steer(target core.Vec3, plane string) {
	d := target.Sub(h.Pos)
	if plane == config.PlaneXZ {
		d.Y = 0
	} else {
		d.Z = 0
	}
	n := d.Len()
	if n == 0 {
		h.Vel = core.Vec3{}
		return
	}
	h.Vel = d.Scale(h.Speed / n)
}

// Star is a background point that drifts and wraps around its area.
type Star struct {
	Pos   core.Vec3
	Speed float64
	Size  float64
	Color core.Color
}

// Advance drifts the star; stars leaving the area re-enter at the far
// edge at a new random position.
func (s *Star) Advance(w *world) {
	a := w.cfg.Stars.Area
	if w.cfg.Plane == config.PlaneXZ {
		s.Pos.Z -= s.Speed
		if s.Pos.Z < a.MinZ {
			s.Pos.Z = a.MaxZ
			s.Pos.X = uniform(w.rng, a.MinX, a.MaxX)
			s.Pos.Y = uniform(w.rng, a.MinY, a.MaxY)
		}
		return
	}
	s.Pos.Y += s.Speed
	if s.Pos.Y > a.MaxY {
		s.Pos.Y = a.MinY
		s.Pos.X = uniform(w.rng, a.MinX, a.MaxX)
	}
}

// headingVelocity converts a heading in degrees into a velocity in the play plane.
func headingVelocity(plane string, heading, speed float64) core.Vec3 {
	rad := heading * math.Pi / 180
	sin, cos := snap(math.Sin(rad)), snap(math.Cos(rad))
	if plane == config.PlaneXZ {
		return core.Vec3{X: sin * speed, Z: cos * speed}
	}
	return core.Vec3{X: cos * speed, Y: sin * speed}
}

// snap drops floating-point residue so axis-aligned headings stay exact.
func snap(v float64) float64 {
	if math.Abs(v) < 1e-12 {
		return 0
	}
	return v
}
