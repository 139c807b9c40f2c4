// Package sim implements a small steering model used by the playground demo.
// It exists to exercise the vector library the way a simulation consumer
// would: clamped steering forces, velocity damping, path following.
package sim

import (
	"vector-playground/internal/path"
	"vector-playground/internal/vec2"
)

const (
	MaxSpeed     = 3.0  // Units per tick
	MaxForce     = 0.15 // Steering force cap per tick
	Damping      = 0.01 // Velocity bleed per tick
	Lookahead    = 40.0 // Arc-length distance to aim ahead on a path
	ArriveRadius = 25.0 // Distance at which seeking starts slowing down
)

// Particle is a point mass driven by steering forces.
type Particle struct {
	Pos vec2.Vec2
	Vel vec2.Vec2
}

// NewParticle spawns a resting particle at (x, y).
func NewParticle(pos vec2.Vec2) *Particle {
	return &Particle{Pos: pos}
}

// Seek steers toward target, easing off inside the arrival radius, and
// advances one tick.
func (p *Particle) Seek(target vec2.Vec2) {
	desired := target.Sub(p.Pos)
	d := desired.Mag()
	if d == 0 {
		p.step(vec2.Zero())
		return
	}

	speed := MaxSpeed
	if d < ArriveRadius {
		speed = MaxSpeed * d / ArriveRadius
	}
	desired = desired.Normalize().Mul(speed)

	p.step(desired.Sub(p.Vel).Clamp(MaxForce))
}

// Follow steers along a polyline: find the closest point on the course,
// aim at the point a fixed arc length further along, and seek it.
func (p *Particle) Follow(course *path.Polyline) {
	_, segment, _ := course.Closest(p.Pos)

	// Arc length of the closest point, approximated by projecting onto the
	// segment it lies on.
	pts := course.Points()
	a := pts[segment]
	b := pts[(segment+1)%len(pts)]
	along := p.Pos.Sub(a).Proj(b.Sub(a)).Mag()

	var s float64
	for i := 0; i < segment; i++ {
		s += pts[i].Dist(pts[(i+1)%len(pts)])
	}
	s += along

	p.Seek(course.At(s + Lookahead))
}

// step applies a steering force and advances the particle one tick.
func (p *Particle) step(force vec2.Vec2) {
	p.Vel = p.Vel.Add(force).Mul(1 - Damping).Clamp(MaxSpeed)
	p.Pos = p.Pos.Add(p.Vel)
}

// Heading returns the direction of travel in radians, [0, 2*pi).
func (p *Particle) Heading() float64 {
	return p.Vel.Angle()
}

// Speed returns the current scalar speed.
func (p *Particle) Speed() float64 {
	return p.Vel.Mag()
}
