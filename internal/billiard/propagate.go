package billiard

import "math"

// PropagatePos computes the would-be position of p after time dt without
// mutating p (spec.md §4.D). Used by the relocator to probe candidate times
// before committing to one.
func PropagatePos(p Particle, dt Real) Vec2 {
	switch q := p.(type) {
	case *StraightParticle:
		return q.Pos.Add(q.Vel.Mul(dt))
	case *MagneticParticle:
		phi0 := AngleOf(q.Vel)
		phi := q.Omega*dt + phi0
		sp, cp := math.Sin(phi), math.Cos(phi)
		sp0, cp0 := math.Sin(phi0), math.Cos(phi0)
		return q.Pos.Add(Vec2{
			X: (sp - sp0) / q.Omega,
			Y: (-cp + cp0) / q.Omega,
		})
	default:
		panic("billiard: unknown particle kind")
	}
}

// PropagatePosVel computes the would-be (position, velocity) pair of p after
// time dt without mutating p. For straight particles the velocity is
// unchanged; for magnetic particles it is the arc's tangent at dt.
func PropagatePosVel(p Particle, dt Real) (Vec2, Vec2) {
	switch q := p.(type) {
	case *StraightParticle:
		return q.Pos.Add(q.Vel.Mul(dt)), q.Vel
	case *MagneticParticle:
		phi0 := AngleOf(q.Vel)
		phi := q.Omega*dt + phi0
		sp, cp := math.Sin(phi), math.Cos(phi)
		sp0, cp0 := math.Sin(phi0), math.Cos(phi0)
		pos := q.Pos.Add(Vec2{
			X: (sp - sp0) / q.Omega,
			Y: (-cp + cp0) / q.Omega,
		})
		return pos, Vec2{cp, sp}
	default:
		panic("billiard: unknown particle kind")
	}
}

// Propagate advances p in place by dt, updating velocity for magnetic motion.
func Propagate(p Particle, dt Real) {
	switch q := p.(type) {
	case *StraightParticle:
		q.Propagate(dt)
	case *MagneticParticle:
		q.Propagate(dt)
	default:
		panic("billiard: unknown particle kind")
	}
}

// PropagateTo commits a (pos, vel) pair already computed by PropagatePosVel
// directly, skipping a redundant re-propagation. The relocator's escalation
// loop ends with exactly such a pair in hand (spec.md §4.F: "commit newpos,
// tmin"); straight particles ignore vel since it never changes in flight.
func PropagateTo(p Particle, pos, vel Vec2) {
	switch q := p.(type) {
	case *StraightParticle:
		q.PropagateTo(pos)
	case *MagneticParticle:
		q.PropagateTo(pos, vel)
	default:
		panic("billiard: unknown particle kind")
	}
}
