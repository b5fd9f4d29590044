package billiard

import "math"

// Semicircle is a Disk restricted to the half-plane defined by Facedir
// (spec.md §3, §4.B): the same quadratic solve as Disk, but candidate hit
// points must additionally satisfy (hit-Center)·Facedir ≥ 0.
type Semicircle struct {
	label    string
	Center   Vec2
	Radius   Real
	Facedir  Vec2 // unit
}

func NewSemicircle(name string, center Vec2, radius Real, facedir Vec2) *Semicircle {
	return &Semicircle{label: name, Center: center, Radius: radius, Facedir: facedir.Norm()}
}

func (s *Semicircle) Name() string { return s.label }
func (s *Semicircle) NormalAt(pos Vec2) Vec2 {
	return pos.Sub(s.Center).Norm()
}
func (s *Semicircle) Distance(pos Vec2) Real {
	return pos.Sub(s.Center).Len() - s.Radius
}

func (s *Semicircle) onFace(pt Vec2) bool {
	return pt.Sub(s.Center).Dot(s.Facedir) >= 0
}

func (s *Semicircle) CollisionTime(p Particle) Real {
	switch q := p.(type) {
	case *StraightParticle:
		// Both circle roots must be tried: the nearer one may fall on the
		// missing half of the arc while the farther one is the true hit
		// (spec.md §4.B).
		for _, t := range diskCollisionRoots(q.Pos, q.Vel, s.Center, s.Radius) {
			hit := q.Pos.Add(q.Vel.Mul(t))
			if s.onFace(hit) {
				return t
			}
		}
		return math.Inf(1)
	case *MagneticParticle:
		hits := circleCircleHits(q.Center, q.Radius(), s.Center, s.Radius)
		return earliestMagneticHit(q, hits, s.onFace)
	default:
		return math.Inf(1)
	}
}
