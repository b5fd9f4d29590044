package billiard

import "math"

// Collision resolver (spec.md §4.G), directly grounded on the teacher's
// reflect4/refract4 in geom.go, dropped from 4D to 2D.

// specular reflects vel across the normal at the collision point:
// vel -= 2·(vel·n)·n.
func specular(p Particle, o Obstacle) {
	n := o.NormalAt(p.Position())
	v := p.Velocity()
	d := 2 * v.Dot(n)
	p.SetVelocity(v.Sub(n.Mul(d)))
}

// randomSpecular samples a new direction uniformly within
// (atan2(n) - 0.95*pi/2, atan2(n) + 0.95*pi/2); the 0.95 factor keeps the
// output away from grazing angles numerically indistinguishable from ±π/2
// (spec.md §4.G).
func randomSpecular(p Particle, o Obstacle, rng randSource) {
	n := o.NormalAt(p.Position())
	base := AngleOf(n)
	spread := 0.95 * math.Pi / 2
	theta := base + (rng.Float64()*2-1)*spread
	p.SetVelocity(Vec2{math.Cos(theta), math.Sin(theta)})
}

// periodicity teleports the particle by the wall's translation and
// decrements current_cell by the same vector; for magnetic particles the
// cyclotron center is shifted identically (spec.md §4.G, Glossary
// "Periodic wall").
func periodicity(p Particle, w *PeriodicWall) {
	p.SetPosition(p.Position().Add(w.Translation))
	p.SetCell(p.Cell().Sub(w.Translation))
	if mp, ok := p.(*MagneticParticle); ok {
		mp.Center = mp.Center.Add(w.Translation)
	}
}

// randSource is the minimal surface the resolver and ray-splitting engine
// need from a PRNG (spec.md §9: "inject a seedable PRNG through the
// evolution entry points for reproducibility"). *rand.Rand satisfies this.
type randSource interface {
	Float64() Real
}

// resolve applies the non-splitting post-collision update for obstacle o,
// dispatching on its random-reflection variants.
func resolve(p Particle, o Obstacle, rng randSource) {
	switch w := o.(type) {
	case *PeriodicWall:
		periodicity(p, w)
	case *RandomWall:
		randomSpecular(p, o, rng)
	case *RandomDisk:
		randomSpecular(p, o, rng)
	default:
		specular(p, o)
	}
}
