package billiard

import "math"

// Obstacle is the tagged-variant interface every obstacle kind implements.
// Per spec.md §9 this replaces the dynamic dispatch of the source with a
// single Go interface — the same role the teacher's `material` interface
// plays for HyperSphere/Cell5/Cell8/...: one dispatch point, many concrete
// geometric solvers, no shared base type.
type Obstacle interface {
	// Name returns a human-readable label.
	Name() string
	// NormalAt returns the unit outward normal at pos (toward the
	// pflag-true side, for ray-splittable obstacles).
	NormalAt(pos Vec2) Vec2
	// Distance returns the signed distance from pos to the obstacle;
	// positive means "correct side" (PeriodicWall inverts this convention).
	Distance(pos Vec2) Real
	// CollisionTime returns the non-negative time until p's next contact
	// with this obstacle, or +Inf if none.
	CollisionTime(p Particle) Real
}

// Splittable is implemented by obstacle kinds that carry a mutable
// propagation flag (pflag) for ray-splitting (spec.md §3).
type Splittable interface {
	Obstacle
	PFlag() bool
	SetPFlag(bool)
}

// sig returns the relocator's sign convention for an obstacle: -1 for
// standard obstacles (we want to end up on the correct, non-negative-distance
// side), +1 for PeriodicWall (we want to end up just past the wall, spec.md
// §4.F).
func sig(o Obstacle) Real {
	if _, ok := o.(*PeriodicWall); ok {
		return 1
	}
	return -1
}

// lineCollisionTime solves the straight/magnetic-agnostic part of the
// straight-particle × infinite-line family (spec.md §4.B): with normal n and
// a point s on the line, denominator d = vel·n; if d ≥ 0 the particle is not
// approaching and the obstacle is never hit; otherwise t = ((s-pos)·n)/d.
func lineCollisionTime(pos, vel, s, n Vec2) Real {
	d := vel.Dot(n)
	if d >= 0 {
		return math.Inf(1)
	}
	t := s.Sub(pos).Dot(n) / d
	if t <= geomEps {
		return math.Inf(1)
	}
	return t
}

// segmentParam returns the parameter u such that s + u·(e-s) = p, assuming p
// lies on the line through s and e. Used by FiniteWall/PolygonWall to bound
// the intersection to the segment.
func segmentParam(s, e, p Vec2) Real {
	d := e.Sub(s)
	len2 := d.Dot(d)
	if len2 == 0 {
		return 0
	}
	return p.Sub(s).Dot(d) / len2
}

// diskCollisionRoots solves the straight-particle × circle quadratic
// (spec.md §4.B): |pos + t·vel - center|² = r². Returns every root > geomEps,
// ascending. Most callers (Disk, RandomDisk, Antidot) only ever want the
// nearest one; Semicircle needs both, since the nearer root may land on the
// missing half of the arc while the farther one is the true hit.
func diskCollisionRoots(pos, vel, center Vec2, r Real) []Real {
	oc := pos.Sub(center)
	a := vel.Dot(vel)
	b := 2 * oc.Dot(vel)
	c := oc.Dot(oc) - r*r
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	inv2a := 1 / (2 * a)
	t0 := (-b - sq) * inv2a
	t1 := (-b + sq) * inv2a
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	var roots []Real
	if t0 > geomEps {
		roots = append(roots, t0)
	}
	if t1 > geomEps {
		roots = append(roots, t1)
	}
	return roots
}

// diskCollisionTime returns the smallest positive root, or +Inf.
func diskCollisionTime(pos, vel, center Vec2, r Real) Real {
	roots := diskCollisionRoots(pos, vel, center, r)
	if len(roots) == 0 {
		return math.Inf(1)
	}
	return roots[0]
}
