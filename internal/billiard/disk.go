package billiard

import "math"

// Disk is a circular obstacle; the interior of the circle is the "wrong
// side" (spec.md §3).
type Disk struct {
	label  string
	Center Vec2
	Radius Real
}

func NewDisk(name string, center Vec2, radius Real) *Disk {
	return &Disk{label: name, Center: center, Radius: radius}
}

func (d *Disk) Name() string { return d.label }
func (d *Disk) NormalAt(pos Vec2) Vec2 {
	return pos.Sub(d.Center).Norm()
}
func (d *Disk) Distance(pos Vec2) Real {
	return pos.Sub(d.Center).Len() - d.Radius
}

func (d *Disk) CollisionTime(p Particle) Real {
	switch q := p.(type) {
	case *StraightParticle:
		return diskCollisionTime(q.Pos, q.Vel, d.Center, d.Radius)
	case *MagneticParticle:
		hits := circleCircleHits(q.Center, q.Radius(), d.Center, d.Radius)
		return earliestMagneticHit(q, hits, nil)
	default:
		return math.Inf(1)
	}
}

// RandomDisk behaves like Disk for collision-time purposes; its specular
// reflection is replaced by a uniform-random reflection in the resolver.
type RandomDisk struct {
	label  string
	Center Vec2
	Radius Real
}

func NewRandomDisk(name string, center Vec2, radius Real) *RandomDisk {
	return &RandomDisk{label: name, Center: center, Radius: radius}
}

func (d *RandomDisk) Name() string { return d.label }
func (d *RandomDisk) NormalAt(pos Vec2) Vec2 {
	return pos.Sub(d.Center).Norm()
}
func (d *RandomDisk) Distance(pos Vec2) Real {
	return pos.Sub(d.Center).Len() - d.Radius
}

func (d *RandomDisk) CollisionTime(p Particle) Real {
	switch q := p.(type) {
	case *StraightParticle:
		return diskCollisionTime(q.Pos, q.Vel, d.Center, d.Radius)
	case *MagneticParticle:
		hits := circleCircleHits(q.Center, q.Radius(), d.Center, d.Radius)
		return earliestMagneticHit(q, hits, nil)
	default:
		return math.Inf(1)
	}
}

// Ellipse is a supplemented obstacle kind (SPEC_FULL.md, Module B): a
// rotated, axis-scaled circle. Its collision-time solve unrotates and
// unscales into a unit-circle frame, then reduces to the same quadratic as
// Disk — the same transform the teacher's intersectRayHyperSphere applies to
// go from an ellipsoid to a unit hypersphere, dropped here from 4D to 2D.
type Ellipse struct {
	label      string
	Center     Vec2
	A, B       Real // semi-axes
	angle      Real
	cosA, sinA Real
}

func NewEllipse(name string, center Vec2, a, b, angle Real) *Ellipse {
	return &Ellipse{
		label: name, Center: center, A: a, B: b, angle: angle,
		cosA: math.Cos(angle), sinA: math.Sin(angle),
	}
}

// toUnitFrame maps a world-space point into the ellipse's unrotated,
// unit-circle local frame.
func (e *Ellipse) toUnitFrame(v Vec2) Vec2 {
	rel := v.Sub(e.Center)
	// unrotate by -angle
	lx := rel.X*e.cosA + rel.Y*e.sinA
	ly := -rel.X*e.sinA + rel.Y*e.cosA
	return Vec2{lx / e.A, ly / e.B}
}

// rotateToWorld maps a local-frame direction back into world space
// (rotation only, no scale — used for normals).
func (e *Ellipse) rotateToWorld(v Vec2) Vec2 {
	return Vec2{v.X*e.cosA - v.Y*e.sinA, v.X*e.sinA + v.Y*e.cosA}
}

func (e *Ellipse) Name() string { return e.label }

func (e *Ellipse) NormalAt(pos Vec2) Vec2 {
	u := e.toUnitFrame(pos)
	// gradient of (x/a)^2+(y/b)^2 in local unit-circle coords is (x, y);
	// converting back to the true ellipse normal requires an extra 1/A,1/B
	// factor before rotating back to world space.
	n := Vec2{u.X / e.A, u.Y / e.B}
	return e.rotateToWorld(n).Norm()
}

func (e *Ellipse) Distance(pos Vec2) Real {
	u := e.toUnitFrame(pos)
	// Approximate signed distance via the unit-circle radius deficit,
	// scaled back by the arithmetic mean of the semi-axes; exact only when
	// A == B, but sign (inside/outside) is always correct, which is all the
	// relocator and evolution driver require.
	return (u.Len() - 1) * (e.A + e.B) / 2
}

func (e *Ellipse) CollisionTime(p Particle) Real {
	switch q := p.(type) {
	case *StraightParticle:
		lo := e.toUnitFrame(q.Pos)
		// direction in local frame (no translation, scale only)
		ld := Vec2{
			X: (q.Vel.X*e.cosA + q.Vel.Y*e.sinA) / e.A,
			Y: (-q.Vel.X*e.sinA + q.Vel.Y*e.cosA) / e.B,
		}
		return diskCollisionTime(lo, ld, Vec2{}, 1)
	case *MagneticParticle:
		// Sample the local-frame image of the cyclotron circle is not
		// itself a circle in general (affine map of a circle is an
		// ellipse); instead intersect in world space against the circles
		// of radius max(A,B) and min(A,B) and refine by bisection on
		// distance-to-zero along the arc.
		return magneticEllipseHit(q, e)
	default:
		return math.Inf(1)
	}
}

// magneticEllipseHit finds the smallest t>0 at which the magnetic particle's
// arc crosses the ellipse boundary (Distance == 0), by bracketing candidate
// crossings against the bounding circle of radius max(A,B) and min(A,B) and
// bisecting the sign change of Distance along the arc.
func magneticEllipseHit(q *MagneticParticle, e *Ellipse) Real {
	rOuter := math.Max(e.A, e.B)
	rInner := math.Min(e.A, e.B)
	outerHits := circleCircleHits(q.Center, q.Radius(), e.Center, rOuter)
	best := math.Inf(1)
	for _, pt := range outerHits {
		t, ok := magneticHitTime(q, pt)
		if !ok {
			continue
		}
		// bracket [0, t] may or may not contain a true crossing; it is
		// bisected only if Distance changes sign between its ends.
		if ct, found := bisectArcCrossing(q, e, 0, t); found && ct < best {
			best = ct
		}
	}
	innerHits := circleCircleHits(q.Center, q.Radius(), e.Center, rInner)
	for _, pt := range innerHits {
		t, ok := magneticHitTime(q, pt)
		if !ok {
			continue
		}
		if ct, found := bisectArcCrossing(q, e, 0, t); found && ct < best {
			best = ct
		}
	}
	return best
}

func bisectArcCrossing(q *MagneticParticle, e *Ellipse, lo, hi Real) (Real, bool) {
	fLo := e.Distance(PropagatePos(q, lo))
	fHi := e.Distance(PropagatePos(q, hi))
	if fLo == 0 {
		return lo, lo > geomEps
	}
	if (fLo > 0) == (fHi > 0) {
		return 0, false
	}
	for i := 0; i < 60; i++ {
		mid := (lo + hi) / 2
		fMid := e.Distance(PropagatePos(q, mid))
		if (fMid > 0) == (fLo > 0) {
			lo, fLo = mid, fMid
		} else {
			hi = mid
		}
	}
	t := (lo + hi) / 2
	if t <= geomEps {
		return 0, false
	}
	return t, true
}
