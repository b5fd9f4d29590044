package billiard

import "math"

// Antidot is a ray-splittable Disk (spec.md §3): geometry identical to Disk,
// plus a mutable pflag recording which side of the obstacle the particle
// currently occupies. Its normal points toward the pflag==true side.
type Antidot struct {
	label  string
	Center Vec2
	Radius Real
	pflag  bool
}

func NewAntidot(name string, center Vec2, radius Real) *Antidot {
	return &Antidot{label: name, Center: center, Radius: radius, pflag: true}
}

func (a *Antidot) Name() string    { return a.label }
func (a *Antidot) PFlag() bool     { return a.pflag }
func (a *Antidot) SetPFlag(v bool) { a.pflag = v }

func (a *Antidot) NormalAt(pos Vec2) Vec2 {
	n := pos.Sub(a.Center).Norm()
	if !a.pflag {
		return n.Mul(-1)
	}
	return n
}

func (a *Antidot) Distance(pos Vec2) Real {
	d := pos.Sub(a.Center).Len() - a.Radius
	if !a.pflag {
		return -d
	}
	return d
}

func (a *Antidot) CollisionTime(p Particle) Real {
	switch q := p.(type) {
	case *StraightParticle:
		return diskCollisionTime(q.Pos, q.Vel, a.Center, a.Radius)
	case *MagneticParticle:
		hits := circleCircleHits(q.Center, q.Radius(), a.Center, a.Radius)
		return earliestMagneticHit(q, hits, nil)
	default:
		return math.Inf(1)
	}
}

// SplitterWall is a ray-splittable FiniteWall, for planar ray-splitting
// interfaces (spec.md §3's "ray-splittable variants" applied to a wall
// rather than a disk).
type SplitterWall struct {
	label      string
	Start, End Vec2
	baseNormal Vec2 // unit, the pflag==true-side normal
	pflag      bool
}

func NewSplitterWall(name string, start, end, normal Vec2) *SplitterWall {
	return &SplitterWall{label: name, Start: start, End: end, baseNormal: normal.Norm(), pflag: true}
}

func (w *SplitterWall) Name() string    { return w.label }
func (w *SplitterWall) PFlag() bool     { return w.pflag }
func (w *SplitterWall) SetPFlag(v bool) { w.pflag = v }

func (w *SplitterWall) NormalAt(Vec2) Vec2 {
	if !w.pflag {
		return w.baseNormal.Mul(-1)
	}
	return w.baseNormal
}

func (w *SplitterWall) Distance(pos Vec2) Real {
	d := pos.Sub(w.Start).Dot(w.baseNormal)
	if !w.pflag {
		return -d
	}
	return d
}

func (w *SplitterWall) CollisionTime(p Particle) Real {
	switch q := p.(type) {
	case *StraightParticle:
		t := lineCollisionTime(q.Pos, q.Vel, w.Start, w.baseNormal)
		if math.IsInf(t, 1) {
			return t
		}
		hit := q.Pos.Add(q.Vel.Mul(t))
		u := segmentParam(w.Start, w.End, hit)
		if u < 0 || u > 1 {
			return math.Inf(1)
		}
		return t
	case *MagneticParticle:
		hits := circleLineHits(q.Center, q.Radius(), w.Start, w.baseNormal)
		return earliestMagneticHit(q, hits, func(pt Vec2) bool {
			u := segmentParam(w.Start, w.End, pt)
			return u >= 0 && u <= 1
		})
	default:
		return math.Inf(1)
	}
}
