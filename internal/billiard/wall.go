package billiard

import "math"

// InfiniteWall is treated as an infinite line for the collision-time solve;
// Normal points into the billiard interior (spec.md §3).
type InfiniteWall struct {
	label      string
	Start, End Vec2
	Normal     Vec2 // unit, points into the interior
}

func NewInfiniteWall(name string, start, end, normal Vec2) *InfiniteWall {
	return &InfiniteWall{label: name, Start: start, End: end, Normal: normal.Norm()}
}

func (w *InfiniteWall) Name() string        { return w.label }
func (w *InfiniteWall) NormalAt(Vec2) Vec2  { return w.Normal }
func (w *InfiniteWall) Distance(pos Vec2) Real {
	return pos.Sub(w.Start).Dot(w.Normal)
}

func (w *InfiniteWall) CollisionTime(p Particle) Real {
	switch q := p.(type) {
	case *StraightParticle:
		return lineCollisionTime(q.Pos, q.Vel, w.Start, w.Normal)
	case *MagneticParticle:
		hits := circleLineHits(q.Center, q.Radius(), w.Start, w.Normal)
		return earliestMagneticHit(q, hits, nil)
	default:
		return math.Inf(1)
	}
}

// FiniteWall bounds the InfiniteWall solve to the segment parameter [0,1] and
// can additionally mark itself as a door (escape boundary).
type FiniteWall struct {
	label      string
	Start, End Vec2
	Normal     Vec2 // unit, points into the interior
	IsDoor     bool
}

func NewFiniteWall(name string, start, end, normal Vec2, isDoor bool) *FiniteWall {
	return &FiniteWall{label: name, Start: start, End: end, Normal: normal.Norm(), IsDoor: isDoor}
}

func (w *FiniteWall) Name() string       { return w.label }
func (w *FiniteWall) NormalAt(Vec2) Vec2 { return w.Normal }
func (w *FiniteWall) Distance(pos Vec2) Real {
	return pos.Sub(w.Start).Dot(w.Normal)
}

func (w *FiniteWall) CollisionTime(p Particle) Real {
	switch q := p.(type) {
	case *StraightParticle:
		t := lineCollisionTime(q.Pos, q.Vel, w.Start, w.Normal)
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
		hits := circleLineHits(q.Center, q.Radius(), w.Start, w.Normal)
		return earliestMagneticHit(q, hits, func(pt Vec2) bool {
			u := segmentParam(w.Start, w.End, pt)
			return u >= 0 && u <= 1
		})
	default:
		return math.Inf(1)
	}
}

// PeriodicWall teleports the particle by Translation on collision; its
// magnitude, not just direction, matters (it is the unit-cell translation),
// so NormalAt returns a unit vector for the interface contract while
// Translation (used for both the collision-time solve and the periodicity
// update) keeps its full length. The collision_time formula is scale
// invariant in the normal used, and distance only scales by |Translation|
// (its sign is unchanged), so Translation can be passed directly into the
// same line solver InfiniteWall uses.
type PeriodicWall struct {
	label       string
	Start, End  Vec2
	Translation Vec2
}

func NewPeriodicWall(name string, start, end, translation Vec2) *PeriodicWall {
	return &PeriodicWall{label: name, Start: start, End: end, Translation: translation}
}

func (w *PeriodicWall) Name() string       { return w.label }
func (w *PeriodicWall) NormalAt(Vec2) Vec2 { return w.Translation.Norm() }
func (w *PeriodicWall) Distance(pos Vec2) Real {
	return pos.Sub(w.Start).Dot(w.Translation)
}

func (w *PeriodicWall) CollisionTime(p Particle) Real {
	switch q := p.(type) {
	case *StraightParticle:
		return lineCollisionTime(q.Pos, q.Vel, w.Start, w.Translation)
	case *MagneticParticle:
		hits := circleLineHits(q.Center, q.Radius(), w.Start, w.Translation.Norm())
		return earliestMagneticHit(q, hits, nil)
	default:
		return math.Inf(1)
	}
}

// RandomWall behaves like InfiniteWall for collision-time purposes; its
// specular reflection is replaced by a uniform-random reflection in the
// resolver (resolve.go).
type RandomWall struct {
	label      string
	Start, End Vec2
	Normal     Vec2
}

func NewRandomWall(name string, start, end, normal Vec2) *RandomWall {
	return &RandomWall{label: name, Start: start, End: end, Normal: normal.Norm()}
}

func (w *RandomWall) Name() string       { return w.label }
func (w *RandomWall) NormalAt(Vec2) Vec2 { return w.Normal }
func (w *RandomWall) Distance(pos Vec2) Real {
	return pos.Sub(w.Start).Dot(w.Normal)
}

func (w *RandomWall) CollisionTime(p Particle) Real {
	switch q := p.(type) {
	case *StraightParticle:
		return lineCollisionTime(q.Pos, q.Vel, w.Start, w.Normal)
	case *MagneticParticle:
		hits := circleLineHits(q.Center, q.Radius(), w.Start, w.Normal)
		return earliestMagneticHit(q, hits, nil)
	default:
		return math.Inf(1)
	}
}
