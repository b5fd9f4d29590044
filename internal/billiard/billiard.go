package billiard

import "math"

// Billiard is an ordered, index-stable collection of obstacles (spec.md §3,
// §4.C) — the container role the teacher's Scene plays for its per-kind
// AddX slices, generalized here to a single interface slice since Obstacle
// (unlike the teacher's material) is the only dispatch axis this kernel
// needs.
type Billiard struct {
	obstacles []Obstacle
}

// NewBilliard builds a Billiard from an ordered obstacle list. Index
// identity is the slice position and is stable for the simulation's
// lifetime, matching spec.md §3's requirement that RaySplitter indices stay
// valid.
func NewBilliard(obstacles ...Obstacle) *Billiard {
	return &Billiard{obstacles: append([]Obstacle(nil), obstacles...)}
}

// Len returns the number of obstacles.
func (b *Billiard) Len() int { return len(b.obstacles) }

// At returns the obstacle at index i.
func (b *Billiard) At(i int) Obstacle { return b.obstacles[i] }

// Obstacles returns the underlying slice (read-only use expected; callers
// must not mutate it in place — use SetPFlag via the Splittable interface
// instead).
func (b *Billiard) Obstacles() []Obstacle { return b.obstacles }

// NextCollision scans every obstacle's CollisionTime and returns the
// smallest non-negative time and its index, ties broken by lowest index
// (spec.md §4.C). Pure with respect to the billiard: no obstacle state is
// read or written beyond CollisionTime's own (non-mutating) computation.
func (b *Billiard) NextCollision(p Particle) (tmin Real, idx int) {
	tmin = math.Inf(1)
	idx = -1
	for i, o := range b.obstacles {
		t := o.CollisionTime(p)
		if t < tmin {
			tmin, idx = t, i
		}
	}
	return tmin, idx
}

// ResetFlags sets every ray-splittable obstacle's pflag back to true
// (spec.md §4.C).
func (b *Billiard) ResetFlags() {
	for _, o := range b.obstacles {
		if s, ok := o.(Splittable); ok {
			s.SetPFlag(true)
		}
	}
}

// Clone deep-copies the obstacle slice, including each obstacle's pflag
// state: per spec.md §5, every parallel run must own its own Billiard
// because pflag is part of simulation state. Obstacle values are plain
// structs behind pointers, so cloning means allocating a fresh copy of each
// pointee, not copying the pointer.
func (b *Billiard) Clone() *Billiard {
	cloned := make([]Obstacle, len(b.obstacles))
	for i, o := range b.obstacles {
		cloned[i] = cloneObstacle(o)
	}
	return &Billiard{obstacles: cloned}
}

func cloneObstacle(o Obstacle) Obstacle {
	switch v := o.(type) {
	case *InfiniteWall:
		cp := *v
		return &cp
	case *FiniteWall:
		cp := *v
		return &cp
	case *PeriodicWall:
		cp := *v
		return &cp
	case *RandomWall:
		cp := *v
		return &cp
	case *Disk:
		cp := *v
		return &cp
	case *RandomDisk:
		cp := *v
		return &cp
	case *Ellipse:
		cp := *v
		return &cp
	case *Semicircle:
		cp := *v
		return &cp
	case *Antidot:
		cp := *v
		return &cp
	case *SplitterWall:
		cp := *v
		return &cp
	case *PolygonWall:
		cp := *v
		cp.Vertices = append([]Vec2(nil), v.Vertices...)
		cp.normals = append([]Vec2(nil), v.normals...)
		return &cp
	default:
		panic("billiard: cloneObstacle: unknown obstacle kind")
	}
}

// validateObstacleIndices checks every index in idxs is within [0, Len()),
// returning an InvalidArgument error naming the first offender (spec.md §7).
func (b *Billiard) validateObstacleIndices(idxs []int) error {
	for _, i := range idxs {
		if i < 0 || i >= len(b.obstacles) {
			return newError(InvalidArgument, "obstacle index %d out of range [0,%d)", i, len(b.obstacles))
		}
	}
	return nil
}
