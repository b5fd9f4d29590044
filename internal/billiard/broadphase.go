package billiard

import (
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"
)

// broadphase.go is the sole use of rtreego in this package. spec.md §4.E is
// explicit that next_collision is a linear O(N) scan with "no spatial
// acceleration structure required at this core's fidelity" — wiring an
// R-tree into that hot path would contradict that invariant. Instead
// rtreego indexes obstacle bounding boxes purely as a one-time setup-time
// diagnostic, grounded on ByteArena's MovementState.Bounds()/rtreego.NewTree
// usage in arenaserver/collision.

// obstacleBox wraps an Obstacle with its axis-aligned bounding box so it can
// be indexed as an rtreego.Spatial.
type obstacleBox struct {
	idx   int
	o     Obstacle
	bound *rtreego.Rect
}

func (b *obstacleBox) Bounds() *rtreego.Rect { return b.bound }

// obstacleAABB computes a conservative axis-aligned bounding box for an
// obstacle kind, used only by the diagnostic below — never by
// CollisionTime.
func obstacleAABB(o Obstacle) (min [2]float64, max [2]float64, ok bool) {
	switch v := o.(type) {
	case *Disk:
		min, max = boxAround(v.Center, v.Radius)
		return min, max, true
	case *RandomDisk:
		min, max = boxAround(v.Center, v.Radius)
		return min, max, true
	case *Antidot:
		min, max = boxAround(v.Center, v.Radius)
		return min, max, true
	case *Semicircle:
		min, max = boxAround(v.Center, v.Radius)
		return min, max, true
	case *Ellipse:
		min, max = boxAround(v.Center, math.Max(v.A, v.B))
		return min, max, true
	case *InfiniteWall:
		min, max = segmentBox(v.Start, v.End)
		return min, max, true
	case *FiniteWall:
		min, max = segmentBox(v.Start, v.End)
		return min, max, true
	case *RandomWall:
		min, max = segmentBox(v.Start, v.End)
		return min, max, true
	case *SplitterWall:
		min, max = segmentBox(v.Start, v.End)
		return min, max, true
	case *PolygonWall:
		min, max = polygonBox(v.Vertices)
		return min, max, true
	case *PeriodicWall:
		// PeriodicWall is a transport boundary, not a collidable surface in
		// the overlap sense; excluded from the diagnostic.
		return min, max, false
	default:
		return min, max, false
	}
}

func boxAround(c Vec2, r Real) ([2]float64, [2]float64) {
	return [2]float64{c.X - r, c.Y - r}, [2]float64{c.X + r, c.Y + r}
}

func segmentBox(a, b Vec2) ([2]float64, [2]float64) {
	return [2]float64{math.Min(a.X, b.X), math.Min(a.Y, b.Y)},
		[2]float64{math.Max(a.X, b.X), math.Max(a.Y, b.Y)}
}

func polygonBox(vs []Vec2) ([2]float64, [2]float64) {
	min := [2]float64{math.Inf(1), math.Inf(1)}
	max := [2]float64{math.Inf(-1), math.Inf(-1)}
	for _, v := range vs {
		min[0], min[1] = math.Min(min[0], v.X), math.Min(min[1], v.Y)
		max[0], max[1] = math.Max(max[0], v.X), math.Max(max[1], v.Y)
	}
	return min, max
}

// OverlapWarning describes two obstacles whose bounding boxes overlap.
type OverlapWarning struct {
	I, J   int
	NameI  string
	NameJ  string
}

func (w OverlapWarning) String() string {
	return fmt.Sprintf("obstacle %d (%s) and %d (%s) have overlapping bounding boxes", w.I, w.NameI, w.J, w.NameJ)
}

// CheckObstacleOverlaps builds an rtreego index over every obstacle's
// bounding box and reports pairs whose boxes overlap. This is a setup-time
// diagnostic (cmd/billiard-run prints its warnings before a run); IsPhysical
// and AcceptableRaySplitter do not call it, and it never runs per collision
// step.
func CheckObstacleOverlaps(bd *Billiard) []OverlapWarning {
	var boxes []*obstacleBox
	for i, o := range bd.Obstacles() {
		min, max, ok := obstacleAABB(o)
		if !ok {
			continue
		}
		lengths := []float64{max[0] - min[0], max[1] - min[1]}
		for k, l := range lengths {
			if l <= 0 {
				lengths[k] = 1e-9
			}
		}
		rect, err := rtreego.NewRect([]float64{min[0], min[1]}, lengths)
		if err != nil {
			continue
		}
		boxes = append(boxes, &obstacleBox{idx: i, o: o, bound: rect})
	}
	if len(boxes) == 0 {
		return nil
	}

	spatials := make([]rtreego.Spatial, len(boxes))
	for i, b := range boxes {
		spatials[i] = b
	}
	tree := rtreego.NewTree(2, 25, 50, spatials...)

	seen := make(map[[2]int]bool)
	var warnings []OverlapWarning
	for _, b := range boxes {
		results := tree.SearchIntersect(b.bound, func(results []rtreego.Spatial, object rtreego.Spatial) (refuse, abort bool) {
			return object == rtreego.Spatial(b), false
		})
		for _, r := range results {
			other := r.(*obstacleBox)
			if other.idx == b.idx {
				continue
			}
			key := [2]int{b.idx, other.idx}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			warnings = append(warnings, OverlapWarning{
				I: key[0], J: key[1],
				NameI: bd.At(key[0]).Name(), NameJ: bd.At(key[1]).Name(),
			})
		}
	}
	return warnings
}
