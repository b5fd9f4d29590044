package billiard

import (
	"fmt"
	"math"

	polyclip "github.com/akavel/polyclip-go"
)

// PolygonWall is a supplemented obstacle kind (SPEC_FULL.md, Module B): a
// convex polygon boundary. Its collision-time solve is a min over edges of
// the same InfiniteWall-style per-edge solve FiniteWall uses, looped over
// edges; its normal at a position is that of whichever edge the position is
// closest to.
//
// Construction rejects any polygon that turns clockwise at a vertex
// (non-convex or clockwise), and is further validated with polyclip-go the
// way ByteArena's clipOrientedRectangles validates a swept trajectory
// rectangle: the polygon is clipped against itself (INTERSECTION), and the
// result must be a single piece with (within tolerance) the same area as the
// input — otherwise the polygon is rejected.
type PolygonWall struct {
	label    string
	Vertices []Vec2 // counter-clockwise, interior to the left of each edge
	normals  []Vec2 // outward unit normal per edge i -> i+1
}

// NewPolygonWall validates vertices as a simple, convex, counter-clockwise
// polygon and builds the per-edge outward normals.
func NewPolygonWall(name string, vertices []Vec2) (*PolygonWall, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("billiard: polygon wall %q needs at least 3 vertices, got %d", name, len(vertices))
	}
	if err := validateConvexSimple(vertices); err != nil {
		return nil, fmt.Errorf("billiard: polygon wall %q: %w", name, err)
	}
	normals := make([]Vec2, len(vertices))
	n := len(vertices)
	for i := range vertices {
		a, b := vertices[i], vertices[(i+1)%n]
		edge := b.Sub(a)
		// interior is to the left of a CCW edge, so the outward normal is
		// the edge direction rotated by -π/2 (clockwise quarter turn).
		normals[i] = Vec2{edge.Y, -edge.X}.Norm()
	}
	return &PolygonWall{label: name, Vertices: vertices, normals: normals}, nil
}

// validateConvexSimple requires the polygon to turn counter-clockwise (or go
// straight) at every vertex, which rejects concave and clockwise polygons,
// then clips it against itself with polyclip-go and requires the
// intersection to be a single piece with the same area as the original (up
// to a relative tolerance).
func validateConvexSimple(vertices []Vec2) error {
	n := len(vertices)
	for i := range vertices {
		a, b, c := vertices[i], vertices[(i+1)%n], vertices[(i+2)%n]
		if b.Sub(a).Cross(c.Sub(b)) < 0 {
			return fmt.Errorf("non-convex or clockwise polygon (clockwise turn at vertex %d)", (i+1)%n)
		}
	}
	contour := make(polyclip.Contour, len(vertices))
	for i, v := range vertices {
		contour[i] = polyclip.Point{X: v.X, Y: v.Y}
	}
	poly := polyclip.Polygon{contour}
	result := poly.Construct(polyclip.INTERSECTION, poly)
	if len(result) != 1 {
		return fmt.Errorf("self-intersection detected (%d disjoint pieces)", len(result))
	}
	area := polygonArea(vertices)
	clippedArea := polygonArea(polyclipToVec2(result[0]))
	if math.Abs(area-clippedArea) > 1e-9*math.Max(1, math.Abs(area)) {
		return fmt.Errorf("non-convex or self-intersecting polygon (area %.6g vs clipped %.6g)", area, clippedArea)
	}
	return nil
}

func polyclipToVec2(c polyclip.Contour) []Vec2 {
	out := make([]Vec2, len(c))
	for i, p := range c {
		out[i] = Vec2{p.X, p.Y}
	}
	return out
}

func polygonArea(vs []Vec2) Real {
	var a Real
	n := len(vs)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += vs[i].X*vs[j].Y - vs[j].X*vs[i].Y
	}
	return math.Abs(a) / 2
}

func (w *PolygonWall) Name() string { return w.label }

func (w *PolygonWall) NormalAt(pos Vec2) Vec2 {
	best := 0
	bestDist := math.Inf(1)
	n := len(w.Vertices)
	for i := 0; i < n; i++ {
		a, b := w.Vertices[i], w.Vertices[(i+1)%n]
		u := clamp(segmentParam(a, b, pos), 0, 1)
		proj := a.Add(b.Sub(a).Mul(u))
		d := pos.Sub(proj).Len()
		if d < bestDist {
			bestDist, best = d, i
		}
	}
	return w.normals[best]
}

func (w *PolygonWall) Distance(pos Vec2) Real {
	// signed distance to the nearest edge, negative outside the polygon
	inside := true
	minDist := math.Inf(1)
	n := len(w.Vertices)
	for i := 0; i < n; i++ {
		a, b := w.Vertices[i], w.Vertices[(i+1)%n]
		d := pos.Sub(a).Dot(w.normals[i])
		if d > 0 {
			inside = false
		}
		u := clamp(segmentParam(a, b, pos), 0, 1)
		proj := a.Add(b.Sub(a).Mul(u))
		dist := pos.Sub(proj).Len()
		if dist < minDist {
			minDist = dist
		}
	}
	if inside {
		return minDist
	}
	return -minDist
}

func (w *PolygonWall) CollisionTime(p Particle) Real {
	switch q := p.(type) {
	case *StraightParticle:
		best := math.Inf(1)
		n := len(w.Vertices)
		for i := 0; i < n; i++ {
			a, b := w.Vertices[i], w.Vertices[(i+1)%n]
			// the line solve wants the normal facing the particle, which is
			// inside the polygon, so the outward edge normal is negated.
			t := lineCollisionTime(q.Pos, q.Vel, a, w.normals[i].Mul(-1))
			if math.IsInf(t, 1) {
				continue
			}
			hit := q.Pos.Add(q.Vel.Mul(t))
			u := segmentParam(a, b, hit)
			if u < 0 || u > 1 {
				continue
			}
			if t < best {
				best = t
			}
		}
		return best
	case *MagneticParticle:
		best := math.Inf(1)
		n := len(w.Vertices)
		for i := 0; i < n; i++ {
			a, b := w.Vertices[i], w.Vertices[(i+1)%n]
			hits := circleLineHits(q.Center, q.Radius(), a, w.normals[i])
			t := earliestMagneticHit(q, hits, func(pt Vec2) bool {
				u := segmentParam(a, b, pt)
				return u >= 0 && u <= 1
			})
			if t < best {
				best = t
			}
		}
		return best
	default:
		return math.Inf(1)
	}
}
