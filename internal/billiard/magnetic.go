package billiard

import "math"

// Magnetic collision-time solvers (spec.md §4.B): intersect the particle's
// circle of radius R = |1/omega| centered at Center with the obstacle's
// geometry, convert each candidate intersection to a traversal angle via
// realangle, then t = |angle|·R. A coarser, 3/4-power time-precision constant
// is used for magnetic forward relocation against PeriodicWall (precision.go)
// because this regime is the worst case for near-tangential incidence.

// realangle returns the signed traversal angle, in the direction consistent
// with omega's sign, from the current position to target on the circle
// centered at center. The result has the same sign as omega and magnitude in
// [0, 2π).
func realangle(center, current, target Vec2, omega Real) Real {
	a0 := math.Atan2(current.Y-center.Y, current.X-center.X)
	a1 := math.Atan2(target.Y-center.Y, target.X-center.X)
	delta := a1 - a0
	if omega > 0 {
		for delta < 0 {
			delta += 2 * math.Pi
		}
		for delta >= 2*math.Pi {
			delta -= 2 * math.Pi
		}
	} else {
		for delta > 0 {
			delta -= 2 * math.Pi
		}
		for delta <= -2*math.Pi {
			delta += 2 * math.Pi
		}
	}
	return delta
}

// magneticHitTime converts a candidate hit point on the particle's cyclotron
// circle into a collision time, guarding against re-hitting the point the
// particle just left.
func magneticHitTime(mp *MagneticParticle, target Vec2) (Real, bool) {
	if target.Sub(mp.Pos).Len() < magneticRehitGuard {
		return 0, false
	}
	delta := realangle(mp.Center, mp.Pos, target, mp.Omega)
	t := delta / mp.Omega
	if t <= geomEps {
		return 0, false
	}
	return t, true
}

// circleCircleHits returns the 0, 1, or 2 intersection points of the circle
// (c1, r1) — the particle's cyclotron path — with the circle (c2, r2) — a
// Disk/RandomDisk/Antidot/Ellipse's bounding circle in the unrotated frame.
func circleCircleHits(c1 Vec2, r1 Real, c2 Vec2, r2 Real) []Vec2 {
	d := c2.Sub(c1)
	dist := d.Len()
	if dist == 0 || dist > r1+r2 || dist < math.Abs(r1-r2) {
		return nil
	}
	a := (r1*r1 - r2*r2 + dist*dist) / (2 * dist)
	h2 := r1*r1 - a*a
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)
	dirUnit := d.Mul(1 / dist)
	mid := c1.Add(dirUnit.Mul(a))
	perp := dirUnit.Perp()
	if h < geomEps {
		return []Vec2{mid}
	}
	return []Vec2{mid.Add(perp.Mul(h)), mid.Sub(perp.Mul(h))}
}

// circleLineHits returns the 0, 1, or 2 intersection points of the circle
// (c, r) with the infinite line through s with unit normal n.
func circleLineHits(c Vec2, r Real, s, n Vec2) []Vec2 {
	d0 := c.Sub(s).Dot(n)
	if math.Abs(d0) > r {
		return nil
	}
	foot := c.Sub(n.Mul(d0))
	half2 := r*r - d0*d0
	if half2 < 0 {
		half2 = 0
	}
	half := math.Sqrt(half2)
	tangent := n.Perp()
	if half < geomEps {
		return []Vec2{foot}
	}
	return []Vec2{foot.Add(tangent.Mul(half)), foot.Sub(tangent.Mul(half))}
}

// earliestMagneticHit scans candidate intersection points and returns the
// smallest valid collision time, or +Inf if none of the candidates are
// admissible (all guarded out or non-positive).
func earliestMagneticHit(mp *MagneticParticle, candidates []Vec2, admissible func(Vec2) bool) Real {
	best := math.Inf(1)
	for _, pt := range candidates {
		if admissible != nil && !admissible(pt) {
			continue
		}
		if t, ok := magneticHitTime(mp, pt); ok && t < best {
			best = t
		}
	}
	return best
}
