package billiard

import "math"

// RaySplitter (spec.md §3, §4.H): governs probabilistic transmission and
// refraction for a set of obstacles. Grounded on the teacher's
// Fresnel-weighted reflect/refract/absorb Russian-roulette split in
// castSingleRay, generalized from a fixed material-derived probability into
// caller-supplied transmission/refraction/newomega functions.
type RaySplitter struct {
	// Oidx lists the obstacle indices this splitter governs.
	Oidx []int
	// Affect lists the obstacle indices whose pflag must flip atomically on
	// transmission; a superset of Oidx.
	Affect []int
	// Transmission returns the transmission probability in [0,1] for
	// incidence angle phi, the obstacle's current pflag, and the particle's
	// cyclotron frequency (0 for straight particles).
	Transmission func(phi Real, pflag bool, omega Real) Real
	// Refraction returns the departure angle relative to the normal of the
	// departure side.
	Refraction func(phi Real, pflag bool, omega Real) Real
	// NewOmega returns the post-transmission cyclotron frequency; defaults
	// to identity (omega unchanged) when nil.
	NewOmega func(omega Real, pflag bool) Real
}

// newOmega applies NewOmega if set, otherwise the identity.
func (rs *RaySplitter) newOmega(omega Real, pflag bool) Real {
	if rs.NewOmega == nil {
		return omega
	}
	return rs.NewOmega(omega, pflag)
}

// validate checks spec.md §3's RaySplitter invariant (every element of Oidx
// is in Affect) and, against a billiard, that every Oidx obstacle is
// Splittable and within range.
func (rs *RaySplitter) validate(bd *Billiard) error {
	if err := bd.validateObstacleIndices(rs.Oidx); err != nil {
		return err
	}
	if err := bd.validateObstacleIndices(rs.Affect); err != nil {
		return err
	}
	affectSet := make(map[int]bool, len(rs.Affect))
	for _, i := range rs.Affect {
		affectSet[i] = true
	}
	for _, i := range rs.Oidx {
		if !affectSet[i] {
			return newError(InvalidArgument, "raysplitter: oidx %d not in affect set", i)
		}
		if _, ok := bd.At(i).(*PeriodicWall); ok {
			return newError(InvalidArgument, "raysplitter: obstacle %d is a PeriodicWall, which must never be ray-splittable", i)
		}
		if _, ok := bd.At(i).(Splittable); !ok {
			return newError(UnsupportedObstacle, "raysplitter: obstacle %d (%s) carries no pflag", i, bd.At(i).Name())
		}
	}
	return nil
}

// buildRaysIdx builds the spec.md §3 "raysidx[0..N]" lookup table: obstacle
// index -> 1-based splitter index into splitters, 0 meaning "no splitter".
// It also enforces that Oidx sets are pairwise disjoint across splitters.
func buildRaysIdx(bd *Billiard, splitters []*RaySplitter) ([]int, error) {
	raysidx := make([]int, bd.Len())
	for si, rs := range splitters {
		if err := rs.validate(bd); err != nil {
			return nil, err
		}
		for _, i := range rs.Oidx {
			if raysidx[i] != 0 {
				return nil, newError(InvalidArgument, "raysplitter: obstacle %d claimed by more than one splitter", i)
			}
			raysidx[i] = si + 1
		}
	}
	return raysidx, nil
}

// incidenceAngle computes phi = acos(clamp(vel·(-n), -1, 1)), signed by
// sign(cross2D(vel, n)), domain [-π/2, π/2] (spec.md §4.H).
func incidenceAngle(vel, n Vec2) Real {
	c := clamp(vel.Dot(n.Mul(-1)), -1, 1)
	phi := math.Acos(c)
	if vel.Cross(n) < 0 {
		phi = -phi
	}
	return phi
}

// flipAffected atomically inverts pflag on every obstacle in affect.
func flipAffected(bd *Billiard, affect []int) {
	for _, i := range affect {
		s := bd.At(i).(Splittable)
		s.SetPFlag(!s.PFlag())
	}
}

// resolveRaySplit implements spec.md §4.H's transmission branch: flip
// affected pflags, recompute the normal at the (already relocated) position,
// build the new absolute direction, and update omega for magnetic particles.
// The caller has already relocated the particle with relocateRaySpl.
func resolveRaySplit(p Particle, bd *Billiard, idx int, theta Real, oldPflag bool, rs *RaySplitter) {
	o := bd.At(idx)
	flipAffected(bd, rs.Affect)
	n := o.NormalAt(p.Position())
	Theta := theta + AngleOf(n)
	p.SetVelocity(Vec2{math.Cos(Theta), math.Sin(Theta)})
	if mp, ok := p.(*MagneticParticle); ok {
		mp.Omega = rs.newOmega(mp.Omega, !oldPflag)
	}
}
