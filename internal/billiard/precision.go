package billiard

import "math"

// Numeric-precision constants, grounded on the teacher's const.go (epsDist,
// bumpShift) but generalized from a single fixed nudge into the spec's
// type-dependent, escalating family: timeprec(T) = eps(T)^(4/5) generally,
// timeprec_forward(T) = eps(T)^(3/4) for the magnetic-with-PeriodicWall
// shallow-angle regime. Extended-precision callers fix both to 1e-12 rather
// than computing from eps.
const (
	float64Eps = 2.220446049250313e-16

	// extendedPrecisionConst is the fixed relocation tolerance used instead of
	// eps-derived constants for extended-precision float types.
	extendedPrecisionConst = 1e-12

	// geomEps discards near-tangential collision_time roots (§4.B: "discard
	// solutions with t ≤ ε_geom").
	geomEps = 1e-12

	// magneticRehitGuard is the minimum position displacement (in units of
	// sqrt(eps)) required for a magnetic collision_time solve to accept an
	// intersection, guarding against re-hitting the obstacle just left.
	magneticRehitGuard = 1e-8 // ≈ sqrt(float64Eps)
)

// timeprec returns the relocation-loop tolerance for standard (non-forward)
// relocation: eps^(4/5).
func timeprec(extended bool) Real {
	if extended {
		return extendedPrecisionConst
	}
	return math.Pow(float64Eps, 4.0/5.0)
}

// timeprecForward returns the coarser tolerance used for magnetic forward
// relocation against a PeriodicWall (shallow-angle regime): eps^(3/4).
func timeprecForward(extended bool) Real {
	if extended {
		return extendedPrecisionConst
	}
	return math.Pow(float64Eps, 3.0/4.0)
}
