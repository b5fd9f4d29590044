package billiard

import "math"

// AcceptableRaySplitter validates a RaySplitter's structural invariants
// against bd (spec.md §6's acceptable_raysplitter): oidx subset of affect,
// every oidx obstacle carries a pflag, no obstacle index out of range, and no
// PeriodicWall in oidx. It sees one splitter only, so an obstacle claimed by
// two splitters is not detected here (Evolve rejects that when it builds the
// raysidx table).
func AcceptableRaySplitter(rs *RaySplitter, bd *Billiard) bool {
	return rs.validate(bd) == nil
}

// IsPhysical sweeps phi in [-1.5, 1.5] step 0.01, omega in [-1, 1] step 0.1,
// both values of pflag, and checks the invariants spec.md §6 names. The
// critical-angle consistency check always runs; the symmetry/reversal checks
// only run when onlyMandatory is false (spec.md §6).
func IsPhysical(rs *RaySplitter, onlyMandatory bool) bool {
	const (
		phiLo, phiHi, phiStep     = -1.5, 1.5, 0.01
		omegaLo, omegaHi, omStep  = -1.0, 1.0, 0.1
		tol                       = 1e-6
	)

	for _, pflag := range []bool{true, false} {
		for omega := omegaLo; omega <= omegaHi+1e-9; omega += omStep {
			for phi := phiLo; phi <= phiHi+1e-9; phi += phiStep {
				if !criticalAngleConsistent(rs, phi, pflag, omega) {
					return false
				}
			}
		}
	}

	if onlyMandatory {
		return true
	}

	for omega := omegaLo; omega <= omegaHi+1e-9; omega += omStep {
		for phi := phiLo; phi <= phiHi+1e-9; phi += phiStep {
			if !rayReversible(rs, phi, true, omega, tol) {
				return false
			}
			if !rayReversible(rs, phi, false, omega, tol) {
				return false
			}
			if !magneticReversible(rs, omega, true, tol) {
				return false
			}
			if !magneticReversible(rs, omega, false, tol) {
				return false
			}
		}
	}

	for phi := phiLo; phi <= phiHi+1e-9; phi += phiStep {
		tPos := rs.Transmission(phi, true, 0)
		tNeg := rs.Transmission(-phi, true, 0)
		if math.Abs(tPos-tNeg) > tol {
			return false
		}
		tPosF := rs.Transmission(phi, false, 0)
		tNegF := rs.Transmission(-phi, false, 0)
		if math.Abs(tPosF-tNegF) > tol {
			return false
		}
		if ok, th := tryRefraction(rs, phi, true, 0); ok {
			if okN, thN := tryRefraction(rs, -phi, true, 0); okN && math.Abs(th+thN) > tol {
				return false
			}
		}
	}

	return true
}

func criticalAngleConsistent(rs *RaySplitter, phi Real, pflag bool, omega Real) bool {
	ok, theta := tryRefraction(rs, phi, pflag, omega)
	t := rs.Transmission(phi, pflag, omega)
	if ok && theta >= math.Pi/2 {
		return t == 0
	}
	// evaluation failure (ok == false) must be silently tolerated iff T == 0.
	if !ok {
		return t == 0
	}
	return true
}

// tryRefraction calls rs.Refraction guarding against a panic (e.g. beyond
// critical angle, where some refraction functions are undefined); spec.md
// §6: "Evaluation of refraction may fail... such failures must be silently
// tolerated iff the corresponding T evaluates to 0."
func tryRefraction(rs *RaySplitter, phi Real, pflag bool, omega Real) (ok bool, theta Real) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	theta = rs.Refraction(phi, pflag, omega)
	if math.IsNaN(theta) {
		return false, 0
	}
	return true, theta
}

func rayReversible(rs *RaySplitter, phi Real, pflag bool, omega Real, tol Real) bool {
	ok, theta := tryRefraction(rs, phi, pflag, omega)
	if !ok {
		return rs.Transmission(phi, pflag, omega) == 0
	}
	ok2, back := tryRefraction(rs, theta, !pflag, omega)
	if !ok2 {
		return rs.Transmission(phi, pflag, omega) == 0
	}
	return math.Abs(back-phi) <= tol
}

func magneticReversible(rs *RaySplitter, omega Real, pflag bool, tol Real) bool {
	o1 := rs.newOmega(omega, pflag)
	o2 := rs.newOmega(o1, !pflag)
	return math.Abs(o2-omega) <= tol
}
