package billiard

// Relocator (spec.md §4.F): after propagating by tmin, rounding may leave the
// particle on the wrong side of the obstacle it just hit. The relocator
// escalates tmin geometrically (×10 per step) in the direction sig until
// distance(newpos, o)·sig ≤ 0, i.e. the particle is back on the correct side.
// Grounded on the teacher's bumpShift-after-hit nudge in cast_rays.go, here
// generalized from a single fixed nudge into an escalating, sign-aware loop
// since the teacher's ray tracer never needed to recover from a wrong-side
// relocation (a ray that just missed simply misses).

const maxRelocateIterations = 20

// relocate adjusts tmin so that the particle, once propagated, ends up on
// the geometrically correct side of obstacle o, returning the corrected
// tmin together with the already-computed (pos, vel) pair at that tmin, so
// the caller can commit it via PropagateTo instead of re-propagating
// (spec.md §4.F: "commit newpos, tmin"). extended selects the coarser,
// fixed extended-precision constant (precision.go).
func relocate(p Particle, o Obstacle, tmin Real, extended bool) (Real, Vec2, Vec2) {
	s := sig(o)
	prec := timeprec(extended)
	if _, ok := o.(*PeriodicWall); ok && p.IsMagnetic() {
		prec = timeprecForward(extended)
	}
	newpos, newvel := PropagatePosVel(p, tmin)
	i := Real(1)
	for n := 0; n < maxRelocateIterations && o.Distance(newpos)*s > 0; n++ {
		tmin += i * s * prec
		newpos, newvel = PropagatePosVel(p, tmin)
		i *= 10
	}
	return tmin, newpos, newvel
}

// relocateRaySpl is the ray-splitting variant (spec.md §4.F): the escalation
// direction depends on whether transmission occurred. If trans, the particle
// must end up inside the obstacle (distance ≤ 0); ineq encodes
// this as ±1 the same way sig does for the non-splitting relocator. Like
// relocate, it returns the already-computed (pos, vel) pair alongside tmin.
func relocateRaySpl(p Particle, o Obstacle, tmin Real, trans bool, extended bool) (Real, Vec2, Vec2) {
	ineq := Real(-1)
	if trans {
		ineq = 1
	}
	prec := timeprec(extended)
	newpos, newvel := PropagatePosVel(p, tmin)
	i := Real(1)
	for n := 0; n < maxRelocateIterations && o.Distance(newpos)*ineq > 0; n++ {
		tmin += i * ineq * prec
		newpos, newvel = PropagatePosVel(p, tmin)
		i *= 10
	}
	return tmin, newpos, newvel
}
