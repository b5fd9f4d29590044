package billiard

import "math"

// EventReason classifies why evolve stopped recording or terminated,
// grounded on the teacher's ray_log.go Category enum (Hit/Miss/Absorb/...),
// reduced here to the kernel's own terminal reasons.
type EventReason int

const (
	// Collision is a normal recorded bounce.
	Collision EventReason = iota
	// Escape marks next_collision returning +Inf (spec.md §4.I, §7).
	Escape
	// Pinned marks a magnetic particle whose Larmor orbit never meets a
	// non-periodic obstacle (spec.md §4.I's pinned detection).
	Pinned
)

// Event is one entry of the recorded trajectory: accumulated time, absolute
// position (pos + current_cell), velocity, and (for magnetic particles)
// cyclotron frequency at the time of recording.
type Event struct {
	T      Real
	Pos    Vec2
	Vel    Vec2
	Omega  Real // 0 for straight particles
	Reason EventReason
}

// TargetKind selects whether t_target in Evolve counts collisions (integer
// target) or accumulated time (floating target), per spec.md §4.I's
// "increment disambiguates the termination predicate".
type TargetKind int

const (
	TargetTime TargetKind = iota
	TargetCollisions
)

// Options configures a bounce/evolve run.
type Options struct {
	Splitters []*RaySplitter
	Rng       randSource
	Extended  bool // use the fixed extended-precision relocation constants
	Warn      func(kind Kind, msg string)
}

func (o *Options) warn(kind Kind, msg string) {
	if o != nil && o.Warn != nil {
		o.Warn(kind, msg)
	}
}

// Bounce performs a single collision step in place (spec.md §4.I's body of
// the bounce! loop, extracted as its own operation per §6's
// bounce(p, bd)/bounce(p, bd, raysidx, raysplitters) contract). It returns
// the obstacle index hit, the (possibly corrected) time advanced, and the
// post-resolution position/velocity. idx == -1 signals escape (tmin was
// +Inf; the particle was not moved).
func Bounce(p Particle, bd *Billiard, raysidx []int, splitters []*RaySplitter, opts *Options) (idx int, dt Real, pos, vel Vec2) {
	tmin, i := bd.NextCollision(p)
	if math.IsInf(tmin, 1) {
		opts.warn(NumericWarning, "next_collision returned +Inf: escape to infinity")
		return -1, math.Inf(1), p.Position(), p.Velocity()
	}

	o := bd.At(i)
	if raysidx != nil && raysidx[i] != 0 {
		rs := splitters[raysidx[i]-1]
		Propagate(p, tmin)
		splittable := o.(Splittable)
		oldPflag := splittable.PFlag()
		phi := incidenceAngle(p.Velocity(), o.NormalAt(p.Position()))
		var omega Real
		if mp, ok := p.(*MagneticParticle); ok {
			omega = mp.Omega
		}
		u := opts.rng().Float64()
		trans := rs.Transmission(phi, oldPflag, omega) > u
		dtCorr, corrPos, corrVel := relocateRaySpl(p, o, 0, trans, opts.extended())
		PropagateTo(p, corrPos, corrVel)
		if trans {
			theta := rs.Refraction(phi, oldPflag, omega)
			resolveRaySplit(p, bd, i, theta, oldPflag, rs)
		} else {
			specular(p, o)
		}
		tmin += dtCorr
	} else {
		var corrPos, corrVel Vec2
		tmin, corrPos, corrVel = relocate(p, o, tmin, opts.extended())
		PropagateTo(p, corrPos, corrVel)
		resolve(p, o, opts.rng())
	}

	if mp, ok := p.(*MagneticParticle); ok {
		mp.Center = mp.FindCyclotron()
	}
	return i, tmin, p.Position(), p.Velocity()
}

func (o *Options) rng() randSource {
	if o != nil && o.Rng != nil {
		return o.Rng
	}
	return defaultRng
}

func (o *Options) extended() bool {
	return o != nil && o.Extended
}

// Evolve runs the bounce loop until the termination predicate selected by
// kind is satisfied, or the particle escapes or is detected pinned (spec.md
// §4.I, §6). evolve (p copied first) vs evolve! (p mutated in place) is the
// caller's choice of whether to pass p.Clone(): Evolve itself always mutates
// the particle it is given.
func Evolve(p Particle, bd *Billiard, target Real, kind TargetKind, opts *Options) ([]Event, error) {
	if target <= 0 {
		return nil, newError(InvalidArgument, "evolve: t_target must be > 0, got %v", target)
	}
	var raysidx []int
	if opts != nil && len(opts.Splitters) > 0 {
		var err error
		raysidx, err = buildRaysIdx(bd, opts.Splitters)
		if err != nil {
			return nil, err
		}
	}

	var events []Event
	var count Real
	var tAccumulated Real
	larmorPeriod := math.Inf(1)
	if p.IsMagnetic() {
		if mp, ok := p.(*MagneticParticle); ok && mp.Omega != 0 {
			larmorPeriod = 2 * math.Pi / math.Abs(mp.Omega)
		}
	}

	for count < target {
		idx, dt, pos, vel := Bounce(p, bd, raysidx, opts.splitters(), opts)
		if idx == -1 {
			events = append(events, Event{T: math.Inf(1), Pos: pos, Vel: vel, Reason: Escape})
			break
		}
		tAccumulated += dt

		if _, isPeriodic := bd.At(idx).(*PeriodicWall); isPeriodic {
			if p.IsMagnetic() && tAccumulated >= larmorPeriod {
				opts.warn(NumericWarning, "pinned particle detected")
				events = append(events, Event{T: math.Inf(1), Pos: p.Position().Add(p.Cell()), Vel: p.Velocity(), Reason: Pinned})
				break
			}
			continue
		}

		var omega Real
		if mp, ok := p.(*MagneticParticle); ok {
			omega = mp.Omega
		}
		events = append(events, Event{
			T:      tAccumulated,
			Pos:    p.Position().Add(p.Cell()),
			Vel:    p.Velocity(),
			Omega:  omega,
			Reason: Collision,
		})
		count += incrementCount(kind, tAccumulated)
		tAccumulated = 0
	}
	return events, nil
}

// incrementCount disambiguates the termination predicate (spec.md §4.I): an
// integer target counts collisions (increment by 1 each recorded event), a
// floating target counts accumulated time.
func incrementCount(kind TargetKind, tAccumulated Real) Real {
	if kind == TargetCollisions {
		return 1
	}
	return tAccumulated
}

func (o *Options) splitters() []*RaySplitter {
	if o == nil {
		return nil
	}
	return o.Splitters
}
