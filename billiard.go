// Package gobilliard re-exports the small external-collaborator contract of
// the collision kernel (internal/billiard): the operations the ready-made
// billiard constructors, plotting, Poincaré-section extraction, Lyapunov
// spectrum computation, boundary-map analysis, escape-time computation and
// trajectory reconstruction would consume, were they implemented — those
// remain out of scope (see SPEC_FULL.md's Non-goals). This mirrors the
// teacher's root photons4d.go, which held an early single-file version
// alongside the real internal/photons4d package; here the root file is kept
// on purpose as the public facade rather than a superseded prototype.
package gobilliard

import "github.com/lukaszgryglicki/gobilliard/internal/billiard"

type (
	Particle       = billiard.Particle
	StraightParticle = billiard.StraightParticle
	MagneticParticle = billiard.MagneticParticle
	Obstacle       = billiard.Obstacle
	Billiard       = billiard.Billiard
	RaySplitter    = billiard.RaySplitter
	Event          = billiard.Event
	EventReason    = billiard.EventReason
	TargetKind     = billiard.TargetKind
	Options        = billiard.Options
	Result         = billiard.Result
	Vec2           = billiard.Vec2
)

const (
	TargetTime       = billiard.TargetTime
	TargetCollisions = billiard.TargetCollisions

	Collision = billiard.Collision
	Escape    = billiard.Escape
	Pinned    = billiard.Pinned
)

func NewStraightParticle(pos, vel Vec2) *StraightParticle {
	return billiard.NewStraightParticle(pos, vel)
}

func NewMagneticParticle(pos, vel Vec2, omega float64) *MagneticParticle {
	return billiard.NewMagneticParticle(pos, vel, omega)
}

func NewBilliard(obstacles ...Obstacle) *Billiard {
	return billiard.NewBilliard(obstacles...)
}

// Evolve runs p (mutated in place) against bd until target is reached or the
// particle escapes/is pinned — spec.md §6's evolve!/bounce contract.
func Evolve(p Particle, bd *Billiard, target float64, kind TargetKind, opts *Options) ([]Event, error) {
	return billiard.Evolve(p, bd, target, kind, opts)
}

// EvolveCopy runs a clone of p, leaving the caller's particle untouched —
// spec.md §6's "evolve deep-copies p; evolve! mutates it" distinction.
func EvolveCopy(p Particle, bd *Billiard, target float64, kind TargetKind, opts *Options) ([]Event, error) {
	return billiard.Evolve(p.Clone(), bd, target, kind, opts)
}

func Bounce(p Particle, bd *Billiard, raysidx []int, splitters []*RaySplitter, opts *Options) (idx int, dt float64, pos, vel Vec2) {
	return billiard.Bounce(p, bd, raysidx, splitters, opts)
}

func EvolveBatch(particles []Particle, bd *Billiard, target float64, kind TargetKind, opts *Options) []Result {
	return billiard.EvolveBatch(particles, bd, target, kind, opts)
}

func ResetBilliard(bd *Billiard) { bd.ResetFlags() }

func AcceptableRaySplitter(rs *RaySplitter, bd *Billiard) bool {
	return billiard.AcceptableRaySplitter(rs, bd)
}

func IsPhysical(rs *RaySplitter, onlyMandatory bool) bool {
	return billiard.IsPhysical(rs, onlyMandatory)
}
