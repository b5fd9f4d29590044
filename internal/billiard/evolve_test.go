package billiard

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// unitSquare builds the four finite walls of [0,1]^2, normals pointing
// inward, matching spec.md §8 scenario 1.
func unitSquare() *Billiard {
	return NewBilliard(
		NewFiniteWall("left", Vec2{0, 0}, Vec2{0, 1}, Vec2{1, 0}, false),
		NewFiniteWall("right", Vec2{1, 0}, Vec2{1, 1}, Vec2{-1, 0}, false),
		NewFiniteWall("bottom", Vec2{0, 0}, Vec2{1, 0}, Vec2{0, 1}, false),
		NewFiniteWall("top", Vec2{0, 1}, Vec2{1, 1}, Vec2{0, -1}, false),
	)
}

func TestEvolve_UnitSquareFourCollisionsReturnToStart(t *testing.T) {
	bd := unitSquare()
	p := NewStraightParticle(Vec2{0.5, 0.5}, Vec2{1, 0})

	events, err := Evolve(p, bd, 4, TargetCollisions, nil)
	require.NoError(t, err)
	require.Len(t, events, 4)

	require.InDelta(t, 0.5, events[0].T, 1e-12)
	require.InDelta(t, -1, events[0].Vel.X, 1e-12)
	require.InDelta(t, 0, events[0].Vel.Y, 1e-12)

	// the fourth collision is on the left wall, half a unit short of the
	// start; the remaining half unit of flight brings the particle back.
	last := events[3]
	require.InDelta(t, 0, last.Pos.X, 1e-12)
	require.InDelta(t, 0.5, last.Pos.Y, 1e-12)
	require.InDelta(t, 1, last.Vel.X, 1e-12)
	require.InDelta(t, 0, last.Vel.Y, 1e-12)

	p.Propagate(0.5)
	require.InDelta(t, 0.5, p.Pos.X, 1e-12)
	require.InDelta(t, 0.5, p.Pos.Y, 1e-12)
}

// periodicSquare wraps left/right in x (periodic channel) and bounds top/
// bottom with ordinary finite walls, so a trajectory with any vertical
// component is guaranteed to eventually record a real (non-periodic)
// collision instead of wrapping forever.
func periodicSquare() *Billiard {
	return NewBilliard(
		NewPeriodicWall("left", Vec2{0, 0}, Vec2{0, 1}, Vec2{1, 0}),
		NewPeriodicWall("right", Vec2{1, 0}, Vec2{1, 1}, Vec2{-1, 0}),
		NewFiniteWall("bottom", Vec2{0, 0}, Vec2{1, 0}, Vec2{0, 1}, false),
		NewFiniteWall("top", Vec2{0, 1}, Vec2{1, 1}, Vec2{0, -1}, false),
	)
}

func TestEvolve_PeriodicSquareRoundTripLaw(t *testing.T) {
	bd := periodicSquare()
	start := Vec2{0.5, 0.1}
	vel := Vec2{0.6, 0.8} // crosses the right periodic edge once, then hits top
	p := NewStraightParticle(start, vel)

	events, err := Evolve(p, bd, 1, TargetCollisions, nil)
	require.NoError(t, err)
	require.Len(t, events, 1)

	last := events[0]
	require.InDelta(t, 1.125, last.T, 1e-9)

	want := start.Add(vel.Mul(last.T))
	got := p.Pos.Add(p.CurrentCell)
	require.InDelta(t, want.X, got.X, 1e-9)
	require.InDelta(t, want.Y, got.Y, 1e-9)
}

func sinaiBilliard() *Billiard {
	walls := unitSquare()
	disk := NewDisk("center", Vec2{0.5, 0.5}, 0.3)
	return NewBilliard(append(walls.Obstacles(), disk)...)
}

func TestEvolve_SinaiBilliardInvariants(t *testing.T) {
	bd := sinaiBilliard()
	p := NewStraightParticle(Vec2{0.05, 0.05}, Vec2{math.Cos(0.77), math.Sin(0.77)}.Norm())

	events, err := Evolve(p, bd, 50, TargetCollisions, nil)
	require.NoError(t, err)

	disk := bd.At(4).(*Disk)
	for _, e := range events {
		require.InDelta(t, 1, e.Vel.Len(), 1e-9)
		require.True(t, e.Pos.X >= -1e-9 && e.Pos.X <= 1+1e-9)
		require.True(t, e.Pos.Y >= -1e-9 && e.Pos.Y <= 1+1e-9)
		d := e.Pos.Sub(disk.Center).Len()
		require.True(t, d >= disk.Radius-1e-9)
	}
}

func TestEvolve_MagneticParticleEscapesToInfinity(t *testing.T) {
	bd := NewBilliard(NewDisk("center", Vec2{0, 0}, 0.5))
	// cyclotron center = pos + perp(vel)/omega = (2, 1), radius 1: the orbit
	// stays within x in [1, 3] and never meets the disk.
	p := NewMagneticParticle(Vec2{3, 1}, Vec2{0, 1}, 1)

	events, err := Evolve(p, bd, 1, TargetCollisions, nil)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, Escape, events[0].Reason)
	require.True(t, math.IsInf(events[0].T, 1))
}

func TestEvolve_PinnedMagneticParticle(t *testing.T) {
	// A lone x-periodic channel with no other obstacle: a cyclotron circle
	// straddling the boundary crosses it every Larmor period forever,
	// without ever reaching a genuine obstacle.
	bd := NewBilliard(
		NewPeriodicWall("left", Vec2{0, 0}, Vec2{0, 1}, Vec2{1, 0}),
		NewPeriodicWall("right", Vec2{1, 0}, Vec2{1, 1}, Vec2{-1, 0}),
	)
	// radius 0.1, center (-0.05, 0.5): straddles x=0, never reaches x=1.
	p := NewMagneticParticle(Vec2{0.05, 0.5}, Vec2{0, 1}, 10)

	events, err := Evolve(p, bd, 1000, TargetCollisions, nil)
	require.NoError(t, err)
	require.NotEmpty(t, events)
	last := events[len(events)-1]
	require.Equal(t, Pinned, last.Reason)
	require.True(t, math.IsInf(last.T, 1))
}

func TestEvolve_RaySplittingTransmissionFlipsPflag(t *testing.T) {
	antidot := NewAntidot("hole", Vec2{1, 0}, 0.2)
	wallLeft := NewFiniteWall("left", Vec2{-1, -1}, Vec2{-1, 1}, Vec2{1, 0}, false)
	wallRight := NewFiniteWall("right", Vec2{3, -1}, Vec2{3, 1}, Vec2{-1, 0}, false)
	bd := NewBilliard(wallLeft, wallRight, antidot)

	rs := &RaySplitter{
		Oidx:   []int{2},
		Affect: []int{2},
		Transmission: func(phi Real, pflag bool, omega Real) Real {
			return 1 // always transmit
		},
		Refraction: func(phi Real, pflag bool, omega Real) Real {
			return phi // identity
		},
	}

	p := NewStraightParticle(Vec2{0, 0}, Vec2{1, 0})
	opts := &Options{Splitters: []*RaySplitter{rs}}

	idx, _, pos, _ := Bounce(p, bd, []int{0, 0, 1}, opts.Splitters, opts)
	require.Equal(t, 2, idx)

	require.False(t, antidot.PFlag(), "pflag should have inverted from true to false after transmission")
	require.True(t, pos.Sub(antidot.Center).Len() < antidot.Radius, "particle should be on the opposite (now inside) side after transmission")
}
