package billiard

import "testing"

func TestRelocate_FixesWrongSideRounding(t *testing.T) {
	w := NewInfiniteWall("w", Vec2{0, 1}, Vec2{1, 1}, Vec2{0, -1})
	p := NewStraightParticle(Vec2{0, 0}, Vec2{0, 1})

	// tmin slightly past the true t=1 hit, landing just on the wrong side
	// once propagated (beyond the wall, distance < 0 with sig -1).
	tmin := 1 + 2*timeprec(false)
	corrected, newpos, _ := relocate(p, w, tmin, false)

	if w.Distance(newpos)*sig(w) > 0 {
		t.Fatalf("expected relocate to land on the correct side, distance*sig = %v", w.Distance(newpos)*sig(w))
	}
	if want := PropagatePos(p, corrected); !almostEqual(newpos.X, want.X, 1e-12) || !almostEqual(newpos.Y, want.Y, 1e-12) {
		t.Fatalf("expected returned newpos to match PropagatePos(p, corrected), got %+v want %+v", newpos, want)
	}
}

func TestRelocate_NoOpWhenAlreadyCorrectSide(t *testing.T) {
	w := NewInfiniteWall("w", Vec2{0, 1}, Vec2{1, 1}, Vec2{0, -1})
	p := NewStraightParticle(Vec2{0, 0}, Vec2{0, 1})

	tmin := 1.0
	corrected, _, _ := relocate(p, w, tmin, false)
	if !almostEqual(corrected, tmin, 1e-9) {
		t.Fatalf("expected relocate to leave an already-correct tmin unchanged, got %v want %v", corrected, tmin)
	}
}

func TestRelocateRaySpl_TransmissionLandsInside(t *testing.T) {
	a := NewAntidot("a", Vec2{0, 0}, 1)
	p := NewStraightParticle(Vec2{-5, 0}, Vec2{1, 0}) // true hit at t=4

	tmin := 4 - 2*timeprec(false)
	corrected, newpos, _ := relocateRaySpl(p, a, tmin, true, false)
	if a.Distance(newpos) > 0 {
		t.Fatalf("expected transmission relocation to land strictly inside, distance = %v", a.Distance(newpos))
	}
	if want := PropagatePos(p, corrected); !almostEqual(newpos.X, want.X, 1e-12) || !almostEqual(newpos.Y, want.Y, 1e-12) {
		t.Fatalf("expected returned newpos to match PropagatePos(p, corrected), got %+v want %+v", newpos, want)
	}
}

func TestRelocateRaySpl_ReflectionLandsOutside(t *testing.T) {
	a := NewAntidot("a", Vec2{0, 0}, 1)
	p := NewStraightParticle(Vec2{-5, 0}, Vec2{1, 0}) // true hit at t=4

	tmin := 4 - 2*timeprec(false)
	corrected, newpos, _ := relocateRaySpl(p, a, tmin, false, false)
	if a.Distance(newpos) < 0 {
		t.Fatalf("expected reflection relocation to land outside, distance = %v", a.Distance(newpos))
	}
	if want := PropagatePos(p, corrected); !almostEqual(newpos.X, want.X, 1e-12) || !almostEqual(newpos.Y, want.Y, 1e-12) {
		t.Fatalf("expected returned newpos to match PropagatePos(p, corrected), got %+v want %+v", newpos, want)
	}
}

func TestRelocate_MagneticReturnsConsistentVel(t *testing.T) {
	w := NewInfiniteWall("w", Vec2{0, 1}, Vec2{1, 1}, Vec2{0, -1})
	p := NewMagneticParticle(Vec2{0, 0}, Vec2{0, 1}, 0.3)

	tmin := 1 - 2*timeprec(false)
	corrected, pos, vel := relocate(p, w, tmin, false)
	wantPos, wantVel := PropagatePosVel(p, corrected)
	if !almostEqual(pos.X, wantPos.X, 1e-9) || !almostEqual(pos.Y, wantPos.Y, 1e-9) {
		t.Fatalf("expected relocate's returned pos to match PropagatePosVel, got %+v want %+v", pos, wantPos)
	}
	if !almostEqual(vel.X, wantVel.X, 1e-9) || !almostEqual(vel.Y, wantVel.Y, 1e-9) {
		t.Fatalf("expected relocate's returned vel to match PropagatePosVel, got %+v want %+v", vel, wantVel)
	}
}

func TestPropagateTo_StraightCommitsPositionOnly(t *testing.T) {
	p := NewStraightParticle(Vec2{0, 0}, Vec2{1, 0})
	PropagateTo(p, Vec2{3, 4}, Vec2{0, -1})
	if p.Pos.X != 3 || p.Pos.Y != 4 {
		t.Fatalf("expected PropagateTo to commit position, got %+v", p.Pos)
	}
	if p.Vel.X != 1 || p.Vel.Y != 0 {
		t.Fatalf("expected PropagateTo to leave a straight particle's velocity untouched, got %+v", p.Vel)
	}
}

func TestPropagateTo_MagneticCommitsPositionAndVelocity(t *testing.T) {
	p := NewMagneticParticle(Vec2{0, 0}, Vec2{1, 0}, 0.5)
	PropagateTo(p, Vec2{2, -1}, Vec2{0, 1})
	if p.Pos.X != 2 || p.Pos.Y != -1 {
		t.Fatalf("expected PropagateTo to commit position, got %+v", p.Pos)
	}
	if p.Vel.X != 0 || p.Vel.Y != 1 {
		t.Fatalf("expected PropagateTo to commit velocity, got %+v", p.Vel)
	}
}
