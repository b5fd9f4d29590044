package billiard

import "testing"

func TestPropagatePos_StraightDoesNotMutate(t *testing.T) {
	p := NewStraightParticle(Vec2{0, 0}, Vec2{1, 0})
	pos := PropagatePos(p, 5)
	if !almostEqual(pos.X, 5, 1e-12) {
		t.Fatalf("expected (5,0), got %+v", pos)
	}
	if !almostEqual(p.Pos.X, 0, 1e-12) {
		t.Fatal("expected PropagatePos not to mutate the particle")
	}
}

func TestPropagatePos_MagneticMatchesInPlacePropagate(t *testing.T) {
	p := NewMagneticParticle(Vec2{0, 0}, Vec2{1, 0}, 0.5)
	probed := PropagatePos(p, 1.3)
	p.Propagate(1.3)
	if !almostEqual(probed.X, p.Pos.X, 1e-9) || !almostEqual(probed.Y, p.Pos.Y, 1e-9) {
		t.Fatalf("expected probed position to match in-place propagation, got %+v vs %+v", probed, p.Pos)
	}
}

func TestPropagatePosVel_StraightVelocityUnchanged(t *testing.T) {
	p := NewStraightParticle(Vec2{0, 0}, Vec2{0, 1})
	_, vel := PropagatePosVel(p, 3)
	if !almostEqual(vel.X, 0, 1e-12) || !almostEqual(vel.Y, 1, 1e-12) {
		t.Fatalf("expected unchanged velocity for straight motion, got %+v", vel)
	}
}

func TestPropagate_MagneticInPlaceMatchesProbe(t *testing.T) {
	p := NewMagneticParticle(Vec2{1, 0}, Vec2{0, 1}, 2)
	wantPos, wantVel := PropagatePosVel(p, 0.7)
	Propagate(p, 0.7)
	if !almostEqual(p.Pos.X, wantPos.X, 1e-9) || !almostEqual(p.Pos.Y, wantPos.Y, 1e-9) {
		t.Fatalf("expected in-place Propagate to match probed position, got %+v vs %+v", p.Pos, wantPos)
	}
	if !almostEqual(p.Vel.X, wantVel.X, 1e-9) || !almostEqual(p.Vel.Y, wantVel.Y, 1e-9) {
		t.Fatalf("expected in-place Propagate to match probed velocity, got %+v vs %+v", p.Vel, wantVel)
	}
}
