package billiard

import (
	"math"
	"testing"
)

func TestSpecular_ReflectsAcrossNormal(t *testing.T) {
	w := NewInfiniteWall("w", Vec2{0, 1}, Vec2{1, 1}, Vec2{0, -1})
	p := NewStraightParticle(Vec2{0, 1}, Vec2{0, 1})
	specular(p, w)
	if !almostEqual(p.Vel.X, 0, 1e-12) || !almostEqual(p.Vel.Y, -1, 1e-12) {
		t.Fatalf("expected velocity reflected to (0,-1), got %+v", p.Vel)
	}
}

type fixedRng struct{ v Real }

func (f fixedRng) Float64() Real { return f.v }

func TestRandomSpecular_StaysWithinSpread(t *testing.T) {
	w := NewInfiniteWall("w", Vec2{0, 1}, Vec2{1, 1}, Vec2{0, -1})
	p := NewStraightParticle(Vec2{0, 1}, Vec2{0, 1})
	randomSpecular(p, w, fixedRng{1}) // extreme end of the spread
	if !almostEqual(p.Vel.Len(), 1, 1e-9) {
		t.Fatalf("expected unit-speed output direction, got len %v", p.Vel.Len())
	}
	if d := math.Abs(AngleOf(p.Vel) - AngleOf(w.NormalAt(p.Pos))); d > 0.95*math.Pi/2+1e-12 {
		t.Fatalf("expected output within 0.95*pi/2 of the normal, got %v", d)
	}
}

func TestPeriodicity_TeleportsAndUpdatesCell(t *testing.T) {
	w := NewPeriodicWall("w", Vec2{0, 0}, Vec2{0, 1}, Vec2{1, 0})
	p := NewStraightParticle(Vec2{0, 0}, Vec2{1, 0})
	periodicity(p, w)
	if !almostEqual(p.Pos.X, 1, 1e-12) || !almostEqual(p.Pos.Y, 0, 1e-12) {
		t.Fatalf("expected teleport by translation, got %+v", p.Pos)
	}
	if !almostEqual(p.CurrentCell.X, -1, 1e-12) {
		t.Fatalf("expected current_cell decremented by translation, got %+v", p.CurrentCell)
	}
}

func TestPeriodicity_ShiftsMagneticCenter(t *testing.T) {
	w := NewPeriodicWall("w", Vec2{0, 0}, Vec2{0, 1}, Vec2{1, 0})
	p := NewMagneticParticle(Vec2{0, 0}, Vec2{0, 1}, 1)
	wantCenter := p.Center.Add(w.Translation)
	periodicity(p, w)
	if !almostEqual(p.Center.X, wantCenter.X, 1e-12) || !almostEqual(p.Center.Y, wantCenter.Y, 1e-12) {
		t.Fatalf("expected cyclotron center shifted by translation, got %+v want %+v", p.Center, wantCenter)
	}
}

func TestResolve_DispatchesPeriodicWall(t *testing.T) {
	w := NewPeriodicWall("w", Vec2{0, 0}, Vec2{0, 1}, Vec2{1, 0})
	p := NewStraightParticle(Vec2{0, 0}, Vec2{1, 0})
	resolve(p, w, fixedRng{0.5})
	if !almostEqual(p.Pos.X, 1, 1e-12) {
		t.Fatalf("expected resolve to teleport via periodicity, got %+v", p.Pos)
	}
}

func TestResolve_DispatchesSpecularDefault(t *testing.T) {
	w := NewInfiniteWall("w", Vec2{0, 1}, Vec2{1, 1}, Vec2{0, -1})
	p := NewStraightParticle(Vec2{0, 1}, Vec2{0, 1})
	resolve(p, w, fixedRng{0.5})
	if !almostEqual(p.Vel.Y, -1, 1e-12) {
		t.Fatalf("expected resolve to specularly reflect by default, got %+v", p.Vel)
	}
}
