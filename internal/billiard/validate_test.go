package billiard

import "testing"

func identitySplitter() *RaySplitter {
	return &RaySplitter{
		Oidx:         []int{0},
		Affect:       []int{0},
		Transmission: func(phi Real, pflag bool, omega Real) Real { return 0.5 },
		Refraction:   func(phi Real, pflag bool, omega Real) Real { return phi },
	}
}

func TestAcceptableRaySplitter_ValidConfiguration(t *testing.T) {
	a := NewAntidot("a", Vec2{0, 0}, 1)
	bd := NewBilliard(a)
	if !AcceptableRaySplitter(identitySplitter(), bd) {
		t.Fatal("expected a well-formed splitter against a single Antidot to be acceptable")
	}
}

func TestAcceptableRaySplitter_RejectsOutOfRangeIndex(t *testing.T) {
	a := NewAntidot("a", Vec2{0, 0}, 1)
	bd := NewBilliard(a)
	rs := &RaySplitter{Oidx: []int{5}, Affect: []int{5}}
	if AcceptableRaySplitter(rs, bd) {
		t.Fatal("expected out-of-range obstacle index to be rejected")
	}
}

func TestIsPhysical_IdentityRefractionIsPhysical(t *testing.T) {
	rs := identitySplitter()
	if !IsPhysical(rs, true) {
		t.Fatal("expected identity refraction with constant transmission to pass the mandatory checks")
	}
}

func TestIsPhysical_AsymmetricTransmissionFailsFullCheck(t *testing.T) {
	rs := &RaySplitter{
		Transmission: func(phi Real, pflag bool, omega Real) Real {
			if phi > 0 {
				return 1
			}
			return 0
		},
		Refraction: func(phi Real, pflag bool, omega Real) Real { return phi },
	}
	if IsPhysical(rs, false) {
		t.Fatal("expected phi-asymmetric transmission to fail the non-mandatory symmetry check")
	}
}

func TestIsPhysical_PanickingRefractionToleratedOnlyWhenTransmissionZero(t *testing.T) {
	rs := &RaySplitter{
		Transmission: func(phi Real, pflag bool, omega Real) Real { return 0 },
		Refraction: func(phi Real, pflag bool, omega Real) Real {
			panic("undefined beyond critical angle")
		},
	}
	if !IsPhysical(rs, true) {
		t.Fatal("expected a panicking refraction to be tolerated when transmission is always 0")
	}
}

func TestMagneticReversible_IdentityNewOmega(t *testing.T) {
	rs := &RaySplitter{}
	if !magneticReversible(rs, 0.5, true, 1e-9) {
		t.Fatal("expected identity NewOmega (nil) to be reversible")
	}
}
