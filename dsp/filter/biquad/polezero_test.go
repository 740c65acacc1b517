package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestPoles_KnownConjugatePair(t *testing.T) {
	// Denominator built from the pair 0.5 +/- 0.4i:
	// A1 = -(p + conj(p)) = -1.0, A2 = |p|^2 = 0.41.
	c := Coefficients{B0: 1, A1: -1.0, A2: 0.41}

	poles := c.Poles()

	for _, p := range poles {
		if math.Abs(real(p)-0.5) > 1e-12 || math.Abs(math.Abs(imag(p))-0.4) > 1e-12 {
			t.Fatalf("unexpected pole %v, want 0.5 +/- 0.4i", p)
		}
	}
}

func TestZeros_DoubleZeroAtMinusOne(t *testing.T) {
	// Numerator (1 + z^-1)^2 = 1 + 2 z^-1 + z^-2.
	c := Coefficients{B0: 1, B1: 2, B2: 1}

	for _, z := range c.Zeros() {
		if cmplx.Abs(z-complex(-1, 0)) > 1e-9 {
			t.Fatalf("unexpected zero %v, want -1", z)
		}
	}
}

func TestPoles_FirstOrder(t *testing.T) {
	c := Coefficients{B0: 1, B1: 1, A1: -0.5}

	poles := c.Poles()

	found := false
	for _, p := range poles {
		if p == 0 {
			continue
		}
		if cmplx.Abs(p-complex(0.5, 0)) > 1e-12 {
			t.Fatalf("unexpected pole %v, want 0.5", p)
		}
		found = true
	}

	if !found {
		t.Fatal("no nonzero pole found for first-order section")
	}
}

func TestStable(t *testing.T) {
	stable := []Coefficients{
		{B0: 1, A1: -1.0, A2: 0.41},
		{B0: 1, A1: 0.3},
	}

	if !Stable(stable) {
		t.Fatal("stable cascade reported unstable")
	}

	unstable := []Coefficients{
		{B0: 1, A1: -2.5, A2: 1.2},
	}

	if Stable(unstable) {
		t.Fatal("unstable cascade reported stable")
	}
}

func TestPoleZeroPairs_CountsMatch(t *testing.T) {
	pairs := PoleZeroPairs(chainCoeffs)

	if len(pairs) != len(chainCoeffs) {
		t.Fatalf("pairs = %d, want %d", len(pairs), len(chainCoeffs))
	}

	c := NewChain(chainCoeffs)
	chainPairs := c.PoleZeroPairs()

	for i := range pairs {
		if pairs[i] != chainPairs[i] {
			t.Fatalf("pair %d mismatch between slice and chain forms", i)
		}
	}
}
