package biquad

import (
	"testing"

	"github.com/cwbudde/algo-iir/internal/testutil"
)

var chainCoeffs = []Coefficients{
	{B0: 0.3, B1: 0.6, B2: 0.3, A1: -0.1, A2: 0.2},
	{B0: 0.4, B1: 0.2, B2: 0.1, A1: 0.05, A2: 0.1},
}

func TestChain_CascadesInOrder(t *testing.T) {
	input := testutil.DeterministicNoise(7, 1, 128)

	s0 := NewSection(chainCoeffs[0])
	s1 := NewSection(chainCoeffs[1])
	want := make([]float64, len(input))

	for i, x := range input {
		want[i] = s1.ProcessSample(s0.ProcessSample(x))
	}

	c := NewChain(chainCoeffs)
	got := make([]float64, len(input))

	for i, x := range input {
		got[i] = c.ProcessSample(x)
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestChain_ProcessBlock_MatchesPerSample(t *testing.T) {
	input := testutil.DeterministicNoise(8, 0.7, 300)

	ref := NewChain(chainCoeffs)
	want := make([]float64, len(input))

	for i, x := range input {
		want[i] = ref.ProcessSample(x)
	}

	got := append([]float64(nil), input...)
	NewChain(chainCoeffs).ProcessBlock(got)

	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestChain_WithGain(t *testing.T) {
	c := NewChain(nil, WithGain(0.5))

	if got := c.Gain(); got != 0.5 {
		t.Fatalf("Gain() = %v, want 0.5", got)
	}

	if got := c.ProcessSample(1); got != 0.5 {
		t.Fatalf("empty chain with gain 0.5: got %v, want 0.5", got)
	}
}

func TestChain_Order(t *testing.T) {
	coeffs := []Coefficients{
		{B0: 1, B1: 0.5, B2: 0.25, A1: 0.1, A2: 0.2}, // second-order
		{B0: 1, B1: 0.5, A1: 0.1},                    // first-order
	}

	c := NewChain(coeffs)

	if got := c.Order(); got != 3 {
		t.Fatalf("Order() = %d, want 3", got)
	}

	if got := c.NumSections(); got != 2 {
		t.Fatalf("NumSections() = %d, want 2", got)
	}
}

func TestChain_UpdateCoefficients_SameCountKeepsState(t *testing.T) {
	c := NewChain(chainCoeffs)
	for _, x := range testutil.DeterministicNoise(9, 1, 32) {
		c.ProcessSample(x)
	}

	before := c.State()
	c.UpdateCoefficients(chainCoeffs)

	after := c.State()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("section %d state changed: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestChain_UpdateCoefficients_CountChangeResets(t *testing.T) {
	c := NewChain(chainCoeffs)
	for _, x := range testutil.DeterministicNoise(10, 1, 32) {
		c.ProcessSample(x)
	}

	c.UpdateCoefficients(chainCoeffs[:1])

	if got := c.NumSections(); got != 1 {
		t.Fatalf("NumSections() = %d, want 1", got)
	}

	if got := c.Section(0).State(); got != [4]float64{} {
		t.Fatalf("state after topology change = %v, want zeros", got)
	}
}

func TestChain_StateRoundTrip(t *testing.T) {
	c := NewChain(chainCoeffs)
	for _, x := range testutil.DeterministicNoise(11, 1, 64) {
		c.ProcessSample(x)
	}

	saved := c.State()
	next := c.ProcessSample(0.5)

	c.SetState(saved)

	if got := c.ProcessSample(0.5); got != next {
		t.Fatalf("replayed sample = %v, want %v", got, next)
	}
}
