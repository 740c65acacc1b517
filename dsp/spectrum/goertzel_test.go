package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-iir/internal/testutil"
)

func TestGoertzel_SinePower(t *testing.T) {
	const (
		sampleRate = 48000.0
		freq       = 1000.0
		length     = 480 // exactly 10 cycles, no leakage
		amplitude  = 0.5
	)

	in := testutil.DeterministicSine(freq, sampleRate, amplitude, length)

	g, err := NewGoertzel(freq, sampleRate)
	if err != nil {
		t.Fatal(err)
	}

	g.ProcessBlock(in)

	// |X[k]|^2 for a sine of amplitude A over N samples is (A*N/2)^2.
	want := amplitude * length / 2
	testutil.RequireNearlyEqual(t, g.Magnitude(), want, 1e-6)
	testutil.RequireNearlyEqual(t, g.Power(), want*want, 1e-3)
}

func TestGoertzel_RejectsOffBinTone(t *testing.T) {
	const (
		sampleRate = 48000.0
		length     = 480
	)

	// Probe at 1 kHz, drive at 4 kHz: both are integer-cycle over the
	// block, so the off-frequency tone cancels exactly.
	in := testutil.DeterministicSine(4000, sampleRate, 1, length)

	g, err := NewGoertzel(1000, sampleRate)
	if err != nil {
		t.Fatal(err)
	}

	g.ProcessBlock(in)

	if mag := g.Magnitude(); mag > 1e-6 {
		t.Fatalf("off-bin magnitude %v, want near 0", mag)
	}
}

func TestGoertzel_ResetClearsState(t *testing.T) {
	g, err := NewGoertzel(1000, 48000)
	if err != nil {
		t.Fatal(err)
	}

	g.ProcessBlock(testutil.DeterministicSine(1000, 48000, 1, 480))

	if g.Power() == 0 {
		t.Fatal("expected nonzero power before reset")
	}

	g.Reset()

	if g.Power() != 0 {
		t.Fatalf("power after reset = %v, want 0", g.Power())
	}
}

func TestGoertzel_IncrementalMatchesOneShot(t *testing.T) {
	in := testutil.DeterministicNoise(11, 1, 1000)

	g, err := NewGoertzel(2500, 48000)
	if err != nil {
		t.Fatal(err)
	}

	g.ProcessBlock(in[:300])
	g.ProcessBlock(in[300:])

	oneShot, err := AnalyzeBlock(in, 2500, 48000)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireNearlyEqual(t, g.Power(), oneShot, 1e-9)
}

func TestGoertzel_Accessors(t *testing.T) {
	g, err := NewGoertzel(1234, 48000)
	if err != nil {
		t.Fatal(err)
	}

	if g.Frequency() != 1234 || g.SampleRate() != 48000 {
		t.Fatalf("accessors: %v Hz at %v Hz", g.Frequency(), g.SampleRate())
	}
}

func TestNewGoertzel_Errors(t *testing.T) {
	cases := []struct {
		name       string
		freq, rate float64
	}{
		{"zero rate", 1000, 0},
		{"negative rate", 1000, -48000},
		{"nan rate", 1000, math.NaN()},
		{"negative freq", -1, 48000},
		{"above nyquist", 30000, 48000},
		{"inf freq", math.Inf(1), 48000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewGoertzel(tc.freq, tc.rate); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
