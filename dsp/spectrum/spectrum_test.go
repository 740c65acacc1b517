package spectrum

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-iir/internal/testutil"
)

func testBins() []complex128 {
	return []complex128{
		complex(1, 0),
		complex(0, 1),
		complex(-3, 4),
		complex(0.5, -0.5),
		complex(0, 0),
		complex(-1e-8, 2e-8),
	}
}

func TestMagnitude(t *testing.T) {
	in := testBins()
	got := Magnitude(in)

	if len(got) != len(in) {
		t.Fatalf("got %d values, want %d", len(got), len(in))
	}

	for i, c := range in {
		testutil.RequireNearlyEqual(t, got[i], cmplx.Abs(c), 1e-12)
	}
}

func TestMagnitude_Empty(t *testing.T) {
	if got := Magnitude(nil); got != nil {
		t.Fatalf("Magnitude(nil) = %v, want nil", got)
	}
}

func TestMagnitudeFromParts(t *testing.T) {
	re := []float64{1, 0, -3, 0.5}
	im := []float64{0, 1, 4, -0.5}
	dst := make([]float64, len(re))

	MagnitudeFromParts(dst, re, im)

	want := []float64{1, 1, 5, math.Sqrt(0.5)}
	testutil.RequireSliceNearlyEqual(t, dst, want, 1e-12)
}

func TestPower(t *testing.T) {
	in := testBins()
	got := Power(in)

	for i, c := range in {
		a := cmplx.Abs(c)
		testutil.RequireNearlyEqual(t, got[i], a*a, 1e-12)
	}
}

func TestPhase(t *testing.T) {
	in := []complex128{
		complex(1, 0),
		complex(0, 1),
		complex(-1, 0),
		complex(0, -1),
	}
	want := []float64{0, math.Pi / 2, math.Pi, -math.Pi / 2}

	testutil.RequireSliceNearlyEqual(t, Phase(in), want, 1e-12)
}

func TestUnwrapPhase(t *testing.T) {
	// A steadily decreasing phase that wraps at -pi.
	wrapped := []float64{0, -2, -3.1, 3.0, 1.9, 0.8, -0.3}
	got := UnwrapPhase(wrapped)

	for i := 1; i < len(got); i++ {
		d := got[i] - got[i-1]
		if d > math.Pi || d < -math.Pi {
			t.Fatalf("step %d not unwrapped: delta %v", i, d)
		}
	}

	// Unwrapping preserves each value modulo 2*pi.
	for i := range got {
		d := math.Mod(got[i]-wrapped[i], 2*math.Pi)
		if math.Abs(d) > 1e-12 && math.Abs(math.Abs(d)-2*math.Pi) > 1e-12 {
			t.Fatalf("index %d: offset %v is not a multiple of 2*pi", i, d)
		}
	}
}

func TestUnwrapPhase_Empty(t *testing.T) {
	if got := UnwrapPhase(nil); got != nil {
		t.Fatalf("UnwrapPhase(nil) = %v, want nil", got)
	}
}
