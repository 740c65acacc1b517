package design

import (
	"math"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design/prototype"
	"github.com/cwbudde/algo-iir/dsp/spectrum"
)

// magFloor is applied to the magnitude before the logarithm so that a
// numerically zero response yields a large negative dB value instead of
// -Inf.
const magFloor = 1e-12

// Result is the complete output of one design call: the digital poles and
// zeros in section order, the section coefficients ready for a
// biquad.Chain or cascade.Processor, and the frequency response sampled
// on a linear grid from 0 to Nyquist.
//
// A Result is produced fresh on every call and never retained by the
// engine; the caller owns it.
type Result struct {
	Poles    []complex128
	Zeros    []complex128
	Sections []biquad.Coefficients

	Frequencies []float64
	MagnitudeDB []float64
	Phase       []float64

	// UnpairedPoles counts complex prototype poles that had no conjugate
	// partner within tolerance and were demoted to real poles. Expected
	// to be 0 for all supported families and orders.
	UnpairedPoles int
}

// Filter designs a digital filter for the given spec and returns the
// full Result. numPoints sets the response grid resolution; pass 0 to
// skip grid evaluation.
//
// Filter is pure and deterministic, safe to call at any rate from a
// control context. It allocates freely and must not be called from an
// audio callback.
func Filter(spec Spec, sampleRate float64, numPoints int) (Result, error) {
	if err := spec.Validate(sampleRate); err != nil {
		return Result{}, err
	}

	analog := prototype.Poles(spec.Family, spec.Order, spec.RippleDB)
	wa := prewarp(spec.CutoffHz, sampleRate)
	set := buildSections(analog, spec.Response, wa, sampleRate)

	res := Result{
		Poles:         set.poles,
		Zeros:         set.zeros,
		Sections:      set.coeffs,
		UnpairedPoles: set.unpaired,
	}
	res.Frequencies, res.MagnitudeDB, res.Phase = responseGrid(set.coeffs, sampleRate, numPoints)

	return res, nil
}

// responseGrid evaluates the cascade transfer function at numPoints
// frequencies linearly spaced from 0 to Nyquist. Each section is
// evaluated at z = e^{-jw} by direct trigonometric expansion and the
// section responses are multiplied together; magnitudes are then
// converted in one pass via the SIMD magnitude kernel.
func responseGrid(coeffs []biquad.Coefficients, sampleRate float64, numPoints int) (freqs, magDB, phase []float64) {
	if numPoints < 1 {
		return nil, nil, nil
	}

	nyquist := sampleRate / 2
	freqs = make([]float64, numPoints)
	re := make([]float64, numPoints)
	im := make([]float64, numPoints)

	for i := range freqs {
		frac := 0.0
		if numPoints > 1 {
			frac = float64(i) / float64(numPoints-1)
		}

		freqs[i] = frac * nyquist
		w := math.Pi * frac

		hr, hi := 1.0, 0.0

		for j := range coeffs {
			sr, si := coeffs[j].ResponseParts(w)
			hr, hi = hr*sr-hi*si, hr*si+hi*sr
		}

		re[i], im[i] = hr, hi
	}

	magDB = make([]float64, numPoints)
	spectrum.MagnitudeFromParts(magDB, re, im)

	phase = make([]float64, numPoints)

	for i := range magDB {
		m := magDB[i]
		if m < magFloor {
			m = magFloor
		}

		magDB[i] = 20 * math.Log10(m)
		phase[i] = math.Atan2(im[i], re[i])
	}

	return freqs, magDB, phase
}
