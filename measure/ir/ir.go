// Package ir measures the realized frequency response of a digital filter
// from its impulse response.
//
// Where dsp/filter/design evaluates the analytic transfer function of a
// coefficient set, this package answers the complementary question: what
// response does the running filter actually produce? The impulse response
// is zero-padded, transformed with an FFT, and reduced to magnitude (dB)
// and unwrapped phase over the non-negative frequency bins. Comparing the
// two is the standard way to verify a design end to end.
package ir

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/spectrum"
)

// Errors returned by response measurement functions.
var (
	ErrEmptyIR           = errors.New("ir: impulse response is empty")
	ErrInvalidSampleRate = errors.New("ir: sample rate must be positive")
	ErrInvalidFFTSize    = errors.New("ir: fft size must be a power of two >= 2")
)

// magFloor is applied before the logarithm so silent bins map to a large
// negative dB value instead of -Inf.
const magFloor = 1e-12

// Response holds a measured frequency response over FFT bins from 0 to
// Nyquist inclusive.
type Response struct {
	Frequencies []float64
	MagnitudeDB []float64
	Phase       []float64 // unwrapped, radians
}

// Measure computes the frequency response of an impulse response. The
// input is zero-padded to fftSize, which must be a power of two and at
// least as long as the impulse response.
func Measure(impulse []float64, sampleRate float64, fftSize int) (Response, error) {
	if len(impulse) == 0 {
		return Response{}, ErrEmptyIR
	}

	if sampleRate <= 0 {
		return Response{}, ErrInvalidSampleRate
	}

	if fftSize < 2 || fftSize&(fftSize-1) != 0 || fftSize < len(impulse) {
		return Response{}, fmt.Errorf("%w: got %d for %d samples", ErrInvalidFFTSize, fftSize, len(impulse))
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Response{}, fmt.Errorf("ir: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range impulse {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)

	err = plan.Forward(out, in)
	if err != nil {
		return Response{}, fmt.Errorf("ir: forward FFT failed: %w", err)
	}

	half := out[:fftSize/2+1]
	mags := spectrum.Magnitude(half)
	phase := spectrum.UnwrapPhase(spectrum.Phase(half))

	resp := Response{
		Frequencies: make([]float64, len(half)),
		MagnitudeDB: mags,
		Phase:       phase,
	}

	binWidth := sampleRate / float64(fftSize)

	for i := range resp.Frequencies {
		resp.Frequencies[i] = float64(i) * binWidth

		m := mags[i]
		if m < magFloor {
			m = magFloor
		}

		resp.MagnitudeDB[i] = 20 * math.Log10(m)
	}

	return resp, nil
}

// MeasureChain captures fftSize samples of the cascade impulse response
// and measures it. The chain's delay memory is saved and restored by the
// capture, so a live chain is not disturbed.
func MeasureChain(c *biquad.Chain, sampleRate float64, fftSize int) (Response, error) {
	if c == nil {
		return Response{}, ErrEmptyIR
	}

	return Measure(c.ImpulseResponse(fftSize), sampleRate, fftSize)
}

// MeasureSections builds a throwaway chain from the coefficient sets and
// measures its response. Convenient for verifying design.Result.Sections.
func MeasureSections(coeffs []biquad.Coefficients, sampleRate float64, fftSize int) (Response, error) {
	if len(coeffs) == 0 {
		return Response{}, ErrEmptyIR
	}

	return MeasureChain(biquad.NewChain(coeffs), sampleRate, fftSize)
}
