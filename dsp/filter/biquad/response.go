package biquad

import (
	"math"
	"math/cmplx"
)

// ResponseParts evaluates the section transfer function at z = e^{-jw}
// using direct trigonometric expansion and returns the real and imaginary
// parts. w is the normalized angular frequency 2*pi*freq/sampleRate.
//
// This avoids complex exponentials in grid evaluation loops; the
// cmplx-based [Coefficients.Response] serves as the reference path.
func (c *Coefficients) ResponseParts(w float64) (re, im float64) {
	c1 := math.Cos(w)
	s1 := math.Sin(w)
	c2 := math.Cos(2 * w)
	s2 := math.Sin(2 * w)

	numRe := c.B0 + c.B1*c1 + c.B2*c2
	numIm := -(c.B1*s1 + c.B2*s2)
	denRe := 1 + c.A1*c1 + c.A2*c2
	denIm := -(c.A1*s1 + c.A2*s2)

	// Explicit complex division: num/den = num*conj(den)/|den|^2.
	mag2 := denRe*denRe + denIm*denIm
	if mag2 == 0 {
		return 0, 0
	}

	re = (numRe*denRe + numIm*denIm) / mag2
	im = (numIm*denRe - numRe*denIm) / mag2

	return re, im
}

// Response computes the complex frequency response H(e^{-jw}) of a biquad
// at the given frequency (Hz) and sample rate (Hz).
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	ejw := cmplx.Exp(complex(0, -w))
	ej2w := cmplx.Exp(complex(0, -2*w))

	num := complex(c.B0, 0) + complex(c.B1, 0)*ejw + complex(c.B2, 0)*ej2w
	den := complex(1, 0) + complex(c.A1, 0)*ejw + complex(c.A2, 0)*ej2w
	return num / den
}

// MagnitudeDB returns 20*log10(|H(f)|).
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// Phase returns the phase response in radians at the given frequency.
// The result is in [-pi, pi], consistent with the standard DSP convention
// H(e^{-jw}).
func (c *Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// Response computes the complex frequency response of the full cascade
// as the product of individual section responses.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	h := complex(c.gain, 0)
	for i := range c.sections {
		h *= c.sections[i].Response(freqHz, sampleRate)
	}
	return h
}

// MagnitudeDB returns the cascaded magnitude response in dB.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	h := c.Response(freqHz, sampleRate)
	return 20 * math.Log10(cmplx.Abs(h))
}

// ImpulseResponse computes n samples of the impulse response h[n]
// by feeding an impulse through the section. The delay memory is
// saved and restored so this method does not modify the section.
func (s *Section) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}
	saved := s.State()
	s.Reset()
	ir := make([]float64, n)
	ir[0] = s.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = s.ProcessSample(0)
	}
	s.SetState(saved)
	return ir
}

// ImpulseResponse computes n samples of the cascade impulse response.
// The chain state is saved and restored.
func (c *Chain) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}
	saved := c.State()
	c.Reset()
	ir := make([]float64, n)
	ir[0] = c.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = c.ProcessSample(0)
	}
	c.SetState(saved)
	return ir
}
