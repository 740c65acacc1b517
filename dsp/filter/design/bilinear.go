package design

import "math"

// prewarp returns the analog cutoff frequency (rad/s) that maps exactly
// onto the requested digital cutoff under the bilinear transform:
//
//	wd = 2*pi*fc/fs
//	Wa = 2*fs*tan(wd/2)
//
// Without this correction the bilinear transform's frequency warping
// would shift the realized cutoff away from the design target.
func prewarp(freqHz, sampleRate float64) float64 {
	wd := 2 * math.Pi * freqHz / sampleRate
	return 2 * sampleRate * math.Tan(wd/2)
}

// bilinear maps an s-plane pole (already scaled by the prewarped analog
// cutoff) to the z plane:
//
//	z = (1 + s*T/2) / (1 - s*T/2), T = 1/fs
//
// The division is carried out explicitly on real/imaginary parts: the
// numerator is multiplied by the denominator's conjugate and divided by
// the denominator's squared magnitude.
func bilinear(s complex128, sampleRate float64) complex128 {
	t2 := 1 / (2 * sampleRate) // T/2

	numRe := 1 + real(s)*t2
	numIm := imag(s) * t2
	denRe := 1 - real(s)*t2
	denIm := -imag(s) * t2

	mag2 := denRe*denRe + denIm*denIm
	if mag2 == 0 {
		return 0
	}

	re := (numRe*denRe + numIm*denIm) / mag2
	im := (numIm*denRe - numRe*denIm) / mag2

	return complex(re, im)
}
