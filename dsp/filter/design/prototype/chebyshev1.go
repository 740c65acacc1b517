package prototype

import "math"

// Chebyshev1Poles returns the order poles of a Chebyshev Type I lowpass
// prototype with the given passband ripple in dB. The poles lie on an
// ellipse whose axes are set by the ripple:
//
//	eps = sqrt(10^(ripple/10) - 1)
//	mu  = asinh(1/eps) / N
//	p_k = (-sinh(mu)*sin(theta_k), cosh(mu)*cos(theta_k))
//	theta_k = pi*(2k+1)/(2N), k = 0..N-1
//
// The prototype is normalized to the passband ripple edge at 1 rad/s, not
// to a common -3 dB point; callers needing a -3 dB reference must rescale.
// A non-positive ripple is clamped to 0.01 dB to keep eps well defined.
func Chebyshev1Poles(order int, rippleDB float64) []complex128 {
	if order < 1 {
		return nil
	}

	if rippleDB <= 0 {
		rippleDB = 0.01
	}

	n := float64(order)
	eps := math.Sqrt(math.Pow(10, rippleDB/10) - 1)
	mu := math.Asinh(1/eps) / n
	sinhMu := math.Sinh(mu)
	coshMu := math.Cosh(mu)

	poles := make([]complex128, order)

	for k := 0; k < order; k++ {
		theta := math.Pi * (2*float64(k) + 1) / (2 * n)
		poles[k] = complex(-sinhMu*math.Sin(theta), coshMu*math.Cos(theta))
	}

	return poles
}
