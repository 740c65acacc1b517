package prototype

import "math"

// ButterworthPoles returns the order poles of a normalized Butterworth
// lowpass prototype. The poles lie on the unit circle at angles
//
//	theta_k = pi*(2k+N+1)/(2N), k = 0..N-1
//
// which places all of them in the left half plane. Conjugate partners
// appear at indices k and N-1-k.
func ButterworthPoles(order int) []complex128 {
	if order < 1 {
		return nil
	}

	n := float64(order)
	poles := make([]complex128, order)

	for k := 0; k < order; k++ {
		theta := math.Pi * (2*float64(k) + n + 1) / (2 * n)
		poles[k] = complex(math.Cos(theta), math.Sin(theta))
	}

	return poles
}
