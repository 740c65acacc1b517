package design

import (
	"math"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
)

// conjTolerance bounds how far two analog poles may drift from exact
// conjugacy and still be paired into one real-coefficient section. The
// Bessel table carries about ten significant digits, so anything tighter
// would spuriously reject valid pairs.
const conjTolerance = 1e-10

// sectionSet is the intermediate output of the section builder: the
// per-section digital coefficients plus the digital poles and zeros in
// section order.
type sectionSet struct {
	coeffs []biquad.Coefficients
	poles  []complex128
	zeros  []complex128

	// unpaired counts complex analog poles for which no conjugate
	// partner was found and which were demoted to real poles. Always 0
	// for exact prototypes; could become nonzero if table precision
	// degrades.
	unpaired int
}

// buildSections pairs analog prototype poles into second-order (or
// degenerate first-order) sections, bilinear-transforms them, and
// normalizes each section to unity gain at the passband reference.
//
// wa is the prewarped analog cutoff in rad/s; every pole is scaled by it
// before the transform.
func buildSections(analogPoles []complex128, response Response, wa, sampleRate float64) sectionSet {
	n := len(analogPoles)
	set := sectionSet{
		coeffs: make([]biquad.Coefficients, 0, (n+1)/2),
		poles:  make([]complex128, 0, n),
		zeros:  make([]complex128, 0, n),
	}

	zeroZ := -1.0
	if response == Highpass {
		zeroZ = 1.0
	}

	used := make([]bool, n)

	for i, p := range analogPoles {
		if used[i] {
			continue
		}

		used[i] = true

		if math.Abs(imag(p)) < conjTolerance {
			set.addFirstOrder(real(p), zeroZ, response, wa, sampleRate)
			continue
		}

		j := findConjugate(analogPoles, used, i)
		if j < 0 {
			// Near-but-not-exactly conjugate values (finite table
			// precision) land here. Demote to a real pole instead of
			// failing so the caller still gets a usable cascade.
			set.unpaired++

			set.addFirstOrder(real(p), zeroZ, response, wa, sampleRate)

			continue
		}

		used[j] = true
		set.addSecondOrder(p, analogPoles[j], zeroZ, response, wa, sampleRate)
	}

	return set
}

// findConjugate scans forward from index i for an unused pole whose real
// part matches and whose imaginary part cancels within conjTolerance.
func findConjugate(poles []complex128, used []bool, i int) int {
	p := poles[i]

	for j := i + 1; j < len(poles); j++ {
		if used[j] {
			continue
		}

		q := poles[j]
		if math.Abs(real(q)-real(p)) < conjTolerance && math.Abs(imag(q)+imag(p)) < conjTolerance {
			return j
		}
	}

	return -1
}

// addFirstOrder builds one first-order section from a real analog pole.
// The single zero sits at -1 (lowpass) or +1 (highpass).
func (set *sectionSet) addFirstOrder(sigma, zeroZ float64, response Response, wa, sampleRate float64) {
	zp := bilinear(complex(sigma*wa, 0), sampleRate)

	a1 := -real(zp)
	c := normalizeSection(1, -zeroZ, 0, a1, 0, response)

	set.coeffs = append(set.coeffs, c)
	set.poles = append(set.poles, complex(real(zp), 0))
	set.zeros = append(set.zeros, complex(zeroZ, 0))
}

// addSecondOrder builds one second-order section from a conjugate pair
// of analog poles. A double zero sits at -1 (lowpass) or +1 (highpass).
func (set *sectionSet) addSecondOrder(p1, p2 complex128, zeroZ float64, response Response, wa, sampleRate float64) {
	zp1 := bilinear(complex(real(p1)*wa, imag(p1)*wa), sampleRate)
	zp2 := bilinear(complex(real(p2)*wa, imag(p2)*wa), sampleRate)

	a1 := -(real(zp1) + real(zp2))
	// Conjugate-pair identity: the imaginary parts cancel exactly, so
	// the coefficient stays real by construction.
	a2 := real(zp1)*real(zp2) - imag(zp1)*imag(zp2)

	c := normalizeSection(1, -2*zeroZ, zeroZ*zeroZ, a1, a2, response)

	set.coeffs = append(set.coeffs, c)
	set.poles = append(set.poles, zp1, zp2)
	set.zeros = append(set.zeros, complex(zeroZ, 0), complex(zeroZ, 0))
}

// normalizeSection scales the numerator so the section evaluates to
// exactly unity at the passband reference point: z = 1 (DC) for lowpass,
// z = -1 (Nyquist) for highpass. This keeps the overall cascade at 0 dB
// reference gain independent of order or family.
func normalizeSection(b0, b1, b2, a1, a2 float64, response Response) biquad.Coefficients {
	var num, den float64

	if response == Highpass {
		num = b0 - b1 + b2
		den = 1 - a1 + a2
	} else {
		num = b0 + b1 + b2
		den = 1 + a1 + a2
	}

	g := 1.0
	if num != 0 {
		g = den / num
	}

	return biquad.Coefficients{
		B0: b0 * g,
		B1: b1 * g,
		B2: b2 * g,
		A1: a1,
		A2: a2,
	}
}
