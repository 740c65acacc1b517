// Package prototype generates normalized s-plane poles for classical
// analog lowpass prototypes.
//
// All families return exactly order poles, each strictly in the left half
// plane. Butterworth and Bessel prototypes are normalized so the -3 dB
// point sits at an angular frequency of 1 rad/s; Chebyshev Type I poles
// are normalized to the passband ripple edge, which is the conventional
// reference for that family.
package prototype

// Family identifies an analog prototype family.
type Family int

const (
	// Butterworth has a maximally flat passband magnitude.
	Butterworth Family = iota
	// Chebyshev1 trades passband ripple for a steeper rolloff.
	Chebyshev1
	// Bessel has maximally flat group delay in the passband.
	Bessel
)

// String returns the lowercase family name.
func (f Family) String() string {
	switch f {
	case Butterworth:
		return "butterworth"
	case Chebyshev1:
		return "chebyshev"
	case Bessel:
		return "bessel"
	default:
		return "unknown"
	}
}

// ParseFamily maps a lowercase family name to its Family value.
func ParseFamily(name string) (Family, bool) {
	switch name {
	case "butterworth":
		return Butterworth, true
	case "chebyshev":
		return Chebyshev1, true
	case "bessel":
		return Bessel, true
	default:
		return Butterworth, false
	}
}

// Poles returns the left-half-plane prototype poles for the given family
// and order. rippleDB is only meaningful for Chebyshev1; other families
// ignore it. An unknown family falls back to Butterworth so downstream
// consumers always receive a usable pole set. Returns nil for order < 1.
func Poles(family Family, order int, rippleDB float64) []complex128 {
	if order < 1 {
		return nil
	}

	switch family {
	case Chebyshev1:
		return Chebyshev1Poles(order, rippleDB)
	case Bessel:
		return BesselPoles(order)
	case Butterworth:
		return ButterworthPoles(order)
	default:
		return ButterworthPoles(order)
	}
}
