package design

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/design/prototype"
)

// Response selects the filter response type.
type Response int

const (
	// Lowpass passes frequencies below the cutoff.
	Lowpass Response = iota
	// Highpass passes frequencies above the cutoff.
	Highpass
)

// String returns the lowercase response name.
func (r Response) String() string {
	if r == Highpass {
		return "highpass"
	}

	return "lowpass"
}

// ParseResponse maps a lowercase response name to its Response value.
func ParseResponse(name string) (Response, bool) {
	switch name {
	case "lowpass":
		return Lowpass, true
	case "highpass":
		return Highpass, true
	default:
		return Lowpass, false
	}
}

// MaxCutoffRatio is the highest usable cutoff as a fraction of Nyquist.
// The bilinear transform's stability margin degrades as the prewarped
// analog cutoff approaches Nyquist; designs above this ratio are not
// guaranteed stable and are rejected by [Spec.Validate].
const MaxCutoffRatio = 0.95

var (
	// ErrInvalidOrder is returned for filter orders below 1.
	ErrInvalidOrder = errors.New("design: order must be >= 1")
	// ErrInvalidSampleRate is returned for non-positive sample rates.
	ErrInvalidSampleRate = errors.New("design: sample rate must be > 0")
	// ErrInvalidCutoff is returned when the cutoff frequency is not in
	// (0, MaxCutoffRatio*Nyquist].
	ErrInvalidCutoff = errors.New("design: cutoff frequency out of range")
)

// Spec fully determines a filter design. It is a plain immutable value;
// construct one, validate it, and hand it to [Filter].
type Spec struct {
	Family   prototype.Family
	Response Response
	Order    int
	CutoffHz float64
	// RippleDB is the passband ripple in dB. Only meaningful for
	// Chebyshev; other families ignore it.
	RippleDB float64
}

// Validate checks the spec against the given sample rate. An unknown
// family is not an error: [Filter] treats it as Butterworth so the
// realtime path is never left without coefficients.
func (s Spec) Validate(sampleRate float64) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidSampleRate, sampleRate)
	}

	if s.Order < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidOrder, s.Order)
	}

	if s.CutoffHz <= 0 || s.CutoffHz > MaxCutoffRatio*sampleRate/2 {
		return fmt.Errorf("%w: got %g Hz at sample rate %g Hz", ErrInvalidCutoff, s.CutoffHz, sampleRate)
	}

	return nil
}

// ClampCutoff limits a requested cutoff frequency to the usable range
// (0, MaxCutoffRatio*Nyquist]. UI code should route user input through
// this before building a Spec.
func ClampCutoff(freqHz, sampleRate float64) float64 {
	if sampleRate <= 0 {
		return freqHz
	}

	const minCutoffHz = 1e-3

	return core.Clamp(freqHz, minCutoffHz, MaxCutoffRatio*sampleRate/2)
}
