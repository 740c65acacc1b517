package biquad

import (
	"math"

	"github.com/cwbudde/algo-iir/dsp/core"
)

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
// First-order sections are the degenerate case B2 = A2 = 0.
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Finite reports whether all coefficients are finite (no NaN or Inf).
func (c Coefficients) Finite() bool {
	for _, v := range [5]float64{c.B0, c.B1, c.B2, c.A1, c.A2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// Section is a single biquad filter with coefficients and delay memory.
// It implements Direct Form I processing:
//
//	y = B0*x + B1*x1 + B2*x2 - A1*y1 - A2*y2
//
// where x1/x2 are the previous inputs and y1/y2 the previous outputs.
type Section struct {
	Coefficients

	x1, x2 float64
	y1, y2 float64
}

// NewSection returns a Section initialized with the given coefficients
// and zero delay memory.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.B1*s.x1 + s.B2*s.x2 - s.A1*s.y1 - s.A2*s.y2

	s.x2 = s.x1
	s.x1 = x
	s.y2 = s.y1
	s.y1 = y

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
func (s *Section) ProcessBlock(buf []float64) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	x1, x2 := s.x1, s.x2
	y1, y2 := s.y1, s.y2

	for i, x := range buf {
		y := b0*x + b1*x1 + b2*x2 - a1*y1 - a2*y2
		x2, x1 = x1, x
		y2, y1 = y1, y
		buf[i] = y
	}

	s.x1, s.x2 = x1, x2
	s.y1, s.y2 = y1, y2
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
// Zero-alloc.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = s.ProcessSample(x)
	}
}

// FlushDenormals zeroes denormal-range values in the delay memory.
// During long silent stretches the feedback path decays into denormals,
// which are slow on some CPUs; realtime callers flush once per block.
func (s *Section) FlushDenormals() {
	s.x1 = core.FlushDenormals(s.x1)
	s.x2 = core.FlushDenormals(s.x2)
	s.y1 = core.FlushDenormals(s.y1)
	s.y2 = core.FlushDenormals(s.y2)
}

// Reset clears the delay memory to zero.
func (s *Section) Reset() {
	s.x1, s.x2 = 0, 0
	s.y1, s.y2 = 0, 0
}

// State returns the current delay memory [x1, x2, y1, y2].
func (s *Section) State() [4]float64 {
	return [4]float64{s.x1, s.x2, s.y1, s.y2}
}

// SetState restores a previously saved delay memory.
func (s *Section) SetState(state [4]float64) {
	s.x1, s.x2 = state[0], state[1]
	s.y1, s.y2 = state[2], state[3]
}
