// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form I processing for a single second-order
// section defined by [Coefficients]. Multiple sections can be cascaded via
// [Chain] for higher-order filters (Butterworth, Chebyshev, Bessel).
//
// This package provides the processing runtime only. Coefficient design
// lives in dsp/filter/design; live coefficient swapping with crossfading
// lives in dsp/filter/cascade.
package biquad
