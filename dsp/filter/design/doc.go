// Package design turns an analog prototype specification into a stable
// digital second-order-section cascade.
//
// The pipeline is the classical one: generate normalized s-plane poles
// (dsp/filter/design/prototype), prewarp the cutoff frequency, apply the
// bilinear transform, pair conjugate poles into real-coefficient biquad
// sections, and normalize each section to unity gain at the passband
// reference (DC for lowpass, Nyquist for highpass).
//
// [Filter] is the single entry point. It is pure and deterministic: the
// same Spec, sample rate and grid size always produce the same [Result].
// It runs at control rate and may allocate freely; delivering the
// resulting coefficients to a live audio path is the job of
// dsp/filter/cascade.
package design
