// Package cascade runs a second-order-section filter cascade on a live
// audio stream with artifact-free coefficient updates.
//
// A [Processor] sits on the audio side of a single-producer /
// single-consumer pair. The control side calls [Processor.Update] with
// freshly designed coefficients (typically design.Result.Sections); the
// audio side calls [Processor.ProcessBlock] from its render callback.
// When an update carries the same section count as the running cascade,
// the processor linearly crossfades every coefficient over a short ramp
// instead of stepping it, so the filter response itself morphs smoothly
// and no zipper noise or discontinuity reaches the output. When the
// section count changes there is no meaningful interpolation path, so
// the cascade is rebuilt with zeroed delay memory, accepting one
// potentially audible transient.
//
// The audio side never blocks, never allocates per sample, and never
// calls back into the control side.
package cascade
