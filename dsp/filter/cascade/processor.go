package cascade

import (
	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
)

// DefaultRampLength is the coefficient crossfade length in samples.
// Short enough to be inaudible as a ramp, long enough to avoid audible
// steps at common sample rates.
const DefaultRampLength = 256

// config holds options for NewProcessor.
type config struct {
	ramp int
}

// Option configures a Processor.
type Option func(*config)

// WithRampLength sets the coefficient crossfade length in samples.
// Values below 1 are ignored.
func WithRampLength(samples int) Option {
	return func(cfg *config) {
		if samples >= 1 {
			cfg.ramp = samples
		}
	}
}

// Processor applies a biquad cascade to an audio stream and crossfades
// toward newly received coefficients.
//
// Exactly one goroutine (the control context) may call Update and
// exactly one (the audio context) may call ProcessBlock and Reset.
// All other methods are safe only from the audio side.
type Processor struct {
	updates chan []biquad.Coefficients

	sections []biquad.Section
	old      []biquad.Coefficients
	target   []biquad.Coefficients

	pos           int
	ramp          int
	interpolating bool
}

// NewProcessor returns an idle (pass-through) Processor.
func NewProcessor(opts ...Option) *Processor {
	cfg := config{ramp: DefaultRampLength}
	for _, o := range opts {
		o(&cfg)
	}

	return &Processor{
		updates: make(chan []biquad.Coefficients, 1),
		ramp:    cfg.ramp,
	}
}

// Update delivers freshly designed coefficients to the audio side.
// It never blocks: if a previous update has not been consumed yet it is
// discarded, so the latest unconsumed update always wins. The caller
// must not mutate coeffs after handing it over.
func (p *Processor) Update(coeffs []biquad.Coefficients) {
	for {
		select {
		case p.updates <- coeffs:
			return
		default:
			// Drop the stale pending update, then retry.
			select {
			case <-p.updates:
			default:
			}
		}
	}
}

// ProcessBlock filters a block in-place. With no sections configured the
// block passes through unchanged. Pending coefficient updates are picked
// up once per block; the crossfade itself advances per sample.
func (p *Processor) ProcessBlock(buf []float64) {
	p.poll()

	if len(p.sections) == 0 {
		return
	}

	if !p.interpolating {
		for i := range p.sections {
			p.sections[i].ProcessBlock(buf)
		}
	} else {
		for i, x := range buf {
			buf[i] = p.processSample(x)
		}
	}

	for i := range p.sections {
		p.sections[i].FlushDenormals()
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same
// length.
func (p *Processor) ProcessBlockTo(dst, src []float64) {
	copy(dst, src)
	p.ProcessBlock(dst)
}

// processSample recomputes the interpolated coefficients (when a
// crossfade is active) and cascades one sample through all sections.
// Recomputing before every sample is what makes the filter response
// itself time-varying during a transition.
func (p *Processor) processSample(x float64) float64 {
	if p.interpolating {
		p.advanceRamp()
	}

	for i := range p.sections {
		x = p.sections[i].ProcessSample(x)
	}

	return x
}

// advanceRamp sets the active coefficients for the current ramp position
// and advances it. At position ramp the coefficients snap exactly to the
// target values, so after the crossfade they are bitwise equal to the
// designed set.
func (p *Processor) advanceRamp() {
	if p.pos >= p.ramp {
		for i := range p.sections {
			p.sections[i].Coefficients = p.target[i]
		}

		p.interpolating = false

		return
	}

	t := float64(p.pos) / float64(p.ramp)

	for i := range p.sections {
		o, n := p.old[i], p.target[i]
		p.sections[i].Coefficients = biquad.Coefficients{
			B0: o.B0 + t*(n.B0-o.B0),
			B1: o.B1 + t*(n.B1-o.B1),
			B2: o.B2 + t*(n.B2-o.B2),
			A1: o.A1 + t*(n.A1-o.A1),
			A2: o.A2 + t*(n.A2-o.A2),
		}
	}

	p.pos++
}

// poll picks up at most one pending coefficient update without blocking.
func (p *Processor) poll() {
	select {
	case coeffs := <-p.updates:
		p.apply(coeffs)
	default:
	}
}

// apply installs a received coefficient set following the transition
// policy: same section count starts (or restarts) a crossfade from the
// currently active coefficients; a different count rebuilds the cascade
// with zeroed delay memory. A set containing non-finite values degrades
// to pass-through instead of poisoning the stream.
func (p *Processor) apply(coeffs []biquad.Coefficients) {
	for i := range coeffs {
		if !coeffs[i].Finite() {
			p.reconfigure(nil)
			return
		}
	}

	if len(coeffs) == len(p.sections) && len(coeffs) > 0 {
		for i := range p.sections {
			p.old[i] = p.sections[i].Coefficients
		}

		p.target = coeffs
		p.pos = 0
		p.interpolating = true

		return
	}

	p.reconfigure(coeffs)
}

// reconfigure replaces the cascade topology. Delay memory starts at zero;
// one audible transient is the accepted cost of an order change.
func (p *Processor) reconfigure(coeffs []biquad.Coefficients) {
	p.sections = make([]biquad.Section, len(coeffs))
	p.old = make([]biquad.Coefficients, len(coeffs))

	for i := range coeffs {
		p.sections[i].Coefficients = coeffs[i]
	}

	p.target = coeffs
	p.pos = 0
	p.interpolating = false
}

// Reset clears all section delay memory without touching coefficients.
func (p *Processor) Reset() {
	for i := range p.sections {
		p.sections[i].Reset()
	}
}

// NumSections returns the number of sections in the running cascade.
func (p *Processor) NumSections() int {
	return len(p.sections)
}

// Interpolating reports whether a coefficient crossfade is in progress.
func (p *Processor) Interpolating() bool {
	return p.interpolating
}

// Coefficients returns a snapshot of the currently active per-section
// coefficients. It allocates and is meant for inspection, not for the
// audio path.
func (p *Processor) Coefficients() []biquad.Coefficients {
	out := make([]biquad.Coefficients, len(p.sections))
	for i := range p.sections {
		out[i] = p.sections[i].Coefficients
	}

	return out
}
