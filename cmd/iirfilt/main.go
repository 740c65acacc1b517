// Command iirfilt filters a WAV file through a designed IIR cascade.
//
// Usage:
//
//	iirfilt -in input.wav -out output.wav [flags]
//
// Examples:
//
//	iirfilt -in voice.wav -out voice_lp.wav -family butterworth -order 4 -cutoff 1000
//	iirfilt -in noise.wav -out noise_hp.wav -response highpass -family chebyshev -ripple 0.5
//
// Each channel is processed through its own cascade so stereo files keep
// their channels independent.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/cascade"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/dsp/filter/design/prototype"
)

func main() {
	var (
		inPath       = flag.String("in", "", "input WAV file (required)")
		outPath      = flag.String("out", "", "output WAV file (required)")
		familyName   = flag.String("family", "butterworth", "filter family: butterworth, chebyshev, bessel")
		responseName = flag.String("response", "lowpass", "response type: lowpass, highpass")
		order        = flag.Int("order", 4, "filter order (>= 1)")
		cutoff       = flag.Float64("cutoff", 1000, "cutoff frequency in Hz")
		ripple       = flag.Float64("ripple", 1, "passband ripple in dB (chebyshev only)")
		blockSize    = flag.Int("block", 1024, "processing block size in frames")
	)

	flag.Parse()

	if *inPath == "" || *outPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	family, ok := prototype.ParseFamily(*familyName)
	if !ok {
		fatalf("unknown family %q", *familyName)
	}

	response, ok := design.ParseResponse(*responseName)
	if !ok {
		fatalf("unknown response %q", *responseName)
	}

	err := run(*inPath, *outPath, design.Spec{
		Family:   family,
		Response: response,
		Order:    *order,
		CutoffHz: *cutoff,
		RippleDB: *ripple,
	}, *blockSize)
	if err != nil {
		fatalf("%v", err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "iirfilt: "+format+"\n", args...)
	os.Exit(1)
}

func run(inPath, outPath string, spec design.Spec, blockSize int) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	decoder := wav.NewDecoder(in)
	if !decoder.IsValidFile() {
		return fmt.Errorf("%s: not a valid WAV file", inPath)
	}

	if err := decoder.FwdToPCM(); err != nil {
		return fmt.Errorf("seek to PCM data: %w", err)
	}

	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(float64(decoder.SampleRate)),
		core.WithBlockSize(blockSize),
	)

	spec.CutoffHz = design.ClampCutoff(spec.CutoffHz, cfg.SampleRate)

	result, err := design.Filter(spec, cfg.SampleRate, 0)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	channels := int(decoder.NumChans)
	bitDepth := int(decoder.BitDepth)
	encoder := wav.NewEncoder(out, int(decoder.SampleRate), bitDepth, channels, 1)

	procs := make([]*cascade.Processor, channels)
	for ch := range procs {
		procs[ch] = cascade.NewProcessor()
		procs[ch].Update(result.Sections)
	}

	err = pump(decoder, encoder, procs, cfg.BlockSize, bitDepth)
	if err != nil {
		return err
	}

	return encoder.Close()
}

// pump streams PCM frames through the per-channel cascades block by block.
func pump(decoder *wav.Decoder, encoder *wav.Encoder, procs []*cascade.Processor, blockSize, bitDepth int) error {
	channels := len(procs)
	scale := float64(int(1) << (bitDepth - 1))

	buf := &audio.IntBuffer{
		Format: decoder.Format(),
		Data:   make([]int, blockSize*channels),
	}

	var chBuf []float64

	for {
		n, err := decoder.PCMBuffer(buf)
		if err != nil && err != io.EOF {
			return fmt.Errorf("decode: %w", err)
		}

		if n == 0 {
			return nil
		}

		frames := n / channels

		for ch := 0; ch < channels; ch++ {
			chBuf = core.EnsureLen(chBuf, frames)
			for f := 0; f < frames; f++ {
				chBuf[f] = float64(buf.Data[f*channels+ch]) / scale
			}

			procs[ch].ProcessBlock(chBuf)

			for f := 0; f < frames; f++ {
				buf.Data[f*channels+ch] = clampToPCM(chBuf[f]*scale, scale)
			}
		}

		buf.Data = buf.Data[:n]

		if err := encoder.Write(buf); err != nil {
			return fmt.Errorf("encode: %w", err)
		}

		buf.Data = buf.Data[:cap(buf.Data)]
	}
}

// clampToPCM converts a scaled sample back to integer PCM, saturating at
// the format limits instead of wrapping.
func clampToPCM(v, scale float64) int {
	limit := scale - 1
	return int(math.Round(core.Clamp(v, -scale, limit)))
}
