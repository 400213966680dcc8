package tone

import (
	"bytes"
	"errors"
	"math"
	"math/cmplx"
	"strings"

	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	// DefaultNumBands is the number of frequency bands (and payload bits)
	// the carrier uses unless configured otherwise.
	DefaultNumBands = 40
	// DefaultPeakThreshold is the normalized magnitude a spectral peak must
	// exceed to count as a set bit. Inputs are expected in [-1, 1]; a
	// full-scale tone produces a normalized magnitude near 1.0.
	DefaultPeakThreshold = 0.1
)

// NoopInstruction is returned when a segment decodes to nothing actionable.
const NoopInstruction = "NOOP"

// ErrEmptySignal reports a decode attempt on a segment with no samples.
// Callers must distinguish this from a clean segment that simply carries no
// tones, which decodes to NoopInstruction instead.
var ErrEmptySignal = errors.New("tone: empty signal")

// Options tunes demodulation and synthesis. The zero value selects the
// package defaults.
type Options struct {
	NumBands      int
	PeakThreshold float64
}

func (o Options) withDefaults() Options {
	if o.NumBands <= 0 {
		o.NumBands = DefaultNumBands
	}
	if o.PeakThreshold <= 0 {
		o.PeakThreshold = DefaultPeakThreshold
	}
	return o
}

// bandWidth returns the width in Hz of one band for the given sample rate.
func (o Options) bandWidth(sampleRate int) float64 {
	return (float64(sampleRate) / 2) / float64(o.NumBands)
}

// Decode demodulates one segment into its instruction string. Segments with
// no detectable tones decode to NoopInstruction; segments with no samples at
// all fail with ErrEmptySignal.
func Decode(seg Segment, opts Options) (string, error) {
	if seg.Empty() {
		return "", ErrEmptySignal
	}
	opts = opts.withDefaults()

	mono := seg.downmix()
	bits := bandVector(mono, seg.SampleRate, opts)

	payload := packBits(bits)
	payload = bytes.TrimRight(payload, "\x00")

	// Invalid UTF-8 sequences are skipped, keeping whatever decodes
	// cleanly; a payload with nothing valid left becomes a no-op.
	text := strings.ToValidUTF8(string(payload), "")
	text = strings.TrimSpace(text)
	if text == "" {
		return NoopInstruction, nil
	}
	return text, nil
}

// bandVector computes the per-band bit vector for a mono signal. The result
// always has exactly opts.NumBands entries.
func bandVector(mono []float64, sampleRate int, opts Options) []bool {
	n := len(mono)
	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, mono)

	// Normalize so a unit-amplitude sine yields a magnitude near 1.0
	// regardless of segment length.
	mags := make([]float64, len(coeffs))
	scale := 2.0 / float64(n)
	for i, c := range coeffs {
		mags[i] = cmplx.Abs(c) * scale
	}

	width := opts.bandWidth(sampleRate)
	bits := make([]bool, opts.NumBands)
	for _, i := range peakIndices(mags, opts.PeakThreshold) {
		freq := fft.Freq(i) * float64(sampleRate)
		band := int(math.Floor(freq / width))
		if band >= 0 && band < opts.NumBands {
			bits[band] = true
		}
	}
	return bits
}

// peakIndices returns indices of local maxima exceeding the threshold.
func peakIndices(mags []float64, threshold float64) []int {
	var peaks []int
	for i := 1; i < len(mags)-1; i++ {
		if mags[i] <= threshold {
			continue
		}
		if mags[i] > mags[i-1] && mags[i] >= mags[i+1] {
			peaks = append(peaks, i)
		}
	}
	return peaks
}

// packBits packs a bit vector into bytes, 8 bits per byte MSB-first, zero
// padding the final byte when the vector length is not a multiple of 8.
func packBits(bits []bool) []byte {
	packed := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit {
			packed[i/8] |= 1 << (7 - uint(i%8))
		}
	}
	return packed
}
