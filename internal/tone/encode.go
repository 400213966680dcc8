package tone

import (
	"errors"
	"math"
	"time"
)

// ErrEmptyDuration reports an encode attempt that would synthesize no samples.
var ErrEmptyDuration = errors.New("tone: duration too short for sample rate")

// Encode synthesizes the carrier segment for an instruction string. Each set
// bit of the UTF-8 payload (MSB-first per byte, bit positions capped at
// NumBands-1) contributes a sine tone at the center frequency of its band;
// the summed tones are scaled so the signal stays within [-1, 1].
//
// Encode is the inverse of Decode for payloads whose bit positions all fit
// within NumBands.
func Encode(text string, sampleRate int, duration time.Duration, opts Options) ([]float64, error) {
	opts = opts.withDefaults()
	n := int(float64(sampleRate) * duration.Seconds())
	if n <= 0 {
		return nil, ErrEmptyDuration
	}

	freqs := toneFrequencies(text, sampleRate, opts)
	samples := make([]float64, n)
	if len(freqs) == 0 {
		return samples, nil
	}

	for _, freq := range freqs {
		step := 2 * math.Pi * freq / float64(sampleRate)
		for i := range samples {
			samples[i] += math.Sin(step*float64(i))
		}
	}

	// Scale by the observed peak rather than the tone count: the tones
	// rarely align, so dividing by the count would bury each one far below
	// the decoder's detection threshold on dense payloads.
	peak := 0.0
	for _, s := range samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	if peak > 0 {
		for i := range samples {
			samples[i] /= peak
		}
	}
	return samples, nil
}

// BandFrequency returns the representative (center) frequency of a band.
func BandFrequency(band, sampleRate int, opts Options) float64 {
	opts = opts.withDefaults()
	width := opts.bandWidth(sampleRate)
	return float64(band)*width + width/2
}

// toneFrequencies maps the payload's set bits to their band center
// frequencies. Duplicate frequencies collapse: a band carries one tone no
// matter how many bits land in it.
func toneFrequencies(text string, sampleRate int, opts Options) []float64 {
	bands := make(map[int]struct{})
	for byteIndex := 0; byteIndex < len(text); byteIndex++ {
		b := text[byteIndex]
		for bitOffset := 0; bitOffset < 8; bitOffset++ {
			if b&(1<<(7-uint(bitOffset))) == 0 {
				continue
			}
			pos := byteIndex*8 + bitOffset
			if pos > opts.NumBands-1 {
				pos = opts.NumBands - 1
			}
			bands[pos] = struct{}{}
		}
	}

	freqs := make([]float64, 0, len(bands))
	for band := 0; band < opts.NumBands; band++ {
		if _, ok := bands[band]; ok {
			freqs = append(freqs, BandFrequency(band, sampleRate, opts))
		}
	}
	return freqs
}
