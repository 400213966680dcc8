package tone_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"chirp/internal/tone"
)

const testRate = 8000

// sine synthesizes one second of a unit-amplitude tone so tests can control
// phase and amplitude independently of the package encoder.
func sine(freq, phase, amp float64) []float64 {
	samples := make([]float64, testRate)
	step := 2 * math.Pi * freq / testRate
	for i := range samples {
		samples[i] = amp * math.Sin(step*float64(i)+phase)
	}
	return samples
}

func TestDecodeSingleBandToneIgnoresPhase(t *testing.T) {
	// Bit position 1 of the first payload byte is 0x40, the '@' character.
	freq := tone.BandFrequency(1, testRate, tone.Options{})
	for _, phase := range []float64{0, math.Pi / 4, math.Pi / 2, 1.3} {
		seg := tone.Mono(sine(freq, phase, 1.0), testRate)
		got, err := tone.Decode(seg, tone.Options{})
		if err != nil {
			t.Fatalf("Decode failed at phase %.2f: %v", phase, err)
		}
		if got != "@" {
			t.Fatalf("phase %.2f: expected %q, got %q", phase, "@", got)
		}
	}
}

func TestDecodeDownmixesChannels(t *testing.T) {
	freq := tone.BandFrequency(1, testRate, tone.Options{})
	seg := tone.Segment{
		Channels:   [][]float64{sine(freq, 0, 1.0), make([]float64, testRate)},
		SampleRate: testRate,
	}
	got, err := tone.Decode(seg, tone.Options{})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got != "@" {
		t.Fatalf("expected %q after downmix, got %q", "@", got)
	}
}

func TestDecodeSilenceIsNoop(t *testing.T) {
	seg := tone.Mono(make([]float64, testRate), testRate)
	got, err := tone.Decode(seg, tone.Options{})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got != tone.NoopInstruction {
		t.Fatalf("expected %q, got %q", tone.NoopInstruction, got)
	}
}

func TestDecodeBelowThresholdIsNoop(t *testing.T) {
	freq := tone.BandFrequency(3, testRate, tone.Options{})
	seg := tone.Mono(sine(freq, 0, 0.05), testRate)
	got, err := tone.Decode(seg, tone.Options{})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got != tone.NoopInstruction {
		t.Fatalf("expected %q for sub-threshold tone, got %q", tone.NoopInstruction, got)
	}
}

func TestDecodeAllInvalidUTF8IsNoop(t *testing.T) {
	// Bit position 0 alone yields the byte 0x80, which is not valid UTF-8.
	freq := tone.BandFrequency(0, testRate, tone.Options{})
	seg := tone.Mono(sine(freq, 0, 1.0), testRate)
	got, err := tone.Decode(seg, tone.Options{})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got != tone.NoopInstruction {
		t.Fatalf("expected %q for invalid payload, got %q", tone.NoopInstruction, got)
	}
}

func TestDecodeSkipsInvalidUTF8Sequences(t *testing.T) {
	// Payload bytes 0x49 0x80: 'I' followed by a stray continuation byte.
	// The invalid byte is skipped, not the whole payload.
	samples, err := tone.Encode("\x49\x80", testRate, time.Second, tone.Options{})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	got, err := tone.Decode(tone.Mono(samples, testRate), tone.Options{})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got != "I" {
		t.Fatalf("expected %q with invalid sequence skipped, got %q", "I", got)
	}
}

func TestDecodeEmptySignal(t *testing.T) {
	cases := []struct {
		name string
		seg  tone.Segment
	}{
		{"no channels", tone.Segment{SampleRate: testRate}},
		{"nil samples", tone.Mono(nil, testRate)},
		{"zero sample rate", tone.Mono(make([]float64, 16), 0)},
	}
	for _, tc := range cases {
		_, err := tone.Decode(tc.seg, tone.Options{})
		if !errors.Is(err, tone.ErrEmptySignal) {
			t.Fatalf("%s: expected ErrEmptySignal, got %v", tc.name, err)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		text string
		opts tone.Options
	}{
		{"HI", tone.Options{}},
		{"@", tone.Options{}},
		{"SET A", tone.Options{}},
	}
	for _, tc := range cases {
		samples, err := tone.Encode(tc.text, testRate, time.Second, tc.opts)
		if err != nil {
			t.Fatalf("Encode(%q) failed: %v", tc.text, err)
		}
		got, err := tone.Decode(tone.Mono(samples, testRate), tc.opts)
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", tc.text, err)
		}
		if got != tc.text {
			t.Fatalf("round trip mismatch: sent %q, got %q", tc.text, got)
		}
	}
}

func TestEncodeStaysNormalized(t *testing.T) {
	samples, err := tone.Encode("SET MODE ON", testRate, time.Second, tone.Options{})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	for i, s := range samples {
		if math.Abs(s) > 1.0 {
			t.Fatalf("sample %d out of range: %f", i, s)
		}
	}
}

func TestEncodeRejectsDegenerateDuration(t *testing.T) {
	if _, err := tone.Encode("HI", testRate, 0, tone.Options{}); !errors.Is(err, tone.ErrEmptyDuration) {
		t.Fatalf("expected ErrEmptyDuration, got %v", err)
	}
}

func TestBandFrequencyCenters(t *testing.T) {
	// 8000 Hz over 40 bands gives 100 Hz bands centered at 50, 150, ...
	if got := tone.BandFrequency(0, testRate, tone.Options{}); got != 50 {
		t.Fatalf("band 0: expected 50 Hz, got %f", got)
	}
	if got := tone.BandFrequency(7, testRate, tone.Options{}); got != 750 {
		t.Fatalf("band 7: expected 750 Hz, got %f", got)
	}
}
