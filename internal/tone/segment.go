package tone

// Segment is one frame's slice of carrier audio. Channels hold normalized
// samples in [-1, 1], one slice per channel, all the same length. A Segment
// is treated as immutable by this package.
type Segment struct {
	Channels   [][]float64
	SampleRate int
}

// Mono returns a Segment wrapping a single channel of samples.
func Mono(samples []float64, sampleRate int) Segment {
	return Segment{Channels: [][]float64{samples}, SampleRate: sampleRate}
}

// Empty reports whether the segment carries no analyzable samples.
func (s Segment) Empty() bool {
	if s.SampleRate <= 0 || len(s.Channels) == 0 {
		return true
	}
	for _, ch := range s.Channels {
		if len(ch) == 0 {
			return true
		}
	}
	return false
}

// downmix collapses multi-channel audio to mono by arithmetic mean across
// channels. Single-channel input is returned as-is without copying.
func (s Segment) downmix() []float64 {
	if len(s.Channels) == 1 {
		return s.Channels[0]
	}
	n := len(s.Channels[0])
	for _, ch := range s.Channels[1:] {
		if len(ch) < n {
			n = len(ch)
		}
	}
	mono := make([]float64, n)
	scale := 1.0 / float64(len(s.Channels))
	for _, ch := range s.Channels {
		for i := 0; i < n; i++ {
			mono[i] += ch[i] * scale
		}
	}
	return mono
}
