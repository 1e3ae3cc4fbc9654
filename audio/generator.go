package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SweepGenerator generates a rising 'whoosh' for a launch
// Frequency glides from low to high over the duration under a sine envelope
type SweepGenerator struct {
	sr        beep.SampleRate
	low, high float64
	volume    float64
	pos       int
	samples   int
	phase     float64
}

// NewSweepGenerator creates a sweep lasting d
func NewSweepGenerator(sr beep.SampleRate, d time.Duration, low, high, volume float64) *SweepGenerator {
	return &SweepGenerator{
		sr:      sr,
		low:     low,
		high:    high,
		volume:  volume,
		samples: sr.N(d),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.low + (g.high-g.low)*progress

		// Accumulate phase so the glide has no discontinuities
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		envelope := math.Sin(progress * math.Pi)
		sample := 0.3 * g.volume * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// Envelope applies an exponential decay to another streamer
type Envelope struct {
	Streamer beep.Streamer
	sr       beep.SampleRate
	rate     float64 // decay rate, 1/s
	gain     float64
	pos      int
}

// NewEnvelope wraps s with gain·e^(-rate·t)
func NewEnvelope(s beep.Streamer, sr beep.SampleRate, rate, gain float64) *Envelope {
	return &Envelope{Streamer: s, sr: sr, rate: rate, gain: gain}
}

func (e *Envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(e.pos) / float64(e.sr)
		k := e.gain * math.Exp(-e.rate*t)
		samples[i][0] *= k
		samples[i][1] *= k
		e.pos++
	}
	return n, ok
}

func (e *Envelope) Err() error {
	return e.Streamer.Err()
}
