package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
)

// Sweep frequency range in Hz.
const (
	SweepLow  = 90.0
	SweepHigh = 1400.0
)

// fadeFraction of the sweep spent on each of the attack and release ramps.
const fadeFraction = 0.1

// Sweep is a sine tone gliding exponentially from one frequency to another,
// with short attack and release ramps so it starts and stops without clicks.
type Sweep struct {
	sampleRate float64
	total      int
	pos        int
	phase      float64
	from, to   float64
}

// NewSweep returns a sweep lasting d at the given sample rate.
func NewSweep(sr beep.SampleRate, d time.Duration, from, to float64) *Sweep {
	return &Sweep{
		sampleRate: float64(sr),
		total:      sr.N(d),
		from:       from,
		to:         to,
	}
}

// Stream implements beep.Streamer.
func (s *Sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.total {
			return n, true
		}
		t := float64(s.pos) / float64(s.total)
		freq := s.from * math.Pow(s.to/s.from, t)
		v := math.Sin(s.phase) * envelope(t)

		samples[i][0] = v
		samples[i][1] = v
		s.phase += 2 * math.Pi * freq / s.sampleRate
		s.pos++
		n++
	}
	return n, true
}

// Err implements beep.Streamer.
func (s *Sweep) Err() error {
	return nil
}

// Len returns the sweep length in samples.
func (s *Sweep) Len() int {
	return s.total
}

func envelope(t float64) float64 {
	switch {
	case t < fadeFraction:
		return t / fadeFraction
	case t > 1-fadeFraction:
		return (1 - t) / fadeFraction
	default:
		return 1
	}
}
