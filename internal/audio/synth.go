// Package audio synthesises the site's little sound effects and plays them
// through the system speaker.
package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Breakpoint pins the gain of a voice at a point in time. Gains between
// breakpoints ramp exponentially, so they must be positive.
type Breakpoint struct {
	At   time.Duration
	Gain float64
}

// Voice is one sine oscillator with a gain envelope.
type Voice struct {
	Freq        float64
	Start, Stop time.Duration
	Envelope    []Breakpoint
}

// Patch is a set of voices mixed under a master gain.
type Patch struct {
	Voices []Voice
	Master float64
}

// Duration is the time the last voice stops.
func (p Patch) Duration() time.Duration {
	var d time.Duration
	for _, v := range p.Voices {
		if v.Stop > d {
			d = v.Stop
		}
	}
	return d
}

// Streamer renders the patch at rate. The stream ends after Duration.
func (p Patch) Streamer(rate beep.SampleRate) beep.Streamer {
	return &synth{patch: p, rate: rate, total: rate.N(p.Duration())}
}

// gainAt evaluates the envelope at t.
func (v Voice) gainAt(t time.Duration) float64 {
	env := v.Envelope
	if len(env) == 0 {
		return 1
	}
	if t <= env[0].At {
		return env[0].Gain
	}
	for i := 1; i < len(env); i++ {
		a, b := env[i-1], env[i]
		if t > b.At {
			continue
		}
		frac := float64(t-a.At) / float64(b.At-a.At)
		return a.Gain * math.Pow(b.Gain/a.Gain, frac)
	}
	return env[len(env)-1].Gain
}

type synth struct {
	patch Patch
	rate  beep.SampleRate
	pos   int
	total int
}

func (s *synth) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.total {
			return i, true
		}

		t := s.rate.D(s.pos)
		sec := float64(s.pos) / float64(s.rate)
		var val float64
		for _, v := range s.patch.Voices {
			if t < v.Start || t >= v.Stop {
				continue
			}
			rel := sec - v.Start.Seconds()
			val += math.Sin(2*math.Pi*v.Freq*rel) * v.gainAt(t)
		}
		val *= s.patch.Master

		samples[i][0] = val
		samples[i][1] = val
		s.pos++
	}
	return len(samples), true
}

func (s *synth) Err() error { return nil }
