package audio

import "time"

// Chime is the easter-egg sound: A5 fading out over half a second.
func Chime() Patch {
	return Patch{
		Master: 1,
		Voices: []Voice{{
			Freq:  880,
			Start: 0,
			Stop:  500 * time.Millisecond,
			Envelope: []Breakpoint{
				{At: 0, Gain: 0.3},
				{At: 500 * time.Millisecond, Gain: 0.01},
			},
		}},
	}
}

// Arpeggio is a rising C-E-G major triad, each note swelling in as the
// previous one fades.
func Arpeggio() Patch {
	ms := time.Millisecond
	return Patch{
		Master: 0.3,
		Voices: []Voice{
			{
				Freq: 523.25, Start: 0, Stop: 300 * ms,
				Envelope: []Breakpoint{{0, 0.3}, {300 * ms, 0.01}},
			},
			{
				Freq: 659.25, Start: 100 * ms, Stop: 500 * ms,
				Envelope: []Breakpoint{{100 * ms, 0.01}, {200 * ms, 0.3}, {500 * ms, 0.01}},
			},
			{
				Freq: 783.99, Start: 200 * ms, Stop: 600 * ms,
				Envelope: []Breakpoint{{200 * ms, 0.01}, {300 * ms, 0.3}, {600 * ms, 0.01}},
			},
		},
	}
}
