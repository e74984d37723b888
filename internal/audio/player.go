package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"go.uber.org/zap"
)

// Player plays effects through the speaker. The speaker is opened lazily on
// the first sound so a machine without audio only fails when a sound is
// actually requested.
type Player struct {
	mu        sync.Mutex
	rate      beep.SampleRate
	volume    float64
	chimeFile string
	initDone  bool
	logger    *zap.Logger
}

// NewPlayer returns a player mixing at sampleRate. volume is linear gain;
// zero or less mutes.
func NewPlayer(sampleRate int, volume float64, logger *zap.Logger) *Player {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Player{
		rate:   beep.SampleRate(sampleRate),
		volume: volume,
		logger: logger,
	}
}

// SetChimeFile makes PlayChime play path instead of the synthesised
// chime. The file is decoded once up front so a bad pick fails here.
// An empty path restores the synthesised chime.
func (p *Player) SetChimeFile(path string) error {
	if path != "" {
		s, _, err := Open(path)
		if err != nil {
			return err
		}
		_ = s.Close()
	}

	p.mu.Lock()
	p.chimeFile = path
	p.mu.Unlock()
	return nil
}

// ChimeFile returns the custom chime, if any.
func (p *Player) ChimeFile() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.chimeFile
}

// PlayChime plays the easter-egg chime.
func (p *Player) PlayChime() error {
	p.mu.Lock()
	path := p.chimeFile
	p.mu.Unlock()

	if path == "" {
		return p.play(Chime().Streamer(p.rate))
	}

	s, format, err := Open(path)
	if err != nil {
		return err
	}
	var src beep.Streamer = s
	if format.SampleRate != p.rate {
		src = beep.Resample(4, format.SampleRate, p.rate, s)
	}
	return p.play(beep.Seq(src, beep.Callback(func() {
		_ = s.Close()
	})))
}

// PlayArpeggio plays the theme-toggle arpeggio.
func (p *Player) PlayArpeggio() error {
	return p.play(Arpeggio().Streamer(p.rate))
}

// Stop silences anything still playing.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initDone {
		return
	}
	// Clear takes the speaker lock itself.
	speaker.Clear()
}

func (p *Player) play(s beep.Streamer) error {
	if err := p.init(); err != nil {
		return err
	}
	speaker.Play(p.withVolume(s))
	return nil
}

func (p *Player) init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initDone {
		return nil
	}

	bufferSize := p.rate.N(time.Second / 20)
	if err := speaker.Init(p.rate, bufferSize); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.initDone = true
	p.logger.Debug("speaker ready", zap.Int("sample_rate", int(p.rate)), zap.Int("buffer", bufferSize))
	return nil
}

func (p *Player) withVolume(s beep.Streamer) beep.Streamer {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   gainToVolume(p.volume),
		Silent:   p.volume <= 0,
	}
}

// gainToVolume converts linear gain to the base-2 exponent effects.Volume
// takes.
func gainToVolume(gain float64) float64 {
	if gain <= 0 {
		return 0
	}
	return math.Log2(gain)
}
