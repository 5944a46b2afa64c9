// Package audio plays the short cue heard when the black hole devours
// particles.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	gulpDuration = 60 * time.Millisecond
	gulpBaseFreq = 110.0
	gulpMaxFreq  = 1760.0
	gulpVolume   = -2.0 // log2 units, effects.Volume with base 2
)

// Player is safe to use when audio is unavailable; it then does nothing.
type Player struct {
	ready bool
}

// NewPlayer initializes the speaker when enabled. On failure it still returns
// a silent player alongside the error.
func NewPlayer(enabled bool) (*Player, error) {
	p := &Player{}
	if !enabled {
		return p, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return p, err
	}
	p.ready = true
	return p, nil
}

func (p *Player) Enabled() bool {
	return p != nil && p.ready
}

// Devoured plays one cue for n particles consumed in the same tick.
func (p *Player) Devoured(n int) {
	if !p.Enabled() || n <= 0 {
		return
	}
	s, err := gulp(sampleRate, n)
	if err != nil {
		return
	}
	speaker.Play(s)
}

func (p *Player) Close() {
	if !p.Enabled() {
		return
	}
	speaker.Close()
	p.ready = false
}

// gulpFreq rises half an octave per doubling of n, capped.
func gulpFreq(n int) float64 {
	if n < 1 {
		n = 1
	}
	return math.Min(gulpBaseFreq*math.Pow(2, math.Log2(float64(n))/2), gulpMaxFreq)
}

func gulp(rate beep.SampleRate, n int) (beep.Streamer, error) {
	tone, err := generators.SineTone(rate, gulpFreq(n))
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(rate.N(gulpDuration), tone),
		Base:     2,
		Volume:   gulpVolume,
	}, nil
}
