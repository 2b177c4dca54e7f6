// Package audio plays the short synthesized cues of the game through the speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/bat-adventure/internal/games/flappy"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// cueShape describes one cue as a frequency sweep.
type cueShape struct {
	from, to float64
	length   time.Duration
	harsh    bool
}

var cues = map[flappy.Sound]cueShape{
	flappy.SoundSelect: {from: 660, to: 990, length: 80 * time.Millisecond},
	flappy.SoundPause:  {from: 520, to: 390, length: 140 * time.Millisecond},
	flappy.SoundHit:    {from: 150, to: 55, length: 250 * time.Millisecond, harsh: true},
}

// CuePlayer plays game cues. It is a no-op until Initialize succeeds,
// so a machine without an audio device can still play.
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewCuePlayer creates a cue player with an empty mixer.
func NewCuePlayer() *CuePlayer {
	return &CuePlayer{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50))
	if err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup stops all cues.
func (p *CuePlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Play queues a cue on the mixer. It never blocks on playback.
func (p *CuePlayer) Play(s flappy.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	streamer := cueStreamer(s)
	if streamer == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// cueStreamer returns a finite streamer for the cue, or nil for unknown cues.
func cueStreamer(s flappy.Sound) beep.Streamer {
	shape, ok := cues[s]
	if !ok {
		return nil
	}
	return beep.Take(sampleRate.N(shape.length), newSweepGenerator(sampleRate, shape))
}

// sweepGenerator generates a tone gliding between two frequencies,
// fading out over its length.
type sweepGenerator struct {
	sr    beep.SampleRate
	shape cueShape
	total int
	pos   int
	phase float64
}

// newSweepGenerator creates a sweep generator for the given cue.
func newSweepGenerator(sr beep.SampleRate, shape cueShape) *sweepGenerator {
	return &sweepGenerator{
		sr:    sr,
		shape: shape,
		total: sr.N(shape.length),
	}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := 1.0
		if g.total > 0 {
			progress = math.Min(float64(g.pos)/float64(g.total), 1)
		}

		freq := g.shape.from + (g.shape.to-g.shape.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := math.Sin(g.phase)
		if g.shape.harsh {
			// Odd harmonics for a duller thud
			sample = 0.6*sample + 0.25*math.Sin(3*g.phase) + 0.15*math.Sin(5*g.phase)
		}

		// Short attack, linear release
		envelope := math.Min(float64(g.pos)/float64(g.sr)/0.005, 1.0) * (1 - progress)
		sample *= envelope * 0.25

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error {
	return nil
}
