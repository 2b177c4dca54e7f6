package audio

import (
	"testing"
	"time"

	"github.com/vovakirdan/bat-adventure/internal/games/flappy"
)

// TestSweepGeneratorRange verifies samples stay within [-1, 1]
func TestSweepGeneratorRange(t *testing.T) {
	for s, shape := range cues {
		gen := newSweepGenerator(sampleRate, shape)
		samples := make([][2]float64, 512)

		for chunk := 0; chunk < 30; chunk++ {
			n, ok := gen.Stream(samples)
			if !ok || n != len(samples) {
				t.Fatalf("%s: Stream = (%d, %v), expected (%d, true)", s, n, ok, len(samples))
			}
			for i := 0; i < n; i++ {
				if samples[i][0] < -1 || samples[i][0] > 1 {
					t.Fatalf("%s: sample out of range: %f", s, samples[i][0])
				}
				if samples[i][0] != samples[i][1] {
					t.Fatalf("%s: channels differ at %d", s, i)
				}
			}
		}
		if gen.Err() != nil {
			t.Errorf("%s: Err() = %v", s, gen.Err())
		}
	}
}

// TestSweepGeneratorFadesOut verifies the cue ends silent
func TestSweepGeneratorFadesOut(t *testing.T) {
	shape := cueShape{from: 440, to: 440, length: 10 * time.Millisecond}
	gen := newSweepGenerator(sampleRate, shape)

	samples := make([][2]float64, sampleRate.N(20*time.Millisecond))
	gen.Stream(samples)

	tail := samples[sampleRate.N(shape.length):]
	for i, s := range tail {
		if s[0] != 0 {
			t.Fatalf("sample %d after the cue length = %f, expected silence", i, s[0])
		}
	}
}

// TestCueStreamerLength verifies every cue is finite and as long as its shape says
func TestCueStreamerLength(t *testing.T) {
	tests := []struct {
		sound  flappy.Sound
		length time.Duration
	}{
		{flappy.SoundSelect, 80 * time.Millisecond},
		{flappy.SoundPause, 140 * time.Millisecond},
		{flappy.SoundHit, 250 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.sound.String(), func(t *testing.T) {
			streamer := cueStreamer(tc.sound)
			if streamer == nil {
				t.Fatal("expected a streamer")
			}

			total := 0
			buf := make([][2]float64, 1000)
			for {
				n, ok := streamer.Stream(buf)
				total += n
				if !ok {
					break
				}
			}
			if want := sampleRate.N(tc.length); total != want {
				t.Errorf("streamed %d samples, expected %d", total, want)
			}
		})
	}

	if cueStreamer(flappy.Sound(99)) != nil {
		t.Error("unknown cue should have no streamer")
	}
}

// TestCuePlayerUninitialized verifies Play and Cleanup are safe without a speaker
func TestCuePlayerUninitialized(t *testing.T) {
	p := NewCuePlayer()
	p.Play(flappy.SoundHit)
	p.Cleanup()

	if p.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers, expected none before Initialize", p.mixer.Len())
	}
}
