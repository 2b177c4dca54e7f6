package flappy

import "github.com/vovakirdan/bat-adventure/internal/core"

// Input is the per-frame input the game reads.
// core.InputFrame implements it.
type Input interface {
	Pressed(a core.Action) bool
	Pointer() (core.Vec2, bool)
	Clicked() bool
}

// Align controls horizontal text anchoring in DrawText.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Sprite identifies an image the platform knows how to draw into a rectangle.
type Sprite int

const (
	SpriteParallaxBack Sprite = iota
	SpriteParallaxMiddle
	SpriteParallaxFront
	SpriteBird
	SpriteButton
	SpritePanel
)

// Canvas receives draw commands in world coordinates.
type Canvas interface {
	DrawRect(r core.RectF, c core.Color)
	DrawText(text string, x, y float64, align Align, c core.Color)
	DrawSprite(s Sprite, r core.RectF, c core.Color)
}

// Sound identifies a short sound cue.
type Sound int

const (
	SoundSelect Sound = iota
	SoundHit
	SoundPause
)

// String returns the cue name.
func (s Sound) String() string {
	switch s {
	case SoundSelect:
		return "select"
	case SoundHit:
		return "hit"
	case SoundPause:
		return "pause"
	default:
		return "unknown"
	}
}

// SoundPlayer plays sound cues. Play must not block the frame.
type SoundPlayer interface {
	Play(s Sound)
}

type nopSound struct{}

func (nopSound) Play(Sound) {}
