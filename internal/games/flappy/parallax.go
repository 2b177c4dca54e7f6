package flappy

import (
	"github.com/vovakirdan/bat-adventure/internal/config"
	"github.com/vovakirdan/bat-adventure/internal/core"
)

// ParallaxLayers is the number of background strips.
const ParallaxLayers = 3

// Parallax holds the scroll offsets of the background strips, back to front.
// Layer i scrolls at BaseRate * 2^i.
type Parallax struct {
	Offsets   [ParallaxLayers]float64
	BaseRate  float64
	TileWidth float64
}

// NewParallax creates a background with all layers at offset 0.
func NewParallax(cfg config.ParallaxConfig) Parallax {
	return Parallax{
		BaseRate:  cfg.BaseRate,
		TileWidth: cfg.TileWidth,
	}
}

// Rate returns the scroll speed of a layer.
func (p Parallax) Rate(layer int) float64 {
	return p.BaseRate * float64(int(1)<<layer)
}

// Update scrolls every layer left and wraps it back to 0 after a full tile.
func (p *Parallax) Update(dt float64) {
	for i := range p.Offsets {
		p.Offsets[i] -= p.Rate(i) * dt
		if p.Offsets[i] <= -p.TileWidth {
			p.Offsets[i] = 0
		}
	}
}

var parallaxSprites = [ParallaxLayers]Sprite{SpriteParallaxBack, SpriteParallaxMiddle, SpriteParallaxFront}
var parallaxColors = [ParallaxLayers]core.Color{core.ColorDarkGray, core.ColorGray, core.ColorBlue}

// Draw tiles each layer twice so the strip covers the screen while it scrolls.
func (p Parallax) Draw(c Canvas, height float64) {
	for i, off := range p.Offsets {
		c.DrawSprite(parallaxSprites[i], core.NewRectF(off, 0, p.TileWidth, height), parallaxColors[i])
		c.DrawSprite(parallaxSprites[i], core.NewRectF(off+p.TileWidth, 0, p.TileWidth, height), parallaxColors[i])
	}
}
