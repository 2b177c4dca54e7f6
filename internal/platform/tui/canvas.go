package tui

import (
	"math"

	"github.com/vovakirdan/bat-adventure/internal/config"
	"github.com/vovakirdan/bat-adventure/internal/core"
	"github.com/vovakirdan/bat-adventure/internal/games/flappy"
)

// birdGlyph is drawn centered on a bird's bounds.
const birdGlyph = `\●/`

// ScreenCanvas draws world-space commands into a character Screen.
// The whole world is stretched over the screen, so the cell aspect ratio
// follows the terminal size.
type ScreenCanvas struct {
	screen *core.Screen
	world  config.WorldConfig
}

// NewScreenCanvas creates a canvas mapping the given world onto screen.
func NewScreenCanvas(screen *core.Screen, world config.WorldConfig) *ScreenCanvas {
	return &ScreenCanvas{screen: screen, world: world}
}

func (c *ScreenCanvas) col(x float64) int {
	return int(math.Floor(x * float64(c.screen.Width()) / c.world.Width))
}

func (c *ScreenCanvas) row(y float64) int {
	return int(math.Floor(y * float64(c.screen.Height()) / c.world.Height))
}

// cellRect returns the cells a world rectangle covers, at least one cell.
func (c *ScreenCanvas) cellRect(r core.RectF) core.Rect {
	x0, y0 := c.col(r.X), c.row(r.Y)
	x1 := int(math.Ceil(r.Right() * float64(c.screen.Width()) / c.world.Width))
	y1 := int(math.Ceil(r.Bottom() * float64(c.screen.Height()) / c.world.Height))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// ToWorld returns the world position at the center of a screen cell.
func (c *ScreenCanvas) ToWorld(col, row int) core.Vec2 {
	w, h := c.screen.Width(), c.screen.Height()
	if w == 0 || h == 0 {
		return core.Vec2{}
	}
	return core.Vec2{
		X: (float64(col) + 0.5) * c.world.Width / float64(w),
		Y: (float64(row) + 0.5) * c.world.Height / float64(h),
	}
}

// DrawRect fills the cells under r.
func (c *ScreenCanvas) DrawRect(r core.RectF, col core.Color) {
	c.screen.DrawRect(c.cellRect(r), '█', col)
}

// DrawText writes text on the row containing y, anchored at x.
func (c *ScreenCanvas) DrawText(text string, x, y float64, align flappy.Align, col core.Color) {
	n := len([]rune(text))
	start := c.col(x)
	switch align {
	case flappy.AlignCenter:
		start -= n / 2
	case flappy.AlignRight:
		start -= n
	}
	c.screen.DrawText(start, c.row(y), text, col)
}

// DrawSprite renders one of the known sprites into the cells under r.
func (c *ScreenCanvas) DrawSprite(s flappy.Sprite, r core.RectF, col core.Color) {
	cells := c.cellRect(r)
	switch s {
	case flappy.SpriteBird:
		center := r.Center()
		n := len([]rune(birdGlyph))
		c.screen.DrawText(c.col(center.X)-n/2, c.row(center.Y), birdGlyph, col)
	case flappy.SpriteButton:
		c.screen.DrawBox(cells, col)
	case flappy.SpritePanel:
		c.screen.DrawRect(cells, ' ', core.ColorDefault)
		c.screen.DrawBox(cells, col)
	case flappy.SpriteParallaxBack, flappy.SpriteParallaxMiddle, flappy.SpriteParallaxFront:
		c.drawCave(s, cells, col)
	}
}

// drawCave paints one tile of a cave layer. Columns are numbered from the
// tile's left edge so the pattern scrolls with the tile.
func (c *ScreenCanvas) drawCave(layer flappy.Sprite, tile core.Rect, col core.Color) {
	h := c.screen.Height()
	x0 := core.Max(tile.X, 0)
	x1 := core.Min(tile.Right(), c.screen.Width())

	for x := x0; x < x1; x++ {
		k := x - tile.X
		switch layer {
		case flappy.SpriteParallaxBack:
			// Sparse glints on the far wall
			for y := 0; y < h; y++ {
				if noise(k, y)%29 == 0 {
					c.screen.SetCell(x, y, '·', col)
				}
			}
		case flappy.SpriteParallaxMiddle:
			// Stalactites hanging from the ceiling
			depth := noise(k, -1) % 3
			for y := 0; y < depth; y++ {
				c.screen.SetCell(x, y, '▒', col)
			}
		case flappy.SpriteParallaxFront:
			// Uneven cave floor
			depth := 1 + noise(k, -2)%2
			c.screen.SetCell(x, h-depth, '▄', col)
			for y := h - depth + 1; y < h; y++ {
				c.screen.SetCell(x, y, '█', col)
			}
		}
	}
}

// noise is a small deterministic hash used for cave decoration.
func noise(k, salt int) int {
	h := uint32(k)*2654435761 ^ uint32(salt)*40503
	h ^= h >> 13
	h *= 0x5bd1e995
	h ^= h >> 15
	return int(h % 1024)
}
