package flappy

import (
	"github.com/vovakirdan/bat-adventure/internal/config"
	"github.com/vovakirdan/bat-adventure/internal/core"
)

// Obstacle is a top/bottom rock pair with a gap between them, scrolling left as one column.
// Top and Bottom are the segments' top-left corners and always share X.
type Obstacle struct {
	Top      core.Vec2
	Bottom   core.Vec2
	Width    float64
	Height   float64
	Velocity float64 // Leftward speed
	Passed   bool    // Whether the scoring bird has passed this column
}

// NewObstacle creates the first column of a round: at the right edge with the gap centered.
func NewObstacle(cfg config.ObstacleConfig, world config.WorldConfig) Obstacle {
	x := world.Width - cfg.Width
	upper := world.Height/2 - cfg.Gap/2
	lower := upper + cfg.Gap

	return Obstacle{
		Top:      core.Vec2{X: x, Y: upper - cfg.Height},
		Bottom:   core.Vec2{X: x, Y: lower},
		Width:    cfg.Width,
		Height:   cfg.Height,
		Velocity: cfg.Velocity,
	}
}

// X returns the column's left edge.
func (o Obstacle) X() float64 {
	return o.Top.X
}

// TopRect returns the collision rectangle of the upper segment.
func (o Obstacle) TopRect() core.RectF {
	return core.NewRectF(o.Top.X, o.Top.Y, o.Width, o.Height)
}

// BottomRect returns the collision rectangle of the lower segment.
func (o Obstacle) BottomRect() core.RectF {
	return core.NewRectF(o.Bottom.X, o.Bottom.Y, o.Width, o.Height)
}

// Gap returns the vertical opening between the two segments.
func (o Obstacle) Gap() float64 {
	return o.Bottom.Y - (o.Top.Y + o.Height)
}

// Update moves the column left by Velocity*dt.
func (o *Obstacle) Update(dt float64) {
	dx := o.Velocity * dt
	o.Top.X -= dx
	o.Bottom.X = o.Top.X
}

// OutOfBounds reports whether the column has fully left the screen.
func (o Obstacle) OutOfBounds() bool {
	return o.Top.X+o.Width < 0
}

// Recycle moves the column back to the right edge with a new random opening.
// The bottom edge of the top segment is drawn from the upper half of the world and the
// top edge of the bottom segment from the lower half; the latter is pushed down when
// the opening would be narrower than gap.
func (o *Obstacle) Recycle(rng core.Rand, world config.WorldConfig, gap float64) {
	half := int(world.Height / 2)
	upper := float64(rng.IntRange(0, half))
	lower := float64(rng.IntRange(half, int(world.Height)))
	if lower-upper < gap {
		lower = upper + gap
	}

	x := world.Width - o.Width
	o.Top = core.Vec2{X: x, Y: upper - o.Height}
	o.Bottom = core.Vec2{X: x, Y: lower}
	o.Passed = false
}
