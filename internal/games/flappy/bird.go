package flappy

import (
	"github.com/vovakirdan/bat-adventure/internal/config"
	"github.com/vovakirdan/bat-adventure/internal/core"
)

// Bird is a player-controlled circle.
// Position is only meaningful while Alive; a dead bird is left alone until the round resets.
type Bird struct {
	Position core.Vec2
	Velocity float64 // Positive is downward
	Alive    bool
	JumpKey  core.Action
	Color    core.Color
}

// NewBird creates a live bird at rest.
func NewBird(pos core.Vec2, jumpKey core.Action, color core.Color) Bird {
	return Bird{
		Position: pos,
		Alive:    true,
		JumpKey:  jumpKey,
		Color:    color,
	}
}

// Update integrates gravity over dt, then applies a jump.
// The jump sets the velocity outright, so the next tick starts from the impulse.
func (b *Bird) Update(dt float64, jump bool, phys config.PhysicsConfig) {
	if !b.Alive {
		return
	}

	b.Velocity += phys.Gravity * dt
	if phys.MaxFallSpeed > 0 && b.Velocity > phys.MaxFallSpeed {
		b.Velocity = phys.MaxFallSpeed
	}
	b.Position.Y += b.Velocity * dt

	if jump {
		b.Velocity = phys.JumpImpulse
	}
}

// Collides reports whether the bird's circle overlaps either obstacle segment.
func (b Bird) Collides(o Obstacle, radius float64) bool {
	return core.CircleIntersectsRect(b.Position, radius, o.TopRect()) ||
		core.CircleIntersectsRect(b.Position, radius, o.BottomRect())
}

// Bounds returns the square the bird sprite is drawn into.
func (b Bird) Bounds(radius float64) core.RectF {
	return core.RectCentered(b.Position.X, b.Position.Y, radius*2, radius*2)
}

// spawnBirds returns both birds at their starting positions for the given world.
func spawnBirds(world config.WorldConfig) (Bird, Bird) {
	bird1 := NewBird(core.Vec2{X: world.Width / 6, Y: world.Height / 2}, core.ActionJump, core.ColorWhite)
	bird2 := NewBird(core.Vec2{X: world.Width / 5, Y: world.Height / 2}, core.ActionJump2, core.ColorRed)
	return bird1, bird2
}
