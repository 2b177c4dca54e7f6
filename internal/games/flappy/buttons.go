package flappy

import (
	"slices"

	"github.com/vovakirdan/bat-adventure/internal/config"
	"github.com/vovakirdan/bat-adventure/internal/core"
)

// Button layout, in percent of the world size.
const (
	buttonWidthPct  = 25.0
	buttonHeightPct = 10.0
)

// Button is a clickable label that can also be triggered by keyboard shortcuts.
type Button struct {
	Label     string
	Rect      core.RectF
	Shortcuts []core.Action
}

// newButton places a button centered at (cxPct, cyPct) percent of the world.
func newButton(world config.WorldConfig, label string, cxPct, cyPct float64, shortcuts ...core.Action) Button {
	return Button{
		Label: label,
		Rect: core.RectCentered(
			world.Width*cxPct/100, world.Height*cyPct/100,
			world.Width*buttonWidthPct/100, world.Height*buttonHeightPct/100,
		),
		Shortcuts: shortcuts,
	}
}

// Hit reports whether a pointer circle of the given radius overlaps the button.
func (b Button) Hit(pointer core.Vec2, radius float64) bool {
	return core.CircleIntersectsRect(pointer, radius, b.Rect)
}

// Hovered reports whether the input's pointer is over the button.
func (b Button) Hovered(in Input, radius float64) bool {
	p, ok := in.Pointer()
	return ok && b.Hit(p, radius)
}

// Activated reports whether the button was clicked while hovered or a shortcut was pressed.
func (b Button) Activated(in Input, radius float64) bool {
	if in.Clicked() && b.Hovered(in, radius) {
		return true
	}
	return slices.ContainsFunc(b.Shortcuts, in.Pressed)
}

// Draw renders the button; hovered buttons are highlighted.
func (b Button) Draw(c Canvas, hovered bool) {
	color := core.ColorGray
	if hovered {
		color = core.ColorWhite
	}
	c.DrawSprite(SpriteButton, b.Rect, color)
	center := b.Rect.Center()
	c.DrawText(b.Label, center.X, center.Y, AlignCenter, color)
}

// menuButtons is the main menu, top to bottom.
type menuButtons struct {
	single  Button
	multi   Button
	credits Button
	exit    Button
}

func newMenuButtons(world config.WorldConfig) menuButtons {
	return menuButtons{
		single:  newButton(world, "SINGLEPLAYER", 50, 45, core.ActionOption1),
		multi:   newButton(world, "MULTIPLAYER", 50, 55, core.ActionOption2),
		credits: newButton(world, "CREDITS", 50, 65, core.ActionOption3),
		exit:    newButton(world, "EXIT", 50, 75, core.ActionOption4),
	}
}

func (m menuButtons) all() []Button {
	return []Button{m.single, m.multi, m.credits, m.exit}
}

// sceneButtons are shown over a paused or lost round.
type sceneButtons struct {
	resume Button
	retry  Button
	exit   Button
}

func newSceneButtons(world config.WorldConfig) sceneButtons {
	return sceneButtons{
		resume: newButton(world, "RESUME", 64, 80, core.ActionOption1, core.ActionPause),
		retry:  newButton(world, "RETRY", 64, 80, core.ActionOption1, core.ActionRestart),
		exit:   newButton(world, "EXIT", 36, 80, core.ActionOption2, core.ActionBack),
	}
}
