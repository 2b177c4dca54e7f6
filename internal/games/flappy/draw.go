package flappy

import (
	"fmt"

	"github.com/vovakirdan/bat-adventure/internal/core"
)

// Title is drawn at the top of the main menu.
const Title = "BAT ADVENTURE"

var creditLines = []string{
	"Programmed by:",
	"Eluney Jazmin Mousseigne",
	"&",
	"Agustin Ezequiel Laure",
	"",
	"Assets by:",
	"-Vittorio Dolce",
	"-Pixabay - Sound effects",
	"-Ateliermagicae - Itchio",
	"-Duxmusic - Itchio",
	"-Kashdanmusic - Itchio",
}

// Draw emits the draw commands for the current frame. It does not change any state.
// The pointer, when known, is used to highlight hovered buttons.
func (g *Game) Draw(c Canvas, in Input) {
	switch g.state {
	case StateMenu:
		g.drawMenu(c, in)
	case StateCredits:
		g.drawCredits(c, in)
	case StatePlaying:
		g.scenes.Draw(c, in)
	}
}

func (g *Game) drawMenu(c Canvas, in Input) {
	w, h := g.cfg.World.Width, g.cfg.World.Height
	g.scenes.round.Parallax.Draw(c, h)

	c.DrawText(Title, w/2, h/2-240, AlignCenter, core.ColorBrightYellow)
	for _, b := range g.menu.all() {
		b.Draw(c, b.Hovered(in, g.cfg.UI.PointerRadius))
	}
	g.drawVersion(c)
}

func (g *Game) drawCredits(c Canvas, in Input) {
	w, h := g.cfg.World.Width, g.cfg.World.Height
	g.scenes.round.Parallax.Draw(c, h)

	lineH := h / 18
	top := h/2 - lineH*float64(len(creditLines))/2
	for i, line := range creditLines {
		c.DrawText(line, w/2, top+lineH*float64(i), AlignCenter, core.ColorWhite)
	}

	g.credits.Draw(c, g.credits.Hovered(in, g.cfg.UI.PointerRadius))
	g.drawVersion(c)
}

func (g *Game) drawVersion(c Canvas) {
	w, h := g.cfg.World.Width, g.cfg.World.Height
	c.DrawText("ver "+Version, w*0.98, h*0.96, AlignRight, core.ColorGray)
}

// Draw renders the round and whatever overlay the current scene shows.
func (m *SceneMachine) Draw(c Canvas, in Input) {
	w, h := m.cfg.World.Width, m.cfg.World.Height
	r := &m.round
	radius := m.cfg.Bird.Radius

	r.Parallax.Draw(c, h)

	if m.playstyle == Multiplayer && r.Bird2.Alive {
		c.DrawSprite(SpriteBird, r.Bird2.Bounds(radius), r.Bird2.Color)
	}
	c.DrawRect(r.Obstacle.TopRect(), core.ColorGreen)
	c.DrawRect(r.Obstacle.BottomRect(), core.ColorGreen)
	if r.Bird1.Alive {
		c.DrawSprite(SpriteBird, r.Bird1.Bounds(radius), r.Bird1.Color)
	}

	if !r.Lost(m.playstyle) {
		c.DrawText(fmt.Sprintf("%d", r.Score), w/2, h/7, AlignCenter, core.ColorBrightWhite)
	}

	pointerRadius := m.cfg.UI.PointerRadius
	switch m.scene {
	case SceneReadingRules:
		m.drawRules(c)
	case ScenePause:
		c.DrawText("PAUSED", w/2, h/2-100, AlignCenter, core.ColorBrightWhite)
		m.buttons.resume.Draw(c, m.buttons.resume.Hovered(in, pointerRadius))
		m.buttons.exit.Draw(c, m.buttons.exit.Hovered(in, pointerRadius))
	case SceneFinished:
		c.DrawText("YOU LOST!", w/2, h/2-200, AlignCenter, core.ColorBrightRed)
		c.DrawText(fmt.Sprintf("Score: %d", r.Score), w/2, h/2, AlignCenter, core.ColorWhite)
		c.DrawText(fmt.Sprintf("Seconds alive: %d", int(r.TimeAlive)), w/2, h/2+35, AlignCenter, core.ColorWhite)
		m.buttons.retry.Draw(c, m.buttons.retry.Hovered(in, pointerRadius))
		m.buttons.exit.Draw(c, m.buttons.exit.Hovered(in, pointerRadius))
	}
}

func (m *SceneMachine) drawRules(c Canvas) {
	w, h := m.cfg.World.Width, m.cfg.World.Height
	panel := core.RectCentered(w/2, h/2, w*0.7, h*0.6)
	c.DrawSprite(SpritePanel, panel, core.ColorGray)

	line := h / 14
	y := panel.Y + line
	text := func(s string, col core.Color) {
		c.DrawText(s, w/2, y, AlignCenter, col)
		y += line
	}

	text("-Flap your way to the end of an endless magical cave", core.ColorWhite)
	text("-Avoid hitting the rocks", core.ColorWhite)
	y += line / 2
	if m.playstyle == Multiplayer {
		text("Player1", m.round.Bird1.Color)
		text("-W to jump", core.ColorWhite)
		text("Player2", m.round.Bird2.Color)
		text("-Up arrow to jump", core.ColorWhite)
	} else {
		text("Player", m.round.Bird1.Color)
		text("-W to jump", core.ColorWhite)
	}
	y += line / 2
	text("Press ENTER to continue", core.ColorBrightYellow)
}
