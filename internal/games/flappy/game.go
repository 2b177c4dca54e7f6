// Package flappy implements Bat Adventure, a Flappy Bird-style game.
// One or two bats flap through gaps between cave rocks that scroll in from the right.
// The package is pure game logic: the platform supplies elapsed time, input, a canvas
// and a sound sink.
package flappy

import (
	"slices"

	"github.com/vovakirdan/bat-adventure/internal/config"
	"github.com/vovakirdan/bat-adventure/internal/core"
)

// Version is shown in the corner of the menu and credits screens.
var Version = "0.4"

// AppState is the top-level state of the game.
type AppState int

const (
	StateMenu AppState = iota
	StatePlaying
	StateCredits
	StateExit
)

// String returns a human-readable state name.
func (s AppState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateCredits:
		return "Credits"
	case StateExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

var appTransitions = map[AppState][]AppState{
	StateMenu:    {StatePlaying, StateCredits, StateExit},
	StatePlaying: {StateMenu},
	StateCredits: {StateMenu},
	StateExit:    {},
}

// CanTransitionApp reports whether the top-level machine declares from -> to.
func CanTransitionApp(from, to AppState) bool {
	return slices.Contains(appTransitions[from], to)
}

// Game is the top-level machine: menu, credits, and the scene machine while playing.
type Game struct {
	cfg     config.Config
	sound   SoundPlayer
	state   AppState
	scenes  *SceneMachine
	menu    menuButtons
	credits Button
}

// New creates a game sitting on the main menu.
// A nil sound player disables sound cues.
func New(cfg config.Config, rng core.Rand, sound SoundPlayer) *Game {
	if sound == nil {
		sound = nopSound{}
	}
	g := &Game{
		cfg:   cfg,
		sound: sound,
		state: StateMenu,
		menu:  newMenuButtons(cfg.World),
		credits: newButton(cfg.World, "RETURN", 90, 80,
			core.ActionOption1, core.ActionBack),
	}
	g.scenes = NewSceneMachine(&g.cfg, rng, sound)
	return g
}

// Start skips the menu and begins a round with the given playstyle.
// It only works from the menu.
func (g *Game) Start(p Playstyle) TickResult {
	res := TickResult{}
	g.play(p, &res)
	res.State, res.Scene = g.state, g.scenes.Scene()
	return res
}

// State returns the top-level state.
func (g *Game) State() AppState {
	return g.state
}

// Scene returns the current scene of the round.
func (g *Game) Scene() Scene {
	return g.scenes.Scene()
}

// Playstyle returns the playstyle of the current round.
func (g *Game) Playstyle() Playstyle {
	return g.scenes.Playstyle()
}

// Round returns a copy of the current round state.
func (g *Game) Round() RoundState {
	return g.scenes.Round()
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Step advances the game by dt seconds of wall time.
// dt is clamped to [0, physics.max_frame_time].
func (g *Game) Step(dt float64, in Input) TickResult {
	dt = core.ClampF(dt, 0, g.cfg.Physics.MaxFrameTime)
	res := TickResult{}

	switch g.state {
	case StateMenu:
		g.stepMenu(in, &res)
	case StatePlaying:
		if g.scenes.Step(dt, in, &res) {
			g.setState(StateMenu, &res)
		}
	case StateCredits:
		if g.credits.Activated(in, g.cfg.UI.PointerRadius) {
			g.sound.Play(SoundSelect)
			g.setState(StateMenu, &res)
		}
	case StateExit:
	}

	res.State, res.Scene = g.state, g.scenes.Scene()
	return res
}

func (g *Game) stepMenu(in Input, res *TickResult) {
	radius := g.cfg.UI.PointerRadius
	switch {
	case g.menu.single.Activated(in, radius):
		g.sound.Play(SoundSelect)
		g.play(Singleplayer, res)
	case g.menu.multi.Activated(in, radius):
		g.sound.Play(SoundSelect)
		g.play(Multiplayer, res)
	case g.menu.credits.Activated(in, radius):
		g.sound.Play(SoundSelect)
		g.setState(StateCredits, res)
	case g.menu.exit.Activated(in, radius):
		g.sound.Play(SoundSelect)
		g.setState(StateExit, res)
	}
}

func (g *Game) play(p Playstyle, res *TickResult) {
	if g.setState(StatePlaying, res) {
		g.scenes.Begin(p)
	}
}

// setState performs a declared transition and records it. Undeclared transitions are ignored.
func (g *Game) setState(to AppState, res *TickResult) bool {
	if !CanTransitionApp(g.state, to) {
		return false
	}
	res.emit(Event{Kind: EventAppStateChanged, PrevApp: g.state, App: to})
	g.state = to
	return true
}
