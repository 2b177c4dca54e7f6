package flappy

import (
	"slices"

	"github.com/vovakirdan/bat-adventure/internal/config"
	"github.com/vovakirdan/bat-adventure/internal/core"
)

// Scene is the sub-state of the Playing app state.
type Scene int

const (
	SceneReadingRules Scene = iota
	ScenePlaying
	ScenePause
	SceneFinished
)

// String returns a human-readable scene name.
func (s Scene) String() string {
	switch s {
	case SceneReadingRules:
		return "ReadingRules"
	case ScenePlaying:
		return "Playing"
	case ScenePause:
		return "Pause"
	case SceneFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

var sceneTransitions = map[Scene][]Scene{
	SceneReadingRules: {ScenePlaying},
	ScenePlaying:      {ScenePause, SceneFinished},
	ScenePause:        {ScenePlaying, SceneReadingRules},
	SceneFinished:     {ScenePlaying, SceneReadingRules},
}

// CanTransition reports whether the scene machine declares from -> to.
func CanTransition(from, to Scene) bool {
	return slices.Contains(sceneTransitions[from], to)
}

// SceneMachine runs one round at a time: rules, play, pause and the lost screen.
type SceneMachine struct {
	cfg        *config.Config
	rng        core.Rand
	sound      SoundPlayer
	difficulty *config.DifficultyManager
	buttons    sceneButtons

	playstyle Playstyle
	scene     Scene
	round     RoundState
}

// NewSceneMachine creates a machine sitting on the rules screen with a fresh round.
func NewSceneMachine(cfg *config.Config, rng core.Rand, sound SoundPlayer) *SceneMachine {
	if sound == nil {
		sound = nopSound{}
	}
	m := &SceneMachine{
		cfg:        cfg,
		rng:        rng,
		sound:      sound,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		buttons:    newSceneButtons(cfg.World),
	}
	m.Begin(Singleplayer)
	return m
}

// Begin starts a fresh round with the given playstyle on the rules screen.
func (m *SceneMachine) Begin(p Playstyle) {
	m.playstyle = p
	m.scene = SceneReadingRules
	m.Reset()
}

// Reset re-initializes both birds, the obstacle, the background, score and time.
func (m *SceneMachine) Reset() {
	m.round = newRound(*m.cfg)
}

// Scene returns the current scene.
func (m *SceneMachine) Scene() Scene {
	return m.scene
}

// Playstyle returns the playstyle of the current round.
func (m *SceneMachine) Playstyle() Playstyle {
	return m.playstyle
}

// Round returns a copy of the round state.
func (m *SceneMachine) Round() RoundState {
	return m.round
}

// setScene performs a declared transition and records it. Undeclared transitions are ignored.
func (m *SceneMachine) setScene(to Scene, res *TickResult) bool {
	if !CanTransition(m.scene, to) {
		return false
	}
	res.emit(Event{Kind: EventSceneChanged, PrevScene: m.scene, Scene: to})
	m.scene = to
	return true
}

// Step advances the round by dt seconds.
// It returns true when the player asked to leave for the menu; the round is reset
// and the machine is back on the rules screen.
func (m *SceneMachine) Step(dt float64, in Input, res *TickResult) bool {
	switch m.scene {
	case SceneReadingRules:
		if in.Pressed(core.ActionConfirm) {
			m.setScene(ScenePlaying, res)
		}
	case ScenePlaying:
		m.stepPlaying(dt, in, res)
	case ScenePause:
		return m.stepPause(in, res)
	case SceneFinished:
		return m.stepFinished(in, res)
	}
	return false
}

func (m *SceneMachine) stepPlaying(dt float64, in Input, res *TickResult) {
	r := &m.round

	if r.Lost(m.playstyle) {
		m.setScene(SceneFinished, res)
		res.emit(Event{
			Kind:      EventRoundFinished,
			Score:     r.Score,
			TimeAlive: r.TimeAlive,
			Playstyle: m.playstyle,
		})
		return
	}

	r.TimeAlive += dt

	if in.Pressed(core.ActionPause) {
		m.setScene(ScenePause, res)
		m.sound.Play(SoundPause)
		return
	}

	if !r.Obstacle.Passed && r.Obstacle.X() < r.scoringX(m.playstyle, m.cfg.Scoring.Reference) {
		r.Score++
		r.Obstacle.Passed = true
		res.emit(Event{Kind: EventScored, Score: r.Score})
	}

	r.Parallax.Update(dt)

	for _, b := range r.participants(m.playstyle) {
		b.Update(dt, in.Pressed(b.JumpKey), m.cfg.Physics)
	}

	r.Obstacle.Velocity = m.difficulty.Speed(m.cfg.Obstacle.Velocity, r.Score, r.TimeAlive)
	r.Obstacle.Update(dt)
	if r.Obstacle.OutOfBounds() {
		gap := m.difficulty.GapSize(m.cfg.Obstacle.Gap, m.cfg.Obstacle.MinGap, r.Score, r.TimeAlive)
		r.Obstacle.Recycle(m.rng, m.cfg.World, gap)
	}

	for i, b := range r.participants(m.playstyle) {
		if b.Alive && b.Collides(r.Obstacle, m.cfg.Bird.Radius) {
			b.Alive = false
			m.sound.Play(SoundHit)
			res.emit(Event{Kind: EventBirdDied, Bird: i + 1})
		}
	}
}

func (m *SceneMachine) stepPause(in Input, res *TickResult) bool {
	radius := m.cfg.UI.PointerRadius
	switch {
	case m.buttons.resume.Activated(in, radius):
		m.sound.Play(SoundSelect)
		m.setScene(ScenePlaying, res)
	case m.buttons.exit.Activated(in, radius):
		m.sound.Play(SoundSelect)
		return m.exitToMenu(res)
	}
	return false
}

func (m *SceneMachine) stepFinished(in Input, res *TickResult) bool {
	radius := m.cfg.UI.PointerRadius
	switch {
	case m.buttons.retry.Activated(in, radius):
		m.sound.Play(SoundSelect)
		m.Reset()
		m.setScene(ScenePlaying, res)
	case m.buttons.exit.Activated(in, radius):
		m.sound.Play(SoundSelect)
		return m.exitToMenu(res)
	}
	return false
}

func (m *SceneMachine) exitToMenu(res *TickResult) bool {
	m.Reset()
	m.setScene(SceneReadingRules, res)
	return true
}
