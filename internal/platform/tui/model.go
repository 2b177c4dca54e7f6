package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bat-adventure/internal/core"
	"github.com/vovakirdan/bat-adventure/internal/games/flappy"
	"github.com/vovakirdan/bat-adventure/internal/storage"
)

// ModelOptions holds the optional collaborators of a Model.
type ModelOptions struct {
	// Store receives finished rounds. Nil disables persistence.
	Store *storage.Store

	// Logger receives game events. Nil discards them.
	Logger *log.Logger

	// Player is recorded with saved rounds (the SSH user, or $USER locally).
	Player string
}

// Model is the Bubble Tea model running one Bat Adventure game.
type Model struct {
	game       *flappy.Game
	screen     *core.Screen
	canvas     *ScreenCanvas
	store      *storage.Store
	logger     *log.Logger
	player     string
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *flappy.Game, cfg core.RuntimeConfig, opts ModelOptions) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	return Model{
		game:       game,
		screen:     screen,
		canvas:     NewScreenCanvas(screen, game.Config().World),
		store:      opts.Store,
		logger:     logger,
		player:     opts.Player,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse tracks the pointer and turns left presses into clicks.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.inputFrame.SetPointer(m.canvas.ToWorld(msg.X, msg.Y))
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.SetClick()
	}
	return m, nil
}

// handleResize processes window resize events.
// The world is fixed size, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	result := m.game.Step(dt, m.inputFrame)
	for _, e := range result.Events {
		m.logger.Debug("game event", "event", e.String())
		if e.Kind == flappy.EventRoundFinished {
			m.recordRound(e)
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	if result.Exit() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// recordRound saves a finished round. Empty rounds are not kept.
func (m Model) recordRound(e flappy.Event) {
	m.logger.Info("round finished",
		"playstyle", e.Playstyle.String(),
		"score", e.Score,
		"seconds", fmt.Sprintf("%.1f", e.TimeAlive),
	)
	if m.store == nil || (e.Score == 0 && e.TimeAlive == 0) {
		return
	}

	_, err := m.store.SaveRound(storage.RoundRecord{
		Playstyle:    e.Playstyle.String(),
		Score:        e.Score,
		SecondsAlive: e.TimeAlive,
		Player:       m.player,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not save round", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".batadventure", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("bat_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// render draws the current frame into the screen buffer.
func (m Model) render() {
	m.screen.Clear()
	m.game.Draw(m.canvas, m.inputFrame)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	return RenderScreen(m.screen)
}

// Game returns the game driven by the model.
func (m Model) Game() *flappy.Game {
	return m.game
}

// Run starts the Bubble Tea program with the given model.
func Run(game *flappy.Game, cfg core.RuntimeConfig, opts ModelOptions) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover highlights need motion events
	)

	_, err := p.Run()
	return err
}
