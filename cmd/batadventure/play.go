package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bat-adventure/internal/config"
	"github.com/vovakirdan/bat-adventure/internal/core"
	"github.com/vovakirdan/bat-adventure/internal/games/flappy"
	"github.com/vovakirdan/bat-adventure/internal/platform/audio"
	"github.com/vovakirdan/bat-adventure/internal/platform/tui"
	"github.com/vovakirdan/bat-adventure/internal/storage"
)

var (
	flagMode       string
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play BAT ADVENTURE",
	Long: `Start the game on the main menu, or straight in a round with --mode.

Controls:
  W/Space    - Flap (player 1)
  Up         - Flap (player 2)
  Enter      - Start the round from the rules screen
  P          - Pause / resume
  R          - Retry after losing
  B/Esc      - Back to the menu
  1-4        - Menu shortcuts
  Mouse      - Hover and click buttons
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  batadventure play
  batadventure play --mode single --difficulty normal
  batadventure play --mode multi --sound
  batadventure play --config ./my-bat.yaml --log-file bat.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Skip the menu: single or multi")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues through the speaker")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, presetErr := config.ParsePreset(flagDifficulty)
		if presetErr != nil {
			return presetErr
		}
		config.ApplyPreset(&cfg, preset)
	}

	var start *flappy.Playstyle
	if flagMode != "" {
		p, modeErr := flappy.ParsePlaystyle(flagMode)
		if modeErr != nil {
			return modeErr
		}
		start = &p
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	// The TUI owns the terminal, so logs only go to a file
	var logger *log.Logger
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return fmt.Errorf("opening log file: %w", openErr)
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "batadventure",
			Level:           log.DebugLevel,
		})
		logger.Info("starting", "seed", rt.Seed, "fps", rt.TickRate)
	}

	var sound flappy.SoundPlayer
	if flagSound {
		cues := audio.NewCuePlayer()
		if initErr := cues.Initialize(); initErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", initErr)
		} else {
			defer cues.Cleanup()
			sound = cues
		}
	}

	// Open round storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open rounds database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	game := flappy.New(cfg, core.NewRand(rt.Seed), sound)
	if start != nil {
		game.Start(*start)
	}

	if err := tui.Run(game, rt, tui.ModelOptions{
		Store:  store,
		Logger: logger,
		Player: os.Getenv("USER"),
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
