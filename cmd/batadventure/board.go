package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bat-adventure/internal/platform/tui"
	"github.com/vovakirdan/bat-adventure/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse the leaderboard",
	Long: `Open the interactive leaderboard with one tab per playstyle.

Controls:
  Tab/Left/Right - Switch playstyle
  Up/Down        - Scroll
  Esc/B/Q        - Close`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func runBoard(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	_, err = tui.RunScoreboard(store, width, height)
	return err
}
