package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bat-adventure/internal/games/flappy"
	"github.com/vovakirdan/bat-adventure/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <playstyle>",
	Short: "Show the best rounds of a playstyle",
	Long: `Display the best rounds for single or multi.

Examples:
  batadventure scores single
  batadventure scores multi --limit 25
  batadventure scores single --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded round of the playstyle")
}

func runScores(_ *cobra.Command, args []string) error {
	p, err := flappy.ParsePlaystyle(args[0])
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		return clearScores(os.Stdout, store, p)
	}
	return writeScores(os.Stdout, store, p, flagLimit)
}

// clearScores deletes the rounds of one playstyle.
func clearScores(w io.Writer, store *storage.Store, p flappy.Playstyle) error {
	if err := store.ClearRounds(p.String()); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared all %s rounds.\n", p)
	return nil
}

// writeScores prints the leaderboard of one playstyle.
func writeScores(w io.Writer, store *storage.Store, p flappy.Playstyle, limit int) error {
	rounds, err := store.TopRounds(p.String(), limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n", p)
	fmt.Fprintln(w)

	if len(rounds) == 0 {
		fmt.Fprintln(w, "No rounds recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'batadventure play --mode %s' to set the first high score!\n", p)
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-6s  %-8s  %-12s  %s\n", "Rank", "Score", "Time", "Player", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-8s  %-12s  %s\n", "----", "-----", "----", "------", "----")

	for i, r := range rounds {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(w, "  %-4d  %-6d  %-8s  %-12s  %s\n",
			i+1, r.Score, fmt.Sprintf("%.1fs", r.SecondsAlive), player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Show high score
	fmt.Fprintln(w)
	if highScore, highErr := store.HighScore(p.String()); highErr == nil {
		fmt.Fprintf(w, "Best: %d\n", highScore)
	}
	if st, statErr := store.Stats(p.String()); statErr == nil {
		fmt.Fprintf(w, "Longest: %.1fs  Rounds: %d  Average: %.1f\n",
			st.LongestSurvival, st.Rounds, st.AvgScore)
	}
	return nil
}
