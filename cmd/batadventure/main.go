// batadventure is a Flappy-Bird-style cave flyer for the terminal.
//
// Usage:
//
//	batadventure play              - Play from the main menu
//	batadventure play --mode multi - Skip the menu and start a two-player round
//	batadventure scores <playstyle> - Print the best rounds
//	batadventure board             - Browse the leaderboard interactively
//	batadventure serve             - Start the SSH server (and optional HTTP API)
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.batadventure/rounds.db)
//
// Every flag can also be set from a BAT_<FLAG> environment variable, for
// example BAT_FPS=30 or BAT_IDLE_TIMEOUT=10. A .env file in the working
// directory is loaded first.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/bat-adventure/internal/storage"
)

// envPrefix namespaces the environment variables that back flags.
const envPrefix = "BAT_"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "batadventure",
	Short: "BAT ADVENTURE - flap through an endless magical cave",
	Long: `BAT ADVENTURE is a one-button cave flyer for your terminal.
Steer a bat through the gaps between rocks; every column passed scores a point.
Two players can share a keyboard in multiplayer.

Available commands:
  play     - Start the game
  scores   - Print the best rounds of a playstyle
  board    - Interactive leaderboard
  serve    - Start SSH server for remote play

Examples:
  batadventure play
  batadventure play --mode multi --difficulty hard
  batadventure scores single
  batadventure serve --ssh :2222 --http :8080`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadEnvDefaults,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to rounds database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadEnvDefaults loads .env and fills every flag not given on the command
// line from its BAT_ variable.
func loadEnvDefaults(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return applyEnv(cmd.Flags(), os.LookupEnv)
}

// applyEnv sets unchanged flags from the environment.
func applyEnv(flags *pflag.FlagSet, lookup func(string) (string, bool)) error {
	var errs []error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		name := envName(f.Name)
		v, ok := lookup(name)
		if !ok {
			return
		}
		if err := f.Value.Set(v); err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", name, v, err))
		}
	})
	return errors.Join(errs...)
}

// envName maps a flag name to its environment variable, e.g. idle-timeout to BAT_IDLE_TIMEOUT.
func envName(flag string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}
