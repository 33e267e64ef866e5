// starfall is a terminal space shooter: dodge and destroy descending
// enemies until your hit points run out.
//
// Usage:
//
//	starfall play             - Play in the current terminal
//	starfall scores           - Show high scores
//	starfall list             - Show registered games
//	starfall serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.starfall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/starfall-arcade/starfall/internal/game/starfall"
)

const gameID = "starfall"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starfall",
	Short: "Starfall - a space shooter in your terminal",
	Long: `Starfall is a terminal space shooter. Steer your ship with the
keyboard or mouse, hold space to fire, and survive the falling swarm.

Available commands:
  play     - Play in the current terminal
  scores   - View high scores
  list     - Show registered games
  serve    - Start SSH server for remote play

Examples:
  starfall play
  starfall play --difficulty hard
  starfall scores
  starfall serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.starfall/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
}
