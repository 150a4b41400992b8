// dino is a Chrome-Dino style endless runner for the terminal.
//
// Usage:
//
//	dino play            - Play in this terminal
//	dino serve           - Start an SSH server, one run per connection
//	dino config          - Print the default config file
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible obstacle spawns
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Register the game
	_ "github.com/vovakirdan/tui-dino/internal/games/dino"
)

const gameID = "dino"

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dino",
	Short: "Dino Runner - jump the cacti, duck the birds",
	Long: `Dino Runner is an endless side-scroller for the terminal.

Jump once to start: the ground rolls out, then cacti and birds come at
you faster and faster. One hit ends the run; press R or click the restart
button to go again.

Examples:
  dino play
  dino play --difficulty hard
  dino serve --ssh :2222
  dino config > ~/.arcade/configs/dino.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
