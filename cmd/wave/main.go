// wave is a terminal arcade game: a boat rides a scrolling wave and
// jumps over incoming wave sprays and diving pelicans. Hitting one
// ends the run; R starts over.
//
// Usage:
//
//	wave                 - Play with the built-in tuning
//	wave play            - Same, explicit
//	wave play --config p - Play with a custom tuning file
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for a reproducible obstacle schedule
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

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
	Use:   "wave",
	Short: "Wave - jump the boat over sprays and pelicans",
	Long: `Wave is a terminal arcade game. The boat rides the wave at a fixed
spot; sprays burst out of the water and pelicans dive in from the
right. Jump over the sprays, duck under the pelicans by staying low.

Controls:
  Space/Up   - Jump
  R          - Retry (after game over)
  Q/Ctrl+C   - Quit

Examples:
  wave
  wave play --fps 30
  wave play --config ./my-wave.yaml`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
}
