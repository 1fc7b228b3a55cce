// hopper is an endless lane-crossing game for the terminal.
//
// Usage:
//
//	hopper play             - Play in this terminal
//	hopper serve            - Start SSH server for remote play
//	hopper lanes            - Print the generated lane layout for a seed
//	hopper sim              - Run a scripted game without a terminal
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
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
	Use:   "hopper",
	Short: "Hopper - cross endless lanes of traffic and water",
	Long: `Hopper is an endless lane-crossing game for the terminal.

Hop forward across grass, roads and rivers. Traffic kills on contact,
water drowns unless you ride a log, and trees block the way.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  lanes    - Print the lane layout generated for a seed
  sim      - Run a scripted game without a terminal

Examples:
  hopper play
  hopper play --difficulty hard
  hopper serve --ssh :2222
  hopper lanes --seed 42 --rows 40
  hopper sim --seed 42 --script "uuuu.l.uu"`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(lanesCmd)
	rootCmd.AddCommand(simCmd)
}
