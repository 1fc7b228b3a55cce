package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hopper/internal/core"
	"github.com/vovakirdan/tui-hopper/internal/games/hopper"
)

var (
	flagTicks  int
	flagScript string
	flagGap    int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted game without a terminal",
	Long: `Run the simulation headless with a move script and print the result.

Script commands:
  u d l r  - Hop up, down, left, right
  p        - Toggle pause
  x        - Restart
  .        - Wait

Every command is followed by --gap idle ticks. The run lasts for at
least --ticks ticks and stops early if the player dies.

Examples:
  hopper sim --seed 42 --script "uuuuu"
  hopper sim --seed 42 --script "uu.l.uu" --ticks 600`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Minimum number of ticks to simulate")
	simCmd.Flags().StringVar(&flagScript, "script", "", "Move script")
	simCmd.Flags().IntVar(&flagGap, "gap", 8, "Idle ticks after each script command")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSim(_ *cobra.Command, _ []string) error {
	actions, err := parseScript(flagScript)
	if err != nil {
		return err
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	game := hopper.NewWithConfig(cfg)
	game.Reset(runtime)

	snap := runScript(game, scriptFrames(actions, flagGap, flagTicks))
	printResult(os.Stdout, snap)
	return nil
}

// runScript steps the game through frames and stops at the first death.
func runScript(game *hopper.Game, frames []core.InputFrame) hopper.Snapshot {
	for _, f := range frames {
		if game.Step(f).State.GameOver {
			break
		}
	}
	return game.Snapshot()
}

func printResult(w io.Writer, snap hopper.Snapshot) {
	fmt.Fprintf(w, "seed    %d\n", snap.Seed)
	fmt.Fprintf(w, "ticks   %d (%.2fs)\n", snap.Tick, snap.Time)
	fmt.Fprintf(w, "player  row %d, column %d\n", snap.Player.Row, snap.Player.Column)
	fmt.Fprintf(w, "score   %d (best %d)\n", snap.Score, snap.Best)
	if snap.Alive {
		fmt.Fprintln(w, "status  alive")
	} else {
		fmt.Fprintf(w, "status  dead, %s\n", snap.Cause)
	}
}
