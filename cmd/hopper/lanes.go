package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hopper/internal/games/hopper"
)

var flagRows int

var lanesCmd = &cobra.Command{
	Use:   "lanes",
	Short: "Print the lane layout generated for a seed",
	Long: `Generate lanes for a seed and print them from the highest row down.

Each line shows the row, its lane type, the traffic direction and speed,
and a strip of the row with trees (T) on grass.

Examples:
  hopper lanes --seed 42
  hopper lanes --seed 42 --rows 100 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runLanes,
}

func init() {
	lanesCmd.Flags().IntVar(&flagRows, "rows", 30, "Number of rows to generate")
	lanesCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	lanesCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runLanes(_ *cobra.Command, _ []string) error {
	if flagRows <= 0 {
		return fmt.Errorf("--rows must be positive, got %d", flagRows)
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	world := hopper.NewWorld(cfg, seed)
	printLanes(os.Stdout, world, flagRows, seed)
	return nil
}

// printLanes writes rows [0, rows) from the top down.
func printLanes(w io.Writer, world *hopper.World, rows int, seed int64) {
	fmt.Fprintf(w, "seed %d\n\n", seed)
	fmt.Fprintf(w, "  %4s  %-8s  %3s  %6s  %s\n", "ROW", "TYPE", "DIR", "SPEED", "STRIP")

	lanes := make([]*hopper.Lane, rows)
	for row := range lanes {
		lanes[row] = world.LaneAt(row)
	}

	columns := world.Geometry().Columns
	for row := rows - 1; row >= 0; row-- {
		lane := lanes[row]

		dir := " "
		if lane.Type() != hopper.LaneSafe {
			dir = "->"
			if lane.Direction() < 0 {
				dir = "<-"
			}
		}

		fmt.Fprintf(w, "  %4d  %-8s  %3s  %6.1f  %s\n",
			row, lane.Type(), dir, lane.Speed(), laneStrip(lane, columns))
	}
}

// laneStrip draws one character per column.
func laneStrip(lane *hopper.Lane, columns int) string {
	var fill byte
	switch lane.Type() {
	case hopper.LaneCrossing:
		fill = '-'
	case hopper.LaneFloating:
		fill = '~'
	default:
		fill = '.'
	}

	strip := []byte(strings.Repeat(string(fill), columns))
	for _, col := range lane.BlockedColumns() {
		strip[col] = 'T'
	}
	return string(strip)
}
