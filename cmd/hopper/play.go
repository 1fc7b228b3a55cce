package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
	"github.com/vovakirdan/tui-hopper/internal/games/hopper"
	"github.com/vovakirdan/tui-hopper/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Up/W/K       - Hop forward
  Down/S/J     - Hop back
  Left/A/H     - Hop left
  Right/D/L    - Hop right
  P            - Pause
  R            - Restart
  ?            - Show all keys
  Q/Esc/Ctrl+C - Quit

Difficulty options:
  easy   - Lane speeds start low and rise with your score
  normal - Lane speeds start at 30% of the boost and rise with your score
  hard   - Lane speeds start at 70% of the boost and rise with your score
  fixed  - No progression, lane speeds stay at the configured ranges

Examples:
  hopper play
  hopper play --difficulty hard
  hopper play --config ./my-hopper.yaml --seed 42
  hopper play --log-file ./hopper.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write game events to this file")
}

// loadGameConfig applies the shared --config and --difficulty flags and
// loads the resulting configuration.
func loadGameConfig() (config.HopperConfig, error) {
	hopper.SetConfigPath(flagConfig)
	if err := hopper.SetDifficultyPreset(flagDifficulty); err != nil {
		return config.HopperConfig{}, err
	}
	return hopper.LoadConfig()
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Fail early on a broken config instead of silently using defaults.
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var logger *log.Logger
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "hopper",
		})
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(hopper.NewWithConfig(cfg), runtime, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
