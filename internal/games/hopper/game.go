package hopper

import (
	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
)

// configPath stores the custom config path set via CLI.
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. An empty name clears it;
// an unknown name is rejected and leaves the current preset unchanged.
func SetDifficultyPreset(preset string) error {
	p, err := config.LookupPreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// LoadConfig loads the configuration selected via SetConfigPath and SetDifficultyPreset.
func LoadConfig() (config.HopperConfig, error) {
	cfg, err := config.LoadHopper(configPath)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	return cfg, nil
}

// Game adapts Sim to the platform's fixed-tick loop.
type Game struct {
	cfg     config.HopperConfig
	loaded  bool
	runtime core.RuntimeConfig
	sim     *Sim
}

// New creates a game that loads its configuration on first Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.HopperConfig) *Game {
	return &Game{cfg: cfg, loaded: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "hopper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Hopper"
}

// Reset starts a new run with the runtime seed. The best score survives.
// A configuration that fails to load falls back to the built-in defaults.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.loaded {
		cfg, err := LoadConfig()
		if err != nil {
			cfg = config.DefaultHopperConfig()
			config.ApplyPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
		g.loaded = true
	}

	if g.sim == nil {
		g.sim = NewSim(g.cfg, runtime.Seed)
		return
	}
	g.sim.Reset(runtime.Seed)
}

// Step advances the game by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.sim.Step(g.runtime.Dt(), in)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	p := g.sim.Player()
	return core.GameState{
		Score:    p.Score,
		Best:     p.Best,
		GameOver: !p.Alive,
		Paused:   g.sim.Paused(),
	}
}

// Snapshot returns the read-only view of the last completed tick.
func (g *Game) Snapshot() Snapshot {
	return g.sim.Snapshot()
}

// Sim exposes the underlying simulation.
func (g *Game) Sim() *Sim {
	return g.sim
}

// Config returns the configuration in use.
func (g *Game) Config() config.HopperConfig {
	return g.cfg
}
