package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "hopper.yaml"

// LoadHopper loads the hopper configuration.
// Search order: customPath -> ~/.hopper/configs/hopper.yaml -> ./configs/hopper.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadHopper(customPath string) (HopperConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HopperConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return HopperConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Broken user or local files are skipped rather than fatal.
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultHopperYAML)
	if err != nil {
		return DefaultHopperConfig(), nil
	}
	return cfg, nil
}

// parse decodes YAML on top of the built-in defaults and validates the result.
func parse(data []byte) (HopperConfig, error) {
	cfg := DefaultHopperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HopperConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return HopperConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hopper", "configs", filename)
}

// Validate reports configuration values the simulation cannot run with.
func (c HopperConfig) Validate() error {
	var errs []error
	w := c.World
	if w.Tile <= 0 {
		errs = append(errs, errors.New("world.tile must be positive"))
	}
	if w.Columns < 1 {
		errs = append(errs, errors.New("world.columns must be at least 1"))
	}
	if w.AheadRows < 1 {
		errs = append(errs, errors.New("world.ahead_rows must be at least 1"))
	}
	if w.BehindRows < 0 {
		errs = append(errs, errors.New("world.behind_rows must not be negative"))
	}
	if w.RetainMargin < 0 {
		errs = append(errs, errors.New("world.retain_margin must not be negative"))
	}
	if w.CullMargin < 0 {
		errs = append(errs, errors.New("world.cull_margin must not be negative"))
	}
	if w.StartBand <= c.Player.StartRow {
		errs = append(errs, errors.New("world.start_band must cover player.start_row"))
	}
	if w.EarlySafeBias < 0 || w.EarlySafeBias > 1 {
		errs = append(errs, errors.New("world.early_safe_bias must be within [0, 1]"))
	}
	if w.BlockedChance < 0 || w.BlockedChance > 1 {
		errs = append(errs, errors.New("world.blocked_chance must be within [0, 1]"))
	}
	if w.SafeWeight < 0 || w.CrossingWeight < 0 || w.FloatingWeight < 0 {
		errs = append(errs, errors.New("world lane weights must not be negative"))
	} else if w.SafeWeight+w.CrossingWeight+w.FloatingWeight <= 0 {
		errs = append(errs, errors.New("world lane weights must not all be zero"))
	}

	traffic := []struct {
		name string
		cfg  TrafficConfig
	}{
		{"crossing", c.Crossing},
		{"floating", c.Floating},
	}
	for _, tc := range traffic {
		t := tc.cfg
		// Stationary traffic is never culled.
		if t.MinSpeed <= 0 {
			errs = append(errs, fmt.Errorf("%s.min_speed must be positive", tc.name))
		}
		if t.MinSpeed > t.MaxSpeed {
			errs = append(errs, fmt.Errorf("%s.min_speed exceeds max_speed", tc.name))
		}
		if t.MinGap <= 0 || t.MinGap > t.MaxGap {
			errs = append(errs, fmt.Errorf("%s gap range is invalid", tc.name))
		}
		if len(t.Lengths) == 0 {
			errs = append(errs, fmt.Errorf("%s.lengths must not be empty", tc.name))
		}
		if t.MinEdgeOffset > t.MaxEdgeOffset {
			errs = append(errs, fmt.Errorf("%s.min_edge_offset exceeds max_edge_offset", tc.name))
		}
	}
	return errors.Join(errs...)
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the file's difficulty settings untouched.
func ApplyPreset(cfg *HopperConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
