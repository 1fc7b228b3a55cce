// Package config provides YAML-based game configuration loading and
// difficulty management for the hopper.
package config

import "fmt"

// HopperConfig contains all tunables of the hopper simulation.
type HopperConfig struct {
	World      WorldConfig      `yaml:"world"`
	Crossing   TrafficConfig    `yaml:"crossing"`
	Floating   TrafficConfig    `yaml:"floating"`
	Player     PlayerConfig     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the grid and lane streaming parameters.
type WorldConfig struct {
	Tile           float64 `yaml:"tile"`            // Pixels per grid cell
	Columns        int     `yaml:"columns"`         // Playable columns
	AheadRows      int     `yaml:"ahead_rows"`      // Rows generated in front of the player
	BehindRows     int     `yaml:"behind_rows"`     // Rows updated behind the player
	RetainMargin   int     `yaml:"retain_margin"`   // Extra rows kept behind before pruning
	StartBand      int     `yaml:"start_band"`      // Rows forced safe on reset
	EarlyRows      int     `yaml:"early_rows"`      // Rows below this never float
	EarlySafeBias  float64 `yaml:"early_safe_bias"` // P(safe) for early rows
	SafeWeight     float64 `yaml:"safe_weight"`
	CrossingWeight float64 `yaml:"crossing_weight"`
	FloatingWeight float64 `yaml:"floating_weight"`
	BlockedChance  float64 `yaml:"blocked_chance"` // P(blocked) per safe-lane column
	CullMargin     float64 `yaml:"cull_margin"`    // Tiles past the edge before an obstacle is dropped
}

// TrafficConfig defines obstacle generation for one hazard lane type.
type TrafficConfig struct {
	MinSpeed      float64   `yaml:"min_speed"`      // Pixels per second
	MaxSpeed      float64   `yaml:"max_speed"`      // Pixels per second
	MinGap        float64   `yaml:"min_gap"`        // Seconds between spawns
	MaxGap        float64   `yaml:"max_gap"`        // Seconds between spawns
	InitialDelay  float64   `yaml:"initial_delay"`  // Max seconds before the first spawn
	Lengths       []float64 `yaml:"lengths"`        // Obstacle widths in tiles
	Height        float64   `yaml:"height"`         // Obstacle height in tiles
	MinEdgeOffset int       `yaml:"min_edge_offset"` // Extra pixels beyond the screen edge
	MaxEdgeOffset int       `yaml:"max_edge_offset"`
}

// PlayerConfig defines player geometry and pacing.
type PlayerConfig struct {
	StartRow      int     `yaml:"start_row"`
	HopCooldownMs int     `yaml:"hop_cooldown_ms"`
	HopAnimRate   float64 `yaml:"hop_anim_rate"` // Hop progress per second
	CameraLead    int     `yaml:"camera_lead"`   // Rows shown below the player
	CameraRate    float64 `yaml:"camera_rate"`   // Camera smoothing per second
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to lane speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// LookupPreset is ParsePreset for user input: an empty string selects no
// preset, any other unknown name is an error.
func LookupPreset(s string) (DifficultyPreset, error) {
	preset := ParsePreset(s)
	if preset == "" && s != "" {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
	return preset, nil
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
