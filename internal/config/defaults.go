package config

import (
	_ "embed"
)

//go:embed defaults/hopper.yaml
var defaultHopperYAML []byte

// DefaultHopperConfig returns the built-in hopper configuration.
// It mirrors defaults/hopper.yaml and is used when the embedded file cannot be parsed.
func DefaultHopperConfig() HopperConfig {
	return HopperConfig{
		World: WorldConfig{
			Tile:           48,
			Columns:        15,
			AheadRows:      28,
			BehindRows:     12,
			RetainMargin:   8,
			StartBand:      8,
			EarlyRows:      10,
			EarlySafeBias:  0.75,
			SafeWeight:     0.40,
			CrossingWeight: 0.32,
			FloatingWeight: 0.28,
			BlockedChance:  0.20,
			CullMargin:     4,
		},
		Crossing: TrafficConfig{
			MinSpeed:      140,
			MaxSpeed:      260,
			MinGap:        1.8,
			MaxGap:        3.6,
			InitialDelay:  1.5,
			Lengths:       []float64{1.2, 1.5, 1.8, 2.2},
			Height:        0.74,
			MinEdgeOffset: 10,
			MaxEdgeOffset: 80,
		},
		Floating: TrafficConfig{
			MinSpeed:      90,
			MaxSpeed:      180,
			MinGap:        2.0,
			MaxGap:        4.0,
			InitialDelay:  1.5,
			Lengths:       []float64{1.6, 2.0, 2.4, 3.0},
			Height:        0.70,
			MinEdgeOffset: 10,
			MaxEdgeOffset: 120,
		},
		Player: PlayerConfig{
			StartRow:      2,
			HopCooldownMs: 110,
			HopAnimRate:   8,
			CameraLead:    10,
			CameraRate:    6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.6,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultHopperYAML
}
