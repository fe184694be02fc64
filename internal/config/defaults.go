package config

import (
	_ "embed"
)

//go:embed defaults/survival.yaml
var defaultSurvivalYAML []byte

// DefaultSurvivalConfig returns the built-in configuration. It mirrors the
// embedded defaults/survival.yaml.
func DefaultSurvivalConfig() SurvivalConfig {
	return SurvivalConfig{
		Field: FieldConfig{
			Width:        800,
			Height:       600,
			FloorOffset:  60,
			GroundOffset: 100,
		},
		Physics: PhysicsConfig{
			Gravity:          800,
			Friction:         0.8,
			ObstacleGravity:  200,
			BounceDamping:    0.3,
			LandingTolerance: 5,
			MaxStepMs:        50,
		},
		Player: PlayerConfig{
			StartX:         100,
			Width:          30,
			Height:         40,
			Speed:          200,
			JumpPower:      400,
			MaxHealth:      3,
			CrouchOffset:   15,
			InvulnerableMs: 0,
		},
		Platforms: PlatformConfig{
			Width:           80,
			Height:          15,
			Elevation:       150,
			ScrollSpeed:     50,
			InitialCount:    2,
			InitialSpacing:  400,
			FirstIntervalMs: 8000,
			MinIntervalMs:   6000,
			MaxIntervalMs:   12000,
		},
		Obstacles: ObstacleConfig{
			InitialIntervalMs: 2000,
			MinIntervalMs:     500,
			IntervalDecay:     100,
			MaxRotationSpeed:  0.05,
		},
		Scoring: ScoringConfig{
			DodgePoints:        10,
			SurvivalIntervalMs: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 1.0,
			RampMs:       10000,
			Gates: []GateConfig{
				{UntilMs: 5000, Kinds: []string{"paperAirplane", "apple"}},
				{UntilMs: 15000, Kinds: []string{"paperAirplane", "apple", "pencil", "textbook"}},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultSurvivalYAML
}
