// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
)

// SurvivalConfig contains all configuration for the hallway survival game.
type SurvivalConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Platforms  PlatformConfig   `yaml:"platforms"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the play field in pixels.
type FieldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	FloorOffset  float64 `yaml:"floor_offset"`  // Distance from the bottom to the floor the player walks on
	GroundOffset float64 `yaml:"ground_offset"` // Distance from the bottom to the obstacle ground level
}

// FloorY returns the y-coordinate of the walking floor.
func (f FieldConfig) FloorY() float64 {
	return f.Height - f.FloorOffset
}

// GroundLevel returns the y-coordinate obstacles spawn relative to and bounce on.
func (f FieldConfig) GroundLevel() float64 {
	return f.Height - f.GroundOffset
}

// PhysicsConfig defines global physics parameters.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`           // px/s² applied to the player
	Friction         float64 `yaml:"friction"`          // Multiplicative per tick while resting
	ObstacleGravity  float64 `yaml:"obstacle_gravity"`  // px/s² applied to heavy obstacles
	BounceDamping    float64 `yaml:"bounce_damping"`    // Restitution of heavy obstacles on the ground
	LandingTolerance float64 `yaml:"landing_tolerance"` // Slack below a platform's bottom edge when landing
	MaxStepMs        float64 `yaml:"max_step_ms"`       // Longest single integration step
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	StartX         float64 `yaml:"start_x"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`
	JumpPower      float64 `yaml:"jump_power"`
	MaxHealth      int     `yaml:"max_health"`
	CrouchOffset   float64 `yaml:"crouch_offset"`   // Pixels removed from the top of the hit box while crouching
	InvulnerableMs float64 `yaml:"invulnerable_ms"` // Grace period after a hit; 0 disables it
}

// PlatformConfig defines the scrolling tables.
type PlatformConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Elevation       float64 `yaml:"elevation"` // Distance from the bottom of the field to the table top
	ScrollSpeed     float64 `yaml:"scroll_speed"`
	InitialCount    int     `yaml:"initial_count"`
	InitialSpacing  float64 `yaml:"initial_spacing"`
	FirstIntervalMs float64 `yaml:"first_interval_ms"`
	MinIntervalMs   float64 `yaml:"min_interval_ms"`
	MaxIntervalMs   float64 `yaml:"max_interval_ms"`
}

// ObstacleConfig defines obstacle spawning.
type ObstacleConfig struct {
	InitialIntervalMs float64 `yaml:"initial_interval_ms"`
	MinIntervalMs     float64 `yaml:"min_interval_ms"`
	IntervalDecay     float64 `yaml:"interval_decay"` // Elapsed ms per ms of interval shrink
	MaxRotationSpeed  float64 `yaml:"max_rotation_speed"`
}

// ScoringConfig defines how points are awarded.
type ScoringConfig struct {
	DodgePoints        int     `yaml:"dodge_points"`
	SurvivalIntervalMs float64 `yaml:"survival_interval_ms"` // One point per interval survived
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool         `yaml:"enabled"`
	InitialLevel float64      `yaml:"initial_level"` // Scalar at t=0
	RampMs       float64      `yaml:"ramp_ms"`       // Elapsed ms per +1.0 of scalar
	Gates        []GateConfig `yaml:"gates"`
}

// GateConfig limits the eligible obstacle kinds until a point in time.
// After the last gate every kind is eligible.
type GateConfig struct {
	UntilMs float64  `yaml:"until_ms"`
	Kinds   []string `yaml:"kinds"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// ParsePreset resolves a preset name. The empty string means "keep config".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty preset %q", name)
	}
}

// InitialLevelForPreset returns the starting difficulty scalar for a preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *SurvivalConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHealth = 5
		cfg.Difficulty.RampMs *= 2
	case DifficultyHard:
		cfg.Player.MaxHealth = 2
	}
}

// Validate checks the config for values the simulation cannot run with.
func (c SurvivalConfig) Validate() error {
	check := func(ok bool, format string, args ...any) error {
		if ok {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	for _, err := range []error{
		check(c.Field.Width > 0 && c.Field.Height > 0, "field size must be positive, got %vx%v", c.Field.Width, c.Field.Height),
		check(c.Field.FloorOffset >= 0 && c.Field.FloorOffset < c.Field.Height, "floor_offset %v outside the field", c.Field.FloorOffset),
		check(c.Field.GroundOffset >= 0 && c.Field.GroundOffset < c.Field.Height, "ground_offset %v outside the field", c.Field.GroundOffset),
		check(c.Physics.MaxStepMs > 0, "max_step_ms must be positive, got %v", c.Physics.MaxStepMs),
		check(c.Physics.Friction >= 0 && c.Physics.Friction <= 1, "friction must be within [0, 1], got %v", c.Physics.Friction),
		check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive"),
		check(c.Player.Width < c.Field.Width, "player wider than the field"),
		check(c.Player.MaxHealth > 0, "max_health must be positive, got %d", c.Player.MaxHealth),
		check(c.Player.CrouchOffset >= 0 && c.Player.CrouchOffset < c.Player.Height, "crouch_offset %v outside the player", c.Player.CrouchOffset),
		check(c.Player.InvulnerableMs >= 0, "invulnerable_ms must not be negative"),
		check(c.Platforms.Width > 0 && c.Platforms.Height > 0, "platform size must be positive"),
		check(c.Platforms.InitialCount >= 0, "initial_count must not be negative"),
		check(c.Platforms.FirstIntervalMs > 0, "platform first_interval_ms must be positive"),
		check(c.Platforms.MinIntervalMs > 0 && c.Platforms.MinIntervalMs <= c.Platforms.MaxIntervalMs,
			"platform interval range [%v, %v) is invalid", c.Platforms.MinIntervalMs, c.Platforms.MaxIntervalMs),
		check(c.Obstacles.MinIntervalMs > 0 && c.Obstacles.MinIntervalMs <= c.Obstacles.InitialIntervalMs,
			"obstacle interval range [%v, %v] is invalid", c.Obstacles.MinIntervalMs, c.Obstacles.InitialIntervalMs),
		check(c.Obstacles.IntervalDecay > 0, "interval_decay must be positive"),
		check(c.Scoring.SurvivalIntervalMs > 0, "survival_interval_ms must be positive"),
		check(c.Difficulty.RampMs > 0, "ramp_ms must be positive"),
		check(c.Difficulty.InitialLevel > 0, "initial_level must be positive"),
		c.validateGates(),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

func (c SurvivalConfig) validateGates() error {
	prev := 0.0
	for i, g := range c.Difficulty.Gates {
		if g.UntilMs <= prev {
			return fmt.Errorf("%w: gate %d until_ms %v is not increasing", ErrInvalidConfig, i, g.UntilMs)
		}
		if len(g.Kinds) == 0 {
			return fmt.Errorf("%w: gate %d has no kinds", ErrInvalidConfig, i)
		}
		prev = g.UntilMs
	}
	return nil
}
