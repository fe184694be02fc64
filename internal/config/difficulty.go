package config

import "math"

// DifficultyManager derives time-dependent game parameters from the
// elapsed survival time. It holds no mutable state of its own.
type DifficultyManager struct {
	cfg       DifficultyConfig
	obstacles ObstacleConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig, obstacles ObstacleConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:       cfg,
		obstacles: obstacles,
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Scalar returns the speed multiplier at elapsedMs: the initial level plus
// one for every ramp period survived.
func (d *DifficultyManager) Scalar(elapsedMs float64) float64 {
	if !d.cfg.Enabled {
		return d.cfg.InitialLevel
	}
	return d.cfg.InitialLevel + elapsedMs/d.cfg.RampMs
}

// ObstacleInterval returns the time between obstacle spawns at elapsedMs.
// It never increases with time and never drops below the configured floor.
func (d *DifficultyManager) ObstacleInterval(elapsedMs float64) float64 {
	if !d.cfg.Enabled {
		return d.obstacles.InitialIntervalMs
	}
	interval := d.obstacles.InitialIntervalMs - elapsedMs/d.obstacles.IntervalDecay
	return math.Max(d.obstacles.MinIntervalMs, interval)
}

// EligibleKinds returns the obstacle kind names allowed at elapsedMs.
// A nil result means every kind is eligible.
func (d *DifficultyManager) EligibleKinds(elapsedMs float64) []string {
	for _, g := range d.cfg.Gates {
		if elapsedMs < g.UntilMs {
			return g.Kinds
		}
	}
	return nil
}
