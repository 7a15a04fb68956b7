package config

import "math"

// DifficultyManager derives the opening pace of a run from the initial level and
// applies the milestone steps to the spawn interval and speed multiplier.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether milestone progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the initial difficulty level.
func (d *DifficultyManager) Level() float64 {
	return d.initialLevel
}

// StartMultiplier returns the speed multiplier a run begins with.
func (d *DifficultyManager) StartMultiplier() float64 {
	return 1.0 + d.initialLevel*d.cfg.Scaling.SpeedMultiplier
}

// StartInterval returns the enemy spawn interval a run begins with, never below floor.
func (d *DifficultyManager) StartInterval(base, floor float64) float64 {
	return math.Max(floor, base-d.initialLevel*d.cfg.Scaling.IntervalReduction)
}

// NextInterval returns the spawn interval after one milestone step.
// The interval only shrinks and never drops below floor.
func (d *DifficultyManager) NextInterval(current, step, floor float64) float64 {
	if !d.cfg.Enabled {
		return current
	}
	next := current - math.Abs(step)
	if next < floor {
		next = floor
	}
	return math.Min(current, next)
}

// NextMultiplier returns the speed multiplier after one milestone step.
func (d *DifficultyManager) NextMultiplier(current, step float64) float64 {
	if !d.cfg.Enabled {
		return current
	}
	return current + math.Abs(step)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
