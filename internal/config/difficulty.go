package config

import "math"

// DifficultyManager calculates dynamic obstacle parameters from score or time alive.
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

// Level returns the current difficulty level (0.0 to 1.0).
// With progression disabled the level is 0 and obstacles keep their base values.
func (d *DifficultyManager) Level(score int, seconds float64) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = seconds / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the obstacle velocity for the current difficulty.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, seconds float64) float64 {
	level := d.Level(score, seconds)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// GapSize returns the vertical gap for the current difficulty, never below minGap.
func (d *DifficultyManager) GapSize(baseGap, minGap float64, score int, seconds float64) float64 {
	level := d.Level(score, seconds)
	result := baseGap - level*d.cfg.Scaling.GapReduction
	if result < minGap {
		result = minGap
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
