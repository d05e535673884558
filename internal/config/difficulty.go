package config

import "math"

// MaxDisplayLevel is the level shown when difficulty is at its maximum.
const MaxDisplayLevel = 10

// DifficultyManager calculates dynamic game parameters based on lines/time.
// It is read-only after construction and safe to share between goroutines.
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

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// Level returns the current difficulty level (0.0 to 1.0) based on lines/ticks.
func (d *DifficultyManager) Level(lines int, ticks uint64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case ProgressionLines:
		progress = float64(lines) / maxAt
	case ProgressionTime:
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// DisplayLevel maps the difficulty level onto 1..MaxDisplayLevel.
func (d *DifficultyManager) DisplayLevel(lines int, ticks uint64) int {
	return 1 + int(d.Level(lines, ticks)*float64(MaxDisplayLevel-1)+1e-9)
}

// GravityTicks returns the ticks between gravity steps for the current
// difficulty. Gravity speeds up as the level rises but never drops below the
// configured minimum.
func (d *DifficultyManager) GravityTicks(base int, lines int, ticks uint64) int {
	level := d.Level(lines, ticks)
	result := base - int(level*float64(d.cfg.Scaling.GravityReduction))

	floor := d.cfg.Scaling.MinGravityTicks
	if floor < 0 {
		floor = 0
	}
	if floor > base {
		floor = base
	}
	if result < floor {
		result = floor
	}
	return result
}

// Gravity returns a gravity schedule for the game loop built on base.
func (d *DifficultyManager) Gravity(base int) func(lines int, ticks uint64) int {
	return func(lines int, ticks uint64) int {
		return d.GravityTicks(base, lines, ticks)
	}
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
