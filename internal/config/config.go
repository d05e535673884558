// Package config provides YAML-based game configuration loading and
// difficulty management for Tetris.
package config

// TetrisConfig contains all configuration for a game of Tetris.
type TetrisConfig struct {
	Engine     EngineConfig     `yaml:"engine"`
	Randomizer string           `yaml:"randomizer"` // "uniform", "bag" or "queue"
	Sequence   string           `yaml:"sequence"`   // shape letters dealt in a loop by "queue"
	Controls   ControlsConfig   `yaml:"controls"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// EngineConfig defines the timing of the game loop.
type EngineConfig struct {
	TickRate     int `yaml:"tick_rate"`     // Ticks per second
	GravityTicks int `yaml:"gravity_ticks"` // Ticks between gravity steps at the lowest level
	LockDelay    int `yaml:"lock_delay"`    // Grounded gravity steps before a piece locks
}

// ControlsConfig lists the keys bound to each action, in Bubble Tea key
// notation ("left", "ctrl+c", " ", ...).
type ControlsConfig struct {
	ShiftLeft  []string `yaml:"shift_left"`
	ShiftRight []string `yaml:"shift_right"`
	RotateCW   []string `yaml:"rotate_cw"`
	RotateCCW  []string `yaml:"rotate_ccw"`
	HardDrop   []string `yaml:"hard_drop"`
	Pause      []string `yaml:"pause"`
	Restart    []string `yaml:"restart"`
	Quit       []string `yaml:"quit"`
}

// Randomizer names.
const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
	RandomizerQueue   = "queue"
)

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during play.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "lines", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Lines/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	GravityReduction int `yaml:"gravity_reduction"`  // Ticks removed from gravity at max difficulty
	MinGravityTicks  int `yaml:"min_gravity_ticks"` // Gravity never gets faster than this
}

// Progression types.
const (
	ProgressionLines = "lines"
	ProgressionTime  = "time"
	ProgressionNone  = "none"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the difficulty presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	if name == "" {
		return DifficultyNormal, true
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Mode returns the leaderboard name of the preset. Normal play is recorded
// as plain "tetris".
func (p DifficultyPreset) Mode() string {
	if p == "" || p == DifficultyNormal {
		return "tetris"
	}
	return "tetris_" + string(p)
}
