package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "tetris.yaml"

// LoadTetris loads Tetris configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
//
// Files are read over the defaults, so a file only needs the keys it changes.
// A custom path that cannot be read, parsed or validated is an error; the
// other locations are skipped when they are unusable.
func LoadTetris(customPath string) (TetrisConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseTetris(data)
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseTetris(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := parseTetris(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseTetris(defaultTetrisYAML)
	if err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseTetris(data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TetrisConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return TetrisConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}

// Validate reports every problem in the configuration.
func (c TetrisConfig) Validate() error {
	var errs []error

	if c.Engine.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("engine.tick_rate must be positive, got %d", c.Engine.TickRate))
	}
	if c.Engine.GravityTicks < 0 {
		errs = append(errs, fmt.Errorf("engine.gravity_ticks must not be negative, got %d", c.Engine.GravityTicks))
	}
	if c.Engine.LockDelay < 0 {
		errs = append(errs, fmt.Errorf("engine.lock_delay must not be negative, got %d", c.Engine.LockDelay))
	}

	switch c.Randomizer {
	case RandomizerUniform, RandomizerBag:
	case RandomizerQueue:
		if _, err := c.sequence(); err != nil {
			errs = append(errs, err)
		}
	default:
		errs = append(errs, fmt.Errorf("unknown randomizer %q", c.Randomizer))
	}

	switch c.Difficulty.Progression.Type {
	case ProgressionLines, ProgressionTime, ProgressionNone:
	default:
		errs = append(errs, fmt.Errorf("unknown difficulty.progression.type %q", c.Difficulty.Progression.Type))
	}

	bindings := map[string][]string{
		"shift_left":  c.Controls.ShiftLeft,
		"shift_right": c.Controls.ShiftRight,
		"rotate_cw":   c.Controls.RotateCW,
		"rotate_ccw":  c.Controls.RotateCCW,
		"hard_drop":   c.Controls.HardDrop,
		"pause":       c.Controls.Pause,
		"restart":     c.Controls.Restart,
		"quit":        c.Controls.Quit,
	}
	for _, name := range []string{"shift_left", "shift_right", "rotate_cw", "rotate_ccw", "hard_drop", "pause", "restart", "quit"} {
		if len(bindings[name]) == 0 {
			errs = append(errs, fmt.Errorf("controls.%s has no keys", name))
		}
	}

	return errors.Join(errs...)
}

// NewSource creates the piece randomizer named by the configuration.
// The seed is ignored by the queue randomizer.
func (c TetrisConfig) NewSource(seed int64) tetris.Source {
	switch c.Randomizer {
	case RandomizerBag:
		return tetris.NewBagSource(seed)
	case RandomizerQueue:
		if shapes, err := c.sequence(); err == nil {
			return tetris.NewQueueSource(shapes...)
		}
	}
	return tetris.NewRandomSource(seed)
}

// sequence parses the queue randomizer's shape letters. Spaces are ignored.
func (c TetrisConfig) sequence() ([]tetris.Shape, error) {
	var shapes []tetris.Shape
	for _, r := range c.Sequence {
		if r == ' ' {
			continue
		}
		s, err := tetris.ParseShape(string(r))
		if err != nil {
			return nil, fmt.Errorf("sequence: %w", err)
		}
		shapes = append(shapes, s)
	}
	if len(shapes) == 0 {
		return nil, errors.New("sequence must list at least one shape for the queue randomizer")
	}
	return shapes, nil
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Engine.LockDelay = 8
	case DifficultyHard:
		cfg.Engine.LockDelay = 3
	}
}
