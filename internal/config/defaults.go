package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Engine: EngineConfig{
			TickRate:     60,
			GravityTicks: 30,
			LockDelay:    5,
		},
		Randomizer: RandomizerUniform,
		Controls: ControlsConfig{
			ShiftLeft:  []string{"left", "a", "h"},
			ShiftRight: []string{"right", "d", "l"},
			RotateCW:   []string{"up", "x", "k"},
			RotateCCW:  []string{"z", "ctrl+z"},
			HardDrop:   []string{" ", "enter"},
			Pause:      []string{"p", "esc"},
			Restart:    []string{"r"},
			Quit:       []string{"q", "ctrl+c"},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionLines,
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				GravityReduction: 27,
				MinGravityTicks:  2,
			},
		},
	}
}
