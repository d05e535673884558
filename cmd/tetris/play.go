package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Tetris right away.

Controls (defaults, see tetris.yaml):
  Left/Right, A/D, H/L  - Shift
  Up, X, K              - Rotate clockwise
  Z                     - Rotate counter-clockwise
  Space/Enter           - Hard drop
  P/Esc                 - Pause
  R                     - Restart (after game over)
  Ctrl+S                - Save a screenshot
  Q/Ctrl+C              - Quit

Difficulty options:
  easy   - Slow start, generous lock delay
  normal - Gravity speeds up as lines are cleared
  hard   - Starts well into the speed curve, short lock delay
  fixed  - Gravity never changes

Examples:
  tetris play
  tetris play --difficulty easy
  tetris play --seed 42 --fps 30
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) error {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	config.ApplyTetrisPreset(&cfg, preset)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return tui.Run(tui.GameOptions{
		Config:  cfg,
		Preset:  preset,
		Runtime: runtimeConfig(cfg),
		Store:   store,
		Logger:  logger,
	})
}

// runtimeConfig sizes the screen from the terminal, falling back to the
// default size when stdout is not a terminal.
func runtimeConfig(cfg config.TetrisConfig) core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = cfg.Engine.TickRate
	rt.Seed = flagSeed
	return rt
}
