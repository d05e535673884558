package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a difficulty picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a difficulty, Enter to play.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  tetris menu
  tetris menu --fps 30
  tetris menu --db ./tetris.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	base, err := loadConfig(logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	rt := runtimeConfig(base)

	for {
		menuResult, err := tui.RunMenu(store, rt)
		if err != nil {
			return err
		}

		// Keep any size changes
		rt = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		cfg := base
		config.ApplyTetrisPreset(&cfg, menuResult.Preset)

		if flagSeed == 0 {
			rt.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(tui.GameOptions{
			Config:  cfg,
			Preset:  menuResult.Preset,
			Runtime: rt,
			Store:   store,
			Logger:  logger,
		}); err != nil {
			logger.Error("game failed", "error", err)
		}
	}
}
