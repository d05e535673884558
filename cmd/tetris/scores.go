package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagPlayer string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show best results",
	Long: `Display the top 10 results for a difficulty preset, or a summary
of every preset when none is given.

Examples:
  tetris scores
  tetris scores hard
  tetris scores --player alice
  tetris scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Show the latest results of one SSH player")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all results of the given difficulty")
}

func runScores(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store == nil {
		return fmt.Errorf("cannot open results database %s", flagDBPath)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagPlayer != "" {
		results, err := store.PlayerResults(flagPlayer, 10)
		if err != nil {
			return fmt.Errorf("cannot retrieve results: %w", err)
		}
		printPlayerResults(out, flagPlayer, results)
		return nil
	}

	if len(args) == 0 {
		if flagClear {
			return errors.New("--clear needs a difficulty")
		}
		stats, err := store.AllStats()
		if err != nil {
			return fmt.Errorf("cannot retrieve statistics: %w", err)
		}
		printSummary(out, stats)
		return nil
	}

	preset, ok := config.ParsePreset(args[0])
	if !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", args[0])
	}

	if flagClear {
		if err := store.ClearResults(preset.Mode()); err != nil {
			return err
		}
		logger.Info("results cleared", "mode", preset.Mode())
		fmt.Fprintf(out, "Cleared all %s results.\n", preset)
		return nil
	}

	results, err := store.TopResults(preset.Mode(), 10)
	if err != nil {
		return fmt.Errorf("cannot retrieve results: %w", err)
	}
	printTopResults(out, preset, results)
	return nil
}

func printTopResults(w io.Writer, preset config.DifficultyPreset, results []storage.Result) {
	fmt.Fprintf(w, "Best Results - %s\n", preset)
	fmt.Fprintln(w)

	if len(results) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'tetris play --difficulty %s' to set the first record!\n", preset)
		return
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %-5s  %-8s  %-12s  %s\n", "Rank", "Lines", "Level", "Time", "Player", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-5s  %-8s  %-12s  %s\n", "----", "-----", "-----", "----", "------", "----")

	for i, r := range results {
		fmt.Fprintf(w, "  %-4d  %-6d  %-5d  %-8s  %-12s  %s\n",
			i+1, r.Lines, r.Level, r.Duration.Round(time.Second), playerName(r.Player), r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printPlayerResults(w io.Writer, player string, results []storage.Result) {
	fmt.Fprintf(w, "Latest Results - %s\n", player)
	fmt.Fprintln(w)

	if len(results) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		return
	}

	fmt.Fprintf(w, "  %-14s  %-6s  %-5s  %-8s  %s\n", "Mode", "Lines", "Level", "Time", "Date")
	fmt.Fprintf(w, "  %-14s  %-6s  %-5s  %-8s  %s\n", "----", "-----", "-----", "----", "----")

	for _, r := range results {
		fmt.Fprintf(w, "  %-14s  %-6d  %-5d  %-8s  %s\n",
			r.Mode, r.Lines, r.Level, r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// printSummary prints one line of statistics per difficulty preset.
func printSummary(w io.Writer, stats map[string]*storage.ModeStats) {
	fmt.Fprintln(w, "Best Results")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-8s  %-5s  %-5s  %-9s  %s\n", "Mode", "Games", "Best", "Avg lines", "Last played")
	fmt.Fprintf(w, "  %-8s  %-5s  %-5s  %-9s  %s\n", "----", "-----", "----", "---------", "-----------")

	for _, p := range config.Presets {
		st, ok := stats[p.Mode()]
		if !ok || st.GamesCount == 0 {
			fmt.Fprintf(w, "  %-8s  %-5d  %-5s  %-9s  %s\n", p, 0, "-", "-", "-")
			continue
		}
		fmt.Fprintf(w, "  %-8s  %-5d  %-5d  %-9.1f  %s\n",
			p, st.GamesCount, st.BestLines, st.AvgLines, st.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func playerName(p string) string {
	if p == "" {
		return "local"
	}
	return p
}
