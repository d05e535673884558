package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// seedStore fills a fresh database and points --db at it.
func seedStore(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tetris.db")
	store, err := storage.Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	for _, r := range []storage.Result{
		{Mode: "tetris", Player: "alice", Lines: 12, Level: 2, Duration: 90 * time.Second},
		{Mode: "tetris", Lines: 30, Level: 4, Duration: 5 * time.Minute},
		{Mode: "tetris_hard", Player: "alice", Lines: 7, Level: 8, Duration: time.Minute},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}
	store.Close()

	oldDB, oldPlayer, oldClear := flagDBPath, flagPlayer, flagClear
	flagDBPath, flagPlayer, flagClear = path, "", false
	t.Cleanup(func() { flagDBPath, flagPlayer, flagClear = oldDB, oldPlayer, oldClear })
}

func runScoresOutput(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	scoresCmd.SetOut(&buf)
	t.Cleanup(func() { scoresCmd.SetOut(nil) })
	if err := runScores(scoresCmd, args); err != nil {
		t.Fatalf("runScores(%q) failed: %v", args, err)
	}
	return buf.String()
}

func TestScoresSummary(t *testing.T) {
	seedStore(t)
	out := runScoresOutput(t)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Title, blank, header, rule, one row per preset.
	if len(lines) != 8 {
		t.Fatalf("expected 8 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[2], "  Mode") {
		t.Errorf("header line = %q", lines[2])
	}
	if !strings.Contains(out, "normal    2      30") {
		t.Errorf("normal row missing games/best:\n%s", out)
	}
	if !strings.Contains(out, "easy      0      -") {
		t.Errorf("unplayed preset should show dashes:\n%s", out)
	}
}

func TestScoresTopResults(t *testing.T) {
	seedStore(t)
	out := runScoresOutput(t, "normal")

	first := strings.Index(out, "30")
	second := strings.Index(out, "12")
	if first < 0 || second < 0 || first > second {
		t.Errorf("results should be ordered by lines:\n%s", out)
	}
	if !strings.Contains(out, "local") || !strings.Contains(out, "alice") {
		t.Errorf("expected player names:\n%s", out)
	}
}

func TestScoresPlayer(t *testing.T) {
	seedStore(t)
	flagPlayer = "alice"
	out := runScoresOutput(t)

	if !strings.Contains(out, "tetris_hard") || !strings.Contains(out, "Latest Results - alice") {
		t.Errorf("unexpected player output:\n%s", out)
	}
	if strings.Contains(out, " 30 ") {
		t.Errorf("another player's result leaked in:\n%s", out)
	}
}

func TestScoresClear(t *testing.T) {
	seedStore(t)
	flagClear = true
	if err := runScores(scoresCmd, nil); err == nil {
		t.Error("--clear without a difficulty should fail")
	}

	runScoresOutput(t, "normal")
	flagClear = false
	out := runScoresOutput(t, "normal")
	if !strings.Contains(out, "No games recorded yet.") {
		t.Errorf("normal results should be gone:\n%s", out)
	}
	if out := runScoresOutput(t, "hard"); !strings.Contains(out, "alice") {
		t.Errorf("other presets should be kept:\n%s", out)
	}
}

func TestScoresUnknownDifficulty(t *testing.T) {
	seedStore(t)
	if err := runScores(scoresCmd, []string{"insane"}); err == nil {
		t.Error("expected an error for an unknown difficulty")
	}
}
