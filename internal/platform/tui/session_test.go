package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

func newTestSession() SessionModel {
	return NewSessionModel(SessionOptions{
		Config:  config.DefaultTetrisConfig(),
		Runtime: core.DefaultConfig(),
		Player:  "alice",
	})
}

func send(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestMenuStartsOnNormal(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if m.Selected() == nil {
		t.Fatal("expected a selection")
	}
	if m.Selected().Preset != config.DifficultyNormal {
		t.Errorf("selected %q, expected normal", m.Selected().Preset)
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	for range len(config.Presets) + 2 {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	last := config.Presets[len(config.Presets)-1]
	if m.Selected() == nil || m.Selected().Preset != last {
		t.Errorf("cursor should stop at the last preset %q, got %+v", last, m.Selected())
	}
}

func TestSessionGameAndBack(t *testing.T) {
	m := newTestSession()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatal("expected a game after selecting a difficulty")
	}
	t.Cleanup(m.active.close)
	if m.gameModel.opts.Player != "alice" {
		t.Errorf("player = %q, expected alice", m.gameModel.opts.Player)
	}

	// Pause, then go back to the menu.
	m = send(t, m, runeKey('p'))
	if !m.gameModel.paused {
		t.Fatal("expected the game to be paused")
	}
	game := m.gameModel.game
	m = send(t, m, runeKey('b'))
	if m.gameModel != nil {
		t.Fatal("expected to be back at the menu")
	}
	if game.IsRunning() {
		t.Error("game should be stopped after leaving it")
	}
	if m.View() == "" {
		t.Error("menu should render")
	}
}

func TestSessionQuitFromGame(t *testing.T) {
	m := newTestSession()
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	game := m.gameModel.game

	next, cmd := m.Update(runeKey('q'))
	m = next.(SessionModel)
	if !m.quitting {
		t.Error("expected session to quit")
	}
	if cmd == nil {
		t.Error("expected a quit command")
	}
	if game.IsRunning() {
		t.Error("game should be stopped on quit")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := newTestSession()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("expected the scoreboard")
	}
	if m.View() == "" {
		t.Error("scoreboard should render")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil {
		t.Fatal("expected to be back at the menu")
	}
	if m.quitting {
		t.Error("going back should not end the session")
	}
}
