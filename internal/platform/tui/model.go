package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// GameOptions configures a GameModel.
type GameOptions struct {
	Config  config.TetrisConfig // preset already applied
	Preset  config.DifficultyPreset
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil disables saving results
	Logger  *log.Logger
	Player  string // recorded with results; empty for local play
}

// GameModel is the Bubble Tea model for a game of Tetris. The game itself
// runs on the engine's goroutine; the model draws the latest snapshot on
// every frame and turns key presses into queued inputs.
type GameModel struct {
	opts       GameOptions
	keys       GameKeyMap
	help       help.Model
	difficulty *config.DifficultyManager

	game    *engine.Game
	buffer  *engine.DoubleBuffer
	started time.Time
	best    int // best line count for this mode when the game started
	screen  *core.Screen

	paused     bool
	saved      bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates the model and starts the first game.
func NewGameModel(opts GameOptions) GameModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	m := GameModel{
		opts:       opts,
		keys:       NewGameKeyMap(opts.Config.Controls),
		help:       h,
		difficulty: config.NewDifficultyManager(opts.Config.Difficulty),
		screen:     core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 1)),
	}
	m.startGame(opts.Runtime.Seed)
	return m
}

// startGame replaces the engine with a fresh one and starts it.
func (m *GameModel) startGame(seed int64) {
	if m.game != nil {
		m.game.Close()
	}

	cfg := m.opts.Config
	m.buffer = engine.NewDoubleBuffer()
	m.game = engine.New(
		engine.WithLogger(m.opts.Logger),
		engine.WithSource(cfg.NewSource(seed)),
		engine.WithTickRate(cfg.Engine.TickRate),
		engine.WithLockDelay(cfg.Engine.LockDelay),
		engine.WithGravity(m.difficulty.Gravity(cfg.Engine.GravityTicks)),
		engine.WithRenderer(m.buffer.Write),
	)
	if err := m.game.Run(); err != nil {
		m.opts.Logger.Error("cannot start game", "err", err)
	}

	m.best = 0
	if m.opts.Store != nil {
		best, err := m.opts.Store.BestLines(m.opts.Preset.Mode())
		if err != nil {
			m.opts.Logger.Warn("cannot read best result", "err", err)
		}
		m.best = best
	}

	m.started = time.Now()
	m.paused = false
	m.saved = false
	m.opts.Logger.Debug("new game", "mode", m.opts.Preset.Mode(), "seed", seed)
}

// Init starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	return frameCmd(m.opts.Config.Engine.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	over := m.game.IsGameOver()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		m.quitting = true
		return m, tea.Quit

	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Back) && (over || m.paused):
		m.Close()
		m.backToMenu = true
		return m, nil

	case key.Matches(msg, m.keys.Restart) && over:
		m.startGame(time.Now().UnixNano())
		return m, nil

	case key.Matches(msg, m.keys.Pause) && !over:
		m.togglePause()
		return m, nil
	}

	if in, ok := m.keys.Input(msg); ok && !m.paused && !over {
		if err := m.game.QueueInput(in); err != nil && !errors.Is(err, engine.ErrGameNotRunning) {
			m.opts.Logger.Warn("input dropped", "input", in, "err", err)
		}
	}
	return m, nil
}

func (m *GameModel) togglePause() {
	var err error
	if m.paused {
		err = m.game.Run()
	} else {
		err = m.game.Pause()
	}
	if err != nil {
		m.opts.Logger.Warn("cannot toggle pause", "paused", m.paused, "err", err)
		return
	}
	m.paused = !m.paused
}

// handleFrame records a finished game once and schedules the next frame.
func (m GameModel) handleFrame() (tea.Model, tea.Cmd) {
	if m.game.IsGameOver() && !m.saved {
		m.saveResult()
		m.saved = true
	}
	return m, frameCmd(m.opts.Config.Engine.TickRate)
}

func (m GameModel) saveResult() {
	lines := m.game.Lines()
	ticks := m.game.Ticks()
	m.opts.Logger.Info("game over", "mode", m.opts.Preset.Mode(), "lines", lines, "player", m.opts.Player)

	if m.opts.Store == nil || lines == 0 {
		return
	}
	_, err := m.opts.Store.SaveResult(storage.Result{
		Mode:     m.opts.Preset.Mode(),
		Player:   m.opts.Player,
		Lines:    lines,
		Level:    m.difficulty.DisplayLevel(lines, ticks),
		Ticks:    ticks,
		Duration: time.Since(m.started),
	})
	if err != nil {
		m.opts.Logger.Error("cannot save result", "err", err)
	}
}

// board builds the renderer's view of the latest snapshot.
func (m GameModel) board() tetris.Board {
	snap := m.buffer.SwapAndRead()
	b := tetris.Board{
		Field:    &snap.Field,
		Ghost:    true,
		Paused:   m.paused,
		GameOver: m.game.IsGameOver(),
		Title:    fmt.Sprintf("TETRIS %s", m.opts.Preset),
	}
	if snap.Ready() {
		b.Current = &snap.Current
		b.Lines = snap.Field.Score()
		b.Level = m.difficulty.DisplayLevel(b.Lines, m.game.Ticks())
	} else {
		b.Level = m.difficulty.DisplayLevel(0, 0)
	}
	if m.best > 0 {
		b.Hints = append(b.Hints, fmt.Sprintf("Best: %d", m.best))
	}
	return b
}

// saveScreenshot writes the current screen to ~/.tetris/screenshots.
func (m GameModel) saveScreenshot() {
	m.board().Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.opts.Preset.Mode(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.board().Render(m.screen)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Close stops the engine. It is safe to call more than once.
func (m GameModel) Close() {
	if m.game != nil {
		m.game.Close()
	}
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(opts GameOptions) error {
	model := NewGameModel(opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()

	model.Close()
	if fm, ok := final.(GameModel); ok {
		fm.Close()
	}
	return err
}
