package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// GameKeyMap defines the key bindings used while playing. It is built from
// the controls section of the configuration.
type GameKeyMap struct {
	ShiftLeft  key.Binding
	ShiftRight key.Binding
	RotateCW   key.Binding
	RotateCCW  key.Binding
	HardDrop   key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// NewGameKeyMap creates game bindings from configured key lists.
func NewGameKeyMap(c config.ControlsConfig) GameKeyMap {
	return GameKeyMap{
		ShiftLeft:  binding(c.ShiftLeft, "left"),
		ShiftRight: binding(c.ShiftRight, "right"),
		RotateCW:   binding(c.RotateCW, "rotate"),
		RotateCCW:  binding(c.RotateCCW, "rotate back"),
		HardDrop:   binding(c.HardDrop, "drop"),
		Pause:      binding(c.Pause, "pause"),
		Restart:    binding(c.Restart, "restart"),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		Quit: binding(c.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

// helpKeys renders a key list for help text. Only the first two keys are
// shown to keep the help line short.
func helpKeys(keys []string) string {
	if len(keys) > 2 {
		keys = keys[:2]
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		switch k {
		case " ":
			names[i] = "space"
		case "left":
			names[i] = "←"
		case "right":
			names[i] = "→"
		case "up":
			names[i] = "↑"
		case "down":
			names[i] = "↓"
		default:
			names[i] = k
		}
	}
	return strings.Join(names, "/")
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ShiftLeft, k.ShiftRight, k.RotateCW, k.HardDrop, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ShiftLeft, k.ShiftRight, k.RotateCW, k.RotateCCW, k.HardDrop},
		{k.Pause, k.Restart, k.Back, k.Quit},
	}
}

// Input translates a key message into a game input.
func (k GameKeyMap) Input(msg tea.KeyMsg) (core.Input, bool) {
	switch {
	case key.Matches(msg, k.ShiftLeft):
		return core.InputShiftLeft, true
	case key.Matches(msg, k.ShiftRight):
		return core.InputShiftRight, true
	case key.Matches(msg, k.RotateCW):
		return core.InputRotateCW, true
	case key.Matches(msg, k.RotateCCW):
		return core.InputRotateCCW, true
	case key.Matches(msg, k.HardDrop):
		return core.InputHardDrop, true
	}
	return 0, false
}

// MenuKeyMap defines the key bindings for the difficulty menu.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Scoreboard key.Binding
	Quit       key.Binding
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scoreboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
