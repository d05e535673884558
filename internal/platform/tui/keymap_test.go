package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKeyMapInput(t *testing.T) {
	keys := NewGameKeyMap(config.DefaultTetrisConfig().Controls)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Input
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.InputShiftLeft},
		{"a", runeKey('a'), core.InputShiftLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.InputShiftRight},
		{"l", runeKey('l'), core.InputShiftRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.InputRotateCW},
		{"x", runeKey('x'), core.InputRotateCW},
		{"z", runeKey('z'), core.InputRotateCCW},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.InputHardDrop},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.InputHardDrop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keys.Input(tt.msg)
			if !ok {
				t.Fatalf("Input(%q) not mapped", tt.msg.String())
			}
			if got != tt.want {
				t.Errorf("Input(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestGameKeyMapIgnoresControlKeys(t *testing.T) {
	keys := NewGameKeyMap(config.DefaultTetrisConfig().Controls)

	for _, msg := range []tea.KeyMsg{runeKey('p'), runeKey('r'), runeKey('q'), tea.KeyMsg{Type: tea.KeyDown}} {
		if in, ok := keys.Input(msg); ok {
			t.Errorf("Input(%q) = %v, expected no game input", msg.String(), in)
		}
	}
}

func TestGameKeyMapCustomControls(t *testing.T) {
	controls := config.DefaultTetrisConfig().Controls
	controls.HardDrop = []string{"s"}
	keys := NewGameKeyMap(controls)

	if in, ok := keys.Input(runeKey('s')); !ok || in != core.InputHardDrop {
		t.Errorf("Input(s) = %v, %v; expected hard drop", in, ok)
	}
	if _, ok := keys.Input(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}); ok {
		t.Error("space should no longer drop")
	}
}

func TestHelpKeys(t *testing.T) {
	tests := []struct {
		keys []string
		want string
	}{
		{[]string{"left", "a", "h"}, "←/a"},
		{[]string{" ", "enter"}, "space/enter"},
		{[]string{"r"}, "r"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := helpKeys(tt.keys); got != tt.want {
			t.Errorf("helpKeys(%q) = %q, expected %q", tt.keys, got, tt.want)
		}
	}
}
