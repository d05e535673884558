// Package tui is the Bubble Tea front end: it draws snapshots published by
// the game engine, forwards key presses to it, and hosts the menu,
// scoreboard and SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent when the next frame should be drawn.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends a frame message after one
// frame at the given rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
