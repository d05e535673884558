package engine

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// Defaults used when no option overrides them.
const (
	DefaultTickRate     = 60
	DefaultGravityTicks = 30
	DefaultLockDelay    = 5
)

// GravityFunc returns the number of ticks between gravity steps, given the
// lines cleared and the ticks elapsed so far. It is consulted every tick, so
// it can speed the game up as play goes on. Values below zero count as zero,
// which applies gravity on every tick.
type GravityFunc func(lines int, ticks uint64) int

// FixedGravity returns a GravityFunc that always answers ticks.
func FixedGravity(ticks int) GravityFunc {
	return func(int, uint64) int { return ticks }
}

// RenderFunc receives the state at the end of every tick. It runs on the
// game goroutine and must neither keep the pointers nor call back into the
// Game. held is nil when no piece is held.
type RenderFunc func(field *tetris.Field, current *tetris.Piece, held *tetris.Piece)

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. By default the game logs nowhere.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithSource sets where new piece shapes come from.
func WithSource(src tetris.Source) Option {
	return func(g *Game) {
		if src != nil {
			g.source = src
		}
	}
}

// WithTickRate sets the number of ticks per second. Non-positive values are
// ignored.
func WithTickRate(rate int) Option {
	return func(g *Game) {
		if rate > 0 {
			g.tickRate = rate
		}
	}
}

// WithLockDelay sets the lock delay given to every new piece.
func WithLockDelay(delay int) Option {
	return func(g *Game) {
		if delay >= 0 {
			g.lockDelay = delay
		}
	}
}

// WithGravity sets the gravity schedule.
func WithGravity(fn GravityFunc) Option {
	return func(g *Game) {
		if fn != nil {
			g.gravity = fn
		}
	}
}

// WithRenderer installs the per-tick callback, as SetRenderer does.
func WithRenderer(fn RenderFunc) Option {
	return func(g *Game) {
		g.render = fn
	}
}
