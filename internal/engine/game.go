// Package engine runs a game of Tetris on its own goroutine at a fixed tick
// rate and publishes the state of every tick to a renderer.
package engine

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// Game owns a playfield and its falling piece and advances them on a
// background goroutine.
//
// Every tick drains the input queue in FIFO order, applies gravity once
// enough ticks have passed, and hands the result to the renderer. A piece
// that locks is replaced immediately by a new one from the Source; if the new
// piece has no room the game is over, that tick is still published and the
// goroutine exits.
//
// Run, Pause, SetRenderer and Close serialize with the tick itself, so once
// Pause returns no tick is in progress and none will start until the next
// Run. QueueInput only takes the queue lock and may be called from any
// goroutine.
type Game struct {
	mu         sync.Mutex
	cond       *sync.Cond
	continuing bool // false once Close has been called
	started    bool
	closed     atomic.Bool
	running    atomic.Bool
	gameOver   atomic.Bool

	inputMu sync.Mutex
	inputs  []core.Input

	// Owned by the tick; guarded by mu.
	field     *tetris.Field
	current   *tetris.Piece
	timeCount int
	render    RenderFunc

	source    tetris.Source
	tickRate  int
	lockDelay int
	gravity   GravityFunc
	logger    *log.Logger

	ticks atomic.Uint64
	lines atomic.Int64

	stop      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// New creates a paused game with an empty field. The first call to Run
// spawns the first piece and starts ticking.
func New(opts ...Option) *Game {
	g := &Game{
		continuing: true,
		field:      tetris.NewField(),
		source:     tetris.NewRandomSource(time.Now().UnixNano()),
		tickRate:   DefaultTickRate,
		lockDelay:  DefaultLockDelay,
		gravity:    FixedGravity(DefaultGravityTicks),
		logger:     log.New(io.Discard),
		stop:       make(chan struct{}),
	}
	g.cond = sync.NewCond(&g.mu)
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run starts the game on its first call and resumes it afterwards.
func (g *Game) Run() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch {
	case !g.continuing:
		return ErrGameClosed
	case g.gameOver.Load():
		return ErrGameOver
	case g.running.Load():
		return ErrGameRunning
	}

	if !g.started {
		g.started = true
		g.timeCount = 0
		g.spawn()
		g.wg.Add(1)
		go g.loop()
		g.logger.Info("game started", "tick_rate", g.tickRate, "lock_delay", g.lockDelay)
	} else {
		g.logger.Info("game resumed", "tick", g.ticks.Load())
	}

	g.running.Store(true)
	g.cond.Broadcast()
	return nil
}

// Pause stops ticking after the current tick. The field, the falling piece
// and any queued inputs are kept for the next Run.
func (g *Game) Pause() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.continuing {
		return ErrGameClosed
	}
	if !g.running.Load() {
		return ErrGameNotRunning
	}
	g.running.Store(false)
	g.logger.Info("game paused", "tick", g.ticks.Load())
	return nil
}

// QueueInput schedules an input for the next tick.
func (g *Game) QueueInput(in core.Input) error {
	if !in.Valid() {
		return fmt.Errorf("engine: unsupported input %s", in)
	}
	if g.closed.Load() {
		return ErrGameClosed
	}
	if !g.running.Load() {
		return ErrGameNotRunning
	}

	g.inputMu.Lock()
	g.inputs = append(g.inputs, in)
	g.inputMu.Unlock()
	return nil
}

// SetRenderer installs the per-tick callback. A nil callback disables
// publishing. The game must not be running.
func (g *Game) SetRenderer(fn RenderFunc) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.continuing {
		return ErrGameClosed
	}
	if g.running.Load() {
		return ErrGameRunning
	}
	g.render = fn
	return nil
}

// Close stops the game goroutine and waits for it to exit, waking it if it
// is paused. It is safe to call more than once but must not be called from
// the renderer.
func (g *Game) Close() {
	g.closeOnce.Do(func() {
		g.mu.Lock()
		g.continuing = false
		g.closed.Store(true)
		g.running.Store(false)
		g.cond.Broadcast()
		g.mu.Unlock()

		close(g.stop)
		g.wg.Wait()
		g.logger.Debug("game closed", "tick", g.ticks.Load(), "lines", g.lines.Load())
	})
}

// IsRunning reports whether the game is ticking.
func (g *Game) IsRunning() bool {
	return g.running.Load()
}

// IsGameOver reports whether a new piece has failed to fit.
func (g *Game) IsGameOver() bool {
	return g.gameOver.Load()
}

// Lines returns the number of lines cleared so far.
func (g *Game) Lines() int {
	return int(g.lines.Load())
}

// Ticks returns the number of ticks played so far.
func (g *Game) Ticks() uint64 {
	return g.ticks.Load()
}

// loop paces ticks against a deadline that advances by one interval per tick.
// When the loop falls far behind, or has been parked, the deadline restarts
// from now instead of firing a burst of catch-up ticks.
func (g *Game) loop() {
	defer g.wg.Done()

	interval := time.Second / time.Duration(g.tickRate)
	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	next := time.Now()
	for {
		g.mu.Lock()
		parked := false
		for !g.running.Load() && g.continuing {
			parked = true
			g.cond.Wait()
		}
		if !g.continuing {
			g.mu.Unlock()
			return
		}
		over := g.tick()
		g.mu.Unlock()

		if over {
			return
		}

		now := time.Now()
		if parked {
			next = now
		}
		next = next.Add(interval)
		if now.Sub(next) > 2*interval {
			next = now.Add(interval)
		}

		wait := time.Until(next)
		if wait <= 0 {
			continue
		}
		timer.Reset(wait)
		select {
		case <-timer.C:
		case <-g.stop:
			return
		}
	}
}

// tick runs one step of the game with mu held. It reports whether the game
// ended during the step.
func (g *Game) tick() bool {
	g.inputMu.Lock()
	inputs := g.inputs
	g.inputs = nil
	g.inputMu.Unlock()

	for _, in := range inputs {
		if g.gameOver.Load() {
			break
		}
		locked, err := g.current.HandleInput(in)
		if err != nil {
			g.logger.Error("input rejected", "input", in, "err", err)
			continue
		}
		if locked {
			g.pieceLocked()
		}
	}

	if !g.gameOver.Load() {
		threshold := g.gravity(g.field.Score(), g.ticks.Load())
		if g.timeCount >= threshold {
			g.timeCount = 0
			locked, err := g.current.TimeStep(1)
			if err != nil {
				g.logger.Error("gravity step failed", "err", err)
			} else if locked {
				g.pieceLocked()
			}
		} else {
			g.timeCount++
		}
	}

	g.ticks.Add(1)
	g.lines.Store(int64(g.field.Score()))

	if g.render != nil {
		g.render(g.field, g.current, nil)
	}
	return g.gameOver.Load()
}

func (g *Game) pieceLocked() {
	cleared := g.field.Score() - int(g.lines.Load())
	g.lines.Store(int64(g.field.Score()))
	g.logger.Debug("piece locked", "shape", g.current.Shape(), "center", g.current.Center())
	if cleared > 0 {
		g.logger.Debug("lines cleared", "count", cleared, "total", g.field.Score())
	}
	g.spawn()
}

// spawn replaces the falling piece. A piece that does not fit ends the game.
func (g *Game) spawn() {
	g.current = tetris.NewPiece(g.source.Next(), g.lockDelay, g.field)
	g.logger.Debug("piece spawned", "shape", g.current.Shape())

	if !g.current.Fits() {
		g.gameOver.Store(true)
		g.running.Store(false)
		g.logger.Info("game over", "lines", g.field.Score(), "tick", g.ticks.Load())
	}
}
