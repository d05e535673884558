package engine

import (
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// Snapshot is a self-contained copy of the game state at the end of a tick.
// Current and Held refer to the snapshot's own Field, so their geometry
// queries stay consistent with it.
type Snapshot struct {
	Field   tetris.Field
	Current tetris.Piece
	Held    tetris.Piece
	HasHeld bool

	// Seq counts the writes up to and including this one. It is zero until
	// the first write.
	Seq uint64
}

// Ready reports whether the snapshot holds published state.
func (s *Snapshot) Ready() bool {
	return s.Seq > 0
}

// DoubleBuffer hands the state of the game goroutine to a reader without
// letting either side see the other's half-finished work. The writer fills
// the slot that is not being read; the reader flips slots only when new data
// is pending.
//
// A snapshot returned by SwapAndRead stays valid until the next call to
// SwapAndRead, which makes DoubleBuffer suitable for a single reader.
type DoubleBuffer struct {
	mu    sync.Mutex
	slots [2]Snapshot
	read  int
	dirty bool
	seq   uint64
}

// NewDoubleBuffer creates an empty buffer.
func NewDoubleBuffer() *DoubleBuffer {
	return &DoubleBuffer{}
}

// Write copies the state into the slot that is not being read. Its
// signature matches RenderFunc, so it can be installed directly as a
// renderer.
func (b *DoubleBuffer) Write(field *tetris.Field, current *tetris.Piece, held *tetris.Piece) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := &b.slots[1-b.read]
	s.Field = *field
	s.Current = current.CloneOnto(&s.Field)
	s.HasHeld = held != nil
	if held != nil {
		s.Held = held.CloneOnto(&s.Field)
	} else {
		s.Held = tetris.Piece{}
	}
	b.seq++
	s.Seq = b.seq
	b.dirty = true
}

// SwapAndRead returns the most recently written snapshot.
func (b *DoubleBuffer) SwapAndRead() *Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.dirty {
		b.read = 1 - b.read
		b.dirty = false
	}
	return &b.slots[b.read]
}
