package tetris

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Piece is the falling tetromino.
//
// A piece enters play in the two rows above the visible field. It is driven
// by TimeStep, called by the game loop whenever gravity is due, and by
// HandleInput. Either a grounded TimeStep whose lock delay has run out or a
// hard drop locks the piece: its four cells are written into the Field and
// the call that caused the lock returns true. A locked piece never changes
// again; every further mutating call returns ErrPieceLocked, while Blocks and
// Center keep reporting its final position.
type Piece struct {
	shape     Shape
	relative  [4]core.Coord
	center    core.Coord
	lockDelay int // remaining grounded steps before locking
	baseDelay int
	field     *Field
	locked    bool
}

// NewPiece creates a piece of the given shape at its spawn position. A
// negative lock delay is treated as zero.
func NewPiece(shape Shape, lockDelay int, field *Field) *Piece {
	if lockDelay < 0 {
		lockDelay = 0
	}
	return &Piece{
		shape:     shape,
		relative:  spawnOffsets[shape],
		center:    spawnCenter(shape),
		lockDelay: lockDelay,
		baseDelay: lockDelay,
		field:     field,
	}
}

// Shape returns the piece's tetromino kind.
func (p *Piece) Shape() Shape {
	return p.shape
}

// Center returns the piece's axis of rotation.
func (p *Piece) Center() core.Coord {
	return p.center
}

// Blocks returns the absolute coordinates of the piece's four cells.
func (p *Piece) Blocks() [4]core.Coord {
	return absolute(p.relative, p.center)
}

// Locked reports whether the piece has been committed to the field.
func (p *Piece) Locked() bool {
	return p.locked
}

// LockDelay returns the number of grounded steps left before the piece locks.
func (p *Piece) LockDelay() int {
	return p.lockDelay
}

// BaseLockDelay returns the lock delay the piece was created with.
func (p *Piece) BaseLockDelay() int {
	return p.baseDelay
}

// Fits reports whether all four cells are inside the field and empty. It is
// false only for a piece spawned onto occupied cells.
func (p *Piece) Fits() bool {
	return p.canPlace(p.Blocks())
}

// DropDistance returns how many rows the piece can fall before it is grounded.
func (p *Piece) DropDistance() int {
	d := 0
	for p.canShift(core.C(0, -(d + 1))) {
		d++
	}
	return d
}

// GhostBlocks returns the cells the piece would occupy after a hard drop.
func (p *Piece) GhostBlocks() [4]core.Coord {
	return absolute(p.relative, p.center.Add(core.C(0, -p.DropDistance())))
}

// CloneOnto returns a copy of the piece that refers to f instead of the
// original field. Snapshots use it to keep a piece consistent with their own
// copy of the field.
func (p *Piece) CloneOnto(f *Field) Piece {
	c := *p
	c.field = f
	return c
}

// HandleInput applies a player input. A shift or rotation that would leave
// the field or overlap a block is ignored. It reports whether the piece
// locked, which only a hard drop can cause.
func (p *Piece) HandleInput(in core.Input) (bool, error) {
	if p.locked {
		return false, ErrPieceLocked
	}

	switch in {
	case core.InputShiftLeft:
		if p.canShift(core.C(-1, 0)) {
			p.center.X--
		}
	case core.InputShiftRight:
		if p.canShift(core.C(1, 0)) {
			p.center.X++
		}
	case core.InputRotateCW:
		p.rotate(true)
	case core.InputRotateCCW:
		p.rotate(false)
	case core.InputHardDrop:
		// Enough steps to fall the full height and run out any lock delay.
		return p.TimeStep(Height + p.lockDelay)
	default:
		return false, fmt.Errorf("tetris: unsupported input %s", in)
	}
	return p.locked, nil
}

// TimeStep advances the piece by g gravity steps. Each step moves the piece
// down one row if it can; a step that leaves the piece grounded spends one
// unit of lock delay, and a grounded step with no delay left locks the piece
// and ends the call early. It reports whether the piece locked.
func (p *Piece) TimeStep(g int) (bool, error) {
	if p.locked {
		return false, ErrPieceLocked
	}

	for i := 0; i < g; i++ {
		if p.canDrop() {
			p.center.Y--
			if p.canDrop() {
				continue
			}
		}
		if p.lockDelay == 0 {
			if err := p.lock(); err != nil {
				return false, err
			}
			break
		}
		p.lockDelay--
	}
	return p.locked, nil
}

func (p *Piece) canDrop() bool {
	return p.canShift(core.C(0, -1))
}

func (p *Piece) canShift(d core.Coord) bool {
	return p.canPlace(absolute(p.relative, p.center.Add(d)))
}

func (p *Piece) canPlace(blocks [4]core.Coord) bool {
	for _, b := range blocks {
		if !p.field.free(b) {
			return false
		}
	}
	return true
}

func (p *Piece) rotate(cw bool) {
	if p.shape == ShapeO {
		return
	}

	var rotated [4]core.Coord
	for i, c := range p.relative {
		switch {
		case p.shape == ShapeI:
			rotated[i] = rotateI(c, cw)
		case cw:
			rotated[i] = rotateCW(c)
		default:
			rotated[i] = rotateCCW(c)
		}
	}

	if p.canPlace(absolute(rotated, p.center)) {
		p.relative = rotated
	}
}

// lock writes the piece into the field, topmost cells first. A line clear
// only moves rows above the cleared one, so writing from the top down keeps
// the cells still to be written where they belong.
func (p *Piece) lock() error {
	blocks := p.Blocks()
	sort.Slice(blocks[:], func(i, j int) bool {
		return blocks[i].Y > blocks[j].Y
	})
	for _, b := range blocks {
		if err := p.field.SetCoord(b); err != nil {
			return fmt.Errorf("tetris: cannot lock %s piece: %w", p.shape, err)
		}
	}
	p.locked = true
	return nil
}

func absolute(relative [4]core.Coord, center core.Coord) [4]core.Coord {
	var out [4]core.Coord
	for i, r := range relative {
		out[i] = r.Add(center)
	}
	return out
}
