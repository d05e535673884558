// Package tetris implements the rules of Tetris: a fixed-size playfield that
// clears full rows, and a falling piece that shifts, rotates (SRS orientation
// without wall kicks), descends under gravity and locks into the field.
package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Field dimensions. Rows VisibleHeight and above are the spawn area that sits
// above the visible field.
const (
	Width         = 10
	Height        = 22
	VisibleHeight = 20
)

// Field stores settled blocks and the number of cleared lines.
//
// It enforces two rules continuously: no row is ever full after a mutating
// call returns, and every empty row lies above every non-empty row. Blocks can
// be inserted but never removed except by a line clear.
//
// Field is a plain value; copying it copies the whole grid.
type Field struct {
	blocks [Width * Height]bool // index x + y*Width, y=0 is the bottom row
	score  int
}

// NewField returns an empty field.
func NewField() *Field {
	return &Field{}
}

// NewFieldFromRow returns a field whose bottom row holds the given blocks.
// A full row is cleared immediately.
func NewFieldFromRow(row []bool) (*Field, error) {
	if len(row) != Width {
		return nil, fmt.Errorf("%w: row has %d columns, expected %d", ErrFieldSize, len(row), Width)
	}

	f := NewField()
	copy(f.blocks[:Width], row)
	f.checkLine(0)
	return f, nil
}

// NewFieldFromBlocks returns a field built from a Width x Height description
// indexed as blocks[x][y]. Full rows are cleared from the bottom up, so rows
// above a cleared row fall into place before they are examined.
func NewFieldFromBlocks(blocks [][]bool) (*Field, error) {
	if len(blocks) != Width {
		return nil, fmt.Errorf("%w: %d columns, expected %d", ErrFieldSize, len(blocks), Width)
	}
	for x, col := range blocks {
		if len(col) != Height {
			return nil, fmt.Errorf("%w: column %d has %d rows, expected %d", ErrFieldSize, x, len(col), Height)
		}
	}

	f := NewField()
	for x, col := range blocks {
		for y, filled := range col {
			f.blocks[index(x, y)] = filled
		}
	}
	f.checkLines()
	return f, nil
}

func index(x, y int) int {
	return x + y*Width
}

func inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Get reports whether the cell at (x, y) holds a block.
func (f *Field) Get(x, y int) (bool, error) {
	if !inBounds(x, y) {
		return false, fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, x, y)
	}
	return f.blocks[index(x, y)], nil
}

// GetCoord is Get for a Coord.
func (f *Field) GetCoord(c core.Coord) (bool, error) {
	return f.Get(c.X, c.Y)
}

// Set inserts a block at (x, y) and clears the row if it became full.
func (f *Field) Set(x, y int) error {
	if !inBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, x, y)
	}
	i := index(x, y)
	if f.blocks[i] {
		return fmt.Errorf("%w: (%d, %d)", ErrDuplicateBlock, x, y)
	}
	f.blocks[i] = true
	f.checkLine(y)
	return nil
}

// SetCoord is Set for a Coord.
func (f *Field) SetCoord(c core.Coord) error {
	return f.Set(c.X, c.Y)
}

// Score returns the number of lines cleared so far.
func (f *Field) Score() int {
	return f.score
}

// ResetScore sets the line count to zero.
func (f *Field) ResetScore() {
	f.score = 0
}

// ResetBlocks empties every cell.
func (f *Field) ResetBlocks() {
	f.blocks = [Width * Height]bool{}
}

// free reports whether c is inside the field and empty.
func (f *Field) free(c core.Coord) bool {
	return inBounds(c.X, c.Y) && !f.blocks[index(c.X, c.Y)]
}

// checkLines applies checkLine to every row from the bottom up. A row that
// falls into a cleared slot is examined again before moving on.
func (f *Field) checkLines() {
	for y := 0; y < Height; {
		if !f.checkLine(y) {
			y++
		}
	}
}

// checkLine clears row y if it is full, moving every row above it down by
// one. It reports whether the row was cleared.
func (f *Field) checkLine(y int) bool {
	row := y * Width
	for x := 0; x < Width; x++ {
		if !f.blocks[row+x] {
			return false
		}
	}

	f.score++
	copy(f.blocks[row:], f.blocks[row+Width:])
	top := (Height - 1) * Width
	for i := top; i < len(f.blocks); i++ {
		f.blocks[i] = false
	}
	return true
}

// String renders the field as text, top row first: '#' for a block and '.'
// for an empty cell.
func (f *Field) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)
	for y := Height - 1; y >= 0; y-- {
		for x := 0; x < Width; x++ {
			if f.blocks[index(x, y)] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
