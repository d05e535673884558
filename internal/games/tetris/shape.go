package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Shape identifies one of the seven tetrominoes.
type Shape int

const (
	ShapeI Shape = iota
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
)

// Shapes lists every shape in declaration order.
var Shapes = []Shape{ShapeI, ShapeJ, ShapeL, ShapeO, ShapeS, ShapeT, ShapeZ}

// String returns the single-letter name of the shape.
func (s Shape) String() string {
	if s.Valid() {
		return "IJLOSTZ"[s : s+1]
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Valid reports whether s is one of the seven tetrominoes.
func (s Shape) Valid() bool {
	return s >= ShapeI && s <= ShapeZ
}

// ParseShape converts a single letter such as "T" into a Shape.
func ParseShape(name string) (Shape, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for _, s := range Shapes {
		if s.String() == n {
			return s, nil
		}
	}
	return 0, fmt.Errorf("tetris: unknown shape %q", name)
}

// I and O rotate about a point between cells, so their centers sit one cell
// to the right (and for O, one row up) of the block the offsets are measured
// from.
var (
	originI     = core.C(5, 20)
	originO     = core.C(5, 21)
	originOther = core.C(4, 20)
)

// spawnOffsets holds the spawn orientation of each shape, relative to its
// center.
var spawnOffsets = [...][4]core.Coord{
	ShapeI: {core.C(-2, 0), core.C(-1, 0), core.C(0, 0), core.C(1, 0)},
	ShapeJ: {core.C(-1, 0), core.C(-1, 1), core.C(0, 0), core.C(1, 0)},
	ShapeL: {core.C(-1, 0), core.C(0, 0), core.C(1, 0), core.C(1, 1)},
	ShapeO: {core.C(-1, -1), core.C(-1, 0), core.C(0, -1), core.C(0, 0)},
	ShapeS: {core.C(-1, 0), core.C(0, 1), core.C(0, 0), core.C(1, 1)},
	ShapeT: {core.C(-1, 0), core.C(0, 1), core.C(0, 0), core.C(1, 0)},
	ShapeZ: {core.C(-1, 1), core.C(0, 1), core.C(0, 0), core.C(1, 0)},
}

func spawnCenter(s Shape) core.Coord {
	switch s {
	case ShapeI:
		return originI
	case ShapeO:
		return originO
	default:
		return originOther
	}
}

func rotateCW(c core.Coord) core.Coord {
	return core.C(c.Y, -c.X)
}

func rotateCCW(c core.Coord) core.Coord {
	return core.C(-c.Y, c.X)
}

// rotateI rotates an I offset about the half-cell axis. Non-negative
// components are pushed one cell outward so the offset is symmetric about the
// true axis, rotated, and then pulled back.
func rotateI(c core.Coord, cw bool) core.Coord {
	if c.X >= 0 {
		c.X++
	}
	if c.Y >= 0 {
		c.Y++
	}
	if cw {
		c = rotateCW(c)
	} else {
		c = rotateCCW(c)
	}
	if c.X > 0 {
		c.X--
	}
	if c.Y > 0 {
		c.Y--
	}
	return c
}
