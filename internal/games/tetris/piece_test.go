package tetris

import (
	"errors"
	"sort"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func sortedBlocks(blocks [4]core.Coord) [4]core.Coord {
	sort.Slice(blocks[:], func(i, j int) bool {
		if blocks[i].Y != blocks[j].Y {
			return blocks[i].Y < blocks[j].Y
		}
		return blocks[i].X < blocks[j].X
	})
	return blocks
}

func expectBlocks(t *testing.T, p *Piece, want ...core.Coord) {
	t.Helper()
	var w [4]core.Coord
	copy(w[:], want)
	if got := sortedBlocks(p.Blocks()); got != sortedBlocks(w) {
		t.Fatalf("Blocks() = %v, expected %v", got, sortedBlocks(w))
	}
}

func TestSpawnPositions(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []core.Coord
	}{
		{ShapeI, []core.Coord{core.C(3, 20), core.C(4, 20), core.C(5, 20), core.C(6, 20)}},
		{ShapeO, []core.Coord{core.C(4, 20), core.C(5, 20), core.C(4, 21), core.C(5, 21)}},
		{ShapeT, []core.Coord{core.C(3, 20), core.C(4, 20), core.C(5, 20), core.C(4, 21)}},
		{ShapeJ, []core.Coord{core.C(3, 20), core.C(4, 20), core.C(5, 20), core.C(3, 21)}},
		{ShapeL, []core.Coord{core.C(3, 20), core.C(4, 20), core.C(5, 20), core.C(5, 21)}},
		{ShapeS, []core.Coord{core.C(3, 20), core.C(4, 20), core.C(4, 21), core.C(5, 21)}},
		{ShapeZ, []core.Coord{core.C(4, 20), core.C(5, 20), core.C(3, 21), core.C(4, 21)}},
	}

	for _, tc := range tests {
		t.Run(tc.shape.String(), func(t *testing.T) {
			p := NewPiece(tc.shape, 0, NewField())
			expectBlocks(t, p, tc.want...)
			if !p.Fits() {
				t.Error("spawned piece should fit an empty field")
			}
			if p.Locked() {
				t.Error("spawned piece should not be locked")
			}
		})
	}
}

func TestIRotatesAboutHalfCellAxis(t *testing.T) {
	p := NewPiece(ShapeI, 0, NewField())

	if _, err := p.HandleInput(core.InputRotateCW); err != nil {
		t.Fatalf("rotate failed: %v", err)
	}
	expectBlocks(t, p, core.C(5, 18), core.C(5, 19), core.C(5, 20), core.C(5, 21))

	if _, err := p.HandleInput(core.InputRotateCCW); err != nil {
		t.Fatalf("rotate failed: %v", err)
	}
	expectBlocks(t, p, core.C(3, 20), core.C(4, 20), core.C(5, 20), core.C(6, 20))
}

func TestITwoClockwiseRotationsStayCentered(t *testing.T) {
	p := NewPiece(ShapeI, 0, NewField())

	for i := 0; i < 2; i++ {
		if _, err := p.HandleInput(core.InputRotateCW); err != nil {
			t.Fatalf("rotate %d failed: %v", i+1, err)
		}
	}
	// Back to horizontal, one row lower, about the same half-cell axis.
	expectBlocks(t, p, core.C(3, 19), core.C(4, 19), core.C(5, 19), core.C(6, 19))
	if p.Center() != core.C(5, 20) {
		t.Errorf("Center() = %s, expected (5, 20)", p.Center())
	}
}

func TestFourRotationsRestoreOrientation(t *testing.T) {
	for _, s := range Shapes {
		for _, in := range []core.Input{core.InputRotateCW, core.InputRotateCCW} {
			p := NewPiece(s, 0, NewField())
			// Move down so no orientation reaches above the field.
			if _, err := p.TimeStep(5); err != nil {
				t.Fatalf("%s: TimeStep failed: %v", s, err)
			}
			start := sortedBlocks(p.Blocks())

			for i := 0; i < 4; i++ {
				if _, err := p.HandleInput(in); err != nil {
					t.Fatalf("%s: %s failed: %v", s, in, err)
				}
				if i < 3 && s != ShapeO && sortedBlocks(p.Blocks()) == start {
					t.Errorf("%s: %s #%d left the piece unchanged", s, in, i+1)
				}
			}
			if got := sortedBlocks(p.Blocks()); got != start {
				t.Errorf("%s: four %s rotations gave %v, expected %v", s, in, got, start)
			}
		}
	}
}

func TestRotationBlocked(t *testing.T) {
	f := NewField()
	mustSet(t, f, 5, 19)
	p := NewPiece(ShapeI, 0, f)
	before := p.Blocks()

	locked, err := p.HandleInput(core.InputRotateCW)
	if err != nil || locked {
		t.Fatalf("HandleInput() = %v, %v", locked, err)
	}
	if p.Blocks() != before {
		t.Errorf("blocked rotation moved the piece to %v", p.Blocks())
	}
}

func TestShiftStopsAtWalls(t *testing.T) {
	p := NewPiece(ShapeT, 0, NewField())

	for i := 0; i < Width; i++ {
		if _, err := p.HandleInput(core.InputShiftLeft); err != nil {
			t.Fatalf("shift left failed: %v", err)
		}
	}
	if p.Center() != core.C(1, 20) {
		t.Errorf("center after shifting left = %s, expected (1, 20)", p.Center())
	}

	for i := 0; i < Width; i++ {
		if _, err := p.HandleInput(core.InputShiftRight); err != nil {
			t.Fatalf("shift right failed: %v", err)
		}
	}
	if p.Center() != core.C(Width-2, 20) {
		t.Errorf("center after shifting right = %s, expected (%d, 20)", p.Center(), Width-2)
	}
}

func TestShiftBlockedByBlock(t *testing.T) {
	f := NewField()
	mustSet(t, f, 2, 20)
	p := NewPiece(ShapeT, 0, f)

	if _, err := p.HandleInput(core.InputShiftLeft); err != nil {
		t.Fatalf("shift failed: %v", err)
	}
	if p.Center() != core.C(4, 20) {
		t.Errorf("blocked shift moved center to %s", p.Center())
	}
}

func TestLockDelay(t *testing.T) {
	f := NewField()
	p := NewPiece(ShapeO, 3, f)

	// Twenty steps bring the O from the spawn rows to the floor; the landing
	// step already spends one unit of delay.
	locked, err := p.TimeStep(20)
	if err != nil || locked {
		t.Fatalf("TimeStep(20) = %v, %v", locked, err)
	}
	expectBlocks(t, p, core.C(4, 0), core.C(5, 0), core.C(4, 1), core.C(5, 1))
	if p.LockDelay() != 2 {
		t.Fatalf("LockDelay() = %d, expected 2", p.LockDelay())
	}

	for i := 0; i < 2; i++ {
		if locked, err := p.TimeStep(1); err != nil || locked {
			t.Fatalf("grounded step %d: %v, %v", i, locked, err)
		}
	}
	if got, _ := f.Get(4, 0); got {
		t.Fatal("piece was written before locking")
	}

	locked, err = p.TimeStep(1)
	if err != nil || !locked {
		t.Fatalf("final grounded step = %v, %v, expected lock", locked, err)
	}
	if p.BaseLockDelay() != 3 {
		t.Errorf("BaseLockDelay() = %d", p.BaseLockDelay())
	}
	expectField(t, f, func(x, y int) bool { return (x == 4 || x == 5) && y <= 1 })

	// Once locked by gravity the piece refuses further calls but keeps its
	// last position.
	if _, err := p.TimeStep(1); !errors.Is(err, ErrPieceLocked) {
		t.Errorf("TimeStep after lock error = %v, expected ErrPieceLocked", err)
	}
	if _, err := p.HandleInput(core.InputShiftLeft); !errors.Is(err, ErrPieceLocked) {
		t.Errorf("HandleInput after lock error = %v, expected ErrPieceLocked", err)
	}
	expectBlocks(t, p, core.C(4, 0), core.C(5, 0), core.C(4, 1), core.C(5, 1))
}

func TestShiftDuringLockDelay(t *testing.T) {
	f := NewField()
	mustSet(t, f, 4, 0)
	p := NewPiece(ShapeO, 5, f)

	// Lands on the block at (4, 0).
	if locked, err := p.TimeStep(19); err != nil || locked {
		t.Fatalf("TimeStep(19) = %v, %v", locked, err)
	}
	if p.DropDistance() != 0 {
		t.Fatalf("DropDistance() = %d, expected grounded", p.DropDistance())
	}

	// Sliding off the ledge lets the piece fall again.
	if _, err := p.HandleInput(core.InputShiftRight); err != nil {
		t.Fatalf("shift failed: %v", err)
	}
	if p.DropDistance() != 1 {
		t.Fatalf("DropDistance() after shift = %d, expected 1", p.DropDistance())
	}
}

func TestNegativeLockDelay(t *testing.T) {
	p := NewPiece(ShapeT, -4, NewField())
	if p.LockDelay() != 0 {
		t.Errorf("LockDelay() = %d, expected 0", p.LockDelay())
	}
}

func TestHardDrop(t *testing.T) {
	f := NewField()
	p := NewPiece(ShapeT, 5, f)

	locked, err := p.HandleInput(core.InputHardDrop)
	if err != nil || !locked {
		t.Fatalf("hard drop = %v, %v", locked, err)
	}
	expectField(t, f, func(x, y int) bool {
		return (y == 0 && x >= 3 && x <= 5) || (y == 1 && x == 4)
	})
}

func TestLockedPieceRejectsCalls(t *testing.T) {
	p := NewPiece(ShapeJ, 0, NewField())
	if locked, err := p.HandleInput(core.InputHardDrop); err != nil || !locked {
		t.Fatalf("hard drop = %v, %v", locked, err)
	}
	final := p.Blocks()

	for _, in := range core.Inputs {
		if _, err := p.HandleInput(in); !errors.Is(err, ErrPieceLocked) {
			t.Errorf("HandleInput(%s) error = %v, expected ErrPieceLocked", in, err)
		}
	}
	if _, err := p.TimeStep(1); !errors.Is(err, ErrPieceLocked) {
		t.Errorf("TimeStep error = %v, expected ErrPieceLocked", err)
	}
	if p.Blocks() != final {
		t.Error("locked piece moved")
	}
}

func TestUnsupportedInput(t *testing.T) {
	p := NewPiece(ShapeT, 0, NewField())
	if _, err := p.HandleInput(core.Input(99)); err == nil {
		t.Fatal("expected an error for an unknown input")
	}
}

func TestHardDropIntoGapClearsRow(t *testing.T) {
	row := make([]bool, Width)
	for x := range row {
		row[x] = x != 4 && x != 5
	}
	f, err := NewFieldFromRow(row)
	if err != nil {
		t.Fatalf("NewFieldFromRow() failed: %v", err)
	}

	p := NewPiece(ShapeO, 5, f)
	if locked, err := p.HandleInput(core.InputHardDrop); err != nil || !locked {
		t.Fatalf("hard drop = %v, %v", locked, err)
	}

	// The bottom row clears and the O's upper half falls into it.
	expectField(t, f, func(x, y int) bool { return y == 0 && (x == 4 || x == 5) })
	if f.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", f.Score())
	}
}

func TestVerticalIClearsFourRows(t *testing.T) {
	f, err := NewFieldFromBlocks(blocksFrom(func(x, y int) bool { return y < 4 && x != 9 }))
	if err != nil {
		t.Fatalf("NewFieldFromBlocks() failed: %v", err)
	}

	p := NewPiece(ShapeI, 0, f)
	if _, err := p.HandleInput(core.InputRotateCW); err != nil {
		t.Fatalf("rotate failed: %v", err)
	}
	for i := 0; i < 4; i++ {
		if _, err := p.HandleInput(core.InputShiftRight); err != nil {
			t.Fatalf("shift failed: %v", err)
		}
	}
	if locked, err := p.HandleInput(core.InputHardDrop); err != nil || !locked {
		t.Fatalf("hard drop = %v, %v", locked, err)
	}

	expectField(t, f, func(x, y int) bool { return false })
	if f.Score() != 4 {
		t.Errorf("Score() = %d, expected 4", f.Score())
	}
}

func TestGhostBlocks(t *testing.T) {
	f := NewField()
	mustSet(t, f, 4, 3)
	p := NewPiece(ShapeT, 0, f)

	if d := p.DropDistance(); d != 16 {
		t.Fatalf("DropDistance() = %d, expected 16", d)
	}
	want := sortedBlocks([4]core.Coord{core.C(3, 4), core.C(4, 4), core.C(5, 4), core.C(4, 5)})
	if got := sortedBlocks(p.GhostBlocks()); got != want {
		t.Errorf("GhostBlocks() = %v, expected %v", got, want)
	}
	// Computing the ghost does not move the piece.
	if p.Center() != core.C(4, 20) {
		t.Errorf("center moved to %s", p.Center())
	}
}

func TestPieceDoesNotFitOccupiedSpawn(t *testing.T) {
	f := NewField()
	mustSet(t, f, 4, 20)
	if NewPiece(ShapeT, 0, f).Fits() {
		t.Error("piece spawned onto a block should not fit")
	}
}

func TestCloneOnto(t *testing.T) {
	f := NewField()
	p := NewPiece(ShapeL, 2, f)

	copyField := *f
	clone := p.CloneOnto(&copyField)
	if locked, err := clone.HandleInput(core.InputHardDrop); err != nil || !locked {
		t.Fatalf("hard drop on clone = %v, %v", locked, err)
	}

	if p.Locked() || p.Center() != core.C(4, 20) {
		t.Error("original piece changed after the clone moved")
	}
	expectField(t, f, func(x, y int) bool { return false })
	if got, _ := copyField.Get(3, 0); !got {
		t.Error("clone should lock into its own field")
	}
}
