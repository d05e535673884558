package tetris

import "errors"

var (
	// ErrOutOfRange is returned when a cell outside the field is read or written.
	ErrOutOfRange = errors.New("tetris: coordinate out of range")

	// ErrDuplicateBlock is returned when a block is inserted on top of an
	// existing block.
	ErrDuplicateBlock = errors.New("tetris: block already exists")

	// ErrFieldSize is returned by the bulk constructors when the input does not
	// match the field dimensions.
	ErrFieldSize = errors.New("tetris: argument does not match field dimensions")

	// ErrPieceLocked is returned by every mutating call on a locked piece.
	ErrPieceLocked = errors.New("tetris: piece is already locked")
)
