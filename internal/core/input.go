package core

import "fmt"

// Input is a player command for the falling piece. It is the only
// vocabulary the game loop accepts from the outside.
type Input int

const (
	InputShiftLeft Input = iota
	InputShiftRight
	InputRotateCW
	InputRotateCCW
	InputHardDrop
)

// Inputs lists every Input in declaration order.
var Inputs = []Input{
	InputShiftLeft,
	InputShiftRight,
	InputRotateCW,
	InputRotateCCW,
	InputHardDrop,
}

// String returns the snake_case name of the input, as used in logs.
func (in Input) String() string {
	switch in {
	case InputShiftLeft:
		return "shift_left"
	case InputShiftRight:
		return "shift_right"
	case InputRotateCW:
		return "rotate_cw"
	case InputRotateCCW:
		return "rotate_ccw"
	case InputHardDrop:
		return "hard_drop"
	default:
		return fmt.Sprintf("Input(%d)", int(in))
	}
}

// Valid reports whether in is one of the declared inputs.
func (in Input) Valid() bool {
	return in >= InputShiftLeft && in <= InputHardDrop
}
