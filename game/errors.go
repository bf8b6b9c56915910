package game

import (
	"fmt"

	"github.com/astralcai/crossgen/board"
)

// IllegalMoveError reports a Play call that could not be placed: it ran off
// the board, collided with a conflicting tile, or named a square outside
// the board.
type IllegalMoveError struct {
	Word      string
	Start     board.Coordinate
	Direction board.Direction
	Cause     error
}

func (e *IllegalMoveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("game: illegal move %q at %v %s: %v", e.Word, e.Start, e.Direction, e.Cause)
	}
	return fmt.Sprintf("game: illegal move %q at %v %s", e.Word, e.Start, e.Direction)
}

func (e *IllegalMoveError) Unwrap() error {
	return e.Cause
}

// InvalidInputError reports a caller-supplied argument that could not be
// parsed — an unrecognized layout name, a rack string containing a
// non-letter, and similar input-shape problems distinct from a legal-but-
// rejected move.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("game: invalid input: %s", e.Reason)
}

// NotFoundError reports a saved-game path that could not be read.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("game: saved game not found: %s", e.Path)
}
