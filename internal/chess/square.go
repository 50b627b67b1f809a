package chess

import (
	"fmt"

	"github.com/brainit-consulting/chess-sub000/internal/errors"
)

// Square is a board coordinate. File 0 is the a-file, rank 0 is White's back
// rank.
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for constructing a Square.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// OnBoard reports whether the square lies within the 8x8 board.
func (s Square) OnBoard() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square shifted by the given file and rank deltas.
// The result may be off the board; callers check OnBoard.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// String returns the algebraic name of the square, e.g. "e4".
// Off-board squares render their raw coordinates.
func (s Square) String() string {
	if !s.OnBoard() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, errors.Wrapf(errors.ErrInvalidSquare, "%q", name)
	}
	file := int(name[0] - 'a')
	rank := int(name[1] - '1')
	sq := Square{File: file, Rank: rank}
	if !sq.OnBoard() {
		return Square{}, errors.Wrapf(errors.ErrInvalidSquare, "%q", name)
	}
	return sq, nil
}
