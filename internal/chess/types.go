// Package chess provides the core position model: piece and colour types,
// squares, moves, and the Position aggregate with its piece registry.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns the rank direction pawns of this colour advance in:
// +1 for White, -1 for Black.
func (c Colour) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank for this colour: 0 for White, 7 for Black.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return 7
}

// PieceType represents a chess piece type.
type PieceType int

const (
	NoPiece PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
// Pawns have no letter and return 'P' for board display purposes.
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PromotionTypes lists the piece types a pawn may promote to, in the order
// the move generator expands them.
var PromotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// BoardSize is the number of files and ranks on the board.
const BoardSize = 8

// PieceID identifies a piece in a Position's registry. Zero means no piece.
type PieceID int

// Piece is a single chess piece. Piece values are owned exclusively by a
// Position's registry; the board refers to them by id only.
type Piece struct {
	ID       PieceID
	Type     PieceType
	Colour   Colour
	HasMoved bool
}
