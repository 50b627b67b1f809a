// Package engine implements the chess rules: move generation, legality
// filtering, move application and game-status classification over the
// position model in the chess package.
package engine

import "github.com/brainit-consulting/chess-sub000/internal/chess"

var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	bishopDirs    = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	rookDirs      = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsInCheck returns true if the given colour's king is attacked. Positions
// without a king of that colour report false; input validation is out of
// scope.
func IsInCheck(pos *chess.Position, colour chess.Colour) bool {
	kingSq, ok := pos.KingSquare(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(pos, kingSq, colour.Opposite())
}

// IsSquareAttacked returns true if the square is attacked by any piece of
// the given colour. Each attacker geometry is checked independently: pawn
// capture squares, knight offsets, sliding rays and the adjacent king ring.
func IsSquareAttacked(pos *chess.Position, sq chess.Square, by chess.Colour) bool {
	// Pawn attacks come from the rank the attacker advances from.
	pawnRank := sq.Rank - by.PawnDirection()
	for _, df := range [2]int{-1, 1} {
		from := chess.Sq(sq.File+df, pawnRank)
		if !from.OnBoard() {
			continue
		}
		if piece := pos.PieceAt(from); piece != nil && piece.Colour == by && piece.Type == chess.Pawn {
			return true
		}
	}

	for _, off := range knightOffsets {
		from := sq.Offset(off[0], off[1])
		if !from.OnBoard() {
			continue
		}
		if piece := pos.PieceAt(from); piece != nil && piece.Colour == by && piece.Type == chess.Knight {
			return true
		}
	}

	for _, off := range kingOffsets {
		from := sq.Offset(off[0], off[1])
		if !from.OnBoard() {
			continue
		}
		if piece := pos.PieceAt(from); piece != nil && piece.Colour == by && piece.Type == chess.King {
			return true
		}
	}

	if slidingAttack(pos, sq, by, bishopDirs, chess.Bishop) {
		return true
	}
	return slidingAttack(pos, sq, by, rookDirs, chess.Rook)
}

// slidingAttack walks each ray until the first occupied square; the hit only
// counts when it is the matching slider or a queen of the attacking colour.
func slidingAttack(pos *chess.Position, sq chess.Square, by chess.Colour, dirs [4][2]int, slider chess.PieceType) bool {
	for _, dir := range dirs {
		from := sq.Offset(dir[0], dir[1])
		for from.OnBoard() {
			piece := pos.PieceAt(from)
			if piece != nil {
				if piece.Colour == by && (piece.Type == slider || piece.Type == chess.Queen) {
					return true
				}
				break // Blocked
			}
			from = from.Offset(dir[0], dir[1])
		}
	}
	return false
}
