package engine

import "github.com/brainit-consulting/chess-sub000/internal/chess"

// IsLegalMove reports whether a pseudo-legal move is admissible for the
// given colour. Castling additionally requires the king's current, transit
// and destination squares to be safe; every move is then tried on a clone
// and rejected if the mover's own king ends up attacked.
func IsLegalMove(pos *chess.Position, move chess.Move, colour chess.Colour) bool {
	opponent := colour.Opposite()

	if move.IsCastle {
		if IsSquareAttacked(pos, move.From, opponent) {
			return false
		}
		transit := chess.Sq((move.From.File+move.To.File)/2, move.From.Rank)
		if IsSquareAttacked(pos, transit, opponent) || IsSquareAttacked(pos, move.To, opponent) {
			return false
		}
	}

	clone := pos.Clone()
	if err := Apply(clone, move); err != nil {
		return false
	}
	return !IsInCheck(clone, colour)
}

// LegalMovesFrom returns the legal moves for the piece on the given square.
func LegalMovesFrom(pos *chess.Position, from chess.Square) []chess.Move {
	piece := pos.PieceAt(from)
	if piece == nil {
		return nil
	}
	var legal []chess.Move
	for _, move := range PseudoLegalMoves(pos, from) {
		if IsLegalMove(pos, move, piece.Colour) {
			legal = append(legal, move)
		}
	}
	return legal
}

// AllLegalMoves returns every legal move for the given colour.
func AllLegalMoves(pos *chess.Position, colour chess.Colour) []chess.Move {
	var legal []chess.Move
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			from := chess.Sq(file, rank)
			piece := pos.PieceAt(from)
			if piece == nil || piece.Colour != colour {
				continue
			}
			legal = append(legal, LegalMovesFrom(pos, from)...)
		}
	}
	return legal
}

// HasLegalMoves reports whether the given colour has at least one legal
// move, stopping at the first one found.
func HasLegalMoves(pos *chess.Position, colour chess.Colour) bool {
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			from := chess.Sq(file, rank)
			piece := pos.PieceAt(from)
			if piece == nil || piece.Colour != colour {
				continue
			}
			for _, move := range PseudoLegalMoves(pos, from) {
				if IsLegalMove(pos, move, colour) {
					return true
				}
			}
		}
	}
	return false
}
