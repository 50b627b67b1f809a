package engine

import "github.com/brainit-consulting/chess-sub000/internal/chess"

// PseudoLegalMoves generates the candidate moves for the piece on the given
// square, following movement geometry and occupancy only. Whether a move
// leaves the mover's own king in check is the legality filter's concern.
// An empty square yields no moves.
func PseudoLegalMoves(pos *chess.Position, from chess.Square) []chess.Move {
	piece := pos.PieceAt(from)
	if piece == nil {
		return nil
	}

	switch piece.Type {
	case chess.Pawn:
		return pawnMoves(pos, from, piece.Colour)
	case chess.Knight:
		return offsetMoves(pos, from, piece.Colour, knightOffsets[:])
	case chess.Bishop:
		return slidingMoves(pos, from, piece.Colour, bishopDirs[:])
	case chess.Rook:
		return slidingMoves(pos, from, piece.Colour, rookDirs[:])
	case chess.Queen:
		moves := slidingMoves(pos, from, piece.Colour, bishopDirs[:])
		return append(moves, slidingMoves(pos, from, piece.Colour, rookDirs[:])...)
	case chess.King:
		moves := offsetMoves(pos, from, piece.Colour, kingOffsets[:])
		return append(moves, castlingMoves(pos, from, piece)...)
	}
	return nil
}

// pawnMoves generates pushes, double pushes, diagonal captures and en
// passant. Any move landing on the far rank expands into one move per
// promotion type.
func pawnMoves(pos *chess.Position, from chess.Square, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	dir := colour.PawnDirection()
	startRank := colour.HomeRank() + dir
	promoRank := colour.Opposite().HomeRank()

	// Forward pushes.
	one := from.Offset(0, dir)
	if one.OnBoard() && pos.IDAt(one) == 0 {
		moves = appendPawnMove(moves, chess.Move{From: from, To: one}, promoRank)
		if from.Rank == startRank {
			two := from.Offset(0, 2*dir)
			if pos.IDAt(two) == 0 {
				moves = append(moves, chess.Move{From: from, To: two})
			}
		}
	}

	// Diagonal captures, including en passant.
	for _, df := range [2]int{-1, 1} {
		to := from.Offset(df, dir)
		if !to.OnBoard() {
			continue
		}
		if target := pos.PieceAt(to); target != nil {
			if target.Colour != colour {
				moves = appendPawnMove(moves, chess.Move{From: from, To: to, CapturedID: target.ID}, promoRank)
			}
			continue
		}
		if pos.EnPassant && to == pos.EPTarget {
			moves = append(moves, chess.Move{From: from, To: to, IsEnPassant: true})
		}
	}
	return moves
}

// appendPawnMove appends the move, expanded into the four promotion moves
// when it reaches the far rank. Each promotion carries the same capture
// metadata.
func appendPawnMove(moves []chess.Move, m chess.Move, promoRank int) []chess.Move {
	if m.To.Rank != promoRank {
		return append(moves, m)
	}
	for _, promo := range chess.PromotionTypes {
		pm := m
		pm.Promotion = promo
		moves = append(moves, pm)
	}
	return moves
}

// offsetMoves generates the fixed-offset moves shared by knight and king:
// each on-board destination is a quiet move or a capture of an enemy piece.
func offsetMoves(pos *chess.Position, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Move {
	var moves []chess.Move
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if !to.OnBoard() {
			continue
		}
		target := pos.PieceAt(to)
		if target == nil {
			moves = append(moves, chess.Move{From: from, To: to})
		} else if target.Colour != colour {
			moves = append(moves, chess.Move{From: from, To: to, CapturedID: target.ID})
		}
	}
	return moves
}

// slidingMoves ray-casts along each direction, stopping at the first
// occupied square and including it as a capture when enemy-owned.
func slidingMoves(pos *chess.Position, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Move {
	var moves []chess.Move
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.OnBoard() {
			target := pos.PieceAt(to)
			if target != nil {
				if target.Colour != colour {
					moves = append(moves, chess.Move{From: from, To: to, CapturedID: target.ID})
				}
				break // Blocked
			}
			moves = append(moves, chess.Move{From: from, To: to})
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// castlingMoves generates castling candidates for a king: the rights flag
// must still be set, the king must stand on its home square, the rook must
// stand untouched on its home square, and the squares strictly between them
// must be empty. Path safety against attacks is deferred to the legality
// filter.
func castlingMoves(pos *chess.Position, from chess.Square, king *chess.Piece) []chess.Move {
	var moves []chess.Move
	rank := king.Colour.HomeRank()
	if from != chess.Sq(4, rank) {
		return nil
	}
	if pos.Castling.Kingside(king.Colour) && castlePathClear(pos, king.Colour, rank, 7, []int{5, 6}) {
		moves = append(moves, chess.Move{From: from, To: chess.Sq(6, rank), IsCastle: true})
	}
	if pos.Castling.Queenside(king.Colour) && castlePathClear(pos, king.Colour, rank, 0, []int{1, 2, 3}) {
		moves = append(moves, chess.Move{From: from, To: chess.Sq(2, rank), IsCastle: true})
	}
	return moves
}

// castlePathClear checks the rook precondition and the emptiness of the
// files strictly between king and rook.
func castlePathClear(pos *chess.Position, colour chess.Colour, rank, rookFile int, between []int) bool {
	rook := pos.PieceAt(chess.Sq(rookFile, rank))
	if rook == nil || rook.Type != chess.Rook || rook.Colour != colour || rook.HasMoved {
		return false
	}
	for _, file := range between {
		if pos.IDAt(chess.Sq(file, rank)) != 0 {
			return false
		}
	}
	return true
}
