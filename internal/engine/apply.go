package engine

import (
	"github.com/brainit-consulting/chess-sub000/internal/chess"
	"github.com/brainit-consulting/chess-sub000/internal/errors"
)

// Apply executes a move on the position in place: capture resolution, piece
// relocation, castling rook relocation, promotion, castling-rights
// revocation, clock and en-passant bookkeeping, and the turn flip.
//
// Moves must come from the generator. An empty source square is a
// caller-contract violation and returns ErrNoPieceAtSquare; a board cell
// whose id is missing from the registry signals state corruption and
// returns ErrPieceMissing. Neither is recoverable and the position must be
// considered invalid after such an error.
func Apply(pos *chess.Position, move chess.Move) error {
	id := pos.IDAt(move.From)
	if id == 0 {
		return &errors.MoveError{
			Err:  errors.ErrNoPieceAtSquare,
			From: move.From.String(),
			To:   move.To.String(),
		}
	}
	mover, ok := pos.Pieces[id]
	if !ok {
		return &errors.MoveError{
			Err:    errors.ErrPieceMissing,
			From:   move.From.String(),
			To:     move.To.String(),
			Detail: "board references a piece the registry does not hold",
		}
	}
	moverType := mover.Type
	colour := mover.Colour

	// Resolve the capture. The en-passant victim sits one rank behind the
	// destination from the mover's point of view, not on the destination
	// itself.
	captured := false
	var capturedPiece *chess.Piece
	var capturedSq chess.Square
	if move.IsEnPassant {
		capturedSq = move.To.Offset(0, -colour.PawnDirection())
	} else {
		capturedSq = move.To
	}
	if victimID := pos.IDAt(capturedSq); victimID != 0 {
		capturedPiece = pos.Pieces[victimID]
		pos.Board[capturedSq.File][capturedSq.Rank] = 0
		delete(pos.Pieces, victimID)
		captured = true
	}

	// Relocate the mover.
	pos.Board[move.From.File][move.From.Rank] = 0
	pos.Board[move.To.File][move.To.Rank] = id

	// Castling relocates the rook as part of the same move.
	if move.IsCastle {
		rank := colour.HomeRank()
		rookFrom, rookTo := chess.Sq(0, rank), chess.Sq(3, rank)
		if move.To.File == 6 {
			rookFrom, rookTo = chess.Sq(7, rank), chess.Sq(5, rank)
		}
		rookID := pos.IDAt(rookFrom)
		pos.Board[rookFrom.File][rookFrom.Rank] = 0
		pos.Board[rookTo.File][rookTo.Rank] = rookID
		if rook := pos.Pieces[rookID]; rook != nil {
			rook.HasMoved = true
		}
	}

	if move.Promotion != chess.NoPiece {
		mover.Type = move.Promotion
	}
	mover.HasMoved = true

	// Castling rights only ever shrink: on a king move, on a rook leaving
	// its home square, or on a rook being captured on its home square.
	switch moverType {
	case chess.King:
		pos.Castling.RevokeAll(colour)
	case chess.Rook:
		revokeRookRight(pos, colour, move.From)
	}
	if capturedPiece != nil && capturedPiece.Type == chess.Rook {
		revokeRookRight(pos, capturedPiece.Colour, capturedSq)
	}

	if moverType == chess.Pawn || captured {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}

	// Only a double pawn push leaves an en-passant target behind.
	pos.EnPassant = false
	if moverType == chess.Pawn && abs(move.To.Rank-move.From.Rank) == 2 {
		pos.EnPassant = true
		pos.EPTarget = chess.Sq(move.From.File, (move.From.Rank+move.To.Rank)/2)
	}

	if colour == chess.Black {
		pos.FullmoveNumber++
	}

	applied := move
	pos.LastMove = &applied
	pos.ActiveColour = colour.Opposite()
	return nil
}

// revokeRookRight clears the castling right matching a rook's original home
// square, for rook moves away from it and for rooks captured on it.
func revokeRookRight(pos *chess.Position, colour chess.Colour, sq chess.Square) {
	if sq.Rank != colour.HomeRank() {
		return
	}
	switch sq.File {
	case 0:
		pos.Castling.RevokeQueenside(colour)
	case 7:
		pos.Castling.RevokeKingside(colour)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
