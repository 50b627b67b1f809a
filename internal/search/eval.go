package search

import (
	"github.com/brainit-consulting/chess-sub000/internal/chess"
	"github.com/brainit-consulting/chess-sub000/internal/engine"
)

// Fixed material values in centipawns.
var pieceValues = [...]int{
	chess.Pawn:   100,
	chess.Knight: 320,
	chess.Bishop: 330,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   20000,
}

// PieceValue returns the material value of a piece type.
func PieceValue(t chess.PieceType) int {
	if int(t) < len(pieceValues) {
		return pieceValues[t]
	}
	return 0
}

const (
	mobilityWeight  = 2
	checkAdjustment = 50
)

// Evaluate scores the position for the given perspective colour; positive
// favours that colour. The score is material plus a mobility difference
// term plus a flat adjustment against whichever side is in check.
func Evaluate(pos *chess.Position, perspective chess.Colour) int {
	score := 0
	for _, piece := range pos.Pieces {
		if piece.Colour == chess.White {
			score += PieceValue(piece.Type)
		} else {
			score -= PieceValue(piece.Type)
		}
	}

	whiteMoves := len(engine.AllLegalMoves(pos, chess.White))
	blackMoves := len(engine.AllLegalMoves(pos, chess.Black))
	score += (whiteMoves - blackMoves) * mobilityWeight

	if engine.IsInCheck(pos, chess.White) {
		score -= checkAdjustment
	}
	if engine.IsInCheck(pos, chess.Black) {
		score += checkAdjustment
	}

	if perspective == chess.Black {
		return -score
	}
	return score
}
