package search

import (
	"golang.org/x/exp/slices"

	"github.com/brainit-consulting/chess-sub000/internal/chess"
	"github.com/brainit-consulting/chess-sub000/internal/engine"
)

const (
	// safeCheckBonus rewards a move that gives check without leaving the
	// mover en prise on its destination square.
	safeCheckBonus = 50

	// developmentBonus rewards moving a knight or bishop off its home rank
	// within the first few full moves.
	developmentBonus = 10

	// developmentMoveLimit is the last full move the development bonus
	// applies to.
	developmentMoveLimit = 4
)

type scoredMove struct {
	move  chess.Move
	score int
	key   float64
}

// OrderMoves sorts candidate moves by descending heuristic score. Ties keep
// a stable order by an ascending PRNG key drawn per move in list order, so
// the result is reproducible for a fixed seed and call sequence.
func OrderMoves(pos *chess.Position, moves []chess.Move, colour chess.Colour, rng Uniform) []chess.Move {
	scored := make([]scoredMove, len(moves))
	for i, move := range moves {
		scored[i] = scoredMove{
			move:  move,
			score: scoreMove(pos, move, colour),
			key:   rng.Float64(),
		}
	}
	slices.SortStableFunc(scored, func(a, b scoredMove) bool {
		if a.score != b.score {
			return a.score > b.score
		}
		return a.key < b.key
	})
	ordered := make([]chess.Move, len(moves))
	for i, sm := range scored {
		ordered[i] = sm.move
	}
	return ordered
}

// scoreMove computes the heuristic ordering score for a single move:
// captured material, promotion gain, a bonus for safe checks, a penalty for
// landing on a square the opponent can recapture, and an early-development
// incentive for minor pieces.
func scoreMove(pos *chess.Position, move chess.Move, colour chess.Colour) int {
	score := 0

	if move.CapturedID != 0 {
		if victim := pos.Pieces[move.CapturedID]; victim != nil {
			score += PieceValue(victim.Type)
		}
	} else if move.IsEnPassant {
		score += PieceValue(chess.Pawn)
	}

	if move.Promotion != chess.NoPiece {
		score += PieceValue(move.Promotion) - PieceValue(chess.Pawn)
	}

	mover := pos.PieceAt(move.From)
	if mover == nil {
		return score
	}

	clone := pos.Clone()
	if err := engine.Apply(clone, move); err != nil {
		return score
	}
	opponent := colour.Opposite()
	recapturable := engine.IsSquareAttacked(clone, move.To, opponent)
	if engine.IsInCheck(clone, opponent) && !recapturable {
		score += safeCheckBonus
	}
	if recapturable {
		score -= PieceValue(mover.Type) * 3 / 4
	}

	if (mover.Type == chess.Knight || mover.Type == chess.Bishop) &&
		pos.FullmoveNumber <= developmentMoveLimit &&
		move.From.Rank == colour.HomeRank() {
		score += developmentBonus
	}

	return score
}
