package search

import (
	"math"

	"github.com/brainit-consulting/chess-sub000/internal/chess"
	"github.com/brainit-consulting/chess-sub000/internal/engine"
)

// mateScore is the sentinel magnitude for a node whose side to move has no
// legal moves while in check. Scores throughout the search are from the
// root mover's perspective.
const mateScore = 20000

// BestMove runs a fixed-depth alpha-beta search for the given colour and
// returns the chosen move, or nil when the colour has no legal moves. Every
// root move is scored with a full window, all moves tying the maximum are
// collected, and the PRNG picks uniformly among them.
func BestMove(pos *chess.Position, colour chess.Colour, depth int, rng Uniform) *chess.Move {
	moves := engine.AllLegalMoves(pos, colour)
	if len(moves) == 0 {
		return nil
	}
	ordered := OrderMoves(pos, moves, colour, rng)

	best := math.MinInt
	var bestMoves []chess.Move
	for _, move := range ordered {
		child := pos.Clone()
		if err := engine.Apply(child, move); err != nil {
			continue
		}
		score := alphaBeta(child, depth-1, math.MinInt, math.MaxInt, colour, rng)
		if score > best {
			best = score
			bestMoves = append(bestMoves[:0], move)
		} else if score == best {
			bestMoves = append(bestMoves, move)
		}
	}
	if len(bestMoves) == 0 {
		return nil
	}

	pick := 0
	if len(bestMoves) > 1 {
		pick = int(rng.Float64() * float64(len(bestMoves)))
		if pick >= len(bestMoves) {
			pick = len(bestMoves) - 1
		}
	}
	chosen := bestMoves[pick]
	return &chosen
}

// alphaBeta is the recursive minimax with alpha-beta pruning. A node whose
// side to move has no legal moves is terminal: checkmate scores +-mateScore
// against that side, stalemate scores 0. At depth zero the static evaluator
// scores the position from the root mover's perspective.
func alphaBeta(pos *chess.Position, depth, alpha, beta int, root chess.Colour, rng Uniform) int {
	side := pos.ActiveColour

	moves := engine.AllLegalMoves(pos, side)
	if len(moves) == 0 {
		if engine.IsInCheck(pos, side) {
			if side == root {
				return -mateScore
			}
			return mateScore
		}
		return 0
	}
	if depth <= 0 {
		return Evaluate(pos, root)
	}

	ordered := OrderMoves(pos, moves, side, rng)

	if side == root {
		best := math.MinInt
		for _, move := range ordered {
			child := pos.Clone()
			if err := engine.Apply(child, move); err != nil {
				continue
			}
			score := alphaBeta(child, depth-1, alpha, beta, root, rng)
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for _, move := range ordered {
		child := pos.Clone()
		if err := engine.Apply(child, move); err != nil {
			continue
		}
		score := alphaBeta(child, depth-1, alpha, beta, root, rng)
		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}
