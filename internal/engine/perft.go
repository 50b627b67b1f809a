package engine

import "github.com/brainit-consulting/chess-sub000/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
// It exists to pin the generator's totals against known reference counts.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, move := range AllLegalMoves(pos, pos.ActiveColour) {
		child := pos.Clone()
		if err := Apply(child, move); err != nil {
			continue
		}
		nodes += Perft(child, depth-1)
	}
	return nodes
}
