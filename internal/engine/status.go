package engine

import "github.com/brainit-consulting/chess-sub000/internal/chess"

// StatusKind classifies a position for the side to move.
type StatusKind int

const (
	Ongoing StatusKind = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status kind.
func (k StatusKind) String() string {
	names := []string{"ongoing", "check", "checkmate", "stalemate"}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Status is the result of classifying a position. Winner is meaningful only
// when Kind is Checkmate.
type Status struct {
	Kind   StatusKind
	Winner chess.Colour
}

// Terminal reports whether the game is over.
func (s Status) Terminal() bool {
	return s.Kind == Checkmate || s.Kind == Stalemate
}

// GameStatus classifies the position for the side to move: checkmate when it
// is in check with no legal moves, stalemate with no legal moves out of
// check, check when in check with moves remaining, otherwise ongoing.
func GameStatus(pos *chess.Position) Status {
	inCheck := IsInCheck(pos, pos.ActiveColour)
	if HasLegalMoves(pos, pos.ActiveColour) {
		if inCheck {
			return Status{Kind: Check}
		}
		return Status{Kind: Ongoing}
	}
	if inCheck {
		return Status{Kind: Checkmate, Winner: pos.ActiveColour.Opposite()}
	}
	return Status{Kind: Stalemate}
}
