// Package testutil provides shared fixture helpers for the engine's tests:
// FEN-based position setup, square and move lookup, and go-cmp-based
// position comparison.
package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/brainit-consulting/chess-sub000/internal/chess"
	"github.com/brainit-consulting/chess-sub000/internal/engine"
)

// MustPosition builds a position from a FEN string, aborting the test on
// parse failure. An empty FEN yields the standard starting position.
func MustPosition(t *testing.T, fen string) *chess.Position {
	t.Helper()
	if fen == "" {
		return chess.NewInitialPosition()
	}
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) error: %v", fen, err)
	}
	return pos
}

// MustSquare parses an algebraic square name, aborting the test on failure.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", name, err)
	}
	return sq
}

// MustMove applies the move named by its from and to squares (plus optional
// promotion type) from the position's legal moves, aborting the test when
// no such legal move exists.
func MustMove(t *testing.T, pos *chess.Position, from, to string, promotion ...chess.PieceType) {
	t.Helper()
	move := FindMove(t, pos, from, to, promotion...)
	if err := engine.Apply(pos, move); err != nil {
		t.Fatalf("Apply(%s%s) error: %v", from, to, err)
	}
}

// FindMove locates the legal move with the given from and to squares (plus
// optional promotion type), aborting the test when it does not exist.
func FindMove(t *testing.T, pos *chess.Position, from, to string, promotion ...chess.PieceType) chess.Move {
	t.Helper()
	fromSq := MustSquare(t, from)
	toSq := MustSquare(t, to)
	promo := chess.NoPiece
	if len(promotion) > 0 {
		promo = promotion[0]
	}
	for _, move := range engine.LegalMovesFrom(pos, fromSq) {
		if move.To == toSq && move.Promotion == promo {
			return move
		}
	}
	t.Fatalf("no legal move %s%s (promotion %v) in %s", from, to, promo, engine.FormatFEN(pos))
	return chess.Move{}
}

// AssertPositionsEqual reports a diff when the two positions are not deeply
// equal.
func AssertPositionsEqual(t *testing.T, got, want *chess.Position) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("position mismatch (-want +got):\n%s", diff)
	}
}
