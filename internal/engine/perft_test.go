package engine_test

import (
	"testing"

	"github.com/brainit-consulting/chess-sub000/internal/chess"
	"github.com/brainit-consulting/chess-sub000/internal/engine"
	"github.com/brainit-consulting/chess-sub000/internal/testutil"
)

// Reference totals for the standard initial position.
func TestPerftInitialPosition(t *testing.T) {
	want := []uint64{1, 20, 400, 8902}
	pos := chess.NewInitialPosition()
	for depth, nodes := range want {
		if testing.Short() && depth > 2 {
			break
		}
		if got := engine.Perft(pos, depth); got != nodes {
			t.Errorf("Perft(initial, %d) = %d, want %d", depth, got, nodes)
		}
	}
}

// A sparse endgame with en passant and promotion traffic (the third
// standard perft suite position).
func TestPerftEndgame(t *testing.T) {
	pos := testutil.MustPosition(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	want := []uint64{1, 14, 191, 2812}
	for depth, nodes := range want {
		if testing.Short() && depth > 2 {
			break
		}
		if got := engine.Perft(pos, depth); got != nodes {
			t.Errorf("Perft(endgame, %d) = %d, want %d", depth, got, nodes)
		}
	}
}
