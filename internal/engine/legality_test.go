package engine_test

import (
	"testing"

	"github.com/brainit-consulting/chess-sub000/internal/chess"
	"github.com/brainit-consulting/chess-sub000/internal/engine"
	"github.com/brainit-consulting/chess-sub000/internal/testutil"
)

// TestLegalMovesNeverLeaveKingAttacked applies every legal move of a sample
// of positions on a clone and verifies the mover's king is safe afterwards.
func TestLegalMovesNeverLeaveKingAttacked(t *testing.T) {
	fens := []string{
		"", // initial position
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"r3k2r/pppq1ppp/2np1n2/2b1p1B1/2B1P1b1/2NP1N2/PPPQ1PPP/R3K2R w KQkq - 6 8",
		"4k3/8/8/8/8/8/4R3/4K3 b - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		pos := testutil.MustPosition(t, fen)
		colour := pos.ActiveColour
		for _, move := range engine.AllLegalMoves(pos, colour) {
			clone := pos.Clone()
			if err := engine.Apply(clone, move); err != nil {
				t.Fatalf("%s: Apply(%v) error: %v", fen, move, err)
			}
			if engine.IsInCheck(clone, colour) {
				t.Errorf("%s: legal move %v leaves own king attacked", fen, move)
			}
		}
	}
}

// TestPinnedPieceCannotMove checks that a piece shielding its king from a
// slider has no legal moves off the pin line.
func TestPinnedPieceCannotMove(t *testing.T) {
	// The e4 knight is pinned against the e1 king by the e8 rook.
	pos := testutil.MustPosition(t, "4r1k1/8/8/8/4N3/8/8/4K3 w - - 0 1")
	if moves := engine.LegalMovesFrom(pos, testutil.MustSquare(t, "e4")); len(moves) != 0 {
		t.Errorf("pinned knight has legal moves %v", moves)
	}
	// The knight still has pseudo-legal moves; only legality removes them.
	if moves := engine.PseudoLegalMoves(pos, testutil.MustSquare(t, "e4")); len(moves) == 0 {
		t.Error("pinned knight has no pseudo-legal moves")
	}
}

// TestKingCannotStayInCheck checks that only check-resolving moves survive
// the filter while in check.
func TestKingCannotStayInCheck(t *testing.T) {
	// White king e1 checked by the e8 rook; the a-rook cannot ignore it.
	pos := testutil.MustPosition(t, "4r1k1/8/8/8/8/8/R7/4K3 w - - 0 1")
	for _, move := range engine.AllLegalMoves(pos, chess.White) {
		clone := pos.Clone()
		if err := engine.Apply(clone, move); err != nil {
			t.Fatalf("Apply(%v) error: %v", move, err)
		}
		if engine.IsInCheck(clone, chess.White) {
			t.Errorf("move %v does not resolve the check", move)
		}
	}
	// Interposing on e2 must be among the legal moves.
	found := false
	for _, move := range engine.LegalMovesFrom(pos, testutil.MustSquare(t, "a2")) {
		if move.To == testutil.MustSquare(t, "e2") {
			found = true
		}
	}
	if !found {
		t.Error("interposition a2e2 missing from legal moves")
	}
}

func TestCastlingLegality(t *testing.T) {
	tests := []struct {
		name          string
		fen           string
		wantKingside  bool
		wantQueenside bool
	}{
		{"clear board", "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", true, true},
		{"king in check", "4k3/8/8/8/8/8/4r3/R3K2R w KQ - 0 1", false, false},
		{"kingside transit attacked", "4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1", false, true},
		{"kingside destination attacked", "4k1r1/8/8/8/8/8/8/R3K2R w KQ - 0 1", false, true},
		{"queenside transit attacked", "3rk3/8/8/8/8/8/8/R3K2R w KQ - 0 1", true, false},
		{"queenside destination attacked", "2r1k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", true, false},
		{"b1 attack does not matter", "1r2k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", true, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := testutil.MustPosition(t, tt.fen)
			kingside, queenside := false, false
			for _, move := range engine.LegalMovesFrom(pos, testutil.MustSquare(t, "e1")) {
				if !move.IsCastle {
					continue
				}
				if move.To.File == 6 {
					kingside = true
				}
				if move.To.File == 2 {
					queenside = true
				}
			}
			if kingside != tt.wantKingside {
				t.Errorf("kingside castle legal = %v, want %v", kingside, tt.wantKingside)
			}
			if queenside != tt.wantQueenside {
				t.Errorf("queenside castle legal = %v, want %v", queenside, tt.wantQueenside)
			}
		})
	}
}

// TestPromotionMovesFilteredIndividually checks that each of the four
// promotion moves passes the legality filter on its own.
func TestPromotionMovesFilteredIndividually(t *testing.T) {
	// Promoting on b8 is legal; the a8 push is not generated (occupied).
	pos := testutil.MustPosition(t, "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	legal := engine.LegalMovesFrom(pos, testutil.MustSquare(t, "b7"))
	if len(legal) != 4 {
		t.Errorf("legal promotions = %d (%v), want 4", len(legal), legal)
	}

	// The e7 pawn is pinned by the e8 rook: its push is blocked outright
	// and no promotion move survives.
	pinned := testutil.MustPosition(t, "4r3/4P3/8/8/8/8/8/4K2k w - - 0 1")
	if legal := engine.LegalMovesFrom(pinned, testutil.MustSquare(t, "e7")); len(legal) != 0 {
		t.Errorf("blocked pawn has legal moves %v", legal)
	}
}

func TestHasLegalMoves(t *testing.T) {
	if !engine.HasLegalMoves(chess.NewInitialPosition(), chess.White) {
		t.Error("initial position reports no legal white moves")
	}
	mate := testutil.MustPosition(t, "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	if engine.HasLegalMoves(mate, chess.Black) {
		t.Error("checkmated side reports legal moves")
	}
}
