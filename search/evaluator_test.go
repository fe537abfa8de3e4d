package search

import (
	"testing"

	"variantchess/fen"
	"variantchess/position"
	"variantchess/variants"
)

func mustParse(t *testing.T, fenStr string) *position.Position {
	t.Helper()
	d := variants.Standard()
	p, err := fen.Parse(d, fenStr)
	if err != nil {
		t.Fatalf("fen.Parse(%q): %v", fenStr, err)
	}
	return p
}

func TestEvaluateStartingPositionIsMaterialBalanced(t *testing.T) {
	p := mustParse(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w (ALL) -")
	if score := Evaluate(p); score != 0 {
		t.Fatalf("expected the balanced starting position to evaluate to 0, got %d", score)
	}
}

func TestEvaluateRewardsAnUpAQueenPosition(t *testing.T) {
	// Black has no queen; White should evaluate strongly positive.
	p := mustParse(t, "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w (ALL) -")
	if score := Evaluate(p); score <= 500 {
		t.Fatalf("expected a large positive score for being up a queen, got %d", score)
	}
}

func TestEvaluateIsAntisymmetricUnderSideToMove(t *testing.T) {
	white := mustParse(t, "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w (ALL) -")
	black := mustParse(t, "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b (ALL) -")

	if Evaluate(white) != -Evaluate(black) {
		t.Fatalf("evaluation should flip sign with side to move: white=%d black=%d", Evaluate(white), Evaluate(black))
	}
}
