package position_test

import (
	"testing"

	"variantchess/fen"
	"variantchess/position"
	"variantchess/variants"
)

// Canonical leaf counts for the standard starting position, the same
// values chess engines have cross-checked perft against for decades.
func TestPerftInitialPosition(t *testing.T) {
	want := []uint64{20, 400, 8902, 197281}
	for depth, w := range want {
		desc := variants.Standard()
		p, err := fen.Parse(desc, desc.InitialFEN)
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if got := position.Perft(p, depth+1); got != w {
			t.Errorf("perft depth %d: got %d want %d", depth+1, got, w)
		}
	}
}

// Kiwipete exercises castling, en passant and promotions all at once,
// catching move-generator bugs perft on the start position alone won't.
func TestPerftKiwipete(t *testing.T) {
	desc := variants.Standard()
	p, err := fen.Parse(desc, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := []uint64{48, 2039, 97862}
	for depth, w := range want {
		if got := position.Perft(p, depth+1); got != w {
			t.Errorf("kiwipete perft depth %d: got %d want %d", depth+1, got, w)
		}
	}
}
