package search

import "testing"

func TestPoolSearchReturnsALegalMove(t *testing.T) {
	p := mustParse(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w (ALL) -")
	pool := NewPool(NewTable(1), 4)

	res := pool.Search(p, Limits{MaxDepth: 2})
	if res.Move.From() == res.Move.To() {
		t.Fatal("expected a real move from the pool search")
	}
}

func TestPoolSearchFindsTheSameMateEverySeed(t *testing.T) {
	p := mustParse(t, "6k1/5ppp/8/8/8/8/8/K3R3 w - -")
	pool := NewPool(NewTable(1), 3)

	res := pool.Search(p, Limits{MaxDepth: 3})

	geom := p.Desc.Geometry
	e1, e8 := geom.SquareOf(4, 0), geom.SquareOf(4, 7)
	if res.Move.From() != e1 || res.Move.To() != e8 {
		t.Fatalf("expected the pool to converge on Re1-e8#, got from=%d to=%d", res.Move.From(), res.Move.To())
	}
}

func TestPoolDoesNotMutateTheCallersPosition(t *testing.T) {
	p := mustParse(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w (ALL) -")
	before := p.ZobristKey

	pool := NewPool(NewTable(1), 2)
	pool.Search(p, Limits{MaxDepth: 2})

	if p.ZobristKey != before {
		t.Fatal("pool search must operate on clones, leaving the caller's position untouched")
	}
}

func TestThreadsClampsToHardwareConcurrency(t *testing.T) {
	if got := Threads(1_000_000); got < 1 {
		t.Fatalf("expected at least one thread, got %d", got)
	}
	if got := Threads(0); got < 1 {
		t.Fatalf("expected Threads(0) to fall back to a positive count, got %d", got)
	}
}

func TestNewPoolClampsBelowOneWorker(t *testing.T) {
	pool := NewPool(NewTable(1), 0)
	if len(pool.workers) != 1 {
		t.Fatalf("expected at least one worker, got %d", len(pool.workers))
	}
}
