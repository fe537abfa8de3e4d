package engine

import (
	"errors"
	"testing"

	"variantchess/variants"
)

func TestNewStartsFromInitialFEN(t *testing.T) {
	e, err := New(variants.Standard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := e.ToFEN(); got != variants.Standard().InitialFEN {
		t.Fatalf("ToFEN() = %q, want %q", got, variants.Standard().InitialFEN)
	}
}

func TestLoadFENRoundTrips(t *testing.T) {
	e, err := New(variants.Standard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fenStr := "6k1/5ppp/8/8/8/8/8/K3R3 w - -"
	if err := e.LoadFEN(fenStr); err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	if got := e.ToFEN(); got != fenStr {
		t.Fatalf("ToFEN() = %q, want %q", got, fenStr)
	}
}

func TestLoadFENRejectsGarbage(t *testing.T) {
	e, err := New(variants.Standard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	err = e.LoadFEN("not a fen")
	if err == nil {
		t.Fatal("expected an error loading a malformed FEN")
	}
	if !errors.Is(err, ErrFenParse) {
		t.Fatalf("expected ErrFenParse, got %v", err)
	}
}

func TestLegalMovesFromStartingPositionCountsTwenty(t *testing.T) {
	e, err := New(variants.Standard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	moves := e.LegalMoves()
	if len(moves) != 20 {
		t.Fatalf("expected 20 legal moves from the start position, got %d", len(moves))
	}
}

func TestMakeMoveStrAppliesAPawnPush(t *testing.T) {
	e, err := New(variants.Standard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	res, err := e.MakeMoveStr("e2e4")
	if err != nil {
		t.Fatalf("MakeMoveStr: %v", err)
	}
	if res.Move.FromName != "e2" || res.Move.ToName != "e4" {
		t.Fatalf("unexpected move info: %+v", res.Move)
	}
	if res.Outcome.Decided {
		t.Fatalf("game should not be over after one pawn push")
	}
}

func TestMakeMoveStrRejectsAnIllegalMove(t *testing.T) {
	e, err := New(variants.Standard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = e.MakeMoveStr("e2e5")
	if err == nil {
		t.Fatal("expected an error making an illegal move")
	}
	if !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("expected ErrIllegalMove, got %v", err)
	}
}

func TestMakeMoveStrAppliesAPromotion(t *testing.T) {
	e, err := New(variants.Standard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.LoadFEN("8/4P1k1/8/8/8/8/6K1/8 w - -"); err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	res, err := e.MakeMoveStr("e7e8q")
	if err != nil {
		t.Fatalf("MakeMoveStr: %v", err)
	}
	if res.Move.Promotion != "queen" {
		t.Fatalf("expected a queen promotion, got %q", res.Move.Promotion)
	}
}

func TestMakeMoveDetectsCheckmateOutcome(t *testing.T) {
	e, err := New(variants.Standard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.LoadFEN("6k1/5ppp/8/8/8/8/4R3/K7 w - -"); err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	res, err := e.MakeMoveStr("e2e8")
	if err != nil {
		t.Fatalf("MakeMoveStr: %v", err)
	}
	if !res.Outcome.Decided || res.Outcome.Draw || res.Outcome.Winner != "white" {
		t.Fatalf("expected a decisive white win, got %+v", res.Outcome)
	}
}

func TestGetBestMoveFindsMateInOne(t *testing.T) {
	e, err := New(variants.Standard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.LoadFEN("6k1/5ppp/8/8/8/8/8/K3R3 w - -"); err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	res, err := e.GetBestMove(3)
	if err != nil {
		t.Fatalf("GetBestMove: %v", err)
	}
	if res.Move.FromName != "e1" || res.Move.ToName != "e8" {
		t.Fatalf("expected Re1-e8#, got %s%s", res.Move.FromName, res.Move.ToName)
	}
}

func TestSetNumThreadsRebuildsThePool(t *testing.T) {
	e, err := New(variants.Standard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.SetNumThreads(2)
	res, err := e.GetBestMove(1)
	if err != nil {
		t.Fatalf("GetBestMove after SetNumThreads: %v", err)
	}
	if res.Move.From == res.Move.To {
		t.Fatalf("expected a real move, got a null-looking move %+v", res.Move)
	}
}

func TestStateDiffReportsSideToMoveAndCheck(t *testing.T) {
	e, err := New(variants.Standard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	diff := e.StateDiff()
	if diff.PlayerToMove != "white" {
		t.Fatalf("expected white to move at the start, got %q", diff.PlayerToMove)
	}
	if diff.InCheck {
		t.Fatal("start position should not be check")
	}

	if err := e.LoadFEN("4k3/8/8/8/8/8/4R3/K7 b - -"); err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	diff = e.StateDiff()
	if !diff.InCheck {
		t.Fatal("expected black to be in check")
	}
}

func TestUndoIsUnsupported(t *testing.T) {
	e, err := New(variants.Standard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := e.Undo(); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestAtomicMakeMoveReportsExplodedSquares(t *testing.T) {
	e, err := New(variants.Atomic())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// A knight on e4 captures a knight on f6, exploding both knights plus
	// every non-pawn piece in a king-move radius of f6 (here, none other
	// than the two knights themselves survive to be exploded).
	if err := e.LoadFEN("4k3/8/5n2/8/4N3/8/8/4K3 w - -"); err != nil {
		t.Fatalf("LoadFEN: %v", err)
	}
	res, err := e.MakeMoveStr("e4f6")
	if err != nil {
		t.Fatalf("MakeMoveStr: %v", err)
	}
	if len(res.Exploded) == 0 {
		t.Fatal("expected atomic capture to report at least one exploded square")
	}
}

func TestGetBestMoveWhileBusyReturnsEngineBusy(t *testing.T) {
	e, err := New(variants.Standard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !e.busy.CompareAndSwap(false, true) {
		t.Fatal("expected to acquire the busy flag")
	}
	defer e.busy.Store(false)

	_, err = e.GetBestMove(1)
	if !errors.Is(err, ErrEngineBusy) {
		t.Fatalf("expected ErrEngineBusy, got %v", err)
	}
}
