package rules

import (
	"testing"

	"variantchess/bitboard"
)

func queenType() PieceType {
	return PieceType{
		ID: 0, Name: "queen", DisplayWhite: 'Q', DisplayBlack: 'q',
		Slides: []SlideRule{
			{Dir: North, CanMove: true, CanCapture: true},
			{Dir: South, CanMove: true, CanCapture: true},
			{Dir: East, CanMove: true, CanCapture: true},
			{Dir: West, CanMove: true, CanCapture: true},
			{Dir: NorthEast, CanMove: true, CanCapture: true},
			{Dir: NorthWest, CanMove: true, CanCapture: true},
			{Dir: SouthEast, CanMove: true, CanCapture: true},
			{Dir: SouthWest, CanMove: true, CanCapture: true},
		},
	}
}

func kingType() PieceType {
	return PieceType{
		ID: 1, Name: "king", DisplayWhite: 'K', DisplayBlack: 'k',
		Offsets: []Offset{
			{DFile: 1, DRank: 0, CanMove: true, CanCapture: true},
			{DFile: -1, DRank: 0, CanMove: true, CanCapture: true},
			{DFile: 0, DRank: 1, CanMove: true, CanCapture: true},
			{DFile: 0, DRank: -1, CanMove: true, CanCapture: true},
			{DFile: 1, DRank: 1, CanMove: true, CanCapture: true},
			{DFile: -1, DRank: -1, CanMove: true, CanCapture: true},
			{DFile: 1, DRank: -1, CanMove: true, CanCapture: true},
			{DFile: -1, DRank: 1, CanMove: true, CanCapture: true},
		},
		IsKing: true, Leader: true,
	}
}

func pawnType() PieceType {
	return PieceType{
		ID: 2, Name: "pawn", DisplayWhite: 'P', DisplayBlack: 'p',
		Offsets: []Offset{
			{DFile: 0, DRank: 1, CanMove: true},
			{DFile: 1, DRank: 1, CanCapture: true},
			{DFile: -1, DRank: 1, CanCapture: true},
		},
	}
}

// A leader is worth far more than anything a search should ever accept
// trading it for, and a queen with eight unlimited slide directions
// should heavily outvalue a one-step pawn.
func TestMaterialValueOrdering(t *testing.T) {
	tuning := DefaultEvalTuning()
	pawn, queen, king := materialValue(pawnType(), tuning), materialValue(queenType(), tuning), materialValue(kingType(), tuning)
	if !(pawn < queen) {
		t.Fatalf("expected pawn material %d < queen material %d", pawn, queen)
	}
	if !(queen < king) {
		t.Fatalf("expected queen material %d < leader penalty %d", queen, king)
	}
}

// On an empty 8x8 board a queen's generated PST should score a central
// square higher than a corner: Chebyshev centrality dominates the
// table's shape, and a corner also cuts a slider's own reach in the
// localVisibility term.
func TestGeneratePSTFavorsCenterForQueen(t *testing.T) {
	g := NewGeometry(8, 8, bitboard.Zero)
	tuning := DefaultEvalTuning()

	queenPST := generatePST(g, queenType(), tuning)
	center := g.SquareOf(3, 3)
	corner := g.SquareOf(0, 0)
	if queenPST[White][center] <= queenPST[White][corner] {
		t.Fatalf("queen PST: expected center (%d) > corner (%d)", queenPST[White][center], queenPST[White][corner])
	}
}
