package rules

import "variantchess/bitboard"

// Player identifies a side. 0 = White, 1 = Black.
type Player uint8

const (
	White Player = 0
	Black Player = 1
)

// Other returns the opposing player.
func (p Player) Other() Player { return p ^ 1 }

// PieceID is a value-typed handle into a Descriptor's piece table, shared
// between both players (a piece's rules mirror across White/Black).
type PieceID uint8

// NoPiece marks the absence of a piece where a PieceID is expected.
const NoPiece PieceID = 0xFF

// Offset describes a single (dfile, drank) jump, such as a knight leap or
// a king step, independent of any sliding behaviour.
type Offset struct {
	DFile, DRank        int
	CanMove, CanCapture bool
}

// SlideRule describes sliding movement along one canonical direction.
type SlideRule struct {
	Dir                 Direction
	CanMove, CanCapture bool
	MaxDistance         int // 0 = unlimited (until edge/blocker)
}

// PieceType is the data-driven description of how one piece moves,
// captures, promotes, and participates in castling/royalty rules. It is
// shared by both players; per-player specifics (promotion rank, double
// jump origin, initial square) are expressed as two-player arrays.
type PieceType struct {
	ID           PieceID
	Name         string
	DisplayWhite rune
	DisplayBlack rune

	Offsets []Offset
	Slides  []SlideRule

	// PromotionTargets, in priority order, reachable when a move lands on
	// a bit set in PromotionSquares[player].
	PromotionTargets  []PieceID
	PromotionSquares  [2]bitboard.BB256
	PromotionMandatory bool

	// DoubleJumpOrigins[player] are the squares from which this piece may
	// move DoubleJumpDeltaRanks ranks forward in one move (pawn's
	// two-square opening push, generalized).
	DoubleJumpOrigins    [2]bitboard.BB256
	DoubleJumpDeltaRanks int

	// EnPassantCapturer marks a piece that can capture en passant, i.e.
	// one whose diagonal-capture Offsets may target the EP target square
	// even when it is empty.
	EnPassantCapturer bool

	IsKing          bool
	IsCastlingRook  bool
	Leader          bool // loss-on-capture (royalty)
	WinOnSquare     bitboard.BB256
	ExplosionImmune bool

	// Computed once per variant load (rules.Build):
	MaterialValue int32
	PST           [2][]int16 // Width*Height entries, per player, mirrored
}

// Display returns the FEN-style display character for the given player.
func (pt PieceType) Display(p Player) rune {
	if p == White {
		return pt.DisplayWhite
	}
	return pt.DisplayBlack
}
