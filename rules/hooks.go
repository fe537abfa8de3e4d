package rules

// BoardAccess is the minimal read/mutate surface a variant hook needs.
// It is implemented by position.Position; keeping it here (instead of
// importing the position package, which imports rules) avoids a cycle
// while still letting a Descriptor carry closures that mutate the board.
type BoardAccess interface {
	Geometry() Geometry
	PieceAt(sq int) (PieceID, Player, bool)
	RemovePiece(sq int)
	Neighborhood(sq int, radius int) []int
	LeaderSquare(player Player) (int, bool)
	SideToMove() Player
	CheckCount(player Player) int
	IsSquareAttackedBy(sq int, by Player) bool
	HasAnyPieces(player Player) bool
	PieceTypeOf(id PieceID) PieceType
}

// OutcomeReason enumerates why a game ended.
type OutcomeReason int

const (
	NoOutcome OutcomeReason = iota
	Checkmate
	Stalemate
	Repetition
	FiftyMove
	InsufficientMaterial
	AntichessWin
	KingOfTheHillWin
	RacingKingsWin
	NCheckWin
	AtomicWin
	NoPiecesLeft
)

// Outcome reports a decided (or drawn) game result.
type Outcome struct {
	Decided bool
	Draw    bool
	Winner  Player
	Reason  OutcomeReason
}

// CaptureContext describes a just-applied capture, for OnCapture hooks.
type CaptureContext struct {
	From, To       int
	Mover          PieceID
	MoverPlayer    Player
	Captured       PieceID
	CapturedSquare int
}

// Hooks is the small closed set of variant-specific extension points
// called from make/unmake, legality, evaluation, and terminal
// detection. Every hook is total: it must not panic and must return
// promptly, since callers treat variant-hook exceptions as
// programmer error, not a recoverable condition.
type Hooks struct {
	// OnCapture runs immediately after a capture is applied (mover has
	// already moved, the captured piece has already been removed) and
	// may perform extra mutations, returning the squares of any
	// additionally-removed pieces (e.g. atomic explosion radius).
	OnCapture func(b BoardAccess, ctx CaptureContext) (exploded []int)

	// Terminal inspects the position after legal-move generation and
	// returns a decided Outcome, or a zero Outcome if play continues.
	Terminal func(b BoardAccess, hasLegalMoves, inCheck bool) Outcome

	// LegalFilter narrows an already-legal move list down further, e.g.
	// antichess's mandatory-capture rule. isCapture is index-aligned
	// with the caller's move slice; the returned mask is too.
	LegalFilter func(b BoardAccess, isCapture []bool) (keep []bool)

	// EvalBonus adds a variant-specific centipawn bonus from the
	// perspective of `for_`.
	EvalBonus func(b BoardAccess, for_ Player) int32
}

// DefaultHooks implements standard-chess semantics: no capture side
// effects, checkmate/stalemate/draw terminal detection only, no move
// filtering beyond ordinary legality, and no evaluation bonus. Variant
// constructors start from this and override individual fields.
func DefaultHooks() Hooks {
	return Hooks{
		OnCapture: func(BoardAccess, CaptureContext) []int { return nil },
		Terminal: func(b BoardAccess, hasLegalMoves, inCheck bool) Outcome {
			if hasLegalMoves {
				return Outcome{}
			}
			if inCheck {
				return Outcome{Decided: true, Winner: b.SideToMove().Other(), Reason: Checkmate}
			}
			return Outcome{Decided: true, Draw: true, Reason: Stalemate}
		},
		LegalFilter: func(_ BoardAccess, isCapture []bool) []bool {
			keep := make([]bool, len(isCapture))
			for i := range keep {
				keep[i] = true
			}
			return keep
		},
		EvalBonus: func(BoardAccess, Player) int32 { return 0 },
	}
}
