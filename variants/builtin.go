package variants

import (
	"variantchess/bitboard"
	"variantchess/rules"
)

// Standard builds the ordinary 8x8 chess ruleset: two armies of the
// classic six pieces, kingside/queenside castling, checkmate/stalemate
// termination, no variant hooks beyond rules.DefaultHooks.
func Standard() *rules.Descriptor {
	geom := rules.NewGeometry(8, 8, bitboard.Zero)
	return rules.Build(rules.Descriptor{
		Name:        "standard",
		Geometry:    geom,
		Pieces:      classicPieces(geom),
		CastleSides: standardCastleSides(geom),
		InitialFEN:  standardInitialFEN,
	})
}

// Chess960 reuses standard chess's board, piece dictionary, and castling
// squares; only the starting placement (shuffled back rank, still
// mirrored between the two players and still keeping the king between
// its two rooks) differs, and that comes entirely from the FEN a caller
// loads. Castling rights are still tracked per rules.CastleSide keyed
// on the fixed e/g/c-file squares standardCastleSides describes: a full
// Chess960 implementation would let a rook start on any file and derive
// king/rook landing squares per game, but a Descriptor's CastleSides
// are fixed at Build time, so this scopes Chess960 to shuffled-startpos
// Chess960 games whose rook files still land on the conventional squares
// after castling.
func Chess960() *rules.Descriptor {
	geom := rules.NewGeometry(8, 8, bitboard.Zero)
	d := rules.Build(rules.Descriptor{
		Name:        "chess960",
		Geometry:    geom,
		Pieces:      classicPieces(geom),
		CastleSides: standardCastleSides(geom),
		InitialFEN:  standardInitialFEN,
	})
	return d
}

// Atomic builds atomic chess: captures explode a 3x3 neighborhood,
// destroying every non-pawn piece caught in it (including the capturer),
// and a side loses the instant its king is exploded.
func Atomic() *rules.Descriptor {
	geom := rules.NewGeometry(8, 8, bitboard.Zero)
	pieces := classicPieces(geom)
	pieces[Pawn].ExplosionImmune = true

	return rules.Build(rules.Descriptor{
		Name:        "atomic",
		Geometry:    geom,
		Pieces:      pieces,
		CastleSides: standardCastleSides(geom),
		InitialFEN:  standardInitialFEN,
		Hooks: rules.Hooks{
			OnCapture:   atomicOnCapture,
			Terminal:    leaderlessTerminal(rules.AtomicWin),
			LegalFilter: rules.DefaultHooks().LegalFilter,
			EvalBonus:   rules.DefaultHooks().EvalBonus,
		},
	})
}

// Antichess (a.k.a. giveaway/losing chess) builds standard chess's board
// and pieces but strips the king of its royalty (capture is legal,
// self-check is not a concept) and requires every side to capture when
// a capture is available; the game ends the instant the side to move
// has no legal move at all, and that side wins.
func Antichess() *rules.Descriptor {
	geom := rules.NewGeometry(8, 8, bitboard.Zero)
	pieces := classicPieces(geom)
	pieces[King].Leader = false

	return rules.Build(rules.Descriptor{
		Name:        "antichess",
		Geometry:    geom,
		Pieces:      pieces,
		CastleSides: nil,
		InitialFEN:  standardInitialFEN,
		Hooks: rules.Hooks{
			OnCapture:   rules.DefaultHooks().OnCapture,
			Terminal:    antichessTerminal,
			LegalFilter: antichessLegalFilter,
			EvalBonus:   rules.DefaultHooks().EvalBonus,
		},
	})
}

// hordeInitialFEN gives White a pawn horde with no king (so White is
// never in check) and Black the standard back rank and pawns.
const hordeInitialFEN = "rnbqkbnr/pppppppp/8/1PP2PP1/PPPPPPPP/PPPPPPPP/PPPPPPPP/PPPPPPPP w (ALL) -"

// Horde builds horde chess: White's army is an oversized pawn mass with
// no king, so White cannot be checkmated; White wins by checkmating
// Black, Black wins by capturing every White piece.
func Horde() *rules.Descriptor {
	geom := rules.NewGeometry(8, 8, bitboard.Zero)
	return rules.Build(rules.Descriptor{
		Name:        "horde",
		Geometry:    geom,
		Pieces:      classicPieces(geom),
		CastleSides: standardCastleSides(geom),
		InitialFEN:  hordeInitialFEN,
		Hooks: rules.Hooks{
			OnCapture:   rules.DefaultHooks().OnCapture,
			Terminal:    hordeTerminal,
			LegalFilter: rules.DefaultHooks().LegalFilter,
			EvalBonus:   rules.DefaultHooks().EvalBonus,
		},
	})
}

const racingKingsInitialFEN = "8/8/8/8/8/8/krbnNBRK/qrbnNBRQ w - -"

// RacingKings builds racing kings: no captures give the win, instead
// whichever leader reaches the far rank first wins outright. Kings keep
// their royalty, so a move that leaves one's own king attacked is
// illegal and checkmate/stalemate still end the game. The rule that
// a move delivering check is itself illegal is not modeled — Hooks has
// no visibility into whether a candidate move gives check before it is
// made, only after — so this variant is race-complete but not fully
// legality-complete.
func RacingKings() *rules.Descriptor {
	geom := rules.NewGeometry(8, 8, bitboard.Zero)
	pieces := classicPieces(geom)
	var backRank bitboard.BB256
	for f := 0; f < geom.Width; f++ {
		backRank.Set(geom.SquareOf(f, geom.Height-1))
	}
	pieces[King].WinOnSquare = backRank

	return rules.Build(rules.Descriptor{
		Name:        "racing-kings",
		Geometry:    geom,
		Pieces:      pieces,
		CastleSides: nil,
		InitialFEN:  racingKingsInitialFEN,
		Hooks: rules.Hooks{
			OnCapture:   rules.DefaultHooks().OnCapture,
			Terminal:    winOnSquareTerminal(rules.RacingKingsWin),
			LegalFilter: rules.DefaultHooks().LegalFilter,
			EvalBonus:   rules.DefaultHooks().EvalBonus,
		},
	})
}

// KingOfTheHill builds standard chess with one added win condition:
// marching your own king onto one of the four center squares wins
// immediately, checkmate and stalemate still apply otherwise.
func KingOfTheHill() *rules.Descriptor {
	geom := rules.NewGeometry(8, 8, bitboard.Zero)
	pieces := classicPieces(geom)
	var center bitboard.BB256
	cf0, cf1 := geom.Width/2-1, geom.Width/2
	cr0, cr1 := geom.Height/2-1, geom.Height/2
	center.Set(geom.SquareOf(cf0, cr0))
	center.Set(geom.SquareOf(cf1, cr0))
	center.Set(geom.SquareOf(cf0, cr1))
	center.Set(geom.SquareOf(cf1, cr1))
	pieces[King].WinOnSquare = center

	return rules.Build(rules.Descriptor{
		Name:        "king-of-the-hill",
		Geometry:    geom,
		Pieces:      pieces,
		CastleSides: standardCastleSides(geom),
		InitialFEN:  standardInitialFEN,
		Hooks: rules.Hooks{
			OnCapture:   rules.DefaultHooks().OnCapture,
			Terminal:    winOnSquareTerminal(rules.KingOfTheHillWin),
			LegalFilter: rules.DefaultHooks().LegalFilter,
			EvalBonus:   rules.DefaultHooks().EvalBonus,
		},
	})
}

// NCheck builds standard chess with an added win condition: whichever
// side delivers `limit` checks to its opponent first wins outright.
// limit is typically 3.
func NCheck(limit int) *rules.Descriptor {
	geom := rules.NewGeometry(8, 8, bitboard.Zero)
	return rules.Build(rules.Descriptor{
		Name:        "n-check",
		Geometry:    geom,
		Pieces:      classicPieces(geom),
		CastleSides: standardCastleSides(geom),
		CheckLimit:  limit,
		InitialFEN:  standardInitialFEN,
		Hooks: rules.Hooks{
			OnCapture:   rules.DefaultHooks().OnCapture,
			Terminal:    nCheckTerminal(limit),
			LegalFilter: rules.DefaultHooks().LegalFilter,
			EvalBonus:   rules.DefaultHooks().EvalBonus,
		},
	})
}
