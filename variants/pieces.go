// Package variants holds the concrete rules.Descriptor constructors
// for standard chess and its supported variants, plus the YAML
// serialization that lets a caller load a custom one from a file.
package variants

import (
	"variantchess/bitboard"
	"variantchess/rules"
)

// Classic piece ids, shared by every variant built from classicPieces.
const (
	King rules.PieceID = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// classicPieces returns the standard six-piece dictionary over an 8x8
// board (or any geom of the same shape a caller wants to reuse it on),
// with promotion/double-jump/en-passant/castling flags wired the way
// standard chess defines them.
func classicPieces(geom rules.Geometry) []rules.PieceType {
	kingOffsets := []rules.Offset{
		{DFile: 1, DRank: 0, CanMove: true, CanCapture: true},
		{DFile: -1, DRank: 0, CanMove: true, CanCapture: true},
		{DFile: 0, DRank: 1, CanMove: true, CanCapture: true},
		{DFile: 0, DRank: -1, CanMove: true, CanCapture: true},
		{DFile: 1, DRank: 1, CanMove: true, CanCapture: true},
		{DFile: -1, DRank: -1, CanMove: true, CanCapture: true},
		{DFile: 1, DRank: -1, CanMove: true, CanCapture: true},
		{DFile: -1, DRank: 1, CanMove: true, CanCapture: true},
	}
	knightOffsets := []rules.Offset{
		{DFile: 1, DRank: 2, CanMove: true, CanCapture: true},
		{DFile: 2, DRank: 1, CanMove: true, CanCapture: true},
		{DFile: 2, DRank: -1, CanMove: true, CanCapture: true},
		{DFile: 1, DRank: -2, CanMove: true, CanCapture: true},
		{DFile: -1, DRank: -2, CanMove: true, CanCapture: true},
		{DFile: -2, DRank: -1, CanMove: true, CanCapture: true},
		{DFile: -2, DRank: 1, CanMove: true, CanCapture: true},
		{DFile: -1, DRank: 2, CanMove: true, CanCapture: true},
	}
	diagonals := []rules.SlideRule{
		{Dir: rules.NorthEast, CanMove: true, CanCapture: true},
		{Dir: rules.NorthWest, CanMove: true, CanCapture: true},
		{Dir: rules.SouthEast, CanMove: true, CanCapture: true},
		{Dir: rules.SouthWest, CanMove: true, CanCapture: true},
	}
	orthogonals := []rules.SlideRule{
		{Dir: rules.North, CanMove: true, CanCapture: true},
		{Dir: rules.South, CanMove: true, CanCapture: true},
		{Dir: rules.East, CanMove: true, CanCapture: true},
		{Dir: rules.West, CanMove: true, CanCapture: true},
	}

	var whitePromo, blackPromo, whiteOrigin, blackOrigin bitboard.BB256
	for f := 0; f < geom.Width; f++ {
		whitePromo.Set(geom.SquareOf(f, geom.Height-1))
		blackPromo.Set(geom.SquareOf(f, 0))
		whiteOrigin.Set(geom.SquareOf(f, 1))
		blackOrigin.Set(geom.SquareOf(f, geom.Height-2))
	}

	return []rules.PieceType{
		{
			ID: King, Name: "king", DisplayWhite: 'K', DisplayBlack: 'k',
			Offsets: kingOffsets, IsKing: true, Leader: true,
		},
		{
			ID: Queen, Name: "queen", DisplayWhite: 'Q', DisplayBlack: 'q',
			Slides: append(append([]rules.SlideRule{}, diagonals...), orthogonals...),
		},
		{
			ID: Rook, Name: "rook", DisplayWhite: 'R', DisplayBlack: 'r',
			Slides: orthogonals, IsCastlingRook: true,
		},
		{
			ID: Bishop, Name: "bishop", DisplayWhite: 'B', DisplayBlack: 'b',
			Slides: diagonals,
		},
		{
			ID: Knight, Name: "knight", DisplayWhite: 'N', DisplayBlack: 'n',
			Offsets: knightOffsets,
		},
		{
			ID: Pawn, Name: "pawn", DisplayWhite: 'P', DisplayBlack: 'p',
			Offsets: []rules.Offset{
				{DFile: 0, DRank: 1, CanMove: true},
				{DFile: 1, DRank: 1, CanCapture: true},
				{DFile: -1, DRank: 1, CanCapture: true},
			},
			PromotionTargets:     []rules.PieceID{Queen, Rook, Bishop, Knight},
			PromotionSquares:     [2]bitboard.BB256{whitePromo, blackPromo},
			PromotionMandatory:   true,
			DoubleJumpOrigins:    [2]bitboard.BB256{whiteOrigin, blackOrigin},
			DoubleJumpDeltaRanks: 2,
			EnPassantCapturer:    true,
		},
	}
}

// standardCastleSides returns the usual kingside/queenside castling
// pairing for an 8-wide board with the king starting on the e-file.
func standardCastleSides(geom rules.Geometry) []rules.CastleSide {
	rank := [2]int{0, geom.Height - 1}
	e := [2]int{geom.SquareOf(4, rank[0]), geom.SquareOf(4, rank[1])}
	return []rules.CastleSide{
		{
			Name:            "kingside",
			KingFrom:        e,
			KingTo:          [2]int{geom.SquareOf(6, rank[0]), geom.SquareOf(6, rank[1])},
			RookFrom:        [2]int{geom.SquareOf(7, rank[0]), geom.SquareOf(7, rank[1])},
			RookTo:          [2]int{geom.SquareOf(5, rank[0]), geom.SquareOf(5, rank[1])},
			KingPassSquares: [2][]int{{e[0], geom.SquareOf(5, rank[0]), geom.SquareOf(6, rank[0])}, {e[1], geom.SquareOf(5, rank[1]), geom.SquareOf(6, rank[1])}},
			EmptySquares:    [2][]int{{geom.SquareOf(5, rank[0]), geom.SquareOf(6, rank[0])}, {geom.SquareOf(5, rank[1]), geom.SquareOf(6, rank[1])}},
		},
		{
			Name:            "queenside",
			KingFrom:        e,
			KingTo:          [2]int{geom.SquareOf(2, rank[0]), geom.SquareOf(2, rank[1])},
			RookFrom:        [2]int{geom.SquareOf(0, rank[0]), geom.SquareOf(0, rank[1])},
			RookTo:          [2]int{geom.SquareOf(3, rank[0]), geom.SquareOf(3, rank[1])},
			KingPassSquares: [2][]int{{e[0], geom.SquareOf(3, rank[0]), geom.SquareOf(2, rank[0])}, {e[1], geom.SquareOf(3, rank[1]), geom.SquareOf(2, rank[1])}},
			EmptySquares:    [2][]int{{geom.SquareOf(1, rank[0]), geom.SquareOf(2, rank[0]), geom.SquareOf(3, rank[0])}, {geom.SquareOf(1, rank[1]), geom.SquareOf(2, rank[1]), geom.SquareOf(3, rank[1])}},
		},
	}
}

const standardInitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w (ALL) -"
