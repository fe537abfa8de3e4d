// Package position holds the mutable game state: piece placement,
// side to move, castling/en-passant/check-count state, the Zobrist
// hash, and the pseudo-legal/legal move generator and make/unmake
// machinery that operate over a rules.Descriptor.
package position

import (
	"strings"

	"variantchess/rules"
)

// Move packs one move into a single 64-bit value: two square indices
// (8 bits each, enough for a 256-square board), three piece ids (8
// bits each, rules.NoPiece meaning "none"), a castle-side index
// (0xFF meaning "not a castle"), and a small flag bitmask. This
// generalizes goosemg's 32-bit Move to an arbitrary-size board and
// piece dictionary.
type Move uint64

const (
	moveFromShift    = 0
	moveToShift      = 8
	movePieceShift   = 16
	moveCapturedShift = 24
	movePromoShift   = 32
	moveCastleShift  = 40
	moveFlagShift    = 48
)

// Move flags, combinable in the byte at moveFlagShift (bits 48-55).
const (
	FlagNone       uint8 = 0
	FlagEnPassant  uint8 = 1 << 0
	FlagDoubleJump uint8 = 1 << 1
	FlagCastle     uint8 = 1 << 2
)

const noCastle = 0xFF

// NewMove packs a move's components. Use rules.NoPiece for captured/promo
// when not applicable, and noCastle (via NewCastleMove) for castling.
func NewMove(from, to int, piece, captured, promo rules.PieceID, flags uint8) Move {
	return newMove(from, to, piece, captured, promo, noCastle, flags)
}

// NewCastleMove packs a castling move, recording which Descriptor
// CastleSides entry it performs.
func NewCastleMove(from, to int, piece rules.PieceID, castleIdx int) Move {
	return newMove(from, to, piece, rules.NoPiece, rules.NoPiece, uint8(castleIdx), FlagCastle)
}

func newMove(from, to int, piece, captured, promo rules.PieceID, castleIdx uint8, flags uint8) Move {
	return Move(uint64(from&0xFF)<<moveFromShift |
		uint64(to&0xFF)<<moveToShift |
		uint64(piece)<<movePieceShift |
		uint64(captured)<<moveCapturedShift |
		uint64(promo)<<movePromoShift |
		uint64(castleIdx)<<moveCastleShift |
		uint64(flags)<<moveFlagShift)
}

func (m Move) From() int              { return int(uint8(m >> moveFromShift)) }
func (m Move) To() int                { return int(uint8(m >> moveToShift)) }
func (m Move) Piece() rules.PieceID   { return rules.PieceID(uint8(m >> movePieceShift)) }
func (m Move) Captured() rules.PieceID { return rules.PieceID(uint8(m >> moveCapturedShift)) }
func (m Move) Promotion() rules.PieceID { return rules.PieceID(uint8(m >> movePromoShift)) }
func (m Move) CastleIndex() int       { return int(uint8(m >> moveCastleShift)) }
func (m Move) Flags() uint8           { return uint8(m >> moveFlagShift) }

// IsCapture and IsPromotion guard against NullMove explicitly: NullMove
// is the zero value, so its packed captured/promotion fields read as
// piece ID 0 rather than rules.NoPiece (0xFF), and would otherwise
// misreport as both a capture and a promotion.
func (m Move) IsCapture() bool    { return m != NullMove && m.Captured() != rules.NoPiece }
func (m Move) IsPromotion() bool  { return m != NullMove && m.Promotion() != rules.NoPiece }
func (m Move) IsEnPassant() bool  { return m.Flags()&FlagEnPassant != 0 }
func (m Move) IsDoubleJump() bool { return m.Flags()&FlagDoubleJump != 0 }
func (m Move) IsCastle() bool     { return m.Flags()&FlagCastle != 0 }

// IsQuiet reports whether m is neither a capture nor a promotion,
// i.e. the class of move quiescence search stands still on.
func (m Move) IsQuiet() bool { return !m.IsCapture() && !m.IsPromotion() }

// NullMove is a reserved sentinel used by null-move pruning; From()==To()
// distinguishes it from any real move.
const NullMove Move = 0

// String renders a move in "from-to[=promo]" coordinate form, resolving
// square names from the descriptor's geometry and the promotion letter
// (if any) from its piece dictionary.
func (m Move) String(d *rules.Descriptor) string {
	var sb strings.Builder
	sb.WriteString(squareName(d.Geometry, m.From()))
	sb.WriteString(squareName(d.Geometry, m.To()))
	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteRune(d.PieceTypeOf(m.Promotion()).DisplayWhite)
	}
	return sb.String()
}

func squareName(g rules.Geometry, sq int) string {
	file, rank := g.FileRank(sq)
	var sb strings.Builder
	sb.WriteByte(fileLetter(file))
	sb.WriteString(rankLabel(rank))
	return sb.String()
}

func fileLetter(file int) byte {
	if file < 26 {
		return byte('a' + file)
	}
	return byte('a' + file%26)
}

func rankLabel(rank int) string {
	return itoa(rank + 1)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
