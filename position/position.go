package position

import (
	"variantchess/bitboard"
	"variantchess/rules"
)

type occupant struct {
	id      rules.PieceID
	player  rules.Player
	present bool
}

// Position is one game's mutable state: piece placement (both as
// per-piece bitboards and a mailbox for O(1) point queries), whose
// turn it is, castling rights, the en-passant target, per-player check
// counts (for N-check variants), move-clock bookkeeping, the running
// Zobrist hash, and the key history that repetition detection reads.
// MakeMove hands its undo record back to the caller rather than
// keeping an undo stack here.
type Position struct {
	Desc *rules.Descriptor

	occ      [2]bitboard.BB256
	byPiece  map[rules.PieceID][2]bitboard.BB256
	board    []occupant

	Side           rules.Player
	CastleRights   [2][]bool // [player][CastleSides index]
	EPSquare       int       // -1 if none
	EPVictimSquare int       // square of the piece an EP capture removes; meaningful only when EPSquare >= 0
	CheckCounts    [2]int
	HalfmoveClock  int
	FullmoveNumber int
	ZobristKey     uint64

	history []undoRecord
	keys    []uint64 // Zobrist key at every ply reached, for repetition detection
}

// New creates an empty Position over desc, ready for setup via
// PlacePiece/SetSideToMove/etc (as the fen package does) followed by
// Finalize.
func New(desc *rules.Descriptor) *Position {
	p := &Position{
		Desc:         desc,
		byPiece:      make(map[rules.PieceID][2]bitboard.BB256, len(desc.Pieces)),
		board:        make([]occupant, desc.Geometry.Squares()),
		CastleRights: [2][]bool{make([]bool, len(desc.CastleSides)), make([]bool, len(desc.CastleSides))},
		EPSquare:     -1,
		EPVictimSquare: -1,
	}
	for _, pt := range desc.Pieces {
		p.byPiece[pt.ID] = [2]bitboard.BB256{}
	}
	return p
}

// Clone returns a deep copy safe for an independent search worker to
// mutate (Lazy SMP workers each own a clone of the root position).
func (p *Position) Clone() *Position {
	c := &Position{
		Desc:           p.Desc,
		occ:            p.occ,
		byPiece:        make(map[rules.PieceID][2]bitboard.BB256, len(p.byPiece)),
		board:          make([]occupant, len(p.board)),
		Side:           p.Side,
		CastleRights:   [2][]bool{append([]bool(nil), p.CastleRights[0]...), append([]bool(nil), p.CastleRights[1]...)},
		EPSquare:       p.EPSquare,
		EPVictimSquare: p.EPVictimSquare,
		CheckCounts:    p.CheckCounts,
		HalfmoveClock:  p.HalfmoveClock,
		FullmoveNumber: p.FullmoveNumber,
		ZobristKey:     p.ZobristKey,
		keys:           append([]uint64(nil), p.keys...),
	}
	for id, bbs := range p.byPiece {
		c.byPiece[id] = bbs
	}
	copy(c.board, p.board)
	return c
}

// PlacePiece puts a piece on sq, updating occupancy, the mailbox and
// the running Zobrist key. Used both by fen parsing during setup
// (Finalize recomputes the key from scratch afterward, so the
// incremental toggles during setup are harmless) and by make/unmake
// while playing.
func (p *Position) PlacePiece(sq int, id rules.PieceID, player rules.Player) {
	p.board[sq] = occupant{id: id, player: player, present: true}
	p.occ[player].Set(sq)
	bbs := p.byPiece[id]
	bbs[player].Set(sq)
	p.byPiece[id] = bbs
	p.ZobristKey ^= p.Desc.Zobrist.Piece[id][player][sq]
}

func (p *Position) SetSideToMove(pl rules.Player)     { p.Side = pl }
// SetEnPassant records the target square a pawn-like piece may capture
// onto and the square of the piece that capture would remove (its own
// square, when it advanced two ranks last move).
func (p *Position) SetEnPassant(target, victim int) {
	p.EPSquare = target
	p.EPVictimSquare = victim
}
func (p *Position) SetCheckCount(pl rules.Player, n int) { p.CheckCounts[pl] = n }
func (p *Position) SetHalfmoveClock(n int)            { p.HalfmoveClock = n }
func (p *Position) SetFullmoveNumber(n int)           { p.FullmoveNumber = n }

// SetCastleRight enables or disables one castling right by index into
// Desc.CastleSides.
func (p *Position) SetCastleRight(idx int, player rules.Player, allowed bool) {
	p.CastleRights[player][idx] = allowed
}

// Finalize computes ZobristKey from the current placement/state from
// scratch and seeds the repetition-key history. Call once after setup
// is complete.
func (p *Position) Finalize() {
	var key uint64
	for sq := 0; sq < p.Desc.Geometry.Squares(); sq++ {
		o := p.board[sq]
		if !o.present {
			continue
		}
		key ^= p.Desc.Zobrist.Piece[o.id][o.player][sq]
	}
	for player, sides := range p.CastleRights {
		for idx, allowed := range sides {
			if allowed {
				key ^= p.Desc.Zobrist.CastleSq[player][idx]
			}
		}
	}
	if p.EPSquare >= 0 {
		file, _ := p.Desc.Geometry.FileRank(p.EPSquare)
		key ^= p.Desc.Zobrist.EnPassant[file]
	}
	if p.Side == rules.Black {
		key ^= p.Desc.Zobrist.Side
	}
	for pl := 0; pl < 2; pl++ {
		if p.Desc.CheckLimit > 0 {
			key ^= p.Desc.Zobrist.CheckCount[pl][p.CheckCounts[pl]]
		}
	}
	p.ZobristKey = key
	p.keys = append(p.keys[:0], key)
}

// --- rules.BoardAccess implementation, so variant hooks can read/mutate a Position ---

func (p *Position) Geometry() rules.Geometry { return p.Desc.Geometry }

func (p *Position) PieceAt(sq int) (rules.PieceID, rules.Player, bool) {
	o := p.board[sq]
	return o.id, o.player, o.present
}

func (p *Position) RemovePiece(sq int) {
	o := p.board[sq]
	if !o.present {
		return
	}
	p.occ[o.player].Clear(sq)
	bbs := p.byPiece[o.id]
	bbs[o.player].Clear(sq)
	p.byPiece[o.id] = bbs
	p.board[sq] = occupant{}
	p.ZobristKey ^= p.Desc.Zobrist.Piece[o.id][o.player][sq]
}

func (p *Position) Neighborhood(sq int, radius int) []int {
	g := p.Desc.Geometry
	file, rank := g.FileRank(sq)
	var out []int
	for df := -radius; df <= radius; df++ {
		for dr := -radius; dr <= radius; dr++ {
			f, r := file+df, rank+dr
			if !g.InBounds(f, r) {
				continue
			}
			s := g.SquareOf(f, r)
			if g.Valid.Test(s) {
				out = append(out, s)
			}
		}
	}
	return out
}

func (p *Position) LeaderSquare(player rules.Player) (int, bool) {
	for _, pt := range p.Desc.Pieces {
		if !pt.Leader {
			continue
		}
		bb := p.byPiece[pt.ID][player]
		if !bb.IsZero() {
			return bb.LSB(), true
		}
	}
	return -1, false
}

func (p *Position) SideToMove() rules.Player { return p.Side }
func (p *Position) CheckCount(player rules.Player) int { return p.CheckCounts[player] }

func (p *Position) HasAnyPieces(player rules.Player) bool { return !p.occ[player].IsZero() }

func (p *Position) PieceTypeOf(id rules.PieceID) rules.PieceType { return p.Desc.PieceTypeOf(id) }

// Occupancy returns the combined White|Black occupancy bitboard.
func (p *Position) Occupancy() bitboard.BB256 { return p.occ[rules.White].Or(p.occ[rules.Black]) }

// PlayerOccupancy returns the occupancy bitboard of one player.
func (p *Position) PlayerOccupancy(pl rules.Player) bitboard.BB256 { return p.occ[pl] }

// PieceBitboard returns the bitboard of one piece type for one player.
func (p *Position) PieceBitboard(id rules.PieceID, pl rules.Player) bitboard.BB256 {
	return p.byPiece[id][pl]
}
