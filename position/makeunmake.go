package position

import "variantchess/rules"

// removedPiece records one piece taken off the board by a move (the
// direct capture target, an en-passant victim, or a piece cleared by a
// variant's OnCapture hook such as an atomic explosion), so UnmakeMove
// can put it back.
type removedPiece struct {
	sq     int
	id     rules.PieceID
	player rules.Player
}

// undoRecord is everything MakeMove needs UnmakeMove to restore that
// isn't cheaply derivable from the move itself.
type undoRecord struct {
	prevEPSquare       int
	prevEPVictimSquare int
	prevHalfmove       int
	prevFullmove       int
	prevZobrist        uint64
	prevCheckCounts    [2]int
	prevCastleRights   [2][]bool
	removed            []removedPiece
	rookFrom, rookTo   int // castling rook hop; rookFrom == -1 when m wasn't a castle
	takenKeys          []uint64 // repetition history trimmed off by an irreversible move; nil when none was trimmed
}

// MakeMove applies m to the position and reports whether it was legal
// (did not leave the mover's own leader in check). The board is
// mutated either way; illegal moves must be undone by the caller via
// UnmakeMove with the returned undoRecord, exactly like goosemg's
// MakeMove/ok contract.
func (p *Position) MakeMove(m Move) (undoRecord, bool) {
	us := p.Side
	them := us.Other()
	from, to := m.From(), m.To()
	pieceID := m.Piece()

	var undo undoRecord
	undo.prevEPSquare = p.EPSquare
	undo.prevEPVictimSquare = p.EPVictimSquare
	undo.prevHalfmove = p.HalfmoveClock
	undo.prevFullmove = p.FullmoveNumber
	undo.prevZobrist = p.ZobristKey
	undo.prevCheckCounts = p.CheckCounts
	undo.prevCastleRights = [2][]bool{
		append([]bool(nil), p.CastleRights[0]...),
		append([]bool(nil), p.CastleRights[1]...),
	}
	undo.rookFrom, undo.rookTo = -1, -1

	if p.EPSquare >= 0 {
		file, _ := p.Desc.Geometry.FileRank(p.EPSquare)
		p.ZobristKey ^= p.Desc.Zobrist.EnPassant[file]
	}
	p.EPSquare, p.EPVictimSquare = -1, -1

	if m.IsEnPassant() {
		victimSq := undo.prevEPVictimSquare
		if vid, vplayer, ok := p.PieceAt(victimSq); ok {
			p.RemovePiece(victimSq)
			undo.removed = append(undo.removed, removedPiece{sq: victimSq, id: vid, player: vplayer})
		}
	} else if m.IsCapture() {
		if cid, cplayer, ok := p.PieceAt(to); ok {
			p.RemovePiece(to)
			undo.removed = append(undo.removed, removedPiece{sq: to, id: cid, player: cplayer})
		}
	}

	p.RemovePiece(from)
	landingID := pieceID
	if m.IsPromotion() {
		landingID = m.Promotion()
	}
	p.PlacePiece(to, landingID, us)

	if m.IsCastle() {
		side := p.Desc.CastleSides[m.CastleIndex()]
		rf, rt := side.RookFrom[us], side.RookTo[us]
		if rid, _, ok := p.PieceAt(rf); ok {
			p.RemovePiece(rf)
			p.PlacePiece(rt, rid, us)
			undo.rookFrom, undo.rookTo = rf, rt
		}
	}

	if m.IsDoubleJump() {
		g := p.Desc.Geometry
		file, rank := g.FileRank(to)
		sign := 1
		if us == rules.Black {
			sign = -1
		}
		epSq := g.SquareOf(file, rank-sign)
		p.EPSquare, p.EPVictimSquare = epSq, to
		p.ZobristKey ^= p.Desc.Zobrist.EnPassant[file]
	}

	p.updateCastleRights(from, to)

	if (m.IsCapture() || m.IsEnPassant()) && p.Desc.Hooks.OnCapture != nil {
		captured := rules.NoPiece
		capturedSq := to
		if len(undo.removed) > 0 {
			captured = undo.removed[0].id
			capturedSq = undo.removed[0].sq
		}
		ctx := rules.CaptureContext{
			From: from, To: to,
			Mover: landingID, MoverPlayer: us,
			Captured: captured, CapturedSquare: capturedSq,
		}
		for _, sq := range p.Desc.Hooks.OnCapture(p, ctx) {
			if id, player, ok := p.PieceAt(sq); ok {
				p.RemovePiece(sq)
				undo.removed = append(undo.removed, removedPiece{sq: sq, id: id, player: player})
			}
		}
	}

	pt := p.Desc.PieceTypeOf(pieceID)
	if m.IsCapture() || m.IsEnPassant() || pt.DoubleJumpDeltaRanks > 0 {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}
	if us == rules.Black {
		p.FullmoveNumber++
	}

	if p.Desc.CheckLimit > 0 && p.InCheck(them) {
		limit := len(p.Desc.Zobrist.CheckCount[them]) - 1
		if p.CheckCounts[them] < limit {
			p.ZobristKey ^= p.Desc.Zobrist.CheckCount[them][p.CheckCounts[them]]
			p.CheckCounts[them]++
			p.ZobristKey ^= p.Desc.Zobrist.CheckCount[them][p.CheckCounts[them]]
		}
	}

	p.Side = them
	p.ZobristKey ^= p.Desc.Zobrist.Side

	legal := !p.InCheck(us)
	// A capture, en-passant, or double-jump-eligible move (goosemg's own
	// halfmove-clock reset condition) can never recur once made, so no
	// key from before it can ever match a future position: it's a TAKE,
	// and everything the history holds up to this point can be dropped.
	if p.HalfmoveClock == 0 {
		undo.takenKeys = p.keys
		p.keys = nil
	}
	p.keys = append(p.keys, p.ZobristKey)
	return undo, legal
}

// UnmakeMove restores the position to exactly the state it was in
// before the matching MakeMove call, using the undoRecord that call
// returned.
func (p *Position) UnmakeMove(m Move, undo undoRecord) {
	us := p.Side.Other()
	from, to := m.From(), m.To()

	if undo.rookFrom >= 0 {
		p.relocateRaw(undo.rookTo, undo.rookFrom, us)
	}

	landingID := m.Piece()
	if m.IsPromotion() {
		landingID = m.Promotion()
	}
	p.clearRaw(to, landingID, us)
	p.setRaw(from, m.Piece(), us)

	for i := len(undo.removed) - 1; i >= 0; i-- {
		r := undo.removed[i]
		p.setRaw(r.sq, r.id, r.player)
	}

	p.EPSquare = undo.prevEPSquare
	p.EPVictimSquare = undo.prevEPVictimSquare
	p.HalfmoveClock = undo.prevHalfmove
	p.FullmoveNumber = undo.prevFullmove
	p.CheckCounts = undo.prevCheckCounts
	p.CastleRights = undo.prevCastleRights
	p.ZobristKey = undo.prevZobrist
	p.Side = us

	if undo.takenKeys != nil {
		p.keys = undo.takenKeys
	} else if len(p.keys) > 0 {
		p.keys = p.keys[:len(p.keys)-1]
	}
}

// setRaw/clearRaw/relocateRaw mutate board+occupancy+piece bitboards
// without touching ZobristKey, since UnmakeMove restores the key
// wholesale from the saved undoRecord rather than unwinding each XOR.
func (p *Position) setRaw(sq int, id rules.PieceID, player rules.Player) {
	p.board[sq] = occupant{id: id, player: player, present: true}
	p.occ[player].Set(sq)
	bbs := p.byPiece[id]
	bbs[player].Set(sq)
	p.byPiece[id] = bbs
}

func (p *Position) clearRaw(sq int, id rules.PieceID, player rules.Player) {
	p.board[sq] = occupant{}
	p.occ[player].Clear(sq)
	bbs := p.byPiece[id]
	bbs[player].Clear(sq)
	p.byPiece[id] = bbs
}

func (p *Position) relocateRaw(from, to int, player rules.Player) {
	id, _, ok := p.PieceAt(from)
	if !ok {
		return
	}
	p.clearRaw(from, id, player)
	p.setRaw(to, id, player)
}

// updateCastleRights revokes any castling right whose king or rook has
// just moved off (or been captured on) its home square.
func (p *Position) updateCastleRights(from, to int) {
	for idx, side := range p.Desc.CastleSides {
		for pl := 0; pl < 2; pl++ {
			player := rules.Player(pl)
			if !p.CastleRights[player][idx] {
				continue
			}
			if from == side.KingFrom[player] || from == side.RookFrom[player] || to == side.RookFrom[player] {
				p.ZobristKey ^= p.Desc.Zobrist.CastleSq[player][idx]
				p.CastleRights[player][idx] = false
			}
		}
	}
}

// MakeNull applies a null move: flips the side to move without moving
// any piece, for null-move pruning in search. It never leaves the
// mover in check by construction, so it has no legality return.
func (p *Position) MakeNull() undoRecord {
	var undo undoRecord
	undo.prevEPSquare = p.EPSquare
	undo.prevEPVictimSquare = p.EPVictimSquare
	undo.prevZobrist = p.ZobristKey
	undo.rookFrom, undo.rookTo = -1, -1

	if p.EPSquare >= 0 {
		file, _ := p.Desc.Geometry.FileRank(p.EPSquare)
		p.ZobristKey ^= p.Desc.Zobrist.EnPassant[file]
	}
	p.EPSquare, p.EPVictimSquare = -1, -1
	p.Side = p.Side.Other()
	p.ZobristKey ^= p.Desc.Zobrist.Side
	p.keys = append(p.keys, p.ZobristKey)
	return undo
}

// UnmakeNull reverses MakeNull.
func (p *Position) UnmakeNull(undo undoRecord) {
	p.EPSquare = undo.prevEPSquare
	p.EPVictimSquare = undo.prevEPVictimSquare
	p.ZobristKey = undo.prevZobrist
	p.Side = p.Side.Other()
	if len(p.keys) > 0 {
		p.keys = p.keys[:len(p.keys)-1]
	}
}

// IsRepetition reports whether the current Zobrist key has occurred at
// least twice before in this game's history (threefold repetition,
// counting the current occurrence as the third).
func (p *Position) IsRepetition() bool {
	count := 0
	for _, k := range p.keys {
		if k == p.ZobristKey {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}
