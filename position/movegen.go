package position

import (
	"variantchess/bitboard"
	"variantchess/rules"
)

// attacksFromSquare returns the set of squares a piece of type id,
// belonging to player, standing on sq, threatens to capture given the
// current combined occupancy.
func (p *Position) attacksFromSquare(sq int, id rules.PieceID, player rules.Player, occAll bitboard.BB256) bitboard.BB256 {
	pt := p.Desc.PieceTypeOf(id)
	attacks := p.Desc.Attacks.Jump[id][player].Capture[sq]
	for _, sl := range pt.Slides {
		if !sl.CanCapture {
			continue
		}
		attacks = attacks.Or(p.Desc.Attacks.LimitedSlideAttacks(sl.Dir, sq, occAll, sl.MaxDistance))
	}
	return attacks
}

// IsSquareAttackedBy reports whether any of by's pieces attacks sq.
// Implements rules.BoardAccess.
func (p *Position) IsSquareAttackedBy(sq int, by rules.Player) bool {
	occAll := p.Occupancy()
	for _, pt := range p.Desc.Pieces {
		bb := p.byPiece[pt.ID][by]
		for !bb.IsZero() {
			s := bb.PopLSB()
			if p.attacksFromSquare(s, pt.ID, by, occAll).Test(sq) {
				return true
			}
		}
	}
	return false
}

// InCheck reports whether player's leader (usually the king) currently
// stands on a square attacked by the opponent. A player with no leader
// piece on the board (e.g. after an atomic explosion, or in variants
// with no royalty) is never "in check".
func (p *Position) InCheck(player rules.Player) bool {
	sq, ok := p.LeaderSquare(player)
	if !ok {
		return false
	}
	return p.IsSquareAttackedBy(sq, player.Other())
}

// GeneratePseudoLegal returns every move the side to move could play
// ignoring whether it leaves that side's own leader in check.
func (p *Position) GeneratePseudoLegal() []Move {
	us := p.Side
	them := us.Other()
	occAll := p.Occupancy()
	occThem := p.occ[them]

	moves := make([]Move, 0, 48)
	for _, pt := range p.Desc.Pieces {
		bb := p.byPiece[pt.ID][us]
		for !bb.IsZero() {
			from := bb.PopLSB()
			p.genPieceMoves(pt, us, from, occAll, occThem, &moves)
		}
	}
	p.genCastleMoves(us, occAll, &moves)
	return moves
}

func (p *Position) genPieceMoves(pt rules.PieceType, us rules.Player, from int, occAll, occThem bitboard.BB256, moves *[]Move) {
	ja := p.Desc.Attacks.Jump[pt.ID][us]

	quiet := ja.Move[from].AndNot(occAll)
	for !quiet.IsZero() {
		to := quiet.PopLSB()
		p.addTargetMove(pt, us, from, to, rules.NoPiece, FlagNone, moves)
	}

	caps := ja.Capture[from].And(occThem)
	for !caps.IsZero() {
		to := caps.PopLSB()
		captured, _, _ := p.PieceAt(to)
		p.addTargetMove(pt, us, from, to, captured, FlagNone, moves)
	}

	if pt.EnPassantCapturer && p.EPSquare >= 0 && ja.Capture[from].Test(p.EPSquare) {
		victim, _, ok := p.PieceAt(p.EPVictimSquare)
		if ok {
			*moves = append(*moves, NewMove(from, p.EPSquare, pt.ID, victim, rules.NoPiece, FlagEnPassant))
		}
	}

	if pt.DoubleJumpDeltaRanks > 0 && pt.DoubleJumpOrigins[us].Test(from) {
		p.genDoubleJump(pt, us, from, occAll, moves)
	}

	for _, sl := range pt.Slides {
		reach := p.Desc.Attacks.LimitedSlideAttacks(sl.Dir, from, occAll, sl.MaxDistance)
		if sl.CanMove {
			q := reach.AndNot(occAll)
			for !q.IsZero() {
				to := q.PopLSB()
				p.addTargetMove(pt, us, from, to, rules.NoPiece, FlagNone, moves)
			}
		}
		if sl.CanCapture {
			c := reach.And(occThem)
			for !c.IsZero() {
				to := c.PopLSB()
				captured, _, _ := p.PieceAt(to)
				p.addTargetMove(pt, us, from, to, captured, FlagNone, moves)
			}
		}
	}
}

// addTargetMove appends one move to *moves, fanning out into one move
// per PromotionTargets entry when to lands on a promotion square.
func (p *Position) addTargetMove(pt rules.PieceType, us rules.Player, from, to int, captured rules.PieceID, flags uint8, moves *[]Move) {
	if len(pt.PromotionTargets) > 0 && pt.PromotionSquares[us].Test(to) {
		for _, promo := range pt.PromotionTargets {
			*moves = append(*moves, NewMove(from, to, pt.ID, captured, promo, flags))
		}
		if pt.PromotionMandatory {
			return
		}
	}
	*moves = append(*moves, NewMove(from, to, pt.ID, captured, rules.NoPiece, flags))
}

func (p *Position) genDoubleJump(pt rules.PieceType, us rules.Player, from int, occAll bitboard.BB256, moves *[]Move) {
	g := p.Desc.Geometry
	file, rank := g.FileRank(from)
	sign := 1
	if us == rules.Black {
		sign = -1
	}
	midRank := rank + sign
	dstRank := rank + sign*pt.DoubleJumpDeltaRanks
	if !g.InBounds(file, midRank) || !g.InBounds(file, dstRank) {
		return
	}
	midSq, dstSq := g.SquareOf(file, midRank), g.SquareOf(file, dstRank)
	if !g.Valid.Test(midSq) || !g.Valid.Test(dstSq) {
		return
	}
	if occAll.Test(midSq) || occAll.Test(dstSq) {
		return
	}
	*moves = append(*moves, NewMove(from, dstSq, pt.ID, rules.NoPiece, rules.NoPiece, FlagDoubleJump))
}

func (p *Position) genCastleMoves(us rules.Player, occAll bitboard.BB256, moves *[]Move) {
	them := us.Other()
	for idx, side := range p.Desc.CastleSides {
		if !p.CastleRights[us][idx] {
			continue
		}
		kingFrom, kingTo := side.KingFrom[us], side.KingTo[us]
		rookFrom := side.RookFrom[us]
		kingID, kingPlayer, ok := p.PieceAt(kingFrom)
		if !ok || kingPlayer != us {
			continue
		}
		if rid, rplayer, ok := p.PieceAt(rookFrom); !ok || rplayer != us || rid == rules.NoPiece {
			continue
		}
		blocked := false
		for _, sq := range side.EmptySquares[us] {
			if sq != kingFrom && sq != rookFrom && occAll.Test(sq) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		safe := true
		for _, sq := range side.KingPassSquares[us] {
			if p.IsSquareAttackedBy(sq, them) {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}
		*moves = append(*moves, NewCastleMove(kingFrom, kingTo, kingID, idx))
	}
}

// GenerateLegal filters pseudo-legal moves down to those that do not
// leave the mover's own leader in check, then applies the variant's
// LegalFilter hook (e.g. antichess mandatory capture).
func (p *Position) GenerateLegal() []Move {
	pseudo := p.GeneratePseudoLegal()
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		undo, ok := p.MakeMove(m)
		if ok {
			legal = append(legal, m)
		}
		p.UnmakeMove(m, undo)
	}
	if p.Desc.Hooks.LegalFilter == nil {
		return legal
	}
	isCapture := make([]bool, len(legal))
	for i, m := range legal {
		isCapture[i] = m.IsCapture()
	}
	keep := p.Desc.Hooks.LegalFilter(p, isCapture)
	filtered := legal[:0]
	for i, m := range legal {
		if i < len(keep) && keep[i] {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
