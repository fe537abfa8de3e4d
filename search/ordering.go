package search

import (
	"golang.org/x/exp/slices"

	"variantchess/position"
	"variantchess/rules"
)

const maxPly = 128

// bucket assigns a move to one of five ordering tiers: TT move first,
// then MVV-LVA captures, then promotions, then killers, then
// history-ordered quiets. Lower sorts first.
func bucket(m position.Move, ttMove position.Move, killers [2]position.Move) int {
	switch {
	case ttMove != 0 && m == ttMove:
		return 0
	case m.IsCapture():
		return 1
	case m.IsPromotion():
		return 2
	case m == killers[0] || m == killers[1]:
		return 3
	default:
		return 4
	}
}

// Orderer holds the per-worker move-ordering state: killer moves per
// ply and a from/to history table, never shared across workers. A
// worker keeps its Orderer across searches; both tables are cleared
// only by Reset.
type Orderer struct {
	killers [maxPly][2]position.Move
	history [2][256][256]int32
}

// NewOrderer returns a fresh, empty move orderer.
func NewOrderer() *Orderer {
	return &Orderer{}
}

// Reset clears killer and history state between unrelated searches
// (e.g. a new game, or a new variant descriptor).
func (o *Orderer) Reset() {
	*o = Orderer{}
}

// RecordKiller remembers a quiet move that caused a beta cutoff at ply,
// keeping the two most recent distinct killers per ply.
func (o *Orderer) RecordKiller(ply int, m position.Move) {
	if ply >= maxPly || m.IsCapture() {
		return
	}
	if o.killers[ply][0] == m {
		return
	}
	o.killers[ply][1] = o.killers[ply][0]
	o.killers[ply][0] = m
}

// RecordHistory adjusts the history score for a quiet move: a positive
// bonus on a beta cutoff, a negative penalty for quiets that were
// searched and failed to raise alpha (so the good movers keep rising
// relative to the merely-tried ones).
func (o *Orderer) RecordHistory(us rules.Player, m position.Move, delta int32) {
	if m.IsCapture() {
		return
	}
	o.history[us][m.From()][m.To()] += delta
}

// Order sorts moves in place into the five ordering tiers bucket
// names, stably within each tier, and returns the same slice.
func (o *Orderer) Order(moves []position.Move, desc *rules.Descriptor, us rules.Player, ttMove position.Move, ply int) []position.Move {
	var killers [2]position.Move
	if ply < maxPly {
		killers = o.killers[ply]
	}

	mvvLVA := func(m position.Move) int32 {
		victim := desc.PieceTypeOf(m.Captured()).MaterialValue
		attacker := desc.PieceTypeOf(m.Piece()).MaterialValue
		return victim*16 - attacker
	}

	secondary := func(m position.Move, b int) int32 {
		switch b {
		case 1:
			return mvvLVA(m)
		case 2:
			return desc.PieceTypeOf(m.Promotion()).MaterialValue
		case 4:
			return o.history[us][m.From()][m.To()]
		default:
			return 0
		}
	}

	slices.SortStableFunc(moves, func(a, b position.Move) bool {
		ba, bb := bucket(a, ttMove, killers), bucket(b, ttMove, killers)
		if ba != bb {
			return ba < bb
		}
		sa, sb := secondary(a, ba), secondary(b, ba)
		return sa > sb
	})
	return moves
}
