package search

import (
	"sync/atomic"

	"variantchess/position"
	"variantchess/rules"
)

// Mate and Infinity are kept inside int16's range so a mate score
// (adjusted by ply for storage) still fits the transposition table's
// packed data word, mirroring the classic engine convention of a
// generous-but-bounded mate constant rather than a mathematical
// infinity.
const (
	Mate     int32 = 30000
	Infinity int32 = 32000

	nullMoveReduction = 2
)

// Limits bounds one call to Worker.Search.
type Limits struct {
	MaxDepth int    // 0 = search to maxPly-1
	Nodes    uint64 // 0 = unbounded
}

// Result is one completed (or interrupted-but-usable) iterative
// deepening pass.
type Result struct {
	Move  position.Move
	Score int32
	Depth int
	Nodes uint64
	PV    []position.Move
}

// Worker drives one thread's iterative-deepening PVS search. It owns
// no state that must be shared with other workers except the
// transposition table and the stop flag; killers and history are
// worker-local.
type Worker struct {
	tt    *Table
	order *Orderer
	stop  *atomic.Bool
	seed  int

	nodes uint64
	pv    [maxPly][maxPly]position.Move
	pvLen [maxPly]int
}

// NewWorker builds a search worker. seed distinguishes Lazy SMP
// workers from each other via a staggered starting depth and the
// fallback move picked when no iteration completes; move ordering does
// not use it. The main (single-threaded) searcher passes seed 0.
func NewWorker(tt *Table, seed int, stop *atomic.Bool) *Worker {
	return &Worker{tt: tt, order: NewOrderer(), stop: stop, seed: seed}
}

// Nodes returns the node count from the most recent Search call.
func (w *Worker) Nodes() uint64 { return w.nodes }

// Search runs iterative deepening from depth 1 (or a seed-staggered
// depth for Lazy SMP workers) up to limits.MaxDepth, stopping early if
// the stop flag is set, the node budget is spent, or a proven mate is
// found. It always returns the best complete-or-partial result found
// at depth >= 1 — search never fails outright, even when interrupted
// immediately.
func (w *Worker) Search(p *position.Position, limits Limits) Result {
	w.nodes = 0
	maxDepth := limits.MaxDepth
	if maxDepth <= 0 || maxDepth >= maxPly {
		maxDepth = maxPly - 1
	}

	start := 1 + w.seed%2

	var best Result
	for depth := start; depth <= maxDepth; depth++ {
		if w.stop.Load() {
			break
		}
		score := w.negamax(p, -Infinity, Infinity, depth, 0)
		if w.stop.Load() && depth > start {
			break
		}

		move := position.NullMove
		var pv []position.Move
		if w.pvLen[0] > 0 {
			pv = append([]position.Move(nil), w.pv[0][:w.pvLen[0]]...)
			move = pv[0]
		}
		best = Result{Move: move, Score: score, Depth: depth, Nodes: w.nodes, PV: pv}

		if limits.Nodes != 0 && w.nodes >= limits.Nodes {
			break
		}
		if score > Mate-1000 || score < -Mate+1000 {
			break
		}
	}
	if best.Move == position.NullMove {
		if legal := p.GenerateLegal(); len(legal) > 0 {
			best.Move = legal[w.seed%len(legal)]
		}
	}
	return best
}

func (w *Worker) negamax(p *position.Position, alpha, beta int32, depth, ply int) int32 {
	w.pvLen[ply] = ply
	w.nodes++
	if w.nodes&2047 == 0 && w.stop.Load() {
		return 0
	}

	us := p.Side
	if ply > 0 {
		if p.HalfmoveClock >= 100 || p.IsRepetition() || insufficientMaterial(p) {
			return 0
		}
	}

	hash := p.ZobristKey
	var ttHint CompactMove
	if entry, ok := w.tt.Probe(hash); ok {
		ttHint = entry.Move
		if int(entry.Depth) >= depth && ply > 0 {
			score := int32(entry.Score)
			switch entry.Bound {
			case BoundExact:
				return score
			case BoundLower:
				if score > alpha {
					alpha = score
				}
			case BoundUpper:
				if score < beta {
					beta = score
				}
			}
			if alpha >= beta {
				return score
			}
		}
	}

	if depth <= 0 {
		return w.quiescence(p, alpha, beta, ply)
	}

	inCheck := p.InCheck(us)

	if !inCheck && ply > 0 && depth >= nullMoveReduction+1 && hasNonLeaderMaterial(p, us) {
		undo := p.MakeNull()
		score := -w.negamax(p, -beta, -beta+1, depth-1-nullMoveReduction, ply+1)
		p.UnmakeNull(undo)
		if w.stop.Load() {
			return 0
		}
		if score >= beta {
			return beta
		}
	}

	legal := p.GenerateLegal()
	if len(legal) == 0 {
		outcome := p.Desc.Hooks.Terminal(p, false, inCheck)
		if !outcome.Decided || outcome.Draw {
			return 0
		}
		if outcome.Winner == us {
			return Mate - int32(ply)
		}
		return -Mate + int32(ply)
	}

	ttMove := resolveCompactMove(legal, ttHint)
	legal = w.order.Order(legal, p.Desc, us, ttMove, ply)

	bestScore := -Infinity
	bestMove := legal[0]
	bound := BoundUpper

	for i, m := range legal {
		undo, ok := p.MakeMove(m)
		if !ok {
			p.UnmakeMove(m, undo)
			continue
		}

		var score int32
		switch {
		case i == 0:
			score = -w.negamax(p, -beta, -alpha, depth-1, ply+1)
		default:
			reduction := 0
			if i >= 3 && depth >= 3 && !inCheck && m.IsQuiet() {
				reduction = 1
			}
			score = -w.negamax(p, -alpha-1, -alpha, depth-1-reduction, ply+1)
			if score > alpha && (reduction > 0 || score < beta) {
				score = -w.negamax(p, -beta, -alpha, depth-1, ply+1)
			}
		}

		p.UnmakeMove(m, undo)

		if w.stop.Load() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
			if score > alpha {
				alpha = score
				bound = BoundExact
				w.pv[ply][ply] = m
				copy(w.pv[ply][ply+1:w.pvLen[ply+1]], w.pv[ply+1][ply+1:w.pvLen[ply+1]])
				w.pvLen[ply] = w.pvLen[ply+1]
			}
		}

		if alpha >= beta {
			bound = BoundLower
			if m.IsQuiet() {
				w.order.RecordKiller(ply, m)
				w.order.RecordHistory(us, m, int32(depth*depth))
			}
			break
		} else if m.IsQuiet() {
			w.order.RecordHistory(us, m, -int32(depth))
		}
	}

	w.tt.Store(hash, int8(depth), int16(clampScore(bestScore)), bound, compactOf(bestMove))
	return bestScore
}

func (w *Worker) quiescence(p *position.Position, alpha, beta int32, ply int) int32 {
	w.nodes++
	if ply >= maxPly-1 {
		return Evaluate(p)
	}

	standPat := Evaluate(p)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	us := p.Side
	legal := p.GenerateLegal()
	noisy := legal[:0]
	for _, m := range legal {
		if m.IsCapture() || m.IsPromotion() {
			noisy = append(noisy, m)
		}
	}
	noisy = w.order.Order(noisy, p.Desc, us, position.NullMove, ply)

	for _, m := range noisy {
		if m.IsCapture() {
			victim := p.Desc.PieceTypeOf(m.Captured())
			if standPat+victim.MaterialValue+200 < alpha {
				continue
			}
		}
		undo, ok := p.MakeMove(m)
		if !ok {
			p.UnmakeMove(m, undo)
			continue
		}
		score := -w.quiescence(p, -beta, -alpha, ply+1)
		p.UnmakeMove(m, undo)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

func resolveCompactMove(legal []position.Move, cm CompactMove) position.Move {
	if cm.From == cm.To {
		return position.NullMove
	}
	for _, m := range legal {
		if uint8(m.From()) == cm.From && uint8(m.To()) == cm.To && uint8(m.Promotion()) == cm.Promo {
			return m
		}
	}
	return position.NullMove
}

func compactOf(m position.Move) CompactMove {
	return CompactMove{From: uint8(m.From()), To: uint8(m.To()), Promo: uint8(m.Promotion())}
}

func clampScore(s int32) int32 {
	if s > Infinity {
		return Infinity
	}
	if s < -Infinity {
		return -Infinity
	}
	return s
}

// insufficientMaterial defers to position.InsufficientMaterial; kept as
// a local name since it's checked alongside the other draw conditions
// in negamax's early-out.
func insufficientMaterial(p *position.Position) bool {
	return position.InsufficientMaterial(p)
}

// hasNonLeaderMaterial gates null-move pruning: skip it in bare-leader
// (or leader+pawns-only) endings where zugzwang is common.
func hasNonLeaderMaterial(p *position.Position, side rules.Player) bool {
	for _, pt := range p.Desc.Pieces {
		if pt.Leader {
			continue
		}
		if !p.PieceBitboard(pt.ID, side).IsZero() {
			return true
		}
	}
	return false
}
