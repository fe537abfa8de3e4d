package rules

// EvalTuning holds the small set of weights that turn a PieceType's raw
// movement rules into a material value and a piece-square table. Unlike
// a fixed piece set (where PSTs are hand-tuned constants, as in a
// standard engine), an arbitrary user-defined piece needs its
// evaluation *generated* from its movement description; these weights
// are what a texel-style tuner would adjust.
type EvalTuning struct {
	// MobilityWeight scales a piece's average reachable-square count
	// into its base material value.
	MobilityWeight int32
	// SlideReachBonus is added per slide direction, approximating the
	// extra value of unbounded reach over a single jump offset.
	SlideReachBonus int32
	// LeaderPenalty is used as a Leader piece's whole material value, in
	// place of the mobility-derived one, so search never treats trading
	// it as a normal exchange.
	LeaderPenalty int32

	// CentralityWeight scales a square's distance-from-center bonus.
	CentralityWeight int16
	// VisibilityWeight scales the count of squares a piece can reach
	// when standing on a given square (its local mobility).
	VisibilityWeight int16
	// PromotionProximityWeight scales a bonus for squares nearer a
	// piece's promotion rank, when it has any PromotionTargets.
	PromotionProximityWeight int16
}

// DefaultEvalTuning returns the default weights. On the classic piece
// set they give pawn 84, knight 224, bishop and rook 1640 each, and
// queen 3280: pawn below knight below the sliders, queen highest.
func DefaultEvalTuning() EvalTuning {
	return EvalTuning{
		MobilityWeight:           28,
		SlideReachBonus:          18,
		LeaderPenalty:            100000,
		CentralityWeight:         4,
		VisibilityWeight:         3,
		PromotionProximityWeight: 6,
	}
}

// mobilityFanOut estimates how many distinct squares pt can reach from
// an unobstructed, centrally-placed origin: every jump Offset counts as
// one, every slide direction counts as its MaxDistance (0 meaning
// unlimited, approximated by boardSpan).
func mobilityFanOut(pt PieceType, boardSpan int) int32 {
	var total int32
	for _, off := range pt.Offsets {
		if off.CanMove || off.CanCapture {
			total++
		}
	}
	for _, sl := range pt.Slides {
		if !sl.CanMove && !sl.CanCapture {
			continue
		}
		reach := sl.MaxDistance
		if reach <= 0 {
			reach = boardSpan
		}
		total += int32(reach)
	}
	return total
}

// materialValue derives a piece's base material score from its movement
// description rather than a hand-picked constant, so a custom variant
// piece slots into evaluation without hand-tuning.
func materialValue(pt PieceType, t EvalTuning) int32 {
	if pt.Leader {
		return t.LeaderPenalty
	}
	fanOut := mobilityFanOut(pt, 14)
	slideDirs := int32(len(pt.Slides))
	return fanOut*t.MobilityWeight + slideDirs*t.SlideReachBonus
}

// centrality scores a square by its Chebyshev distance from the board
// center: closer to center is higher.
func centrality(g Geometry, sq int) int16 {
	file, rank := g.FileRank(sq)
	cf, cr := g.Width-1, g.Height-1 // doubled center, to stay integral for even sizes
	df := abs(file*2 - cf)
	dr := abs(rank*2 - cr)
	dist := df
	if dr > dist {
		dist = dr
	}
	maxDist := g.Width
	if g.Height > maxDist {
		maxDist = g.Height
	}
	return int16(maxDist - dist)
}

// localVisibility counts squares pt could reach standing on sq, ignoring
// occupancy and walls beyond the immediate offsets (a static mobility
// estimate, not a legality check).
func localVisibility(g Geometry, pt PieceType, sq int) int16 {
	file, rank := g.FileRank(sq)
	var count int16
	for _, off := range pt.Offsets {
		f, r := file+off.DFile, rank+off.DRank
		if g.InBounds(f, r) && g.Valid.Test(g.SquareOf(f, r)) {
			count++
		}
	}
	for _, sl := range pt.Slides {
		var steps int
		g.RayCast(file, rank, sl.Dir, sl.MaxDistance, func(int) bool {
			steps++
			return true
		})
		count += int16(steps)
	}
	return count
}

// promotionProximity scores a square by how close it lies to pt's
// promotion squares for player, 0 if pt cannot promote.
func promotionProximity(g Geometry, pt PieceType, player Player, sq int) int16 {
	if len(pt.PromotionTargets) == 0 || pt.PromotionSquares[player].IsZero() {
		return 0
	}
	_, rank := g.FileRank(sq)
	best := g.Height
	for target := 0; target < g.Squares(); target++ {
		if !pt.PromotionSquares[player].Test(target) {
			continue
		}
		_, tRank := g.FileRank(target)
		d := abs(tRank - rank)
		if d < best {
			best = d
		}
	}
	return int16(g.Height - best)
}

// generatePST builds a per-square, per-player evaluation table for pt by
// combining centrality, local mobility and promotion proximity under
// tuning weights. Black's table is White's mirrored across the board's
// rank axis, matching how a symmetric variant is set up in FEN.
func generatePST(g Geometry, pt PieceType, t EvalTuning) [2][]int16 {
	var out [2][]int16
	out[White] = make([]int16, g.Squares())
	out[Black] = make([]int16, g.Squares())
	for sq := 0; sq < g.Squares(); sq++ {
		if !g.Valid.Test(sq) {
			continue
		}
		c := centrality(g, sq) * t.CentralityWeight
		v := localVisibility(g, pt, sq) * t.VisibilityWeight
		p := promotionProximity(g, pt, White, sq) * t.PromotionProximityWeight
		out[White][sq] = c + v + p
		file, rank := g.FileRank(sq)
		out[Black][g.SquareOf(file, g.Height-1-rank)] = out[White][sq]
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
