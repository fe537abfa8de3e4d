package position

// Perft counts the leaf nodes reachable from p after exactly depth
// plies of legal play, the standard move-generator correctness check
// (adapted from goosemg's recursive Perft/perftRec, generalized to
// GenerateLegal's already-legal move list so no separate king-safety
// filter is needed per node).
func Perft(p *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range p.GenerateLegal() {
		undo, ok := p.MakeMove(m)
		if !ok {
			p.UnmakeMove(m, undo)
			continue
		}
		nodes += Perft(p, depth-1)
		p.UnmakeMove(m, undo)
	}
	return nodes
}

// PerftDivide reports, for each legal root move, the leaf count
// reachable after depth-1 further plies — the per-move breakdown used
// to bisect a perft mismatch against a reference engine.
func PerftDivide(p *Position, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range p.GenerateLegal() {
		undo, ok := p.MakeMove(m)
		if !ok {
			p.UnmakeMove(m, undo)
			continue
		}
		result[m] = Perft(p, depth-1)
		p.UnmakeMove(m, undo)
	}
	return result
}
