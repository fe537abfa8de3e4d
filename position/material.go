package position

import "variantchess/rules"

// InsufficientMaterial reports a coarse draw-by-material check: true
// once neither side has enough non-leader force left to force mate
// (bare leaders, or a leader plus a single minor-value piece).
func InsufficientMaterial(p *Position) bool {
	total := 0
	for _, pt := range p.Desc.Pieces {
		if pt.Leader {
			continue
		}
		count := p.PieceBitboard(pt.ID, rules.White).PopCount() + p.PieceBitboard(pt.ID, rules.Black).PopCount()
		if count == 0 {
			continue
		}
		if pt.MaterialValue > 400 {
			return false
		}
		total += count
		if total > 1 {
			return false
		}
	}
	return true
}
