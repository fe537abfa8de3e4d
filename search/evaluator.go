package search

import "variantchess/position"

// Evaluate returns a leaf score in centipawns from the perspective of
// the side to move: the sum of each own piece's material value and
// piece-square score, minus the same for the opponent, plus the
// variant's eval bonus for each side.
func Evaluate(p *position.Position) int32 {
	us := p.Side
	them := us.Other()

	var score int32
	for _, pt := range p.Desc.Pieces {
		ours := p.PieceBitboard(pt.ID, us)
		for !ours.IsZero() {
			sq := ours.PopLSB()
			score += pt.MaterialValue + int32(pt.PST[us][sq])
		}
		theirs := p.PieceBitboard(pt.ID, them)
		for !theirs.IsZero() {
			sq := theirs.PopLSB()
			score -= pt.MaterialValue + int32(pt.PST[them][sq])
		}
	}
	score += p.Desc.Hooks.EvalBonus(p, us)
	score -= p.Desc.Hooks.EvalBonus(p, them)
	return score
}
