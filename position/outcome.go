package position

import "variantchess/rules"

// Outcome reports whether the game just ended. The variant's Terminal
// hook runs first, and a win it reports (checkmate or any
// variant-specific win condition) is returned as is. Otherwise the
// three draw conditions that apply regardless of variant — fifty-move,
// threefold repetition, and insufficient material — are checked, and
// when none applies the hook's own result (a stalemate draw, or no
// outcome) is returned.
// Returns a zero rules.Outcome (Decided == false) when play continues.
func (p *Position) Outcome() rules.Outcome {
	legal := p.GenerateLegal()
	terminal := p.Desc.Hooks.Terminal(p, len(legal) > 0, p.InCheck(p.Side))
	if terminal.Decided && !terminal.Draw {
		return terminal
	}
	if p.HalfmoveClock >= 100 {
		return rules.Outcome{Decided: true, Draw: true, Reason: rules.FiftyMove}
	}
	if p.IsRepetition() {
		return rules.Outcome{Decided: true, Draw: true, Reason: rules.Repetition}
	}
	if InsufficientMaterial(p) {
		return rules.Outcome{Decided: true, Draw: true, Reason: rules.InsufficientMaterial}
	}
	return terminal
}
