package variants

import "variantchess/rules"

// atomicOnCapture implements atomic chess's explosion rule: every piece
// in the 3x3 neighborhood of the capture square that is not explosion-
// immune (pawns, by convention) is removed, including the capturing
// piece itself if it isn't immune.
func atomicOnCapture(b rules.BoardAccess, ctx rules.CaptureContext) []int {
	var removed []int
	for _, sq := range b.Neighborhood(ctx.To, 1) {
		id, _, ok := b.PieceAt(sq)
		if !ok {
			continue
		}
		if b.PieceTypeOf(id).ExplosionImmune {
			continue
		}
		removed = append(removed, sq)
	}
	return removed
}

// leaderlessTerminal returns a Terminal hook that declares reason a win
// for whichever side still has a leader on the board, the instant the
// other side's leader disappears (exploded, captured, or never placed).
// Falls back to standard checkmate/stalemate detection otherwise.
func leaderlessTerminal(reason rules.OutcomeReason) func(rules.BoardAccess, bool, bool) rules.Outcome {
	fallback := rules.DefaultHooks().Terminal
	return func(b rules.BoardAccess, hasLegalMoves, inCheck bool) rules.Outcome {
		_, whiteHasLeader := b.LeaderSquare(rules.White)
		_, blackHasLeader := b.LeaderSquare(rules.Black)
		if !whiteHasLeader && blackHasLeader {
			return rules.Outcome{Decided: true, Winner: rules.Black, Reason: reason}
		}
		if !blackHasLeader && whiteHasLeader {
			return rules.Outcome{Decided: true, Winner: rules.White, Reason: reason}
		}
		return fallback(b, hasLegalMoves, inCheck)
	}
}

// antichessLegalFilter enforces mandatory capture: if any legal move in
// the batch is a capture, every non-capture is dropped.
func antichessLegalFilter(_ rules.BoardAccess, isCapture []bool) []bool {
	anyCapture := false
	for _, c := range isCapture {
		if c {
			anyCapture = true
			break
		}
	}
	keep := make([]bool, len(isCapture))
	for i, c := range isCapture {
		keep[i] = c || !anyCapture
	}
	return keep
}

// antichessTerminal awards the win to the side to move the moment it
// has no legal moves, whether that's because it has been stalemated or
// because it has lost every piece: both end the game in the mover's
// favor under antichess rules.
func antichessTerminal(b rules.BoardAccess, hasLegalMoves, _ bool) rules.Outcome {
	if hasLegalMoves {
		return rules.Outcome{}
	}
	return rules.Outcome{Decided: true, Winner: b.SideToMove(), Reason: rules.AntichessWin}
}

// winOnSquareTerminal returns a Terminal hook for variants (king of the
// hill, racing kings) that end the instant a leader reaches a square
// marked WinOnSquare on its own PieceType. Falls back to standard
// checkmate/stalemate detection otherwise.
func winOnSquareTerminal(reason rules.OutcomeReason) func(rules.BoardAccess, bool, bool) rules.Outcome {
	fallback := rules.DefaultHooks().Terminal
	return func(b rules.BoardAccess, hasLegalMoves, inCheck bool) rules.Outcome {
		for _, pl := range [2]rules.Player{rules.White, rules.Black} {
			sq, ok := b.LeaderSquare(pl)
			if !ok {
				continue
			}
			id, _, ok := b.PieceAt(sq)
			if !ok {
				continue
			}
			if b.PieceTypeOf(id).WinOnSquare.Test(sq) {
				return rules.Outcome{Decided: true, Winner: pl, Reason: reason}
			}
		}
		return fallback(b, hasLegalMoves, inCheck)
	}
}

// nCheckTerminal returns a Terminal hook that ends the game the moment
// either player has been checked limit times.
func nCheckTerminal(limit int) func(rules.BoardAccess, bool, bool) rules.Outcome {
	fallback := rules.DefaultHooks().Terminal
	return func(b rules.BoardAccess, hasLegalMoves, inCheck bool) rules.Outcome {
		for _, pl := range [2]rules.Player{rules.White, rules.Black} {
			if b.CheckCount(pl) >= limit {
				return rules.Outcome{Decided: true, Winner: pl.Other(), Reason: rules.NCheckWin}
			}
		}
		return fallback(b, hasLegalMoves, inCheck)
	}
}

// hordeTerminal awards Black the win the moment White's horde is wiped
// out, regardless of whether White ever had a leader piece on the
// board (Horde's White army has none).
func hordeTerminal(b rules.BoardAccess, hasLegalMoves, inCheck bool) rules.Outcome {
	if !b.HasAnyPieces(rules.White) {
		return rules.Outcome{Decided: true, Winner: rules.Black, Reason: rules.NoPiecesLeft}
	}
	return rules.DefaultHooks().Terminal(b, hasLegalMoves, inCheck)
}
