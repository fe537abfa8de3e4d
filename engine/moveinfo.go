package engine

import (
	"fmt"

	"variantchess/position"
	"variantchess/rules"
)

// MoveInfo is the wire-friendly description of one legal move: enough
// for a UI or REPL to label and apply it without reaching into
// position.Move's packed bit layout directly.
type MoveInfo struct {
	From, To    int
	FromName    string
	ToName      string
	Piece       string
	Captured    string
	Promotion   string
	IsCapture   bool
	IsPromotion bool
	IsCastle    bool
	IsEnPassant bool
	move        position.Move
}

func (e *Engine) describeMove(m position.Move) MoveInfo {
	geom := e.desc.Geometry
	info := MoveInfo{
		From:        m.From(),
		To:          m.To(),
		FromName:    squareName(geom, m.From()),
		ToName:      squareName(geom, m.To()),
		Piece:       e.desc.PieceTypeOf(m.Piece()).Name,
		IsCapture:   m.IsCapture(),
		IsPromotion: m.IsPromotion(),
		IsCastle:    m.IsCastle(),
		IsEnPassant: m.IsEnPassant(),
		move:        m,
	}
	if m.IsCapture() {
		info.Captured = e.desc.PieceTypeOf(m.Captured()).Name
	}
	if m.IsPromotion() {
		info.Promotion = e.desc.PieceTypeOf(m.Promotion()).Name
	}
	return info
}

// squareName formats a square as file-letter+rank-number, matching
// fen.go's squareString so a board taller than nine ranks (up to 16x16)
// still names every rank correctly.
func squareName(g rules.Geometry, sq int) string {
	file, rank := g.FileRank(sq)
	return fmt.Sprintf("%c%d", 'a'+file, rank+1)
}

// Outcome mirrors rules.Outcome for callers that only import engine.
type Outcome struct {
	Decided bool
	Draw    bool
	Winner  string
	Reason  string
}

// MakeResult reports the effect of a successful MakeMove/MakeMoveStr
// call: the move applied, any squares a variant hook cleared beyond
// the move's own from/to (e.g. atomic's explosion radius), and the
// resulting Outcome if the game just ended.
type MakeResult struct {
	Move     MoveInfo
	Exploded []string
	Outcome  Outcome
}

// SearchResult is GetBestMove's return value: the chosen move plus the
// stats a caller typically wants to display (score, depth, node count).
type SearchResult struct {
	Move  MoveInfo
	Score int32
	Depth int
	Nodes uint64
	PV    []MoveInfo
}

func outcomeReasonName(r rules.OutcomeReason) string {
	switch r {
	case rules.Checkmate:
		return "checkmate"
	case rules.Stalemate:
		return "stalemate"
	case rules.Repetition:
		return "repetition"
	case rules.FiftyMove:
		return "fifty_move"
	case rules.InsufficientMaterial:
		return "insufficient_material"
	case rules.AntichessWin:
		return "antichess_win"
	case rules.KingOfTheHillWin:
		return "king_of_the_hill_win"
	case rules.RacingKingsWin:
		return "racing_kings_win"
	case rules.NCheckWin:
		return "n_check_win"
	case rules.AtomicWin:
		return "atomic_win"
	case rules.NoPiecesLeft:
		return "no_pieces_left"
	default:
		return "none"
	}
}

func playerName(pl rules.Player) string {
	if pl == rules.White {
		return "white"
	}
	return "black"
}

func toEngineOutcome(o rules.Outcome) Outcome {
	if !o.Decided {
		return Outcome{}
	}
	out := Outcome{Decided: true, Draw: o.Draw, Reason: outcomeReasonName(o.Reason)}
	if !o.Draw {
		out.Winner = playerName(o.Winner)
	}
	return out
}
