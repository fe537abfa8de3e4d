// Package engine is the public handle a FEN loader, UI shell, or CLI
// is written against: it owns one live Position, drives search through
// a search.Pool, and translates between the internal packed
// representations and the wire-friendly MoveInfo/SearchResult/Outcome
// types.
package engine

import (
	"sync"
	"sync/atomic"

	"variantchess/fen"
	"variantchess/position"
	"variantchess/rules"
	"variantchess/search"
)

const defaultTTMegabytes = 64

// Engine is a single game's mutable handle: one Position, one shared
// transposition table, and a Lazy SMP pool sized by SetNumThreads. It
// is not safe for concurrent calls from multiple goroutines other than
// the cooperative-cancellation path (Stop may be called while
// GetBestMoveTimeout runs), matching goosemg's own single-owner Board
// convention.
type Engine struct {
	desc *rules.Descriptor
	pos  *position.Position
	tt   *search.Table
	pool *search.Pool

	threads int

	mu   sync.Mutex
	busy atomic.Bool
}

// New builds an Engine over desc, starting from desc's InitialFEN.
func New(desc *rules.Descriptor) (*Engine, error) {
	e := &Engine{desc: desc, tt: search.NewTable(defaultTTMegabytes), threads: 1}
	if err := e.LoadFEN(desc.InitialFEN); err != nil {
		return nil, err
	}
	e.pool = search.NewPool(e.tt, e.threads)
	return e, nil
}

// LoadFEN replaces the current position with the one described by s.
func (e *Engine) LoadFEN(s string) error {
	p, err := fen.Parse(e.desc, s)
	if err != nil {
		return newError(KindFenParse, "could not parse FEN", err)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pos = p
	e.tt.Clear()
	return nil
}

// ToFEN serializes the current position.
func (e *Engine) ToFEN() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fen.Serialize(e.pos)
}

// SetNumThreads rebuilds the Lazy SMP pool with n workers, clamped to
// [1, hardware_concurrency] and forced to 1 under WASM (search.Threads).
func (e *Engine) SetNumThreads(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.threads = search.Threads(n)
	e.pool = search.NewPool(e.tt, e.threads)
}

// LegalMoves lists every legal move from the current position.
func (e *Engine) LegalMoves() []MoveInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	legal := e.pos.GenerateLegal()
	out := make([]MoveInfo, len(legal))
	for i, m := range legal {
		out[i] = e.describeMove(m)
	}
	return out
}

// MakeMove applies the move described by info (matched against the
// current legal move list by From/To/Promotion) and reports the
// resulting outcome, if the game just ended.
func (e *Engine) MakeMove(info MoveInfo) (MakeResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	legal := e.pos.GenerateLegal()
	var chosen position.Move
	found := false
	for _, m := range legal {
		if m.From() == info.From && m.To() == info.To {
			if info.Promotion != "" && e.desc.PieceTypeOf(m.Promotion()).Name != info.Promotion {
				continue
			}
			chosen = m
			found = true
			break
		}
	}
	if !found {
		return MakeResult{}, newError(KindIllegalMove, "move is not in the current legal move list", nil)
	}
	return e.applyMove(chosen), nil
}

// MakeMoveStr parses coordinate notation ("e2e4", "e7e8q") against the
// current legal move list and applies it.
func (e *Engine) MakeMoveStr(s string) (MakeResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	from, to, promo, err := parseCoordinateMove(e.desc.Geometry, s)
	if err != nil {
		return MakeResult{}, newError(KindIllegalMove, "malformed move string", err)
	}

	legal := e.pos.GenerateLegal()
	var chosen position.Move
	found := false
	for _, m := range legal {
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() {
			name := e.desc.PieceTypeOf(m.Promotion()).Name
			if promo == "" || name[:1] != promo {
				continue
			}
		}
		chosen = m
		found = true
		break
	}
	if !found {
		return MakeResult{}, newError(KindIllegalMove, "move is not in the current legal move list", nil)
	}
	return e.applyMove(chosen), nil
}

// applyMove assumes the caller already holds e.mu. It reports any
// square a variant hook vacated beyond the move's own accounting (from,
// its en-passant victim, its castling rook's origin) as "exploded" —
// the only such hook in this module is atomic's OnCapture.
func (e *Engine) applyMove(m position.Move) MakeResult {
	before := e.pos.Occupancy()
	epVictim := e.pos.EPVictimSquare
	var rookFrom = -1
	if m.IsCastle() {
		rookFrom = e.desc.CastleSides[m.CastleIndex()].RookFrom[e.pos.Side]
	}

	undo, ok := e.pos.MakeMove(m)
	if !ok {
		e.pos.UnmakeMove(m, undo)
		return MakeResult{Move: e.describeMove(m)}
	}

	vacated := before.AndNot(e.pos.Occupancy())
	vacated.Clear(m.From())
	if m.IsEnPassant() {
		vacated.Clear(epVictim)
	}
	if rookFrom >= 0 {
		vacated.Clear(rookFrom)
	}
	var exploded []string
	for !vacated.IsZero() {
		sq := vacated.PopLSB()
		exploded = append(exploded, squareName(e.desc.Geometry, sq))
	}

	info := e.describeMove(m)
	outcome := e.pos.Outcome()
	return MakeResult{Move: info, Exploded: exploded, Outcome: toEngineOutcome(outcome)}
}

// Undo is unsupported: Position keeps no forward record of moves
// beyond the Zobrist-key history used for repetition detection, so
// undoing outside of search's own make/unmake pairing would require
// replaying the whole game from the start. Callers that need undo
// should keep their own MoveInfo history and call LoadFEN with a
// snapshot taken before the move; PGN-style move-history persistence
// is out of scope here.
func (e *Engine) Undo() error {
	return newError(KindInternal, "undo is not supported; reload a prior position via LoadFEN", nil)
}

// GetBestMove runs a fixed-depth search and returns the chosen move.
func (e *Engine) GetBestMove(depth int) (SearchResult, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return SearchResult{}, ErrEngineBusy
	}
	defer e.busy.Store(false)

	e.mu.Lock()
	root := e.pos.Clone()
	pool := e.pool
	e.mu.Unlock()

	res := pool.Search(root, search.Limits{MaxDepth: depth})
	return e.toSearchResult(res), nil
}

// GetBestMoveTimeout runs iterative deepening until Stop is called (or
// a very deep depth cap is reached), driven by a shared atomic stop
// flag rather than a wall-clock deadline of its own. The caller is
// expected to arm a timer that calls Stop.
func (e *Engine) GetBestMoveTimeout() (SearchResult, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return SearchResult{}, ErrEngineBusy
	}
	defer e.busy.Store(false)

	e.mu.Lock()
	root := e.pos.Clone()
	pool := e.pool
	e.mu.Unlock()

	res := pool.Search(root, search.Limits{})
	return e.toSearchResult(res), nil
}

// Stop signals an in-flight GetBestMoveTimeout call to return the best
// result found so far as soon as its workers next check the flag.
func (e *Engine) Stop() {
	e.mu.Lock()
	pool := e.pool
	e.mu.Unlock()
	pool.Stop()
}

func (e *Engine) toSearchResult(res search.Result) SearchResult {
	pv := make([]MoveInfo, len(res.PV))
	for i, m := range res.PV {
		pv[i] = e.describeMove(m)
	}
	return SearchResult{
		Move:  e.describeMove(res.Move),
		Score: res.Score,
		Depth: res.Depth,
		Nodes: res.Nodes,
		PV:    pv,
	}
}

// StateDiff reports the minimal incremental state a client needs to
// refresh its view: the current FEN, whether the side to move is in
// check, and who that side is.
type StateDiff struct {
	FEN          string
	InCheck      bool
	PlayerToMove string
}

func (e *Engine) StateDiff() StateDiff {
	e.mu.Lock()
	defer e.mu.Unlock()
	return StateDiff{
		FEN:          fen.Serialize(e.pos),
		InCheck:      e.pos.InCheck(e.pos.Side),
		PlayerToMove: playerName(e.pos.Side),
	}
}
