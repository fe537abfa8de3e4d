package search

import "sync/atomic"

// Bound is the kind of score stored in a transposition table entry:
// exact, or one side of an alpha-beta window that was not fully proven.
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundLower
	BoundUpper
)

// Entry is what a successful Probe returns: the recorded search result
// for a position, plus a compact (from, to, promo) move hint good
// enough to reorder moves with, not necessarily still legal.
type Entry struct {
	Score int16
	Depth int8
	Bound Bound
	Move  CompactMove
}

// CompactMove is a from/to/promotion-only move handle, small enough to
// fit alongside a score/depth/bound/age in one 64-bit data word. The
// searcher resolves it back against the current move list by (From,
// To, Promo) rather than trusting it to carry full move metadata —
// mirroring how position.Move itself is a flat bitfield (see
// position/move.go) rather than a pointer to shared move data.
type CompactMove struct {
	From, To uint8
	Promo    uint8 // rules.NoPiece (0xFF) when not a promotion
}

func packMove(m CompactMove) uint64 {
	return uint64(m.From) | uint64(m.To)<<8 | uint64(m.Promo)<<16
}

func unpackMove(v uint64) CompactMove {
	return CompactMove{From: uint8(v), To: uint8(v >> 8), Promo: uint8(v >> 16)}
}

// data word layout, low to high: move(24) score(16) depth(8) bound(2) age(6)
func packData(m CompactMove, score int16, depth int8, bound Bound, age uint8) uint64 {
	return packMove(m) |
		uint64(uint16(score))<<24 |
		uint64(uint8(depth))<<40 |
		uint64(bound&0x3)<<48 |
		uint64(age&0x3f)<<50
}

func unpackData(v uint64) (Entry, uint8) {
	e := Entry{
		Move:  unpackMove(v),
		Score: int16(uint16(v >> 24)),
		Depth: int8(uint8(v >> 40)),
		Bound: Bound((v >> 48) & 0x3),
	}
	age := uint8((v >> 50) & 0x3f)
	return e, age
}

// slot holds one lockless bucket: the XOR of the zobrist key and the
// data word, plus the data word itself, each a naturally-aligned
// uint64 so a torn concurrent write is only ever a torn *pair*, never
// a torn word (the classic XOR trick).
type slot struct {
	keyXORdata uint64
	data       uint64
}

// Table is a fixed-size, lockless transposition table shared by every
// Lazy SMP worker. Grounded on ChizhovVadim/CounterGo's transtable.go
// for the power-of-two sizing and mask indexing, and on
// hailam/chessplay's worker.go for the shared-TT-across-workers shape;
// the XOR-trick storage itself replaces CounterGo's spinlock gate so
// probing never blocks on another worker's store.
type Table struct {
	slots []slot
	mask  uint64
	gen   uint32 // low 6 bits used as the current age tag
}

// NewTable allocates a table sized to roughly megabytes MB, rounded
// down to a power of two number of slots.
func NewTable(megabytes int) *Table {
	if megabytes < 1 {
		megabytes = 1
	}
	slotBytes := 16 // two uint64s
	want := megabytes * 1024 * 1024 / slotBytes
	n := 1
	for n*2 <= want {
		n *= 2
	}
	if n < 1024 {
		n = 1024
	}
	return &Table{slots: make([]slot, n), mask: uint64(n - 1)}
}

// NewSearch bumps the table's age/generation, biasing replacement
// toward entries from the search that is about to run.
func (t *Table) NewSearch() {
	atomic.AddUint32(&t.gen, 1)
}

func (t *Table) age() uint8 { return uint8(atomic.LoadUint32(&t.gen) & 0x3f) }

// Clear zeroes every slot. The engine calls it whenever a FEN is
// loaded; otherwise the table persists (aged) across moves within one
// game.
func (t *Table) Clear() {
	for i := range t.slots {
		t.slots[i] = slot{}
	}
}

// Probe looks up hash. A torn or absent entry reports ok=false; the
// caller must treat that identically to a genuine miss.
func (t *Table) Probe(hash uint64) (entry Entry, ok bool) {
	s := &t.slots[hash&t.mask]
	data := atomic.LoadUint64(&s.data)
	kx := atomic.LoadUint64(&s.keyXORdata)
	if kx^data != hash {
		return Entry{}, false
	}
	entry, _ = unpackData(data)
	return entry, true
}

// Store writes a result for hash, replacing the current occupant of
// its bucket unless that occupant verifies against the same hash, is
// strictly deeper than the new entry, and comes from the current
// generation.
func (t *Table) Store(hash uint64, depth int8, score int16, bound Bound, move CompactMove) {
	s := &t.slots[hash&t.mask]
	age := t.age()

	oldData := atomic.LoadUint64(&s.data)
	oldKX := atomic.LoadUint64(&s.keyXORdata)
	if oldKX^oldData == hash {
		oldEntry, oldAge := unpackData(oldData)
		if oldEntry.Depth > depth && oldAge == age {
			return
		}
	}

	data := packData(move, score, depth, bound, age)
	atomic.StoreUint64(&s.data, data)
	atomic.StoreUint64(&s.keyXORdata, hash^data)
}
