package search

import "testing"

func TestTableStoreThenProbeRoundTrips(t *testing.T) {
	tt := NewTable(1)
	move := CompactMove{From: 12, To: 28, Promo: 0xFF}
	tt.Store(0xdeadbeef, 6, 137, BoundExact, move)

	entry, ok := tt.Probe(0xdeadbeef)
	if !ok {
		t.Fatal("expected a hit after Store")
	}
	if entry.Score != 137 || entry.Depth != 6 || entry.Bound != BoundExact {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.Move != move {
		t.Fatalf("move mismatch: got %+v want %+v", entry.Move, move)
	}
}

func TestTableProbeMissOnDifferentKey(t *testing.T) {
	tt := NewTable(1)
	tt.Store(0x1, 4, 10, BoundExact, CompactMove{From: 1, To: 2, Promo: 0xFF})
	if _, ok := tt.Probe(0x2); ok {
		t.Fatal("expected a miss for a key that was never stored")
	}
}

// TestTableDetectsTornWrite simulates the XOR-trick's core guarantee: if
// the two halves of a slot ever disagree (as a torn concurrent write
// would leave them), Probe must report a miss rather than hand back
// nonsense data.
func TestTableDetectsTornWrite(t *testing.T) {
	tt := NewTable(1)
	hash := uint64(0xabc)
	tt.Store(hash, 3, 5, BoundExact, CompactMove{From: 0, To: 1, Promo: 0xFF})

	slot := &tt.slots[hash&tt.mask]
	slot.data ^= 0xff // corrupt the data half without updating keyXORdata

	if _, ok := tt.Probe(hash); ok {
		t.Fatal("expected a torn slot to report a miss")
	}
}

func TestTableReplacementPrefersDeeperSameGeneration(t *testing.T) {
	tt := NewTable(1)
	hash := uint64(0x42)
	tt.Store(hash, 10, 1, BoundExact, CompactMove{From: 0, To: 1, Promo: 0xFF})
	tt.Store(hash, 2, 2, BoundExact, CompactMove{From: 2, To: 3, Promo: 0xFF})

	entry, ok := tt.Probe(hash)
	if !ok {
		t.Fatal("expected a hit")
	}
	if entry.Depth != 10 {
		t.Fatalf("shallower same-generation write should not replace a deeper entry, got depth %d", entry.Depth)
	}
}

func TestTableNewSearchAllowsShallowerReplacement(t *testing.T) {
	tt := NewTable(1)
	hash := uint64(0x99)
	tt.Store(hash, 10, 1, BoundExact, CompactMove{From: 0, To: 1, Promo: 0xFF})

	tt.NewSearch()
	tt.Store(hash, 2, 2, BoundExact, CompactMove{From: 2, To: 3, Promo: 0xFF})

	entry, ok := tt.Probe(hash)
	if !ok {
		t.Fatal("expected a hit")
	}
	if entry.Depth != 2 {
		t.Fatalf("a new generation should overwrite a stale deeper entry, got depth %d", entry.Depth)
	}
}

func TestTableClearRemovesEntries(t *testing.T) {
	tt := NewTable(1)
	tt.Store(0x7, 5, 1, BoundExact, CompactMove{From: 0, To: 1, Promo: 0xFF})
	tt.Clear()
	if _, ok := tt.Probe(0x7); ok {
		t.Fatal("expected Clear to wipe every slot")
	}
}

func TestNewTableUsesPowerOfTwoSlotCount(t *testing.T) {
	tt := NewTable(1)
	n := len(tt.slots)
	if n&(n-1) != 0 {
		t.Fatalf("expected a power-of-two slot count, got %d", n)
	}
	if tt.mask != uint64(n-1) {
		t.Fatalf("mask should be slotCount-1, got %d for %d slots", tt.mask, n)
	}
}
