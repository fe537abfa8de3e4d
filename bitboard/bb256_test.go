package bitboard

import "testing"

func TestSetClearTest(t *testing.T) {
	var b BB256
	b.Set(0)
	b.Set(63)
	b.Set(64)
	b.Set(255)
	for _, sq := range []int{0, 63, 64, 255} {
		if !b.Test(sq) {
			t.Fatalf("expected bit %d set", sq)
		}
	}
	b.Clear(64)
	if b.Test(64) {
		t.Fatalf("bit 64 should be cleared")
	}
}

func TestPopCount(t *testing.T) {
	var b BB256
	for _, sq := range []int{1, 2, 3, 128, 200, 255} {
		b.Set(sq)
	}
	if got := b.PopCount(); got != 6 {
		t.Fatalf("popcount = %d, want 6", got)
	}
}

func TestLSBMSB(t *testing.T) {
	var b BB256
	b.Set(200)
	b.Set(5)
	b.Set(130)
	if got := b.LSB(); got != 5 {
		t.Fatalf("LSB = %d, want 5", got)
	}
	if got := b.MSB(); got != 200 {
		t.Fatalf("MSB = %d, want 200", got)
	}
	empty := BB256{}
	if empty.LSB() != -1 || empty.MSB() != -1 {
		t.Fatalf("empty board should report -1")
	}
}

func TestPopLSB(t *testing.T) {
	var b BB256
	b.Set(3)
	b.Set(70)
	b.Set(190)
	var got []int
	for !b.IsZero() {
		got = append(got, b.PopLSB())
	}
	want := []int{3, 70, 190}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestBitwiseAlgebra(t *testing.T) {
	a := Square(10).Or(Square(20))
	c := Square(20).Or(Square(30))
	if got := a.And(c); got != Square(20) {
		t.Fatalf("AND mismatch: %v", got)
	}
	if got := a.Xor(c); got != Square(10).Or(Square(30)) {
		t.Fatalf("XOR mismatch: %v", got)
	}
	if got := a.AndNot(Square(10)); got != Square(20) {
		t.Fatalf("AndNot mismatch: %v", got)
	}
}

func TestShiftDeltaNoWraparoundWhenMasked(t *testing.T) {
	// Simulate an 8-wide board: file 7 squares must not wrap into the
	// next rank's file 0 when shifted east by 1.
	width := 8
	var notLastFile BB256
	for sq := 0; sq < 64; sq++ {
		if sq%width != width-1 {
			notLastFile.Set(sq)
		}
	}
	src := Square(7) // last square of rank 0
	got := src.ShiftDelta(1, notLastFile)
	if !got.IsZero() {
		t.Fatalf("expected wraparound to be suppressed, got %v", got)
	}
	src2 := Square(6)
	got2 := src2.ShiftDelta(1, notLastFile)
	if !got2.Test(7) {
		t.Fatalf("expected bit 7 set from non-wrapping east shift")
	}
}

func TestShiftDeltaCrossLimb(t *testing.T) {
	src := Square(60)
	got := src.ShiftDelta(8, Zero.Not())
	if !got.Test(68) {
		t.Fatalf("expected cross-limb carry to square 68, got %v", got)
	}
}
