package rules

import (
	"testing"

	"variantchess/bitboard"
)

func TestNewGeometryValidExcludesWalls(t *testing.T) {
	var walls bitboard.BB256
	walls.Set(3*8 + 3) // d4-equivalent wall on an 8x8 board
	g := NewGeometry(8, 8, walls)
	if g.Valid.Test(3*8 + 3) {
		t.Fatal("wall square must not be Valid")
	}
	if !g.Valid.Test(0) {
		t.Fatal("a0-equivalent square should be Valid")
	}
	if g.Squares() != 64 {
		t.Fatalf("Squares() = %d, want 64", g.Squares())
	}
}

func TestShiftNorthNoRankWraparound(t *testing.T) {
	g := NewGeometry(8, 8, bitboard.Zero)
	top := bitboard.Square(g.SquareOf(3, 7))
	shifted := g.Shift(top, North)
	if !shifted.IsZero() {
		t.Fatal("shifting off the top rank must vanish, not wrap")
	}
}

func TestShiftEastNoFileWraparound(t *testing.T) {
	g := NewGeometry(8, 8, bitboard.Zero)
	edge := bitboard.Square(g.SquareOf(7, 3))
	shifted := g.Shift(edge, East)
	if !shifted.IsZero() {
		t.Fatal("shifting off the east file must vanish, not wrap to the next rank")
	}
}

func TestShiftInteriorMovesOneSquare(t *testing.T) {
	g := NewGeometry(8, 8, bitboard.Zero)
	mid := bitboard.Square(g.SquareOf(3, 3))
	got := g.Shift(mid, East)
	want := bitboard.Square(g.SquareOf(4, 3))
	if got != want {
		t.Fatalf("Shift(East) = %+v, want %+v", got, want)
	}
	got = g.Shift(mid, North)
	want = bitboard.Square(g.SquareOf(3, 4))
	if got != want {
		t.Fatalf("Shift(North) = %+v, want %+v", got, want)
	}
}

func TestRayCastStopsAtWall(t *testing.T) {
	var walls bitboard.BB256
	walls.Set(3*8 + 5) // wall two squares east of (3,3)
	g := NewGeometry(8, 8, walls)
	var visited []int
	g.RayCast(3, 3, East, 0, func(sq int) bool {
		visited = append(visited, sq)
		return true
	})
	if len(visited) != 1 {
		t.Fatalf("expected ray to stop before the wall, got %v", visited)
	}
}

func TestRayCastMaxDistance(t *testing.T) {
	g := NewGeometry(8, 8, bitboard.Zero)
	var visited []int
	g.RayCast(0, 0, East, 3, func(sq int) bool {
		visited = append(visited, sq)
		return true
	})
	if len(visited) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(visited))
	}
}
