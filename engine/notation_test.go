package engine

import (
	"testing"

	"variantchess/bitboard"
	"variantchess/rules"
	"variantchess/variants"
)

func TestParseCoordinateMoveParsesAPlainMove(t *testing.T) {
	desc := variants.Standard()
	from, to, promo, err := parseCoordinateMove(desc.Geometry, "e2e4")
	if err != nil {
		t.Fatalf("parseCoordinateMove: %v", err)
	}
	if promo != "" {
		t.Fatalf("expected no promotion letter, got %q", promo)
	}
	wantFrom := desc.Geometry.SquareOf(4, 1)
	wantTo := desc.Geometry.SquareOf(4, 3)
	if from != wantFrom || to != wantTo {
		t.Fatalf("got from=%d to=%d, want from=%d to=%d", from, to, wantFrom, wantTo)
	}
}

func TestParseCoordinateMoveParsesAPromotion(t *testing.T) {
	desc := variants.Standard()
	from, to, promo, err := parseCoordinateMove(desc.Geometry, "e7e8q")
	if err != nil {
		t.Fatalf("parseCoordinateMove: %v", err)
	}
	if promo != "q" {
		t.Fatalf("expected promo %q, got %q", "q", promo)
	}
	if from != desc.Geometry.SquareOf(4, 6) || to != desc.Geometry.SquareOf(4, 7) {
		t.Fatalf("got from=%d to=%d", from, to)
	}
}

func TestParseCoordinateMoveHandlesTwoDigitRanks(t *testing.T) {
	// A 16-wide, 16-tall board, so rank 10 and rank 16 both need
	// two-digit parsing.
	geom := rules.NewGeometry(16, 16, bitboard.Zero)
	from, to, promo, err := parseCoordinateMove(geom, "a10a16")
	if err != nil {
		t.Fatalf("parseCoordinateMove: %v", err)
	}
	if promo != "" {
		t.Fatalf("expected no promotion letter, got %q", promo)
	}
	wantFrom := geom.SquareOf(0, 9)
	wantTo := geom.SquareOf(0, 15)
	if from != wantFrom || to != wantTo {
		t.Fatalf("got from=%d to=%d, want from=%d to=%d", from, to, wantFrom, wantTo)
	}
}

func TestParseCoordinateMoveRejectsTooShort(t *testing.T) {
	desc := variants.Standard()
	if _, _, _, err := parseCoordinateMove(desc.Geometry, "e2"); err == nil {
		t.Fatal("expected an error for a move string missing its destination square")
	}
}
