package engine

import (
	"fmt"

	"variantchess/rules"
)

// parseCoordinateMove parses simple coordinate notation ("e2e4",
// "e7e8q", or "a10a11q" on a board tall enough to have a two-digit
// rank) into geometry-relative squares and an optional lowercase
// promotion letter. It does not validate legality — the caller matches
// the result against the current legal move list.
func parseCoordinateMove(g rules.Geometry, s string) (from, to int, promo string, err error) {
	from, rest, err := consumeSquare(g, s)
	if err != nil {
		return 0, 0, "", err
	}
	to, rest, err = consumeSquare(g, rest)
	if err != nil {
		return 0, 0, "", err
	}
	if rest != "" {
		promo = rest[0:1]
	}
	return from, to, promo, nil
}

// consumeSquare reads one file letter followed by a run of digits (the
// rank may be one or two digits on boards taller than nine ranks) from
// the front of s and returns the parsed square plus whatever remains.
func consumeSquare(g rules.Geometry, s string) (sq int, rest string, err error) {
	if len(s) < 2 {
		return 0, "", fmt.Errorf("square %q is too short", s)
	}
	file := int(s[0] - 'a')
	i := 1
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 1 {
		return 0, "", fmt.Errorf("square %q has a non-numeric rank", s)
	}
	rank, err := parseInt(s[1:i])
	if err != nil {
		return 0, "", fmt.Errorf("square %q has a malformed rank: %w", s, err)
	}
	rank--
	if !g.InBounds(file, rank) {
		return 0, "", fmt.Errorf("square %q is out of bounds", s)
	}
	return g.SquareOf(file, rank), s[i:], nil
}

func parseSquare(g rules.Geometry, tok string) (int, error) {
	sq, rest, err := consumeSquare(g, tok)
	if err != nil {
		return 0, err
	}
	if rest != "" {
		return 0, fmt.Errorf("square %q has trailing characters %q", tok, rest)
	}
	return sq, nil
}

func parseInt(digits string) (int, error) {
	n := 0
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%q is not a number", digits)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
