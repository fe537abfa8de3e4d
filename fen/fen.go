// Package fen implements the extended FEN dialect used to load and
// save a position: six space-separated fields (placement, side,
// castling, en-passant, clocks, check-count), every field after the
// first optional with a documented default. It is a thin client of
// position and rules, mirroring how goosemg's own fen.go builds a
// Board from a parsed string.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"variantchess/position"
	"variantchess/rules"
)

// ParseError reports a malformed FEN field, matching the FenParse
// error kind from the engine's error taxonomy.
type ParseError struct {
	Field string
	Value string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fen: field %s (%q): %s", e.Field, e.Value, e.Msg)
}

// Parse builds a *position.Position over desc from an extended FEN
// string. Fields after placement are optional: side defaults to
// White, castling to none, en-passant to none, clocks to 0/1, and
// check-count to 0/0.
func Parse(desc *rules.Descriptor, s string) (*position.Position, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, &ParseError{Field: "placement", Value: s, Msg: "empty FEN string"}
	}

	p := position.New(desc)
	if err := parsePlacement(p, desc, fields[0]); err != nil {
		return nil, err
	}

	side := rules.White
	if len(fields) > 1 {
		var err error
		side, err = parseSide(fields[1])
		if err != nil {
			return nil, err
		}
	}
	p.SetSideToMove(side)

	if len(fields) > 2 {
		if err := parseCastling(p, desc, fields[2]); err != nil {
			return nil, err
		}
	}

	if len(fields) > 3 {
		if err := parseEnPassant(p, desc, fields[3]); err != nil {
			return nil, err
		}
	} else {
		p.SetEnPassant(-1, -1)
	}

	half, full := 0, 1
	checkSet := false
	if len(fields) > 4 && fields[4] != "-" {
		if strings.HasPrefix(fields[4], "+") {
			// Clocks field omitted: the fifth field is check-count instead.
			w, b, err := parseCheckCount(fields[4])
			if err != nil {
				return nil, err
			}
			p.SetCheckCount(rules.White, w)
			p.SetCheckCount(rules.Black, b)
			checkSet = true
		} else {
			var err error
			half, full, err = parseClocks(fields[4])
			if err != nil {
				return nil, err
			}
		}
	}
	p.SetHalfmoveClock(half)
	p.SetFullmoveNumber(full)

	if !checkSet && len(fields) > 5 {
		w, b, err := parseCheckCount(fields[5])
		if err != nil {
			return nil, err
		}
		p.SetCheckCount(rules.White, w)
		p.SetCheckCount(rules.Black, b)
	}

	p.Finalize()
	return p, nil
}

func parsePlacement(p *position.Position, desc *rules.Descriptor, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != desc.Geometry.Height {
		return &ParseError{Field: "placement", Value: field,
			Msg: fmt.Sprintf("expected %d ranks, got %d", desc.Geometry.Height, len(ranks))}
	}
	for i, rankStr := range ranks {
		rank := desc.Geometry.Height - 1 - i
		file := 0
		for _, ch := range rankStr {
			switch {
			case ch >= '1' && ch <= '9':
				file += int(ch - '0')
			case ch == '*':
				file++
			default:
				if file >= desc.Geometry.Width {
					return &ParseError{Field: "placement", Value: field, Msg: "rank overflows board width"}
				}
				id, ok := desc.PieceByChar[ch]
				if !ok {
					return &ParseError{Field: "placement", Value: field, Msg: fmt.Sprintf("unknown piece letter %q", ch)}
				}
				player := rules.Black
				if unicode.IsUpper(ch) {
					player = rules.White
				}
				sq := desc.Geometry.SquareOf(file, rank)
				p.PlacePiece(sq, id, player)
				file++
			}
		}
	}
	return nil
}

func parseSide(tok string) (rules.Player, error) {
	switch tok {
	case "w", "W":
		return rules.White, nil
	case "b", "B":
		return rules.Black, nil
	default:
		return rules.White, &ParseError{Field: "side", Value: tok, Msg: "must be 'w' or 'b'"}
	}
}

func parseCastling(p *position.Position, desc *rules.Descriptor, tok string) error {
	if tok == "-" {
		return nil
	}
	if tok == "(ALL)" {
		for idx := range desc.CastleSides {
			p.SetCastleRight(idx, rules.White, true)
			p.SetCastleRight(idx, rules.Black, true)
		}
		return nil
	}
	if strings.HasPrefix(tok, "(") && strings.HasSuffix(tok, ")") {
		inner := strings.TrimSuffix(strings.TrimPrefix(tok, "("), ")")
		if inner == "" {
			return nil
		}
		for _, tokSq := range strings.Split(inner, ",") {
			sq, err := parseSquare(desc.Geometry, strings.TrimSpace(tokSq))
			if err != nil {
				return &ParseError{Field: "castling", Value: tok, Msg: err.Error()}
			}
			idx, player, ok := findCastleSideByRookSquare(desc, sq)
			if !ok {
				return &ParseError{Field: "castling", Value: tok, Msg: fmt.Sprintf("square %s is not a castling rook origin", tokSq)}
			}
			p.SetCastleRight(idx, player, true)
		}
		return nil
	}
	// legacy KQkq
	for _, ch := range tok {
		player := rules.Black
		if unicode.IsUpper(ch) {
			player = rules.White
		}
		wantKing := unicode.ToLower(ch) == 'k'
		idx, ok := findCastleSideByRole(desc, wantKing)
		if !ok {
			return &ParseError{Field: "castling", Value: tok, Msg: fmt.Sprintf("no castle side for %q", ch)}
		}
		p.SetCastleRight(idx, player, true)
	}
	return nil
}

func findCastleSideByRookSquare(desc *rules.Descriptor, sq int) (idx int, player rules.Player, ok bool) {
	for i, side := range desc.CastleSides {
		for pl := 0; pl < 2; pl++ {
			if side.RookFrom[pl] == sq {
				return i, rules.Player(pl), true
			}
		}
	}
	return 0, 0, false
}

func findCastleSideByRole(desc *rules.Descriptor, wantKingside bool) (int, bool) {
	for i, side := range desc.CastleSides {
		isKingside := strings.Contains(strings.ToLower(side.Name), "king")
		if isKingside == wantKingside {
			return i, true
		}
	}
	return 0, false
}

func parseEnPassant(p *position.Position, desc *rules.Descriptor, tok string) error {
	if tok == "-" {
		p.SetEnPassant(-1, -1)
		return nil
	}
	open := strings.IndexByte(tok, '(')
	if open < 0 || !strings.HasSuffix(tok, ")") {
		return &ParseError{Field: "en-passant", Value: tok, Msg: "expected target(victim) or '-'"}
	}
	target, err := parseSquare(desc.Geometry, tok[:open])
	if err != nil {
		return &ParseError{Field: "en-passant", Value: tok, Msg: err.Error()}
	}
	victim, err := parseSquare(desc.Geometry, tok[open+1:len(tok)-1])
	if err != nil {
		return &ParseError{Field: "en-passant", Value: tok, Msg: err.Error()}
	}
	p.SetEnPassant(target, victim)
	return nil
}

func parseClocks(tok string) (half, full int, err error) {
	parts := strings.SplitN(tok, "-", 2)
	half, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 1, &ParseError{Field: "clocks", Value: tok, Msg: "malformed halfmove clock"}
	}
	full = 1
	if len(parts) == 2 {
		full, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, 1, &ParseError{Field: "clocks", Value: tok, Msg: "malformed fullmove number"}
		}
	}
	return half, full, nil
}

func parseCheckCount(tok string) (white, black int, err error) {
	if tok == "-" {
		return 0, 0, nil
	}
	n, err2 := fmt.Sscanf(tok, "+%d+%d", &white, &black)
	if err2 != nil || n != 2 {
		return 0, 0, &ParseError{Field: "check-count", Value: tok, Msg: "expected +W+B"}
	}
	return white, black, nil
}

// parseSquare reads an algebraic square like "e4" against geom.
func parseSquare(geom rules.Geometry, tok string) (int, error) {
	if len(tok) < 2 {
		return 0, fmt.Errorf("malformed square %q", tok)
	}
	file := int(tok[0] - 'a')
	rank, err := strconv.Atoi(tok[1:])
	if err != nil {
		return 0, fmt.Errorf("malformed square %q", tok)
	}
	rank--
	if !geom.InBounds(file, rank) {
		return 0, fmt.Errorf("square %q out of bounds", tok)
	}
	return geom.SquareOf(file, rank), nil
}

func squareString(geom rules.Geometry, sq int) string {
	file, rank := geom.FileRank(sq)
	return fmt.Sprintf("%c%d", 'a'+file, rank+1)
}
