package fen

import (
	"strconv"
	"strings"

	"variantchess/position"
	"variantchess/rules"
)

// Serialize renders p in the extended FEN dialect Parse accepts. The
// trailing check-count field is omitted when the variant keeps no check
// counts, and the clocks field is then also omitted while it holds its
// "0-1" default, so a four-field FEN serializes back unchanged. The
// round trip Parse(Serialize(p)) == p (modulo the ignored clocks) is
// exercised in fen_test.go.
func Serialize(p *position.Position) string {
	desc := p.Desc
	var fields [6]string
	fields[0] = serializePlacement(p, desc)
	fields[1] = serializeSide(p)
	fields[2] = serializeCastling(p, desc)
	fields[3] = serializeEnPassant(p, desc)
	fields[4] = strconv.Itoa(p.HalfmoveClock) + "-" + strconv.Itoa(p.FullmoveNumber)
	fields[5] = serializeCheckCount(p, desc)
	n := len(fields)
	if fields[5] == "-" {
		n = 5
		if fields[4] == "0-1" {
			n = 4
		}
	}
	return strings.Join(fields[:n], " ")
}

func serializePlacement(p *position.Position, desc *rules.Descriptor) string {
	var ranks []string
	for rank := desc.Geometry.Height - 1; rank >= 0; rank-- {
		var sb strings.Builder
		empty := 0
		flushEmpty := func() {
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
		}
		for file := 0; file < desc.Geometry.Width; file++ {
			sq := desc.Geometry.SquareOf(file, rank)
			if !desc.Geometry.Valid.Test(sq) {
				flushEmpty()
				sb.WriteByte('*')
				continue
			}
			id, player, present := p.PieceAt(sq)
			if !present {
				empty++
				continue
			}
			flushEmpty()
			sb.WriteRune(desc.PieceTypeOf(id).Display(player))
		}
		flushEmpty()
		ranks = append(ranks, sb.String())
	}
	return strings.Join(ranks, "/")
}

func serializeSide(p *position.Position) string {
	if p.SideToMove() == rules.White {
		return "w"
	}
	return "b"
}

func serializeCastling(p *position.Position, desc *rules.Descriptor) string {
	if len(desc.CastleSides) == 0 {
		return "-"
	}
	total, have := 0, 0
	var squares []string
	for idx, side := range desc.CastleSides {
		for pl := 0; pl < 2; pl++ {
			total++
			if p.CastleRights[pl][idx] {
				have++
				squares = append(squares, squareString(desc.Geometry, side.RookFrom[pl]))
			}
		}
	}
	if have == 0 {
		return "-"
	}
	if have == total {
		return "(ALL)"
	}
	return "(" + strings.Join(squares, ",") + ")"
}

func serializeEnPassant(p *position.Position, desc *rules.Descriptor) string {
	if p.EPSquare < 0 {
		return "-"
	}
	return squareString(desc.Geometry, p.EPSquare) + "(" + squareString(desc.Geometry, p.EPVictimSquare) + ")"
}

func serializeCheckCount(p *position.Position, desc *rules.Descriptor) string {
	if desc.CheckLimit == 0 && p.CheckCounts[rules.White] == 0 && p.CheckCounts[rules.Black] == 0 {
		return "-"
	}
	return "+" + strconv.Itoa(p.CheckCounts[rules.White]) + "+" + strconv.Itoa(p.CheckCounts[rules.Black])
}
