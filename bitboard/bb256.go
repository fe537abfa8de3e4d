// Package bitboard implements a fixed-width 256-bit bitset used as the
// occupancy representation for boards up to 16x16 squares.
package bitboard

import "math/bits"

// BB256 is a 256-bit bitset stored as four 64-bit limbs, limb 0 holding
// squares 0..63, limb 1 holding 64..127, and so on. Square indices run
// 0..255; a variant with fewer than 256 squares simply never sets the
// high bits.
type BB256 [4]uint64

// Zero is the empty bitboard.
var Zero = BB256{}

// Square builds a bitboard with a single bit set.
func Square(sq int) BB256 {
	var b BB256
	b.Set(sq)
	return b
}

// Set turns on the bit for sq.
func (b *BB256) Set(sq int) {
	b[sq>>6] |= 1 << uint(sq&63)
}

// Clear turns off the bit for sq.
func (b *BB256) Clear(sq int) {
	b[sq>>6] &^= 1 << uint(sq&63)
}

// Test reports whether sq is set.
func (b BB256) Test(sq int) bool {
	return b[sq>>6]&(1<<uint(sq&63)) != 0
}

// IsZero reports whether no bits are set.
func (b BB256) IsZero() bool {
	return b[0] == 0 && b[1] == 0 && b[2] == 0 && b[3] == 0
}

// And returns the bitwise AND of b and o.
func (b BB256) And(o BB256) BB256 {
	return BB256{b[0] & o[0], b[1] & o[1], b[2] & o[2], b[3] & o[3]}
}

// Or returns the bitwise OR of b and o.
func (b BB256) Or(o BB256) BB256 {
	return BB256{b[0] | o[0], b[1] | o[1], b[2] | o[2], b[3] | o[3]}
}

// Xor returns the bitwise XOR of b and o.
func (b BB256) Xor(o BB256) BB256 {
	return BB256{b[0] ^ o[0], b[1] ^ o[1], b[2] ^ o[2], b[3] ^ o[3]}
}

// AndNot returns b &^ o (b with o's bits cleared).
func (b BB256) AndNot(o BB256) BB256 {
	return BB256{b[0] &^ o[0], b[1] &^ o[1], b[2] &^ o[2], b[3] &^ o[3]}
}

// Not returns the bitwise complement of b (all 256 bits).
func (b BB256) Not() BB256 {
	return BB256{^b[0], ^b[1], ^b[2], ^b[3]}
}

// PopCount returns the number of set bits.
func (b BB256) PopCount() int {
	return bits.OnesCount64(b[0]) + bits.OnesCount64(b[1]) + bits.OnesCount64(b[2]) + bits.OnesCount64(b[3])
}

// LSB returns the index of the least significant set bit, or -1 if empty.
func (b BB256) LSB() int {
	for limb := 0; limb < 4; limb++ {
		if b[limb] != 0 {
			return limb*64 + bits.TrailingZeros64(b[limb])
		}
	}
	return -1
}

// MSB returns the index of the most significant set bit, or -1 if empty.
func (b BB256) MSB() int {
	for limb := 3; limb >= 0; limb-- {
		if b[limb] != 0 {
			return limb*64 + 63 - bits.LeadingZeros64(b[limb])
		}
	}
	return -1
}

// PopLSB clears and returns the least significant set bit's index, or -1
// if b is already empty. This drives every move-enumeration loop in the
// generator, so it must not allocate.
func (b *BB256) PopLSB() int {
	sq := b.LSB()
	if sq >= 0 {
		b.Clear(sq)
	}
	return sq
}

// shiftLeft shifts the full 256-bit value left by n bits (0..255),
// propagating carries between limbs.
func (b BB256) shiftLeft(n uint) BB256 {
	if n == 0 {
		return b
	}
	if n >= 256 {
		return Zero
	}
	limbShift := n / 64
	bitShift := n % 64
	var out BB256
	for i := 3; i >= 0; i-- {
		srcIdx := i - int(limbShift)
		if srcIdx < 0 {
			continue
		}
		out[i] = b[srcIdx] << bitShift
		if bitShift != 0 && srcIdx > 0 {
			out[i] |= b[srcIdx-1] >> (64 - bitShift)
		}
	}
	return out
}

// shiftRight shifts the full 256-bit value right by n bits (0..255).
func (b BB256) shiftRight(n uint) BB256 {
	if n == 0 {
		return b
	}
	if n >= 256 {
		return Zero
	}
	limbShift := n / 64
	bitShift := n % 64
	var out BB256
	for i := 0; i < 4; i++ {
		srcIdx := i + int(limbShift)
		if srcIdx > 3 {
			continue
		}
		out[i] = b[srcIdx] >> bitShift
		if bitShift != 0 && srcIdx < 3 {
			out[i] |= b[srcIdx+1] << (64 - bitShift)
		}
	}
	return out
}

// ShiftDelta shifts every set bit by delta squares (positive toward
// higher indices), first masking off bits in premask so that squares
// which would wrap across a board edge are dropped instead of wrapping.
// Callers (rules.Geometry) supply premask/postmask computed from board
// width so file and diagonal shifts never wrap between ranks.
func (b BB256) ShiftDelta(delta int, premask BB256) BB256 {
	masked := b.And(premask)
	if delta >= 0 {
		return masked.shiftLeft(uint(delta))
	}
	return masked.shiftRight(uint(-delta))
}
