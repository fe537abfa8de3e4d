package rules

import "variantchess/bitboard"

// PieceAttacks holds precomputed per-square jump masks for one piece type
// and one player (offsets only; sliding attacks are computed on the fly
// from RayMasks since they depend on occupancy).
type PieceAttacks struct {
	Move    []bitboard.BB256 // squares reachable by a non-capturing jump
	Capture []bitboard.BB256 // squares reachable by a capturing jump
}

// AttackTables are the precomputed jump/ray masks built once when a
// variant is loaded. They are immutable afterward and safe to share
// across search worker goroutines.
type AttackTables struct {
	geom Geometry

	// Jump[pieceID][player] gives the per-square jump attack masks.
	Jump map[PieceID][2]PieceAttacks

	// Ray[dir][sq] is the bitboard of squares strictly between sq and the
	// board edge (or nearest wall) along dir, exclusive of sq.
	Ray [8][]bitboard.BB256
}

// buildAttackTables precomputes jump and ray tables for every piece type
// in pieces, over the given geometry.
func buildAttackTables(geom Geometry, pieces []PieceType) AttackTables {
	at := AttackTables{geom: geom, Jump: make(map[PieceID][2]PieceAttacks, len(pieces))}

	for d := 0; d < 8; d++ {
		at.Ray[d] = make([]bitboard.BB256, geom.Squares())
	}
	for sq := 0; sq < geom.Squares(); sq++ {
		if !geom.Valid.Test(sq) {
			continue
		}
		file, rank := geom.FileRank(sq)
		for i, dir := range AllDirections {
			var ray bitboard.BB256
			geom.RayCast(file, rank, dir, 0, func(s int) bool {
				ray.Set(s)
				return true
			})
			at.Ray[i][sq] = ray
		}
	}

	for _, pt := range pieces {
		var perPlayer [2]PieceAttacks
		for _, player := range [2]Player{White, Black} {
			pa := PieceAttacks{
				Move:    make([]bitboard.BB256, geom.Squares()),
				Capture: make([]bitboard.BB256, geom.Squares()),
			}
			for sq := 0; sq < geom.Squares(); sq++ {
				if !geom.Valid.Test(sq) {
					continue
				}
				file, rank := geom.FileRank(sq)
				sign := 1
				if player == Black {
					sign = -1
				}
				for _, off := range pt.Offsets {
					f, r := file+off.DFile, rank+sign*off.DRank
					if !geom.InBounds(f, r) {
						continue
					}
					tsq := geom.SquareOf(f, r)
					if !geom.Valid.Test(tsq) {
						continue
					}
					if off.CanMove {
						pa.Move[sq].Set(tsq)
					}
					if off.CanCapture {
						pa.Capture[sq].Set(tsq)
					}
				}
			}
			perPlayer[player] = pa
		}
		at.Jump[pt.ID] = perPlayer
	}

	return at
}

// dirIndex returns AllDirections' index for dir.
func dirIndex(dir Direction) int {
	for i, d := range AllDirections {
		if d == dir {
			return i
		}
	}
	panic("rules: unknown direction")
}

// SlidingAttacks computes the reachable-and-blocker squares for an
// unlimited slider standing on sq, looking along dir, given the current
// global occupancy. This is the "kindergarten" trick generalized to 256
// bits: the ray XOR the ray-from-the-first-blocker cancels every square
// beyond (but not including) that blocker.
func (at AttackTables) SlidingAttacks(dir Direction, sq int, occ bitboard.BB256) bitboard.BB256 {
	idx := dirIndex(dir)
	ray := at.Ray[idx][sq]
	blockers := ray.And(occ)
	if blockers.IsZero() {
		return ray
	}
	var blockerSq int
	if dir.forward() {
		blockerSq = blockers.LSB()
	} else {
		blockerSq = blockers.MSB()
	}
	return ray.Xor(at.Ray[idx][blockerSq])
}

// LimitedSlideAttacks computes attacks for a slider bounded to
// maxDistance steps (maxDistance==0 means unlimited; callers should
// prefer SlidingAttacks in that case). Move generation calls it for
// every slide; for unlimited sliders such as the standard
// rooks/bishops/queens it delegates straight to SlidingAttacks.
func (at AttackTables) LimitedSlideAttacks(dir Direction, sq int, occ bitboard.BB256, maxDistance int) bitboard.BB256 {
	if maxDistance <= 0 {
		return at.SlidingAttacks(dir, sq, occ)
	}
	file, rank := at.geom.FileRank(sq)
	var out bitboard.BB256
	at.geom.RayCast(file, rank, dir, maxDistance, func(s int) bool {
		out.Set(s)
		return !occ.Test(s)
	})
	return out
}
