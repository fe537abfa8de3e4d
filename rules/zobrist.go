package rules

import "math/rand"

// zobristSeed is fixed so that hashing is reproducible across runs and
// across threads cloning the same variant, matching the "deterministic
// given (position, seed, thread count, search budget)" requirement.
const zobristSeed = 0xC0DE

// ZobristKeys holds the random feature keys generated once when a
// Descriptor is built, generalizing goosemg's fixed 12-piece table to an
// arbitrary per-variant piece dictionary and board size.
type ZobristKeys struct {
	Piece      map[PieceID][2][]uint64 // [pieceID][player][square]
	Side       uint64
	CastleSq   [2][]uint64 // [player][CastleSides index], one distinct key per right
	EnPassant  []uint64    // one key per file
	CheckCount [2][]uint64 // [player][count], only populated when CheckLimit > 0
}

func buildZobrist(geom Geometry, pieces []PieceType, numCastleSides int, checkLimit int) ZobristKeys {
	rnd := rand.New(rand.NewSource(zobristSeed))

	zk := ZobristKeys{
		Piece:     make(map[PieceID][2][]uint64, len(pieces)),
		EnPassant: make([]uint64, geom.Width),
	}
	for _, pt := range pieces {
		var perPlayer [2][]uint64
		for player := range perPlayer {
			keys := make([]uint64, geom.Squares())
			for sq := range keys {
				keys[sq] = rnd.Uint64()
			}
			perPlayer[player] = keys
		}
		zk.Piece[pt.ID] = perPlayer
	}
	for player := 0; player < 2; player++ {
		keys := make([]uint64, numCastleSides)
		for i := range keys {
			keys[i] = rnd.Uint64()
		}
		zk.CastleSq[player] = keys
	}
	for f := range zk.EnPassant {
		zk.EnPassant[f] = rnd.Uint64()
	}
	zk.Side = rnd.Uint64()

	if checkLimit > 0 {
		for player := 0; player < 2; player++ {
			keys := make([]uint64, checkLimit+1)
			for i := range keys {
				keys[i] = rnd.Uint64()
			}
			zk.CheckCount[player] = keys
		}
	}
	return zk
}
