package rules

// CastleSide describes one castling move (kingside, queenside, or any
// custom Chess960-style pairing) available to both players.
type CastleSide struct {
	Name string

	// KingFrom/KingTo and RookFrom/RookTo are indexed by Player. Build
	// does not check them; the Zobrist castle-right keys are per castle
	// side and player, not per square.
	KingFrom, KingTo [2]int
	RookFrom, RookTo [2]int

	// KingPassSquares[player] must not be attacked by the opponent (the
	// squares the king actually travels across, including its origin and
	// destination). They are not checked for emptiness; squares that must
	// be empty go in EmptySquares.
	KingPassSquares [2][]int

	// EmptySquares[player] must be empty but need not be attack-free
	// (e.g. queenside's b-file square, which the rook passes but the
	// king never does).
	EmptySquares [2][]int
}

// Descriptor is the fully-built, immutable description of one chess-like
// game: its geometry, its piece dictionary, its castling rights, its
// precomputed attack tables and Zobrist keys, and the variant hooks that
// give it rules distinct from standard chess. A Descriptor is safe to
// share (read-only) across every worker goroutine in a Lazy SMP search.
type Descriptor struct {
	Name string

	Geometry    Geometry
	Pieces      []PieceType
	PieceByID   map[PieceID]*PieceType
	PieceByChar map[rune]PieceID

	CastleSides []CastleSide
	CheckLimit  int // N-check win threshold; 0 disables check counting

	InitialFEN string

	Tuning EvalTuning
	Hooks  Hooks

	Zobrist ZobristKeys
	Attacks AttackTables
}

// Build finalizes a Descriptor: it computes the piece lookup maps,
// generates attack tables and material/PST evaluation weights, and
// derives the Zobrist key set. Variant constructors (variants.Standard,
// variants.Atomic, ...) call this once at load time; the result is
// never mutated afterward.
func Build(d Descriptor) *Descriptor {
	if d.Hooks.Terminal == nil {
		d.Hooks = DefaultHooks()
	}
	if d.Tuning == (EvalTuning{}) {
		d.Tuning = DefaultEvalTuning()
	}

	d.PieceByID = make(map[PieceID]*PieceType, len(d.Pieces))
	d.PieceByChar = make(map[rune]PieceID, len(d.Pieces)*2)
	for i := range d.Pieces {
		pt := &d.Pieces[i]
		pt.MaterialValue = materialValue(*pt, d.Tuning)
		pt.PST = generatePST(d.Geometry, *pt, d.Tuning)
		d.PieceByID[pt.ID] = pt
		d.PieceByChar[pt.DisplayWhite] = pt.ID
		d.PieceByChar[pt.DisplayBlack] = pt.ID
	}

	d.Attacks = buildAttackTables(d.Geometry, d.Pieces)
	d.Zobrist = buildZobrist(d.Geometry, d.Pieces, len(d.CastleSides), d.CheckLimit)

	return &d
}

// PieceTypeOf returns the PieceType for id. Callers hold a *Descriptor
// built via Build, so id is always present; a missing id is a
// programmer error in the variant table, not a runtime condition to
// recover from.
func (d *Descriptor) PieceTypeOf(id PieceID) PieceType {
	return *d.PieceByID[id]
}
