package variants

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"variantchess/bitboard"
	"variantchess/rules"
)

// Config is the on-disk, human-editable description of a custom variant.
// It mirrors rules.Descriptor but trades bitboards for the plain
// (file, rank) coordinates and square lists a person can actually write
// in a YAML file; Build converts one into a built rules.Descriptor.
type Config struct {
	Name       string       `yaml:"name"`
	Width      int          `yaml:"width"`
	Height     int          `yaml:"height"`
	Walls      []Square     `yaml:"walls,omitempty"`
	Pieces     []PieceSpec  `yaml:"pieces"`
	CastleSides []CastleSpec `yaml:"castle_sides,omitempty"`
	CheckLimit int          `yaml:"check_limit,omitempty"`
	InitialFEN string       `yaml:"initial_fen"`
	Tuning     *TuningSpec  `yaml:"tuning,omitempty"`
}

// Square is a zero-based (file, rank) pair, file 0 = 'a', rank 0 = rank 1.
type Square struct {
	File int `yaml:"file"`
	Rank int `yaml:"rank"`
}

// OffsetSpec is one non-sliding jump a piece may make.
type OffsetSpec struct {
	DFile      int  `yaml:"dfile"`
	DRank      int  `yaml:"drank"`
	CanMove    bool `yaml:"can_move"`
	CanCapture bool `yaml:"can_capture"`
}

// SlideSpec is one sliding ray a piece may travel along.
type SlideSpec struct {
	Dir         string `yaml:"dir"` // "N","S","E","W","NE","NW","SE","SW"
	CanMove     bool   `yaml:"can_move"`
	CanCapture  bool   `yaml:"can_capture"`
	MaxDistance int    `yaml:"max_distance,omitempty"`
}

// PieceSpec describes one entry in the variant's piece dictionary.
type PieceSpec struct {
	ID                   int          `yaml:"id"`
	Name                 string       `yaml:"name"`
	DisplayWhite         string       `yaml:"display_white"`
	DisplayBlack         string       `yaml:"display_black"`
	Offsets              []OffsetSpec `yaml:"offsets,omitempty"`
	Slides               []SlideSpec  `yaml:"slides,omitempty"`
	PromotionTargets     []int        `yaml:"promotion_targets,omitempty"`
	PromotionRankWhite   int          `yaml:"promotion_rank_white,omitempty"`
	PromotionRankBlack   int          `yaml:"promotion_rank_black,omitempty"`
	PromotionMandatory   bool         `yaml:"promotion_mandatory,omitempty"`
	DoubleJumpRankWhite  int          `yaml:"double_jump_rank_white,omitempty"`
	DoubleJumpRankBlack  int          `yaml:"double_jump_rank_black,omitempty"`
	DoubleJumpDeltaRanks int          `yaml:"double_jump_delta_ranks,omitempty"`
	EnPassantCapturer    bool         `yaml:"en_passant_capturer,omitempty"`
	IsKing               bool         `yaml:"is_king,omitempty"`
	IsCastlingRook       bool         `yaml:"is_castling_rook,omitempty"`
	Leader               bool         `yaml:"leader,omitempty"`
	WinOnSquares         []Square     `yaml:"win_on_squares,omitempty"`
	ExplosionImmune      bool         `yaml:"explosion_immune,omitempty"`
}

// CastleSpec describes one castling pairing, per-player squares given
// explicitly since a custom board need not be left/right symmetric.
type CastleSpec struct {
	Name            string   `yaml:"name"`
	KingFromWhite   Square   `yaml:"king_from_white"`
	KingToWhite     Square   `yaml:"king_to_white"`
	RookFromWhite   Square   `yaml:"rook_from_white"`
	RookToWhite     Square   `yaml:"rook_to_white"`
	KingFromBlack   Square   `yaml:"king_from_black"`
	KingToBlack     Square   `yaml:"king_to_black"`
	RookFromBlack   Square   `yaml:"rook_from_black"`
	RookToBlack     Square   `yaml:"rook_to_black"`
	KingPassWhite   []Square `yaml:"king_pass_white"`
	KingPassBlack   []Square `yaml:"king_pass_black"`
	EmptyWhite      []Square `yaml:"empty_white"`
	EmptyBlack      []Square `yaml:"empty_black"`
}

// TuningSpec overrides rules.DefaultEvalTuning when present.
type TuningSpec struct {
	MobilityWeight           int32 `yaml:"mobility_weight"`
	SlideReachBonus          int32 `yaml:"slide_reach_bonus"`
	LeaderPenalty            int32 `yaml:"leader_penalty"`
	CentralityWeight         int16 `yaml:"centrality_weight"`
	VisibilityWeight         int16 `yaml:"visibility_weight"`
	PromotionProximityWeight int16 `yaml:"promotion_proximity_weight"`
}

var dirByName = map[string]rules.Direction{
	"N": rules.North, "S": rules.South, "E": rules.East, "W": rules.West,
	"NE": rules.NorthEast, "NW": rules.NorthWest, "SE": rules.SouthEast, "SW": rules.SouthWest,
}

// LoadFile reads and builds a custom variant descriptor from a YAML file.
func LoadFile(path string) (*rules.Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("variants: read %s: %w", path, err)
	}
	return LoadBytes(data)
}

// LoadBytes parses raw YAML config bytes into a built descriptor.
func LoadBytes(data []byte) (*rules.Descriptor, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("variants: parse config: %w", err)
	}
	return Build(cfg)
}

// Save writes cfg back out as YAML, for round-tripping a hand-edited or
// programmatically generated custom variant.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("variants: marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("variants: write %s: %w", path, err)
	}
	return nil
}

// Build turns a Config into a fully-built rules.Descriptor, resolving
// (file, rank) coordinates against cfg's own geometry.
func Build(cfg Config) (*rules.Descriptor, error) {
	var walls bitboard.BB256
	for _, sq := range cfg.Walls {
		walls.Set(sq.Rank*cfg.Width + sq.File)
	}
	geom := rules.NewGeometry(cfg.Width, cfg.Height, walls)

	pieces := make([]rules.PieceType, 0, len(cfg.Pieces))
	for _, ps := range cfg.PieceSpecs() {
		pt, err := ps.build(geom)
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, pt)
	}

	sides := make([]rules.CastleSide, 0, len(cfg.CastleSides))
	for _, cs := range cfg.CastleSides {
		sides = append(sides, cs.build(geom))
	}

	d := rules.Descriptor{
		Name:        cfg.Name,
		Geometry:    geom,
		Pieces:      pieces,
		CastleSides: sides,
		CheckLimit:  cfg.CheckLimit,
		InitialFEN:  cfg.InitialFEN,
	}
	if cfg.Tuning != nil {
		d.Tuning = rules.EvalTuning{
			MobilityWeight:           cfg.Tuning.MobilityWeight,
			SlideReachBonus:          cfg.Tuning.SlideReachBonus,
			LeaderPenalty:            cfg.Tuning.LeaderPenalty,
			CentralityWeight:         cfg.Tuning.CentralityWeight,
			VisibilityWeight:         cfg.Tuning.VisibilityWeight,
			PromotionProximityWeight: cfg.Tuning.PromotionProximityWeight,
		}
	}
	return rules.Build(d), nil
}

// PieceSpecs returns cfg.Pieces; a named accessor so Build reads as
// prose rather than a raw field poke.
func (cfg Config) PieceSpecs() []PieceSpec { return cfg.Pieces }

func (ps PieceSpec) build(geom rules.Geometry) (rules.PieceType, error) {
	if len([]rune(ps.DisplayWhite)) != 1 || len([]rune(ps.DisplayBlack)) != 1 {
		return rules.PieceType{}, fmt.Errorf("variants: piece %q needs single-rune display_white/display_black", ps.Name)
	}
	pt := rules.PieceType{
		ID:                 rules.PieceID(ps.ID),
		Name:               ps.Name,
		DisplayWhite:       []rune(ps.DisplayWhite)[0],
		DisplayBlack:       []rune(ps.DisplayBlack)[0],
		PromotionMandatory: ps.PromotionMandatory,
		EnPassantCapturer:  ps.EnPassantCapturer,
		IsKing:             ps.IsKing,
		IsCastlingRook:     ps.IsCastlingRook,
		Leader:             ps.Leader,
		ExplosionImmune:    ps.ExplosionImmune,
	}
	for _, o := range ps.Offsets {
		pt.Offsets = append(pt.Offsets, rules.Offset{
			DFile: o.DFile, DRank: o.DRank, CanMove: o.CanMove, CanCapture: o.CanCapture,
		})
	}
	for _, s := range ps.Slides {
		dir, ok := dirByName[s.Dir]
		if !ok {
			return rules.PieceType{}, fmt.Errorf("variants: piece %q unknown slide dir %q", ps.Name, s.Dir)
		}
		pt.Slides = append(pt.Slides, rules.SlideRule{
			Dir: dir, CanMove: s.CanMove, CanCapture: s.CanCapture, MaxDistance: s.MaxDistance,
		})
	}
	for _, id := range ps.PromotionTargets {
		pt.PromotionTargets = append(pt.PromotionTargets, rules.PieceID(id))
	}
	if len(ps.PromotionTargets) > 0 {
		var white, black bitboard.BB256
		for f := 0; f < geom.Width; f++ {
			white.Set(geom.SquareOf(f, ps.PromotionRankWhite))
			black.Set(geom.SquareOf(f, ps.PromotionRankBlack))
		}
		pt.PromotionSquares = [2]bitboard.BB256{white, black}
	}
	if ps.DoubleJumpDeltaRanks > 0 {
		var white, black bitboard.BB256
		for f := 0; f < geom.Width; f++ {
			white.Set(geom.SquareOf(f, ps.DoubleJumpRankWhite))
			black.Set(geom.SquareOf(f, ps.DoubleJumpRankBlack))
		}
		pt.DoubleJumpOrigins = [2]bitboard.BB256{white, black}
		pt.DoubleJumpDeltaRanks = ps.DoubleJumpDeltaRanks
	}
	for _, sq := range ps.WinOnSquares {
		pt.WinOnSquare.Set(geom.SquareOf(sq.File, sq.Rank))
	}
	return pt, nil
}

func (cs CastleSpec) build(geom rules.Geometry) rules.CastleSide {
	toSq := func(s Square) int { return geom.SquareOf(s.File, s.Rank) }
	toSqs := func(ss []Square) []int {
		out := make([]int, len(ss))
		for i, s := range ss {
			out[i] = toSq(s)
		}
		return out
	}
	return rules.CastleSide{
		Name:            cs.Name,
		KingFrom:        [2]int{toSq(cs.KingFromWhite), toSq(cs.KingFromBlack)},
		KingTo:          [2]int{toSq(cs.KingToWhite), toSq(cs.KingToBlack)},
		RookFrom:        [2]int{toSq(cs.RookFromWhite), toSq(cs.RookFromBlack)},
		RookTo:          [2]int{toSq(cs.RookToWhite), toSq(cs.RookToBlack)},
		KingPassSquares: [2][]int{toSqs(cs.KingPassWhite), toSqs(cs.KingPassBlack)},
		EmptySquares:    [2][]int{toSqs(cs.EmptyWhite), toSqs(cs.EmptyBlack)},
	}
}
