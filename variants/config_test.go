package variants

import (
	"testing"

	"variantchess/fen"
)

func miniConfig() Config {
	return Config{
		Name:   "mini-custom",
		Width:  4,
		Height: 4,
		Pieces: []PieceSpec{
			{
				ID: 0, Name: "guard", DisplayWhite: "G", DisplayBlack: "g",
				Offsets: []OffsetSpec{
					{DFile: 1, DRank: 0, CanMove: true, CanCapture: true},
					{DFile: -1, DRank: 0, CanMove: true, CanCapture: true},
					{DFile: 0, DRank: 1, CanMove: true, CanCapture: true},
					{DFile: 0, DRank: -1, CanMove: true, CanCapture: true},
				},
				IsKing: true, Leader: true,
			},
			{
				ID: 1, Name: "lancer", DisplayWhite: "L", DisplayBlack: "l",
				Slides: []SlideSpec{
					{Dir: "N", CanMove: true, CanCapture: true},
					{Dir: "S", CanMove: true, CanCapture: true},
					{Dir: "E", CanMove: true, CanCapture: true},
					{Dir: "W", CanMove: true, CanCapture: true},
				},
			},
		},
		InitialFEN: "1g2/4/4/1G2 w - -",
	}
}

func TestConfigBuildProducesAWorkingDescriptor(t *testing.T) {
	d, err := Build(miniConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	p, err := fen.Parse(d, d.InitialFEN)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	legal := p.GenerateLegal()
	if len(legal) == 0 {
		t.Fatal("expected at least one legal move for the lone guard")
	}
	if _, ok := d.PieceByChar['G']; !ok {
		t.Fatal("custom piece display character not registered")
	}
}

func TestConfigRejectsUnknownSlideDirection(t *testing.T) {
	cfg := miniConfig()
	cfg.Pieces[1].Slides[0].Dir = "NNE"
	if _, err := Build(cfg); err == nil {
		t.Fatal("expected an error for an unknown slide direction")
	}
}

func TestConfigWinOnSquaresBuildsBitboard(t *testing.T) {
	cfg := miniConfig()
	cfg.Pieces[0].WinOnSquares = []Square{{File: 1, Rank: 2}}
	d, err := Build(cfg)
	if err != nil {
		t.Fatal(err)
	}
	sq := d.Geometry.SquareOf(1, 2)
	pt := d.PieceTypeOf(0)
	if !pt.WinOnSquare.Test(sq) {
		t.Fatal("expected win-on-square bit to be set at (1,2)")
	}
}
