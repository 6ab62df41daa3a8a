package engine

import (
	"testing"

	"github.com/benbeisheim/trichess-backend/internal/model"
)

func TestMoveValue(t *testing.T) {
	bishop := model.Piece{Color: model.Black, Kind: model.Bishop}
	tests := []struct {
		name string
		move *model.Move
		want int
	}{
		{"nil", nil, 0},
		{"quiet", &model.Move{}, 0},
		{"capture", &model.Move{Captured: &bishop}, 325},
		{"check", &model.Move{LeadsToCheck: true}, CheckBonus},
		{"capture with check", &model.Move{Captured: &bishop, LeadsToCheck: true}, 625},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoveValue(tt.move); got != tt.want {
				t.Fatalf("MoveValue = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEvaluateCreditsMover(t *testing.T) {
	b := model.NewBoard(true)
	m := &model.Move{
		Piece:        model.Piece{Color: model.White, Kind: model.Bishop},
		Captured:     &model.Piece{Color: model.Black, Kind: model.Bishop},
		LeadsToCheck: true,
	}
	want := Scores{10725 + 625, 10400, 10425}
	if got := Evaluate(b, m); got != want {
		t.Fatalf("Evaluate = %v, want %v", got, want)
	}
	if got := Evaluate(b, nil); got != (Scores{10725, 10400, 10425}) {
		t.Fatalf("Evaluate without move = %v", got)
	}
}

func TestSearchDepthZeroIsLeaf(t *testing.T) {
	b := model.NewBoard(true)
	m := &model.Move{Piece: model.Piece{Color: model.Orange}, Captured: &model.Piece{Kind: model.Pawn}}

	r := Search(b, m, model.White, UpperBound, 0, Options{})
	if r.Move != nil {
		t.Fatalf("leaf carries move %s", r.Move)
	}
	if r.Scores != (Scores{10725, 10400, 10525}) {
		t.Fatalf("scores = %v", r.Scores)
	}
}

func TestSearchBoundCutsOff(t *testing.T) {
	b := setup(t, map[string]string{
		"a1": "wK", "d2": "wB", "c3": "bP", "e3": "bN", "h2": "bK", "g4": "oK",
	})

	r := Search(b, nil, model.White, 0, 1, Options{})
	if r.Move == nil || r.Move.String() != "wKa1-a2" {
		t.Fatalf("bound 0 returned %v, want the first generated move", r.Move)
	}

	r = Search(b, nil, model.White, UpperBound, 1, Options{})
	if r.Move == nil || r.Move.To.String() != "e3" {
		t.Fatalf("full search returned %v", r.Move)
	}
	if r.Scores[model.White] != 10325+300 {
		t.Fatalf("white score = %d", r.Scores[model.White])
	}
}

func TestSearchWithoutMovesIsLeaf(t *testing.T) {
	b := setup(t, map[string]string{"a1": "wK", "c2": "bK", "c4": "oB", "h4": "oK"})
	r := Search(b, nil, model.White, UpperBound, 3, Options{})
	if r.Move != nil {
		t.Fatalf("stalemated colour moved %s", r.Move)
	}
	if r.Scores[model.White] != 10000 {
		t.Fatalf("white score = %d", r.Scores[model.White])
	}
}
