package engine

import (
	"sort"
	"testing"

	"github.com/benbeisheim/trichess-backend/internal/model"
)

var kinds = map[byte]model.PieceKind{'K': model.King, 'B': model.Bishop, 'N': model.Knight, 'P': model.Pawn}

// setup builds a board from piece codes keyed by square, e.g. {"a1": "wK"}.
// Kings go first, then the other pieces by square name.
func setup(t *testing.T, pieces map[string]string) *model.Board {
	t.Helper()
	squares := make([]string, 0, len(pieces))
	for square := range pieces {
		squares = append(squares, square)
	}
	sort.Slice(squares, func(i, j int) bool {
		ki, kj := pieces[squares[i]][1] == 'K', pieces[squares[j]][1] == 'K'
		if ki != kj {
			return ki
		}
		return squares[i] < squares[j]
	})
	b := model.NewBoard(false)
	for _, square := range squares {
		code := pieces[square]
		pos, err := model.ParsePosition(square)
		if err != nil {
			t.Fatalf("square %q: %v", square, err)
		}
		c, err := model.ParseColor(code[:1])
		if err != nil {
			t.Fatalf("piece %q: %v", code, err)
		}
		if err := b.Place(model.Piece{Color: c, Kind: kinds[code[1]], Position: pos}); err != nil {
			t.Fatalf("place %s on %s: %v", code, square, err)
		}
	}
	return b
}

func TestNewEngineDepth(t *testing.T) {
	if d := NewEngine(Options{}).Depth(); d != DefaultDepth {
		t.Fatalf("depth = %d, want %d", d, DefaultDepth)
	}
	if d := NewEngine(Options{Depth: 3}).Depth(); d != 3 {
		t.Fatalf("depth = %d, want 3", d)
	}
}

func TestSelectMovePrefersBiggerCapture(t *testing.T) {
	b := setup(t, map[string]string{
		"a1": "wK", "d2": "wB", "c3": "bP", "e3": "bN", "h2": "bK", "g4": "oK",
	})
	m, ok := NewEngine(Options{Depth: 1}).SelectMove(b, model.White)
	if !ok {
		t.Fatalf("no move selected")
	}
	if m.From.String() != "d2" || m.To.String() != "e3" {
		t.Fatalf("selected %s, want the knight capture", m)
	}
}

func TestSelectMoveCheckAnnotation(t *testing.T) {
	pieces := map[string]string{"a1": "wK", "d1": "wN", "e3": "bP", "h3": "bK", "a4": "oK"}

	m, _ := NewEngine(Options{Depth: 1}).SelectMove(setup(t, pieces), model.White)
	if m.To.String() != "c3" {
		t.Fatalf("with check bonus selected %s, want d1c3", m)
	}
	m, _ = NewEngine(Options{Depth: 1, SkipCheckAnnotation: true}).SelectMove(setup(t, pieces), model.White)
	if m.To.String() != "e3" {
		t.Fatalf("without check bonus selected %s, want d1e3", m)
	}
}

func TestSelectMoveNoLegalMoves(t *testing.T) {
	b := setup(t, map[string]string{"a1": "wK", "c2": "bK", "c4": "oB", "h4": "oK"})
	if m, ok := NewEngine(Options{}).SelectMove(b, model.White); ok {
		t.Fatalf("selected %s in stalemate", m)
	}
}

// Ties go to the first generated move, so roster order shows up in the
// opening choice.
func TestSelectMoveOpening(t *testing.T) {
	tests := []struct {
		color model.Color
		want  string
	}{
		{model.White, "wPa2-a3"},
		{model.Black, "bNa4-c3"},
	}
	e := NewEngine(Options{})
	for _, tt := range tests {
		m, ok := e.SelectMove(model.NewBoard(true), tt.color)
		if !ok || m.String() != tt.want {
			t.Errorf("%s opens with %s (%v), want %s", tt.color, m, ok, tt.want)
		}
	}
}

func TestSelectMoveMatchesSearch(t *testing.T) {
	opts := Options{Depth: 2}
	b := model.NewBoard(true)
	m, ok := NewEngine(opts).SelectMove(b, model.Orange)
	r := Search(b, nil, model.Orange, UpperBound, 2, opts)
	if !ok || r.Move == nil || m.String() != r.Move.String() {
		t.Fatalf("SelectMove gave %s, Search gave %v", m, r.Move)
	}
	if r.Nodes < 2 {
		t.Fatalf("nodes = %d", r.Nodes)
	}
}

func TestSelectMoveIsLegalAndDeterministic(t *testing.T) {
	e := NewEngine(Options{Depth: 2})
	for _, c := range model.Colors {
		b := model.NewBoard(true)
		before := b.String()

		first, ok := e.SelectMove(b, c)
		if !ok {
			t.Fatalf("%s: no move from the start position", c)
		}
		if b.String() != before {
			t.Fatalf("%s: search changed the board\n%s", c, b)
		}
		second, _ := e.SelectMove(b, c)
		if first.From != second.From || first.To != second.To {
			t.Fatalf("%s: %s then %s", c, first, second)
		}

		legal := false
		for _, m := range model.LegalMoves(b, c) {
			if m.From == first.From && m.To == first.To {
				legal = true
			}
		}
		if !legal {
			t.Fatalf("%s: selected illegal move %s", c, first)
		}
	}
}
