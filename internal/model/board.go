package model

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// slot points into a roster. n is the roster index plus one so that the
// zero value means an empty square.
type slot struct {
	color Color
	n     int8
}

// Board keeps the pieces of each colour in a roster, which is the only
// authoritative copy of a piece. The square index and the King slots are
// derived from the rosters and never edited on their own.
type Board struct {
	rosters [NumColors][]Piece
	index   [Cols][Rows]slot
	kings   [NumColors]int8 // roster index of the King plus one
}

// NewBoard returns an empty board, or the starting position when
// withSetup is true.
func NewBoard(withSetup bool) *Board {
	b := &Board{}
	if withSetup {
		b.setup()
	}
	return b
}

// Roster order is generation order, so it decides which of two equally
// scored moves the engine plays.
func (b *Board) setup() {
	b.rosters[White] = []Piece{
		{Color: White, Kind: Pawn, Position: Position{X: 0, Y: 1}},
		{Color: White, Kind: King, Position: Position{X: 1, Y: 0}},
		{Color: White, Kind: Knight, Position: Position{X: 3, Y: 0}},
		{Color: White, Kind: Bishop, Position: Position{X: 4, Y: 0}},
	}
	b.rosters[Black] = []Piece{
		{Color: Black, Kind: Knight, Position: Position{X: 0, Y: 3}},
		{Color: Black, Kind: Pawn, Position: Position{X: 1, Y: 3}},
		{Color: Black, Kind: King, Position: Position{X: 1, Y: 2}},
	}
	b.rosters[Orange] = []Piece{
		{Color: Orange, Kind: King, Position: Position{X: 7, Y: 3}},
		{Color: Orange, Kind: Pawn, Position: Position{X: 7, Y: 2}},
		{Color: Orange, Kind: Bishop, Position: Position{X: 5, Y: 3}},
	}
	b.reindex()
}

func (b *Board) reindex() {
	b.index = [Cols][Rows]slot{}
	b.kings = [NumColors]int8{}
	for _, c := range Colors {
		for i, p := range b.rosters[c] {
			b.index[p.Position.X][p.Position.Y] = slot{color: c, n: int8(i + 1)}
			if p.IsKing() {
				b.kings[c] = int8(i + 1)
			}
		}
	}
}

// Place appends a piece to its colour's roster and puts it on an empty
// square. A colour may only have one King.
func (b *Board) Place(p Piece) error {
	if !p.Color.Valid() || p.Kind.Value() == 0 {
		return fmt.Errorf("invalid piece %s", p.Code())
	}
	if !p.Position.OnBoard() {
		return fmt.Errorf("%w: %v", ErrInvalidCoordinate, p.Position)
	}
	if _, ok := b.PieceAt(p.Position); ok {
		return fmt.Errorf("%w: %s", ErrSquareOccupied, p.Position)
	}
	if p.IsKing() {
		if _, ok := b.King(p.Color); ok {
			return fmt.Errorf("%s already has a king", p.Color)
		}
	}
	b.rosters[p.Color] = append(b.rosters[p.Color], p)
	b.reindex()
	return nil
}

func (b *Board) PieceAt(pos Position) (Piece, bool) {
	if !pos.OnBoard() {
		return Piece{}, false
	}
	s := b.index[pos.X][pos.Y]
	if s.n == 0 {
		return Piece{}, false
	}
	return b.rosters[s.color][s.n-1], true
}

func (b *Board) occupied(pos Position) bool {
	return b.index[pos.X][pos.Y].n != 0
}

// Pieces returns a copy of the colour's roster in roster order.
func (b *Board) Pieces(c Color) []Piece {
	return slices.Clone(b.rosters[c])
}

func (b *Board) King(c Color) (Piece, bool) {
	n := b.kings[c]
	if n == 0 {
		return Piece{}, false
	}
	return b.rosters[c][n-1], true
}

// MovePiece moves whatever stands on from to to, capturing the occupant
// of to. Moving from an empty square does nothing and reports ok=false.
// No legality checks are made here.
func (b *Board) MovePiece(from, to Position) (captured Piece, ok bool) {
	mover, found := b.PieceAt(from)
	if !found || !to.OnBoard() {
		return Piece{}, false
	}
	if from == to {
		return Piece{}, true
	}
	if victim, hit := b.PieceAt(to); hit {
		roster := b.rosters[victim.Color]
		j := slices.IndexFunc(roster, func(p Piece) bool { return p.Position == to })
		b.rosters[victim.Color] = slices.Delete(roster, j, j+1)
		captured = victim
	}
	roster := b.rosters[mover.Color]
	i := slices.IndexFunc(roster, func(p Piece) bool { return p.Position == from })
	roster[i].Position = to
	if captured.Kind != "" {
		b.reindex()
	} else {
		b.index[from.X][from.Y] = slot{}
		b.index[to.X][to.Y] = slot{color: mover.Color, n: int8(i + 1)}
	}
	return captured, true
}

// Apply plays m on the board.
func (b *Board) Apply(m Move) {
	b.MovePiece(m.From, m.To)
}

// Clone returns a board that shares no state with b.
func (b *Board) Clone() *Board {
	nb := &Board{index: b.index, kings: b.kings}
	for _, c := range Colors {
		nb.rosters[c] = slices.Clone(b.rosters[c])
	}
	return nb
}

func (b *Board) MaterialValue(c Color) int {
	total := 0
	for _, p := range b.rosters[c] {
		total += p.Value()
	}
	return total
}

// PositionObject maps occupied squares to piece codes, e.g. {"b1": "wK"}.
func (b *Board) PositionObject() map[string]string {
	pos := make(map[string]string)
	for _, c := range Colors {
		for _, p := range b.rosters[c] {
			pos[p.Position.String()] = p.Code()
		}
	}
	return pos
}

func (b *Board) String() string {
	var sb strings.Builder
	for y := Rows - 1; y >= 0; y-- {
		fmt.Fprintf(&sb, "%d ", y+1)
		for x := 0; x < Cols; x++ {
			if p, ok := b.PieceAt(Position{X: x, Y: y}); ok {
				sb.WriteString(p.Code())
			} else {
				sb.WriteString("..")
			}
			if x < Cols-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a  b  c  d  e  f  g  h\n")
	return sb.String()
}
