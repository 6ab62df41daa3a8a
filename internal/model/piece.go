package model

import "fmt"

type PieceKind string

const (
	King   PieceKind = "king"
	Bishop PieceKind = "bishop"
	Knight PieceKind = "knight"
	Pawn   PieceKind = "pawn"
)

func (k PieceKind) Value() int {
	switch k {
	case King:
		return 10000
	case Bishop:
		return 325
	case Knight:
		return 300
	case Pawn:
		return 100
	}
	return 0
}

func (k PieceKind) letter() byte {
	switch k {
	case King:
		return 'K'
	case Bishop:
		return 'B'
	case Knight:
		return 'N'
	case Pawn:
		return 'P'
	}
	return '?'
}

// Piece is stored by value in its colour's roster.
type Piece struct {
	Color    Color     `json:"color"`
	Kind     PieceKind `json:"type"`
	Position Position  `json:"position"`
}

func (p Piece) Value() int {
	return p.Kind.Value()
}

func (p Piece) IsKing() bool {
	return p.Kind == King
}

// Code is the two-letter piece code used by board widgets, e.g. "wK".
func (p Piece) Code() string {
	return string([]byte{p.Color.Letter(), p.Kind.letter()})
}

func (p Piece) String() string {
	return fmt.Sprintf("%s@%s", p.Code(), p.Position)
}
