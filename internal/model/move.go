package model

import "fmt"

// Move is a candidate move produced by the generator. Piece is a copy of
// the mover as it stood before the move; Captured is a copy of the piece
// on the target square, if any.
type Move struct {
	Piece        Piece    `json:"piece"`
	From         Position `json:"from"`
	To           Position `json:"to"`
	Captured     *Piece   `json:"capturedPiece,omitempty"`
	LeadsToCheck bool     `json:"leadsToCheck"`
}

func (m Move) String() string {
	sep := "-"
	if m.Captured != nil {
		sep = "x"
	}
	return fmt.Sprintf("%s%s%s%s", m.Piece.Code(), m.From, sep, m.To)
}

// SimpleMove is the square-notation form exchanged with clients.
type SimpleMove struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (m Move) Simple() SimpleMove {
	return SimpleMove{From: m.From.String(), To: m.To.String()}
}
