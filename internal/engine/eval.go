package engine

import "github.com/benbeisheim/trichess-backend/internal/model"

// CheckBonus is added to a move's value when it attacks an opposing King.
const CheckBonus = 300

// Scores holds one evaluation per colour, indexed by model.Color.
type Scores [model.NumColors]int

// MoveValue is the value of the piece m captures plus CheckBonus when m
// is flagged as giving check. A nil move is worth nothing.
func MoveValue(m *model.Move) int {
	if m == nil {
		return 0
	}
	v := 0
	if m.Captured != nil {
		v += m.Captured.Value()
	}
	if m.LeadsToCheck {
		v += CheckBonus
	}
	return v
}

// Evaluate scores a leaf: the material of every colour, with the colour
// that played lastMove credited with MoveValue(lastMove).
func Evaluate(b *model.Board, lastMove *model.Move) Scores {
	var s Scores
	for _, c := range model.Colors {
		s[c] = b.MaterialValue(c)
	}
	if lastMove != nil {
		s[lastMove.Piece.Color] += MoveValue(lastMove)
	}
	return s
}
