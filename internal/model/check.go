package model

// FilterOutChecks drops every move after which either opponent could
// capture c's King on their next move. Each candidate is played on its
// own clone and both opponents' threat moves are generated in full.
func FilterOutChecks(b *Board, c Color, moves []Move) []Move {
	legal := make([]Move, 0, len(moves))
	for _, m := range moves {
		next := b.Clone()
		next.Apply(m)
		if !InCheck(next, c) {
			legal = append(legal, m)
		}
	}
	return legal
}

// InCheck reports whether some opponent of c has a move capturing c's
// King. A colour without a King is never in check.
func InCheck(b *Board, c Color) bool {
	king, ok := b.King(c)
	if !ok {
		return false
	}
	for _, opp := range c.Opponents() {
		for _, threat := range GenerateMoves(b, opp, true) {
			if threat.To == king.Position {
				return true
			}
		}
	}
	return false
}

// MarkMovesLeadingToCheck sets LeadsToCheck on every move after which c
// could capture some opposing King. The flag is advisory only.
func MarkMovesLeadingToCheck(b *Board, c Color, moves []Move) {
	for i := range moves {
		next := b.Clone()
		next.Apply(moves[i])
		for _, threat := range GenerateMoves(next, c, true) {
			if threat.Captured != nil && threat.Captured.IsKing() && threat.Captured.Color != c {
				moves[i].LeadsToCheck = true
				break
			}
		}
	}
}
