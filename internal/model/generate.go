package model

// GenerateMoves lists the moves of every piece of colour c in roster order.
// With withKingAsTarget false a King is never a capture target; with it
// true the result doubles as a threat probe for check detection.
func GenerateMoves(b *Board, c Color, withKingAsTarget bool) []Move {
	g := generator{board: b, kingTarget: withKingAsTarget}
	moves := []Move{}
	for _, piece := range b.rosters[c] {
		switch piece.Kind {
		case Pawn:
			moves = g.pawnMoves(piece, moves)
		case King:
			moves = g.kingMoves(piece, moves)
		case Knight:
			moves = g.knightMoves(piece, moves)
		case Bishop:
			moves = g.bishopMoves(piece, moves)
		}
	}
	if withKingAsTarget {
		return moves
	}
	legal := moves[:0]
	for _, m := range moves {
		if m.Captured != nil && m.Captured.IsKing() {
			continue
		}
		legal = append(legal, m)
	}
	return legal
}

// LegalMoves is GenerateMoves followed by the check filter.
func LegalMoves(b *Board, c Color) []Move {
	return FilterOutChecks(b, c, GenerateMoves(b, c, false))
}

type generator struct {
	board      *Board
	kingTarget bool
}

func (g generator) move(piece Piece, to Position) Move {
	m := Move{Piece: piece, From: piece.Position, To: to}
	if victim, ok := g.board.PieceAt(to); ok {
		m.Captured = &victim
	}
	return m
}

// canMove applies the capture rule: the square must be on the board and
// either empty or held by another colour. Kings are only targets in
// threat-probing mode.
func (g generator) canMove(piece Piece, to Position) bool {
	if !to.OnBoard() {
		return false
	}
	other, ok := g.board.PieceAt(to)
	if !ok {
		return true
	}
	if other.Color == piece.Color {
		return false
	}
	return g.kingTarget || !other.IsKing()
}

func pawnDir(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

func (g generator) pawnMoves(piece Piece, moves []Move) []Move {
	ahead := piece.Position.Add(0, pawnDir(piece.Color))
	if !ahead.OnBoard() {
		return moves
	}
	if !g.board.occupied(ahead) {
		moves = append(moves, g.move(piece, ahead))
	}
	for _, dx := range [2]int{-1, 1} {
		to := ahead.Add(dx, 0)
		if g.canMove(piece, to) && g.board.occupied(to) {
			moves = append(moves, g.move(piece, to))
		}
	}
	return moves
}

func (g generator) kingMoves(piece Piece, moves []Move) []Move {
	from := piece.Position
	for x := from.X - 1; x <= from.X+1; x++ {
		for y := from.Y - 1; y <= from.Y+1; y++ {
			to := Position{X: x, Y: y}
			if g.canMove(piece, to) && !g.nextToEnemyKing(to, piece.Color) {
				moves = append(moves, g.move(piece, to))
			}
		}
	}
	return moves
}

// nextToEnemyKing reports whether any square in the 3x3 block around pos
// holds a King of another colour.
func (g generator) nextToEnemyKing(pos Position, c Color) bool {
	for x := pos.X - 1; x <= pos.X+1; x++ {
		for y := pos.Y - 1; y <= pos.Y+1; y++ {
			k, ok := g.board.PieceAt(Position{X: x, Y: y})
			if ok && k.IsKing() && k.Color != c {
				return true
			}
		}
	}
	return false
}

var knightJumps = [8][2]int{
	{-1, 2}, {1, 2},
	{2, 1}, {2, -1},
	{1, -2}, {-1, -2},
	{-2, 1}, {-2, -1},
}

func (g generator) knightMoves(piece Piece, moves []Move) []Move {
	for _, j := range knightJumps {
		to := piece.Position.Add(j[0], j[1])
		if g.canMove(piece, to) {
			moves = append(moves, g.move(piece, to))
		}
	}
	return moves
}

var bishopRays = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

func (g generator) bishopMoves(piece Piece, moves []Move) []Move {
	for _, ray := range bishopRays {
		to := piece.Position.Add(ray[0], ray[1])
		for g.canMove(piece, to) {
			moves = append(moves, g.move(piece, to))
			if g.board.occupied(to) {
				break
			}
			to = to.Add(ray[0], ray[1])
		}
	}
	return moves
}
