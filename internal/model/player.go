package model

// ClientPlayer describes one seat of a game as sent to clients.
type ClientPlayer struct {
	ID        string `json:"name"`
	Color     Color  `json:"color"`
	Engine    bool   `json:"engine"`
	TimeSpent int    `json:"timeSpent"`
}

// MoveSelector picks a move for a colour that is not played by a human.
// It must not modify the board it is given.
type MoveSelector interface {
	SelectMove(b *Board, c Color) (Move, bool)
}
