package model

import "fmt"

const (
	Cols = 8
	Rows = 4
)

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) OnBoard() bool {
	return p.X >= 0 && p.X < Cols && p.Y >= 0 && p.Y < Rows
}

func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String renders the square as file letter plus rank digit, e.g. "b1".
func (p Position) String() string {
	return fmt.Sprintf("%c%d", p.X+97, p.Y+1)
}

// ParsePosition decodes a square such as "a2" into board coordinates.
// Anything outside files a-h and ranks 1-4 is rejected.
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	p := Position{X: int(s[0]) - 97, Y: int(s[1]) - '1'}
	if !p.OnBoard() {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	return p, nil
}

func chebyshev(a, b Position) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
