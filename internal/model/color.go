package model

import "fmt"

// Color identifies one of the three sides. The zero value is White, who
// always moves first; Black moves second and Orange third.
type Color int8

const (
	White Color = iota
	Black
	Orange
)

const NumColors = 3

var Colors = [NumColors]Color{White, Black, Orange}

// Next returns the colour that moves after c. The cycle is fixed:
// White -> Black -> Orange -> White. A colour without legal moves is not
// skipped here; the game layer ends the game instead.
func (c Color) Next() Color {
	return (c + 1) % NumColors
}

// Opponents returns the two other colours in turn order starting after c.
func (c Color) Opponents() [2]Color {
	return [2]Color{c.Next(), c.Next().Next()}
}

func (c Color) Valid() bool {
	return c >= White && c <= Orange
}

func (c Color) Letter() byte {
	switch c {
	case White:
		return 'w'
	case Black:
		return 'b'
	case Orange:
		return 'o'
	}
	return '?'
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	case Orange:
		return "orange"
	}
	return fmt.Sprintf("Color(%d)", int8(c))
}

func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid color %d", int8(c))
	}
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor accepts either the full colour name or its one-letter form.
func ParseColor(s string) (Color, error) {
	switch s {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	case "orange", "o":
		return Orange, nil
	}
	return 0, fmt.Errorf("unknown color %q", s)
}
