package model

import "errors"

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrSquareOccupied    = errors.New("square occupied")
	ErrNoPiece           = errors.New("no piece at from square")
	ErrIllegalMove       = errors.New("invalid move, not legal")
	ErrNotYourTurn       = errors.New("not your turn")
	ErrNotAuthorized     = errors.New("not authorized for this game")
	ErrGameOver          = errors.New("game is over")
	ErrEngineBusy        = errors.New("engine already playing")
	ErrConnectionExists  = errors.New("connection already exists")
)
