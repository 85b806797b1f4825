package game

import "errors"

var (
	ErrInvalidCell    = errors.New("invalid cell index")
	ErrCellOccupied   = errors.New("cell already occupied")
	ErrGameFinished   = errors.New("game already has a winner")
	ErrMoveOutOfRange = errors.New("move out of range")
	ErrGameNotFound   = errors.New("game not found")
)
