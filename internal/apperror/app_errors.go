package apperror

import "errors"

var (
	ErrInvalidCoordinate = errors.New("coordinate is out of range")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrGameFinished      = errors.New("game is already finished")
	ErrGameIsNotStarted  = errors.New("game is not started")
)
