package apperror

import "errors"

var (
	ErrGameNotFound   = errors.New("game not found")
	ErrGameFull       = errors.New("game is full")
	ErrPlayerNotFound = errors.New("player not found")
	ErrNotYourTurn    = errors.New("it's not your turn")
	ErrInvalidMove    = errors.New("invalid move")
	ErrGameFinished   = errors.New("game is already finished")
)
