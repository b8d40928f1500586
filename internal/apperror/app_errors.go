package apperror

import "errors"

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrInvalidInput = errors.New("invalid input")
	ErrQuit         = errors.New("player quit the game")
)
