package apperror

import "errors"

var (
	ErrGameAlreadyOver   = errors.New("game is already over")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrGameNotFound      = errors.New("game not found")
	ErrGameStarted       = errors.New("game has already started")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrInvalidOpponent   = errors.New("invalid opponent")
)
