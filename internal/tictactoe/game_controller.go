package tictactoe

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactok-backend/internal/apperror"
	"github.com/rocketscienceinc/tictactok-backend/internal/entity"
)

var (
	ErrInvalidCell   = errors.New("invalid cell index")
	ErrInvalidPlayer = errors.New("invalid player mark")
)

// ApplyMove returns a copy of board with cell index set to player.
// The board passed in is never modified.
func ApplyMove(board entity.Board, status entity.Status, index int, player entity.Mark) (entity.Board, error) {
	if status.IsTerminal() {
		return board, apperror.ErrGameAlreadyOver
	}

	if player != entity.PlayerX && player != entity.PlayerO {
		return board, fmt.Errorf("%w: %q", ErrInvalidPlayer, player)
	}

	if index < 0 || index >= len(board) {
		return board, fmt.Errorf("%w: cell %d", ErrInvalidCell, index)
	}

	if board[index] != entity.EmptyCell {
		return board, fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index)
	}

	board[index] = player

	return board, nil
}

// EvaluateStatus checks the board after lastPlayer has moved.
// Only lastPlayer can have completed a line with that move.
func EvaluateStatus(board entity.Board, lastPlayer entity.Mark) entity.Status {
	if board.HasLine(lastPlayer) {
		return entity.Won(lastPlayer)
	}

	if board.IsFull() {
		return entity.StatusDraw
	}

	return entity.StatusInProgress
}

// MakeTurn plays index for the side whose turn it is.
// On error the game is left untouched.
func MakeTurn(game *entity.Game, index int) error {
	player := game.Turn

	board, err := ApplyMove(game.Board, game.Status, index, player)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board = board
	game.Status = EvaluateStatus(board, player)

	if !game.Status.IsTerminal() {
		game.Turn = player.Opponent()
	}

	game.UpdatedAt = time.Now()

	return nil
}

// Reset starts the game over with an empty board and X to move.
// Difficulty and opponent carry over.
func Reset(game *entity.Game) {
	game.Board = entity.Board{}
	game.Turn = entity.PlayerX
	game.Status = entity.StatusInProgress
	game.UpdatedAt = time.Now()
}
