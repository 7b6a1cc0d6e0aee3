package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactok-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: a new game is created
	game := NewGame("123", DifficultyHard, OpponentComputer)

	// Then: the board is empty, X moves first and the game is in progress
	assert.Equal(t, "123", game.ID)
	assert.Equal(t, Board{}, game.Board)
	assert.Equal(t, PlayerX, game.Turn)
	assert.Equal(t, StatusInProgress, game.Status)
	assert.Equal(t, DifficultyHard, game.Difficulty)
	assert.Equal(t, OpponentComputer, game.Opponent)
	assert.False(t, game.UpdatedAt.IsZero())
	assert.False(t, game.IsStarted())
	assert.False(t, game.IsFinished())
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, EmptyCell, EmptyCell.Opponent())
}

func TestBoard_EmptyCells(t *testing.T) {
	t.Run("Empty board lists every cell", func(t *testing.T) {
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, Board{}.EmptyCells())
	})

	t.Run("Filled cells are skipped in ascending order", func(t *testing.T) {
		// Given: a board with a few marks
		board := Board{
			PlayerX, EmptyCell, PlayerO,
			EmptyCell, PlayerX, EmptyCell,
			EmptyCell, EmptyCell, PlayerO,
		}

		// Then: only the empty indexes remain
		assert.Equal(t, []int{1, 3, 5, 6, 7}, board.EmptyCells())
		assert.False(t, board.IsFull())
	})

	t.Run("Full board has no empty cells", func(t *testing.T) {
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerO, PlayerX, PlayerX,
		}

		assert.Empty(t, board.EmptyCells())
		assert.True(t, board.IsFull())
	})
}

func TestBoard_HasLine(t *testing.T) {
	for _, combo := range WinCombos {
		var board Board
		for _, cell := range combo {
			board[cell] = PlayerO
		}

		assert.True(t, board.HasLine(PlayerO), "line %v", combo)
		assert.False(t, board.HasLine(PlayerX), "line %v", combo)
	}

	assert.False(t, Board{}.HasLine(EmptyCell))
}

func TestStatus(t *testing.T) {
	t.Run("Won maps marks to statuses", func(t *testing.T) {
		assert.Equal(t, StatusXWon, Won(PlayerX))
		assert.Equal(t, StatusOWon, Won(PlayerO))
		assert.Panics(t, func() { Won(EmptyCell) })
	})

	t.Run("Winner and terminal state", func(t *testing.T) {
		assert.Equal(t, PlayerX, StatusXWon.Winner())
		assert.Equal(t, PlayerO, StatusOWon.Winner())
		assert.Equal(t, EmptyCell, StatusDraw.Winner())
		assert.Equal(t, EmptyCell, StatusInProgress.Winner())

		assert.True(t, StatusXWon.IsTerminal())
		assert.True(t, StatusOWon.IsTerminal())
		assert.True(t, StatusDraw.IsTerminal())
		assert.False(t, StatusInProgress.IsTerminal())
	})
}

func TestGame_IsComputerTurn(t *testing.T) {
	t.Run("Computer moves as O in a computer game", func(t *testing.T) {
		game := NewGame("1", DifficultyEasy, OpponentComputer)
		game.Turn = ComputerMark

		assert.True(t, game.IsComputerTurn())
	})

	t.Run("Never in a two-player game", func(t *testing.T) {
		game := NewGame("1", DifficultyEasy, OpponentHuman)
		game.Turn = PlayerO

		assert.False(t, game.IsComputerTurn())
	})

	t.Run("Never once the game is over", func(t *testing.T) {
		game := NewGame("1", DifficultyEasy, OpponentComputer)
		game.Turn = ComputerMark
		game.Status = StatusDraw

		assert.False(t, game.IsComputerTurn())
	})
}

func TestGame_StatusMessage(t *testing.T) {
	game := NewGame("1", DifficultyEasy, OpponentComputer)
	assert.Equal(t, "Player X's turn", game.StatusMessage())

	game.Status = StatusOWon
	assert.Equal(t, "Player O wins!", game.StatusMessage())

	game.Status = StatusDraw
	assert.Equal(t, "It's a draw!", game.StatusMessage())
}

func TestParseDifficulty(t *testing.T) {
	t.Run("Known levels", func(t *testing.T) {
		for raw, want := range map[string]Difficulty{
			"easy":   DifficultyEasy,
			"Medium": DifficultyMedium,
			" HARD ": DifficultyHard,
		} {
			got, err := ParseDifficulty(raw)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("Unknown level fails with ErrInvalidDifficulty", func(t *testing.T) {
		_, err := ParseDifficulty("impossible")

		require.ErrorIs(t, err, apperror.ErrInvalidDifficulty)
		assert.Contains(t, err.Error(), "impossible")
	})
}

func TestParseOpponent(t *testing.T) {
	got, err := ParseOpponent("Human")
	require.NoError(t, err)
	assert.Equal(t, OpponentHuman, got)

	_, err = ParseOpponent("robot")
	require.ErrorIs(t, err, apperror.ErrInvalidOpponent)
}
