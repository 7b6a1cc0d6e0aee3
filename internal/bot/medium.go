package bot

import (
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactok-backend/internal/entity"
)

// Medium wins when it can, blocks when it must, and otherwise plays like Easy.
type Medium struct {
	fallback *Easy
}

func NewMedium(rng *rand.Rand) *Medium {
	return &Medium{fallback: NewEasy(rng)}
}

func (that *Medium) ChooseMove(board entity.Board, player entity.Mark) (int, error) {
	if cell, ok := findWinningMove(board, player); ok {
		return cell, nil
	}

	if cell, ok := findWinningMove(board, player.Opponent()); ok {
		return cell, nil
	}

	return that.fallback.ChooseMove(board, player)
}

// findWinningMove returns the empty cell of the first line, in WinCombos order,
// where mark already holds the other two cells.
func findWinningMove(board entity.Board, mark entity.Mark) (int, bool) {
	for _, combo := range entity.WinCombos {
		filled, empty := 0, -1

		for _, cell := range combo {
			switch board[cell] {
			case mark:
				filled++
			case entity.EmptyCell:
				empty = cell
			}
		}

		if filled == 2 && empty != -1 {
			return empty, true
		}
	}

	return -1, false
}
