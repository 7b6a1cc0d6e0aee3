package bot

import (
	"math"

	"github.com/rocketscienceinc/tictactok-backend/internal/entity"
	"github.com/rocketscienceinc/tictactok-backend/internal/tictactoe"
)

const (
	winScore  = 10
	lossScore = -10
	drawScore = 0
)

// Hard searches the whole game tree with minimax and never loses.
// Every ply works on its own copy of the board.
type Hard struct{}

func NewHard() *Hard {
	return &Hard{}
}

func (that *Hard) ChooseMove(board entity.Board, player entity.Mark) (int, error) {
	if board.IsFull() {
		return -1, ErrNoAvailableMoves
	}

	_, cell := minimax(board, player, player)

	return cell, nil
}

// minimax scores board with toMove about to play, from self's point of view.
// self maximises, its opponent minimises. Ties keep the lowest cell index.
func minimax(board entity.Board, toMove, self entity.Mark) (score, cell int) {
	maximizing := toMove == self

	bestScore, bestCell := math.MaxInt, -1
	if maximizing {
		bestScore = math.MinInt
	}

	for _, candidate := range board.EmptyCells() {
		next := board
		next[candidate] = toMove

		var value int

		switch tictactoe.EvaluateStatus(next, toMove) {
		case entity.StatusDraw:
			value = drawScore
		case entity.StatusInProgress:
			value, _ = minimax(next, toMove.Opponent(), self)
		default:
			value = terminalScore(toMove, self)
		}

		if (maximizing && value > bestScore) || (!maximizing && value < bestScore) {
			bestScore, bestCell = value, candidate
		}
	}

	return bestScore, bestCell
}

func terminalScore(winner, self entity.Mark) int {
	if winner == self {
		return winScore
	}

	return lossScore
}
