package bot

import (
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactok-backend/internal/entity"
)

// Easy plays a uniformly random empty cell.
type Easy struct {
	rng *rand.Rand
}

func NewEasy(rng *rand.Rand) *Easy {
	return &Easy{rng: rng}
}

func (that *Easy) ChooseMove(board entity.Board, _ entity.Mark) (int, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return -1, ErrNoAvailableMoves
	}

	return availableCells[that.rng.IntN(len(availableCells))], nil
}
