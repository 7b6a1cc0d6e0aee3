// Package bot picks moves for the computer opponent.
package bot

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactok-backend/internal/apperror"
	"github.com/rocketscienceinc/tictactok-backend/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// Strategy chooses the cell player should take next on board.
type Strategy interface {
	ChooseMove(board entity.Board, player entity.Mark) (int, error)
}

// New returns the strategy for difficulty. Random choices are drawn from rng.
func New(difficulty entity.Difficulty, rng *rand.Rand) (Strategy, error) {
	switch difficulty {
	case entity.DifficultyEasy:
		return NewEasy(rng), nil
	case entity.DifficultyMedium:
		return NewMedium(rng), nil
	case entity.DifficultyHard:
		return NewHard(), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, difficulty)
	}
}

// NewRandomized is New with a freshly seeded generator, safe to call from any goroutine.
func NewRandomized(difficulty entity.Difficulty) (Strategy, error) {
	return New(difficulty, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))) //nolint: gosec // game moves, not secrets
}
