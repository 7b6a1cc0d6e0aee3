package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactok-backend/internal/apperror"
)

// Difficulty selects the computer opponent's strategy.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty accepts the difficulty names case-insensitively.
func ParseDifficulty(raw string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(raw))); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, raw)
	}
}

// Opponent tells who plays O.
type Opponent string

const (
	OpponentComputer Opponent = "computer"
	OpponentHuman    Opponent = "human"
)

func ParseOpponent(raw string) (Opponent, error) {
	switch o := Opponent(strings.ToLower(strings.TrimSpace(raw))); o {
	case OpponentComputer, OpponentHuman:
		return o, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidOpponent, raw)
	}
}
