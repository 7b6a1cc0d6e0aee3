package entity

import (
	"fmt"
	"time"
)

// Mark is the content of a single board cell.
type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""

	// HumanMark and ComputerMark fix the seats of a game against the computer.
	HumanMark    = PlayerX
	ComputerMark = PlayerO
)

// Opponent returns the other player's mark. The empty cell has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// WinCombos lists the 8 winning lines in scan order: rows, columns, diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid stored row-major, cells 0..8.
type Board [9]Mark

// EmptyCells returns the indexes of the empty cells in ascending order.
func (b Board) EmptyCells() []int {
	cells := make([]int, 0, len(b))
	for i, cell := range b {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (b Board) IsFull() bool {
	for _, cell := range b {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// HasLine reports whether mark owns three cells of any winning line.
func (b Board) HasLine(mark Mark) bool {
	if mark == EmptyCell {
		return false
	}

	for _, combo := range WinCombos {
		if b[combo[0]] == mark && b[combo[1]] == mark && b[combo[2]] == mark {
			return true
		}
	}

	return false
}

// Status is the outcome of a game: in progress, won by one side, or drawn.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusXWon       Status = "x_won"
	StatusOWon       Status = "o_won"
	StatusDraw       Status = "draw"
)

// Won returns the status of a game won by mark.
func Won(mark Mark) Status {
	switch mark {
	case PlayerX:
		return StatusXWon
	case PlayerO:
		return StatusOWon
	default:
		panic(fmt.Sprintf("entity: no winning status for mark %q", mark))
	}
}

// Winner returns the winning mark, or EmptyCell when nobody has won.
func (s Status) Winner() Mark {
	switch s {
	case StatusXWon:
		return PlayerX
	case StatusOWon:
		return PlayerO
	default:
		return EmptyCell
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusXWon || s == StatusOWon || s == StatusDraw
}

// Game is a single game session. It is mutated only through the tictactoe rules engine.
type Game struct {
	ID         string     `json:"id"`
	Board      Board      `json:"board"`
	Turn       Mark       `json:"turn"`
	Status     Status     `json:"status"`
	Difficulty Difficulty `json:"difficulty"`
	Opponent   Opponent   `json:"opponent"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func NewGame(id string, difficulty Difficulty, opponent Opponent) *Game {
	return &Game{
		ID:         id,
		Board:      Board{},
		Turn:       PlayerX,
		Status:     StatusInProgress,
		Difficulty: difficulty,
		Opponent:   opponent,
		UpdatedAt:  time.Now(),
	}
}

func (that *Game) IsFinished() bool {
	return that.Status.IsTerminal()
}

// IsStarted reports whether at least one move has been played.
func (that *Game) IsStarted() bool {
	return len(that.Board.EmptyCells()) < len(that.Board)
}

func (that *Game) IsWithComputer() bool {
	return that.Opponent == OpponentComputer
}

// IsComputerTurn reports whether the computer is expected to move next.
func (that *Game) IsComputerTurn() bool {
	return that.IsWithComputer() && !that.IsFinished() && that.Turn == ComputerMark
}

// StatusMessage is the line shown to the player under the board.
func (that *Game) StatusMessage() string {
	switch that.Status {
	case StatusXWon, StatusOWon:
		return fmt.Sprintf("Player %s wins!", that.Status.Winner())
	case StatusDraw:
		return "It's a draw!"
	default:
		return fmt.Sprintf("Player %s's turn", that.Turn)
	}
}
