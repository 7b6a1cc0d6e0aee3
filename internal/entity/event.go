package entity

// EventKind names what happened to a game.
type EventKind string

const (
	EventMoveApplied       EventKind = "move_applied"
	EventInvalidMove       EventKind = "invalid_move"
	EventGameReset         EventKind = "game_reset"
	EventDifficultyChanged EventKind = "difficulty_changed"
	EventOpponentChanged   EventKind = "opponent_changed"
)

// Event is emitted by the game manager after every command.
// Fields irrelevant to the kind are left at their zero value.
type Event struct {
	Kind       EventKind  `json:"kind"`
	GameID     string     `json:"game_id"`
	Board      Board      `json:"board"`
	Mover      Mark       `json:"mover,omitempty"`
	Index      int        `json:"index"`
	Status     Status     `json:"status,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Opponent   Opponent   `json:"opponent,omitempty"`
	Reason     string     `json:"reason,omitempty"`
}

func NewMoveAppliedEvent(game *Game, mover Mark, index int) Event {
	return Event{
		Kind:   EventMoveApplied,
		GameID: game.ID,
		Board:  game.Board,
		Mover:  mover,
		Index:  index,
		Status: game.Status,
	}
}

func NewInvalidMoveEvent(gameID string, index int, reason error) Event {
	return Event{
		Kind:   EventInvalidMove,
		GameID: gameID,
		Index:  index,
		Reason: reason.Error(),
	}
}

func NewGameResetEvent(game *Game) Event {
	return Event{
		Kind:   EventGameReset,
		GameID: game.ID,
		Board:  game.Board,
		Index:  -1,
		Status: game.Status,
	}
}

func NewDifficultyChangedEvent(game *Game) Event {
	return Event{
		Kind:       EventDifficultyChanged,
		GameID:     game.ID,
		Board:      game.Board,
		Index:      -1,
		Status:     game.Status,
		Difficulty: game.Difficulty,
	}
}

func NewOpponentChangedEvent(game *Game) Event {
	return Event{
		Kind:     EventOpponentChanged,
		GameID:   game.ID,
		Board:    game.Board,
		Index:    -1,
		Status:   game.Status,
		Opponent: game.Opponent,
	}
}
