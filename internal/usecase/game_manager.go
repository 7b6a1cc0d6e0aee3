package usecase

import (
	"context"
	"errors"
	"fmt"
	"hash/maphash"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactok-backend/internal/apperror"
	"github.com/rocketscienceinc/tictactok-backend/internal/bot"
	"github.com/rocketscienceinc/tictactok-backend/internal/entity"
	"github.com/rocketscienceinc/tictactok-backend/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, evt entity.Event) error
}

// lockStripes bounds the number of mutexes however many sessions come and go.
const lockStripes = 256

// StrategyFactory builds the computer's strategy for a difficulty.
type StrategyFactory func(difficulty entity.Difficulty) (bot.Strategy, error)

// Defaults apply to games created on first use.
type Defaults struct {
	Difficulty entity.Difficulty
	Opponent   entity.Opponent
}

// GameManager is the entry point for everything a client can do to its game.
// Commands on the same game are serialised; every successful command is
// followed by an event.
type GameManager struct {
	logger *slog.Logger

	gameRepo   gameRepo
	events     eventPublisher
	strategies StrategyFactory
	defaults   Defaults

	seed  maphash.Seed
	locks [lockStripes]sync.Mutex
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, events eventPublisher, strategies StrategyFactory, defaults Defaults) *GameManager {
	return &GameManager{
		logger: logger,

		gameRepo:   gameRepo,
		events:     events,
		strategies: strategies,
		defaults:   defaults,

		seed: maphash.MakeSeed(),
	}
}

// GetGame returns the game, creating it with the defaults on first use.
func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	unlock := that.lock(gameID)
	defer unlock()

	return that.getOrCreateGame(ctx, gameID)
}

// NewGame resets the game to an empty board with X to move.
func (that *GameManager) NewGame(ctx context.Context, gameID string) (*entity.Game, error) {
	unlock := that.lock(gameID)
	defer unlock()

	game, err := that.getOrCreateGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	tictactoe.Reset(game)

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.publish(ctx, entity.NewGameResetEvent(game))

	return game, nil
}

// SelectCell plays index for the human whose turn it is. Against the computer
// only X is human. A rejected move is reported as an invalid_move event and the
// current game is returned alongside the error.
func (that *GameManager) SelectCell(ctx context.Context, gameID string, index int) (*entity.Game, error) {
	unlock := that.lock(gameID)
	defer unlock()

	game, err := that.getOrCreateGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !game.IsFinished() && game.IsWithComputer() && game.Turn != entity.HumanMark {
		that.publish(ctx, entity.NewInvalidMoveEvent(gameID, index, apperror.ErrNotYourTurn))
		return game, apperror.ErrNotYourTurn
	}

	return that.makeTurn(ctx, game, index)
}

// ComputerTurn lets the computer answer when it is O's turn in a game against it.
func (that *GameManager) ComputerTurn(ctx context.Context, gameID string) (*entity.Game, error) {
	log := that.logger.With("method", "ComputerTurn", "gameID", gameID)

	unlock := that.lock(gameID)
	defer unlock()

	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.IsFinished() {
		return game, apperror.ErrGameAlreadyOver
	}

	if !game.IsComputerTurn() {
		return game, apperror.ErrNotYourTurn
	}

	strategy, err := that.strategies(game.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to build strategy: %w", err)
	}

	cell, err := strategy.ChooseMove(game.Board, entity.ComputerMark)
	if err != nil {
		return nil, fmt.Errorf("bot failed to choose a move: %w", err)
	}

	log.Debug("computer chose a move", "cell", cell, "difficulty", game.Difficulty)

	return that.makeTurn(ctx, game, cell)
}

// SetDifficulty changes the level used by the following computer turns.
func (that *GameManager) SetDifficulty(ctx context.Context, gameID, level string) (*entity.Game, error) {
	difficulty, err := entity.ParseDifficulty(level)
	if err != nil {
		return nil, err
	}

	unlock := that.lock(gameID)
	defer unlock()

	game, err := that.getOrCreateGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	game.Difficulty = difficulty

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.publish(ctx, entity.NewDifficultyChangedEvent(game))

	return game, nil
}

// SetOpponent switches between the computer and a second human. It is only
// allowed before the first move or once the game is over.
func (that *GameManager) SetOpponent(ctx context.Context, gameID, opponent string) (*entity.Game, error) {
	parsed, err := entity.ParseOpponent(opponent)
	if err != nil {
		return nil, err
	}

	unlock := that.lock(gameID)
	defer unlock()

	game, err := that.getOrCreateGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.IsStarted() && !game.IsFinished() {
		return game, apperror.ErrGameStarted
	}

	game.Opponent = parsed

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.publish(ctx, entity.NewOpponentChangedEvent(game))

	return game, nil
}

func (that *GameManager) makeTurn(ctx context.Context, game *entity.Game, index int) (*entity.Game, error) {
	mover := game.Turn

	if err := tictactoe.MakeTurn(game, index); err != nil {
		that.publish(ctx, entity.NewInvalidMoveEvent(game.ID, index, err))
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if err := that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.publish(ctx, entity.NewMoveAppliedEvent(game, mover, index))

	if game.IsFinished() {
		that.logger.Info("game finished", "gameID", game.ID, "status", game.Status)
	}

	return game, nil
}

func (that *GameManager) lock(gameID string) func() {
	mu := that.stripe(gameID)
	mu.Lock()

	return mu.Unlock
}

// stripe maps a game to one of a fixed set of mutexes. Unrelated games may
// share a stripe and then wait on each other.
func (that *GameManager) stripe(gameID string) *sync.Mutex {
	return &that.locks[maphash.String(that.seed, gameID)%lockStripes]
}

func (that *GameManager) getOrCreateGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err == nil {
		return game, nil
	}

	if !errors.Is(err, apperror.ErrGameNotFound) {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	game = entity.NewGame(gameID, that.defaults.Difficulty, that.defaults.Opponent)

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", gameID, "difficulty", game.Difficulty, "opponent", game.Opponent)

	return game, nil
}

func (that *GameManager) getGameByID(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) publish(ctx context.Context, evt entity.Event) {
	if err := that.events.Publish(ctx, evt); err != nil {
		that.logger.Error("failed to publish event", "gameID", evt.GameID, "kind", evt.Kind, "error", err)
	}
}
