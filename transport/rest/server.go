package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactok-backend/internal/entity"
)

type gameManager interface {
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	NewGame(ctx context.Context, gameID string) (*entity.Game, error)
	SelectCell(ctx context.Context, gameID string, index int) (*entity.Game, error)
	ComputerTurn(ctx context.Context, gameID string) (*entity.Game, error)
	SetDifficulty(ctx context.Context, gameID, level string) (*entity.Game, error)
	SetOpponent(ctx context.Context, gameID, opponent string) (*entity.Game, error)
}

type eventSubscriber interface {
	Subscribe(gameID string) (<-chan entity.Event, func())
}

type Server struct {
	logger *slog.Logger

	games    gameManager
	events   eventSubscriber
	botDelay time.Duration
}

// New returns the HTTP API. botDelay is how long the computer "thinks" before
// answering a human move.
func New(logger *slog.Logger, games gameManager, events eventSubscriber, botDelay time.Duration) *Server {
	return &Server{
		logger: logger.With("component", "http"),

		games:    games,
		events:   events,
		botDelay: botDelay,
	}
}

// Handler wires the routes.
func (that *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/ping", that.ping)

	r.Route("/game", func(r chi.Router) {
		r.Get("/", that.getGame)
		r.Post("/", that.newGame)
		r.Post("/cells/{index}", that.selectCell)
		r.Put("/difficulty", that.setDifficulty)
		r.Put("/opponent", that.setOpponent)
		r.Get("/events", that.streamEvents)
	})

	return r
}
