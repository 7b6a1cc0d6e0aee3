package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rocketscienceinc/tictactok-backend/internal/apperror"
	"github.com/rocketscienceinc/tictactok-backend/internal/entity"
	"github.com/rocketscienceinc/tictactok-backend/internal/tictactoe"
)

var errBadRequest = errors.New("malformed request")

type gameResponse struct {
	Game    *entity.Game `json:"game,omitempty"`
	Message string       `json:"message,omitempty"`
	Error   string       `json:"error,omitempty"`
}

func newGameResponse(game *entity.Game) gameResponse {
	if game == nil {
		return gameResponse{}
	}

	return gameResponse{Game: game, Message: game.StatusMessage()}
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

// writeError reports err to the client. The game is echoed back when known so
// the client can redraw after a rejected move.
func (that *Server) writeError(w http.ResponseWriter, game *entity.Game, err error) {
	status := statusFor(err)

	resp := newGameResponse(game)
	resp.Error = err.Error()

	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
		resp.Error = http.StatusText(status)
	}

	that.writeJSON(w, status, resp)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrGameAlreadyOver),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameStarted):
		return http.StatusConflict
	case errors.Is(err, tictactoe.ErrInvalidCell),
		errors.Is(err, apperror.ErrInvalidDifficulty),
		errors.Is(err, apperror.ErrInvalidOpponent),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
