package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

type difficultyRequest struct {
	Difficulty string `json:"difficulty"`
}

type opponentRequest struct {
	Opponent string `json:"opponent"`
}

func (that *Server) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), that.sessionID(w, r))
	if err != nil {
		that.writeError(w, nil, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newGameResponse(game))
}

func (that *Server) newGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.NewGame(r.Context(), that.sessionID(w, r))
	if err != nil {
		that.writeError(w, nil, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newGameResponse(game))
}

// selectCell plays the human move and, against the computer, the answer that
// follows it after the configured delay. The answer is played even when the
// client goes away, otherwise the game would be left waiting on O.
func (that *Server) selectCell(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "selectCell")
	gameID := that.sessionID(w, r)

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		that.writeError(w, nil, fmt.Errorf("%w: cell index must be a number", errBadRequest))
		return
	}

	game, err := that.games.SelectCell(r.Context(), gameID, index)
	if err != nil {
		that.writeError(w, game, err)
		return
	}

	if game.IsComputerTurn() {
		ctx := context.WithoutCancel(r.Context())

		time.Sleep(that.botDelay)

		if game, err = that.games.ComputerTurn(ctx, gameID); err != nil {
			that.writeError(w, game, err)
			return
		}

		if r.Context().Err() != nil {
			log.Info("client left before the computer moved", "gameID", gameID)
			return
		}
	}

	that.writeJSON(w, http.StatusOK, newGameResponse(game))
}

func (that *Server) setDifficulty(w http.ResponseWriter, r *http.Request) {
	var req difficultyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, nil, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	game, err := that.games.SetDifficulty(r.Context(), that.sessionID(w, r), req.Difficulty)
	if err != nil {
		that.writeError(w, game, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newGameResponse(game))
}

func (that *Server) setOpponent(w http.ResponseWriter, r *http.Request) {
	var req opponentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, nil, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	game, err := that.games.SetOpponent(r.Context(), that.sessionID(w, r), req.Opponent)
	if err != nil {
		that.writeError(w, game, err)
		return
	}

	that.writeJSON(w, http.StatusOK, newGameResponse(game))
}
