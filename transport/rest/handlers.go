package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/crosszero/tictactoe-backend/internal/apperror"
	"github.com/crosszero/tictactoe-backend/internal/entity"
)

func (that *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, http.StatusBadRequest, err)
		return
	}

	newGame, err := that.manager.CreateGame(r.Context(), req.FieldSize)
	if err != nil {
		that.writeError(w, statusFor(err), err)
		return
	}

	that.writeJSON(w, http.StatusOK, createGameResponse{GameID: newGame.ID})
}

func (that *Server) handleJoinGame(w http.ResponseWriter, r *http.Request) {
	var req joinGameRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, http.StatusBadRequest, err)
		return
	}

	player, err := that.manager.JoinGame(r.Context(), r.PathValue("gameID"), req.PlayerID)
	if err != nil {
		that.writeError(w, statusFor(err), err)
		return
	}

	that.writeJSON(w, http.StatusOK, joinGameResponse{PlayerID: player.ID, Symbol: player.Symbol})
}

func (that *Server) handleMakeMove(w http.ResponseWriter, r *http.Request) {
	var req makeMoveRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, http.StatusBadRequest, err)
		return
	}

	// A missing position is indistinguishable from pointing outside the
	// board as far as the client is concerned.
	if req.Position == nil {
		that.writeError(w, http.StatusBadRequest, apperror.ErrInvalidMove)
		return
	}

	updatedGame, err := that.manager.MakeMove(r.Context(), r.PathValue("gameID"), req.PlayerID, *req.Position)
	if err != nil {
		that.writeError(w, statusFor(err), err)
		return
	}

	that.writeJSON(w, http.StatusOK, gameToMoveResponse(updatedGame))
}

func (that *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	existingGame, err := that.manager.GetGame(r.Context(), r.PathValue("gameID"))
	if err != nil {
		that.writeError(w, statusFor(err), err)
		return
	}

	that.writeJSON(w, http.StatusOK, existingGame)
}

func (that *Server) handleClearGame(w http.ResponseWriter, r *http.Request) {
	updatedGame, err := that.manager.ResetGame(r.Context(), r.PathValue("gameID"))
	if err != nil {
		that.writeError(w, statusFor(err), err)
		return
	}

	that.writeJSON(w, http.StatusOK, gameToMoveResponse(updatedGame))
}

func gameToMoveResponse(game *entity.Game) moveResponse {
	return moveResponse{
		Board:         game.Board,
		CurrentPlayer: game.Turn,
		Winner:        game.Winner,
	}
}

// decodeBody - decodes a JSON request body. An empty body is allowed and
// leaves the target at its zero value, so optional bodies need no special
// casing in the handlers.
func decodeBody(r *http.Request, target any) error {
	if r.Body == nil {
		return nil
	}

	err := json.NewDecoder(r.Body).Decode(target)
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}

var clientErrors = []error{
	apperror.ErrGameFull,
	apperror.ErrPlayerNotFound,
	apperror.ErrNotYourTurn,
	apperror.ErrInvalidMove,
	apperror.ErrGameFinished,
}

func statusFor(err error) int {
	if errors.Is(err, apperror.ErrGameNotFound) {
		return http.StatusNotFound
	}

	for _, clientErr := range clientErrors {
		if errors.Is(err, clientErr) {
			return http.StatusBadRequest
		}
	}

	return http.StatusInternalServerError
}

// writeError - sends the `{"error": message}` body the client banner shows.
// Known failures surface their sentinel message without wrapping noise;
// anything unexpected is logged and hidden behind a generic message.
func (that *Server) writeError(w http.ResponseWriter, status int, err error) {
	message := ""

	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		message = apperror.ErrGameNotFound.Error()
	case status == http.StatusInternalServerError:
		that.logger.Error("request failed", "error", err)
		message = "internal server error"
	default:
		for _, clientErr := range clientErrors {
			if errors.Is(err, clientErr) {
				message = clientErr.Error()
				break
			}
		}
		if message == "" {
			message = err.Error()
		}
	}

	that.writeJSON(w, status, errorResponse{Error: message})
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}
