package rest

import "github.com/crosszero/tictactoe-backend/internal/entity"

type createGameRequest struct {
	FieldSize int `json:"fieldSize"`
}

type createGameResponse struct {
	GameID string `json:"gameId"`
}

type joinGameRequest struct {
	PlayerID string `json:"playerId"`
}

type joinGameResponse struct {
	PlayerID string `json:"playerId"`
	Symbol   string `json:"symbol"`
}

type makeMoveRequest struct {
	PlayerID string `json:"playerId"`
	Position *int   `json:"position"`
}

type moveResponse struct {
	Board         []entity.Cell `json:"board"`
	CurrentPlayer string        `json:"currentPlayer"`
	Winner        entity.Cell   `json:"winner"`
}

type errorResponse struct {
	Error string `json:"error"`
}
