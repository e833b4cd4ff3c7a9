package tictactoe

import (
	"github.com/crosszero/tictactoe-backend/internal/apperror"
	"github.com/crosszero/tictactoe-backend/internal/entity"
)

// MakeTurn - applies one move to the game. The turn always passes to the
// other symbol, even on a winning move, so the record keeps alternating
// strictly and matches what polling clients expect.
func MakeTurn(gameInstance *entity.Game, symbol string, cell int) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(gameInstance, symbol, cell); err != nil {
		return err
	}

	gameInstance.Board[cell] = entity.Cell(symbol)
	gameInstance.Turn = toggleSymbol(symbol)
	gameInstance.Winner = Evaluate(gameInstance.Board, gameInstance.FieldSize, gameInstance.RunLength)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(gameInstance *entity.Game, symbol string, cell int) error {
	if gameInstance.Turn != symbol {
		return apperror.ErrNotYourTurn
	}

	if cell < 0 || cell >= len(gameInstance.Board) {
		return apperror.ErrInvalidMove
	}

	if gameInstance.Board[cell] != entity.EmptyCell {
		return apperror.ErrInvalidMove
	}

	return nil
}

func toggleSymbol(current string) string {
	if current == entity.PlayerX {
		return entity.PlayerO
	}

	return entity.PlayerX
}
