package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosszero/tictactoe-backend/internal/apperror"
	"github.com/crosszero/tictactoe-backend/internal/entity"
)

func TestMakeTurn(t *testing.T) {
	t.Run("Applies a move and passes the turn", func(t *testing.T) {
		// Given: a fresh game
		game := entity.NewGame("123", 3)

		// When: player X moves to cell 0
		err := MakeTurn(game, entity.PlayerX, 0)
		require.NoError(t, err)

		// Then: the cell is taken and it is O's turn
		assert.Equal(t, entity.Cell("X"), game.Board[0])
		assert.Equal(t, entity.PlayerO, game.Turn)
		assert.Equal(t, entity.EmptyCell, game.Winner)
	})

	t.Run("Alternates the turn after every accepted move", func(t *testing.T) {
		game := entity.NewGame("123", 3)

		moves := []struct {
			symbol string
			cell   int
		}{
			{entity.PlayerX, 0},
			{entity.PlayerO, 4},
			{entity.PlayerX, 8},
		}

		for _, move := range moves {
			before := game.Turn
			require.Equal(t, move.symbol, before)
			require.NoError(t, MakeTurn(game, move.symbol, move.cell))
			assert.NotEqual(t, before, game.Turn)
		}
	})

	t.Run("Rejects a move out of turn", func(t *testing.T) {
		game := entity.NewGame("123", 3)

		// When: player O tries to move first, even on a valid cell
		err := MakeTurn(game, entity.PlayerO, 0)

		// Then: the move is rejected and the board stays empty
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, entity.EmptyCell, game.Board[0])
		assert.Equal(t, entity.PlayerX, game.Turn)
	})

	t.Run("Rejects a move to an occupied cell", func(t *testing.T) {
		game := entity.NewGame("123", 3)
		require.NoError(t, MakeTurn(game, entity.PlayerX, 0))

		// When: player O targets the same cell
		err := MakeTurn(game, entity.PlayerO, 0)

		// Then: the move is invalid and the cell keeps its first symbol
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, entity.Cell("X"), game.Board[0])
	})

	t.Run("Rejects a move outside the board", func(t *testing.T) {
		game := entity.NewGame("123", 3)

		require.ErrorIs(t, MakeTurn(game, entity.PlayerX, -1), apperror.ErrInvalidMove)
		require.ErrorIs(t, MakeTurn(game, entity.PlayerX, 9), apperror.ErrInvalidMove)
	})

	t.Run("Rejects any move once the game is finished", func(t *testing.T) {
		// Given: a game X already won
		game := entity.NewGame("123", 3)
		game.Board[0], game.Board[1], game.Board[2] = "X", "X", "X"
		game.Winner = entity.Cell(entity.PlayerX)
		game.Turn = entity.PlayerO

		// When: O tries to keep playing
		err := MakeTurn(game, entity.PlayerO, 5)

		// Then: the move is rejected and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, entity.EmptyCell, game.Board[5])
	})

	t.Run("Plays a full game to an X win", func(t *testing.T) {
		// Given: X at 0, O at 3, X at 1, O at 4
		game := entity.NewGame("123", 3)
		require.NoError(t, MakeTurn(game, entity.PlayerX, 0))
		require.NoError(t, MakeTurn(game, entity.PlayerO, 3))
		require.NoError(t, MakeTurn(game, entity.PlayerX, 1))
		require.NoError(t, MakeTurn(game, entity.PlayerO, 4))

		// When: X completes the top row
		require.NoError(t, MakeTurn(game, entity.PlayerX, 2))

		// Then: X wins, the turn still alternated, the board matches
		assert.Equal(t, entity.Cell("X"), game.Winner)
		assert.Equal(t, entity.PlayerO, game.Turn)
		assert.Equal(t, boardFromStrings(
			"X", "X", "X",
			"O", "O", "",
			"", "", "",
		), game.Board)
		assert.True(t, game.IsFinished())
	})

	t.Run("Detects a draw on the last move", func(t *testing.T) {
		// Given: a board one move away from a draw
		//   X O X
		//   X O O
		//   O X _
		game := entity.NewGame("123", 3)
		game.Board = boardFromStrings(
			"X", "O", "X",
			"X", "O", "O",
			"O", "X", "",
		)
		game.Turn = entity.PlayerX

		// When: X fills the last cell
		require.NoError(t, MakeTurn(game, entity.PlayerX, 8))

		// Then: the game ends in a draw
		assert.Equal(t, entity.WinnerDraw, game.Winner)
		assert.True(t, game.IsFinished())
	})
}
