package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosszero/tictactoe-backend/internal/apperror"
)

func TestNewGame(t *testing.T) {
	t.Run("Creates a 3x3 game with three in a row to win", func(t *testing.T) {
		// Given/When: a new game on the default field
		game := NewGame("123", 3)

		// Then: the board is empty, X starts, and no winner is set
		assert.Equal(t, "123", game.ID)
		assert.Equal(t, 3, game.FieldSize)
		assert.Equal(t, 3, game.RunLength)
		assert.Len(t, game.Board, 9)
		assert.Equal(t, PlayerX, game.Turn)
		assert.Equal(t, EmptyCell, game.Winner)
		assert.Empty(t, game.Players)

		for _, cell := range game.Board {
			assert.Equal(t, EmptyCell, cell)
		}
	})

	t.Run("Creates a 16x16 game with five in a row to win", func(t *testing.T) {
		// Given/When: a new game on the big field
		game := NewGame("123", 16)

		// Then: the board has 256 cells and the run length is five
		assert.Len(t, game.Board, 256)
		assert.Equal(t, 5, game.RunLength)
		assert.Equal(t, PlayerX, game.Turn)
	})

	t.Run("Falls back to 3x3 when the field size is below 1", func(t *testing.T) {
		// When: creating games with nonsense sizes
		zero := NewGame("a", 0)
		negative := NewGame("b", -4)

		// Then: both get the default board
		assert.Equal(t, DefaultFieldSize, zero.FieldSize)
		assert.Len(t, zero.Board, 9)
		assert.Equal(t, DefaultFieldSize, negative.FieldSize)
		assert.Len(t, negative.Board, 9)
	})
}

func TestGame_AddPlayer(t *testing.T) {
	t.Run("Assigns X then O by join order and rejects a third player", func(t *testing.T) {
		game := NewGame("123", 3)

		// When: two players join
		first, err := game.AddPlayer("p1")
		require.NoError(t, err)
		second, err := game.AddPlayer("p2")
		require.NoError(t, err)

		// Then: symbols follow join order
		assert.Equal(t, PlayerX, first.Symbol)
		assert.Equal(t, PlayerO, second.Symbol)
		assert.Len(t, game.Players, 2)

		// When: a third player tries to join
		_, err = game.AddPlayer("p3")

		// Then: the game is full
		require.ErrorIs(t, err, apperror.ErrGameFull)
		assert.Len(t, game.Players, 2)
	})
}

func TestGame_PlayerByID(t *testing.T) {
	game := NewGame("123", 3)
	player, err := game.AddPlayer("p1")
	require.NoError(t, err)

	t.Run("Finds a registered player", func(t *testing.T) {
		found := game.PlayerByID("p1")
		require.NotNil(t, found)
		assert.Equal(t, player.Symbol, found.Symbol)
	})

	t.Run("Returns nil for an unknown player", func(t *testing.T) {
		assert.Nil(t, game.PlayerByID("nope"))
	})
}

func TestGame_Reset(t *testing.T) {
	// Given: a finished game with two players
	game := NewGame("123", 3)
	_, err := game.AddPlayer("p1")
	require.NoError(t, err)
	_, err = game.AddPlayer("p2")
	require.NoError(t, err)

	game.Board[0] = Cell(PlayerX)
	game.Board[4] = Cell(PlayerO)
	game.Turn = PlayerO
	game.Winner = Cell(PlayerX)

	// When: the game is reset
	game.Reset()

	// Then: the board and outcome are cleared but players keep their seats
	for _, cell := range game.Board {
		assert.Equal(t, EmptyCell, cell)
	}
	assert.Equal(t, PlayerX, game.Turn)
	assert.Equal(t, EmptyCell, game.Winner)
	assert.Len(t, game.Players, 2)
}

func TestGame_IsFinished(t *testing.T) {
	game := NewGame("123", 3)
	assert.False(t, game.IsFinished())

	game.Winner = WinnerDraw
	assert.True(t, game.IsFinished())

	game.Winner = Cell(PlayerX)
	assert.True(t, game.IsFinished())
}

func TestGame_Clone(t *testing.T) {
	// Given: a game with a player and a move on the board
	game := NewGame("123", 3)
	_, err := game.AddPlayer("p1")
	require.NoError(t, err)
	game.Board[0] = Cell(PlayerX)

	// When: the game is cloned and the clone is mutated
	clone := game.Clone()
	clone.Board[1] = Cell(PlayerO)
	clone.Players[0].Symbol = PlayerO
	clone.Turn = PlayerO

	// Then: the original is untouched
	assert.Equal(t, EmptyCell, game.Board[1])
	assert.Equal(t, PlayerX, game.Players[0].Symbol)
	assert.Equal(t, PlayerX, game.Turn)
}

func TestCell_JSON(t *testing.T) {
	t.Run("Empty cells marshal as null", func(t *testing.T) {
		board := []Cell{EmptyCell, Cell(PlayerX), Cell(PlayerO)}

		data, err := json.Marshal(board)
		require.NoError(t, err)

		assert.JSONEq(t, `[null, "X", "O"]`, string(data))
	})

	t.Run("Null cells unmarshal as empty", func(t *testing.T) {
		var board []Cell
		require.NoError(t, json.Unmarshal([]byte(`[null, "X", null]`), &board))

		assert.Equal(t, []Cell{EmptyCell, Cell(PlayerX), EmptyCell}, board)
	})

	t.Run("Game record round-trips through JSON", func(t *testing.T) {
		game := NewGame("123", 3)
		_, err := game.AddPlayer("p1")
		require.NoError(t, err)
		game.Board[4] = Cell(PlayerX)

		data, err := json.Marshal(game)
		require.NoError(t, err)

		var restored Game
		require.NoError(t, json.Unmarshal(data, &restored))

		assert.Equal(t, game, &restored)
	})
}
