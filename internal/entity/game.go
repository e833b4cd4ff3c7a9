package entity

import (
	"encoding/json"

	"github.com/crosszero/tictactoe-backend/internal/apperror"
)

const (
	PlayerX = "X"
	PlayerO = "O"

	WinnerDraw = Cell("draw")
	EmptyCell  = Cell("")

	DefaultFieldSize = 3

	// The 16x16 field plays to five in a row, every other size to three.
	bigFieldSize = 16

	shortRunLength = 3
	longRunLength  = 5

	maxPlayers = 2
)

// Cell is a single board square. It marshals the empty cell as JSON null so
// the wire format stays `null | "X" | "O"`. The same type carries the winner
// field, which adds the "draw" value.
type Cell string

func (that Cell) MarshalJSON() ([]byte, error) {
	if that == EmptyCell {
		return []byte("null"), nil
	}

	return json.Marshal(string(that))
}

func (that *Cell) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*that = EmptyCell
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	*that = Cell(value)

	return nil
}

type Game struct {
	ID        string    `json:"id"`
	FieldSize int       `json:"fieldSize"`
	RunLength int       `json:"runLength"`
	Board     []Cell    `json:"board"`
	Turn      string    `json:"currentPlayer"`
	Winner    Cell      `json:"winner"`
	Players   []*Player `json:"players"`
}

// NewGame - creates a fresh game. A field size below 1 falls back to the
// classic 3x3 board. The winning run length is derived once here and stored
// on the record.
func NewGame(id string, fieldSize int) *Game {
	if fieldSize < 1 {
		fieldSize = DefaultFieldSize
	}

	runLength := shortRunLength
	if fieldSize == bigFieldSize {
		runLength = longRunLength
	}

	return &Game{
		ID:        id,
		FieldSize: fieldSize,
		RunLength: runLength,
		Board:     make([]Cell, fieldSize*fieldSize),
		Turn:      PlayerX,
		Winner:    EmptyCell,
		Players:   []*Player{},
	}
}

// PlayerByID - returns the registered player with the given ID, or nil.
func (that *Game) PlayerByID(id string) *Player {
	for _, player := range that.Players {
		if player.ID == id {
			return player
		}
	}

	return nil
}

// AddPlayer - registers a new player. The first joiner plays X, the second
// plays O, a third is rejected.
func (that *Game) AddPlayer(id string) (*Player, error) {
	if len(that.Players) >= maxPlayers {
		return nil, apperror.ErrGameFull
	}

	symbol := PlayerO
	if len(that.Players) == 0 {
		symbol = PlayerX
	}

	player := &Player{ID: id, Symbol: symbol}
	that.Players = append(that.Players, player)

	return player, nil
}

// Reset - clears the board for a rematch. Players keep their symbols; the
// turn goes back to X and the winner is cleared.
func (that *Game) Reset() {
	that.Board = make([]Cell, that.FieldSize*that.FieldSize)
	that.Turn = PlayerX
	that.Winner = EmptyCell
}

// IsFinished - reports whether the game reached a terminal state. A terminal
// game accepts no further moves.
func (that *Game) IsFinished() bool {
	return that.Winner != EmptyCell
}

// Clone - returns a deep copy of the game record.
func (that *Game) Clone() *Game {
	clone := *that

	clone.Board = make([]Cell, len(that.Board))
	copy(clone.Board, that.Board)

	clone.Players = make([]*Player, len(that.Players))
	for i, player := range that.Players {
		playerCopy := *player
		clone.Players[i] = &playerCopy
	}

	return &clone
}
