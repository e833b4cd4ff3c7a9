package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/crosszero/tictactoe-backend/internal/apperror"
	"github.com/crosszero/tictactoe-backend/internal/entity"
	"github.com/crosszero/tictactoe-backend/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
}

// IDGenerator - produces opaque unique identifiers for games and players.
type IDGenerator func() string

// GameManager owns all game-state transitions. Every operation on a given
// game runs under that game's mutex, so a join and a move for the same game
// can never interleave; games are independent and take no shared lock.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	newID    IDGenerator

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, newID IDGenerator) *GameManager {
	return &GameManager{
		logger:   logger,
		gameRepo: gameRepo,
		newID:    newID,
		locks:    make(map[string]*sync.Mutex),
	}
}

// CreateGame - allocates a new game record and stores it. A field size below
// 1 falls back to the default 3x3 board.
func (that *GameManager) CreateGame(ctx context.Context, fieldSize int) (*entity.Game, error) {
	log := that.logger.With("method", "CreateGame")

	newGame := entity.NewGame(that.newID(), fieldSize)

	if err := that.gameRepo.CreateOrUpdate(ctx, newGame); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log.Info("new game created", "game_id", newGame.ID, "field_size", newGame.FieldSize)

	return newGame, nil
}

// JoinGame - registers a player in the game. A playerID that is already
// registered gets its existing assignment back, so a reconnecting client
// keeps its symbol. The first joiner plays X, the second O, a third distinct
// joiner is rejected.
func (that *GameManager) JoinGame(ctx context.Context, gameID, playerID string) (*entity.Player, error) {
	unlock := that.lockGame(gameID)
	defer unlock()

	log := that.logger.With("method", "JoinGame", "game_id", gameID)

	existingGame, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if player := existingGame.PlayerByID(playerID); player != nil {
		log.Info("player already in game", "player_id", player.ID)
		return player, nil
	}

	player, err := existingGame.AddPlayer(that.newID())
	if err != nil {
		return nil, err
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, existingGame); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	log.Info("player joined game", "player_id", player.ID, "symbol", player.Symbol)

	return player, nil
}

// MakeMove - validates and applies one move, then re-evaluates the winner.
func (that *GameManager) MakeMove(ctx context.Context, gameID, playerID string, position int) (*entity.Game, error) {
	unlock := that.lockGame(gameID)
	defer unlock()

	log := that.logger.With("method", "MakeMove", "game_id", gameID)

	existingGame, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	player := existingGame.PlayerByID(playerID)
	if player == nil {
		return nil, apperror.ErrPlayerNotFound
	}

	if err = tictactoe.MakeTurn(existingGame, player.Symbol, position); err != nil {
		return nil, err
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, existingGame); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	log.Info("move made", "player_id", playerID, "symbol", player.Symbol, "position", position)

	if existingGame.IsFinished() {
		log.Info("game finished", "winner", string(existingGame.Winner))
	}

	return existingGame, nil
}

// GetGame - returns a snapshot of the game record.
func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	unlock := that.lockGame(gameID)
	defer unlock()

	existingGame, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return existingGame, nil
}

// ResetGame - clears the board for a rematch. Unlike the board, the player
// list survives: both clients keep their identity and symbol.
func (that *GameManager) ResetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	unlock := that.lockGame(gameID)
	defer unlock()

	log := that.logger.With("method", "ResetGame", "game_id", gameID)

	existingGame, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	existingGame.Reset()

	if err = that.gameRepo.CreateOrUpdate(ctx, existingGame); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	log.Info("game reset")

	return existingGame, nil
}

// lockGame - acquires the mutex for one game id, creating it on first use.
// Lock entries are never removed; games live for the process lifetime anyway.
func (that *GameManager) lockGame(gameID string) func() {
	that.mu.Lock()
	lock, ok := that.locks[gameID]
	if !ok {
		lock = &sync.Mutex{}
		that.locks[gameID] = lock
	}
	that.mu.Unlock()

	lock.Lock()

	return lock.Unlock
}
