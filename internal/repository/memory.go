package repository

import (
	"context"
	"sync"

	"github.com/crosszero/tictactoe-backend/internal/apperror"
	"github.com/crosszero/tictactoe-backend/internal/entity"
)

type memoryGame struct {
	mu    sync.RWMutex
	games map[string]*entity.Game
}

// NewMemoryGameRepository - returns the in-memory game repository. Games live
// for the lifetime of the process; this is the default storage.
func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games: make(map[string]*entity.Game),
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	// Stored and returned games are copies, matching the value semantics of
	// the redis repository where every record round-trips through JSON.
	that.games[game.ID] = game.Clone()

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	existingGame, ok := that.games[id]
	if !ok {
		return nil, apperror.ErrGameNotFound
	}

	return existingGame.Clone(), nil
}
