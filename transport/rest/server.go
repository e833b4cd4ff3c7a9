package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/crosszero/tictactoe-backend/internal/entity"
)

type gameManager interface {
	CreateGame(ctx context.Context, fieldSize int) (*entity.Game, error)
	JoinGame(ctx context.Context, gameID, playerID string) (*entity.Player, error)
	MakeMove(ctx context.Context, gameID, playerID string, position int) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	ResetGame(ctx context.Context, gameID string) (*entity.Game, error)
}

type Server struct {
	logger  *slog.Logger
	manager gameManager
}

func New(logger *slog.Logger, manager gameManager) *Server {
	return &Server{
		logger:  logger,
		manager: manager,
	}
}

// Start - runs the HTTP server until the context is canceled, then shuts it
// down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}

func (that *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", that.handlePing)

	mux.HandleFunc("POST /api/create-game", that.handleCreateGame)
	mux.HandleFunc("POST /api/join-game/{gameID}", that.handleJoinGame)
	mux.HandleFunc("POST /api/make-move/{gameID}", that.handleMakeMove)
	mux.HandleFunc("GET /api/game/{gameID}", that.handleGetGame)
	mux.HandleFunc("GET /api/clear/{gameID}", that.handleClearGame)

	return corsMiddleware(mux)
}

// corsMiddleware - the browser client is served from a different origin and
// sends JSON bodies, so preflight requests must be answered here.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
