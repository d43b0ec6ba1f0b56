package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/minesweeper-go/internal/api/handler"
	"github.com/mcoot/minesweeper-go/internal/api/middleware"
	"github.com/mcoot/minesweeper-go/internal/config"
	"github.com/mcoot/minesweeper-go/internal/services/game"
	"github.com/mcoot/minesweeper-go/internal/services/solver"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
	SolverService  *solver.Service
	Presets        map[string]config.Preset
	DefaultPreset  string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(
		cfg.GameController, cfg.SolverService, cfg.Presets, cfg.DefaultPreset)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Game routes
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games/{game_id}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{game_id}", gameHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/games/{game_id}/reveal", gameHandler.Reveal).Methods(http.MethodPost)
	api.HandleFunc("/games/{game_id}/flag", gameHandler.Flag).Methods(http.MethodPost)
	api.HandleFunc("/games/{game_id}/unflag", gameHandler.Unflag).Methods(http.MethodPost)

	// Knowledge and solver routes
	api.HandleFunc("/games/{game_id}/knowledge", gameHandler.Knowledge).Methods(http.MethodGet)
	api.HandleFunc("/games/{game_id}/solver/step", gameHandler.SolverStep).Methods(http.MethodPost)
	api.HandleFunc("/games/{game_id}/solver/autoplay", gameHandler.SolverAutoplay).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
