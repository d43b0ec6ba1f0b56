package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/minesweeper-go/internal/api/request"
	"github.com/mcoot/minesweeper-go/internal/api/response"
	"github.com/mcoot/minesweeper-go/internal/config"
	"github.com/mcoot/minesweeper-go/internal/model"
	"github.com/mcoot/minesweeper-go/internal/services/game"
	"github.com/mcoot/minesweeper-go/internal/services/solver"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController *game.Controller
	solverService  *solver.Service
	presets        map[string]config.Preset
	defaultPreset  string
}

// NewGameHandler creates a new game handler
func NewGameHandler(
	gameController *game.Controller,
	solverService *solver.Service,
	presets map[string]config.Preset,
	defaultPreset string,
) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		solverService:  solverService,
		presets:        presets,
		defaultPreset:  defaultPreset,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	height, width, mines := req.Height, req.Width, req.Mines
	if height == 0 && width == 0 {
		name := req.Preset
		if name == "" {
			name = h.defaultPreset
		}
		preset, ok := h.presets[name]
		if !ok {
			WriteError(w, NewInvalidRequestError("unknown preset: "+name))
			return
		}
		height, width, mines = preset.Height, preset.Width, preset.Mines
	}

	g, err := h.gameController.CreateGame(r.Context(), height, width, mines)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameViewFromModel(g))
}

// Get handles GET /api/v1/games/{game_id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	g, err := h.gameController.GetGame(r.Context(), gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameViewFromModel(g))
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.gameController.ListGames(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameListViewFromIDs(ids))
}

// Delete handles DELETE /api/v1/games/{game_id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	if err := h.gameController.DeleteGame(r.Context(), gameID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Reveal handles POST /api/v1/games/{game_id}/reveal
func (h *GameHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	h.cellMove(w, r, h.gameController.Reveal)
}

// Flag handles POST /api/v1/games/{game_id}/flag
func (h *GameHandler) Flag(w http.ResponseWriter, r *http.Request) {
	h.cellMove(w, r, h.gameController.Flag)
}

// Unflag handles POST /api/v1/games/{game_id}/unflag
func (h *GameHandler) Unflag(w http.ResponseWriter, r *http.Request) {
	h.cellMove(w, r, h.gameController.Unflag)
}

// Knowledge handles GET /api/v1/games/{game_id}/knowledge
func (h *GameHandler) Knowledge(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	ag, err := h.gameController.Agent(r.Context(), gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.KnowledgeViewFromAgent(ag))
}

// SolverStep handles POST /api/v1/games/{game_id}/solver/step
func (h *GameHandler) SolverStep(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	g, actions, err := h.solverService.Step(r.Context(), gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SolverView{
		Game:    response.GameViewFromModel(g),
		Actions: actions,
	})
}

// SolverAutoplay handles POST /api/v1/games/{game_id}/solver/autoplay
func (h *GameHandler) SolverAutoplay(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	g, actions, err := h.solverService.Autoplay(r.Context(), gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SolverView{
		Game:    response.GameViewFromModel(g),
		Actions: actions,
	})
}

type cellMoveFunc func(ctx context.Context, gameID model.GameID, cell model.Cell) (*model.Game, error)

// cellMove decodes a cell request and applies the given move
func (h *GameHandler) cellMove(w http.ResponseWriter, r *http.Request, move cellMoveFunc) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	var req request.CellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	g, err := move(r.Context(), gameID, model.Cell{Row: req.Row, Col: req.Col})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameViewFromModel(g))
}
