package solver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/minesweeper-go/internal/model"
	"github.com/mcoot/minesweeper-go/internal/services/game"
)

const (
	// MaxSolverIterations is a safety limit for the Autoplay loop
	MaxSolverIterations = 10000
)

// ActionType represents the type of action the solver took
type ActionType string

const (
	ActionReveal ActionType = "reveal"
	ActionFlag   ActionType = "flag"
)

// Action records a single solver step so callers can replay or display it
type Action struct {
	Type  ActionType      `json:"type"`
	Cell  model.Cell      `json:"cell"`
	Kind  MoveKind        `json:"kind,omitempty"` // how a reveal was chosen
	Count int             `json:"count"`          // neighbor mines for safe reveals
	State model.GameState `json:"state"`          // game state after the action
}

// Service drives games forward by asking a Strategy for moves and applying
// them through the game controller
type Service struct {
	gameController *game.Controller
	strategy       Strategy
	logger         *slog.Logger
}

// NewService creates a new solver Service
func NewService(gameController *game.Controller, strategy Strategy, logger *slog.Logger) *Service {
	return &Service{
		gameController: gameController,
		strategy:       strategy,
		logger:         logger.With(slog.String("component", "solver-service")),
	}
}

// Step makes a single move in the game: one reveal chosen by the strategy,
// plus flags for any mines the reveal let the agent deduce
func (s *Service) Step(ctx context.Context, gameID model.GameID) (*model.Game, []Action, error) {
	g, err := s.gameController.GetGame(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}
	if g.State != model.GameStatePlaying {
		return nil, nil, model.ErrGameComplete
	}

	ag, err := s.gameController.Agent(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}

	cell, kind, ok := s.strategy.ChooseMove(ag)
	if !ok {
		return g, nil, nil
	}

	g, err = s.gameController.Reveal(ctx, gameID, cell)
	if err != nil {
		return nil, nil, err
	}

	actions := []Action{{
		Type:  ActionReveal,
		Cell:  cell,
		Kind:  kind,
		Count: g.Revealed[cell],
		State: g.State,
	}}

	s.logger.Info("solver revealed cell",
		slog.String("game_id", string(gameID)),
		slog.String("cell", cell.String()),
		slog.String("kind", string(kind)),
		slog.String("state", string(g.State)),
	)

	if g.State != model.GameStatePlaying {
		return g, actions, nil
	}

	flagged, err := s.flagInferredMines(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}
	actions = append(actions, flagged...)
	if len(flagged) > 0 {
		g, err = s.gameController.GetGame(ctx, gameID)
		if err != nil {
			return nil, nil, err
		}
	}

	return g, actions, nil
}

// Autoplay repeatedly steps the game until it is won, lost, or no move
// remains. It returns every action taken.
func (s *Service) Autoplay(ctx context.Context, gameID model.GameID) (*model.Game, []Action, error) {
	var actions []Action

	for iter := 0; iter < MaxSolverIterations; iter++ {
		g, stepActions, err := s.Step(ctx, gameID)
		if err != nil {
			return nil, actions, err
		}
		if len(stepActions) == 0 {
			return g, actions, nil
		}
		actions = append(actions, stepActions...)
		if g.State != model.GameStatePlaying {
			return g, actions, nil
		}
	}

	return nil, actions, fmt.Errorf("autoplay exceeded %d iterations for game %s",
		MaxSolverIterations, gameID)
}

// flagInferredMines flags every cell the agent has proven to be a mine that
// is not flagged yet
func (s *Service) flagInferredMines(ctx context.Context, gameID model.GameID) ([]Action, error) {
	g, err := s.gameController.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	ag, err := s.gameController.Agent(ctx, gameID)
	if err != nil {
		return nil, err
	}

	var actions []Action
	for _, mine := range ag.Mines() {
		if g.IsFlagged(mine) {
			continue
		}
		g, err = s.gameController.Flag(ctx, gameID, mine)
		if err != nil {
			return nil, err
		}
		actions = append(actions, Action{
			Type:  ActionFlag,
			Cell:  mine,
			State: g.State,
		})
		if g.State != model.GameStatePlaying {
			break
		}
	}
	return actions, nil
}
