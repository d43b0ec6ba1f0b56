package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/minesweeper-go/internal/dependencies/clock"
	"github.com/mcoot/minesweeper-go/internal/dependencies/random"
	"github.com/mcoot/minesweeper-go/internal/model"
	"github.com/mcoot/minesweeper-go/internal/services/agent"
	"github.com/mcoot/minesweeper-go/internal/storage"
)

const (
	// GameIDAlphabet is the character set for generated game IDs
	GameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// GameIDLength is the length of generated game IDs
	GameIDLength = 12
)

// Controller manages game lifecycle: creation, reveals, flags, and the
// agent knowledge persisted alongside each game
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger.With(slog.String("component", "game-controller")),
	}
}

// CreateGame generates a board and a fresh agent knowledge base for it
func (c *Controller) CreateGame(ctx context.Context, height, width, mineCount int) (*model.Game, error) {
	board, err := model.NewBoard(height, width, mineCount, c.random)
	if err != nil {
		return nil, err
	}

	gameID := model.GameID(c.random.String(GameIDLength, GameIDAlphabet))
	game := model.NewGame(gameID, board, c.clock.Now())

	ag := agent.New(height, width, c.random, c.logger)
	if err := c.storage.SaveKnowledge(ctx, gameID, ag.Snapshot()); err != nil {
		return nil, err
	}
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(gameID)),
		slog.Int("height", height),
		slog.Int("width", width),
		slog.Int("mines", mineCount),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// ListGames returns the IDs of all stored games
func (c *Controller) ListGames(ctx context.Context) ([]model.GameID, error) {
	return c.storage.ListGameIDs(ctx)
}

// DeleteGame removes a game and its knowledge
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	if err := c.storage.DeleteKnowledge(ctx, gameID); err != nil {
		return err
	}
	return c.storage.DeleteGame(ctx, gameID)
}

// Agent reconstructs the playing agent for a game from persisted knowledge
func (c *Controller) Agent(ctx context.Context, gameID model.GameID) (*agent.Agent, error) {
	snap, err := c.storage.GetKnowledge(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return agent.FromSnapshot(snap, c.random, c.logger)
}

// Reveal opens a cell. A mine ends the game; a safe cell yields its neighbor
// mine count, which is fed to the agent as an observation.
func (c *Controller) Reveal(ctx context.Context, gameID model.GameID, cell model.Cell) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.State != model.GameStatePlaying {
		return nil, model.ErrGameComplete
	}
	if !game.Board.InBounds(cell) {
		return nil, fmt.Errorf("reveal at %s: %w", cell, model.ErrCellOutOfBounds)
	}
	if game.IsRevealed(cell) {
		return nil, fmt.Errorf("reveal at %s: %w", cell, model.ErrCellAlreadyPlayed)
	}
	if game.IsFlagged(cell) {
		return nil, fmt.Errorf("reveal at %s: %w", cell, model.ErrCellFlagged)
	}

	if game.Board.IsMine(cell) {
		hit := cell
		game.HitMine = &hit
		game.State = model.GameStateLost
		game.UpdatedAt = c.clock.Now()

		if err := c.storage.SaveGame(ctx, game); err != nil {
			return nil, err
		}

		c.logger.Info("mine revealed, game lost",
			slog.String("game_id", string(gameID)),
			slog.String("cell", cell.String()),
		)
		return game, nil
	}

	count := game.Board.NearbyMines(cell)

	ag, err := c.Agent(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if err := ag.RecordObservation(cell, count); err != nil {
		return nil, err
	}
	if err := c.storage.SaveKnowledge(ctx, gameID, ag.Snapshot()); err != nil {
		return nil, err
	}

	game.Revealed[cell] = count
	if game.AllSafeRevealed() {
		game.State = model.GameStateWon
	}
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("cell revealed",
		slog.String("game_id", string(gameID)),
		slog.String("cell", cell.String()),
		slog.Int("count", count),
		slog.String("state", string(game.State)),
	)

	return game, nil
}

// Flag marks a cell as a suspected mine. Flagging every true mine and
// nothing else wins the game.
func (c *Controller) Flag(ctx context.Context, gameID model.GameID, cell model.Cell) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.State != model.GameStatePlaying {
		return nil, model.ErrGameComplete
	}
	if !game.Board.InBounds(cell) {
		return nil, fmt.Errorf("flag at %s: %w", cell, model.ErrCellOutOfBounds)
	}
	if game.IsRevealed(cell) {
		return nil, fmt.Errorf("flag at %s: %w", cell, model.ErrCellAlreadyPlayed)
	}

	game.Flagged[cell] = true
	if game.FlaggedAllMines() {
		game.State = model.GameStateWon
	}
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

// Unflag removes a flag from a cell
func (c *Controller) Unflag(ctx context.Context, gameID model.GameID, cell model.Cell) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.State != model.GameStatePlaying {
		return nil, model.ErrGameComplete
	}
	if !game.Board.InBounds(cell) {
		return nil, fmt.Errorf("unflag at %s: %w", cell, model.ErrCellOutOfBounds)
	}
	if !game.IsFlagged(cell) {
		return nil, fmt.Errorf("unflag at %s: %w", cell, model.ErrCellNotFlagged)
	}

	delete(game.Flagged, cell)
	game.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}
