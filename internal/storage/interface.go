package storage

import (
	"context"

	"github.com/mcoot/minesweeper-go/internal/knowledge"
	"github.com/mcoot/minesweeper-go/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
	ListGameIDs(ctx context.Context) ([]model.GameID, error)

	// Knowledge operations: the agent's persisted state for a game
	SaveKnowledge(ctx context.Context, id model.GameID, snap *knowledge.Snapshot) error
	GetKnowledge(ctx context.Context, id model.GameID) (*knowledge.Snapshot, error)
	DeleteKnowledge(ctx context.Context, id model.GameID) error
}
