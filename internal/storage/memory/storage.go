package memory

import (
	"context"
	"sync"

	"github.com/mcoot/minesweeper-go/internal/knowledge"
	"github.com/mcoot/minesweeper-go/internal/model"
	"github.com/mcoot/minesweeper-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	games     map[model.GameID]*model.Game
	knowledge map[model.GameID]*knowledge.Snapshot
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games:     make(map[model.GameID]*model.Game),
		knowledge: make(map[model.GameID]*knowledge.Snapshot),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

func (s *Storage) ListGameIDs(ctx context.Context) ([]model.GameID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]model.GameID, 0, len(s.games))
	for id := range s.games {
		ids = append(ids, id)
	}
	return ids, nil
}

// Knowledge operations

func (s *Storage) SaveKnowledge(ctx context.Context, id model.GameID, snap *knowledge.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.knowledge[id] = snap
	return nil
}

func (s *Storage) GetKnowledge(ctx context.Context, id model.GameID) (*knowledge.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.knowledge[id]
	if !ok {
		return nil, model.ErrKnowledgeNotFound
	}
	return snap, nil
}

func (s *Storage) DeleteKnowledge(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.knowledge, id)
	return nil
}
