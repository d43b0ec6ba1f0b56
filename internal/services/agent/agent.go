package agent

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/minesweeper-go/internal/dependencies/random"
	"github.com/mcoot/minesweeper-go/internal/knowledge"
	"github.com/mcoot/minesweeper-go/internal/model"
)

// Agent plays minesweeper by feeding board observations into a knowledge
// base and reading certain conclusions back out. It holds no game state of
// its own beyond the board dimensions; all reasoning lives in the base.
type Agent struct {
	height int
	width  int
	base   *knowledge.Base
	logger *slog.Logger
}

// New creates an agent for a height x width board
func New(height, width int, rnd random.Random, logger *slog.Logger) *Agent {
	return &Agent{
		height: height,
		width:  width,
		base:   knowledge.NewBase(height, width, rnd, logger),
		logger: logger.With(slog.String("component", "agent")),
	}
}

// FromSnapshot reconstructs an agent from persisted knowledge
func FromSnapshot(snap *knowledge.Snapshot, rnd random.Random, logger *slog.Logger) (*Agent, error) {
	base, err := knowledge.FromSnapshot(snap, rnd, logger)
	if err != nil {
		return nil, fmt.Errorf("restoring agent knowledge: %w", err)
	}
	return &Agent{
		height: snap.Height,
		width:  snap.Width,
		base:   base,
		logger: logger.With(slog.String("component", "agent")),
	}, nil
}

// RecordObservation tells the agent that cell was revealed safe with the
// given number of neighboring mines
func (a *Agent) RecordObservation(cell model.Cell, count int) error {
	if !model.InBounds(cell, a.height, a.width) {
		return fmt.Errorf("observation at %s on %dx%d board: %w",
			cell, a.height, a.width, model.ErrCellOutOfBounds)
	}
	return a.base.RecordObservation(cell, count)
}

// ChooseSafeMove returns a cell known to be safe and not yet played, if any
func (a *Agent) ChooseSafeMove() (model.Cell, bool) {
	return a.base.ChooseSafeMove()
}

// ChooseRandomMove returns a random cell that is neither played nor a known
// mine, if any remains
func (a *Agent) ChooseRandomMove() (model.Cell, bool) {
	return a.base.ChooseRandomMove()
}

// MarkMine injects external ground truth that a cell is a mine
func (a *Agent) MarkMine(cell model.Cell) error {
	if !model.InBounds(cell, a.height, a.width) {
		return fmt.Errorf("mark mine at %s: %w", cell, model.ErrCellOutOfBounds)
	}
	return a.base.MarkMine(cell)
}

// MarkSafe injects external ground truth that a cell is safe
func (a *Agent) MarkSafe(cell model.Cell) error {
	if !model.InBounds(cell, a.height, a.width) {
		return fmt.Errorf("mark safe at %s: %w", cell, model.ErrCellOutOfBounds)
	}
	return a.base.MarkSafe(cell)
}

// Mines returns the cells the agent has proven to be mines
func (a *Agent) Mines() []model.Cell {
	return a.base.Mines()
}

// Safes returns the cells the agent has proven safe
func (a *Agent) Safes() []model.Cell {
	return a.base.Safes()
}

// MovesMade returns the cells already played
func (a *Agent) MovesMade() []model.Cell {
	return a.base.MovesMade()
}

// SentenceCount returns the number of live sentences in the knowledge base
func (a *Agent) SentenceCount() int {
	return a.base.SentenceCount()
}

// Snapshot captures the agent's knowledge for persistence
func (a *Agent) Snapshot() *knowledge.Snapshot {
	return a.base.Snapshot()
}
