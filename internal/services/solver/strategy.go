package solver

import (
	"github.com/mcoot/minesweeper-go/internal/model"
	"github.com/mcoot/minesweeper-go/internal/services/agent"
)

// MoveKind classifies how a strategy arrived at a move
type MoveKind string

const (
	MoveKindSafe   MoveKind = "safe"
	MoveKindRandom MoveKind = "random"
)

// Strategy defines how a solver chooses the next cell to reveal
type Strategy interface {
	// ChooseMove selects the next cell to reveal. The boolean is false when
	// no move remains.
	ChooseMove(ag *agent.Agent) (model.Cell, MoveKind, bool)
}

// KnowledgeStrategy prefers proven-safe cells and falls back to a random
// guess among the cells not known to be mines
type KnowledgeStrategy struct{}

// NewKnowledgeStrategy creates a new KnowledgeStrategy
func NewKnowledgeStrategy() *KnowledgeStrategy {
	return &KnowledgeStrategy{}
}

// ChooseMove returns a safe move when the agent has proven one, otherwise
// a random move avoiding known mines
func (s *KnowledgeStrategy) ChooseMove(ag *agent.Agent) (model.Cell, MoveKind, bool) {
	if cell, ok := ag.ChooseSafeMove(); ok {
		return cell, MoveKindSafe, true
	}
	if cell, ok := ag.ChooseRandomMove(); ok {
		return cell, MoveKindRandom, true
	}
	return model.Cell{}, "", false
}

// RandomStrategy always guesses, ignoring the agent's deductions. It still
// avoids cells already played and cells proven to be mines.
type RandomStrategy struct{}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy() *RandomStrategy {
	return &RandomStrategy{}
}

// ChooseMove returns a random unplayed non-mine cell
func (s *RandomStrategy) ChooseMove(ag *agent.Agent) (model.Cell, MoveKind, bool) {
	if cell, ok := ag.ChooseRandomMove(); ok {
		return cell, MoveKindRandom, true
	}
	return model.Cell{}, "", false
}
