package knowledge

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/minesweeper-go/internal/dependencies/random"
	"github.com/mcoot/minesweeper-go/internal/model"
)

// SentenceState is the serializable form of a Sentence
type SentenceState struct {
	Cells []model.Cell `json:"cells"`
	Count int          `json:"count"`
}

// Snapshot is the serializable state of a knowledge base, used to persist
// the agent's knowledge between requests
type Snapshot struct {
	Height    int             `json:"height"`
	Width     int             `json:"width"`
	Mines     []model.Cell    `json:"mines"`
	Safes     []model.Cell    `json:"safes"`
	MovesMade []model.Cell    `json:"moves_made"`
	Sentences []SentenceState `json:"sentences"`
}

// Snapshot captures the base's current state
func (b *Base) Snapshot() *Snapshot {
	snap := &Snapshot{
		Height:    b.height,
		Width:     b.width,
		Mines:     b.Mines(),
		Safes:     b.Safes(),
		MovesMade: b.MovesMade(),
		Sentences: make([]SentenceState, 0, len(b.sentences)),
	}
	for _, s := range b.sentences {
		snap.Sentences = append(snap.Sentences, SentenceState{
			Cells: s.Cells(),
			Count: s.Count(),
		})
	}
	return snap
}

// FromSnapshot reconstructs a knowledge base from a snapshot
func FromSnapshot(snap *Snapshot, rnd random.Random, logger *slog.Logger) (*Base, error) {
	if snap.Height <= 0 || snap.Width <= 0 {
		return nil, fmt.Errorf("snapshot has dimensions %dx%d: %w",
			snap.Height, snap.Width, model.ErrInvalidBoard)
	}

	b := NewBase(snap.Height, snap.Width, rnd, logger)

	for _, c := range snap.Mines {
		b.mines[c] = true
	}
	for _, c := range snap.Safes {
		if b.mines[c] {
			return nil, fmt.Errorf("snapshot cell %s is both mine and safe: %w",
				c, model.ErrInconsistentKnowledge)
		}
		b.safes[c] = true
	}
	for _, c := range snap.MovesMade {
		b.movesMade[c] = true
	}

	for _, ss := range snap.Sentences {
		s := NewSentence(ss.Cells, ss.Count)
		if !s.Valid() {
			return nil, fmt.Errorf("snapshot sentence %s: %w", s, model.ErrInconsistentKnowledge)
		}
		b.sentences = append(b.sentences, s)
	}

	return b, nil
}
