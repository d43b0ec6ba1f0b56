package knowledge

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/minesweeper-go/internal/dependencies/random"
	"github.com/mcoot/minesweeper-go/internal/model"
)

// Base is the knowledge base for one game: the authoritative mine and safe
// sets, the cells already played, and the live sentences. All inference
// happens here; callers feed it observations and read the derived sets.
//
// A Base is not safe for concurrent use. One game, one Base, one caller.
type Base struct {
	height int
	width  int

	mines     map[model.Cell]bool
	safes     map[model.Cell]bool
	movesMade map[model.Cell]bool

	// Live sentences in insertion order. No two entries cover the same
	// cell set; closure collapses duplicates.
	sentences []*Sentence

	rnd    random.Random
	logger *slog.Logger
}

// NewBase creates an empty knowledge base for a height x width board
func NewBase(height, width int, rnd random.Random, logger *slog.Logger) *Base {
	return &Base{
		height:    height,
		width:     width,
		mines:     make(map[model.Cell]bool),
		safes:     make(map[model.Cell]bool),
		movesMade: make(map[model.Cell]bool),
		rnd:       rnd,
		logger:    logger.With(slog.String("component", "knowledge")),
	}
}

// Height returns the board height the base reasons over
func (b *Base) Height() int {
	return b.height
}

// Width returns the board width the base reasons over
func (b *Base) Width() int {
	return b.width
}

// RecordObservation incorporates one observation from the board: the given
// cell was revealed safe and has count mines among its neighbors. It marks
// the cell played and safe, derives the neighbor sentence, and runs closure
// until no further conclusion follows.
//
// The call either applies completely or, for usage errors (out of bounds,
// repeated cell), rejects without mutating anything.
func (b *Base) RecordObservation(cell model.Cell, count int) error {
	if !model.InBounds(cell, b.height, b.width) {
		return fmt.Errorf("observation at %s: %w", cell, model.ErrCellOutOfBounds)
	}
	if b.movesMade[cell] {
		return fmt.Errorf("observation at %s: %w", cell, model.ErrCellAlreadyPlayed)
	}
	if count < 0 || count > 8 {
		return fmt.Errorf("observation at %s has count %d: %w", cell, count, model.ErrInconsistentKnowledge)
	}

	b.movesMade[cell] = true
	if err := b.markSafe(cell); err != nil {
		return err
	}

	// Build the neighbor sentence over cells whose status is still unknown,
	// discounting neighbors already known to be mines.
	var unknown []model.Cell
	for _, n := range b.neighbors(cell) {
		switch {
		case b.mines[n]:
			count--
		case b.safes[n]:
			// already settled, contributes nothing
		default:
			unknown = append(unknown, n)
		}
	}

	if len(unknown) > 0 {
		s := NewSentence(unknown, count)
		if !s.Valid() {
			return fmt.Errorf("observation at %s yields %s: %w", cell, s, model.ErrInconsistentKnowledge)
		}
		b.sentences = append(b.sentences, s)
	}

	if err := b.closure(); err != nil {
		return err
	}

	b.logger.Debug("observation recorded",
		slog.String("cell", cell.String()),
		slog.Int("count", count),
		slog.Int("known_mines", len(b.mines)),
		slog.Int("known_safes", len(b.safes)),
		slog.Int("sentences", len(b.sentences)),
	)

	return nil
}

// MarkMine injects the ground truth that a cell is a mine, propagating it
// through all live sentences and re-running closure
func (b *Base) MarkMine(cell model.Cell) error {
	if err := b.markMine(cell); err != nil {
		return err
	}
	return b.closure()
}

// MarkSafe injects the ground truth that a cell is safe, propagating it
// through all live sentences and re-running closure
func (b *Base) MarkSafe(cell model.Cell) error {
	if err := b.markSafe(cell); err != nil {
		return err
	}
	return b.closure()
}

// ChooseSafeMove returns the first cell in row-major order that is known
// safe and not yet played, or false if no such cell is known
func (b *Base) ChooseSafeMove() (model.Cell, bool) {
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			cell := model.Cell{Row: row, Col: col}
			if b.safes[cell] && !b.movesMade[cell] {
				return cell, true
			}
		}
	}
	return model.Cell{}, false
}

// ChooseRandomMove returns a uniformly random cell that has not been played
// and is not a known mine, or false if no such cell remains
func (b *Base) ChooseRandomMove() (model.Cell, bool) {
	var candidates []model.Cell
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			cell := model.Cell{Row: row, Col: col}
			if !b.movesMade[cell] && !b.mines[cell] {
				candidates = append(candidates, cell)
			}
		}
	}
	if len(candidates) == 0 {
		return model.Cell{}, false
	}
	return candidates[b.rnd.Intn(len(candidates))], true
}

// Mines returns the cells known to contain mines, sorted row-major
func (b *Base) Mines() []model.Cell {
	return sortedCells(b.mines)
}

// Safes returns the cells known to be mine-free, sorted row-major
func (b *Base) Safes() []model.Cell {
	return sortedCells(b.safes)
}

// MovesMade returns the cells already played, sorted row-major
func (b *Base) MovesMade() []model.Cell {
	return sortedCells(b.movesMade)
}

// SentenceCount returns the number of live sentences
func (b *Base) SentenceCount() int {
	return len(b.sentences)
}

// closure repeatedly harvests degenerate sentences and applies subset
// resolution until a full pass marks no new cell and adds no new sentence.
// The pass count is bounded as a safety net against a latent inference bug;
// correct runs converge long before the bound.
func (b *Base) closure() error {
	maxPasses := b.height * b.width * b.height * b.width
	if maxPasses < 16 {
		maxPasses = 16
	}

	for pass := 0; pass < maxPasses; pass++ {
		harvested, err := b.harvest()
		if err != nil {
			return err
		}
		if err := b.dedupe(); err != nil {
			return err
		}
		resolved, err := b.resolve()
		if err != nil {
			return err
		}
		if err := b.dedupe(); err != nil {
			return err
		}
		if !harvested && !resolved {
			return nil
		}
	}

	return fmt.Errorf("closure did not reach a fixed point within %d passes: %w",
		maxPasses, model.ErrInconsistentKnowledge)
}

// harvest pulls conclusions out of degenerate sentences to a fixed point:
// a sentence with count zero marks all its cells safe, one whose count
// equals its size marks them all mines; either way the sentence is removed.
// Conclusions are staged first and applied in a batch so that sentence
// mutation never happens mid-iteration.
func (b *Base) harvest() (bool, error) {
	progressed := false

	for {
		var stagedMines, stagedSafes []model.Cell

		kept := b.sentences[:0]
		for _, s := range b.sentences {
			switch {
			case s.Size() == 0:
				// fully consumed, nothing left to say
			case s.Count() == 0:
				stagedSafes = append(stagedSafes, s.Cells()...)
			case s.Count() == s.Size():
				stagedMines = append(stagedMines, s.Cells()...)
			default:
				kept = append(kept, s)
			}
		}
		b.sentences = kept

		if len(stagedMines) == 0 && len(stagedSafes) == 0 {
			return progressed, nil
		}
		progressed = true

		for _, cell := range stagedSafes {
			if err := b.markSafe(cell); err != nil {
				return false, err
			}
		}
		for _, cell := range stagedMines {
			if err := b.markMine(cell); err != nil {
				return false, err
			}
		}
	}
}

// resolve applies subset resolution across every pair of live sentences:
// if A's cells are a subset of B's, then exactly B.count - A.count mines
// lie in B \ A. New sentences are staged and appended after the scan; a
// cell set already present, live or staged, is not added again.
func (b *Base) resolve() (bool, error) {
	var staged []*Sentence

	exists := func(cells []model.Cell) bool {
		for _, s := range b.sentences {
			if s.CoversExactly(cells) {
				return true
			}
		}
		for _, s := range staged {
			if s.CoversExactly(cells) {
				return true
			}
		}
		return false
	}

	for i := 0; i < len(b.sentences); i++ {
		for j := i + 1; j < len(b.sentences); j++ {
			var small, big *Sentence
			switch {
			case b.sentences[i].IsSubsetOf(b.sentences[j]):
				small, big = b.sentences[i], b.sentences[j]
			case b.sentences[j].IsSubsetOf(b.sentences[i]):
				small, big = b.sentences[j], b.sentences[i]
			default:
				continue
			}

			diff := big.Difference(small)
			if len(diff) == 0 {
				// identical cell sets are collapsed by dedupe
				continue
			}
			count := big.Count() - small.Count()
			if count < 0 || count > len(diff) {
				return false, fmt.Errorf("resolving %s against %s: %w",
					small, big, model.ErrInconsistentKnowledge)
			}
			if !exists(diff) {
				staged = append(staged, NewSentence(diff, count))
			}
		}
	}

	b.sentences = append(b.sentences, staged...)
	return len(staged) > 0, nil
}

// dedupe collapses sentences with identical cell sets, keeping the first.
// Two sentences over the same cells with different counts cannot both hold.
func (b *Base) dedupe() error {
	kept := b.sentences[:0]
	for _, s := range b.sentences {
		duplicate := false
		for _, k := range kept {
			if k.SameCells(s) {
				if k.Count() != s.Count() {
					return fmt.Errorf("conflicting sentences %s and %s: %w",
						k, s, model.ErrInconsistentKnowledge)
				}
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, s)
		}
	}
	b.sentences = kept
	return nil
}

// markMine records a cell as a mine and removes it from every live sentence
func (b *Base) markMine(cell model.Cell) error {
	if b.safes[cell] {
		return fmt.Errorf("cell %s is both mine and safe: %w", cell, model.ErrInconsistentKnowledge)
	}
	if b.mines[cell] {
		return nil
	}
	b.mines[cell] = true

	for _, s := range b.sentences {
		s.MarkMine(cell)
		if !s.Valid() {
			return fmt.Errorf("marking mine %s leaves %s: %w", cell, s, model.ErrInconsistentKnowledge)
		}
	}
	return nil
}

// markSafe records a cell as safe and removes it from every live sentence
func (b *Base) markSafe(cell model.Cell) error {
	if b.mines[cell] {
		return fmt.Errorf("cell %s is both mine and safe: %w", cell, model.ErrInconsistentKnowledge)
	}
	if b.safes[cell] {
		return nil
	}
	b.safes[cell] = true

	for _, s := range b.sentences {
		s.MarkSafe(cell)
		if !s.Valid() {
			return fmt.Errorf("marking safe %s leaves %s: %w", cell, s, model.ErrInconsistentKnowledge)
		}
	}
	return nil
}

// neighbors returns the in-bounds cells adjacent to the given cell
func (b *Base) neighbors(cell model.Cell) []model.Cell {
	neighbors := make([]model.Cell, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := model.Cell{Row: cell.Row + dr, Col: cell.Col + dc}
			if model.InBounds(n, b.height, b.width) {
				neighbors = append(neighbors, n)
			}
		}
	}
	return neighbors
}

func sortedCells(set map[model.Cell]bool) []model.Cell {
	cells := make([]model.Cell, 0, len(set))
	for c := range set {
		cells = append(cells, c)
	}
	return model.SortCells(cells)
}
