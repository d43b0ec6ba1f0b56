package knowledge

import (
	"fmt"
	"strings"

	"github.com/mcoot/minesweeper-go/internal/model"
)

// Sentence is a logical statement about the board: exactly Count of Cells
// contain mines. Cells only ever shrinks; once a member's status is known it
// is removed via MarkMine or MarkSafe.
type Sentence struct {
	cells map[model.Cell]bool
	count int
}

// NewSentence creates a sentence over the given cells
func NewSentence(cells []model.Cell, count int) *Sentence {
	set := make(map[model.Cell]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return &Sentence{cells: set, count: count}
}

// Count returns the number of mines the sentence asserts
func (s *Sentence) Count() int {
	return s.count
}

// Size returns the number of cells the sentence covers
func (s *Sentence) Size() int {
	return len(s.cells)
}

// Contains reports whether the cell is a member of the sentence
func (s *Sentence) Contains(cell model.Cell) bool {
	return s.cells[cell]
}

// Cells returns the member cells as a sorted slice
func (s *Sentence) Cells() []model.Cell {
	cells := make([]model.Cell, 0, len(s.cells))
	for c := range s.cells {
		cells = append(cells, c)
	}
	return model.SortCells(cells)
}

// KnownMines returns all member cells if every one of them must be a mine
// (count equals size, non-empty), otherwise nil
func (s *Sentence) KnownMines() []model.Cell {
	if len(s.cells) > 0 && s.count == len(s.cells) {
		return s.Cells()
	}
	return nil
}

// KnownSafes returns all member cells if none of them can be a mine
// (count is zero), otherwise nil
func (s *Sentence) KnownSafes() []model.Cell {
	if s.count == 0 {
		return s.Cells()
	}
	return nil
}

// MarkMine removes the cell and decrements the count if the cell is a
// member; no-op otherwise
func (s *Sentence) MarkMine(cell model.Cell) {
	if s.cells[cell] {
		delete(s.cells, cell)
		s.count--
	}
}

// MarkSafe removes the cell if it is a member, leaving the count unchanged;
// no-op otherwise
func (s *Sentence) MarkSafe(cell model.Cell) {
	if s.cells[cell] {
		delete(s.cells, cell)
	}
}

// SameCells reports whether both sentences cover exactly the same cells
func (s *Sentence) SameCells(other *Sentence) bool {
	if len(s.cells) != len(other.cells) {
		return false
	}
	for c := range s.cells {
		if !other.cells[c] {
			return false
		}
	}
	return true
}

// Equal reports whether both sentences cover the same cells with the same count
func (s *Sentence) Equal(other *Sentence) bool {
	return s.count == other.count && s.SameCells(other)
}

// IsSubsetOf reports whether every member of s is also a member of other
func (s *Sentence) IsSubsetOf(other *Sentence) bool {
	if len(s.cells) > len(other.cells) {
		return false
	}
	for c := range s.cells {
		if !other.cells[c] {
			return false
		}
	}
	return true
}

// Difference returns the cells of s not present in other
func (s *Sentence) Difference(other *Sentence) []model.Cell {
	var diff []model.Cell
	for c := range s.cells {
		if !other.cells[c] {
			diff = append(diff, c)
		}
	}
	return model.SortCells(diff)
}

// CoversExactly reports whether the sentence's cell set equals the given cells
func (s *Sentence) CoversExactly(cells []model.Cell) bool {
	if len(cells) != len(s.cells) {
		return false
	}
	for _, c := range cells {
		if !s.cells[c] {
			return false
		}
	}
	return true
}

// Valid reports whether the count is achievable over the remaining cells
func (s *Sentence) Valid() bool {
	return s.count >= 0 && s.count <= len(s.cells)
}

// String formats the sentence as "{(r,c), ...} = count"
func (s *Sentence) String() string {
	parts := make([]string, 0, len(s.cells))
	for _, c := range s.Cells() {
		parts = append(parts, c.String())
	}
	return fmt.Sprintf("{%s} = %d", strings.Join(parts, ", "), s.count)
}
