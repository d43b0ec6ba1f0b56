package model

import (
	"strings"

	"github.com/mcoot/minesweeper-go/internal/dependencies/random"
)

// Board holds the ground truth for a game: dimensions and mine placement.
// The knowledge engine never sees it; only revealed neighbor counts flow
// from here into the agent.
type Board struct {
	Height int    `json:"height"`
	Width  int    `json:"width"`
	Mines  []Cell `json:"mines"` // sorted row-major
}

// NewBoard creates a board with the given number of mines placed uniformly
// at random without replacement
func NewBoard(height, width, mineCount int, rnd random.Random) (*Board, error) {
	if height <= 0 || width <= 0 {
		return nil, ErrInvalidBoard
	}
	if mineCount < 0 || mineCount > height*width {
		return nil, ErrInvalidBoard
	}

	mined := make(map[Cell]bool, mineCount)
	for len(mined) < mineCount {
		cell := Cell{Row: rnd.Intn(height), Col: rnd.Intn(width)}
		mined[cell] = true
	}

	mines := make([]Cell, 0, mineCount)
	for cell := range mined {
		mines = append(mines, cell)
	}

	return &Board{
		Height: height,
		Width:  width,
		Mines:  SortCells(mines),
	}, nil
}

// NewBoardWithMines creates a board with an explicit mine placement.
// Used by tests that need a known layout.
func NewBoardWithMines(height, width int, mines []Cell) (*Board, error) {
	if height <= 0 || width <= 0 {
		return nil, ErrInvalidBoard
	}
	for _, m := range mines {
		if !InBounds(m, height, width) {
			return nil, ErrInvalidBoard
		}
	}
	sorted := make([]Cell, len(mines))
	copy(sorted, mines)
	return &Board{
		Height: height,
		Width:  width,
		Mines:  SortCells(sorted),
	}, nil
}

// InBounds reports whether a cell lies within a height x width grid
func InBounds(cell Cell, height, width int) bool {
	return cell.Row >= 0 && cell.Row < height && cell.Col >= 0 && cell.Col < width
}

// InBounds reports whether the cell lies on this board
func (b *Board) InBounds(cell Cell) bool {
	return InBounds(cell, b.Height, b.Width)
}

// IsMine reports whether the cell contains a mine
func (b *Board) IsMine(cell Cell) bool {
	for _, m := range b.Mines {
		if m == cell {
			return true
		}
	}
	return false
}

// MineCount returns the number of mines on the board
func (b *Board) MineCount() int {
	return len(b.Mines)
}

// NearbyMines returns the number of mines among the up-to-8 cells adjacent
// to the given cell, excluding the cell itself
func (b *Board) NearbyMines(cell Cell) int {
	count := 0
	for _, n := range b.Neighbors(cell) {
		if b.IsMine(n) {
			count++
		}
	}
	return count
}

// Neighbors returns the in-bounds cells adjacent to the given cell
func (b *Board) Neighbors(cell Cell) []Cell {
	neighbors := make([]Cell, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Cell{Row: cell.Row + dr, Col: cell.Col + dc}
			if b.InBounds(n) {
				neighbors = append(neighbors, n)
			}
		}
	}
	return neighbors
}

// Won reports whether the flagged set exactly matches the true mine set
func (b *Board) Won(flagged []Cell) bool {
	if len(flagged) != len(b.Mines) {
		return false
	}
	for _, f := range flagged {
		if !b.IsMine(f) {
			return false
		}
	}
	return true
}

// Render returns a text view of the mine layout, one row per line, with
// mines shown as X. Debug output only.
func (b *Board) Render() string {
	var sb strings.Builder
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			if b.IsMine(Cell{Row: row, Col: col}) {
				sb.WriteString("|X")
			} else {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}
