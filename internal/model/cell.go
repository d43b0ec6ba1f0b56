package model

import (
	"fmt"
	"sort"
)

// Cell identifies a square on the board
type Cell struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// String formats the cell as (row,col) for logs and errors
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Less reports whether c comes before other in row-major order
func (c Cell) Less(other Cell) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// MarshalText encodes the cell as "row,col" so it can be used as a JSON map key
func (c Cell) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%d,%d", c.Row, c.Col)), nil
}

// UnmarshalText decodes a "row,col" value
func (c *Cell) UnmarshalText(text []byte) error {
	var row, col int
	if _, err := fmt.Sscanf(string(text), "%d,%d", &row, &col); err != nil {
		return fmt.Errorf("invalid cell %q: %w", string(text), err)
	}
	c.Row = row
	c.Col = col
	return nil
}

// SortCells sorts cells in row-major order in place and returns the slice
func SortCells(cells []Cell) []Cell {
	sort.Slice(cells, func(i, j int) bool {
		return cells[i].Less(cells[j])
	})
	return cells
}
