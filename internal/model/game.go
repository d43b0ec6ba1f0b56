package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStatePlaying GameState = "playing" // Cells still to reveal or flag
	GameStateWon     GameState = "won"     // All mines flagged or all safe cells revealed
	GameStateLost    GameState = "lost"    // A mine was revealed
)

// Game is a single playthrough: the ground-truth board plus everything the
// player has done to it so far
type Game struct {
	ID    GameID    `json:"id"`
	Board *Board    `json:"board"`
	State GameState `json:"state"`

	// Revealed maps each opened safe cell to the neighbor mine count it showed
	Revealed map[Cell]int `json:"revealed"`

	// Flagged is the set of cells the player has flagged as mines. This is the
	// player's claim, distinct from the engine's inferred mine set.
	Flagged map[Cell]bool `json:"flagged"`

	// HitMine is set when a reveal ended the game
	HitMine *Cell `json:"hit_mine,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewGame wraps a board in a fresh playing-state game
func NewGame(id GameID, board *Board, now time.Time) *Game {
	return &Game{
		ID:        id,
		Board:     board,
		State:     GameStatePlaying,
		Revealed:  make(map[Cell]int),
		Flagged:   make(map[Cell]bool),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsRevealed reports whether the cell has been opened
func (g *Game) IsRevealed(cell Cell) bool {
	_, ok := g.Revealed[cell]
	return ok
}

// IsFlagged reports whether the cell is flagged
func (g *Game) IsFlagged(cell Cell) bool {
	return g.Flagged[cell]
}

// FlaggedCells returns the flagged set as a sorted slice
func (g *Game) FlaggedCells() []Cell {
	cells := make([]Cell, 0, len(g.Flagged))
	for cell := range g.Flagged {
		cells = append(cells, cell)
	}
	return SortCells(cells)
}

// SafeCellCount returns the number of non-mine cells on the board
func (g *Game) SafeCellCount() int {
	return g.Board.Height*g.Board.Width - g.Board.MineCount()
}

// AllSafeRevealed reports whether every non-mine cell has been opened
func (g *Game) AllSafeRevealed() bool {
	return len(g.Revealed) == g.SafeCellCount()
}

// FlaggedAllMines reports whether the flagged set exactly matches the mines
func (g *Game) FlaggedAllMines() bool {
	return g.Board.Won(g.FlaggedCells())
}

// MinesRemaining returns the mine count minus the number of flags placed.
// Can go negative if the player over-flags.
func (g *Game) MinesRemaining() int {
	return g.Board.MineCount() - len(g.Flagged)
}
