package response

import (
	"time"

	"github.com/mcoot/minesweeper-go/internal/knowledge"
	"github.com/mcoot/minesweeper-go/internal/model"
	"github.com/mcoot/minesweeper-go/internal/services/agent"
	"github.com/mcoot/minesweeper-go/internal/services/solver"
)

// Cell states in API responses
const (
	CellStateHidden   = "hidden"
	CellStateRevealed = "revealed"
	CellStateFlagged  = "flagged"
)

// CellView represents a single cell as the player sees it
type CellView struct {
	State string `json:"state"`
	Count int    `json:"count,omitempty"` // neighbor mines, for revealed cells
	Mine  bool   `json:"mine,omitempty"`  // only populated once the game is over
}

// GameView represents a game in API responses. Mine positions are hidden
// while the game is in progress.
type GameView struct {
	ID             string       `json:"id"`
	State          string       `json:"state"`
	Height         int          `json:"height"`
	Width          int          `json:"width"`
	MineCount      int          `json:"mine_count"`
	MinesRemaining int          `json:"mines_remaining"`
	Cells          [][]CellView `json:"cells"`
	HitMine        *model.Cell  `json:"hit_mine,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// GameViewFromModel converts a model.Game to a response GameView
func GameViewFromModel(g *model.Game) GameView {
	over := g.State != model.GameStatePlaying

	cells := make([][]CellView, g.Board.Height)
	for row := 0; row < g.Board.Height; row++ {
		cells[row] = make([]CellView, g.Board.Width)
		for col := 0; col < g.Board.Width; col++ {
			cell := model.Cell{Row: row, Col: col}
			view := CellView{State: CellStateHidden}
			if count, ok := g.Revealed[cell]; ok {
				view = CellView{State: CellStateRevealed, Count: count}
			} else if g.IsFlagged(cell) {
				view.State = CellStateFlagged
			}
			if over && g.Board.IsMine(cell) {
				view.Mine = true
			}
			cells[row][col] = view
		}
	}

	return GameView{
		ID:             string(g.ID),
		State:          string(g.State),
		Height:         g.Board.Height,
		Width:          g.Board.Width,
		MineCount:      g.Board.MineCount(),
		MinesRemaining: g.MinesRemaining(),
		Cells:          cells,
		HitMine:        g.HitMine,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

// GameListView lists stored game IDs
type GameListView struct {
	Games []string `json:"games"`
}

// GameListViewFromIDs converts game IDs to a GameListView
func GameListViewFromIDs(ids []model.GameID) GameListView {
	games := make([]string, len(ids))
	for i, id := range ids {
		games[i] = string(id)
	}
	return GameListView{Games: games}
}

// SentenceView represents one live sentence in the knowledge base
type SentenceView struct {
	Cells []model.Cell `json:"cells"`
	Count int          `json:"count"`
}

// KnowledgeView represents what the agent has deduced about a game
type KnowledgeView struct {
	Mines     []model.Cell   `json:"mines"`
	Safes     []model.Cell   `json:"safes"`
	MovesMade []model.Cell   `json:"moves_made"`
	Sentences []SentenceView `json:"sentences"`
}

// KnowledgeViewFromAgent converts an agent's knowledge to a KnowledgeView
func KnowledgeViewFromAgent(ag *agent.Agent) KnowledgeView {
	snap := ag.Snapshot()
	sentences := make([]SentenceView, len(snap.Sentences))
	for i, s := range snap.Sentences {
		sentences[i] = SentenceViewFromState(s)
	}
	return KnowledgeView{
		Mines:     ag.Mines(),
		Safes:     ag.Safes(),
		MovesMade: ag.MovesMade(),
		Sentences: sentences,
	}
}

// SentenceViewFromState converts a persisted sentence to a SentenceView
func SentenceViewFromState(s knowledge.SentenceState) SentenceView {
	return SentenceView{
		Cells: s.Cells,
		Count: s.Count,
	}
}

// SolverView is the response for solver step and autoplay endpoints
type SolverView struct {
	Game    GameView        `json:"game"`
	Actions []solver.Action `json:"actions"`
}
