package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GameView:
		o.printGame(v)
	case GameList:
		o.printGameList(v)
	case KnowledgeView:
		o.printKnowledge(v)
	case SolverView:
		o.printSolver(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// CellView response type (matches API)
type CellView struct {
	State string `json:"state"`
	Count int    `json:"count,omitempty"`
	Mine  bool   `json:"mine,omitempty"`
}

// GameView response type. Cell coordinates arrive as "row,col" strings.
type GameView struct {
	ID             string       `json:"id"`
	State          string       `json:"state"`
	Height         int          `json:"height"`
	Width          int          `json:"width"`
	MineCount      int          `json:"mine_count"`
	MinesRemaining int          `json:"mines_remaining"`
	Cells          [][]CellView `json:"cells"`
	HitMine        *string      `json:"hit_mine,omitempty"`
}

// GameList response type
type GameList struct {
	Games []string `json:"games"`
}

// SentenceView response type
type SentenceView struct {
	Cells []string `json:"cells"`
	Count int      `json:"count"`
}

// KnowledgeView response type
type KnowledgeView struct {
	Mines     []string       `json:"mines"`
	Safes     []string       `json:"safes"`
	MovesMade []string       `json:"moves_made"`
	Sentences []SentenceView `json:"sentences"`
}

// SolverAction response type
type SolverAction struct {
	Type  string `json:"type"`
	Cell  string `json:"cell"`
	Kind  string `json:"kind,omitempty"`
	Count int    `json:"count"`
	State string `json:"state"`
}

// SolverView response type
type SolverView struct {
	Game    GameView       `json:"game"`
	Actions []SolverAction `json:"actions"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGame(g GameView) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("State: %s\n", g.State)
	fmt.Printf("Board: %dx%d, %d mines (%d unflagged)\n",
		g.Height, g.Width, g.MineCount, g.MinesRemaining)
	if g.HitMine != nil {
		fmt.Printf("Hit mine at: (%s)\n", *g.HitMine)
	}
	fmt.Println()
	o.printBoard(g.Cells)
}

func (o *Output) printBoard(cells [][]CellView) {
	if len(cells) == 0 {
		return
	}

	width := len(cells[0])

	// Print column headers
	fmt.Print("    ")
	for col := 0; col < width; col++ {
		fmt.Printf("%2d ", col%100)
	}
	fmt.Println()

	// Print top border
	fmt.Print("   +")
	for col := 0; col < width; col++ {
		fmt.Print("---")
	}
	fmt.Println("+")

	// Print rows
	for row := range cells {
		fmt.Printf("%2d |", row)
		for _, cell := range cells[row] {
			fmt.Printf(" %s ", cellGlyph(cell))
		}
		fmt.Println("|")
	}

	// Print bottom border
	fmt.Print("   +")
	for col := 0; col < width; col++ {
		fmt.Print("---")
	}
	fmt.Println("+")
}

// cellGlyph picks the single-character display for a cell
func cellGlyph(cell CellView) string {
	switch {
	case cell.State == "flagged":
		return "F"
	case cell.State == "revealed":
		if cell.Count == 0 {
			return " "
		}
		return fmt.Sprintf("%d", cell.Count)
	case cell.Mine:
		// Exposed once the game is over
		return "*"
	default:
		return "."
	}
}

func (o *Output) printGameList(l GameList) {
	if len(l.Games) == 0 {
		fmt.Println("No games")
		return
	}
	fmt.Printf("Games (%d):\n", len(l.Games))
	for _, id := range l.Games {
		fmt.Printf("  - %s\n", id)
	}
}

func (o *Output) printKnowledge(k KnowledgeView) {
	fmt.Printf("Moves made: %s\n", formatCells(k.MovesMade))
	fmt.Printf("Known mines: %s\n", formatCells(k.Mines))
	fmt.Printf("Known safes: %s\n", formatCells(k.Safes))
	fmt.Printf("Sentences (%d):\n", len(k.Sentences))
	for _, s := range k.Sentences {
		fmt.Printf("  %s = %d\n", formatCells(s.Cells), s.Count)
	}
}

func formatCells(cells []string) string {
	if len(cells) == 0 {
		return "(none)"
	}
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = "(" + c + ")"
	}
	return strings.Join(parts, " ")
}

func (o *Output) printSolver(s SolverView) {
	fmt.Printf("Actions (%d):\n", len(s.Actions))
	for _, a := range s.Actions {
		switch a.Type {
		case "reveal":
			fmt.Printf("  reveal (%s) [%s] -> %d\n", a.Cell, a.Kind, a.Count)
		case "flag":
			fmt.Printf("  flag (%s)\n", a.Cell)
		}
	}
	fmt.Println()
	o.printGame(s.Game)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
