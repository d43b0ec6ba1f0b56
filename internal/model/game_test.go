package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/minesweeper-go/internal/model"
)

func newTestGame(t *testing.T) *model.Game {
	t.Helper()
	board, err := model.NewBoardWithMines(2, 2, []model.Cell{{Row: 0, Col: 1}})
	require.NoError(t, err)
	return model.NewGame("TEST", board, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestNewGameStartsPlaying(t *testing.T) {
	g := newTestGame(t)

	assert.Equal(t, model.GameStatePlaying, g.State)
	assert.Empty(t, g.Revealed)
	assert.Empty(t, g.Flagged)
	assert.Nil(t, g.HitMine)
	assert.Equal(t, g.CreatedAt, g.UpdatedAt)
}

func TestRevealAndFlagTracking(t *testing.T) {
	g := newTestGame(t)

	g.Revealed[model.Cell{Row: 0, Col: 0}] = 1
	assert.True(t, g.IsRevealed(model.Cell{Row: 0, Col: 0}))
	assert.False(t, g.IsRevealed(model.Cell{Row: 1, Col: 0}))

	g.Flagged[model.Cell{Row: 0, Col: 1}] = true
	assert.True(t, g.IsFlagged(model.Cell{Row: 0, Col: 1}))
	assert.Equal(t, []model.Cell{{Row: 0, Col: 1}}, g.FlaggedCells())
	assert.Equal(t, 0, g.MinesRemaining())
}

func TestWinConditions(t *testing.T) {
	g := newTestGame(t)

	assert.Equal(t, 3, g.SafeCellCount())
	assert.False(t, g.AllSafeRevealed())
	assert.False(t, g.FlaggedAllMines())

	g.Revealed[model.Cell{Row: 0, Col: 0}] = 1
	g.Revealed[model.Cell{Row: 1, Col: 0}] = 1
	g.Revealed[model.Cell{Row: 1, Col: 1}] = 1
	assert.True(t, g.AllSafeRevealed())

	g.Flagged[model.Cell{Row: 0, Col: 1}] = true
	assert.True(t, g.FlaggedAllMines())

	// An extra flag spoils the exact match
	g.Flagged[model.Cell{Row: 0, Col: 0}] = true
	assert.False(t, g.FlaggedAllMines())
	assert.Equal(t, -1, g.MinesRemaining())
}

func TestGameJSONRoundTrip(t *testing.T) {
	g := newTestGame(t)
	g.Revealed[model.Cell{Row: 0, Col: 0}] = 1
	g.Flagged[model.Cell{Row: 0, Col: 1}] = true
	hit := model.Cell{Row: 0, Col: 1}
	g.HitMine = &hit
	g.State = model.GameStateLost

	data, err := json.Marshal(g)
	require.NoError(t, err)

	var decoded model.Game
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, g.ID, decoded.ID)
	assert.Equal(t, g.State, decoded.State)
	assert.Equal(t, g.Board.Mines, decoded.Board.Mines)
	assert.Equal(t, g.Revealed, decoded.Revealed)
	assert.Equal(t, g.Flagged, decoded.Flagged)
	require.NotNil(t, decoded.HitMine)
	assert.Equal(t, hit, *decoded.HitMine)
}
