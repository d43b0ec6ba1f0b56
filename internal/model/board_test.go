package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/minesweeper-go/internal/dependencies/mocks"
	"github.com/mcoot/minesweeper-go/internal/model"
)

func TestNewBoardPlacesRequestedMines(t *testing.T) {
	rnd := mocks.NewMockRandom()
	// Duplicate draw (1,1) is retried until distinct cells are found
	rnd.QueueIntn(1, 1, 1, 1, 0, 2)

	b, err := model.NewBoard(3, 3, 2, rnd)
	require.NoError(t, err)

	assert.Equal(t, 2, b.MineCount())
	assert.Equal(t, []model.Cell{{Row: 0, Col: 2}, {Row: 1, Col: 1}}, b.Mines)
}

func TestBoardRender(t *testing.T) {
	b, err := model.NewBoardWithMines(2, 3, []model.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 2}})
	require.NoError(t, err)

	assert.Equal(t, "| |X| |\n| | |X|\n", b.Render())
}

func TestNewBoardValidation(t *testing.T) {
	rnd := mocks.NewMockRandom()

	_, err := model.NewBoard(0, 3, 1, rnd)
	assert.ErrorIs(t, err, model.ErrInvalidBoard)

	_, err = model.NewBoard(3, -1, 1, rnd)
	assert.ErrorIs(t, err, model.ErrInvalidBoard)

	_, err = model.NewBoard(2, 2, 5, rnd)
	assert.ErrorIs(t, err, model.ErrInvalidBoard)

	_, err = model.NewBoard(2, 2, -1, rnd)
	assert.ErrorIs(t, err, model.ErrInvalidBoard)
}

func TestNewBoardWithMinesRejectsOutOfBounds(t *testing.T) {
	_, err := model.NewBoardWithMines(3, 3, []model.Cell{{Row: 3, Col: 0}})
	assert.ErrorIs(t, err, model.ErrInvalidBoard)
}

func TestNearbyMines(t *testing.T) {
	b, err := model.NewBoardWithMines(3, 3, []model.Cell{
		{Row: 0, Col: 1}, {Row: 1, Col: 1},
	})
	require.NoError(t, err)

	// A cell is not its own neighbor
	assert.Equal(t, 1, b.NearbyMines(model.Cell{Row: 0, Col: 1}))
	assert.Equal(t, 2, b.NearbyMines(model.Cell{Row: 0, Col: 0}))
	assert.Equal(t, 2, b.NearbyMines(model.Cell{Row: 1, Col: 2}))
	assert.Equal(t, 1, b.NearbyMines(model.Cell{Row: 2, Col: 0}))
}

func TestNeighborsAtEdges(t *testing.T) {
	b, err := model.NewBoardWithMines(3, 3, nil)
	require.NoError(t, err)

	assert.Len(t, b.Neighbors(model.Cell{Row: 0, Col: 0}), 3)
	assert.Len(t, b.Neighbors(model.Cell{Row: 0, Col: 1}), 5)
	assert.Len(t, b.Neighbors(model.Cell{Row: 1, Col: 1}), 8)
	assert.Len(t, b.Neighbors(model.Cell{Row: 2, Col: 2}), 3)
}

func TestWon(t *testing.T) {
	b, err := model.NewBoardWithMines(3, 3, []model.Cell{
		{Row: 0, Col: 0}, {Row: 2, Col: 2},
	})
	require.NoError(t, err)

	assert.False(t, b.Won(nil))
	assert.False(t, b.Won([]model.Cell{{Row: 0, Col: 0}}))
	assert.False(t, b.Won([]model.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}}))
	assert.True(t, b.Won([]model.Cell{{Row: 2, Col: 2}, {Row: 0, Col: 0}}))
}

func TestCellTextMarshaling(t *testing.T) {
	cell := model.Cell{Row: 3, Col: 7}

	data, err := json.Marshal(cell)
	require.NoError(t, err)
	assert.Equal(t, `"3,7"`, string(data))

	var decoded model.Cell
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, cell, decoded)

	// Map keys round trip through the text encoding
	m := map[model.Cell]int{{Row: 1, Col: 2}: 5}
	data, err = json.Marshal(m)
	require.NoError(t, err)
	var decodedMap map[model.Cell]int
	require.NoError(t, json.Unmarshal(data, &decodedMap))
	assert.Equal(t, m, decodedMap)
}

func TestCellOrdering(t *testing.T) {
	cells := []model.Cell{
		{Row: 2, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 0}, {Row: 1, Col: 2},
	}
	sorted := model.SortCells(cells)
	assert.Equal(t, []model.Cell{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 0},
	}, sorted)
}
