package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/minesweeper-go/internal/api"
	"github.com/mcoot/minesweeper-go/internal/api/response"
	"github.com/mcoot/minesweeper-go/internal/config"
	"github.com/mcoot/minesweeper-go/internal/factory"
	"github.com/mcoot/minesweeper-go/internal/testutil"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()
	cfg := config.Default()

	router := api.NewRouter(api.RouterConfig{
		Logger:         testutil.NopLogger(),
		GameController: app.GameController,
		SolverService:  app.SolverService,
		Presets:        cfg.Presets,
		DefaultPreset:  cfg.DefaultPreset,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// createGame creates a 3x3 game with a single mine at (2,2)
func (ts *testServer) createGame(t *testing.T) response.GameView {
	t.Helper()

	ts.app.MockRandom.QueueIntn(2, 2)
	ts.app.MockRandom.QueueString("GAME00000001")

	body := map[string]int{"height": 3, "width": 3, "mines": 1}
	rr := ts.request(http.MethodPost, "/api/v1/games", body)
	require.Equal(t, http.StatusCreated, rr.Code)

	var g response.GameView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &g))
	return g
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateGame(t *testing.T) {
	ts := newTestServer(t)

	g := ts.createGame(t)
	assert.Equal(t, "GAME00000001", g.ID)
	assert.Equal(t, "playing", g.State)
	assert.Equal(t, 3, g.Height)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 1, g.MineCount)
	assert.Len(t, g.Cells, 3)

	// Mine positions are hidden while the game is in progress
	for _, row := range g.Cells {
		for _, cell := range row {
			assert.Equal(t, response.CellStateHidden, cell.State)
			assert.False(t, cell.Mine)
		}
	}
}

func TestCreateGameWithPreset(t *testing.T) {
	ts := newTestServer(t)
	// Ten distinct mine positions for the beginner preset
	for i := 0; i < 9; i++ {
		ts.app.MockRandom.QueueIntn(i, i)
	}
	ts.app.MockRandom.QueueIntn(0, 1)
	ts.app.MockRandom.QueueString("GAME00000002")

	body := map[string]string{"preset": "beginner"}
	rr := ts.request(http.MethodPost, "/api/v1/games", body)
	require.Equal(t, http.StatusCreated, rr.Code)

	var g response.GameView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &g))
	assert.Equal(t, 9, g.Height)
	assert.Equal(t, 9, g.Width)
	assert.Equal(t, 10, g.MineCount)
}

func TestCreateGameUnknownPreset(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{"preset": "nightmare"}
	rr := ts.request(http.MethodPost, "/api/v1/games", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")
}

func TestGetGameNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/games/MISSING", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "GAME_NOT_FOUND")
}

func TestListGames(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame(t)

	rr := ts.request(http.MethodGet, "/api/v1/games", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var list response.GameListView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Equal(t, []string{g.ID}, list.Games)
}

func TestRevealCell(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame(t)

	body := map[string]int{"row": 0, "col": 0}
	rr := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/games/%s/reveal", g.ID), body)
	require.Equal(t, http.StatusOK, rr.Code)

	var updated response.GameView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "playing", updated.State)
	assert.Equal(t, response.CellStateRevealed, updated.Cells[0][0].State)
	assert.Equal(t, 0, updated.Cells[0][0].Count)
}

func TestRevealMine(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame(t)

	body := map[string]int{"row": 2, "col": 2}
	rr := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/games/%s/reveal", g.ID), body)
	require.Equal(t, http.StatusOK, rr.Code)

	var updated response.GameView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "lost", updated.State)
	require.NotNil(t, updated.HitMine)

	// Mines are exposed once the game is over
	assert.True(t, updated.Cells[2][2].Mine)
}

func TestRevealValidationErrors(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame(t)
	path := fmt.Sprintf("/api/v1/games/%s/reveal", g.ID)

	rr := ts.request(http.MethodPost, path, map[string]int{"row": 9, "col": 0})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "CELL_OUT_OF_BOUNDS")

	rr = ts.request(http.MethodPost, path, map[string]int{"row": 0, "col": 0})
	require.Equal(t, http.StatusOK, rr.Code)
	rr = ts.request(http.MethodPost, path, map[string]int{"row": 0, "col": 0})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "CELL_ALREADY_PLAYED")
}

func TestFlagAndUnflag(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame(t)

	body := map[string]int{"row": 0, "col": 1}
	rr := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/games/%s/flag", g.ID), body)
	require.Equal(t, http.StatusOK, rr.Code)

	var updated response.GameView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, response.CellStateFlagged, updated.Cells[0][1].State)
	assert.Equal(t, 0, updated.MinesRemaining)

	rr = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/games/%s/unflag", g.ID), body)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, response.CellStateHidden, updated.Cells[0][1].State)

	rr = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/games/%s/unflag", g.ID), body)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "CELL_NOT_FLAGGED")
}

func TestKnowledge(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame(t)

	body := map[string]int{"row": 0, "col": 0}
	rr := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/games/%s/reveal", g.ID), body)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, fmt.Sprintf("/api/v1/games/%s/knowledge", g.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var kv response.KnowledgeView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &kv))
	assert.Len(t, kv.MovesMade, 1)
	// The zero-count reveal proves (0,0) and its neighbors safe
	assert.Len(t, kv.Safes, 4)
	assert.Empty(t, kv.Mines)
}

func TestSolverStep(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame(t)

	rr := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/games/%s/solver/step", g.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var sv response.SolverView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sv))
	require.Len(t, sv.Actions, 1)
	assert.Equal(t, "reveal", string(sv.Actions[0].Type))
	assert.Equal(t, "random", string(sv.Actions[0].Kind))
}

func TestSolverAutoplay(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame(t)

	rr := ts.request(http.MethodPost, fmt.Sprintf("/api/v1/games/%s/solver/autoplay", g.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var sv response.SolverView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sv))
	assert.Equal(t, "won", sv.Game.State)
	assert.NotEmpty(t, sv.Actions)

	// Step after completion conflicts
	rr = ts.request(http.MethodPost, fmt.Sprintf("/api/v1/games/%s/solver/step", g.ID), nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "GAME_COMPLETE")
}

func TestDeleteGame(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame(t)

	rr := ts.request(http.MethodDelete, fmt.Sprintf("/api/v1/games/%s", g.ID), nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, fmt.Sprintf("/api/v1/games/%s", g.ID), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInvalidRequestBody(t *testing.T) {
	ts := newTestServer(t)
	g := ts.createGame(t)

	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/api/v1/games/%s/reveal", g.ID), bytes.NewBufferString("not json"))
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")
}
