package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/minesweeper-go/internal/model"
	"github.com/mcoot/minesweeper-go/internal/services/solver"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: Complete game flow from creation to a win by flagging
func (s *IntegrationSuite) TestCompleteGameFlow() {
	// Setup: mine at (2,2), deterministic game ID
	s.app.MockRandom.QueueIntn(2, 2)
	s.app.MockRandom.QueueString("GAME01")

	// Step 1: Create a 3x3 game with a single mine
	g, err := s.app.GameController.CreateGame(s.ctx, 3, 3, 1)
	s.Require().NoError(err)
	s.Equal(model.GameID("GAME01"), g.ID)
	s.Equal(model.GameStatePlaying, g.State)

	// Step 2: Reveal the far corner; its zero count opens up the board
	g, err = s.app.GameController.Reveal(s.ctx, g.ID, model.Cell{Row: 0, Col: 0})
	s.Require().NoError(err)
	s.Equal(0, g.Revealed[model.Cell{Row: 0, Col: 0}])

	// Step 3: The agent now knows the revealed cell's neighbors are safe
	ag, err := s.app.GameController.Agent(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Contains(ag.Safes(), model.Cell{Row: 1, Col: 1})

	// Step 4: Let the solver finish the game
	g, actions, err := s.app.SolverService.Autoplay(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Equal(model.GameStateWon, g.State)
	s.NotEmpty(actions)

	// The solver never reveals the mine
	for _, a := range actions {
		if a.Type == solver.ActionReveal {
			s.NotEqual(model.Cell{Row: 2, Col: 2}, a.Cell)
		}
	}
}

// Test: Losing flow when a guess hits a mine
func (s *IntegrationSuite) TestLossFlow() {
	s.app.MockRandom.QueueIntn(0, 0)
	s.app.MockRandom.QueueString("GAME02")

	g, err := s.app.GameController.CreateGame(s.ctx, 3, 3, 1)
	s.Require().NoError(err)

	g, err = s.app.GameController.Reveal(s.ctx, g.ID, model.Cell{Row: 0, Col: 0})
	s.Require().NoError(err)
	s.Equal(model.GameStateLost, g.State)

	// No further moves are accepted
	_, err = s.app.GameController.Reveal(s.ctx, g.ID, model.Cell{Row: 1, Col: 1})
	s.ErrorIs(err, model.ErrGameComplete)
	_, _, err = s.app.SolverService.Step(s.ctx, g.ID)
	s.ErrorIs(err, model.ErrGameComplete)
}
