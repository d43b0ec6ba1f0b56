package solver_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/minesweeper-go/internal/dependencies/mocks"
	"github.com/mcoot/minesweeper-go/internal/model"
	"github.com/mcoot/minesweeper-go/internal/services/game"
	"github.com/mcoot/minesweeper-go/internal/services/solver"
	"github.com/mcoot/minesweeper-go/internal/storage/memory"
	"github.com/mcoot/minesweeper-go/internal/testutil"
)

type SolverSuite struct {
	suite.Suite

	ctx        context.Context
	random     *mocks.MockRandom
	controller *game.Controller
	service    *solver.Service
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}

func (s *SolverSuite) SetupTest() {
	s.ctx = context.Background()
	s.random = mocks.NewMockRandom()
	logger := testutil.NopLogger()
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	s.controller = game.NewController(memory.New(), clk, s.random, logger)
	s.service = solver.NewService(s.controller, solver.NewKnowledgeStrategy(), logger)
}

// newGame creates a 3x3 game with a single mine at the given cell. With the
// mock random's queues drained, random moves pick the first candidate in
// row-major order.
func (s *SolverSuite) newGame(mine model.Cell) *model.Game {
	s.random.QueueIntn(mine.Row, mine.Col)
	s.random.QueueString("GAME00000001")
	g, err := s.controller.CreateGame(s.ctx, 3, 3, 1)
	s.Require().NoError(err)
	return g
}

func (s *SolverSuite) TestStepFallsBackToRandomMove() {
	g := s.newGame(model.Cell{Row: 2, Col: 2})

	g, actions, err := s.service.Step(s.ctx, g.ID)
	s.Require().NoError(err)

	s.Require().Len(actions, 1)
	s.Equal(solver.ActionReveal, actions[0].Type)
	s.Equal(solver.MoveKindRandom, actions[0].Kind)
	s.Equal(model.Cell{Row: 0, Col: 0}, actions[0].Cell)
	s.Equal(0, actions[0].Count)
	s.Equal(model.GameStatePlaying, g.State)
}

func (s *SolverSuite) TestStepPrefersSafeMove() {
	g := s.newGame(model.Cell{Row: 2, Col: 2})

	// The first reveal is a guess; its zero count proves neighbors safe
	_, _, err := s.service.Step(s.ctx, g.ID)
	s.Require().NoError(err)

	_, actions, err := s.service.Step(s.ctx, g.ID)
	s.Require().NoError(err)

	s.Require().Len(actions, 1)
	s.Equal(solver.MoveKindSafe, actions[0].Kind)
	s.Equal(model.Cell{Row: 0, Col: 1}, actions[0].Cell)
}

func (s *SolverSuite) TestStepFlagsInferredMines() {
	g := s.newGame(model.Cell{Row: 2, Col: 2})

	// Reveal (0,0) through (1,0); revealing (1,1) then pins (2,2) as the
	// only unknown neighbor of a count-1 cell
	var actions []solver.Action
	var err error
	for i := 0; i < 5; i++ {
		g, actions, err = s.service.Step(s.ctx, g.ID)
		s.Require().NoError(err)
	}

	s.Require().Len(actions, 2)
	s.Equal(solver.ActionReveal, actions[0].Type)
	s.Equal(model.Cell{Row: 1, Col: 1}, actions[0].Cell)
	s.Equal(1, actions[0].Count)
	s.Equal(solver.ActionFlag, actions[1].Type)
	s.Equal(model.Cell{Row: 2, Col: 2}, actions[1].Cell)

	// Flagging the lone mine wins the game
	s.Equal(model.GameStateWon, g.State)
}

func (s *SolverSuite) TestStepOnCompleteGame() {
	g := s.newGame(model.Cell{Row: 0, Col: 0})

	// First random move lands on the mine
	g, actions, err := s.service.Step(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Require().Len(actions, 1)
	s.Equal(model.GameStateLost, g.State)

	_, _, err = s.service.Step(s.ctx, g.ID)
	s.ErrorIs(err, model.ErrGameComplete)
}

func (s *SolverSuite) TestAutoplayWinsOpenBoard() {
	g := s.newGame(model.Cell{Row: 2, Col: 2})

	g, actions, err := s.service.Autoplay(s.ctx, g.ID)
	s.Require().NoError(err)

	s.Equal(model.GameStateWon, g.State)

	// Only the final flag action touches the mine
	for _, a := range actions {
		if a.Type == solver.ActionReveal {
			s.NotEqual(model.Cell{Row: 2, Col: 2}, a.Cell)
		}
	}
	last := actions[len(actions)-1]
	s.Equal(solver.ActionFlag, last.Type)
	s.Equal(model.GameStateWon, last.State)
}

func (s *SolverSuite) TestAutoplayLossStops() {
	g := s.newGame(model.Cell{Row: 0, Col: 0})

	g, actions, err := s.service.Autoplay(s.ctx, g.ID)
	s.Require().NoError(err)

	s.Equal(model.GameStateLost, g.State)
	s.Require().Len(actions, 1)
	s.Equal(model.GameStateLost, actions[0].State)
}

func (s *SolverSuite) TestRandomStrategyIgnoresSafes() {
	g := s.newGame(model.Cell{Row: 2, Col: 2})
	svc := solver.NewService(s.controller, solver.NewRandomStrategy(), testutil.NopLogger())

	_, _, err := svc.Step(s.ctx, g.ID)
	s.Require().NoError(err)

	_, actions, err := svc.Step(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Require().NotEmpty(actions)
	s.Equal(solver.MoveKindRandom, actions[0].Kind)
}
