package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tomhutch/minesweeper-go/internal/model"
)

// FactorySuite drives a full game through the assembled application to check
// the services are wired together correctly.
type FactorySuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestFactorySuite(t *testing.T) {
	suite.Run(t, new(FactorySuite))
}

func (s *FactorySuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()

	player := &model.Player{ID: "alice", DisplayName: "Alice", CreatedAt: s.app.Clock.Now()}
	s.Require().NoError(s.app.Storage.SavePlayer(s.ctx, player))
}

func (s *FactorySuite) TestPlayFullGameToWin() {
	game, err := s.app.GameController.CreateGameFromLayout(s.ctx, []model.PlayerID{"alice"}, [][]int{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
	})
	s.Require().NoError(err)

	// Flag a mine first, then open every safe tile.
	game, err = s.app.GameController.Flag(s.ctx, game.ID, "alice", model.Coordinate{X: 0, Y: 1})
	s.Require().NoError(err)

	for _, pos := range []model.Coordinate{
		{X: 2, Y: 0},
		{X: 0, Y: 0},
		{X: 0, Y: 2},
		{X: 2, Y: 2},
	} {
		game, err = s.app.GameController.Reveal(s.ctx, game.ID, "alice", pos)
		s.Require().NoError(err)
	}

	s.Equal(model.GameStatusWon, game.Status)
	s.Equal(model.FlaggedTile("alice"), game.Board.At(model.Coordinate{X: 0, Y: 1}))

	stored, err := s.app.GameController.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.GameStatusWon, stored.Status)
}

func (s *FactorySuite) TestPlayFullGameToLoss() {
	game, err := s.app.GameController.CreateGameFromLayout(s.ctx, []model.PlayerID{"alice"}, [][]int{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
	})
	s.Require().NoError(err)

	game, err = s.app.GameController.Reveal(s.ctx, game.ID, "alice", model.Coordinate{X: 1, Y: 2})
	s.Require().NoError(err)

	s.Equal(model.GameStatusLost, game.Status)
	s.Equal(model.TileRevealed, game.Board.At(model.Coordinate{X: 0, Y: 1}).Kind)
}
