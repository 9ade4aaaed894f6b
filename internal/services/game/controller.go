package game

import (
	"context"
	"log/slog"

	"github.com/tomhutch/minesweeper-go/internal/dependencies/clock"
	"github.com/tomhutch/minesweeper-go/internal/dependencies/random"
	"github.com/tomhutch/minesweeper-go/internal/model"
	"github.com/tomhutch/minesweeper-go/internal/services/boardgen"
	"github.com/tomhutch/minesweeper-go/internal/services/flag"
	"github.com/tomhutch/minesweeper-go/internal/services/reveal"
	"github.com/tomhutch/minesweeper-go/internal/storage"
)

const gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Controller is the host collaborator around the rules engine: it owns game
// sessions, routes player actions to the reveal and flag engines, and decides
// the win/loss outcomes the engines deliberately leave to their caller.
type Controller struct {
	storage  storage.Storage
	boardgen *boardgen.Service
	reveal   *reveal.Service
	flag     *flag.Service
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger
}

// NewController creates a new game controller
func NewController(
	storage storage.Storage,
	boardgen *boardgen.Service,
	revealService *reveal.Service,
	flagService *flag.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:  storage,
		boardgen: boardgen,
		reveal:   revealService,
		flag:     flagService,
		clock:    clock,
		random:   random,
		logger:   logger,
	}
}

// CreateGame starts a new game at the given difficulty with randomly placed
// mines
func (c *Controller) CreateGame(ctx context.Context, players []model.PlayerID, difficulty model.Difficulty) (*model.Game, error) {
	mines, err := c.boardgen.MineBoardForGame(difficulty)
	if err != nil {
		return nil, err
	}
	return c.createGame(ctx, players, difficulty, mines)
}

// CreateGameFromLayout starts a new game from an explicit 0/1 mine matrix,
// row-major by y then x. Used for deterministic and scripted games.
func (c *Controller) CreateGameFromLayout(ctx context.Context, players []model.PlayerID, rows [][]int) (*model.Game, error) {
	mines, err := c.boardgen.MineBoardFromRows(rows)
	if err != nil {
		return nil, err
	}
	return c.createGame(ctx, players, "", mines)
}

func (c *Controller) createGame(ctx context.Context, players []model.PlayerID, difficulty model.Difficulty, mines model.MineBoard) (*model.Game, error) {
	if len(players) == 0 {
		return nil, model.ErrNoPlayers
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:         model.GameID(c.random.String(12, gameIDAlphabet)),
		Difficulty: difficulty,
		Status:     model.GameStatusInProgress,
		Players:    players,
		Mines:      mines,
		Solution:   c.boardgen.SolutionBoard(mines),
		Board:      c.boardgen.PlayerBoard(mines.XSize(), mines.YSize()),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.String("difficulty", string(difficulty)),
		slog.Int("player_count", len(players)),
		slog.Int("xsize", mines.XSize()),
		slog.Int("ysize", mines.YSize()),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// Apply routes a player action to the matching operation
func (c *Controller) Apply(ctx context.Context, gameID model.GameID, action model.Action) (*model.Game, error) {
	switch action.Kind {
	case model.ActionReveal:
		return c.Reveal(ctx, gameID, action.PlayerID, action.Pos)
	case model.ActionFlag:
		return c.Flag(ctx, gameID, action.PlayerID, action.Pos)
	case model.ActionUnflag:
		return c.Unflag(ctx, gameID, action.PlayerID, action.Pos)
	default:
		return nil, model.ErrInvalidAction
	}
}

// Reveal opens a tile for the player. Landing on a mine loses the game and
// sweeps every remaining mine open; revealing the last safe tile wins it.
func (c *Controller) Reveal(ctx context.Context, gameID model.GameID, playerID model.PlayerID, pos model.Coordinate) (*model.Game, error) {
	game, err := c.validateAction(ctx, gameID, playerID, pos)
	if err != nil {
		return nil, err
	}

	game.Board = c.reveal.Reveal(game.Solution, pos, game.Board)

	if game.Solution.At(pos) == model.SolutionMine {
		game.Status = model.GameStatusLost
		game.Board = c.reveal.RevealAllMines(game.Solution, game.Board)
		c.logger.Info("game lost",
			slog.String("game_id", string(gameID)),
			slog.String("pos", pos.String()),
		)
	} else if game.CoveredCount() == game.MineCount() {
		// Only mines remain covered: every safe tile is open.
		game.Status = model.GameStatusWon
		c.logger.Info("game won", slog.String("game_id", string(gameID)))
	}

	return c.saveGame(ctx, game)
}

// Flag marks a hidden tile as suspected by the player
func (c *Controller) Flag(ctx context.Context, gameID model.GameID, playerID model.PlayerID, pos model.Coordinate) (*model.Game, error) {
	game, err := c.validateAction(ctx, gameID, playerID, pos)
	if err != nil {
		return nil, err
	}

	player, err := c.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	board, err := c.flag.Flag(*player, pos, game.Board)
	if err != nil {
		return nil, err
	}

	game.Board = board
	return c.saveGame(ctx, game)
}

// Unflag removes the player's flag from a tile, subject to the flag engine's
// ownership rules
func (c *Controller) Unflag(ctx context.Context, gameID model.GameID, playerID model.PlayerID, pos model.Coordinate) (*model.Game, error) {
	game, err := c.validateAction(ctx, gameID, playerID, pos)
	if err != nil {
		return nil, err
	}

	player, err := c.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	board, err := c.flag.Unflag(*player, pos, game.Board)
	if err != nil {
		return nil, err
	}

	game.Board = board
	return c.saveGame(ctx, game)
}

// Forfeit gives up the game: it is marked lost and every mine is exposed
func (c *Controller) Forfeit(ctx context.Context, gameID model.GameID, playerID model.PlayerID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.IsOver() {
		return nil, model.ErrGameOver
	}
	if !game.HasPlayer(playerID) {
		return nil, model.ErrNotInGame
	}

	game.Status = model.GameStatusLost
	game.Board = c.reveal.RevealAllMines(game.Solution, game.Board)

	c.logger.Info("game forfeited",
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(playerID)),
	)

	return c.saveGame(ctx, game)
}

// validateAction fetches the game and checks the shared action preconditions
func (c *Controller) validateAction(ctx context.Context, gameID model.GameID, playerID model.PlayerID, pos model.Coordinate) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.IsOver() {
		return nil, model.ErrGameOver
	}
	if !game.HasPlayer(playerID) {
		return nil, model.ErrNotInGame
	}
	if !game.Board.WithinBounds(pos) {
		return nil, model.ErrOutOfBounds
	}
	return game, nil
}

func (c *Controller) saveGame(ctx context.Context, game *model.Game) (*model.Game, error) {
	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	return game, nil
}
