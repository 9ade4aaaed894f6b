package boardgen

import (
	"log/slog"

	"github.com/tomhutch/minesweeper-go/internal/dependencies/random"
	"github.com/tomhutch/minesweeper-go/internal/model"
)

// Service builds the three board instantiations a game needs: the mine
// board, the solution board derived from it, and the all-hidden player board
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new board factory
func New(random random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: random,
		logger: logger,
	}
}

// MineBoardForGame builds a mine board for the given difficulty. Mine cells
// are the first entries of a uniformly random permutation of the full
// coordinate set, so the mine count is exact and no coordinate repeats.
func (s *Service) MineBoardForGame(d model.Difficulty) (model.MineBoard, error) {
	params, err := d.Params()
	if err != nil {
		return model.MineBoard{}, err
	}

	coords := model.GenerateCoordinates(params.XSize, params.YSize)
	perm := s.random.Perm(len(coords))

	mined := make(map[model.Coordinate]bool, params.MineCount)
	for _, i := range perm[:params.MineCount] {
		mined[coords[i]] = true
	}

	board := model.NewBoardFunc(params.XSize, params.YSize, func(c model.Coordinate) bool {
		return mined[c]
	})

	s.logger.Debug("generated mine board",
		slog.String("difficulty", string(d)),
		slog.Int("xsize", params.XSize),
		slog.Int("ysize", params.YSize),
		slog.Int("mine_count", params.MineCount),
	)

	return board, nil
}

// MineBoardFromRows builds a mine board from an explicit 0/1 matrix, row-major
// by y then x: a nonzero cell at (row, col) places a mine at coordinate
// (x=col, y=row). The board size is inferred from the matrix dimensions.
func (s *Service) MineBoardFromRows(rows [][]int) (model.MineBoard, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return model.MineBoard{}, model.ErrEmptyLayout
	}

	xsize := len(rows[0])
	for _, row := range rows {
		if len(row) != xsize {
			return model.MineBoard{}, model.ErrRaggedLayout
		}
	}

	board := model.NewBoardFunc(xsize, len(rows), func(c model.Coordinate) bool {
		return rows[c.Y][c.X] != 0
	})
	return board, nil
}

// SolutionBoard derives the answer key for a mine board: Mine where the mine
// board marks one, otherwise Empty when no neighbor is mined, otherwise a
// hint carrying the neighboring-mine count.
func (s *Service) SolutionBoard(mines model.MineBoard) model.SolutionBoard {
	return model.NewBoardFunc(mines.XSize(), mines.YSize(), func(c model.Coordinate) model.SolutionTile {
		if mines.At(c) {
			return model.SolutionMine
		}
		if n := countNeighboringMines(mines, c); n > 0 {
			return model.HintTile(n)
		}
		return model.SolutionEmpty
	})
}

// PlayerBoard builds the initial player board: every tile hidden
func (s *Service) PlayerBoard(xsize, ysize int) model.PlayerBoard {
	return model.NewBoard(xsize, ysize, model.HiddenTile())
}

// countNeighboringMines counts the mined cells among the neighbors of pos
func countNeighboringMines(mines model.MineBoard, pos model.Coordinate) int {
	count := 0
	for _, n := range mines.Neighbors(pos) {
		if mines.At(n) {
			count++
		}
	}
	return count
}

// Interface for dependency injection
type ServiceInterface interface {
	MineBoardForGame(d model.Difficulty) (model.MineBoard, error)
	MineBoardFromRows(rows [][]int) (model.MineBoard, error)
	SolutionBoard(mines model.MineBoard) model.SolutionBoard
	PlayerBoard(xsize, ysize int) model.PlayerBoard
}

var _ ServiceInterface = (*Service)(nil)
