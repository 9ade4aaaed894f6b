package reveal

import (
	"log/slog"

	"github.com/tomhutch/minesweeper-go/internal/model"
)

// Service implements the reveal transitions: the single-tile state machine,
// the flood fill that expands empty regions, and the bulk mine sweep used on
// loss. All operations consume the immutable solution board plus the current
// player board and return a fresh player board; nothing is mutated in place.
type Service struct {
	logger *slog.Logger
}

// New creates a new reveal engine
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Reveal opens the tile at pos and, when its solution is Empty, flood-fills
// outward through the connected empty region and its hint border.
//
// Per-tile transitions: Hidden becomes Revealed, Flagged becomes
// RevealedNFlagged keeping the flagger, and already-settled tiles are left
// alone. Mine and hint tiles never propagate.
//
// The fill runs over an explicit worklist rather than call recursion. A tile
// leaves the covered states at most once and settled tiles are skipped, so
// the settled set only grows and the loop visits at most xsize*ysize tiles.
func (s *Service) Reveal(solution model.SolutionBoard, pos model.Coordinate, board model.PlayerBoard) model.PlayerBoard {
	worklist := []model.Coordinate{pos}
	opened := 0

	for len(worklist) > 0 {
		c := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		tile := board.At(c)
		if tile.IsSettled() {
			continue
		}

		sol := solution.At(c)
		if tile.Kind == model.TileFlagged {
			board = board.With(c, model.RevealedFlaggedTile(sol, tile.FlaggedBy))
		} else {
			board = board.With(c, model.RevealedTile(sol))
		}
		opened++

		if sol == model.SolutionEmpty {
			worklist = append(worklist, solution.Neighbors(c)...)
		}
	}

	s.logger.Debug("reveal applied",
		slog.String("pos", pos.String()),
		slog.Int("tiles_opened", opened),
	)

	return board
}

// RevealAllMines exposes every mine on the board: tiles currently flagged
// become RevealedNFlagged with their flagger preserved, all others become
// Revealed. Intended as the loss-condition sweep; the host decides when to
// invoke it, Reveal never calls it on its own.
func (s *Service) RevealAllMines(solution model.SolutionBoard, board model.PlayerBoard) model.PlayerBoard {
	for _, c := range solution.Coordinates() {
		if solution.At(c) != model.SolutionMine {
			continue
		}
		if tile := board.At(c); tile.Kind == model.TileFlagged {
			board = board.With(c, model.RevealedFlaggedTile(model.SolutionMine, tile.FlaggedBy))
		} else {
			board = board.With(c, model.RevealedTile(model.SolutionMine))
		}
	}
	return board
}

// Interface for dependency injection
type ServiceInterface interface {
	Reveal(solution model.SolutionBoard, pos model.Coordinate, board model.PlayerBoard) model.PlayerBoard
	RevealAllMines(solution model.SolutionBoard, board model.PlayerBoard) model.PlayerBoard
}

var _ ServiceInterface = (*Service)(nil)
