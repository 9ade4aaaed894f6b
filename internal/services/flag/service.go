package flag

import (
	"log/slog"

	"github.com/tomhutch/minesweeper-go/internal/model"
)

// Service implements the flag and unflag transitions with their ownership
// rules. Like the reveal engine it never mutates a board: a successful
// operation returns a fresh player board, a rejected one returns an error
// the caller must branch on.
type Service struct {
	logger *slog.Logger
}

// New creates a new flag engine
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Flag marks the tile at pos as suspected by the given player. Only hidden
// tiles can be flagged; anything else is rejected with ErrTileNotHidden.
func (s *Service) Flag(by model.Player, pos model.Coordinate, board model.PlayerBoard) (model.PlayerBoard, error) {
	if board.At(pos).Kind != model.TileHidden {
		return model.PlayerBoard{}, model.ErrTileNotHidden
	}

	s.logger.Debug("tile flagged",
		slog.String("pos", pos.String()),
		slog.String("player_id", string(by.ID)),
	)

	return board.With(pos, model.FlaggedTile(by.ID)), nil
}

// Unflag removes a flag from the tile at pos.
//
// A flag on a hidden tile can only be removed by the player who planted it;
// the tile returns to Hidden. A flag on a revealed tile can be removed by
// anyone, leaving the tile plainly Revealed; there is no ownership check in
// that case, a quirk carried over from the original rules rather than
// corrected.
func (s *Service) Unflag(player model.Player, pos model.Coordinate, board model.PlayerBoard) (model.PlayerBoard, error) {
	tile := board.At(pos)

	switch tile.Kind {
	case model.TileFlagged:
		if tile.FlaggedBy != player.ID {
			return model.PlayerBoard{}, model.ErrNotFlagOwner
		}
		return board.With(pos, model.HiddenTile()), nil
	case model.TileRevealedFlagged:
		return board.With(pos, model.RevealedTile(tile.Solution)), nil
	default:
		return model.PlayerBoard{}, model.ErrTileNotFlagged
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	Flag(by model.Player, pos model.Coordinate, board model.PlayerBoard) (model.PlayerBoard, error)
	Unflag(player model.Player, pos model.Coordinate, board model.PlayerBoard) (model.PlayerBoard, error)
}

var _ ServiceInterface = (*Service)(nil)
