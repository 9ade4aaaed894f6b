package storage

import (
	"context"

	"github.com/tomhutch/minesweeper-go/internal/model"
)

// Storage is the session registry for players and in-flight games. It is an
// in-process store, not durable persistence: a game lives exactly as long as
// the host process that created it.
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
}
