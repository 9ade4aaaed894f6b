package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Game errors
	ErrGameNotFound      = errors.New("game not found")
	ErrGameOver          = errors.New("game is already over")
	ErrNotInGame         = errors.New("player is not part of this game")
	ErrNoPlayers         = errors.New("game needs at least one player")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrInvalidAction     = errors.New("invalid action kind")
	ErrOutOfBounds       = errors.New("coordinate is outside the board")

	// Flag errors
	ErrTileNotHidden  = errors.New("cannot flag a non-hidden tile")
	ErrTileNotFlagged = errors.New("tile is not flagged")
	ErrNotFlagOwner   = errors.New("flag belongs to another player")

	// Layout errors
	ErrEmptyLayout   = errors.New("mine layout is empty")
	ErrRaggedLayout  = errors.New("mine layout rows have unequal lengths")
	ErrInvalidLayout = errors.New("mine layout cells must be 0 or 1")
)
