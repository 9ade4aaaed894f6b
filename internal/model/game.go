package model

import "time"

// GameID uniquely identifies a game session
type GameID string

// GameStatus represents the current phase of a game
type GameStatus string

const (
	GameStatusInProgress GameStatus = "in_progress"
	GameStatusWon        GameStatus = "won"
	GameStatusLost       GameStatus = "lost"
)

// Game is one minesweeper session. The mine and solution boards are fixed at
// creation and never change; Board is the only field with observable state
// change over the game's lifetime, and every update replaces it with a fresh
// PlayerBoard value.
type Game struct {
	ID         GameID
	Difficulty Difficulty // empty for games built from an explicit layout
	Status     GameStatus

	// Players allowed to act in this game (snapshot at creation)
	Players []PlayerID

	Mines    MineBoard
	Solution SolutionBoard
	Board    PlayerBoard

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOver returns true once the game has been won or lost
func (g *Game) IsOver() bool {
	return g.Status != GameStatusInProgress
}

// HasPlayer returns true if the given player is part of this game
func (g *Game) HasPlayer(id PlayerID) bool {
	for _, p := range g.Players {
		if p == id {
			return true
		}
	}
	return false
}

// MineCount returns the number of mines on the mine board
func (g *Game) MineCount() int {
	count := 0
	for _, c := range g.Mines.Coordinates() {
		if g.Mines.At(c) {
			count++
		}
	}
	return count
}

// CoveredCount returns the number of tiles whose solution is not exposed yet
func (g *Game) CoveredCount() int {
	count := 0
	for _, c := range g.Board.Coordinates() {
		if g.Board.At(c).IsCovered() {
			count++
		}
	}
	return count
}
