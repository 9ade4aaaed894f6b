package model

import (
	"fmt"
	"strconv"
)

// SolutionTile is one cell of the answer key: a mine, an empty cell with no
// mined neighbors, or a hint carrying its neighboring-mine count (1-8).
// The encoding follows the usual minesweeper convention: negative for a
// mine, zero for empty, positive for a hint.
type SolutionTile int8

const (
	SolutionMine  SolutionTile = -1
	SolutionEmpty SolutionTile = 0
)

// HintTile returns the solution tile for a cell with n neighboring mines.
// n must be in [1,8]; a count of 0 is SolutionEmpty, never a hint.
func HintTile(n int) SolutionTile {
	if n < 1 || n > 8 {
		panic(fmt.Sprintf("model: hint count %d out of range [1,8]", n))
	}
	return SolutionTile(n)
}

// IsHint returns true for hint tiles (count 1-8)
func (t SolutionTile) IsHint() bool {
	return t >= 1 && t <= 8
}

// HintCount returns the neighboring-mine count of a hint tile, or 0 for
// empty and mine tiles
func (t SolutionTile) HintCount() int {
	if !t.IsHint() {
		return 0
	}
	return int(t)
}

func (t SolutionTile) String() string {
	switch {
	case t == SolutionMine:
		return "*"
	case t == SolutionEmpty:
		return "."
	case t.IsHint():
		return strconv.Itoa(int(t))
	default:
		return "!"
	}
}

// PlayerTileKind is the state tag of a player-visible tile
type PlayerTileKind string

const (
	TileHidden          PlayerTileKind = "hidden"
	TileRevealed        PlayerTileKind = "revealed"
	TileFlagged         PlayerTileKind = "flagged"
	TileRevealedFlagged PlayerTileKind = "revealed_flagged"
)

// PlayerTile is one cell of a player board: the kind tag plus the payload
// for the kinds that carry one. Revealed kinds carry the solution tile
// exposed at that cell; flagged kinds record which player planted the flag.
// The zero payload fields are unused for kinds that do not carry them, which
// keeps the type comparable for tests and map keys.
type PlayerTile struct {
	Kind      PlayerTileKind
	Solution  SolutionTile // set for TileRevealed and TileRevealedFlagged
	FlaggedBy PlayerID     // set for TileFlagged and TileRevealedFlagged
}

// HiddenTile is the initial state of every cell
func HiddenTile() PlayerTile {
	return PlayerTile{Kind: TileHidden}
}

// RevealedTile is a cell opened by a reveal, exposing its solution
func RevealedTile(solution SolutionTile) PlayerTile {
	return PlayerTile{Kind: TileRevealed, Solution: solution}
}

// FlaggedTile is a hidden cell marked suspect by a player
func FlaggedTile(by PlayerID) PlayerTile {
	return PlayerTile{Kind: TileFlagged, FlaggedBy: by}
}

// RevealedFlaggedTile is a cell that was flagged and then revealed; the flag
// attribution survives the reveal
func RevealedFlaggedTile(solution SolutionTile, by PlayerID) PlayerTile {
	return PlayerTile{Kind: TileRevealedFlagged, Solution: solution, FlaggedBy: by}
}

// IsSettled returns true once a tile has been revealed; settled tiles never
// change again and stop flood-fill expansion
func (t PlayerTile) IsSettled() bool {
	return t.Kind == TileRevealed || t.Kind == TileRevealedFlagged
}

// IsCovered returns true while a tile's solution is not exposed
func (t PlayerTile) IsCovered() bool {
	return !t.IsSettled()
}

func (t PlayerTile) String() string {
	switch t.Kind {
	case TileHidden:
		return "#"
	case TileFlagged:
		return "F"
	case TileRevealedFlagged:
		return "F" + t.Solution.String()
	case TileRevealed:
		return t.Solution.String()
	default:
		return "?"
	}
}
