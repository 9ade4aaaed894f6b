package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHintTileBounds(t *testing.T) {
	for n := 1; n <= 8; n++ {
		tile := HintTile(n)
		assert.True(t, tile.IsHint())
		assert.Equal(t, n, tile.HintCount())
	}

	assert.Panics(t, func() { HintTile(0) })
	assert.Panics(t, func() { HintTile(9) })
}

func TestSolutionTileString(t *testing.T) {
	assert.Equal(t, "*", SolutionMine.String())
	assert.Equal(t, ".", SolutionEmpty.String())
	assert.Equal(t, "3", HintTile(3).String())
}

func TestPlayerTileSettled(t *testing.T) {
	tests := []struct {
		name    string
		tile    PlayerTile
		settled bool
	}{
		{"hidden", HiddenTile(), false},
		{"flagged", FlaggedTile("p1"), false},
		{"revealed", RevealedTile(SolutionEmpty), true},
		{"revealed flagged", RevealedFlaggedTile(HintTile(2), "p1"), true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.settled, test.tile.IsSettled())
			assert.Equal(t, !test.settled, test.tile.IsCovered())
		})
	}
}

func TestFlaggedTileRecordsOwner(t *testing.T) {
	tile := FlaggedTile("alice")
	assert.Equal(t, TileFlagged, tile.Kind)
	assert.Equal(t, PlayerID("alice"), tile.FlaggedBy)

	revealed := RevealedFlaggedTile(SolutionMine, "alice")
	assert.Equal(t, TileRevealedFlagged, revealed.Kind)
	assert.Equal(t, SolutionMine, revealed.Solution)
	assert.Equal(t, PlayerID("alice"), revealed.FlaggedBy)
}
