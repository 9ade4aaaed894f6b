package cli

import (
	"fmt"
	"strings"

	"github.com/tomhutch/minesweeper-go/internal/model"
)

// RenderPlayerBoard formats a player board as a text grid with coordinate
// headers. Hidden tiles show as '#', flags as 'F', revealed tiles as their
// solution symbol.
func RenderPlayerBoard(board model.PlayerBoard) string {
	return renderGrid(board.XSize(), board.YSize(), func(c model.Coordinate) string {
		switch tile := board.At(c); tile.Kind {
		case model.TileHidden:
			return "#"
		case model.TileFlagged:
			return "F"
		case model.TileRevealedFlagged:
			return "F"
		default:
			return tile.Solution.String()
		}
	})
}

// RenderSolutionBoard formats a solution board as a text grid
func RenderSolutionBoard(board model.SolutionBoard) string {
	return renderGrid(board.XSize(), board.YSize(), func(c model.Coordinate) string {
		return board.At(c).String()
	})
}

// RenderGame formats a game's player board plus a status line
func RenderGame(game *model.Game) string {
	var b strings.Builder
	b.WriteString(RenderPlayerBoard(game.Board))
	switch game.Status {
	case model.GameStatusWon:
		b.WriteString("You won!\n")
	case model.GameStatusLost:
		b.WriteString("Boom! You lost.\n")
	}
	return b.String()
}

func renderGrid(xsize, ysize int, symbol func(model.Coordinate) string) string {
	var b strings.Builder

	b.WriteString("   ")
	for x := 0; x < xsize; x++ {
		fmt.Fprintf(&b, " %d", x)
	}
	b.WriteString("\n")

	for y := 0; y < ysize; y++ {
		fmt.Fprintf(&b, " %d ", y)
		for x := 0; x < xsize; x++ {
			b.WriteString(" " + symbol(model.Coordinate{X: x, Y: y}))
		}
		b.WriteString("\n")
	}

	return b.String()
}
