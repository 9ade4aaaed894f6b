package model

import "fmt"

// Board is a finite rectangular grid holding one tile of type T per
// coordinate. The mapping is total: every coordinate with 0 <= x < xsize and
// 0 <= y < ysize has a tile, and no other coordinate does.
//
// Boards are immutable values. With returns a fresh board and never touches
// the receiver, so callers may hold on to earlier snapshots (useful for undo
// or replay outside this package).
type Board[T any] struct {
	xsize int
	ysize int
	tiles []T // row-major: tiles[y*xsize+x]
}

// neighborOffsets is the fixed enumeration order for the 8 surrounding
// cells, row by row, top-left first.
var neighborOffsets = [8]Coordinate{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// NewBoard creates a board of the given size with every tile set to fill
func NewBoard[T any](xsize, ysize int, fill T) Board[T] {
	if xsize <= 0 || ysize <= 0 {
		panic(fmt.Sprintf("model: invalid board size %dx%d", xsize, ysize))
	}
	tiles := make([]T, xsize*ysize)
	for i := range tiles {
		tiles[i] = fill
	}
	return Board[T]{xsize: xsize, ysize: ysize, tiles: tiles}
}

// NewBoardFunc creates a board whose tile at each coordinate is produced by f
func NewBoardFunc[T any](xsize, ysize int, f func(Coordinate) T) Board[T] {
	if xsize <= 0 || ysize <= 0 {
		panic(fmt.Sprintf("model: invalid board size %dx%d", xsize, ysize))
	}
	tiles := make([]T, xsize*ysize)
	for y := 0; y < ysize; y++ {
		for x := 0; x < xsize; x++ {
			tiles[y*xsize+x] = f(Coordinate{X: x, Y: y})
		}
	}
	return Board[T]{xsize: xsize, ysize: ysize, tiles: tiles}
}

// XSize returns the board width
func (b Board[T]) XSize() int {
	return b.xsize
}

// YSize returns the board height
func (b Board[T]) YSize() int {
	return b.ysize
}

// WithinBounds returns true if the coordinate is inside the grid
func (b Board[T]) WithinBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < b.xsize && c.Y >= 0 && c.Y < b.ysize
}

// At returns the tile at the given coordinate. Looking up a coordinate
// outside the grid is a caller bug and panics; every in-tree caller works
// from Coordinates or Neighbors, which are bounds-safe by construction.
func (b Board[T]) At(c Coordinate) T {
	if !b.WithinBounds(c) {
		panic(fmt.Sprintf("model: coordinate %s out of range of %dx%d board", c, b.xsize, b.ysize))
	}
	return b.tiles[c.Y*b.xsize+c.X]
}

// With returns a new board equal to b except for the tile at c
func (b Board[T]) With(c Coordinate, tile T) Board[T] {
	if !b.WithinBounds(c) {
		panic(fmt.Sprintf("model: coordinate %s out of range of %dx%d board", c, b.xsize, b.ysize))
	}
	tiles := make([]T, len(b.tiles))
	copy(tiles, b.tiles)
	tiles[c.Y*b.xsize+c.X] = tile
	return Board[T]{xsize: b.xsize, ysize: b.ysize, tiles: tiles}
}

// Neighbors returns the up-to-8 in-bounds coordinates adjacent to c, in a
// deterministic order. Interior cells have 8 neighbors, edge cells 5,
// corner cells 3.
func (b Board[T]) Neighbors(c Coordinate) []Coordinate {
	neighbors := make([]Coordinate, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coordinate{X: c.X + d.X, Y: c.Y + d.Y}
		if b.WithinBounds(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// Coordinates returns every coordinate of the grid, row-major from the
// top-left. The result is the full key set of the board's tile mapping.
func (b Board[T]) Coordinates() []Coordinate {
	return GenerateCoordinates(b.xsize, b.ysize)
}

// GenerateCoordinates produces the ordered coordinate set for a board of the
// given size, one entry per (x, y) with 0 <= x < xsize and 0 <= y < ysize
func GenerateCoordinates(xsize, ysize int) []Coordinate {
	coords := make([]Coordinate, 0, xsize*ysize)
	for y := 0; y < ysize; y++ {
		for x := 0; x < xsize; x++ {
			coords = append(coords, Coordinate{X: x, Y: y})
		}
	}
	return coords
}

// MineBoard marks which cells hold mines
type MineBoard = Board[bool]

// SolutionBoard is the derived answer key for a mine board
type SolutionBoard = Board[SolutionTile]

// PlayerBoard is the player-visible state of a game in progress
type PlayerBoard = Board[PlayerTile]
