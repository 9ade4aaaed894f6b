package model

import "fmt"

// Coordinate identifies a cell on a board
type Coordinate struct {
	X int // 0-indexed from the left, growing rightward
	Y int // 0-indexed from the top, growing downward
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
