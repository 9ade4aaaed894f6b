package model

// Difficulty selects a fixed board size and mine count
type Difficulty string

const (
	DifficultyEasy         Difficulty = "easy"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyExpert       Difficulty = "expert"
)

// DifficultyParams is one row of the difficulty table
type DifficultyParams struct {
	XSize     int
	YSize     int
	MineCount int
}

var difficultyTable = map[Difficulty]DifficultyParams{
	DifficultyEasy:         {XSize: 3, YSize: 3, MineCount: 2},
	DifficultyIntermediate: {XSize: 5, YSize: 5, MineCount: 4},
	DifficultyExpert:       {XSize: 7, YSize: 7, MineCount: 9},
}

// Params returns the board size and mine count for the difficulty
func (d Difficulty) Params() (DifficultyParams, error) {
	params, ok := difficultyTable[d]
	if !ok {
		return DifficultyParams{}, ErrInvalidDifficulty
	}
	return params, nil
}

// ParseDifficulty converts a user-supplied name into a Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if _, ok := difficultyTable[d]; !ok {
		return "", ErrInvalidDifficulty
	}
	return d, nil
}
