package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomhutch/minesweeper-go/internal/model"
)

func TestParseBareDigits(t *testing.T) {
	rows, err := Parse(strings.NewReader("000\n100\n010\n"))
	require.NoError(t, err)

	assert.Equal(t, [][]int{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
	}, rows)
}

func TestParseSpaceSeparated(t *testing.T) {
	rows, err := Parse(strings.NewReader("0 1\n1 0\n"))
	require.NoError(t, err)

	assert.Equal(t, [][]int{
		{0, 1},
		{1, 0},
	}, rows)
}

func TestParseSkipsBlanksAndComments(t *testing.T) {
	input := "# mines on the diagonal\n\n10\n\n# trailing comment\n01\n"

	rows, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, [][]int{
		{1, 0},
		{0, 1},
	}, rows)
}

func TestParseSingleCellRows(t *testing.T) {
	rows, err := Parse(strings.NewReader("1\n0\n"))
	require.NoError(t, err)

	assert.Equal(t, [][]int{{1}, {0}}, rows)
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, model.ErrEmptyLayout)

	_, err = Parse(strings.NewReader("# only comments\n\n"))
	assert.ErrorIs(t, err, model.ErrEmptyLayout)
}

func TestParseRagged(t *testing.T) {
	_, err := Parse(strings.NewReader("010\n01\n"))
	assert.ErrorIs(t, err, model.ErrRaggedLayout)
}

func TestParseInvalidCell(t *testing.T) {
	_, err := Parse(strings.NewReader("012\n"))
	assert.ErrorIs(t, err, model.ErrInvalidLayout)

	_, err = Parse(strings.NewReader("0 x 0\n"))
	assert.ErrorIs(t, err, model.ErrInvalidLayout)
}
