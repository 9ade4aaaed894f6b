// Package layout reads explicit mine layouts: text where each line is one
// board row and each cell is 0 (clear) or 1 (mine), either bare digits
// ("010") or whitespace-separated ("0 1 0"). Row count gives the board
// height, row length the width.
package layout

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/tomhutch/minesweeper-go/internal/model"
)

// Parse reads a mine layout from r into the row-major matrix the board
// factory expects. Blank lines and lines starting with '#' are skipped.
func Parse(r io.Reader) ([][]int, error) {
	var rows [][]int

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		row, err := parseRow(line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, model.ErrEmptyLayout
	}
	for _, row := range rows {
		if len(row) != len(rows[0]) {
			return nil, model.ErrRaggedLayout
		}
	}
	return rows, nil
}

// ParseFile reads a mine layout from the file at path
func ParseFile(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

func parseRow(line string) ([]int, error) {
	cells := strings.Fields(line)
	if len(cells) == 1 && len(cells[0]) > 1 {
		// Bare-digit form: split into single characters.
		cells = strings.Split(cells[0], "")
	}

	row := make([]int, 0, len(cells))
	for _, cell := range cells {
		switch cell {
		case "0":
			row = append(row, 0)
		case "1":
			row = append(row, 1)
		default:
			return nil, model.ErrInvalidLayout
		}
	}
	return row, nil
}
