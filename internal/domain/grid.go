package domain

import (
	"fmt"
	"strings"
)

// Grid is the in-memory wire form of a board: assigned values with
// 0 for unfilled cells.
type Grid [9][9]uint8

// ParseGrid reads a puzzle from text. Accepted digits are 1-9; '0',
// '.' and '_' mark empty cells; whitespace and grid decoration
// characters are ignored. Exactly 81 cells are required.
func ParseGrid(s string) (Grid, error) {
	var g Grid
	i := 0
	for _, ch := range s {
		var v uint8
		switch {
		case ch >= '1' && ch <= '9':
			v = uint8(ch - '0')
		case ch == '0' || ch == '.' || ch == '_':
			v = 0
		case strings.ContainsRune(" \t\r\n|+-", ch):
			continue
		default:
			return Grid{}, fmt.Errorf("unexpected character %q in puzzle", ch)
		}
		if i >= 81 {
			return Grid{}, fmt.Errorf("puzzle has more than 81 cells")
		}
		g[i/9][i%9] = v
		i++
	}
	if i != 81 {
		return Grid{}, fmt.Errorf("puzzle has %d cells, want 81", i)
	}
	return g, nil
}

// String renders the grid with box separators, '.' for empty cells.
func (g Grid) String() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c > 0 && c%3 == 0 {
				sb.WriteString("| ")
			}
			if g[r][c] == 0 {
				sb.WriteString(". ")
			} else {
				fmt.Fprintf(&sb, "%d ", g[r][c])
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Givens counts the assigned cells.
func (g Grid) Givens() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}
