package hint

import (
	"testing"

	"github.com/maksim-shila/sudoku-solver/internal/domain"
)

func TestHintFindsSoleCandidate(t *testing.T) {
	var g domain.Grid
	// Row 0 holds 1..8; (0,8) can only be 9.
	for c := 0; c < 8; c++ {
		g[0][c] = uint8(c + 1)
	}
	b := domain.FromGrid(g)
	h, ok := NewStrategies().Hint(b)
	if !ok {
		t.Fatal("no hint found")
	}
	if h.Value != 9 {
		t.Fatalf("hint value = %d, want 9", h.Value)
	}
	if len(h.Cells) != 1 || h.Cells[0] != (domain.CellCoord{Row: 0, Col: 8}) {
		t.Fatalf("hint cells = %v, want (0,8)", h.Cells)
	}
	if h.Message == "" {
		t.Fatal("hint has no message")
	}
}

func TestHintLeavesBoardUntouched(t *testing.T) {
	var g domain.Grid
	for c := 0; c < 8; c++ {
		g[0][c] = uint8(c + 1)
	}
	b := domain.FromGrid(g)
	NewStrategies().Hint(b)
	if b.Cell(0, 8).HasValue() {
		t.Fatal("hinting mutated the input board")
	}
	if b.Grid() != g {
		t.Fatal("input board values changed")
	}
}

func TestNoHintOnFullBoard(t *testing.T) {
	solved := domain.Grid{
		{5, 3, 4, 6, 7, 8, 9, 1, 2},
		{6, 7, 2, 1, 9, 5, 3, 4, 8},
		{1, 9, 8, 3, 4, 2, 5, 6, 7},
		{8, 5, 9, 7, 6, 1, 4, 2, 3},
		{4, 2, 6, 8, 5, 3, 7, 9, 1},
		{7, 1, 3, 9, 2, 4, 8, 5, 6},
		{9, 6, 1, 5, 3, 7, 2, 8, 4},
		{2, 8, 7, 4, 1, 9, 6, 3, 5},
		{3, 4, 5, 2, 8, 6, 1, 7, 9},
	}
	if _, ok := NewStrategies().Hint(domain.FromGrid(solved)); ok {
		t.Fatal("hint produced on a completed board")
	}
}
