// Package hint suggests the next logical step by running the engine's
// deduction rules once against a scratch copy of the board.
package hint

import (
	"fmt"

	"github.com/maksim-shila/sudoku-solver/internal/domain"
	"github.com/maksim-shila/sudoku-solver/internal/strategy"
)

type Strategies struct{}

func NewStrategies() *Strategies { return &Strategies{} }

// Hint returns the first cell the rule chain can fill, in row-major
// order. The input board is never mutated.
func (h *Strategies) Hint(b *domain.Board) (domain.Hint, bool) {
	work := b.Clone()
	rules := strategy.Ordered()
	// Narrow every cell first so the group-aware rules see fresh
	// candidates, not the initial full sets.
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := work.Cell(r, c)
			if !cell.HasValue() {
				strategy.ByKnownCells(cell, work.Row(r), work.Column(c), work.Box(r, c))
			}
		}
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cell := work.Cell(r, c)
			if cell.HasValue() {
				continue
			}
			row, col, box := work.Row(r), work.Column(c), work.Box(r, c)
			for _, apply := range rules {
				apply(cell, row, col, box)
			}
			if !cell.HasValue() {
				continue
			}
			return domain.Hint{
				Message: fmt.Sprintf("only %d fits at row %d, column %d", cell.Value(), r+1, c+1),
				Cells:   []domain.CellCoord{{Row: r, Col: c}},
				Value:   cell.Value(),
			}, true
		}
	}
	return domain.Hint{}, false
}
