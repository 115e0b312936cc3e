// Package validator recomputes cell validity flags by duplicate
// detection within rows, columns and boxes. It reads assigned values
// only and writes validity flags only; candidates are untouched, and
// repeated application yields the same flags.
package validator

import "github.com/maksim-shila/sudoku-solver/internal/domain"

type Flagger struct{}

func New() *Flagger { return &Flagger{} }

// Validate resets every validity flag, then flags every cell whose
// value occurs more than once in its row, column or box. All cells of
// a duplicate group are flagged, not just the later occurrence.
func (v *Flagger) Validate(b *domain.Board) (bool, []domain.CellCoord) {
	for _, c := range b.Cells() {
		c.SetValid(true)
	}
	conf := make([]domain.CellCoord, 0, 8)
	flag := func(group []*domain.Cell) {
		var count [10]int
		for _, c := range group {
			if c.HasValue() {
				count[c.Value()]++
			}
		}
		for _, c := range group {
			if !c.HasValue() || count[c.Value()] < 2 || !c.IsValid() {
				continue
			}
			c.SetValid(false)
			conf = append(conf, domain.CellCoord{Row: c.Row(), Col: c.Col()})
		}
	}
	for r := 0; r < 9; r++ {
		flag(b.Row(r))
	}
	for c := 0; c < 9; c++ {
		flag(b.Column(c))
	}
	for br := 0; br < 9; br += 3 {
		for bc := 0; bc < 9; bc += 3 {
			flag(b.Box(br, bc))
		}
	}
	return len(conf) == 0, conf
}

// IsValid reports whether no cell is currently flagged invalid.
func IsValid(b *domain.Board) bool {
	for _, c := range b.Cells() {
		if !c.IsValid() {
			return false
		}
	}
	return true
}
