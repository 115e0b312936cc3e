// Package strategy holds the deduction rules the solving engine chains
// together. Each rule inspects one unfilled cell plus its row, column
// and box peer groups (each group includes the cell itself) and
// reports whether it changed the board. The rules are order-independent
// in correctness; the engine fixes their order for determinism.
package strategy

import "github.com/maksim-shila/sudoku-solver/internal/domain"

// Func is the shared rule contract.
type Func func(cell *domain.Cell, row, col, box []*domain.Cell) bool

// Ordered returns the deduction chain in application order.
func Ordered() []Func {
	return []Func{ByKnownCells, BySinglePossible, ByValuesRange}
}

// ByKnownCells narrows the cell's candidates by the values already
// assigned among its peers. Narrowing is monotone: values excluded by
// earlier deductions (or by a retracted guess) are never re-admitted.
func ByKnownCells(cell *domain.Cell, row, col, box []*domain.Cell) bool {
	if cell.HasValue() {
		return false
	}
	var seen domain.ValueSet
	for _, group := range [3][]*domain.Cell{row, col, box} {
		for _, p := range group {
			if p.HasValue() {
				seen = seen.Add(p.Value())
			}
		}
	}
	next := cell.Candidates() &^ seen
	if next == cell.Candidates() {
		return false
	}
	cell.SetCandidates(next)
	return true
}

// BySinglePossible fills the cell when only one candidate remains.
func BySinglePossible(cell *domain.Cell, row, col, box []*domain.Cell) bool {
	if cell.HasValue() {
		return false
	}
	v, ok := cell.Candidates().Single()
	if !ok {
		return false
	}
	cell.Fill(v)
	return true
}

// ByValuesRange fills the cell when one of its candidates fits nowhere
// else in some peer group (a hidden single).
func ByValuesRange(cell *domain.Cell, row, col, box []*domain.Cell) bool {
	if cell.HasValue() {
		return false
	}
	for _, group := range [3][]*domain.Cell{row, col, box} {
		for _, v := range cell.Candidates().Values() {
			unique := true
			for _, p := range group {
				if p == cell || p.HasValue() {
					continue
				}
				if p.Candidates().Has(v) {
					unique = false
					break
				}
			}
			if unique {
				cell.Fill(v)
				return true
			}
		}
	}
	return false
}

// BySquareIntersection applies pointing eliminations: when every place
// a value can go inside the cell's box lies on the cell's row (or
// column), that value is removed from the rest of the row (or column).
// Unlike the rules above it writes to peer candidates, so the engine
// runs it only as a fallback when regular passes stall.
func BySquareIntersection(cell *domain.Cell, row, col, box []*domain.Cell) bool {
	if cell.HasValue() {
		return false
	}
	changed := false
	for v := uint8(1); v <= 9; v++ {
		present := false
		inRow, inCol := true, true
		for _, p := range box {
			if p.HasValue() || !p.Candidates().Has(v) {
				continue
			}
			present = true
			if p.Row() != cell.Row() {
				inRow = false
			}
			if p.Col() != cell.Col() {
				inCol = false
			}
		}
		if !present {
			continue
		}
		if inRow && eliminateOutsideBox(row, cell, v) {
			changed = true
		}
		if inCol && eliminateOutsideBox(col, cell, v) {
			changed = true
		}
	}
	return changed
}

func eliminateOutsideBox(group []*domain.Cell, cell *domain.Cell, v uint8) bool {
	changed := false
	for _, p := range group {
		if p.HasValue() || !p.Candidates().Has(v) {
			continue
		}
		if p.Row()/3 == cell.Row()/3 && p.Col()/3 == cell.Col()/3 {
			continue
		}
		p.SetCandidates(p.Candidates().Remove(v))
		changed = true
	}
	return changed
}
