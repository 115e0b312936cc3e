// Package solver holds the direct backtracking solver used where the
// step-by-step engine is not wanted: uniqueness checks during puzzle
// generation and batch solving without observer throttling.
package solver

import (
	"context"
	"errors"
	"time"

	"github.com/maksim-shila/sudoku-solver/internal/domain"
	"github.com/maksim-shila/sudoku-solver/internal/ports"
)

var ErrUnsolvable = errors.New("grid is unsolvable or search was canceled")

// Backtracking is a depth-first solver over incrementally maintained
// row/column/box masks.
type Backtracking struct{}

func NewBacktracking() *Backtracking { return &Backtracking{} }

// masks track which values are taken per unit; boxes index as
// (r/3)*3 + c/3.
type masks struct {
	rows, cols, boxes [9]domain.ValueSet
}

func maskOf(g *domain.Grid) (masks, bool) {
	var m masks
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := g[r][c]
			if v == 0 {
				continue
			}
			b := (r/3)*3 + c/3
			if m.rows[r].Has(v) || m.cols[c].Has(v) || m.boxes[b].Has(v) {
				return m, false
			}
			m.rows[r] = m.rows[r].Add(v)
			m.cols[c] = m.cols[c].Add(v)
			m.boxes[b] = m.boxes[b].Add(v)
		}
	}
	return m, true
}

// search counts completions of g depth-first, stopping at limit. The
// grid holds the last completion found when the count is positive.
func search(ctx context.Context, g *domain.Grid, m *masks, nodes *int, limit int) int {
	if ctx.Err() != nil {
		return 0
	}
	r, c := -1, -1
scan:
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if g[i][j] == 0 {
				r, c = i, j
				break scan
			}
		}
	}
	if r < 0 {
		return 1
	}
	b := (r/3)*3 + c/3
	open := domain.FullSet &^ (m.rows[r] | m.cols[c] | m.boxes[b])
	found := 0
	for _, v := range open.Values() {
		*nodes++
		g[r][c] = v
		m.rows[r] = m.rows[r].Add(v)
		m.cols[c] = m.cols[c].Add(v)
		m.boxes[b] = m.boxes[b].Add(v)
		found += search(ctx, g, m, nodes, limit-found)
		if found >= limit {
			return found
		}
		g[r][c] = 0
		m.rows[r] = m.rows[r].Remove(v)
		m.cols[c] = m.cols[c].Remove(v)
		m.boxes[b] = m.boxes[b].Remove(v)
	}
	return found
}

// Solve returns a completed grid, or ErrUnsolvable.
func (s *Backtracking) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	var st ports.Stats
	m, ok := maskOf(&g)
	if ok {
		ok = search(ctx, &g, &m, &st.Nodes, 1) > 0
	}
	st.Duration = time.Since(start)
	if !ok {
		return domain.Grid{}, st, ErrUnsolvable
	}
	return g, st, nil
}

// Unique reports whether the grid has exactly one completion. The
// count stops at two.
func (s *Backtracking) Unique(ctx context.Context, g domain.Grid) (bool, ports.Stats, error) {
	start := time.Now()
	var st ports.Stats
	m, ok := maskOf(&g)
	n := 0
	if ok {
		n = search(ctx, &g, &m, &st.Nodes, 2)
	}
	st.Duration = time.Since(start)
	return n == 1, st, nil
}
