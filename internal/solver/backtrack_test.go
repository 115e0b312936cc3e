package solver

import (
	"context"
	"testing"
	"time"

	"github.com/maksim-shila/sudoku-solver/internal/domain"
)

// A classic, solvable Sudoku (0 = empty).
var sample = domain.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func TestSolveSampleUnder1s(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	out, st, err := NewBacktracking().Solve(ctx, sample)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if out[r][c] == 0 {
				t.Fatalf("unsolved cell at r=%d c=%d", r, c)
			}
			if sample[r][c] != 0 && out[r][c] != sample[r][c] {
				t.Fatalf("given changed at r=%d c=%d", r, c)
			}
		}
	}
	if _, ok := maskOf(&out); !ok {
		t.Fatal("solution contains duplicates")
	}
	t.Logf("solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestUniqueOnSample(t *testing.T) {
	ctx := context.Background()
	unique, _, err := NewBacktracking().Unique(ctx, sample)
	if err != nil {
		t.Fatalf("Unique: %v", err)
	}
	if !unique {
		t.Fatal("sample puzzle reported non-unique")
	}
}

func TestUniqueRejectsEmptyGrid(t *testing.T) {
	unique, _, err := NewBacktracking().Unique(context.Background(), domain.Grid{})
	if err != nil {
		t.Fatalf("Unique: %v", err)
	}
	if unique {
		t.Fatal("empty grid reported unique")
	}
}

func TestSolveRejectsContradictoryGrid(t *testing.T) {
	g := sample
	g[0][2] = 5 // duplicates the 5 at (0,0)
	if _, _, err := NewBacktracking().Solve(context.Background(), g); err == nil {
		t.Fatal("contradictory grid solved")
	}
}

func TestSolveHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := NewBacktracking().Solve(ctx, domain.Grid{}); err == nil {
		t.Fatal("canceled context ignored")
	}
}
