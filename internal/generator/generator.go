// Package generator creates puzzles with a unique solution by filling
// a random complete grid and carving givens back out while a solver
// confirms uniqueness.
package generator

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/maksim-shila/sudoku-solver/internal/domain"
	"github.com/maksim-shila/sudoku-solver/internal/ports"
)

// carveBudget bounds how long a single generation may keep carving.
const carveBudget = 900 * time.Millisecond

type Unique struct {
	Solver ports.Solver
}

// NewUnique wires a generator that uses the given solver for
// uniqueness checks.
func NewUnique(s ports.Solver) *Unique {
	return &Unique{Solver: s}
}

func targetGivens(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 40
	case domain.Medium:
		return 34
	case domain.Hard:
		return 28
	default:
		return 24 // Expert
	}
}

// Generate creates a seeded puzzle at the target difficulty.
func (g *Unique) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var full domain.Grid
	if !fillRandom(ctx, rng, &full) {
		return nil, ports.Stats{Duration: time.Since(start)}, context.Canceled
	}

	puz := full
	positions := rng.Perm(81)
	target := targetGivens(diff)
	deadline := start.Add(carveBudget)
	nodes := 0

	for _, pos := range positions {
		if time.Now().After(deadline) || puz.Givens() <= target {
			break
		}
		r, c := pos/9, pos%9
		old := puz[r][c]
		puz[r][c] = 0
		unique, st, _ := g.Solver.Unique(ctx, puz)
		nodes += st.Nodes
		if !unique {
			puz[r][c] = old
		}
	}

	p := &domain.Puzzle{
		ID:         uuid.NewString(),
		Seed:       seed,
		Difficulty: diff,
		Givens:     puz,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// fillRandom completes an empty grid into a full valid solution using
// a randomized value order per cell.
func fillRandom(ctx context.Context, rng *rand.Rand, grid *domain.Grid) bool {
	var nums [9]uint8
	for i := range nums {
		nums[i] = uint8(i + 1)
	}
	var dfs func(r, c int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == 9 {
			return true
		}
		nr, nc := r, c+1
		if nc == 9 {
			nr, nc = r+1, 0
		}
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		for _, v := range nums {
			if allowed(grid, r, c, v) {
				grid[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	return dfs(0, 0)
}

func allowed(g *domain.Grid, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
