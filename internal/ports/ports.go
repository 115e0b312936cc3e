package ports

import (
	"context"
	"time"

	"github.com/maksim-shila/sudoku-solver/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Passes   int
	Guesses  int
	Nodes    int
	Duration time.Duration
}

// Reporter is the outward message sink for informational, warning and
// error conditions. Calls are fire-and-forget; nothing is returned.
type Reporter interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// CellUpdate is invoked synchronously after every observable board
// mutation, before the next mutation happens.
type CellUpdate func(c *domain.Cell)

// Solver solves a grid outright and can test solution uniqueness.
type Solver interface {
	Solve(ctx context.Context, g domain.Grid) (domain.Grid, Stats, error)
	Unique(ctx context.Context, g domain.Grid) (bool, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator recomputes cell validity flags and reports conflicts.
type Validator interface {
	Validate(b *domain.Board) (ok bool, conflicts []domain.CellCoord)
}

// Hinter returns the next logical step, if one exists.
type Hinter interface {
	Hint(b *domain.Board) (domain.Hint, bool)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
