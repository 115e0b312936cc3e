package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/maksim-shila/sudoku-solver/internal/domain"
	"github.com/maksim-shila/sudoku-solver/internal/engine"
	"github.com/maksim-shila/sudoku-solver/internal/ports"
)

// Service is the application facade: it wires the deduction engine,
// the direct solver, generation, validation, hinting and persistence.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
	Reporter  ports.Reporter
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, st ports.Storage, rep ports.Reporter) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, Storage: st, Reporter: rep}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// NewEngine builds a deduction engine over the given grid, wired to
// the service's reporter. Callers own the run lifecycle.
func (u *Service) NewEngine(g domain.Grid) *engine.Engine {
	return engine.New(domain.FromGrid(g), u.Reporter)
}

// SolveGrid runs the deduction engine to completion without
// throttling or observers and returns the solved grid.
func (u *Service) SolveGrid(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	e := u.NewEngine(g)
	outcome, st, err := e.Solve(ctx, nil)
	if err != nil {
		return domain.Grid{}, st, err
	}
	if outcome != domain.OutcomeSolved {
		return domain.Grid{}, st, fmt.Errorf("solve ended %s", outcome)
	}
	return e.Grid(), st, nil
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

func (u *Service) Validate(g domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	ok, conf := u.Validator.Validate(domain.FromGrid(g))
	return ok, conf, nil
}

func (u *Service) Hint(g domain.Grid) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	h, ok := u.Hinter.Hint(domain.FromGrid(g))
	return h, ok, nil
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
