package usecase

import (
	"context"
	"testing"

	"github.com/maksim-shila/sudoku-solver/internal/domain"
	"github.com/maksim-shila/sudoku-solver/internal/hint"
	"github.com/maksim-shila/sudoku-solver/internal/solver"
	"github.com/maksim-shila/sudoku-solver/internal/validator"
)

func testService() *Service {
	s := solver.NewBacktracking()
	return NewService(s, nil, validator.New(), hint.NewStrategies(), nil, nil)
}

func TestSolveGrid(t *testing.T) {
	g := domain.Grid{
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
	out, st, err := testService().SolveGrid(context.Background(), g)
	if err != nil {
		t.Fatalf("SolveGrid: %v", err)
	}
	if out.Givens() != 81 {
		t.Fatal("solution incomplete")
	}
	if st.Passes == 0 {
		t.Fatal("no passes recorded")
	}
}

func TestSolveGridRejectsInvalidInput(t *testing.T) {
	var g domain.Grid
	g[0][0], g[0][1] = 5, 5
	if _, _, err := testService().SolveGrid(context.Background(), g); err == nil {
		t.Fatal("invalid board solved")
	}
}

func TestValidateAndHint(t *testing.T) {
	uc := testService()
	var g domain.Grid
	for c := 0; c < 8; c++ {
		g[0][c] = uint8(c + 1)
	}
	ok, conf, err := uc.Validate(g)
	if err != nil || !ok || len(conf) != 0 {
		t.Fatalf("Validate = %v,%v,%v", ok, conf, err)
	}
	h, found, err := uc.Hint(g)
	if err != nil || !found || h.Value != 9 {
		t.Fatalf("Hint = %+v,%v,%v", h, found, err)
	}
}

func TestUnconfiguredDependenciesGuarded(t *testing.T) {
	uc := &Service{}
	if _, _, err := uc.Generate(context.Background(), 1, domain.Easy); err != errNotConfigured {
		t.Fatalf("Generate err = %v", err)
	}
	if err := uc.Save(context.Background(), nil); err != errNotConfigured {
		t.Fatalf("Save err = %v", err)
	}
	if _, err := uc.Load(context.Background(), "x"); err != errNotConfigured {
		t.Fatalf("Load err = %v", err)
	}
	if _, err := uc.List(context.Background()); err != errNotConfigured {
		t.Fatalf("List err = %v", err)
	}
}
