package validator

import (
	"testing"

	"github.com/maksim-shila/sudoku-solver/internal/domain"
)

func TestValidBoardHasNoConflicts(t *testing.T) {
	b := domain.NewBoard()
	b.Cell(0, 0).Fill(5)
	b.Cell(1, 1).Fill(6)
	ok, conf := New().Validate(b)
	if !ok || len(conf) != 0 {
		t.Fatalf("ok=%v conflicts=%v, want valid", ok, conf)
	}
	if !IsValid(b) {
		t.Fatal("IsValid disagrees with Validate")
	}
}

func TestRowDuplicatesFlagBothCells(t *testing.T) {
	b := domain.NewBoard()
	b.Cell(2, 1).Fill(5)
	b.Cell(2, 7).Fill(5)
	ok, conf := New().Validate(b)
	if ok {
		t.Fatal("duplicate row values reported valid")
	}
	if len(conf) != 2 {
		t.Fatalf("conflicts = %v, want both duplicates", conf)
	}
	if b.Cell(2, 1).IsValid() || b.Cell(2, 7).IsValid() {
		t.Fatal("duplicate cells not flagged invalid")
	}
	if !b.Cell(0, 0).IsValid() {
		t.Fatal("unrelated cell flagged invalid")
	}
}

func TestColumnAndBoxDuplicates(t *testing.T) {
	b := domain.NewBoard()
	b.Cell(0, 4).Fill(9)
	b.Cell(8, 4).Fill(9)
	if ok, _ := New().Validate(b); ok {
		t.Fatal("column duplicate not detected")
	}
	b = domain.NewBoard()
	b.Cell(3, 3).Fill(2)
	b.Cell(5, 5).Fill(2)
	if ok, _ := New().Validate(b); ok {
		t.Fatal("box duplicate not detected")
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	b := domain.NewBoard()
	b.Cell(0, 0).Fill(3)
	b.Cell(0, 8).Fill(3)
	v := New()
	v.Validate(b)
	first := make([]bool, 0, 81)
	for _, c := range b.Cells() {
		first = append(first, c.IsValid())
	}
	v.Validate(b)
	for i, c := range b.Cells() {
		if c.IsValid() != first[i] {
			t.Fatalf("flag changed on repeat at cell %d", i)
		}
	}
}

func TestValidateResetsStaleFlags(t *testing.T) {
	b := domain.NewBoard()
	b.Cell(4, 4).SetValid(false)
	if ok, _ := New().Validate(b); !ok {
		t.Fatal("stale flag survived revalidation")
	}
	if !b.Cell(4, 4).IsValid() {
		t.Fatal("flag not reset")
	}
}

func TestValidateLeavesValuesAndCandidatesAlone(t *testing.T) {
	b := domain.NewBoard()
	b.Cell(1, 1).Fill(7)
	b.Cell(2, 2).SetCandidates(domain.NewValueSet(3, 4))
	New().Validate(b)
	if b.Cell(1, 1).Value() != 7 {
		t.Fatal("value changed")
	}
	if b.Cell(2, 2).Candidates() != domain.NewValueSet(3, 4) {
		t.Fatal("candidates changed")
	}
}
