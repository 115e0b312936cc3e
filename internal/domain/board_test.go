package domain

import "testing"

func TestValueSetOps(t *testing.T) {
	s := NewValueSet(3, 7)
	if !s.Has(3) || !s.Has(7) || s.Has(5) {
		t.Fatalf("membership wrong: %b", s)
	}
	if s.Count() != 2 {
		t.Fatalf("Count = %d, want 2", s.Count())
	}
	s = s.Remove(3)
	if v, ok := s.Single(); !ok || v != 7 {
		t.Fatalf("Single = %d,%v, want 7,true", v, ok)
	}
	if v, ok := FullSet.Smallest(); !ok || v != 1 {
		t.Fatalf("Smallest of full set = %d,%v", v, ok)
	}
	if got := NewValueSet(9, 2, 5).Values(); len(got) != 3 || got[0] != 2 || got[1] != 5 || got[2] != 9 {
		t.Fatalf("Values not ascending: %v", got)
	}
	if _, ok := ValueSet(0).Smallest(); ok {
		t.Fatal("empty set claims a smallest member")
	}
}

func TestGridRoundTrip(t *testing.T) {
	var g Grid
	g[0][0] = 5
	g[4][7] = 9
	b := FromGrid(g)
	if !b.Cell(0, 0).HasValue() || b.Cell(0, 0).Value() != 5 {
		t.Fatalf("cell (0,0) not filled from grid")
	}
	if b.Cell(1, 1).HasValue() {
		t.Fatal("empty grid cell became filled")
	}
	if out := b.Grid(); out != g {
		t.Fatalf("grid round trip mismatch:\n%s\n%s", out, g)
	}
}

func TestParseGrid(t *testing.T) {
	in := `
5 3 . | . 7 . | . . .
6 . . | 1 9 5 | . . .
. 9 8 | . . . | . 6 .
------+-------+------
8 . . | . 6 . | . . 3
4 . . | 8 . 3 | . . 1
7 . . | . 2 . | . . 6
------+-------+------
. 6 . | . . . | 2 8 .
. . . | 4 1 9 | . . 5
. . . | . 8 . | . 7 9
`
	g, err := ParseGrid(in)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	if g[0][0] != 5 || g[8][8] != 9 || g[0][2] != 0 {
		t.Fatalf("parsed values wrong:\n%s", g)
	}
	if _, err := ParseGrid("123"); err == nil {
		t.Fatal("short input accepted")
	}
	if _, err := ParseGrid("x" + in); err == nil {
		t.Fatal("bad character accepted")
	}
	// String output must parse back to the same grid.
	back, err := ParseGrid(g.String())
	if err != nil || back != g {
		t.Fatalf("String/Parse round trip failed: %v", err)
	}
}

func TestBoardGroups(t *testing.T) {
	b := NewBoard()
	row := b.Row(4)
	if len(row) != 9 || row[3] != b.Cell(4, 3) {
		t.Fatal("Row returns wrong cells")
	}
	col := b.Column(2)
	if len(col) != 9 || col[8] != b.Cell(8, 2) {
		t.Fatal("Column returns wrong cells")
	}
	box := b.Box(4, 7)
	want := map[*Cell]bool{}
	for r := 3; r < 6; r++ {
		for c := 6; c < 9; c++ {
			want[b.Cell(r, c)] = true
		}
	}
	if len(box) != 9 {
		t.Fatalf("Box has %d cells", len(box))
	}
	for _, c := range box {
		if !want[c] {
			t.Fatalf("Box contains foreign cell (%d,%d)", c.Row(), c.Col())
		}
	}
}

func TestCloneIndependence(t *testing.T) {
	b := NewBoard()
	b.Cell(2, 3).Fill(6)
	b.Cell(5, 5).SetCandidates(NewValueSet(1, 4))
	cp := b.Clone()

	for _, c := range b.Cells() {
		d := cp.Cell(c.Row(), c.Col())
		if d.Value() != c.Value() || d.Candidates() != c.Candidates() || d.IsValid() != c.IsValid() {
			t.Fatalf("clone differs at (%d,%d)", c.Row(), c.Col())
		}
	}

	cp.Cell(2, 3).Fill(9)
	cp.Cell(5, 5).SetCandidates(FullSet)
	cp.Cell(0, 0).SetValid(false)
	if b.Cell(2, 3).Value() != 6 {
		t.Fatal("mutating clone changed source value")
	}
	if b.Cell(5, 5).Candidates() != NewValueSet(1, 4) {
		t.Fatal("mutating clone changed source candidates")
	}
	if !b.Cell(0, 0).IsValid() {
		t.Fatal("mutating clone changed source validity")
	}
}

func TestFillClearsCandidates(t *testing.T) {
	c := NewCell(0, 0)
	if c.Candidates() != FullSet {
		t.Fatal("new cell does not start with full candidates")
	}
	c.Fill(4)
	if !c.HasValue() || c.Value() != 4 || c.Candidates() != 0 {
		t.Fatalf("Fill left value=%d candidates=%b", c.Value(), c.Candidates())
	}
}
