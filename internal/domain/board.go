package domain

// Board is a fixed 9x9 grid of cells. Boxes are the static 3x3
// partition: box origin (r/3*3, c/3*3).
type Board struct {
	cells [9][9]*Cell
}

// NewBoard creates an empty board, every cell unfilled with all
// candidates open.
func NewBoard() *Board {
	b := &Board{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.cells[r][c] = NewCell(r, c)
		}
	}
	return b
}

// FromGrid builds a board from the in-memory wire form; non-zero
// entries become filled cells.
func FromGrid(g Grid) *Board {
	b := NewBoard()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				b.cells[r][c].Fill(g[r][c])
			}
		}
	}
	return b
}

// Grid returns the assigned values; 0 marks unfilled cells.
func (b *Board) Grid() Grid {
	var g Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g[r][c] = b.cells[r][c].Value()
		}
	}
	return g
}

// Cell returns the cell at (row, col).
func (b *Board) Cell(row, col int) *Cell { return b.cells[row][col] }

// Cells lists all 81 cells in row-major order.
func (b *Board) Cells() []*Cell {
	out := make([]*Cell, 0, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			out = append(out, b.cells[r][c])
		}
	}
	return out
}

// Row returns the nine cells of row r.
func (b *Board) Row(r int) []*Cell {
	out := make([]*Cell, 9)
	copy(out, b.cells[r][:])
	return out
}

// Column returns the nine cells of column c.
func (b *Board) Column(c int) []*Cell {
	out := make([]*Cell, 9)
	for r := 0; r < 9; r++ {
		out[r] = b.cells[r][c]
	}
	return out
}

// Box returns the nine cells of the 3x3 box containing (row, col).
func (b *Board) Box(row, col int) []*Cell {
	br, bc := (row/3)*3, (col/3)*3
	out := make([]*Cell, 0, 9)
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			out = append(out, b.cells[br+dr][bc+dc])
		}
	}
	return out
}

// Solved reports whether every cell is assigned.
func (b *Board) Solved() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !b.cells[r][c].HasValue() {
				return false
			}
		}
	}
	return true
}

// Clone returns a fully independent copy; mutating either board never
// affects the other.
func (b *Board) Clone() *Board {
	cp := &Board{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cp.cells[r][c] = b.cells[r][c].clone()
		}
	}
	return cp
}
