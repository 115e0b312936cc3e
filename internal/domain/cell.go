package domain

import "math/bits"

// ValueSet is a bitmask over the digits 1..9.
type ValueSet uint16

// FullSet contains every digit.
const FullSet ValueSet = 0b1111111110

// NewValueSet builds a set from the given digits.
func NewValueSet(vals ...uint8) ValueSet {
	var s ValueSet
	for _, v := range vals {
		s = s.Add(v)
	}
	return s
}

func (s ValueSet) Has(v uint8) bool        { return s&(1<<v) != 0 }
func (s ValueSet) Add(v uint8) ValueSet    { return s | 1<<v }
func (s ValueSet) Remove(v uint8) ValueSet { return s &^ (1 << v) }
func (s ValueSet) Count() int              { return bits.OnesCount16(uint16(s)) }

// Single returns the sole member, if the set has exactly one.
func (s ValueSet) Single() (uint8, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(s))), true
}

// Smallest returns the lowest member of a non-empty set.
func (s ValueSet) Smallest() (uint8, bool) {
	if s == 0 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(s))), true
}

// Values lists the members in ascending order.
func (s ValueSet) Values() []uint8 {
	out := make([]uint8, 0, s.Count())
	for v := uint8(1); v <= 9; v++ {
		if s.Has(v) {
			out = append(out, v)
		}
	}
	return out
}

// Cell is one position on the board. Coordinates are fixed at creation;
// an unfilled cell carries the set of values it may still take.
type Cell struct {
	row, col   int
	value      uint8 // 0 = unfilled
	candidates ValueSet
	valid      bool
}

// NewCell creates an unfilled cell with all candidates open.
func NewCell(row, col int) *Cell {
	return &Cell{row: row, col: col, candidates: FullSet, valid: true}
}

func (c *Cell) Row() int       { return c.row }
func (c *Cell) Col() int       { return c.col }
func (c *Cell) HasValue() bool { return c.value != 0 }
func (c *Cell) Value() uint8   { return c.value }

// SetValue assigns a value without touching the candidate set.
func (c *Cell) SetValue(v uint8) { c.value = v }

// Fill assigns a value and clears the candidate set; candidates are
// meaningless once a cell is filled.
func (c *Cell) Fill(v uint8) {
	c.value = v
	c.candidates = 0
}

func (c *Cell) Candidates() ValueSet     { return c.candidates }
func (c *Cell) SetCandidates(s ValueSet) { c.candidates = s }

func (c *Cell) IsValid() bool    { return c.valid }
func (c *Cell) SetValid(ok bool) { c.valid = ok }

func (c *Cell) clone() *Cell {
	cp := *c
	return &cp
}
